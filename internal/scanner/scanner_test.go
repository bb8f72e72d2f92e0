package scanner

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeNote(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTaskPatterns(t *testing.T) {
	tests := []struct {
		line      string
		completed bool
		open      bool
	}{
		{"- [ ] buy milk", false, true},
		{"- [x] done thing", true, false},
		{"- [X] Done thing", true, false},
		{"  * [ ] nested", false, true},
		{"+ [x] plus marker", true, false},
		{"[ ] bare checkbox", false, true},
		{"[x] bare done", true, false},
		{"[ ]", false, true},
		{"- [x]", false, false}, // completed requires trailing whitespace
		{"- [x]done", false, false},
		{"-[ ] no space after marker", false, false},
		{"plain text", false, false},
		{"## heading", false, false},
		{"text - [ ] not at start", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.completed, IsCompletedTask(tt.line), "completed")
			assert.Equal(t, tt.open, IsOpenTask(tt.line), "open")
		})
	}
}

func TestCollectUncompletedTasks(t *testing.T) {
	root := t.TempDir()
	path := writeNote(t, root, "daily/25-06-10.md", "## Tuesday 25-06-10\n\n- [ ] buy milk\n- [x] done thing\n")

	tasks, err := CollectUncompletedTasks(root, Options{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	assert.Equal(t, path, tasks[0].Path)
	assert.Equal(t, 3, tasks[0].Line)
	assert.Equal(t, "- [ ] buy milk", tasks[0].Text)
}

func TestCollectUncompletedTasks_OrderAndTrim(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "someday.md", "  - [ ] learn go   \n")
	writeNote(t, root, "monthly/25-06.md", "- [ ] pay rent\n")
	writeNote(t, root, "daily/25-06-11.md", "- [ ] second day\n")
	writeNote(t, root, "daily/25-06-10.md", "notes\n\n- [ ] first day\n")
	writeNote(t, root, "daily/readme.txt", "- [ ] not a note\n")

	tasks, err := CollectUncompletedTasks(root, Options{})
	require.NoError(t, err)

	var got []string
	for _, task := range tasks {
		rel, _ := filepath.Rel(root, task.Path)
		got = append(got, filepath.ToSlash(rel)+":"+task.Text)
	}
	assert.Equal(t, []string{
		"daily/25-06-10.md:- [ ] first day",
		"daily/25-06-11.md:- [ ] second day",
		"monthly/25-06.md:- [ ] pay rent",
		"someday.md:- [ ] learn go",
	}, got)
	assert.Equal(t, 3, tasks[0].Line)
}

func TestCollectUncompletedTasks_SkipsGitAndIgnored(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, ".git/notes.md", "- [ ] inside git\n")
	writeNote(t, root, "archive/old.md", "- [ ] archived\n")
	writeNote(t, root, "daily/25-06-10.md", "- [ ] visible\n")

	tasks, err := CollectUncompletedTasks(root, Options{Ignore: []string{"archive"}})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "- [ ] visible", tasks[0].Text)

	tasks, err = CollectUncompletedTasks(root, Options{Ignore: []string{"daily/*.md"}})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "- [ ] archived", tasks[0].Text)
}

func TestCollectUncompletedTasks_IncludesOtherDotDirectories(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, ".archive/24-12-31.md", "- [ ] still open\n")

	tasks, err := CollectUncompletedTasks(root, Options{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "- [ ] still open", tasks[0].Text)
}

func TestCollectUncompletedTasks_FullPathOrder(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "work/plan.md", "- [ ] plan\n")
	writeNote(t, root, "work-log.md", "- [ ] log\n")
	writeNote(t, root, "work.md", "- [ ] top\n")

	tasks, err := CollectUncompletedTasks(root, Options{})
	require.NoError(t, err)

	var got []string
	for _, task := range tasks {
		rel, _ := filepath.Rel(root, task.Path)
		got = append(got, filepath.ToSlash(rel))
	}
	// '-' sorts before '.' and '/'
	assert.Equal(t, []string{"work-log.md", "work.md", "work/plan.md"}, got)
}

func TestCollectUncompletedTasks_VeryLongLine(t *testing.T) {
	root := t.TempDir()
	long := strings.Repeat("x", 2*1024*1024)
	writeNote(t, root, "someday.md", "- [ ] before\n"+long+"\n- [ ] after\r\n[ ] last")

	tasks, err := CollectUncompletedTasks(root, Options{})
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, "- [ ] before", tasks[0].Text)
	assert.Equal(t, 1, tasks[0].Line)
	assert.Equal(t, "- [ ] after", tasks[1].Text)
	assert.Equal(t, 3, tasks[1].Line)
	assert.Equal(t, "[ ] last", tasks[2].Text)
	assert.Equal(t, 4, tasks[2].Line)
}

func TestCollectUncompletedTasks_InvalidIgnore(t *testing.T) {
	_, err := CollectUncompletedTasks(t.TempDir(), Options{Ignore: []string{"[unclosed"}})
	assert.Error(t, err)
}

func TestCollectUncompletedTasks_MissingRoot(t *testing.T) {
	tasks, err := CollectUncompletedTasks(filepath.Join(t.TempDir(), "missing"), Options{})
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestCollectUncompletedTasks_SkipsUnreadable(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	root := t.TempDir()
	locked := writeNote(t, root, "daily/25-06-09.md", "- [ ] locked\n")
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { os.Chmod(locked, 0644) })
	writeNote(t, root, "daily/25-06-10.md", "- [ ] readable\n")

	tasks, err := CollectUncompletedTasks(root, Options{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "- [ ] readable", tasks[0].Text)
}
