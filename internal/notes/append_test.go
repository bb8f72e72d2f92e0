package notes

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend_Spacing(t *testing.T) {
	tests := []struct {
		name     string
		existing *string
		text     string
		want     string
	}{
		{"missing file", nil, "hello", "hello\n"},
		{"empty file", strPtr(""), "hello", "hello\n"},
		{"ends with newline", strPtr("x\n"), "hello", "x\n\nhello\n"},
		{"ends with blank line", strPtr("x\n\n"), "hello", "x\n\nhello\n"},
		{"no trailing newline", strPtr("x"), "hello", "x\n\nhello\n"},
		{"trailing newlines trimmed from entry", strPtr(""), "hello\n\n\n", "hello\n"},
		{"multi-line entry", strPtr("## 2025\n\n"), "one\ntwo\n", "## 2025\n\none\ntwo\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "note.md")
			if tt.existing != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.existing), 0644))
			}

			require.NoError(t, Append(path, tt.text))

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(content))
		})
	}
}

func TestAppend_NoContent(t *testing.T) {
	for _, text := range []string{"", "\n\n", "   ", " \t\n"} {
		path := filepath.Join(t.TempDir(), "note.md")
		require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))

		err := Append(path, text)
		assert.True(t, errors.Is(err, ErrNoContent), "text %q", text)

		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "x\n", string(content), "file must not change")
	}
}

func TestAppend_Repeated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.md")

	require.NoError(t, Append(path, "first"))
	require.NoError(t, Append(path, "second"))
	require.NoError(t, Append(path, "third\n"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\n\nsecond\n\nthird\n", string(content))
}

func strPtr(s string) *string {
	return &s
}
