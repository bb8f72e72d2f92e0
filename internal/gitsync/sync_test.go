package gitsync

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notebook/internal/proc"
)

var syncDay = time.Date(2025, time.June, 10, 9, 30, 0, 0, time.Local)

// fakeGit answers "git status --porcelain" with status and fails the named step
func fakeGit(status, failStep string, failErr error) *proc.Fake {
	return &proc.Fake{Handle: func(c proc.Cmd) (int, error) {
		step := c.Args[0]
		if step == failStep {
			if failErr != nil {
				return -1, failErr
			}
			return 1, nil
		}
		if step == "status" && c.Stdout != nil {
			c.Stdout.Write([]byte(status))
		}
		return 0, nil
	}}
}

func newSyncer(fake *proc.Fake, out *bytes.Buffer) *Syncer {
	return &Syncer{Runner: fake, Out: out, Now: func() time.Time { return syncDay }}
}

func TestSync_WithChanges(t *testing.T) {
	fake := fakeGit(" M daily/25-06-10.md\n", "", nil)
	var out bytes.Buffer

	require.NoError(t, newSyncer(fake, &out).Sync("/notes"))

	assert.Equal(t, []string{
		"git status --porcelain",
		"git add --all",
		"git commit -m Sync 2025-06-10",
		"git pull --rebase",
		"git push",
	}, fake.CommandLines())
	for _, c := range fake.Calls {
		assert.Equal(t, "/notes", c.Dir)
	}
	assert.Empty(t, out.String())
}

func TestSync_NoChanges(t *testing.T) {
	fake := fakeGit("\n", "", nil)
	var out bytes.Buffer

	require.NoError(t, newSyncer(fake, &out).Sync("/notes"))

	assert.Equal(t, []string{"git status --porcelain", "git pull --rebase", "git push"}, fake.CommandLines())
	assert.Equal(t, "No local changes to commit.\n", out.String())
}

func TestSync_StopsAtFailingStep(t *testing.T) {
	tests := []struct {
		failStep string
		wantRun  int
		wantMsg  string
	}{
		{"status", 1, "Failed to inspect git status"},
		{"add", 2, "Failed to commit notebook changes"},
		{"commit", 3, "Failed to commit notebook changes"},
		{"pull", 4, "Failed to sync with remote"},
		{"push", 5, "Failed to sync with remote"},
	}

	for _, tt := range tests {
		t.Run(tt.failStep, func(t *testing.T) {
			fake := fakeGit(" M someday.md\n", tt.failStep, nil)
			var out bytes.Buffer

			err := newSyncer(fake, &out).Sync("/notes")
			require.Error(t, err)

			var stepErr *StepError
			require.True(t, errors.As(err, &stepErr))
			assert.Equal(t, tt.failStep, stepErr.Step)
			assert.Equal(t, 1, stepErr.ExitCode)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Len(t, fake.Calls, tt.wantRun)
		})
	}
}

func TestSync_GitMissing(t *testing.T) {
	fake := fakeGit("", "status", proc.ErrNotFound)
	var out bytes.Buffer

	err := newSyncer(fake, &out).Sync("/notes")
	require.Error(t, err)
	assert.True(t, errors.Is(err, proc.ErrNotFound))
}

func TestCommitMessage(t *testing.T) {
	assert.Equal(t, "Sync 2025-06-10", CommitMessage(syncDay))
}
