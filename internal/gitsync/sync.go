// Package gitsync keeps the notebook directory in step with its git remote.
package gitsync

import (
	"fmt"
	"io"
	"strings"
	"time"

	"notebook/internal/logs"
	"notebook/internal/proc"
)

// Sync steps, in the order they run
const (
	StepStatus = "status"
	StepAdd    = "add"
	StepCommit = "commit"
	StepPull   = "pull"
	StepPush   = "push"
)

var stepMessages = map[string]string{
	StepStatus: "Failed to inspect git status",
	StepAdd:    "Failed to commit notebook changes",
	StepCommit: "Failed to commit notebook changes",
	StepPull:   "Failed to sync with remote",
	StepPush:   "Failed to sync with remote",
}

// StepError reports the git step that stopped a sync
type StepError struct {
	Step     string
	ExitCode int
	Err      error // set when git could not be started
}

func (e *StepError) Error() string {
	msg := stepMessages[e.Step]
	if e.Err != nil {
		return fmt.Sprintf("%s (git %s): %v", msg, e.Step, e.Err)
	}
	return fmt.Sprintf("%s (git %s exited with status %d)", msg, e.Step, e.ExitCode)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Syncer runs the git commands that commit local edits and exchange them with
// the remote.
type Syncer struct {
	Runner proc.Runner
	Out    io.Writer
	Now    func() time.Time
}

// CommitMessage returns the message used for the sync commit made on day
func CommitMessage(day time.Time) string {
	return "Sync " + day.Format("2006-01-02")
}

// Sync commits any local changes under root, then pulls (rebasing) and pushes.
// It stops at the first step that fails and returns it as a *StepError.
func (s *Syncer) Sync(root string) error {
	status, _, code, err := proc.Output(s.Runner, proc.Cmd{
		Name: "git",
		Args: []string{"status", "--porcelain"},
		Dir:  root,
	})
	if err != nil || code != 0 {
		return &StepError{Step: StepStatus, ExitCode: code, Err: err}
	}

	if strings.TrimSpace(status) != "" {
		if err := s.git(root, StepAdd, "add", "--all"); err != nil {
			return err
		}
		if err := s.git(root, StepCommit, "commit", "-m", CommitMessage(s.now())); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(s.Out, "No local changes to commit.")
	}

	if err := s.git(root, StepPull, "pull", "--rebase"); err != nil {
		return err
	}
	return s.git(root, StepPush, "push")
}

func (s *Syncer) git(root, step string, args ...string) error {
	logs.Logger.WithField("step", step).WithField("root", root).Debug("running git")

	code, err := s.Runner.Run(proc.Cmd{Name: "git", Args: args, Dir: root})
	if err != nil || code != 0 {
		logs.Logger.WithField("step", step).WithField("code", code).WithError(err).Warn("git step failed")
		return &StepError{Step: step, ExitCode: code, Err: err}
	}
	return nil
}

func (s *Syncer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
