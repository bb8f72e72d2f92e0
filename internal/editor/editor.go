package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"

	"notebook/internal/logs"
	"notebook/internal/proc"
)

// DefaultCommand is used when no editor is configured
const DefaultCommand = "nvim"

// ErrNoCommand is returned when the editor command line has no program in it
var ErrNoCommand = errors.New("no editor command")

// Split parses an editor command line such as `code --wait` with shell word
// rules. A blank command falls back to DefaultCommand.
func Split(command string) ([]string, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		command = DefaultCommand
	}

	parts, err := shellwords.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("parse editor command %q: %w", command, err)
	}
	if len(parts) == 0 {
		return nil, ErrNoCommand
	}
	return parts, nil
}

// Open runs the editor on path and waits for it to exit. The terminal is
// handed over to the editor for the duration.
func Open(r proc.Runner, command, path string) error {
	parts, err := Split(command)
	if err != nil {
		return err
	}

	logs.Logger.WithField("editor", parts[0]).WithField("path", path).Debug("opening editor")

	code, err := r.Run(proc.Cmd{
		Name: parts[0],
		Args: append(parts[1:], path),
	})
	if err != nil {
		if errors.Is(err, proc.ErrNotFound) {
			return fmt.Errorf("editor command not found: %s: %w", parts[0], err)
		}
		return fmt.Errorf("failed to launch editor %q: %w", parts[0], err)
	}
	if code != 0 {
		return fmt.Errorf("editor %q exited with status %d", parts[0], code)
	}
	return nil
}
