// Package proc is the boundary between the notebook and the external
// programs it drives (editor, ripgrep, git).
package proc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ErrNotFound is returned when the program to run is not on PATH
var ErrNotFound = errors.New("command not found")

// Cmd describes one invocation of an external program.
// Nil Stdin/Stdout/Stderr inherit the current process's streams.
type Cmd struct {
	Name   string
	Args   []string
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Runner starts external programs and waits for them to exit
type Runner interface {
	// Run returns the exit code of the finished program. The error is non-nil
	// only when the program could not be started.
	Run(cmd Cmd) (int, error)
}

// Exec runs commands with os/exec
type Exec struct{}

func (Exec) Run(c Cmd) (int, error) {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if c.Stdin != nil {
		cmd.Stdin = c.Stdin
	}
	if c.Stdout != nil {
		cmd.Stdout = c.Stdout
	}
	if c.Stderr != nil {
		cmd.Stderr = c.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return -1, fmt.Errorf("%w: %s", ErrNotFound, c.Name)
	}
	return -1, fmt.Errorf("start %s: %w", c.Name, err)
}

// Output runs c capturing stdout and stderr, and returns both with the exit code
func Output(r Runner, c Cmd) (stdout, stderr string, code int, err error) {
	var out, errOut bytes.Buffer
	c.Stdout = &out
	c.Stderr = &errOut
	code, err = r.Run(c)
	return out.String(), errOut.String(), code, err
}

