package publish

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Runner runs an external command in a directory and returns its trimmed
// stdout.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}

// CommandError reports a failed external command with its stderr.
type CommandError struct {
	Name   string
	Args   []string
	Stderr string
	Err    error
}

// Error returns the command line, the exit error and stderr.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Name, strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += "\nstderr: " + e.Stderr
	}
	return msg
}

// Unwrap returns the underlying exec error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Logger *log.Logger
}

// Run executes name with args in dir. Commands never inherit a changed
// process working directory; dir is set per command.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	if r.Logger != nil {
		r.Logger.Debug("running", "cmd", name+" "+strings.Join(args, " "), "dir", dir)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Name:   name,
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return strings.TrimSpace(stdout.String()), nil
}
