package renderer

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// The Executor interface is implemented by anything that can run a Command
// to completion.
type Executor interface {
	// Execute runs cmd and blocks until it exits. A process that starts and
	// exits with a non-zero status is reported through exitCode with a nil
	// error; err is only set when the process could not be run at all, in
	// which case exitCode is -1.
	Execute(ctx context.Context, cmd Command) (exitCode int, err error)
}

// ProcessRunner executes commands as child processes.
type ProcessRunner struct {
	// Destinations for the child's output; default to the parent's.
	Stdout io.Writer
	Stderr io.Writer

	// Log each command line before running it.
	Verbose bool
}

// Create a process runner attached to the parent's stdout and stderr.
func NewProcessRunner(verbose bool) *ProcessRunner {
	return &ProcessRunner{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Verbose: verbose,
	}
}

func (r *ProcessRunner) Execute(ctx context.Context, cmd Command) (int, error) {
	if r.Verbose {
		logger.Infof("executing command: %s", cmd)
	}

	proc := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	proc.Stdout = r.Stdout
	proc.Stderr = r.Stderr
	if proc.Stdout == nil {
		proc.Stdout = os.Stdout
	}
	if proc.Stderr == nil {
		proc.Stderr = os.Stderr
	}

	err := proc.Run()
	if ctx.Err() != nil {
		return -1, ctx.Err()
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), nil
	default:
		return -1, err
	}
}

// DryRunner logs commands without running them.
type DryRunner struct{}

func (DryRunner) Execute(_ context.Context, cmd Command) (int, error) {
	logger.Noticef("[dry run] %s", cmd)
	return 0, nil
}
