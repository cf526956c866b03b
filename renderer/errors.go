package renderer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOptions = errors.New("renderer: invalid options")
	ErrOutputFolder   = errors.New("renderer: could not create output folder")
	ErrNoJobs         = errors.New("renderer: experiment has no grid points")
	ErrAborted        = errors.New("renderer: aborted after failed step")
	ErrInterrupted    = errors.New("renderer: interrupted while rendering")
)

// A JobError describes the step that stopped a run under the abort policy.
type JobError struct {
	Job      int
	Step     Step
	ExitCode int
	Err      error
}

func (e *JobError) Error() string {
	msg := fmt.Sprintf("%s: job %d %s step exited with code %d", ErrAborted.Error(), e.Job, e.Step, e.ExitCode)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *JobError) Is(target error) bool {
	return target == ErrAborted
}

func (e *JobError) Unwrap() error {
	return e.Err
}
