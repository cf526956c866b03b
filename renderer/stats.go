package renderer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Step identifies one of the two processes run per job.
type Step int

const (
	RenderStep Step = iota
	ToneMapStep
)

func (s Step) String() string {
	if s == ToneMapStep {
		return "tone-map"
	}
	return "render"
}

// JobStatus is the outcome of a job.
type JobStatus int

const (
	// Both steps exited with status 0.
	Success JobStatus = iota

	// The render step failed; the tone-map step may still have run.
	RenderFailed

	// The render step succeeded but the tone-map step failed.
	ToneMapFailed

	// The run stopped before this job's steps completed.
	Skipped
)

func (s JobStatus) String() string {
	switch s {
	case Success:
		return "ok"
	case RenderFailed:
		return "render failed"
	case ToneMapFailed:
		return "tone-map failed"
	default:
		return "skipped"
	}
}

type JobResult struct {
	Job    Job
	Status JobStatus

	// Exit codes of each step; -1 if the process could not be started.
	RenderExit  int
	ToneMapExit int

	// Set when a step could not be started.
	Err error

	// Tone-map step was attempted.
	ToneMapped bool

	// Wall time for both steps.
	Duration time.Duration
}

// ExitCode returns the exit code of the step that failed the job.
func (r JobResult) ExitCode() int {
	if r.Status == ToneMapFailed {
		return r.ToneMapExit
	}
	return r.RenderExit
}

// Outcome formats the status with the failing exit code, e.g. "render failed (1)".
func (r JobResult) Outcome() string {
	switch r.Status {
	case Success, Skipped:
		return r.Status.String()
	default:
		return fmt.Sprintf("%s (%d)", r.Status, r.ExitCode())
	}
}

type Summary struct {
	// Unique id of this run, included in log lines.
	RunID uuid.UUID

	// Experiment name.
	Experiment string

	// Individual job results in execution order.
	Jobs []JobResult

	// Total time for the run.
	RenderTime time.Duration
}

// Count returns the number of jobs with the given status.
func (s Summary) Count(status JobStatus) int {
	n := 0
	for _, r := range s.Jobs {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Failed returns the number of jobs that had a failing step.
func (s Summary) Failed() int {
	return s.Count(RenderFailed) + s.Count(ToneMapFailed)
}
