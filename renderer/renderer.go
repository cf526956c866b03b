package renderer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/snakeskin/figrender/grid"
	"github.com/snakeskin/figrender/log"
)

var logger = log.New("renderer")

type Renderer interface {
	// Render every point of the experiment grid, one job at a time.
	Render(ctx context.Context, exp *grid.Experiment) (Summary, error)
}

// A renderer that runs jobs strictly in sequence: each job's render step
// completes before its tone-map step starts, and the tone-map step completes
// before the next job starts.
type sequentialRenderer struct {
	options  Options
	builder  CommandBuilder
	executor Executor
}

// Create a new renderer that runs the commands produced by builder through
// executor.
func New(opts Options, builder CommandBuilder, executor Executor) (Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := builder.Validate(); err != nil {
		return nil, err
	}

	return &sequentialRenderer{
		options:  opts,
		builder:  builder,
		executor: executor,
	}, nil
}

func (r *sequentialRenderer) Render(ctx context.Context, exp *grid.Experiment) (Summary, error) {
	summary := Summary{
		RunID:      uuid.New(),
		Experiment: exp.Name,
	}

	jobs := Jobs(exp, r.options.OutputFolder)
	if len(jobs) == 0 {
		return summary, ErrNoJobs
	}

	// The folder is shared by all jobs and is only checked once.
	if err := PrepareOutputFolder(r.options.OutputFolder); err != nil {
		return summary, err
	}

	logger.Infof("run %s: rendering %d jobs for experiment %s into %s", summary.RunID, len(jobs), exp.Name, r.options.OutputFolder)
	start := time.Now()

	for idx, job := range jobs {
		if ctx.Err() != nil {
			summary.Jobs = append(summary.Jobs, skipped(jobs[idx:])...)
			summary.RenderTime = time.Since(start)
			return summary, ErrInterrupted
		}

		if r.options.Verbose {
			logger.Noticef("creating renders for experiment %s (%s)", exp.DisplayTitle(), exp.Describe(job.Point))
		}

		res, err := r.renderJob(ctx, job)
		summary.Jobs = append(summary.Jobs, res)
		if err != nil {
			summary.Jobs = append(summary.Jobs, skipped(jobs[idx+1:])...)
			summary.RenderTime = time.Since(start)
			return summary, err
		}
	}

	summary.RenderTime = time.Since(start)
	return summary, nil
}

// Run both steps of job. A non-nil error stops the run.
func (r *sequentialRenderer) renderJob(ctx context.Context, job Job) (JobResult, error) {
	res := JobResult{Job: job}
	start := time.Now()

	code, err := r.executor.Execute(ctx, r.builder.Render(r.options, job))
	res.RenderExit = code
	if ctx.Err() != nil {
		res.Status = Skipped
		res.Duration = time.Since(start)
		return res, ErrInterrupted
	}
	if code != 0 || err != nil {
		res.Status = RenderFailed
		res.Err = err
		if stop := r.handleFailure(job, RenderStep, code, err); stop != nil {
			res.Duration = time.Since(start)
			return res, stop
		}
	}

	// The tone-map step runs even if the render step failed.
	code, err = r.executor.Execute(ctx, r.builder.ToneMap(job))
	res.ToneMapped = true
	res.ToneMapExit = code
	if ctx.Err() != nil {
		res.Status = Skipped
		res.Duration = time.Since(start)
		return res, ErrInterrupted
	}
	if code != 0 || err != nil {
		if res.Status == Success {
			res.Status = ToneMapFailed
		}
		if res.Err == nil {
			res.Err = err
		}
		if stop := r.handleFailure(job, ToneMapStep, code, err); stop != nil {
			res.Duration = time.Since(start)
			return res, stop
		}
	}

	res.Duration = time.Since(start)
	logger.Debugf("job %d finished in %s: %s", job.Index, res.Duration, res.Outcome())
	return res, nil
}

// Apply the failure policy to a failed step. Returns a non-nil error if the
// run must stop.
func (r *sequentialRenderer) handleFailure(job Job, step Step, code int, err error) error {
	switch r.options.OnFailure {
	case AbortOnFailure:
		jobErr := &JobError{Job: job.Index, Step: step, ExitCode: code, Err: err}
		logger.Error(jobErr.Error())
		return jobErr
	case LogFailures:
		if err != nil {
			logger.Warningf("job %d %s: %s step could not run: %v", job.Index, job.Point, step, err)
		} else {
			logger.Warningf("job %d %s: %s step exited with code %d", job.Index, job.Point, step, code)
		}
	}
	return nil
}

func skipped(jobs []Job) []JobResult {
	results := make([]JobResult, len(jobs))
	for idx, job := range jobs {
		results[idx] = JobResult{Job: job, Status: Skipped}
	}
	return results
}
