package renderer

import "fmt"

// Defaults used when a flag is not set.
const (
	DefaultWidth           = 256
	DefaultHeight          = 256
	DefaultSamplesPerPixel = 64
	DefaultThreads         = 20
)

// Options holds the configuration for a batch of renders. It is built once at
// startup and not modified afterwards.
type Options struct {
	// Frame dims.
	Width  int
	Height int

	// Number of samples.
	SamplesPerPixel int

	// Renderer worker threads.
	Threads int

	// Destination folder for raw and tone-mapped images.
	OutputFolder string

	// Echo commands and per-job progress.
	Verbose bool

	// Log commands instead of executing them.
	DryRun bool

	// What to do when a render or tone-map process fails.
	OnFailure FailurePolicy
}

// DefaultOptions returns the options used when no flags are given.
func DefaultOptions(outputFolder string) Options {
	return Options{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		SamplesPerPixel: DefaultSamplesPerPixel,
		Threads:         DefaultThreads,
		OutputFolder:    outputFolder,
		OnFailure:       IgnoreFailures,
	}
}

// Validate rejects values the renderer cannot use.
func (o Options) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"width", o.Width},
		{"height", o.Height},
		{"spp", o.SamplesPerPixel},
		{"threads", o.Threads},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("%w: %s must be positive; got %d", ErrInvalidOptions, c.name, c.value)
		}
	}
	if o.OutputFolder == "" {
		return fmt.Errorf("%w: output folder is required", ErrInvalidOptions)
	}
	return nil
}
