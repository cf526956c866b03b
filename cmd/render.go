package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/snakeskin/figrender/grid"
	"github.com/snakeskin/figrender/renderer"
	"github.com/urfave/cli"
)

// Render the Fig. 6 ablation study.
func RenderAblation(ctx *cli.Context) error {
	return renderExperiment(ctx, grid.Ablation(ctx.String("scene_folder")))
}

// Render the Fig. 5 appearance range study.
func RenderAppearanceRange(ctx *cli.Context) error {
	return renderExperiment(ctx, grid.AppearanceRange(ctx.String("scene_file")))
}

// Render a grid loaded from a yaml experiment file.
func RenderExperimentFile(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("missing experiment file argument")
	}

	exp, err := grid.ReadExperiment(ctx.Args().First())
	if err != nil {
		return err
	}
	if ctx.IsSet("scene_file") {
		exp.Scene = ctx.String("scene_file")
	}

	return renderExperiment(ctx, exp)
}

func renderExperiment(ctx *cli.Context, exp *grid.Experiment) error {
	opts, builder, err := parseOptions(ctx)
	if err != nil {
		return err
	}
	setupLogging(opts.Verbose)

	var executor renderer.Executor = renderer.NewProcessRunner(opts.Verbose)
	if opts.DryRun {
		executor = renderer.DryRunner{}
	}

	r, err := renderer.New(opts, builder, executor)
	if err != nil {
		return err
	}

	runCtx, stop := signalContext()
	defer stop()

	summary, err := r.Render(runCtx, exp)
	if len(summary.Jobs) != 0 && (opts.Verbose || opts.OnFailure != renderer.IgnoreFailures) {
		displayRunStats(summary)
	}
	return err
}

// Build the render options and tool commands from the command flags.
func parseOptions(ctx *cli.Context) (renderer.Options, renderer.CommandBuilder, error) {
	policy, err := renderer.ParsePolicy(ctx.String("on_failure"))
	if err != nil {
		return renderer.Options{}, renderer.CommandBuilder{}, err
	}

	opts := renderer.Options{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		Threads:         ctx.Int("threads"),
		OutputFolder:    ctx.String("output_folder"),
		Verbose:         ctx.Bool("verbose"),
		DryRun:          ctx.Bool("dry_run"),
		OnFailure:       policy,
	}
	if err = opts.Validate(); err != nil {
		return opts, renderer.CommandBuilder{}, err
	}

	builder := renderer.CommandBuilder{
		RenderCmd:  renderer.ParseToolCmd(ctx.String("renderer")),
		ToneMapCmd: renderer.ParseToolCmd(ctx.String("tonemapper")),
	}
	if err = builder.Validate(); err != nil {
		return opts, builder, err
	}

	return opts, builder, nil
}

func displayRunStats(summary renderer.Summary) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Grid point", "Output", "Result", "Render time"})
	for _, res := range summary.Jobs {
		table.Append([]string{
			fmt.Sprintf("%d", res.Job.Index),
			res.Job.Point.String(),
			res.Job.OutputFile,
			res.Outcome(),
			res.Duration.String(),
		})
	}
	table.SetFooter([]string{"", "", fmt.Sprintf("%d FAILED", summary.Failed()), "TOTAL", summary.RenderTime.String()})

	table.Render()
	logger.Noticef("run %s statistics for experiment %s\n%s", summary.RunID, summary.Experiment, buf.String())
}
