package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/snakeskin/figrender/grid"
	"github.com/snakeskin/figrender/renderer"
	"github.com/urfave/cli"
)

// List the jobs of an experiment without running anything.
func ListJobs(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("missing experiment argument")
	}

	exp, err := resolveExperiment(ctx, ctx.Args().First())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Scene", "Output", "Defines"})
	for _, job := range renderer.Jobs(exp, ctx.String("output_folder")) {
		defines := make([]string, len(job.Defines))
		for idx, d := range job.Defines {
			defines[idx] = d.Key + "=" + d.Value
		}
		table.Append([]string{
			fmt.Sprintf("%d", job.Index),
			job.SceneFile,
			job.OutputFile,
			strings.Join(defines, " "),
		})
	}
	table.SetFooter([]string{"", "", "JOBS", fmt.Sprintf("%d", exp.Len())})
	table.Render()

	logger.Noticef("experiment %s (%s)\n%s", exp.Name, exp.DisplayTitle(), buf.String())
	return nil
}

// Map a builtin experiment name or a yaml file path to an experiment.
func resolveExperiment(ctx *cli.Context, name string) (*grid.Experiment, error) {
	switch name {
	case "ablation", "fig6":
		return grid.Ablation(ctx.String("scene_folder")), nil
	case "appearance-range", "fig5":
		sceneFile := grid.DefaultAppearanceSceneFile
		if ctx.IsSet("scene_file") {
			sceneFile = ctx.String("scene_file")
		}
		return grid.AppearanceRange(sceneFile), nil
	}

	exp, err := grid.ReadExperiment(name)
	if err != nil {
		return nil, err
	}
	if ctx.IsSet("scene_file") {
		exp.Scene = ctx.String("scene_file")
	}
	return exp, nil
}
