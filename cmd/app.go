package cmd

import (
	"github.com/snakeskin/figrender/grid"
	"github.com/snakeskin/figrender/renderer"
	"github.com/urfave/cli"
)

// Flags shared by every command that renders.
func renderFlags(defaultOutputFolder string) []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "output_folder, of",
			Value: defaultOutputFolder,
			Usage: "output folder of the renders",
		},
		cli.IntFlag{
			Name:  "spp",
			Value: renderer.DefaultSamplesPerPixel,
			Usage: "samples per pixel",
		},
		cli.IntFlag{
			Name:  "threads, p",
			Value: renderer.DefaultThreads,
			Usage: "number of renderer threads",
		},
		cli.IntFlag{
			Name:  "width",
			Value: renderer.DefaultWidth,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: renderer.DefaultHeight,
			Usage: "frame height",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "echo commands and progress",
		},
		cli.StringFlag{
			Name:  "on_failure",
			Value: renderer.IgnoreFailures.String(),
			Usage: "what to do when a render or tone-map step fails: ignore, log or abort",
		},
		cli.StringFlag{
			Name:  "renderer",
			Value: "mitsuba",
			Usage: "renderer executable",
		},
		cli.StringFlag{
			Name:  "tonemapper",
			Value: "mtsutil tonemap",
			Usage: "tone-mapping executable and leading arguments",
		},
		cli.BoolFlag{
			Name:  "dry_run",
			Usage: "log the commands without running them",
		},
	}
}

// NewApp defines the figrender command line.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "figrender"
	app.Usage = "render the snake skin BSDF figures through mitsuba"
	app.Version = "1.0.0"
	app.Commands = []cli.Command{
		{
			Name:  "ablation",
			Usage: "render the ablation study (Fig. 6)",
			Description: `
Render every material (diffuse, diffuse_bump, thin_film_bump, multilayered)
on every shape (sphere, torus, snake) and tone-map the results.

Scenes are read from <scene_folder>/fig6_<shape>.xml and renders are written
to <output_folder>/fig6_<material>_<shape>.exr.`,
			Flags: append(renderFlags("./scenes/fig6/renders"),
				cli.StringFlag{
					Name:  "scene_folder",
					Value: grid.DefaultAblationSceneFolder,
					Usage: "folder holding the fig6_<shape>.xml scenes",
				},
			),
			Action: RenderAblation,
		},
		{
			Name:  "appearance-range",
			Usage: "render the appearance range study (Fig. 5)",
			Description: `
Render the scene for every combination of interior index of refraction
(1.0, 2.0) and film thickness (300, 600, 1200) and tone-map the results.`,
			Flags: append(renderFlags("./scenes/fig5/renders"),
				cli.StringFlag{
					Name:  "scene_file, i",
					Value: grid.DefaultAppearanceSceneFile,
					Usage: "scene file to be rendered",
				},
			),
			Action: RenderAppearanceRange,
		},
		{
			Name:      "run",
			Usage:     "render an experiment grid described in a yaml file",
			ArgsUsage: "experiment.yaml",
			Flags: append(renderFlags("./renders"),
				cli.StringFlag{
					Name:  "scene_file, i",
					Usage: "override the scene template of the experiment file",
				},
			),
			Action: RenderExperimentFile,
		},
		{
			Name:      "list",
			Usage:     "list the jobs of an experiment without rendering",
			ArgsUsage: "ablation|appearance-range|experiment.yaml",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output_folder, of",
					Value: "./renders",
					Usage: "output folder of the renders",
				},
				cli.StringFlag{
					Name:  "scene_folder",
					Value: grid.DefaultAblationSceneFolder,
					Usage: "folder holding the ablation scenes",
				},
				cli.StringFlag{
					Name:  "scene_file, i",
					Usage: "scene file for appearance-range or yaml experiments",
				},
			},
			Action: ListJobs,
		},
	}

	return app
}
