package main

import (
	"os"

	"github.com/snakeskin/figrender/cmd"
	"github.com/snakeskin/figrender/log"
	"github.com/urfave/cli"
)

func main() {
	// -v is taken by the per-command verbose flag
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cmd.NewApp()
	if err := app.Run(os.Args); err != nil {
		log.New("figrender").Errorf("error: %s", err.Error())
		os.Exit(1)
	}
}
