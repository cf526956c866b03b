package renderer

import "github.com/snakeskin/figrender/grid"

// A Job is the render of a single grid point.
type Job struct {
	// Position in the enumeration order, starting at 0.
	Index int

	Point      grid.Point
	SceneFile  string
	OutputFile string
	Defines    []grid.Define
}

// Jobs expands exp into one job per grid point, in enumeration order.
func Jobs(exp *grid.Experiment, outputFolder string) []Job {
	points := exp.Points()
	jobs := make([]Job, len(points))
	for idx, p := range points {
		jobs[idx] = Job{
			Index:      idx,
			Point:      p,
			SceneFile:  exp.SceneFile(p),
			OutputFile: OutputPath(outputFolder, exp, p),
			Defines:    exp.RenderDefines(p),
		}
	}
	return jobs
}
