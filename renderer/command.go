package renderer

import (
	"fmt"
	"strconv"
	"strings"
)

// Default external tools.
var (
	DefaultRenderCmd  = []string{"mitsuba"}
	DefaultToneMapCmd = []string{"mtsutil", "tonemap"}
)

// A Command is an external program and its arguments. It is executed
// directly, never through a shell, so values need no quoting.
type Command struct {
	Path string
	Args []string
}

// String renders the command line for logging.
func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// CommandBuilder formats the render and tone-map invocations for a job.
type CommandBuilder struct {
	// Renderer executable followed by any leading arguments.
	RenderCmd []string

	// Tone-mapping executable followed by any leading arguments.
	ToneMapCmd []string
}

// NewCommandBuilder returns a builder for the default mitsuba tools.
func NewCommandBuilder() CommandBuilder {
	return CommandBuilder{
		RenderCmd:  DefaultRenderCmd,
		ToneMapCmd: DefaultToneMapCmd,
	}
}

// ParseToolCmd splits a tool flag such as "mtsutil tonemap" into its fields.
func ParseToolCmd(cmd string) []string {
	return strings.Fields(cmd)
}

// Render returns the renderer invocation for job:
//
//	<renderer> <scene> -o <output> -p <threads> -Dspp=.. -Dwidth=.. -Dheigth=.. -D<key>=<value>...
func (b CommandBuilder) Render(opts Options, job Job) Command {
	args := append([]string{}, b.RenderCmd[1:]...)
	args = append(args,
		job.SceneFile,
		"-o", job.OutputFile,
		"-p", strconv.Itoa(opts.Threads),
		define("spp", strconv.Itoa(opts.SamplesPerPixel)),
		define("width", strconv.Itoa(opts.Width)),
		// The scene files declare the misspelled "heigth" parameter.
		define("heigth", strconv.Itoa(opts.Height)),
	)
	for _, d := range job.Defines {
		args = append(args, define(d.Key, d.Value))
	}
	return Command{Path: b.RenderCmd[0], Args: args}
}

// ToneMap returns the tone-mapping invocation for job.
func (b CommandBuilder) ToneMap(job Job) Command {
	args := append([]string{}, b.ToneMapCmd[1:]...)
	args = append(args, job.OutputFile)
	return Command{Path: b.ToneMapCmd[0], Args: args}
}

// Validate checks that both tools are set.
func (b CommandBuilder) Validate() error {
	if len(b.RenderCmd) == 0 || b.RenderCmd[0] == "" {
		return fmt.Errorf("%w: renderer command is empty", ErrInvalidOptions)
	}
	if len(b.ToneMapCmd) == 0 || b.ToneMapCmd[0] == "" {
		return fmt.Errorf("%w: tone-map command is empty", ErrInvalidOptions)
	}
	return nil
}

func define(key, value string) string {
	return "-D" + key + "=" + value
}
