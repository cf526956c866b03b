// Package grid describes rendering experiments as ordered sets of literal-valued
// dimensions and enumerates their Cartesian product.
package grid

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Default extension for the renderer's raw output.
const DefaultExtension = "exr"

// A Dimension is one named experiment axis.
type Dimension struct {
	// Name identifies the dimension inside a Point and in scene templates.
	Name string `json:"name"`

	// Label, if set, is written before the value in output filenames and
	// progress messages.
	Label string `json:"label,omitempty"`

	// Define is the renderer variable receiving the value. Dimensions without
	// a define only affect the scene file and the output name.
	Define string `json:"define,omitempty"`

	// Literal values in enumeration order.
	Values []string `json:"values"`
}

// The display name of the dimension.
func (d Dimension) label() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Name
}

// A Define is a -D<key>=<value> renderer variable.
type Define struct {
	Key   string
	Value string
}

// An Experiment is a parameter grid producing one render per point.
type Experiment struct {
	// Short identifier, e.g. "fig6".
	Name string `json:"name"`

	// Human readable title used in progress messages.
	Title string `json:"title,omitempty"`

	// Output filename prefix.
	Prefix string `json:"prefix"`

	// Scene file template. Occurrences of {name} are replaced by the value
	// of the named dimension.
	Scene string `json:"scene"`

	// Extension of the raw renderer output.
	Extension string `json:"extension,omitempty"`

	// Dimensions in nesting order; the first one is the outermost loop.
	Dimensions []Dimension `json:"dimensions"`

	// Dimension names in the order they appear in output filenames. Defaults
	// to the declaration order.
	FileOrder []string `json:"file_order,omitempty"`

	// Fixed defines passed to every render after the dimension defines.
	Defines map[string]string `json:"defines,omitempty"`
}

// Check that the experiment is well-formed.
func (e *Experiment) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("grid: experiment name is required")
	}
	if e.Prefix == "" {
		return fmt.Errorf("grid: experiment %q: prefix is required", e.Name)
	}
	if len(e.Dimensions) == 0 {
		return fmt.Errorf("grid: experiment %q: at least one dimension is required", e.Name)
	}

	names := make([]string, 0, len(e.Dimensions))
	for idx, dim := range e.Dimensions {
		if dim.Name == "" {
			return fmt.Errorf("grid: experiment %q: dimension %d has no name", e.Name, idx)
		}
		if slices.Contains(names, dim.Name) {
			return fmt.Errorf("grid: experiment %q: duplicate dimension %q", e.Name, dim.Name)
		}
		if len(dim.Values) == 0 {
			return fmt.Errorf("grid: experiment %q: dimension %q has no values", e.Name, dim.Name)
		}
		names = append(names, dim.Name)
	}

	if len(e.FileOrder) != 0 {
		order := slices.Clone(e.FileOrder)
		slices.Sort(order)
		slices.Sort(names)
		if !slices.Equal(order, names) {
			return fmt.Errorf("grid: experiment %q: file_order must list every dimension exactly once", e.Name)
		}
	}

	return nil
}

// Len returns the number of points in the grid.
func (e *Experiment) Len() int {
	if len(e.Dimensions) == 0 {
		return 0
	}
	n := 1
	for _, dim := range e.Dimensions {
		n *= len(dim.Values)
	}
	return n
}

// Points returns the Cartesian product of the dimensions. The first declared
// dimension varies slowest. Every call returns the same sequence.
func (e *Experiment) Points() []Point {
	total := e.Len()
	if total == 0 {
		return nil
	}

	points := make([]Point, 0, total)
	indices := make([]int, len(e.Dimensions))
	for {
		coords := make([]Coord, len(e.Dimensions))
		for d, dim := range e.Dimensions {
			coords[d] = Coord{Name: dim.Name, Value: dim.Values[indices[d]]}
		}
		points = append(points, Point{Coords: coords})

		// Odometer increment, innermost dimension first
		d := len(indices) - 1
		for ; d >= 0; d-- {
			indices[d]++
			if indices[d] < len(e.Dimensions[d].Values) {
				break
			}
			indices[d] = 0
		}
		if d < 0 {
			return points
		}
	}
}

// FileName builds the output filename for p: the prefix followed by each
// dimension value in file order, separated by underscores.
func (e *Experiment) FileName(p Point) string {
	var b strings.Builder
	b.WriteString(e.Prefix)
	for _, dim := range e.fileOrder() {
		b.WriteByte('_')
		if dim.Label != "" {
			b.WriteString(dim.Label)
			b.WriteByte('_')
		}
		value, _ := p.Value(dim.Name)
		b.WriteString(value)
	}
	b.WriteByte('.')
	b.WriteString(e.extension())
	return b.String()
}

// SceneFile expands the scene template for p.
func (e *Experiment) SceneFile(p Point) string {
	scene := e.Scene
	for _, c := range p.Coords {
		scene = strings.ReplaceAll(scene, "{"+c.Name+"}", c.Value)
	}
	return scene
}

// RenderDefines returns the renderer variables for p: dimension defines in
// declaration order followed by the fixed defines sorted by key.
func (e *Experiment) RenderDefines(p Point) []Define {
	defines := make([]Define, 0, len(e.Dimensions)+len(e.Defines))
	for _, dim := range e.Dimensions {
		if dim.Define == "" {
			continue
		}
		value, _ := p.Value(dim.Name)
		defines = append(defines, Define{Key: dim.Define, Value: value})
	}

	keys := maps.Keys(e.Defines)
	slices.Sort(keys)
	for _, key := range keys {
		defines = append(defines, Define{Key: key, Value: e.Defines[key]})
	}
	return defines
}

// Describe formats p for progress messages, e.g. "material = diffuse, shape = sphere".
func (e *Experiment) Describe(p Point) string {
	parts := make([]string, 0, len(p.Coords))
	for _, dim := range e.fileOrder() {
		value, _ := p.Value(dim.Name)
		parts = append(parts, dim.label()+" = "+value)
	}
	return strings.Join(parts, ", ")
}

// The display title of the experiment.
func (e *Experiment) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Name
}

func (e *Experiment) extension() string {
	if e.Extension == "" {
		return DefaultExtension
	}
	return strings.TrimPrefix(e.Extension, ".")
}

func (e *Experiment) fileOrder() []Dimension {
	if len(e.FileOrder) == 0 {
		return e.Dimensions
	}

	dims := make([]Dimension, 0, len(e.FileOrder))
	for _, name := range e.FileOrder {
		for _, dim := range e.Dimensions {
			if dim.Name == name {
				dims = append(dims, dim)
				break
			}
		}
	}
	return dims
}
