package grid

import "strings"

// A Coord is the value taken by one dimension.
type Coord struct {
	Name  string
	Value string
}

// A Point is one combination of dimension values, in dimension order.
type Point struct {
	Coords []Coord
}

// Value returns the value of the named dimension.
func (p Point) Value(name string) (string, bool) {
	for _, c := range p.Coords {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

// Values returns the coordinate values in dimension order.
func (p Point) Values() []string {
	values := make([]string, len(p.Coords))
	for idx, c := range p.Coords {
		values[idx] = c.Value
	}
	return values
}

func (p Point) String() string {
	parts := make([]string, len(p.Coords))
	for idx, c := range p.Coords {
		parts[idx] = c.Name + "=" + c.Value
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
