// Implements an abstract representation of
// the shapes exported by thingdesigner, which can then be consumed
// by a drawing backend (svg writer, rasterizer or pdf writer).
package svgshape

import (
	"strings"
)

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
)

// letters are the absolute forms; relative commands use the lower case.
var commandLetters = [...]byte{
	pathMoveTo: 'M',
	pathLineTo: 'L',
}

// PathCommand groups the supported SVG path commands.
type PathCommand interface {
	command() pathCommand
	point() (Point, bool)
	String() string
}

// Point is a 2D position, in user units.
type Point struct{ X, Y float64 }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// MoveTo starts a new sub-path at P.
// When Relative is true, P is an offset from the current point.
type MoveTo struct {
	P        Point
	Relative bool
}

// LineTo draws a straight segment from the current point to P.
// When Relative is true, P is an offset from the current point.
type LineTo struct {
	P        Point
	Relative bool
}

func (MoveTo) command() pathCommand { return pathMoveTo }
func (LineTo) command() pathCommand { return pathLineTo }

func (op MoveTo) point() (Point, bool) { return op.P, op.Relative }
func (op LineTo) point() (Point, bool) { return op.P, op.Relative }

func (op MoveTo) String() string { return formatCommand(op) }
func (op LineTo) String() string { return formatCommand(op) }

// formatCommand writes the command letter immediately followed by "X Y".
func formatCommand(op PathCommand) string {
	letter := commandLetters[op.command()]
	p, relative := op.point()
	if relative {
		letter += 'a' - 'A'
	}
	return string(letter) + FormatNumber(p.X) + " " + FormatNumber(p.Y)
}

// Path is a generic stroked (and optionally filled) path.
// Its data always starts with an implicit MoveTo to Start.
type Path struct {
	Start           Point
	Commands        []PathCommand
	StrokeThickness float64
	Fill            bool
	StrokeColor     Color
	FillColor       Color
}

// Data returns the content of the SVG "d" attribute.
func (p Path) Data() string {
	chunks := make([]string, 0, len(p.Commands)+1)
	chunks = append(chunks, MoveTo{P: p.Start}.String())
	for _, op := range p.Commands {
		chunks = append(chunks, op.String())
	}
	return strings.Join(chunks, " ")
}

// Subpaths resolves the relative commands and returns
// the absolute points of the path, split at every MoveTo.
func (p Path) Subpaths() [][]Point {
	current := []Point{p.Start}
	var out [][]Point
	cursor := p.Start
	for _, op := range p.Commands {
		pt, relative := op.point()
		if relative {
			pt = cursor.Add(pt)
		}
		cursor = pt
		switch op.command() {
		case pathMoveTo:
			out = append(out, current)
			current = []Point{pt}
		case pathLineTo:
			current = append(current, pt)
		}
	}
	return append(out, current)
}
