package svgshape

import (
	"github.com/pkg/errors"
)

var (
	// ErrPrecondition is returned when a drawing operation is used
	// out of order, or when a shape is malformed.
	ErrPrecondition = errors.New("precondition violation")

	// ErrNotImplemented is returned by Draw for unsupported shapes.
	ErrNotImplemented = errors.New("shape not implemented")
)

// Shape is one of Line, Rectangle, Ellipse, Polygon or Path.
type Shape interface {
	isShape()
}

// Line is a straight stroked segment.
type Line struct {
	X1, Y1, X2, Y2  float64
	StrokeThickness float64
	StrokeColor     Color
}

// Rectangle is an axis aligned stroked rectangle.
type Rectangle struct {
	X, Y, Width, Height float64
	StrokeThickness     float64
	Fill                bool
	StrokeColor         Color
}

// Ellipse is an axis aligned ellipse, centered on (CX, CY).
type Ellipse struct {
	CX, CY, RX, RY  float64
	StrokeThickness float64
	Fill            bool
	FillColor       Color
}

// Polygon is a closed shape whose Points are expressed relatively
// to Origin, its placement offset.
type Polygon struct {
	Origin          Point
	Points          []Point
	StrokeThickness float64
	StrokeColor     Color
	FillColor       Color // nil disables filling
}

func (Line) isShape()      {}
func (Rectangle) isShape() {}
func (Ellipse) isShape()   {}
func (Polygon) isShape()   {}
func (Path) isShape()      {}

// ToPath translates the points by the placement offset
// and returns the closed path going through them.
func (pg Polygon) ToPath() (Path, error) {
	if len(pg.Points) < 3 {
		return Path{}, errors.Wrapf(ErrPrecondition, "polygon with %d points", len(pg.Points))
	}
	first := pg.Points[0].Add(pg.Origin)
	commands := make([]PathCommand, 0, len(pg.Points))
	for _, p := range pg.Points[1:] {
		commands = append(commands, LineTo{P: p.Add(pg.Origin)})
	}
	commands = append(commands, LineTo{P: first})
	return Path{
		Start:           first,
		Commands:        commands,
		StrokeThickness: pg.StrokeThickness,
		Fill:            pg.FillColor != nil,
		StrokeColor:     pg.StrokeColor,
		FillColor:       pg.FillColor,
	}, nil
}
