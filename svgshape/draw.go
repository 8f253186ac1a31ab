package svgshape

import (
	"github.com/pkg/errors"
)

// Drawer knows how to do the actual draw operations.
// Polygons are reduced to paths before being sent to the Drawer.
type Drawer interface {
	DrawLine(l Line) error
	DrawRectangle(r Rectangle) error
	DrawEllipse(e Ellipse) error
	DrawPath(p Path) error
}

// Draw dispatches `s` to the matching method of `d`.
func Draw(d Drawer, s Shape) error {
	switch s := s.(type) {
	case Line:
		return d.DrawLine(s)
	case Rectangle:
		return d.DrawRectangle(s)
	case Ellipse:
		return d.DrawEllipse(s)
	case Polygon:
		path, err := s.ToPath()
		if err != nil {
			return err
		}
		return d.DrawPath(path)
	case Path:
		return d.DrawPath(s)
	default:
		return errors.Wrapf(ErrNotImplemented, "%T", s)
	}
}

// DrawAll draws the shapes in order, stopping at the first error.
func DrawAll(d Drawer, shapes []Shape) error {
	for i, s := range shapes {
		if err := Draw(d, s); err != nil {
			return errors.Wrapf(err, "shape %d", i)
		}
	}
	return nil
}
