// Package tiling splits a rectangular region into smaller
// rectangles, and rectangles into triangles.
//
// Every region carries its absolute placement (Origin), while
// triangle points are expressed in the frame of their parent
// rectangle: the origin is applied once, when drawing.
package tiling

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned for a non positive split count
// or a degenerate rectangle.
var ErrInvalidArgument = errors.New("invalid argument")

// Point is a 2D position.
type Point struct{ X, Y float64 }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Rect is an axis aligned region, placed at Origin.
type Rect struct {
	Origin        Point
	Width, Height float64
}

// Area returns Width * Height.
func (r Rect) Area() float64 { return r.Width * r.Height }

// Center returns the center of the rectangle, in its local frame.
func (r Rect) Center() Point { return Point{r.Width / 2, r.Height / 2} }

func isSize(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func (r Rect) validate() error {
	if !isSize(r.Width) || !isSize(r.Height) {
		return errors.Wrapf(ErrInvalidArgument, "degenerate rectangle %vx%v", r.Width, r.Height)
	}
	return nil
}

func checkParts(parts int) error {
	if parts <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "split count %d", parts)
	}
	return nil
}

// SplitHorizontal slices `r` in `parts` rectangles of equal width,
// from left to right.
func SplitHorizontal(r Rect, parts int) ([]Rect, error) {
	if err := checkParts(parts); err != nil {
		return nil, err
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	width := r.Width / float64(parts)
	out := make([]Rect, parts)
	for i := range out {
		out[i] = Rect{
			Origin: Point{r.Origin.X + float64(i)*width, r.Origin.Y},
			Width:  width,
			Height: r.Height,
		}
	}
	return out, nil
}

// SplitVertical slices `r` in `parts` rectangles of equal height,
// from top to bottom.
func SplitVertical(r Rect, parts int) ([]Rect, error) {
	if err := checkParts(parts); err != nil {
		return nil, err
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	height := r.Height / float64(parts)
	out := make([]Rect, parts)
	for i := range out {
		out[i] = Rect{
			Origin: Point{r.Origin.X, r.Origin.Y + float64(i)*height},
			Width:  r.Width,
			Height: height,
		}
	}
	return out, nil
}
