package tiling

import (
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/pkg/errors"
)

// Triangle is expressed in the local frame of the rectangle
// it was cut from, which is placed at Origin.
type Triangle struct {
	Origin Point
	Points [3]Point
}

// Absolute returns the points translated by Origin.
func (t Triangle) Absolute() [3]Point {
	return [3]Point{
		t.Points[0].Add(t.Origin),
		t.Points[1].Add(t.Origin),
		t.Points[2].Add(t.Origin),
	}
}

// cross returns the z component of (b-a) x (c-a).
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Area returns the (unsigned) area of the triangle.
func (t Triangle) Area() float64 {
	return math.Abs(cross(t.Points[0], t.Points[1], t.Points[2])) / 2
}

// Contains returns true if the absolute point `p` is inside
// the placed triangle, or on its boundary.
func (t Triangle) Contains(p Point) bool {
	a := t.Absolute()
	d1 := cross(a[0], a[1], p)
	d2 := cross(a[1], a[2], p)
	d3 := cross(a[2], a[0], p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// Triangulate cuts `r` along its diagonals, returning
// the north, west, south and east triangles, in this order.
// All of them share the center of `r` and its origin.
func Triangulate(r Rect) ([]Triangle, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	w, h, c := r.Width, r.Height, r.Center()
	return []Triangle{
		{Origin: r.Origin, Points: [3]Point{{0, 0}, {w, 0}, c}}, // north
		{Origin: r.Origin, Points: [3]Point{{0, 0}, c, {0, h}}}, // west
		{Origin: r.Origin, Points: [3]Point{{0, h}, c, {w, h}}}, // south
		{Origin: r.Origin, Points: [3]Point{{w, 0}, c, {w, h}}}, // east
	}, nil
}

// Grid splits `r` in `cols` columns, each column in `rows` cells,
// and triangulates every cell. Triangles are returned column by column.
func Grid(r Rect, cols, rows int) ([]Triangle, error) {
	columns, err := SplitHorizontal(r, cols)
	if err != nil {
		return nil, err
	}
	out := make([]Triangle, 0, cols*rows*4)
	for _, column := range columns {
		cells, err := SplitVertical(column, rows)
		if err != nil {
			return nil, err
		}
		for _, cell := range cells {
			tris, err := Triangulate(cell)
			if err != nil {
				return nil, err
			}
			out = append(out, tris...)
		}
	}
	return out, nil
}

// Demo parameters: a 300x300 square cut in 4x4 cells.
const (
	DemoSize = 300
	DemoCols = 4
	DemoRows = 4
)

// DemoGrid returns the 64 triangles of the demo window.
func DemoGrid() []Triangle {
	out, err := Grid(Rect{Width: DemoSize, Height: DemoSize}, DemoCols, DemoRows)
	if err != nil { // constant input
		panic(err)
	}
	return out
}

func toContour(t Triangle) polyclip.Contour {
	a := t.Absolute()
	return polyclip.Contour{{X: a[0].X, Y: a[0].Y}, {X: a[1].X, Y: a[1].Y}, {X: a[2].X, Y: a[2].Y}}
}

// contourArea uses the shoelace formula.
func contourArea(c polyclip.Contour) float64 {
	var s float64
	for i := range c {
		j := (i + 1) % len(c)
		s += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return math.Abs(s) / 2
}

// Overlap returns the area of the intersection of the two placed triangles.
func Overlap(a, b Triangle) float64 {
	pa, pb := polyclip.Polygon{toContour(a)}, polyclip.Polygon{toContour(b)}
	if !pa.BoundingBox().Overlaps(pb.BoundingBox()) {
		return 0
	}
	var area float64
	for _, c := range pa.Construct(polyclip.INTERSECTION, pb) {
		area += contourArea(c)
	}
	return area
}

// CheckOverlaps returns an error for the first pair of triangles
// whose intersection area is larger than `tolerance`.
func CheckOverlaps(tris []Triangle, tolerance float64) error {
	for i := range tris {
		for j := i + 1; j < len(tris); j++ {
			if area := Overlap(tris[i], tris[j]); area > tolerance {
				return errors.Errorf("triangles %d and %d overlap (area %v)", i, j, area)
			}
		}
	}
	return nil
}
