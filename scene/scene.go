// Package scene holds the tiles displayed by the demo window:
// their colors, and the lookup used to toggle the tile under a click.
package scene

import (
	"image/color"
	"sort"

	"github.com/benoitkugler/thingdesigner/svgshape"
	"github.com/benoitkugler/thingdesigner/tiling"
	"github.com/dhconnelly/rtreego"
	"github.com/pkg/errors"
)

// half size of the search rectangle used by TileAt
const hitTolerance = 0.005

// Tile is a placed triangle and its current fill color.
type Tile struct {
	Triangle tiling.Triangle
	Fill     color.Color
}

// Scene is a set of tiles, indexed for point lookups.
// The geometry is fixed by New: only the fills change, through Toggle.
// A Scene is not safe for concurrent use.
type Scene struct {
	tiles []Tile

	tree *rtreego.Rtree
}

// spatialTile binds a tile index to its bounding box.
type spatialTile struct {
	index  int
	bounds rtreego.Rect
}

func (st spatialTile) Bounds() rtreego.Rect { return st.bounds }

func boundingBox(tri tiling.Triangle) (rtreego.Rect, error) {
	pts := tri.Absolute()
	minX, minY, maxX, maxY := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return rtreego.NewRect(rtreego.Point{minX, minY}, []float64{maxX - minX, maxY - minY})
}

// New returns a scene where every triangle is filled in black.
func New(tris []tiling.Triangle) (*Scene, error) {
	s := &Scene{tiles: make([]Tile, len(tris))}
	spatials := make([]rtreego.Spatial, len(tris))
	for i, tri := range tris {
		bb, err := boundingBox(tri)
		if err != nil {
			return nil, errors.Wrapf(tiling.ErrInvalidArgument, "tile %d: %s", i, err)
		}
		s.tiles[i] = Tile{Triangle: tri, Fill: svgshape.Black}
		spatials[i] = spatialTile{index: i, bounds: bb}
	}
	s.tree = rtreego.NewTree(2, 25, 50, spatials...)
	return s, nil
}

// Len returns the number of tiles.
func (s *Scene) Len() int { return len(s.tiles) }

// Tiles returns a copy of the tiles, in creation order.
func (s *Scene) Tiles() []Tile { return append([]Tile(nil), s.tiles...) }

// Toggle switches the fill of the tile `i` between yellow and black.
func (s *Scene) Toggle(i int) error {
	if i < 0 || i >= len(s.tiles) {
		return errors.Wrapf(tiling.ErrInvalidArgument, "tile index %d out of range [0, %d)", i, len(s.tiles))
	}
	if s.tiles[i].Fill == svgshape.Yellow {
		s.tiles[i].Fill = svgshape.Black
	} else {
		s.tiles[i].Fill = svgshape.Yellow
	}
	return nil
}

// TileAt returns the index of the tile containing `p`.
// When p is on an edge shared by several tiles, the first one is returned.
func (s *Scene) TileAt(p tiling.Point) (int, bool) {
	bb, _ := rtreego.NewRect(rtreego.Point{p.X - hitTolerance, p.Y - hitTolerance}, []float64{2 * hitTolerance, 2 * hitTolerance})
	candidates := s.tree.SearchIntersect(bb)

	var matches []int
	for _, spatial := range candidates {
		index := spatial.(spatialTile).index
		if s.tiles[index].Triangle.Contains(p) {
			matches = append(matches, index)
		}
	}
	if len(matches) == 0 {
		return 0, false
	}
	sort.Ints(matches)
	return matches[0], true
}

// Click toggles the tile under `p`, returning false if there is none.
func (s *Scene) Click(p tiling.Point) bool {
	i, ok := s.TileAt(p)
	if !ok {
		return false
	}
	_ = s.Toggle(i) // i is in range
	return true
}

// Shapes returns one polygon per tile, stroked in white.
func (s *Scene) Shapes(thickness float64) []svgshape.Shape {
	out := make([]svgshape.Shape, len(s.tiles))
	for i, tile := range s.tiles {
		tri := tile.Triangle
		points := make([]svgshape.Point, len(tri.Points))
		for j, p := range tri.Points {
			points[j] = svgshape.Point{X: p.X, Y: p.Y}
		}
		out[i] = svgshape.Polygon{
			Origin:          svgshape.Point{X: tri.Origin.X, Y: tri.Origin.Y},
			Points:          points,
			StrokeThickness: thickness,
			StrokeColor:     svgshape.White,
			FillColor:       tile.Fill,
		}
	}
	return out
}
