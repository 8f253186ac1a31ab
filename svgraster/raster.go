// Implements a raster backend to preview shapes,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"

	"github.com/benoitkugler/thingdesigner/svgshape"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ svgshape.Drawer = (*Renderer)(nil) // assert interface conformance

// miter cutoff, as the SVG default
var miterLimit = fixed.Int26_6(4 * 64)

// Renderer draws shapes with the same conventions as the svgwriter output:
// rectangles are never filled, ellipses are stroked in black.
type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer drawing with `scanner`,
// for example a rasterx.ScannerGV.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
}

// RasterShapes uses a ScannerGV instance to render the
// shapes into a transparent image and returns it
func RasterShapes(width, height int, shapes []svgshape.Shape) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	renderer := NewRenderer(width, height, scanner)
	if err := svgshape.DrawAll(renderer, shapes); err != nil {
		return nil, err
	}
	return img, nil
}

// toFixedP converts two floats to a fixed point.
func toFixedP(p svgshape.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

func orBlack(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}

func (rd *Renderer) setStroke(thickness float64, capFn rasterx.CapFunc, join rasterx.JoinMode) {
	rd.dasher.Clear()
	rd.dasher.SetStroke(fixed.Int26_6(thickness*64), miterLimit, capFn, capFn, rasterx.FlatGap, join, nil, 0)
}

func (rd *Renderer) stroke(c color.Color) {
	rd.dasher.SetColor(orBlack(c))
	rd.dasher.Draw()
}

func (rd *Renderer) fill(c color.Color) {
	rd.filler.SetColor(orBlack(c))
	rd.filler.Draw()
}

func (rd *Renderer) DrawLine(l svgshape.Line) error {
	rd.setStroke(l.StrokeThickness, rasterx.SquareCap, rasterx.Miter)
	rd.dasher.Start(toFixedP(svgshape.Point{X: l.X1, Y: l.Y1}))
	rd.dasher.Line(toFixedP(svgshape.Point{X: l.X2, Y: l.Y2}))
	rd.dasher.Stop(false)
	rd.stroke(l.StrokeColor)
	return nil
}

func (rd *Renderer) DrawRectangle(r svgshape.Rectangle) error {
	rd.setStroke(r.StrokeThickness, rasterx.ButtCap, rasterx.Miter)
	rasterx.AddRect(r.X, r.Y, r.X+r.Width, r.Y+r.Height, 0, rd.dasher)
	rd.stroke(r.StrokeColor)
	return nil
}

func (rd *Renderer) DrawEllipse(e svgshape.Ellipse) error {
	if e.Fill {
		rd.filler.Clear()
		rasterx.AddEllipse(e.CX, e.CY, e.RX, e.RY, 0, rd.filler)
		rd.fill(e.FillColor)
	}
	rd.setStroke(e.StrokeThickness, rasterx.ButtCap, rasterx.Miter)
	rasterx.AddEllipse(e.CX, e.CY, e.RX, e.RY, 0, rd.dasher)
	rd.stroke(color.Black)
	return nil
}

// addSubpaths sends the absolute points of `p` to `adder`.
func addSubpaths(p svgshape.Path, adder rasterx.Adder, closeLoop bool) {
	for _, sub := range p.Subpaths() {
		adder.Start(toFixedP(sub[0]))
		for _, pt := range sub[1:] {
			adder.Line(toFixedP(pt))
		}
		adder.Stop(closeLoop)
	}
}

func (rd *Renderer) DrawPath(p svgshape.Path) error {
	if p.Fill {
		rd.filler.Clear()
		rd.filler.SetWinding(true)
		addSubpaths(p, rd.filler, true)
		rd.fill(p.FillColor)
	}
	rd.setStroke(p.StrokeThickness, rasterx.ButtCap, rasterx.Miter)
	addSubpaths(p, rd.dasher, false)
	rd.stroke(p.StrokeColor)
	return nil
}
