package svgwriter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/benoitkugler/thingdesigner/svgshape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawOne returns the single element written by `draw`.
func drawOne(t *testing.T, draw func(wr *Writer) error) Element {
	var buf bytes.Buffer
	wr := New(&buf, DefaultOptions())
	require.NoError(t, wr.Begin())
	require.NoError(t, draw(wr))
	require.NoError(t, wr.End())

	doc, err := ReadDocument(&buf)
	require.NoError(t, err)
	require.Len(t, doc.Elements, 1)
	return doc.Elements[0]
}

func TestEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	wr := New(&buf, Options{Width: 640, Height: 480, Generator: "test", Version: "1.2"})
	require.NoError(t, wr.Begin())
	require.NoError(t, wr.End())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, "<!-- Generator: test, 1.2 -->")
	assert.Contains(t, out, `<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">`)
	assert.Contains(t, out, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="640" height="480"></svg>`)

	doc, err := ReadDocument(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "1.1", doc.Version)
	assert.Equal(t, 640., doc.Width)
	assert.Equal(t, 480., doc.Height)
	assert.Empty(t, doc.Elements)
}

func TestDrawLine(t *testing.T) {
	e := drawOne(t, func(wr *Writer) error {
		return wr.DrawLine(svgshape.Line{X2: 10, StrokeThickness: 2, StrokeColor: svgshape.Red})
	})
	assert.Equal(t, "line", e.Name)
	assert.Equal(t, "0", e.Attrs["x1"])
	assert.Equal(t, "0", e.Attrs["y1"])
	assert.Equal(t, "10", e.Attrs["x2"])
	assert.Equal(t, "0", e.Attrs["y2"])
	assert.Contains(t, e.Attrs["style"], "stroke:rgb(255,0,0)")
	assert.Contains(t, e.Attrs["style"], "stroke-width:2")
}

func TestDrawLineDefaultColor(t *testing.T) {
	e := drawOne(t, func(wr *Writer) error {
		return wr.DrawLine(svgshape.Line{X1: 1, Y1: 2, X2: 3, Y2: 4, StrokeThickness: 0.5})
	})
	assert.Equal(t, "stroke:rgb(0,0,0);stroke-linecap:square;stroke-width:0.5", e.Attrs["style"])
}

func TestDrawRectangleIgnoresFill(t *testing.T) {
	e := drawOne(t, func(wr *Writer) error {
		return wr.DrawRectangle(svgshape.Rectangle{X: 1, Y: 2, Width: 30, Height: 40, StrokeThickness: 1, Fill: true})
	})
	assert.Equal(t, "rect", e.Name)
	assert.Equal(t, map[string]string{
		"x": "1", "y": "2", "width": "30", "height": "40",
		"style": "fill-opacity:0;stroke:rgb(0,0,0);stroke-width:1",
	}, e.Attrs)
}

func TestDrawEllipse(t *testing.T) {
	e := drawOne(t, func(wr *Writer) error {
		return wr.DrawEllipse(svgshape.Ellipse{CX: 5, CY: 6, RX: 7, RY: 8.5, StrokeThickness: 1, Fill: true, FillColor: svgshape.Yellow})
	})
	assert.Equal(t, "ellipse", e.Name)
	assert.Equal(t, "8.5", e.Attrs["ry"])
	assert.Equal(t, "fill-opacity:1;fill:rgb(255,255,0);stroke:rgb(0,0,0);stroke-width:1", e.Attrs["style"])

	e = drawOne(t, func(wr *Writer) error {
		return wr.DrawEllipse(svgshape.Ellipse{RX: 1, RY: 1, StrokeThickness: 3})
	})
	assert.Equal(t, "fill-opacity:0;fill:rgb(0,0,0);stroke:rgb(0,0,0);stroke-width:3", e.Attrs["style"])
}

func TestDrawPolygon(t *testing.T) {
	e := drawOne(t, func(wr *Writer) error {
		return wr.DrawPolygon(svgshape.Polygon{
			Origin:          svgshape.Point{X: 100, Y: 100},
			Points:          []svgshape.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 5}},
			StrokeThickness: 1,
			StrokeColor:     svgshape.White,
			FillColor:       svgshape.Black,
		})
	})
	assert.Equal(t, "path", e.Name)
	assert.Equal(t, "M100 100 L110 100 L105 105 L100 100", e.Attrs["d"])
	assert.Equal(t, "fill-opacity:1;fill:rgb(0,0,0);stroke:rgb(255,255,255);stroke-width:1", e.Attrs["style"])
}

func TestDrawShape(t *testing.T) {
	e := drawOne(t, func(wr *Writer) error {
		return wr.DrawShape(svgshape.Line{X2: 1, StrokeThickness: 1})
	})
	assert.Equal(t, "line", e.Name)

	var buf bytes.Buffer
	wr := New(&buf, DefaultOptions())
	require.NoError(t, wr.Begin())
	err := wr.DrawShape(nil)
	assert.True(t, errors.Is(err, svgshape.ErrNotImplemented))
	assert.Equal(t, 0, wr.Count())
}

func TestStateMachine(t *testing.T) {
	var buf bytes.Buffer
	wr := New(&buf, DefaultOptions())

	line := svgshape.Line{X2: 1}
	assert.True(t, errors.Is(wr.DrawLine(line), svgshape.ErrPrecondition))
	assert.True(t, errors.Is(wr.End(), svgshape.ErrPrecondition))
	assert.Zero(t, buf.Len())

	require.NoError(t, wr.Begin())
	assert.True(t, errors.Is(wr.Begin(), svgshape.ErrPrecondition))
	require.NoError(t, wr.DrawLine(line))
	require.NoError(t, wr.End())

	assert.True(t, errors.Is(wr.DrawLine(line), svgshape.ErrPrecondition))
	assert.True(t, errors.Is(wr.End(), svgshape.ErrPrecondition))
	assert.Equal(t, 1, wr.Count())
}

func TestExport(t *testing.T) {
	shapes := []svgshape.Shape{
		svgshape.Line{X2: 10, StrokeThickness: 1},
		svgshape.Rectangle{Width: 5, Height: 5, StrokeThickness: 1},
		svgshape.Ellipse{RX: 2, RY: 3, StrokeThickness: 1},
		svgshape.Polygon{Points: []svgshape.Point{{}, {X: 1}, {Y: 1}}, StrokeThickness: 1},
		svgshape.Path{Start: svgshape.Point{X: 1, Y: 1}, Commands: []svgshape.PathCommand{
			svgshape.LineTo{P: svgshape.Point{X: 2, Y: 0}, Relative: true},
		}},
	}
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, DefaultOptions(), shapes))

	doc, err := ReadDocument(&buf)
	require.NoError(t, err)
	assert.Equal(t, 300., doc.Width)
	assert.Equal(t, 1, doc.Count("line"))
	assert.Equal(t, 1, doc.Count("rect"))
	assert.Equal(t, 1, doc.Count("ellipse"))
	assert.Equal(t, 2, doc.Count("path"))
	assert.Equal(t, "M1 1 l2 0", doc.Elements[4].Attrs["d"])
}

func TestExportStopsOnError(t *testing.T) {
	var buf bytes.Buffer
	err := Export(&buf, DefaultOptions(), []svgshape.Shape{svgshape.Polygon{}})
	assert.True(t, errors.Is(err, svgshape.ErrPrecondition))
}

func TestReadDocumentInvalid(t *testing.T) {
	_, err := ReadDocument(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ReadDocument(strings.NewReader("<html></html>"))
	assert.Error(t, err)

	_, err = ReadDocument(strings.NewReader(`<svg width="abc"></svg>`))
	assert.Error(t, err)
}

func TestInvalidGeneratorComment(t *testing.T) {
	for _, opts := range []Options{
		{Width: 10, Height: 10, Generator: "a--b", Version: "1"},
		{Width: 10, Height: 10, Generator: "a", Version: "1--2"},
	} {
		var buf bytes.Buffer
		wr := New(&buf, opts)
		err := wr.Begin()
		assert.True(t, errors.Is(err, svgshape.ErrPrecondition))
		assert.Zero(t, buf.Len())
		assert.True(t, errors.Is(wr.DrawLine(svgshape.Line{}), svgshape.ErrPrecondition))
	}

	var buf bytes.Buffer
	wr := New(&buf, Options{Width: 10, Height: 10, Generator: "a-b", Version: "1.0-rc"})
	require.NoError(t, wr.Begin())
	require.NoError(t, wr.End())
	_, err := ReadDocument(&buf)
	assert.NoError(t, err)
}
