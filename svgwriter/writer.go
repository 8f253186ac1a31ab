// Serializes shapes into an SVG 1.1 document.
// A Writer must be used in sequence: Begin, any number of
// draw calls, End.
package svgwriter

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/benoitkugler/thingdesigner/svgshape"
	"github.com/pkg/errors"
)

// Version is written in the generator comment of every document.
const Version = "0.1.0"

const (
	svgNamespace = "http://www.w3.org/2000/svg"
	svgDoctype   = `DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd"`
)

var _ svgshape.Drawer = (*Writer)(nil) // assert interface conformance

// Options configures the output document.
type Options struct {
	Width, Height float64 // size of the svg element, in user units

	Generator, Version string // written in the leading comment
	Indent             string // per level indentation, empty for one line
}

// DefaultOptions returns a 300x300 document, matching the demo grid.
func DefaultOptions() Options {
	return Options{
		Width:     300,
		Height:    300,
		Generator: "thingdesigner",
		Version:   Version,
		Indent:    "  ",
	}
}

type state uint8

const (
	created state = iota
	began
	ended
)

func (s state) String() string {
	switch s {
	case created:
		return "created"
	case began:
		return "began"
	case ended:
		return "ended"
	default:
		return "<unknown state>"
	}
}

// Writer writes one SVG document to an underlying io.Writer,
// which it owns until End returns.
// A Writer is not safe for concurrent use.
type Writer struct {
	enc   *xml.Encoder
	opts  Options
	state state
	count int // elements written
}

// New returns a writer ready to Begin.
func New(w io.Writer, opts Options) *Writer {
	enc := xml.NewEncoder(w)
	enc.Indent("", opts.Indent)
	return &Writer{enc: enc, opts: opts}
}

// Count returns the number of shape elements written so far.
func (wr *Writer) Count() int { return wr.count }

// Begin writes the XML prolog and opens the svg element.
// It must be called exactly once, before any draw call.
func (wr *Writer) Begin() error {
	if wr.state != created {
		return errors.Wrapf(svgshape.ErrPrecondition, "Begin called in state %s", wr.state)
	}
	// "--" is not allowed inside an XML comment
	if strings.Contains(wr.opts.Generator, "--") || strings.Contains(wr.opts.Version, "--") {
		return errors.Wrapf(svgshape.ErrPrecondition, "invalid generator comment %q, %q", wr.opts.Generator, wr.opts.Version)
	}
	comment := fmt.Sprintf(" Generator: %s, %s ", wr.opts.Generator, wr.opts.Version)
	tokens := []xml.Token{
		xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="UTF-8"`)},
		xml.CharData("\n"),
		xml.Comment(comment),
		xml.CharData("\n"),
		xml.Directive(svgDoctype),
		xml.CharData("\n"),
		xml.StartElement{
			Name: xml.Name{Local: "svg"},
			Attr: []xml.Attr{
				attr("xmlns", svgNamespace),
				attr("version", "1.1"),
				number("width", wr.opts.Width),
				number("height", wr.opts.Height),
			},
		},
	}
	for _, tok := range tokens {
		if err := wr.enc.EncodeToken(tok); err != nil {
			return errors.Wrap(err, "writing svg prolog")
		}
	}
	wr.state = began
	Logger().Debug("svg document started", "width", wr.opts.Width, "height", wr.opts.Height)
	return nil
}

// End closes the svg element and flushes the output.
// It must be called exactly once, after Begin.
func (wr *Writer) End() error {
	if wr.state != began {
		return errors.Wrapf(svgshape.ErrPrecondition, "End called in state %s", wr.state)
	}
	if err := wr.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: "svg"}}); err != nil {
		return errors.Wrap(err, "closing svg element")
	}
	if err := wr.enc.Flush(); err != nil {
		return errors.Wrap(err, "flushing svg document")
	}
	wr.state = ended
	Logger().Debug("svg document finished", "elements", wr.count)
	return nil
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func number(name string, v float64) xml.Attr {
	return attr(name, svgshape.FormatNumber(v))
}

// element writes a self contained element.
func (wr *Writer) element(name string, attrs ...xml.Attr) error {
	if wr.state != began {
		return errors.Wrapf(svgshape.ErrPrecondition, "drawing %s in state %s", name, wr.state)
	}
	start := xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs}
	if err := wr.enc.EncodeToken(start); err != nil {
		return errors.Wrapf(err, "writing %s", name)
	}
	if err := wr.enc.EncodeToken(start.End()); err != nil {
		return errors.Wrapf(err, "writing %s", name)
	}
	wr.count++
	return nil
}

func fillOpacity(fill bool) string {
	if fill {
		return "1"
	}
	return "0"
}

// DrawLine writes a stroked segment.
func (wr *Writer) DrawLine(l svgshape.Line) error {
	style := fmt.Sprintf("stroke:%s;stroke-linecap:square;stroke-width:%s",
		svgshape.RGBString(l.StrokeColor), svgshape.FormatNumber(l.StrokeThickness))
	return wr.element("line",
		number("x1", l.X1), number("y1", l.Y1),
		number("x2", l.X2), number("y2", l.Y2),
		attr("style", style))
}

// DrawRectangle writes a stroked rectangle.
// The rectangle is always transparent: r.Fill is not used.
func (wr *Writer) DrawRectangle(r svgshape.Rectangle) error {
	style := fmt.Sprintf("fill-opacity:0;stroke:%s;stroke-width:%s",
		svgshape.RGBString(r.StrokeColor), svgshape.FormatNumber(r.StrokeThickness))
	return wr.element("rect",
		number("x", r.X), number("y", r.Y),
		number("width", r.Width), number("height", r.Height),
		attr("style", style))
}

// DrawEllipse writes an ellipse, always stroked in black.
func (wr *Writer) DrawEllipse(e svgshape.Ellipse) error {
	style := fmt.Sprintf("fill-opacity:%s;fill:%s;stroke:rgb(0,0,0);stroke-width:%s",
		fillOpacity(e.Fill), svgshape.RGBString(e.FillColor), svgshape.FormatNumber(e.StrokeThickness))
	return wr.element("ellipse",
		number("cx", e.CX), number("cy", e.CY),
		number("rx", e.RX), number("ry", e.RY),
		attr("style", style))
}

// DrawPath writes a generic path.
func (wr *Writer) DrawPath(p svgshape.Path) error {
	style := fmt.Sprintf("fill-opacity:%s;fill:%s;stroke:%s;stroke-width:%s",
		fillOpacity(p.Fill), svgshape.RGBString(p.FillColor),
		svgshape.RGBString(p.StrokeColor), svgshape.FormatNumber(p.StrokeThickness))
	return wr.element("path", attr("d", p.Data()), attr("style", style))
}

// DrawPolygon writes the closed path of `pg`, translated by its origin.
func (wr *Writer) DrawPolygon(pg svgshape.Polygon) error {
	path, err := pg.ToPath()
	if err != nil {
		return err
	}
	return wr.DrawPath(path)
}

// DrawShape dispatches on the kind of `s`.
func (wr *Writer) DrawShape(s svgshape.Shape) error {
	return svgshape.Draw(wr, s)
}

// Export writes a complete document containing `shapes`.
func Export(w io.Writer, opts Options, shapes []svgshape.Shape) error {
	wr := New(w, opts)
	if err := wr.Begin(); err != nil {
		return err
	}
	if err := svgshape.DrawAll(wr, shapes); err != nil {
		return err
	}
	return wr.End()
}
