// Implements a PDF backend to export shapes,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"io"

	"github.com/benoitkugler/thingdesigner/svgshape"
	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
)

var _ svgshape.Drawer = Renderer{} // assert interface conformance

// Renderer draws on the current page of a PDF document,
// with the same conventions as the svgwriter output.
// Errors are accumulated by gofpdf, see RenderShapes.
type Renderer struct {
	pdf *gofpdf.Fpdf
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

// NewDocument returns a one page document of the given size, in points,
// using the SVG coordinate system (origin at the top left corner).
func NewDocument(width, height float64) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf
}

// RenderShapes writes a PDF document containing `shapes` to `w`.
func RenderShapes(w io.Writer, width, height float64, shapes []svgshape.Shape) error {
	pdf := NewDocument(width, height)
	if err := svgshape.DrawAll(NewRenderer(pdf), shapes); err != nil {
		return err
	}
	if err := pdf.Error(); err != nil {
		return errors.Wrap(err, "rendering pdf")
	}
	return errors.Wrap(pdf.Output(w), "writing pdf")
}

func (r Renderer) setDrawColor(c svgshape.Color) {
	red, g, b := svgshape.RGB(c)
	r.pdf.SetDrawColor(int(red), int(g), int(b))
}

func (r Renderer) setFillColor(c svgshape.Color) {
	red, g, b := svgshape.RGB(c)
	r.pdf.SetFillColor(int(red), int(g), int(b))
}

// style returns the gofpdf painting operator
func style(fill bool) string {
	if fill {
		return "FD"
	}
	return "D"
}

func (r Renderer) DrawLine(l svgshape.Line) error {
	r.setDrawColor(l.StrokeColor)
	r.pdf.SetLineWidth(l.StrokeThickness)
	r.pdf.SetLineCapStyle("square")
	r.pdf.Line(l.X1, l.Y1, l.X2, l.Y2)
	r.pdf.SetLineCapStyle("butt")
	return nil
}

// DrawRectangle only strokes: the Fill flag is not used, as in the svg output.
func (r Renderer) DrawRectangle(rect svgshape.Rectangle) error {
	r.setDrawColor(rect.StrokeColor)
	r.pdf.SetLineWidth(rect.StrokeThickness)
	r.pdf.Rect(rect.X, rect.Y, rect.Width, rect.Height, style(false))
	return nil
}

// DrawEllipse always strokes in black.
func (r Renderer) DrawEllipse(e svgshape.Ellipse) error {
	r.setDrawColor(nil)
	r.setFillColor(e.FillColor)
	r.pdf.SetLineWidth(e.StrokeThickness)
	r.pdf.Ellipse(e.CX, e.CY, e.RX, e.RY, 0, style(e.Fill))
	return nil
}

func (r Renderer) DrawPath(p svgshape.Path) error {
	r.setDrawColor(p.StrokeColor)
	r.setFillColor(p.FillColor)
	r.pdf.SetLineWidth(p.StrokeThickness)
	for _, sub := range p.Subpaths() {
		r.pdf.MoveTo(sub[0].X, sub[0].Y)
		for _, pt := range sub[1:] {
			r.pdf.LineTo(pt.X, pt.Y)
		}
	}
	r.pdf.DrawPath(style(p.Fill))
	return nil
}
