package svgshape

import (
	"fmt"
	"image/color"
	"strconv"
)

// Color is an optional color: nil means absent,
// which backends render as opaque black.
type Color = color.Color

// Some named colors used by the demo.
var (
	Black  Color = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	White  Color = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Yellow Color = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	Red    Color = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
)

// FormatNumber returns the shortest decimal representation
// which parses back to v, never using an exponent.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RGB returns the 8-bit, non premultiplied channels of c,
// defaulting to black for a nil color.
func RGB(c Color) (r, g, b uint8) {
	if c == nil {
		return 0, 0, 0
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B
}

// RGBString returns the CSS rgb(r,g,b) notation of c.
func RGBString(c Color) string {
	r, g, b := RGB(c)
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}
