// Command thingdesigner builds the triangle grid of the demo window,
// applies clicks to it, and exports the result as SVG, PNG or PDF.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/benoitkugler/thingdesigner/scene"
	"github.com/benoitkugler/thingdesigner/svgpdf"
	"github.com/benoitkugler/thingdesigner/svgshape"
	"github.com/benoitkugler/thingdesigner/svgraster"
	"github.com/benoitkugler/thingdesigner/svgwriter"
	"github.com/benoitkugler/thingdesigner/tiling"
	"github.com/skratchdot/open-golang/open"
)

// clicks collects the repeated -click flags.
type clicks []tiling.Point

func (c *clicks) String() string { return fmt.Sprint(*c) }

func (c *clicks) Set(s string) error {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return err
	}
	*c = append(*c, tiling.Point{X: x, Y: y})
	return nil
}

func main() {
	var (
		size      = flag.Float64("size", tiling.DemoSize, "side of the square region")
		cols      = flag.Int("cols", tiling.DemoCols, "number of columns")
		rows      = flag.Int("rows", tiling.DemoRows, "number of rows")
		thickness = flag.Float64("thickness", 1, "stroke thickness")
		svgOut    = flag.String("svg", "thingdesigner.svg", "svg output file (empty to skip)")
		pngOut    = flag.String("png", "", "png preview output file")
		pdfOut    = flag.String("pdf", "", "pdf output file")
		check     = flag.Bool("check", false, "verify the tiling and read back the svg output")
		openOut   = flag.Bool("open", false, "open the svg output with the default viewer")
		verbose   = flag.Bool("v", false, "debug logging")
		points    clicks
	)
	flag.Var(&points, "click", "toggle the tile under x,y (repeatable)")
	flag.Parse()

	if *verbose {
		svgwriter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	tris, err := tiling.Grid(tiling.Rect{Width: *size, Height: *size}, *cols, *rows)
	if err != nil {
		log.Fatalf("Failed to build grid: %v", err)
	}
	if *check {
		if err := tiling.CheckOverlaps(tris, 1e-9); err != nil {
			log.Fatalf("Invalid tiling: %v", err)
		}
	}
	sc, err := scene.New(tris)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}
	for _, p := range points {
		if !sc.Click(p) {
			log.Printf("No tile at %v", p)
		}
	}
	shapes := sc.Shapes(*thickness)

	if *svgOut != "" {
		opts := svgwriter.DefaultOptions()
		opts.Width, opts.Height = *size, *size
		if err := writeSVG(*svgOut, opts, shapes); err != nil {
			log.Fatalf("Failed to export svg: %v", err)
		}
		log.Printf("SVG saved to %s (%d triangles)\n", *svgOut, len(shapes))

		if *check {
			if err := checkSVG(*svgOut, len(shapes)); err != nil {
				log.Fatalf("Invalid svg output: %v", err)
			}
		}
		if *openOut {
			if err := open.Run(*svgOut); err != nil {
				log.Printf("Failed to open %s: %v", *svgOut, err)
			}
		}
	}

	if *pngOut != "" {
		side := int(*size + 0.5)
		img, err := svgraster.RasterShapes(side, side, shapes)
		if err != nil {
			log.Fatalf("Failed to raster: %v", err)
		}
		if err := writeFile(*pngOut, func(f *os.File) error { return png.Encode(f, img) }); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Preview saved to %s (%dx%d)\n", *pngOut, side, side)
	}

	if *pdfOut != "" {
		err := writeFile(*pdfOut, func(f *os.File) error {
			return svgpdf.RenderShapes(f, *size, *size, shapes)
		})
		if err != nil {
			log.Fatalf("Failed to export pdf: %v", err)
		}
		log.Printf("PDF saved to %s\n", *pdfOut)
	}
}

func writeFile(name string, write func(f *os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeSVG(name string, opts svgwriter.Options, shapes []svgshape.Shape) error {
	return writeFile(name, func(f *os.File) error {
		return svgwriter.Export(f, opts, shapes)
	})
}

func checkSVG(name string, want int) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	doc, err := svgwriter.ReadDocument(f)
	if err != nil {
		return err
	}
	if got := doc.Count("path"); got != want {
		return fmt.Errorf("expected %d paths, got %d", want, got)
	}
	return nil
}
