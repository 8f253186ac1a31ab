package svgwriter

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// Element is a child of the root svg element.
type Element struct {
	Name  string
	Attrs map[string]string
}

// Document is a flat view of an exported SVG file.
type Document struct {
	Version       string
	Width, Height float64
	Elements      []Element
}

// Count returns the number of elements with the given tag name.
func (doc *Document) Count(name string) int {
	n := 0
	for _, e := range doc.Elements {
		if e.Name == name {
			n++
		}
	}
	return n
}

// ReadDocument decodes an SVG document, as written by a Writer.
// Nested elements are flattened in document order.
func ReadDocument(stream io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	var (
		doc    Document
		inRoot bool
	)
	for {
		t, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "invalid svg document")
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		if !inRoot {
			if se.Name.Local != "svg" {
				return nil, errors.Errorf("unexpected root element %s", se.Name.Local)
			}
			if err := doc.readRoot(se.Attr); err != nil {
				return nil, err
			}
			inRoot = true
			continue
		}
		e := Element{Name: se.Name.Local, Attrs: make(map[string]string, len(se.Attr))}
		for _, a := range se.Attr {
			e.Attrs[a.Name.Local] = a.Value
		}
		doc.Elements = append(doc.Elements, e)
	}
	if !inRoot {
		return nil, errors.New("missing svg element")
	}
	return &doc, nil
}

func (doc *Document) readRoot(attrs []xml.Attr) (err error) {
	for _, a := range attrs {
		switch a.Name.Local {
		case "version":
			doc.Version = a.Value
		case "width":
			doc.Width, err = strconv.ParseFloat(a.Value, 64)
		case "height":
			doc.Height, err = strconv.ParseFloat(a.Value, 64)
		}
		if err != nil {
			return errors.Wrapf(err, "invalid %s attribute", a.Name.Local)
		}
	}
	return nil
}
