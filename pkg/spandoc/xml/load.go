package xml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"golang.org/x/net/html/charset"
)

var (
	// ErrDoctypeRejected is returned when the input carries a document type
	// declaration. No DTD, internal subset or entity definition is processed.
	ErrDoctypeRejected = errors.New("document type declarations are not allowed")

	// ErrNoRootElement is returned for input that contains no element at all.
	ErrNoRootElement = errors.New("document has no root element")
)

// Load parses data as a complete XML document and returns the document node
// of its tree.
//
// The input is screened with a strict token pass first; a tree is only built
// when the screen finds no DOCTYPE and the document is well formed.
func Load(data []byte) (*xmlquery.Node, error) {
	if err := screen(data); err != nil {
		return nil, err
	}

	// screen owns strictness. The tree build accepts undeclared prefixes
	// such as a bare w:body.
	doc, err := xmlquery.ParseWithOptions(bytes.NewReader(data), xmlquery.ParserOptions{
		Decoder: &xmlquery.DecoderOptions{
			Strict:        false,
			Entity:        map[string]string{},
			CharsetReader: charset.NewReaderLabel,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build document tree: %w", err)
	}
	return doc, nil
}

// LoadReader reads r to the end and hands the bytes to Load.
func LoadReader(r io.Reader) (*xmlquery.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Load(data)
}

// screen walks every token of data and fails on the first DOCTYPE directive,
// undefined entity reference or well-formedness error.
func screen(data []byte) error {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Strict = true
	decoder.Entity = map[string]string{}
	decoder.CharsetReader = charset.NewReaderLabel

	sawElement := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("malformed document: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			sawElement = true
		case xml.Directive:
			if isDoctype(t) {
				return fmt.Errorf("%w (offset %d)", ErrDoctypeRejected, decoder.InputOffset())
			}
		}
	}

	if !sawElement {
		return ErrNoRootElement
	}
	return nil
}

func isDoctype(d xml.Directive) bool {
	s := strings.TrimSpace(string(d))
	return len(s) >= len("DOCTYPE") && strings.EqualFold(s[:len("DOCTYPE")], "DOCTYPE")
}
