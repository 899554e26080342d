package spandoc

import (
	"errors"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/benjaminschreck/go-spandoc/pkg/spandoc/rich"
	"github.com/benjaminschreck/go-spandoc/pkg/spandoc/xml"
)

// baseHalfPoints is the default 12pt text size expressed in half-points, the
// unit of w:sz.
const baseHalfPoints = 24.0

var errNonPositiveSize = errors.New("size must be positive")

// resolveRunProperties turns the children of a w:rPr element into an ordered
// attribute set. Unrecognized children are ignored. The result is never nil.
func (p *Parser) resolveRunProperties(rPr *xmlquery.Node) (rich.Attributes, error) {
	attrs := rich.Attributes{}
	for _, child := range xml.ChildElements(rPr) {
		attr, err := resolveProperty(child)
		if err != nil {
			if p.strict {
				return nil, err
			}
			p.logger.Debug("ignoring run property: %v", err)
			continue
		}
		attrs = attrs.Add(attr)
	}
	return attrs, nil
}

// resolveProperty maps one run property element to an attribute. A nil
// attribute with a nil error means the element sets nothing.
func resolveProperty(n *xmlquery.Node) (rich.Attribute, error) {
	kind := xml.Classify(n)
	switch kind {
	case xml.KindBold:
		return rich.Bold{}, nil

	case xml.KindItalic:
		return rich.Italic{}, nil

	case xml.KindUnderline:
		val, ok := xml.Attr(n, "val")
		if !ok || strings.EqualFold(val, "none") {
			return nil, nil
		}
		return rich.Underline{}, nil

	case xml.KindSize:
		val, _ := xml.Attr(n, "val")
		size, err := strconv.Atoi(val)
		if err != nil {
			return nil, NewAttributeError(kind.String(), "val", val, err)
		}
		if size <= 0 {
			return nil, NewAttributeError(kind.String(), "val", val, errNonPositiveSize)
		}
		return rich.RelativeSize{Factor: float64(size) / baseHalfPoints}, nil

	case xml.KindColor:
		val, ok := xml.Attr(n, "val")
		if !ok || strings.EqualFold(val, "auto") {
			return nil, nil
		}
		c, err := rich.ParseHex("#" + val)
		if err != nil {
			return nil, NewAttributeError(kind.String(), "val", val, err)
		}
		return rich.ForegroundColor{Color: c}, nil

	case xml.KindHighlight:
		val, ok := xml.Attr(n, "val")
		if !ok {
			return nil, nil
		}
		return rich.BackgroundColor{Color: rich.NamedColor(val)}, nil

	case xml.KindFonts:
		ascii, ok := xml.Attr(n, "ascii")
		if !ok {
			return nil, nil
		}
		return rich.Typeface{Name: ascii}, nil
	}

	return nil, nil
}
