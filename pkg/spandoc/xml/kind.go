package xml

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// Kind identifies a recognized WordprocessingML element.
type Kind int

const (
	KindUnknown Kind = iota

	// Structure
	KindBody
	KindParagraph
	KindRun
	KindRunProperties
	KindText
	KindDrawing

	// Run properties
	KindBold
	KindItalic
	KindUnderline
	KindSize
	KindColor
	KindHighlight
	KindFonts
)

// kindsByName is keyed by lower-cased local name.
var kindsByName = map[string]Kind{
	"body":      KindBody,
	"p":         KindParagraph,
	"r":         KindRun,
	"rpr":       KindRunProperties,
	"t":         KindText,
	"drawing":   KindDrawing,
	"b":         KindBold,
	"i":         KindItalic,
	"u":         KindUnderline,
	"sz":        KindSize,
	"color":     KindColor,
	"highlight": KindHighlight,
	"rfonts":    KindFonts,
}

func (k Kind) String() string {
	switch k {
	case KindBody:
		return "body"
	case KindParagraph:
		return "p"
	case KindRun:
		return "r"
	case KindRunProperties:
		return "rPr"
	case KindText:
		return "t"
	case KindDrawing:
		return "drawing"
	case KindBold:
		return "b"
	case KindItalic:
		return "i"
	case KindUnderline:
		return "u"
	case KindSize:
		return "sz"
	case KindColor:
		return "color"
	case KindHighlight:
		return "highlight"
	case KindFonts:
		return "rFonts"
	default:
		return "unknown"
	}
}

// Classify returns the Kind of an element node. Anything that is not an
// element, or an element outside the vocabulary, is KindUnknown.
func Classify(n *xmlquery.Node) Kind {
	if n == nil || n.Type != xmlquery.ElementNode {
		return KindUnknown
	}
	return ClassifyName(n.Data)
}

// ClassifyName classifies a tag name, with or without a namespace prefix.
func ClassifyName(name string) Kind {
	return kindsByName[strings.ToLower(LocalName(name))]
}
