package rich

import (
	"fmt"
	"strconv"
)

// AttributeKind is the visual property an Attribute targets. Every kind
// targets a different property, so attributes of different kinds never
// interfere with each other.
type AttributeKind int

const (
	KindBold AttributeKind = iota
	KindItalic
	KindUnderline
	KindRelativeSize
	KindForeground
	KindBackground
	KindTypeface
)

func (k AttributeKind) String() string {
	switch k {
	case KindBold:
		return "bold"
	case KindItalic:
		return "italic"
	case KindUnderline:
		return "underline"
	case KindRelativeSize:
		return "size"
	case KindForeground:
		return "color"
	case KindBackground:
		return "background"
	case KindTypeface:
		return "typeface"
	default:
		return "unknown"
	}
}

// Attribute is a single style property attached to a span of text. The set of
// implementations is closed; all of them are comparable values.
type Attribute interface {
	Kind() AttributeKind
	String() string
	isAttribute()
}

type Bold struct{}

type Italic struct{}

type Underline struct{}

// RelativeSize scales text against the base size. Factor is always positive.
type RelativeSize struct {
	Factor float64
}

type ForegroundColor struct {
	Color Color
}

type BackgroundColor struct {
	Color Color
}

type Typeface struct {
	Name string
}

func (Bold) Kind() AttributeKind            { return KindBold }
func (Italic) Kind() AttributeKind          { return KindItalic }
func (Underline) Kind() AttributeKind       { return KindUnderline }
func (RelativeSize) Kind() AttributeKind    { return KindRelativeSize }
func (ForegroundColor) Kind() AttributeKind { return KindForeground }
func (BackgroundColor) Kind() AttributeKind { return KindBackground }
func (Typeface) Kind() AttributeKind        { return KindTypeface }

func (Bold) String() string      { return "bold" }
func (Italic) String() string    { return "italic" }
func (Underline) String() string { return "underline" }

func (s RelativeSize) String() string {
	return "size(" + strconv.FormatFloat(s.Factor, 'g', -1, 64) + ")"
}

func (f ForegroundColor) String() string { return fmt.Sprintf("color(%s)", f.Color) }
func (b BackgroundColor) String() string { return fmt.Sprintf("background(%s)", b.Color) }
func (t Typeface) String() string        { return fmt.Sprintf("typeface(%q)", t.Name) }

func (Bold) isAttribute()            {}
func (Italic) isAttribute()          {}
func (Underline) isAttribute()       {}
func (RelativeSize) isAttribute()    {}
func (ForegroundColor) isAttribute() {}
func (BackgroundColor) isAttribute() {}
func (Typeface) isAttribute()        {}

// Attributes is an ordered set of attributes. A nil Attributes is empty.
type Attributes []Attribute

// Add appends a unless an equal attribute is already present.
func (as Attributes) Add(a Attribute) Attributes {
	if a == nil || as.Contains(a) {
		return as
	}
	return append(as, a)
}

// Contains reports whether an attribute equal to a is in the set.
func (as Attributes) Contains(a Attribute) bool {
	for _, existing := range as {
		if existing == a {
			return true
		}
	}
	return false
}

// Find returns the last attribute of the given kind.
func (as Attributes) Find(kind AttributeKind) (Attribute, bool) {
	for i := len(as) - 1; i >= 0; i-- {
		if as[i].Kind() == kind {
			return as[i], true
		}
	}
	return nil, false
}
