package render

import (
	"github.com/benjaminschreck/go-spandoc/pkg/spandoc/rich"
)

// Style is the effective look of a segment. When an attribute set holds
// several values for one property, the last one wins.
type Style struct {
	Bold      bool
	Italic    bool
	Underline bool
	// Size is the relative size factor; 0 means the base size.
	Size       float64
	Foreground rich.Color
	Background rich.Color
	Typeface   string
}

// StyleOf collapses attrs into a Style.
func StyleOf(attrs rich.Attributes) Style {
	var s Style
	_, s.Bold = attrs.Find(rich.KindBold)
	_, s.Italic = attrs.Find(rich.KindItalic)
	_, s.Underline = attrs.Find(rich.KindUnderline)
	if a, ok := attrs.Find(rich.KindRelativeSize); ok {
		s.Size = a.(rich.RelativeSize).Factor
	}
	if a, ok := attrs.Find(rich.KindForeground); ok {
		s.Foreground = a.(rich.ForegroundColor).Color
	}
	if a, ok := attrs.Find(rich.KindBackground); ok {
		s.Background = a.(rich.BackgroundColor).Color
	}
	if a, ok := attrs.Find(rich.KindTypeface); ok {
		s.Typeface = a.(rich.Typeface).Name
	}
	return s
}

// HasForeground reports whether the style sets a visible text color.
func (s Style) HasForeground() bool { return s.Foreground.Opaque() }

// HasBackground reports whether the style sets a visible highlight.
// Transparent highlights (w:highlight w:val="none") paint nothing.
func (s Style) HasBackground() bool { return s.Background.Opaque() }

// IsPlain reports whether the style changes nothing.
func (s Style) IsPlain() bool {
	return s == Style{}
}
