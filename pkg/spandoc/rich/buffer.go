package rich

import (
	"fmt"
)

// Span attaches an attribute to the rune range [Start, End) of a Buffer.
type Span struct {
	Attr  Attribute
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%s[%d,%d)", s.Attr, s.Start, s.End)
}

// Len returns the number of runes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Contains reports whether offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return s.Start <= offset && offset < s.End
}

// Buffer is the frozen result of an import: text plus style spans.
//
// All offsets are rune offsets into String(). A Buffer is never modified after
// it is returned, so it may be shared freely between goroutines.
type Buffer struct {
	text  string
	runes []rune
	spans []Span
}

// Empty is a buffer with no text and no spans.
var Empty = &Buffer{}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int { return len(b.runes) }

// String returns the flat character content.
func (b *Buffer) String() string { return b.text }

// Spans returns a copy of all annotations in the order they were added.
func (b *Buffer) Spans() []Span {
	out := make([]Span, len(b.spans))
	copy(out, b.spans)
	return out
}

// Slice returns the text of the rune range [start, end). Out of range bounds
// are clamped.
func (b *Buffer) Slice(start, end int) string {
	start = clamp(start, 0, len(b.runes))
	end = clamp(end, start, len(b.runes))
	return string(b.runes[start:end])
}

// SpansAt returns the spans covering offset.
func (b *Buffer) SpansAt(offset int) []Span {
	var out []Span
	for _, s := range b.spans {
		if s.Contains(offset) {
			out = append(out, s)
		}
	}
	return out
}

// AttributesAt returns the attributes in effect at offset, in span order.
func (b *Buffer) AttributesAt(offset int) Attributes {
	var out Attributes
	for _, s := range b.spans {
		if s.Contains(offset) {
			out = append(out, s.Attr)
		}
	}
	return out
}

// Paragraphs returns the rune range of every line, excluding its line break.
// A trailing segment without a line break is reported too.
func (b *Buffer) Paragraphs() [][2]int {
	var out [][2]int
	start := 0
	for i, r := range b.runes {
		if r == '\n' {
			out = append(out, [2]int{start, i})
			start = i + 1
		}
	}
	if start < len(b.runes) {
		out = append(out, [2]int{start, len(b.runes)})
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
