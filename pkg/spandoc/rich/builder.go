package rich

import (
	"strings"
	"unicode/utf8"
)

// Builder accumulates styled text. It has a single owner for the duration of
// an import and is frozen by Buffer.
type Builder struct {
	sb     strings.Builder
	n      int
	spans  []Span
	frozen bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Len returns the number of runes appended so far.
func (b *Builder) Len() int { return b.n }

// Append adds text and attaches every attribute in attrs to exactly the range
// just appended. Empty text adds nothing, not even spans.
func (b *Builder) Append(text string, attrs Attributes) {
	b.mustNotBeFrozen()
	if text == "" {
		return
	}

	start := b.n
	b.sb.WriteString(text)
	b.n += utf8.RuneCountInString(text)

	for _, a := range attrs {
		b.spans = append(b.spans, Span{Attr: a, Start: start, End: b.n})
	}
}

// LineBreak appends a single "\n".
func (b *Builder) LineBreak() {
	b.mustNotBeFrozen()
	b.sb.WriteByte('\n')
	b.n++
}

// Buffer freezes the builder and returns the result. Later calls return an
// equal buffer; further appends panic.
func (b *Builder) Buffer() *Buffer {
	b.frozen = true
	if b.n == 0 {
		return Empty
	}
	text := b.sb.String()
	spans := make([]Span, len(b.spans))
	copy(spans, b.spans)
	return &Buffer{
		text:  text,
		runes: []rune(text),
		spans: spans,
	}
}

func (b *Builder) mustNotBeFrozen() {
	if b.frozen {
		panic("rich: append to frozen Builder")
	}
}
