package render

import (
	"sort"

	"github.com/benjaminschreck/go-spandoc/pkg/spandoc/rich"
)

// Segment is a maximal piece of one line carrying a single attribute set.
type Segment struct {
	Text  string
	Attrs rich.Attributes
	Start int
	End   int
}

// Line is the segments of one paragraph, without its line break. An empty
// paragraph is an empty Line.
type Line []Segment

// Lines splits buf at paragraph and span boundaries.
func Lines(buf *rich.Buffer) []Line {
	if buf == nil {
		return nil
	}
	spans := buf.Spans()

	var lines []Line
	for _, para := range buf.Paragraphs() {
		lines = append(lines, splitLine(buf, spans, para[0], para[1]))
	}
	return lines
}

func splitLine(buf *rich.Buffer, spans []rich.Span, start, end int) Line {
	if start == end {
		return Line{}
	}

	cuts := []int{start, end}
	for _, s := range spans {
		if s.Start > start && s.Start < end {
			cuts = append(cuts, s.Start)
		}
		if s.End > start && s.End < end {
			cuts = append(cuts, s.End)
		}
	}
	sort.Ints(cuts)

	var line Line
	for i := 0; i+1 < len(cuts); i++ {
		from, to := cuts[i], cuts[i+1]
		if from == to {
			continue
		}
		var attrs rich.Attributes
		for _, a := range buf.AttributesAt(from) {
			attrs = attrs.Add(a)
		}
		line = appendSegment(line, Segment{
			Text:  buf.Slice(from, to),
			Attrs: attrs,
			Start: from,
			End:   to,
		})
	}
	return line
}

// appendSegment merges seg into the previous segment when both carry the
// same attributes.
func appendSegment(line Line, seg Segment) Line {
	if n := len(line); n > 0 {
		prev := &line[n-1]
		if prev.End == seg.Start && sameAttributes(prev.Attrs, seg.Attrs) {
			prev.Text += seg.Text
			prev.End = seg.End
			return line
		}
	}
	return append(line, seg)
}

func sameAttributes(a, b rich.Attributes) bool {
	if len(a) != len(b) {
		return false
	}
	for _, attr := range a {
		if !b.Contains(attr) {
			return false
		}
	}
	return true
}
