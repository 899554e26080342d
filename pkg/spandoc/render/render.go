package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/benjaminschreck/go-spandoc/pkg/spandoc/rich"
)

// Format names an output format.
type Format string

const (
	FormatPlain Format = "plain"
	FormatANSI  Format = "ansi"
	FormatHTML  Format = "html"
)

// Formats lists the supported formats.
var Formats = []Format{FormatPlain, FormatANSI, FormatHTML}

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", name)
}

// Render writes buf to w in the given format.
func Render(w io.Writer, buf *rich.Buffer, format Format) error {
	switch format {
	case FormatPlain:
		return Plain(w, buf)
	case FormatANSI:
		_, err := io.WriteString(w, NewANSIRenderer(w).Render(buf))
		return err
	case FormatHTML:
		return HTML(w, buf)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// Plain writes the character content of buf.
func Plain(w io.Writer, buf *rich.Buffer) error {
	if buf == nil {
		return nil
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

// SpanRecord is the flat description of one span, as listed by tools.
type SpanRecord struct {
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// SpanRecords describes every span of buf in buffer order.
func SpanRecords(buf *rich.Buffer) []SpanRecord {
	if buf == nil {
		return nil
	}
	spans := buf.Spans()
	records := make([]SpanRecord, 0, len(spans))
	for _, s := range spans {
		records = append(records, SpanRecord{
			Kind:  s.Attr.Kind().String(),
			Value: attributeValue(s.Attr),
			Start: s.Start,
			End:   s.End,
			Text:  buf.Slice(s.Start, s.End),
		})
	}
	return records
}

func attributeValue(a rich.Attribute) string {
	switch a := a.(type) {
	case rich.RelativeSize:
		return fmt.Sprintf("%g", a.Factor)
	case rich.ForegroundColor:
		return a.Color.String()
	case rich.BackgroundColor:
		return a.Color.String()
	case rich.Typeface:
		return a.Name
	default:
		return ""
	}
}
