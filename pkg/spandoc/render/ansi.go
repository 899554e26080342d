package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/benjaminschreck/go-spandoc/pkg/spandoc/rich"
)

// lightBackground is the Lab lightness above which highlighted text without
// an explicit color is drawn in black rather than white.
const lightBackground = 0.6

// ANSIRenderer renders buffers as text with terminal escape sequences.
type ANSIRenderer struct {
	renderer *lipgloss.Renderer
}

// NewANSIRenderer creates a renderer whose color support is detected from w.
func NewANSIRenderer(w io.Writer) *ANSIRenderer {
	return &ANSIRenderer{renderer: lipgloss.NewRenderer(w)}
}

// SetColorProfile overrides the detected color profile. termenv.Ascii
// disables all escape sequences.
func (r *ANSIRenderer) SetColorProfile(p termenv.Profile) {
	r.renderer.SetColorProfile(p)
}

// Render returns buf with every line terminated by a newline.
func (r *ANSIRenderer) Render(buf *rich.Buffer) string {
	var sb strings.Builder
	for _, line := range Lines(buf) {
		for _, seg := range line {
			sb.WriteString(r.segment(seg))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *ANSIRenderer) segment(seg Segment) string {
	style := StyleOf(seg.Attrs)
	if style.IsPlain() {
		return seg.Text
	}
	return r.lipglossStyle(style).Render(seg.Text)
}

// lipglossStyle maps a Style onto the terminal. Size and typeface have no
// terminal equivalent and are dropped.
func (r *ANSIRenderer) lipglossStyle(s Style) lipgloss.Style {
	ls := r.renderer.NewStyle().
		Inline(true).
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underline)

	if s.HasForeground() {
		ls = ls.Foreground(lipgloss.Color(s.Foreground.Hex()))
	}
	if s.HasBackground() {
		ls = ls.Background(lipgloss.Color(s.Background.Hex()))
		if !s.HasForeground() {
			ls = ls.Foreground(lipgloss.Color(ContrastColor(s.Background).Hex()))
		}
	}
	return ls
}

// ContrastColor returns black or white, whichever reads better on bg.
func ContrastColor(bg rich.Color) rich.Color {
	l, _, _ := bg.Colorful().Lab()
	if l > lightBackground {
		return rich.Black
	}
	return rich.White
}
