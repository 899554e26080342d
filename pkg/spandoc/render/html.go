package render

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/benjaminschreck/go-spandoc/pkg/spandoc/rich"
)

// HTML writes buf as a sequence of <p> elements, one per line.
//
// Bold, italic and underline become <b>, <i> and <u>. Size, colors and
// typeface are collected into the style attribute of a wrapping <span>.
func HTML(w io.Writer, buf *rich.Buffer) error {
	for _, line := range Lines(buf) {
		p := element(atom.P)
		for _, seg := range line {
			p.AppendChild(segmentNode(seg))
		}
		if err := html.Render(w, p); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// HTMLString is HTML into a string.
func HTMLString(buf *rich.Buffer) string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = HTML(&sb, buf)
	return sb.String()
}

func segmentNode(seg Segment) *html.Node {
	node := &html.Node{Type: html.TextNode, Data: seg.Text}
	style := StyleOf(seg.Attrs)

	if style.Underline {
		node = wrap(atom.U, node)
	}
	if style.Italic {
		node = wrap(atom.I, node)
	}
	if style.Bold {
		node = wrap(atom.B, node)
	}
	if css := cssDeclarations(style); css != "" {
		node = wrap(atom.Span, node)
		node.Attr = []html.Attribute{{Key: "style", Val: css}}
	}
	return node
}

func cssDeclarations(s Style) string {
	var decls []string
	if s.Size > 0 {
		decls = append(decls, "font-size:"+strconv.FormatFloat(s.Size, 'g', 4, 64)+"em")
	}
	if s.HasForeground() {
		decls = append(decls, "color:"+s.Foreground.Hex())
	}
	if s.HasBackground() {
		decls = append(decls, "background-color:"+s.Background.Hex())
	}
	if s.Typeface != "" {
		decls = append(decls, "font-family:"+cssFontFamily(s.Typeface))
	}
	return strings.Join(decls, ";")
}

// cssFontFamily quotes names that are not a single CSS identifier. Inside
// the quotes, quote marks and backslashes are escaped with a backslash and
// control characters as a hex code point followed by a space.
func cssFontFamily(name string) string {
	if isCSSIdentifier(name) {
		return name
	}
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range name {
		switch {
		case r == '"' || r == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r < 0x20 || r == 0x7F:
			sb.WriteString(`\` + strconv.FormatInt(int64(r), 16) + " ")
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func isCSSIdentifier(name string) bool {
	if name == "" || name[0] >= '0' && name[0] <= '9' {
		return false
	}
	for _, r := range name {
		if !(r == '-' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func wrap(a atom.Atom, child *html.Node) *html.Node {
	parent := element(a)
	parent.AppendChild(child)
	return parent
}
