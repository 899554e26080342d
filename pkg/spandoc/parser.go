package spandoc

import (
	"github.com/antchfx/xmlquery"

	"github.com/benjaminschreck/go-spandoc/pkg/spandoc/rich"
	"github.com/benjaminschreck/go-spandoc/pkg/spandoc/xml"
)

// Parser walks a WordprocessingML tree and produces a rich.Buffer.
//
// A Parser holds no per-document state; one value may be used for any number
// of concurrent Parse calls.
type Parser struct {
	strict bool
	logger *Logger
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithStrictAttributes makes a malformed run property value abort the parse
// instead of being skipped.
func WithStrictAttributes(strict bool) ParserOption {
	return func(p *Parser) {
		p.strict = strict
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *Logger) ParserOption {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser creates a parser. Without options it follows the global config.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		strict: GetGlobalConfig().StrictAttributes,
		logger: GetLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse converts tree into styled text. tree may be the document node or any
// node above the body element.
//
// A tree without a body yields an empty buffer. The only error Parse returns
// is a *ParseError for a malformed run property in strict mode.
func (p *Parser) Parse(tree *xmlquery.Node) (*rich.Buffer, error) {
	b := rich.NewBuilder()

	body := xml.FindBody(tree)
	if body == nil {
		p.logger.Debug("no body element found, returning empty buffer")
		return b.Buffer(), nil
	}

	paragraphs := 0
	for _, child := range xml.ChildElements(body) {
		if xml.Classify(child) != xml.KindParagraph {
			p.skip(child, "body")
			continue
		}
		if err := p.paragraph(child, b); err != nil {
			return nil, NewParseError("malformed run property", err)
		}
		b.LineBreak()
		paragraphs++
	}

	buf := b.Buffer()
	p.logger.Debug("parsed %d paragraphs into %d characters with %d spans", paragraphs, buf.Len(), len(buf.Spans()))
	return buf, nil
}

// paragraph appends the text of every run in para. The caller appends the
// paragraph's line break.
func (p *Parser) paragraph(para *xmlquery.Node, b *rich.Builder) error {
	for _, child := range xml.ChildElements(para) {
		if xml.Classify(child) != xml.KindRun {
			p.skip(child, "paragraph")
			continue
		}
		if err := p.run(child, b); err != nil {
			return err
		}
	}
	return nil
}

// run appends each text element of r with the style resolved so far. A later
// rPr replaces an earlier one; styles are never merged.
func (p *Parser) run(r *xmlquery.Node, b *rich.Builder) error {
	var style rich.Attributes
	for _, child := range xml.ChildElements(r) {
		switch xml.Classify(child) {
		case xml.KindRunProperties:
			attrs, err := p.resolveRunProperties(child)
			if err != nil {
				return err
			}
			style = attrs
		case xml.KindText:
			b.Append(xml.Text(child), style)
		default:
			p.skip(child, "run")
		}
	}
	return nil
}

func (p *Parser) skip(n *xmlquery.Node, parent string) {
	if !p.logger.IsDebugMode() {
		return
	}
	name := n.Data
	if n.Prefix != "" {
		name = n.Prefix + ":" + n.Data
	}
	p.logger.Debug("skipping unsupported <%s> in %s", name, parent)
}

// Parse converts tree using the global configuration.
func Parse(tree *xmlquery.Node) (*rich.Buffer, error) {
	return NewParser().Parse(tree)
}
