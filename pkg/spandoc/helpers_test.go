package spandoc

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/ulikunitz/xz"

	"github.com/benjaminschreck/go-spandoc/pkg/spandoc/rich"
	"github.com/benjaminschreck/go-spandoc/pkg/spandoc/xml"
)

const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// wrapBody places body content inside a w:document/w:body skeleton.
func wrapBody(content string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="` + wordNamespace + `"><w:body>` + content + `</w:body></w:document>`
}

func mustLoad(t *testing.T, data string) *xmlquery.Node {
	t.Helper()
	tree, err := xml.Load([]byte(data))
	if err != nil {
		t.Fatalf("failed to load XML: %v", err)
	}
	return tree
}

// parseBody parses wrapped body content with a quiet, lenient parser.
func parseBody(t *testing.T, content string) *rich.Buffer {
	t.Helper()
	buf, err := newTestParser(false).Parse(mustLoad(t, wrapBody(content)))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return buf
}

func newTestParser(strict bool) *Parser {
	return NewParser(WithStrictAttributes(strict), WithLogger(NewLogger(io.Discard, LogOff)))
}

// createDocxBytes builds a minimal DOCX package around documentXML.
func createDocxBytes(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	rels, err := w.Create("_rels/.rels")
	if err != nil {
		t.Fatalf("failed to create rels: %v", err)
	}
	io.WriteString(rels, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`)

	doc, err := w.Create(DocumentPart)
	if err != nil {
		t.Fatalf("failed to create document part: %v", err)
	}
	io.WriteString(doc, documentXML)

	ct, err := w.Create("[Content_Types].xml")
	if err != nil {
		t.Fatalf("failed to create content types: %v", err)
	}
	io.WriteString(ct, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="xml" ContentType="application/xml"/>
</Types>`)

	if err := w.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return buf.Bytes()
}

func xzCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("failed to create xz writer: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("failed to compress: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close xz writer: %v", err)
	}
	return buf.Bytes()
}

func quietImporter(t *testing.T, config *Config) *Importer {
	t.Helper()
	im, err := NewImporter(config)
	if err != nil {
		t.Fatalf("NewImporter failed: %v", err)
	}
	im.SetLogger(NewLogger(io.Discard, LogOff))
	return im
}
