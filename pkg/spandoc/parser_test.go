package spandoc

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/benjaminschreck/go-spandoc/pkg/spandoc/rich"
)

func TestParseHelloWorld(t *testing.T) {
	buf := parseBody(t, `
		<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>Hello</w:t></w:r></w:p>
		<w:p><w:r><w:t>World</w:t></w:r></w:p>`)

	if got := buf.String(); got != "Hello\nWorld\n" {
		t.Fatalf("String() = %q, want %q", got, "Hello\nWorld\n")
	}

	expected := []rich.Span{{Attr: rich.Bold{}, Start: 0, End: 5}}
	if got := buf.Spans(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Spans() = %v, want %v", got, expected)
	}

	for offset := 6; offset < 11; offset++ {
		if spans := buf.SpansAt(offset); len(spans) != 0 {
			t.Errorf("offset %d should be unstyled, got %v", offset, spans)
		}
	}
}

func TestParseNoBody(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"document without body", `<w:document xmlns:w="` + wordNamespace + `"><w:p><w:r><w:t>x</w:t></w:r></w:p></w:document>`},
		{"unrelated root", `<root><p><r><t>orphan</t></r></p></root>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := newTestParser(false).Parse(mustLoad(t, tt.xml))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if buf.Len() != 0 || buf.String() != "" || len(buf.Spans()) != 0 {
				t.Errorf("expected empty buffer, got %q", buf.String())
			}
		})
	}

	buf, err := newTestParser(false).Parse(nil)
	if err != nil || buf.Len() != 0 {
		t.Errorf("Parse(nil) = %q, %v; want empty buffer", buf.String(), err)
	}
}

func TestParseOneLineBreakPerParagraph(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"empty body", ``, ""},
		{"single empty paragraph", `<w:p/>`, "\n"},
		{"three empty paragraphs", `<w:p/><w:p></w:p><w:p><w:pPr/></w:p>`, "\n\n\n"},
		{"run without text", `<w:p><w:r><w:rPr><w:b/></w:rPr></w:r></w:p>`, "\n"},
		{"mixed", `<w:p><w:r><w:t>a</w:t></w:r></w:p><w:p/><w:p><w:r><w:t>b</w:t></w:r></w:p>`, "a\n\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := parseBody(t, tt.body)
			if got := buf.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseBoldItalic(t *testing.T) {
	buf := parseBody(t, `<w:p><w:r><w:t>plain </w:t></w:r><w:r><w:rPr><w:b/><w:i/></w:rPr><w:t>both</w:t></w:r></w:p>`)

	if buf.String() != "plain both\n" {
		t.Fatalf("String() = %q", buf.String())
	}

	expected := []rich.Span{
		{Attr: rich.Bold{}, Start: 6, End: 10},
		{Attr: rich.Italic{}, Start: 6, End: 10},
	}
	if got := buf.Spans(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Spans() = %v, want %v", got, expected)
	}
}

func TestParseRunProperties(t *testing.T) {
	tests := []struct {
		name     string
		rPr      string
		expected rich.Attributes
	}{
		{"bold", `<w:b/>`, rich.Attributes{rich.Bold{}}},
		{"italic", `<w:i/>`, rich.Attributes{rich.Italic{}}},
		{"underline single", `<w:u w:val="single"/>`, rich.Attributes{rich.Underline{}}},
		{"underline none", `<w:u w:val="none"/>`, nil},
		{"underline NONE", `<w:u w:val="NONE"/>`, nil},
		{"underline without val", `<w:u/>`, nil},
		{"size 24", `<w:sz w:val="24"/>`, rich.Attributes{rich.RelativeSize{Factor: 1.0}}},
		{"size 36", `<w:sz w:val="36"/>`, rich.Attributes{rich.RelativeSize{Factor: 1.5}}},
		{"color", `<w:color w:val="FF0000"/>`, rich.Attributes{rich.ForegroundColor{Color: rich.RGB(255, 0, 0)}}},
		{"color auto", `<w:color w:val="auto"/>`, nil},
		{"color without val", `<w:color/>`, nil},
		{"highlight none", `<w:highlight w:val="none"/>`, rich.Attributes{rich.BackgroundColor{Color: rich.Transparent}}},
		{"highlight green", `<w:highlight w:val="green"/>`, rich.Attributes{rich.BackgroundColor{Color: rich.Green}}},
		{"highlight purple", `<w:highlight w:val="purple"/>`, rich.Attributes{rich.BackgroundColor{Color: rich.Black}}},
		{"fonts", `<w:rFonts w:ascii="Courier New" w:hAnsi="Arial"/>`, rich.Attributes{rich.Typeface{Name: "Courier New"}}},
		{"fonts empty ascii", `<w:rFonts w:ascii=""/>`, rich.Attributes{rich.Typeface{Name: ""}}},
		{"fonts without ascii", `<w:rFonts w:hAnsi="Arial"/>`, nil},
		{"unknown property", `<w:strike/><w:szCs w:val="20"/><w:lang w:val="en-US"/>`, nil},
		{
			name: "order preserved",
			rPr:  `<w:rFonts w:ascii="Arial"/><w:i/><w:sz w:val="48"/><w:b/>`,
			expected: rich.Attributes{
				rich.Typeface{Name: "Arial"},
				rich.Italic{},
				rich.RelativeSize{Factor: 2.0},
				rich.Bold{},
			},
		},
		{"duplicates collapse", `<w:b/><w:b/>`, rich.Attributes{rich.Bold{}}},
		{"prefix agnostic", `<B/><x:I xmlns:x="urn:x"/>`, rich.Attributes{rich.Bold{}, rich.Italic{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := parseBody(t, `<w:p><w:r><w:rPr>`+tt.rPr+`</w:rPr><w:t>text</w:t></w:r></w:p>`)

			var got rich.Attributes
			for _, span := range buf.Spans() {
				if span.Start != 0 || span.End != 4 {
					t.Errorf("span %v should cover [0,4)", span)
				}
				got = append(got, span.Attr)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("attributes = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseColorChannels(t *testing.T) {
	buf := parseBody(t, `<w:p><w:r><w:rPr><w:color w:val="FF0000"/></w:rPr><w:t>red</w:t></w:r></w:p>`)

	spans := buf.Spans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %v", spans)
	}
	fg, ok := spans[0].Attr.(rich.ForegroundColor)
	if !ok {
		t.Fatalf("expected ForegroundColor, got %T", spans[0].Attr)
	}
	if fg.Color.R() != 255 || fg.Color.G() != 0 || fg.Color.B() != 0 || fg.Color.A() != 255 {
		t.Errorf("color = %v, want opaque (255,0,0)", fg.Color)
	}
}

func TestParseLastRunPropertiesWin(t *testing.T) {
	buf := parseBody(t, `<w:p><w:r>
		<w:rPr><w:b/></w:rPr>
		<w:t>one</w:t>
		<w:rPr><w:i/></w:rPr>
		<w:t>two</w:t>
	</w:r></w:p>`)

	expected := []rich.Span{
		{Attr: rich.Bold{}, Start: 0, End: 3},
		{Attr: rich.Italic{}, Start: 3, End: 6},
	}
	if got := buf.Spans(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Spans() = %v, want %v", got, expected)
	}
}

func TestParseMultipleTextsShareStyle(t *testing.T) {
	buf := parseBody(t, `<w:p><w:r><w:rPr><w:u w:val="single"/></w:rPr><w:t>ab</w:t><w:br/><w:t>cd</w:t></w:r></w:p>`)

	if buf.String() != "abcd\n" {
		t.Fatalf("String() = %q", buf.String())
	}
	expected := []rich.Span{
		{Attr: rich.Underline{}, Start: 0, End: 2},
		{Attr: rich.Underline{}, Start: 2, End: 4},
	}
	if got := buf.Spans(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Spans() = %v, want %v", got, expected)
	}
}

func TestParseTextIsVerbatim(t *testing.T) {
	buf := parseBody(t, `<w:p><w:r><w:t xml:space="preserve">  a &lt;b&gt; &amp; ü  </w:t></w:r></w:p>`)
	if got, want := buf.String(), "  a <b> & ü  \n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseSkipsUnsupportedContent(t *testing.T) {
	buf := parseBody(t, `
		<w:p><w:r><w:t>before</w:t></w:r></w:p>
		<w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
		<w:p>
			<w:pPr><w:jc w:val="center"/></w:pPr>
			<w:hyperlink><w:r><w:t>link</w:t></w:r></w:hyperlink>
			<w:r><w:drawing><w:inline/></w:drawing><w:t>after</w:t><w:tab/></w:r>
			<w:proofErr w:type="spellStart"/>
		</w:p>
		<w:sectPr/>`)

	if got, want := buf.String(), "before\nafter\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if len(buf.Spans()) != 0 {
		t.Errorf("expected no spans, got %v", buf.Spans())
	}
}

func TestParseMalformedAttributeSkipped(t *testing.T) {
	buf := parseBody(t, `<w:p><w:r><w:rPr>
		<w:b/>
		<w:sz w:val="big"/>
		<w:color w:val="12"/>
		<w:sz w:val="0"/>
		<w:sz/>
		<w:i/>
	</w:rPr><w:t>text</w:t></w:r></w:p>`)

	expected := []rich.Span{
		{Attr: rich.Bold{}, Start: 0, End: 4},
		{Attr: rich.Italic{}, Start: 0, End: 4},
	}
	if got := buf.Spans(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Spans() = %v, want %v", got, expected)
	}
}

func TestParseMalformedAttributeStrict(t *testing.T) {
	tests := []struct {
		name    string
		rPr     string
		element string
		value   string
	}{
		{"size not integer", `<w:sz w:val="12.5"/>`, "sz", "12.5"},
		{"size negative", `<w:sz w:val="-4"/>`, "sz", "-4"},
		{"size missing", `<w:sz/>`, "sz", ""},
		{"color short", `<w:color w:val="F00"/>`, "color", "F00"},
		{"color not hex", `<w:color w:val="red"/>`, "color", "red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := mustLoad(t, wrapBody(`<w:p><w:r><w:t>ok</w:t></w:r></w:p><w:p><w:r><w:rPr>`+tt.rPr+`</w:rPr><w:t>x</w:t></w:r></w:p>`))
			buf, err := newTestParser(true).Parse(tree)
			if err == nil {
				t.Fatalf("expected error, got buffer %q", buf.String())
			}
			if buf != nil {
				t.Error("no buffer should be returned on failure")
			}
			if !IsParseError(err) {
				t.Errorf("expected ParseError, got %T", err)
			}

			var attrErr *AttributeError
			if !errors.As(err, &attrErr) {
				t.Fatalf("expected AttributeError in chain, got %v", err)
			}
			if attrErr.Element != tt.element || attrErr.Value != tt.value {
				t.Errorf("AttributeError = %+v, want element %q value %q", attrErr, tt.element, tt.value)
			}
		})
	}
}

func TestParseBodyLookup(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"unprefixed", `<document><body><p><r><t>x</t></r></p></body></document>`},
		{"upper case", `<DOCUMENT><BODY><P><R><T>x</T></R></P></BODY></DOCUMENT>`},
		{"other prefix", `<k:document xmlns:k="urn:k"><k:body><k:p><k:r><k:t>x</k:t></k:r></k:p></k:body></k:document>`},
		{"nested body", `<outer><inner><body><p><r><t>x</t></r></p></body></inner></outer>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := newTestParser(false).Parse(mustLoad(t, tt.xml))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if buf.String() != "x\n" {
				t.Errorf("String() = %q, want %q", buf.String(), "x\n")
			}
		})
	}
}

func TestParseOnlyDirectChildren(t *testing.T) {
	buf := parseBody(t, `<w:sdt><w:sdtContent><w:p><w:r><w:t>hidden</w:t></w:r></w:p></w:sdtContent></w:sdt>
		<w:p><w:r><w:smartTag><w:r><w:t>nested</w:t></w:r></w:smartTag><w:t>shown</w:t></w:r></w:p>`)

	if got := buf.String(); got != "shown\n" {
		t.Errorf("String() = %q, want %q", got, "shown\n")
	}
}

func TestParseConcurrent(t *testing.T) {
	parser := newTestParser(false)
	trees := []string{
		wrapBody(`<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>first</w:t></w:r></w:p>`),
		wrapBody(`<w:p><w:r><w:rPr><w:i/></w:rPr><w:t>second</w:t></w:r></w:p>`),
	}

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		src := trees[i%2]
		tree := mustLoad(t, src)
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf, err := parser.Parse(tree)
			if err != nil {
				errs <- err
				return
			}
			if !strings.HasSuffix(buf.String(), "\n") || len(buf.Spans()) != 1 {
				errs <- errors.New("unexpected result " + buf.String())
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestParseUsesGlobalConfig(t *testing.T) {
	original := GetGlobalConfig()
	defer SetGlobalConfig(original)

	strict := DefaultConfig()
	strict.StrictAttributes = true
	strict.LogLevel = "off"
	SetGlobalConfig(strict)

	tree := mustLoad(t, wrapBody(`<w:p><w:r><w:rPr><w:sz w:val="x"/></w:rPr><w:t>t</w:t></w:r></w:p>`))
	if _, err := Parse(tree); err == nil {
		t.Error("expected strict global config to reject malformed size")
	}
}

func TestParseUndeclaredPrefix(t *testing.T) {
	tree := mustLoad(t, `<w:document><w:body><w:p><w:r><w:rPr><w:b/></w:rPr><w:t>x</w:t></w:r></w:p></w:body></w:document>`)

	buf, err := newTestParser(false).Parse(tree)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if buf.String() != "x\n" {
		t.Errorf("String() = %q, want %q", buf.String(), "x\n")
	}
	if spans := buf.Spans(); len(spans) != 1 || spans[0] != (rich.Span{Attr: rich.Bold{}, Start: 0, End: 1}) {
		t.Errorf("Spans() = %v", spans)
	}
}
