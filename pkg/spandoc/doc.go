// Package spandoc imports WordprocessingML documents into styled text.
//
// The body of word/document.xml is walked paragraph by paragraph and turned
// into a rich.Buffer: the flat character content, one "\n" per paragraph,
// plus spans attaching bold, italic, underline, relative size, text color,
// highlight and typeface to rune ranges.
//
// # Quick Start
//
// The simplest way to use spandoc is through the package-level functions:
//
//	buf, err := spandoc.Import("report.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Print(buf.String())
//	for _, span := range buf.Spans() {
//	    fmt.Println(span)
//	}
//
// Import accepts a bare document.xml, a .docx package, or either of those
// compressed with xz. The format is detected from the content, not the file
// name.
//
// # Supported Markup
//
// Only direct children are considered at each level:
//
//	w:body  -> w:p   paragraphs, one line each
//	w:p     -> w:r   runs
//	w:r     -> w:rPr run properties (the last one wins)
//	        -> w:t   text, appended verbatim
//	w:rPr   -> w:b, w:i, w:u, w:sz, w:color, w:highlight, w:rFonts
//
// Element and attribute names match by local name, ignoring case and prefix.
// Everything else (tables, drawings, hyperlinks, section properties) is
// skipped without error.
//
// # Errors
//
// Malformed or unsafe markup fails the whole import with a *ParseError and no
// buffer; documents carrying a DOCTYPE are always rejected. Reading problems
// are reported as *DocumentError. A malformed run property value is skipped
// by default; with Config.StrictAttributes it aborts the import with a
// *ParseError wrapping an *AttributeError.
//
//	buf, err := spandoc.Import(path)
//	if spandoc.IsParseError(err) {
//	    // not a usable document
//	}
//
// # Configuration
//
// The global configuration is read from the environment at start-up:
//
//	SPANDOC_LOG_LEVEL       debug, info, warn, error or off (default info)
//	SPANDOC_STRICT          abort on malformed run properties (default false)
//	SPANDOC_MAX_INPUT_SIZE  byte limit after decompression (default 64 MiB)
//	SPANDOC_CACHE_MAX_SIZE  buffers cached per Importer (default 0, disabled)
//	SPANDOC_CACHE_TTL       lifetime of cached buffers, e.g. "10m"
//
// An Importer carries its own Config and may be shared between goroutines:
//
//	im, err := spandoc.NewImporter(&spandoc.Config{CacheMaxSize: 32})
//	buf, err := im.ImportBytes(data)
//
// # Thread Safety
//
// Importer, Parser and BufferCache are safe for concurrent use. Buffers are
// immutable once returned.
package spandoc
