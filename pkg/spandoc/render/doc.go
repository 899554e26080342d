// Package render turns an imported rich.Buffer into output for people.
//
// The package is organized into logical files based on functionality:
//
//   - segments.go: splitting a buffer into lines of uniformly styled segments
//   - style.go: collapsing an attribute set into one effective Style
//   - ansi.go: terminal output through lipgloss
//   - html.go: HTML fragments built with golang.org/x/net/html
//   - render.go: format selection and plain text output
//
// Every renderer emits exactly the buffer's characters; styling is layered
// around them. Nothing in this package imports the spandoc package, so the
// importer can be used without pulling in terminal dependencies and the
// renderers can be tested with hand-built buffers.
//
// Example:
//
//	buf, err := spandoc.Import("report.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := render.Render(os.Stdout, buf, render.FormatHTML); err != nil {
//	    log.Fatal(err)
//	}
package render
