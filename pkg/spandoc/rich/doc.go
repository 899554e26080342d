// Package rich is the in-memory rich-text model produced by an import.
//
// A Buffer is flat text plus a list of Spans, each attaching one Attribute to
// a rune range. Paragraphs are separated by "\n". Buffers are built with a
// Builder and are immutable once returned, which makes them safe to hand to
// any rendering layer or share between goroutines.
//
//	b := rich.NewBuilder()
//	b.Append("Hello", rich.Attributes{rich.Bold{}})
//	b.LineBreak()
//	buf := b.Buffer()
//	buf.String() // "Hello\n"
//	buf.Spans()  // [bold[0,5)]
package rich
