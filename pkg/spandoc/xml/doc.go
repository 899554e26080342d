// Package xml loads WordprocessingML parts into a DOM tree and classifies the
// elements go-spandoc understands.
//
// DOCX bodies are read from word/document.xml. The tree itself comes from
// github.com/antchfx/xmlquery; this package only adds the pieces the walker
// needs on top of it:
//
//   - load.go: Load, the trusted loader. It rejects document type declarations
//     and undefined entities before any tree is built.
//   - kind.go: Kind, a closed set of recognized tag kinds, and Classify.
//   - node.go: prefix-agnostic helpers (LocalName, Attr, ChildElements,
//     FindBody).
//
// # Namespaces
//
// Word writes every element with the w: prefix, bound to
// http://schemas.openxmlformats.org/wordprocessingml/2006/main. Matching here
// never depends on that prefix: a tag is identified by its local name,
// compared case-insensitively, so <w:b/>, <B/> and <x:b/> are all bold.
//
// # Security
//
// Load never resolves external resources. Any <!DOCTYPE ...> directive is
// rejected with ErrDoctypeRejected, and the decoder runs in strict mode with
// an empty entity table so that only the predefined XML entities and numeric
// character references are decoded.
package xml
