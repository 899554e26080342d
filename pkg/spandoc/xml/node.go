package xml

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// bodyExpr selects body elements on the descendant-or-self axis, in document
// order, whatever their prefix or letter case.
var bodyExpr = xpath.MustCompile(`descendant-or-self::*[translate(local-name(), 'BODY', 'body') = 'body']`)

// LocalName strips a "prefix:" from name.
func LocalName(name string) string {
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// FindBody returns the first body element reachable from root, or nil.
func FindBody(root *xmlquery.Node) *xmlquery.Node {
	if root == nil {
		return nil
	}
	return xmlquery.QuerySelector(root, bodyExpr)
}

// ChildElements returns the direct element children of n in document order.
// Text, comments and other node types are skipped.
func ChildElements(n *xmlquery.Node) []*xmlquery.Node {
	if n == nil {
		return nil
	}
	var children []*xmlquery.Node
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			children = append(children, child)
		}
	}
	return children
}

// Attr looks up an attribute of n by local name, ignoring prefix and case.
// The second result reports whether the attribute is present at all, so an
// empty value can be told apart from a missing one.
func Attr(n *xmlquery.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	want := LocalName(name)
	for _, attr := range n.Attr {
		local := LocalName(attr.Name.Local)
		if attr.Name.Space == "xmlns" || local == "xmlns" {
			continue
		}
		if strings.EqualFold(local, want) {
			return attr.Value, true
		}
	}
	return "", false
}

// Text returns the character data of n and all its descendants, exactly as
// decoded.
func Text(n *xmlquery.Node) string {
	if n == nil {
		return ""
	}
	return n.InnerText()
}
