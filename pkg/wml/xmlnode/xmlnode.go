// Package xmlnode defines the prefix-preserving XML tree consumed by the
// wml builders, and a decoder that produces it from raw part bytes.
//
// A Node keeps the element name as written in the source (including its
// namespace prefix, typically "w:") and its attributes keyed the same
// way ("w:val", "r:id", "xml:space"). The wml package dispatches on
// LocalName, which strips one prefix.
package xmlnode

import (
	"encoding/xml"
	"io"
	"strings"
)

// Node is one element of a decoded XML part.
type Node struct {
	// Name is the element name as written, prefix included ("w:p").
	Name string
	// Attributes maps prefixed attribute names to their raw values.
	Attributes map[string]string
	// Children holds child elements in document order.
	Children []*Node
	// Text is the concatenated character data of the element.
	Text string
}

// LocalName returns the element name with one namespace prefix stripped.
func (n *Node) LocalName() string {
	if idx := strings.Index(n.Name, ":"); idx >= 0 {
		return n.Name[idx+1:]
	}
	return n.Name
}

// Attribute returns the raw value of the named attribute and whether it
// was present. The key must carry its prefix ("w:val").
func (n *Node) Attribute(key string) (string, bool) {
	v, ok := n.Attributes[key]
	return v, ok
}

// FirstChild returns the first child whose local name matches, or nil.
func (n *Node) FirstChild(local string) *Node {
	for _, child := range n.Children {
		if child.LocalName() == local {
			return child
		}
	}
	return nil
}

// namespaceToPrefix converts a namespace URI to its conventional prefix.
func namespaceToPrefix(uri string) string {
	prefixMap := map[string]string{
		// Core Word namespaces
		"http://schemas.openxmlformats.org/wordprocessingml/2006/main":        "w",
		"http://schemas.openxmlformats.org/officeDocument/2006/relationships": "r",
		"http://schemas.openxmlformats.org/officeDocument/2006/math":          "m",
		"http://www.w3.org/XML/1998/namespace":                                "xml",
		// Drawing namespaces
		"http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing": "wp",
		"http://schemas.openxmlformats.org/drawingml/2006/main":                  "a",
		"http://schemas.openxmlformats.org/drawingml/2006/picture":               "pic",
		"http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing":    "wp14",
		"http://schemas.microsoft.com/office/drawing/2010/main":                  "a14",
		// VML namespaces
		"urn:schemas-microsoft-com:vml":           "v",
		"urn:schemas-microsoft-com:office:office": "o",
		"urn:schemas-microsoft-com:office:word":   "w10",
		// Markup compatibility namespace
		"http://schemas.openxmlformats.org/markup-compatibility/2006": "mc",
		// Word processing shapes and canvas
		"http://schemas.microsoft.com/office/word/2010/wordprocessingShape":  "wps",
		"http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas": "wpc",
		"http://schemas.microsoft.com/office/word/2010/wordprocessingGroup":  "wpg",
		"http://schemas.microsoft.com/office/word/2010/wordprocessingInk":    "wpi",
		// Extended Word namespaces
		"http://schemas.microsoft.com/office/word/2010/wordml":                "w14",
		"http://schemas.microsoft.com/office/word/2012/wordml":                "w15",
		"http://schemas.microsoft.com/office/word/2015/wordml/symex":          "w16se",
		"http://schemas.microsoft.com/office/word/2016/wordml/cid":            "w16cid",
		"http://schemas.microsoft.com/office/word/2018/wordml":                "w16",
		"http://schemas.microsoft.com/office/word/2018/wordml/cex":            "w16cex",
		"http://schemas.microsoft.com/office/word/2020/wordml/sdtdatahash":    "w16sdtdh",
		"http://schemas.microsoft.com/office/word/2024/wordml/sdtformatlock":  "w16sdtfl",
		"http://schemas.microsoft.com/office/word/2023/wordml/word16du":       "w16du",
		"http://schemas.microsoft.com/office/word/2006/wordml":                "wne",
		// Other drawing namespaces
		"http://schemas.microsoft.com/office/drawing/2016/ink":     "aink",
		"http://schemas.microsoft.com/office/drawing/2017/model3d": "am3d",
	}

	if prefix, ok := prefixMap[uri]; ok {
		return prefix
	}
	// For unknown namespaces, return the URI as-is (shouldn't happen in practice)
	return uri
}

// prefixedName rebuilds the source-form name from an xml.Name.
func prefixedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return namespaceToPrefix(name.Space) + ":" + name.Local
}

// Decode reads one XML document and returns the root element's Node.
func Decode(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(r)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if start, ok := token.(xml.StartElement); ok {
			return decodeElement(decoder, start)
		}
	}

	return nil, io.ErrUnexpectedEOF
}

// decodeElement consumes tokens until the matching end element,
// building the subtree rooted at start.
func decodeElement(d *xml.Decoder, start xml.StartElement) (*Node, error) {
	node := &Node{
		Name:       prefixedName(start.Name),
		Attributes: make(map[string]string, len(start.Attr)),
	}
	for _, attr := range start.Attr {
		// xmlns declarations are namespace plumbing, not data
		if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
			continue
		}
		node.Attributes[prefixedName(attr.Name)] = attr.Value
	}

	var text strings.Builder
	hasText := false

	for {
		token, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			child, err := decodeElement(d, t)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		case xml.CharData:
			text.Write(t)
			hasText = true
		case xml.EndElement:
			if hasText {
				node.Text = text.String()
			}
			return node, nil
		}
	}

	return nil, io.ErrUnexpectedEOF
}
