package wml

import (
	"fmt"
	"io"

	"github.com/benjaminschreck/go-wordml/pkg/wml/xmlnode"
)

// FtnEdn is one footnote or endnote. A note always holds at least one
// block.
type FtnEdn struct {
	Type     *FtnEdnType
	ID       int64
	Contents []BlockContent
}

func parseFtnEdn(node *xmlnode.Node) (FtnEdn, error) {
	markup, err := parseMarkup(node)
	if err != nil {
		return FtnEdn{}, err
	}
	note := FtnEdn{ID: markup.ID}
	if v, ok := node.Attribute("w:type"); ok {
		t, err := ParseFtnEdnType(v)
		if err != nil {
			return FtnEdn{}, err
		}
		note.Type = &t
	}
	for _, child := range node.Children {
		content, err := parseBlockContent(child)
		if err != nil {
			if IsNotGroupMember(err) {
				continue
			}
			return FtnEdn{}, err
		}
		note.Contents = append(note.Contents, content)
	}
	if len(note.Contents) == 0 {
		return FtnEdn{}, NewLimitViolationError(node.Name, "p", 1, Unbounded, 0)
	}
	return note, nil
}

// Footnotes is the notes part of a document. The same shape serves
// both the footnotes and endnotes parts.
type Footnotes struct {
	Notes []FtnEdn
}

// ParseFootnotes builds the notes model from a w:footnotes or
// w:endnotes root.
func ParseFootnotes(root *xmlnode.Node) (*Footnotes, error) {
	local := root.LocalName()
	if local != "footnotes" && local != "endnotes" {
		return nil, NewInvalidXMLError(fmt.Sprintf("unexpected root element %q", root.Name))
	}
	notes := &Footnotes{}
	for _, child := range root.Children {
		switch child.LocalName() {
		case "footnote", "endnote":
			note, err := parseFtnEdn(child)
			if err != nil {
				return nil, err
			}
			notes.Notes = append(notes.Notes, note)
		}
	}
	return notes, nil
}

// DecodeFootnotes reads a notes part from XML.
func DecodeFootnotes(r io.Reader) (*Footnotes, error) {
	root, err := xmlnode.Decode(r)
	if err != nil {
		return nil, err
	}
	return ParseFootnotes(root)
}
