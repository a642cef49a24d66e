package wml

import (
	"fmt"
	"io"
	"strings"

	"github.com/benjaminschreck/go-wordml/pkg/wml/xmlnode"
)

// Background is the document background: a fill color, possibly from
// the theme, and an optional drawing.
type Background struct {
	Color      *HexColor
	ThemeColor *ThemeColor
	ThemeTint  *uint8
	ThemeShade *uint8
	Drawing    *Drawing
}

func parseBackground(node *xmlnode.Node) (*Background, error) {
	bg := &Background{}
	if v, ok := node.Attribute("w:color"); ok {
		c, err := ParseHexColor(v)
		if err != nil {
			return nil, err
		}
		bg.Color = &c
	}
	if v, ok := node.Attribute("w:themeColor"); ok {
		tc, err := ParseThemeColor(v)
		if err != nil {
			return nil, err
		}
		bg.ThemeColor = &tc
	}
	var err error
	if bg.ThemeTint, err = optUcharHexAttr(node, "w:themeTint"); err != nil {
		return nil, err
	}
	if bg.ThemeShade, err = optUcharHexAttr(node, "w:themeShade"); err != nil {
		return nil, err
	}
	if drawingNode := node.FirstChild("drawing"); drawingNode != nil {
		d, err := parseDrawing(drawingNode)
		if err != nil {
			return nil, err
		}
		bg.Drawing = &d
	}
	return bg, nil
}

// Body is the main document story: block content followed by the final
// section's properties.
type Body struct {
	Contents          []BlockContent
	SectionProperties *SectionProperties
}

func parseBody(node *xmlnode.Node) (*Body, error) {
	body := &Body{}
	for _, child := range node.Children {
		if child.LocalName() == "sectPr" {
			sect, err := parseSectionProperties(child)
			if err != nil {
				return nil, err
			}
			body.SectionProperties = sect
			continue
		}
		content, err := parseBlockContent(child)
		if err != nil {
			if IsNotGroupMember(err) {
				Debug("skipping unrecognized body element %s", child.Name)
				continue
			}
			return nil, err
		}
		body.Contents = append(body.Contents, content)
	}
	return body, nil
}

// Text returns the plain text of the body, one line per paragraph.
func (b *Body) Text() string {
	var sb strings.Builder
	writeBlocksText(&sb, b.Contents)
	return sb.String()
}

func writeBlocksText(sb *strings.Builder, contents []BlockContent) {
	for _, c := range contents {
		switch v := c.(type) {
		case *Paragraph:
			sb.WriteString(v.Text())
			sb.WriteString("\n")
		case *Table:
			for _, row := range v.Rows {
				for i, cell := range row.Cells {
					if i > 0 {
						sb.WriteString("\t")
					}
					writeBlocksText(sb, cell.Contents)
				}
			}
		case *SdtBlock:
			if v.Content != nil {
				writeBlocksText(sb, v.Content.Contents)
			}
		case *CustomXMLBlock:
			writeBlocksText(sb, v.Contents)
		}
	}
}

// Document is the main document part.
type Document struct {
	Conformance *ConformanceClass
	Background  *Background
	Body        *Body
}

// ParseDocument builds the document model from a w:document root.
func ParseDocument(root *xmlnode.Node) (*Document, error) {
	if root.LocalName() != "document" {
		return nil, NewInvalidXMLError(fmt.Sprintf("unexpected root element %q", root.Name))
	}
	doc := &Document{}
	if v, ok := root.Attribute("w:conformance"); ok {
		cc, err := ParseConformanceClass(v)
		if err != nil {
			return nil, err
		}
		doc.Conformance = &cc
	}
	for _, child := range root.Children {
		switch child.LocalName() {
		case "background":
			bg, err := parseBackground(child)
			if err != nil {
				return nil, err
			}
			doc.Background = bg
		case "body":
			body, err := parseBody(child)
			if err != nil {
				return nil, err
			}
			doc.Body = body
		}
	}
	if doc.Body == nil {
		return nil, NewMissingChildError(root.Name, "body")
	}
	return doc, nil
}

// DecodeDocument reads a main document part from XML.
func DecodeDocument(r io.Reader) (*Document, error) {
	root, err := xmlnode.Decode(r)
	if err != nil {
		return nil, err
	}
	return ParseDocument(root)
}

// ParseSettings builds the settings model from a w:settings root.
func ParseSettings(root *xmlnode.Node) (*Settings, error) {
	if root.LocalName() != "settings" {
		return nil, NewInvalidXMLError(fmt.Sprintf("unexpected root element %q", root.Name))
	}
	return parseSettings(root)
}

// DecodeSettings reads a settings part from XML.
func DecodeSettings(r io.Reader) (*Settings, error) {
	root, err := xmlnode.Decode(r)
	if err != nil {
		return nil, err
	}
	return ParseSettings(root)
}

// ParseTextboxContent builds the block content of a w:txbxContent node
// found inside a drawing's graphic payload.
func ParseTextboxContent(node *xmlnode.Node) (TextboxContent, error) {
	if node.LocalName() != "txbxContent" {
		return TextboxContent{}, NewInvalidXMLError(fmt.Sprintf("unexpected element %q", node.Name))
	}
	return parseTextboxContent(node)
}
