package wml

import (
	"strings"

	"github.com/benjaminschreck/go-wordml/pkg/wml/xmlnode"
)

// ParagraphContent is one member of the paragraph content choice:
// anything that can appear inside w:p after its properties.
type ParagraphContent interface {
	isParagraphContent()
}

// Paragraph is a block of content ending in a paragraph mark.
type Paragraph struct {
	Properties *ParagraphProperties
	Contents   []ParagraphContent

	RsidRPr      *uint32
	RsidR        *uint32
	RsidDel      *uint32
	RsidP        *uint32
	RsidRDefault *uint32
}

func (Paragraph) isBlockContent() {}

func parseParagraph(node *xmlnode.Node) (*Paragraph, error) {
	para := &Paragraph{}
	var err error
	if para.RsidRPr, err = optLongHexAttr(node, "w:rsidRPr"); err != nil {
		return nil, err
	}
	if para.RsidR, err = optLongHexAttr(node, "w:rsidR"); err != nil {
		return nil, err
	}
	if para.RsidDel, err = optLongHexAttr(node, "w:rsidDel"); err != nil {
		return nil, err
	}
	if para.RsidP, err = optLongHexAttr(node, "w:rsidP"); err != nil {
		return nil, err
	}
	if para.RsidRDefault, err = optLongHexAttr(node, "w:rsidRDefault"); err != nil {
		return nil, err
	}
	for _, child := range node.Children {
		if child.LocalName() == "pPr" {
			props, err := parseParagraphProperties(child)
			if err != nil {
				return nil, err
			}
			para.Properties = props
			continue
		}
		content, err := parseParagraphContent(child)
		if err != nil {
			if IsNotGroupMember(err) {
				continue
			}
			return nil, err
		}
		para.Contents = append(para.Contents, content)
	}
	return para, nil
}

// Text returns the concatenated text of the paragraph's runs, including
// runs nested in hyperlinks and simple fields.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	writeContentsText(&sb, p.Contents)
	return sb.String()
}

func writeContentsText(sb *strings.Builder, contents []ParagraphContent) {
	for _, c := range contents {
		switch v := c.(type) {
		case *Run:
			sb.WriteString(v.Text())
		case *Hyperlink:
			writeContentsText(sb, v.Contents)
		case *SimpleField:
			writeContentsText(sb, v.Contents)
		case *RunTrackChange:
			if v.Kind == RunInserted || v.Kind == RunMovedTo {
				writeContentsText(sb, v.Contents)
			}
		case *SdtRun:
			if v.Content != nil {
				writeContentsText(sb, v.Content.Contents)
			}
		}
	}
}

// SimpleField is a field with its instruction inline in an attribute
// and its cached result as child content.
type SimpleField struct {
	Instruction string
	FieldLock   *bool
	Dirty       *bool
	Contents    []ParagraphContent
}

func (*SimpleField) isParagraphContent() {}

func parseSimpleField(node *xmlnode.Node) (*SimpleField, error) {
	instr, err := requireAttr(node, "w:instr", "instr")
	if err != nil {
		return nil, err
	}
	field := &SimpleField{Instruction: instr}
	if field.FieldLock, err = optBoolAttr(node, "w:fldLock"); err != nil {
		return nil, err
	}
	if field.Dirty, err = optBoolAttr(node, "w:dirty"); err != nil {
		return nil, err
	}
	for _, child := range node.Children {
		content, err := parseParagraphContent(child)
		if err != nil {
			if IsNotGroupMember(err) {
				continue
			}
			return nil, err
		}
		field.Contents = append(field.Contents, content)
	}
	return field, nil
}

// Hyperlink wraps paragraph content in a link to an external target or
// an internal anchor.
type Hyperlink struct {
	TargetFrame    *string
	Tooltip        *string
	DocLocation    *string
	History        *bool
	Anchor         *string
	RelationshipID *string
	Contents       []ParagraphContent
}

func (*Hyperlink) isParagraphContent() {}

func parseHyperlink(node *xmlnode.Node) (*Hyperlink, error) {
	link := &Hyperlink{
		TargetFrame:    optStringAttr(node, "w:tgtFrame"),
		Tooltip:        optStringAttr(node, "w:tooltip"),
		DocLocation:    optStringAttr(node, "w:docLocation"),
		Anchor:         optStringAttr(node, "w:anchor"),
		RelationshipID: optStringAttr(node, "r:id"),
	}
	var err error
	if link.History, err = optBoolAttr(node, "w:history"); err != nil {
		return nil, err
	}
	for _, child := range node.Children {
		content, err := parseParagraphContent(child)
		if err != nil {
			if IsNotGroupMember(err) {
				continue
			}
			return nil, err
		}
		link.Contents = append(link.Contents, content)
	}
	return link, nil
}

// isParagraphContentName reports membership in the paragraph content
// choice.
func isParagraphContentName(local string) bool {
	switch local {
	case "r", "fldSimple", "hyperlink", "subDoc",
		"customXml", "smartTag", "sdt", "dir", "bdo":
		return true
	}
	return isRunLevelName(local)
}

// parseParagraphContent dispatches one child of w:p (or a nested
// content wrapper) by local name. Nodes outside the choice return the
// not-group-member sentinel.
func parseParagraphContent(node *xmlnode.Node) (ParagraphContent, error) {
	switch node.LocalName() {
	case "r":
		return parseRun(node)
	case "fldSimple":
		return parseSimpleField(node)
	case "hyperlink":
		return parseHyperlink(node)
	case "subDoc":
		return parseRel(node)
	case "customXml":
		return parseCustomXMLRun(node)
	case "smartTag":
		return parseSmartTag(node)
	case "sdt":
		return parseSdtRun(node)
	case "dir":
		return parseDirContentRun(node)
	case "bdo":
		return parseBdoContentRun(node)
	}
	if isRunLevelName(node.LocalName()) {
		return parseRunLevelElement(node)
	}
	return nil, NewNotGroupMemberError(node.Name, "ParagraphContent")
}
