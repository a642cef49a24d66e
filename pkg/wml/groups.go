package wml

import (
	"github.com/benjaminschreck/go-wordml/pkg/wml/xmlnode"
)

// BlockContent is one member of the block content choice: anything
// that can appear at body level or inside a table cell.
type BlockContent interface {
	isBlockContent()
}

// rangeMarkupNames lists the paired range markers that can appear at
// run level.
var rangeMarkupNames = map[string]struct{}{
	"bookmarkStart":               {},
	"bookmarkEnd":                 {},
	"moveFromRangeStart":          {},
	"moveFromRangeEnd":            {},
	"moveToRangeStart":            {},
	"moveToRangeEnd":              {},
	"commentRangeStart":           {},
	"commentRangeEnd":             {},
	"customXmlInsRangeStart":      {},
	"customXmlInsRangeEnd":        {},
	"customXmlDelRangeStart":      {},
	"customXmlDelRangeEnd":        {},
	"customXmlMoveFromRangeStart": {},
	"customXmlMoveFromRangeEnd":   {},
	"customXmlMoveToRangeStart":   {},
	"customXmlMoveToRangeEnd":     {},
}

func isRangeMarkupName(local string) bool {
	_, ok := rangeMarkupNames[local]
	return ok
}

// isRunLevelName reports membership in the run-level element choice,
// which is shared by paragraph content and block content.
func isRunLevelName(local string) bool {
	switch local {
	case "proofErr", "permStart", "permEnd",
		"ins", "del", "moveFrom", "moveTo",
		"oMathPara", "oMath":
		return true
	}
	return isRangeMarkupName(local)
}

// BookmarkStart opens a named bookmark range.
type BookmarkStart struct {
	Bookmark
}

// BookmarkEnd closes a bookmark range.
type BookmarkEnd struct {
	MarkupRange
}

// MoveFromRangeStart opens the source range of a tracked move.
type MoveFromRangeStart struct {
	MoveBookmark
}

// MoveFromRangeEnd closes the source range of a tracked move.
type MoveFromRangeEnd struct {
	MarkupRange
}

// MoveToRangeStart opens the destination range of a tracked move.
type MoveToRangeStart struct {
	MoveBookmark
}

// MoveToRangeEnd closes the destination range of a tracked move.
type MoveToRangeEnd struct {
	MarkupRange
}

// CommentRangeStart opens the range a comment refers to.
type CommentRangeStart struct {
	MarkupRange
}

// CommentRangeEnd closes the range a comment refers to.
type CommentRangeEnd struct {
	MarkupRange
}

// Custom XML markup tracked-change ranges. Starts carry the full change
// annotation, ends only the id.
type (
	CustomXMLInsRangeStart      struct{ TrackChange }
	CustomXMLInsRangeEnd        struct{ Markup }
	CustomXMLDelRangeStart      struct{ TrackChange }
	CustomXMLDelRangeEnd        struct{ Markup }
	CustomXMLMoveFromRangeStart struct{ TrackChange }
	CustomXMLMoveFromRangeEnd   struct{ Markup }
	CustomXMLMoveToRangeStart   struct{ TrackChange }
	CustomXMLMoveToRangeEnd     struct{ Markup }
)

func (BookmarkStart) isParagraphContent()               {}
func (BookmarkStart) isBlockContent()                   {}
func (BookmarkEnd) isParagraphContent()                 {}
func (BookmarkEnd) isBlockContent()                     {}
func (MoveFromRangeStart) isParagraphContent()          {}
func (MoveFromRangeStart) isBlockContent()              {}
func (MoveFromRangeEnd) isParagraphContent()            {}
func (MoveFromRangeEnd) isBlockContent()                {}
func (MoveToRangeStart) isParagraphContent()            {}
func (MoveToRangeStart) isBlockContent()                {}
func (MoveToRangeEnd) isParagraphContent()              {}
func (MoveToRangeEnd) isBlockContent()                  {}
func (CommentRangeStart) isParagraphContent()           {}
func (CommentRangeStart) isBlockContent()               {}
func (CommentRangeEnd) isParagraphContent()             {}
func (CommentRangeEnd) isBlockContent()                 {}
func (CustomXMLInsRangeStart) isParagraphContent()      {}
func (CustomXMLInsRangeStart) isBlockContent()          {}
func (CustomXMLInsRangeEnd) isParagraphContent()        {}
func (CustomXMLInsRangeEnd) isBlockContent()            {}
func (CustomXMLDelRangeStart) isParagraphContent()      {}
func (CustomXMLDelRangeStart) isBlockContent()          {}
func (CustomXMLDelRangeEnd) isParagraphContent()        {}
func (CustomXMLDelRangeEnd) isBlockContent()            {}
func (CustomXMLMoveFromRangeStart) isParagraphContent() {}
func (CustomXMLMoveFromRangeStart) isBlockContent()     {}
func (CustomXMLMoveFromRangeEnd) isParagraphContent()   {}
func (CustomXMLMoveFromRangeEnd) isBlockContent()       {}
func (CustomXMLMoveToRangeStart) isParagraphContent()   {}
func (CustomXMLMoveToRangeStart) isBlockContent()       {}
func (CustomXMLMoveToRangeEnd) isParagraphContent()     {}
func (CustomXMLMoveToRangeEnd) isBlockContent()         {}

// ProofError flags a spelling or grammar error boundary.
type ProofError struct {
	Type ProofErrType
}

func (ProofError) isParagraphContent() {}
func (ProofError) isBlockContent()     {}

func parseProofError(node *xmlnode.Node) (ProofError, error) {
	v, err := requireAttr(node, "w:type", "type")
	if err != nil {
		return ProofError{}, err
	}
	t, err := ParseProofErrType(v)
	if err != nil {
		return ProofError{}, err
	}
	return ProofError{Type: t}, nil
}

// PermStart opens a range editable by a named editor or editor group.
type PermStart struct {
	ID                   string
	EditorGroup          *EdGrp
	Editor               *string
	ColFirst             *int64
	ColLast              *int64
	DisplacedByCustomXML *DisplacedByCustomXML
}

func (PermStart) isParagraphContent() {}
func (PermStart) isBlockContent()     {}

func parsePermStart(node *xmlnode.Node) (PermStart, error) {
	id, err := requireAttr(node, "w:id", "id")
	if err != nil {
		return PermStart{}, err
	}
	perm := PermStart{ID: id, Editor: optStringAttr(node, "w:ed")}
	if v, ok := node.Attribute("w:edGrp"); ok {
		g, err := ParseEdGrp(v)
		if err != nil {
			return PermStart{}, err
		}
		perm.EditorGroup = &g
	}
	if perm.ColFirst, err = optDecimalAttr(node, "w:colFirst"); err != nil {
		return PermStart{}, err
	}
	if perm.ColLast, err = optDecimalAttr(node, "w:colLast"); err != nil {
		return PermStart{}, err
	}
	if v, ok := node.Attribute("w:displacedByCustomXml"); ok {
		d, err := ParseDisplacedByCustomXML(v)
		if err != nil {
			return PermStart{}, err
		}
		perm.DisplacedByCustomXML = &d
	}
	return perm, nil
}

// PermEnd closes an editable range.
type PermEnd struct {
	ID                   string
	DisplacedByCustomXML *DisplacedByCustomXML
}

func (PermEnd) isParagraphContent() {}
func (PermEnd) isBlockContent()     {}

func parsePermEnd(node *xmlnode.Node) (PermEnd, error) {
	id, err := requireAttr(node, "w:id", "id")
	if err != nil {
		return PermEnd{}, err
	}
	perm := PermEnd{ID: id}
	if v, ok := node.Attribute("w:displacedByCustomXml"); ok {
		d, err := ParseDisplacedByCustomXML(v)
		if err != nil {
			return PermEnd{}, err
		}
		perm.DisplacedByCustomXML = &d
	}
	return perm, nil
}

// RunTrackChangeKind names which tracked-change wrapper produced a
// RunTrackChange.
type RunTrackChangeKind string

const (
	RunInserted  RunTrackChangeKind = "ins"
	RunDeleted   RunTrackChangeKind = "del"
	RunMovedFrom RunTrackChangeKind = "moveFrom"
	RunMovedTo   RunTrackChangeKind = "moveTo"
)

// RunTrackChange wraps content inserted, deleted, or moved under
// tracked changes.
type RunTrackChange struct {
	TrackChange
	Kind     RunTrackChangeKind
	Contents []ParagraphContent
}

func (*RunTrackChange) isParagraphContent() {}
func (*RunTrackChange) isBlockContent()     {}

func parseRunTrackChange(node *xmlnode.Node) (*RunTrackChange, error) {
	tc, err := parseTrackChange(node)
	if err != nil {
		return nil, err
	}
	change := &RunTrackChange{
		TrackChange: tc,
		Kind:        RunTrackChangeKind(node.LocalName()),
	}
	for _, child := range node.Children {
		content, err := parseParagraphContent(child)
		if err != nil {
			if IsNotGroupMember(err) {
				continue
			}
			return nil, err
		}
		change.Contents = append(change.Contents, content)
	}
	return change, nil
}

// MathContent is an Office Open XML math zone kept as a raw subtree.
type MathContent struct {
	Kind string
	Raw  *xmlnode.Node
}

func (MathContent) isParagraphContent() {}
func (MathContent) isBlockContent()     {}

// parseRunLevelElement dispatches one run-level element by local name.
func parseRunLevelElement(node *xmlnode.Node) (ParagraphContent, error) {
	switch node.LocalName() {
	case "proofErr":
		return parseProofError(node)
	case "permStart":
		return parsePermStart(node)
	case "permEnd":
		return parsePermEnd(node)
	case "ins", "del", "moveFrom", "moveTo":
		return parseRunTrackChange(node)
	case "oMathPara", "oMath":
		return MathContent{Kind: node.LocalName(), Raw: node}, nil
	case "bookmarkStart":
		b, err := parseBookmark(node)
		if err != nil {
			return nil, err
		}
		return BookmarkStart{Bookmark: b}, nil
	case "bookmarkEnd":
		mr, err := parseMarkupRange(node)
		if err != nil {
			return nil, err
		}
		return BookmarkEnd{MarkupRange: mr}, nil
	case "moveFromRangeStart":
		mb, err := parseMoveBookmark(node)
		if err != nil {
			return nil, err
		}
		return MoveFromRangeStart{MoveBookmark: mb}, nil
	case "moveFromRangeEnd":
		mr, err := parseMarkupRange(node)
		if err != nil {
			return nil, err
		}
		return MoveFromRangeEnd{MarkupRange: mr}, nil
	case "moveToRangeStart":
		mb, err := parseMoveBookmark(node)
		if err != nil {
			return nil, err
		}
		return MoveToRangeStart{MoveBookmark: mb}, nil
	case "moveToRangeEnd":
		mr, err := parseMarkupRange(node)
		if err != nil {
			return nil, err
		}
		return MoveToRangeEnd{MarkupRange: mr}, nil
	case "commentRangeStart":
		mr, err := parseMarkupRange(node)
		if err != nil {
			return nil, err
		}
		return CommentRangeStart{MarkupRange: mr}, nil
	case "commentRangeEnd":
		mr, err := parseMarkupRange(node)
		if err != nil {
			return nil, err
		}
		return CommentRangeEnd{MarkupRange: mr}, nil
	case "customXmlInsRangeStart":
		tc, err := parseTrackChange(node)
		if err != nil {
			return nil, err
		}
		return CustomXMLInsRangeStart{TrackChange: tc}, nil
	case "customXmlInsRangeEnd":
		m, err := parseMarkup(node)
		if err != nil {
			return nil, err
		}
		return CustomXMLInsRangeEnd{Markup: m}, nil
	case "customXmlDelRangeStart":
		tc, err := parseTrackChange(node)
		if err != nil {
			return nil, err
		}
		return CustomXMLDelRangeStart{TrackChange: tc}, nil
	case "customXmlDelRangeEnd":
		m, err := parseMarkup(node)
		if err != nil {
			return nil, err
		}
		return CustomXMLDelRangeEnd{Markup: m}, nil
	case "customXmlMoveFromRangeStart":
		tc, err := parseTrackChange(node)
		if err != nil {
			return nil, err
		}
		return CustomXMLMoveFromRangeStart{TrackChange: tc}, nil
	case "customXmlMoveFromRangeEnd":
		m, err := parseMarkup(node)
		if err != nil {
			return nil, err
		}
		return CustomXMLMoveFromRangeEnd{Markup: m}, nil
	case "customXmlMoveToRangeStart":
		tc, err := parseTrackChange(node)
		if err != nil {
			return nil, err
		}
		return CustomXMLMoveToRangeStart{TrackChange: tc}, nil
	case "customXmlMoveToRangeEnd":
		m, err := parseMarkup(node)
		if err != nil {
			return nil, err
		}
		return CustomXMLMoveToRangeEnd{Markup: m}, nil
	default:
		return nil, NewNotGroupMemberError(node.Name, "RunLevelElement")
	}
}

// CustomXMLAttr is one attribute of a custom XML element.
type CustomXMLAttr struct {
	URI   *string
	Name  string
	Value string
}

// CustomXMLProperties carries the placeholder text and attributes of a
// custom XML element.
type CustomXMLProperties struct {
	Placeholder *string
	Attrs       []CustomXMLAttr
}

func parseCustomXMLProperties(node *xmlnode.Node) (CustomXMLProperties, error) {
	var props CustomXMLProperties
	for _, child := range node.Children {
		switch child.LocalName() {
		case "placeholder":
			v, err := valAttr(child)
			if err != nil {
				return CustomXMLProperties{}, err
			}
			props.Placeholder = &v
		case "attr":
			name, err := requireAttr(child, "w:name", "name")
			if err != nil {
				return CustomXMLProperties{}, err
			}
			value, err := valAttr(child)
			if err != nil {
				return CustomXMLProperties{}, err
			}
			props.Attrs = append(props.Attrs, CustomXMLAttr{
				URI:   optStringAttr(child, "w:uri"),
				Name:  name,
				Value: value,
			})
		}
	}
	return props, nil
}

// CustomXMLRun is a custom XML element wrapping paragraph content.
type CustomXMLRun struct {
	URI        *string
	Element    string
	Properties *CustomXMLProperties
	Contents   []ParagraphContent
}

func (*CustomXMLRun) isParagraphContent() {}

func parseCustomXMLRun(node *xmlnode.Node) (*CustomXMLRun, error) {
	element, err := requireAttr(node, "w:element", "element")
	if err != nil {
		return nil, err
	}
	cx := &CustomXMLRun{URI: optStringAttr(node, "w:uri"), Element: element}
	for _, child := range node.Children {
		if child.LocalName() == "customXmlPr" {
			props, err := parseCustomXMLProperties(child)
			if err != nil {
				return nil, err
			}
			cx.Properties = &props
			continue
		}
		content, err := parseParagraphContent(child)
		if err != nil {
			if IsNotGroupMember(err) {
				continue
			}
			return nil, err
		}
		cx.Contents = append(cx.Contents, content)
	}
	return cx, nil
}

// CustomXMLBlock is a custom XML element wrapping block content.
type CustomXMLBlock struct {
	URI        *string
	Element    string
	Properties *CustomXMLProperties
	Contents   []BlockContent
}

func (*CustomXMLBlock) isBlockContent() {}

func parseCustomXMLBlock(node *xmlnode.Node) (*CustomXMLBlock, error) {
	element, err := requireAttr(node, "w:element", "element")
	if err != nil {
		return nil, err
	}
	cx := &CustomXMLBlock{URI: optStringAttr(node, "w:uri"), Element: element}
	for _, child := range node.Children {
		if child.LocalName() == "customXmlPr" {
			props, err := parseCustomXMLProperties(child)
			if err != nil {
				return nil, err
			}
			cx.Properties = &props
			continue
		}
		content, err := parseBlockContent(child)
		if err != nil {
			if IsNotGroupMember(err) {
				continue
			}
			return nil, err
		}
		cx.Contents = append(cx.Contents, content)
	}
	return cx, nil
}

// SmartTagProperties carries the attributes of a smart tag.
type SmartTagProperties struct {
	Attrs []CustomXMLAttr
}

// SmartTag is recognized text wrapped with semantic metadata.
type SmartTag struct {
	URI        *string
	Element    string
	Properties *SmartTagProperties
	Contents   []ParagraphContent
}

func (*SmartTag) isParagraphContent() {}

func parseSmartTag(node *xmlnode.Node) (*SmartTag, error) {
	element, err := requireAttr(node, "w:element", "element")
	if err != nil {
		return nil, err
	}
	st := &SmartTag{URI: optStringAttr(node, "w:uri"), Element: element}
	for _, child := range node.Children {
		if child.LocalName() == "smartTagPr" {
			props, err := parseCustomXMLProperties(child)
			if err != nil {
				return nil, err
			}
			st.Properties = &SmartTagProperties{Attrs: props.Attrs}
			continue
		}
		content, err := parseParagraphContent(child)
		if err != nil {
			if IsNotGroupMember(err) {
				continue
			}
			return nil, err
		}
		st.Contents = append(st.Contents, content)
	}
	return st, nil
}

// DirContentRun overrides the base text direction of its content.
type DirContentRun struct {
	Direction *Direction
	Contents  []ParagraphContent
}

func (*DirContentRun) isParagraphContent() {}

func parseDirContentRun(node *xmlnode.Node) (*DirContentRun, error) {
	dcr := &DirContentRun{}
	if v, ok := node.Attribute("w:val"); ok {
		d, err := ParseDirection(v)
		if err != nil {
			return nil, err
		}
		dcr.Direction = &d
	}
	for _, child := range node.Children {
		content, err := parseParagraphContent(child)
		if err != nil {
			if IsNotGroupMember(err) {
				continue
			}
			return nil, err
		}
		dcr.Contents = append(dcr.Contents, content)
	}
	return dcr, nil
}

// BdoContentRun forces a bidirectional override on its content.
type BdoContentRun struct {
	Direction *Direction
	Contents  []ParagraphContent
}

func (*BdoContentRun) isParagraphContent() {}

func parseBdoContentRun(node *xmlnode.Node) (*BdoContentRun, error) {
	dcr, err := parseDirContentRun(node)
	if err != nil {
		return nil, err
	}
	return &BdoContentRun{Direction: dcr.Direction, Contents: dcr.Contents}, nil
}

// AltChunk imports external content at block level by relationship id.
type AltChunk struct {
	RelationshipID *string
}

func (AltChunk) isBlockContent() {}

// isBlockContentName reports membership in the block content choice as
// it appears at body and cell level.
func isBlockContentName(local string) bool {
	switch local {
	case "p", "tbl", "customXml", "sdt", "altChunk":
		return true
	}
	return isRunLevelName(local)
}

// parseBlockContent dispatches one block-level node by local name.
// Nodes outside the choice return the not-group-member sentinel.
func parseBlockContent(node *xmlnode.Node) (BlockContent, error) {
	switch node.LocalName() {
	case "p":
		return parseParagraph(node)
	case "tbl":
		return parseTable(node)
	case "customXml":
		return parseCustomXMLBlock(node)
	case "sdt":
		return parseSdtBlock(node)
	case "altChunk":
		return AltChunk{RelationshipID: optStringAttr(node, "r:id")}, nil
	}
	if isRunLevelName(node.LocalName()) {
		content, err := parseRunLevelElement(node)
		if err != nil {
			return nil, err
		}
		block, ok := content.(BlockContent)
		if !ok {
			return nil, NewNotGroupMemberError(node.Name, "BlockContent")
		}
		return block, nil
	}
	return nil, NewNotGroupMemberError(node.Name, "BlockContent")
}
