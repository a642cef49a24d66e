package wml

import (
	"strings"

	"github.com/benjaminschreck/go-wordml/pkg/wml/xmlnode"
)

// RunInnerContent is one member of the run content choice: anything
// that can appear inside w:r after its properties.
type RunInnerContent interface {
	isRunInnerContent()
}

// Run is a region of text sharing one set of properties.
type Run struct {
	Properties *RunProperties
	Contents   []RunInnerContent

	RsidRPr *uint32
	RsidDel *uint32
	RsidR   *uint32
}

func (Run) isParagraphContent() {}

func parseRun(node *xmlnode.Node) (*Run, error) {
	run := &Run{}
	var err error
	if run.RsidRPr, err = optLongHexAttr(node, "w:rsidRPr"); err != nil {
		return nil, err
	}
	if run.RsidDel, err = optLongHexAttr(node, "w:rsidDel"); err != nil {
		return nil, err
	}
	if run.RsidR, err = optLongHexAttr(node, "w:rsidR"); err != nil {
		return nil, err
	}
	for _, child := range node.Children {
		if child.LocalName() == "rPr" {
			props, err := parseRunProperties(child)
			if err != nil {
				return nil, err
			}
			run.Properties = props
			continue
		}
		content, err := parseRunInnerContent(child)
		if err != nil {
			if IsNotGroupMember(err) {
				Debug("skipping unrecognized run element %s", child.Name)
				continue
			}
			return nil, err
		}
		run.Contents = append(run.Contents, content)
	}
	return run, nil
}

// Text returns the concatenated literal text of the run. Breaks, tabs,
// and carriage returns contribute their usual plain-text stand-ins.
func (r *Run) Text() string {
	var sb strings.Builder
	for _, c := range r.Contents {
		switch v := c.(type) {
		case Text:
			sb.WriteString(v.Text)
		case Break:
			sb.WriteString("\n")
		case Marker:
			switch v {
			case MarkerTab:
				sb.WriteString("\t")
			case MarkerCarriageReturn:
				sb.WriteString("\n")
			case MarkerNoBreakHyphen:
				sb.WriteString("-")
			}
		}
	}
	return sb.String()
}

// Text is literal run text. Space preserves the xml:space attribute so
// callers can tell significant whitespace apart.
type Text struct {
	Text  string
	Space *string
}

// DeletedText is run text removed under tracked changes.
type DeletedText Text

// InstructionText is field instruction text.
type InstructionText Text

// DeletedInstructionText is field instruction text removed under
// tracked changes.
type DeletedInstructionText Text

func (Text) isRunInnerContent()                   {}
func (DeletedText) isRunInnerContent()            {}
func (InstructionText) isRunInnerContent()        {}
func (DeletedInstructionText) isRunInnerContent() {}

func parseText(node *xmlnode.Node) Text {
	return Text{
		Text:  node.Text,
		Space: optStringAttr(node, "xml:space"),
	}
}

// Break ends the current line or page. A missing type means a text
// wrapping break.
type Break struct {
	Type  *BrType
	Clear *BrClear
}

func (Break) isRunInnerContent() {}

func parseBreak(node *xmlnode.Node) (Break, error) {
	var br Break
	if v, ok := node.Attribute("w:type"); ok {
		t, err := ParseBrType(v)
		if err != nil {
			return Break{}, err
		}
		br.Type = &t
	}
	if v, ok := node.Attribute("w:clear"); ok {
		c, err := ParseBrClear(v)
		if err != nil {
			return Break{}, err
		}
		br.Clear = &c
	}
	return br, nil
}

// Marker is an attribute-less run element whose meaning is carried
// entirely by its name: tabs, hyphens, date fields, reference marks.
type Marker string

const (
	MarkerTab                   Marker = "tab"
	MarkerCarriageReturn        Marker = "cr"
	MarkerNoBreakHyphen         Marker = "noBreakHyphen"
	MarkerSoftHyphen            Marker = "softHyphen"
	MarkerDayShort              Marker = "dayShort"
	MarkerMonthShort            Marker = "monthShort"
	MarkerYearShort             Marker = "yearShort"
	MarkerDayLong               Marker = "dayLong"
	MarkerMonthLong             Marker = "monthLong"
	MarkerYearLong              Marker = "yearLong"
	MarkerAnnotationRef         Marker = "annotationRef"
	MarkerFootnoteRef           Marker = "footnoteRef"
	MarkerEndnoteRef            Marker = "endnoteRef"
	MarkerSeparator             Marker = "separator"
	MarkerContinuationSeparator Marker = "continuationSeparator"
	MarkerPageNumber            Marker = "pgNum"
	MarkerLastRenderedPageBreak Marker = "lastRenderedPageBreak"
)

func (Marker) isRunInnerContent() {}

func isMarkerName(local string) bool {
	switch local {
	case "tab", "cr", "noBreakHyphen", "softHyphen",
		"dayShort", "monthShort", "yearShort",
		"dayLong", "monthLong", "yearLong",
		"annotationRef", "footnoteRef", "endnoteRef",
		"separator", "continuationSeparator",
		"pgNum", "lastRenderedPageBreak":
		return true
	}
	return false
}

// Sym is a single character from a named symbol font.
type Sym struct {
	Font *string
	Char *uint16
}

func (Sym) isRunInnerContent() {}

func parseSym(node *xmlnode.Node) (Sym, error) {
	sym := Sym{Font: optStringAttr(node, "w:font")}
	if v, ok := node.Attribute("w:char"); ok {
		c, err := ParseShortHex(v)
		if err != nil {
			return Sym{}, err
		}
		sym.Char = &c
	}
	return sym, nil
}

// EmbeddedObject is an inline embedded object. Its drawing and control
// payload stays as a raw subtree; only the original extent is decoded.
type EmbeddedObject struct {
	DxaOrig *TwipsMeasure
	DyaOrig *TwipsMeasure
	Content []*xmlnode.Node
}

func (EmbeddedObject) isRunInnerContent() {}

func parseEmbeddedObject(node *xmlnode.Node) (EmbeddedObject, error) {
	var obj EmbeddedObject
	var err error
	if obj.DxaOrig, err = optTwipsAttr(node, "w:dxaOrig"); err != nil {
		return EmbeddedObject{}, err
	}
	if obj.DyaOrig, err = optTwipsAttr(node, "w:dyaOrig"); err != nil {
		return EmbeddedObject{}, err
	}
	obj.Content = node.Children
	return obj, nil
}

// FieldChar delimits a complex field: begin, separate, or end.
type FieldChar struct {
	Type      FldCharType
	FieldLock *bool
	Dirty     *bool
}

func (FieldChar) isRunInnerContent() {}

func parseFieldChar(node *xmlnode.Node) (FieldChar, error) {
	typStr, err := requireAttr(node, "w:fldCharType", "fldCharType")
	if err != nil {
		return FieldChar{}, err
	}
	typ, err := ParseFldCharType(typStr)
	if err != nil {
		return FieldChar{}, err
	}
	fc := FieldChar{Type: typ}
	if fc.FieldLock, err = optBoolAttr(node, "w:fldLock"); err != nil {
		return FieldChar{}, err
	}
	if fc.Dirty, err = optBoolAttr(node, "w:dirty"); err != nil {
		return FieldChar{}, err
	}
	return fc, nil
}

// RubyProperties controls the placement and size of phonetic guide
// text.
type RubyProperties struct {
	Align        RubyAlign
	Size         HpsMeasure
	Raise        HpsMeasure
	BaseTextSize HpsMeasure
	Language     string
	Dirty        *bool
}

func parseRubyProperties(node *xmlnode.Node) (RubyProperties, error) {
	var props RubyProperties

	alignNode := node.FirstChild("rubyAlign")
	if alignNode == nil {
		return RubyProperties{}, NewMissingChildError(node.Name, "rubyAlign")
	}
	alignStr, err := valAttr(alignNode)
	if err != nil {
		return RubyProperties{}, err
	}
	if props.Align, err = ParseRubyAlign(alignStr); err != nil {
		return RubyProperties{}, err
	}

	for _, name := range []string{"hps", "hpsRaise", "hpsBaseText"} {
		child := node.FirstChild(name)
		if child == nil {
			return RubyProperties{}, NewMissingChildError(node.Name, name)
		}
		m, err := parseHpsVal(child)
		if err != nil {
			return RubyProperties{}, err
		}
		switch name {
		case "hps":
			props.Size = m
		case "hpsRaise":
			props.Raise = m
		case "hpsBaseText":
			props.BaseTextSize = m
		}
	}

	lidNode := node.FirstChild("lid")
	if lidNode == nil {
		return RubyProperties{}, NewMissingChildError(node.Name, "lid")
	}
	if props.Language, err = valAttr(lidNode); err != nil {
		return RubyProperties{}, err
	}

	if dirtyNode := node.FirstChild("dirty"); dirtyNode != nil {
		v, err := parseOnOffElement(dirtyNode)
		if err != nil {
			return RubyProperties{}, err
		}
		props.Dirty = &v
	}
	return props, nil
}

// RubyContent is the guide or base text of a phonetic guide.
type RubyContent struct {
	Contents []ParagraphContent
}

func parseRubyContent(node *xmlnode.Node) (RubyContent, error) {
	var rc RubyContent
	for _, child := range node.Children {
		content, err := parseParagraphContent(child)
		if err != nil {
			if IsNotGroupMember(err) {
				continue
			}
			return RubyContent{}, err
		}
		rc.Contents = append(rc.Contents, content)
	}
	return rc, nil
}

// Ruby is East Asian phonetic guide text placed over a base run.
type Ruby struct {
	Properties RubyProperties
	Content    RubyContent
	Base       RubyContent
}

func (Ruby) isRunInnerContent() {}

func parseRuby(node *xmlnode.Node) (Ruby, error) {
	propsNode := node.FirstChild("rubyPr")
	if propsNode == nil {
		return Ruby{}, NewMissingChildError(node.Name, "rubyPr")
	}
	props, err := parseRubyProperties(propsNode)
	if err != nil {
		return Ruby{}, err
	}
	rtNode := node.FirstChild("rt")
	if rtNode == nil {
		return Ruby{}, NewMissingChildError(node.Name, "rt")
	}
	content, err := parseRubyContent(rtNode)
	if err != nil {
		return Ruby{}, err
	}
	baseNode := node.FirstChild("rubyBase")
	if baseNode == nil {
		return Ruby{}, NewMissingChildError(node.Name, "rubyBase")
	}
	base, err := parseRubyContent(baseNode)
	if err != nil {
		return Ruby{}, err
	}
	return Ruby{Properties: props, Content: content, Base: base}, nil
}

// FootnoteReference marks the anchor of a footnote in body text.
type FootnoteReference struct {
	CustomMarkFollows *bool
	ID                int64
}

// EndnoteReference marks the anchor of an endnote in body text.
type EndnoteReference FootnoteReference

func (FootnoteReference) isRunInnerContent() {}
func (EndnoteReference) isRunInnerContent()  {}

func parseFtnEdnRef(node *xmlnode.Node) (FootnoteReference, error) {
	markup, err := parseMarkup(node)
	if err != nil {
		return FootnoteReference{}, err
	}
	ref := FootnoteReference{ID: markup.ID}
	if ref.CustomMarkFollows, err = optBoolAttr(node, "w:customMarkFollows"); err != nil {
		return FootnoteReference{}, err
	}
	return ref, nil
}

// CommentReference marks the anchor of a comment.
type CommentReference struct {
	Markup
}

func (CommentReference) isRunInnerContent() {}

// PTab is an absolute position tab.
type PTab struct {
	Alignment  PTabAlignment
	RelativeTo PTabRelativeTo
	Leader     PTabLeader
}

func (PTab) isRunInnerContent() {}

func parsePTab(node *xmlnode.Node) (PTab, error) {
	alignStr, err := requireAttr(node, "w:alignment", "alignment")
	if err != nil {
		return PTab{}, err
	}
	relStr, err := requireAttr(node, "w:relativeTo", "relativeTo")
	if err != nil {
		return PTab{}, err
	}
	leaderStr, err := requireAttr(node, "w:leader", "leader")
	if err != nil {
		return PTab{}, err
	}
	var pt PTab
	if pt.Alignment, err = ParsePTabAlignment(alignStr); err != nil {
		return PTab{}, err
	}
	if pt.RelativeTo, err = ParsePTabRelativeTo(relStr); err != nil {
		return PTab{}, err
	}
	if pt.Leader, err = ParsePTabLeader(leaderStr); err != nil {
		return PTab{}, err
	}
	return pt, nil
}

// isRunInnerContentName reports membership in the run content choice.
func isRunInnerContentName(local string) bool {
	if isMarkerName(local) {
		return true
	}
	switch local {
	case "br", "t", "contentPart", "delText", "instrText", "delInstrText",
		"sym", "object", "fldChar", "ruby",
		"footnoteReference", "endnoteReference", "commentReference",
		"drawing", "ptab":
		return true
	}
	return false
}

// parseRunInnerContent dispatches one child of w:r by local name. Nodes
// outside the choice return the not-group-member sentinel.
func parseRunInnerContent(node *xmlnode.Node) (RunInnerContent, error) {
	local := node.LocalName()
	if isMarkerName(local) {
		return Marker(local), nil
	}
	switch local {
	case "br":
		return parseBreak(node)
	case "t":
		return parseText(node), nil
	case "contentPart":
		return parseRel(node)
	case "delText":
		return DeletedText(parseText(node)), nil
	case "instrText":
		return InstructionText(parseText(node)), nil
	case "delInstrText":
		return DeletedInstructionText(parseText(node)), nil
	case "sym":
		return parseSym(node)
	case "object":
		return parseEmbeddedObject(node)
	case "fldChar":
		return parseFieldChar(node)
	case "ruby":
		return parseRuby(node)
	case "footnoteReference":
		return parseFtnEdnRef(node)
	case "endnoteReference":
		ref, err := parseFtnEdnRef(node)
		if err != nil {
			return nil, err
		}
		return EndnoteReference(ref), nil
	case "commentReference":
		markup, err := parseMarkup(node)
		if err != nil {
			return nil, err
		}
		return CommentReference{Markup: markup}, nil
	case "drawing":
		return parseDrawing(node)
	case "ptab":
		return parsePTab(node)
	default:
		return nil, NewNotGroupMemberError(node.Name, "RunInnerContent")
	}
}
