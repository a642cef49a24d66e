package wml

import (
	"github.com/benjaminschreck/go-wordml/pkg/wml/xmlnode"
)

// FrameProperties places a paragraph in a text frame or drop cap.
type FrameProperties struct {
	DropCap    *DropCap
	Lines      *int64
	Width      *TwipsMeasure
	Height     *TwipsMeasure
	VSpace     *TwipsMeasure
	HSpace     *TwipsMeasure
	Wrap       *Wrap
	HAnchor    *Anchor
	VAnchor    *Anchor
	X          *SignedTwipsMeasure
	XAlign     *XAlign
	Y          *SignedTwipsMeasure
	YAlign     *YAlign
	HRule      *HeightRule
	AnchorLock *bool
}

func parseFrameProperties(node *xmlnode.Node) (FrameProperties, error) {
	var fp FrameProperties
	var err error
	if v, ok := node.Attribute("w:dropCap"); ok {
		d, err := ParseDropCap(v)
		if err != nil {
			return FrameProperties{}, err
		}
		fp.DropCap = &d
	}
	if fp.Lines, err = optDecimalAttr(node, "w:lines"); err != nil {
		return FrameProperties{}, err
	}
	if fp.Width, err = optTwipsAttr(node, "w:w"); err != nil {
		return FrameProperties{}, err
	}
	if fp.Height, err = optTwipsAttr(node, "w:h"); err != nil {
		return FrameProperties{}, err
	}
	if fp.VSpace, err = optTwipsAttr(node, "w:vSpace"); err != nil {
		return FrameProperties{}, err
	}
	if fp.HSpace, err = optTwipsAttr(node, "w:hSpace"); err != nil {
		return FrameProperties{}, err
	}
	if v, ok := node.Attribute("w:wrap"); ok {
		w, err := ParseWrap(v)
		if err != nil {
			return FrameProperties{}, err
		}
		fp.Wrap = &w
	}
	if v, ok := node.Attribute("w:hAnchor"); ok {
		a, err := ParseAnchor(v)
		if err != nil {
			return FrameProperties{}, err
		}
		fp.HAnchor = &a
	}
	if v, ok := node.Attribute("w:vAnchor"); ok {
		a, err := ParseAnchor(v)
		if err != nil {
			return FrameProperties{}, err
		}
		fp.VAnchor = &a
	}
	if fp.X, err = optSignedTwipsAttr(node, "w:x"); err != nil {
		return FrameProperties{}, err
	}
	if v, ok := node.Attribute("w:xAlign"); ok {
		a, err := ParseXAlign(v)
		if err != nil {
			return FrameProperties{}, err
		}
		fp.XAlign = &a
	}
	if fp.Y, err = optSignedTwipsAttr(node, "w:y"); err != nil {
		return FrameProperties{}, err
	}
	if v, ok := node.Attribute("w:yAlign"); ok {
		a, err := ParseYAlign(v)
		if err != nil {
			return FrameProperties{}, err
		}
		fp.YAlign = &a
	}
	if v, ok := node.Attribute("w:hRule"); ok {
		h, err := ParseHeightRule(v)
		if err != nil {
			return FrameProperties{}, err
		}
		fp.HRule = &h
	}
	if fp.AnchorLock, err = optBoolAttr(node, "w:anchorLock"); err != nil {
		return FrameProperties{}, err
	}
	return fp, nil
}

// UpdateWith right-biases every field of the frame placement.
func (f FrameProperties) UpdateWith(other FrameProperties) FrameProperties {
	return FrameProperties{
		DropCap:    pickOpt(f.DropCap, other.DropCap),
		Lines:      pickOpt(f.Lines, other.Lines),
		Width:      pickOpt(f.Width, other.Width),
		Height:     pickOpt(f.Height, other.Height),
		VSpace:     pickOpt(f.VSpace, other.VSpace),
		HSpace:     pickOpt(f.HSpace, other.HSpace),
		Wrap:       pickOpt(f.Wrap, other.Wrap),
		HAnchor:    pickOpt(f.HAnchor, other.HAnchor),
		VAnchor:    pickOpt(f.VAnchor, other.VAnchor),
		X:          pickOpt(f.X, other.X),
		XAlign:     pickOpt(f.XAlign, other.XAlign),
		Y:          pickOpt(f.Y, other.Y),
		YAlign:     pickOpt(f.YAlign, other.YAlign),
		HRule:      pickOpt(f.HRule, other.HRule),
		AnchorLock: pickOpt(f.AnchorLock, other.AnchorLock),
	}
}

// NumberingProperties binds a paragraph to a numbering definition.
type NumberingProperties struct {
	Level    *int64
	NumID    *int64
	Inserted *TrackChange
}

func parseNumberingProperties(node *xmlnode.Node) (NumberingProperties, error) {
	var np NumberingProperties
	for _, child := range node.Children {
		switch child.LocalName() {
		case "ilvl":
			n, err := parseDecimalVal(child)
			if err != nil {
				return NumberingProperties{}, err
			}
			np.Level = &n
		case "numId":
			n, err := parseDecimalVal(child)
			if err != nil {
				return NumberingProperties{}, err
			}
			np.NumID = &n
		case "ins":
			tc, err := parseTrackChange(child)
			if err != nil {
				return NumberingProperties{}, err
			}
			np.Inserted = &tc
		}
	}
	return np, nil
}

// UpdateWith right-biases every field of the numbering binding.
func (n NumberingProperties) UpdateWith(other NumberingProperties) NumberingProperties {
	return NumberingProperties{
		Level:    pickOpt(n.Level, other.Level),
		NumID:    pickOpt(n.NumID, other.NumID),
		Inserted: pickOpt(n.Inserted, other.Inserted),
	}
}

// ParagraphBorders holds the six paragraph border slots.
type ParagraphBorders struct {
	Top     *Border
	Left    *Border
	Bottom  *Border
	Right   *Border
	Between *Border
	Bar     *Border
}

func parseParagraphBorders(node *xmlnode.Node) (ParagraphBorders, error) {
	var pb ParagraphBorders
	for _, child := range node.Children {
		var dest **Border
		switch child.LocalName() {
		case "top":
			dest = &pb.Top
		case "left":
			dest = &pb.Left
		case "bottom":
			dest = &pb.Bottom
		case "right":
			dest = &pb.Right
		case "between":
			dest = &pb.Between
		case "bar":
			dest = &pb.Bar
		default:
			continue
		}
		b, err := parseBorder(child)
		if err != nil {
			return ParagraphBorders{}, err
		}
		*dest = &b
	}
	return pb, nil
}

// UpdateWith merges border slots side by side, merging both-present
// slots field-wise.
func (p ParagraphBorders) UpdateWith(other ParagraphBorders) ParagraphBorders {
	return ParagraphBorders{
		Top:     mergeOpt(p.Top, other.Top),
		Left:    mergeOpt(p.Left, other.Left),
		Bottom:  mergeOpt(p.Bottom, other.Bottom),
		Right:   mergeOpt(p.Right, other.Right),
		Between: mergeOpt(p.Between, other.Between),
		Bar:     mergeOpt(p.Bar, other.Bar),
	}
}

// Spacing controls space above and below the paragraph and its line
// spacing.
type Spacing struct {
	Before            *TwipsMeasure
	BeforeLines       *int64
	BeforeAutospacing *bool
	After             *TwipsMeasure
	AfterLines        *int64
	AfterAutospacing  *bool
	Line              *SignedTwipsMeasure
	LineRule          *LineSpacingRule
}

func parseSpacing(node *xmlnode.Node) (Spacing, error) {
	var sp Spacing
	var err error
	if sp.Before, err = optTwipsAttr(node, "w:before"); err != nil {
		return Spacing{}, err
	}
	if sp.BeforeLines, err = optDecimalAttr(node, "w:beforeLines"); err != nil {
		return Spacing{}, err
	}
	if sp.BeforeAutospacing, err = optBoolAttr(node, "w:beforeAutospacing"); err != nil {
		return Spacing{}, err
	}
	if sp.After, err = optTwipsAttr(node, "w:after"); err != nil {
		return Spacing{}, err
	}
	if sp.AfterLines, err = optDecimalAttr(node, "w:afterLines"); err != nil {
		return Spacing{}, err
	}
	if sp.AfterAutospacing, err = optBoolAttr(node, "w:afterAutospacing"); err != nil {
		return Spacing{}, err
	}
	if sp.Line, err = optSignedTwipsAttr(node, "w:line"); err != nil {
		return Spacing{}, err
	}
	if v, ok := node.Attribute("w:lineRule"); ok {
		r, err := ParseLineSpacingRule(v)
		if err != nil {
			return Spacing{}, err
		}
		sp.LineRule = &r
	}
	return sp, nil
}

// UpdateWith right-biases every field of the spacing.
func (s Spacing) UpdateWith(other Spacing) Spacing {
	return Spacing{
		Before:            pickOpt(s.Before, other.Before),
		BeforeLines:       pickOpt(s.BeforeLines, other.BeforeLines),
		BeforeAutospacing: pickOpt(s.BeforeAutospacing, other.BeforeAutospacing),
		After:             pickOpt(s.After, other.After),
		AfterLines:        pickOpt(s.AfterLines, other.AfterLines),
		AfterAutospacing:  pickOpt(s.AfterAutospacing, other.AfterAutospacing),
		Line:              pickOpt(s.Line, other.Line),
		LineRule:          pickOpt(s.LineRule, other.LineRule),
	}
}

// Ind controls paragraph indentation. Both the start/end and left/right
// attribute spellings feed the same fields.
type Ind struct {
	Start          *SignedTwipsMeasure
	StartChars     *int64
	End            *SignedTwipsMeasure
	EndChars       *int64
	Hanging        *TwipsMeasure
	HangingChars   *int64
	FirstLine      *TwipsMeasure
	FirstLineChars *int64
}

func parseInd(node *xmlnode.Node) (Ind, error) {
	var ind Ind
	var err error
	for _, key := range []string{"w:left", "w:start"} {
		m, err := optSignedTwipsAttr(node, key)
		if err != nil {
			return Ind{}, err
		}
		if m != nil {
			ind.Start = m
		}
	}
	for _, key := range []string{"w:leftChars", "w:startChars"} {
		n, err := optDecimalAttr(node, key)
		if err != nil {
			return Ind{}, err
		}
		if n != nil {
			ind.StartChars = n
		}
	}
	for _, key := range []string{"w:right", "w:end"} {
		m, err := optSignedTwipsAttr(node, key)
		if err != nil {
			return Ind{}, err
		}
		if m != nil {
			ind.End = m
		}
	}
	for _, key := range []string{"w:rightChars", "w:endChars"} {
		n, err := optDecimalAttr(node, key)
		if err != nil {
			return Ind{}, err
		}
		if n != nil {
			ind.EndChars = n
		}
	}
	if ind.Hanging, err = optTwipsAttr(node, "w:hanging"); err != nil {
		return Ind{}, err
	}
	if ind.HangingChars, err = optDecimalAttr(node, "w:hangingChars"); err != nil {
		return Ind{}, err
	}
	if ind.FirstLine, err = optTwipsAttr(node, "w:firstLine"); err != nil {
		return Ind{}, err
	}
	if ind.FirstLineChars, err = optDecimalAttr(node, "w:firstLineChars"); err != nil {
		return Ind{}, err
	}
	return ind, nil
}

// UpdateWith right-biases every field of the indentation.
func (i Ind) UpdateWith(other Ind) Ind {
	return Ind{
		Start:          pickOpt(i.Start, other.Start),
		StartChars:     pickOpt(i.StartChars, other.StartChars),
		End:            pickOpt(i.End, other.End),
		EndChars:       pickOpt(i.EndChars, other.EndChars),
		Hanging:        pickOpt(i.Hanging, other.Hanging),
		HangingChars:   pickOpt(i.HangingChars, other.HangingChars),
		FirstLine:      pickOpt(i.FirstLine, other.FirstLine),
		FirstLineChars: pickOpt(i.FirstLineChars, other.FirstLineChars),
	}
}

// TabStop is one custom tab stop.
type TabStop struct {
	Alignment TabJc
	Leader    *TabTlc
	Position  SignedTwipsMeasure
}

func parseTabStop(node *xmlnode.Node) (TabStop, error) {
	valStr, err := valAttr(node)
	if err != nil {
		return TabStop{}, err
	}
	alignment, err := ParseTabJc(valStr)
	if err != nil {
		return TabStop{}, err
	}
	ts := TabStop{Alignment: alignment}
	if v, ok := node.Attribute("w:leader"); ok {
		l, err := ParseTabTlc(v)
		if err != nil {
			return TabStop{}, err
		}
		ts.Leader = &l
	}
	posStr, err := requireAttr(node, "w:pos", "pos")
	if err != nil {
		return TabStop{}, err
	}
	if ts.Position, err = ParseSignedTwipsMeasure(posStr); err != nil {
		return TabStop{}, err
	}
	return ts, nil
}

// parseTabs requires at least one tab stop inside w:tabs.
func parseTabs(node *xmlnode.Node) ([]TabStop, error) {
	var tabs []TabStop
	for _, child := range node.Children {
		if child.LocalName() != "tab" {
			continue
		}
		ts, err := parseTabStop(child)
		if err != nil {
			return nil, err
		}
		tabs = append(tabs, ts)
	}
	if len(tabs) == 0 {
		return nil, NewLimitViolationError(node.Name, "tab", 1, Unbounded, 0)
	}
	return tabs, nil
}

// ParagraphPropertiesBase is the shared paragraph-property bag: every
// formatting element that can appear in both direct and style-layer
// paragraph properties.
type ParagraphPropertiesBase struct {
	Style               *string
	KeepNext            *bool
	KeepLines           *bool
	PageBreakBefore     *bool
	FrameProperties     *FrameProperties
	WidowControl        *bool
	NumberingProperties *NumberingProperties
	SuppressLineNumbers *bool
	Borders             *ParagraphBorders
	Shading             *Shd
	Tabs                []TabStop
	SuppressAutoHyphens *bool
	Kinsoku             *bool
	WordWrap            *bool
	OverflowPunct       *bool
	TopLinePunct        *bool
	AutoSpaceDE         *bool
	AutoSpaceDN         *bool
	Bidi                *bool
	AdjustRightInd      *bool
	SnapToGrid          *bool
	Spacing             *Spacing
	Ind                 *Ind
	ContextualSpacing   *bool
	MirrorIndents       *bool
	SuppressOverlap     *bool
	Justification       *Jc
	TextDirection       *TextDirection
	TextAlignment       *TextAlignment
	TextboxTightWrap    *TextboxTightWrap
	OutlineLevel        *int64
	DivID               *int64
	ConditionalStyle    *Cnf
}

// updateFromNode consumes one property element into the bag, reporting
// whether the node was a member. Repeated singletons overwrite.
func (p *ParagraphPropertiesBase) updateFromNode(node *xmlnode.Node) (bool, error) {
	switch node.LocalName() {
	case "pStyle":
		v, err := parseStringVal(node)
		if err != nil {
			return true, err
		}
		p.Style = &v
	case "keepNext":
		return true, setOnOff(&p.KeepNext, node)
	case "keepLines":
		return true, setOnOff(&p.KeepLines, node)
	case "pageBreakBefore":
		return true, setOnOff(&p.PageBreakBefore, node)
	case "framePr":
		fp, err := parseFrameProperties(node)
		if err != nil {
			return true, err
		}
		p.FrameProperties = &fp
	case "widowControl":
		return true, setOnOff(&p.WidowControl, node)
	case "numPr":
		np, err := parseNumberingProperties(node)
		if err != nil {
			return true, err
		}
		p.NumberingProperties = &np
	case "suppressLineNumbers":
		return true, setOnOff(&p.SuppressLineNumbers, node)
	case "pBdr":
		pb, err := parseParagraphBorders(node)
		if err != nil {
			return true, err
		}
		p.Borders = &pb
	case "shd":
		shd, err := parseShd(node)
		if err != nil {
			return true, err
		}
		p.Shading = &shd
	case "tabs":
		tabs, err := parseTabs(node)
		if err != nil {
			return true, err
		}
		p.Tabs = tabs
	case "suppressAutoHyphens":
		return true, setOnOff(&p.SuppressAutoHyphens, node)
	case "kinsoku":
		return true, setOnOff(&p.Kinsoku, node)
	case "wordWrap":
		return true, setOnOff(&p.WordWrap, node)
	case "overflowPunct":
		return true, setOnOff(&p.OverflowPunct, node)
	case "topLinePunct":
		return true, setOnOff(&p.TopLinePunct, node)
	case "autoSpaceDE":
		return true, setOnOff(&p.AutoSpaceDE, node)
	case "autoSpaceDN":
		return true, setOnOff(&p.AutoSpaceDN, node)
	case "bidi":
		return true, setOnOff(&p.Bidi, node)
	case "adjustRightInd":
		return true, setOnOff(&p.AdjustRightInd, node)
	case "snapToGrid":
		return true, setOnOff(&p.SnapToGrid, node)
	case "spacing":
		sp, err := parseSpacing(node)
		if err != nil {
			return true, err
		}
		p.Spacing = &sp
	case "ind":
		ind, err := parseInd(node)
		if err != nil {
			return true, err
		}
		p.Ind = &ind
	case "contextualSpacing":
		return true, setOnOff(&p.ContextualSpacing, node)
	case "mirrorIndents":
		return true, setOnOff(&p.MirrorIndents, node)
	case "suppressOverlap":
		return true, setOnOff(&p.SuppressOverlap, node)
	case "jc":
		v, err := valAttr(node)
		if err != nil {
			return true, err
		}
		jc, err := ParseJc(v)
		if err != nil {
			return true, err
		}
		p.Justification = &jc
	case "textDirection":
		v, err := valAttr(node)
		if err != nil {
			return true, err
		}
		td, err := ParseTextDirection(v)
		if err != nil {
			return true, err
		}
		p.TextDirection = &td
	case "textAlignment":
		v, err := valAttr(node)
		if err != nil {
			return true, err
		}
		ta, err := ParseTextAlignment(v)
		if err != nil {
			return true, err
		}
		p.TextAlignment = &ta
	case "textboxTightWrap":
		v, err := valAttr(node)
		if err != nil {
			return true, err
		}
		tw, err := ParseTextboxTightWrap(v)
		if err != nil {
			return true, err
		}
		p.TextboxTightWrap = &tw
	case "outlineLvl":
		n, err := parseDecimalVal(node)
		if err != nil {
			return true, err
		}
		p.OutlineLevel = &n
	case "divId":
		n, err := parseDecimalVal(node)
		if err != nil {
			return true, err
		}
		p.DivID = &n
	case "cnfStyle":
		cnf, err := parseCnf(node)
		if err != nil {
			return true, err
		}
		p.ConditionalStyle = &cnf
	default:
		return false, nil
	}
	return true, nil
}

func setOnOff(dest **bool, node *xmlnode.Node) error {
	v, err := parseOnOffElement(node)
	if err != nil {
		return err
	}
	*dest = &v
	return nil
}

func parseParagraphPropertiesBase(node *xmlnode.Node) (ParagraphPropertiesBase, error) {
	var base ParagraphPropertiesBase
	for _, child := range node.Children {
		if _, err := base.updateFromNode(child); err != nil {
			return ParagraphPropertiesBase{}, err
		}
	}
	return base, nil
}

// UpdateWith merges two paragraph-property bags, the argument winning
// field by field. Tab stop lists replace wholesale.
func (p ParagraphPropertiesBase) UpdateWith(other ParagraphPropertiesBase) ParagraphPropertiesBase {
	merged := ParagraphPropertiesBase{
		Style:               pickOpt(p.Style, other.Style),
		KeepNext:            pickOpt(p.KeepNext, other.KeepNext),
		KeepLines:           pickOpt(p.KeepLines, other.KeepLines),
		PageBreakBefore:     pickOpt(p.PageBreakBefore, other.PageBreakBefore),
		FrameProperties:     mergeOpt(p.FrameProperties, other.FrameProperties),
		WidowControl:        pickOpt(p.WidowControl, other.WidowControl),
		NumberingProperties: mergeOpt(p.NumberingProperties, other.NumberingProperties),
		SuppressLineNumbers: pickOpt(p.SuppressLineNumbers, other.SuppressLineNumbers),
		Borders:             mergeOpt(p.Borders, other.Borders),
		Shading:             mergeOpt(p.Shading, other.Shading),
		Tabs:                p.Tabs,
		SuppressAutoHyphens: pickOpt(p.SuppressAutoHyphens, other.SuppressAutoHyphens),
		Kinsoku:             pickOpt(p.Kinsoku, other.Kinsoku),
		WordWrap:            pickOpt(p.WordWrap, other.WordWrap),
		OverflowPunct:       pickOpt(p.OverflowPunct, other.OverflowPunct),
		TopLinePunct:        pickOpt(p.TopLinePunct, other.TopLinePunct),
		AutoSpaceDE:         pickOpt(p.AutoSpaceDE, other.AutoSpaceDE),
		AutoSpaceDN:         pickOpt(p.AutoSpaceDN, other.AutoSpaceDN),
		Bidi:                pickOpt(p.Bidi, other.Bidi),
		AdjustRightInd:      pickOpt(p.AdjustRightInd, other.AdjustRightInd),
		SnapToGrid:          pickOpt(p.SnapToGrid, other.SnapToGrid),
		Spacing:             mergeOpt(p.Spacing, other.Spacing),
		Ind:                 mergeOpt(p.Ind, other.Ind),
		ContextualSpacing:   pickOpt(p.ContextualSpacing, other.ContextualSpacing),
		MirrorIndents:       pickOpt(p.MirrorIndents, other.MirrorIndents),
		SuppressOverlap:     pickOpt(p.SuppressOverlap, other.SuppressOverlap),
		Justification:       pickOpt(p.Justification, other.Justification),
		TextDirection:       pickOpt(p.TextDirection, other.TextDirection),
		TextAlignment:       pickOpt(p.TextAlignment, other.TextAlignment),
		TextboxTightWrap:    pickOpt(p.TextboxTightWrap, other.TextboxTightWrap),
		OutlineLevel:        pickOpt(p.OutlineLevel, other.OutlineLevel),
		DivID:               pickOpt(p.DivID, other.DivID),
		ConditionalStyle:    mergeOpt(p.ConditionalStyle, other.ConditionalStyle),
	}
	if other.Tabs != nil {
		merged.Tabs = other.Tabs
	}
	return merged
}

// ParagraphProperties is the full w:pPr: the shared bag plus the
// paragraph mark's run properties, a trailing section break, and a
// tracked revision of the bag.
type ParagraphProperties struct {
	ParagraphPropertiesBase
	RunProperties     *ParaRunProperties
	SectionProperties *SectionProperties
	Change            *ParagraphPropertiesChange
}

func parseParagraphProperties(node *xmlnode.Node) (*ParagraphProperties, error) {
	props := &ParagraphProperties{}
	for _, child := range node.Children {
		consumed, err := props.ParagraphPropertiesBase.updateFromNode(child)
		if err != nil {
			return nil, err
		}
		if consumed {
			continue
		}
		switch child.LocalName() {
		case "rPr":
			rpr, err := parseParaRunProperties(child)
			if err != nil {
				return nil, err
			}
			props.RunProperties = rpr
		case "sectPr":
			sect, err := parseSectionProperties(child)
			if err != nil {
				return nil, err
			}
			props.SectionProperties = sect
		case "pPrChange":
			change, err := parseParagraphPropertiesChange(child)
			if err != nil {
				return nil, err
			}
			props.Change = change
		}
	}
	return props, nil
}

// ParagraphPropertiesChange is a tracked revision of paragraph
// formatting: the change annotation plus the previous bag.
type ParagraphPropertiesChange struct {
	TrackChange
	Properties ParagraphPropertiesBase
}

func parseParagraphPropertiesChange(node *xmlnode.Node) (*ParagraphPropertiesChange, error) {
	tc, err := parseTrackChange(node)
	if err != nil {
		return nil, err
	}
	original := node.FirstChild("pPr")
	if original == nil {
		return nil, NewMissingChildError(node.Name, "pPr")
	}
	base, err := parseParagraphPropertiesBase(original)
	if err != nil {
		return nil, err
	}
	return &ParagraphPropertiesChange{TrackChange: tc, Properties: base}, nil
}
