package wml

import (
	"github.com/benjaminschreck/go-wordml/pkg/wml/xmlnode"
)

// RunProperty is one member of the run-property choice: a single
// formatting element that can appear inside w:rPr.
type RunProperty interface {
	isRunProperty()
}

// RunStyle references a character style by id.
type RunStyle string

// Toggle properties. Each parses from a standalone element, defaulting
// to true when w:val is absent.
type (
	// Bold toggles bold rendering.
	Bold bool
	// BoldComplex toggles bold rendering of complex script characters.
	BoldComplex bool
	// Italic toggles italic rendering.
	Italic bool
	// ItalicComplex toggles italic rendering of complex script characters.
	ItalicComplex bool
	// Caps renders all characters as capitals.
	Caps bool
	// SmallCaps renders lowercase characters as small capitals.
	SmallCaps bool
	// Strike toggles single strikethrough.
	Strike bool
	// DoubleStrike toggles double strikethrough.
	DoubleStrike bool
	// Outline toggles outline rendering.
	Outline bool
	// Shadow toggles shadow rendering.
	Shadow bool
	// Emboss toggles embossed rendering.
	Emboss bool
	// Imprint toggles engraved rendering.
	Imprint bool
	// NoProof exempts the run from proofing.
	NoProof bool
	// SnapToGrid snaps the run to the document grid.
	SnapToGrid bool
	// Vanish hides the run.
	Vanish bool
	// WebHidden hides the run in web view.
	WebHidden bool
	// RightToLeft marks right-to-left text.
	RightToLeft bool
	// ComplexScript treats the run as complex script regardless of
	// its characters.
	ComplexScript bool
	// SpecVanish hides the run while keeping its paragraph mark
	// semantics (style separators).
	SpecVanish bool
	// OMath treats the run as Office Open XML math text.
	OMath bool
)

// CharacterSpacing expands or compresses inter-character spacing.
type CharacterSpacing SignedTwipsMeasure

// Position raises or lowers text relative to the baseline.
type Position SignedHpsMeasure

// TextScale stretches or compresses character widths, in percent.
// An element with no w:val means 100%.
type TextScale float64

// Kerning is the minimum font size that gets kerned.
type Kerning HpsMeasure

// Size is the font size in half-points.
type Size HpsMeasure

// SizeComplex is the complex script font size in half-points.
type SizeComplex HpsMeasure

// Highlight applies a highlighter color.
type Highlight HighlightColor

// Effect applies an animated text effect.
type Effect TextEffect

// VerticalAlignment positions the run as superscript or subscript.
type VerticalAlignment VerticalAlignRun

// EmphasisMark places an emphasis mark over each character.
type EmphasisMark Em

// TextBorder draws a border around the run.
type TextBorder Border

func (RunStyle) isRunProperty()          {}
func (Fonts) isRunProperty()             {}
func (Bold) isRunProperty()              {}
func (BoldComplex) isRunProperty()       {}
func (Italic) isRunProperty()            {}
func (ItalicComplex) isRunProperty()     {}
func (Caps) isRunProperty()              {}
func (SmallCaps) isRunProperty()         {}
func (Strike) isRunProperty()            {}
func (DoubleStrike) isRunProperty()      {}
func (Outline) isRunProperty()           {}
func (Shadow) isRunProperty()            {}
func (Emboss) isRunProperty()            {}
func (Imprint) isRunProperty()           {}
func (NoProof) isRunProperty()           {}
func (SnapToGrid) isRunProperty()        {}
func (Vanish) isRunProperty()            {}
func (WebHidden) isRunProperty()         {}
func (RightToLeft) isRunProperty()       {}
func (ComplexScript) isRunProperty()     {}
func (SpecVanish) isRunProperty()        {}
func (OMath) isRunProperty()             {}
func (Color) isRunProperty()             {}
func (CharacterSpacing) isRunProperty()  {}
func (Position) isRunProperty()          {}
func (TextScale) isRunProperty()         {}
func (Kerning) isRunProperty()           {}
func (Size) isRunProperty()              {}
func (SizeComplex) isRunProperty()       {}
func (Highlight) isRunProperty()         {}
func (Effect) isRunProperty()            {}
func (VerticalAlignment) isRunProperty() {}
func (EmphasisMark) isRunProperty()      {}
func (Underline) isRunProperty()         {}
func (TextBorder) isRunProperty()        {}
func (Shd) isRunProperty()               {}
func (FitText) isRunProperty()           {}
func (Language) isRunProperty()          {}
func (EastAsianLayout) isRunProperty()   {}

// isRunPropertyName reports membership in the run-property choice.
func isRunPropertyName(local string) bool {
	switch local {
	case "rStyle", "rFonts",
		"b", "bCs", "i", "iCs", "caps", "smallCaps", "strike", "dstrike",
		"outline", "shadow", "emboss", "imprint", "noProof", "snapToGrid",
		"vanish", "webHidden", "rtl", "cs", "specVanish", "oMath",
		"color", "spacing", "w", "kern", "position", "sz", "szCs",
		"highlight", "u", "effect", "bdr", "shd", "fitText", "vertAlign",
		"em", "lang", "eastAsianLayout":
		return true
	}
	return false
}

// parseRunProperty dispatches one child of w:rPr by local name. Nodes
// outside the choice return the not-group-member sentinel.
func parseRunProperty(node *xmlnode.Node) (RunProperty, error) {
	local := node.LocalName()
	switch local {
	case "rStyle":
		v, err := parseStringVal(node)
		if err != nil {
			return nil, err
		}
		return RunStyle(v), nil
	case "rFonts":
		return parseFonts(node)
	case "b", "bCs", "i", "iCs", "caps", "smallCaps", "strike", "dstrike",
		"outline", "shadow", "emboss", "imprint", "noProof", "snapToGrid",
		"vanish", "webHidden", "rtl", "cs", "specVanish", "oMath":
		v, err := parseOnOffElement(node)
		if err != nil {
			return nil, err
		}
		return toggleProperty(local, v), nil
	case "color":
		return parseColor(node)
	case "spacing":
		val, err := valAttr(node)
		if err != nil {
			return nil, err
		}
		m, err := ParseSignedTwipsMeasure(val)
		if err != nil {
			return nil, err
		}
		return CharacterSpacing(m), nil
	case "w":
		// no w:val means no scaling, which the grammar spells 100%
		val, ok := node.Attribute("w:val")
		if !ok {
			return TextScale(100.0), nil
		}
		scale, err := ParseTextScalePercent(val)
		if err != nil {
			return nil, err
		}
		return TextScale(scale), nil
	case "kern":
		m, err := parseHpsVal(node)
		if err != nil {
			return nil, err
		}
		return Kerning(m), nil
	case "position":
		val, err := valAttr(node)
		if err != nil {
			return nil, err
		}
		m, err := ParseSignedHpsMeasure(val)
		if err != nil {
			return nil, err
		}
		return Position(m), nil
	case "sz":
		m, err := parseHpsVal(node)
		if err != nil {
			return nil, err
		}
		return Size(m), nil
	case "szCs":
		m, err := parseHpsVal(node)
		if err != nil {
			return nil, err
		}
		return SizeComplex(m), nil
	case "highlight":
		val, err := valAttr(node)
		if err != nil {
			return nil, err
		}
		h, err := ParseHighlightColor(val)
		if err != nil {
			return nil, err
		}
		return Highlight(h), nil
	case "u":
		return parseUnderline(node)
	case "effect":
		val, err := valAttr(node)
		if err != nil {
			return nil, err
		}
		e, err := ParseTextEffect(val)
		if err != nil {
			return nil, err
		}
		return Effect(e), nil
	case "bdr":
		b, err := parseBorder(node)
		if err != nil {
			return nil, err
		}
		return TextBorder(b), nil
	case "shd":
		return parseShd(node)
	case "fitText":
		return parseFitText(node)
	case "vertAlign":
		val, err := valAttr(node)
		if err != nil {
			return nil, err
		}
		v, err := ParseVerticalAlignRun(val)
		if err != nil {
			return nil, err
		}
		return VerticalAlignment(v), nil
	case "em":
		val, err := valAttr(node)
		if err != nil {
			return nil, err
		}
		e, err := ParseEm(val)
		if err != nil {
			return nil, err
		}
		return EmphasisMark(e), nil
	case "lang":
		return parseLanguage(node), nil
	case "eastAsianLayout":
		return parseEastAsianLayout(node)
	default:
		return nil, NewNotGroupMemberError(node.Name, "RunProperty")
	}
}

func toggleProperty(local string, v bool) RunProperty {
	switch local {
	case "b":
		return Bold(v)
	case "bCs":
		return BoldComplex(v)
	case "i":
		return Italic(v)
	case "iCs":
		return ItalicComplex(v)
	case "caps":
		return Caps(v)
	case "smallCaps":
		return SmallCaps(v)
	case "strike":
		return Strike(v)
	case "dstrike":
		return DoubleStrike(v)
	case "outline":
		return Outline(v)
	case "shadow":
		return Shadow(v)
	case "emboss":
		return Emboss(v)
	case "imprint":
		return Imprint(v)
	case "noProof":
		return NoProof(v)
	case "snapToGrid":
		return SnapToGrid(v)
	case "vanish":
		return Vanish(v)
	case "webHidden":
		return WebHidden(v)
	case "rtl":
		return RightToLeft(v)
	case "cs":
		return ComplexScript(v)
	case "specVanish":
		return SpecVanish(v)
	default:
		return OMath(v)
	}
}

func parseHpsVal(node *xmlnode.Node) (HpsMeasure, error) {
	val, err := valAttr(node)
	if err != nil {
		return HpsMeasure{}, err
	}
	return ParseHpsMeasure(val)
}

// RunProperties represents w:rPr: direct run formatting plus an
// optional previous-revision snapshot.
type RunProperties struct {
	Properties []RunProperty
	Change     *RunPropertiesChange
}

func parseRunProperties(node *xmlnode.Node) (*RunProperties, error) {
	props := &RunProperties{}
	for _, child := range node.Children {
		if child.LocalName() == "rPrChange" {
			change, err := parseRunPropertiesChange(child)
			if err != nil {
				return nil, err
			}
			props.Change = change
			continue
		}
		p, err := parseRunProperty(child)
		if err != nil {
			if IsNotGroupMember(err) {
				continue
			}
			return nil, err
		}
		props.Properties = append(props.Properties, p)
	}
	return props, nil
}

// RunPropertiesChange is a tracked revision of run formatting: the
// change annotation plus the previous formatting.
type RunPropertiesChange struct {
	TrackChange
	Properties []RunProperty
}

func parseRunPropertiesChange(node *xmlnode.Node) (*RunPropertiesChange, error) {
	tc, err := parseTrackChange(node)
	if err != nil {
		return nil, err
	}
	original := node.FirstChild("rPr")
	if original == nil {
		return nil, NewMissingChildError(node.Name, "rPr")
	}
	props, err := parseRunPropertyList(original)
	if err != nil {
		return nil, err
	}
	return &RunPropertiesChange{TrackChange: tc, Properties: props}, nil
}

// parseRunPropertyList parses the plain run-property list form of rPr,
// with no nested change snapshot.
func parseRunPropertyList(node *xmlnode.Node) ([]RunProperty, error) {
	var props []RunProperty
	for _, child := range node.Children {
		p, err := parseRunProperty(child)
		if err != nil {
			if IsNotGroupMember(err) {
				continue
			}
			return nil, err
		}
		props = append(props, p)
	}
	return props, nil
}

// ParaRunPropertyChanges carries the tracked insert, delete, and move
// annotations of a paragraph mark.
type ParaRunPropertyChanges struct {
	Inserted  *TrackChange
	Deleted   *TrackChange
	MovedFrom *TrackChange
	MovedTo   *TrackChange
}

// tryParseParaTrackChange consumes one ins/del/moveFrom/moveTo child
// into the slot, allocating it on first use. The boolean tells the
// caller whether the node belonged to this group.
func tryParseParaTrackChange(slot **ParaRunPropertyChanges, node *xmlnode.Node) (bool, error) {
	switch node.LocalName() {
	case "ins", "del", "moveFrom", "moveTo":
	default:
		return false, nil
	}
	tc, err := parseTrackChange(node)
	if err != nil {
		return true, err
	}
	if *slot == nil {
		*slot = &ParaRunPropertyChanges{}
	}
	switch node.LocalName() {
	case "ins":
		(*slot).Inserted = &tc
	case "del":
		(*slot).Deleted = &tc
	case "moveFrom":
		(*slot).MovedFrom = &tc
	case "moveTo":
		(*slot).MovedTo = &tc
	}
	return true, nil
}

// ParaRunProperties represents the run properties of a paragraph mark,
// including its tracked annotations.
type ParaRunProperties struct {
	TrackChanges *ParaRunPropertyChanges
	Properties   []RunProperty
	Change       *ParaRunPropertiesChange
}

func parseParaRunProperties(node *xmlnode.Node) (*ParaRunProperties, error) {
	props := &ParaRunProperties{}
	for _, child := range node.Children {
		if child.LocalName() == "rPrChange" {
			change, err := parseParaRunPropertiesChange(child)
			if err != nil {
				return nil, err
			}
			props.Change = change
			continue
		}
		consumed, err := tryParseParaTrackChange(&props.TrackChanges, child)
		if err != nil {
			return nil, err
		}
		if consumed {
			continue
		}
		p, err := parseRunProperty(child)
		if err != nil {
			if IsNotGroupMember(err) {
				continue
			}
			return nil, err
		}
		props.Properties = append(props.Properties, p)
	}
	return props, nil
}

// ParaRunPropertiesOriginal is the pre-change snapshot of a paragraph
// mark's run properties.
type ParaRunPropertiesOriginal struct {
	TrackChanges *ParaRunPropertyChanges
	Properties   []RunProperty
}

func parseParaRunPropertiesOriginal(node *xmlnode.Node) (ParaRunPropertiesOriginal, error) {
	var original ParaRunPropertiesOriginal
	for _, child := range node.Children {
		consumed, err := tryParseParaTrackChange(&original.TrackChanges, child)
		if err != nil {
			return ParaRunPropertiesOriginal{}, err
		}
		if consumed {
			continue
		}
		p, err := parseRunProperty(child)
		if err != nil {
			if IsNotGroupMember(err) {
				continue
			}
			return ParaRunPropertiesOriginal{}, err
		}
		original.Properties = append(original.Properties, p)
	}
	return original, nil
}

// ParaRunPropertiesChange is a tracked revision of a paragraph mark's
// run formatting.
type ParaRunPropertiesChange struct {
	TrackChange
	Properties ParaRunPropertiesOriginal
}

func parseParaRunPropertiesChange(node *xmlnode.Node) (*ParaRunPropertiesChange, error) {
	tc, err := parseTrackChange(node)
	if err != nil {
		return nil, err
	}
	original := node.FirstChild("rPr")
	if original == nil {
		return nil, NewMissingChildError(node.Name, "rPr")
	}
	props, err := parseParaRunPropertiesOriginal(original)
	if err != nil {
		return nil, err
	}
	return &ParaRunPropertiesChange{TrackChange: tc, Properties: props}, nil
}
