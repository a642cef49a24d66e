package wml

import (
	"github.com/benjaminschreck/go-wordml/pkg/wml/xmlnode"
)

// HdrFtrReference binds a header or footer part to a section for one
// page class.
type HdrFtrReference struct {
	Type           HdrFtr
	RelationshipID string
	Footer         bool
}

func parseHdrFtrReference(node *xmlnode.Node) (HdrFtrReference, error) {
	typStr, err := requireAttr(node, "w:type", "type")
	if err != nil {
		return HdrFtrReference{}, err
	}
	typ, err := ParseHdrFtr(typStr)
	if err != nil {
		return HdrFtrReference{}, err
	}
	rel, err := parseRel(node)
	if err != nil {
		return HdrFtrReference{}, err
	}
	return HdrFtrReference{
		Type:           typ,
		RelationshipID: rel.RelationshipID,
		Footer:         node.LocalName() == "footerReference",
	}, nil
}

// FootnoteProperties controls footnote placement and numbering for a
// section.
type FootnoteProperties struct {
	Position     *FtnPos
	NumberFormat *NumberFormat
	NumberStart  *int64
	RestartRule  *RestartNumber
}

func parseFootnoteProperties(node *xmlnode.Node) (FootnoteProperties, error) {
	var fp FootnoteProperties
	for _, child := range node.Children {
		switch child.LocalName() {
		case "pos":
			v, err := valAttr(child)
			if err != nil {
				return FootnoteProperties{}, err
			}
			p, err := ParseFtnPos(v)
			if err != nil {
				return FootnoteProperties{}, err
			}
			fp.Position = &p
		case "numFmt":
			v, err := valAttr(child)
			if err != nil {
				return FootnoteProperties{}, err
			}
			f, err := ParseNumberFormat(v)
			if err != nil {
				return FootnoteProperties{}, err
			}
			fp.NumberFormat = &f
		case "numStart":
			n, err := parseDecimalVal(child)
			if err != nil {
				return FootnoteProperties{}, err
			}
			fp.NumberStart = &n
		case "numRestart":
			v, err := valAttr(child)
			if err != nil {
				return FootnoteProperties{}, err
			}
			r, err := ParseRestartNumber(v)
			if err != nil {
				return FootnoteProperties{}, err
			}
			fp.RestartRule = &r
		}
	}
	return fp, nil
}

// EndnoteProperties controls endnote placement and numbering for a
// section.
type EndnoteProperties struct {
	Position     *EdnPos
	NumberFormat *NumberFormat
	NumberStart  *int64
	RestartRule  *RestartNumber
}

func parseEndnoteProperties(node *xmlnode.Node) (EndnoteProperties, error) {
	var ep EndnoteProperties
	for _, child := range node.Children {
		switch child.LocalName() {
		case "pos":
			v, err := valAttr(child)
			if err != nil {
				return EndnoteProperties{}, err
			}
			p, err := ParseEdnPos(v)
			if err != nil {
				return EndnoteProperties{}, err
			}
			ep.Position = &p
		case "numFmt":
			v, err := valAttr(child)
			if err != nil {
				return EndnoteProperties{}, err
			}
			f, err := ParseNumberFormat(v)
			if err != nil {
				return EndnoteProperties{}, err
			}
			ep.NumberFormat = &f
		case "numStart":
			n, err := parseDecimalVal(child)
			if err != nil {
				return EndnoteProperties{}, err
			}
			ep.NumberStart = &n
		case "numRestart":
			v, err := valAttr(child)
			if err != nil {
				return EndnoteProperties{}, err
			}
			r, err := ParseRestartNumber(v)
			if err != nil {
				return EndnoteProperties{}, err
			}
			ep.RestartRule = &r
		}
	}
	return ep, nil
}

// PageSize is the physical page extent of a section.
type PageSize struct {
	Width       *TwipsMeasure
	Height      *TwipsMeasure
	Orientation *PageOrientation
	Code        *int64
}

func parsePageSize(node *xmlnode.Node) (PageSize, error) {
	var ps PageSize
	var err error
	if ps.Width, err = optTwipsAttr(node, "w:w"); err != nil {
		return PageSize{}, err
	}
	if ps.Height, err = optTwipsAttr(node, "w:h"); err != nil {
		return PageSize{}, err
	}
	if v, ok := node.Attribute("w:orient"); ok {
		o, err := ParsePageOrientation(v)
		if err != nil {
			return PageSize{}, err
		}
		ps.Orientation = &o
	}
	if ps.Code, err = optDecimalAttr(node, "w:code"); err != nil {
		return PageSize{}, err
	}
	return ps, nil
}

// PageMargins are the page margins of a section. Top and bottom may be
// negative to force content into the header or footer area.
type PageMargins struct {
	Top    SignedTwipsMeasure
	Right  TwipsMeasure
	Bottom SignedTwipsMeasure
	Left   TwipsMeasure
	Header TwipsMeasure
	Footer TwipsMeasure
	Gutter TwipsMeasure
}

func parsePageMargins(node *xmlnode.Node) (PageMargins, error) {
	var pm PageMargins
	signed := func(dest *SignedTwipsMeasure, key, local string) error {
		v, err := requireAttr(node, key, local)
		if err != nil {
			return err
		}
		m, err := ParseSignedTwipsMeasure(v)
		if err != nil {
			return err
		}
		*dest = m
		return nil
	}
	unsigned := func(dest *TwipsMeasure, key, local string) error {
		v, err := requireAttr(node, key, local)
		if err != nil {
			return err
		}
		m, err := ParseTwipsMeasure(v)
		if err != nil {
			return err
		}
		*dest = m
		return nil
	}
	if err := signed(&pm.Top, "w:top", "top"); err != nil {
		return PageMargins{}, err
	}
	if err := unsigned(&pm.Right, "w:right", "right"); err != nil {
		return PageMargins{}, err
	}
	if err := signed(&pm.Bottom, "w:bottom", "bottom"); err != nil {
		return PageMargins{}, err
	}
	if err := unsigned(&pm.Left, "w:left", "left"); err != nil {
		return PageMargins{}, err
	}
	if err := unsigned(&pm.Header, "w:header", "header"); err != nil {
		return PageMargins{}, err
	}
	if err := unsigned(&pm.Footer, "w:footer", "footer"); err != nil {
		return PageMargins{}, err
	}
	if err := unsigned(&pm.Gutter, "w:gutter", "gutter"); err != nil {
		return PageMargins{}, err
	}
	return pm, nil
}

// PaperSource selects printer trays for the first and subsequent pages.
type PaperSource struct {
	First *int64
	Other *int64
}

func parsePaperSource(node *xmlnode.Node) (PaperSource, error) {
	var ps PaperSource
	var err error
	if ps.First, err = optDecimalAttr(node, "w:first"); err != nil {
		return PaperSource{}, err
	}
	if ps.Other, err = optDecimalAttr(node, "w:other"); err != nil {
		return PaperSource{}, err
	}
	return ps, nil
}

// PageBorder is one edge of the page border, optionally rendered from
// a relationship image.
type PageBorder struct {
	Border
	RelationshipID *string
}

func parsePageBorder(node *xmlnode.Node) (PageBorder, error) {
	b, err := parseBorder(node)
	if err != nil {
		return PageBorder{}, err
	}
	return PageBorder{Border: b, RelationshipID: optStringAttr(node, "r:id")}, nil
}

// TopPageBorder is the top edge with its corner images.
type TopPageBorder struct {
	PageBorder
	TopLeft  *string
	TopRight *string
}

// BottomPageBorder is the bottom edge with its corner images.
type BottomPageBorder struct {
	PageBorder
	BottomLeft  *string
	BottomRight *string
}

// PageBorders is the page border set of a section.
type PageBorders struct {
	ZOrder     *PageBorderZOrder
	Display    *PageBorderDisplay
	OffsetFrom *PageBorderOffset
	Top        *TopPageBorder
	Left       *PageBorder
	Bottom     *BottomPageBorder
	Right      *PageBorder
}

func parsePageBorders(node *xmlnode.Node) (PageBorders, error) {
	var pb PageBorders
	if v, ok := node.Attribute("w:zOrder"); ok {
		z, err := ParsePageBorderZOrder(v)
		if err != nil {
			return PageBorders{}, err
		}
		pb.ZOrder = &z
	}
	if v, ok := node.Attribute("w:display"); ok {
		d, err := ParsePageBorderDisplay(v)
		if err != nil {
			return PageBorders{}, err
		}
		pb.Display = &d
	}
	if v, ok := node.Attribute("w:offsetFrom"); ok {
		o, err := ParsePageBorderOffset(v)
		if err != nil {
			return PageBorders{}, err
		}
		pb.OffsetFrom = &o
	}
	for _, child := range node.Children {
		switch child.LocalName() {
		case "top":
			border, err := parsePageBorder(child)
			if err != nil {
				return PageBorders{}, err
			}
			pb.Top = &TopPageBorder{
				PageBorder: border,
				TopLeft:    optStringAttr(child, "r:topLeft"),
				TopRight:   optStringAttr(child, "r:topRight"),
			}
		case "left":
			border, err := parsePageBorder(child)
			if err != nil {
				return PageBorders{}, err
			}
			pb.Left = &border
		case "bottom":
			border, err := parsePageBorder(child)
			if err != nil {
				return PageBorders{}, err
			}
			pb.Bottom = &BottomPageBorder{
				PageBorder:  border,
				BottomLeft:  optStringAttr(child, "r:bottomLeft"),
				BottomRight: optStringAttr(child, "r:bottomRight"),
			}
		case "right":
			border, err := parsePageBorder(child)
			if err != nil {
				return PageBorders{}, err
			}
			pb.Right = &border
		}
	}
	return pb, nil
}

// LineNumbering switches on margin line numbers for a section.
type LineNumbering struct {
	CountBy  *int64
	Start    *int64
	Distance *TwipsMeasure
	Restart  *LineNumberRestart
}

func parseLineNumbering(node *xmlnode.Node) (LineNumbering, error) {
	var ln LineNumbering
	var err error
	if ln.CountBy, err = optDecimalAttr(node, "w:countBy"); err != nil {
		return LineNumbering{}, err
	}
	if ln.Start, err = optDecimalAttr(node, "w:start"); err != nil {
		return LineNumbering{}, err
	}
	if ln.Distance, err = optTwipsAttr(node, "w:distance"); err != nil {
		return LineNumbering{}, err
	}
	if v, ok := node.Attribute("w:restart"); ok {
		r, err := ParseLineNumberRestart(v)
		if err != nil {
			return LineNumbering{}, err
		}
		ln.Restart = &r
	}
	return ln, nil
}

// PageNumbering controls page number format and chapter headings.
type PageNumbering struct {
	Format       *NumberFormat
	Start        *int64
	ChapterStyle *int64
	ChapterSep   *ChapterSep
}

func parsePageNumbering(node *xmlnode.Node) (PageNumbering, error) {
	var pn PageNumbering
	var err error
	if v, ok := node.Attribute("w:fmt"); ok {
		f, err := ParseNumberFormat(v)
		if err != nil {
			return PageNumbering{}, err
		}
		pn.Format = &f
	}
	if pn.Start, err = optDecimalAttr(node, "w:start"); err != nil {
		return PageNumbering{}, err
	}
	if pn.ChapterStyle, err = optDecimalAttr(node, "w:chapStyle"); err != nil {
		return PageNumbering{}, err
	}
	if v, ok := node.Attribute("w:chapSep"); ok {
		c, err := ParseChapterSep(v)
		if err != nil {
			return PageNumbering{}, err
		}
		pn.ChapterSep = &c
	}
	return pn, nil
}

const maxColumns = 45

// Column is one explicit text column.
type Column struct {
	Width *TwipsMeasure
	Space *TwipsMeasure
}

// Columns is the text column layout of a section. Explicit column
// definitions are capped at 45.
type Columns struct {
	EqualWidth *bool
	Space      *TwipsMeasure
	Num        *int64
	Separator  *bool
	Columns    []Column
}

func parseColumns(node *xmlnode.Node) (Columns, error) {
	var cols Columns
	var err error
	if cols.EqualWidth, err = optBoolAttr(node, "w:equalWidth"); err != nil {
		return Columns{}, err
	}
	if cols.Space, err = optTwipsAttr(node, "w:space"); err != nil {
		return Columns{}, err
	}
	if cols.Num, err = optDecimalAttr(node, "w:num"); err != nil {
		return Columns{}, err
	}
	if cols.Separator, err = optBoolAttr(node, "w:sep"); err != nil {
		return Columns{}, err
	}
	for _, child := range node.Children {
		if child.LocalName() != "col" {
			continue
		}
		var col Column
		if col.Width, err = optTwipsAttr(child, "w:w"); err != nil {
			return Columns{}, err
		}
		if col.Space, err = optTwipsAttr(child, "w:space"); err != nil {
			return Columns{}, err
		}
		cols.Columns = append(cols.Columns, col)
	}
	if len(cols.Columns) > maxColumns {
		return Columns{}, NewLimitViolationError(node.Name, "col", 0, maxColumns, len(cols.Columns))
	}
	return cols, nil
}

// DocumentGrid pins the section to a character or line grid.
type DocumentGrid struct {
	Type      *DocGridType
	LinePitch *int64
	CharSpace *int64
}

func parseDocumentGrid(node *xmlnode.Node) (DocumentGrid, error) {
	var dg DocumentGrid
	var err error
	if v, ok := node.Attribute("w:type"); ok {
		t, err := ParseDocGridType(v)
		if err != nil {
			return DocumentGrid{}, err
		}
		dg.Type = &t
	}
	if dg.LinePitch, err = optDecimalAttr(node, "w:linePitch"); err != nil {
		return DocumentGrid{}, err
	}
	if dg.CharSpace, err = optDecimalAttr(node, "w:charSpace"); err != nil {
		return DocumentGrid{}, err
	}
	return dg, nil
}

// SectionContents is the shared section-property bag: everything a
// section defines besides its header and footer bindings.
type SectionContents struct {
	FootnoteProperties *FootnoteProperties
	EndnoteProperties  *EndnoteProperties
	Type               *SectionMark
	PageSize           *PageSize
	PageMargins        *PageMargins
	PaperSource        *PaperSource
	PageBorders        *PageBorders
	LineNumbering      *LineNumbering
	PageNumbering      *PageNumbering
	Columns            *Columns
	FormProtection     *bool
	VerticalAlign      *VerticalJc
	NoEndnote          *bool
	TitlePage          *bool
	TextDirection      *TextDirection
	Bidi               *bool
	RTLGutter          *bool
	DocumentGrid       *DocumentGrid
	PrinterSettings    *Rel
}

// tryParseGroupNode consumes one section-content element into the bag,
// reporting whether the node was a member.
func (s *SectionContents) tryParseGroupNode(node *xmlnode.Node) (bool, error) {
	switch node.LocalName() {
	case "footnotePr":
		fp, err := parseFootnoteProperties(node)
		if err != nil {
			return true, err
		}
		s.FootnoteProperties = &fp
	case "endnotePr":
		ep, err := parseEndnoteProperties(node)
		if err != nil {
			return true, err
		}
		s.EndnoteProperties = &ep
	case "type":
		v, err := valAttr(node)
		if err != nil {
			return true, err
		}
		m, err := ParseSectionMark(v)
		if err != nil {
			return true, err
		}
		s.Type = &m
	case "pgSz":
		ps, err := parsePageSize(node)
		if err != nil {
			return true, err
		}
		s.PageSize = &ps
	case "pgMar":
		pm, err := parsePageMargins(node)
		if err != nil {
			return true, err
		}
		s.PageMargins = &pm
	case "paperSrc":
		ps, err := parsePaperSource(node)
		if err != nil {
			return true, err
		}
		s.PaperSource = &ps
	case "pgBorders":
		pb, err := parsePageBorders(node)
		if err != nil {
			return true, err
		}
		s.PageBorders = &pb
	case "lnNumType":
		ln, err := parseLineNumbering(node)
		if err != nil {
			return true, err
		}
		s.LineNumbering = &ln
	case "pgNumType":
		pn, err := parsePageNumbering(node)
		if err != nil {
			return true, err
		}
		s.PageNumbering = &pn
	case "cols":
		cols, err := parseColumns(node)
		if err != nil {
			return true, err
		}
		s.Columns = &cols
	case "formProt":
		return true, setOnOff(&s.FormProtection, node)
	case "vAlign":
		v, err := valAttr(node)
		if err != nil {
			return true, err
		}
		va, err := ParseVerticalJc(v)
		if err != nil {
			return true, err
		}
		s.VerticalAlign = &va
	case "noEndnote":
		return true, setOnOff(&s.NoEndnote, node)
	case "titlePg":
		return true, setOnOff(&s.TitlePage, node)
	case "textDirection":
		v, err := valAttr(node)
		if err != nil {
			return true, err
		}
		td, err := ParseTextDirection(v)
		if err != nil {
			return true, err
		}
		s.TextDirection = &td
	case "bidi":
		return true, setOnOff(&s.Bidi, node)
	case "rtlGutter":
		return true, setOnOff(&s.RTLGutter, node)
	case "docGrid":
		dg, err := parseDocumentGrid(node)
		if err != nil {
			return true, err
		}
		s.DocumentGrid = &dg
	case "printerSettings":
		rel, err := parseRel(node)
		if err != nil {
			return true, err
		}
		s.PrinterSettings = &rel
	default:
		return false, nil
	}
	return true, nil
}

// SectionRsids are the revision ids stamped on a section break.
type SectionRsids struct {
	RsidRPr  *uint32
	RsidDel  *uint32
	RsidR    *uint32
	RsidSect *uint32
}

func parseSectionRsids(node *xmlnode.Node) (SectionRsids, error) {
	var r SectionRsids
	var err error
	if r.RsidRPr, err = optLongHexAttr(node, "w:rsidRPr"); err != nil {
		return SectionRsids{}, err
	}
	if r.RsidDel, err = optLongHexAttr(node, "w:rsidDel"); err != nil {
		return SectionRsids{}, err
	}
	if r.RsidR, err = optLongHexAttr(node, "w:rsidR"); err != nil {
		return SectionRsids{}, err
	}
	if r.RsidSect, err = optLongHexAttr(node, "w:rsidSect"); err != nil {
		return SectionRsids{}, err
	}
	return r, nil
}

const maxHdrFtrReferences = 6

// SectionProperties is the full w:sectPr: header and footer bindings,
// the section-content bag, and a tracked revision.
type SectionProperties struct {
	SectionRsids
	HdrFtrReferences []HdrFtrReference
	Contents         SectionContents
	Change           *SectionPropertiesChange
}

func parseSectionProperties(node *xmlnode.Node) (*SectionProperties, error) {
	rsids, err := parseSectionRsids(node)
	if err != nil {
		return nil, err
	}
	sect := &SectionProperties{SectionRsids: rsids}
	for _, child := range node.Children {
		switch child.LocalName() {
		case "headerReference", "footerReference":
			ref, err := parseHdrFtrReference(child)
			if err != nil {
				return nil, err
			}
			sect.HdrFtrReferences = append(sect.HdrFtrReferences, ref)
			continue
		case "sectPrChange":
			change, err := parseSectionPropertiesChange(child)
			if err != nil {
				return nil, err
			}
			sect.Change = change
			continue
		}
		if _, err := sect.Contents.tryParseGroupNode(child); err != nil {
			return nil, err
		}
	}
	if n := len(sect.HdrFtrReferences); n > maxHdrFtrReferences {
		return nil, NewLimitViolationError(node.Name, "headerReference", 0, maxHdrFtrReferences, n)
	}
	return sect, nil
}

// SectionPropertiesBase is the revision-snapshot form of a section:
// the content bag without header and footer bindings.
type SectionPropertiesBase struct {
	SectionRsids
	Contents SectionContents
}

func parseSectionPropertiesBase(node *xmlnode.Node) (SectionPropertiesBase, error) {
	rsids, err := parseSectionRsids(node)
	if err != nil {
		return SectionPropertiesBase{}, err
	}
	base := SectionPropertiesBase{SectionRsids: rsids}
	for _, child := range node.Children {
		if _, err := base.Contents.tryParseGroupNode(child); err != nil {
			return SectionPropertiesBase{}, err
		}
	}
	return base, nil
}

// SectionPropertiesChange is a tracked revision of section properties.
// The snapshot is absent when the revision deleted the section break.
type SectionPropertiesChange struct {
	TrackChange
	Properties *SectionPropertiesBase
}

func parseSectionPropertiesChange(node *xmlnode.Node) (*SectionPropertiesChange, error) {
	tc, err := parseTrackChange(node)
	if err != nil {
		return nil, err
	}
	change := &SectionPropertiesChange{TrackChange: tc}
	if original := node.FirstChild("sectPr"); original != nil {
		base, err := parseSectionPropertiesBase(original)
		if err != nil {
			return nil, err
		}
		change.Properties = &base
	}
	return change, nil
}
