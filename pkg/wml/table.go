package wml

import (
	"github.com/benjaminschreck/go-wordml/pkg/wml/xmlnode"
)

// TableWidth is a width preference: the value's interpretation depends
// on the unit.
type TableWidth struct {
	Value *MeasurementOrPercent
	Unit  *TblWidthUnit
}

func parseTableWidth(node *xmlnode.Node) (TableWidth, error) {
	var tw TableWidth
	if v, ok := node.Attribute("w:w"); ok {
		m, err := ParseMeasurementOrPercent(v)
		if err != nil {
			return TableWidth{}, err
		}
		tw.Value = &m
	}
	if v, ok := node.Attribute("w:type"); ok {
		u, err := ParseTblWidthUnit(v)
		if err != nil {
			return TableWidth{}, err
		}
		tw.Unit = &u
	}
	return tw, nil
}

// UpdateWith right-biases both fields of the width preference.
func (t TableWidth) UpdateWith(other TableWidth) TableWidth {
	return TableWidth{
		Value: pickOpt(t.Value, other.Value),
		Unit:  pickOpt(t.Unit, other.Unit),
	}
}

// TablePosition places a floating table relative to its anchors.
type TablePosition struct {
	LeftFromText   *TwipsMeasure
	RightFromText  *TwipsMeasure
	TopFromText    *TwipsMeasure
	BottomFromText *TwipsMeasure
	VertAnchor     *Anchor
	HorzAnchor     *Anchor
	XSpec          *XAlign
	X              *SignedTwipsMeasure
	YSpec          *YAlign
	Y              *SignedTwipsMeasure
}

func parseTablePosition(node *xmlnode.Node) (TablePosition, error) {
	var tp TablePosition
	var err error
	if tp.LeftFromText, err = optTwipsAttr(node, "w:leftFromText"); err != nil {
		return TablePosition{}, err
	}
	if tp.RightFromText, err = optTwipsAttr(node, "w:rightFromText"); err != nil {
		return TablePosition{}, err
	}
	if tp.TopFromText, err = optTwipsAttr(node, "w:topFromText"); err != nil {
		return TablePosition{}, err
	}
	if tp.BottomFromText, err = optTwipsAttr(node, "w:bottomFromText"); err != nil {
		return TablePosition{}, err
	}
	if v, ok := node.Attribute("w:vertAnchor"); ok {
		a, err := ParseAnchor(v)
		if err != nil {
			return TablePosition{}, err
		}
		tp.VertAnchor = &a
	}
	if v, ok := node.Attribute("w:horzAnchor"); ok {
		a, err := ParseAnchor(v)
		if err != nil {
			return TablePosition{}, err
		}
		tp.HorzAnchor = &a
	}
	if v, ok := node.Attribute("w:tblpXSpec"); ok {
		x, err := ParseXAlign(v)
		if err != nil {
			return TablePosition{}, err
		}
		tp.XSpec = &x
	}
	if tp.X, err = optSignedTwipsAttr(node, "w:tblpX"); err != nil {
		return TablePosition{}, err
	}
	if v, ok := node.Attribute("w:tblpYSpec"); ok {
		y, err := ParseYAlign(v)
		if err != nil {
			return TablePosition{}, err
		}
		tp.YSpec = &y
	}
	if tp.Y, err = optSignedTwipsAttr(node, "w:tblpY"); err != nil {
		return TablePosition{}, err
	}
	return tp, nil
}

// TableBorders holds the six table border slots.
type TableBorders struct {
	Top     *Border
	Start   *Border
	Bottom  *Border
	End     *Border
	InsideH *Border
	InsideV *Border
}

func parseTableBorders(node *xmlnode.Node) (TableBorders, error) {
	var tb TableBorders
	for _, child := range node.Children {
		var dest **Border
		switch child.LocalName() {
		case "top":
			dest = &tb.Top
		case "start", "left":
			dest = &tb.Start
		case "bottom":
			dest = &tb.Bottom
		case "end", "right":
			dest = &tb.End
		case "insideH":
			dest = &tb.InsideH
		case "insideV":
			dest = &tb.InsideV
		default:
			continue
		}
		b, err := parseBorder(child)
		if err != nil {
			return TableBorders{}, err
		}
		*dest = &b
	}
	return tb, nil
}

// UpdateWith merges border slots side by side, merging both-present
// slots field-wise.
func (t TableBorders) UpdateWith(other TableBorders) TableBorders {
	return TableBorders{
		Top:     mergeOpt(t.Top, other.Top),
		Start:   mergeOpt(t.Start, other.Start),
		Bottom:  mergeOpt(t.Bottom, other.Bottom),
		End:     mergeOpt(t.End, other.End),
		InsideH: mergeOpt(t.InsideH, other.InsideH),
		InsideV: mergeOpt(t.InsideV, other.InsideV),
	}
}

// TableCellMargins holds the four cell margin slots.
type TableCellMargins struct {
	Top    *TableWidth
	Start  *TableWidth
	Bottom *TableWidth
	End    *TableWidth
}

func parseTableCellMargins(node *xmlnode.Node) (TableCellMargins, error) {
	var tcm TableCellMargins
	for _, child := range node.Children {
		var dest **TableWidth
		switch child.LocalName() {
		case "top":
			dest = &tcm.Top
		case "start", "left":
			dest = &tcm.Start
		case "bottom":
			dest = &tcm.Bottom
		case "end", "right":
			dest = &tcm.End
		default:
			continue
		}
		tw, err := parseTableWidth(child)
		if err != nil {
			return TableCellMargins{}, err
		}
		*dest = &tw
	}
	return tcm, nil
}

// UpdateWith merges margin slots side by side.
func (t TableCellMargins) UpdateWith(other TableCellMargins) TableCellMargins {
	return TableCellMargins{
		Top:    mergeOpt(t.Top, other.Top),
		Start:  mergeOpt(t.Start, other.Start),
		Bottom: mergeOpt(t.Bottom, other.Bottom),
		End:    mergeOpt(t.End, other.End),
	}
}

// TableLook switches conditional formatting bands on and off.
type TableLook struct {
	FirstRow    *bool
	LastRow     *bool
	FirstColumn *bool
	LastColumn  *bool
	NoHBand     *bool
	NoVBand     *bool
	Value       *uint16
}

func parseTableLook(node *xmlnode.Node) (TableLook, error) {
	var tl TableLook
	var err error
	if tl.FirstRow, err = optBoolAttr(node, "w:firstRow"); err != nil {
		return TableLook{}, err
	}
	if tl.LastRow, err = optBoolAttr(node, "w:lastRow"); err != nil {
		return TableLook{}, err
	}
	if tl.FirstColumn, err = optBoolAttr(node, "w:firstColumn"); err != nil {
		return TableLook{}, err
	}
	if tl.LastColumn, err = optBoolAttr(node, "w:lastColumn"); err != nil {
		return TableLook{}, err
	}
	if tl.NoHBand, err = optBoolAttr(node, "w:noHBand"); err != nil {
		return TableLook{}, err
	}
	if tl.NoVBand, err = optBoolAttr(node, "w:noVBand"); err != nil {
		return TableLook{}, err
	}
	if v, ok := node.Attribute("w:val"); ok {
		n, err := ParseShortHex(v)
		if err != nil {
			return TableLook{}, err
		}
		tl.Value = &n
	}
	return tl, nil
}

// TableProperties is the w:tblPr bag.
type TableProperties struct {
	Style            *string
	Position         *TablePosition
	Overlap          *bool
	BidiVisual       *bool
	StyleRowBandSize *int64
	StyleColBandSize *int64
	Width            *TableWidth
	Justification    *Jc
	CellSpacing      *TableWidth
	Indent           *TableWidth
	Borders          *TableBorders
	Shading          *Shd
	Layout           *TblLayoutType
	CellMargins      *TableCellMargins
	Look             *TableLook
	Caption          *string
	Description      *string
	Change           *TablePropertiesChange
}

// updateFromNode consumes one property element into the bag, reporting
// whether the node was a member.
func (t *TableProperties) updateFromNode(node *xmlnode.Node) (bool, error) {
	switch node.LocalName() {
	case "tblStyle":
		v, err := parseStringVal(node)
		if err != nil {
			return true, err
		}
		t.Style = &v
	case "tblpPr":
		tp, err := parseTablePosition(node)
		if err != nil {
			return true, err
		}
		t.Position = &tp
	case "tblOverlap":
		// overlap/never is modeled as a flag
		v, err := valAttr(node)
		if err != nil {
			return true, err
		}
		overlap := v == "overlap"
		t.Overlap = &overlap
	case "bidiVisual":
		return true, setOnOff(&t.BidiVisual, node)
	case "tblStyleRowBandSize":
		n, err := parseDecimalVal(node)
		if err != nil {
			return true, err
		}
		t.StyleRowBandSize = &n
	case "tblStyleColBandSize":
		n, err := parseDecimalVal(node)
		if err != nil {
			return true, err
		}
		t.StyleColBandSize = &n
	case "tblW":
		tw, err := parseTableWidth(node)
		if err != nil {
			return true, err
		}
		t.Width = &tw
	case "jc":
		v, err := valAttr(node)
		if err != nil {
			return true, err
		}
		jc, err := ParseJc(v)
		if err != nil {
			return true, err
		}
		t.Justification = &jc
	case "tblCellSpacing":
		tw, err := parseTableWidth(node)
		if err != nil {
			return true, err
		}
		t.CellSpacing = &tw
	case "tblInd":
		tw, err := parseTableWidth(node)
		if err != nil {
			return true, err
		}
		t.Indent = &tw
	case "tblBorders":
		tb, err := parseTableBorders(node)
		if err != nil {
			return true, err
		}
		t.Borders = &tb
	case "shd":
		shd, err := parseShd(node)
		if err != nil {
			return true, err
		}
		t.Shading = &shd
	case "tblLayout":
		if v, ok := node.Attribute("w:type"); ok {
			lt, err := ParseTblLayoutType(v)
			if err != nil {
				return true, err
			}
			t.Layout = &lt
		}
	case "tblCellMar":
		tcm, err := parseTableCellMargins(node)
		if err != nil {
			return true, err
		}
		t.CellMargins = &tcm
	case "tblLook":
		tl, err := parseTableLook(node)
		if err != nil {
			return true, err
		}
		t.Look = &tl
	case "tblCaption":
		v, err := parseStringVal(node)
		if err != nil {
			return true, err
		}
		t.Caption = &v
	case "tblDescription":
		v, err := parseStringVal(node)
		if err != nil {
			return true, err
		}
		t.Description = &v
	default:
		return false, nil
	}
	return true, nil
}

func parseTableProperties(node *xmlnode.Node) (*TableProperties, error) {
	props := &TableProperties{}
	for _, child := range node.Children {
		consumed, err := props.updateFromNode(child)
		if err != nil {
			return nil, err
		}
		if consumed {
			continue
		}
		if child.LocalName() == "tblPrChange" {
			change, err := parseTablePropertiesChange(child)
			if err != nil {
				return nil, err
			}
			props.Change = change
		}
	}
	return props, nil
}

// TablePropertiesChange is a tracked revision of table formatting.
type TablePropertiesChange struct {
	TrackChange
	Properties TableProperties
}

func parseTablePropertiesChange(node *xmlnode.Node) (*TablePropertiesChange, error) {
	tc, err := parseTrackChange(node)
	if err != nil {
		return nil, err
	}
	original := node.FirstChild("tblPr")
	if original == nil {
		return nil, NewMissingChildError(node.Name, "tblPr")
	}
	var props TableProperties
	for _, child := range original.Children {
		if _, err := props.updateFromNode(child); err != nil {
			return nil, err
		}
	}
	return &TablePropertiesChange{TrackChange: tc, Properties: props}, nil
}

// GridColumn is one column of the table grid.
type GridColumn struct {
	Width *TwipsMeasure
}

func parseTableGrid(node *xmlnode.Node) ([]GridColumn, error) {
	var cols []GridColumn
	for _, child := range node.Children {
		if child.LocalName() != "gridCol" {
			continue
		}
		w, err := optTwipsAttr(child, "w:w")
		if err != nil {
			return nil, err
		}
		cols = append(cols, GridColumn{Width: w})
	}
	return cols, nil
}

// RowHeight is a preferred or exact row height.
type RowHeight struct {
	Value *TwipsMeasure
	Rule  *HeightRule
}

func parseRowHeight(node *xmlnode.Node) (RowHeight, error) {
	var rh RowHeight
	var err error
	if rh.Value, err = optTwipsAttr(node, "w:val"); err != nil {
		return RowHeight{}, err
	}
	if v, ok := node.Attribute("w:hRule"); ok {
		r, err := ParseHeightRule(v)
		if err != nil {
			return RowHeight{}, err
		}
		rh.Rule = &r
	}
	return rh, nil
}

// TableRowProperties is the w:trPr bag.
type TableRowProperties struct {
	ConditionalStyle *Cnf
	DivID            *int64
	GridBefore       *int64
	GridAfter        *int64
	WidthBefore      *TableWidth
	WidthAfter       *TableWidth
	CantSplit        *bool
	Height           *RowHeight
	Header           *bool
	CellSpacing      *TableWidth
	Justification    *Jc
	Hidden           *bool
	Inserted         *TrackChange
	Deleted          *TrackChange
}

func parseTableRowProperties(node *xmlnode.Node) (*TableRowProperties, error) {
	props := &TableRowProperties{}
	for _, child := range node.Children {
		switch child.LocalName() {
		case "cnfStyle":
			cnf, err := parseCnf(child)
			if err != nil {
				return nil, err
			}
			props.ConditionalStyle = &cnf
		case "divId":
			n, err := parseDecimalVal(child)
			if err != nil {
				return nil, err
			}
			props.DivID = &n
		case "gridBefore":
			n, err := parseDecimalVal(child)
			if err != nil {
				return nil, err
			}
			props.GridBefore = &n
		case "gridAfter":
			n, err := parseDecimalVal(child)
			if err != nil {
				return nil, err
			}
			props.GridAfter = &n
		case "wBefore":
			tw, err := parseTableWidth(child)
			if err != nil {
				return nil, err
			}
			props.WidthBefore = &tw
		case "wAfter":
			tw, err := parseTableWidth(child)
			if err != nil {
				return nil, err
			}
			props.WidthAfter = &tw
		case "cantSplit":
			if err := setOnOff(&props.CantSplit, child); err != nil {
				return nil, err
			}
		case "trHeight":
			rh, err := parseRowHeight(child)
			if err != nil {
				return nil, err
			}
			props.Height = &rh
		case "tblHeader":
			if err := setOnOff(&props.Header, child); err != nil {
				return nil, err
			}
		case "tblCellSpacing":
			tw, err := parseTableWidth(child)
			if err != nil {
				return nil, err
			}
			props.CellSpacing = &tw
		case "jc":
			v, err := valAttr(child)
			if err != nil {
				return nil, err
			}
			jc, err := ParseJc(v)
			if err != nil {
				return nil, err
			}
			props.Justification = &jc
		case "hidden":
			if err := setOnOff(&props.Hidden, child); err != nil {
				return nil, err
			}
		case "ins":
			tc, err := parseTrackChange(child)
			if err != nil {
				return nil, err
			}
			props.Inserted = &tc
		case "del":
			tc, err := parseTrackChange(child)
			if err != nil {
				return nil, err
			}
			props.Deleted = &tc
		}
	}
	return props, nil
}

// TableCellBorders holds the eight cell border slots, including the
// two diagonals.
type TableCellBorders struct {
	Top     *Border
	Start   *Border
	Bottom  *Border
	End     *Border
	InsideH *Border
	InsideV *Border
	TL2BR   *Border
	TR2BL   *Border
}

func parseTableCellBorders(node *xmlnode.Node) (TableCellBorders, error) {
	var tcb TableCellBorders
	for _, child := range node.Children {
		var dest **Border
		switch child.LocalName() {
		case "top":
			dest = &tcb.Top
		case "start", "left":
			dest = &tcb.Start
		case "bottom":
			dest = &tcb.Bottom
		case "end", "right":
			dest = &tcb.End
		case "insideH":
			dest = &tcb.InsideH
		case "insideV":
			dest = &tcb.InsideV
		case "tl2br":
			dest = &tcb.TL2BR
		case "tr2bl":
			dest = &tcb.TR2BL
		default:
			continue
		}
		b, err := parseBorder(child)
		if err != nil {
			return TableCellBorders{}, err
		}
		*dest = &b
	}
	return tcb, nil
}

// TableCellProperties is the w:tcPr bag. Merge elements with no w:val
// default to continuing the merge started above or to the left.
type TableCellProperties struct {
	ConditionalStyle *Cnf
	Width            *TableWidth
	GridSpan         *int64
	HMerge           *MergeType
	VMerge           *MergeType
	Borders          *TableCellBorders
	Shading          *Shd
	NoWrap           *bool
	Margins          *TableCellMargins
	TextDirection    *TextDirection
	FitText          *bool
	VerticalAlign    *VerticalJc
	HideMark         *bool
	CellInserted     *TrackChange
	CellDeleted      *TrackChange
}

func parseMergeType(node *xmlnode.Node) (MergeType, error) {
	v, ok := node.Attribute("w:val")
	if !ok {
		return MergeTypeContinue, nil
	}
	return ParseMergeType(v)
}

func parseTableCellProperties(node *xmlnode.Node) (*TableCellProperties, error) {
	props := &TableCellProperties{}
	for _, child := range node.Children {
		switch child.LocalName() {
		case "cnfStyle":
			cnf, err := parseCnf(child)
			if err != nil {
				return nil, err
			}
			props.ConditionalStyle = &cnf
		case "tcW":
			tw, err := parseTableWidth(child)
			if err != nil {
				return nil, err
			}
			props.Width = &tw
		case "gridSpan":
			n, err := parseDecimalVal(child)
			if err != nil {
				return nil, err
			}
			props.GridSpan = &n
		case "hMerge":
			m, err := parseMergeType(child)
			if err != nil {
				return nil, err
			}
			props.HMerge = &m
		case "vMerge":
			m, err := parseMergeType(child)
			if err != nil {
				return nil, err
			}
			props.VMerge = &m
		case "tcBorders":
			tcb, err := parseTableCellBorders(child)
			if err != nil {
				return nil, err
			}
			props.Borders = &tcb
		case "shd":
			shd, err := parseShd(child)
			if err != nil {
				return nil, err
			}
			props.Shading = &shd
		case "noWrap":
			if err := setOnOff(&props.NoWrap, child); err != nil {
				return nil, err
			}
		case "tcMar":
			tcm, err := parseTableCellMargins(child)
			if err != nil {
				return nil, err
			}
			props.Margins = &tcm
		case "textDirection":
			v, err := valAttr(child)
			if err != nil {
				return nil, err
			}
			td, err := ParseTextDirection(v)
			if err != nil {
				return nil, err
			}
			props.TextDirection = &td
		case "tcFitText":
			if err := setOnOff(&props.FitText, child); err != nil {
				return nil, err
			}
		case "vAlign":
			v, err := valAttr(child)
			if err != nil {
				return nil, err
			}
			va, err := ParseVerticalJc(v)
			if err != nil {
				return nil, err
			}
			props.VerticalAlign = &va
		case "hideMark":
			if err := setOnOff(&props.HideMark, child); err != nil {
				return nil, err
			}
		case "cellIns":
			tc, err := parseTrackChange(child)
			if err != nil {
				return nil, err
			}
			props.CellInserted = &tc
		case "cellDel":
			tc, err := parseTrackChange(child)
			if err != nil {
				return nil, err
			}
			props.CellDeleted = &tc
		}
	}
	return props, nil
}

// TableCell is one cell of a table row. A cell always holds at least
// one block.
type TableCell struct {
	Properties *TableCellProperties
	Contents   []BlockContent
}

func parseTableCell(node *xmlnode.Node) (*TableCell, error) {
	cell := &TableCell{}
	for _, child := range node.Children {
		if child.LocalName() == "tcPr" {
			props, err := parseTableCellProperties(child)
			if err != nil {
				return nil, err
			}
			cell.Properties = props
			continue
		}
		content, err := parseBlockContent(child)
		if err != nil {
			if IsNotGroupMember(err) {
				continue
			}
			return nil, err
		}
		cell.Contents = append(cell.Contents, content)
	}
	if len(cell.Contents) == 0 {
		return nil, NewLimitViolationError(node.Name, "p", 1, Unbounded, 0)
	}
	return cell, nil
}

// TableRow is one row of a table.
type TableRow struct {
	Properties *TableRowProperties
	Cells      []*TableCell

	RsidRPr *uint32
	RsidR   *uint32
	RsidDel *uint32
	RsidTr  *uint32
}

func parseTableRow(node *xmlnode.Node) (*TableRow, error) {
	row := &TableRow{}
	var err error
	if row.RsidRPr, err = optLongHexAttr(node, "w:rsidRPr"); err != nil {
		return nil, err
	}
	if row.RsidR, err = optLongHexAttr(node, "w:rsidR"); err != nil {
		return nil, err
	}
	if row.RsidDel, err = optLongHexAttr(node, "w:rsidDel"); err != nil {
		return nil, err
	}
	if row.RsidTr, err = optLongHexAttr(node, "w:rsidTr"); err != nil {
		return nil, err
	}
	for _, child := range node.Children {
		switch child.LocalName() {
		case "trPr":
			props, err := parseTableRowProperties(child)
			if err != nil {
				return nil, err
			}
			row.Properties = props
		case "tc":
			cell, err := parseTableCell(child)
			if err != nil {
				return nil, err
			}
			row.Cells = append(row.Cells, cell)
		}
	}
	return row, nil
}

// Table is a w:tbl: its properties, column grid, and rows.
type Table struct {
	Properties *TableProperties
	Grid       []GridColumn
	Rows       []*TableRow
}

func (*Table) isBlockContent() {}

func parseTable(node *xmlnode.Node) (*Table, error) {
	propsNode := node.FirstChild("tblPr")
	if propsNode == nil {
		return nil, NewMissingChildError(node.Name, "tblPr")
	}
	props, err := parseTableProperties(propsNode)
	if err != nil {
		return nil, err
	}
	gridNode := node.FirstChild("tblGrid")
	if gridNode == nil {
		return nil, NewMissingChildError(node.Name, "tblGrid")
	}
	grid, err := parseTableGrid(gridNode)
	if err != nil {
		return nil, err
	}
	table := &Table{Properties: props, Grid: grid}
	for _, child := range node.Children {
		if child.LocalName() != "tr" {
			continue
		}
		row, err := parseTableRow(child)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
