package wml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simpleTable = `<w:tbl ` + testNS + `>
	<w:tblPr>
		<w:tblStyle w:val="TableGrid"/>
		<w:tblW w:w="5000" w:type="pct"/>
		<w:tblBorders>
			<w:top w:val="single" w:sz="4"/>
			<w:left w:val="single" w:sz="4"/>
		</w:tblBorders>
	</w:tblPr>
	<w:tblGrid>
		<w:gridCol w:w="2880"/>
		<w:gridCol w:w="2880"/>
	</w:tblGrid>
	<w:tr>
		<w:tc><w:tcPr><w:tcW w:w="2880" w:type="dxa"/></w:tcPr><w:p><w:r><w:t>A1</w:t></w:r></w:p></w:tc>
		<w:tc><w:p><w:r><w:t>B1</w:t></w:r></w:p></w:tc>
	</w:tr>
</w:tbl>`

func TestParseTable(t *testing.T) {
	table, err := parseTable(mustNode(t, simpleTable))
	require.NoError(t, err)

	require.NotNil(t, table.Properties.Style)
	assert.Equal(t, "TableGrid", *table.Properties.Style)
	require.NotNil(t, table.Properties.Width)
	require.NotNil(t, table.Properties.Width.Unit)
	assert.Equal(t, TblWidthUnit("pct"), *table.Properties.Width.Unit)
	require.NotNil(t, table.Properties.Borders)
	require.NotNil(t, table.Properties.Borders.Top)
	require.NotNil(t, table.Properties.Borders.Start, "the left spelling feeds the start slot")

	require.Len(t, table.Grid, 2)
	require.NotNil(t, table.Grid[0].Width)
	assert.Equal(t, uint64(2880), *table.Grid[0].Width.Twips)

	require.Len(t, table.Rows, 1)
	require.Len(t, table.Rows[0].Cells, 2)
	cell := table.Rows[0].Cells[0]
	require.NotNil(t, cell.Properties)
	require.NotNil(t, cell.Properties.Width)
	require.Len(t, cell.Contents, 1)
}

func TestParseTableRequiresPropsAndGrid(t *testing.T) {
	node := mustNode(t, `<w:tbl `+testNS+`><w:tblGrid/></w:tbl>`)
	_, err := parseTable(node)
	require.True(t, IsMissingChild(err))

	node = mustNode(t, `<w:tbl `+testNS+`><w:tblPr/></w:tbl>`)
	_, err = parseTable(node)
	require.True(t, IsMissingChild(err))
}

func TestParseTableCellRequiresBlock(t *testing.T) {
	node := mustNode(t, `<w:tc `+testNS+`><w:tcPr/></w:tc>`)
	_, err := parseTableCell(node)
	assert.True(t, IsLimitViolation(err))
}

func TestParseMergeDefaultsToContinue(t *testing.T) {
	node := mustNode(t, `<w:tcPr `+testNS+`>
		<w:vMerge/>
		<w:hMerge w:val="restart"/>
		<w:gridSpan w:val="3"/>
	</w:tcPr>`)

	props, err := parseTableCellProperties(node)
	require.NoError(t, err)
	require.NotNil(t, props.VMerge)
	assert.Equal(t, MergeTypeContinue, *props.VMerge)
	require.NotNil(t, props.HMerge)
	assert.Equal(t, MergeTypeRestart, *props.HMerge)
	require.NotNil(t, props.GridSpan)
	assert.Equal(t, int64(3), *props.GridSpan)
}

func TestParseTableRowProperties(t *testing.T) {
	node := mustNode(t, `<w:trPr `+testNS+`>
		<w:cantSplit/>
		<w:tblHeader/>
		<w:trHeight w:val="400" w:hRule="exact"/>
		<w:del w:id="5" w:author="bob"/>
	</w:trPr>`)

	props, err := parseTableRowProperties(node)
	require.NoError(t, err)
	require.NotNil(t, props.CantSplit)
	assert.True(t, *props.CantSplit)
	require.NotNil(t, props.Header)
	require.NotNil(t, props.Height)
	require.NotNil(t, props.Height.Rule)
	assert.Equal(t, HeightRule("exact"), *props.Height.Rule)
	require.NotNil(t, props.Deleted)
	assert.Equal(t, "bob", props.Deleted.Author)
}

func TestParseTableCellBordersDiagonals(t *testing.T) {
	node := mustNode(t, `<w:tcBorders `+testNS+`>
		<w:tl2br w:val="single"/>
		<w:tr2bl w:val="single"/>
		<w:end w:val="double"/>
	</w:tcBorders>`)

	tcb, err := parseTableCellBorders(node)
	require.NoError(t, err)
	require.NotNil(t, tcb.TL2BR)
	require.NotNil(t, tcb.TR2BL)
	require.NotNil(t, tcb.End)
	assert.Equal(t, BorderType("double"), tcb.End.Value)
}

func TestParseTablePropertiesOverlap(t *testing.T) {
	node := mustNode(t, `<w:tblPr `+testNS+`>
		<w:tblOverlap w:val="never"/>
	</w:tblPr>`)

	props, err := parseTableProperties(node)
	require.NoError(t, err)
	require.NotNil(t, props.Overlap)
	assert.False(t, *props.Overlap)
}

func TestParseTablePropertiesChange(t *testing.T) {
	node := mustNode(t, `<w:tblPr `+testNS+`>
		<w:jc w:val="center"/>
		<w:tblPrChange w:id="3" w:author="dana">
			<w:tblPr><w:jc w:val="start"/></w:tblPr>
		</w:tblPrChange>
	</w:tblPr>`)

	props, err := parseTableProperties(node)
	require.NoError(t, err)
	require.NotNil(t, props.Change)
	assert.Equal(t, "dana", props.Change.Author)
	require.NotNil(t, props.Change.Properties.Justification)
	assert.Equal(t, JcStart, *props.Change.Properties.Justification)

	node = mustNode(t, `<w:tblPrChange `+testNS+` w:id="3" w:author="dana"/>`)
	_, err = parseTablePropertiesChange(node)
	assert.True(t, IsMissingChild(err))
}

func TestTableBordersUpdateWith(t *testing.T) {
	four := uint64(4)
	base := TableBorders{Top: &Border{Value: "single", Size: &four}}
	layer := TableBorders{Top: &Border{Value: "double"}, Bottom: &Border{Value: "single"}}

	merged := base.UpdateWith(layer)
	require.NotNil(t, merged.Top)
	assert.Equal(t, BorderType("double"), merged.Top.Value)
	require.NotNil(t, merged.Top.Size, "unset fields fall through to the base border")
	require.NotNil(t, merged.Bottom)
}

func TestParseTablePosition(t *testing.T) {
	node := mustNode(t, `<w:tblpPr `+testNS+` w:leftFromText="180" w:vertAnchor="text" w:tblpX="720" w:tblpYSpec="center"/>`)
	tp, err := parseTablePosition(node)
	require.NoError(t, err)
	require.NotNil(t, tp.LeftFromText)
	assert.Equal(t, uint64(180), *tp.LeftFromText.Twips)
	require.NotNil(t, tp.VertAnchor)
	require.NotNil(t, tp.X)
	assert.Equal(t, int64(720), *tp.X.Twips)
	require.NotNil(t, tp.YSpec)
}
