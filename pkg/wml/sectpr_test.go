package wml

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSectionProperties(t *testing.T) {
	node := mustNode(t, `<w:sectPr `+testNS+` w:rsidR="00AA00AA" w:rsidSect="00BB00BB">
		<w:headerReference w:type="default" r:id="rId8"/>
		<w:footerReference w:type="first" r:id="rId9"/>
		<w:pgSz w:w="12240" w:h="15840"/>
		<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/>
		<w:cols w:space="708"/>
		<w:titlePg/>
		<w:docGrid w:linePitch="360"/>
	</w:sectPr>`)

	sect, err := parseSectionProperties(node)
	require.NoError(t, err)
	require.NotNil(t, sect.RsidSect)
	assert.Equal(t, uint32(0x00BB00BB), *sect.RsidSect)

	require.Len(t, sect.HdrFtrReferences, 2)
	assert.Equal(t, HdrFtr("default"), sect.HdrFtrReferences[0].Type)
	assert.False(t, sect.HdrFtrReferences[0].Footer)
	assert.Equal(t, "rId8", sect.HdrFtrReferences[0].RelationshipID)
	assert.True(t, sect.HdrFtrReferences[1].Footer)

	require.NotNil(t, sect.Contents.PageSize)
	assert.Equal(t, uint64(12240), *sect.Contents.PageSize.Width.Twips)
	require.NotNil(t, sect.Contents.PageMargins)
	assert.Equal(t, int64(1440), *sect.Contents.PageMargins.Top.Twips)
	assert.Equal(t, uint64(720), *sect.Contents.PageMargins.Header.Twips)
	require.NotNil(t, sect.Contents.Columns)
	require.NotNil(t, sect.Contents.TitlePage)
	assert.True(t, *sect.Contents.TitlePage)
	require.NotNil(t, sect.Contents.DocumentGrid)
	assert.Equal(t, int64(360), *sect.Contents.DocumentGrid.LinePitch)
}

func TestParsePageMarginsRequiresAllSeven(t *testing.T) {
	node := mustNode(t, `<w:pgMar `+testNS+` w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720"/>`)
	_, err := parsePageMargins(node)
	assert.True(t, IsMissingAttribute(err))
}

func TestParsePageMarginsNegativeTop(t *testing.T) {
	node := mustNode(t, `<w:pgMar `+testNS+` w:top="-720" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/>`)
	pm, err := parsePageMargins(node)
	require.NoError(t, err)
	assert.Equal(t, int64(-720), *pm.Top.Twips)
}

func TestParseColumnsLimit(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`<w:cols ` + testNS + `>`)
	for i := 0; i < 46; i++ {
		fmt.Fprintf(&sb, `<w:col w:w="200"/>`)
	}
	sb.WriteString(`</w:cols>`)

	_, err := parseColumns(mustNode(t, sb.String()))
	assert.True(t, IsLimitViolation(err))
}

func TestParseColumnsExplicit(t *testing.T) {
	node := mustNode(t, `<w:cols `+testNS+` w:num="2" w:equalWidth="0" w:sep="1">
		<w:col w:w="4000" w:space="720"/>
		<w:col w:w="5000"/>
	</w:cols>`)

	cols, err := parseColumns(node)
	require.NoError(t, err)
	require.NotNil(t, cols.Num)
	assert.Equal(t, int64(2), *cols.Num)
	require.NotNil(t, cols.EqualWidth)
	assert.False(t, *cols.EqualWidth)
	require.NotNil(t, cols.Separator)
	require.Len(t, cols.Columns, 2)
	assert.Equal(t, uint64(4000), *cols.Columns[0].Width.Twips)
	assert.Nil(t, cols.Columns[1].Space)
}

func TestParseSectionPropertiesReferenceLimit(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`<w:sectPr ` + testNS + `>`)
	for _, typ := range []string{"default", "first", "even"} {
		fmt.Fprintf(&sb, `<w:headerReference w:type="%s" r:id="rIdH"/>`, typ)
		fmt.Fprintf(&sb, `<w:footerReference w:type="%s" r:id="rIdF"/>`, typ)
	}
	sb.WriteString(`<w:headerReference w:type="default" r:id="rIdX"/>`)
	sb.WriteString(`</w:sectPr>`)

	_, err := parseSectionProperties(mustNode(t, sb.String()))
	assert.True(t, IsLimitViolation(err))
}

func TestParseHdrFtrReferenceRequiresTypeAndID(t *testing.T) {
	node := mustNode(t, `<w:headerReference `+testNS+` r:id="rId8"/>`)
	_, err := parseHdrFtrReference(node)
	assert.True(t, IsMissingAttribute(err))

	node = mustNode(t, `<w:headerReference `+testNS+` w:type="default"/>`)
	_, err = parseHdrFtrReference(node)
	assert.True(t, IsMissingAttribute(err))
}

func TestParseFootnoteEndnoteProperties(t *testing.T) {
	node := mustNode(t, `<w:sectPr `+testNS+`>
		<w:footnotePr>
			<w:pos w:val="pageBottom"/>
			<w:numFmt w:val="lowerRoman"/>
			<w:numStart w:val="5"/>
			<w:numRestart w:val="eachSect"/>
		</w:footnotePr>
		<w:endnotePr><w:pos w:val="docEnd"/></w:endnotePr>
	</w:sectPr>`)

	sect, err := parseSectionProperties(node)
	require.NoError(t, err)
	fp := sect.Contents.FootnoteProperties
	require.NotNil(t, fp)
	assert.Equal(t, FtnPos("pageBottom"), *fp.Position)
	assert.Equal(t, NumberFormat("lowerRoman"), *fp.NumberFormat)
	assert.Equal(t, int64(5), *fp.NumberStart)
	assert.Equal(t, RestartNumber("eachSect"), *fp.RestartRule)
	require.NotNil(t, sect.Contents.EndnoteProperties)
	assert.Equal(t, EdnPos("docEnd"), *sect.Contents.EndnoteProperties.Position)
}

func TestParsePageBorders(t *testing.T) {
	node := mustNode(t, `<w:pgBorders `+testNS+` w:zOrder="front" w:offsetFrom="page">
		<w:top w:val="single" w:sz="24" r:id="rImg" r:topLeft="rTL"/>
		<w:bottom w:val="single" r:bottomRight="rBR"/>
		<w:left w:val="double"/>
	</w:pgBorders>`)

	pb, err := parsePageBorders(node)
	require.NoError(t, err)
	require.NotNil(t, pb.ZOrder)
	require.NotNil(t, pb.OffsetFrom)
	require.NotNil(t, pb.Top)
	require.NotNil(t, pb.Top.RelationshipID)
	assert.Equal(t, "rImg", *pb.Top.RelationshipID)
	require.NotNil(t, pb.Top.TopLeft)
	assert.Equal(t, "rTL", *pb.Top.TopLeft)
	require.NotNil(t, pb.Bottom)
	require.NotNil(t, pb.Bottom.BottomRight)
	require.NotNil(t, pb.Left)
	assert.Nil(t, pb.Right)
}

func TestParseSectionPropertiesChange(t *testing.T) {
	node := mustNode(t, `<w:sectPrChange `+testNS+` w:id="4" w:author="erin">
		<w:sectPr><w:pgSz w:w="11906" w:h="16838"/></w:sectPr>
	</w:sectPrChange>`)

	change, err := parseSectionPropertiesChange(node)
	require.NoError(t, err)
	assert.Equal(t, "erin", change.Author)
	require.NotNil(t, change.Properties)
	require.NotNil(t, change.Properties.Contents.PageSize)
	assert.Equal(t, uint64(11906), *change.Properties.Contents.PageSize.Width.Twips)
}

func TestParseSectionPropertiesChangeWithoutSnapshot(t *testing.T) {
	node := mustNode(t, `<w:sectPrChange `+testNS+` w:id="4" w:author="erin"/>`)
	change, err := parseSectionPropertiesChange(node)
	require.NoError(t, err)
	assert.Nil(t, change.Properties, "the snapshot is optional for deleted section breaks")
}

func TestParseLineAndPageNumbering(t *testing.T) {
	node := mustNode(t, `<w:sectPr `+testNS+`>
		<w:lnNumType w:countBy="5" w:restart="newPage" w:distance="360"/>
		<w:pgNumType w:fmt="upperRoman" w:start="1" w:chapSep="hyphen"/>
	</w:sectPr>`)

	sect, err := parseSectionProperties(node)
	require.NoError(t, err)
	ln := sect.Contents.LineNumbering
	require.NotNil(t, ln)
	assert.Equal(t, int64(5), *ln.CountBy)
	assert.Equal(t, LineNumberRestart("newPage"), *ln.Restart)
	pn := sect.Contents.PageNumbering
	require.NotNil(t, pn)
	assert.Equal(t, NumberFormat("upperRoman"), *pn.Format)
	assert.Equal(t, ChapterSep("hyphen"), *pn.ChapterSep)
}
