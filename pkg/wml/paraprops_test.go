package wml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParagraphProperties(t *testing.T) {
	node := mustNode(t, `<w:pPr `+testNS+`>
		<w:pStyle w:val="Heading1"/>
		<w:keepNext/>
		<w:widowControl w:val="0"/>
		<w:numPr><w:ilvl w:val="1"/><w:numId w:val="3"/></w:numPr>
		<w:spacing w:before="240" w:after="120" w:line="360" w:lineRule="auto"/>
		<w:ind w:left="720" w:hanging="360"/>
		<w:jc w:val="center"/>
		<w:outlineLvl w:val="0"/>
	</w:pPr>`)

	props, err := parseParagraphProperties(node)
	require.NoError(t, err)

	require.NotNil(t, props.Style)
	assert.Equal(t, "Heading1", *props.Style)
	require.NotNil(t, props.KeepNext)
	assert.True(t, *props.KeepNext)
	require.NotNil(t, props.WidowControl)
	assert.False(t, *props.WidowControl)

	require.NotNil(t, props.NumberingProperties)
	require.NotNil(t, props.NumberingProperties.Level)
	assert.Equal(t, int64(1), *props.NumberingProperties.Level)
	require.NotNil(t, props.NumberingProperties.NumID)
	assert.Equal(t, int64(3), *props.NumberingProperties.NumID)

	require.NotNil(t, props.Spacing)
	require.NotNil(t, props.Spacing.Before)
	assert.Equal(t, uint64(240), *props.Spacing.Before.Twips)
	require.NotNil(t, props.Spacing.LineRule)

	require.NotNil(t, props.Ind)
	require.NotNil(t, props.Ind.Start)
	assert.Equal(t, int64(720), *props.Ind.Start.Twips)
	require.NotNil(t, props.Ind.Hanging)
	assert.Equal(t, uint64(360), *props.Ind.Hanging.Twips)

	require.NotNil(t, props.Justification)
	assert.Equal(t, JcCenter, *props.Justification)
	require.NotNil(t, props.OutlineLevel)
	assert.Equal(t, int64(0), *props.OutlineLevel)
}

func TestParseIndAcceptsBothSpellings(t *testing.T) {
	node := mustNode(t, `<w:ind `+testNS+` w:start="720" w:end="144"/>`)
	ind, err := parseInd(node)
	require.NoError(t, err)
	require.NotNil(t, ind.Start)
	assert.Equal(t, int64(720), *ind.Start.Twips)
	require.NotNil(t, ind.End)
	assert.Equal(t, int64(144), *ind.End.Twips)

	node = mustNode(t, `<w:ind `+testNS+` w:left="100" w:right="200"/>`)
	ind, err = parseInd(node)
	require.NoError(t, err)
	assert.Equal(t, int64(100), *ind.Start.Twips)
	assert.Equal(t, int64(200), *ind.End.Twips)
}

func TestParseTabs(t *testing.T) {
	node := mustNode(t, `<w:tabs `+testNS+`>
		<w:tab w:val="left" w:pos="720"/>
		<w:tab w:val="right" w:leader="dot" w:pos="9360"/>
	</w:tabs>`)

	tabs, err := parseTabs(node)
	require.NoError(t, err)
	require.Len(t, tabs, 2)
	assert.Equal(t, TabJc("left"), tabs[0].Alignment)
	assert.Equal(t, int64(720), *tabs[0].Position.Twips)
	require.NotNil(t, tabs[1].Leader)
	assert.Equal(t, TabTlc("dot"), *tabs[1].Leader)
}

func TestParseTabsRequiresOne(t *testing.T) {
	node := mustNode(t, `<w:tabs `+testNS+`/>`)
	_, err := parseTabs(node)
	assert.True(t, IsLimitViolation(err))
}

func TestParseParagraphBorders(t *testing.T) {
	node := mustNode(t, `<w:pBdr `+testNS+`>
		<w:top w:val="single" w:sz="4"/>
		<w:between w:val="dashed"/>
	</w:pBdr>`)

	pb, err := parseParagraphBorders(node)
	require.NoError(t, err)
	require.NotNil(t, pb.Top)
	assert.Equal(t, BorderType("single"), pb.Top.Value)
	require.NotNil(t, pb.Between)
	assert.Nil(t, pb.Bottom)
}

func TestPPrBaseUpdateWith(t *testing.T) {
	style := "Body"
	override := "Quote"
	yes := true

	base := ParagraphPropertiesBase{
		Style:    &style,
		KeepNext: &yes,
		Tabs:     []TabStop{{Alignment: "left"}},
	}
	layer := ParagraphPropertiesBase{
		Style: &override,
		Tabs:  []TabStop{{Alignment: "center"}, {Alignment: "right"}},
	}

	merged := base.UpdateWith(layer)
	assert.Equal(t, "Quote", *merged.Style)
	require.NotNil(t, merged.KeepNext, "fields the layer is silent on survive")
	assert.True(t, *merged.KeepNext)
	require.Len(t, merged.Tabs, 2, "tab stop lists replace wholesale")
	assert.Equal(t, TabJc("center"), merged.Tabs[0].Alignment)
}

func TestPPrBaseUpdateWithKeepsBaseTabs(t *testing.T) {
	base := ParagraphPropertiesBase{Tabs: []TabStop{{Alignment: "left"}}}
	merged := base.UpdateWith(ParagraphPropertiesBase{})
	require.Len(t, merged.Tabs, 1)
}

func TestPPrBaseUpdateWithMergesSpacing(t *testing.T) {
	before := TwipsMeasure{Twips: uintPtr(240)}
	after := TwipsMeasure{Twips: uintPtr(120)}

	base := ParagraphPropertiesBase{Spacing: &Spacing{Before: &before}}
	layer := ParagraphPropertiesBase{Spacing: &Spacing{After: &after}}

	merged := base.UpdateWith(layer)
	require.NotNil(t, merged.Spacing)
	require.NotNil(t, merged.Spacing.Before, "both-present bags merge field-wise")
	require.NotNil(t, merged.Spacing.After)
}

func TestParseParagraphPropertiesChange(t *testing.T) {
	node := mustNode(t, `<w:pPr `+testNS+`>
		<w:jc w:val="both"/>
		<w:pPrChange w:id="12" w:author="editor" w:date="2024-06-01T10:00:00Z">
			<w:pPr><w:jc w:val="left"/></w:pPr>
		</w:pPrChange>
	</w:pPr>`)

	props, err := parseParagraphProperties(node)
	require.NoError(t, err)
	require.NotNil(t, props.Change)
	assert.Equal(t, "editor", props.Change.Author)
	require.NotNil(t, props.Change.Properties.Justification)
	assert.Equal(t, Jc("left"), *props.Change.Properties.Justification)
}

func TestParseParagraphPropertiesChangeMissingSnapshot(t *testing.T) {
	node := mustNode(t, `<w:pPrChange `+testNS+` w:id="12" w:author="editor"/>`)
	_, err := parseParagraphPropertiesChange(node)
	assert.True(t, IsMissingChild(err))
}

func TestParseFrameProperties(t *testing.T) {
	node := mustNode(t, `<w:framePr `+testNS+` w:dropCap="drop" w:lines="3" w:wrap="around" w:hAnchor="text" w:x="144"/>`)
	fp, err := parseFrameProperties(node)
	require.NoError(t, err)
	require.NotNil(t, fp.DropCap)
	assert.Equal(t, DropCap("drop"), *fp.DropCap)
	require.NotNil(t, fp.Lines)
	assert.Equal(t, int64(3), *fp.Lines)
	require.NotNil(t, fp.Wrap)
	require.NotNil(t, fp.X)
	assert.Equal(t, int64(144), *fp.X.Twips)
}
