package wml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mainDocument = `<w:document ` + testNS + ` w:conformance="strict">
	<w:background w:color="DDEEFF" w:themeColor="accent2"/>
	<w:body>
		<w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
		<w:tbl>
			<w:tblPr/>
			<w:tblGrid><w:gridCol w:w="4680"/><w:gridCol w:w="4680"/></w:tblGrid>
			<w:tr>
				<w:tc><w:p><w:r><w:t>left</w:t></w:r></w:p></w:tc>
				<w:tc><w:p><w:r><w:t>right</w:t></w:r></w:p></w:tc>
			</w:tr>
		</w:tbl>
		<w:sectPr>
			<w:pgSz w:w="12240" w:h="15840"/>
			<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/>
		</w:sectPr>
	</w:body>
</w:document>`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(mustNode(t, mainDocument))
	require.NoError(t, err)

	require.NotNil(t, doc.Conformance)
	assert.Equal(t, ConformanceClass("strict"), *doc.Conformance)

	require.NotNil(t, doc.Background)
	require.NotNil(t, doc.Background.Color)
	assert.Equal(t, HexColorRGB{0xDD, 0xEE, 0xFF}, doc.Background.Color.RGB)
	require.NotNil(t, doc.Background.ThemeColor)

	require.NotNil(t, doc.Body)
	require.Len(t, doc.Body.Contents, 2)
	_, ok := doc.Body.Contents[0].(*Paragraph)
	assert.True(t, ok)
	_, ok = doc.Body.Contents[1].(*Table)
	assert.True(t, ok)

	require.NotNil(t, doc.Body.SectionProperties)
	require.NotNil(t, doc.Body.SectionProperties.Contents.PageSize)
}

func TestParseDocumentRequiresBody(t *testing.T) {
	_, err := ParseDocument(mustNode(t, `<w:document `+testNS+`/>`))
	assert.True(t, IsMissingChild(err))

	_, err = ParseDocument(mustNode(t, `<w:document `+testNS+`>
		<w:background w:color="DDEEFF"/>
	</w:document>`))
	assert.True(t, IsMissingChild(err))
}

func TestParseDocumentRejectsWrongRoot(t *testing.T) {
	_, err := ParseDocument(mustNode(t, `<w:settings `+testNS+`/>`))
	assert.True(t, IsInvalidXML(err))
}

func TestDecodeDocument(t *testing.T) {
	doc, err := DecodeDocument(strings.NewReader(mainDocument))
	require.NoError(t, err)
	require.NotNil(t, doc.Body)
}

func TestBodyText(t *testing.T) {
	doc, err := ParseDocument(mustNode(t, mainDocument))
	require.NoError(t, err)
	text := doc.Body.Text()
	assert.Contains(t, text, "First paragraph.\n")
	assert.Contains(t, text, "left")
	assert.Contains(t, text, "\tright")
}

func TestParseBodySkipsUnknownBlocks(t *testing.T) {
	node := mustNode(t, `<w:body `+testNS+`>
		<w:futureBlock/>
		<w:p><w:r><w:t>kept</w:t></w:r></w:p>
	</w:body>`)

	body, err := parseBody(node)
	require.NoError(t, err)
	require.Len(t, body.Contents, 1)
}

func TestParseSettingsRoot(t *testing.T) {
	s, err := DecodeSettings(strings.NewReader(`<w:settings ` + testNS + `><w:zoom w:percent="100"/></w:settings>`))
	require.NoError(t, err)
	require.NotNil(t, s.Zoom)

	_, err = ParseSettings(mustNode(t, `<w:document `+testNS+`/>`))
	assert.True(t, IsInvalidXML(err))
}

func TestParseTextboxContentRoot(t *testing.T) {
	node := mustNode(t, `<w:txbxContent `+testNS+`><w:p><w:r><w:t>x</w:t></w:r></w:p></w:txbxContent>`)
	tc, err := ParseTextboxContent(node)
	require.NoError(t, err)
	require.Len(t, tc.Contents, 1)

	_, err = ParseTextboxContent(mustNode(t, `<w:body `+testNS+`/>`))
	assert.True(t, IsInvalidXML(err))
}

func TestParseBackgroundWithDrawing(t *testing.T) {
	node := mustNode(t, `<w:background `+testNS+` w:color="auto">
		<w:drawing/>
	</w:background>`)

	bg, err := parseBackground(node)
	require.NoError(t, err)
	require.NotNil(t, bg.Color)
	assert.True(t, bg.Color.Auto)
	require.NotNil(t, bg.Drawing)
}
