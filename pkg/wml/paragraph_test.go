package wml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParagraph(t *testing.T) {
	node := mustNode(t, `<w:p `+testNS+` w:rsidR="00112233" w:rsidRDefault="00445566">
		<w:pPr><w:jc w:val="center"/></w:pPr>
		<w:bookmarkStart w:id="0" w:name="intro"/>
		<w:r><w:t>Hello</w:t></w:r>
		<w:bookmarkEnd w:id="0"/>
	</w:p>`)

	para, err := parseParagraph(node)
	require.NoError(t, err)
	require.NotNil(t, para.RsidR)
	assert.Equal(t, uint32(0x00112233), *para.RsidR)
	require.NotNil(t, para.Properties)
	require.NotNil(t, para.Properties.Justification)
	require.Len(t, para.Contents, 3)

	start, ok := para.Contents[0].(BookmarkStart)
	require.True(t, ok)
	assert.Equal(t, "intro", start.Name)
	assert.Equal(t, int64(0), start.ID)

	_, ok = para.Contents[1].(*Run)
	assert.True(t, ok)

	end, ok := para.Contents[2].(BookmarkEnd)
	require.True(t, ok)
	assert.Equal(t, int64(0), end.ID)
}

func TestParagraphText(t *testing.T) {
	node := mustNode(t, `<w:p `+testNS+`>
		<w:r><w:t>See </w:t></w:r>
		<w:hyperlink r:id="rId4"><w:r><w:t>the docs</w:t></w:r></w:hyperlink>
		<w:r><w:t xml:space="preserve"> for more.</w:t></w:r>
	</w:p>`)

	para, err := parseParagraph(node)
	require.NoError(t, err)
	assert.Equal(t, "See the docs for more.", para.Text())
}

func TestParagraphTextTrackedChanges(t *testing.T) {
	node := mustNode(t, `<w:p `+testNS+`>
		<w:ins w:id="1" w:author="alice"><w:r><w:t>kept</w:t></w:r></w:ins>
		<w:del w:id="2" w:author="bob"><w:r><w:delText>dropped</w:delText></w:r></w:del>
	</w:p>`)

	para, err := parseParagraph(node)
	require.NoError(t, err)
	assert.Equal(t, "kept", para.Text(), "inserted text counts, deleted text does not")
}

func TestParseSimpleField(t *testing.T) {
	node := mustNode(t, `<w:fldSimple `+testNS+` w:instr=" PAGE " w:dirty="1">
		<w:r><w:t>3</w:t></w:r>
	</w:fldSimple>`)

	field, err := parseSimpleField(node)
	require.NoError(t, err)
	assert.Equal(t, " PAGE ", field.Instruction)
	require.NotNil(t, field.Dirty)
	assert.True(t, *field.Dirty)
	require.Len(t, field.Contents, 1)

	node = mustNode(t, `<w:fldSimple `+testNS+`/>`)
	_, err = parseSimpleField(node)
	assert.True(t, IsMissingAttribute(err))
}

func TestParseHyperlink(t *testing.T) {
	node := mustNode(t, `<w:hyperlink `+testNS+` r:id="rId7" w:anchor="sec2" w:history="1" w:tooltip="go">
		<w:r><w:t>link</w:t></w:r>
	</w:hyperlink>`)

	link, err := parseHyperlink(node)
	require.NoError(t, err)
	require.NotNil(t, link.RelationshipID)
	assert.Equal(t, "rId7", *link.RelationshipID)
	require.NotNil(t, link.Anchor)
	assert.Equal(t, "sec2", *link.Anchor)
	require.NotNil(t, link.History)
	assert.True(t, *link.History)
	require.NotNil(t, link.Tooltip)
	require.Len(t, link.Contents, 1)
}

func TestParseRunTrackChange(t *testing.T) {
	node := mustNode(t, `<w:moveTo `+testNS+` w:id="9" w:author="carol" w:date="2024-02-02T00:00:00Z">
		<w:r><w:t>moved here</w:t></w:r>
	</w:moveTo>`)

	change, err := parseRunTrackChange(node)
	require.NoError(t, err)
	assert.Equal(t, RunMovedTo, change.Kind)
	assert.Equal(t, "carol", change.Author)
	require.Len(t, change.Contents, 1)
}

func TestParsePermRange(t *testing.T) {
	node := mustNode(t, `<w:permStart `+testNS+` w:id="100" w:edGrp="everyone" w:colFirst="0" w:colLast="2"/>`)
	content, err := parseRunLevelElement(node)
	require.NoError(t, err)
	perm, ok := content.(PermStart)
	require.True(t, ok)
	assert.Equal(t, "100", perm.ID)
	require.NotNil(t, perm.EditorGroup)
	assert.Equal(t, EdGrp("everyone"), *perm.EditorGroup)
	require.NotNil(t, perm.ColFirst)
	assert.Equal(t, int64(0), *perm.ColFirst)

	node = mustNode(t, `<w:permEnd `+testNS+`/>`)
	_, err = parseRunLevelElement(node)
	assert.True(t, IsMissingAttribute(err))
}

func TestParseProofError(t *testing.T) {
	node := mustNode(t, `<w:proofErr `+testNS+` w:type="spellStart"/>`)
	content, err := parseRunLevelElement(node)
	require.NoError(t, err)
	pe, ok := content.(ProofError)
	require.True(t, ok)
	assert.Equal(t, ProofErrType("spellStart"), pe.Type)
}

func TestParseMathContentKeptRaw(t *testing.T) {
	node := mustNode(t, `<w:p `+testNS+` xmlns:m="http://schemas.openxmlformats.org/officeDocument/2006/math">
		<m:oMath><m:r><m:t>x</m:t></m:r></m:oMath>
	</w:p>`)

	para, err := parseParagraph(node)
	require.NoError(t, err)
	require.Len(t, para.Contents, 1)
	math, ok := para.Contents[0].(MathContent)
	require.True(t, ok)
	assert.Equal(t, "oMath", math.Kind)
	require.NotNil(t, math.Raw)
	require.Len(t, math.Raw.Children, 1)
}

func TestParseCustomXMLRun(t *testing.T) {
	node := mustNode(t, `<w:customXml `+testNS+` w:uri="urn:example" w:element="title">
		<w:customXmlPr><w:attr w:name="lang" w:val="en"/></w:customXmlPr>
		<w:r><w:t>Title</w:t></w:r>
	</w:customXml>`)

	cx, err := parseCustomXMLRun(node)
	require.NoError(t, err)
	assert.Equal(t, "title", cx.Element)
	require.NotNil(t, cx.URI)
	require.NotNil(t, cx.Properties)
	require.Len(t, cx.Properties.Attrs, 1)
	assert.Equal(t, "lang", cx.Properties.Attrs[0].Name)
	assert.Equal(t, "en", cx.Properties.Attrs[0].Value)
	require.Len(t, cx.Contents, 1)

	node = mustNode(t, `<w:customXml `+testNS+`/>`)
	_, err = parseCustomXMLRun(node)
	assert.True(t, IsMissingAttribute(err))
}

func TestParseSmartTag(t *testing.T) {
	node := mustNode(t, `<w:smartTag `+testNS+` w:uri="urn:tags" w:element="date">
		<w:smartTagPr><w:attr w:name="day" w:val="5"/></w:smartTagPr>
		<w:r><w:t>May 5</w:t></w:r>
	</w:smartTag>`)

	st, err := parseSmartTag(node)
	require.NoError(t, err)
	assert.Equal(t, "date", st.Element)
	require.NotNil(t, st.Properties)
	require.Len(t, st.Properties.Attrs, 1)
	require.Len(t, st.Contents, 1)
}

func TestParseDirAndBdo(t *testing.T) {
	node := mustNode(t, `<w:dir `+testNS+` w:val="rtl"><w:r><w:t>שלום</w:t></w:r></w:dir>`)
	content, err := parseParagraphContent(node)
	require.NoError(t, err)
	dir, ok := content.(*DirContentRun)
	require.True(t, ok)
	require.NotNil(t, dir.Direction)
	assert.Equal(t, Direction("rtl"), *dir.Direction)
	require.Len(t, dir.Contents, 1)

	node = mustNode(t, `<w:bdo `+testNS+` w:val="ltr"><w:r><w:t>x</w:t></w:r></w:bdo>`)
	content, err = parseParagraphContent(node)
	require.NoError(t, err)
	_, ok = content.(*BdoContentRun)
	assert.True(t, ok)
}

func TestParseParagraphSkipsUnknownContent(t *testing.T) {
	node := mustNode(t, `<w:p `+testNS+`>
		<w:futureThing/>
		<w:r><w:t>kept</w:t></w:r>
	</w:p>`)

	para, err := parseParagraph(node)
	require.NoError(t, err)
	require.Len(t, para.Contents, 1)
}
