package wml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRun(t *testing.T) {
	node := mustNode(t, `<w:r `+testNS+` w:rsidR="00AB12CD">
		<w:rPr><w:b/></w:rPr>
		<w:t xml:space="preserve">hello </w:t>
		<w:br w:type="page"/>
		<w:t>world</w:t>
	</w:r>`)

	run, err := parseRun(node)
	require.NoError(t, err)
	require.NotNil(t, run.RsidR)
	assert.Equal(t, uint32(0x00AB12CD), *run.RsidR)
	require.NotNil(t, run.Properties)
	require.Len(t, run.Properties.Properties, 1)
	require.Len(t, run.Contents, 3)

	text, ok := run.Contents[0].(Text)
	require.True(t, ok)
	assert.Equal(t, "hello ", text.Text)
	require.NotNil(t, text.Space)
	assert.Equal(t, "preserve", *text.Space)

	br, ok := run.Contents[1].(Break)
	require.True(t, ok)
	require.NotNil(t, br.Type)
	assert.Equal(t, BrTypePage, *br.Type)
}

func TestRunText(t *testing.T) {
	node := mustNode(t, `<w:r `+testNS+`>
		<w:t>a</w:t><w:tab/><w:t>b</w:t><w:cr/><w:t>c</w:t>
	</w:r>`)
	run, err := parseRun(node)
	require.NoError(t, err)
	assert.Equal(t, "a\tb\nc", run.Text())
}

func TestParseRunMarkers(t *testing.T) {
	node := mustNode(t, `<w:r `+testNS+`>
		<w:noBreakHyphen/><w:softHyphen/><w:lastRenderedPageBreak/><w:footnoteRef/>
	</w:r>`)
	run, err := parseRun(node)
	require.NoError(t, err)
	require.Len(t, run.Contents, 4)
	assert.Equal(t, MarkerNoBreakHyphen, run.Contents[0])
	assert.Equal(t, MarkerSoftHyphen, run.Contents[1])
	assert.Equal(t, MarkerLastRenderedPageBreak, run.Contents[2])
	assert.Equal(t, MarkerFootnoteRef, run.Contents[3])
}

func TestParseDeletedAndInstructionText(t *testing.T) {
	node := mustNode(t, `<w:r `+testNS+`>
		<w:delText>gone</w:delText>
		<w:instrText> PAGE </w:instrText>
	</w:r>`)
	run, err := parseRun(node)
	require.NoError(t, err)
	require.Len(t, run.Contents, 2)

	del, ok := run.Contents[0].(DeletedText)
	require.True(t, ok)
	assert.Equal(t, "gone", del.Text)

	instr, ok := run.Contents[1].(InstructionText)
	require.True(t, ok)
	assert.Equal(t, " PAGE ", instr.Text)

	assert.Equal(t, "", run.Text(), "deleted and instruction text are not literal text")
}

func TestParseFieldChar(t *testing.T) {
	node := mustNode(t, `<w:fldChar `+testNS+` w:fldCharType="begin" w:dirty="1"/>`)
	fc, err := parseFieldChar(node)
	require.NoError(t, err)
	assert.Equal(t, FldCharType("begin"), fc.Type)
	require.NotNil(t, fc.Dirty)
	assert.True(t, *fc.Dirty)

	node = mustNode(t, `<w:fldChar `+testNS+`/>`)
	_, err = parseFieldChar(node)
	assert.True(t, IsMissingAttribute(err))
}

func TestParseSym(t *testing.T) {
	node := mustNode(t, `<w:sym `+testNS+` w:font="Wingdings" w:char="F0E0"/>`)
	sym, err := parseSym(node)
	require.NoError(t, err)
	require.NotNil(t, sym.Font)
	assert.Equal(t, "Wingdings", *sym.Font)
	require.NotNil(t, sym.Char)
	assert.Equal(t, uint16(0xF0E0), *sym.Char)
}

func TestParseFootnoteReference(t *testing.T) {
	node := mustNode(t, `<w:r `+testNS+`>
		<w:footnoteReference w:id="2"/>
		<w:endnoteReference w:id="3" w:customMarkFollows="1"/>
	</w:r>`)
	run, err := parseRun(node)
	require.NoError(t, err)
	require.Len(t, run.Contents, 2)

	fr, ok := run.Contents[0].(FootnoteReference)
	require.True(t, ok)
	assert.Equal(t, int64(2), fr.ID)

	er, ok := run.Contents[1].(EndnoteReference)
	require.True(t, ok)
	assert.Equal(t, int64(3), er.ID)
	require.NotNil(t, er.CustomMarkFollows)
	assert.True(t, *er.CustomMarkFollows)
}

func TestParsePTab(t *testing.T) {
	node := mustNode(t, `<w:ptab `+testNS+` w:alignment="center" w:relativeTo="margin" w:leader="dot"/>`)
	pt, err := parsePTab(node)
	require.NoError(t, err)
	assert.Equal(t, PTabAlignment("center"), pt.Alignment)
	assert.Equal(t, PTabRelativeTo("margin"), pt.RelativeTo)
	assert.Equal(t, PTabLeader("dot"), pt.Leader)

	node = mustNode(t, `<w:ptab `+testNS+` w:alignment="center" w:relativeTo="margin"/>`)
	_, err = parsePTab(node)
	assert.True(t, IsMissingAttribute(err))
}

func TestParseRuby(t *testing.T) {
	node := mustNode(t, `<w:ruby `+testNS+`>
		<w:rubyPr>
			<w:rubyAlign w:val="center"/>
			<w:hps w:val="12"/>
			<w:hpsRaise w:val="22"/>
			<w:hpsBaseText w:val="24"/>
			<w:lid w:val="ja-JP"/>
		</w:rubyPr>
		<w:rt><w:r><w:t>かんじ</w:t></w:r></w:rt>
		<w:rubyBase><w:r><w:t>漢字</w:t></w:r></w:rubyBase>
	</w:ruby>`)

	ruby, err := parseRuby(node)
	require.NoError(t, err)
	assert.Equal(t, RubyAlign("center"), ruby.Properties.Align)
	assert.Equal(t, "ja-JP", ruby.Properties.Language)
	require.Len(t, ruby.Content.Contents, 1)
	require.Len(t, ruby.Base.Contents, 1)
}

func TestParseRubyMissingPart(t *testing.T) {
	node := mustNode(t, `<w:ruby `+testNS+`>
		<w:rt><w:r><w:t>x</w:t></w:r></w:rt>
		<w:rubyBase><w:r><w:t>y</w:t></w:r></w:rubyBase>
	</w:ruby>`)
	_, err := parseRuby(node)
	assert.True(t, IsMissingChild(err))
}

func TestParseEmbeddedObject(t *testing.T) {
	node := mustNode(t, `<w:object `+testNS+` w:dxaOrig="1440" w:dyaOrig="720"><w:drawing/></w:object>`)
	obj, err := parseEmbeddedObject(node)
	require.NoError(t, err)
	require.NotNil(t, obj.DxaOrig)
	assert.Equal(t, uint64(1440), *obj.DxaOrig.Twips)
	require.Len(t, obj.Content, 1)
}
