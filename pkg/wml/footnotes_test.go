package wml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const footnotesPart = `<w:footnotes ` + testNS + `>
	<w:footnote w:type="separator" w:id="-1">
		<w:p><w:r><w:separator/></w:r></w:p>
	</w:footnote>
	<w:footnote w:type="continuationSeparator" w:id="0">
		<w:p><w:r><w:continuationSeparator/></w:r></w:p>
	</w:footnote>
	<w:footnote w:id="1">
		<w:p><w:r><w:footnoteRef/><w:t xml:space="preserve"> See chapter 3.</w:t></w:r></w:p>
	</w:footnote>
</w:footnotes>`

func TestParseFootnotes(t *testing.T) {
	notes, err := ParseFootnotes(mustNode(t, footnotesPart))
	require.NoError(t, err)
	require.Len(t, notes.Notes, 3)

	sep := notes.Notes[0]
	require.NotNil(t, sep.Type)
	assert.Equal(t, FtnEdnType("separator"), *sep.Type)
	assert.Equal(t, int64(-1), sep.ID)

	body := notes.Notes[2]
	assert.Nil(t, body.Type, "a missing type means a normal note")
	assert.Equal(t, int64(1), body.ID)
	require.Len(t, body.Contents, 1)
	para, ok := body.Contents[0].(*Paragraph)
	require.True(t, ok)
	assert.Equal(t, " See chapter 3.", para.Text())
}

func TestParseEndnotesRoot(t *testing.T) {
	notes, err := ParseFootnotes(mustNode(t, `<w:endnotes `+testNS+`>
		<w:endnote w:id="1"><w:p><w:r><w:t>note</w:t></w:r></w:p></w:endnote>
	</w:endnotes>`))
	require.NoError(t, err)
	require.Len(t, notes.Notes, 1)
}

func TestParseFootnotesRejectsWrongRoot(t *testing.T) {
	_, err := ParseFootnotes(mustNode(t, `<w:document `+testNS+`/>`))
	assert.True(t, IsInvalidXML(err))
}

func TestParseFtnEdnRequiresBlock(t *testing.T) {
	node := mustNode(t, `<w:footnote `+testNS+` w:id="4"/>`)
	_, err := parseFtnEdn(node)
	assert.True(t, IsLimitViolation(err))
}

func TestParseFtnEdnRequiresID(t *testing.T) {
	node := mustNode(t, `<w:footnote `+testNS+`><w:p><w:r><w:t>x</w:t></w:r></w:p></w:footnote>`)
	_, err := parseFtnEdn(node)
	assert.True(t, IsMissingAttribute(err))
}

func TestDecodeFootnotes(t *testing.T) {
	notes, err := DecodeFootnotes(strings.NewReader(footnotesPart))
	require.NoError(t, err)
	require.Len(t, notes.Notes, 3)
}
