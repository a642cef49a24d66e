package xmlnode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wordNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

func TestDecodePreservesPrefixes(t *testing.T) {
	src := `<w:document ` + wordNS + `>
		<w:body>
			<w:p w:rsidR="00AB12CD">
				<w:r><w:t xml:space="preserve"> hello </w:t></w:r>
			</w:p>
		</w:body>
	</w:document>`

	root, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "w:document", root.Name)
	assert.Equal(t, "document", root.LocalName())

	body := root.FirstChild("body")
	require.NotNil(t, body)
	assert.Equal(t, "w:body", body.Name)

	p := body.FirstChild("p")
	require.NotNil(t, p)
	rsid, ok := p.Attribute("w:rsidR")
	assert.True(t, ok)
	assert.Equal(t, "00AB12CD", rsid)

	text := p.FirstChild("r").FirstChild("t")
	require.NotNil(t, text)
	assert.Equal(t, " hello ", text.Text)
	space, ok := text.Attribute("xml:space")
	assert.True(t, ok)
	assert.Equal(t, "preserve", space)
}

func TestDecodeSkipsNamespaceDeclarations(t *testing.T) {
	src := `<w:settings ` + wordNS + `><w:zoom w:percent="100"/></w:settings>`

	root, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	_, ok := root.Attribute("xmlns:w")
	assert.False(t, ok, "xmlns declarations are not data attributes")

	zoom := root.FirstChild("zoom")
	require.NotNil(t, zoom)
	percent, ok := zoom.Attribute("w:percent")
	assert.True(t, ok)
	assert.Equal(t, "100", percent)
}

func TestDecodeKeepsChildOrder(t *testing.T) {
	src := `<w:p ` + wordNS + `><w:r/><w:bookmarkStart w:id="0" w:name="a"/><w:r/></w:p>`

	root, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, root.Children, 3)
	assert.Equal(t, "r", root.Children[0].LocalName())
	assert.Equal(t, "bookmarkStart", root.Children[1].LocalName())
	assert.Equal(t, "r", root.Children[2].LocalName())
}

func TestDecodeTruncatedInput(t *testing.T) {
	_, err := Decode(strings.NewReader(`<w:p ` + wordNS + `><w:r>`))
	assert.Error(t, err)
}

func TestDecodeEmptyInput(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	assert.Error(t, err)
}

func TestFirstChildMissing(t *testing.T) {
	root, err := Decode(strings.NewReader(`<w:p ` + wordNS + `/>`))
	require.NoError(t, err)
	assert.Nil(t, root.FirstChild("pPr"))
}
