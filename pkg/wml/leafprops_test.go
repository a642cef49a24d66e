package wml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	node := mustNode(t, `<w:color `+testNS+` w:val="FF0000" w:themeColor="accent1" w:themeTint="99"/>`)
	c, err := parseColor(node)
	require.NoError(t, err)
	assert.Equal(t, HexColorRGB{0xFF, 0, 0}, c.Value.RGB)
	require.NotNil(t, c.ThemeColor)
	assert.Equal(t, ThemeColor("accent1"), *c.ThemeColor)
	require.NotNil(t, c.ThemeTint)
	assert.Equal(t, uint8(0x99), *c.ThemeTint)
	assert.Nil(t, c.ThemeShade)

	node = mustNode(t, `<w:color `+testNS+`/>`)
	_, err = parseColor(node)
	assert.True(t, IsMissingAttribute(err))
}

func TestParseBorder(t *testing.T) {
	node := mustNode(t, `<w:top `+testNS+` w:val="single" w:sz="4" w:space="1" w:color="auto" w:shadow="1"/>`)
	b, err := parseBorder(node)
	require.NoError(t, err)
	assert.Equal(t, BorderType("single"), b.Value)
	require.NotNil(t, b.Size)
	assert.Equal(t, uint64(4), *b.Size)
	require.NotNil(t, b.Color)
	assert.True(t, b.Color.Auto)
	require.NotNil(t, b.Shadow)
	assert.True(t, *b.Shadow)

	node = mustNode(t, `<w:top `+testNS+` w:val="squiggly"/>`)
	_, err = parseBorder(node)
	assert.True(t, IsParseEnum(err))
}

func TestParseShd(t *testing.T) {
	node := mustNode(t, `<w:shd `+testNS+` w:val="pct25" w:color="auto" w:fill="DDEEFF"/>`)
	s, err := parseShd(node)
	require.NoError(t, err)
	assert.Equal(t, ShdType("pct25"), s.Value)
	require.NotNil(t, s.Fill)
	assert.Equal(t, HexColorRGB{0xDD, 0xEE, 0xFF}, s.Fill.RGB)
}

func TestParseFonts(t *testing.T) {
	node := mustNode(t, `<w:rFonts `+testNS+` w:ascii="Calibri" w:hAnsi="Calibri" w:cstheme="minorBidi" w:hint="eastAsia"/>`)
	f, err := parseFonts(node)
	require.NoError(t, err)
	require.NotNil(t, f.ASCII)
	assert.Equal(t, "Calibri", *f.ASCII)
	require.NotNil(t, f.ComplexScriptTheme)
	assert.Equal(t, ThemeFontIndex("minorBidi"), *f.ComplexScriptTheme)
	require.NotNil(t, f.Hint)
	assert.Equal(t, Hint("eastAsia"), *f.Hint)
	assert.Nil(t, f.EastAsia)
}

func TestFontsUpdateWith(t *testing.T) {
	ascii := "Calibri"
	eastAsia := "MS Mincho"
	override := "Consolas"

	base := Fonts{ASCII: &ascii, EastAsia: &eastAsia}
	merged := base.UpdateWith(Fonts{ASCII: &override})

	assert.Equal(t, "Consolas", *merged.ASCII)
	assert.Equal(t, "MS Mincho", *merged.EastAsia, "fields absent in the override survive")
}

func TestCnfMergeIsFieldWise(t *testing.T) {
	yes := true
	no := false

	base := Cnf{FirstRow: &yes, OddHBand: &yes}
	override := Cnf{FirstRow: &no, LastColumn: &yes}
	merged := base.UpdateWith(override)

	require.NotNil(t, merged.FirstRow)
	assert.False(t, *merged.FirstRow, "override wins its own field")
	require.NotNil(t, merged.OddHBand)
	assert.True(t, *merged.OddHBand, "base survives where the override is silent")
	require.NotNil(t, merged.LastColumn)
	assert.True(t, *merged.LastColumn)
	assert.Nil(t, merged.EvenVBand, "flags no layer set stay unset")
}

func TestBorderUpdateWithReplacesValueKeepsRest(t *testing.T) {
	four := uint64(4)
	base := Border{Value: "single", Size: &four}
	merged := base.UpdateWith(Border{Value: "double"})

	assert.Equal(t, BorderType("double"), merged.Value)
	require.NotNil(t, merged.Size)
	assert.Equal(t, uint64(4), *merged.Size)
}

func TestParseFitText(t *testing.T) {
	node := mustNode(t, `<w:fitText `+testNS+` w:val="720" w:id="3"/>`)
	ft, err := parseFitText(node)
	require.NoError(t, err)
	require.NotNil(t, ft.Value.Twips)
	assert.Equal(t, uint64(720), *ft.Value.Twips)
	require.NotNil(t, ft.ID)
	assert.Equal(t, int64(3), *ft.ID)
}
