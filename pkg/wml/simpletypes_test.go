package wml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
		ok   bool
	}{
		{"true", true, true},
		{"1", true, true},
		{"false", false, true},
		{"0", false, true},
		{"on", false, false},
		{"", false, false},
		{"TRUE", false, false},
	}
	for _, tt := range tests {
		got, err := ParseBool(tt.in)
		if !tt.ok {
			assert.True(t, IsParseBool(err), "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseTwipsMeasure(t *testing.T) {
	m, err := ParseTwipsMeasure("1440")
	require.NoError(t, err)
	require.NotNil(t, m.Twips)
	assert.Equal(t, uint64(1440), *m.Twips)
	assert.Nil(t, m.Measure)

	m, err = ParseTwipsMeasure("2.5cm")
	require.NoError(t, err)
	require.NotNil(t, m.Measure)
	assert.Equal(t, 2.5, m.Measure.Value)
	assert.Equal(t, UnitCm, m.Measure.Unit)

	_, err = ParseTwipsMeasure("-20")
	assert.True(t, IsPattern(err), "unsigned grammar rejects negatives")

	_, err = ParseTwipsMeasure("2.5km")
	assert.True(t, IsPattern(err))
}

func TestParseSignedTwipsMeasure(t *testing.T) {
	m, err := ParseSignedTwipsMeasure("-240")
	require.NoError(t, err)
	require.NotNil(t, m.Twips)
	assert.Equal(t, int64(-240), *m.Twips)

	m, err = ParseSignedTwipsMeasure("-0.5in")
	require.NoError(t, err)
	require.NotNil(t, m.Measure)
	assert.Equal(t, -0.5, m.Measure.Value)
	assert.Equal(t, UnitIn, m.Measure.Unit)
}

func TestParseHpsMeasure(t *testing.T) {
	m, err := ParseHpsMeasure("24")
	require.NoError(t, err)
	require.NotNil(t, m.HalfPoints)
	assert.Equal(t, uint64(24), *m.HalfPoints)

	m, err = ParseHpsMeasure("12pt")
	require.NoError(t, err)
	require.NotNil(t, m.Measure)
	assert.Equal(t, 12.0, m.Measure.Value)
}

func TestParsePercentage(t *testing.T) {
	p, err := ParsePercentage("150%")
	require.NoError(t, err)
	assert.Equal(t, Percentage(150), p)

	p, err = ParsePercentage("-12.5%")
	require.NoError(t, err)
	assert.Equal(t, Percentage(-12.5), p)

	_, err = ParsePercentage("150")
	assert.True(t, IsPattern(err))
}

func TestParseDecimalNumberOrPercent(t *testing.T) {
	v, err := ParseDecimalNumberOrPercent("42")
	require.NoError(t, err)
	require.NotNil(t, v.Decimal)
	assert.Equal(t, int64(42), *v.Decimal)
	assert.Nil(t, v.Percentage)

	v, err = ParseDecimalNumberOrPercent("85%")
	require.NoError(t, err)
	require.NotNil(t, v.Percentage)
	assert.Equal(t, Percentage(85), *v.Percentage)
}

func TestParseTextScalePercent(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"100%", 100, true},
		{"0%", 0, true},
		{"600%", 600, true},
		{"0050%", 50, true},
		{"601%", 0, false},
		{"700%", 0, false},
		{"100", 0, false},
		{"-10%", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseTextScalePercent(tt.in)
		if !tt.ok {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("1A2B3C")
	require.NoError(t, err)
	assert.False(t, c.Auto)
	assert.Equal(t, HexColorRGB{0x1A, 0x2B, 0x3C}, c.RGB)

	c, err = ParseHexColor("auto")
	require.NoError(t, err)
	assert.True(t, c.Auto)

	_, err = ParseHexColor("1A2B")
	assert.Error(t, err)

	_, err = ParseHexColor("GGGGGG")
	assert.Error(t, err)
}

func TestParseHexNumbers(t *testing.T) {
	b, err := ParseUcharHex("FF")
	require.NoError(t, err)
	assert.Equal(t, uint8(0xFF), b)

	s, err := ParseShortHex("F1E2")
	require.NoError(t, err)
	assert.Equal(t, uint16(0xF1E2), s)

	l, err := ParseLongHex("00AB12CD")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00AB12CD), l)

	_, err = ParseLongHex("AB12CD")
	assert.Error(t, err, "long hex requires eight digits")
}

func TestParseOnOffElement(t *testing.T) {
	node := mustNode(t, `<w:b `+testNS+`/>`)
	v, err := parseOnOffElement(node)
	require.NoError(t, err)
	assert.True(t, v, "missing w:val means true")

	node = mustNode(t, `<w:b `+testNS+` w:val="0"/>`)
	v, err = parseOnOffElement(node)
	require.NoError(t, err)
	assert.False(t, v)

	node = mustNode(t, `<w:b `+testNS+` w:val="maybe"/>`)
	_, err = parseOnOffElement(node)
	assert.True(t, IsParseBool(err))
}
