package wml

import (
	"regexp"
	"strconv"

	"github.com/benjaminschreck/go-wordml/pkg/wml/xmlnode"
)

// ParseBool parses the XML schema boolean grammar: true, false, 1, 0.
func ParseBool(s string) (bool, error) {
	switch s {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, &ParseBoolError{Value: s}
	}
}

// parseOnOffElement parses a toggle element such as <w:b/> or
// <w:b w:val="false"/>. A missing w:val defaults to true.
func parseOnOffElement(node *xmlnode.Node) (bool, error) {
	val, ok := node.Attribute("w:val")
	if !ok {
		return true, nil
	}
	return ParseBool(val)
}

// ParseUcharHex parses a two-digit unsigned hex number.
func ParseUcharHex(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, &PatternError{Value: s, Pattern: "[0-9a-fA-F]{2}"}
	}
	return uint8(v), nil
}

// ParseShortHex parses a four-digit unsigned hex number.
func ParseShortHex(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, &PatternError{Value: s, Pattern: "[0-9a-fA-F]{4}"}
	}
	return uint16(v), nil
}

// ParseLongHex parses an eight-digit unsigned hex number (revision ids).
func ParseLongHex(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, &PatternError{Value: s, Pattern: "[0-9a-fA-F]{8}"}
	}
	return uint32(v), nil
}

// MeasureUnit is the unit suffix of a universal measure.
type MeasureUnit string

// Universal measure units.
const (
	UnitMm MeasureUnit = "mm"
	UnitCm MeasureUnit = "cm"
	UnitIn MeasureUnit = "in"
	UnitPt MeasureUnit = "pt"
	UnitPc MeasureUnit = "pc"
	UnitPi MeasureUnit = "pi"
)

var (
	signedMeasureRe    = regexp.MustCompile(`^(-?[0-9]+(?:\.[0-9]+)?)(mm|cm|in|pt|pc|pi)$`)
	unsignedMeasureRe  = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)(mm|cm|in|pt|pc|pi)$`)
	percentageRe       = regexp.MustCompile(`^(-?[0-9]+(?:\.[0-9]+)?)%$`)
	textScalePercentRe = regexp.MustCompile(`^0*(600|[0-5]?[0-9]?[0-9])%$`)
)

// UniversalMeasure is a length written as a number with a unit suffix.
type UniversalMeasure struct {
	Value float64
	Unit  MeasureUnit
}

// ParseUniversalMeasure parses a signed universal measure ("-12.5pt").
func ParseUniversalMeasure(s string) (UniversalMeasure, error) {
	return parseMeasure(s, signedMeasureRe)
}

// ParseUnsignedUniversalMeasure parses an unsigned universal measure.
func ParseUnsignedUniversalMeasure(s string) (UniversalMeasure, error) {
	return parseMeasure(s, unsignedMeasureRe)
}

func parseMeasure(s string, re *regexp.Regexp) (UniversalMeasure, error) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return UniversalMeasure{}, &PatternError{Value: s, Pattern: re.String()}
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return UniversalMeasure{}, &PatternError{Value: s, Pattern: re.String()}
	}
	return UniversalMeasure{Value: value, Unit: MeasureUnit(m[2])}, nil
}

// TwipsMeasure is an unsigned length in twips, or a universal measure.
type TwipsMeasure struct {
	Twips   *uint64
	Measure *UniversalMeasure
}

// ParseTwipsMeasure tries a plain unsigned decimal first, then the
// universal measure grammar.
func ParseTwipsMeasure(s string) (TwipsMeasure, error) {
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return TwipsMeasure{Twips: &v}, nil
	}
	m, err := ParseUnsignedUniversalMeasure(s)
	if err != nil {
		return TwipsMeasure{}, err
	}
	return TwipsMeasure{Measure: &m}, nil
}

// SignedTwipsMeasure is a signed length in twips, or a universal measure.
type SignedTwipsMeasure struct {
	Twips   *int64
	Measure *UniversalMeasure
}

// ParseSignedTwipsMeasure tries a signed decimal first, then the signed
// universal measure grammar.
func ParseSignedTwipsMeasure(s string) (SignedTwipsMeasure, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return SignedTwipsMeasure{Twips: &v}, nil
	}
	m, err := ParseUniversalMeasure(s)
	if err != nil {
		return SignedTwipsMeasure{}, err
	}
	return SignedTwipsMeasure{Measure: &m}, nil
}

// HpsMeasure is an unsigned size in half-points, or a universal measure.
type HpsMeasure struct {
	HalfPoints *uint64
	Measure    *UniversalMeasure
}

// ParseHpsMeasure tries a plain unsigned decimal first, then the
// universal measure grammar.
func ParseHpsMeasure(s string) (HpsMeasure, error) {
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return HpsMeasure{HalfPoints: &v}, nil
	}
	m, err := ParseUnsignedUniversalMeasure(s)
	if err != nil {
		return HpsMeasure{}, err
	}
	return HpsMeasure{Measure: &m}, nil
}

// SignedHpsMeasure is a signed size in half-points, or a universal
// measure.
type SignedHpsMeasure struct {
	HalfPoints *int64
	Measure    *UniversalMeasure
}

// ParseSignedHpsMeasure tries a signed decimal first, then the signed
// universal measure grammar.
func ParseSignedHpsMeasure(s string) (SignedHpsMeasure, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return SignedHpsMeasure{HalfPoints: &v}, nil
	}
	m, err := ParseUniversalMeasure(s)
	if err != nil {
		return SignedHpsMeasure{}, err
	}
	return SignedHpsMeasure{Measure: &m}, nil
}

// Percentage is a percentage value ("50%" parses to 50.0).
type Percentage float64

// ParsePercentage parses the "N%" grammar, signed and fractional.
func ParsePercentage(s string) (Percentage, error) {
	m := percentageRe.FindStringSubmatch(s)
	if m == nil {
		return 0, &PatternError{Value: s, Pattern: percentageRe.String()}
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, &PatternError{Value: s, Pattern: percentageRe.String()}
	}
	return Percentage(value), nil
}

// DecimalNumberOrPercent is a signed decimal, or a percentage.
type DecimalNumberOrPercent struct {
	Decimal    *int64
	Percentage *Percentage
}

// ParseDecimalNumberOrPercent tries a signed decimal first, then the
// percentage grammar.
func ParseDecimalNumberOrPercent(s string) (DecimalNumberOrPercent, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return DecimalNumberOrPercent{Decimal: &v}, nil
	}
	p, err := ParsePercentage(s)
	if err != nil {
		return DecimalNumberOrPercent{}, err
	}
	return DecimalNumberOrPercent{Percentage: &p}, nil
}

// MeasurementOrPercent is a decimal-or-percent, or a universal measure.
type MeasurementOrPercent struct {
	DecimalOrPercent *DecimalNumberOrPercent
	Measure          *UniversalMeasure
}

// ParseMeasurementOrPercent tries the decimal-or-percent grammar first,
// then the signed universal measure grammar.
func ParseMeasurementOrPercent(s string) (MeasurementOrPercent, error) {
	if dp, err := ParseDecimalNumberOrPercent(s); err == nil {
		return MeasurementOrPercent{DecimalOrPercent: &dp}, nil
	}
	m, err := ParseUniversalMeasure(s)
	if err != nil {
		return MeasurementOrPercent{}, err
	}
	return MeasurementOrPercent{Measure: &m}, nil
}

// HexColorRGB is a color parsed from six hex digits.
type HexColorRGB [3]uint8

// ParseHexColorRGB parses exactly six hex digits into r, g, b bytes.
func ParseHexColorRGB(s string) (HexColorRGB, error) {
	if len(s) != 6 {
		return HexColorRGB{}, &ParseHexColorError{Value: s}
	}
	var rgb HexColorRGB
	for i := 0; i < 3; i++ {
		b, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return HexColorRGB{}, &ParseHexColorError{Value: s}
		}
		rgb[i] = uint8(b)
	}
	return rgb, nil
}

// HexColor is either the literal "auto" or an RGB color.
type HexColor struct {
	Auto bool
	RGB  HexColorRGB
}

// ParseHexColor parses "auto" or six hex digits.
func ParseHexColor(s string) (HexColor, error) {
	if s == "auto" {
		return HexColor{Auto: true}, nil
	}
	rgb, err := ParseHexColorRGB(s)
	if err != nil {
		return HexColor{}, err
	}
	return HexColor{RGB: rgb}, nil
}

// ParseTextScalePercent parses the restricted text-scale grammar,
// 0% through 600%.
func ParseTextScalePercent(s string) (float64, error) {
	m := textScalePercentRe.FindStringSubmatch(s)
	if m == nil {
		return 0, &PatternError{Value: s, Pattern: textScalePercentRe.String()}
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, &PatternError{Value: s, Pattern: textScalePercentRe.String()}
	}
	return value, nil
}
