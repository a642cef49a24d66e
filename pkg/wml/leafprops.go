package wml

import (
	"strconv"

	"github.com/benjaminschreck/go-wordml/pkg/wml/xmlnode"
)

// Color represents a text color with optional theme binding.
type Color struct {
	Value      HexColor
	ThemeColor *ThemeColor
	ThemeTint  *uint8
	ThemeShade *uint8
}

func parseColor(node *xmlnode.Node) (Color, error) {
	val, err := valAttr(node)
	if err != nil {
		return Color{}, err
	}
	value, err := ParseHexColor(val)
	if err != nil {
		return Color{}, err
	}
	c := Color{Value: value}
	if v, ok := node.Attribute("w:themeColor"); ok {
		tc, err := ParseThemeColor(v)
		if err != nil {
			return Color{}, err
		}
		c.ThemeColor = &tc
	}
	if c.ThemeTint, err = optUcharHexAttr(node, "w:themeTint"); err != nil {
		return Color{}, err
	}
	if c.ThemeShade, err = optUcharHexAttr(node, "w:themeShade"); err != nil {
		return Color{}, err
	}
	return c, nil
}

// UpdateWith right-biases the optional fields; the required value is
// replaced wholesale.
func (c Color) UpdateWith(other Color) Color {
	return Color{
		Value:      other.Value,
		ThemeColor: pickOpt(c.ThemeColor, other.ThemeColor),
		ThemeTint:  pickOpt(c.ThemeTint, other.ThemeTint),
		ThemeShade: pickOpt(c.ThemeShade, other.ThemeShade),
	}
}

// Border represents one border edge: line style, color, width, and
// spacing.
type Border struct {
	Value      BorderType
	Color      *HexColor
	ThemeColor *ThemeColor
	ThemeTint  *uint8
	ThemeShade *uint8
	// Size is the line width in eighths of a point.
	Size *uint64
	// Space is the distance from text in points.
	Space  *uint64
	Shadow *bool
	Frame  *bool
}

func parseBorder(node *xmlnode.Node) (Border, error) {
	val, err := valAttr(node)
	if err != nil {
		return Border{}, err
	}
	value, err := ParseBorderType(val)
	if err != nil {
		return Border{}, err
	}
	b := Border{Value: value}
	if v, ok := node.Attribute("w:color"); ok {
		color, err := ParseHexColor(v)
		if err != nil {
			return Border{}, err
		}
		b.Color = &color
	}
	if v, ok := node.Attribute("w:themeColor"); ok {
		tc, err := ParseThemeColor(v)
		if err != nil {
			return Border{}, err
		}
		b.ThemeColor = &tc
	}
	if b.ThemeTint, err = optUcharHexAttr(node, "w:themeTint"); err != nil {
		return Border{}, err
	}
	if b.ThemeShade, err = optUcharHexAttr(node, "w:themeShade"); err != nil {
		return Border{}, err
	}
	if b.Size, err = optUnsignedAttr(node, "w:sz"); err != nil {
		return Border{}, err
	}
	if b.Space, err = optUnsignedAttr(node, "w:space"); err != nil {
		return Border{}, err
	}
	if b.Shadow, err = optBoolAttr(node, "w:shadow"); err != nil {
		return Border{}, err
	}
	if b.Frame, err = optBoolAttr(node, "w:frame"); err != nil {
		return Border{}, err
	}
	return b, nil
}

// UpdateWith right-biases the optional fields; the required line style
// is replaced wholesale.
func (b Border) UpdateWith(other Border) Border {
	return Border{
		Value:      other.Value,
		Color:      pickOpt(b.Color, other.Color),
		ThemeColor: pickOpt(b.ThemeColor, other.ThemeColor),
		ThemeTint:  pickOpt(b.ThemeTint, other.ThemeTint),
		ThemeShade: pickOpt(b.ThemeShade, other.ThemeShade),
		Size:       pickOpt(b.Size, other.Size),
		Space:      pickOpt(b.Space, other.Space),
		Shadow:     pickOpt(b.Shadow, other.Shadow),
		Frame:      pickOpt(b.Frame, other.Frame),
	}
}

// Shd represents a shading pattern over a foreground and fill color.
type Shd struct {
	Value          ShdType
	Color          *HexColor
	ThemeColor     *ThemeColor
	ThemeTint      *uint8
	ThemeShade     *uint8
	Fill           *HexColor
	ThemeFill      *ThemeColor
	ThemeFillTint  *uint8
	ThemeFillShade *uint8
}

func parseShd(node *xmlnode.Node) (Shd, error) {
	val, err := valAttr(node)
	if err != nil {
		return Shd{}, err
	}
	value, err := ParseShdType(val)
	if err != nil {
		return Shd{}, err
	}
	s := Shd{Value: value}
	if v, ok := node.Attribute("w:color"); ok {
		color, err := ParseHexColor(v)
		if err != nil {
			return Shd{}, err
		}
		s.Color = &color
	}
	if v, ok := node.Attribute("w:themeColor"); ok {
		tc, err := ParseThemeColor(v)
		if err != nil {
			return Shd{}, err
		}
		s.ThemeColor = &tc
	}
	if s.ThemeTint, err = optUcharHexAttr(node, "w:themeTint"); err != nil {
		return Shd{}, err
	}
	if s.ThemeShade, err = optUcharHexAttr(node, "w:themeShade"); err != nil {
		return Shd{}, err
	}
	if v, ok := node.Attribute("w:fill"); ok {
		fill, err := ParseHexColor(v)
		if err != nil {
			return Shd{}, err
		}
		s.Fill = &fill
	}
	if v, ok := node.Attribute("w:themeFill"); ok {
		tf, err := ParseThemeColor(v)
		if err != nil {
			return Shd{}, err
		}
		s.ThemeFill = &tf
	}
	if s.ThemeFillTint, err = optUcharHexAttr(node, "w:themeFillTint"); err != nil {
		return Shd{}, err
	}
	if s.ThemeFillShade, err = optUcharHexAttr(node, "w:themeFillShade"); err != nil {
		return Shd{}, err
	}
	return s, nil
}

// UpdateWith right-biases the optional fields; the required pattern is
// replaced wholesale.
func (s Shd) UpdateWith(other Shd) Shd {
	return Shd{
		Value:          other.Value,
		Color:          pickOpt(s.Color, other.Color),
		ThemeColor:     pickOpt(s.ThemeColor, other.ThemeColor),
		ThemeTint:      pickOpt(s.ThemeTint, other.ThemeTint),
		ThemeShade:     pickOpt(s.ThemeShade, other.ThemeShade),
		Fill:           pickOpt(s.Fill, other.Fill),
		ThemeFill:      pickOpt(s.ThemeFill, other.ThemeFill),
		ThemeFillTint:  pickOpt(s.ThemeFillTint, other.ThemeFillTint),
		ThemeFillShade: pickOpt(s.ThemeFillShade, other.ThemeFillShade),
	}
}

// Fonts represents the font families of a run, one per script class.
type Fonts struct {
	Hint               *Hint
	ASCII              *string
	HighAnsi           *string
	EastAsia           *string
	ComplexScript      *string
	ASCIITheme         *ThemeFontIndex
	HighAnsiTheme      *ThemeFontIndex
	EastAsiaTheme      *ThemeFontIndex
	ComplexScriptTheme *ThemeFontIndex
}

func parseFonts(node *xmlnode.Node) (Fonts, error) {
	f := Fonts{
		ASCII:         optStringAttr(node, "w:ascii"),
		HighAnsi:      optStringAttr(node, "w:hAnsi"),
		EastAsia:      optStringAttr(node, "w:eastAsia"),
		ComplexScript: optStringAttr(node, "w:cs"),
	}
	if v, ok := node.Attribute("w:hint"); ok {
		hint, err := ParseHint(v)
		if err != nil {
			return Fonts{}, err
		}
		f.Hint = &hint
	}
	themes := []struct {
		key  string
		dest **ThemeFontIndex
	}{
		{"w:asciiTheme", &f.ASCIITheme},
		{"w:hAnsiTheme", &f.HighAnsiTheme},
		{"w:eastAsiaTheme", &f.EastAsiaTheme},
		{"w:cstheme", &f.ComplexScriptTheme},
	}
	for _, t := range themes {
		if v, ok := node.Attribute(t.key); ok {
			theme, err := ParseThemeFontIndex(v)
			if err != nil {
				return Fonts{}, err
			}
			*t.dest = &theme
		}
	}
	return f, nil
}

// UpdateWith right-biases every field of the font set.
func (f Fonts) UpdateWith(other Fonts) Fonts {
	return Fonts{
		Hint:               pickOpt(f.Hint, other.Hint),
		ASCII:              pickOpt(f.ASCII, other.ASCII),
		HighAnsi:           pickOpt(f.HighAnsi, other.HighAnsi),
		EastAsia:           pickOpt(f.EastAsia, other.EastAsia),
		ComplexScript:      pickOpt(f.ComplexScript, other.ComplexScript),
		ASCIITheme:         pickOpt(f.ASCIITheme, other.ASCIITheme),
		HighAnsiTheme:      pickOpt(f.HighAnsiTheme, other.HighAnsiTheme),
		EastAsiaTheme:      pickOpt(f.EastAsiaTheme, other.EastAsiaTheme),
		ComplexScriptTheme: pickOpt(f.ComplexScriptTheme, other.ComplexScriptTheme),
	}
}

// Underline represents underline formatting: pattern and color.
type Underline struct {
	Value      *UnderlineType
	Color      *HexColor
	ThemeColor *ThemeColor
	ThemeTint  *uint8
	ThemeShade *uint8
}

func parseUnderline(node *xmlnode.Node) (Underline, error) {
	var u Underline
	var err error
	if v, ok := node.Attribute("w:val"); ok {
		ut, err := ParseUnderlineType(v)
		if err != nil {
			return Underline{}, err
		}
		u.Value = &ut
	}
	if v, ok := node.Attribute("w:color"); ok {
		color, err := ParseHexColor(v)
		if err != nil {
			return Underline{}, err
		}
		u.Color = &color
	}
	if v, ok := node.Attribute("w:themeColor"); ok {
		tc, err := ParseThemeColor(v)
		if err != nil {
			return Underline{}, err
		}
		u.ThemeColor = &tc
	}
	if u.ThemeTint, err = optUcharHexAttr(node, "w:themeTint"); err != nil {
		return Underline{}, err
	}
	if u.ThemeShade, err = optUcharHexAttr(node, "w:themeShade"); err != nil {
		return Underline{}, err
	}
	return u, nil
}

// UpdateWith right-biases every field of the underline.
func (u Underline) UpdateWith(other Underline) Underline {
	return Underline{
		Value:      pickOpt(u.Value, other.Value),
		Color:      pickOpt(u.Color, other.Color),
		ThemeColor: pickOpt(u.ThemeColor, other.ThemeColor),
		ThemeTint:  pickOpt(u.ThemeTint, other.ThemeTint),
		ThemeShade: pickOpt(u.ThemeShade, other.ThemeShade),
	}
}

// FitText compresses a run into a fixed width.
type FitText struct {
	Value TwipsMeasure
	ID    *int64
}

func parseFitText(node *xmlnode.Node) (FitText, error) {
	val, err := valAttr(node)
	if err != nil {
		return FitText{}, err
	}
	value, err := ParseTwipsMeasure(val)
	if err != nil {
		return FitText{}, err
	}
	id, err := optDecimalAttr(node, "w:id")
	if err != nil {
		return FitText{}, err
	}
	return FitText{Value: value, ID: id}, nil
}

// EastAsianLayout represents two-lines-in-one and horizontal-in-vertical
// layout of a run.
type EastAsianLayout struct {
	ID               *int64
	Combine          *bool
	CombineBrackets  *CombineBrackets
	Vertical         *bool
	VerticalCompress *bool
}

func parseEastAsianLayout(node *xmlnode.Node) (EastAsianLayout, error) {
	var l EastAsianLayout
	var err error
	if l.ID, err = optDecimalAttr(node, "w:id"); err != nil {
		return EastAsianLayout{}, err
	}
	if l.Combine, err = optBoolAttr(node, "w:combine"); err != nil {
		return EastAsianLayout{}, err
	}
	if v, ok := node.Attribute("w:combineBrackets"); ok {
		cb, err := ParseCombineBrackets(v)
		if err != nil {
			return EastAsianLayout{}, err
		}
		l.CombineBrackets = &cb
	}
	if l.Vertical, err = optBoolAttr(node, "w:vert"); err != nil {
		return EastAsianLayout{}, err
	}
	if l.VerticalCompress, err = optBoolAttr(node, "w:vertCompress"); err != nil {
		return EastAsianLayout{}, err
	}
	return l, nil
}

// UpdateWith right-biases every field of the layout.
func (l EastAsianLayout) UpdateWith(other EastAsianLayout) EastAsianLayout {
	return EastAsianLayout{
		ID:               pickOpt(l.ID, other.ID),
		Combine:          pickOpt(l.Combine, other.Combine),
		CombineBrackets:  pickOpt(l.CombineBrackets, other.CombineBrackets),
		Vertical:         pickOpt(l.Vertical, other.Vertical),
		VerticalCompress: pickOpt(l.VerticalCompress, other.VerticalCompress),
	}
}

// Cnf represents conditional table style formatting flags.
type Cnf struct {
	Value               *string
	FirstRow            *bool
	LastRow             *bool
	FirstColumn         *bool
	LastColumn          *bool
	OddVBand            *bool
	EvenVBand           *bool
	OddHBand            *bool
	EvenHBand           *bool
	FirstRowFirstColumn *bool
	FirstRowLastColumn  *bool
	LastRowFirstColumn  *bool
	LastRowLastColumn   *bool
}

func parseCnf(node *xmlnode.Node) (Cnf, error) {
	c := Cnf{Value: optStringAttr(node, "w:val")}
	flags := []struct {
		key  string
		dest **bool
	}{
		{"w:firstRow", &c.FirstRow},
		{"w:lastRow", &c.LastRow},
		{"w:firstColumn", &c.FirstColumn},
		{"w:lastColumn", &c.LastColumn},
		{"w:oddVBand", &c.OddVBand},
		{"w:evenVBand", &c.EvenVBand},
		{"w:oddHBand", &c.OddHBand},
		{"w:evenHBand", &c.EvenHBand},
		{"w:firstRowFirstColumn", &c.FirstRowFirstColumn},
		{"w:firstRowLastColumn", &c.FirstRowLastColumn},
		{"w:lastRowFirstColumn", &c.LastRowFirstColumn},
		{"w:lastRowLastColumn", &c.LastRowLastColumn},
	}
	for _, f := range flags {
		b, err := optBoolAttr(node, f.key)
		if err != nil {
			return Cnf{}, err
		}
		*f.dest = b
	}
	return c, nil
}

// UpdateWith right-biases every flag field-wise.
func (c Cnf) UpdateWith(other Cnf) Cnf {
	return Cnf{
		Value:               pickOpt(c.Value, other.Value),
		FirstRow:            pickOpt(c.FirstRow, other.FirstRow),
		LastRow:             pickOpt(c.LastRow, other.LastRow),
		FirstColumn:         pickOpt(c.FirstColumn, other.FirstColumn),
		LastColumn:          pickOpt(c.LastColumn, other.LastColumn),
		OddVBand:            pickOpt(c.OddVBand, other.OddVBand),
		EvenVBand:           pickOpt(c.EvenVBand, other.EvenVBand),
		OddHBand:            pickOpt(c.OddHBand, other.OddHBand),
		EvenHBand:           pickOpt(c.EvenHBand, other.EvenHBand),
		FirstRowFirstColumn: pickOpt(c.FirstRowFirstColumn, other.FirstRowFirstColumn),
		FirstRowLastColumn:  pickOpt(c.FirstRowLastColumn, other.FirstRowLastColumn),
		LastRowFirstColumn:  pickOpt(c.LastRowFirstColumn, other.LastRowFirstColumn),
		LastRowLastColumn:   pickOpt(c.LastRowLastColumn, other.LastRowLastColumn),
	}
}

// parseDecimalVal parses a leaf element whose w:val is a signed decimal.
func parseDecimalVal(node *xmlnode.Node) (int64, error) {
	val, err := valAttr(node)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, &PatternError{Value: val, Pattern: "-?[0-9]+"}
	}
	return n, nil
}

// parseUnsignedVal parses a leaf element whose w:val is an unsigned
// decimal.
func parseUnsignedVal(node *xmlnode.Node) (uint64, error) {
	val, err := valAttr(node)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, &PatternError{Value: val, Pattern: "[0-9]+"}
	}
	return n, nil
}

// parseStringVal parses a leaf element whose w:val is an opaque string.
func parseStringVal(node *xmlnode.Node) (string, error) {
	return valAttr(node)
}
