package wml

// The WML grammar leans on closed string enumerations: a leaf element
// carries its entire value in w:val, and any string outside the variant
// set is a parse error. Each enumeration here is a validated string
// type with a membership set and a Parse function.

func enumMembers[T ~string](values ...T) map[T]struct{} {
	m := make(map[T]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

func parseEnumValue[T ~string](enum, s string, members map[T]struct{}) (T, error) {
	v := T(s)
	if _, ok := members[v]; ok {
		return v, nil
	}
	return "", &ParseEnumError{Enum: enum, Value: s}
}

// BorderType enumerates border line styles, including the art borders.
type BorderType string

// Common border line styles. The art borders are members of the set but
// carry no named constants.
const (
	BorderTypeNil    BorderType = "nil"
	BorderTypeNone   BorderType = "none"
	BorderTypeSingle BorderType = "single"
	BorderTypeThick  BorderType = "thick"
	BorderTypeDouble BorderType = "double"
	BorderTypeDotted BorderType = "dotted"
	BorderTypeDashed BorderType = "dashed"
	BorderTypeWave   BorderType = "wave"
)

var borderTypeMembers = enumMembers[BorderType](
	"nil", "none", "single", "thick", "double", "dotted", "dashed",
	"dotDash", "dotDotDash", "triple", "thinThickSmallGap",
	"thickThinSmallGap", "thinThickThinSmallGap", "thinThickMediumGap",
	"thickThinMediumGap", "thinThickThinMediumGap", "thinThickLargeGap",
	"thickThinLargeGap", "thinThickThinLargeGap", "wave", "doubleWave",
	"dashSmallGap", "dashDotStroked", "threeDEmboss", "threeDEngrave",
	"outset", "inset",
	// art borders
	"apples", "archedScallops", "babyPacifier", "babyRattle",
	"balloons3Colors", "balloonsHotAir", "basicBlackDashes",
	"basicBlackDots", "basicBlackSquares", "basicThinLines",
	"basicWhiteDashes", "basicWhiteDots", "basicWhiteSquares",
	"basicWideInline", "basicWideMidline", "basicWideOutline", "bats",
	"birds", "birdsFlight", "cabins", "cakeSlice", "candyCorn",
	"celticKnotwork", "certificateBanner", "chainLink",
	"champagneBottle", "checkedBarBlack", "checkedBarColor", "checkered",
	"christmasTree", "circlesLines", "circlesRectangles",
	"classicalWave", "clocks", "compass", "confetti", "confettiGrays",
	"confettiOutline", "confettiStreamers", "confettiWhite",
	"cornerTriangles", "couponCutoutDashes", "couponCutoutDots",
	"crazyMaze", "creaturesButterfly", "creaturesFish",
	"creaturesInsects", "creaturesLadyBug", "crossStitch", "cup",
	"decoArch", "decoArchColor", "decoBlocks", "diamondsGray",
	"doubleD", "doubleDiamonds", "earth1", "earth2", "earth3",
	"eclipsingSquares1", "eclipsingSquares2", "eggsBlack", "fans",
	"film", "firecrackers", "flowersBlockPrint", "flowersDaisies",
	"flowersModern1", "flowersModern2", "flowersPansy",
	"flowersRedRose", "flowersRoses", "flowersTeacup", "flowersTiny",
	"gems", "gingerbreadMan", "gradient", "handmade1", "handmade2",
	"heartBalloon", "heartGray", "hearts", "heebieJeebies", "holly",
	"houseFunky", "hypnotic", "iceCreamCones", "lightBulb",
	"lightning1", "lightning2", "mapPins", "mapleLeaf", "mapleMuffins",
	"marquee", "marqueeToothed", "moons", "mosaic", "musicNotes",
	"northwest", "ovals", "packages", "palmsBlack", "palmsColor",
	"paperClips", "papyrus", "partyFavor", "partyGlass", "pencils",
	"people", "peopleWaving", "peopleHats", "poinsettias",
	"postageStamp", "pumpkin1", "pushPinNote2", "pushPinNote1",
	"pyramids", "pyramidsAbove", "quadrants", "rings", "safari",
	"sawtooth", "sawtoothGray", "scaredCat", "seattle",
	"shadowedSquares", "sharksTeeth", "shorebirdTracks", "skyrocket",
	"snowflakeFancy", "snowflakes", "sombrero", "southwest", "stars",
	"starsTop", "stars3d", "starsBlack", "starsShadowed", "sun",
	"swirligig", "tornPaper", "tornPaperBlack", "trees",
	"triangleParty", "triangles", "triangle1", "triangle2",
	"triangleCircle1", "triangleCircle2", "shapes1", "shapes2",
	"twistedLines1", "twistedLines2", "vine", "waveline",
	"weavingAngles", "weavingBraid", "weavingRibbon", "weavingStrips",
	"whiteFlowers", "woodwork", "xIllusions", "zanyTriangles",
	"zigZag", "zigZagStitch", "custom",
)

// ParseBorderType parses a border line style.
func ParseBorderType(s string) (BorderType, error) {
	return parseEnumValue("BorderType", s, borderTypeMembers)
}

// NumberFormat enumerates numbering schemes for pages, footnotes, and
// captions.
type NumberFormat string

var numberFormatMembers = enumMembers[NumberFormat](
	"decimal", "upperRoman", "lowerRoman", "upperLetter", "lowerLetter",
	"ordinal", "cardinalText", "ordinalText", "hex", "chicago",
	"ideographDigital", "japaneseCounting", "aiueo", "iroha",
	"decimalFullWidth", "decimalHalfWidth", "japaneseLegal",
	"japaneseDigitalTenThousand", "decimalEnclosedCircle",
	"decimalFullWidth2", "aiueoFullWidth", "irohaFullWidth",
	"decimalZero", "bullet", "ganada", "chosung",
	"decimalEnclosedFullstop", "decimalEnclosedParen",
	"decimalEnclosedCircleChinese", "ideographEnclosedCircle",
	"ideographTraditional", "ideographZodiac",
	"ideographZodiacTraditional", "taiwaneseCounting",
	"ideographLegalTraditional", "taiwaneseCountingThousand",
	"taiwaneseDigital", "chineseCounting", "chineseLegalSimplified",
	"chineseCountingThousand", "koreanDigital", "koreanCounting",
	"koreanLegal", "koreanDigital2", "vietnameseCounting",
	"russianLower", "russianUpper", "none", "numberInDash", "hebrew1",
	"hebrew2", "arabicAlpha", "arabicAbjad", "hindiVowels",
	"hindiConsonants", "hindiNumbers", "hindiCounting", "thaiLetters",
	"thaiNumbers", "thaiCounting", "bahtText", "dollarText", "custom",
)

// ParseNumberFormat parses a numbering scheme.
func ParseNumberFormat(s string) (NumberFormat, error) {
	return parseEnumValue("NumberFormat", s, numberFormatMembers)
}

// ThemeColor enumerates theme color slots.
type ThemeColor string

// Theme color slots.
const (
	ThemeColorAccent1 ThemeColor = "accent1"
	ThemeColorDark1   ThemeColor = "dark1"
	ThemeColorLight1  ThemeColor = "light1"
)

var themeColorMembers = enumMembers[ThemeColor](
	"dark1", "light1", "dark2", "light2", "accent1", "accent2",
	"accent3", "accent4", "accent5", "accent6", "hyperlink",
	"followedHyperlink", "none", "background1", "text1", "background2",
	"text2",
)

// ParseThemeColor parses a theme color slot.
func ParseThemeColor(s string) (ThemeColor, error) {
	return parseEnumValue("ThemeColor", s, themeColorMembers)
}

// ThemeFontIndex enumerates theme font slots for rFonts theme attributes.
type ThemeFontIndex string

var themeFontIndexMembers = enumMembers[ThemeFontIndex](
	"majorEastAsia", "majorBidi", "majorAscii", "majorHAnsi",
	"minorEastAsia", "minorBidi", "minorAscii", "minorHAnsi",
)

// ParseThemeFontIndex parses a theme font slot.
func ParseThemeFontIndex(s string) (ThemeFontIndex, error) {
	return parseEnumValue("ThemeFontIndex", s, themeFontIndexMembers)
}

// HighlightColor enumerates the fixed highlighter palette.
type HighlightColor string

var highlightColorMembers = enumMembers[HighlightColor](
	"black", "blue", "cyan", "green", "magenta", "red", "yellow",
	"white", "darkBlue", "darkCyan", "darkGreen", "darkMagenta",
	"darkRed", "darkYellow", "darkGray", "lightGray", "none",
)

// ParseHighlightColor parses a highlighter color.
func ParseHighlightColor(s string) (HighlightColor, error) {
	return parseEnumValue("HighlightColor", s, highlightColorMembers)
}

// UnderlineType enumerates underline patterns.
type UnderlineType string

var underlineTypeMembers = enumMembers[UnderlineType](
	"single", "words", "double", "thick", "dotted", "dottedHeavy",
	"dash", "dashedHeavy", "dashLong", "dashLongHeavy", "dotDash",
	"dashDotHeavy", "dotDotDash", "dashDotDotHeavy", "wave",
	"wavyHeavy", "wavyDouble", "none",
)

// ParseUnderlineType parses an underline pattern.
func ParseUnderlineType(s string) (UnderlineType, error) {
	return parseEnumValue("UnderlineType", s, underlineTypeMembers)
}

// Jc enumerates horizontal alignment values.
type Jc string

// Common alignment values.
const (
	JcStart  Jc = "start"
	JcCenter Jc = "center"
	JcEnd    Jc = "end"
	JcBoth   Jc = "both"
)

var jcMembers = enumMembers[Jc](
	"start", "center", "end", "both", "mediumKashida", "distribute",
	"numTab", "highKashida", "lowKashida", "thaiDistribute", "left",
	"right",
)

// ParseJc parses a horizontal alignment value.
func ParseJc(s string) (Jc, error) {
	return parseEnumValue("Jc", s, jcMembers)
}

// TextDirection enumerates text flow directions.
type TextDirection string

var textDirectionMembers = enumMembers[TextDirection](
	"lrTb", "tbRl", "btLr", "lrTbV", "tbRlV", "tbLrV",
)

// ParseTextDirection parses a text flow direction.
func ParseTextDirection(s string) (TextDirection, error) {
	return parseEnumValue("TextDirection", s, textDirectionMembers)
}

// VerticalJc enumerates vertical alignment values.
type VerticalJc string

var verticalJcMembers = enumMembers[VerticalJc]("top", "center", "both", "bottom")

// ParseVerticalJc parses a vertical alignment value.
func ParseVerticalJc(s string) (VerticalJc, error) {
	return parseEnumValue("VerticalJc", s, verticalJcMembers)
}

// PageOrientation enumerates page orientations.
type PageOrientation string

// Page orientations.
const (
	PageOrientationPortrait  PageOrientation = "portrait"
	PageOrientationLandscape PageOrientation = "landscape"
)

var pageOrientationMembers = enumMembers[PageOrientation]("portrait", "landscape")

// ParsePageOrientation parses a page orientation.
func ParsePageOrientation(s string) (PageOrientation, error) {
	return parseEnumValue("PageOrientation", s, pageOrientationMembers)
}

// LineSpacingRule enumerates line spacing interpretations.
type LineSpacingRule string

var lineSpacingRuleMembers = enumMembers[LineSpacingRule]("auto", "exact", "atLeast")

// ParseLineSpacingRule parses a line spacing rule.
func ParseLineSpacingRule(s string) (LineSpacingRule, error) {
	return parseEnumValue("LineSpacingRule", s, lineSpacingRuleMembers)
}

// ShdType enumerates shading patterns.
type ShdType string

// Common shading patterns.
const (
	ShdTypeNil   ShdType = "nil"
	ShdTypeClear ShdType = "clear"
	ShdTypeSolid ShdType = "solid"
)

var shdTypeMembers = enumMembers[ShdType](
	"nil", "clear", "solid", "horzStripe", "vertStripe",
	"reverseDiagStripe", "diagStripe", "horzCross", "diagCross",
	"thinHorzStripe", "thinVertStripe", "thinReverseDiagStripe",
	"thinDiagStripe", "thinHorzCross", "thinDiagCross", "pct5",
	"pct10", "pct12", "pct15", "pct20", "pct25", "pct30", "pct35",
	"pct37", "pct40", "pct45", "pct50", "pct55", "pct60", "pct62",
	"pct65", "pct70", "pct75", "pct80", "pct85", "pct87", "pct90",
	"pct95",
)

// ParseShdType parses a shading pattern.
func ParseShdType(s string) (ShdType, error) {
	return parseEnumValue("ShdType", s, shdTypeMembers)
}

// Hint enumerates font hint values.
type Hint string

var hintMembers = enumMembers[Hint]("default", "eastAsia", "cs")

// ParseHint parses a font hint.
func ParseHint(s string) (Hint, error) {
	return parseEnumValue("Hint", s, hintMembers)
}

// ConformanceClass enumerates document conformance classes.
type ConformanceClass string

// Conformance classes.
const (
	ConformanceStrict       ConformanceClass = "strict"
	ConformanceTransitional ConformanceClass = "transitional"
)

var conformanceClassMembers = enumMembers[ConformanceClass]("strict", "transitional")

// ParseConformanceClass parses a conformance class.
func ParseConformanceClass(s string) (ConformanceClass, error) {
	return parseEnumValue("ConformanceClass", s, conformanceClassMembers)
}

// FtnEdnType enumerates footnote and endnote kinds.
type FtnEdnType string

var ftnEdnTypeMembers = enumMembers[FtnEdnType](
	"normal", "separator", "continuationSeparator", "continuationNotice",
)

// ParseFtnEdnType parses a footnote or endnote kind.
func ParseFtnEdnType(s string) (FtnEdnType, error) {
	return parseEnumValue("FtnEdnType", s, ftnEdnTypeMembers)
}

// BrType enumerates break kinds.
type BrType string

// Break kinds.
const (
	BrTypePage         BrType = "page"
	BrTypeColumn       BrType = "column"
	BrTypeTextWrapping BrType = "textWrapping"
)

var brTypeMembers = enumMembers[BrType]("page", "column", "textWrapping")

// ParseBrType parses a break kind.
func ParseBrType(s string) (BrType, error) {
	return parseEnumValue("BrType", s, brTypeMembers)
}

// BrClear enumerates restart locations for text-wrapping breaks.
type BrClear string

var brClearMembers = enumMembers[BrClear]("none", "left", "right", "all")

// ParseBrClear parses a break restart location.
func ParseBrClear(s string) (BrClear, error) {
	return parseEnumValue("BrClear", s, brClearMembers)
}

// TabJc enumerates tab stop kinds.
type TabJc string

var tabJcMembers = enumMembers[TabJc](
	"clear", "start", "center", "end", "decimal", "bar", "num",
	"left", "right",
)

// ParseTabJc parses a tab stop kind.
func ParseTabJc(s string) (TabJc, error) {
	return parseEnumValue("TabJc", s, tabJcMembers)
}

// TabTlc enumerates tab leader characters.
type TabTlc string

var tabTlcMembers = enumMembers[TabTlc](
	"none", "dot", "hyphen", "underscore", "heavy", "middleDot",
)

// ParseTabTlc parses a tab leader character.
func ParseTabTlc(s string) (TabTlc, error) {
	return parseEnumValue("TabTlc", s, tabTlcMembers)
}

// DropCap enumerates drop cap placements.
type DropCap string

var dropCapMembers = enumMembers[DropCap]("none", "drop", "margin")

// ParseDropCap parses a drop cap placement.
func ParseDropCap(s string) (DropCap, error) {
	return parseEnumValue("DropCap", s, dropCapMembers)
}

// HeightRule enumerates height interpretations.
type HeightRule string

var heightRuleMembers = enumMembers[HeightRule]("auto", "exact", "atLeast")

// ParseHeightRule parses a height rule.
func ParseHeightRule(s string) (HeightRule, error) {
	return parseEnumValue("HeightRule", s, heightRuleMembers)
}

// Anchor enumerates frame anchor references.
type Anchor string

var anchorMembers = enumMembers[Anchor]("text", "margin", "page")

// ParseAnchor parses a frame anchor reference.
func ParseAnchor(s string) (Anchor, error) {
	return parseEnumValue("Anchor", s, anchorMembers)
}

// XAlign enumerates horizontal frame alignments.
type XAlign string

var xAlignMembers = enumMembers[XAlign]("left", "center", "right", "inside", "outside")

// ParseXAlign parses a horizontal frame alignment.
func ParseXAlign(s string) (XAlign, error) {
	return parseEnumValue("XAlign", s, xAlignMembers)
}

// YAlign enumerates vertical frame alignments.
type YAlign string

var yAlignMembers = enumMembers[YAlign](
	"inline", "top", "center", "bottom", "inside", "outside",
)

// ParseYAlign parses a vertical frame alignment.
func ParseYAlign(s string) (YAlign, error) {
	return parseEnumValue("YAlign", s, yAlignMembers)
}

// Wrap enumerates frame text wrapping modes.
type Wrap string

var wrapMembers = enumMembers[Wrap](
	"auto", "notBeside", "around", "tight", "through", "none",
)

// ParseWrap parses a frame text wrapping mode.
func ParseWrap(s string) (Wrap, error) {
	return parseEnumValue("Wrap", s, wrapMembers)
}

// SectionMark enumerates section start kinds.
type SectionMark string

var sectionMarkMembers = enumMembers[SectionMark](
	"nextPage", "nextColumn", "continuous", "evenPage", "oddPage",
)

// ParseSectionMark parses a section start kind.
func ParseSectionMark(s string) (SectionMark, error) {
	return parseEnumValue("SectionMark", s, sectionMarkMembers)
}

// PageBorderDisplay enumerates which pages show page borders.
type PageBorderDisplay string

var pageBorderDisplayMembers = enumMembers[PageBorderDisplay](
	"allPages", "firstPage", "notFirstPage",
)

// ParsePageBorderDisplay parses a page border display mode.
func ParsePageBorderDisplay(s string) (PageBorderDisplay, error) {
	return parseEnumValue("PageBorderDisplay", s, pageBorderDisplayMembers)
}

// PageBorderOffset enumerates page border positioning bases.
type PageBorderOffset string

var pageBorderOffsetMembers = enumMembers[PageBorderOffset]("page", "text")

// ParsePageBorderOffset parses a page border positioning base.
func ParsePageBorderOffset(s string) (PageBorderOffset, error) {
	return parseEnumValue("PageBorderOffset", s, pageBorderOffsetMembers)
}

// PageBorderZOrder enumerates page border stacking order.
type PageBorderZOrder string

var pageBorderZOrderMembers = enumMembers[PageBorderZOrder]("front", "back")

// ParsePageBorderZOrder parses a page border stacking order.
func ParsePageBorderZOrder(s string) (PageBorderZOrder, error) {
	return parseEnumValue("PageBorderZOrder", s, pageBorderZOrderMembers)
}

// LineNumberRestart enumerates line numbering restart points.
type LineNumberRestart string

var lineNumberRestartMembers = enumMembers[LineNumberRestart](
	"newPage", "newSection", "continuous",
)

// ParseLineNumberRestart parses a line numbering restart point.
func ParseLineNumberRestart(s string) (LineNumberRestart, error) {
	return parseEnumValue("LineNumberRestart", s, lineNumberRestartMembers)
}

// ChapterSep enumerates chapter separators in page numbers.
type ChapterSep string

var chapterSepMembers = enumMembers[ChapterSep](
	"hyphen", "period", "colon", "emDash", "enDash",
)

// ParseChapterSep parses a chapter separator.
func ParseChapterSep(s string) (ChapterSep, error) {
	return parseEnumValue("ChapterSep", s, chapterSepMembers)
}

// DocGridType enumerates document grid kinds.
type DocGridType string

var docGridTypeMembers = enumMembers[DocGridType](
	"default", "lines", "linesAndChars", "snapToChars",
)

// ParseDocGridType parses a document grid kind.
func ParseDocGridType(s string) (DocGridType, error) {
	return parseEnumValue("DocGridType", s, docGridTypeMembers)
}

// FtnPos enumerates footnote placements.
type FtnPos string

var ftnPosMembers = enumMembers[FtnPos](
	"pageBottom", "beneathText", "sectEnd", "docEnd",
)

// ParseFtnPos parses a footnote placement.
func ParseFtnPos(s string) (FtnPos, error) {
	return parseEnumValue("FtnPos", s, ftnPosMembers)
}

// EdnPos enumerates endnote placements.
type EdnPos string

var ednPosMembers = enumMembers[EdnPos]("sectEnd", "docEnd")

// ParseEdnPos parses an endnote placement.
func ParseEdnPos(s string) (EdnPos, error) {
	return parseEnumValue("EdnPos", s, ednPosMembers)
}

// RestartNumber enumerates numbering restart points.
type RestartNumber string

var restartNumberMembers = enumMembers[RestartNumber](
	"continuous", "eachSect", "eachPage",
)

// ParseRestartNumber parses a numbering restart point.
func ParseRestartNumber(s string) (RestartNumber, error) {
	return parseEnumValue("RestartNumber", s, restartNumberMembers)
}

// HdrFtr enumerates header and footer kinds.
type HdrFtr string

// Header and footer kinds.
const (
	HdrFtrEven    HdrFtr = "even"
	HdrFtrDefault HdrFtr = "default"
	HdrFtrFirst   HdrFtr = "first"
)

var hdrFtrMembers = enumMembers[HdrFtr]("even", "default", "first")

// ParseHdrFtr parses a header or footer kind.
func ParseHdrFtr(s string) (HdrFtr, error) {
	return parseEnumValue("HdrFtr", s, hdrFtrMembers)
}

// VerticalAlignRun enumerates run vertical positioning.
type VerticalAlignRun string

var verticalAlignRunMembers = enumMembers[VerticalAlignRun](
	"baseline", "superscript", "subscript",
)

// ParseVerticalAlignRun parses a run vertical positioning.
func ParseVerticalAlignRun(s string) (VerticalAlignRun, error) {
	return parseEnumValue("VerticalAlignRun", s, verticalAlignRunMembers)
}

// TextEffect enumerates animated text effects.
type TextEffect string

var textEffectMembers = enumMembers[TextEffect](
	"blinkBackground", "lights", "antsBlack", "antsRed", "shimmer",
	"sparkle", "none",
)

// ParseTextEffect parses an animated text effect.
func ParseTextEffect(s string) (TextEffect, error) {
	return parseEnumValue("TextEffect", s, textEffectMembers)
}

// Em enumerates emphasis mark kinds.
type Em string

var emMembers = enumMembers[Em]("none", "dot", "comma", "circle", "underDot")

// ParseEm parses an emphasis mark kind.
func ParseEm(s string) (Em, error) {
	return parseEnumValue("Em", s, emMembers)
}

// CombineBrackets enumerates bracket kinds for combined east asian text.
type CombineBrackets string

var combineBracketsMembers = enumMembers[CombineBrackets](
	"none", "round", "square", "angle", "curly",
)

// ParseCombineBrackets parses a bracket kind.
func ParseCombineBrackets(s string) (CombineBrackets, error) {
	return parseEnumValue("CombineBrackets", s, combineBracketsMembers)
}

// TextAlignment enumerates vertical character alignment on a line.
type TextAlignment string

var textAlignmentMembers = enumMembers[TextAlignment](
	"top", "center", "baseline", "bottom", "auto",
)

// ParseTextAlignment parses a vertical character alignment.
func ParseTextAlignment(s string) (TextAlignment, error) {
	return parseEnumValue("TextAlignment", s, textAlignmentMembers)
}

// TextboxTightWrap enumerates tight wrap modes for textbox paragraphs.
type TextboxTightWrap string

var textboxTightWrapMembers = enumMembers[TextboxTightWrap](
	"none", "allLines", "firstAndLastLine", "firstLineOnly",
	"lastLineOnly",
)

// ParseTextboxTightWrap parses a tight wrap mode.
func ParseTextboxTightWrap(s string) (TextboxTightWrap, error) {
	return parseEnumValue("TextboxTightWrap", s, textboxTightWrapMembers)
}

// DisplacedByCustomXML enumerates displacement directions for
// annotations bumped by custom XML markup.
type DisplacedByCustomXML string

var displacedByCustomXMLMembers = enumMembers[DisplacedByCustomXML]("next", "prev")

// ParseDisplacedByCustomXML parses a displacement direction.
func ParseDisplacedByCustomXML(s string) (DisplacedByCustomXML, error) {
	return parseEnumValue("DisplacedByCustomXML", s, displacedByCustomXMLMembers)
}

// ProofErrType enumerates proofing error markers.
type ProofErrType string

var proofErrTypeMembers = enumMembers[ProofErrType](
	"spellStart", "spellEnd", "gramStart", "gramEnd",
)

// ParseProofErrType parses a proofing error marker.
func ParseProofErrType(s string) (ProofErrType, error) {
	return parseEnumValue("ProofErrType", s, proofErrTypeMembers)
}

// EdGrp enumerates editor groups for range permissions.
type EdGrp string

var edGrpMembers = enumMembers[EdGrp](
	"none", "everyone", "administrators", "contributors", "editors",
	"owners", "current",
)

// ParseEdGrp parses an editor group.
func ParseEdGrp(s string) (EdGrp, error) {
	return parseEnumValue("EdGrp", s, edGrpMembers)
}

// FldCharType enumerates field character kinds.
type FldCharType string

// Field character kinds.
const (
	FldCharTypeBegin    FldCharType = "begin"
	FldCharTypeSeparate FldCharType = "separate"
	FldCharTypeEnd      FldCharType = "end"
)

var fldCharTypeMembers = enumMembers[FldCharType]("begin", "separate", "end")

// ParseFldCharType parses a field character kind.
func ParseFldCharType(s string) (FldCharType, error) {
	return parseEnumValue("FldCharType", s, fldCharTypeMembers)
}

// PTabAlignment enumerates absolute position tab alignments.
type PTabAlignment string

var pTabAlignmentMembers = enumMembers[PTabAlignment]("left", "center", "right")

// ParsePTabAlignment parses an absolute position tab alignment.
func ParsePTabAlignment(s string) (PTabAlignment, error) {
	return parseEnumValue("PTabAlignment", s, pTabAlignmentMembers)
}

// PTabRelativeTo enumerates absolute position tab bases.
type PTabRelativeTo string

var pTabRelativeToMembers = enumMembers[PTabRelativeTo]("margin", "indent")

// ParsePTabRelativeTo parses an absolute position tab base.
func ParsePTabRelativeTo(s string) (PTabRelativeTo, error) {
	return parseEnumValue("PTabRelativeTo", s, pTabRelativeToMembers)
}

// PTabLeader enumerates absolute position tab leader characters.
type PTabLeader string

var pTabLeaderMembers = enumMembers[PTabLeader](
	"none", "dot", "hyphen", "underscore", "middleDot",
)

// ParsePTabLeader parses an absolute position tab leader character.
func ParsePTabLeader(s string) (PTabLeader, error) {
	return parseEnumValue("PTabLeader", s, pTabLeaderMembers)
}

// RubyAlign enumerates phonetic guide alignments.
type RubyAlign string

var rubyAlignMembers = enumMembers[RubyAlign](
	"center", "distributeLetter", "distributeSpace", "left", "right",
	"rightVertical",
)

// ParseRubyAlign parses a phonetic guide alignment.
func ParseRubyAlign(s string) (RubyAlign, error) {
	return parseEnumValue("RubyAlign", s, rubyAlignMembers)
}

// Direction enumerates explicit text directions for dir and bdo runs.
type Direction string

var directionMembers = enumMembers[Direction]("ltr", "rtl")

// ParseDirection parses an explicit text direction.
func ParseDirection(s string) (Direction, error) {
	return parseEnumValue("Direction", s, directionMembers)
}

// Lock enumerates content control locking modes.
type Lock string

var lockMembers = enumMembers[Lock](
	"sdtLocked", "contentLocked", "unlocked", "sdtContentLocked",
)

// ParseLock parses a content control locking mode.
func ParseLock(s string) (Lock, error) {
	return parseEnumValue("Lock", s, lockMembers)
}

// SdtDateMappingType enumerates storage formats for date controls.
type SdtDateMappingType string

var sdtDateMappingTypeMembers = enumMembers[SdtDateMappingType](
	"text", "date", "dateTime",
)

// ParseSdtDateMappingType parses a date control storage format.
func ParseSdtDateMappingType(s string) (SdtDateMappingType, error) {
	return parseEnumValue("SdtDateMappingType", s, sdtDateMappingTypeMembers)
}

// CalendarType enumerates calendars for date controls.
type CalendarType string

var calendarTypeMembers = enumMembers[CalendarType](
	"gregorian", "gregorianUs", "gregorianMeFrench", "gregorianArabic",
	"hijri", "hebrew", "taiwan", "japan", "thai", "korea", "saka",
	"gregorianXlitEnglish", "gregorianXlitFrench", "none",
)

// ParseCalendarType parses a calendar kind.
func ParseCalendarType(s string) (CalendarType, error) {
	return parseEnumValue("CalendarType", s, calendarTypeMembers)
}

// View enumerates document view modes.
type View string

var viewMembers = enumMembers[View](
	"none", "print", "outline", "masterPages", "normal", "web",
)

// ParseView parses a document view mode.
func ParseView(s string) (View, error) {
	return parseEnumValue("View", s, viewMembers)
}

// ZoomType enumerates magnification presets.
type ZoomType string

var zoomTypeMembers = enumMembers[ZoomType]("none", "fullPage", "bestFit", "textFit")

// ParseZoomType parses a magnification preset.
func ParseZoomType(s string) (ZoomType, error) {
	return parseEnumValue("ZoomType", s, zoomTypeMembers)
}

// CharacterSpacingControl enumerates east asian compression modes.
type CharacterSpacingControl string

var characterSpacingControlMembers = enumMembers[CharacterSpacingControl](
	"doNotCompress", "compressPunctuation",
	"compressPunctuationAndJapaneseKana",
)

// ParseCharacterSpacingControl parses an east asian compression mode.
func ParseCharacterSpacingControl(s string) (CharacterSpacingControl, error) {
	return parseEnumValue("CharacterSpacingControl", s, characterSpacingControlMembers)
}

// DocProtectType enumerates document protection modes.
type DocProtectType string

var docProtectTypeMembers = enumMembers[DocProtectType](
	"none", "readOnly", "comments", "trackedChanges", "forms",
)

// ParseDocProtectType parses a document protection mode.
func ParseDocProtectType(s string) (DocProtectType, error) {
	return parseEnumValue("DocProtectType", s, docProtectTypeMembers)
}

// Proof enumerates proofing states.
type Proof string

var proofMembers = enumMembers[Proof]("clean", "dirty")

// ParseProof parses a proofing state.
func ParseProof(s string) (Proof, error) {
	return parseEnumValue("Proof", s, proofMembers)
}

// DocType enumerates document kinds in settings.
type DocType string

var docTypeMembers = enumMembers[DocType]("notSpecified", "letter", "eMail")

// ParseDocType parses a document kind.
func ParseDocType(s string) (DocType, error) {
	return parseEnumValue("DocType", s, docTypeMembers)
}

// ColorSchemeIndex enumerates theme slots for the color scheme mapping.
type ColorSchemeIndex string

var colorSchemeIndexMembers = enumMembers[ColorSchemeIndex](
	"dark1", "light1", "dark2", "light2", "accent1", "accent2",
	"accent3", "accent4", "accent5", "accent6", "hyperlink",
	"followedHyperlink",
)

// ParseColorSchemeIndex parses a color scheme mapping slot.
func ParseColorSchemeIndex(s string) (ColorSchemeIndex, error) {
	return parseEnumValue("ColorSchemeIndex", s, colorSchemeIndexMembers)
}

// WrapText enumerates which sides text wraps around a drawing.
type WrapText string

var wrapTextMembers = enumMembers[WrapText]("bothSides", "left", "right", "largest")

// ParseWrapText parses a drawing wrap side.
func ParseWrapText(s string) (WrapText, error) {
	return parseEnumValue("WrapText", s, wrapTextMembers)
}

// AlignH enumerates relative horizontal drawing alignments.
type AlignH string

var alignHMembers = enumMembers[AlignH]("left", "right", "center", "inside", "outside")

// ParseAlignH parses a horizontal drawing alignment.
func ParseAlignH(s string) (AlignH, error) {
	return parseEnumValue("AlignH", s, alignHMembers)
}

// AlignV enumerates relative vertical drawing alignments.
type AlignV string

var alignVMembers = enumMembers[AlignV]("top", "bottom", "center", "inside", "outside")

// ParseAlignV parses a vertical drawing alignment.
func ParseAlignV(s string) (AlignV, error) {
	return parseEnumValue("AlignV", s, alignVMembers)
}

// RelFromH enumerates horizontal position bases for anchored drawings.
type RelFromH string

var relFromHMembers = enumMembers[RelFromH](
	"margin", "page", "column", "character", "leftMargin",
	"rightMargin", "insideMargin", "outsideMargin",
)

// ParseRelFromH parses a horizontal position base.
func ParseRelFromH(s string) (RelFromH, error) {
	return parseEnumValue("RelFromH", s, relFromHMembers)
}

// RelFromV enumerates vertical position bases for anchored drawings.
type RelFromV string

var relFromVMembers = enumMembers[RelFromV](
	"margin", "page", "paragraph", "line", "topMargin",
	"bottomMargin", "insideMargin", "outsideMargin",
)

// ParseRelFromV parses a vertical position base.
func ParseRelFromV(s string) (RelFromV, error) {
	return parseEnumValue("RelFromV", s, relFromVMembers)
}

// TblWidthUnit enumerates table width interpretations.
type TblWidthUnit string

var tblWidthUnitMembers = enumMembers[TblWidthUnit]("nil", "pct", "dxa", "auto")

// ParseTblWidthUnit parses a table width interpretation.
func ParseTblWidthUnit(s string) (TblWidthUnit, error) {
	return parseEnumValue("TblWidthUnit", s, tblWidthUnitMembers)
}

// TblLayoutType enumerates table layout algorithms.
type TblLayoutType string

var tblLayoutTypeMembers = enumMembers[TblLayoutType]("fixed", "autofit")

// ParseTblLayoutType parses a table layout algorithm.
func ParseTblLayoutType(s string) (TblLayoutType, error) {
	return parseEnumValue("TblLayoutType", s, tblLayoutTypeMembers)
}

// CaptionPos enumerates caption placements.
type CaptionPos string

var captionPosMembers = enumMembers[CaptionPos]("above", "below", "left", "right")

// ParseCaptionPos parses a caption placement.
func ParseCaptionPos(s string) (CaptionPos, error) {
	return parseEnumValue("CaptionPos", s, captionPosMembers)
}

// MergeType enumerates cell merge states.
type MergeType string

const (
	MergeTypeContinue MergeType = "continue"
	MergeTypeRestart  MergeType = "restart"
)

var mergeTypeMembers = enumMembers[MergeType]("continue", "restart")

// ParseMergeType parses a cell merge state.
func ParseMergeType(s string) (MergeType, error) {
	return parseEnumValue("MergeType", s, mergeTypeMembers)
}
