package wml

import (
	"github.com/benjaminschreck/go-wordml/pkg/wml/xmlnode"
)

// WriteProtection recommends or enforces read-only opening. The
// cryptographic attributes stay opaque.
type WriteProtection struct {
	Recommended         *bool
	CryptProviderType   *string
	CryptAlgorithmClass *string
	CryptAlgorithmType  *string
	CryptAlgorithmSid   *int64
	CryptSpinCount      *int64
	Hash                *string
	Salt                *string
}

func parseWriteProtection(node *xmlnode.Node) (WriteProtection, error) {
	wp := WriteProtection{
		CryptProviderType:   optStringAttr(node, "w:cryptProviderType"),
		CryptAlgorithmClass: optStringAttr(node, "w:cryptAlgorithmClass"),
		CryptAlgorithmType:  optStringAttr(node, "w:cryptAlgorithmType"),
		Hash:                optStringAttr(node, "w:hash"),
		Salt:                optStringAttr(node, "w:salt"),
	}
	var err error
	if wp.Recommended, err = optBoolAttr(node, "w:recommended"); err != nil {
		return WriteProtection{}, err
	}
	if wp.CryptAlgorithmSid, err = optDecimalAttr(node, "w:cryptAlgorithmSid"); err != nil {
		return WriteProtection{}, err
	}
	if wp.CryptSpinCount, err = optDecimalAttr(node, "w:cryptSpinCount"); err != nil {
		return WriteProtection{}, err
	}
	return wp, nil
}

// Zoom is the display magnification.
type Zoom struct {
	Kind    *ZoomType
	Percent DecimalNumberOrPercent
}

func parseZoom(node *xmlnode.Node) (Zoom, error) {
	var z Zoom
	if v, ok := node.Attribute("w:val"); ok {
		k, err := ParseZoomType(v)
		if err != nil {
			return Zoom{}, err
		}
		z.Kind = &k
	}
	percentStr, err := requireAttr(node, "w:percent", "percent")
	if err != nil {
		return Zoom{}, err
	}
	if z.Percent, err = ParseDecimalNumberOrPercent(percentStr); err != nil {
		return Zoom{}, err
	}
	return z, nil
}

// ProofState records whether spelling and grammar have been checked.
type ProofState struct {
	Spelling *Proof
	Grammar  *Proof
}

func parseProofState(node *xmlnode.Node) (ProofState, error) {
	var ps ProofState
	if v, ok := node.Attribute("w:spelling"); ok {
		p, err := ParseProof(v)
		if err != nil {
			return ProofState{}, err
		}
		ps.Spelling = &p
	}
	if v, ok := node.Attribute("w:grammar"); ok {
		p, err := ParseProof(v)
		if err != nil {
			return ProofState{}, err
		}
		ps.Grammar = &p
	}
	return ps, nil
}

// ActiveWritingStyle binds a grammar checker to a language.
type ActiveWritingStyle struct {
	Language             string
	VendorID             string
	DllVersion           string
	NaturalLanguageCheck *bool
	CheckStyle           bool
	AppName              string
}

func parseActiveWritingStyle(node *xmlnode.Node) (ActiveWritingStyle, error) {
	lang, err := requireAttr(node, "w:lang", "lang")
	if err != nil {
		return ActiveWritingStyle{}, err
	}
	vendorID, err := requireAttr(node, "w:vendorID", "vendorID")
	if err != nil {
		return ActiveWritingStyle{}, err
	}
	dllVersion, err := requireAttr(node, "w:dllVersion", "dllVersion")
	if err != nil {
		return ActiveWritingStyle{}, err
	}
	checkStyleStr, err := requireAttr(node, "w:checkStyle", "checkStyle")
	if err != nil {
		return ActiveWritingStyle{}, err
	}
	checkStyle, err := ParseBool(checkStyleStr)
	if err != nil {
		return ActiveWritingStyle{}, err
	}
	appName, err := requireAttr(node, "w:appName", "appName")
	if err != nil {
		return ActiveWritingStyle{}, err
	}
	aws := ActiveWritingStyle{
		Language:   lang,
		VendorID:   vendorID,
		DllVersion: dllVersion,
		CheckStyle: checkStyle,
		AppName:    appName,
	}
	if aws.NaturalLanguageCheck, err = optBoolAttr(node, "w:nlCheck"); err != nil {
		return ActiveWritingStyle{}, err
	}
	return aws, nil
}

// TrackChangesView controls which revision classes render as markup.
type TrackChangesView struct {
	Markup         *bool
	Comments       *bool
	InsDel         *bool
	Formatting     *bool
	InkAnnotations *bool
}

func parseTrackChangesView(node *xmlnode.Node) (TrackChangesView, error) {
	var tcv TrackChangesView
	var err error
	if tcv.Markup, err = optBoolAttr(node, "w:markup"); err != nil {
		return TrackChangesView{}, err
	}
	if tcv.Comments, err = optBoolAttr(node, "w:comments"); err != nil {
		return TrackChangesView{}, err
	}
	if tcv.InsDel, err = optBoolAttr(node, "w:insDel"); err != nil {
		return TrackChangesView{}, err
	}
	if tcv.Formatting, err = optBoolAttr(node, "w:formatting"); err != nil {
		return TrackChangesView{}, err
	}
	if tcv.InkAnnotations, err = optBoolAttr(node, "w:inkAnnotations"); err != nil {
		return TrackChangesView{}, err
	}
	return tcv, nil
}

// DocumentProtection restricts editing to a class of changes. The
// cryptographic attributes stay opaque.
type DocumentProtection struct {
	Edit        *DocProtectType
	Formatting  *bool
	Enforcement *bool
	Hash        *string
	Salt        *string
}

func parseDocumentProtection(node *xmlnode.Node) (DocumentProtection, error) {
	dp := DocumentProtection{
		Hash: optStringAttr(node, "w:hash"),
		Salt: optStringAttr(node, "w:salt"),
	}
	if v, ok := node.Attribute("w:edit"); ok {
		e, err := ParseDocProtectType(v)
		if err != nil {
			return DocumentProtection{}, err
		}
		dp.Edit = &e
	}
	var err error
	if dp.Formatting, err = optBoolAttr(node, "w:formatting"); err != nil {
		return DocumentProtection{}, err
	}
	if dp.Enforcement, err = optBoolAttr(node, "w:enforcement"); err != nil {
		return DocumentProtection{}, err
	}
	return dp, nil
}

// CompatSetting is one named compatibility switch.
type CompatSetting struct {
	Name  string
	URI   string
	Value string
}

func parseCompatSetting(node *xmlnode.Node) (CompatSetting, error) {
	name, err := requireAttr(node, "w:name", "name")
	if err != nil {
		return CompatSetting{}, err
	}
	uri, err := requireAttr(node, "w:uri", "uri")
	if err != nil {
		return CompatSetting{}, err
	}
	value, err := valAttr(node)
	if err != nil {
		return CompatSetting{}, err
	}
	return CompatSetting{Name: name, URI: uri, Value: value}, nil
}

// Compat collects layout compatibility flags and the open-ended
// compatSetting list.
type Compat struct {
	SpaceForUL                       *bool
	BalanceSingleByteDoubleByteWidth *bool
	DoNotLeaveBackslashAlone         *bool
	ULTrailSpace                     *bool
	DoNotExpandShiftReturn           *bool
	AdjustLineHeightInTable          *bool
	UseFELayout                      *bool
	Settings                         []CompatSetting
}

func parseCompat(node *xmlnode.Node) (Compat, error) {
	var c Compat
	for _, child := range node.Children {
		switch child.LocalName() {
		case "spaceForUL":
			if err := setOnOff(&c.SpaceForUL, child); err != nil {
				return Compat{}, err
			}
		case "balanceSingleByteDoubleByteWidth":
			if err := setOnOff(&c.BalanceSingleByteDoubleByteWidth, child); err != nil {
				return Compat{}, err
			}
		case "doNotLeaveBackslashAlone":
			if err := setOnOff(&c.DoNotLeaveBackslashAlone, child); err != nil {
				return Compat{}, err
			}
		case "ulTrailSpace":
			if err := setOnOff(&c.ULTrailSpace, child); err != nil {
				return Compat{}, err
			}
		case "doNotExpandShiftReturn":
			if err := setOnOff(&c.DoNotExpandShiftReturn, child); err != nil {
				return Compat{}, err
			}
		case "adjustLineHeightInTable":
			if err := setOnOff(&c.AdjustLineHeightInTable, child); err != nil {
				return Compat{}, err
			}
		case "useFELayout":
			if err := setOnOff(&c.UseFELayout, child); err != nil {
				return Compat{}, err
			}
		case "compatSetting":
			cs, err := parseCompatSetting(child)
			if err != nil {
				return Compat{}, err
			}
			c.Settings = append(c.Settings, cs)
		}
	}
	return c, nil
}

// DocRsids is the revision save id registry of the document.
type DocRsids struct {
	Root   *uint32
	Values []uint32
}

func parseDocRsids(node *xmlnode.Node) (DocRsids, error) {
	var r DocRsids
	for _, child := range node.Children {
		switch child.LocalName() {
		case "rsidRoot":
			val, err := valAttr(child)
			if err != nil {
				return DocRsids{}, err
			}
			n, err := ParseLongHex(val)
			if err != nil {
				return DocRsids{}, err
			}
			r.Root = &n
		case "rsid":
			val, err := valAttr(child)
			if err != nil {
				return DocRsids{}, err
			}
			n, err := ParseLongHex(val)
			if err != nil {
				return DocRsids{}, err
			}
			r.Values = append(r.Values, n)
		}
	}
	return r, nil
}

// DocVar is one document variable.
type DocVar struct {
	Name  string
	Value string
}

func parseDocVars(node *xmlnode.Node) ([]DocVar, error) {
	var vars []DocVar
	for _, child := range node.Children {
		if child.LocalName() != "docVar" {
			continue
		}
		name, err := requireAttr(child, "w:name", "name")
		if err != nil {
			return nil, err
		}
		value, err := valAttr(child)
		if err != nil {
			return nil, err
		}
		vars = append(vars, DocVar{Name: name, Value: value})
	}
	return vars, nil
}

// Caption is one caption definition.
type Caption struct {
	Name          string
	Position      *CaptionPos
	ChapterNumber *bool
	Heading       *int64
	NoLabel       *bool
	NumberFormat  *NumberFormat
	Separator     *ChapterSep
}

func parseCaption(node *xmlnode.Node) (Caption, error) {
	name, err := requireAttr(node, "w:name", "name")
	if err != nil {
		return Caption{}, err
	}
	c := Caption{Name: name}
	if v, ok := node.Attribute("w:pos"); ok {
		p, err := ParseCaptionPos(v)
		if err != nil {
			return Caption{}, err
		}
		c.Position = &p
	}
	if c.ChapterNumber, err = optBoolAttr(node, "w:chapNum"); err != nil {
		return Caption{}, err
	}
	if c.Heading, err = optDecimalAttr(node, "w:heading"); err != nil {
		return Caption{}, err
	}
	if c.NoLabel, err = optBoolAttr(node, "w:noLabel"); err != nil {
		return Caption{}, err
	}
	if v, ok := node.Attribute("w:numFmt"); ok {
		f, err := ParseNumberFormat(v)
		if err != nil {
			return Caption{}, err
		}
		c.NumberFormat = &f
	}
	if v, ok := node.Attribute("w:sep"); ok {
		s, err := ParseChapterSep(v)
		if err != nil {
			return Caption{}, err
		}
		c.Separator = &s
	}
	return c, nil
}

// Captions is the caption definition table.
type Captions struct {
	Captions []Caption
}

func parseCaptions(node *xmlnode.Node) (Captions, error) {
	var caps Captions
	for _, child := range node.Children {
		if child.LocalName() != "caption" {
			continue
		}
		c, err := parseCaption(child)
		if err != nil {
			return Captions{}, err
		}
		caps.Captions = append(caps.Captions, c)
	}
	return caps, nil
}

// ColorSchemeMapping remaps theme color slots.
type ColorSchemeMapping struct {
	Background1       *ColorSchemeIndex
	Text1             *ColorSchemeIndex
	Background2       *ColorSchemeIndex
	Text2             *ColorSchemeIndex
	Accent1           *ColorSchemeIndex
	Accent2           *ColorSchemeIndex
	Accent3           *ColorSchemeIndex
	Accent4           *ColorSchemeIndex
	Accent5           *ColorSchemeIndex
	Accent6           *ColorSchemeIndex
	Hyperlink         *ColorSchemeIndex
	FollowedHyperlink *ColorSchemeIndex
}

func parseColorSchemeMapping(node *xmlnode.Node) (ColorSchemeMapping, error) {
	var csm ColorSchemeMapping
	slots := []struct {
		key  string
		dest **ColorSchemeIndex
	}{
		{"w:bg1", &csm.Background1},
		{"w:t1", &csm.Text1},
		{"w:bg2", &csm.Background2},
		{"w:t2", &csm.Text2},
		{"w:accent1", &csm.Accent1},
		{"w:accent2", &csm.Accent2},
		{"w:accent3", &csm.Accent3},
		{"w:accent4", &csm.Accent4},
		{"w:accent5", &csm.Accent5},
		{"w:accent6", &csm.Accent6},
		{"w:hyperlink", &csm.Hyperlink},
		{"w:followedHyperlink", &csm.FollowedHyperlink},
	}
	for _, slot := range slots {
		v, ok := node.Attribute(slot.key)
		if !ok {
			continue
		}
		idx, err := ParseColorSchemeIndex(v)
		if err != nil {
			return ColorSchemeMapping{}, err
		}
		*slot.dest = &idx
	}
	return csm, nil
}

// ThemeFontLang selects the languages the theme fonts apply to.
type ThemeFontLang struct {
	Value    *string
	EastAsia *string
	Bidi     *string
}

const maxSeparatorRefs = 3

// FootnoteDocProperties is the document-wide footnote configuration:
// placement and numbering plus the separator footnote ids.
type FootnoteDocProperties struct {
	FootnoteProperties
	SeparatorReferences []int64
}

func parseFootnoteDocProperties(node *xmlnode.Node) (FootnoteDocProperties, error) {
	base, err := parseFootnoteProperties(node)
	if err != nil {
		return FootnoteDocProperties{}, err
	}
	props := FootnoteDocProperties{FootnoteProperties: base}
	for _, child := range node.Children {
		if child.LocalName() != "footnote" {
			continue
		}
		m, err := parseMarkup(child)
		if err != nil {
			return FootnoteDocProperties{}, err
		}
		props.SeparatorReferences = append(props.SeparatorReferences, m.ID)
	}
	if n := len(props.SeparatorReferences); n > maxSeparatorRefs {
		return FootnoteDocProperties{}, NewLimitViolationError(node.Name, "footnote", 0, maxSeparatorRefs, n)
	}
	return props, nil
}

// EndnoteDocProperties is the document-wide endnote configuration.
type EndnoteDocProperties struct {
	EndnoteProperties
	SeparatorReferences []int64
}

func parseEndnoteDocProperties(node *xmlnode.Node) (EndnoteDocProperties, error) {
	base, err := parseEndnoteProperties(node)
	if err != nil {
		return EndnoteDocProperties{}, err
	}
	props := EndnoteDocProperties{EndnoteProperties: base}
	for _, child := range node.Children {
		if child.LocalName() != "endnote" {
			continue
		}
		m, err := parseMarkup(child)
		if err != nil {
			return EndnoteDocProperties{}, err
		}
		props.SeparatorReferences = append(props.SeparatorReferences, m.ID)
	}
	if n := len(props.SeparatorReferences); n > maxSeparatorRefs {
		return EndnoteDocProperties{}, NewLimitViolationError(node.Name, "endnote", 0, maxSeparatorRefs, n)
	}
	return props, nil
}

// Settings is the document settings part. Unknown children are
// ignored; repeated singletons overwrite.
type Settings struct {
	WriteProtection            *WriteProtection
	View                       *View
	Zoom                       *Zoom
	RemovePersonalInformation  *bool
	DoNotDisplayPageBoundaries *bool
	DisplayBackgroundShape     *bool
	PrintPostScriptOverText    *bool
	PrintFractionalCharWidth   *bool
	PrintFormsData             *bool
	EmbedTrueTypeFonts         *bool
	EmbedSystemFonts           *bool
	SaveSubsetFonts            *bool
	SaveFormsData              *bool
	MirrorMargins              *bool
	AlignBordersAndEdges       *bool
	BordersDoNotSurroundHeader *bool
	BordersDoNotSurroundFooter *bool
	GutterAtTop                *bool
	HideSpellingErrors         *bool
	HideGrammaticalErrors      *bool
	ActiveWritingStyles        []ActiveWritingStyle
	ProofState                 *ProofState
	FormsDesign                *bool
	AttachedTemplate           *Rel
	LinkStyles                 *bool
	DocumentType               *DocType
	TrackChangesView           *TrackChangesView
	TrackChanges               *bool
	DoNotTrackMoves            *bool
	DoNotTrackFormatting       *bool
	DocumentProtection         *DocumentProtection
	AutoFormatOverride         *bool
	DefaultTabStop             *TwipsMeasure
	AutoHyphenation            *bool
	ConsecutiveHyphenLimit     *int64
	HyphenationZone            *TwipsMeasure
	DoNotHyphenateCaps         *bool
	ShowEnvelope               *bool
	SummaryLength              *DecimalNumberOrPercent
	ClickAndTypeStyle          *string
	DefaultTableStyle          *string
	EvenAndOddHeaders          *bool
	BookFoldRevPrinting        *bool
	BookFoldPrinting           *bool
	BookFoldPrintingSheets     *int64
	DrawingGridHorizSpacing    *TwipsMeasure
	DrawingGridVertSpacing     *TwipsMeasure
	DisplayHorizDrawingGrid    *int64
	DisplayVertDrawingGrid     *int64
	DoNotUseMarginsForGrid     *bool
	DrawingGridHorizOrigin     *TwipsMeasure
	DrawingGridVertOrigin      *TwipsMeasure
	DoNotShadeFormData         *bool
	NoPunctuationKerning       *bool
	CharacterSpacingControl    *CharacterSpacingControl
	PrintTwoOnOne              *bool
	StrictFirstAndLastChars    *bool
	NoLineBreaksAfter          *string
	NoLineBreaksBefore         *string
	SavePreviewPicture         *bool
	DoNotValidateSchema        *bool
	SaveInvalidXML             *bool
	IgnoreMixedContent         *bool
	AlwaysShowPlaceholderText  *bool
	DoNotDemarcateInvalidXML   *bool
	SaveXMLDataOnly            *bool
	UseXSLTWhenSaving          *bool
	SaveThroughXSLT            *Rel
	ShowXMLTags                *bool
	AlwaysMergeEmptyNamespace  *bool
	UpdateFields               *bool
	FootnoteProperties         *FootnoteDocProperties
	EndnoteProperties          *EndnoteDocProperties
	Compat                     *Compat
	Rsids                      *DocRsids
	AttachedSchemas            []string
	ThemeFontLang              *ThemeFontLang
	ColorSchemeMapping         *ColorSchemeMapping
	DoNotIncludeSubdocsInStats *bool
	DoNotAutoCompressPictures  *bool
	ForceUpgrade               bool
	Captions                   *Captions
	DoNotEmbedSmartTags        *bool
	DecimalSymbol              *string
	ListSeparator              *string
	DocVars                    []DocVar
}

func parseSettings(node *xmlnode.Node) (*Settings, error) {
	s := &Settings{}
	for _, child := range node.Children {
		if err := s.updateFromNode(child); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Settings) updateFromNode(node *xmlnode.Node) error {
	onOff := map[string]**bool{
		"removePersonalInformation":           &s.RemovePersonalInformation,
		"doNotDisplayPageBoundaries":          &s.DoNotDisplayPageBoundaries,
		"displayBackgroundShape":              &s.DisplayBackgroundShape,
		"printPostScriptOverText":             &s.PrintPostScriptOverText,
		"printFractionalCharacterWidth":       &s.PrintFractionalCharWidth,
		"printFormsData":                      &s.PrintFormsData,
		"embedTrueTypeFonts":                  &s.EmbedTrueTypeFonts,
		"embedSystemFonts":                    &s.EmbedSystemFonts,
		"saveSubsetFonts":                     &s.SaveSubsetFonts,
		"saveFormsData":                       &s.SaveFormsData,
		"mirrorMargins":                       &s.MirrorMargins,
		"alignBordersAndEdges":                &s.AlignBordersAndEdges,
		"bordersDoNotSurroundHeader":          &s.BordersDoNotSurroundHeader,
		"bordersDoNotSurroundFooter":          &s.BordersDoNotSurroundFooter,
		"gutterAtTop":                         &s.GutterAtTop,
		"hideSpellingErrors":                  &s.HideSpellingErrors,
		"hideGrammaticalErrors":               &s.HideGrammaticalErrors,
		"formsDesign":                         &s.FormsDesign,
		"linkStyles":                          &s.LinkStyles,
		"trackChanges":                        &s.TrackChanges,
		"doNotTrackMoves":                     &s.DoNotTrackMoves,
		"doNotTrackFormatting":                &s.DoNotTrackFormatting,
		"autoFormatOverride":                  &s.AutoFormatOverride,
		"autoHyphenation":                     &s.AutoHyphenation,
		"doNotHyphenateCaps":                  &s.DoNotHyphenateCaps,
		"showEnvelope":                        &s.ShowEnvelope,
		"evenAndOddHeaders":                   &s.EvenAndOddHeaders,
		"bookFoldRevPrinting":                 &s.BookFoldRevPrinting,
		"bookFoldPrinting":                    &s.BookFoldPrinting,
		"doNotUseMarginsForDrawingGridOrigin": &s.DoNotUseMarginsForGrid,
		"doNotShadeFormData":                  &s.DoNotShadeFormData,
		"noPunctuationKerning":                &s.NoPunctuationKerning,
		"printTwoOnOne":                       &s.PrintTwoOnOne,
		"strictFirstAndLastChars":             &s.StrictFirstAndLastChars,
		"savePreviewPicture":                  &s.SavePreviewPicture,
		"doNotValidateAgainstSchema":          &s.DoNotValidateSchema,
		"saveInvalidXml":                      &s.SaveInvalidXML,
		"ignoreMixedContent":                  &s.IgnoreMixedContent,
		"alwaysShowPlaceholderText":           &s.AlwaysShowPlaceholderText,
		"doNotDemarcateInvalidXml":            &s.DoNotDemarcateInvalidXML,
		"saveXmlDataOnly":                     &s.SaveXMLDataOnly,
		"useXSLTWhenSaving":                   &s.UseXSLTWhenSaving,
		"showXMLTags":                         &s.ShowXMLTags,
		"alwaysMergeEmptyNamespace":           &s.AlwaysMergeEmptyNamespace,
		"updateFields":                        &s.UpdateFields,
		"doNotIncludeSubdocsInStats":          &s.DoNotIncludeSubdocsInStats,
		"doNotAutoCompressPictures":           &s.DoNotAutoCompressPictures,
		"doNotEmbedSmartTags":                 &s.DoNotEmbedSmartTags,
	}
	local := node.LocalName()
	if dest, ok := onOff[local]; ok {
		return setOnOff(dest, node)
	}

	switch local {
	case "writeProtection":
		wp, err := parseWriteProtection(node)
		if err != nil {
			return err
		}
		s.WriteProtection = &wp
	case "view":
		v, err := valAttr(node)
		if err != nil {
			return err
		}
		view, err := ParseView(v)
		if err != nil {
			return err
		}
		s.View = &view
	case "zoom":
		z, err := parseZoom(node)
		if err != nil {
			return err
		}
		s.Zoom = &z
	case "activeWritingStyle":
		aws, err := parseActiveWritingStyle(node)
		if err != nil {
			return err
		}
		s.ActiveWritingStyles = append(s.ActiveWritingStyles, aws)
	case "proofState":
		ps, err := parseProofState(node)
		if err != nil {
			return err
		}
		s.ProofState = &ps
	case "attachedTemplate":
		rel, err := parseRel(node)
		if err != nil {
			return err
		}
		s.AttachedTemplate = &rel
	case "documentType":
		v, err := valAttr(node)
		if err != nil {
			return err
		}
		dt, err := ParseDocType(v)
		if err != nil {
			return err
		}
		s.DocumentType = &dt
	case "revisionView":
		tcv, err := parseTrackChangesView(node)
		if err != nil {
			return err
		}
		s.TrackChangesView = &tcv
	case "documentProtection":
		dp, err := parseDocumentProtection(node)
		if err != nil {
			return err
		}
		s.DocumentProtection = &dp
	case "defaultTabStop":
		m, err := parseTwipsVal(node)
		if err != nil {
			return err
		}
		s.DefaultTabStop = &m
	case "consecutiveHyphenLimit":
		n, err := parseDecimalVal(node)
		if err != nil {
			return err
		}
		s.ConsecutiveHyphenLimit = &n
	case "hyphenationZone":
		m, err := parseTwipsVal(node)
		if err != nil {
			return err
		}
		s.HyphenationZone = &m
	case "summaryLength":
		v, err := valAttr(node)
		if err != nil {
			return err
		}
		dp, err := ParseDecimalNumberOrPercent(v)
		if err != nil {
			return err
		}
		s.SummaryLength = &dp
	case "clickAndTypeStyle":
		v, err := parseStringVal(node)
		if err != nil {
			return err
		}
		s.ClickAndTypeStyle = &v
	case "defaultTableStyle":
		v, err := parseStringVal(node)
		if err != nil {
			return err
		}
		s.DefaultTableStyle = &v
	case "bookFoldPrintingSheets":
		n, err := parseDecimalVal(node)
		if err != nil {
			return err
		}
		s.BookFoldPrintingSheets = &n
	case "drawingGridHorizontalSpacing":
		m, err := parseTwipsVal(node)
		if err != nil {
			return err
		}
		s.DrawingGridHorizSpacing = &m
	case "drawingGridVerticalSpacing":
		m, err := parseTwipsVal(node)
		if err != nil {
			return err
		}
		s.DrawingGridVertSpacing = &m
	case "displayHorizontalDrawingGridEvery":
		n, err := parseDecimalVal(node)
		if err != nil {
			return err
		}
		s.DisplayHorizDrawingGrid = &n
	case "displayVerticalDrawingGridEvery":
		n, err := parseDecimalVal(node)
		if err != nil {
			return err
		}
		s.DisplayVertDrawingGrid = &n
	case "drawingGridHorizontalOrigin":
		m, err := parseTwipsVal(node)
		if err != nil {
			return err
		}
		s.DrawingGridHorizOrigin = &m
	case "drawingGridVerticalOrigin":
		m, err := parseTwipsVal(node)
		if err != nil {
			return err
		}
		s.DrawingGridVertOrigin = &m
	case "characterSpacingControl":
		v, err := valAttr(node)
		if err != nil {
			return err
		}
		csc, err := ParseCharacterSpacingControl(v)
		if err != nil {
			return err
		}
		s.CharacterSpacingControl = &csc
	case "noLineBreaksAfter":
		v, err := requireAttr(node, "w:char", "char")
		if err != nil {
			return err
		}
		s.NoLineBreaksAfter = &v
	case "noLineBreaksBefore":
		v, err := requireAttr(node, "w:char", "char")
		if err != nil {
			return err
		}
		s.NoLineBreaksBefore = &v
	case "saveThroughXslt":
		rel, err := parseRel(node)
		if err != nil {
			return err
		}
		s.SaveThroughXSLT = &rel
	case "footnotePr":
		props, err := parseFootnoteDocProperties(node)
		if err != nil {
			return err
		}
		s.FootnoteProperties = &props
	case "endnotePr":
		props, err := parseEndnoteDocProperties(node)
		if err != nil {
			return err
		}
		s.EndnoteProperties = &props
	case "compat":
		c, err := parseCompat(node)
		if err != nil {
			return err
		}
		s.Compat = &c
	case "rsids":
		r, err := parseDocRsids(node)
		if err != nil {
			return err
		}
		s.Rsids = &r
	case "attachedSchema":
		v, err := valAttr(node)
		if err != nil {
			return err
		}
		s.AttachedSchemas = append(s.AttachedSchemas, v)
	case "themeFontLang":
		s.ThemeFontLang = &ThemeFontLang{
			Value:    optStringAttr(node, "w:val"),
			EastAsia: optStringAttr(node, "w:eastAsia"),
			Bidi:     optStringAttr(node, "w:bidi"),
		}
	case "clrSchemeMapping":
		csm, err := parseColorSchemeMapping(node)
		if err != nil {
			return err
		}
		s.ColorSchemeMapping = &csm
	case "forceUpgrade":
		s.ForceUpgrade = true
	case "captions":
		caps, err := parseCaptions(node)
		if err != nil {
			return err
		}
		s.Captions = &caps
	case "decimalSymbol":
		v, err := parseStringVal(node)
		if err != nil {
			return err
		}
		s.DecimalSymbol = &v
	case "listSeparator":
		v, err := parseStringVal(node)
		if err != nil {
			return err
		}
		s.ListSeparator = &v
	case "docVars":
		vars, err := parseDocVars(node)
		if err != nil {
			return err
		}
		s.DocVars = vars
	}
	return nil
}

func parseTwipsVal(node *xmlnode.Node) (TwipsMeasure, error) {
	v, err := valAttr(node)
	if err != nil {
		return TwipsMeasure{}, err
	}
	return ParseTwipsMeasure(v)
}
