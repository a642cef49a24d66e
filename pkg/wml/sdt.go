package wml

import (
	"github.com/benjaminschreck/go-wordml/pkg/wml/xmlnode"
)

// SdtControl is the control flavor of a structured document tag: at
// most one appears in the tag's properties.
type SdtControl interface {
	isSdtControl()
}

// SdtListItem is one entry of a combo box or drop-down list.
type SdtListItem struct {
	DisplayText *string
	Value       *string
}

func parseSdtListItem(node *xmlnode.Node) SdtListItem {
	return SdtListItem{
		DisplayText: optStringAttr(node, "w:displayText"),
		Value:       optStringAttr(node, "w:value"),
	}
}

// SdtEquation marks the tag as holding an equation.
type SdtEquation struct{}

// SdtComboBox lets the user pick a list entry or type free text.
type SdtComboBox struct {
	LastValue *string
	Items     []SdtListItem
}

// SdtDate holds a date picked from a calendar.
type SdtDate struct {
	FullDate          *string
	DateFormat        *string
	Language          *string
	StoreMappedDataAs *SdtDateMappingType
	Calendar          *CalendarType
}

// SdtDocPartObj holds a single building block.
type SdtDocPartObj struct {
	Gallery  *string
	Category *string
	Unique   *bool
}

// SdtDocPartList lets the user pick a building block from a gallery.
type SdtDocPartList SdtDocPartObj

// SdtDropDownList restricts the tag to a fixed list of entries.
type SdtDropDownList struct {
	LastValue *string
	Items     []SdtListItem
}

// SdtPicture marks the tag as holding a single picture.
type SdtPicture struct{}

// SdtRichText marks the tag as holding arbitrary rich content.
type SdtRichText struct{}

// SdtText restricts the tag to plain text.
type SdtText struct {
	MultiLine *bool
}

// SdtCitation marks the tag as holding a citation.
type SdtCitation struct{}

// SdtGroup groups other content without restricting it.
type SdtGroup struct{}

// SdtBibliography marks the tag as holding a bibliography.
type SdtBibliography struct{}

func (SdtEquation) isSdtControl()     {}
func (SdtComboBox) isSdtControl()     {}
func (SdtDate) isSdtControl()         {}
func (SdtDocPartObj) isSdtControl()   {}
func (SdtDocPartList) isSdtControl()  {}
func (SdtDropDownList) isSdtControl() {}
func (SdtPicture) isSdtControl()      {}
func (SdtRichText) isSdtControl()     {}
func (SdtText) isSdtControl()         {}
func (SdtCitation) isSdtControl()     {}
func (SdtGroup) isSdtControl()        {}
func (SdtBibliography) isSdtControl() {}

func parseSdtListItems(node *xmlnode.Node) []SdtListItem {
	var items []SdtListItem
	for _, child := range node.Children {
		if child.LocalName() == "listItem" {
			items = append(items, parseSdtListItem(child))
		}
	}
	return items
}

func parseSdtDate(node *xmlnode.Node) (SdtDate, error) {
	date := SdtDate{FullDate: optStringAttr(node, "w:fullDate")}
	for _, child := range node.Children {
		switch child.LocalName() {
		case "dateFormat":
			v, err := valAttr(child)
			if err != nil {
				return SdtDate{}, err
			}
			date.DateFormat = &v
		case "lid":
			v, err := valAttr(child)
			if err != nil {
				return SdtDate{}, err
			}
			date.Language = &v
		case "storeMappedDataAs":
			v, err := valAttr(child)
			if err != nil {
				return SdtDate{}, err
			}
			m, err := ParseSdtDateMappingType(v)
			if err != nil {
				return SdtDate{}, err
			}
			date.StoreMappedDataAs = &m
		case "calendar":
			v, err := valAttr(child)
			if err != nil {
				return SdtDate{}, err
			}
			c, err := ParseCalendarType(v)
			if err != nil {
				return SdtDate{}, err
			}
			date.Calendar = &c
		}
	}
	return date, nil
}

func parseSdtDocPartObj(node *xmlnode.Node) (SdtDocPartObj, error) {
	var obj SdtDocPartObj
	for _, child := range node.Children {
		switch child.LocalName() {
		case "docPartGallery":
			v, err := valAttr(child)
			if err != nil {
				return SdtDocPartObj{}, err
			}
			obj.Gallery = &v
		case "docPartCategory":
			v, err := valAttr(child)
			if err != nil {
				return SdtDocPartObj{}, err
			}
			obj.Category = &v
		case "docPartUnique":
			v, err := parseOnOffElement(child)
			if err != nil {
				return SdtDocPartObj{}, err
			}
			obj.Unique = &v
		}
	}
	return obj, nil
}

// parseSdtControl recognizes one control child of w:sdtPr, returning
// the not-group-member sentinel for everything else.
func parseSdtControl(node *xmlnode.Node) (SdtControl, error) {
	switch node.LocalName() {
	case "equation":
		return SdtEquation{}, nil
	case "comboBox":
		return SdtComboBox{
			LastValue: optStringAttr(node, "w:lastValue"),
			Items:     parseSdtListItems(node),
		}, nil
	case "date":
		return parseSdtDate(node)
	case "docPartObj":
		return parseSdtDocPartObj(node)
	case "docPartList":
		obj, err := parseSdtDocPartObj(node)
		if err != nil {
			return nil, err
		}
		return SdtDocPartList(obj), nil
	case "dropDownList":
		return SdtDropDownList{
			LastValue: optStringAttr(node, "w:lastValue"),
			Items:     parseSdtListItems(node),
		}, nil
	case "picture":
		return SdtPicture{}, nil
	case "richText":
		return SdtRichText{}, nil
	case "text":
		multiLine, err := optBoolAttr(node, "w:multiLine")
		if err != nil {
			return nil, err
		}
		return SdtText{MultiLine: multiLine}, nil
	case "citation":
		return SdtCitation{}, nil
	case "group":
		return SdtGroup{}, nil
	case "bibliography":
		return SdtBibliography{}, nil
	default:
		return nil, NewNotGroupMemberError(node.Name, "SdtControl")
	}
}

// DataBinding maps a structured document tag onto a custom XML part.
type DataBinding struct {
	Prefixes    *string
	XPath       string
	StoreItemID string
}

func parseDataBinding(node *xmlnode.Node) (DataBinding, error) {
	xpath, err := requireAttr(node, "w:xpath", "xpath")
	if err != nil {
		return DataBinding{}, err
	}
	storeItemID, err := requireAttr(node, "w:storeItemID", "storeItemID")
	if err != nil {
		return DataBinding{}, err
	}
	return DataBinding{
		Prefixes:    optStringAttr(node, "w:prefixMappings"),
		XPath:       xpath,
		StoreItemID: storeItemID,
	}, nil
}

// Placeholder names the building block shown while the tag is empty.
type Placeholder struct {
	DocPart string
}

func parsePlaceholder(node *xmlnode.Node) (Placeholder, error) {
	docPart := node.FirstChild("docPart")
	if docPart == nil {
		return Placeholder{}, NewMissingChildError(node.Name, "docPart")
	}
	v, err := valAttr(docPart)
	if err != nil {
		return Placeholder{}, err
	}
	return Placeholder{DocPart: v}, nil
}

// SdtProperties is the property bag of a structured document tag.
type SdtProperties struct {
	RunProperties      *RunProperties
	Alias              *string
	Tag                *string
	ID                 *int64
	Lock               *Lock
	Placeholder        *Placeholder
	Temporary          *bool
	ShowingPlaceholder *bool
	DataBinding        *DataBinding
	Label              *int64
	TabIndex           *uint64
	Control            SdtControl
}

func parseSdtProperties(node *xmlnode.Node) (*SdtProperties, error) {
	props := &SdtProperties{}
	for _, child := range node.Children {
		switch child.LocalName() {
		case "rPr":
			rpr, err := parseRunProperties(child)
			if err != nil {
				return nil, err
			}
			props.RunProperties = rpr
		case "alias":
			v, err := valAttr(child)
			if err != nil {
				return nil, err
			}
			props.Alias = &v
		case "tag":
			v, err := valAttr(child)
			if err != nil {
				return nil, err
			}
			props.Tag = &v
		case "id":
			n, err := parseDecimalVal(child)
			if err != nil {
				return nil, err
			}
			props.ID = &n
		case "lock":
			v, err := valAttr(child)
			if err != nil {
				return nil, err
			}
			l, err := ParseLock(v)
			if err != nil {
				return nil, err
			}
			props.Lock = &l
		case "placeholder":
			ph, err := parsePlaceholder(child)
			if err != nil {
				return nil, err
			}
			props.Placeholder = &ph
		case "temporary":
			v, err := parseOnOffElement(child)
			if err != nil {
				return nil, err
			}
			props.Temporary = &v
		case "showingPlcHdr":
			v, err := parseOnOffElement(child)
			if err != nil {
				return nil, err
			}
			props.ShowingPlaceholder = &v
		case "dataBinding":
			db, err := parseDataBinding(child)
			if err != nil {
				return nil, err
			}
			props.DataBinding = &db
		case "label":
			n, err := parseDecimalVal(child)
			if err != nil {
				return nil, err
			}
			props.Label = &n
		case "tabIndex":
			n, err := parseUnsignedVal(child)
			if err != nil {
				return nil, err
			}
			props.TabIndex = &n
		default:
			control, err := parseSdtControl(child)
			if err != nil {
				if IsNotGroupMember(err) {
					continue
				}
				return nil, err
			}
			props.Control = control
		}
	}
	return props, nil
}

// SdtEndProperties is the physical end-character formatting of a tag.
type SdtEndProperties struct {
	RunProperties *RunProperties
}

func parseSdtEndProperties(node *xmlnode.Node) (*SdtEndProperties, error) {
	props := &SdtEndProperties{}
	if rpr := node.FirstChild("rPr"); rpr != nil {
		parsed, err := parseRunProperties(rpr)
		if err != nil {
			return nil, err
		}
		props.RunProperties = parsed
	}
	return props, nil
}

// SdtContentRun is the inline content of a structured document tag.
type SdtContentRun struct {
	Contents []ParagraphContent
}

func parseSdtContentRun(node *xmlnode.Node) (*SdtContentRun, error) {
	content := &SdtContentRun{}
	for _, child := range node.Children {
		c, err := parseParagraphContent(child)
		if err != nil {
			if IsNotGroupMember(err) {
				continue
			}
			return nil, err
		}
		content.Contents = append(content.Contents, c)
	}
	return content, nil
}

// SdtContentBlock is the block-level content of a structured document
// tag.
type SdtContentBlock struct {
	Contents []BlockContent
}

func parseSdtContentBlock(node *xmlnode.Node) (*SdtContentBlock, error) {
	content := &SdtContentBlock{}
	for _, child := range node.Children {
		c, err := parseBlockContent(child)
		if err != nil {
			if IsNotGroupMember(err) {
				continue
			}
			return nil, err
		}
		content.Contents = append(content.Contents, c)
	}
	return content, nil
}

// SdtRun is a structured document tag holding inline content.
type SdtRun struct {
	Properties    *SdtProperties
	EndProperties *SdtEndProperties
	Content       *SdtContentRun
}

func (*SdtRun) isParagraphContent() {}

func parseSdtRun(node *xmlnode.Node) (*SdtRun, error) {
	sdt := &SdtRun{}
	for _, child := range node.Children {
		switch child.LocalName() {
		case "sdtPr":
			props, err := parseSdtProperties(child)
			if err != nil {
				return nil, err
			}
			sdt.Properties = props
		case "sdtEndPr":
			props, err := parseSdtEndProperties(child)
			if err != nil {
				return nil, err
			}
			sdt.EndProperties = props
		case "sdtContent":
			content, err := parseSdtContentRun(child)
			if err != nil {
				return nil, err
			}
			sdt.Content = content
		}
	}
	return sdt, nil
}

// SdtBlock is a structured document tag holding block content.
type SdtBlock struct {
	Properties    *SdtProperties
	EndProperties *SdtEndProperties
	Content       *SdtContentBlock
}

func (*SdtBlock) isBlockContent() {}

func parseSdtBlock(node *xmlnode.Node) (*SdtBlock, error) {
	sdt := &SdtBlock{}
	for _, child := range node.Children {
		switch child.LocalName() {
		case "sdtPr":
			props, err := parseSdtProperties(child)
			if err != nil {
				return nil, err
			}
			sdt.Properties = props
		case "sdtEndPr":
			props, err := parseSdtEndProperties(child)
			if err != nil {
				return nil, err
			}
			sdt.EndProperties = props
		case "sdtContent":
			content, err := parseSdtContentBlock(child)
			if err != nil {
				return nil, err
			}
			sdt.Content = content
		}
	}
	return sdt, nil
}
