package wml

import (
	"strconv"

	"github.com/benjaminschreck/go-wordml/pkg/wml/xmlnode"
)

// valAttr returns the w:val attribute of the node, which many leaf
// elements use to carry their entire value.
func valAttr(node *xmlnode.Node) (string, error) {
	v, ok := node.Attribute("w:val")
	if !ok {
		return "", NewMissingAttributeError(node.Name, "val")
	}
	return v, nil
}

// requireAttr returns a prefixed attribute or a missing-attribute error
// naming the local attribute.
func requireAttr(node *xmlnode.Node, key, local string) (string, error) {
	v, ok := node.Attribute(key)
	if !ok {
		return "", NewMissingAttributeError(node.Name, local)
	}
	return v, nil
}

// optStringAttr returns the attribute value by pointer, nil when absent.
func optStringAttr(node *xmlnode.Node, key string) *string {
	if v, ok := node.Attribute(key); ok {
		return &v
	}
	return nil
}

// optBoolAttr parses an optional on/off attribute.
func optBoolAttr(node *xmlnode.Node, key string) (*bool, error) {
	v, ok := node.Attribute(key)
	if !ok {
		return nil, nil
	}
	b, err := ParseBool(v)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// optDecimalAttr parses an optional signed decimal attribute.
func optDecimalAttr(node *xmlnode.Node, key string) (*int64, error) {
	v, ok := node.Attribute(key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, &PatternError{Value: v, Pattern: "-?[0-9]+"}
	}
	return &n, nil
}

// optUnsignedAttr parses an optional unsigned decimal attribute.
func optUnsignedAttr(node *xmlnode.Node, key string) (*uint64, error) {
	v, ok := node.Attribute(key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil, &PatternError{Value: v, Pattern: "[0-9]+"}
	}
	return &n, nil
}

// optLongHexAttr parses an optional eight-digit hex attribute
// (revision ids).
func optLongHexAttr(node *xmlnode.Node, key string) (*uint32, error) {
	v, ok := node.Attribute(key)
	if !ok {
		return nil, nil
	}
	n, err := ParseLongHex(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// optUcharHexAttr parses an optional two-digit hex attribute
// (theme tints and shades).
func optUcharHexAttr(node *xmlnode.Node, key string) (*uint8, error) {
	v, ok := node.Attribute(key)
	if !ok {
		return nil, nil
	}
	n, err := ParseUcharHex(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// optTwipsAttr parses an optional twips-or-measure attribute.
func optTwipsAttr(node *xmlnode.Node, key string) (*TwipsMeasure, error) {
	v, ok := node.Attribute(key)
	if !ok {
		return nil, nil
	}
	m, err := ParseTwipsMeasure(v)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// optSignedTwipsAttr parses an optional signed twips-or-measure attribute.
func optSignedTwipsAttr(node *xmlnode.Node, key string) (*SignedTwipsMeasure, error) {
	v, ok := node.Attribute(key)
	if !ok {
		return nil, nil
	}
	m, err := ParseSignedTwipsMeasure(v)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// TrackChange is a revision annotation: who changed it, when, and the
// revision id.
type TrackChange struct {
	Author string
	Date   *string
	ID     int64
}

func parseTrackChange(node *xmlnode.Node) (TrackChange, error) {
	author, err := requireAttr(node, "w:author", "author")
	if err != nil {
		return TrackChange{}, err
	}
	idStr, err := requireAttr(node, "w:id", "id")
	if err != nil {
		return TrackChange{}, err
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return TrackChange{}, &PatternError{Value: idStr, Pattern: "-?[0-9]+"}
	}
	return TrackChange{
		Author: author,
		Date:   optStringAttr(node, "w:date"),
		ID:     id,
	}, nil
}

// Markup carries the annotation id of a markup element.
type Markup struct {
	ID int64
}

func parseMarkup(node *xmlnode.Node) (Markup, error) {
	idStr, err := requireAttr(node, "w:id", "id")
	if err != nil {
		return Markup{}, err
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return Markup{}, &PatternError{Value: idStr, Pattern: "-?[0-9]+"}
	}
	return Markup{ID: id}, nil
}

// MarkupRange is a markup annotation that may be displaced by custom
// XML markup.
type MarkupRange struct {
	Markup
	DisplacedByCustomXML *DisplacedByCustomXML
}

func parseMarkupRange(node *xmlnode.Node) (MarkupRange, error) {
	markup, err := parseMarkup(node)
	if err != nil {
		return MarkupRange{}, err
	}
	mr := MarkupRange{Markup: markup}
	if v, ok := node.Attribute("w:displacedByCustomXml"); ok {
		d, err := ParseDisplacedByCustomXML(v)
		if err != nil {
			return MarkupRange{}, err
		}
		mr.DisplacedByCustomXML = &d
	}
	return mr, nil
}

// Bookmark is a named range anchor, optionally restricted to a column
// range inside a table.
type Bookmark struct {
	MarkupRange
	Name     string
	ColFirst *int64
	ColLast  *int64
}

func parseBookmark(node *xmlnode.Node) (Bookmark, error) {
	mr, err := parseMarkupRange(node)
	if err != nil {
		return Bookmark{}, err
	}
	name, err := requireAttr(node, "w:name", "name")
	if err != nil {
		return Bookmark{}, err
	}
	colFirst, err := optDecimalAttr(node, "w:colFirst")
	if err != nil {
		return Bookmark{}, err
	}
	colLast, err := optDecimalAttr(node, "w:colLast")
	if err != nil {
		return Bookmark{}, err
	}
	return Bookmark{MarkupRange: mr, Name: name, ColFirst: colFirst, ColLast: colLast}, nil
}

// MoveBookmark is a bookmark produced by a tracked move, carrying the
// author and date of the move.
type MoveBookmark struct {
	Bookmark
	Author string
	Date   string
}

func parseMoveBookmark(node *xmlnode.Node) (MoveBookmark, error) {
	bookmark, err := parseBookmark(node)
	if err != nil {
		return MoveBookmark{}, err
	}
	author, err := requireAttr(node, "w:author", "author")
	if err != nil {
		return MoveBookmark{}, err
	}
	date, err := requireAttr(node, "w:date", "date")
	if err != nil {
		return MoveBookmark{}, err
	}
	return MoveBookmark{Bookmark: bookmark, Author: author, Date: date}, nil
}

// Rel is a reference into the part's relationships file. The id stays
// opaque; resolving it is the container's job.
type Rel struct {
	RelationshipID string
}

func parseRel(node *xmlnode.Node) (Rel, error) {
	id, err := requireAttr(node, "r:id", "id")
	if err != nil {
		return Rel{}, err
	}
	return Rel{RelationshipID: id}, nil
}

func (Rel) isParagraphContent() {}
func (Rel) isRunInnerContent() {}

// Language identifies the languages of a run. It never fails to parse;
// unknown attributes are ignored.
type Language struct {
	Value    *string
	EastAsia *string
	Bidi     *string
}

func parseLanguage(node *xmlnode.Node) Language {
	return Language{
		Value:    optStringAttr(node, "w:val"),
		EastAsia: optStringAttr(node, "w:eastAsia"),
		Bidi:     optStringAttr(node, "w:bidi"),
	}
}

// UpdateWith right-biases every field of the language set.
func (l Language) UpdateWith(other Language) Language {
	return Language{
		Value:    pickOpt(l.Value, other.Value),
		EastAsia: pickOpt(l.EastAsia, other.EastAsia),
		Bidi:     pickOpt(l.Bidi, other.Bidi),
	}
}
