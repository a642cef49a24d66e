package wml

import (
	"strconv"

	"github.com/benjaminschreck/go-wordml/pkg/wml/xmlnode"
)

// DrawingContent is one member of the drawing choice: a floating
// anchor or an inline object.
type DrawingContent interface {
	isDrawingContent()
}

// Drawing is a w:drawing holding DrawingML objects.
type Drawing struct {
	Contents []DrawingContent
}

func (Drawing) isRunInnerContent() {}

func parseDrawing(node *xmlnode.Node) (Drawing, error) {
	var d Drawing
	for _, child := range node.Children {
		switch child.LocalName() {
		case "inline":
			inline, err := parseInline(child)
			if err != nil {
				return Drawing{}, err
			}
			d.Contents = append(d.Contents, inline)
		case "anchor":
			anchor, err := parseAnchoredDrawing(child)
			if err != nil {
				return Drawing{}, err
			}
			d.Contents = append(d.Contents, anchor)
		}
	}
	return d, nil
}

func requireLongAttr(node *xmlnode.Node, key string) (int64, error) {
	v, err := requireAttr(node, key, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, &PatternError{Value: v, Pattern: "-?[0-9]+"}
	}
	return n, nil
}

func requireUnsignedAttr(node *xmlnode.Node, key string) (uint64, error) {
	v, err := requireAttr(node, key, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, &PatternError{Value: v, Pattern: "[0-9]+"}
	}
	return n, nil
}

func requireBoolAttr(node *xmlnode.Node, key string) (bool, error) {
	v, err := requireAttr(node, key, key)
	if err != nil {
		return false, err
	}
	return ParseBool(v)
}

// Point2D is a coordinate pair in EMUs.
type Point2D struct {
	X int64
	Y int64
}

func parsePoint2D(node *xmlnode.Node) (Point2D, error) {
	x, err := requireLongAttr(node, "x")
	if err != nil {
		return Point2D{}, err
	}
	y, err := requireLongAttr(node, "y")
	if err != nil {
		return Point2D{}, err
	}
	return Point2D{X: x, Y: y}, nil
}

// PositiveSize2D is an object extent in EMUs.
type PositiveSize2D struct {
	CX int64
	CY int64
}

func parsePositiveSize2D(node *xmlnode.Node) (PositiveSize2D, error) {
	cx, err := requireLongAttr(node, "cx")
	if err != nil {
		return PositiveSize2D{}, err
	}
	cy, err := requireLongAttr(node, "cy")
	if err != nil {
		return PositiveSize2D{}, err
	}
	return PositiveSize2D{CX: cx, CY: cy}, nil
}

// EffectExtent is the extra extent added by rendering effects.
type EffectExtent struct {
	Left   int64
	Top    int64
	Right  int64
	Bottom int64
}

func parseEffectExtent(node *xmlnode.Node) (EffectExtent, error) {
	l, err := requireLongAttr(node, "l")
	if err != nil {
		return EffectExtent{}, err
	}
	t, err := requireLongAttr(node, "t")
	if err != nil {
		return EffectExtent{}, err
	}
	r, err := requireLongAttr(node, "r")
	if err != nil {
		return EffectExtent{}, err
	}
	b, err := requireLongAttr(node, "b")
	if err != nil {
		return EffectExtent{}, err
	}
	return EffectExtent{Left: l, Top: t, Right: r, Bottom: b}, nil
}

// NonVisualDrawingProps identifies a drawing object to the application.
type NonVisualDrawingProps struct {
	ID          uint64
	Name        string
	Description *string
	Hidden      *bool
	Title       *string
}

func parseNonVisualDrawingProps(node *xmlnode.Node) (NonVisualDrawingProps, error) {
	id, err := requireUnsignedAttr(node, "id")
	if err != nil {
		return NonVisualDrawingProps{}, err
	}
	name, err := requireAttr(node, "name", "name")
	if err != nil {
		return NonVisualDrawingProps{}, err
	}
	props := NonVisualDrawingProps{
		ID:          id,
		Name:        name,
		Description: optStringAttr(node, "descr"),
		Title:       optStringAttr(node, "title"),
	}
	if props.Hidden, err = optBoolAttr(node, "hidden"); err != nil {
		return NonVisualDrawingProps{}, err
	}
	return props, nil
}

// NonVisualGraphicFrameProperties carries the frame locks of a drawing
// as a raw subtree.
type NonVisualGraphicFrameProperties struct {
	Raw *xmlnode.Node
}

// GraphicalObjectData is the payload of a graphic, dispatched by uri.
// The subtree stays raw; picture and chart decoding is the caller's
// job.
type GraphicalObjectData struct {
	URI      string
	Children []*xmlnode.Node
}

// GraphicalObject is the a:graphic wrapper.
type GraphicalObject struct {
	Data GraphicalObjectData
}

func parseGraphicalObject(node *xmlnode.Node) (GraphicalObject, error) {
	data := node.FirstChild("graphicData")
	if data == nil {
		return GraphicalObject{}, NewMissingChildError(node.Name, "graphicData")
	}
	uri, err := requireAttr(data, "uri", "uri")
	if err != nil {
		return GraphicalObject{}, err
	}
	return GraphicalObject{Data: GraphicalObjectData{URI: uri, Children: data.Children}}, nil
}

// PositionH places an anchored drawing horizontally, by alignment or
// offset.
type PositionH struct {
	RelativeFrom RelFromH
	Align        *AlignH
	Offset       *int64
}

func parsePositionH(node *xmlnode.Node) (PositionH, error) {
	relStr, err := requireAttr(node, "relativeFrom", "relativeFrom")
	if err != nil {
		return PositionH{}, err
	}
	rel, err := ParseRelFromH(relStr)
	if err != nil {
		return PositionH{}, err
	}
	pos := PositionH{RelativeFrom: rel}
	for _, child := range node.Children {
		switch child.LocalName() {
		case "align":
			a, err := ParseAlignH(child.Text)
			if err != nil {
				return PositionH{}, err
			}
			pos.Align = &a
		case "posOffset":
			n, err := strconv.ParseInt(child.Text, 10, 64)
			if err != nil {
				return PositionH{}, &PatternError{Value: child.Text, Pattern: "-?[0-9]+"}
			}
			pos.Offset = &n
		}
	}
	return pos, nil
}

// PositionV places an anchored drawing vertically, by alignment or
// offset.
type PositionV struct {
	RelativeFrom RelFromV
	Align        *AlignV
	Offset       *int64
}

func parsePositionV(node *xmlnode.Node) (PositionV, error) {
	relStr, err := requireAttr(node, "relativeFrom", "relativeFrom")
	if err != nil {
		return PositionV{}, err
	}
	rel, err := ParseRelFromV(relStr)
	if err != nil {
		return PositionV{}, err
	}
	pos := PositionV{RelativeFrom: rel}
	for _, child := range node.Children {
		switch child.LocalName() {
		case "align":
			a, err := ParseAlignV(child.Text)
			if err != nil {
				return PositionV{}, err
			}
			pos.Align = &a
		case "posOffset":
			n, err := strconv.ParseInt(child.Text, 10, 64)
			if err != nil {
				return PositionV{}, &PatternError{Value: child.Text, Pattern: "-?[0-9]+"}
			}
			pos.Offset = &n
		}
	}
	return pos, nil
}

// WrapType is the text wrapping choice of an anchored drawing.
type WrapType interface {
	isWrapType()
}

// WrapNone lets text flow behind or in front of the drawing.
type WrapNone struct{}

// WrapPath is the polygon text wraps around. At least two lineTo
// points are required to close a polygon with the start point.
type WrapPath struct {
	Edited *bool
	Start  Point2D
	LineTo []Point2D
}

func parseWrapPath(node *xmlnode.Node) (WrapPath, error) {
	var wp WrapPath
	var err error
	if wp.Edited, err = optBoolAttr(node, "edited"); err != nil {
		return WrapPath{}, err
	}
	start := node.FirstChild("start")
	if start == nil {
		return WrapPath{}, NewMissingChildError(node.Name, "start")
	}
	if wp.Start, err = parsePoint2D(start); err != nil {
		return WrapPath{}, err
	}
	for _, child := range node.Children {
		if child.LocalName() != "lineTo" {
			continue
		}
		p, err := parsePoint2D(child)
		if err != nil {
			return WrapPath{}, err
		}
		wp.LineTo = append(wp.LineTo, p)
	}
	if len(wp.LineTo) < 2 {
		return WrapPath{}, NewLimitViolationError(node.Name, "lineTo", 2, Unbounded, len(wp.LineTo))
	}
	return wp, nil
}

// WrapSquare wraps text around the drawing's bounding box.
type WrapSquare struct {
	WrapText     WrapText
	DistT        *uint64
	DistB        *uint64
	DistL        *uint64
	DistR        *uint64
	EffectExtent *EffectExtent
}

// WrapTight wraps text tightly around the wrap polygon.
type WrapTight struct {
	WrapText WrapText
	DistL    *uint64
	DistR    *uint64
	Polygon  WrapPath
}

// WrapThrough wraps text through open regions of the wrap polygon.
type WrapThrough struct {
	WrapText WrapText
	DistL    *uint64
	DistR    *uint64
	Polygon  WrapPath
}

// WrapTopAndBottom reserves the full line extent for the drawing.
type WrapTopAndBottom struct {
	DistT        *uint64
	DistB        *uint64
	EffectExtent *EffectExtent
}

func (WrapNone) isWrapType()         {}
func (WrapSquare) isWrapType()       {}
func (WrapTight) isWrapType()        {}
func (WrapThrough) isWrapType()      {}
func (WrapTopAndBottom) isWrapType() {}

func optDistAttr(node *xmlnode.Node, key string) (*uint64, error) {
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

func parseWrapSquare(node *xmlnode.Node) (WrapSquare, error) {
	wrapStr, err := requireAttr(node, "wrapText", "wrapText")
	if err != nil {
		return WrapSquare{}, err
	}
	wrapText, err := ParseWrapText(wrapStr)
	if err != nil {
		return WrapSquare{}, err
	}
	ws := WrapSquare{WrapText: wrapText}
	if ws.DistT, err = optDistAttr(node, "distT"); err != nil {
		return WrapSquare{}, err
	}
	if ws.DistB, err = optDistAttr(node, "distB"); err != nil {
		return WrapSquare{}, err
	}
	if ws.DistL, err = optDistAttr(node, "distL"); err != nil {
		return WrapSquare{}, err
	}
	if ws.DistR, err = optDistAttr(node, "distR"); err != nil {
		return WrapSquare{}, err
	}
	if ee := node.FirstChild("effectExtent"); ee != nil {
		extent, err := parseEffectExtent(ee)
		if err != nil {
			return WrapSquare{}, err
		}
		ws.EffectExtent = &extent
	}
	return ws, nil
}

func parseWrapPolygonal(node *xmlnode.Node) (WrapText, *uint64, *uint64, WrapPath, error) {
	wrapStr, err := requireAttr(node, "wrapText", "wrapText")
	if err != nil {
		return "", nil, nil, WrapPath{}, err
	}
	wrapText, err := ParseWrapText(wrapStr)
	if err != nil {
		return "", nil, nil, WrapPath{}, err
	}
	distL, err := optDistAttr(node, "distL")
	if err != nil {
		return "", nil, nil, WrapPath{}, err
	}
	distR, err := optDistAttr(node, "distR")
	if err != nil {
		return "", nil, nil, WrapPath{}, err
	}
	polygonNode := node.FirstChild("wrapPolygon")
	if polygonNode == nil {
		return "", nil, nil, WrapPath{}, NewMissingChildError(node.Name, "wrapPolygon")
	}
	polygon, err := parseWrapPath(polygonNode)
	if err != nil {
		return "", nil, nil, WrapPath{}, err
	}
	return wrapText, distL, distR, polygon, nil
}

func parseWrapTopAndBottom(node *xmlnode.Node) (WrapTopAndBottom, error) {
	var wtb WrapTopAndBottom
	var err error
	if wtb.DistT, err = optDistAttr(node, "distT"); err != nil {
		return WrapTopAndBottom{}, err
	}
	if wtb.DistB, err = optDistAttr(node, "distB"); err != nil {
		return WrapTopAndBottom{}, err
	}
	if ee := node.FirstChild("effectExtent"); ee != nil {
		extent, err := parseEffectExtent(ee)
		if err != nil {
			return WrapTopAndBottom{}, err
		}
		wtb.EffectExtent = &extent
	}
	return wtb, nil
}

// Inline is a drawing placed in the text flow.
type Inline struct {
	DistT *uint64
	DistB *uint64
	DistL *uint64
	DistR *uint64

	Extent          PositiveSize2D
	EffectExtent    *EffectExtent
	DocProperties   NonVisualDrawingProps
	FrameProperties *NonVisualGraphicFrameProperties
	Graphic         GraphicalObject
}

func (Inline) isDrawingContent() {}

func parseInline(node *xmlnode.Node) (Inline, error) {
	var in Inline
	var err error
	if in.DistT, err = optDistAttr(node, "distT"); err != nil {
		return Inline{}, err
	}
	if in.DistB, err = optDistAttr(node, "distB"); err != nil {
		return Inline{}, err
	}
	if in.DistL, err = optDistAttr(node, "distL"); err != nil {
		return Inline{}, err
	}
	if in.DistR, err = optDistAttr(node, "distR"); err != nil {
		return Inline{}, err
	}
	extent := node.FirstChild("extent")
	if extent == nil {
		return Inline{}, NewMissingChildError(node.Name, "extent")
	}
	if in.Extent, err = parsePositiveSize2D(extent); err != nil {
		return Inline{}, err
	}
	if ee := node.FirstChild("effectExtent"); ee != nil {
		parsed, err := parseEffectExtent(ee)
		if err != nil {
			return Inline{}, err
		}
		in.EffectExtent = &parsed
	}
	docPr := node.FirstChild("docPr")
	if docPr == nil {
		return Inline{}, NewMissingChildError(node.Name, "docPr")
	}
	if in.DocProperties, err = parseNonVisualDrawingProps(docPr); err != nil {
		return Inline{}, err
	}
	if framePr := node.FirstChild("cNvGraphicFramePr"); framePr != nil {
		in.FrameProperties = &NonVisualGraphicFrameProperties{Raw: framePr}
	}
	graphic := node.FirstChild("graphic")
	if graphic == nil {
		return Inline{}, NewMissingChildError(node.Name, "graphic")
	}
	if in.Graphic, err = parseGraphicalObject(graphic); err != nil {
		return Inline{}, err
	}
	return in, nil
}

// AnchoredDrawing is a drawing positioned relative to page, margin, or
// text anchors. Exactly one wrap mode applies.
type AnchoredDrawing struct {
	DistT *uint64
	DistB *uint64
	DistL *uint64
	DistR *uint64

	SimplePosAttr  *bool
	RelativeHeight uint64
	BehindDoc      bool
	Locked         bool
	LayoutInCell   bool
	Hidden         *bool
	AllowOverlap   bool

	SimplePos       *Point2D
	PositionH       PositionH
	PositionV       PositionV
	Extent          PositiveSize2D
	EffectExtent    *EffectExtent
	Wrap            WrapType
	DocProperties   NonVisualDrawingProps
	FrameProperties *NonVisualGraphicFrameProperties
	Graphic         GraphicalObject
}

func (AnchoredDrawing) isDrawingContent() {}

func parseAnchoredDrawing(node *xmlnode.Node) (AnchoredDrawing, error) {
	var a AnchoredDrawing
	var err error
	if a.DistT, err = optDistAttr(node, "distT"); err != nil {
		return AnchoredDrawing{}, err
	}
	if a.DistB, err = optDistAttr(node, "distB"); err != nil {
		return AnchoredDrawing{}, err
	}
	if a.DistL, err = optDistAttr(node, "distL"); err != nil {
		return AnchoredDrawing{}, err
	}
	if a.DistR, err = optDistAttr(node, "distR"); err != nil {
		return AnchoredDrawing{}, err
	}
	if a.SimplePosAttr, err = optBoolAttr(node, "simplePos"); err != nil {
		return AnchoredDrawing{}, err
	}
	if a.RelativeHeight, err = requireUnsignedAttr(node, "relativeHeight"); err != nil {
		return AnchoredDrawing{}, err
	}
	if a.BehindDoc, err = requireBoolAttr(node, "behindDoc"); err != nil {
		return AnchoredDrawing{}, err
	}
	if a.Locked, err = requireBoolAttr(node, "locked"); err != nil {
		return AnchoredDrawing{}, err
	}
	if a.LayoutInCell, err = requireBoolAttr(node, "layoutInCell"); err != nil {
		return AnchoredDrawing{}, err
	}
	if a.Hidden, err = optBoolAttr(node, "hidden"); err != nil {
		return AnchoredDrawing{}, err
	}
	if a.AllowOverlap, err = requireBoolAttr(node, "allowOverlap"); err != nil {
		return AnchoredDrawing{}, err
	}

	var sawPositionH, sawPositionV, sawExtent, sawDocPr, sawGraphic bool
	for _, child := range node.Children {
		switch child.LocalName() {
		case "simplePos":
			p, err := parsePoint2D(child)
			if err != nil {
				return AnchoredDrawing{}, err
			}
			a.SimplePos = &p
		case "positionH":
			if a.PositionH, err = parsePositionH(child); err != nil {
				return AnchoredDrawing{}, err
			}
			sawPositionH = true
		case "positionV":
			if a.PositionV, err = parsePositionV(child); err != nil {
				return AnchoredDrawing{}, err
			}
			sawPositionV = true
		case "extent":
			if a.Extent, err = parsePositiveSize2D(child); err != nil {
				return AnchoredDrawing{}, err
			}
			sawExtent = true
		case "effectExtent":
			extent, err := parseEffectExtent(child)
			if err != nil {
				return AnchoredDrawing{}, err
			}
			a.EffectExtent = &extent
		case "wrapNone":
			a.Wrap = WrapNone{}
		case "wrapSquare":
			if a.Wrap, err = parseWrapSquare(child); err != nil {
				return AnchoredDrawing{}, err
			}
		case "wrapTight":
			wrapText, distL, distR, polygon, err := parseWrapPolygonal(child)
			if err != nil {
				return AnchoredDrawing{}, err
			}
			a.Wrap = WrapTight{WrapText: wrapText, DistL: distL, DistR: distR, Polygon: polygon}
		case "wrapThrough":
			wrapText, distL, distR, polygon, err := parseWrapPolygonal(child)
			if err != nil {
				return AnchoredDrawing{}, err
			}
			a.Wrap = WrapThrough{WrapText: wrapText, DistL: distL, DistR: distR, Polygon: polygon}
		case "wrapTopAndBottom":
			if a.Wrap, err = parseWrapTopAndBottom(child); err != nil {
				return AnchoredDrawing{}, err
			}
		case "docPr":
			if a.DocProperties, err = parseNonVisualDrawingProps(child); err != nil {
				return AnchoredDrawing{}, err
			}
			sawDocPr = true
		case "cNvGraphicFramePr":
			a.FrameProperties = &NonVisualGraphicFrameProperties{Raw: child}
		case "graphic":
			if a.Graphic, err = parseGraphicalObject(child); err != nil {
				return AnchoredDrawing{}, err
			}
			sawGraphic = true
		}
	}
	if a.SimplePos == nil {
		return AnchoredDrawing{}, NewMissingChildError(node.Name, "simplePos")
	}
	if !sawPositionH {
		return AnchoredDrawing{}, NewMissingChildError(node.Name, "positionH")
	}
	if !sawPositionV {
		return AnchoredDrawing{}, NewMissingChildError(node.Name, "positionV")
	}
	if !sawExtent {
		return AnchoredDrawing{}, NewMissingChildError(node.Name, "extent")
	}
	if !sawDocPr {
		return AnchoredDrawing{}, NewMissingChildError(node.Name, "docPr")
	}
	if !sawGraphic {
		return AnchoredDrawing{}, NewMissingChildError(node.Name, "graphic")
	}
	if a.Wrap == nil {
		return AnchoredDrawing{}, NewMissingChildError(node.Name, "wrapNone")
	}
	return a, nil
}

// TextboxContent is the block content of a drawing text box. A text
// box always holds at least one block.
type TextboxContent struct {
	Contents []BlockContent
}

func parseTextboxContent(node *xmlnode.Node) (TextboxContent, error) {
	var tc TextboxContent
	for _, child := range node.Children {
		content, err := parseBlockContent(child)
		if err != nil {
			if IsNotGroupMember(err) {
				continue
			}
			return TextboxContent{}, err
		}
		tc.Contents = append(tc.Contents, content)
	}
	if len(tc.Contents) == 0 {
		return TextboxContent{}, NewLimitViolationError(node.Name, "p", 1, Unbounded, 0)
	}
	return tc, nil
}
