// Package wml builds typed document models from WordprocessingML XML.
//
// The package decodes the three main story parts of a DOCX package:
// the main document (w:document), the settings part (w:settings), and
// the footnotes or endnotes part (w:footnotes / w:endnotes). Input is
// a prefix-preserving element tree produced by the xmlnode subpackage;
// output is a validated typed model.
//
// # Structure Organization
//
// The package is organized into logical files based on element types:
//
//   - document.go: Document, Body, Background, and the exported entry points
//   - paragraph.go: Paragraph, Hyperlink, SimpleField, and the paragraph content choice
//   - run.go: Run and everything that can appear inside one (text, breaks, fields, ruby)
//   - runprops.go / paraprops.go: the run and paragraph property bags
//   - table.go: Table, TableRow, TableCell, and their property bags
//   - sectpr.go: section geometry (page size, margins, columns, headers and footers)
//   - sdt.go: structured document tags and their control flavors
//   - drawing.go: inline and anchored DrawingML containers
//   - settings.go: the document settings part
//   - footnotes.go: the footnotes and endnotes parts
//   - simpletypes.go / enums.go: the measurement and enumeration grammars
//
// # Key Concepts
//
// BlockContent: elements that can appear at body level or inside a
// table cell (paragraphs, tables, structured document tags).
//
// ParagraphContent: elements that can appear inside a paragraph
// (runs, hyperlinks, fields, bookmark and revision markers).
//
// Choice membership is checked by name predicates; parse functions for
// a choice return a sentinel recognizable via IsNotGroupMember when
// handed an element outside the choice, which callers use to skip
// extension elements leniently.
//
// Property bags merge with UpdateWith: the argument wins field by
// field, which is how style-derived formatting cascades into direct
// formatting.
//
// # XML Namespaces
//
// WordprocessingML uses several namespaces:
//   - w: (word processing) - main WordprocessingML namespace
//   - r: (relationships) - relationship references
//   - wp: (drawing) - DrawingML wordprocessing containers
//
// Names keep their prefixes in the node tree; matching is done on the
// local name.
package wml
