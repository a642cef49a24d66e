package wml

import (
	"errors"
	"fmt"
)

// MissingAttributeError reports a required XML attribute that was absent.
type MissingAttributeError struct {
	Node string
	Attr string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("element '%s' is missing required attribute '%s'", e.Node, e.Attr)
}

// NewMissingAttributeError creates a new missing-attribute error
func NewMissingAttributeError(node, attr string) error {
	return &MissingAttributeError{Node: node, Attr: attr}
}

// MissingChildError reports a required child element that was absent.
type MissingChildError struct {
	Node  string
	Child string
}

func (e *MissingChildError) Error() string {
	return fmt.Sprintf("element '%s' is missing required child '%s'", e.Node, e.Child)
}

// NewMissingChildError creates a new missing-child error
func NewMissingChildError(node, child string) error {
	return &MissingChildError{Node: node, Child: child}
}

// NotGroupMemberError reports a node dispatched through a choice that
// does not recognize it. It is a sentinel: list builders convert it to
// a skip instead of failing.
type NotGroupMemberError struct {
	Node  string
	Group string
}

func (e *NotGroupMemberError) Error() string {
	return fmt.Sprintf("element '%s' is not a member of group '%s'", e.Node, e.Group)
}

// NewNotGroupMemberError creates a new not-group-member error
func NewNotGroupMemberError(node, group string) error {
	return &NotGroupMemberError{Node: node, Group: group}
}

// Unbounded marks a maxOccurs with no upper limit in LimitViolationError.
const Unbounded = -1

// LimitViolationError reports a child count outside [minOccurs, maxOccurs].
type LimitViolationError struct {
	Node      string
	Violator  string
	MinOccurs int
	MaxOccurs int // Unbounded when the schema sets no upper limit
	Occurs    int
}

func (e *LimitViolationError) Error() string {
	max := "unbounded"
	if e.MaxOccurs != Unbounded {
		max = fmt.Sprintf("%d", e.MaxOccurs)
	}
	return fmt.Sprintf(
		"element '%s' has %d occurrences of '%s', outside the allowed range [%d, %s]",
		e.Node, e.Occurs, e.Violator, e.MinOccurs, max,
	)
}

// NewLimitViolationError creates a new limit-violation error
func NewLimitViolationError(node, violator string, min, max, occurs int) error {
	return &LimitViolationError{Node: node, Violator: violator, MinOccurs: min, MaxOccurs: max, Occurs: occurs}
}

// InvalidXMLError reports a malformed tree handed in by the upstream
// tokenizer (wrong root element, no root at all).
type InvalidXMLError struct {
	Message string
}

func (e *InvalidXMLError) Error() string {
	return fmt.Sprintf("invalid xml: %s", e.Message)
}

// NewInvalidXMLError creates a new invalid-xml error
func NewInvalidXMLError(message string) error {
	return &InvalidXMLError{Message: message}
}

// ParseBoolError reports an on/off value outside {true, false, 1, 0}.
type ParseBoolError struct {
	Value string
}

func (e *ParseBoolError) Error() string {
	return fmt.Sprintf("value '%s' is not a valid xml boolean", e.Value)
}

// ParseEnumError reports a string that matched no variant of a closed
// enumeration.
type ParseEnumError struct {
	Enum  string
	Value string
}

func (e *ParseEnumError) Error() string {
	return fmt.Sprintf("value '%s' does not match any variant of %s", e.Value, e.Enum)
}

// PatternError reports a string that failed its regex restriction
// (measures, percentages, text scale).
type PatternError struct {
	Value   string
	Pattern string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("value '%s' does not match pattern '%s'", e.Value, e.Pattern)
}

// ParseHexColorError reports a hex color that was not "auto" or six hex
// digits.
type ParseHexColorError struct {
	Value string
}

func (e *ParseHexColorError) Error() string {
	return fmt.Sprintf("value '%s' is not 'auto' or a six-digit hex color", e.Value)
}

// IsMissingAttribute checks if an error is a missing-attribute error
func IsMissingAttribute(err error) bool {
	var target *MissingAttributeError
	return errors.As(err, &target)
}

// IsMissingChild checks if an error is a missing-child error
func IsMissingChild(err error) bool {
	var target *MissingChildError
	return errors.As(err, &target)
}

// IsNotGroupMember checks if an error is the not-group-member sentinel
func IsNotGroupMember(err error) bool {
	var target *NotGroupMemberError
	return errors.As(err, &target)
}

// IsLimitViolation checks if an error is a limit-violation error
func IsLimitViolation(err error) bool {
	var target *LimitViolationError
	return errors.As(err, &target)
}

// IsInvalidXML checks if an error is an invalid-xml error
func IsInvalidXML(err error) bool {
	var target *InvalidXMLError
	return errors.As(err, &target)
}

// IsParseBool checks if an error is an xml boolean parse error
func IsParseBool(err error) bool {
	var target *ParseBoolError
	return errors.As(err, &target)
}

// IsParseEnum checks if an error is an enumeration parse error
func IsParseEnum(err error) bool {
	var target *ParseEnumError
	return errors.As(err, &target)
}

// IsPattern checks if an error is a pattern-restriction error
func IsPattern(err error) bool {
	var target *PatternError
	return errors.As(err, &target)
}

// IsParseHexColor checks if an error is a hex color parse error
func IsParseHexColor(err error) bool {
	var target *ParseHexColorError
	return errors.As(err, &target)
}
