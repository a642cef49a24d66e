package wml

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		err       error
		predicate func(error) bool
	}{
		{NewMissingAttributeError("w:pgMar", "top"), IsMissingAttribute},
		{NewMissingChildError("w:tbl", "tblPr"), IsMissingChild},
		{NewNotGroupMemberError("w:unknown", "RunProperty"), IsNotGroupMember},
		{NewLimitViolationError("w:tabs", "tab", 1, Unbounded, 0), IsLimitViolation},
		{NewInvalidXMLError("no root element"), IsInvalidXML},
		{&ParseBoolError{Value: "maybe"}, IsParseBool},
		{&ParseEnumError{Enum: "Jc", Value: "sideways"}, IsParseEnum},
		{&PatternError{Value: "x", Pattern: "[0-9]+"}, IsPattern},
		{&ParseHexColorError{Value: "red"}, IsParseHexColor},
	}
	for _, tt := range tests {
		assert.True(t, tt.predicate(tt.err), "%v", tt.err)
	}
}

func TestPredicatesRejectOtherErrors(t *testing.T) {
	plain := errors.New("boom")
	assert.False(t, IsMissingAttribute(plain))
	assert.False(t, IsNotGroupMember(plain))
	assert.False(t, IsLimitViolation(plain))
	assert.False(t, IsMissingAttribute(NewMissingChildError("w:tbl", "tblPr")))
}

func TestPredicatesUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("decoding body: %w", NewMissingAttributeError("w:pgMar", "top"))
	assert.True(t, IsMissingAttribute(wrapped))
}

func TestLimitViolationMessage(t *testing.T) {
	err := NewLimitViolationError("w:tabs", "tab", 1, Unbounded, 0)
	assert.Contains(t, err.Error(), "unbounded")

	err = NewLimitViolationError("w:cols", "col", 0, 45, 46)
	assert.Contains(t, err.Error(), "45")

	var lv *LimitViolationError
	require.True(t, errors.As(err, &lv))
	assert.Equal(t, 46, lv.Occurs)
}
