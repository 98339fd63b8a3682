package resolver

import (
	"fmt"
	"go/token"
)

// Code classifies a build-time diagnostic.
type Code int

const (
	CodeParse Code = iota + 1
	CodeUnsupportedField
	CodeShapeMismatch
	CodeUnitVariantUnsupported
	CodeTooManyFields
	CodeEmptyEnum
	CodeUnknownVariantName
	CodeMissingOrAmbiguousKind
)

func (c Code) String() string {
	switch c {
	case CodeParse:
		return "parse-error"
	case CodeUnsupportedField:
		return "unsupported-field"
	case CodeShapeMismatch:
		return "shape-mismatch"
	case CodeUnitVariantUnsupported:
		return "unit-variant"
	case CodeTooManyFields:
		return "too-many-fields"
	case CodeEmptyEnum:
		return "empty-oneof"
	case CodeUnknownVariantName:
		return "unknown-variant"
	case CodeMissingOrAmbiguousKind:
		return "missing-or-ambiguous-kind"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// Error is a diagnostic anchored to the token that caused it.
type Error struct {
	Code Code
	Pos  token.Position
	Msg  string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Errorf builds an Error.
func Errorf(code Code, pos token.Position, format string, args ...any) *Error {
	return &Error{Code: code, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// shift moves pos n columns to the right on the same line.
func shift(pos token.Position, n int) token.Position {
	pos.Column += n
	if pos.Offset >= 0 {
		pos.Offset += n
	}
	return pos
}
