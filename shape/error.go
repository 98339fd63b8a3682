package shape

import (
	"errors"
	"fmt"
)

var (
	errNilDecl = errors.New("nil declaration")
	errNoData  = errors.New("declaration has no data")
)

// UnsupportedError is returned by a generated FromDecl when the declaration's
// tag is not one the target type accepts.
type UnsupportedError struct {
	Kind Kind
	Span Span
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: unsupported declaration kind %s", e.Span, e.Kind)
}

// InputError reports that a raw input could not be turned into a declaration.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return "shape: invalid input: " + e.Err.Error()
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Unsupported builds the error for a declaration payload whose tag is not
// accepted, anchored to the payload's keyword token.
func Unsupported(data Data) error {
	if data == nil {
		return &InputError{Err: errNoData}
	}
	return &UnsupportedError{Kind: data.Kind(), Span: data.KeywordSpan()}
}

// IsUnsupported reports whether err is an UnsupportedError and returns its kind.
func IsUnsupported(err error) (Kind, bool) {
	var ue *UnsupportedError
	if errors.As(err, &ue) {
		return ue.Kind, true
	}
	return 0, false
}
