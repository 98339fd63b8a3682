package resolver

import (
	"go/token"
	"slices"
	"strings"
	"unicode"

	"github.com/seitarof/gen-shape/shape"
)

// ComboKind is a non-empty list of kinds written "Struct | Union". Source
// order is kept; repeats are allowed.
type ComboKind struct {
	kinds []shape.Kind
}

// NewComboKind returns a ComboKind of kinds. It panics when kinds is empty.
func NewComboKind(kinds ...shape.Kind) ComboKind {
	if len(kinds) == 0 {
		panic("resolver: empty ComboKind")
	}
	return ComboKind{kinds: slices.Clone(kinds)}
}

// ParseComboKind parses text, which starts at pos, as "Kind ( | Kind )*".
func ParseComboKind(text string, pos token.Position) (ComboKind, error) {
	var kinds []shape.Kind
	start := 0
	for {
		end := strings.IndexByte(text[start:], '|')
		last := end < 0
		if last {
			end = len(text)
		} else {
			end += start
		}

		segment := text[start:end]
		lead := len(segment) - len(strings.TrimLeftFunc(segment, unicode.IsSpace))
		word := strings.TrimSpace(segment)
		at := shift(pos, start+lead)
		switch {
		case word == "" && start == 0:
			return ComboKind{}, Errorf(CodeParse, at, "expected kind, want one of `Struct`, `Enum`, `Union`")
		case word == "":
			return ComboKind{}, Errorf(CodeParse, at, "expected kind after `|`")
		}
		k, err := shape.ParseKind(word)
		if err != nil {
			return ComboKind{}, Errorf(CodeParse, at, "unknown kind `%s`, want one of `Struct`, `Enum`, `Union`", word)
		}
		kinds = append(kinds, k)

		if last {
			break
		}
		start = end + 1
	}
	return ComboKind{kinds: kinds}, nil
}

// Kinds returns the kinds in source order.
func (c ComboKind) Kinds() []shape.Kind {
	return slices.Clone(c.kinds)
}

// Distinct returns the kinds in first-seen order without repeats.
func (c ComboKind) Distinct() []shape.Kind {
	out := make([]shape.Kind, 0, len(c.kinds))
	for _, k := range c.kinds {
		if !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	return out
}

func (c ComboKind) Len() int {
	return len(c.kinds)
}

func (c ComboKind) String() string {
	parts := make([]string, 0, len(c.kinds))
	for _, k := range c.kinds {
		parts = append(parts, k.String())
	}
	return strings.Join(parts, " | ")
}
