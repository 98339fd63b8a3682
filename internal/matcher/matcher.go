package matcher

import (
	"go/token"
	"strings"
	"unicode"

	"github.com/seitarof/gen-shape/internal/parser"
	"github.com/seitarof/gen-shape/internal/resolver"
	"github.com/seitarof/gen-shape/shape"
)

const (
	directiveOneof = "oneof"
	directiveKind  = "kind"
)

// KindMatcher reads the directives of a declaration and decides which kinds
// its FromDecl accepts.
type KindMatcher interface {
	Match(decl *parser.DeclInfo) (resolver.Target, error)
}

type kindMatcherImpl struct{}

// NewKindMatcher returns default kind matcher.
func NewKindMatcher() KindMatcher {
	return &kindMatcherImpl{}
}

// directives is the classified marker set of one declaration.
type directives struct {
	oneof []parser.Marker
	kind  []parser.Marker
	bare  []shape.Kind
}

func (m *kindMatcherImpl) Match(decl *parser.DeclInfo) (resolver.Target, error) {
	d := classify(decl.Markers)

	switch {
	case len(d.oneof) > 0:
		if len(d.kind) > 0 || len(d.bare) > 0 {
			return resolver.Target{}, resolver.Errorf(resolver.CodeMissingOrAmbiguousKind, decl.Pos,
				"%s: `oneof` cannot be combined with kind directives", decl.Name)
		}
		return resolver.MultiTarget(), nil
	case len(d.kind) > 1:
		return resolver.Target{}, resolver.Errorf(resolver.CodeMissingOrAmbiguousKind, d.kind[1].Pos,
			"%s: more than one `kind(...)` directive", decl.Name)
	case len(d.kind) == 1:
		if len(d.bare) > 0 {
			return resolver.Target{}, resolver.Errorf(resolver.CodeMissingOrAmbiguousKind, decl.Pos,
				"%s: `kind(...)` cannot be combined with `Struct`, `Enum` or `Union` directives", decl.Name)
		}
		kinds, err := parseKindDirective(d.kind[0])
		if err != nil {
			return resolver.Target{}, err
		}
		return resolver.SingleTarget(kinds), nil
	case len(d.bare) == 1:
		return resolver.SingleTarget(resolver.NewComboKind(d.bare[0])), nil
	default:
		return resolver.Target{}, resolver.Errorf(resolver.CodeMissingOrAmbiguousKind, decl.Pos,
			"%s: want exactly one of `//shape:Struct`, `//shape:Enum`, `//shape:Union`, got %d", decl.Name, len(d.bare))
	}
}

func classify(markers []parser.Marker) directives {
	var d directives
	for _, mk := range markers {
		text := strings.TrimSpace(mk.Text)
		if k, err := shape.ParseKind(text); err == nil {
			d.bare = append(d.bare, k)
			continue
		}
		switch directiveName(text) {
		case directiveOneof:
			if text == directiveOneof {
				d.oneof = append(d.oneof, mk)
			}
		case directiveKind:
			d.kind = append(d.kind, mk)
		}
	}
	return d
}

// directiveName returns the leading identifier of a directive.
func directiveName(text string) string {
	end := strings.IndexFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	if end < 0 {
		return text
	}
	return text[:end]
}

// parseKindDirective parses `kind(Kind | ...)`.
func parseKindDirective(mk parser.Marker) (resolver.ComboKind, error) {
	text := mk.Text
	lead := len(text) - len(strings.TrimLeftFunc(text, unicode.IsSpace))
	rest := text[lead+len(directiveKind):]
	gap := len(rest) - len(strings.TrimLeftFunc(rest, unicode.IsSpace))

	at := shiftColumn(mk.Pos, lead+len(directiveKind)+gap)
	if !strings.HasPrefix(rest[gap:], "(") {
		return resolver.ComboKind{}, resolver.Errorf(resolver.CodeParse, at, "expected `(` after `kind`")
	}
	body := strings.TrimRightFunc(rest[gap+1:], unicode.IsSpace)
	inner, ok := strings.CutSuffix(body, ")")
	if !ok {
		return resolver.ComboKind{}, resolver.Errorf(resolver.CodeParse, shiftColumn(at, 1+len(body)), "expected `)`")
	}
	return resolver.ParseComboKind(inner, shiftColumn(at, 1))
}

func shiftColumn(pos token.Position, n int) token.Position {
	pos.Column += n
	if pos.Offset >= 0 {
		pos.Offset += n
	}
	return pos
}
