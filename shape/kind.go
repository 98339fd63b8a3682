package shape

import "fmt"

// Kind is the shape tag of a declaration.
type Kind int

const (
	Struct Kind = iota + 1
	Enum
	Union
)

// Kinds returns every kind in canonical order.
func Kinds() []Kind {
	return []Kind{Struct, Enum, Union}
}

// ParseKind accepts exactly the canonical spellings "Struct", "Enum" and "Union".
func ParseKind(text string) (Kind, error) {
	switch text {
	case "Struct":
		return Struct, nil
	case "Enum":
		return Enum, nil
	case "Union":
		return Union, nil
	default:
		return 0, fmt.Errorf("unknown kind %q", text)
	}
}

func (k Kind) String() string {
	switch k {
	case Struct:
		return "Struct"
	case Enum:
		return "Enum"
	case Union:
		return "Union"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the three kinds.
func (k Kind) Valid() bool {
	return k == Struct || k == Enum || k == Union
}

// TokenField returns the name of the keyword token field of k's payload.
func (k Kind) TokenField() string {
	switch k {
	case Struct:
		return "StructToken"
	case Enum:
		return "EnumToken"
	case Union:
		return "UnionToken"
	default:
		panic(fmt.Sprintf("shape: invalid kind %d", int(k)))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
