package shape

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Input is any raw representation that can be turned into a declaration tree.
type Input interface {
	ToDecl() (*Decl, error)
}

// JSON is a declaration tree encoded as a JSON document.
type JSON []byte

// YAML is a declaration tree encoded as a YAML document.
type YAML []byte

func (j JSON) ToDecl() (*Decl, error) {
	var doc declDoc
	dec := json.NewDecoder(bytes.NewReader(j))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, &InputError{Err: fmt.Errorf("decode json: %w", err)}
	}
	return doc.decl()
}

func (y YAML) ToDecl() (*Decl, error) {
	var doc declDoc
	dec := yaml.NewDecoder(bytes.NewReader(y))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, &InputError{Err: fmt.Errorf("decode yaml: %w", err)}
	}
	return doc.decl()
}

// declDoc is the document form of Decl. Data is flattened into one object
// discriminated by kind.
type declDoc struct {
	Attrs    []Attribute `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Vis      Visibility  `json:"vis" yaml:"vis"`
	Ident    Ident       `json:"ident" yaml:"ident"`
	Generics Generics    `json:"generics" yaml:"generics"`
	Data     dataDoc     `json:"data" yaml:"data"`
}

type dataDoc struct {
	Kind     Kind      `json:"kind" yaml:"kind"`
	Token    Token     `json:"token" yaml:"token"`
	Fields   *Fields   `json:"fields,omitempty" yaml:"fields,omitempty"`
	Variants []Variant `json:"variants,omitempty" yaml:"variants,omitempty"`
}

func (doc *declDoc) decl() (*Decl, error) {
	data, err := doc.Data.data()
	if err != nil {
		return nil, &InputError{Err: err}
	}
	return &Decl{
		Attrs:    doc.Attrs,
		Vis:      doc.Vis,
		Ident:    doc.Ident,
		Generics: doc.Generics,
		Data:     data,
	}, nil
}

func (d *dataDoc) data() (Data, error) {
	switch d.Kind {
	case Struct:
		if d.Variants != nil {
			return nil, fmt.Errorf("struct data cannot have variants")
		}
		return &DataStruct{StructToken: d.Token, Fields: d.fields()}, nil
	case Enum:
		if d.Fields != nil {
			return nil, fmt.Errorf("enum data cannot have fields")
		}
		return &DataEnum{EnumToken: d.Token, Variants: d.Variants}, nil
	case Union:
		if d.Variants != nil {
			return nil, fmt.Errorf("union data cannot have variants")
		}
		fields := d.fields()
		if fields.Style != FieldsNamed {
			return nil, fmt.Errorf("union fields must be named, got %q", fields.Style)
		}
		return &DataUnion{UnionToken: d.Token, Fields: fields}, nil
	default:
		return nil, fmt.Errorf("missing or invalid data kind")
	}
}

func (d *dataDoc) fields() Fields {
	if d.Fields == nil {
		return Fields{Style: FieldsUnit}
	}
	return *d.Fields
}
