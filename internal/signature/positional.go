package signature

import (
	"encoding/json"
	"fmt"

	"github.com/moray-shell/moray/internal/debugdoc"
	"github.com/moray-shell/moray/internal/syntax"
)

// PositionalKind discriminates the closed set of positional shapes.
type PositionalKind int

const (
	// PositionalMandatory is a required positional parameter.
	PositionalMandatory PositionalKind = iota
	// PositionalOptional is an omittable positional parameter.
	PositionalOptional
)

// PositionalType describes one positional parameter's requirement class,
// paired with its name and declared shape.
type PositionalType struct {
	kind  PositionalKind
	name  string
	shape syntax.Shape
}

// MandatoryPositional returns a required positional parameter type.
func MandatoryPositional(name string, shape syntax.Shape) PositionalType {
	return PositionalType{kind: PositionalMandatory, name: name, shape: shape}
}

// OptionalPositional returns an omittable positional parameter type.
func OptionalPositional(name string, shape syntax.Shape) PositionalType {
	return PositionalType{kind: PositionalOptional, name: name, shape: shape}
}

// MandatoryAny returns a required positional accepting any argument form.
func MandatoryAny(name string) PositionalType {
	return MandatoryPositional(name, syntax.ShapeAny)
}

// MandatoryBlock returns a required positional expecting a block.
func MandatoryBlock(name string) PositionalType {
	return MandatoryPositional(name, syntax.ShapeBlock)
}

// OptionalAny returns an omittable positional accepting any argument form.
func OptionalAny(name string) PositionalType {
	return OptionalPositional(name, syntax.ShapeAny)
}

// Kind returns the variant tag.
func (p PositionalType) Kind() PositionalKind { return p.kind }

// Name returns the parameter's identifier. Total over both variants.
func (p PositionalType) Name() string { return p.name }

// SyntaxType returns the parameter's declared shape. Total over both
// variants.
func (p PositionalType) SyntaxType() syntax.Shape { return p.shape }

// IsOptional reports whether the parameter may be omitted.
func (p PositionalType) IsOptional() bool {
	return p.kind == PositionalOptional
}

func (p PositionalType) String() string {
	switch p.kind {
	case PositionalMandatory:
		return fmt.Sprintf("Mandatory(%s, %s)", p.name, p.shape)
	case PositionalOptional:
		return fmt.Sprintf("Optional(%s, %s)", p.name, p.shape)
	default:
		return "Unknown"
	}
}

// Pretty renders the parameter for the compact signature summary: its name,
// a "?" operator when optional, and its shape in parentheses, grouped so a
// renderer may keep it on one line.
func (p PositionalType) Pretty() debugdoc.Doc {
	doc := debugdoc.Description(p.name)
	if p.kind == PositionalOptional {
		doc = debugdoc.Seq(doc, debugdoc.Operator("?"))
	}
	shape := debugdoc.Delimit("(", debugdoc.TypeName(p.shape.String()), ")")
	return debugdoc.Group(debugdoc.Seq(doc, shape))
}

// positionalTypeJSON is the stable wire form of a PositionalType.
type positionalTypeJSON struct {
	Type  string       `json:"type"`
	Name  string       `json:"name"`
	Shape syntax.Shape `json:"shape"`
}

// MarshalJSON encodes the variant with a stable tag.
func (p PositionalType) MarshalJSON() ([]byte, error) {
	out := positionalTypeJSON{Name: p.name, Shape: p.shape}
	switch p.kind {
	case PositionalMandatory:
		out.Type = "mandatory"
	case PositionalOptional:
		out.Type = "optional"
	default:
		return nil, fmt.Errorf("unknown positional type kind %d", p.kind)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the stable variant encoding.
func (p *PositionalType) UnmarshalJSON(data []byte) error {
	var in positionalTypeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	switch in.Type {
	case "mandatory":
		*p = MandatoryPositional(in.Name, in.Shape)
	case "optional":
		*p = OptionalPositional(in.Name, in.Shape)
	default:
		return fmt.Errorf("unknown positional type tag %q", in.Type)
	}
	return nil
}
