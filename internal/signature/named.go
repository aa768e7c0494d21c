package signature

import (
	"encoding/json"
	"fmt"

	"github.com/moray-shell/moray/internal/syntax"
)

// NamedKind discriminates the closed set of flag shapes.
type NamedKind int

const (
	// NamedSwitch is a boolean flag with no argument, e.g. `open --raw`.
	NamedSwitch NamedKind = iota
	// NamedMandatory is a flag that must be supplied and carries an
	// argument, e.g. `fetch --url <string>`.
	NamedMandatory
	// NamedOptional is a flag that may be omitted and carries an argument
	// when present.
	NamedOptional
	// NamedHelp is the reserved built-in help switch. Semantically a
	// switch, tagged distinctly so tooling can special-case it.
	NamedHelp
)

// NamedType describes one flag's arity and requirement class.
type NamedType struct {
	kind  NamedKind
	shape syntax.Shape
}

// SwitchFlag returns the boolean-flag type.
func SwitchFlag() NamedType {
	return NamedType{kind: NamedSwitch}
}

// MandatoryFlag returns the required-flag type carrying an argument of the
// given shape.
func MandatoryFlag(shape syntax.Shape) NamedType {
	return NamedType{kind: NamedMandatory, shape: shape}
}

// OptionalFlag returns the omittable-flag type carrying an argument of the
// given shape when present.
func OptionalFlag(shape syntax.Shape) NamedType {
	return NamedType{kind: NamedOptional, shape: shape}
}

// HelpFlag returns the reserved help-switch type.
func HelpFlag() NamedType {
	return NamedType{kind: NamedHelp}
}

// Kind returns the variant tag.
func (n NamedType) Kind() NamedKind { return n.kind }

// Shape returns the declared argument shape. Switch and help flags carry no
// argument; for those the shape is syntax.ShapeAny and TakesValue is false.
func (n NamedType) Shape() syntax.Shape { return n.shape }

// TakesValue reports whether the flag consumes an argument token.
func (n NamedType) TakesValue() bool {
	return n.kind == NamedMandatory || n.kind == NamedOptional
}

// IsRequired reports whether the flag must be supplied.
func (n NamedType) IsRequired() bool {
	return n.kind == NamedMandatory
}

// IsHelp reports whether this is the reserved help switch.
func (n NamedType) IsHelp() bool {
	return n.kind == NamedHelp
}

func (n NamedType) String() string {
	switch n.kind {
	case NamedSwitch:
		return "Switch"
	case NamedMandatory:
		return fmt.Sprintf("Mandatory(%s)", n.shape)
	case NamedOptional:
		return fmt.Sprintf("Optional(%s)", n.shape)
	case NamedHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// namedTypeJSON is the stable wire form of a NamedType.
type namedTypeJSON struct {
	Type  string        `json:"type"`
	Shape *syntax.Shape `json:"shape,omitempty"`
}

// MarshalJSON encodes the variant with a stable tag.
func (n NamedType) MarshalJSON() ([]byte, error) {
	out := namedTypeJSON{}
	switch n.kind {
	case NamedSwitch:
		out.Type = "switch"
	case NamedMandatory:
		out.Type = "mandatory"
		shape := n.shape
		out.Shape = &shape
	case NamedOptional:
		out.Type = "optional"
		shape := n.shape
		out.Shape = &shape
	case NamedHelp:
		out.Type = "help"
	default:
		return nil, fmt.Errorf("unknown named type kind %d", n.kind)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the stable variant encoding.
func (n *NamedType) UnmarshalJSON(data []byte) error {
	var in namedTypeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	switch in.Type {
	case "switch":
		*n = SwitchFlag()
	case "help":
		*n = HelpFlag()
	case "mandatory", "optional":
		if in.Shape == nil {
			return fmt.Errorf("named type %q requires a shape", in.Type)
		}
		if in.Type == "mandatory" {
			*n = MandatoryFlag(*in.Shape)
		} else {
			*n = OptionalFlag(*in.Shape)
		}
	default:
		return fmt.Errorf("unknown named type tag %q", in.Type)
	}
	return nil
}
