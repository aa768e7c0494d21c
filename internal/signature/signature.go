// Package signature defines the callable contract of a Moray command: the
// positional arguments it accepts, the named flags it recognizes, the
// pipeline types it consumes and produces, and whether it acts as a filter.
//
// A Signature is assembled once at registration time through a chain of
// value-returning builder calls and is read-only afterwards. Every builder
// call copies before it appends or replaces, so intermediate values never
// share state and a completed signature may be read concurrently without
// synchronization.
package signature

import (
	"github.com/moray-shell/moray/internal/pipeline"
	"github.com/moray-shell/moray/internal/syntax"
)

// HelpFlagName is the reserved name of the built-in help switch.
const HelpFlagName = "help"

const helpFlagDescription = "Display this help message"

// Positional pairs a positional parameter type with its help text. Order of
// Positional entries in a Signature defines left-to-right binding order.
type Positional struct {
	Type        PositionalType `json:"type"`
	Description string         `json:"description"`
}

// Rest describes the variadic catch-all consuming positional tokens beyond
// the fixed list.
type Rest struct {
	Shape       syntax.Shape `json:"shape"`
	Description string       `json:"description"`
}

// Signature is the full callable contract of one command. Commands register
// a Signature with the interpreter so calls can be bound, help displayed,
// and pipeline connections type-checked.
type Signature struct {
	// Name is the command identifier used to invoke it. Uniqueness within
	// the interpreter is the registry's job, not this type's.
	Name string `json:"name"`
	// Usage is the free-text description shown in help.
	Usage string `json:"usage"`
	// Positional lists the fixed positional parameters in binding order.
	Positional []Positional `json:"positional"`
	// RestPositional, when set, absorbs all positional tokens beyond the
	// fixed list. At most one per signature; conceptually positioned after
	// every Positional entry.
	RestPositional *Rest `json:"rest_positional,omitempty"`
	// Flags maps flag names to their types and help text, preserving
	// insertion order for help rendering. Serialized under the stable
	// "named" key.
	Flags FlagMap `json:"named"`
	// Yields is the declared type flowing out into the pipeline, if any.
	Yields *pipeline.Type `json:"yields,omitempty"`
	// Input is the declared type read from the pipeline, if any.
	Input *pipeline.Type `json:"input,omitempty"`
	// IsFilter marks a command that transforms pipeline data rather than
	// only consuming it.
	IsFilter bool `json:"is_filter"`
}

// New creates a signature for the named command: empty usage, no
// positionals, no rest, no declared pipeline types, not a filter, and the
// default help switch already present.
func New(name string) Signature {
	return Signature{
		Name: name,
		Flags: FlagMap{}.Insert(Flag{
			Name:        HelpFlagName,
			Type:        HelpFlag(),
			Description: helpFlagDescription,
		}),
	}
}

// Build is an alias for New.
func Build(name string) Signature {
	return New(name)
}

// Desc sets the usage text.
func (s Signature) Desc(usage string) Signature {
	s.Usage = usage
	return s
}

// Required appends a mandatory positional parameter.
func (s Signature) Required(name string, shape syntax.Shape, desc string) Signature {
	return s.appendPositional(Positional{
		Type:        MandatoryPositional(name, shape),
		Description: desc,
	})
}

// Optional appends an omittable positional parameter.
func (s Signature) Optional(name string, shape syntax.Shape, desc string) Signature {
	return s.appendPositional(Positional{
		Type:        OptionalPositional(name, shape),
		Description: desc,
	})
}

// Named inserts or replaces an optional flag carrying an argument.
func (s Signature) Named(flag string, shape syntax.Shape, desc string) Signature {
	s.Flags = s.Flags.Insert(Flag{Name: flag, Type: OptionalFlag(shape), Description: desc})
	return s
}

// RequiredNamed inserts or replaces a mandatory flag carrying an argument.
func (s Signature) RequiredNamed(flag string, shape syntax.Shape, desc string) Signature {
	s.Flags = s.Flags.Insert(Flag{Name: flag, Type: MandatoryFlag(shape), Description: desc})
	return s
}

// Switch inserts or replaces a boolean flag.
func (s Signature) Switch(flag, desc string) Signature {
	s.Flags = s.Flags.Insert(Flag{Name: flag, Type: SwitchFlag(), Description: desc})
	return s
}

// RemoveHelp deletes the default help switch. A no-op if already removed.
func (s Signature) RemoveHelp() Signature {
	s.Flags = s.Flags.Remove(HelpFlagName)
	return s
}

// Filter marks the command as a pipeline filter.
func (s Signature) Filter() Signature {
	s.IsFilter = true
	return s
}

// Rest declares the variadic catch-all, replacing any prior declaration.
func (s Signature) Rest(shape syntax.Shape, desc string) Signature {
	s.RestPositional = &Rest{Shape: shape, Description: desc}
	return s
}

// YieldsType declares the command's pipeline output type.
func (s Signature) YieldsType(t pipeline.Type) Signature {
	s.Yields = &t
	return s
}

// InputType declares the command's pipeline input type.
func (s Signature) InputType(t pipeline.Type) Signature {
	s.Input = &t
	return s
}

// RequiredPositionalCount returns how many fixed positionals are mandatory.
func (s Signature) RequiredPositionalCount() int {
	count := 0
	for _, p := range s.Positional {
		if !p.Type.IsOptional() {
			count++
		}
	}
	return count
}

func (s Signature) appendPositional(p Positional) Signature {
	out := make([]Positional, len(s.Positional), len(s.Positional)+1)
	copy(out, s.Positional)
	s.Positional = append(out, p)
	return s
}
