// Package binder matches raw argument tokens against a command signature.
//
// Binding is purely lexical: tokens are assigned to positionals, rest
// arguments, and flags according to the signature's declared shape. Shape
// checking of the values themselves is left to the command.
package binder

import (
	"strings"

	"github.com/moray-shell/moray/internal/signature"
	"github.com/moray-shell/moray/internal/usage"
)

// Bind matches tokens against sig.
//
// Recognized token forms:
//
//	--flag          switch, or value flag taking the next token
//	--flag=value    value flag with inline value
//	--              everything after is positional
//	anything else   positional or rest argument
//
// If the signature's help flag appears, binding stops immediately and the
// result reports Help() true; no requirement checks run in that case.
func Bind(sig signature.Signature, tokens []string) (*Bound, error) {
	b := &Bound{
		command:    sig.Name,
		positional: make(map[string]string),
		flags:      make(map[string]string),
	}

	var args []string
	noMoreFlags := false

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if noMoreFlags || !strings.HasPrefix(tok, "--") || tok == "-" {
			args = append(args, tok)
			continue
		}

		if tok == "--" {
			noMoreFlags = true
			continue
		}

		name := strings.TrimPrefix(tok, "--")
		value := ""
		hasInline := false
		if eq := strings.Index(name, "="); eq >= 0 {
			value = name[eq+1:]
			name = name[:eq]
			hasInline = true
		}

		flag, ok := sig.Flags.Get(name)
		if !ok {
			return nil, usage.UnknownFlag(sig.Name, name)
		}

		if flag.Type.IsHelp() {
			b.help = true
			return b, nil
		}

		if !flag.Type.TakesValue() {
			if hasInline {
				return nil, usage.UnexpectedFlagValue(sig.Name, name)
			}
			b.flags[name] = "true"
			continue
		}

		if !hasInline {
			// Take the next token as the value unless it is a flag.
			if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "--") {
				i++
				value = tokens[i]
			} else {
				return nil, usage.MissingFlagValue(sig.Name, name, flag.Type.Shape().Hint())
			}
		}
		b.flags[name] = value
	}

	if err := b.bindArgs(sig, args); err != nil {
		return nil, err
	}

	for _, f := range sig.Flags.Entries() {
		if f.Type.IsRequired() {
			if _, ok := b.flags[f.Name]; !ok {
				return nil, usage.MissingFlag(sig.Name, f.Name)
			}
		}
	}

	return b, nil
}

// bindArgs distributes bare tokens over declared positionals and rest.
func (b *Bound) bindArgs(sig signature.Signature, args []string) error {
	for i, pos := range sig.Positional {
		if i < len(args) {
			b.positional[pos.Type.Name()] = args[i]
			continue
		}
		if !pos.Type.IsOptional() {
			return usage.MissingArgument(sig.Name, pos.Type.Name())
		}
	}

	extra := args[min(len(args), len(sig.Positional)):]
	if len(extra) == 0 {
		return nil
	}
	if sig.RestPositional == nil {
		return usage.TooManyArguments(sig.Name, extra[0])
	}
	b.rest = append(b.rest, extra...)
	return nil
}
