// Package help renders command signatures as terminal help text.
package help

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/moray-shell/moray/internal/domain"
	"github.com/moray-shell/moray/internal/signature"
)

// Render produces the full help text for one command.
//
// Sections, in order: the name line, USAGE, PIPELINE (only for commands
// that declare input or yield types), ARGUMENTS, FLAGS.
func Render(sig signature.Signature, st domain.Styler) string {
	var out bytes.Buffer

	out.WriteString(sig.Name)
	if sig.Usage != "" {
		out.WriteString(" - ")
		out.WriteString(sig.Usage)
	}
	out.WriteString("\n\n")

	out.WriteString("USAGE\n   ")
	out.WriteString(usageLine(sig, st))
	out.WriteString("\n\n")

	if pipe := pipelineSection(sig, st); pipe != "" {
		out.WriteString("PIPELINE\n")
		out.WriteString(pipe)
		out.WriteString("\n")
	}

	if args := argumentsSection(sig, st); args != "" {
		out.WriteString("ARGUMENTS\n")
		out.WriteString(args)
		out.WriteString("\n")
	}

	if flags := flagsSection(sig, st); flags != "" {
		out.WriteString("FLAGS\n")
		out.WriteString(flags)
		out.WriteString("\n")
	}

	return out.String()
}

// usageLine builds the one-line synopsis, e.g.
//
//	add <lhs> [rhs]
//	echo [values...] [flags]
func usageLine(sig signature.Signature, st domain.Styler) string {
	parts := []string{st.Info(sig.Name)}

	for _, pos := range sig.Positional {
		if pos.Type.IsOptional() {
			parts = append(parts, st.Muted("["+pos.Type.Name()+"]"))
		} else {
			parts = append(parts, st.Muted("<"+pos.Type.Name()+">"))
		}
	}

	if sig.RestPositional != nil {
		parts = append(parts, st.Muted("[args...]"))
	}

	// The seeded help flag alone does not warrant a [flags] marker.
	if hasVisibleFlags(sig) {
		parts = append(parts, st.Muted("[flags]"))
	}

	return strings.Join(parts, " ")
}

func hasVisibleFlags(sig signature.Signature) bool {
	for _, f := range sig.Flags.Entries() {
		if !f.Type.IsHelp() {
			return true
		}
	}
	return false
}

func pipelineSection(sig signature.Signature, st domain.Styler) string {
	if sig.Input == nil && sig.Yields == nil && !sig.IsFilter {
		return ""
	}

	var out bytes.Buffer
	if sig.Input != nil {
		fmt.Fprintf(&out, "   input   %s\n", st.Info(sig.Input.String()))
	}
	if sig.Yields != nil {
		fmt.Fprintf(&out, "   yields  %s\n", st.Info(sig.Yields.String()))
	}
	if sig.IsFilter {
		out.WriteString("   " + st.Muted("This command is a filter and streams its input.") + "\n")
	}
	return out.String()
}

func argumentsSection(sig signature.Signature, st domain.Styler) string {
	if len(sig.Positional) == 0 && sig.RestPositional == nil {
		return ""
	}

	var out bytes.Buffer
	for _, pos := range sig.Positional {
		name := pos.Type.Name()
		if pos.Type.IsOptional() {
			name += "?"
		}
		label := fmt.Sprintf("%s (%s)", name, pos.Type.SyntaxType())
		fmt.Fprintf(&out, "   %s  %s\n", st.Info(fmt.Sprintf("%-24s", label)), pos.Description)
	}
	if sig.RestPositional != nil {
		label := fmt.Sprintf("...args (%s)", sig.RestPositional.Shape)
		fmt.Fprintf(&out, "   %s  %s\n", st.Info(fmt.Sprintf("%-24s", label)), sig.RestPositional.Description)
	}
	return out.String()
}

func flagsSection(sig signature.Signature, st domain.Styler) string {
	entries := sig.Flags.Entries()
	if len(entries) == 0 {
		return ""
	}

	var out bytes.Buffer
	for _, f := range entries {
		label := "--" + f.Name
		if f.Type.TakesValue() {
			label += " " + f.Type.Shape().Hint()
		}
		desc := f.Description
		if f.Type.IsRequired() {
			desc += " (required)"
		}
		fmt.Fprintf(&out, "   %s  %s\n", st.Info(fmt.Sprintf("%-24s", label)), desc)
	}
	return out.String()
}

// RenderList produces the overview listing shown by `moray commands`:
// one line per signature with name and summary, in the given order.
func RenderList(sigs []signature.Signature, st domain.Styler) string {
	var out bytes.Buffer

	out.WriteString("COMMANDS\n")
	for _, sig := range sigs {
		fmt.Fprintf(&out, "   %s  %s\n", st.Info(fmt.Sprintf("%-16s", sig.Name)), sig.Usage)
	}
	out.WriteString("\nSee 'moray describe <command>' for detailed help on a specific command.\n")

	return out.String()
}
