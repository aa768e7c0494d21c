package completions

import (
	"fmt"
	"strings"

	"github.com/moray-shell/moray/internal/signature"
)

// GenerateBash produces a bash completion script.
//
// Multi-word surface commands ("config get") complete word by word: the
// first word completes among the distinct leading words, the second among
// the subcommands of the chosen prefix.
func GenerateBash(binary string, sigs []signature.Signature) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s bash completion script\n", binary)
	fmt.Fprintf(&b, "_%s_completions() {\n", binary)
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")

	fmt.Fprintf(&b, "    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(leadingWords(sigs), " "))
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"$prev\" in\n")
	prefixes, subs := subcommandsByPrefix(sigs)
	for _, prefix := range prefixes {
		fmt.Fprintf(&b, "        %s)\n", prefix)
		fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(subs[prefix], " "))
		b.WriteString("            return 0\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")
	for _, sig := range sigs {
		words := flagWords(sig)
		if len(words) == 0 || strings.Contains(sig.Name, " ") {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", sig.Name)
		fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(words, " "))
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, "complete -F _%s_completions %s\n", binary, binary)

	return b.String()
}

// GenerateZsh produces a zsh completion script.
func GenerateZsh(binary string, sigs []signature.Signature) string {
	var b strings.Builder

	fmt.Fprintf(&b, "#compdef %s\n", binary)
	fmt.Fprintf(&b, "# %s zsh completion script\n\n", binary)
	fmt.Fprintf(&b, "_%s() {\n", binary)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, sig := range sigs {
		if strings.Contains(sig.Name, " ") {
			continue
		}
		fmt.Fprintf(&b, "        '%s:%s'\n", sig.Name, strings.ReplaceAll(sig.Usage, "'", ""))
	}
	b.WriteString("    )\n\n")

	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"$words[2]\" in\n")
	prefixes, subs := subcommandsByPrefix(sigs)
	for _, prefix := range prefixes {
		fmt.Fprintf(&b, "        %s)\n", prefix)
		fmt.Fprintf(&b, "            compadd %s\n", strings.Join(subs[prefix], " "))
		b.WriteString("            ;;\n")
	}
	for _, sig := range sigs {
		words := flagWords(sig)
		if len(words) == 0 || strings.Contains(sig.Name, " ") {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", sig.Name)
		fmt.Fprintf(&b, "            compadd %s\n", strings.Join(words, " "))
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "_%s \"$@\"\n", binary)

	return b.String()
}

// leadingWords returns the distinct first words of all command names,
// preserving registration order.
func leadingWords(sigs []signature.Signature) []string {
	seen := make(map[string]bool)
	var out []string
	for _, sig := range sigs {
		word, _, _ := strings.Cut(sig.Name, " ")
		if !seen[word] {
			seen[word] = true
			out = append(out, word)
		}
	}
	return out
}

// subcommandsByPrefix groups the second words of multi-word command
// names under their first word. Prefixes come back in first-appearance
// order so generated scripts are reproducible.
func subcommandsByPrefix(sigs []signature.Signature) ([]string, map[string][]string) {
	var prefixes []string
	out := make(map[string][]string)
	for _, sig := range sigs {
		prefix, sub, ok := strings.Cut(sig.Name, " ")
		if !ok {
			continue
		}
		if _, seen := out[prefix]; !seen {
			prefixes = append(prefixes, prefix)
		}
		out[prefix] = append(out[prefix], sub)
	}
	return prefixes, out
}
