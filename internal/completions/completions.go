// Package completions generates shell completion scripts from the
// registered command surface.
package completions

import (
	"fmt"
	"io"

	"github.com/moray-shell/moray/internal/signature"
)

// Shell identifies a supported shell.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
)

// ParseShell validates a shell name.
func ParseShell(name string) (Shell, error) {
	switch Shell(name) {
	case ShellBash, ShellZsh:
		return Shell(name), nil
	default:
		return "", fmt.Errorf("unsupported shell %q (bash and zsh are supported)", name)
	}
}

// Print writes the completion script for the given shell to w.
func Print(w io.Writer, shell Shell, binary string, sigs []signature.Signature) error {
	var script string
	switch shell {
	case ShellBash:
		script = GenerateBash(binary, sigs)
	case ShellZsh:
		script = GenerateZsh(binary, sigs)
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	_, err := fmt.Fprint(w, script)
	return err
}

// flagWords returns the --flag tokens a signature accepts.
func flagWords(sig signature.Signature) []string {
	var words []string
	for _, f := range sig.Flags.Entries() {
		words = append(words, "--"+f.Name)
	}
	return words
}
