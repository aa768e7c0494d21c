// Package browse is the interactive viewer for the builtin command catalog.
package browse

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/moray-shell/moray/internal/signature"
)

// Run opens the browser over the given signatures.
func Run(sigs []signature.Signature) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("browse requires an interactive terminal")
	}
	if len(sigs) == 0 {
		return errors.New("no commands to browse")
	}

	p := tea.NewProgram(
		newModel(sigs),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
