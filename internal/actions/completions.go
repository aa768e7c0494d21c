package actions

import (
	"os"
	"path/filepath"

	"github.com/moray-shell/moray/internal/binder"
	"github.com/moray-shell/moray/internal/completions"
	"github.com/moray-shell/moray/internal/domain"
	"github.com/moray-shell/moray/internal/registry"
)

// Completions prints the completion script for the requested shell.
func Completions(app *domain.Application, _ *registry.Registry, b *binder.Bound) error {
	name, _ := b.Positional("shell")

	shell, err := completions.ParseShell(name)
	if err != nil {
		return err
	}

	return completions.Print(app.Output, shell, binaryName(), Surface().Signatures())
}

func binaryName() string {
	if len(os.Args) > 0 {
		if base := filepath.Base(os.Args[0]); base != "" && base != "." {
			return base
		}
	}
	return "moray"
}
