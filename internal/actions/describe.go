package actions

import (
	"encoding/json"
	"fmt"

	"github.com/moray-shell/moray/internal/binder"
	"github.com/moray-shell/moray/internal/domain"
	"github.com/moray-shell/moray/internal/help"
	"github.com/moray-shell/moray/internal/registry"
	"github.com/moray-shell/moray/internal/usage"
)

// Describe renders the full help for one builtin, or its JSON form
// when --json is given.
func Describe(app *domain.Application, reg *registry.Registry, b *binder.Bound) error {
	name, _ := b.Positional("command")

	sig, ok := reg.Lookup(name)
	if !ok {
		return usage.UnknownCommand(name, reg.FindSimilar(name, 3)...)
	}

	if b.HasFlag("json") {
		doc, err := json.MarshalIndent(sig, "", "  ")
		if err != nil {
			return fmt.Errorf("encode signature %q: %w", name, err)
		}
		app.Output.Println(string(doc))
		return nil
	}

	text := help.Render(sig, app.Styler)
	text += "\nSIGNATURE\n   " + sig.PrettyDebug(sig.Name).Flatten() + "\n"
	app.Output.Pager(text)
	return nil
}
