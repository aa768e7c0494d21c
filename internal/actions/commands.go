package actions

import (
	"encoding/json"
	"fmt"

	"github.com/moray-shell/moray/internal/binder"
	"github.com/moray-shell/moray/internal/domain"
	"github.com/moray-shell/moray/internal/help"
	"github.com/moray-shell/moray/internal/registry"
)

// Commands lists every registered builtin with its summary. With --json
// the full catalog is dumped in its stable encoding instead.
func Commands(app *domain.Application, reg *registry.Registry, b *binder.Bound) error {
	if b.HasFlag("json") {
		doc, err := json.MarshalIndent(reg.Signatures(), "", "  ")
		if err != nil {
			return fmt.Errorf("encode signatures: %w", err)
		}
		app.Output.Println(string(doc))
		return nil
	}

	app.Output.Pager(help.RenderList(reg.Signatures(), app.Styler))
	return nil
}
