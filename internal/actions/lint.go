package actions

import (
	"github.com/moray-shell/moray/internal/binder"
	"github.com/moray-shell/moray/internal/domain"
	"github.com/moray-shell/moray/internal/registry"
)

// Lint reports suspicious builtin signatures.
func Lint(app *domain.Application, reg *registry.Registry, _ *binder.Bound) error {
	diags := reg.Lint()
	if len(diags) == 0 {
		app.Output.Println(app.Styler.Success("All signatures look clean."))
		return nil
	}

	for _, d := range diags {
		app.Output.Println(app.Styler.Warning(d.String()))
	}
	app.Output.Printf("%d warning(s)\n", len(diags))
	return nil
}
