package actions

import (
	"github.com/moray-shell/moray/internal/app"
	"github.com/moray-shell/moray/internal/binder"
	"github.com/moray-shell/moray/internal/domain"
	"github.com/moray-shell/moray/internal/registry"
)

// ShowVersion prints the moray version.
func ShowVersion(a *domain.Application, _ *registry.Registry, _ *binder.Bound) error {
	a.Output.Printf("moray version %s\n", app.Version)
	return nil
}
