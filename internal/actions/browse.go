package actions

import (
	"github.com/moray-shell/moray/internal/actions/browse"
	"github.com/moray-shell/moray/internal/binder"
	"github.com/moray-shell/moray/internal/domain"
	"github.com/moray-shell/moray/internal/registry"
)

// Browse opens the interactive catalog viewer over the registered builtins.
func Browse(_ *domain.Application, reg *registry.Registry, _ *binder.Bound) error {
	return browse.Run(reg.Signatures())
}
