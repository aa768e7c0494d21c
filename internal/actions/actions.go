// Package actions implements the moray subcommands.
//
// Every action receives the wired application, the builtin signature
// registry it reports on, and the bound invocation. Actions never parse
// argv themselves; binding already happened against the action's own
// signature.
package actions

import (
	"github.com/moray-shell/moray/internal/binder"
	"github.com/moray-shell/moray/internal/domain"
	"github.com/moray-shell/moray/internal/registry"
)

// Action is the uniform entry point for a moray subcommand.
type Action func(app *domain.Application, reg *registry.Registry, b *binder.Bound) error
