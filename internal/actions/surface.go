package actions

import (
	"github.com/moray-shell/moray/internal/binder"
	"github.com/moray-shell/moray/internal/domain"
	"github.com/moray-shell/moray/internal/help"
	"github.com/moray-shell/moray/internal/registry"
	"github.com/moray-shell/moray/internal/signature"
	"github.com/moray-shell/moray/internal/syntax"
	"github.com/moray-shell/moray/internal/usage"

	configactions "github.com/moray-shell/moray/internal/actions/config"
	themeactions "github.com/moray-shell/moray/internal/actions/theme"
)

// Surface returns the registry describing moray's own command line.
// The binary eats its own cooking: its commands are declared, bound,
// and documented through the same signature machinery it exposes.
func Surface() *registry.Registry {
	r := registry.New()

	r.MustRegister(signature.New("commands").
		Desc("List the builtin shell commands").
		Switch("json", "Print every signature as JSON"))

	r.MustRegister(signature.New("describe").
		Desc("Show the full signature of a builtin command").
		Required("command", syntax.ShapeString, "The command to describe").
		Switch("json", "Print the signature as JSON"))

	r.MustRegister(signature.New("export").
		Desc("Write all builtin signatures to the catalog database").
		Named("db", syntax.ShapePath, "Sync into the catalog at this path").
		Switch("json", "Print the signatures as JSON instead of syncing"))

	r.MustRegister(signature.New("browse").
		Desc("Browse the builtin commands interactively"))

	r.MustRegister(signature.New("lint").
		Desc("Check builtin signatures for suspicious shapes"))

	r.MustRegister(signature.New("config get").
		Desc("Read one config value").
		Required("key", syntax.ShapeString, "The config key to read"))

	r.MustRegister(signature.New("config set").
		Desc("Write one config value").
		Required("key", syntax.ShapeString, "The config key to write").
		Required("value", syntax.ShapeString, "The value to store"))

	r.MustRegister(signature.New("config unset").
		Desc("Remove one config entry").
		Optional("key", syntax.ShapeString, "The config key to remove").
		Switch("all", "Remove every entry"))

	r.MustRegister(signature.New("config list").
		Desc("Show every config key with its effective value"))

	r.MustRegister(signature.New("theme list").
		Desc("Show the available color themes"))

	r.MustRegister(signature.New("theme set").
		Desc("Switch the color theme").
		Required("name", syntax.ShapeString, "The theme to activate"))

	r.MustRegister(signature.New("completions").
		Desc("Print a shell completion script").
		Required("shell", syntax.ShapeString, "The shell to generate for (bash, zsh)"))

	r.MustRegister(signature.New("version").
		Desc("Print the moray version"))

	r.MustRegister(signature.New("help").
		Desc("Show help for moray or one of its commands").
		Optional("command", syntax.ShapeString, "The moray command to explain"))

	return r
}

// Table maps each surface command to its action.
func Table() map[string]Action {
	return map[string]Action{
		"commands": Commands,
		"describe": Describe,
		"export":   Export,
		"browse":   Browse,
		"lint":     Lint,
		"version":  ShowVersion,
		"help":     Help,

		"config get":   adapt(configactions.Get),
		"config set":   adapt(configactions.Set),
		"config unset": adapt(configactions.Unset),
		"config list":  adapt(configactions.List),

		"theme list": adapt(themeactions.List),
		"theme set":  adapt(themeactions.Set),

		"completions": Completions,
	}
}

// adapt lifts a config action into the uniform Action shape.
func adapt(fn func(*binder.Bound) error) Action {
	return func(_ *domain.Application, _ *registry.Registry, b *binder.Bound) error {
		return fn(b)
	}
}

// Help explains the moray surface itself, or one of its commands.
func Help(app *domain.Application, _ *registry.Registry, b *binder.Bound) error {
	surface := Surface()

	name, ok := b.Positional("command")
	if !ok {
		app.Output.Pager(help.RenderList(surface.Signatures(), app.Styler))
		return nil
	}

	sig, found := surface.Lookup(name)
	if !found {
		return usage.UnknownCommand(name, surface.FindSimilar(name, 3)...)
	}

	app.Output.Pager(help.Render(sig, app.Styler))
	return nil
}
