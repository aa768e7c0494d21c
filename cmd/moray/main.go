package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/moray-shell/moray/internal/actions"
	"github.com/moray-shell/moray/internal/app"
	"github.com/moray-shell/moray/internal/binder"
	"github.com/moray-shell/moray/internal/builtins"
	"github.com/moray-shell/moray/internal/registry"
	"github.com/moray-shell/moray/internal/signature"
	"github.com/moray-shell/moray/internal/usage"
)

func main() {
	args := os.Args[1:]

	args, global := extractGlobalFlags(args)
	if global.version {
		args = []string{"version"}
	}

	opts := app.DefaultOptions()
	opts.StyleEnabled = term.IsTerminal(int(os.Stdout.Fd())) && !global.noColor
	opts.PagerDisabled = global.noPager
	opts.PagerOverride = global.pager

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	defer app.Close(application)

	surface := actions.Surface()
	table := actions.Table()

	shell := registry.New()
	if err := builtins.Register(shell); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	sig, rest, err := resolve(surface, args)
	if err != nil {
		exitWith(err)
	}

	bound, err := binder.Bind(sig, rest)
	if err != nil {
		exitWith(err)
	}

	action := table[sig.Name]
	if bound.Help() {
		// --help on any moray command routes through the help action
		helpSig, _ := surface.Lookup("help")
		bound, err = binder.Bind(helpSig, []string{sig.Name})
		if err != nil {
			exitWith(err)
		}
		action = actions.Help
	}

	if err := action(application, shell, bound); err != nil {
		exitWith(err)
	}
}

// resolve picks the surface command named by args. Two-token names like
// "config get" are tried before single-token names; no arguments means
// the help overview.
func resolve(surface *registry.Registry, args []string) (signature.Signature, []string, error) {
	if len(args) == 0 {
		sig, _ := surface.Lookup("help")
		return sig, nil, nil
	}

	if len(args) >= 2 {
		if sig, ok := surface.Lookup(args[0] + " " + args[1]); ok {
			return sig, args[2:], nil
		}
	}

	if sig, ok := surface.Lookup(args[0]); ok {
		return sig, args[1:], nil
	}

	name := args[0]
	if len(args) >= 2 && (name == "config" || name == "theme") {
		name = name + " " + args[1]
	}
	return signature.Signature{}, nil, usage.UnknownCommand(name, surface.FindSimilar(name, 3)...)
}

type globalFlags struct {
	noColor bool
	noPager bool
	pager   string
	version bool
}

// extractGlobalFlags strips the flags every command honors and returns
// the remaining args untouched.
func extractGlobalFlags(args []string) ([]string, globalFlags) {
	var (
		out    []string
		global globalFlags
	)

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--no-color":
			global.noColor = true
		case a == "--no-pager":
			global.noPager = true
		case len(a) > len("--pager=") && a[:len("--pager=")] == "--pager=":
			global.pager = a[len("--pager="):]
		case a == "--pager" && i+1 < len(args):
			global.pager = args[i+1]
			i++
		case a == "--version":
			global.version = true
		default:
			out = append(out, a)
		}
	}

	return out, global
}

func exitWith(err error) {
	if ue, ok := err.(*usage.Error); ok {
		fmt.Fprintln(os.Stderr, ue.Error())
		os.Exit(ue.GetExitCode())
	}
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
