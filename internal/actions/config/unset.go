package config

import (
	"github.com/moray-shell/moray/internal/binder"
	"github.com/moray-shell/moray/internal/usage"
)

// Unset removes one config entry, or every entry with --all.
func Unset(b *binder.Bound) error {
	return unset(b, DefaultDeps())
}

func unset(b *binder.Bound, deps Deps) error {
	if b.HasFlag("all") {
		if err := deps.WriteLines([]string{}); err != nil {
			return err
		}
		deps.Println("all config entries removed")
		return nil
	}

	key, ok := b.Positional("key")
	if !ok {
		return usage.MissingArgument("config unset", "key")
	}

	lines, err := deps.ReadLines()
	if err != nil {
		return err
	}

	lines, removed := deps.Unset(lines, key)
	if !removed {
		return usage.InvalidConfigKey(key)
	}

	if err := deps.WriteLines(lines); err != nil {
		return err
	}

	deps.Printf("unset %s\n", key)
	return nil
}
