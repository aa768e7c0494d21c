package config

import (
	"github.com/moray-shell/moray/internal/binder"
	"github.com/moray-shell/moray/internal/domain"
	"github.com/moray-shell/moray/internal/usage"
)

// Set writes one config value.
func Set(b *binder.Bound) error {
	return set(b, DefaultDeps())
}

func set(b *binder.Bound, deps Deps) error {
	key, _ := b.Positional("key")
	value, _ := b.Positional("value")

	if _, known := domain.LookupConfigKey(key); !known {
		return usage.InvalidConfigKey(key)
	}

	lines, err := deps.ReadLines()
	if err != nil {
		return err
	}

	lines, updated := deps.Set(lines, key, value)

	if err := deps.WriteLines(lines); err != nil {
		return err
	}

	action := "added"
	if updated {
		action = "updated"
	}

	deps.Printf("%s %s=%s\n", action, key, value)
	return nil
}
