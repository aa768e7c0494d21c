package config

import (
	"github.com/moray-shell/moray/internal/binder"
	"github.com/moray-shell/moray/internal/domain"
	"github.com/moray-shell/moray/internal/usage"
)

// Get prints one config value.
func Get(b *binder.Bound) error {
	return get(b, DefaultDeps())
}

func get(b *binder.Bound, deps Deps) error {
	key, _ := b.Positional("key")

	if _, known := domain.LookupConfigKey(key); !known {
		return usage.InvalidConfigKey(key)
	}

	value, found := deps.Get(key)
	if !found {
		return usage.InvalidConfigKey(key)
	}

	deps.Println(value)
	return nil
}
