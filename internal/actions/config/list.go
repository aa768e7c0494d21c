package config

import (
	"github.com/moray-shell/moray/internal/binder"
	"github.com/moray-shell/moray/internal/domain"
)

// List prints every visible config key with its effective value.
func List(_ *binder.Bound) error {
	return list(DefaultDeps())
}

func list(deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	for _, key := range domain.VisibleConfigKeys() {
		if value, exists := configMap[key.Name]; exists {
			_, _ = deps.Printf("%s=%s\n", key.Name, value)
		}
	}

	return nil
}
