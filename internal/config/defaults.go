package config

import (
	"github.com/moray-shell/moray/internal/paths"
)

// Defaults holds in-code default values. Some are dynamic (paths), so they
// are functions rather than literals.
var Defaults = map[string]func() string{
	"pager":         func() string { return "less -FRSX" },
	"theme":         func() string { return "default" },
	"color_success": func() string { return "" }, // uses theme default
	"color_warning": func() string { return "" },
	"color_error":   func() string { return "" },
	"color_info":    func() string { return "" },
	"color_muted":   func() string { return "" },
	"color_header":  func() string { return "" },
	"enable_log":    func() string { return "true" },
	"log_level":     func() string { return "warn" },
	"catalog_path":  func() string { return paths.CatalogDBPath() },
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	lines, err := ReadLines()
	if err != nil {
		if defaultFn, ok := Defaults[key]; ok {
			return defaultFn(), true
		}
		return "", false
	}

	cfg, err := Parse(lines)
	if err != nil {
		if defaultFn, ok := Defaults[key]; ok {
			return defaultFn(), true
		}
		return "", false
	}

	if value, exists := cfg[key]; exists {
		return value, true
	}

	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}

	return "", false
}

// GetAll returns all config values (user overrides merged with defaults).
func GetAll() (map[string]string, error) {
	result := make(map[string]string)

	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	lines, err := ReadLines()
	if err != nil {
		return result, nil // fall back to defaults
	}

	cfg, err := Parse(lines)
	if err != nil {
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}
