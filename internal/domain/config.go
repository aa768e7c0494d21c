package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in config listings
	Hidden      bool   // Hidden keys are not shown in help or config list
}

// ConfigKeys defines all available configuration keys.
// This is the single source of truth for configuration.
// Order determines display order in `moray config list`.
var ConfigKeys = []ConfigKey{
	// Display
	{
		Name:        "pager",
		Default:     "less -FRSX",
		Description: "Pager command for long output",
		Section:     "Display",
	},
	{
		Name:        "theme",
		Default:     "default",
		Description: "Color theme: default, mono, ocean, contrast",
		Section:     "Display",
	},
	// Colors (override individual theme colors; empty uses theme default)
	{
		Name:        "color_success",
		Default:     "",
		Description: "Success color (ANSI 0-255 or 'bold')",
		Section:     "Colors",
	},
	{
		Name:        "color_warning",
		Default:     "",
		Description: "Warning color",
		Section:     "Colors",
	},
	{
		Name:        "color_error",
		Default:     "",
		Description: "Error color",
		Section:     "Colors",
	},
	{
		Name:        "color_info",
		Default:     "",
		Description: "Info color",
		Section:     "Colors",
	},
	{
		Name:        "color_muted",
		Default:     "",
		Description: "Muted color",
		Section:     "Colors",
	},
	{
		Name:        "color_header",
		Default:     "",
		Description: "Header color",
		Section:     "Colors",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	// Catalog
	{
		Name:        "catalog_path",
		Default:     "", // Set dynamically to paths.CatalogDBPath()
		Description: "Path to the signature catalog database",
		Section:     "Catalog",
	},
}

// LookupConfigKey returns the metadata for a key name.
func LookupConfigKey(name string) (ConfigKey, bool) {
	for _, key := range ConfigKeys {
		if key.Name == name {
			return key, true
		}
	}
	return ConfigKey{}, false
}

// VisibleConfigKeys returns the keys shown in config listings.
func VisibleConfigKeys() []ConfigKey {
	var out []ConfigKey
	for _, key := range ConfigKeys {
		if !key.Hidden {
			out = append(out, key)
		}
	}
	return out
}
