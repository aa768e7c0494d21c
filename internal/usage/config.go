package usage

import "fmt"

// InvalidConfigKey is returned for config keys moray does not recognize.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("moray: unknown config key '%s'. See 'moray config list'.", key),
	}
}

// FailedConfigPath is returned when the config file cannot be resolved.
func FailedConfigPath(err error) *Error {
	return &Error{
		Kind:    ErrFailedConfigPath,
		Message: fmt.Sprintf("moray: cannot resolve config path: %v", err),
	}
}

// CatalogFailure wraps a catalog store error.
func CatalogFailure(err error) *Error {
	return &Error{
		Kind:    ErrCatalog,
		Message: fmt.Sprintf("moray: catalog: %v", err),
	}
}
