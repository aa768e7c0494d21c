// Package app wires the application dependencies together.
package app

import (
	"github.com/moray-shell/moray/internal/catalog"
	"github.com/moray-shell/moray/internal/config"
	"github.com/moray-shell/moray/internal/domain"
	"github.com/moray-shell/moray/internal/log"
	"github.com/moray-shell/moray/internal/paths"
	"github.com/moray-shell/moray/internal/ui"
	"github.com/moray-shell/moray/internal/ui/style"
)

// Version is the release version, overridden at build time via ldflags.
var Version = "dev"

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Log options
	LogEnabled bool

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string
}

// DefaultOptions returns the default application options.
func DefaultOptions() Options {
	logEnabled, _ := config.Get("enable_log")
	styleConfig, _ := config.GetAll()

	return Options{
		LogEnabled:   logEnabled == "true",
		StyleEnabled: true,
		StyleConfig:  styleConfig,
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	// Initialize logger (always at debug level - log everything)
	var logger domain.Logger
	if opts.LogEnabled {
		logPath := paths.LogFilePath()
		l, err := log.New(logPath, log.LevelDebug)
		if err != nil {
			// Fall back to NopLogger on error
			logger = log.NopLogger{}
		} else {
			logger = l
		}
	} else {
		logger = log.NopLogger{}
	}

	// Initialize the signature catalog
	dbPath, _ := config.Get("catalog_path")
	if dbPath == "" {
		dbPath = paths.CatalogDBPath()
	}
	cat, err := catalog.New(dbPath)
	if err != nil {
		return nil, err
	}

	// Initialize style
	style.Init(opts.StyleEnabled, opts.StyleConfig)

	// Create output writer with options
	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(config.Get))

	return &domain.Application{
		Catalog: cat,
		Config:  config.NewProvider(),
		Logger:  logger,
		Output:  ui.NewWriter(writerOpts...),
		Styler:  style.NewStyler(),
	}, nil
}

// NewForTesting creates an Application suitable for testing.
// Uses an unopened catalog, NopLogger, and no styling.
func NewForTesting() *domain.Application {
	return &domain.Application{
		Catalog: catalog.NewWithDB(nil), // nil DB - callers should provide their own
		Config:  config.NewProvider(),
		Logger:  log.NopLogger{},
		Output:  ui.NewWriter(ui.WithPagerDisabled()),
		Styler:  style.NopStyler{},
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.Catalog != nil {
		_ = app.Catalog.Close()
	}
	return nil
}
