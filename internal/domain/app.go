package domain

// Application bundles the wired dependencies handed to actions.
type Application struct {
	Catalog CatalogStore
	Config  ConfigProvider
	Logger  Logger
	Output  OutputWriter
	Styler  Styler
}
