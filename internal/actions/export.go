package actions

import (
	"encoding/json"
	"fmt"

	"github.com/moray-shell/moray/internal/binder"
	"github.com/moray-shell/moray/internal/catalog"
	"github.com/moray-shell/moray/internal/domain"
	"github.com/moray-shell/moray/internal/registry"
	"github.com/moray-shell/moray/internal/usage"
)

// Export syncs every registered signature into the catalog and records
// the run. --db redirects the sync to another catalog file; --json
// prints the signatures to stdout without touching a database.
func Export(app *domain.Application, reg *registry.Registry, b *binder.Bound) error {
	sigs := reg.Signatures()

	if b.HasFlag("json") {
		doc, err := json.MarshalIndent(sigs, "", "  ")
		if err != nil {
			return fmt.Errorf("encode signatures: %w", err)
		}
		app.Output.Println(string(doc))
		return nil
	}

	store := app.Catalog
	if path := b.FlagString("db", ""); path != "" {
		alt, err := catalog.New(path)
		if err != nil {
			return usage.CatalogFailure(err)
		}
		defer alt.Close()
		store = alt
	}

	for _, sig := range sigs {
		if err := store.Put(sig); err != nil {
			app.Logger.Error("export: store %q: %v", sig.Name, err)
			return usage.CatalogFailure(err)
		}
	}

	runID, err := store.RecordExport(len(sigs))
	if err != nil {
		return usage.CatalogFailure(err)
	}

	app.Logger.Info("export: wrote %d signatures (run %s)", len(sigs), runID)
	app.Output.Printf("Exported %d signatures (run %s)\n", len(sigs), runID)
	return nil
}
