package ledgerlib

import (
	"context"

	"github.com/rezonia/invoice-ledger/internal/codec"
	"github.com/rezonia/invoice-ledger/internal/storage"
	"github.com/rezonia/invoice-ledger/internal/store"
)

// App bundles a hydrated store with its durable storage.
type App struct {
	Store *store.Store

	kv     storage.KV
	sealer *codec.Sealer
}

// Open opens (creating if needed) the ledger at the given sqlite path
// and hydrates the store from it. A hydration failure still returns a
// usable App over factory defaults along with the error, so a corrupt
// blob does not lock the user out.
func Open(path string) (*App, error) {
	kv, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, err
	}

	app := newApp(kv)
	if err := app.Store.Hydrate(context.Background()); err != nil {
		return app, err
	}
	return app, nil
}

// OpenInMemory creates an App with no durable storage, for tests and
// dry runs.
func OpenInMemory() *App {
	return newApp(storage.NewMemory())
}

func newApp(kv storage.KV) *App {
	return &App{
		Store:  store.New(kv),
		kv:     kv,
		sealer: codec.NewStaticSealer(),
	}
}

// Close flushes pending saves and releases the storage.
func (a *App) Close() error {
	a.Store.Flush()
	return a.kv.Close()
}

// Export serializes the current state as an export file.
func (a *App) Export(encrypted bool) ([]byte, error) {
	bundle := a.Store.ExportBundle()
	if encrypted {
		return codec.ExportEncrypted(bundle, a.sealer)
	}
	return codec.Export(bundle)
}

// Import validates a bundle file and, only when it is fully valid,
// applies it wholesale. The returned bundle reports what was applied.
func (a *App) Import(blob []byte) (Bundle, error) {
	bundle, err := codec.Import(blob, a.sealer)
	if err != nil {
		return Bundle{}, err
	}
	a.Store.ApplyImport(bundle)
	return bundle, nil
}

// Inspect parses a bundle file without applying it.
func (a *App) Inspect(blob []byte) (Bundle, error) {
	return codec.Import(blob, a.sealer)
}
