package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-ledger/internal/model"
	"github.com/rezonia/invoice-ledger/internal/storage"
	"github.com/rezonia/invoice-ledger/internal/store"
)

func TestStore_CreateInvoiceAssignsIdentityAndNumber(t *testing.T) {
	s := store.New(storage.NewMemory())

	inv := s.CreateInvoice(model.Invoice{
		Items:   []model.LineItem{{Description: "x", Quantity: dec.NewFromInt(1), Rate: dec.NewFromInt(50)}},
		VATRate: dec.NewFromInt(20),
		Client:  model.NewClient("Иван", "ivan@example.com"),
	})

	assert.NotEmpty(t, inv.ID)
	assert.Equal(t, model.FormatInvoiceNumber("INV", time.Now().UTC().Year(), 1), inv.Number)
	assert.Equal(t, model.StatusDraft, inv.Status)

	st := s.State()
	require.Len(t, st.Invoices, 1)
	assert.Equal(t, 2, st.Settings.Invoice.NextNumber)
}

func TestStore_ConcurrentCreatesGetUniqueNumbers(t *testing.T) {
	s := store.New(nil)

	const n = 64
	numbers := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inv := s.CreateInvoice(model.Invoice{
				Items:   []model.LineItem{{Description: "x", Quantity: dec.NewFromInt(1), Rate: dec.NewFromInt(10)}},
				VATRate: dec.NewFromInt(20),
			})
			numbers <- inv.Number
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]int)
	for num := range numbers {
		seen[num]++
	}
	for num, count := range seen {
		assert.Equalf(t, 1, count, "number %s issued %d times", num, count)
	}
	assert.Len(t, seen, n)
	assert.Equal(t, n+1, s.State().Settings.Invoice.NextNumber)
}

func TestStore_AutoSaveAndHydrate(t *testing.T) {
	kv := storage.NewMemory()

	s := store.New(kv)
	s.CreateInvoice(model.Invoice{
		Items:   []model.LineItem{{Description: "услуга", Quantity: dec.NewFromInt(2), Rate: dec.NewFromInt(75)}},
		VATRate: dec.NewFromInt(20),
	})
	s.Dispatch(store.AddClient{Client: model.NewClient("Мария", "maria@example.com")})
	s.Flush()

	// a fresh store over the same storage sees the committed data
	s2 := store.New(kv)
	require.NoError(t, s2.Hydrate(context.Background()))

	st := s2.State()
	assert.Len(t, st.Invoices, 1)
	assert.Len(t, st.Clients, 1)
	assert.Equal(t, 2, st.Settings.Invoice.NextNumber)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
}

func TestStore_HydrateEmptyStorageKeepsDefaults(t *testing.T) {
	s := store.New(storage.NewMemory())
	require.NoError(t, s.Hydrate(context.Background()))

	st := s.State()
	assert.Empty(t, st.Invoices)
	assert.Equal(t, model.DefaultSettings(), st.Settings)
}

func TestStore_HydrateCorruptBlobLeavesStateUntouched(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, kv.Save(context.Background(), []byte(`{"version":"1.0.0","encrypted":true,"data":"garbage"}`)))

	s := store.New(kv)
	err := s.Hydrate(context.Background())
	require.Error(t, err)

	var derr *model.DecryptionError
	assert.ErrorAs(t, err, &derr)

	st := s.State()
	assert.Empty(t, st.Invoices, "corrupt blob must not clobber in-memory state")
	assert.NotEmpty(t, st.Error)
	assert.False(t, st.Loading)
}

func TestStore_StoredBlobIsOpaque(t *testing.T) {
	kv := storage.NewMemory()

	s := store.New(kv)
	s.Dispatch(store.AddClient{Client: model.NewClient("Секретен Клиент", "secret@example.com")})
	s.Flush()

	blob, err := kv.Load(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, string(blob), "secret@example.com")
	assert.Contains(t, string(blob), `"encrypted": true`)
}

func TestStore_FailedSaveSurfacesError(t *testing.T) {
	kv := storage.NewMemory()
	kv.FailSaves = errors.New("disk full")

	s := store.New(kv)
	s.Dispatch(store.AddClient{Client: model.NewClient("Иван", "ivan@example.com")})
	s.Flush()

	st := s.State()
	assert.Contains(t, st.Error, "storage save failed")
	// the mutation itself still applied in memory
	assert.Len(t, st.Clients, 1)
}

func TestStore_NoSaveWhileLoading(t *testing.T) {
	kv := storage.NewMemory()
	s := store.New(kv)

	s.Dispatch(store.SetLoading{Loading: true})
	s.Dispatch(store.AddClient{Client: model.NewClient("Иван", "ivan@example.com")})
	s.Flush()

	_, err := kv.Load(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotFound, "no write may happen mid-hydration")
}

func TestStore_CommitHookSeesEveryTransition(t *testing.T) {
	s := store.New(nil)

	var mu sync.Mutex
	var seen []int
	s.OnCommit(func(st store.State) {
		mu.Lock()
		seen = append(seen, len(st.Clients))
		mu.Unlock()
	})

	s.Dispatch(store.AddClient{Client: model.NewClient("А", "a@example.com")})
	s.Dispatch(store.AddClient{Client: model.NewClient("Б", "b@example.com")})
	s.Dispatch(store.DeleteClient{ID: s.State().Clients[0].ID})

	assert.Equal(t, []int{1, 2, 1}, seen)
}

func TestStore_BurstMutationsPersistLatest(t *testing.T) {
	kv := storage.NewMemory()
	s := store.New(kv)

	for i := 0; i < 50; i++ {
		s.CreateInvoice(model.Invoice{
			Items:   []model.LineItem{{Description: "x", Quantity: dec.NewFromInt(1), Rate: dec.NewFromInt(10)}},
			VATRate: dec.NewFromInt(20),
		})
	}
	s.Flush()

	s2 := store.New(kv)
	require.NoError(t, s2.Hydrate(context.Background()))

	st := s2.State()
	assert.Len(t, st.Invoices, 50)
	assert.Equal(t, 51, st.Settings.Invoice.NextNumber)
}

func TestStore_ApplyImportReplacesEverything(t *testing.T) {
	s := store.New(storage.NewMemory())
	s.CreateInvoice(model.Invoice{
		Items:   []model.LineItem{{Description: "old", Quantity: dec.NewFromInt(1), Rate: dec.NewFromInt(10)}},
		VATRate: dec.NewFromInt(20),
	})

	other := store.New(storage.NewMemory())
	other.Dispatch(store.AddClient{Client: model.NewClient("Внесен", "imported@example.com")})
	bundle := other.ExportBundle()

	s.ApplyImport(bundle)

	st := s.State()
	assert.Empty(t, st.Invoices)
	require.Len(t, st.Clients, 1)
	assert.Equal(t, "Внесен", st.Clients[0].Name)
}

func TestStore_IndependentInstances(t *testing.T) {
	a := store.New(storage.NewMemory())
	b := store.New(storage.NewMemory())

	a.Dispatch(store.AddClient{Client: model.NewClient("А", "a@example.com")})

	assert.Len(t, a.State().Clients, 1)
	assert.Empty(t, b.State().Clients, "stores must not share ambient state")
}
