package store_test

import (
	"testing"
	"time"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-ledger/internal/model"
	"github.com/rezonia/invoice-ledger/internal/store"
)

func draftInvoice(id, number string) model.Invoice {
	return model.Invoice{
		ID:     id,
		Number: number,
		Status: model.StatusDraft,
		Items: []model.LineItem{
			{Description: "услуга", Quantity: dec.NewFromInt(1), Rate: dec.NewFromInt(100)},
		},
		VATRate: dec.NewFromInt(20),
	}
}

func TestReduce_AddInvoiceBumpsCounterAtomically(t *testing.T) {
	s := store.NewState()
	require.Equal(t, 1, s.Settings.Invoice.NextNumber)

	for i := 0; i < 5; i++ {
		s = store.Reduce(s, store.AddInvoice{Invoice: draftInvoice("id", "n")})
	}

	assert.Len(t, s.Invoices, 5)
	assert.Equal(t, 6, s.Settings.Invoice.NextNumber)
}

func TestReduce_AddInvoiceAssignsNumberFromCounter(t *testing.T) {
	s := store.NewState()

	first := draftInvoice("a", "")
	first.IssueDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s = store.Reduce(s, store.AddInvoice{Invoice: first})

	second := draftInvoice("b", "")
	second.IssueDate = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	s = store.Reduce(s, store.AddInvoice{Invoice: second})

	require.Len(t, s.Invoices, 2)
	assert.Equal(t, "INV-2025-0001", s.Invoices[0].Number)
	assert.Equal(t, "INV-2025-0002", s.Invoices[1].Number)

	// an explicit number is kept as-is
	s = store.Reduce(s, store.AddInvoice{Invoice: draftInvoice("c", "FAC-2024-0077")})
	assert.Equal(t, "FAC-2024-0077", s.Invoices[2].Number)
	assert.Equal(t, 4, s.Settings.Invoice.NextNumber)
}

func TestReduce_AddInvoiceCounterUnaffectedByOtherMessages(t *testing.T) {
	s := store.NewState()

	s = store.Reduce(s, store.AddInvoice{Invoice: draftInvoice("a", "1")})
	s = store.Reduce(s, store.AddClient{Client: model.NewClient("Иван", "ivan@example.com")})
	s = store.Reduce(s, store.SetError{Message: "whatever"})
	s = store.Reduce(s, store.AddInvoice{Invoice: draftInvoice("b", "2")})
	s = store.Reduce(s, store.DeleteInvoice{ID: "a"})

	// two additions, counter up by exactly two regardless of interleaving
	assert.Equal(t, 3, s.Settings.Invoice.NextNumber)
}

func TestReduce_UpdateInvoice(t *testing.T) {
	s := store.NewState()
	s = store.Reduce(s, store.AddInvoice{Invoice: draftInvoice("a", "INV-2025-0001")})

	updated := draftInvoice("a", "INV-2025-0001")
	updated.Status = model.StatusPaid
	s = store.Reduce(s, store.UpdateInvoice{Invoice: updated})

	require.Len(t, s.Invoices, 1)
	assert.Equal(t, model.StatusPaid, s.Invoices[0].Status)
}

func TestReduce_UpdateUnknownIDIsNoOp(t *testing.T) {
	s := store.NewState()
	s = store.Reduce(s, store.AddInvoice{Invoice: draftInvoice("a", "1")})
	before := s

	s = store.Reduce(s, store.UpdateInvoice{Invoice: draftInvoice("ghost", "x")})
	assert.Equal(t, before.Invoices, s.Invoices)

	s = store.Reduce(s, store.UpdateClient{Client: model.Client{ID: "ghost", Name: "x"}})
	assert.Equal(t, before.Clients, s.Clients)
}

func TestReduce_DeleteFiltersByID(t *testing.T) {
	s := store.NewState()
	s = store.Reduce(s, store.AddInvoice{Invoice: draftInvoice("a", "1")})
	s = store.Reduce(s, store.AddInvoice{Invoice: draftInvoice("b", "2")})

	s = store.Reduce(s, store.DeleteInvoice{ID: "a"})
	require.Len(t, s.Invoices, 1)
	assert.Equal(t, "b", s.Invoices[0].ID)

	// deleting a missing id changes nothing
	s = store.Reduce(s, store.DeleteInvoice{ID: "a"})
	assert.Len(t, s.Invoices, 1)
}

func TestReduce_Clients(t *testing.T) {
	s := store.NewState()
	c := model.NewClient("Иван Петров", "ivan@example.com")

	s = store.Reduce(s, store.AddClient{Client: c})
	require.Len(t, s.Clients, 1)

	c.Email = "new@example.com"
	s = store.Reduce(s, store.UpdateClient{Client: c})
	assert.Equal(t, "new@example.com", s.Clients[0].Email)

	s = store.Reduce(s, store.DeleteClient{ID: c.ID})
	assert.Empty(t, s.Clients)
}

func TestReduce_ClientEditDoesNotTouchInvoiceSnapshot(t *testing.T) {
	s := store.NewState()
	c := model.NewClient("Иван Петров", "ivan@example.com")
	s = store.Reduce(s, store.AddClient{Client: c})

	inv := draftInvoice("a", "1")
	inv.Client = c
	s = store.Reduce(s, store.AddInvoice{Invoice: inv})

	c.Name = "Преименуван"
	s = store.Reduce(s, store.UpdateClient{Client: c})

	assert.Equal(t, "Преименуван", s.Clients[0].Name)
	assert.Equal(t, "Иван Петров", s.Invoices[0].Client.Name)
}

func TestReduce_ImportReplacesCollections(t *testing.T) {
	s := store.NewState()
	s = store.Reduce(s, store.AddInvoice{Invoice: draftInvoice("old", "1")})

	s = store.Reduce(s, store.ImportInvoices{Invoices: []model.Invoice{
		draftInvoice("new-1", "1"), draftInvoice("new-2", "2"),
	}})

	require.Len(t, s.Invoices, 2)
	assert.Equal(t, "new-1", s.Invoices[0].ID)

	s = store.Reduce(s, store.ImportClients{Clients: nil})
	assert.NotNil(t, s.Clients)
	assert.Empty(t, s.Clients)
}

func TestReduce_ClearAllDataKeepsFlags(t *testing.T) {
	s := store.NewState()
	s = store.Reduce(s, store.AddInvoice{Invoice: draftInvoice("a", "1")})
	s = store.Reduce(s, store.SetError{Message: "boom"})
	s = store.Reduce(s, store.UpdateSettings{Settings: func() model.Settings {
		set := model.DefaultSettings()
		set.Invoice.Prefix = "FAC"
		set.Invoice.NextNumber = 42
		return set
	}()})

	s = store.Reduce(s, store.ClearAllData{})

	assert.Empty(t, s.Invoices)
	assert.Empty(t, s.Clients)
	assert.Equal(t, model.DefaultSettings(), s.Settings)
	assert.Equal(t, "boom", s.Error, "flags survive ClearAllData")

	s = store.Reduce(s, store.ClearData{})
	assert.Equal(t, "", s.Error)
}

func TestReduce_Pure(t *testing.T) {
	s := store.NewState()
	s = store.Reduce(s, store.AddInvoice{Invoice: draftInvoice("a", "1")})

	before := s.Invoices
	_ = store.Reduce(s, store.AddInvoice{Invoice: draftInvoice("b", "2")})
	_ = store.Reduce(s, store.DeleteInvoice{ID: "a"})

	// the original snapshot is untouched by later transitions
	require.Len(t, before, 1)
	assert.Equal(t, "a", before[0].ID)
	require.Len(t, s.Invoices, 1)
}

func TestNextInvoiceNumber(t *testing.T) {
	s := store.NewState()
	assert.Equal(t, "INV-2025-0001", s.NextInvoiceNumber(2025))

	s.Settings.Invoice.Prefix = "FAC"
	s.Settings.Invoice.NextNumber = 123
	assert.Equal(t, "FAC-2026-0123", s.NextInvoiceNumber(2026))

	s.Settings.Invoice.NextNumber = 10000
	assert.Equal(t, "FAC-2026-10000", s.NextInvoiceNumber(2026))
}
