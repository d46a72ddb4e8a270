// Package store is the single source of truth for invoices, clients
// and settings. All mutations are tagged messages reduced by one pure
// transition function; the Store wrapper adds hydration, commit
// observers and encrypted auto-persistence.
package store

import "github.com/rezonia/invoice-ledger/internal/model"

// State is the whole aggregate the application operates on. Slices
// inside a committed State are never mutated in place; the reducer
// copies on write, so snapshots stay valid after later transitions.
type State struct {
	Invoices []model.Invoice
	Clients  []model.Client
	Settings model.Settings
	Loading  bool
	Error    string
}

// NewState returns the factory-default state of a fresh installation.
func NewState() State {
	return State{
		Invoices: []model.Invoice{},
		Clients:  []model.Client{},
		Settings: model.DefaultSettings(),
	}
}

// NextInvoiceNumber formats the number the next created invoice will
// receive: {prefix}-{year}-{sequence %04d}.
func (s State) NextInvoiceNumber(year int) string {
	return model.FormatInvoiceNumber(s.Settings.Invoice.Prefix, year, s.Settings.Invoice.NextNumber)
}
