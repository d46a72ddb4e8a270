// Package ledgerlib provides the public API for the local invoicing
// engine: an encrypted single-blob store of invoices, clients and
// settings plus the financial calculation helpers.
//
// Example usage:
//
//	app, err := ledgerlib.Open("ledger.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer app.Close()
//	inv := app.Store.CreateInvoice(ledgerlib.Invoice{ /* ... */ })
//	fmt.Println(inv.Number)
package ledgerlib

import (
	"github.com/rezonia/invoice-ledger/internal/codec"
	"github.com/rezonia/invoice-ledger/internal/model"
	"github.com/rezonia/invoice-ledger/internal/money"
	"github.com/rezonia/invoice-ledger/internal/store"
)

// Re-export core types for public API
type (
	Invoice      = model.Invoice
	LineItem     = model.LineItem
	Client       = model.Client
	Settings     = model.Settings
	Bundle       = codec.Bundle
	Totals       = money.Totals
	State        = store.State
	DiscountType = model.DiscountType
)

// Re-export invoice statuses
const (
	StatusDraft     = model.StatusDraft
	StatusSent      = model.StatusSent
	StatusPaid      = model.StatusPaid
	StatusOverdue   = model.StatusOverdue
	StatusCancelled = model.StatusCancelled
)

// Re-export discount types
const (
	DiscountNone       = model.DiscountNone
	DiscountPercentage = model.DiscountPercentage
	DiscountFixed      = model.DiscountFixed
)

// Re-export error types
type (
	DecryptionError  = model.DecryptionError
	ParseError       = model.ParseError
	ValidationErrors = model.ValidationErrors
	StorageError     = model.StorageError
)

// ComputeTotals re-exports the totals engine.
var ComputeTotals = money.ComputeTotals
