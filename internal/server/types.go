package server

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-ledger/internal/model"
	"github.com/rezonia/invoice-ledger/internal/money"
)

// TotalsRequest is the payload for the totals preview endpoint. A nil
// VATRate falls back to the configured default rate.
type TotalsRequest struct {
	Items         []model.LineItem   `json:"items"`
	VATRate       *decimal.Decimal   `json:"vatRate"`
	DiscountType  model.DiscountType `json:"discountType"`
	DiscountValue decimal.Decimal    `json:"discountValue"`
	InWords       bool               `json:"inWords"`
}

// TotalsResponse carries the breakdown and the optional spelled-out
// total for the "словом" line.
type TotalsResponse struct {
	money.Totals
	TotalInWords string `json:"totalInWords,omitempty"`
}

// ImportResponse reports the outcome of an import. On failure Errors
// lists every validation problem found.
type ImportResponse struct {
	Success  bool     `json:"success"`
	Invoices int      `json:"invoices,omitempty"`
	Clients  int      `json:"clients,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
