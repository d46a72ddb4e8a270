// Package money computes invoice totals. Everything here is pure: the
// editing UI recomputes on every keystroke, so the same inputs must
// always yield identical outputs.
package money

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-ledger/internal/model"
)

// DefaultVATRate is the standard Bulgarian VAT rate in percent.
var DefaultVATRate = decimal.NewFromInt(20)

// Zero is decimal zero
var Zero = decimal.Zero

// Totals is the full breakdown for one invoice. The discount metadata is
// echoed back so renderers do not need the original parameters.
type Totals struct {
	Subtotal              decimal.Decimal    `json:"subtotal"`
	Discount              decimal.Decimal    `json:"discount"`
	SubtotalAfterDiscount decimal.Decimal    `json:"subtotalAfterDiscount"`
	VAT                   decimal.Decimal    `json:"vat"`
	Total                 decimal.Decimal    `json:"total"`
	VATRate               decimal.Decimal    `json:"vatRate"`
	DiscountType          model.DiscountType `json:"discountType,omitempty"`
	DiscountValue         decimal.Decimal    `json:"discountValue"`
}

// ComputeTotals computes subtotal, discount, VAT and grand total for the
// given line items. Empty input yields all-zero totals with the rate and
// discount metadata passed through; it is not an error.
//
// A percentage discount takes discountValue percent of the subtotal. A
// fixed discount is capped at the subtotal; either kind is clamped to
// zero when negative, so the discounted base stays within [0, subtotal].
func ComputeTotals(items []model.LineItem, vatRate decimal.Decimal, discountType model.DiscountType, discountValue decimal.Decimal) Totals {
	t := Totals{
		Subtotal:              Zero,
		Discount:              Zero,
		SubtotalAfterDiscount: Zero,
		VAT:                   Zero,
		Total:                 Zero,
		VATRate:               vatRate,
		DiscountType:          discountType,
		DiscountValue:         discountValue,
	}

	for _, item := range items {
		t.Subtotal = t.Subtotal.Add(item.Amount())
	}

	switch discountType {
	case model.DiscountPercentage:
		t.Discount = percentage(t.Subtotal, discountValue)
	case model.DiscountFixed:
		t.Discount = decimal.Min(discountValue, t.Subtotal)
	}
	if t.Discount.IsNegative() {
		t.Discount = Zero
	}

	t.SubtotalAfterDiscount = t.Subtotal.Sub(t.Discount)
	t.VAT = percentage(t.SubtotalAfterDiscount, vatRate)
	t.Total = t.SubtotalAfterDiscount.Add(t.VAT)
	return t
}

// InvoiceTotals computes the breakdown for a stored invoice.
func InvoiceTotals(inv model.Invoice) Totals {
	return ComputeTotals(inv.Items, inv.VATRate, inv.DiscountType, inv.DiscountValue)
}

// percentage computes amount * (pct/100), rounded to 2 places
func percentage(amount, pct decimal.Decimal) decimal.Decimal {
	if pct.IsZero() {
		return Zero
	}
	return amount.Mul(pct).Div(decimal.NewFromInt(100)).Round(2)
}

// FromFloat creates a decimal from a float rounded to 2 places
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}
