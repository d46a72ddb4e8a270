package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice
type InvoiceStatus string

const (
	StatusDraft     InvoiceStatus = "draft"
	StatusSent      InvoiceStatus = "sent"
	StatusPaid      InvoiceStatus = "paid"
	StatusOverdue   InvoiceStatus = "overdue"
	StatusCancelled InvoiceStatus = "cancelled"
)

// DiscountType selects how an invoice-level discount is applied
type DiscountType string

const (
	DiscountNone       DiscountType = ""
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// LineItem is a single billable row. Amount is always derived as
// quantity * rate and never stored.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Unit        string          `json:"unit,omitempty"`
}

// Amount returns quantity * rate rounded to 2 decimal places.
func (li LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.Rate).Round(2)
}

// Invoice is the aggregate billing document. The embedded Client is a
// point-in-time snapshot taken at creation; later client edits do not
// change past invoices.
type Invoice struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       time.Time       `json:"dueDate"`
	Status        InvoiceStatus   `json:"status"`
	Items         []LineItem      `json:"items"`
	VATRate       decimal.Decimal `json:"vatRate"`
	DiscountType  DiscountType    `json:"discountType,omitempty"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	Notes         string          `json:"notes,omitempty"`
	Terms         string          `json:"terms,omitempty"`

	// Optional legal fields required on Bulgarian invoices
	TransactionBasis string `json:"transactionBasis,omitempty"`
	Description      string `json:"description,omitempty"`
	Place            string `json:"place,omitempty"`
	PaymentMethod    string `json:"paymentMethod,omitempty"`

	Client    Client    `json:"client"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewInvoice creates a draft invoice with a fresh identifier and the
// client snapshot embedded.
func NewInvoice(number string, client Client, items []LineItem, vatRate decimal.Decimal) Invoice {
	now := time.Now().UTC()
	return Invoice{
		ID:        uuid.NewString(),
		Number:    number,
		IssueDate: now,
		DueDate:   now.AddDate(0, 0, 14),
		Status:    StatusDraft,
		Items:     items,
		VATRate:   vatRate,
		Client:    client,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FormatInvoiceNumber renders the human invoice number as
// {prefix}-{year}-{sequence zero-padded to 4 digits}.
func FormatInvoiceNumber(prefix string, year int, seq int) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, seq)
}
