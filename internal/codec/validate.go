package codec

import (
	"encoding/json"

	"github.com/rezonia/invoice-ledger/internal/model"
)

// payload mirrors Bundle with pointer sub-objects so the validator can
// tell a missing section apart from an empty one.
type payload struct {
	Invoices []invoicePayload `json:"invoices"`
	Clients  []model.Client   `json:"clients"`
	Settings *settingsPayload `json:"settings"`
}

// invoicePayload keeps Items as a raw presence check: an invoice with
// no items array at all is structurally invalid even though an empty
// array is fine.
type invoicePayload struct {
	model.Invoice
	RawItems json.RawMessage `json:"items"`
}

type settingsPayload struct {
	Company *model.CompanyInfo     `json:"company"`
	Invoice *model.InvoiceSettings `json:"invoice"`
	Theme   model.Theme            `json:"theme"`
}

func decodePayload(data []byte) (payload, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return payload{}, model.NewParseError("Invalid file format.", err)
	}

	// RawItems shadows the embedded Items field during unmarshal, so
	// decode the line items back into the invoice here.
	for i := range p.Invoices {
		raw := p.Invoices[i].RawItems
		if len(raw) == 0 || string(raw) == "null" {
			continue
		}
		if err := json.Unmarshal(raw, &p.Invoices[i].Invoice.Items); err != nil {
			return payload{}, model.NewParseError("Invalid file format.", err)
		}
	}
	return p, nil
}

// ValidatePayload runs the structural checks on an imported payload.
// Problems accumulate into one list so the user sees everything wrong
// with a file at once; nothing is applied to the store until the list
// is empty.
func ValidatePayload(p payload) *model.ValidationErrors {
	verrs := &model.ValidationErrors{}

	for i, inv := range p.Invoices {
		if inv.ID == "" {
			verrs.Add("invoice %d: missing identifier", i)
		}
		if inv.Number == "" {
			verrs.Add("invoice %d: missing number", i)
		}
		if len(inv.RawItems) == 0 || string(inv.RawItems) == "null" {
			verrs.Add("invoice %d: missing items", i)
		}
	}

	for i, c := range p.Clients {
		if c.ID == "" {
			verrs.Add("client %d: missing identifier", i)
		}
		if c.Name == "" {
			verrs.Add("client %d: missing name", i)
		}
		if c.Email == "" {
			verrs.Add("client %d: missing email", i)
		}
	}

	if p.Settings == nil {
		verrs.Add("settings: missing")
	} else {
		if p.Settings.Company == nil {
			verrs.Add("settings: missing company section")
		}
		if p.Settings.Invoice == nil {
			verrs.Add("settings: missing invoice section")
		}
	}

	return verrs
}

func (p payload) toBundle() Bundle {
	b := Bundle{
		Invoices: make([]model.Invoice, 0, len(p.Invoices)),
		Clients:  p.Clients,
		Settings: model.DefaultSettings(),
	}
	if b.Clients == nil {
		b.Clients = []model.Client{}
	}

	for _, inv := range p.Invoices {
		b.Invoices = append(b.Invoices, inv.Invoice)
	}

	if p.Settings != nil {
		if p.Settings.Company != nil {
			b.Settings.Company = *p.Settings.Company
		}
		if p.Settings.Invoice != nil {
			b.Settings.Invoice = *p.Settings.Invoice
		}
		b.Settings.Theme = p.Settings.Theme
	}
	return b
}
