package store

import "github.com/rezonia/invoice-ledger/internal/model"

// Action is a closed set of state-transition messages. Every mutation
// of the application state goes through one of these; nothing else
// touches the aggregate.
type Action interface {
	isAction()
}

// SetLoading toggles the hydration flag. Saves are suppressed while it
// is on so a half-loaded state can never overwrite the stored data.
type SetLoading struct {
	Loading bool
}

// SetError records a user-visible error message ("" clears it).
type SetError struct {
	Message string
}

// LoadData hydrates the whole state from storage in one step.
type LoadData struct {
	Invoices []model.Invoice
	Clients  []model.Client
	Settings model.Settings
}

// AddInvoice appends an invoice and bumps the numbering counter. The
// two effects are applied in the same transition or not at all.
type AddInvoice struct {
	Invoice model.Invoice
}

// UpdateInvoice replaces an invoice by identifier. Unknown identifiers
// are a silent no-op.
type UpdateInvoice struct {
	Invoice model.Invoice
}

// DeleteInvoice removes an invoice by identifier.
type DeleteInvoice struct {
	ID string
}

// AddClient appends a client.
type AddClient struct {
	Client model.Client
}

// UpdateClient replaces a client by identifier. Unknown identifiers
// are a silent no-op.
type UpdateClient struct {
	Client model.Client
}

// DeleteClient removes a client by identifier.
type DeleteClient struct {
	ID string
}

// UpdateSettings replaces the settings wholesale.
type UpdateSettings struct {
	Settings model.Settings
}

// ImportInvoices replaces the invoice collection with an imported one.
type ImportInvoices struct {
	Invoices []model.Invoice
}

// ImportClients replaces the client collection with an imported one.
type ImportClients struct {
	Clients []model.Client
}

// ClearAllData resets invoices, clients and settings to factory
// defaults, leaving the loading and error flags alone.
type ClearAllData struct{}

// ClearData resets literally everything, flags included.
type ClearData struct{}

func (SetLoading) isAction()     {}
func (SetError) isAction()       {}
func (LoadData) isAction()       {}
func (AddInvoice) isAction()     {}
func (UpdateInvoice) isAction()  {}
func (DeleteInvoice) isAction()  {}
func (AddClient) isAction()      {}
func (UpdateClient) isAction()   {}
func (DeleteClient) isAction()   {}
func (UpdateSettings) isAction() {}
func (ImportInvoices) isAction() {}
func (ImportClients) isAction()  {}
func (ClearAllData) isAction()   {}
func (ClearData) isAction()      {}

// persistent reports whether the transition carries durable data and
// should trigger an auto-save. Loading/error flags are in-memory only;
// saving on SetError would loop when the save itself is failing.
func persistent(a Action) bool {
	switch a.(type) {
	case SetLoading, SetError:
		return false
	default:
		return true
	}
}
