package store

import "github.com/rezonia/invoice-ledger/internal/model"

// Reduce is the single pure transition function: given a state and a
// message it produces the next state. It performs no I/O and never
// mutates its input, so transitions are trivially unit-testable.
func Reduce(s State, a Action) State {
	switch m := a.(type) {
	case SetLoading:
		s.Loading = m.Loading

	case SetError:
		s.Error = m.Message

	case LoadData:
		s.Invoices = orEmptyInvoices(m.Invoices)
		s.Clients = orEmptyClients(m.Clients)
		s.Settings = m.Settings

	case AddInvoice:
		// the number derives from the same counter value this transition
		// bumps, so concurrent creates can never share a number and a
		// bumped counter always has its invoice
		inv := m.Invoice
		if inv.Number == "" {
			inv.Number = model.FormatInvoiceNumber(
				s.Settings.Invoice.Prefix, inv.IssueDate.Year(), s.Settings.Invoice.NextNumber)
		}
		s.Invoices = append(cloneInvoices(s.Invoices), inv)
		s.Settings.Invoice.NextNumber++

	case UpdateInvoice:
		invoices := cloneInvoices(s.Invoices)
		for i := range invoices {
			if invoices[i].ID == m.Invoice.ID {
				invoices[i] = m.Invoice
				break
			}
		}
		s.Invoices = invoices

	case DeleteInvoice:
		kept := make([]model.Invoice, 0, len(s.Invoices))
		for _, inv := range s.Invoices {
			if inv.ID != m.ID {
				kept = append(kept, inv)
			}
		}
		s.Invoices = kept

	case AddClient:
		s.Clients = append(cloneClients(s.Clients), m.Client)

	case UpdateClient:
		clients := cloneClients(s.Clients)
		for i := range clients {
			if clients[i].ID == m.Client.ID {
				clients[i] = m.Client
				break
			}
		}
		s.Clients = clients

	case DeleteClient:
		kept := make([]model.Client, 0, len(s.Clients))
		for _, c := range s.Clients {
			if c.ID != m.ID {
				kept = append(kept, c)
			}
		}
		s.Clients = kept

	case UpdateSettings:
		s.Settings = m.Settings

	case ImportInvoices:
		s.Invoices = orEmptyInvoices(m.Invoices)

	case ImportClients:
		s.Clients = orEmptyClients(m.Clients)

	case ClearAllData:
		s.Invoices = []model.Invoice{}
		s.Clients = []model.Client{}
		s.Settings = model.DefaultSettings()

	case ClearData:
		s = NewState()
	}

	return s
}

func cloneInvoices(in []model.Invoice) []model.Invoice {
	out := make([]model.Invoice, len(in))
	copy(out, in)
	return out
}

func cloneClients(in []model.Client) []model.Client {
	out := make([]model.Client, len(in))
	copy(out, in)
	return out
}

func orEmptyInvoices(in []model.Invoice) []model.Invoice {
	if in == nil {
		return []model.Invoice{}
	}
	return in
}

func orEmptyClients(in []model.Client) []model.Client {
	if in == nil {
		return []model.Client{}
	}
	return in
}
