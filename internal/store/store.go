package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rezonia/invoice-ledger/internal/codec"
	"github.com/rezonia/invoice-ledger/internal/model"
	"github.com/rezonia/invoice-ledger/internal/storage"
)

// Store wraps the reduced state with durability. It is an explicit,
// injectable container, not a process-wide singleton, so tests can run
// any number of independent instances.
type Store struct {
	mu    sync.Mutex
	state State
	hooks []func(State)

	kv     storage.KV
	sealer *codec.Sealer

	// single-flight save machinery: the newest snapshot wins, an older
	// write can never land after a newer one
	seq      uint64
	saveMu   sync.Mutex
	pending  *State
	pendingV uint64
	flushing bool
	wg       sync.WaitGroup
}

// New creates a store over the given storage. Pass nil to keep the
// state purely in memory (no auto-save).
func New(kv storage.KV) *Store {
	return &Store{
		state:  NewState(),
		kv:     kv,
		sealer: codec.NewStaticSealer(),
	}
}

// OnCommit registers an observer invoked synchronously after every
// transition with the newly committed state. This replaces any
// UI-lifecycle coupling: persistence and rendering both hang off it.
func (s *Store) OnCommit(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, fn)
}

// State returns the current state snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces one message into the state, notifies observers and,
// for data-bearing transitions outside hydration, schedules a save.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	s.seq++
	next := s.state
	version := s.seq
	hooks := s.hooks
	s.mu.Unlock()

	for _, fn := range hooks {
		fn(next)
	}

	if persistent(a) && !next.Loading && s.kv != nil {
		s.scheduleSave(next, version)
	}
	return next
}

// Hydrate loads the persisted blob and installs it as the current
// state. A missing blob leaves the factory defaults. Decryption or
// validation failures leave the in-memory state untouched, surface the
// error on the state and return it.
func (s *Store) Hydrate(ctx context.Context) error {
	if s.kv == nil {
		return nil
	}

	s.Dispatch(SetLoading{Loading: true})
	defer s.Dispatch(SetLoading{Loading: false})

	blob, err := s.kv.Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		serr := model.NewStorageError("load", err)
		s.Dispatch(SetError{Message: serr.Error()})
		return serr
	}

	bundle, err := codec.Import(blob, s.sealer)
	if err != nil {
		s.Dispatch(SetError{Message: err.Error()})
		return err
	}

	s.Dispatch(LoadData{
		Invoices: bundle.Invoices,
		Clients:  bundle.Clients,
		Settings: bundle.Settings,
	})
	return nil
}

// CreateInvoice fills in the identifier, status and timestamps and
// commits the invoice. The number is assigned inside the reduction
// from the counter it bumps, so two concurrent creates can never be
// issued the same number.
func (s *Store) CreateInvoice(inv model.Invoice) model.Invoice {
	now := time.Now().UTC()
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	if inv.Status == "" {
		inv.Status = model.StatusDraft
	}
	if inv.IssueDate.IsZero() {
		inv.IssueDate = now
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = now
	}
	inv.UpdatedAt = now

	next := s.Dispatch(AddInvoice{Invoice: inv})
	return next.Invoices[len(next.Invoices)-1]
}

// ApplyImport installs a validated bundle: collections are replaced
// wholesale and settings swapped. Callers must have run the codec
// validator first; nothing here is partial.
func (s *Store) ApplyImport(b codec.Bundle) {
	s.Dispatch(ImportInvoices{Invoices: b.Invoices})
	s.Dispatch(ImportClients{Clients: b.Clients})
	s.Dispatch(UpdateSettings{Settings: b.Settings})
}

// ExportBundle snapshots the current state as an export payload.
func (s *Store) ExportBundle() codec.Bundle {
	st := s.State()
	return codec.Bundle{
		Invoices: st.Invoices,
		Clients:  st.Clients,
		Settings: st.Settings,
	}
}

// Flush blocks until every scheduled save has been written.
func (s *Store) Flush() {
	s.wg.Wait()
}

// scheduleSave coalesces bursts of mutations: the snapshot replaces
// any still-unwritten one, and a single writer drains until nothing is
// pending. Saves are fire-and-forget; failures surface only through
// the error field.
func (s *Store) scheduleSave(st State, version uint64) {
	s.saveMu.Lock()
	if version > s.pendingV {
		s.pending = &st
		s.pendingV = version
	}
	if s.flushing {
		s.saveMu.Unlock()
		return
	}
	s.flushing = true
	s.saveMu.Unlock()

	s.wg.Add(1)
	go s.drainSaves()
}

func (s *Store) drainSaves() {
	defer s.wg.Done()

	for {
		s.saveMu.Lock()
		st := s.pending
		s.pending = nil
		if st == nil {
			s.flushing = false
			s.saveMu.Unlock()
			return
		}
		s.saveMu.Unlock()

		if err := s.save(*st); err != nil {
			s.Dispatch(SetError{Message: model.NewStorageError("save", err).Error()})
		}
	}
}

func (s *Store) save(st State) error {
	blob, err := codec.ExportEncrypted(codec.Bundle{
		Invoices: st.Invoices,
		Clients:  st.Clients,
		Settings: st.Settings,
	}, s.sealer)
	if err != nil {
		return err
	}
	return s.kv.Save(context.Background(), blob)
}
