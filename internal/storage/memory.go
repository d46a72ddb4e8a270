package storage

import (
	"context"
	"sync"
)

// Memory is an in-process KV for tests and ephemeral runs.
type Memory struct {
	mu   sync.Mutex
	blob []byte
	// FailSaves makes every Save return the given error, for testing
	// the store's error surfacing.
	FailSaves error
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Save(ctx context.Context, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves != nil {
		return m.FailSaves
	}
	m.blob = append([]byte(nil), blob...)
	return nil
}

func (m *Memory) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blob == nil {
		return nil, ErrNotFound
	}
	return append([]byte(nil), m.blob...), nil
}

func (m *Memory) Close() error {
	return nil
}
