package store

import (
	"context"
	"sync"
)

// NewMemory returns a Persistence that keeps the record in process. Saves are
// encoded and decoded so callers never share slices with the store.
func NewMemory() *Memory {
	return &Memory{}
}

// Memory is an in-process Persistence.
type Memory struct {
	mu       sync.Mutex
	data     []byte
	saves    int
	fail     error
	watchers []chan Event
}

func (m *Memory) Load(_ context.Context) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return decode(m.data)
}

func (m *Memory) Save(_ context.Context, r *Record) error {
	data, err := encode(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	if m.fail != nil {
		err := m.fail
		m.mu.Unlock()
		return err
	}
	m.data = data
	m.saves++
	for _, ch := range m.watchers {
		select {
		case ch <- Event{Type: EventRecordChanged}:
		default:
		}
	}
	m.mu.Unlock()
	return nil
}

// Watch reports every successful Save until ctx is done.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 8)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

// Saves counts successful writes.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// SetRaw replaces the stored bytes, bypassing encoding.
func (m *Memory) SetRaw(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
}

// FailWith makes subsequent saves return err; nil clears it.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = err
}
