package store

import "sync"

// Entry is one key/value pair returned by a namespace scan.
type Entry struct {
	Key   string
	Value any
}

// Store is a key-value store partitioned into named namespaces.
// Put is an upsert of the full record; Scan order is unspecified.
type Store interface {
	Get(namespace, key string) (any, bool)
	Put(namespace, key string, value any)
	Scan(namespace string) []Entry
}

// Memory holds all records in process memory. Nothing is persisted; a
// restart drops every mutation. A shared handle is safe for concurrent
// callers.
type Memory struct {
	mu   sync.RWMutex
	data map[string]map[string]any
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		data: make(map[string]map[string]any),
	}
}

func (m *Memory) Get(namespace, key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ns, ok := m.data[namespace]
	if !ok {
		return nil, false
	}
	v, ok := ns[key]
	return v, ok
}

func (m *Memory) Put(namespace, key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ns, ok := m.data[namespace]
	if !ok {
		ns = make(map[string]any)
		m.data[namespace] = ns
	}
	ns[key] = value
}

func (m *Memory) Scan(namespace string) []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ns, ok := m.data[namespace]
	if !ok {
		return nil
	}
	entries := make([]Entry, 0, len(ns))
	for k, v := range ns {
		entries = append(entries, Entry{Key: k, Value: v})
	}
	return entries
}
