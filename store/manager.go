package store

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var operations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "store_operations_total",
		Help: "Document store loads and saves",
	},
	[]string{"op", "result"},
)

// RegisterMetrics registers the store counters with reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	return reg.Register(operations)
}

// Manager is the single writer for a Store. Update holds a mutex across the
// whole load, mutate, save cycle so concurrent writers cannot lose each
// other's changes. Reads are not serialized.
type Manager struct {
	mu    sync.Mutex
	store Store
}

func NewManager(s Store) *Manager {
	return &Manager{store: s}
}

// View loads a fresh document and hands it to fn. Changes fn makes are discarded.
func (m *Manager) View(ctx context.Context, fn func(doc *Document) error) error {
	doc, err := m.load(ctx)
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update loads the document, applies fn and saves the result. Nothing is
// saved when fn returns an error.
func (m *Manager) Update(ctx context.Context, fn func(doc *Document) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, err := m.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}

	err = m.store.Save(ctx, doc)
	operations.WithLabelValues("save", result(err)).Inc()
	return err
}

func (m *Manager) load(ctx context.Context) (*Document, error) {
	doc, err := m.store.Load(ctx)
	operations.WithLabelValues("load", result(err)).Inc()
	return doc, err
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
