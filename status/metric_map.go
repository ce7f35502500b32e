package status

import (
	"slices"
	"sync"
)

// MetricMap is a thread-safe registry for metrics of type T
// Keys listed at construction range first in that order, the rest follow sorted
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	order []string
}

// NewMetricMap creates a MetricMap whose Range visits order first
func NewMetricMap[T any](order ...string) *MetricMap[T] {
	return &MetricMap[T]{
		items: make(map[string]*T),
		order: order,
	}
}

// Get returns the metric pointer for key, creating if absent
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Range visits registered metrics: ordered keys first, then the others by name
// Ordered keys that were never registered are skipped
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var rest []string
	for k := range m.items {
		if !slices.Contains(m.order, k) {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)

	for _, k := range m.order {
		if ptr, ok := m.items[k]; ok {
			fn(k, ptr)
		}
	}
	for _, k := range rest {
		fn(k, m.items[k])
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
