// Package status holds live game counters shared between the tick loop and the renderers
package status

import (
	"strconv"
	"strings"
	"sync/atomic"
	"unicode/utf8"
)

// Metric keys written by the tick loop
const (
	KeyScore   = "score"
	KeyWave    = "wave"
	KeyTicks   = "ticks"
	KeyOutcome = "outcome"
)

// Registry is the central metrics facade
// The loop caches pointers once; renderers read atomics without locking
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](KeyScore, KeyWave, KeyTicks),
		Strings: NewMetricMap[AtomicString](KeyOutcome),
	}
}

// Line formats every metric as "key value" pairs: score, wave, ticks, then outcome
func (r *Registry) Line() string {
	var parts []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, key+" "+strconv.FormatInt(v.Load(), 10))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		parts = append(parts, key+" "+v.Load())
	})
	return strings.Join(parts, "  ")
}

// MaxStringLen caps stored string metrics, in runes
const MaxStringLen = 20

// AtomicString is a lock-free string metric; the zero value loads as ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, cut to MaxStringLen runes
func (s *AtomicString) Store(val string) {
	if utf8.RuneCountInString(val) > MaxStringLen {
		val = string([]rune(val)[:MaxStringLen])
	}
	s.ptr.Store(&val)
}

// Load returns the current value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
