package algo

import (
	"fmt"
	"log/slog"
	"sync"
)

// DefaultAlgorithmID is the registry's fallback when an unknown id is
// requested (spec.md section 4.4).
const DefaultAlgorithmID = "master-stack"

// Registry is a process-wide, ordered mapping from algorithm id to
// instance. Registration order is preserved for UI display.
//
// This replaces the reference implementation's deferred self-registration
// (translation units dropping records into a pending list at static-init
// time, drained and priority-sorted on first registry construction) with
// an explicit registration step at startup, per spec.md's Design Notes:
// "build the registry by name, inserting each algorithm in a known
// order" — sidestepping static-init ordering hazards entirely.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	byID    map[string]Algorithm
	logger  *slog.Logger
}

// NewRegistry creates an empty registry. Use Register to populate it, or
// NewBuiltinRegistry for the standard seven algorithms in a fixed order.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{byID: make(map[string]Algorithm), logger: logger}
}

// NewBuiltinRegistry builds a registry with the seven built-in algorithms
// registered in a fixed, documented order (priority order in the
// reference implementation: master-stack, columns, rows, monocle,
// three-column, fibonacci, bsp).
func NewBuiltinRegistry(logger *slog.Logger) *Registry {
	r := NewRegistry(logger)
	r.Register(NewMasterStack())
	r.Register(NewColumns())
	r.Register(NewRows())
	r.Register(NewMonocle())
	r.Register(NewThreeColumn())
	r.Register(NewFibonacci())
	r.Register(NewBSP())
	return r
}

// Register takes ownership of algorithm under its own id. If the id is
// already present, the previous algorithm is replaced (and dropped). If
// the same algorithm instance is already registered under a different id,
// the call is rejected (logged, no mutation) to prevent a single instance
// from serving two ids at once — this is the Go analogue of the
// reference's double-free prevention, since here the hazard is aliased
// mutable state rather than ownership.
func (r *Registry) Register(a Algorithm) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.byID {
		if existing == a && id != a.ID() {
			r.logger.Warn("algorithm instance already registered under another id, refusing",
				"existing_id", id, "requested_id", a.ID())
			return
		}
	}

	if _, exists := r.byID[a.ID()]; !exists {
		r.order = append(r.order, a.ID())
	}
	r.byID[a.ID()] = a
}

// Unregister removes an algorithm by id.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Algorithm looks up an algorithm by id.
func (r *Registry) Algorithm(id string) (Algorithm, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	return a, ok
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.Algorithm(id)
	return ok
}

// AllIDs returns every registered id in registration order.
func (r *Registry) AllIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// All returns every registered algorithm in registration order.
func (r *Registry) All() []Algorithm {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Algorithm, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// DefaultID returns the registry-wide default algorithm id.
func (r *Registry) DefaultID() string { return DefaultAlgorithmID }

// Default returns the default algorithm, falling back to whatever is
// first in registration order if the default id was never registered.
func (r *Registry) Default() (Algorithm, error) {
	if a, ok := r.Algorithm(DefaultAlgorithmID); ok {
		return a, nil
	}
	all := r.All()
	if len(all) > 0 {
		return all[0], nil
	}
	return nil, fmt.Errorf("algorithm registry: no algorithms registered")
}

// singleton is the lazily-initialized process-wide registry handle,
// behind an initialization guard (spec.md's Design Notes: "prefer a
// lazily-initialized process-wide handle ... over globals that can be
// torn down and recreated").
var (
	singletonOnce sync.Once
	singleton     *Registry
)

// Global returns the process-wide registry, building the builtin set on
// first use.
func Global() *Registry {
	singletonOnce.Do(func() {
		singleton = NewBuiltinRegistry(nil)
	})
	return singleton
}

// ResetGlobal tears down the process-wide registry so the next call to
// Global rebuilds it from scratch. Test-time-only hook, per spec.md's
// Design Notes ("provide a test-time reset hook if tests need isolated
// registries").
func ResetGlobal() {
	singletonOnce = sync.Once{}
	singleton = nil
}
