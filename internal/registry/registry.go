// Package registry maintains the set of known command signatures.
//
// A Registry preserves registration order so that listings are stable
// across runs. Lookup and listing are safe for concurrent use.
package registry

import (
	"sync"

	"github.com/moray-shell/moray/internal/signature"
	"github.com/moray-shell/moray/internal/usage"
)

// Registry holds command signatures keyed by command name.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]signature.Signature
	order  []string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		byName: make(map[string]signature.Signature),
	}
}

// Register adds a signature under its command name.
// Registering a name that is already present is an error; the existing
// entry is left untouched.
func (r *Registry) Register(sig signature.Signature) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[sig.Name]; exists {
		return usage.DuplicateCommand(sig.Name)
	}

	r.byName[sig.Name] = sig
	r.order = append(r.order, sig.Name)
	return nil
}

// MustRegister registers a signature and panics on duplicate names.
// Intended for building static command tables at startup.
func (r *Registry) MustRegister(sig signature.Signature) {
	if err := r.Register(sig); err != nil {
		panic(err)
	}
}

// Lookup returns the signature registered under name.
func (r *Registry) Lookup(name string) (signature.Signature, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sig, ok := r.byName[name]
	return sig, ok
}

// Has reports whether a command is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byName[name]
	return ok
}

// Names returns all registered command names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Signatures returns all registered signatures in registration order.
func (r *Registry) Signatures() []signature.Signature {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sigs := make([]signature.Signature, 0, len(r.order))
	for _, name := range r.order {
		sigs = append(sigs, r.byName[name])
	}
	return sigs
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}
