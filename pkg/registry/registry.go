package registry

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrDuplicateIdentifier is returned by Add when an entry with the same
// identifier already exists.
var ErrDuplicateIdentifier = errors.New("identifier already registered")

// ErrNotFound is returned by Lookup when no entry has the given identifier.
var ErrNotFound = errors.New("identifier not registered")

// Entry is one registered, discoverable content item. The identifier is the
// primary key; MIMEType is a caller-supplied hint and stays empty unless one
// was provided at registration.
type Entry struct {
	CID          string
	Name         string
	Description  string
	MIMEType     string
	RegisteredAt time.Time
}

// Registry is the authoritative CID -> metadata mapping. The zero value is
// not usable; construct with New.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	order   []string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
	}
}

// Add inserts entry keyed by its CID. Fails with ErrDuplicateIdentifier if
// the CID is already present; the registry is left unchanged in that case.
// If entry.RegisteredAt is zero it is stamped with the current time.
func (r *Registry) Add(entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.CID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateIdentifier, entry.CID)
	}
	if entry.RegisteredAt.IsZero() {
		entry.RegisteredAt = time.Now()
	}
	r.entries[entry.CID] = entry
	r.order = append(r.order, entry.CID)
	return nil
}

// List returns all entries in registration order. The returned slice is a
// copy; callers may keep or mutate it freely.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

// Lookup returns the entry registered under id, or ErrNotFound.
func (r *Registry) Lookup(id string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return entry, nil
}

// Len reports the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
