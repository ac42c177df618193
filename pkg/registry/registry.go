package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/zen/pkg/errors"
)

// Registry is a generic, thread-safe registry for storing and retrieving items by name.
// Names are case-insensitive.
type Registry[T any] interface {
	// Register adds an item, failing if the name is taken
	Register(name string, item T) error

	// Set adds or replaces an item
	Set(name string, item T) error

	// Get retrieves an item from the registry
	Get(name string) (T, error)

	// Lookup retrieves an item and reports whether it was found
	Lookup(name string) (T, bool)

	// Remove removes an item from the registry
	Remove(name string) error

	// List returns all registered names
	List() []string

	// Has checks if an item is registered
	Has(name string) bool

	// Count returns the number of registered items
	Count() int
}

type registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// New creates a new Registry instance
func New[T any]() Registry[T] {
	return &registry[T]{
		items: make(map[string]T),
	}
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (r *registry[T]) Register(name string, item T) error {
	k := key(name)
	if k == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[k]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", k)
	}

	r.items[k] = item
	return nil
}

func (r *registry[T]) Set(name string, item T) error {
	k := key(name)
	if k == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[k] = item
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	item, ok := r.Lookup(name)
	if !ok {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", key(name))
	}
	return item, nil
}

func (r *registry[T]) Lookup(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[key(name)]
	return item, ok
}

func (r *registry[T]) Remove(name string) error {
	k := key(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[k]; !exists {
		return errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", k)
	}

	delete(r.items, k)
	return nil
}

// List returns all registered names in sorted order
func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func (r *registry[T]) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// MustRegister registers an item and panics if registration fails
// This is useful for init() functions where registration errors are programming errors
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}
