package registry

import (
	"fmt"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/arthur-debert/assetgen/pkg/errors"
)

// Registry stores items by name in registration order. It is safe for
// concurrent use.
type Registry[T any] struct {
	mu    sync.RWMutex
	items *orderedmap.OrderedMap[string, T]
}

// New creates an empty registry
func New[T any]() *Registry[T] {
	return &Registry[T]{items: orderedmap.New[string, T]()}
}

// Register adds an item under name. Names are unique.
func (r *Registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items.Get(name); exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name)
	}
	r.items.Set(name, item)
	return nil
}

// MustRegister registers an item and panics on failure, for tables built
// from static data
func (r *Registry[T]) MustRegister(name string, item T) {
	if err := r.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}

// Lookup returns the item registered under name
func (r *Registry[T]) Lookup(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items.Get(name)
}

// Get is Lookup with an ErrNotFound error for missing names
func (r *Registry[T]) Get(name string) (T, error) {
	item, ok := r.Lookup(name)
	if !ok {
		return item, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}
	return item, nil
}

// Names returns the registered names in registration order
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, r.items.Len())
	for pair := r.items.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Values returns the registered items in registration order
func (r *Registry[T]) Values() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values := make([]T, 0, r.items.Len())
	for pair := r.items.Oldest(); pair != nil; pair = pair.Next() {
		values = append(values, pair.Value)
	}
	return values
}

// Len returns the number of registered items
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items.Len()
}
