package identity

import (
	"context"
	"sync"

	"github.com/goliatone/go-errors"
)

// Repository is the generic keyed-collection contract the services depend
// on. Implementations decide durability; the bundled one is in-memory.
type Repository[E any, K comparable] interface {
	Get(ctx context.Context, id K) (E, error)
	GetAll(ctx context.Context) ([]E, error)
	Add(ctx context.Context, entity E) (E, error)
	Update(ctx context.Context, entity E) (E, error)
	Delete(ctx context.Context, id K) (bool, error)
	Exists(ctx context.Context, id K) (bool, error)
	Find(ctx context.Context, spec Specification[E]) ([]E, error)
}

// MemoryRepository is a volatile map-backed Repository. A mutex guards the
// map so the same contract holds under concurrent callers, even though the
// reference deployment has a single writer.
type MemoryRepository[E any, K comparable] struct {
	mu          sync.RWMutex
	entities    map[K]E
	keySelector func(E) K
}

// NewMemoryRepository creates an empty in-memory repository keyed by
// keySelector.
func NewMemoryRepository[E any, K comparable](keySelector func(E) K) *MemoryRepository[E, K] {
	return &MemoryRepository[E, K]{
		entities:    make(map[K]E),
		keySelector: keySelector,
	}
}

func (r *MemoryRepository[E, K]) Get(ctx context.Context, id K) (E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, ok := r.entities[id]
	if !ok {
		var zero E
		return zero, errors.New("record not found", errors.CategoryNotFound).
			WithTextCode(TextCodeRecordNotFound).
			WithMetadata(map[string]any{"id": id})
	}
	return entity, nil
}

func (r *MemoryRepository[E, K]) GetAll(ctx context.Context) ([]E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]E, 0, len(r.entities))
	for _, entity := range r.entities {
		out = append(out, entity)
	}
	return out, nil
}

func (r *MemoryRepository[E, K]) Add(ctx context.Context, entity E) (E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entities[r.keySelector(entity)] = entity
	return entity, nil
}

// Update replaces an existing entity, failing with a not-found error when
// the key is absent.
func (r *MemoryRepository[E, K]) Update(ctx context.Context, entity E) (E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.keySelector(entity)
	if _, ok := r.entities[key]; !ok {
		var zero E
		return zero, errors.New("record not found", errors.CategoryNotFound).
			WithTextCode(TextCodeRecordNotFound).
			WithMetadata(map[string]any{"id": key})
	}

	r.entities[key] = entity
	return entity, nil
}

// Delete removes an entity, reporting whether an entry was removed
func (r *MemoryRepository[E, K]) Delete(ctx context.Context, id K) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entities[id]; !ok {
		return false, nil
	}
	delete(r.entities, id)
	return true, nil
}

func (r *MemoryRepository[E, K]) Exists(ctx context.Context, id K) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entities[id]
	return ok, nil
}

// Find evaluates a specification against the current contents
func (r *MemoryRepository[E, K]) Find(ctx context.Context, spec Specification[E]) ([]E, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ApplySpecification(all, spec), nil
}
