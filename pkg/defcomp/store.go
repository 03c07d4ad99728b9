package defcomp

import "sync"

// Store caches adapted components by definition pointer.
type Store interface {
	// Load returns the class adapted from def, if any.
	Load(def *Definition) (*Class, bool)

	// Store records the class adapted from def.
	Store(def *Definition, class *Class)

	// LoadOrStore returns the cached class for def, or calls build and caches
	// its result. build runs at most once per def; a failed build caches
	// nothing. loaded reports whether the class was already cached.
	LoadOrStore(def *Definition, build func() (*Class, error)) (class *Class, loaded bool, err error)

	// Len returns the number of cached classes.
	Len() int
}

// MapStore is a Store backed by a map. It is append-only and safe for
// concurrent use.
type MapStore struct {
	mu      sync.Mutex
	classes map[*Definition]*Class
}

var _ Store = (*MapStore)(nil)

// NewMapStore creates an empty MapStore.
func NewMapStore() *MapStore {
	return &MapStore{classes: make(map[*Definition]*Class)}
}

// Load implements Store.
func (s *MapStore) Load(def *Definition) (*Class, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.classes[def]
	return c, ok
}

// Store implements Store.
func (s *MapStore) Store(def *Definition, class *Class) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.classes[def] = class
}

// LoadOrStore implements Store. The lock is held while build runs so two
// callers never adapt the same definition.
func (s *MapStore) LoadOrStore(def *Definition, build func() (*Class, error)) (*Class, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.classes[def]; ok {
		return c, true, nil
	}
	c, err := build()
	if err != nil {
		return nil, false, err
	}
	s.classes[def] = c
	return c, false, nil
}

// Len implements Store.
func (s *MapStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.classes)
}
