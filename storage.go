package roster

import "iter"

const absent = -1

var _ store = &componentStore[int]{}

// componentStore is a sparse set pairing entities with values of a single kind.
// sparse maps an entity index to a slot in the dense arrays; dense and values
// stay contiguous for iteration. Removal swaps the last dense element into the
// freed slot, so iteration order is not stable across removals.
type componentStore[T any] struct {
	iden   Component
	sparse []int32 // entity index -> dense slot, absent when not held
	dense  []Entity
	values []T
	fixed  bool
}

func newComponentStore[T any](iden Component, capacity int) *componentStore[T] {
	s := &componentStore[T]{iden: iden}
	if capacity > 0 {
		s.fixed = true
		s.sparse = make([]int32, capacity)
		for i := range s.sparse {
			s.sparse[i] = absent
		}
		s.dense = make([]Entity, 0, capacity)
		s.values = make([]T, 0, capacity)
	}
	return s
}

func (s *componentStore[T]) kind() Component {
	return s.iden
}

func (s *componentStore[T]) length() int {
	return len(s.dense)
}

// slotOf resolves an entity to its dense slot, or absent. The full entity is
// compared, not just the index, so stale generations never alias.
func (s *componentStore[T]) slotOf(e Entity) int32 {
	if int(e.index) >= len(s.sparse) {
		return absent
	}
	slot := s.sparse[e.index]
	if slot == absent || s.dense[slot] != e {
		return absent
	}
	return slot
}

func (s *componentStore[T]) has(e Entity) bool {
	return s.slotOf(e) != absent
}

func (s *componentStore[T]) add(e Entity, value T) error {
	if s.slotOf(e) != absent {
		return ComponentExistsError{Component: s.iden}
	}
	s.ensureIndex(e.index)
	s.sparse[e.index] = int32(len(s.dense))
	s.dense = append(s.dense, e)
	s.values = append(s.values, value)
	return nil
}

// set overwrites the held value, or adds when absent.
func (s *componentStore[T]) set(e Entity, value T) error {
	if slot := s.slotOf(e); slot != absent {
		s.values[slot] = value
		return nil
	}
	return s.add(e, value)
}

func (s *componentStore[T]) removeOne(e Entity) error {
	slot := s.slotOf(e)
	if slot == absent {
		return ComponentNotFoundError{Component: s.iden}
	}
	last := len(s.dense) - 1
	moved := s.dense[last]
	s.dense[slot] = moved
	s.values[slot] = s.values[last]
	s.sparse[moved.index] = slot
	var zero T
	s.values[last] = zero
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[e.index] = absent
	return nil
}

func (s *componentStore[T]) drop(e Entity) {
	if s.slotOf(e) != absent {
		_ = s.removeOne(e)
	}
}

// getIf returns a pointer to the held value, or nil. The pointer is valid only
// until the next mutation of this store: a later removal may relocate the slot.
func (s *componentStore[T]) getIf(e Entity) *T {
	slot := s.slotOf(e)
	if slot == absent {
		return nil
	}
	return &s.values[slot]
}

// each iterates (entity, value) pairs in dense order. The sequence is
// restartable per call; mutating the store mid-iteration is not supported.
func (s *componentStore[T]) each() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for i := 0; i < len(s.dense); i++ {
			if !yield(s.dense[i], &s.values[i]) {
				return
			}
		}
	}
}

func (s *componentStore[T]) denseEntities() []Entity {
	return s.dense
}

func (s *componentStore[T]) clearAll() {
	for i := range s.sparse {
		s.sparse[i] = absent
	}
	var zero T
	for i := range s.values {
		s.values[i] = zero
	}
	s.dense = s.dense[:0]
	s.values = s.values[:0]
}

func (s *componentStore[T]) copyValue(e Entity, dst store, de Entity) error {
	d, ok := dst.(*componentStore[T])
	if !ok {
		return KindNotRegisteredError{Component: s.iden}
	}
	slot := s.slotOf(e)
	if slot == absent {
		return ComponentNotFoundError{Component: s.iden}
	}
	return d.add(de, s.values[slot])
}

// ensureIndex grows the sparse table to cover idx. Fixed stores are sized at
// construction and never grow; the bounded allocator guarantees idx < capacity.
func (s *componentStore[T]) ensureIndex(idx uint32) {
	if s.fixed || int(idx) < len(s.sparse) {
		return
	}
	needed := int(idx) + 1
	grown := make([]int32, needed)
	copy(grown, s.sparse)
	for i := len(s.sparse); i < needed; i++ {
		grown[i] = absent
	}
	s.sparse = grown
}
