package roster

import "iter"

// typedStore resolves the registry's store for this kind. The assertion cannot
// fail for package-created kinds: one descriptor exists per Go type.
func (c ComponentType[T]) typedStore(r *Registry) (*componentStore[T], bool) {
	s, ok := r.storeFor(c.Component)
	if !ok {
		return nil, false
	}
	return s.(*componentStore[T]), true
}

// Add attaches a component value to a valid entity. Adding a kind the entity
// already carries is a contract violation; use Set for overwrite semantics.
func (c ComponentType[T]) Add(r *Registry, e Entity, value T) error {
	if r.Locked() {
		return LockedRegistryError{}
	}
	s, ok := c.typedStore(r)
	if !ok {
		return KindNotRegisteredError{Component: c.Component}
	}
	if !r.Valid(e) {
		return InvalidEntityError{Entity: e}
	}
	if err := s.add(e, value); err != nil {
		return err
	}
	bit, _ := r.kindBit(c.Component)
	r.masks[e.index].Mark(bit)
	return nil
}

// Emplace attaches the zero value and returns a pointer to the stored
// component. The pointer is valid until the next mutation of this storage.
func (c ComponentType[T]) Emplace(r *Registry, e Entity) (*T, error) {
	var zero T
	if err := c.Add(r, e, zero); err != nil {
		return nil, err
	}
	return c.GetIf(r, e), nil
}

// Set overwrites the entity's component value, attaching it first when absent.
func (c ComponentType[T]) Set(r *Registry, e Entity, value T) error {
	if r.Locked() {
		return LockedRegistryError{}
	}
	s, ok := c.typedStore(r)
	if !ok {
		return KindNotRegisteredError{Component: c.Component}
	}
	if !r.Valid(e) {
		return InvalidEntityError{Entity: e}
	}
	if err := s.set(e, value); err != nil {
		return err
	}
	bit, _ := r.kindBit(c.Component)
	r.masks[e.index].Mark(bit)
	return nil
}

// Remove detaches the component from the entity. Removing a kind the entity
// does not carry is a contract violation.
func (c ComponentType[T]) Remove(r *Registry, e Entity) error {
	if r.Locked() {
		return LockedRegistryError{}
	}
	s, ok := c.typedStore(r)
	if !ok {
		return KindNotRegisteredError{Component: c.Component}
	}
	if !r.Valid(e) {
		return InvalidEntityError{Entity: e}
	}
	if err := s.removeOne(e); err != nil {
		return err
	}
	bit, _ := r.kindBit(c.Component)
	r.masks[e.index].Unmark(bit)
	return nil
}

// Has reports whether the entity carries this kind. Absence (including an
// unregistered kind or stale entity) is false, never an error.
func (c ComponentType[T]) Has(r *Registry, e Entity) bool {
	s, ok := c.typedStore(r)
	if !ok {
		return false
	}
	return s.has(e)
}

// GetIf returns a pointer to the entity's component, or nil when absent. The
// pointer is valid until the next mutation of this storage.
func (c ComponentType[T]) GetIf(r *Registry, e Entity) *T {
	s, ok := c.typedStore(r)
	if !ok {
		return nil
	}
	return s.getIf(e)
}

// Each iterates all (entity, component) pairs of this kind in dense order.
// Order is unspecified but stable between mutations. Not safe to mutate the
// same storage while iterating.
func (c ComponentType[T]) Each(r *Registry) iter.Seq2[Entity, *T] {
	s, ok := c.typedStore(r)
	if !ok {
		return func(yield func(Entity, *T) bool) {}
	}
	return s.each()
}

// Count returns the number of entities carrying this kind.
func (c ComponentType[T]) Count(r *Registry) int {
	s, ok := c.typedStore(r)
	if !ok {
		return 0
	}
	return s.length()
}

// EnqueueAdd adds directly when the registry is unlocked, otherwise defers the
// add until Unlock. Contract violations in deferred operations surface there.
func (c ComponentType[T]) EnqueueAdd(r *Registry, e Entity, value T) error {
	if !r.Locked() {
		return c.Add(r, e, value)
	}
	r.opQueue.enqueueComponent(e, func(reg *Registry) error {
		return c.Add(reg, e, value)
	})
	return nil
}

// EnqueueRemove removes directly when the registry is unlocked, otherwise
// defers the removal until Unlock.
func (c ComponentType[T]) EnqueueRemove(r *Registry, e Entity) error {
	if !r.Locked() {
		return c.Remove(r, e)
	}
	r.opQueue.enqueueComponent(e, func(reg *Registry) error {
		return c.Remove(reg, e)
	})
	return nil
}
