package roster

// Component identifies a registered component kind. Kinds are created once per
// Go type via FactoryNewComponent and assigned stable IDs in creation order.
type Component interface {
	ID() uint32
	Name() string

	// newStore builds the backing storage for this kind. Unexported so the set
	// of kinds is closed over package-created descriptors.
	newStore(capacity int) store
}

// store is the type-erased surface the registry drives. One instance exists per
// registered kind; typed access goes through ComponentType[T].
type store interface {
	kind() Component
	length() int
	has(e Entity) bool
	// drop removes the entity's component if present (destroy path, no error).
	drop(e Entity)
	removeOne(e Entity) error
	clearAll()
	denseEntities() []Entity
	// copyValue copies e's component into dst under the new entity de. dst must
	// be a store of the same kind.
	copyValue(e Entity, dst store, de Entity) error
}
