package roster

// Handle binds an entity to the registry that issued it, for ergonomic
// per-entity access. Handles are non-owning: the registry must outlive them,
// and a handle whose entity is destroyed must not be dereferenced (Valid
// reports liveness).
type Handle struct {
	entity Entity
	reg    *Registry
}

// CreateFrom creates a new entity in the registry and returns a handle to it.
func CreateFrom(r *Registry) (Handle, error) {
	e, err := r.Create()
	if err != nil {
		return Handle{}, err
	}
	return Handle{entity: e, reg: r}, nil
}

// NewHandle binds an existing entity to its registry.
func NewHandle(r *Registry, e Entity) Handle {
	return Handle{entity: e, reg: r}
}

func (h Handle) Entity() Entity {
	return h.entity
}

func (h Handle) Registry() *Registry {
	return h.reg
}

func (h Handle) Valid() bool {
	return h.reg.Valid(h.entity)
}

func (h Handle) Destroy() error {
	return h.reg.Destroy(h.entity)
}

// Add attaches a component to the handle's entity, deducing the kind from the
// argument's static type. Equivalent to FactoryNewComponent[T]().Add.
func Add[T any](h Handle, value T) error {
	return FactoryNewComponent[T]().Add(h.reg, h.entity, value)
}

// Emplace attaches the zero value of T and returns a pointer to it.
func Emplace[T any](h Handle) (*T, error) {
	return FactoryNewComponent[T]().Emplace(h.reg, h.entity)
}

// Set overwrites the component of kind T, attaching it first when absent.
func Set[T any](h Handle, value T) error {
	return FactoryNewComponent[T]().Set(h.reg, h.entity, value)
}

// Remove detaches the component of kind T from the handle's entity.
func Remove[T any](h Handle) error {
	return FactoryNewComponent[T]().Remove(h.reg, h.entity)
}

// Has reports whether the handle's entity carries kind T.
func Has[T any](h Handle) bool {
	return FactoryNewComponent[T]().Has(h.reg, h.entity)
}

// GetIf returns a pointer to the entity's component of kind T, or nil.
func GetIf[T any](h Handle) *T {
	return FactoryNewComponent[T]().GetIf(h.reg, h.entity)
}
