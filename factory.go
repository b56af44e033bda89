package roster

type factory struct{}

var Factory factory

// NewRegistry builds an unbounded registry over a fixed kind set. Duplicate
// kinds in the list are registered once.
func (f factory) NewRegistry(kinds ...Component) *Registry {
	return newRegistry(0, kinds...)
}

// NewBoundedRegistry builds a registry with fixed backing arrays sized to
// capacity. Creation beyond capacity reports CapacityError; all other
// operations behave identically to an unbounded registry.
func (f factory) NewBoundedRegistry(capacity int, kinds ...Component) *Registry {
	return newRegistry(capacity, kinds...)
}

// FactoryNewComponent returns the component kind descriptor for T, creating it
// on first use. Repeated calls for the same T return the same kind, which is
// what allows kind deduction in the handle-level generics.
func FactoryNewComponent[T any]() ComponentType[T] {
	return ComponentType[T]{Component: kindFor[T]()}
}
