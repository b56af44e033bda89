package roster

import "reflect"

var _ Component = componentKind[int]{}

// componentKind is the package implementation of Component. The generic
// parameter ties the descriptor to the storage element type so the registry can
// build typed stores from an erased kind list.
type componentKind[T any] struct {
	id   uint32
	name string
}

func (k componentKind[T]) ID() uint32 {
	return k.id
}

func (k componentKind[T]) Name() string {
	return k.name
}

func (k componentKind[T]) newStore(capacity int) store {
	return newComponentStore[T](k, capacity)
}

// kindIndex assigns one descriptor per Go type, with IDs in creation order.
// Single-threaded by design, matching the registries it feeds.
var kindIndex = struct {
	byType map[reflect.Type]Component
	nextID uint32
}{byType: make(map[reflect.Type]Component)}

func kindFor[T any]() Component {
	t := reflect.TypeFor[T]()
	if k, ok := kindIndex.byType[t]; ok {
		return k
	}
	k := componentKind[T]{id: kindIndex.nextID, name: t.String()}
	kindIndex.nextID++
	kindIndex.byType[t] = k
	return k
}

// ComponentType pairs a component kind with typed access to registries. See
// component_accessor.go for the operation set.
type ComponentType[T any] struct {
	Component
}
