package roster

import "fmt"

type InvalidEntityError struct {
	Entity Entity
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("entity (index %d, generation %d) is not valid in this registry", e.Entity.index, e.Entity.generation)
}

type ComponentExistsError struct {
	Component Component
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component already exists on entity: %s", e.Component.Name())
}

type ComponentNotFoundError struct {
	Component Component
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity: %s", e.Component.Name())
}

type KindNotRegisteredError struct {
	Component Component
}

func (e KindNotRegisteredError) Error() string {
	return fmt.Sprintf("component kind is not registered in this registry: %s", e.Component.Name())
}

type CapacityError struct {
	Capacity int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("registry at maximum capacity (%d)", e.Capacity)
}

type NegativeCountError struct {
	Count int
}

func (e NegativeCountError) Error() string {
	return fmt.Sprintf("entity count must not be negative, got %d", e.Count)
}

type LockedRegistryError struct{}

func (e LockedRegistryError) Error() string {
	return "registry is currently locked"
}
