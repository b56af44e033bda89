/*
Package roster provides a sparse-set entity-component registry for games and simulations.

Roster manages large, dynamically evolving collections of entities whose behavior is
defined by which data components they currently carry. Entities are lightweight
generational identifiers; each registered component kind is stored in its own
sparse-set backed dense array, giving O(1) membership tests, O(1) add/remove, and
cache-friendly iteration.

Core Concepts:

  - Entity: A generational identifier (index + generation) that represents an object.
  - Component: A data record of a fixed kind, optionally attached to an entity.
  - Registry: The owner of entity identity and one storage per registered kind.
  - View: A lazy query producing entities carrying a given combination of kinds.
  - Handle: A per-entity wrapper forwarding operations to its registry.

Basic Usage:

	// Define components
	position := roster.FactoryNewComponent[Position]()
	velocity := roster.FactoryNewComponent[Velocity]()

	// Create a registry over a fixed kind set
	reg := roster.Factory.NewRegistry(position, velocity)

	// Create entities and attach components
	e, _ := reg.Create()
	position.Add(reg, e, Position{X: 10, Y: 20})
	velocity.Add(reg, e, Velocity{X: 1, Y: 2})

	// Query entities and process them
	for en := range reg.View(position, velocity).Each() {
		pos := position.GetIf(reg, en)
		vel := velocity.GetIf(reg, en)
		pos.X += vel.X
		pos.Y += vel.Y
	}

The registry is single-threaded: no operation blocks, and concurrent mutation from
multiple goroutines requires external synchronization. Registries may be constructed
bounded (fixed backing arrays, creation beyond capacity is an error) or unbounded.
*/
package roster
