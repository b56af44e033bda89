package roster_test

import (
	"fmt"

	"github.com/TheBitDrifter/roster"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X float64
	Y float64
}

// Name is a simple component for entity identification
type Name struct {
	Value string
}

// Example shows basic roster usage with entity creation and views
func Example_basic() {
	// Define components
	position := roster.FactoryNewComponent[Position]()
	velocity := roster.FactoryNewComponent[Velocity]()
	name := roster.FactoryNewComponent[Name]()

	// Create a registry over a fixed kind set
	reg := roster.Factory.NewRegistry(position, velocity, name)

	// Create entities with different component combinations
	still, _ := reg.CreateN(5)
	for _, e := range still {
		position.Add(reg, e, Position{})
	}
	movers, _ := reg.CreateN(3)
	for _, e := range movers {
		position.Add(reg, e, Position{})
		velocity.Add(reg, e, Velocity{})
	}

	// Create one named entity
	player, _ := reg.Create()
	position.Add(reg, player, Position{X: 10.0, Y: 20.0})
	velocity.Add(reg, player, Velocity{X: 1.0, Y: 2.0})
	name.Add(reg, player, Name{Value: "Player"})

	// View all entities with position and velocity
	matchCount := reg.View(position, velocity).Count()
	fmt.Printf("Found %d entities with position and velocity\n", matchCount)

	// Process just the named entity
	for e := range reg.View(name).Each() {
		pos := position.GetIf(reg, e)
		vel := velocity.GetIf(reg, e)
		nme := name.GetIf(reg, e)

		// Update position based on velocity
		pos.X += vel.X
		pos.Y += vel.Y

		fmt.Printf("Updated %s to position (%.1f, %.1f)\n", nme.Value, pos.X, pos.Y)
	}

	// Output:
	// Found 4 entities with position and velocity
	// Updated Player to position (11.0, 22.0)
}

// Example_handles shows per-entity access through handles
func Example_handles() {
	position := roster.FactoryNewComponent[Position]()
	name := roster.FactoryNewComponent[Name]()
	reg := roster.Factory.NewRegistry(position, name)

	// A handle binds an entity to its registry; component kinds are deduced
	// from the argument's static type.
	h, _ := roster.CreateFrom(reg)
	roster.Add(h, Position{X: 3, Y: 4})
	roster.Add(h, Name{Value: "Scout"})

	fmt.Printf("Has position: %v\n", roster.Has[Position](h))

	pos := roster.GetIf[Position](h)
	fmt.Printf("%s is at (%.0f, %.0f)\n", roster.GetIf[Name](h).Value, pos.X, pos.Y)

	h.Destroy()
	fmt.Printf("Valid after destroy: %v\n", h.Valid())

	// Output:
	// Has position: true
	// Scout is at (3, 4)
	// Valid after destroy: false
}

// Example_copy shows duplicating an entity across registries
func Example_copy() {
	name := roster.FactoryNewComponent[Name]()
	src := roster.Factory.NewRegistry(name)
	dst := roster.Factory.NewRegistry(name)

	original, _ := src.Create()
	name.Add(src, original, Name{Value: "Relic"})

	clone, _ := roster.Copy(original, src, dst)
	fmt.Printf("Clone valid in destination: %v\n", dst.Valid(clone))
	fmt.Printf("Clone carries: %s\n", name.GetIf(dst, clone).Value)

	// Output:
	// Clone valid in destination: true
	// Clone carries: Relic
}
