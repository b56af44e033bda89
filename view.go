package roster

import (
	"fmt"
	"iter"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
)

// View is a lazy query over the intersection of entities present in a set of
// named storages. Views hold a non-owning registry reference and carry no
// state of their own; construct them on demand.
type View struct {
	reg     *Registry
	include []store
	incMask mask.Mask
	excMask mask.Mask
	hasExc  bool
}

// View builds a query over the named kinds. With no kinds it matches every
// live entity. Naming an unregistered kind is a programming error and panics.
func (r *Registry) View(kinds ...Component) *View {
	v := &View{reg: r}
	for _, k := range kinds {
		s, ok := r.storeFor(k)
		if !ok {
			panic(fmt.Sprintf("roster: component kind %s is not registered in this registry", k.Name()))
		}
		v.include = append(v.include, s)
		bit, _ := r.kindBit(k)
		v.incMask.Mark(bit)
	}
	return v
}

// Without excludes entities carrying any of the named kinds. Returns the view
// for chaining.
func (v *View) Without(kinds ...Component) *View {
	for _, k := range kinds {
		bit, ok := v.reg.kindBit(k)
		if !ok {
			panic(fmt.Sprintf("roster: component kind %s is not registered in this registry", k.Name()))
		}
		v.excMask.Mark(bit)
		v.hasExc = true
	}
	return v
}

// Each iterates qualifying entities exactly once, lazily. The storage with the
// fewest entries drives the walk; every other membership test is a single mask
// comparison, so cost is bounded by the smallest named storage. The registry is
// locked for the duration: direct mutation inside the loop fails with
// LockedRegistryError, and Enqueue variants defer until iteration ends.
func (v *View) Each() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		v.reg.Lock()
		defer v.reg.Unlock()

		driver := v.driverEntities()
		for i := 0; i < len(driver); i++ {
			e := driver[i]
			m := v.reg.masks[e.index]
			if !m.ContainsAll(v.incMask) {
				continue
			}
			if v.hasExc && !m.ContainsNone(v.excMask) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Count returns the number of qualifying entities.
func (v *View) Count() int {
	count := 0
	for range v.Each() {
		count++
	}
	return count
}

// Collect materializes the view. Use this before mutating while processing.
func (v *View) Collect() []Entity {
	return iter_util.Collect(v.Each())
}

// driverEntities picks the smallest named storage's dense array, or the live
// list when the view names no kinds.
func (v *View) driverEntities() []Entity {
	if len(v.include) == 0 {
		return v.reg.alloc.live
	}
	driver := v.include[0]
	for _, s := range v.include[1:] {
		if s.length() < driver.length() {
			driver = s
		}
	}
	return driver.denseEntities()
}
