package roster

import (
	"iter"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
)

// Registry owns entity identity and one component storage per registered kind.
// The kind set is fixed at construction. Per-entity-index masks mirror storage
// membership (bit = kind slot in the registry's list) and drive view filtering.
type Registry struct {
	alloc     allocator
	kinds     []Component
	stores    []store
	slotByID  map[uint32]int
	masks     []mask.Mask
	capacity  int // 0 means unbounded
	lockDepth int
	opQueue   opQueue
}

func newRegistry(capacity int, kinds ...Component) *Registry {
	r := &Registry{
		alloc:    newAllocator(capacity),
		slotByID: make(map[uint32]int),
		capacity: capacity,
		opQueue:  newOpQueue(),
	}
	for _, k := range kinds {
		if _, dup := r.slotByID[k.ID()]; dup {
			continue
		}
		r.slotByID[k.ID()] = len(r.kinds)
		r.kinds = append(r.kinds, k)
		r.stores = append(r.stores, k.newStore(capacity))
	}
	if capacity > 0 {
		r.masks = make([]mask.Mask, capacity)
	}
	logRegistryConfigured(r.kinds, capacity)
	return r
}

// Create issues a new entity, recycling a freed index when one is available.
// Bounded registries report CapacityError beyond capacity, with no state change.
func (r *Registry) Create() (Entity, error) {
	if r.Locked() {
		return Entity{}, LockedRegistryError{}
	}
	if r.capacity > 0 && r.alloc.size() >= r.capacity {
		Config.logger.Warn().Int("capacity", r.capacity).Msg("entity capacity exceeded")
		return Entity{}, CapacityError{Capacity: r.capacity}
	}
	e := r.alloc.create()
	r.ensureMask(e.index)
	r.masks[e.index] = mask.Mask{}
	return e, nil
}

// CreateN issues n entities. For bounded registries the capacity check happens
// up front, so a failed batch has no observable effect. A negative count is a
// contract violation.
func (r *Registry) CreateN(n int) ([]Entity, error) {
	if r.Locked() {
		return nil, LockedRegistryError{}
	}
	if n < 0 {
		return nil, NegativeCountError{Count: n}
	}
	if r.capacity > 0 && r.alloc.size()+n > r.capacity {
		Config.logger.Warn().Int("capacity", r.capacity).Int("requested", n).Msg("entity capacity exceeded")
		return nil, CapacityError{Capacity: r.capacity}
	}
	entities := make([]Entity, n)
	for i := range entities {
		e := r.alloc.create()
		r.ensureMask(e.index)
		r.masks[e.index] = mask.Mask{}
		entities[i] = e
	}
	return entities, nil
}

// Destroy removes e from every storage that holds it, retires its index, and
// bumps its generation. Destroying a stale entity is a contract violation.
func (r *Registry) Destroy(e Entity) error {
	if r.Locked() {
		return LockedRegistryError{}
	}
	if !r.alloc.valid(e) {
		return InvalidEntityError{Entity: e}
	}
	r.destroyUnchecked(e)
	return nil
}

// DestroyAll destroys a batch. Each destroy is atomic with respect to the
// allocator and all storages; entries that are stale by the time they are
// reached (duplicates within the batch) are skipped.
func (r *Registry) DestroyAll(entities ...Entity) error {
	if r.Locked() {
		return LockedRegistryError{}
	}
	for _, e := range entities {
		if !r.alloc.valid(e) {
			continue
		}
		r.destroyUnchecked(e)
	}
	return nil
}

func (r *Registry) destroyUnchecked(e Entity) {
	for _, s := range r.stores {
		s.drop(e)
	}
	r.masks[e.index] = mask.Mask{}
	r.alloc.destroy(e)
}

// Valid reports whether e was issued by this registry and not since destroyed.
func (r *Registry) Valid(e Entity) bool {
	return r.alloc.valid(e)
}

// Size returns the count of live entities.
func (r *Registry) Size() int {
	return r.alloc.size()
}

// Clear empties the allocator and every storage. All previously issued
// entities become invalid.
func (r *Registry) Clear() error {
	if r.Locked() {
		return LockedRegistryError{}
	}
	r.alloc.clear()
	for _, s := range r.stores {
		s.clearAll()
	}
	for i := range r.masks {
		r.masks[i] = mask.Mask{}
	}
	Config.logger.Debug().Msg("registry cleared")
	return nil
}

// All iterates every live entity. Mutating the registry while iterating is not
// supported; use View for guarded iteration or collect first.
func (r *Registry) All() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for i := 0; i < len(r.alloc.live); i++ {
			if !yield(r.alloc.live[i]) {
				return
			}
		}
	}
}

// Kinds returns the registered kinds in declaration order.
func (r *Registry) Kinds() []Component {
	out := make([]Component, len(r.kinds))
	copy(out, r.kinds)
	return out
}

// EraseIf evaluates pred once per live entity against a snapshot of the live
// set taken before any destruction, then destroys every match. The predicate
// may inspect and mutate component storages but must not create or destroy
// entities. Returns the number of entities destroyed, or LockedRegistryError
// while an iteration holds the registry.
func (r *Registry) EraseIf(pred func(Entity) bool) (int, error) {
	if r.Locked() {
		return 0, LockedRegistryError{}
	}
	snapshot := iter_util.Collect(r.All())
	var doomed []Entity
	for _, e := range snapshot {
		if pred(e) {
			doomed = append(doomed, e)
		}
	}
	destroyed := 0
	for _, e := range doomed {
		if !r.alloc.valid(e) {
			continue
		}
		r.destroyUnchecked(e)
		destroyed++
	}
	return destroyed, nil
}

// Locked reports whether an iteration currently holds the registry.
func (r *Registry) Locked() bool {
	return r.lockDepth > 0
}

// Lock holds the registry. Locks nest: each Lock needs a matching Unlock, so
// an iteration started inside another cannot release the outer hold early.
func (r *Registry) Lock() {
	r.lockDepth++
}

// Unlock releases one hold on the registry; the operation queue drains only
// when the last hold is released.
func (r *Registry) Unlock() {
	if r.lockDepth > 0 {
		r.lockDepth--
	}
	if r.lockDepth > 0 {
		return
	}
	err := r.processOperationQueue()
	if err != nil {
		panic(err)
	}
}

// EnqueueCreateN creates directly when unlocked, otherwise defers until Unlock.
func (r *Registry) EnqueueCreateN(n int) error {
	if !r.Locked() {
		_, err := r.CreateN(n)
		return err
	}
	r.opQueue.enqueueCreate(n)
	return nil
}

// EnqueueDestroy destroys directly when unlocked, otherwise defers until
// Unlock. Deferring cancels any component operations pending on the same
// entities.
func (r *Registry) EnqueueDestroy(entities ...Entity) error {
	if !r.Locked() {
		return r.DestroyAll(entities...)
	}
	r.opQueue.enqueueDestroy(entities)
	return nil
}

func (r *Registry) storeFor(c Component) (store, bool) {
	slot, ok := r.slotByID[c.ID()]
	if !ok {
		return nil, false
	}
	return r.stores[slot], true
}

func (r *Registry) kindBit(c Component) (uint32, bool) {
	slot, ok := r.slotByID[c.ID()]
	return uint32(slot), ok
}

func (r *Registry) ensureMask(idx uint32) {
	for int(idx) >= len(r.masks) {
		r.masks = append(r.masks, mask.Mask{})
	}
}
