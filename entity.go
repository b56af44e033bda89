package roster

// Entity is a generational identifier denoting a logical object. It carries no
// data itself: two entities are equal iff both index and generation match, and
// an entity is only meaningful to the registry that issued it.
type Entity struct {
	index      uint32
	generation uint32
}

// Index returns the entity's slot index within its registry.
func (e Entity) Index() uint32 {
	return e.index
}

// Generation returns the recycle counter for the entity's index.
func (e Entity) Generation() uint32 {
	return e.generation
}

// allocator issues and recycles entity identifiers. An index appears in at most
// one of the live set and the free list; recycling an index bumps its generation
// so previously issued entities referencing it become invalid. Generation wrap
// at uint32 is accepted: an entity retained across 2^32 recycles of its index
// aliases the fresh one.
type allocator struct {
	live        []Entity
	liveSlots   []int32 // index -> position in live, -1 when not live
	generations []uint32
	free        []uint32
}

func newAllocator(capacity int) allocator {
	if capacity <= 0 {
		return allocator{}
	}
	return allocator{
		live:        make([]Entity, 0, capacity),
		liveSlots:   make([]int32, 0, capacity),
		generations: make([]uint32, 0, capacity),
		free:        make([]uint32, 0, capacity),
	}
}

func (a *allocator) create() Entity {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.generations))
		a.generations = append(a.generations, 0)
		a.liveSlots = append(a.liveSlots, -1)
	}
	e := Entity{index: idx, generation: a.generations[idx]}
	a.liveSlots[idx] = int32(len(a.live))
	a.live = append(a.live, e)
	return e
}

// destroy removes e from the live set via swap-with-last and retires its index.
// Caller must have checked valid(e).
func (a *allocator) destroy(e Entity) {
	slot := a.liveSlots[e.index]
	last := len(a.live) - 1
	moved := a.live[last]
	a.live[slot] = moved
	a.liveSlots[moved.index] = slot
	a.live = a.live[:last]
	a.liveSlots[e.index] = -1
	a.generations[e.index]++ // wrap accepted
	a.free = append(a.free, e.index)
}

func (a *allocator) valid(e Entity) bool {
	return int(e.index) < len(a.generations) &&
		a.generations[e.index] == e.generation &&
		a.liveSlots[e.index] >= 0
}

func (a *allocator) size() int {
	return len(a.live)
}

// clear invalidates every previously issued entity and returns all indices to
// the free list.
func (a *allocator) clear() {
	for _, e := range a.live {
		a.generations[e.index]++
		a.liveSlots[e.index] = -1
		a.free = append(a.free, e.index)
	}
	a.live = a.live[:0]
}
