package roster

import "github.com/rotisserie/eris"

type operationType int

const (
	opCreate operationType = iota
	opDestroy
	opComponent
)

type operation struct {
	typ    operationType
	amount int
	entity Entity
	apply  func(*Registry) error
}

// opQueue buffers operations requested while the registry is locked by an
// iteration. Drained on Unlock: creates first, then component operations, then
// destroys. A queued destroy cancels component operations pending on the same
// entity.
type opQueue struct {
	createOps      []operation
	componentOps   []operation
	destroyOps     []Entity
	pendingDestroy map[Entity]struct{}
	pendingMods    map[Entity][]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[Entity]struct{}),
		pendingMods:    make(map[Entity][]int),
	}
}

func (q *opQueue) enqueueCreate(amount int) {
	q.createOps = append(q.createOps, operation{typ: opCreate, amount: amount})
}

func (q *opQueue) enqueueComponent(e Entity, apply func(*Registry) error) {
	// Component operations against an entity queued for destroy are dropped.
	if _, doomed := q.pendingDestroy[e]; doomed {
		return
	}
	q.pendingMods[e] = append(q.pendingMods[e], len(q.componentOps))
	q.componentOps = append(q.componentOps, operation{typ: opComponent, entity: e, apply: apply})
}

func (q *opQueue) enqueueDestroy(entities []Entity) {
	for _, e := range entities {
		if _, exists := q.pendingDestroy[e]; exists {
			continue
		}
		q.pendingDestroy[e] = struct{}{}
		q.destroyOps = append(q.destroyOps, e)

		// Cancel component operations already pending for this entity.
		for _, idx := range q.pendingMods[e] {
			q.componentOps[idx].apply = nil
		}
		delete(q.pendingMods, e)
	}
}

func (q *opQueue) empty() bool {
	return len(q.createOps) == 0 && len(q.componentOps) == 0 && len(q.destroyOps) == 0
}

func (r *Registry) processOperationQueue() error {
	q := &r.opQueue
	if q.empty() {
		return nil
	}

	for _, op := range q.createOps {
		if _, err := r.CreateN(op.amount); err != nil {
			return eris.Wrap(err, "failed to process queued entity creation")
		}
	}

	for _, op := range q.componentOps {
		if op.apply == nil {
			continue
		}
		// Skip entities recycled since the operation was queued.
		if !r.alloc.valid(op.entity) {
			continue
		}
		if err := op.apply(r); err != nil {
			return eris.Wrap(err, "failed to process queued component operation")
		}
	}

	if len(q.destroyOps) > 0 {
		if err := r.DestroyAll(q.destroyOps...); err != nil {
			return eris.Wrap(err, "failed to process queued destroys")
		}
	}

	Config.logger.Debug().
		Int("creates", len(q.createOps)).
		Int("component_ops", len(q.componentOps)).
		Int("destroys", len(q.destroyOps)).
		Msg("operation queue drained")

	q.createOps = q.createOps[:0]
	q.componentOps = q.componentOps[:0]
	q.destroyOps = q.destroyOps[:0]
	clear(q.pendingDestroy)
	clear(q.pendingMods)
	return nil
}
