package ecs

// World owns the entity pool, the store registry and a deferred destruction
// queue. Systems mark entities during a frame; CleanupSystem flushes the
// queue once every other phase has run.
type World struct {
	pool         *EntityPool
	registry     *Registry
	destroyQueue []EntityID
}

func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		registry:     NewRegistry(),
		destroyQueue: make([]EntityID, 0, 16),
	}
}

func (w *World) Registry() *Registry { return w.registry }

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// Live returns the number of live entities.
func (w *World) Live() int { return w.pool.Live() }

// Destroy removes id and its components immediately.
func (w *World) Destroy(id EntityID) {
	if !w.pool.Alive(id) {
		return
	}
	w.registry.RemoveAll(id)
	w.pool.Destroy(id)
}

// MarkForDestruction queues id for the next flush. Marking twice is harmless.
func (w *World) MarkForDestruction(id EntityID) {
	w.destroyQueue = append(w.destroyQueue, id)
}

// Pending returns how many entities are queued for destruction.
func (w *World) Pending() int { return len(w.destroyQueue) }

// FlushDestroyQueue destroys every queued entity and returns how many were
// actually removed (stale or duplicate handles are skipped).
func (w *World) FlushDestroyQueue() int {
	n := 0
	for _, id := range w.destroyQueue {
		if w.pool.Alive(id) {
			w.registry.RemoveAll(id)
			w.pool.Destroy(id)
			n++
		}
	}
	w.destroyQueue = w.destroyQueue[:0]
	return n
}
