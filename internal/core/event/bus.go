package event

import "reflect"

// Queue holds the events of the current frame. Producers Emit, the next
// stage of the same frame Drains, and Reset at frame start throws away
// anything left over so nothing can fire in a later frame.
//
// Every emitted event is also journaled; Dispatch replays the journal to
// observers (audio, logging) after the simulation stages have run.
// Game loop goroutine only.
type Queue struct {
	pending  map[reflect.Type][]any
	journal  []any
	handlers map[reflect.Type][]func(any)
}

func NewQueue() *Queue {
	return &Queue{
		pending:  make(map[reflect.Type][]any),
		journal:  make([]any, 0, 8),
		handlers: make(map[reflect.Type][]func(any)),
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Emit queues ev for the rest of this frame.
func Emit[T any](q *Queue, ev T) {
	t := typeOf[T]()
	q.pending[t] = append(q.pending[t], ev)
	q.journal = append(q.journal, ev)
}

// Drain returns every pending T in emission order and removes them.
func Drain[T any](q *Queue) []T {
	t := typeOf[T]()
	raw := q.pending[t]
	if len(raw) == 0 {
		return nil
	}
	out := make([]T, len(raw))
	for i, ev := range raw {
		out[i] = ev.(T)
	}
	q.pending[t] = raw[:0]
	return out
}

// Has reports whether a T is pending, without consuming it.
func Has[T any](q *Queue) bool {
	return len(q.pending[typeOf[T]()]) > 0
}

// Subscribe registers an observer for T, called from Dispatch.
func Subscribe[T any](q *Queue, fn func(T)) {
	t := typeOf[T]()
	q.handlers[t] = append(q.handlers[t], func(ev any) { fn(ev.(T)) })
}

// Dispatch delivers the journal to observers in emission order and empties it.
func (q *Queue) Dispatch() {
	for _, ev := range q.journal {
		for _, h := range q.handlers[reflect.TypeOf(ev)] {
			h(ev)
		}
	}
	clear(q.journal)
	q.journal = q.journal[:0]
}

// Reset drops all pending and journaled events. Called at frame start.
func (q *Queue) Reset() {
	for k := range q.pending {
		q.pending[k] = q.pending[k][:0]
	}
	clear(q.journal)
	q.journal = q.journal[:0]
}
