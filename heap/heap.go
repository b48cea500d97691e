package heap

import (
	"iter"

	"github.com/navijation/njheap/util"
)

type node[T any] struct {
	payload  T
	priority int32
}

// Heap is an array-backed binary heap of payloads keyed by an int32 priority.
//
// The zero value is an empty max-oriented heap. A Heap is not safe for concurrent use.
type Heap[T any] struct {
	order Order
	nodes []node[T]
}

func New[T any](order Order) *Heap[T] {
	return &Heap[T]{order: order}
}

func NewMax[T any]() *Heap[T] {
	return New[T](Max)
}

func NewMin[T any]() *Heap[T] {
	return New[T](Min)
}

func (me *Heap[T]) Order() Order {
	return me.order
}

func (me *Heap[T]) Len() int {
	return len(me.nodes)
}

// Push inserts payload with the given priority. Priorities may repeat.
func (me *Heap[T]) Push(payload T, priority int32) {
	me.nodes = append(me.nodes, node[T]{payload: payload, priority: priority})
	me.up(len(me.nodes) - 1)
}

// Pop removes and returns the payload with the most extreme priority. ok is false when the
// heap is empty.
func (me *Heap[T]) Pop() (payload T, ok bool) {
	out, _, ok := me.pop()
	return out, ok
}

// Peek returns the root without removing it.
func (me *Heap[T]) Peek() (payload T, priority int32, ok bool) {
	if len(me.nodes) == 0 {
		return payload, 0, false
	}
	return me.nodes[0].payload, me.nodes[0].priority, true
}

// Drain returns a sequence that pops the heap until it is empty. Stopping the range early
// leaves the remaining items in the heap.
func (me *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			payload, ok := me.Pop()
			if !ok || !yield(payload) {
				return
			}
		}
	}
}

// DrainEntries is Drain with each payload's priority.
func (me *Heap[T]) DrainEntries() iter.Seq2[T, int32] {
	return func(yield func(T, int32) bool) {
		for {
			payload, priority, ok := me.pop()
			if !ok || !yield(payload, priority) {
				return
			}
		}
	}
}

// Clone returns an independent heap with the same order and contents. copyPayload may be nil,
// in which case payloads are copied by assignment.
func (me *Heap[T]) Clone(copyPayload func(T) T) *Heap[T] {
	return &Heap[T]{
		order: me.order,
		nodes: util.CloneSliceFunc(me.nodes, func(n node[T]) node[T] {
			if copyPayload != nil {
				n.payload = copyPayload(n.payload)
			}
			return n
		}),
	}
}

func (me *Heap[T]) pop() (payload T, priority int32, ok bool) {
	if len(me.nodes) == 0 {
		return payload, 0, false
	}

	last := len(me.nodes) - 1
	me.swap(0, last)
	out := me.nodes[last]
	// drop the reference so the payload is owned by the caller only
	me.nodes[last] = node[T]{}
	me.nodes = me.nodes[:last]

	if last > 1 {
		me.down(0)
	}
	return out.payload, out.priority, true
}

func (me *Heap[T]) swap(i, j int) {
	me.nodes[i], me.nodes[j] = me.nodes[j], me.nodes[i]
}

func (me *Heap[T]) before(i, j int) bool {
	return me.order.before(me.nodes[i].priority, me.nodes[j].priority)
}

func (me *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !me.before(i, parent) {
			return
		}
		me.swap(i, parent)
		i = parent
	}
}

func (me *Heap[T]) down(i int) {
	n := len(me.nodes)
	for {
		top := i
		left, right := 2*i+1, 2*i+2

		if left < n && me.before(left, top) {
			top = left
		}
		if right < n && me.before(right, top) {
			top = right
		}
		if top == i {
			return
		}

		me.swap(i, top)
		i = top
	}
}
