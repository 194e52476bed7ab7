package traverse

import "container/heap"

// item pairs a node with its accumulated cost. seq records push order so
// equal-cost entries leave the priority frontier first-in first-out.
type item[K comparable] struct {
	node K
	cost int64
	seq  uint64
}

// frontier is the set of discovered but not yet processed nodes.
type frontier[K comparable] interface {
	push(it item[K])
	pop() item[K]
	len() int
}

// fifo is a slice-backed queue; head advances instead of re-slicing so the
// backing array is reused until the queue drains.
type fifo[K comparable] struct {
	items []item[K]
	head  int
}

func (q *fifo[K]) push(it item[K]) { q.items = append(q.items, it) }

func (q *fifo[K]) pop() item[K] {
	it := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	}

	return it
}

func (q *fifo[K]) len() int { return len(q.items) - q.head }

// priority is a min-heap keyed by cost, ties broken by push order.
type priority[K comparable] struct {
	h   itemHeap[K]
	seq uint64
}

func (p *priority[K]) push(it item[K]) {
	p.seq++
	it.seq = p.seq
	heap.Push(&p.h, it)
}

func (p *priority[K]) pop() item[K] { return heap.Pop(&p.h).(item[K]) }

func (p *priority[K]) len() int { return p.h.Len() }

// itemHeap implements heap.Interface ordered by (cost, seq) ascending.
type itemHeap[K comparable] []item[K]

func (h itemHeap[K]) Len() int { return len(h) }

func (h itemHeap[K]) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	return h[i].seq < h[j].seq
}

func (h itemHeap[K]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap[K]) Push(x any) { *h = append(*h, x.(item[K])) }

func (h *itemHeap[K]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// stack is the explicit LIFO used by Paths in place of recursion.
type stack[T any] struct {
	items []T
}

func (s *stack[T]) push(v T) { s.items = append(s.items, v) }

func (s *stack[T]) pop() T {
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return v
}

// top returns a pointer to the last element; invalid after the next push.
func (s *stack[T]) top() *T { return &s.items[len(s.items)-1] }

func (s *stack[T]) len() int { return len(s.items) }
