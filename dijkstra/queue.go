package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/aoctools/core"
)

// bucketQueue groups pending nodes by tentative distance.
//
// buckets holds the live sets; keys is a min-heap of bucket distances. A key
// whose bucket was emptied is left in the heap and skipped when popped, and a
// distance can be pushed more than once if its bucket is emptied and
// refilled; the extra key is skipped the same way.
type bucketQueue[ID comparable, E core.Weight] struct {
	buckets map[Distance[E]]map[ID]struct{}
	keys    distHeap[E]
}

func newBucketQueue[ID comparable, E core.Weight](sizeHint int) *bucketQueue[ID, E] {
	return &bucketQueue[ID, E]{
		buckets: make(map[Distance[E]]map[ID]struct{}, sizeHint),
		keys:    make(distHeap[E], 0, sizeHint),
	}
}

// add files id under distance d.
func (q *bucketQueue[ID, E]) add(id ID, d Distance[E]) {
	b, ok := q.buckets[d]
	if !ok {
		b = make(map[ID]struct{})
		q.buckets[d] = b
		heap.Push(&q.keys, d)
	}
	b[id] = struct{}{}
}

// remove takes id out of the bucket for d, dropping the bucket when empty.
func (q *bucketQueue[ID, E]) remove(id ID, d Distance[E]) {
	b, ok := q.buckets[d]
	if !ok {
		return
	}
	delete(b, id)
	if len(b) == 0 {
		delete(q.buckets, d)
	}
}

// popMin removes and returns the non-empty bucket with the smallest distance.
func (q *bucketQueue[ID, E]) popMin() (Distance[E], map[ID]struct{}, bool) {
	for q.keys.Len() > 0 {
		d := heap.Pop(&q.keys).(Distance[E])
		b, ok := q.buckets[d]
		if !ok {
			continue // stale key
		}
		delete(q.buckets, d)

		return d, b, true
	}

	return Distance[E]{}, nil, false
}

// distHeap is a min-heap of bucket distances.
type distHeap[E core.Weight] []Distance[E]

// Len returns the number of keys in the heap.
func (h distHeap[E]) Len() int { return len(h) }

// Less orders keys by Distance.Compare.
func (h distHeap[E]) Less(i, j int) bool { return h[i].Less(h[j]) }

// Swap swaps two keys.
func (h distHeap[E]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a key; called by heap.Push.
func (h *distHeap[E]) Push(x any) { *h = append(*h, x.(Distance[E])) }

// Pop removes the last key; called by heap.Pop.
func (h *distHeap[E]) Pop() any {
	old := *h
	n := len(old)
	d := old[n-1]
	*h = old[:n-1]

	return d
}
