package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/mstbench/core"
)

// pqItem is a heap entry; seq is the push order used to break weight ties.
type pqItem struct {
	edge core.Edge
	seq  int64
}

// edgePQ implements heap.Interface for a min-heap of edges ordered by
// (Weight, push order).
type edgePQ []pqItem

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less compares by weight and falls back to push order.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

// Pop removes the last element; called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// edgeQueue wraps edgePQ with the push counter and the operation tally.
type edgeQueue struct {
	pq   edgePQ
	next int64
	ops  int64
}

func newEdgeQueue(capacity int) *edgeQueue {
	return &edgeQueue{pq: make(edgePQ, 0, capacity)}
}

func (q *edgeQueue) Len() int { return q.pq.Len() }

// push inserts e and counts one operation.
func (q *edgeQueue) push(e core.Edge) {
	heap.Push(&q.pq, pqItem{edge: e, seq: q.next})
	q.next++
	q.ops++
}

// pop extracts the minimum edge and counts one operation.
func (q *edgeQueue) pop() core.Edge {
	q.ops++

	return heap.Pop(&q.pq).(pqItem).edge
}
