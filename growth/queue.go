package growth

import "github.com/keremnymn/citygen/roadnet"

// queueItem pairs a candidate segment with its insertion sequence number,
// used to break ties among equal T values in favor of whichever candidate
// was pushed first — the same order a linear min-scan over an append-only
// slice would produce.
type queueItem struct {
	seg *roadnet.Segment
	seq int
}

// segmentPQ is a min-heap of *queueItem ordered by (T, seq) ascending: a
// plain slice implementing container/heap.Interface.
type segmentPQ []*queueItem

func (pq segmentPQ) Len() int { return len(pq) }

func (pq segmentPQ) Less(i, j int) bool {
	if pq[i].seg.T != pq[j].seg.T {
		return pq[i].seg.T < pq[j].seg.T
	}
	return pq[i].seq < pq[j].seq
}

func (pq segmentPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *segmentPQ) Push(x interface{}) {
	*pq = append(*pq, x.(*queueItem))
}

func (pq *segmentPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
