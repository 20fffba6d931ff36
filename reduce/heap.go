package reduce

import "github.com/katalvlaran/qembed/problem"

// pairItem is a snapshot of how many terms contain pair. Snapshots go stale
// when the count changes; a fresh one is pushed on every change.
type pairItem struct {
	pair  problem.Pair
	count int
}

// pairPQ implements heap.Interface: highest count first, then the smaller pair.
type pairPQ []pairItem

func (pq pairPQ) Len() int { return len(pq) }
func (pq pairPQ) Less(i, j int) bool {
	if pq[i].count != pq[j].count {
		return pq[i].count > pq[j].count
	}
	return pq[i].pair.Less(pq[j].pair)
}
func (pq pairPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *pairPQ) Push(x interface{}) {
	*pq = append(*pq, x.(pairItem))
}
func (pq *pairPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
