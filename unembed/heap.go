package unembed

import "math"

// fieldItem is a broken chain waiting to be fixed, with its current local field.
type fieldItem struct {
	field float64
	v     int // logical variable
}

// fieldPQ implements heap.Interface. The top is the largest |field|,
// then the smallest field, then the smallest variable.
type fieldPQ []*fieldItem

func (pq fieldPQ) Len() int { return len(pq) }
func (pq fieldPQ) Less(i, j int) bool {
	ai, aj := math.Abs(pq[i].field), math.Abs(pq[j].field)
	if ai != aj {
		return ai > aj
	}
	if pq[i].field != pq[j].field {
		return pq[i].field < pq[j].field
	}
	return pq[i].v < pq[j].v
}
func (pq fieldPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *fieldPQ) Push(x interface{}) {
	*pq = append(*pq, x.(*fieldItem))
}
func (pq *fieldPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
