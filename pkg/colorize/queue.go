// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package colorize

import (
	"container/heap"

	"github.com/google/i2sfuzz/pkg/sample"
)

// rangeQueue is a max-priority queue of ranges ordered by sample.Range.Before.
type rangeQueue struct {
	impl rangeQueueImpl
}

func (q *rangeQueue) Len() int {
	return q.impl.Len()
}

func (q *rangeQueue) push(r sample.Range) {
	heap.Push(&q.impl, r)
}

// top returns the highest priority range without removing it.
func (q *rangeQueue) top() (sample.Range, bool) {
	if len(q.impl) == 0 {
		return sample.Range{}, false
	}
	return q.impl[0], true
}

func (q *rangeQueue) pop() sample.Range {
	return heap.Pop(&q.impl).(sample.Range)
}

// The implementation below is based on the example provided
// by https://pkg.go.dev/container/heap.

type rangeQueueImpl []sample.Range

func (rq rangeQueueImpl) Len() int { return len(rq) }

func (rq rangeQueueImpl) Less(i, j int) bool {
	return rq[i].Before(rq[j])
}

func (rq rangeQueueImpl) Swap(i, j int) {
	rq[i], rq[j] = rq[j], rq[i]
}

func (rq *rangeQueueImpl) Push(x any) {
	*rq = append(*rq, x.(sample.Range))
}

func (rq *rangeQueueImpl) Pop() any {
	n := len(*rq)
	item := (*rq)[n-1]
	*rq = (*rq)[:n-1]
	return item
}
