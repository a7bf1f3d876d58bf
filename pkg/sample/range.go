// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package sample

import "fmt"

// Range is a non-empty half-open range [From, To) of sample offsets.
type Range struct {
	From int
	To   int
}

func MakeRange(from, to int) Range {
	if from < 0 || to <= from {
		panic(fmt.Sprintf("invalid range [%v, %v)", from, to))
	}
	return Range{From: from, To: to}
}

func (r Range) Len() int {
	return r.To - r.From
}

// Before says if r goes before other in colorization order:
// longer ranges first, ranges of equal length by start offset.
func (r Range) Before(other Range) bool {
	if r.Len() != other.Len() {
		return r.Len() > other.Len()
	}
	return r.From < other.From
}

// Split splits the range at the midpoint (rounded down).
func (r Range) Split() (Range, Range) {
	mid := r.From + r.Len()/2
	return Range{r.From, mid}, Range{mid, r.To}
}

func (r Range) String() string {
	return fmt.Sprintf("[%v, %v)", r.From, r.To)
}
