// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package i2s

import (
	"bytes"

	"github.com/google/i2sfuzz/pkg/sample"
)

// MatchingPositions returns all offsets in s where pattern occurs, in ascending order.
// Occurrences may overlap. An empty pattern does not match anywhere.
func MatchingPositions(s *sample.Sample, pattern []byte) []int {
	if len(pattern) == 0 {
		return nil
	}
	data := s.Bytes()
	var res []int
	for i := 0; i+len(pattern) <= len(data); i++ {
		if bytes.Equal(data[i:i+len(pattern)], pattern) {
			res = append(res, i)
		}
	}
	return res
}

// intersect returns elements present in both sorted slices.
func intersect(a, b []int) []int {
	var res []int
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			res = append(res, a[i])
			i++
			j++
		}
	}
	return res
}
