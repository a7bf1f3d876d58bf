// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package sample contains the fuzzer input representation (Sample) and byte ranges within it.
package sample

import (
	"bytes"
	"fmt"
	"math/rand"

	"github.com/google/i2sfuzz/pkg/hash"
)

// Sample is a mutable fuzzer input.
// It is not safe for concurrent use.
type Sample struct {
	data []byte
}

// New creates a sample holding a copy of data.
func New(data []byte) *Sample {
	return &Sample{data: append([]byte{}, data...)}
}

func (s *Sample) Len() int {
	return len(s.data)
}

// Bytes returns the underlying buffer. The buffer is valid until the next modification.
func (s *Sample) Bytes() []byte {
	return s.data
}

func (s *Sample) Clone() *Sample {
	return New(s.data)
}

// Set makes s a copy of other.
func (s *Sample) Set(other *Sample) {
	s.data = append(s.data[:0], other.data...)
}

func (s *Sample) Equal(other *Sample) bool {
	return bytes.Equal(s.data, other.data)
}

func (s *Sample) Hash() hash.Sig {
	return hash.Hash(s.data)
}

func (s *Sample) String() string {
	return fmt.Sprintf("sample[%v] %v", len(s.data), hash.String(s.data))
}

// Replace overwrites [from, to) with data.
// len(data) does not need to be equal to to-from, in such case the sample grows or shrinks.
func (s *Sample) Replace(from, to int, data []byte) {
	s.checkBounds(from, to)
	if len(data) == to-from {
		copy(s.data[from:], data)
		return
	}
	tail := append([]byte{}, s.data[to:]...)
	s.data = append(append(s.data[:from], data...), tail...)
}

// Randomize overwrites [from, to) with random bytes from rnd.
func (s *Sample) Randomize(from, to int, rnd *rand.Rand) {
	s.checkBounds(from, to)
	for i := from; i < to; i++ {
		s.data[i] = byte(rnd.Intn(256))
	}
}

func (s *Sample) checkBounds(from, to int) {
	if from < 0 || from > to || to > len(s.data) {
		panic(fmt.Sprintf("bad range [%v, %v) for sample of size %v", from, to, len(s.data)))
	}
}
