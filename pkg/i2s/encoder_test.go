// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package i2s

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/google/i2sfuzz/pkg/cmplog"
	"github.com/google/i2sfuzz/pkg/sample"
	"github.com/google/i2sfuzz/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		enc        Encoder
		op         []byte
		applicable bool
		encoded    []byte
	}{
		{ZeroExtend(4, false), []byte{0xef, 0xbe, 0xad, 0xde}, true, []byte{0xef, 0xbe, 0xad, 0xde}},
		{ZeroExtend(2, false), []byte{0xef, 0xbe, 0xad, 0xde}, false, []byte{0xef, 0xbe}},
		{ZeroExtend(2, false), []byte{0x37, 0x13, 0, 0}, true, []byte{0x37, 0x13}},
		{ZeroExtend(8, false), []byte{0x37, 0x13, 0, 0}, true, []byte{0x37, 0x13, 0, 0, 0, 0, 0, 0}},
		{ZeroExtend(4, true), []byte{0x37, 0x13, 0, 0}, true, []byte{0, 0, 0x13, 0x37}},
		{ZeroExtend(1, false), []byte{0x37, 0x13}, false, []byte{0x37}},
		{SignExtend(2, false), []byte{0xfe, 0xff, 0xff, 0xff}, true, []byte{0xfe, 0xff}},
		{SignExtend(1, false), []byte{0xfe, 0xff, 0xff, 0xff}, true, []byte{0xfe}},
		{SignExtend(2, false), []byte{0xfe, 0x7f, 0xff, 0xff}, false, []byte{0xfe, 0x7f}},
		{SignExtend(2, false), []byte{0xfe, 0x7f, 0, 0}, true, []byte{0xfe, 0x7f}},
		{SignExtend(8, false), []byte{0xfe, 0xff}, true, []byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{SignExtend(4, true), []byte{0x01, 0x80}, true, []byte{0xff, 0xff, 0x80, 0x01}},
		{ZeroExtend(4, false), nil, true, []byte{0, 0, 0, 0}},
	}
	for _, test := range tests {
		assert.Equal(t, test.applicable, test.enc.Applicable(test.op), "%v %x", test.enc, test.op)
		assert.Equal(t, test.encoded, test.enc.Encode(test.op), "%v %x", test.enc, test.op)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	rnd := rand.New(testutil.RandSource(t))
	encoders := DefaultEncoders()
	for _, width := range []int{1, 2, 4, 8} {
		encoders = append(encoders, SignExtend(width, true), ZeroExtend(width, true), SignExtend(width, false))
	}
	for i := 0; i < testutil.IterCount(); i++ {
		enc := encoders[rnd.Intn(len(encoders))]
		op := randOperand(rnd, enc.Width())
		if !enc.Applicable(op) {
			continue
		}
		encoded := enc.Encode(op)
		require.Len(t, encoded, enc.Width())
		// Pad the encoding back to the operand size and encode again.
		natural := append([]byte{}, encoded...)
		if enc.String()[len(enc.String())-2:] == "be" {
			natural = reverse(natural)
		}
		padded := append(natural, op[enc.Width():]...)
		assert.Equal(t, op, padded, "%v", enc)
		assert.Equal(t, encoded, enc.Encode(padded), "%v %x", enc, op)
	}
}

// randOperand returns an operand of 1/2/4/8 bytes no shorter than width
// that is often extensible from width.
func randOperand(rnd *rand.Rand, width int) []byte {
	sizes := []int{1, 2, 4, 8}
	size := sizes[rnd.Intn(len(sizes))]
	if size < width {
		size = width
	}
	op := make([]byte, size)
	rnd.Read(op[:width])
	var fill byte
	switch rnd.Intn(3) {
	case 0:
		fill = 0xff
	case 1:
		fill = byte(rnd.Intn(256))
	}
	for i := width; i < size; i++ {
		op[i] = fill
	}
	return op
}

func reverse(data []byte) []byte {
	res := make([]byte, len(data))
	for i, v := range data {
		res[len(data)-1-i] = v
	}
	return res
}

func TestAdjustBytes(t *testing.T) {
	rnd := rand.New(testutil.RandSource(t))
	kinds := []cmplog.Kind{
		cmplog.LessUnsigned, cmplog.LessEqualUnsigned, cmplog.LessSigned,
		cmplog.LessEqualSigned, cmplog.Equal, cmplog.Other,
	}
	for i := 0; i < testutil.IterCount(); i++ {
		op := testutil.RandBytes(rnd, 1, 8)
		kind := kinds[rnd.Intn(len(kinds))]
		sign := 1 - 2*rnd.Intn(2)
		res := AdjustBytes(op, kind, sign)
		require.Len(t, res, len(op))
		assert.Equal(t, op[1:], res[1:])
		delta := int(int8(res[0] - op[0]))
		switch kind {
		case cmplog.LessUnsigned, cmplog.LessSigned:
			assert.Equal(t, sign, delta)
		default:
			assert.Equal(t, 0, delta)
		}
	}
	op := []byte{0xff, 0x12}
	assert.Equal(t, []byte{0x00, 0x12}, AdjustBytes(op, cmplog.LessUnsigned, 1))
	assert.Equal(t, []byte{0xff, 0x12}, op)
	assert.Equal(t, []byte{}, AdjustBytes(nil, cmplog.LessSigned, -1))
}

func TestParseEncoder(t *testing.T) {
	for _, name := range []string{"zext1", "zext8", "sext2", "sext4be", "zext4be"} {
		enc, err := ParseEncoder(name)
		require.NoError(t, err)
		assert.Equal(t, name, enc.String())
	}
	for _, name := range []string{"", "zext", "zext3", "sext16", "foo4", "zext4le"} {
		_, err := ParseEncoder(name)
		assert.Error(t, err, name)
	}
	assert.Panics(t, func() { ZeroExtend(3, false) })
}

func TestMatchingPositions(t *testing.T) {
	s := sample.New([]byte("abababa"))
	assert.Equal(t, []int{0, 2, 4}, MatchingPositions(s, []byte("aba")))
	assert.Equal(t, []int{6}, MatchingPositions(s, []byte("a"))[3:])
	assert.Nil(t, MatchingPositions(s, nil))
	assert.Nil(t, MatchingPositions(s, []byte("abababab")))

	rnd := rand.New(testutil.RandSource(t))
	for i := 0; i < testutil.IterCount(); i++ {
		data := make([]byte, rnd.Intn(64))
		for j := range data {
			data[j] = byte(rnd.Intn(3))
		}
		pattern := make([]byte, 1+rnd.Intn(3))
		for j := range pattern {
			pattern[j] = byte(rnd.Intn(3))
		}
		var expected []int
		for j := range data {
			if bytes.HasPrefix(data[j:], pattern) {
				expected = append(expected, j)
			}
		}
		assert.Equal(t, expected, MatchingPositions(sample.New(data), pattern))
	}
}

func TestIntersect(t *testing.T) {
	assert.Equal(t, []int{2, 5}, intersect([]int{1, 2, 5, 7}, []int{0, 2, 3, 5}))
	assert.Nil(t, intersect([]int{1}, nil))
}
