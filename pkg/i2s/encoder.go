// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package i2s

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/i2sfuzz/pkg/cmplog"
)

// Encoder transforms a comparison operand into the byte pattern
// that represents the operand in a sample.
type Encoder interface {
	// Encode returns the pattern of length Width for op.
	Encode(op []byte) []byte
	// Applicable says if op can be represented by the encoder without losing information.
	Applicable(op []byte) bool
	Width() int
	String() string
}

type extension int

const (
	zeroExtension extension = iota
	signExtension
)

type encoder struct {
	width    int
	ext      extension
	reversed bool
}

func ZeroExtend(width int, reversed bool) Encoder {
	return newEncoder(width, zeroExtension, reversed)
}

func SignExtend(width int, reversed bool) Encoder {
	return newEncoder(width, signExtension, reversed)
}

func newEncoder(width int, ext extension, reversed bool) *encoder {
	switch width {
	case 1, 2, 4, 8:
	default:
		panic(fmt.Sprintf("bad encoder width %v", width))
	}
	return &encoder{width: width, ext: ext, reversed: reversed}
}

// DefaultEncoders returns encoders tried by the mutator by default, wider encoders first.
func DefaultEncoders() []Encoder {
	return []Encoder{
		ZeroExtend(8, false),
		ZeroExtend(4, false),
		ZeroExtend(2, false),
		ZeroExtend(1, false),
		SignExtend(8, false),
		SignExtend(4, false),
		SignExtend(2, false),
		ZeroExtend(8, true),
		ZeroExtend(4, true),
		ZeroExtend(2, true),
	}
}

// ParseEncoder parses encoder names like "zext4", "sext2" or "zext8be".
func ParseEncoder(name string) (Encoder, error) {
	base, reversed := strings.CutSuffix(name, "be")
	var ext extension
	switch {
	case strings.HasPrefix(base, "zext"):
		ext = zeroExtension
	case strings.HasPrefix(base, "sext"):
		ext = signExtension
	default:
		return nil, fmt.Errorf("unknown encoder %q", name)
	}
	width, err := strconv.Atoi(base[len("zext"):])
	if err != nil || width != 1 && width != 2 && width != 4 && width != 8 {
		return nil, fmt.Errorf("bad encoder %q width", name)
	}
	return newEncoder(width, ext, reversed), nil
}

func (enc *encoder) Width() int {
	return enc.width
}

func (enc *encoder) String() string {
	name := "zext"
	if enc.ext == signExtension {
		name = "sext"
	}
	name += strconv.Itoa(enc.width)
	if enc.reversed {
		name += "be"
	}
	return name
}

func (enc *encoder) Applicable(op []byte) bool {
	if len(op) <= enc.width {
		return true
	}
	fill := enc.fill(op)
	for _, v := range op[enc.width:] {
		if v != fill {
			return false
		}
	}
	return true
}

func (enc *encoder) Encode(op []byte) []byte {
	res := make([]byte, enc.width)
	n := copy(res, op)
	if n < enc.width {
		fill := enc.fill(op)
		for i := n; i < enc.width; i++ {
			res[i] = fill
		}
	}
	if enc.reversed {
		for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
			res[i], res[j] = res[j], res[i]
		}
	}
	return res
}

// fill returns the byte that extends op beyond the encoder width
// (or beyond its own length for short operands).
func (enc *encoder) fill(op []byte) byte {
	if enc.ext == zeroExtension || len(op) == 0 {
		return 0
	}
	top := op[len(op)-1]
	if len(op) > enc.width {
		top = op[enc.width-1]
	}
	if top&0x80 != 0 {
		return 0xff
	}
	return 0
}

// AdjustBytes returns a copy of op with the lowest byte moved by sign (+1 or -1, wrapping around)
// for strict ordering comparisons. For other comparison kinds op is returned as is.
func AdjustBytes(op []byte, kind cmplog.Kind, sign int) []byte {
	res := append([]byte{}, op...)
	if len(res) == 0 {
		return res
	}
	switch kind {
	case cmplog.LessUnsigned, cmplog.LessSigned:
		res[0] += byte(sign)
	}
	return res
}
