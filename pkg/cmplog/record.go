// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package cmplog contains comparison traces collected from an instrumented target
// and their flatbuffers wire format (see cmplog.fbs).
package cmplog

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/google/i2sfuzz/pkg/hash"
)

//go:generate flatc --go --gen-object-api -o .. cmplog.fbs

type Kind = ComparisonKindRaw

const (
	LessUnsigned      = ComparisonKindRawLessUnsigned
	LessEqualUnsigned = ComparisonKindRawLessEqualUnsigned
	LessSigned        = ComparisonKindRawLessSigned
	LessEqualSigned   = ComparisonKindRawLessEqualSigned
	Equal             = ComparisonKindRawEqual
	Other             = ComparisonKindRawOther
)

// Record is a single comparison executed by the target.
// Operands are in little-endian byte order.
type Record struct {
	BlockOffset  uint64
	CmpOffset    uint64
	BlockAddress uint64
	Ops          [2][]byte
	Kind         Kind
	Taken        bool
}

// Key identifies the comparison instruction across executions.
// Different instructions may collide, this is tolerated.
func (rec *Record) Key() uint64 {
	return rec.BlockOffset<<32 | rec.CmpOffset&0xffffffff
}

func (rec *Record) String() string {
	return fmt.Sprintf("cmp 0x%x+0x%x %v %x %x taken=%v",
		rec.BlockOffset, rec.CmpOffset, rec.Kind, rec.Ops[0], rec.Ops[1], rec.Taken)
}

// Trace is a sequence of comparisons in execution order.
type Trace []*Record

// Signature summarizes control flow of the execution:
// two executions with equal signatures executed the same comparisons with the same outcomes.
func (trace Trace) Signature() hash.Sig {
	b := hash.NewBuilder()
	for _, rec := range trace {
		b.Uint64(rec.Key())
		b.Bool(rec.Taken)
	}
	return b.Sig()
}

// Marshal serializes trace into a size-prefixed TraceRaw buffer.
func Marshal(trace Trace) []byte {
	raw := &TraceRawT{Records: make([]*ComparisonRawT, len(trace))}
	for i, rec := range trace {
		raw.Records[i] = &ComparisonRawT{
			BlockOffset:  rec.BlockOffset,
			CmpOffset:    rec.CmpOffset,
			BlockAddress: rec.BlockAddress,
			Op1:          rec.Ops[0],
			Op2:          rec.Ops[1],
			Kind:         rec.Kind,
			Taken:        rec.Taken,
		}
	}
	builder := flatbuffers.NewBuilder(0)
	builder.FinishSizePrefixed(raw.Pack(builder))
	return builder.FinishedBytes()
}

// Unmarshal parses a size-prefixed TraceRaw buffer.
// Trailing bytes after the buffer are ignored, a zero size prefix denotes an empty trace.
// Returned records do not reference data.
func Unmarshal(data []byte) (trace Trace, err error) {
	if len(data) < flatbuffers.SizeUint32 {
		return nil, fmt.Errorf("comparison trace is too short (%v bytes)", len(data))
	}
	size := uint64(flatbuffers.GetSizePrefix(data, 0))
	if size == 0 {
		return nil, nil
	}
	if size > uint64(len(data)-flatbuffers.SizeUint32) {
		return nil, fmt.Errorf("comparison trace size %v overflows buffer of %v bytes", size, len(data))
	}
	data = data[:flatbuffers.SizeUint32+size]
	defer func() {
		if e := recover(); e != nil {
			trace, err = nil, fmt.Errorf("malformed comparison trace: %v", e)
		}
	}()
	root := GetSizePrefixedRootAsTraceRaw(data, 0)
	if n := root.RecordsLength(); n > len(data)/flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("malformed comparison trace: %v records in %v bytes", n, len(data))
	}
	raw := root.UnPack()
	trace = make(Trace, len(raw.Records))
	for i, r := range raw.Records {
		trace[i] = &Record{
			BlockOffset:  r.BlockOffset,
			CmpOffset:    r.CmpOffset,
			BlockAddress: r.BlockAddress,
			Ops:          [2][]byte{clone(r.Op1), clone(r.Op2)},
			Kind:         r.Kind,
			Taken:        r.Taken,
		}
	}
	return trace, nil
}

func clone(data []byte) []byte {
	if data == nil {
		return []byte{}
	}
	return append([]byte{}, data...)
}
