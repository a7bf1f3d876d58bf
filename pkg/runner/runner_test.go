// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package runner

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/i2sfuzz/pkg/cmplog"
	"github.com/google/i2sfuzz/pkg/i2s"
	"github.com/google/i2sfuzz/pkg/ipc"
	"github.com/google/i2sfuzz/pkg/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTarget is an in-process target that checks two magic values:
// a little-endian uint32 at offset 4 and a little-endian uint16 at offset 10.
type testTarget struct {
	input  []byte
	trace  cmplog.Trace
	closed *atomic.Int32
}

func (target *testTarget) Deliver(s *sample.Sample) error {
	target.input = append([]byte{}, s.Bytes()...)
	return nil
}

func (target *testTarget) Reset() error {
	return nil
}

func (target *testTarget) Run(argv []string, initTimeout, timeout time.Duration) ipc.RunResult {
	data := target.input
	target.trace = nil
	if len(data) < 12 {
		return ipc.Ok
	}
	magic1 := binary.LittleEndian.Uint32(data[4:])
	target.trace = append(target.trace, &cmplog.Record{
		BlockOffset: 0x100,
		CmpOffset:   0x10,
		Ops:         [2][]byte{data[4:8], binary.LittleEndian.AppendUint32(nil, 0xcafebabe)},
		Kind:        cmplog.Equal,
		Taken:       magic1 == 0xcafebabe,
	})
	if magic1 != 0xcafebabe {
		return ipc.Ok
	}
	magic2 := binary.LittleEndian.Uint16(data[10:])
	target.trace = append(target.trace, &cmplog.Record{
		BlockOffset: 0x200,
		CmpOffset:   0x4,
		Ops:         [2][]byte{data[10:12], binary.LittleEndian.AppendUint16(nil, 0x4242)},
		Kind:        cmplog.Equal,
		Taken:       magic2 == 0x4242,
	})
	if magic2 == 0x4242 && data[0] == 'x' {
		return ipc.Crash
	}
	return ipc.Ok
}

func (target *testTarget) Comparisons(clear bool) (cmplog.Trace, error) {
	trace := target.trace
	if clear {
		target.trace = nil
	}
	return trace, nil
}

func (target *testTarget) Close() error {
	target.closed.Add(1)
	return nil
}

func testSeeds(n int) []sample.File {
	var seeds []sample.File
	for i := 0; i < n; i++ {
		seeds = append(seeds, sample.File{
			Name:   fmt.Sprintf("seed%v", i),
			Sample: sample.New([]byte(fmt.Sprintf("%x123456789abcdef", i%10))),
		})
	}
	return seeds
}

func TestRun(t *testing.T) {
	var closed atomic.Int32
	cfg := Config{
		Workers: 3,
		Rounds:  4,
		Seed:    1,
		Mutator: i2s.Config{Encoders: i2s.DefaultEncoders()},
	}
	seeds := testSeeds(10)
	results, err := Run(context.Background(), cfg, seeds, func(worker int) (Oracle, error) {
		return &testTarget{closed: &closed}, nil
	})
	require.NoError(t, err)
	require.Len(t, results, len(seeds))
	assert.Equal(t, int32(cfg.Workers), closed.Load())
	for i, res := range results {
		require.NotNil(t, res)
		assert.Equal(t, seeds[i].Name, res.Name)
		assert.False(t, res.Colorize.BaselineFailed)
		assert.Equal(t, 16, res.Colorize.ColorizedBytes())
		assert.Equal(t, 4, res.Rounds)
		assert.Equal(t, 2, res.Successes)
		assert.True(t, res.Changed())
		data := res.Mutated.Bytes()
		assert.Equal(t, uint32(0xcafebabe), binary.LittleEndian.Uint32(data[4:]), "%q", data)
		assert.Equal(t, uint16(0x4242), binary.LittleEndian.Uint16(data[10:]), "%q", data)
		// Bytes that are not compared stay intact.
		assert.Equal(t, seeds[i].Sample.Bytes()[:4], data[:4])
		assert.Equal(t, seeds[i].Sample.Bytes()[12:], data[12:])
	}
}

func TestRunBaselineFailed(t *testing.T) {
	var closed atomic.Int32
	seeds := []sample.File{{Name: "crasher", Sample: sample.New([]byte("x123\xbe\xba\xfe\xca89BBcdef"))}}
	results, err := Run(context.Background(), Config{Rounds: 2}, seeds, func(worker int) (Oracle, error) {
		return &testTarget{closed: &closed}, nil
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Colorize.BaselineFailed)
	assert.Equal(t, 0, results[0].Rounds)
	assert.False(t, results[0].Changed())
}

func TestRunOracleError(t *testing.T) {
	queued := statQueue.Val()
	_, err := Run(context.Background(), Config{Workers: 2, Rounds: 1}, testSeeds(5),
		func(worker int) (Oracle, error) {
			return nil, errors.New("no target")
		})
	assert.ErrorContains(t, err, "failed to create target: no target")
	assert.Equal(t, queued, statQueue.Val())
}

func TestRunCanceled(t *testing.T) {
	var closed atomic.Int32
	queued := statQueue.Val()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := Run(ctx, Config{Workers: 2, Rounds: 1}, testSeeds(5), func(worker int) (Oracle, error) {
		return &testTarget{closed: &closed}, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 5)
	assert.Equal(t, queued, statQueue.Val())
}
