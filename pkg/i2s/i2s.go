// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package i2s implements input-to-state mutations.
//
// The mutator executes an original sample and its colorized version,
// aligns comparisons of both executions and looks for operands that come
// directly from the sample. Such operands are located in both samples
// and replaced with the value they are compared against.
package i2s

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/google/i2sfuzz/pkg/cmplog"
	"github.com/google/i2sfuzz/pkg/ipc"
	"github.com/google/i2sfuzz/pkg/log"
	"github.com/google/i2sfuzz/pkg/sample"
	"github.com/google/i2sfuzz/pkg/stat"
)

// Oracle executes the target.
type Oracle interface {
	// Deliver makes s the input of the next Run.
	Deliver(s *sample.Sample) error
	// Reset brings the target to a clean state.
	Reset() error
	Run(argv []string, initTimeout, timeout time.Duration) ipc.RunResult
	// Comparisons returns comparisons executed by the last Run.
	Comparisons(clear bool) (cmplog.Trace, error)
}

// ErrDelivery is returned when a sample can't be delivered to the target even after a reset.
var ErrDelivery = errors.New("repeatedly failed to deliver sample")

type Config struct {
	Argv        []string
	InitTimeout time.Duration
	Timeout     time.Duration
	// Encoders are tried in order, DefaultEncoders are used if empty.
	Encoders []Encoder
}

type Mutator struct {
	oracle   Oracle
	cfg      Config
	encoders []Encoder
	// Logger is used for debug output, may be nil.
	Logger *log.Logger
}

// Mutation is an edit of an original sample and its colorized version at the same offset.
type Mutation struct {
	Pos       int
	Original  []byte
	Colorized []byte
}

func (m Mutation) String() string {
	return fmt.Sprintf("at 0x%x: original %x, colorized %x", m.Pos, m.Original, m.Colorized)
}

var (
	statCalls     = stat.New("i2s calls", "Input-to-state mutation attempts", stat.Rate{}, stat.Prometheus("i2s_calls"))
	statSuccesses = stat.New("i2s successes", "Input-to-state mutation attempts that changed the sample",
		stat.Console, stat.Prometheus("i2s_successes"))
	statMutations = stat.New("i2s mutations", "Applied input-to-state byte patches", stat.Prometheus("i2s_mutations"))
	statRetries   = stat.New("delivery retries", "Sample delivery retries after a target reset",
		stat.Prometheus("i2s_delivery_retries"))
	statNotOk = stat.New("failed execs", "Executions that did not finish normally",
		stat.Prometheus("i2s_failed_execs"))
)

func NewMutator(oracle Oracle, cfg Config) *Mutator {
	encoders := cfg.Encoders
	if len(encoders) == 0 {
		encoders = DefaultEncoders()
	}
	return &Mutator{
		oracle:   oracle,
		cfg:      cfg,
		encoders: slices.Clone(encoders),
	}
}

// Trace executes s and returns its comparison trace.
// The trace is nil if the execution did not finish normally.
// The error is non-nil only if the sample could not be delivered to the target.
func (m *Mutator) Trace(s *sample.Sample) (cmplog.Trace, ipc.RunResult, error) {
	if err := m.oracle.Deliver(s); err != nil {
		m.Logger.Logf(0, "error delivering sample, retrying with a clean target: %v", err)
		statRetries.Add(1)
		if err := m.oracle.Reset(); err != nil {
			return nil, ipc.Error, fmt.Errorf("%w: failed to reset target: %w", ErrDelivery, err)
		}
		if err := m.oracle.Deliver(s); err != nil {
			return nil, ipc.Error, fmt.Errorf("%w: %w", ErrDelivery, err)
		}
	}
	res := m.oracle.Run(m.cfg.Argv, m.cfg.InitTimeout, m.cfg.Timeout)
	trace, err := m.oracle.Comparisons(true)
	if res != ipc.Ok {
		statNotOk.Add(1)
		return nil, res, nil
	}
	if err != nil {
		m.Logger.Logf(1, "failed to read comparisons: %v", err)
		statNotOk.Add(1)
		return nil, ipc.Error, nil
	}
	return trace, res, nil
}

// Mutate tries to satisfy or flip one comparison that depends on sample bytes.
// On success both original and colorized are patched at the same offsets.
// If the colorized sample does not execute normally, original is replaced with colorized.
// The error is non-nil only if samples could not be delivered to the target.
func (m *Mutator) Mutate(original, colorized *sample.Sample, rnd *rand.Rand) (bool, error) {
	statCalls.Add(1)
	origTrace, res, err := m.Trace(original)
	if err != nil {
		return false, err
	}
	if res != ipc.Ok {
		m.Logger.Logf(2, "original sample execution failed: %v", res)
		return false, nil
	}
	colorTrace, res, err := m.Trace(colorized)
	if err != nil {
		return false, err
	}
	if res != ipc.Ok {
		m.Logger.Logf(2, "colorized sample execution failed: %v", res)
		original.Set(colorized)
		return false, nil
	}
	mutations := m.findMutations(original, colorized, origTrace, colorTrace, rnd)
	if len(mutations) == 0 {
		return false, nil
	}
	for _, mut := range mutations {
		m.Logger.Logf(2, "i2s mutation %v", mut)
		original.Replace(mut.Pos, mut.Pos+len(mut.Original), mut.Original)
		colorized.Replace(mut.Pos, mut.Pos+len(mut.Colorized), mut.Colorized)
	}
	statSuccesses.Add(1)
	statMutations.Add(len(mutations))
	return true, nil
}

func (m *Mutator) findMutations(original, colorized *sample.Sample, origTrace, colorTrace cmplog.Trace,
	rnd *rand.Rand) []Mutation {
	aligned := make(map[uint64]*cmplog.Record, len(origTrace))
	for _, rec := range origTrace {
		aligned[rec.Key()] = rec
	}
	for i := len(colorTrace) - 1; i >= 0; i-- {
		colorRec := colorTrace[i]
		origRec := aligned[colorRec.Key()]
		if origRec == nil {
			m.Logger.Logf(3, "no aligned comparison for %v", colorRec)
			continue
		}
		if sameOps(origRec.Ops, colorRec.Ops) ||
			len(origRec.Ops[0]) != len(colorRec.Ops[0]) || len(origRec.Ops[1]) != len(colorRec.Ops[1]) {
			continue
		}
		if mutations := m.recordMutations(original, colorized, origRec, colorRec, rnd); len(mutations) != 0 {
			return mutations
		}
	}
	return nil
}

func (m *Mutator) recordMutations(original, colorized *sample.Sample, origRec, colorRec *cmplog.Record,
	rnd *rand.Rand) []Mutation {
	type key struct {
		pos       int
		orig, col string
	}
	dedup := make(map[key]bool)
	var mutations []Mutation
	for _, swap := range []bool{false, true} {
		origOps, colorOps := origRec.Ops, colorRec.Ops
		if swap {
			origOps[0], origOps[1] = origOps[1], origOps[0]
			colorOps[0], colorOps[1] = colorOps[1], colorOps[0]
		}
		for _, enc := range m.encoders {
			if !enc.Applicable(origOps[0]) || !enc.Applicable(origOps[1]) ||
				!enc.Applicable(colorOps[0]) || !enc.Applicable(colorOps[1]) {
				continue
			}
			sign := 1
			if rnd.Intn(2) == 0 {
				sign = -1
			}
			origPattern := enc.Encode(origOps[0])
			origRepl := enc.Encode(AdjustBytes(origOps[1], origRec.Kind, sign))
			if slices.Equal(origPattern, origRepl) {
				continue
			}
			colorRepl := enc.Encode(AdjustBytes(colorOps[1], colorRec.Kind, sign))
			positions := intersect(
				MatchingPositions(original, origPattern),
				MatchingPositions(colorized, enc.Encode(colorOps[0])),
			)
			for _, pos := range positions {
				k := key{pos, string(origRepl), string(colorRepl)}
				if dedup[k] {
					continue
				}
				dedup[k] = true
				mutations = append(mutations, Mutation{
					Pos:       pos,
					Original:  origRepl,
					Colorized: colorRepl,
				})
			}
		}
	}
	return mutations
}

func sameOps(a, b [2][]byte) bool {
	return slices.Equal(a[0], b[0]) && slices.Equal(a[1], b[1])
}
