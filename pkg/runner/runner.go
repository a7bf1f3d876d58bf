// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package runner colorizes a fixed set of seeds and applies input-to-state
// mutations to them using a pool of workers, each with its own target instance.
package runner

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/i2sfuzz/pkg/colorize"
	"github.com/google/i2sfuzz/pkg/hash"
	"github.com/google/i2sfuzz/pkg/i2s"
	"github.com/google/i2sfuzz/pkg/ipc"
	"github.com/google/i2sfuzz/pkg/log"
	"github.com/google/i2sfuzz/pkg/sample"
	"github.com/google/i2sfuzz/pkg/stat"
	"golang.org/x/sync/errgroup"
)

// Oracle is a target instance owned by a single worker.
type Oracle interface {
	i2s.Oracle
	Close() error
}

// OracleFactory creates the target instance for the given worker.
type OracleFactory func(worker int) (Oracle, error)

type Config struct {
	Workers int
	// Rounds is the number of Mutate calls per seed.
	Rounds int
	// ColorizeSteps limits colorization steps per seed, 0 means no limit.
	ColorizeSteps int
	// Seed is the base seed for per-worker PRNGs.
	Seed    int64
	Mutator i2s.Config
}

type Result struct {
	Name string
	// Original is the seed itself.
	Original *sample.Sample
	// Mutated is the seed after all mutation rounds.
	Mutated *sample.Sample
	// Colorized is the colorized seed after all mutation rounds.
	Colorized *sample.Sample
	Colorize  *colorize.Result
	Rounds    int
	Successes int
}

// Changed says if mutations changed the seed.
func (res *Result) Changed() bool {
	return !res.Original.Equal(res.Mutated)
}

var (
	statSeeds = stat.New("seeds", "Processed seeds", stat.Console, stat.Prometheus("i2s_seeds"))
	statQueue = stat.New("seeds left", "Seeds waiting for processing", stat.Console)
)

// Run processes seeds and returns results in the order of seeds.
// On context cancellation Run stops between executions and returns results for the finished seeds
// (the rest are nil) together with the context error.
func Run(ctx context.Context, cfg Config, seeds []sample.File, newOracle OracleFactory) ([]*Result, error) {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	results := make([]*Result, len(seeds))
	statQueue.Add(len(seeds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers + 1)
	work := make(chan int)
	g.Go(func() error {
		defer close(work)
		for i := range seeds {
			select {
			case work <- i:
			case <-gctx.Done():
				return nil
			}
		}
		return nil
	})
	for id := 0; id < cfg.Workers; id++ {
		id := id
		g.Go(func() error {
			w, err := newWorker(id, cfg, newOracle)
			if err != nil {
				return err
			}
			defer w.close()
			for idx := range work {
				if gctx.Err() != nil {
					return nil
				}
				res, err := w.process(gctx, seeds[idx])
				if err != nil {
					return fmt.Errorf("seed %v: %w", seeds[idx].Name, err)
				}
				results[idx] = res
				statQueue.Add(-1)
				statSeeds.Add(1)
			}
			return nil
		})
	}
	err := g.Wait()
	for _, res := range results {
		if res == nil {
			statQueue.Add(-1)
		}
	}
	if err != nil {
		return results, err
	}
	return results, ctx.Err()
}

type worker struct {
	cfg       Config
	oracle    Oracle
	rnd       *rand.Rand
	mutator   *i2s.Mutator
	colorizer colorize.Colorizer
	logger    *log.Logger
}

func newWorker(id int, cfg Config, newOracle OracleFactory) (*worker, error) {
	oracle, err := newOracle(id)
	if err != nil {
		return nil, fmt.Errorf("worker %v: failed to create target: %w", id, err)
	}
	rnd := rand.New(rand.NewSource(cfg.Seed + int64(id)))
	w := &worker{
		cfg:       cfg,
		oracle:    oracle,
		rnd:       rnd,
		mutator:   i2s.NewMutator(oracle, cfg.Mutator),
		colorizer: colorize.NewSimple(rnd),
		logger:    log.NewLogger("worker %v", id),
	}
	w.mutator.Logger = w.logger
	return w, nil
}

func (w *worker) close() {
	if err := w.oracle.Close(); err != nil {
		w.logger.Logf(0, "failed to close target: %v", err)
	}
}

func (w *worker) exec(s *sample.Sample) (hash.Sig, bool, error) {
	trace, res, err := w.mutator.Trace(s)
	if err != nil {
		return hash.Sig{}, false, err
	}
	return trace.Signature(), res == ipc.Ok, nil
}

func (w *worker) process(ctx context.Context, seed sample.File) (*Result, error) {
	res := &Result{
		Name:      seed.Name,
		Original:  seed.Sample,
		Mutated:   seed.Sample.Clone(),
		Colorized: seed.Sample.Clone(),
	}
	var err error
	res.Colorize, err = colorize.Run(w.colorizer, res.Colorized, w.exec, w.cfg.ColorizeSteps)
	if err != nil {
		return nil, err
	}
	if res.Colorize.BaselineFailed {
		w.logger.Logf(1, "%v: seed does not execute normally, skipping", seed.Name)
		return res, nil
	}
	w.logger.Logf(2, "%v: colorized: %v", seed.Name, res.Colorize)
	for ; res.Rounds < w.cfg.Rounds && ctx.Err() == nil; res.Rounds++ {
		ok, err := w.mutator.Mutate(res.Mutated, res.Colorized, w.rnd)
		if err != nil {
			return nil, err
		}
		if ok {
			res.Successes++
		}
	}
	w.logger.Logf(1, "%v: %v bytes colorized, %v/%v successful i2s rounds",
		seed.Name, res.Colorize.ColorizedBytes(), res.Successes, res.Rounds)
	return res, nil
}
