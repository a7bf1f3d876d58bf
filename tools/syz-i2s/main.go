// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build linux

// syz-i2s colorizes a directory of seeds and applies input-to-state mutations to them.
// Usage:
//
//	syz-i2s -config=i2s.cfg [-seeds=dir] [-workdir=dir] [-workers=N] [-rounds=N]
//
// Results are saved in a new session subdirectory of the workdir.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/i2sfuzz/pkg/i2s"
	"github.com/google/i2sfuzz/pkg/ipc"
	"github.com/google/i2sfuzz/pkg/log"
	"github.com/google/i2sfuzz/pkg/mgrconfig"
	"github.com/google/i2sfuzz/pkg/osutil"
	"github.com/google/i2sfuzz/pkg/runner"
	"github.com/google/i2sfuzz/pkg/stat"
	"github.com/google/i2sfuzz/pkg/tool"
	"github.com/google/uuid"
)

var (
	flagConfig  = flag.String("config", "", "configuration file")
	flagSeeds   = flag.String("seeds", "", "directory with seed samples (overrides config)")
	flagWorkdir = flag.String("workdir", "", "working directory (overrides config)")
	flagWorkers = flag.Int("workers", 0, "number of parallel workers (overrides config)")
	flagRounds  = flag.Int("rounds", 0, "number of mutation rounds per seed (overrides config)")
	flagSeed    = flag.Int64("seed", time.Now().UnixNano(), "seed for random number generators")
	flagHTTP    = flag.String("http", "", "address to serve metrics on (overrides config)")
	flagEnc     tool.ListFlag
)

func init() {
	flag.Var(&flagEnc, "encoders", "comma-separated list of encoders, e.g. zext4,sext2 (overrides config)")
}

func main() {
	defer tool.Init()()
	if *flagConfig == "" {
		tool.Failf("specify config with -config")
	}
	cfg, err := mgrconfig.LoadPartialFile(*flagConfig)
	if err != nil {
		tool.Fail(err)
	}
	applyFlags(cfg)
	if err := mgrconfig.Complete(cfg); err != nil {
		tool.Fail(err)
	}
	if cfg.HTTP != "" {
		log.EnableLogCaching(1000, 1<<20)
	}
	seeds, skipped, err := loadSeeds(cfg.Seeds, cfg.MaxSampleSize)
	if err != nil {
		tool.Fail(err)
	}
	if len(seeds) == 0 {
		tool.Failf("no seeds in %v", cfg.Seeds)
	}
	session := uuid.New().String()
	dir := filepath.Join(cfg.Workdir, session)
	if err := osutil.MkdirAll(dir); err != nil {
		tool.Failf("failed to create session dir: %v", err)
	}
	log.Logf(0, "session %v: %v seeds (%v skipped), %v workers, seed %v",
		session, len(seeds), len(skipped), cfg.Workers, *flagSeed)
	if cfg.HTTP != "" {
		serveHTTP(cfg)
	}
	ctx := osutil.HandleInterrupts(context.Background())
	go heartbeat(ctx)

	start := time.Now()
	runCfg := runner.Config{
		Workers:       cfg.Workers,
		Rounds:        cfg.Rounds,
		ColorizeSteps: cfg.ColorizeSteps,
		Seed:          *flagSeed,
		Mutator:       cfg.I2S(),
	}
	results, runErr := runner.Run(ctx, runCfg, seeds, func(worker int) (runner.Oracle, error) {
		env, err := ipc.MakeEnv(cfg.IPC())
		if err != nil {
			return nil, err
		}
		log.Logf(1, "worker %v: started %v", worker, env)
		return env, nil
	})
	rep := makeReport(cfg, session, results, skipped, time.Since(start))
	if err := saveResults(dir, results, cfg.Compress); err != nil {
		log.Fatalf("failed to save results: %v", err)
	}
	if err := saveReport(filepath.Join(dir, reportFile), rep); err != nil {
		log.Fatalf("failed to save report: %v", err)
	}
	switch {
	case runErr == nil, errors.Is(runErr, context.Canceled):
	case errors.Is(runErr, i2s.ErrDelivery):
		log.Fatalf("target does not accept inputs: %v", runErr)
	default:
		log.Fatalf("run failed: %v", runErr)
	}
	log.Logf(0, "done: %v/%v seeds processed, %v changed, results in %v",
		rep.Processed, len(seeds), rep.Changed, dir)
}

func applyFlags(cfg *mgrconfig.Config) {
	if *flagSeeds != "" {
		cfg.Seeds = *flagSeeds
	}
	if *flagWorkdir != "" {
		cfg.Workdir = *flagWorkdir
	}
	if *flagWorkers != 0 {
		cfg.Workers = *flagWorkers
	}
	if *flagRounds != 0 {
		cfg.Rounds = *flagRounds
	}
	if *flagHTTP != "" {
		cfg.HTTP = *flagHTTP
	}
	if len(flagEnc) != 0 {
		cfg.Encoders = flagEnc
	}
}

func heartbeat(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		buf := new(strings.Builder)
		for _, v := range stat.Collect(stat.Console) {
			fmt.Fprintf(buf, "%v: %v, ", v.Name, v.Value)
		}
		log.Logf(0, "%v", strings.TrimSuffix(buf.String(), ", "))
	}
}
