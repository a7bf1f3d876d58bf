// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build linux

package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/i2sfuzz/pkg/log"
	"github.com/google/i2sfuzz/pkg/mgrconfig"
	"github.com/google/i2sfuzz/pkg/osutil"
	"github.com/google/i2sfuzz/pkg/runner"
	"github.com/google/i2sfuzz/pkg/sample"
	"gopkg.in/yaml.v3"
)

const (
	reportFile   = "report.yaml"
	colorizedDir = "colorized"
	mutatedDir   = "mutated"
)

type Report struct {
	Name      string         `yaml:"name,omitempty"`
	Session   string         `yaml:"session"`
	Target    []string       `yaml:"target"`
	Delivery  string         `yaml:"delivery"`
	Duration  time.Duration  `yaml:"duration"`
	Seeds     int            `yaml:"seeds"`
	Processed int            `yaml:"processed"`
	Changed   int            `yaml:"changed"`
	Skipped   []string       `yaml:"skipped,omitempty"`
	Samples   []SampleReport `yaml:"samples"`
}

type SampleReport struct {
	Name           string `yaml:"name"`
	Hash           string `yaml:"hash"`
	Size           int    `yaml:"size"`
	BaselineFailed bool   `yaml:"baseline_failed,omitempty"`
	ColorizeSteps  int    `yaml:"colorize_steps"`
	ColorizedBytes int    `yaml:"colorized_bytes"`
	Rounds         int    `yaml:"rounds"`
	Successes      int    `yaml:"successes"`
	Changed        bool   `yaml:"changed"`
}

// loadSeeds loads seeds from dir, seeds larger than maxSize are returned in skipped.
func loadSeeds(dir string, maxSize int) ([]sample.File, []string, error) {
	files, err := sample.LoadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	var seeds []sample.File
	var skipped []string
	for _, f := range files {
		if f.Sample.Len() > maxSize {
			log.Logf(1, "skipping %v: size %v exceeds max_sample_size %v", f.Name, f.Sample.Len(), maxSize)
			skipped = append(skipped, f.Name)
			continue
		}
		seeds = append(seeds, f)
	}
	return seeds, skipped, nil
}

func makeReport(cfg *mgrconfig.Config, session string, results []*runner.Result, skipped []string,
	duration time.Duration) *Report {
	rep := &Report{
		Name:     cfg.Name,
		Session:  session,
		Target:   cfg.Target,
		Delivery: cfg.Delivery,
		Duration: duration.Truncate(time.Second),
		Seeds:    len(results),
		Skipped:  skipped,
	}
	for _, res := range results {
		if res == nil {
			continue
		}
		rep.Processed++
		sr := SampleReport{
			Name:           filepath.Base(res.Name),
			Hash:           res.Original.Hash().String(),
			Size:           res.Original.Len(),
			BaselineFailed: res.Colorize.BaselineFailed,
			ColorizeSteps:  res.Colorize.Steps,
			ColorizedBytes: res.Colorize.ColorizedBytes(),
			Rounds:         res.Rounds,
			Successes:      res.Successes,
			Changed:        res.Changed(),
		}
		if sr.Changed {
			rep.Changed++
		}
		rep.Samples = append(rep.Samples, sr)
	}
	return rep
}

func saveReport(filename string, rep *Report) error {
	buf := new(bytes.Buffer)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return osutil.WriteFile(filename, buf.Bytes())
}

// saveResults stores colorized and mutated samples of finished seeds in dir.
func saveResults(dir string, results []*runner.Result, compress bool) error {
	for _, sub := range []string{colorizedDir, mutatedDir} {
		if err := osutil.MkdirAll(filepath.Join(dir, sub)); err != nil {
			return err
		}
	}
	ext := ""
	if compress {
		ext = ".xz"
	}
	used := make(map[string]bool)
	for _, res := range results {
		if res == nil || res.Colorize.BaselineFailed {
			continue
		}
		name := outputName(res.Name, used)
		if err := sample.Save(filepath.Join(dir, colorizedDir, name+ext), res.Colorized); err != nil {
			return err
		}
		if !res.Changed() {
			continue
		}
		if err := sample.Save(filepath.Join(dir, mutatedDir, name+ext), res.Mutated); err != nil {
			return err
		}
	}
	return nil
}

// outputName returns a unique output file name (without extension) for the seed file.
// Seeds "a" and "a.xz" both map to "a", so the second one gets a numeric suffix.
func outputName(seed string, used map[string]bool) string {
	base := strings.TrimSuffix(filepath.Base(seed), ".xz")
	name := base
	for i := 1; used[name]; i++ {
		name = fmt.Sprintf("%v-%v", base, i)
	}
	used[name] = true
	return name
}
