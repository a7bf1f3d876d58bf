// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package colorize

import (
	"fmt"

	"github.com/google/i2sfuzz/pkg/hash"
	"github.com/google/i2sfuzz/pkg/sample"
	"github.com/google/i2sfuzz/pkg/stat"
)

var (
	statSteps     = stat.New("colorize steps", "Colorization steps", stat.Rate{}, stat.Prometheus("i2s_colorize_steps"))
	statSuccesses = stat.New("colorize successes", "Colorization steps that kept control flow",
		stat.Prometheus("i2s_colorize_successes"))
	statFails = stat.New("colorize fails", "Colorization steps that changed control flow",
		stat.Prometheus("i2s_colorize_fails"))
	statResolved = stat.New("colorized bytes", "Distribution of colorized bytes per sample",
		stat.Distribution{})
)

// ExecFunc executes the target on s and returns the control flow signature of the execution.
// ok is false if the execution did not finish normally.
// A non-nil error aborts colorization.
type ExecFunc func(s *sample.Sample) (sig hash.Sig, ok bool, err error)

type Result struct {
	// BaselineFailed is set if the sample itself did not execute normally,
	// nothing is colorized in such case.
	BaselineFailed bool
	Steps          int
	Successes      int
	Fails          int
	Resolved       []sample.Range
}

// ColorizedBytes returns total size of the resolved ranges.
func (res *Result) ColorizedBytes() int {
	total := 0
	for _, r := range res.Resolved {
		total += r.Len()
	}
	return total
}

func (res *Result) String() string {
	return fmt.Sprintf("steps %v, successes %v, fails %v, colorized %v bytes",
		res.Steps, res.Successes, res.Fails, res.ColorizedBytes())
}

// Run colorizes s in place. maxSteps limits the number of steps, 0 means no limit.
func Run(c Colorizer, s *sample.Sample, exec ExecFunc, maxSteps int) (*Result, error) {
	res := new(Result)
	baseline, ok, err := exec(s)
	if err != nil {
		return nil, err
	}
	if !ok {
		res.BaselineFailed = true
		return res, nil
	}
	ctx := c.NewContext(s)
	for maxSteps == 0 || res.Steps < maxSteps {
		if !c.Step(s, ctx) {
			break
		}
		res.Steps++
		statSteps.Add(1)
		sig, ok, err := exec(s)
		if err != nil {
			return nil, err
		}
		if ok && sig == baseline {
			res.Successes++
			statSuccesses.Add(1)
			c.ReportSuccess(s, ctx)
		} else {
			res.Fails++
			statFails.Add(1)
			c.ReportFail(s, ctx)
		}
	}
	res.Resolved = ctx.Resolved()
	statResolved.Add(res.ColorizedBytes())
	return res, nil
}
