// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package colorize replaces sample bytes that do not influence control flow with random noise.
//
// Colorization bisects the sample: the largest not yet resolved range is randomized,
// the target is re-executed and, if the control flow did not change, the range stays
// randomized for good. Otherwise the original bytes are restored and both halves of
// the range are tried separately. Colorization finishes when only single-byte ranges remain.
package colorize

import (
	"fmt"
	"math/rand"

	"github.com/google/i2sfuzz/pkg/sample"
)

type Colorizer interface {
	// NewContext creates colorization state for s.
	NewContext(s *sample.Sample) *Context
	// Step randomizes the next range of s.
	// Returns false if colorization is finished, s is not changed in such case.
	Step(s *sample.Sample, ctx *Context) bool
	// ReportSuccess says that the last step did not change control flow.
	ReportSuccess(s *sample.Sample, ctx *Context)
	// ReportFail says that the last step changed control flow.
	ReportFail(s *sample.Sample, ctx *Context)
}

// Context holds colorization state of a single sample.
type Context struct {
	queue    rangeQueue
	pending  *sample.Range
	backup   []byte
	resolved []sample.Range
}

// Pending returns the ranges that are not yet resolved, in priority order.
func (ctx *Context) Pending() []sample.Range {
	var res []sample.Range
	tmp := rangeQueue{impl: append(rangeQueueImpl{}, ctx.queue.impl...)}
	for tmp.Len() != 0 {
		res = append(res, tmp.pop())
	}
	return res
}

// Resolved returns the ranges that were randomized without changing control flow.
func (ctx *Context) Resolved() []sample.Range {
	return ctx.resolved
}

// Simple is the bisecting colorizer.
type Simple struct {
	rnd *rand.Rand
}

func NewSimple(rnd *rand.Rand) *Simple {
	return &Simple{rnd: rnd}
}

func (c *Simple) NewContext(s *sample.Sample) *Context {
	ctx := new(Context)
	if s.Len() != 0 {
		ctx.queue.push(sample.MakeRange(0, s.Len()))
	}
	return ctx
}

func (c *Simple) Step(s *sample.Sample, ctx *Context) bool {
	if ctx.pending != nil {
		panic("colorize step without report for the previous step")
	}
	r, ok := ctx.queue.top()
	if !ok || r.Len() <= 1 {
		return false
	}
	ctx.backup = append(ctx.backup[:0], s.Bytes()[r.From:r.To]...)
	ctx.pending = &r
	s.Randomize(r.From, r.To, c.rnd)
	return true
}

func (c *Simple) ReportSuccess(s *sample.Sample, ctx *Context) {
	r := c.finishStep(ctx)
	ctx.resolved = append(ctx.resolved, r)
}

func (c *Simple) ReportFail(s *sample.Sample, ctx *Context) {
	r := c.finishStep(ctx)
	s.Replace(r.From, r.To, ctx.backup)
	left, right := r.Split()
	ctx.queue.push(left)
	ctx.queue.push(right)
}

func (c *Simple) finishStep(ctx *Context) sample.Range {
	if ctx.pending == nil {
		panic("colorize report without a step")
	}
	r := *ctx.pending
	ctx.pending = nil
	if top := ctx.queue.pop(); top != r {
		panic(fmt.Sprintf("colorize queue top %v does not match pending range %v", top, r))
	}
	return r
}
