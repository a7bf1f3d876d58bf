// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package stat

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/VividCortex/gohistogram"
	"github.com/prometheus/client_golang/prometheus"
)

// This file provides prometheus/streamz style metrics (Val type) for instrumenting code for monitoring.
// It also provides a registry for such metrics (set type) and a global default registry.
//
// Simple uses of metrics:
//
//	statFoo := stat.New("metric name", "metric description")
//	statFoo.Add(1)
//
//	stat.New("metric name", "metric description", stat.Rate{}, stat.Prometheus("i2s_foo"))
//
// Console heartbeat and the HTTP stats page use Collect to obtain values of all registered metrics.

type UI struct {
	Name  string
	Desc  string
	Level Level
	Value string
	V     int
}

func New(name, desc string, opts ...any) *Val {
	return global.New(name, desc, opts...)
}

func Collect(level Level) []UI {
	return global.Collect(level)
}

var global = newSet()

type set struct {
	mu    sync.Mutex
	vals  map[string]*Val
	start time.Time
}

const histogramBuckets = 255

func newSet() *set {
	return &set{
		vals:  make(map[string]*Val),
		start: time.Now(),
	}
}

func (s *set) Collect(level Level) []UI {
	s.mu.Lock()
	defer s.mu.Unlock()
	period := time.Since(s.start)
	if period < time.Second {
		period = time.Second
	}
	var res []UI
	for _, v := range s.vals {
		if v.level < level {
			continue
		}
		val := v.Val()
		res = append(res, UI{
			Name:  v.name,
			Desc:  v.desc,
			Level: v.level,
			Value: v.fmt(val, period),
			V:     val,
		})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Level != res[j].Level {
			return res[i].Level > res[j].Level
		}
		return res[i].Name < res[j].Name
	})
	return res
}

// Additional options for Val metrics.

// Level controls if the metric should be printed to console in periodic heartbeat logs,
// or showed on the stats page only.
type Level int

const (
	All Level = iota
	Simple
	Console
)

// Prometheus exports the metric to Prometheus under the given name.
type Prometheus string

// Rate says to collect/visualize metric rate per unit of time rather then total value.
type Rate struct{}

// Distribution says to collect/visualize histogram of individual sample distributions.
type Distribution struct{}

// Addittionally a custom 'func() int' can be passed to read the metric value from the function.
// and 'func(int, time.Duration) string' can be passed for custom formatting of the metric value.

func (s *set) New(name, desc string, opts ...any) *Val {
	v := &Val{
		name: name,
		desc: desc,
		fmt:  func(v int, period time.Duration) string { return strconv.Itoa(v) },
	}
	var promName string
	for _, o := range opts {
		switch opt := o.(type) {
		case Level:
			v.level = opt
		case Rate:
			v.fmt = formatRate
		case Distribution:
			v.hist = true
		case func() int:
			v.ext = opt
		case func(int, time.Duration) string:
			v.fmt = opt
		case Prometheus:
			promName = string(opt)
		default:
			panic(fmt.Sprintf("unknown stats option %#v", o))
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if old := s.vals[name]; old != nil {
		// Several workers/mutators may ask for the same metric.
		return old
	}
	s.vals[name] = v
	if promName != "" {
		// Prometheus Instrumentation https://prometheus.io/docs/guides/go-application.
		prometheus.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: promName,
			Help: desc,
		},
			func() float64 { return float64(v.Val()) },
		))
	}
	return v
}

type Val struct {
	name    string
	desc    string
	level   Level
	val     atomic.Uint64
	ext     func() int
	fmt     func(int, time.Duration) string
	hist    bool
	histMu  sync.Mutex
	histVal *gohistogram.NumericHistogram
}

func (v *Val) Add(val int) {
	if v.ext != nil {
		panic(fmt.Sprintf("stat %v is in external mode", v.name))
	}
	if v.hist {
		v.histMu.Lock()
		if v.histVal == nil {
			v.histVal = gohistogram.NewHistogram(histogramBuckets)
		}
		v.histVal.Add(float64(val))
		v.histMu.Unlock()
		return
	}
	v.val.Add(uint64(val))
}

func (v *Val) Val() int {
	if v.ext != nil {
		return v.ext()
	}
	if v.hist {
		v.histMu.Lock()
		defer v.histMu.Unlock()
		if v.histVal == nil {
			return 0
		}
		return int(v.histVal.Mean())
	}
	return int(v.val.Load())
}

// Quantile returns the q-th quantile of a Distribution metric.
func (v *Val) Quantile(q float64) float64 {
	if !v.hist {
		panic(fmt.Sprintf("stat %v is not a distribution", v.name))
	}
	v.histMu.Lock()
	defer v.histMu.Unlock()
	if v.histVal == nil {
		return 0
	}
	return v.histVal.Quantile(q)
}

func formatRate(v int, period time.Duration) string {
	secs := int(period.Seconds())
	if secs == 0 {
		secs = 1
	}
	if x := v / secs; x >= 10 {
		return fmt.Sprintf("%v (%v/sec)", v, x)
	}
	if x := v * 60 / secs; x >= 10 {
		return fmt.Sprintf("%v (%v/min)", v, x)
	}
	x := v * 60 * 60 / secs
	return fmt.Sprintf("%v (%v/hour)", v, x)
}
