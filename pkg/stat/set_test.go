// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package stat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := newSet()
	v0 := s.New("v0", "desc0")
	assert.Equal(t, 0, v0.Val())
	v0.Add(1)
	v0.Add(2)
	assert.Equal(t, 3, v0.Val())
	assert.Same(t, v0, s.New("v0", "desc0"))

	v1 := s.New("v1", "desc1", Console, func() int { return 42 })
	assert.Equal(t, 42, v1.Val())
	assert.Panics(t, func() { v1.Add(1) })

	ui := s.Collect(All)
	assert.Len(t, ui, 2)
	assert.Equal(t, "v1", ui[0].Name)
	assert.Equal(t, "42", ui[0].Value)
	assert.Equal(t, "v0", ui[1].Name)

	ui = s.Collect(Console)
	assert.Len(t, ui, 1)
	assert.Equal(t, "v1", ui[0].Name)
}

func TestDistribution(t *testing.T) {
	s := newSet()
	v := s.New("dist", "", Distribution{})
	assert.Equal(t, 0, v.Val())
	for i := 1; i <= 100; i++ {
		v.Add(i)
	}
	assert.InDelta(t, 50, v.Val(), 1)
	assert.InDelta(t, 90, v.Quantile(0.9), 5)
	plain := s.New("plain", "")
	assert.Panics(t, func() { plain.Quantile(0.5) })
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "100 (10/sec)", formatRate(100, 10*time.Second))
	assert.Equal(t, "10 (60/min)", formatRate(10, 10*time.Second))
	assert.Equal(t, "1 (360/hour)", formatRate(1, 10*time.Second))
}

func TestAverageValue(t *testing.T) {
	var av AverageValue[time.Duration]
	av.Save(time.Second)
	av.Save(3 * time.Second)
	assert.Equal(t, 2*time.Second, av.Value())
}
