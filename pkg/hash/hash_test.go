// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	sig := Hash([]byte("foo"), []byte("bar"))
	assert.Equal(t, Hash([]byte("foobar")), sig)
	assert.Equal(t, "8843d7f92416211de9ebb963ff4ce28125932878", sig.String())
	assert.Equal(t, sig.String(), String([]byte("foobar")))
}

func TestBuilder(t *testing.T) {
	b1 := NewBuilder()
	b1.Uint64(1)
	b1.Bool(true)
	b2 := NewBuilder()
	b2.Uint64(1)
	b2.Bool(false)
	b3 := NewBuilder()
	b3.Uint64(1)
	b3.Bool(true)
	assert.NotEqual(t, b1.Sig(), b2.Sig())
	assert.Equal(t, b1.Sig(), b3.Sig())
	assert.NotEqual(t, Sig{}, b1.Sig())
}
