// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package hash

import (
	"crypto/sha1"
	"encoding/binary"
	"encoding/hex"
	gohash "hash"
)

type Sig [sha1.Size]byte

func Hash(pieces ...[]byte) Sig {
	h := sha1.New()
	for _, data := range pieces {
		h.Write(data)
	}
	return sum(h)
}

func String(pieces ...[]byte) string {
	sig := Hash(pieces...)
	return sig.String()
}

func (sig Sig) String() string {
	return hex.EncodeToString(sig[:])
}

// Builder incrementally hashes a sequence of integers.
type Builder struct {
	h   gohash.Hash
	buf [8]byte
}

func NewBuilder() *Builder {
	return &Builder{h: sha1.New()}
}

func (b *Builder) Uint64(v uint64) {
	binary.LittleEndian.PutUint64(b.buf[:], v)
	b.h.Write(b.buf[:])
}

func (b *Builder) Bool(v bool) {
	if v {
		b.h.Write([]byte{1})
	} else {
		b.h.Write([]byte{0})
	}
}

func (b *Builder) Sig() Sig {
	return sum(b.h)
}

func sum(h gohash.Hash) Sig {
	var sig Sig
	copy(sig[:], h.Sum(nil))
	return sig
}
