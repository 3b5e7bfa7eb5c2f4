// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand implements a deterministic pseudo-random number generator.
// This differs from the math.Rand in that the exact output will be consistent
// across different versions of Go.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() int {
	r.Encrypt(r.blk[:], r.blk[:])
	return int(binary.LittleEndian.Uint64(r.blk[:]) >> 2)
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

// Bytes returns n random bytes drawn from the first m byte values.
// Small values of m produce skewed, compressible data.
func (r *Rand) Bytes(n, m int) []byte {
	b := make([]byte, n)
	for i := range b {
		// Taking the root of the draw skews it towards high byte values.
		x := r.Intn(m * m)
		b[i] = byte(isqrt(x))
	}
	return b
}

func isqrt(x int) (n int) {
	for (n+1)*(n+1) <= x {
		n++
	}
	return n
}
