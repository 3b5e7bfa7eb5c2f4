// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Generates the binary test files. Every file is at most 255 bytes long since
// that is the largest input the Shannon-Fano format can represent.
//
//	alphabet.bin: 255 distinct bytes, the widest possible code table
//	binary.bin:   bytes drawn uniformly from 32 values
//	zeros.bin:    a single repeated symbol
package main

import (
	"math/rand"
	"os"
)

const size = 255

func main() {
	var b []byte
	for i := 0; i < size; i++ {
		b = append(b, byte(i))
	}
	write("alphabet.bin", b)

	r := rand.New(rand.NewSource(0))
	b = b[:0]
	for len(b) < size {
		b = append(b, byte(r.Intn(32)))
	}
	write("binary.bin", b)

	write("zeros.bin", make([]byte, size))
}

func write(name string, b []byte) {
	if err := os.WriteFile(name, b, 0664); err != nil {
		panic(err)
	}
}
