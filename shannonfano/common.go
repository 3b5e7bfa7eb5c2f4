// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package shannonfano implements a static Shannon-Fano compressed data format.
//
// Compression is a two-pass, whole-input operation. The first pass counts the
// occurrence of every byte, the counts are ordered by descending probability,
// and a prefix code is built by repeatedly splitting that ordered list into two
// halves of near-equal total probability. The second pass emits the codeword
// of every input byte.
//
// The compressed stream is self-describing:
//
//	byte[0]  N: number of distinct symbols (0..255)
//	byte[1]  T: total number of symbols (0..255)
//	N times: symbol, codeword length L (1..8), codeword value (L bits)
//	payload: codewords concatenated MSB-first, zero padded to a byte
//
// Since both counts occupy a single byte, the format can only represent inputs
// of at most 255 bytes with codewords of at most 8 bits.
package shannonfano

import "github.com/etude-ist/compress/internal/errors"

const (
	maxSymbols  = 255 // Maximum number of distinct symbols in a header
	maxTotal    = 255 // Maximum number of symbols in a stream
	maxCodeLen  = 8   // Maximum codeword length representable in a header
	maxBuildLen = 64  // Maximum codeword length that BuildCodes can produce

	entrySize = 3 // Size of a single header entry (symbol, length, value)
)

func errorf(c int, msg string) error {
	return errors.Error{Code: c, Pkg: "shannonfano", Msg: msg}
}

var (
	ErrTooManySymbols = errorf(errors.Invalid, "more than 255 distinct symbols")
	ErrInputTooLarge  = errorf(errors.Invalid, "more than 255 input symbols")
	ErrCodewordLength = errorf(errors.Invalid, "unsupported codeword length")

	ErrTruncated     = errorf(errors.Corrupted, "stream is truncated")
	ErrUnknownSymbol = errorf(errors.Corrupted, "payload matches no codeword")
	ErrCorrupt       = errorf(errors.Corrupted, "stream is corrupted")

	errClosed = errorf(errors.Closed, "")
)

// HeaderSize reports the size of a header describing n distinct symbols.
func HeaderSize(n int) int {
	return 2 + entrySize*n
}

// PayloadSize reports the number of bytes needed to hold nbits payload bits.
func PayloadSize(nbits int) int {
	return (nbits + 7) / 8
}
