// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

package shannonfano

import (
	"bytes"
	"io"

	"github.com/etude-ist/compress/internal/errors"
	"github.com/etude-ist/compress/shannonfano"
)

func Fuzz(data []byte) int {
	if b, ok := decode(data, false); ok {
		// Strict decoding only ever rejects what lenient decoding accepts.
		if sb, sok := decode(data, true); sok && !bytes.Equal(sb, b) {
			panic("mismatching strict output")
		}
		testRoundTrip(b)
		return 1
	}
	if len(data) > 255 {
		data = data[:255]
	}
	testRoundTrip(data)
	return 0
}

// decode attempts to decode the stream.
func decode(data []byte, strict bool) ([]byte, bool) {
	zr, err := shannonfano.NewReader(bytes.NewReader(data), &shannonfano.ReaderConfig{Strict: strict})
	if err != nil {
		panic(err)
	}
	b, err := io.ReadAll(zr)
	if err != nil && !errors.IsCorrupted(err) && !errors.IsInvalid(err) {
		panic(err)
	}
	return b, err == nil
}

// testRoundTrip encodes the input data and then decodes it, checking that the
// data was losslessly preserved. Inputs needing codewords longer than the
// format allows are skipped.
func testRoundTrip(want []byte) {
	bb := new(bytes.Buffer)
	if err := shannonfano.Encode(bb, want); err != nil {
		if err == shannonfano.ErrCodewordLength {
			return
		}
		panic(err)
	}

	got, ok := decode(bb.Bytes(), true)
	if !bytes.Equal(got, want) || !ok {
		panic("mismatching bytes")
	}
}
