// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package shannonfano

import (
	"bytes"
	"io"
	"testing"

	"github.com/etude-ist/compress/internal/errors"
	"github.com/etude-ist/compress/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestReader(t *testing.T) {
	dh := testutil.MustDecodeHex

	var vectors = []struct {
		desc   string // Description of the test
		input  []byte // Test input string
		strict bool   // Reject trailing data and non-zero padding
		output []byte // Expected output string
		inIdx  int64  // Expected input offset after reading
		err    error  // Expected error
	}{{
		desc: "empty string (truncated)",
		err:  ErrTruncated,
	}, {
		desc:  "truncated after symbol count",
		input: dh("01"),
		inIdx: 1,
		err:   ErrTruncated,
	}, {
		desc:  "empty stream",
		input: dh("0000"),
		inIdx: 2,
	}, {
		desc:   "empty stream, strict",
		input:  dh("0000"),
		strict: true,
		inIdx:  2,
	}, {
		desc:  "no symbols but non-zero total",
		input: dh("0005"),
		inIdx: 2,
		err:   ErrCorrupt,
	}, {
		desc:   "single symbol 'a'",
		input:  dh("0101 610100 00"),
		output: []byte("a"),
		inIdx:  6,
	}, {
		desc:   "single symbol repeated, padding is not decoded",
		input:  dh("0105 610100 00"),
		output: []byte("aaaaa"),
		inIdx:  6,
	}, {
		desc:   "string 'aaab'",
		input:  dh("0204 610100 620101 10"),
		output: []byte("aaab"),
		inIdx:  9,
	}, {
		desc:   "string 'abcd'",
		input:  dh("0404 610200 620201 630202 640203 1b"),
		output: []byte("abcd"),
		inIdx:  15,
	}, {
		desc:   "string 'aabbbc'",
		input:  dh("0306 620100 610202 630203 a180"),
		output: []byte("aabbbc"),
		inIdx:  13,
	}, {
		desc:   "string 'abracadabra'",
		input:  dh("050b 610100 620202 720306 63040e 64040f 59cf58"),
		output: []byte("abracadabra"),
		inIdx:  20,
	}, {
		desc: "string 'hello, world!'",
		input: dh("0a0d 6c0200 6f0302 680303 650304 2c040a 20040b 77040c 72040d" +
			"64040e 21040f 70155e2d3bc0"),
		output: []byte("hello, world!"),
		inIdx:  38,
	}, {
		desc:  "truncated in header entries",
		input: dh("0204 610100 62"),
		inIdx: 6,
		err:   ErrTruncated,
	}, {
		desc:  "truncated payload",
		input: dh("050b 610100 620202 720306 63040e 64040f 59cf"),
		inIdx: 19,
		err:   ErrTruncated,
	}, {
		desc:  "missing payload",
		input: dh("0204 610100 620101"),
		inIdx: 8,
		err:   ErrTruncated,
	}, {
		desc:  "payload matches no codeword",
		input: dh("0202 610100 620202 c0"),
		inIdx: 9,
		err:   ErrUnknownSymbol,
	}, {
		desc:  "zero length codeword",
		input: dh("0101 610000 00"),
		inIdx: 5,
		err:   ErrCodewordLength,
	}, {
		desc:  "codeword longer than eight bits",
		input: dh("0101 610900 00"),
		inIdx: 5,
		err:   ErrCodewordLength,
	}, {
		desc:  "codeword value exceeds its length",
		input: dh("0101 610102 00"),
		inIdx: 5,
		err:   ErrCorrupt,
	}, {
		desc:  "duplicate codewords",
		input: dh("0202 610100 620100 00"),
		inIdx: 8,
		err:   ErrCorrupt,
	}, {
		desc:   "trailing data is ignored",
		input:  dh("0204 610100 620101 10 ffff"),
		output: []byte("aaab"),
		inIdx:  9,
	}, {
		desc:   "trailing data, strict",
		input:  dh("0204 610100 620101 10 ff"),
		strict: true,
		inIdx:  10,
		err:    ErrCorrupt,
	}, {
		desc:   "non-zero padding is ignored",
		input:  dh("0204 610100 620101 1f"),
		output: []byte("aaab"),
		inIdx:  9,
	}, {
		desc:   "non-zero padding, strict",
		input:  dh("0204 610100 620101 1f"),
		strict: true,
		inIdx:  9,
		err:    ErrCorrupt,
	}, {
		desc:   "zero padding, strict",
		input:  dh("0204 610100 620101 10"),
		strict: true,
		output: []byte("aaab"),
		inIdx:  9,
	}}

	for i, v := range vectors {
		rd, err := NewReader(bytes.NewReader(v.input), &ReaderConfig{Strict: v.strict})
		if err != nil {
			t.Errorf("test %d (%s), unexpected NewReader error: %v", i, v.desc, err)
			continue
		}
		output, err := io.ReadAll(rd)
		if cerr := rd.Close(); cerr != nil {
			t.Errorf("test %d (%s), unexpected Close error: %v", i, v.desc, cerr)
		}

		if !bytes.Equal(output, v.output) {
			t.Errorf("test %d (%s), mismatching output:\ngot  %q\nwant %q", i, v.desc, output, v.output)
		}
		if err != v.err {
			t.Errorf("test %d (%s), mismatching error: got %v, want %v", i, v.desc, err, v.err)
		}
		if rd.InputOffset != v.inIdx {
			t.Errorf("test %d (%s), mismatching input offset: got %d, want %d", i, v.desc, rd.InputOffset, v.inIdx)
		}
		if rd.OutputOffset != int64(len(v.output)) {
			t.Errorf("test %d (%s), mismatching output offset: got %d, want %d", i, v.desc, rd.OutputOffset, len(v.output))
		}
	}
}

func TestReaderErrors(t *testing.T) {
	dh := testutil.MustDecodeHex
	input := dh("0204 610100 620101 10")

	// Errors from the underlying reader are passed through.
	br := &testutil.BuggyReader{R: bytes.NewReader(input), N: 4, Err: io.ErrClosedPipe}
	rd, _ := NewReader(br, nil)
	_, err := io.ReadAll(rd)
	assert.Equal(t, io.ErrClosedPipe, err)

	// A closed reader reports so until it is reset.
	rd.Close()
	_, err = rd.Read(make([]byte, 1))
	assert.True(t, errors.IsClosed(err), "read after close: %v", err)
	assert.NoError(t, rd.Close())

	rd.Reset(bytes.NewReader(input))
	output, err := io.ReadAll(rd)
	assert.NoError(t, err)
	assert.Equal(t, "aaab", string(output))

	// Reset keeps the configuration.
	rd, _ = NewReader(nil, &ReaderConfig{Strict: true})
	rd.Reset(bytes.NewReader(dh("0204 610100 620101 1f")))
	_, err = io.ReadAll(rd)
	assert.Equal(t, ErrCorrupt, err)
}

func TestDecodeTable(t *testing.T) {
	var dt decodeTable
	codes := mustBuildCodes([]byte("abracadabra"))
	assert.NoError(t, dt.init(codes))
	assert.Equal(t, uint(4), dt.maxLen)

	for _, c := range codes {
		sym, ok := dt.lookup(c.Codeword)
		assert.True(t, ok)
		assert.Equal(t, c.Sym, sym)
	}
	_, ok := dt.lookup(Codeword{Val: 3, Len: 2})
	assert.False(t, ok)
	_, ok = dt.lookup(Codeword{Val: 0, Len: 9})
	assert.False(t, ok)
}
