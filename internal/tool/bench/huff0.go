// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_kp_lib
// +build !no_kp_lib

package bench

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"

	"github.com/klauspost/compress/huff0"
)

// The huff0 package only compresses single blocks without framing.
// The stream used here is a sequence of blocks, each starting with a block
// type and the decoded size as a uvarint:
//
//	blockRaw:   the decoded bytes follow as is
//	blockRLE:   a single byte follows, repeated for the decoded size
//	blockHuff0: the compressed size as a uvarint, then a huff0 1X stream
const (
	blockRaw = iota
	blockRLE
	blockHuff0
)

const huff0BlockSize = 1 << 16

var errHuff0Corrupt = errors.New("huff0: corrupted stream")

type huff0Writer struct {
	w   io.Writer
	s   huff0.Scratch
	buf []byte
	err error
}

func newHuff0Writer(w io.Writer) *huff0Writer {
	return &huff0Writer{w: w}
}

func (hw *huff0Writer) Write(buf []byte) (int, error) {
	if hw.err != nil {
		return 0, hw.err
	}
	var n int
	for len(buf) > 0 {
		cnt := copy(hw.buf[len(hw.buf):cap(hw.buf)], buf)
		if cnt == 0 {
			if hw.buf == nil {
				hw.buf = make([]byte, 0, huff0BlockSize)
				continue
			}
			if hw.err = hw.flush(); hw.err != nil {
				return n, hw.err
			}
			continue
		}
		hw.buf = hw.buf[:len(hw.buf)+cnt]
		buf = buf[cnt:]
		n += cnt
	}
	return n, nil
}

func (hw *huff0Writer) Close() error {
	if hw.err == nil && len(hw.buf) > 0 {
		hw.err = hw.flush()
	}
	return hw.err
}

// flush compresses and writes the buffered block.
func (hw *huff0Writer) flush() error {
	var hdr [1 + 2*binary.MaxVarintLen64]byte
	block := hw.buf
	hw.buf = hw.buf[:0]

	hw.s.Reuse = huff0.ReusePolicyNone
	out, _, err := huff0.Compress1X(block, &hw.s)
	n := binary.PutUvarint(hdr[1:], uint64(len(block)))
	switch err {
	case nil:
		hdr[0] = blockHuff0
		n += binary.PutUvarint(hdr[1+n:], uint64(len(out)))
	case huff0.ErrIncompressible:
		hdr[0], out = blockRaw, block
	case huff0.ErrUseRLE:
		hdr[0], out = blockRLE, block[:1]
	default:
		return err
	}
	if _, err := hw.w.Write(hdr[:1+n]); err != nil {
		return err
	}
	_, err = hw.w.Write(out)
	return err
}

type huff0Reader struct {
	rd     *bufio.Reader
	toRead []byte
	err    error
}

func newHuff0Reader(r io.Reader) *huff0Reader {
	return &huff0Reader{rd: bufio.NewReader(r)}
}

func (hr *huff0Reader) Read(buf []byte) (int, error) {
	for {
		if len(hr.toRead) > 0 {
			cnt := copy(buf, hr.toRead)
			hr.toRead = hr.toRead[cnt:]
			return cnt, nil
		}
		if hr.err != nil {
			return 0, hr.err
		}
		hr.toRead, hr.err = hr.readBlock()
	}
}

func (hr *huff0Reader) Close() error {
	hr.toRead, hr.err = nil, errHuff0Closed
	return nil
}

var errHuff0Closed = errors.New("huff0: reader is closed")

// readBlock reads and decodes a single block.
// It returns io.EOF if the stream ends cleanly before a block.
func (hr *huff0Reader) readBlock() ([]byte, error) {
	typ, err := hr.rd.ReadByte()
	if err != nil {
		return nil, err
	}
	size, err := binary.ReadUvarint(hr.rd)
	if err != nil || size > huff0BlockSize {
		return nil, errHuff0Corrupt
	}

	switch typ {
	case blockRaw:
		out := make([]byte, size)
		if _, err := io.ReadFull(hr.rd, out); err != nil {
			return nil, errHuff0Corrupt
		}
		return out, nil
	case blockRLE:
		c, err := hr.rd.ReadByte()
		if err != nil {
			return nil, errHuff0Corrupt
		}
		out := make([]byte, size)
		for i := range out {
			out[i] = c
		}
		return out, nil
	case blockHuff0:
		csize, err := binary.ReadUvarint(hr.rd)
		if err != nil || csize > 2*huff0BlockSize {
			return nil, errHuff0Corrupt
		}
		in := make([]byte, csize)
		if _, err := io.ReadFull(hr.rd, in); err != nil {
			return nil, errHuff0Corrupt
		}
		s, remain, err := huff0.ReadTable(in, nil)
		if err != nil {
			return nil, err
		}
		out, err := s.Decompress1X(remain)
		if err != nil {
			return nil, err
		}
		if uint64(len(out)) != size {
			return nil, errHuff0Corrupt
		}
		return append([]byte(nil), out...), nil
	default:
		return nil, errHuff0Corrupt
	}
}
