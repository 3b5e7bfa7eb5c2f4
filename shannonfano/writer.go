// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package shannonfano

import (
	"bufio"
	"bytes"
	"io"

	"github.com/etude-ist/compress"
	"github.com/etude-ist/compress/internal/errors"
	"github.com/icza/bitio"
)

var errNoCodeword = errorf(errors.Invalid, "input symbol has no codeword")

type Writer struct {
	InputOffset  int64 // Total number of bytes issued to Write
	OutputOffset int64 // Total number of bytes written to underlying io.Writer

	wr   countWriter
	buf  []byte    // Input held until Close, at most maxTotal bytes
	seen [256]bool // Symbols issued to Write so far
	nsym int       // Number of distinct symbols issued to Write
	err  error     // Persistent error
}

type WriterConfig struct {
	_ struct{} // Blank field to prevent unkeyed struct literals
}

// NewWriter creates a new Writer. The input is buffered in memory and the
// compressed stream is produced when Close is called, since the code table
// can only be built once the whole input is known.
func NewWriter(w io.Writer, conf *WriterConfig) (*Writer, error) {
	zw := new(Writer)
	zw.Reset(w)
	return zw, nil
}

// Write buffers buf for encoding on Close. It fails with ErrTooManySymbols as
// soon as a 256th distinct symbol is seen. Input beyond 255 bytes is accepted
// so that its symbols can still be checked, and Close reports ErrInputTooLarge.
func (zw *Writer) Write(buf []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}

	for i, c := range buf {
		if !zw.seen[c] {
			if zw.nsym == maxSymbols {
				zw.InputOffset += int64(i)
				zw.err = ErrTooManySymbols
				return i, zw.err
			}
			zw.seen[c] = true
			zw.nsym++
		}
	}
	if room := maxTotal - len(zw.buf); room > 0 {
		if len(buf) < room {
			room = len(buf)
		}
		zw.buf = append(zw.buf, buf[:room]...)
	}
	zw.InputOffset += int64(len(buf))
	return len(buf), nil
}

// Close encodes all buffered input and writes the compressed stream.
// It does not close the underlying io.Writer.
func (zw *Writer) Close() error {
	if zw.err == errClosed {
		return nil
	}
	if zw.err != nil {
		return zw.err
	}

	zw.err = zw.encode()
	zw.OutputOffset = zw.wr.n
	if zw.err != nil {
		return zw.err
	}
	zw.err = errClosed
	return nil
}

func (zw *Writer) Reset(w io.Writer) error {
	*zw = Writer{wr: countWriter{w: w}, buf: zw.buf[:0]}
	return nil
}

func (zw *Writer) encode() error {
	if zw.InputOffset > maxTotal {
		return ErrInputTooLarge
	}
	total, freqs, err := Analyze(bytes.NewReader(zw.buf))
	if err != nil {
		return err
	}
	codes, err := BuildCodes(freqs)
	if err != nil {
		return err
	}
	if err := writeHeader(&zw.wr, total, codes); err != nil {
		return err
	}
	_, err = encodeData(&zw.wr, bytes.NewReader(zw.buf), codes)
	return err
}

// encodeData writes the codeword of every symbol read from r, packed
// MSB-first, and pads the final byte with zero bits.
// It reports the number of symbols encoded.
func encodeData(w io.Writer, r io.Reader, codes CodeTable) (n int, err error) {
	br, ok := r.(compress.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	lut := codes.lookupTable()
	bw := bitio.NewWriter(w)
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, err
		}
		cw := lut[c]
		if cw.Len == 0 {
			return n, errNoCodeword
		}
		if err := bw.WriteBits(cw.Val, uint8(cw.Len)); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Close()
}

// Encode compresses src and writes the compressed stream to dst.
func Encode(dst io.Writer, src []byte) error {
	zw, err := NewWriter(dst, nil)
	if err != nil {
		return err
	}
	if _, err := zw.Write(src); err != nil {
		return err
	}
	return zw.Close()
}

// countWriter counts the number of bytes written to w.
type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(buf []byte) (int, error) {
	n, err := cw.w.Write(buf)
	cw.n += int64(n)
	return n, err
}
