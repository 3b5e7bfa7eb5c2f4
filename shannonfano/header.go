// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package shannonfano

import (
	"io"

	"github.com/etude-ist/compress/internal/errors"
)

// decodeTable maps codewords back to symbols.
type decodeTable struct {
	syms   map[Codeword]byte
	lens   [maxCodeLen + 1]bool // Codeword lengths present in syms
	maxLen uint
}

func (dt *decodeTable) init(codes CodeTable) error {
	dt.syms = make(map[Codeword]byte, len(codes))
	dt.lens = [maxCodeLen + 1]bool{}
	dt.maxLen = 0
	for _, c := range codes {
		if c.Len == 0 || c.Len > maxCodeLen {
			return ErrCodewordLength
		}
		if c.Val>>c.Len != 0 {
			return ErrCorrupt
		}
		if _, ok := dt.syms[c.Codeword]; ok {
			return ErrCorrupt
		}
		dt.syms[c.Codeword] = c.Sym
		dt.lens[c.Len] = true
		if dt.maxLen < c.Len {
			dt.maxLen = c.Len
		}
	}
	return nil
}

// lookup reports the symbol for the codeword c, if any.
func (dt *decodeTable) lookup(c Codeword) (byte, bool) {
	if c.Len > maxCodeLen || !dt.lens[c.Len] {
		return 0, false
	}
	sym, ok := dt.syms[c]
	return sym, ok
}

// writeHeader writes the number of codes, the total symbol count, and then
// a (symbol, length, value) triple for every code in table order.
func writeHeader(w io.Writer, total int, codes CodeTable) error {
	if len(codes) > maxSymbols {
		return ErrTooManySymbols
	}
	if total < 0 || total > maxTotal {
		return ErrInputTooLarge
	}

	buf := make([]byte, 0, HeaderSize(len(codes)))
	buf = append(buf, byte(len(codes)), byte(total))
	for _, c := range codes {
		if c.Len == 0 || c.Len > maxCodeLen {
			return ErrCodewordLength
		}
		buf = append(buf, c.Sym, byte(c.Len), byte(c.Val))
	}
	_, err := w.Write(buf)
	return err
}

// readHeader reads a header written by writeHeader and reports the total
// number of encoded symbols along with the table to decode them.
func readHeader(br io.ByteReader) (total int, codes CodeTable, err error) {
	defer errors.Recover(&err)

	n := int(readByte(br))
	total = int(readByte(br))
	if n == 0 && total > 0 {
		return 0, nil, ErrCorrupt
	}

	codes = make(CodeTable, n)
	for i := range codes {
		codes[i].Sym = readByte(br)
		codes[i].Len = uint(readByte(br))
		codes[i].Val = uint64(readByte(br))
	}
	return total, codes, nil
}

// readByte reads a single byte.
// This function panics if an error occurs.
func readByte(br io.ByteReader) byte {
	c, err := br.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = ErrTruncated
		}
		errors.Panic(err)
	}
	return c
}
