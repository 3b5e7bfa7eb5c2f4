// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package shannonfano

import (
	"fmt"
	"strings"

	"github.com/etude-ist/compress/internal"
	"github.com/etude-ist/compress/internal/errors"
)

var errInvalidFreq = errorf(errors.Invalid, "symbol count must be positive")

// Codeword is a sequence of Len bits stored right-justified in Val.
// The first bit of the codeword is the most-significant of the Len bits.
type Codeword struct {
	Val uint64
	Len uint
}

// Append returns the codeword extended by a single trailing bit.
func (c Codeword) Append(bit uint) Codeword {
	return Codeword{Val: c.Val<<1 | uint64(bit&1), Len: c.Len + 1}
}

// HasPrefix reports whether p is a prefix of c.
func (c Codeword) HasPrefix(p Codeword) bool {
	return p.Len <= c.Len && c.Val>>(c.Len-p.Len) == p.Val
}

// String renders the codeword as a string of '0' and '1' characters.
func (c Codeword) String() string {
	if c.Len == 0 {
		return ""
	}
	return fmt.Sprintf("%0*b", int(c.Len), c.Val)
}

// Code assigns a codeword to a symbol.
type Code struct {
	Sym byte
	Codeword
}

// CodeTable is a list of codes in the order of descending symbol probability.
type CodeTable []Code

// BuildCodes constructs a Shannon-Fano prefix code for the given frequencies,
// which are expected to be sorted as returned by Analyze.
//
// The list is recursively split into an upper and a lower part of near-equal
// total count. Symbols in the upper part gain a '0' bit and symbols in
// the lower part gain a '1' bit until every part holds a single symbol.
// A lone symbol is assigned the single bit codeword "0".
func BuildCodes(freqs []Frequency) (CodeTable, error) {
	codes := make(CodeTable, len(freqs))
	for i, f := range freqs {
		if f.Count <= 0 {
			return nil, errInvalidFreq
		}
		codes[i].Sym = f.Sym
	}
	if len(codes) == 1 {
		codes[0].Codeword = Codeword{Len: 1}
	}
	if len(codes) <= 1 {
		return codes, nil
	}

	type span struct{ start, end int } // Inclusive range of freqs
	stack := []span{{0, len(freqs) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.start == s.end {
			continue
		}

		var total int
		for _, f := range freqs[s.start : s.end+1] {
			total += f.Count
		}

		// A symbol joins the upper part while the running count, including
		// itself, stays within half of the total. The first symbol always
		// joins the upper part and the last one never does.
		var partition int
		pivot := -1 // First index of the lower part
		for i := s.start; i <= s.end; i++ {
			partition += freqs[i].Count
			if 2*partition <= total || i == s.start {
				codes[i].Codeword = codes[i].Append(0)
			} else {
				codes[i].Codeword = codes[i].Append(1)
				if pivot < 0 {
					pivot = i
				}
			}
		}
		stack = append(stack, span{pivot, s.end}, span{s.start, pivot - 1})
	}

	for _, c := range codes {
		if c.Len > maxBuildLen {
			return nil, ErrCodewordLength
		}
	}
	if internal.Debug {
		for i, c1 := range codes {
			for j, c2 := range codes {
				if i != j && c1.HasPrefix(c2.Codeword) {
					panic(fmt.Sprintf("shannonfano: codeword %v is a prefix of %v", c2, c1))
				}
			}
		}
	}
	return codes, nil
}

// MaxLen reports the length of the longest codeword in the table.
func (ct CodeTable) MaxLen() (n uint) {
	for _, c := range ct {
		if n < c.Len {
			n = c.Len
		}
	}
	return n
}

// BitLen reports the number of payload bits needed to encode freqs with ct.
func (ct CodeTable) BitLen(freqs []Frequency) (n int) {
	lut := ct.lookupTable()
	for _, f := range freqs {
		n += f.Count * int(lut[f.Sym].Len)
	}
	return n
}

// lookupTable indexes the codewords by symbol. Absent symbols have a zero
// length codeword.
func (ct CodeTable) lookupTable() (lut [256]Codeword) {
	for _, c := range ct {
		lut[c.Sym] = c.Codeword
	}
	return lut
}

func (ct CodeTable) String() string {
	var maxLen int
	for _, c := range ct {
		if maxLen < int(c.Len) {
			maxLen = int(c.Len)
		}
	}

	var ss []string
	ss = append(ss, "{")
	for _, c := range ct {
		ss = append(ss, fmt.Sprintf("\t%-6q(0x%02x):  {len: %d, code: %*s},",
			c.Sym, c.Sym, c.Len, maxLen, c.Codeword.String()))
	}
	ss = append(ss, "}")
	return strings.Join(ss, "\n")
}
