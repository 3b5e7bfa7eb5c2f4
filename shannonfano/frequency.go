// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package shannonfano

import (
	"bufio"
	"io"
	"sort"

	"github.com/etude-ist/compress"
)

// Frequency is the observed occurrence of a single symbol.
type Frequency struct {
	Sym   byte    // The symbol itself
	Count int     // Number of times the symbol occurred
	Prob  float64 // Count divided by the total number of symbols
}

// Analyze reads r until io.EOF and reports the total number of bytes read
// along with the frequency of each distinct byte. The frequencies are sorted
// by descending probability, where symbols of equal probability remain in
// order of their first occurrence.
//
// It returns ErrTooManySymbols if the input holds more than 255 distinct
// symbols, otherwise ErrInputTooLarge if it holds more than 255 symbols.
// Either way, the input is read until the first of those errors is certain.
func Analyze(r io.Reader) (total int, freqs []Frequency, err error) {
	br, ok := r.(compress.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	var index [256]int // Position of each symbol in freqs, plus one
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, nil, err
		}
		if index[c] == 0 {
			if len(freqs) == maxSymbols {
				return 0, nil, ErrTooManySymbols
			}
			freqs = append(freqs, Frequency{Sym: c})
			index[c] = len(freqs)
		}
		total++
		freqs[index[c]-1].Count++
	}
	if total > maxTotal {
		return 0, nil, ErrInputTooLarge
	}

	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].Count > freqs[j].Count
	})
	for i := range freqs {
		freqs[i].Prob = float64(freqs[i].Count) / float64(total)
	}
	return total, freqs, nil
}
