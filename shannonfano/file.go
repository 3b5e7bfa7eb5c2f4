// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package shannonfano

import (
	"bufio"
	"io"
	"os"

	"github.com/etude-ist/compress/internal/errors"
)

var errInputChanged = errorf(errors.Invalid, "input changed between passes")

// PackFile compresses the file at inputPath into outputPath.
//
// The input is read twice: once to count symbols and once to encode them.
// The output file is only created once the first pass succeeded. If a later
// step fails, the partially written output is left in place.
func PackFile(inputPath, outputPath string) (err error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	total, freqs, err := Analyze(in)
	if err != nil {
		return err
	}
	codes, err := BuildCodes(freqs)
	if err != nil {
		return err
	}
	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(out)
	if err := packData(bw, in, total, codes); err != nil {
		return err
	}
	return bw.Flush()
}

// packData writes the stream for the symbols read from r. The total and codes
// come from an earlier pass, so r must yield exactly the same symbols.
func packData(w io.Writer, r io.Reader, total int, codes CodeTable) error {
	if err := writeHeader(w, total, codes); err != nil {
		return err
	}
	n, err := encodeData(w, r, codes)
	if err != nil {
		return err
	}
	if n != total {
		return errInputChanged
	}
	return nil
}

// UnpackFile decompresses the file at inputPath into outputPath.
// The output is written as the data is decoded; if decoding fails, the
// partially written output is left in place.
func UnpackFile(inputPath, outputPath string, conf *ReaderConfig) (err error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	zr, err := NewReader(in, conf)
	if err != nil {
		return err
	}
	defer zr.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, zr)
	return err
}
