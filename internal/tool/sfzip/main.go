// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Command sfzip packs a file into the Shannon-Fano format or unpacks it.
//
// Example usage:
//
//	$ go run main.go -v ../../../testdata/dna.txt dna.sf
//	{
//		'A'   (0x41):  {len: 2, code:   00},
//		'T'   (0x54):  {len: 2, code:   01},
//		'G'   (0x47):  {len: 2, code:   10},
//		'C'   (0x43):  {len: 3, code:  110},
//		' '   (0x20):  {len: 4, code: 1110},
//		'\n'  (0x0a):  {len: 4, code: 1111},
//	}
//	dna.txt: 208 -> 83 bytes (2.51x)
//	$ go run main.go -d dna.sf dna.txt
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etude-ist/compress/shannonfano"
)

func main() {
	unpack := flag.Bool("d", false, "Unpack the input instead of packing it")
	strict := flag.Bool("strict", false, "Reject non-zero padding and trailing data when unpacking")
	verbose := flag.Bool("v", false, "Print the code table and the compression ratio")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-d] [-strict] [-v] input output\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	input, output := flag.Arg(0), flag.Arg(1)

	var err error
	if *unpack {
		err = shannonfano.UnpackFile(input, output, &shannonfano.ReaderConfig{Strict: *strict})
	} else {
		err = shannonfano.PackFile(input, output)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "sfzip: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		if err := report(input, output, *unpack); err != nil {
			fmt.Fprintf(os.Stderr, "sfzip: %v\n", err)
			os.Exit(1)
		}
	}
}

// report prints the code table of the raw file and the compression ratio.
func report(input, output string, unpacked bool) error {
	raw, packed := input, output
	if unpacked {
		raw, packed = output, input
	}
	b, err := os.ReadFile(raw)
	if err != nil {
		return err
	}
	fi, err := os.Stat(packed)
	if err != nil {
		return err
	}

	total, freqs, err := shannonfano.Analyze(bytes.NewReader(b))
	if err != nil {
		return err
	}
	codes, err := shannonfano.BuildCodes(freqs)
	if err != nil {
		return err
	}
	fmt.Println(codes)
	if fi.Size() > 0 {
		fmt.Printf("%s: %d -> %d bytes (%.2fx)\n", filepath.Base(raw), total, fi.Size(), float64(total)/float64(fi.Size()))
	}
	return nil
}
