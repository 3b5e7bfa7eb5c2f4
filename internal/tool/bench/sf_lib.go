// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"

	"github.com/etude-ist/compress/shannonfano"
)

func init() {
	RegisterEncoder(FormatShannonFano, "sf",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := shannonfano.NewWriter(w, nil)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatShannonFano, "sf",
		func(r io.Reader) io.ReadCloser {
			zr, err := shannonfano.NewReader(r, nil)
			if err != nil {
				panic(err)
			}
			return zr
		})
}
