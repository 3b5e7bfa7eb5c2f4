// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package shannonfano

import (
	"io"

	"github.com/icza/bitio"
)

type Reader struct {
	InputOffset  int64 // Total number of bytes read from underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	rd     *bitio.CountReader
	strict bool
	toRead []byte // Decoded data yet to be consumed
	err    error  // Persistent error
}

type ReaderConfig struct {
	// Strict rejects streams whose padding bits are not zero or that carry
	// any data past the end of the payload. By default both are ignored.
	Strict bool

	_ struct{} // Blank field to prevent unkeyed struct literals
}

// NewReader creates a new Reader reading the compressed stream from r.
// Since the stream is decoded as a whole, r may be read past the end of the
// payload.
func NewReader(r io.Reader, conf *ReaderConfig) (*Reader, error) {
	zr := new(Reader)
	if conf != nil {
		zr.strict = conf.Strict
	}
	zr.Reset(r)
	return zr, nil
}

func (zr *Reader) Read(buf []byte) (int, error) {
	for {
		if len(zr.toRead) > 0 {
			cnt := copy(buf, zr.toRead)
			zr.toRead = zr.toRead[cnt:]
			zr.OutputOffset += int64(cnt)
			return cnt, nil
		}
		if zr.err != nil {
			return 0, zr.err
		}
		zr.decode()
	}
}

func (zr *Reader) Close() error {
	if zr.err == errClosed {
		return nil
	}
	zr.toRead = nil
	zr.err = errClosed
	return nil
}

func (zr *Reader) Reset(r io.Reader) error {
	*zr = Reader{strict: zr.strict, rd: bitio.NewCountReader(r)}
	return nil
}

// decode reads the header and payload, leaving the decoded symbols in
// zr.toRead. On success, zr.err is set to io.EOF.
func (zr *Reader) decode() {
	defer func() { zr.InputOffset = (zr.rd.BitsCount + 7) / 8 }()

	total, codes, err := readHeader(zr.rd)
	if err != nil {
		zr.err = err
		return
	}
	var dt decodeTable
	if err := dt.init(codes); err != nil {
		zr.err = err
		return
	}
	out, err := decodeData(zr.rd, &dt, total)
	if err == nil && zr.strict {
		err = checkTrailer(zr.rd)
	}
	if err != nil {
		zr.err = err
		return
	}
	zr.toRead, zr.err = out, io.EOF
}

// decodeData decodes exactly total symbols from br. Bits are accumulated
// until they form a codeword of dt; any bits of the final byte that follow
// the last symbol are left unread.
func decodeData(br *bitio.CountReader, dt *decodeTable, total int) ([]byte, error) {
	out := make([]byte, 0, total)
	var cw Codeword
	for len(out) < total {
		bit, err := br.ReadBool()
		if err != nil {
			if err == io.EOF {
				err = ErrTruncated
			}
			return nil, err
		}
		if bit {
			cw = cw.Append(1)
		} else {
			cw = cw.Append(0)
		}

		if sym, ok := dt.lookup(cw); ok {
			out = append(out, sym)
			cw = Codeword{}
			continue
		}
		if cw.Len >= dt.maxLen {
			return nil, ErrUnknownSymbol
		}
	}
	return out, nil
}

// checkTrailer verifies that the padding bits of the last payload byte are
// zero and that no data follows the payload.
func checkTrailer(br *bitio.CountReader) error {
	if pad := uint8(-br.BitsCount & 7); pad > 0 {
		v, err := br.ReadBits(pad)
		if err != nil {
			return err
		}
		if v != 0 {
			return ErrCorrupt
		}
	}
	switch _, err := br.ReadByte(); err {
	case io.EOF:
		return nil
	case nil:
		return ErrCorrupt
	default:
		return err
	}
}

// Decode decompresses the stream read from src and writes the result to dst.
func Decode(dst io.Writer, src io.Reader) error {
	zr, err := NewReader(src, nil)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, zr); err != nil {
		return err
	}
	return zr.Close()
}
