// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package shannonfano

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/etude-ist/compress/internal/errors"
	"github.com/etude-ist/compress/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFiles = []string{
	"../testdata/alphabet.bin",
	"../testdata/binary.bin",
	"../testdata/digits.txt",
	"../testdata/dna.txt",
	"../testdata/twain.txt",
	"../testdata/zeros.bin",
}

// roundTrip compresses input and verifies that it decompresses back to the
// same input and that the stream has the expected size.
func roundTrip(t *testing.T, name string, input []byte) {
	t.Helper()

	var buf bytes.Buffer
	if err := Encode(&buf, input); err != nil {
		t.Errorf("%s, unexpected Encode error: %v", name, err)
		return
	}

	total, freqs, _ := Analyze(bytes.NewReader(input))
	codes, _ := BuildCodes(freqs)
	if want := HeaderSize(len(codes)) + PayloadSize(codes.BitLen(freqs)); buf.Len() != want {
		t.Errorf("%s, mismatching compressed size: got %d, want %d", name, buf.Len(), want)
	}
	if total != len(input) {
		t.Errorf("%s, mismatching total: got %d, want %d", name, total, len(input))
	}

	var output bytes.Buffer
	rd, _ := NewReader(bytes.NewReader(buf.Bytes()), &ReaderConfig{Strict: true})
	if _, err := io.Copy(&output, rd); err != nil {
		t.Errorf("%s, unexpected Decode error: %v", name, err)
		return
	}
	if !bytes.Equal(output.Bytes(), input) {
		t.Errorf("%s, mismatching output:\ngot  %q\nwant %q", name, output.Bytes(), input)
	}
	if rd.InputOffset != int64(buf.Len()) {
		t.Errorf("%s, mismatching input offset: got %d, want %d", name, rd.InputOffset, buf.Len())
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range testFiles {
		roundTrip(t, f, testutil.MustLoadFile(f, -1))
		roundTrip(t, f+" (truncated)", testutil.MustLoadFile(f, 100))
	}
	for _, s := range []string{"", "a", "ab", "aaab", "abcd", "abracadabra", "hello, world!"} {
		roundTrip(t, s, []byte(s))
	}
}

func TestRoundTripRandom(t *testing.T) {
	rand := testutil.NewRand(0)
	for i := 0; i < 200; i++ {
		input := rand.Bytes(rand.Intn(256), 1+rand.Intn(256))

		// Skewed data may legitimately require codewords that the header
		// cannot represent.
		var buf bytes.Buffer
		if err := Encode(&buf, input); err == ErrCodewordLength {
			continue
		}
		roundTrip(t, "random", input)
	}
}

func TestCompressedSize(t *testing.T) {
	// Input of 255 distinct symbols always costs exactly 8 bits per symbol.
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testutil.Alphabet(255)))
	assert.Equal(t, HeaderSize(255)+255, buf.Len())

	// Repeating a single symbol costs one bit per symbol.
	buf.Reset()
	require.NoError(t, Encode(&buf, bytes.Repeat([]byte{'z'}, 255)))
	assert.Equal(t, HeaderSize(1)+32, buf.Len())
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	for _, f := range testFiles {
		base := filepath.Base(f)
		packed := filepath.Join(dir, base+".sf")
		unpacked := filepath.Join(dir, base)

		require.NoError(t, PackFile(f, packed), base)
		require.NoError(t, UnpackFile(packed, unpacked, nil), base)

		want := testutil.MustLoadFile(f, -1)
		got := testutil.MustLoadFile(unpacked, -1)
		assert.Equal(t, want, got, base)

		// PackFile and Encode produce identical streams.
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, want))
		assert.Equal(t, buf.Bytes(), testutil.MustLoadFile(packed, -1), base)
	}
}

func TestFilesErrors(t *testing.T) {
	dir := t.TempDir()
	path := func(name string) string { return filepath.Join(dir, name) }

	// Missing input.
	_, err := os.Stat(path("missing"))
	require.True(t, os.IsNotExist(err))
	assert.True(t, os.IsNotExist(PackFile(path("missing"), path("out"))))
	assert.True(t, os.IsNotExist(UnpackFile(path("missing"), path("out"), nil)))

	// Oversized input is rejected before the output is created.
	require.NoError(t, os.WriteFile(path("large"), make([]byte, 256), 0664))
	assert.Equal(t, ErrInputTooLarge, PackFile(path("large"), path("large.sf")))
	_, err = os.Stat(path("large.sf"))
	assert.True(t, os.IsNotExist(err), "output must not be created")

	// Corrupted input leaves the partial output behind.
	require.NoError(t, os.WriteFile(path("bad.sf"), testutil.MustDecodeHex("0204 610100"), 0664))
	err = UnpackFile(path("bad.sf"), path("bad"), nil)
	assert.Equal(t, ErrTruncated, err)
	assert.True(t, errors.IsCorrupted(err))
	_, err = os.Stat(path("bad"))
	assert.NoError(t, err)

	// Strict mode is honored.
	require.NoError(t, os.WriteFile(path("trail.sf"), testutil.MustDecodeHex("0204 610100 620101 10 00"), 0664))
	assert.NoError(t, UnpackFile(path("trail.sf"), path("trail"), nil))
	assert.Equal(t, ErrCorrupt, UnpackFile(path("trail.sf"), path("trail"), &ReaderConfig{Strict: true}))
}

func TestPackDataChanged(t *testing.T) {
	// The codes are gathered from "aaab", then the input is read again.
	codes := mustBuildCodes([]byte("aaab"))
	var vectors = []struct {
		desc  string
		input io.Reader
		err   error
	}{{
		desc:  "same input",
		input: bytes.NewReader([]byte("aaab")),
	}, {
		desc:  "input shrank",
		input: bytes.NewReader([]byte("aab")),
		err:   errInputChanged,
	}, {
		desc:  "input grew",
		input: bytes.NewReader([]byte("aaabb")),
		err:   errInputChanged,
	}, {
		desc:  "new symbol",
		input: bytes.NewReader([]byte("aaac")),
		err:   errNoCodeword,
	}, {
		desc:  "read failure",
		input: &testutil.BuggyReader{R: bytes.NewReader([]byte("aaab")), N: 2, Err: io.ErrUnexpectedEOF},
		err:   io.ErrUnexpectedEOF,
	}}

	for _, v := range vectors {
		var buf bytes.Buffer
		err := packData(&buf, v.input, 4, codes)
		assert.Equal(t, v.err, err, v.desc)
		if v.err == nil {
			assert.Equal(t, testutil.MustDecodeHex("0204 610100 620101 10"), buf.Bytes(), v.desc)
		}
	}
	assert.True(t, errors.IsInvalid(errInputChanged))
	assert.True(t, errors.IsInvalid(errNoCodeword))
}

func FuzzRoundTrip(f *testing.F) {
	for _, s := range []string{"", "a", "aaab", "abracadabra", "hello, world!"} {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, input []byte) {
		var buf bytes.Buffer
		if err := Encode(&buf, input); err != nil {
			if !errors.IsInvalid(err) {
				t.Fatalf("unexpected error class: %v", err)
			}
			return
		}
		var output bytes.Buffer
		if err := Decode(&output, &buf); err != nil {
			t.Fatalf("unexpected Decode error: %v", err)
		}
		if !bytes.Equal(output.Bytes(), input) {
			t.Fatalf("mismatching output:\ngot  %q\nwant %q", output.Bytes(), input)
		}
	})
}

func FuzzDecode(f *testing.F) {
	f.Add(testutil.MustDecodeHex("0204 610100 620101 10"))
	f.Add(testutil.MustDecodeHex("0202 610100 620202 c0"))
	f.Fuzz(func(t *testing.T, input []byte) {
		var output bytes.Buffer
		err := Decode(&output, bytes.NewReader(input))
		if err != nil && !errors.IsCorrupted(err) && !errors.IsInvalid(err) {
			t.Fatalf("unexpected error class: %v", err)
		}
	})
}
