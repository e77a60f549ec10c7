//go:build !nolzma

package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

// lzmaCodec is the mandatory `lzma-binary` codec: LZMA-compress on parse,
// decompress on format, spec §4.C. ulikunitz/xz's LZMA2 filter at the
// largest dictionary capacity plus a CRC-64 stream checksum is the closest
// idiomatic Go equivalent of liblzma's preset 9|EXTREME with a CRC-64
// check; the match-finder settings are left at the library defaults.
type lzmaCodec struct{}

// LZMABinary is the mandatory `lzma-binary` codec. Building with the
// "nolzma" tag swaps this for the deterministic opaque-binary fallback
// required by spec §4.C when the LZMA library is unavailable; see
// lzma_fallback.go.
var LZMABinary SizedCodec = lzmaCodec{}

func lzmaWriterConfig() xz.WriterConfig {
	return xz.WriterConfig{
		CheckSum: xz.CRC64,
		DictCap:  lzma.MaxDictCap,
	}
}

func (lzmaCodec) Parse(in []byte) ([]byte, error) {
	var buf bytes.Buffer

	cfg := lzmaWriterConfig()

	w, err := cfg.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("lzma-binary: new writer: %w", err)
	}

	if _, err := w.Write(in); err != nil {
		return nil, fmt.Errorf("lzma-binary: compress: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lzma-binary: close writer: %w", err)
	}

	return buf.Bytes(), nil
}

func (lzmaCodec) Format(stored []byte) (string, error) {
	r, err := xz.NewReader(bytes.NewReader(stored))
	if err != nil {
		return "", fmt.Errorf("lzma-binary: new reader: %w: %w", err, ErrMalformed)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("lzma-binary: decompress: %w: %w", err, ErrMalformed)
	}

	return string(out), nil
}

func (c lzmaCodec) ParseSize(in []byte) (int, error) {
	return sizeViaParse(c, in)
}

func (c lzmaCodec) FormatSize(stored []byte) (int, error) {
	return sizeViaFormat(c, stored)
}
