package codec

import (
	"fmt"
)

// tripletCodec is the mandatory `byte-triplet` codec: dates of the form
// "Y-M-D" stored as three raw bytes, spec §4.C. Each component is an
// unsigned decimal in [0, 255]; the printed form is "%u-%u-%u", up to 11
// characters ("255-255-255"). This implementation never truncates the
// printed form to a fixed buffer size.
type tripletCodec struct{}

// ByteTriplet is the mandatory `byte-triplet` codec.
var ByteTriplet SizedCodec = tripletCodec{}

func (tripletCodec) Parse(in []byte) ([]byte, error) {
	var a, b, c uint
	if _, err := fmt.Sscanf(string(in), "%d-%d-%d", &a, &b, &c); err != nil {
		return nil, fmt.Errorf("byte-triplet: %w: %w", err, ErrMalformed)
	}

	if a > 0xFF || b > 0xFF || c > 0xFF {
		return nil, fmt.Errorf("byte-triplet: component out of byte range: %w", ErrMalformed)
	}

	return []byte{byte(a), byte(b), byte(c)}, nil
}

func (tripletCodec) Format(stored []byte) (string, error) {
	if len(stored) != 3 {
		return "", fmt.Errorf("byte-triplet: want 3 stored bytes, got %d: %w", len(stored), ErrMalformed)
	}

	return fmt.Sprintf("%d-%d-%d", stored[0], stored[1], stored[2]), nil
}

func (c tripletCodec) ParseSize(in []byte) (int, error) {
	return sizeViaParse(c, in)
}

func (c tripletCodec) FormatSize(stored []byte) (int, error) {
	return sizeViaFormat(c, stored)
}
