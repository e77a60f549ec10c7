package codec

// binaryCodec is the mandatory `opaque-binary` codec: a straight copy in
// both directions, spec §4.C. Format returns the stored bytes unmodified as
// a string — Go strings are plain byte sequences, so this round-trips even
// when the payload is not printable (e.g. redirected to an `@file` sink by
// the property façade).
type binaryCodec struct{}

// OpaqueBinary is the mandatory `opaque-binary` codec.
var OpaqueBinary SizedCodec = binaryCodec{}

func (binaryCodec) Parse(in []byte) ([]byte, error) {
	out := make([]byte, len(in))
	copy(out, in)

	return out, nil
}

func (binaryCodec) Format(stored []byte) (string, error) {
	return string(stored), nil
}

func (c binaryCodec) ParseSize(in []byte) (int, error) {
	return sizeViaParse(c, in)
}

func (c binaryCodec) FormatSize(stored []byte) (int, error) {
	return sizeViaFormat(c, stored)
}
