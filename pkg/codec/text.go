package codec

// textCodec copies bytes verbatim on parse; format copies bytes and
// NUL-terminates the output buffer per spec §4.C, though Go's string type
// makes the in-memory NUL terminator unobservable to callers — the
// underlying Get in pkg/tlv still reproduces the on-disk '\0' convenience
// byte when cap > length.
type textCodec struct{}

// Text is the mandatory `text` codec: copy bytes verbatim, no NUL
// termination required on storage.
var Text SizedCodec = textCodec{}

func (textCodec) Parse(in []byte) ([]byte, error) {
	out := make([]byte, len(in))
	copy(out, in)

	return out, nil
}

func (textCodec) Format(stored []byte) (string, error) {
	return string(stored), nil
}

func (c textCodec) ParseSize(in []byte) (int, error) {
	return sizeViaParse(c, in)
}

func (c textCodec) FormatSize(stored []byte) (int, error) {
	return sizeViaFormat(c, stored)
}
