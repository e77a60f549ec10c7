package codec

import "errors"

// Error classification codes for codec parse/format failures. These are
// Schema-class errors in the taxonomy of spec §7: non-fatal to the store,
// the offending operation fails.
var (
	// ErrMalformed indicates the input does not parse for the declared codec.
	ErrMalformed = errors.New("codec: malformed input")
	// ErrTooLong indicates the parsed value would not fit the codec's
	// documented encoding (e.g. an interface tag containing a NUL byte).
	ErrTooLong = errors.New("codec: value too long")
)
