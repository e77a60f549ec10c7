package tlv

import "errors"

// Error classification codes — spec §7's Schema/Capacity/State taxonomy.
var (
	// ErrExists indicates Add was called for a type that already has a record.
	ErrExists = errors.New("tlv: record exists")
	// ErrNotFound indicates Del or Get (including a size query) found no
	// record.
	ErrNotFound = errors.New("tlv: record not found")
	// ErrNoSpace indicates no gap and no tail space could hold the record
	// (ENOSPC in spec §4.D).
	ErrNoSpace = errors.New("tlv: no space")
	// ErrReservedType indicates a caller requested type 0x00 or 0xFF, which
	// are reserved for padding and erased markers — a programmer error per
	// spec §4.D's assertion.
	ErrReservedType = errors.New("tlv: reserved type")
	// ErrCorrupt indicates a record header could not be parsed in place
	// (e.g. a length that runs past the end of the payload).
	ErrCorrupt = errors.New("tlv: corrupt payload")
)
