// Package datamodel defines the uniform façade every on-disk layout
// presents to the protocol registry — spec §4.E — plus the typed key
// representation recommended by spec §9's REDESIGN FLAGS in place of
// runtime pattern matching on key strings.
package datamodel

import (
	"errors"
	"strings"
)

// Error classification codes shared by all three models.
var (
	// ErrUnknownKey indicates the key is not present in the model's schema.
	ErrUnknownKey = errors.New("datamodel: unknown key")
	// ErrUnset indicates the key is known but the underlying slot is empty.
	ErrUnset = errors.New("datamodel: property unset")
	// ErrUnrecognized indicates init() found neither a matching header nor
	// an empty region — the registry should try the next model.
	ErrUnrecognized = errors.New("datamodel: unrecognized region")
	// ErrCRCMismatch indicates a header matched but its CRC did not verify.
	ErrCRCMismatch = errors.New("datamodel: crc mismatch")
	// ErrNotSupported indicates an operation a compatibility-only model
	// declines to support (legacy-tlv's store/flush, spec §4.E).
	ErrNotSupported = errors.New("datamodel: not supported")
)

// Key is the typed, pre-resolved form of a user-facing property key —
// either a scalar property or a parameterized slot within a group's ID
// range. Each model method resolves its key string once with ResolveKey at
// the start of the call and works on the typed form from there; the
// property façade passes key strings through unresolved.
type Key struct {
	// Name is the originally requested string (e.g. "MAC_ADDR_eth0"), kept
	// for diagnostics.
	Name string

	// Pattern is the scalar property name or the group pattern
	// (e.g. "PRODUCT_ID" or "MAC_ADDR").
	Pattern string

	// Param is the group parameter (e.g. "eth0"); empty for scalar keys.
	Param string

	// IsGroup distinguishes a parameterized group key from a scalar key.
	IsGroup bool
}

// Model is the uniform façade spec §4.E requires of every on-disk layout.
type Model interface {
	// Name returns the model's registry name (e.g. "firmux-tlv").
	Name() string

	// Init validates or (re)initializes header the model finds in region,
	// per the state machine in spec §4.E. force reinitializes in place.
	// Returns ErrUnrecognized if region matches neither a valid header nor
	// the empty state, so the registry can try the next model.
	Init(region []byte, force bool) error

	// List prints every available key name, one per line, to out.
	List(out Printer)

	// Check reports whether value would be acceptable for key without
	// writing it; a nil value checks only that key is known.
	Check(key string, value []byte) error

	// Print writes the formatted value of key to out. A nil/empty key dumps
	// every occupied property. Returns the byte count written on success,
	// ErrUnset if key is known but empty, ErrUnknownKey if key is unknown.
	Print(key string, out Printer) (int, error)

	// Store parses in and writes it to key's slot.
	Store(key string, in []byte) error

	// Flush recomputes the header CRC (and length, where applicable) if the
	// model is dirty, and clears the dirty flag.
	Flush() error
}

// Printer is the minimal sink Print/List write to — satisfied by
// *bufio.Writer, a bytes.Buffer, or the CLI's IO.
type Printer interface {
	WriteString(s string) (int, error)
}

// ResolveKey parses name into a typed Key, per spec §4.E's grouped-key
// parameter resolution. groupPatterns lists every known group pattern
// (e.g. "MAC_ADDR"), longest first, so a pattern that is itself a prefix of
// another never steals a match. A name that exactly equals or does not
// start with any group pattern is treated as scalar.
func ResolveKey(name string, groupPatterns []string) Key {
	for _, pattern := range groupPatterns {
		prefix := pattern + "_"
		if strings.HasPrefix(name, prefix) {
			param := name[len(prefix):]
			if param != "" {
				return Key{Name: name, Pattern: pattern, Param: param, IsGroup: true}
			}
		}
	}

	return Key{Name: name, Pattern: name}
}
