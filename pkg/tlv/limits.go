package tlv

// headerSize is sizeof(type:u8, length:u16) — spec §3's TLV payload layout.
const headerSize = 3

// Reserved type values — spec §3.
const (
	// TypeErased marks the logical end of the sequence; no record follows.
	TypeErased byte = 0xFF
	// TypePadding marks a single byte of dead space between records.
	TypePadding byte = 0x00
)

// maxValueLength is the largest value length representable in the u16
// length field, regardless of byte order.
const maxValueLength = 1<<16 - 1
