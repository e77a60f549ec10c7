// Package tlv implements the slotted byte-arena store of spec §4.D: a
// sequence of (type, length, value) records over a payload span, with
// erased (0xFF) and padding (0x00) byte semantics, in-place insertion,
// replacement, deletion, best-gap placement, and compaction.
//
// # Basic Usage
//
//	store := tlv.New(payload, binary.LittleEndian)
//	if err := store.Add(1, []byte("widget-7")); err != nil {
//	    // handle ErrExists / ErrNoSpace
//	}
//	n, err := store.Get(1, buf)
//
// The byte order of the on-disk length field is supplied by the caller
// (host order for firmux-tlv, big-endian for legacy-tlv — spec §4.E) via
// the standard encoding/binary.ByteOrder interface; tlv itself has no
// opinion on endianness.
//
// # Concurrency
//
// A Store is not safe for concurrent use; it borrows the payload span for
// the duration of one logical operation, per the Region-owns-mapped-memory
// design in spec §9.
package tlv
