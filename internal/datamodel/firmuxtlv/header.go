// Package firmuxtlv implements the preferred firmux-tlv on-disk layout —
// spec §4.E: magic "FXDMTLV", version 1, a host-byte-order header, and a
// TLV payload whose length field is also host-ordered.
package firmuxtlv

import (
	"encoding/binary"
	"fmt"
)

const (
	magic        = "FXDMTLV"
	magicLen     = 7
	version byte = 1

	// headerSize is sizeof{magic[7], version:u8, crc:u32, len:u32}.
	headerSize = magicLen + 1 + 4 + 4

	offMagic   = 0
	offVersion = magicLen
	offCRC     = offVersion + 1
	offLen     = offCRC + 4
)

// byteOrder is the host byte order used for both the header's crc/len
// fields and the TLV payload's per-record length field, per spec §4.E.
var byteOrder = binary.NativeEndian

type header struct {
	version byte
	crc     uint32
	length  uint32
}

func decodeHeader(b []byte) (header, error) {
	if len(b) < headerSize {
		return header{}, fmt.Errorf("firmux-tlv: region smaller than header (%d < %d)", len(b), headerSize)
	}

	return header{
		version: b[offVersion],
		crc:     byteOrder.Uint32(b[offCRC : offCRC+4]),
		length:  byteOrder.Uint32(b[offLen : offLen+4]),
	}, nil
}

func encodeHeader(b []byte, h header) {
	copy(b[offMagic:offMagic+magicLen], magic)
	b[offVersion] = h.version
	byteOrder.PutUint32(b[offCRC:offCRC+4], h.crc)
	byteOrder.PutUint32(b[offLen:offLen+4], h.length)
}

func magicMatches(b []byte) bool {
	return len(b) >= magicLen && string(b[offMagic:offMagic+magicLen]) == magic
}

func allErased(b []byte) bool {
	for _, v := range b[:headerSize] {
		if v != 0xFF {
			return false
		}
	}

	return true
}
