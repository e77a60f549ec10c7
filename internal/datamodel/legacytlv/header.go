// Package legacytlv implements the read-mostly compatibility legacy-tlv
// on-disk layout — spec §4.E: magic "TLVeppr\0", a big-endian header, and a
// TLV payload whose per-record length field is also big-endian.
package legacytlv

import (
	"encoding/binary"
	"fmt"
)

const (
	magic        = "TLVeppr\x00"
	magicLen     = 8
	version      = uint16(1)

	// headerSize is sizeof{magic[8], version:u16, totallen:u32, crc32:u32}.
	headerSize = magicLen + 2 + 4 + 4

	offMagic    = 0
	offVersion  = magicLen
	offTotalLen = offVersion + 2
	offCRC      = offTotalLen + 4
)

// byteOrder is the big-endian order legacy-tlv uses throughout, including
// the in-payload record length field (unlike firmux-tlv's host order).
var byteOrder = binary.BigEndian

type header struct {
	version  uint16
	totalLen uint32
	crc      uint32
}

func decodeHeader(b []byte) (header, error) {
	if len(b) < headerSize {
		return header{}, fmt.Errorf("legacy-tlv: region smaller than header (%d < %d)", len(b), headerSize)
	}

	return header{
		version:  byteOrder.Uint16(b[offVersion : offVersion+2]),
		totalLen: byteOrder.Uint32(b[offTotalLen : offTotalLen+4]),
		crc:      byteOrder.Uint32(b[offCRC : offCRC+4]),
	}, nil
}

func encodeHeader(b []byte, h header) {
	copy(b[offMagic:offMagic+magicLen], magic)
	byteOrder.PutUint16(b[offVersion:offVersion+2], h.version)
	byteOrder.PutUint32(b[offTotalLen:offTotalLen+4], h.totalLen)
	byteOrder.PutUint32(b[offCRC:offCRC+4], h.crc)
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
