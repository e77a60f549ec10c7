// Package firmuxfields implements the fixed-struct firmux-fields on-disk
// layout — spec §4.E: magic "FXDMFLD1", a big-endian header CRC, and a
// packed struct of fixed-width ASCII/byte fields (no TLV).
package firmuxfields

import (
	"encoding/binary"
	"fmt"
)

const (
	magic    = "FXDMFLD1"
	magicLen = 8

	// headerSize is sizeof{magic[8], crc:u32 big-endian}.
	headerSize = magicLen + 4
)

var byteOrder = binary.BigEndian

func decodeCRC(b []byte) (uint32, error) {
	if len(b) < headerSize {
		return 0, fmt.Errorf("firmux-fields: region smaller than header (%d < %d)", len(b), headerSize)
	}

	return byteOrder.Uint32(b[magicLen : magicLen+4]), nil
}

func encodeHeader(b []byte, crc uint32) {
	copy(b[:magicLen], magic)
	byteOrder.PutUint32(b[magicLen:magicLen+4], crc)
}

func magicMatches(b []byte) bool {
	return len(b) >= magicLen && string(b[:magicLen]) == magic
}

func allErased(b []byte) bool {
	for _, v := range b[:headerSize] {
		if v != 0xFF {
			return false
		}
	}

	return true
}
