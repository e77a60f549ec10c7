package firmuxfields

import "github.com/edzius/tlvstore/pkg/codec"

// field describes one fixed-offset, fixed-size slot in the packed struct,
// spec §4.E's field table for firmux-fields.
type field struct {
	name   string
	offset int
	size   int
	codec  codec.SizedCodec
}

// Field layout, including the one byte of padding after PCB_PRDATE's three
// date bytes that the spec calls out explicitly.
var fields = []field{
	{"PRODUCT_ID", 0, 16, codec.Text},
	{"PRODUCT_NAME", 16, 16, codec.Text},
	{"SERIAL_NO", 32, 16, codec.Text},
	{"PCB_NAME", 48, 8, codec.Text},
	{"PCB_REVISION", 56, 4, codec.Text},
	{"PCB_PRDATE", 60, 3, codec.ByteTriplet}, // offset 63 is padding
	{"PCB_PRLOCATION", 64, 16, codec.Text},
	{"PCB_SN", 80, 16, codec.Text},
	{"MAC", 96, 6, codec.MAC},
}

// payloadSize is the total packed-struct size, not counting the header.
const payloadSize = 102

func findField(name string) (field, bool) {
	for _, f := range fields {
		if f.name == name {
			return f, true
		}
	}

	return field{}, false
}

// isSet reports whether slot contains any non-0xFF byte — firmux-fields'
// documented "set" predicate (spec §4.E), applied to the field regardless
// of its codec.
func isSet(slot []byte) bool {
	for _, b := range slot {
		if b != 0xFF {
			return true
		}
	}

	return false
}
