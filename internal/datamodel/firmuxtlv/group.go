package firmuxtlv

import (
	"github.com/edzius/tlvstore/pkg/codec"
	"github.com/edzius/tlvstore/pkg/tlv"
)

func codecMACWithParamParse(in []byte, param string) ([]byte, error) {
	return codec.MACWithParam.Parse(in, param)
}

func codecMACWithParamFormat(stored []byte) (value string, param string, err error) {
	return codec.MACWithParam.Format(stored)
}

// resolveMACSlot scans [macGroupFirst, macGroupLast] for an occupied slot
// whose stored parameter matches param — spec §4.E's grouped-key
// parameter resolution.
func resolveMACSlot(store *tlv.Store, param string) (id byte, found bool, err error) {
	for candidate := byte(macGroupFirst); candidate <= macGroupLast; candidate++ {
		size, getErr := store.Get(candidate, nil)
		if getErr != nil {
			continue
		}

		buf := make([]byte, size)
		if _, getErr := store.Get(candidate, buf); getErr != nil {
			return 0, false, getErr
		}

		_, tag, formatErr := codecMACWithParamFormat(buf)
		if formatErr != nil {
			continue
		}

		if tag == param {
			return candidate, true, nil
		}
	}

	return 0, false, nil
}

// firstUnoccupiedMACSlot returns the first slot in the group's range with
// no record, for allocation on write (spec §4.E).
func firstUnoccupiedMACSlot(store *tlv.Store) (id byte, found bool) {
	for candidate := byte(macGroupFirst); candidate <= macGroupLast; candidate++ {
		if _, ok, err := store.Find(candidate); err == nil && !ok {
			return candidate, true
		}
	}

	return 0, false
}
