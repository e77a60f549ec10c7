package legacytlv

import (
	"github.com/edzius/tlvstore/pkg/codec"
	"github.com/edzius/tlvstore/pkg/tlv"
)

// resolveMACSlot scans [macGroupFirst, macGroupLast] for an occupied slot
// whose stored interface tag matches param, spec §4.E.
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

		_, tag, formatErr := codec.MACWithParam.Format(buf)
		if formatErr != nil {
			continue
		}

		if tag == param {
			return candidate, true, nil
		}
	}

	return 0, false, nil
}
