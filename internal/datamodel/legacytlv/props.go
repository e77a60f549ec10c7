package legacytlv

import "github.com/edzius/tlvstore/pkg/codec"

type scalarProp struct {
	name  string
	id    byte
	codec codec.SizedCodec
}

const (
	idProductID    = 1
	idSerialNo     = 2
	idPCBName      = 16
	idPCBRevision  = 17
	idPCBPRDate    = 18
	idPCBPRLoc     = 19
	idPCBSN        = 20
	idRadioCalData = 240
	idXtalCalData  = 241

	macGroupFirst = 224
	macGroupLast  = 239
)

// macGroupPattern is the single observable group name for the MAC range —
// spec §9's Open Question: the original aliases EEPROM_ATTR_MAC to
// MAC_FIRST but lists "GENERIC_MAC" once in its code table; list() reports
// the whole range once as "GENERIC_MAC_*" rather than enumerating 16 entries.
const macGroupPattern = "GENERIC_MAC"

var scalarProps = []scalarProp{
	{"PRODUCT_ID", idProductID, codec.Text},
	{"SERIAL_NO", idSerialNo, codec.Text},
	{"PCB_NAME", idPCBName, codec.Text},
	{"PCB_REVISION", idPCBRevision, codec.Text},
	{"PCB_PRDATE", idPCBPRDate, codec.ByteTriplet},
	{"PCB_PRLOCATION", idPCBPRLoc, codec.Text},
	{"PCB_SN", idPCBSN, codec.Text},
	{"XTAL_CALIBRATION_DATA", idXtalCalData, codec.OpaqueBinary},
	{"RADIO_CALIBRATION_DATA", idRadioCalData, codec.LZMABinary},
}

func findScalar(name string) (scalarProp, bool) {
	for _, p := range scalarProps {
		if p.name == name {
			return p, true
		}
	}

	return scalarProp{}, false
}

var groupPatterns = []string{macGroupPattern}
