package firmuxtlv

import "github.com/edzius/tlvstore/pkg/codec"

// scalarProp binds a scalar property name to a TLV type code and codec,
// spec §4.E's property ID table for firmux-tlv.
type scalarProp struct {
	name  string
	id    byte
	codec codec.SizedCodec
}

const (
	idProductID   = 1
	idProductName = 2
	idSerialNo    = 3
	idPCBName     = 16
	idPCBRevision = 17
	idPCBPRDate   = 18
	idPCBPRLoc    = 19
	idPCBSN       = 20
	idXtalCalData = 240
	idRadioCal    = 241
	idRadioBrd    = 242

	macGroupFirst = 128
	macGroupLast  = 143
	macGroupCount = macGroupLast - macGroupFirst + 1
)

const macGroupPattern = "MAC_ADDR"

var scalarProps = []scalarProp{
	{"PRODUCT_ID", idProductID, codec.Text},
	{"PRODUCT_NAME", idProductName, codec.Text},
	{"SERIAL_NO", idSerialNo, codec.Text},
	{"PCB_NAME", idPCBName, codec.Text},
	{"PCB_REVISION", idPCBRevision, codec.Text},
	{"PCB_PRDATE", idPCBPRDate, codec.ByteTriplet},
	{"PCB_PRLOCATION", idPCBPRLoc, codec.Text},
	{"PCB_SN", idPCBSN, codec.Text},
	{"XTAL_CALDATA", idXtalCalData, codec.OpaqueBinary},
	{"RADIO_CALDATA", idRadioCal, codec.LZMABinary},
	{"RADIO_BRDDATA", idRadioBrd, codec.LZMABinary},
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
