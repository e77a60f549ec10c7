package legacytlv

import (
	"bytes"
	"errors"
	"testing"

	"github.com/edzius/tlvstore/internal/datamodel"
	"github.com/edzius/tlvstore/pkg/codec"
)

const testPayloadSize = 512

func newTestRegion() []byte {
	return bytes.Repeat([]byte{0xFF}, headerSize+testPayloadSize)
}

func Test_Init_Force_Recognizes_Empty_Region(t *testing.T) {
	reg := newTestRegion()

	m := New()
	if err := m.Init(reg, true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if got := reg[:magicLen]; string(got) != magic {
		t.Fatalf("magic=%q, want=%q", got, magic)
	}

	var buf bytes.Buffer
	if _, err := m.Print("PRODUCT_ID", &buf); !errors.Is(err, datamodel.ErrUnset) {
		t.Fatalf("err=%v, want ErrUnset", err)
	}
}

func Test_Init_Rejects_Corrupted_CRC(t *testing.T) {
	reg := newTestRegion()

	m := New()
	if err := m.Init(reg, true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	store := m.store
	if err := store.Add(idProductID, []byte("widget-7")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	payload := reg[headerSize:]

	n, err := store.Len()
	if err != nil {
		t.Fatalf("Len: %v", err)
	}

	h := header{version: version, totalLen: uint32(n)}
	h.crc = 0xdeadbeef
	encodeHeader(reg, h)

	m2 := New()
	if err := m2.Init(reg, false); !errors.Is(err, datamodel.ErrCRCMismatch) {
		t.Fatalf("err=%v, want ErrCRCMismatch", err)
	}

	_ = payload
}

func Test_Check_Print_List_Work_ReadOnly(t *testing.T) {
	reg := newTestRegion()

	m := New()
	if err := m.Init(reg, true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if err := m.store.Add(idProductID, []byte("legacy-widget")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	macValue, err := codec.MACWithParam.Parse([]byte("aa:bb:cc:dd:ee:ff"), "eth0")
	if err != nil {
		t.Fatalf("Parse MAC: %v", err)
	}

	if err := m.store.Add(macGroupFirst, macValue); err != nil {
		t.Fatalf("Add MAC: %v", err)
	}

	var out bytes.Buffer
	m.List(&out)

	if !bytes.Contains(out.Bytes(), []byte("PRODUCT_ID\n")) {
		t.Fatalf("List missing PRODUCT_ID, got: %q", out.String())
	}

	if !bytes.Contains(out.Bytes(), []byte("GENERIC_MAC_*\n")) {
		t.Fatalf("List missing GENERIC_MAC_*, got: %q", out.String())
	}

	var buf bytes.Buffer
	if _, err := m.Print("PRODUCT_ID", &buf); err != nil {
		t.Fatalf("Print: %v", err)
	}

	if got, want := buf.String(), "legacy-widget"; got != want {
		t.Fatalf("got=%q, want=%q", got, want)
	}

	buf.Reset()

	if _, err := m.Print("GENERIC_MAC_eth0", &buf); err != nil {
		t.Fatalf("Print GENERIC_MAC_eth0: %v", err)
	}

	if got, want := buf.String(), "aa:bb:cc:dd:ee:ff"; got != want {
		t.Fatalf("got=%q, want=%q", got, want)
	}

	if err := m.Check("PRODUCT_ID", []byte("anything")); err != nil {
		t.Fatalf("Check: %v", err)
	}

	if err := m.Check("NO_SUCH_KEY", nil); !errors.Is(err, datamodel.ErrUnknownKey) {
		t.Fatalf("err=%v, want ErrUnknownKey", err)
	}
}

func Test_Store_Always_Refuses(t *testing.T) {
	reg := newTestRegion()

	m := New()
	if err := m.Init(reg, true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if err := m.Store("PRODUCT_ID", []byte("x")); !errors.Is(err, datamodel.ErrNotSupported) {
		t.Fatalf("Store err=%v, want ErrNotSupported", err)
	}
}

func Test_Flush_Is_A_NoOp_On_A_Clean_Store(t *testing.T) {
	reg := newTestRegion()

	m := New()
	if err := m.Init(reg, true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if err := m.Flush(); err != nil {
		t.Fatalf("Flush on a clean store: %v", err)
	}
}

func Test_Flush_Refuses_Once_The_Store_Was_Dirtied(t *testing.T) {
	reg := newTestRegion()

	m := New()
	if err := m.Init(reg, true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	// Store itself never dirties the backing tlv.Store (it always refuses
	// first); only a direct mutation, as no other path reaches this model,
	// can leave it dirty.
	if err := m.store.Add(idProductID, []byte("x")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := m.Flush(); !errors.Is(err, datamodel.ErrNotSupported) {
		t.Fatalf("Flush err=%v, want ErrNotSupported", err)
	}
}

func Test_PrintAll_Formats_MAC_Group_With_Pattern_Prefix(t *testing.T) {
	reg := newTestRegion()

	m := New()
	if err := m.Init(reg, true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	macValue, err := codec.MACWithParam.Parse([]byte("11:22:33:44:55:66"), "wlan0")
	if err != nil {
		t.Fatalf("Parse MAC: %v", err)
	}

	if err := m.store.Add(macGroupFirst+1, macValue); err != nil {
		t.Fatalf("Add MAC: %v", err)
	}

	var buf bytes.Buffer
	if _, err := m.Print("", &buf); err != nil {
		t.Fatalf("Print all: %v", err)
	}

	if !bytes.Contains(buf.Bytes(), []byte("GENERIC_MAC_wlan0=11:22:33:44:55:66\n")) {
		t.Fatalf("missing formatted MAC group line, got: %q", buf.String())
	}
}
