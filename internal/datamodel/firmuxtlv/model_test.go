package firmuxtlv

import (
	"bytes"
	"errors"
	"testing"

	"github.com/edzius/tlvstore/internal/datamodel"
	"github.com/edzius/tlvstore/pkg/region"
)

// Matches spec §8 scenario 1 literally.
func Test_Init_Force_On_Fresh_Region_Produces_Documented_Header(t *testing.T) {
	reg := bytes.Repeat([]byte{0xFF}, 256)

	m := New()
	if err := m.Init(reg, true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	wantHeader := append([]byte("FXDMTLV"), 0x01)
	if got := reg[:8]; !bytes.Equal(got, wantHeader) {
		t.Fatalf("header magic+version=%v, want=%v", got, wantHeader)
	}

	if got := reg[16:]; !bytes.Equal(got, bytes.Repeat([]byte{0xFF}, 240)) {
		t.Fatalf("payload not all-erased after force init")
	}

	if _, err := m.Print("PRODUCT_ID", &bytes.Buffer{}); !errors.Is(err, datamodel.ErrUnset) {
		t.Fatalf("err=%v, want ErrUnset", err)
	}
}

// Matches spec §8 scenario 2 literally.
func Test_Store_Then_Flush_Then_Reopen_RoundTrips(t *testing.T) {
	reg := bytes.Repeat([]byte{0xFF}, 256)

	m := New()
	if err := m.Init(reg, true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if err := m.Store("PRODUCT_ID", []byte("widget-7")); err != nil {
		t.Fatalf("Store: %v", err)
	}

	if err := m.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	wantPayloadPrefix := append([]byte{0x01, 0x08, 0x00}, []byte("widget-7")...)
	if got := reg[16 : 16+len(wantPayloadPrefix)]; !bytes.Equal(got, wantPayloadPrefix) {
		t.Fatalf("payload prefix=%v, want=%v", got, wantPayloadPrefix)
	}

	m2 := New()
	if err := m2.Init(reg, false); err != nil {
		t.Fatalf("reopen Init: %v", err)
	}

	var buf bytes.Buffer
	if _, err := m2.Print("PRODUCT_ID", &buf); err != nil {
		t.Fatalf("Print: %v", err)
	}

	if got, want := buf.String(), "widget-7"; got != want {
		t.Fatalf("got=%q, want=%q", got, want)
	}
}

// Matches spec §8 scenario 3 literally.
func Test_MAC_Group_Allocates_Sequential_Slots(t *testing.T) {
	reg := bytes.Repeat([]byte{0xFF}, 256)

	m := New()
	if err := m.Init(reg, true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if err := m.Store("MAC_ADDR_eth0", []byte("aa:bb:cc:dd:ee:ff")); err != nil {
		t.Fatalf("Store eth0: %v", err)
	}

	if err := m.Store("MAC_ADDR_eth1", []byte("11:22:33:44:55:66")); err != nil {
		t.Fatalf("Store eth1: %v", err)
	}

	id0, found, err := resolveMACSlot(m.store, "eth0")
	if err != nil || !found || id0 != macGroupFirst {
		t.Fatalf("eth0 slot=%d found=%v err=%v, want slot=%d", id0, found, err, macGroupFirst)
	}

	id1, found, err := resolveMACSlot(m.store, "eth1")
	if err != nil || !found || id1 != macGroupFirst+1 {
		t.Fatalf("eth1 slot=%d found=%v err=%v, want slot=%d", id1, found, err, macGroupFirst+1)
	}

	var buf bytes.Buffer
	if _, err := m.Print("MAC_ADDR_eth0", &buf); err != nil {
		t.Fatalf("Print: %v", err)
	}

	if got, want := buf.String(), "aa:bb:cc:dd:ee:ff"; got != want {
		t.Fatalf("got=%q, want=%q", got, want)
	}
}

func Test_CRC_RoundTrip_Invariant(t *testing.T) {
	reg := bytes.Repeat([]byte{0xFF}, 256)

	m := New()
	if err := m.Init(reg, true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if err := m.Store("SERIAL_NO", []byte("sn-001")); err != nil {
		t.Fatalf("Store: %v", err)
	}

	if err := m.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	m2 := New()
	if err := m2.Init(reg, false); err != nil {
		t.Fatalf("reopen: %v", err)
	}

	var buf bytes.Buffer
	if _, err := m2.Print("SERIAL_NO", &buf); err != nil {
		t.Fatalf("Print: %v", err)
	}

	if got, want := buf.String(), "sn-001"; got != want {
		t.Fatalf("got=%q, want=%q", got, want)
	}
}

func Test_Init_Rejects_Corrupted_CRC(t *testing.T) {
	reg := bytes.Repeat([]byte{0xFF}, 256)

	m := New()
	if err := m.Init(reg, true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if err := m.Store("SERIAL_NO", []byte("sn-001")); err != nil {
		t.Fatalf("Store: %v", err)
	}

	if err := m.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	reg[16] ^= 0xFF // corrupt first payload byte without updating CRC

	m2 := New()
	if err := m2.Init(reg, false); !errors.Is(err, datamodel.ErrCRCMismatch) {
		t.Fatalf("err=%v, want ErrCRCMismatch", err)
	}
}

func Test_Empty_Is_Empty_Invariant(t *testing.T) {
	reg := bytes.Repeat([]byte{0xFF}, 256)

	m := New()
	if err := m.Init(reg, true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if err := m.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	hdr, err := decodeHeader(reg)
	if err != nil {
		t.Fatalf("decodeHeader: %v", err)
	}

	if got, want := hdr.crc, region.Checksum(nil); got != want {
		t.Fatalf("crc=%#08x, want=%#08x (crc32 of empty span)", got, want)
	}
}
