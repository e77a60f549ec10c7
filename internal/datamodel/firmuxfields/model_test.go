package firmuxfields

import (
	"bytes"
	"errors"
	"testing"

	"github.com/edzius/tlvstore/internal/datamodel"
)

func Test_Init_Force_Fills_Payload_Erased(t *testing.T) {
	reg := bytes.Repeat([]byte{0xFF}, headerSize+payloadSize)

	m := New()
	if err := m.Init(reg, true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if got := reg[:magicLen]; string(got) != magic {
		t.Fatalf("magic=%q, want=%q", got, magic)
	}

	if _, err := m.Print("PRODUCT_ID", &bytes.Buffer{}); !errors.Is(err, datamodel.ErrUnset) {
		t.Fatalf("err=%v, want ErrUnset", err)
	}
}

func Test_Store_Then_Flush_Then_Reopen_RoundTrips(t *testing.T) {
	reg := bytes.Repeat([]byte{0xFF}, headerSize+payloadSize)

	m := New()
	if err := m.Init(reg, true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if err := m.Store("PRODUCT_ID", []byte("widget-7")); err != nil {
		t.Fatalf("Store: %v", err)
	}

	if err := m.Store("MAC", []byte("aa:bb:cc:dd:ee:ff")); err != nil {
		t.Fatalf("Store MAC: %v", err)
	}

	if err := m.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	m2 := New()
	if err := m2.Init(reg, false); err != nil {
		t.Fatalf("reopen: %v", err)
	}

	var buf bytes.Buffer
	if _, err := m2.Print("PRODUCT_ID", &buf); err != nil {
		t.Fatalf("Print: %v", err)
	}

	if got, want := buf.String(), "widget-7"; got != want {
		t.Fatalf("got=%q, want=%q", got, want)
	}

	buf.Reset()

	if _, err := m2.Print("MAC", &buf); err != nil {
		t.Fatalf("Print MAC: %v", err)
	}

	if got, want := buf.String(), "aa:bb:cc:dd:ee:ff"; got != want {
		t.Fatalf("got=%q, want=%q", got, want)
	}
}

func Test_Init_Rejects_Corrupted_CRC(t *testing.T) {
	reg := bytes.Repeat([]byte{0xFF}, headerSize+payloadSize)

	m := New()
	if err := m.Init(reg, true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if err := m.Store("PRODUCT_ID", []byte("x")); err != nil {
		t.Fatalf("Store: %v", err)
	}

	if err := m.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	reg[headerSize] ^= 0xFF

	m2 := New()
	if err := m2.Init(reg, false); !errors.Is(err, datamodel.ErrCRCMismatch) {
		t.Fatalf("err=%v, want ErrCRCMismatch", err)
	}
}

func Test_Store_Value_Exceeding_Slot_Size_Fails(t *testing.T) {
	reg := bytes.Repeat([]byte{0xFF}, headerSize+payloadSize)

	m := New()
	if err := m.Init(reg, true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if err := m.Store("PCB_REVISION", []byte("way-too-long-for-4-bytes")); err == nil {
		t.Fatalf("expected an error for an oversized value")
	}
}
