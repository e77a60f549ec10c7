package region

import "testing"

func Test_Checksum_Matches_Known_CRC32_IEEE_Vector(t *testing.T) {
	// "123456789" is the standard CRC-32/ISO-HDLC (IEEE) test vector,
	// spec §4.B's reflected 0xEDB88320 polynomial with init/final 0xFFFFFFFF.
	got := Checksum([]byte("123456789"))
	want := uint32(0xCBF43926)

	if got != want {
		t.Fatalf("Checksum=%#08x, want=%#08x", got, want)
	}
}

func Test_Checksum_Of_Empty_Payload_Is_Zero(t *testing.T) {
	if got := Checksum(nil); got != 0 {
		t.Fatalf("Checksum(nil)=%#08x, want 0", got)
	}
}

func Test_CRC_Incremental_Matches_OneShot(t *testing.T) {
	payload := []byte("01 08 00 widget-7")

	c := NewCRC()
	_, _ = c.Write(payload[:5])
	_, _ = c.Write(payload[5:])

	if got, want := c.Sum32(), Checksum(payload); got != want {
		t.Fatalf("incremental=%#08x, oneshot=%#08x", got, want)
	}
}
