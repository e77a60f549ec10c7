package codec

import (
	"errors"
	"testing"
)

func Test_Text_Parse_Format_RoundTrip(t *testing.T) {
	out, err := Text.Parse([]byte("widget-7"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	s, err := Text.Format(out)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	if got, want := s, "widget-7"; got != want {
		t.Fatalf("s=%q, want=%q", got, want)
	}
}

func Test_ByteTriplet_Parse_Format_RoundTrip(t *testing.T) {
	out, err := ByteTriplet.Parse([]byte("24-3-7"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got, want := out, []byte{24, 3, 7}; string(got) != string(want) {
		t.Fatalf("out=%v, want=%v", got, want)
	}

	s, err := ByteTriplet.Format(out)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	if got, want := s, "24-3-7"; got != want {
		t.Fatalf("s=%q, want=%q", got, want)
	}
}

func Test_ByteTriplet_Parse_Rejects_Malformed_Input(t *testing.T) {
	if _, err := ByteTriplet.Parse([]byte("not-a-date")); !errors.Is(err, ErrMalformed) {
		t.Fatalf("err=%v, want ErrMalformed", err)
	}
}

func Test_MAC_Parse_Format_RoundTrip(t *testing.T) {
	out, err := MAC.Parse([]byte("aa:bb:cc:dd:ee:ff"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	s, err := MAC.Format(out)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	if got, want := s, "aa:bb:cc:dd:ee:ff"; got != want {
		t.Fatalf("s=%q, want=%q", got, want)
	}
}

func Test_MACWithParam_Parse_Format_RoundTrip(t *testing.T) {
	out, err := MACWithParam.Parse([]byte("aa:bb:cc:dd:ee:ff"), "eth0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got, want := len(out), 6+len("eth0")+1; got != want {
		t.Fatalf("len=%d, want=%d", got, want)
	}

	value, tag, err := MACWithParam.Format(out)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	if got, want := value, "aa:bb:cc:dd:ee:ff"; got != want {
		t.Fatalf("value=%q, want=%q", got, want)
	}

	if got, want := tag, "eth0"; got != want {
		t.Fatalf("tag=%q, want=%q", got, want)
	}
}

func Test_OpaqueBinary_Parse_Format_RoundTrip(t *testing.T) {
	in := []byte{0x00, 0x01, 0xFE, 0xFF}

	out, err := OpaqueBinary.Parse(in)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	s, err := OpaqueBinary.Format(out)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	if got, want := []byte(s), in; string(got) != string(want) {
		t.Fatalf("s=%v, want=%v", got, want)
	}
}

func Test_LZMABinary_Parse_Format_RoundTrip(t *testing.T) {
	in := []byte("radio calibration data, highly compressible aaaaaaaaaaaaaaaaaaaa")

	compressed, err := LZMABinary.Parse(in)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out, err := LZMABinary.Format(compressed)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	if got, want := out, string(in); got != want {
		t.Fatalf("round-trip mismatch: got=%q want=%q", got, want)
	}
}

func Test_SizeQueryFidelity(t *testing.T) {
	cases := []SizedCodec{Text, ByteTriplet, MAC, OpaqueBinary}

	in := []byte("widget-7")

	for _, c := range cases {
		out, err := c.Parse(in)
		if err != nil {
			continue // not every codec accepts this input; skip
		}

		size, err := c.ParseSize(in)
		if err != nil {
			t.Fatalf("ParseSize: %v", err)
		}

		if got, want := size, len(out); got != want {
			t.Fatalf("ParseSize=%d, want=%d (len(Parse(...)))", got, want)
		}
	}
}
