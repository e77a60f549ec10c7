package codec

import (
	"bytes"
	"fmt"
	"strings"
)

// macCodec is the mandatory `mac` codec: six colon-hex octets, spec §4.C.
type macCodec struct{}

// MAC is the mandatory `mac` codec.
var MAC SizedCodec = macCodec{}

func (macCodec) Parse(in []byte) ([]byte, error) {
	return parseMACOctets(string(in))
}

func (macCodec) Format(stored []byte) (string, error) {
	if len(stored) < 6 {
		return "", fmt.Errorf("mac: want >=6 stored bytes, got %d: %w", len(stored), ErrMalformed)
	}

	return formatMACOctets(stored[:6]), nil
}

func (c macCodec) ParseSize(in []byte) (int, error) {
	return sizeViaParse(c, in)
}

func (c macCodec) FormatSize(stored []byte) (int, error) {
	return sizeViaFormat(c, stored)
}

func parseMACOctets(s string) ([]byte, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 6 {
		return nil, fmt.Errorf("mac: want 6 colon-separated octets, got %d: %w", len(parts), ErrMalformed)
	}

	out := make([]byte, 6)

	for i, p := range parts {
		var v uint
		if _, err := fmt.Sscanf(p, "%x", &v); err != nil || v > 0xFF {
			return nil, fmt.Errorf("mac: invalid octet %q: %w", p, ErrMalformed)
		}

		out[i] = byte(v)
	}

	return out, nil
}

func formatMACOctets(octets []byte) string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		octets[0], octets[1], octets[2], octets[3], octets[4], octets[5])
}

// macParamCodec is the mandatory `mac-with-param` codec: six octets plus a
// NUL-terminated interface tag, spec §4.C — used by grouped properties such
// as MAC_ADDR_<tag>. Total stored length is 6 + len(tag) + 1.
type macParamCodec struct{}

// MACWithParam is the mandatory `mac-with-param` codec.
var MACWithParam ParamCodec = macParamCodec{}

func (macParamCodec) Parse(in []byte, param string) ([]byte, error) {
	if strings.ContainsRune(param, 0) {
		return nil, fmt.Errorf("mac-with-param: tag contains NUL: %w", ErrTooLong)
	}

	octets, err := parseMACOctets(string(in))
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 6+len(param)+1)
	out = append(out, octets...)
	out = append(out, []byte(param)...)
	out = append(out, 0)

	return out, nil
}

func (macParamCodec) Format(stored []byte) (value string, param string, err error) {
	if len(stored) < 7 {
		return "", "", fmt.Errorf("mac-with-param: want >=7 stored bytes, got %d: %w", len(stored), ErrMalformed)
	}

	tag := stored[6:]
	if nul := bytes.IndexByte(tag, 0); nul >= 0 {
		tag = tag[:nul]
	}

	return formatMACOctets(stored[:6]), string(tag), nil
}
