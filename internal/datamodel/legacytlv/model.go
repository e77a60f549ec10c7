package legacytlv

import (
	"fmt"

	"github.com/edzius/tlvstore/internal/datamodel"
	"github.com/edzius/tlvstore/internal/registry"
	"github.com/edzius/tlvstore/pkg/codec"
	"github.com/edzius/tlvstore/pkg/region"
	"github.com/edzius/tlvstore/pkg/tlv"
)

func init() {
	registry.RegisterAlternate(New())
}

// Model implements datamodel.Model for the read-mostly compatibility
// legacy-tlv layout. Store always refuses and Flush refuses whenever the
// store is dirty, per spec §4.E: this model is the compatibility entry, not
// a write target.
type Model struct {
	region []byte
	store  *tlv.Store
}

// New returns an uninitialized legacy-tlv model.
func New() *Model {
	return &Model{}
}

// Name returns the model's registry name.
func (m *Model) Name() string { return "legacy-tlv" }

// Init implements spec §4.E's state machine with legacy-tlv's big-endian
// header and TLV length field.
func (m *Model) Init(reg []byte, force bool) error {
	if len(reg) < headerSize {
		return fmt.Errorf("legacy-tlv: region smaller than header: %w", datamodel.ErrUnrecognized)
	}

	hdr, decodeErr := decodeHeader(reg)
	valid := decodeErr == nil && magicMatches(reg) && hdr.version == version
	empty := allErased(reg)

	switch {
	case valid && !force:
		payload := reg[headerSize:]
		if int(hdr.totalLen) > len(payload) {
			return fmt.Errorf("legacy-tlv: declared length %d exceeds payload: %w", hdr.totalLen, datamodel.ErrCRCMismatch)
		}

		if got := region.Checksum(payload[:hdr.totalLen]); got != hdr.crc {
			return fmt.Errorf("legacy-tlv: crc mismatch (got %#08x want %#08x): %w", got, hdr.crc, datamodel.ErrCRCMismatch)
		}

		m.region = reg
		m.store = tlv.New(payload, byteOrder)

		return nil

	case empty || force:
		encodeHeader(reg, header{version: version, totalLen: 0, crc: 0})

		payload := reg[headerSize:]
		for i := range payload {
			payload[i] = 0xFF
		}

		m.region = reg
		m.store = tlv.New(payload, byteOrder)

		return nil

	default:
		return fmt.Errorf("legacy-tlv: header not recognized: %w", datamodel.ErrUnrecognized)
	}
}

// List prints every scalar property name and the GENERIC_MAC group pattern
// once, never enumerating the 16 underlying slots — spec §9's Open
// Question about the original's single code-table entry for the range.
func (m *Model) List(out datamodel.Printer) {
	for _, p := range scalarProps {
		_, _ = out.WriteString(p.name + "\n")
	}

	_, _ = out.WriteString(macGroupPattern + "_*\n")
}

// Check reports whether value would be acceptable for key.
func (m *Model) Check(key string, value []byte) error {
	k := datamodel.ResolveKey(key, groupPatterns)

	if k.IsGroup {
		if k.Pattern != macGroupPattern {
			return fmt.Errorf("legacy-tlv: %s: %w", key, datamodel.ErrUnknownKey)
		}

		if value == nil {
			return nil
		}

		_, err := codec.MACWithParam.Parse(value, k.Param)

		return err
	}

	prop, ok := findScalar(k.Pattern)
	if !ok {
		return fmt.Errorf("legacy-tlv: %s: %w", key, datamodel.ErrUnknownKey)
	}

	if value == nil {
		return nil
	}

	_, err := prop.codec.Parse(value)

	return err
}

// Print writes the formatted value for key to out. See firmuxtlv.Print for
// the single-key-vs-dump-all convention this mirrors.
func (m *Model) Print(key string, out datamodel.Printer) (int, error) {
	if key == "" {
		return m.printAll(out)
	}

	k := datamodel.ResolveKey(key, groupPatterns)

	if k.IsGroup {
		return m.printGroup(k, out)
	}

	prop, ok := findScalar(k.Pattern)
	if !ok {
		return 0, fmt.Errorf("legacy-tlv: %s: %w", key, datamodel.ErrUnknownKey)
	}

	size, err := m.store.Get(prop.id, nil)
	if err != nil {
		return 0, fmt.Errorf("legacy-tlv: %s: %w", key, datamodel.ErrUnset)
	}

	buf := make([]byte, size)
	if _, err := m.store.Get(prop.id, buf); err != nil {
		return 0, err
	}

	s, err := prop.codec.Format(buf)
	if err != nil {
		return 0, err
	}

	return out.WriteString(s)
}

func (m *Model) printGroup(k datamodel.Key, out datamodel.Printer) (int, error) {
	if k.Pattern != macGroupPattern {
		return 0, fmt.Errorf("legacy-tlv: %s: %w", k.Name, datamodel.ErrUnknownKey)
	}

	id, found, err := resolveMACSlot(m.store, k.Param)
	if err != nil {
		return 0, err
	}

	if !found {
		return 0, fmt.Errorf("legacy-tlv: %s: %w", k.Name, datamodel.ErrUnset)
	}

	size, err := m.store.Get(id, nil)
	if err != nil {
		return 0, err
	}

	buf := make([]byte, size)
	if _, err := m.store.Get(id, buf); err != nil {
		return 0, err
	}

	value, _, err := codec.MACWithParam.Format(buf)
	if err != nil {
		return 0, err
	}

	return out.WriteString(value)
}

func (m *Model) printAll(out datamodel.Printer) (int, error) {
	total := 0

	for _, p := range scalarProps {
		size, err := m.store.Get(p.id, nil)
		if err != nil {
			continue
		}

		buf := make([]byte, size)
		if _, err := m.store.Get(p.id, buf); err != nil {
			return total, err
		}

		s, err := p.codec.Format(buf)
		if err != nil {
			return total, err
		}

		n, err := out.WriteString(p.name + "=" + s + "\n")
		total += n

		if err != nil {
			return total, err
		}
	}

	for id := byte(macGroupFirst); id <= macGroupLast; id++ {
		size, err := m.store.Get(id, nil)
		if err != nil {
			continue
		}

		buf := make([]byte, size)
		if _, err := m.store.Get(id, buf); err != nil {
			return total, err
		}

		value, tag, err := codec.MACWithParam.Format(buf)
		if err != nil {
			return total, err
		}

		n, err := out.WriteString(fmt.Sprintf("%s_%s=%s\n", macGroupPattern, tag, value))
		total += n

		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// Store refuses: legacy-tlv is a read-mostly compatibility entry, spec §4.E.
func (m *Model) Store(key string, in []byte) error {
	return fmt.Errorf("legacy-tlv: %s: %w", key, datamodel.ErrNotSupported)
}

// Flush refuses for the same reason as Store, unless nothing was ever
// dirtied — Store always refuses, so a clean close (the only path
// reachable through this model) is a harmless no-op rather than a
// spurious error on a read-only session.
func (m *Model) Flush() error {
	if m.store == nil || !m.store.Dirty() {
		return nil
	}

	return fmt.Errorf("legacy-tlv: %w", datamodel.ErrNotSupported)
}
