package firmuxtlv

import (
	"fmt"

	"github.com/edzius/tlvstore/internal/datamodel"
	"github.com/edzius/tlvstore/internal/registry"
	"github.com/edzius/tlvstore/pkg/region"
	"github.com/edzius/tlvstore/pkg/tlv"
)

func init() {
	registry.RegisterDefault(New())
}

// Model implements datamodel.Model for the preferred firmux-tlv layout.
type Model struct {
	region []byte
	store  *tlv.Store
}

// New returns an uninitialized firmux-tlv model.
func New() *Model {
	return &Model{}
}

// Name returns the model's registry name.
func (m *Model) Name() string { return "firmux-tlv" }

// Init implements the state machine of spec §4.E: Unrecognized / Empty /
// Valid / Reinit.
func (m *Model) Init(reg []byte, force bool) error {
	if len(reg) < headerSize {
		return fmt.Errorf("firmux-tlv: region smaller than header: %w", datamodel.ErrUnrecognized)
	}

	hdr, decodeErr := decodeHeader(reg)
	valid := decodeErr == nil && magicMatches(reg) && hdr.version == version
	empty := allErased(reg)

	switch {
	case valid && !force:
		payload := reg[headerSize:]
		if int(hdr.length) > len(payload) {
			return fmt.Errorf("firmux-tlv: declared length %d exceeds payload: %w", hdr.length, datamodel.ErrCRCMismatch)
		}

		if got := region.Checksum(payload[:hdr.length]); got != hdr.crc {
			return fmt.Errorf("firmux-tlv: crc mismatch (got %#08x want %#08x): %w", got, hdr.crc, datamodel.ErrCRCMismatch)
		}

		m.region = reg
		m.store = tlv.New(payload, byteOrder)

		return nil

	case empty || force:
		clear(reg[:headerSize])
		encodeHeader(reg, header{version: version, crc: 0, length: 0})

		payload := reg[headerSize:]
		for i := range payload {
			payload[i] = 0xFF
		}

		m.region = reg
		m.store = tlv.New(payload, byteOrder)

		return nil

	default:
		return fmt.Errorf("firmux-tlv: header not recognized: %w", datamodel.ErrUnrecognized)
	}
}

// List prints every scalar property name and the MAC group pattern, one per
// line, to out.
func (m *Model) List(out datamodel.Printer) {
	for _, p := range scalarProps {
		_, _ = out.WriteString(p.name + "\n")
	}

	_, _ = out.WriteString(macGroupPattern + "_*\n")
}

// Check reports whether value would be acceptable for key, per spec §4.E.
// A nil value checks only that key is known.
func (m *Model) Check(key string, value []byte) error {
	k := datamodel.ResolveKey(key, groupPatterns)

	if k.IsGroup {
		if k.Pattern != macGroupPattern {
			return fmt.Errorf("firmux-tlv: %s: %w", key, datamodel.ErrUnknownKey)
		}

		if value == nil {
			return nil
		}

		_, err := codecMACWithParamParse(value, k.Param)

		return err
	}

	prop, ok := findScalar(k.Pattern)
	if !ok {
		return fmt.Errorf("firmux-tlv: %s: %w", key, datamodel.ErrUnknownKey)
	}

	if value == nil {
		return nil
	}

	_, err := prop.codec.Parse(value)

	return err
}

// Print writes the formatted value for key to out and returns the byte
// count written. An empty key dumps every occupied property as "KEY=VALUE"
// lines; a single key writes only the formatted value (the property façade
// is responsible for the "KEY=" display prefix on single-key reads).
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
		return 0, fmt.Errorf("firmux-tlv: %s: %w", key, datamodel.ErrUnknownKey)
	}

	value, err := m.store.Get(prop.id, nil)
	if err != nil {
		return 0, fmt.Errorf("firmux-tlv: %s: %w", key, datamodel.ErrUnset)
	}

	buf := make([]byte, value)
	if _, err := m.store.Get(prop.id, buf); err != nil {
		return 0, err
	}

	s, err := prop.codec.Format(buf)
	if err != nil {
		return 0, err
	}

	n, err := out.WriteString(s)

	return n, err
}

func (m *Model) printGroup(k datamodel.Key, out datamodel.Printer) (int, error) {
	if k.Pattern != macGroupPattern {
		return 0, fmt.Errorf("firmux-tlv: %s: %w", k.Name, datamodel.ErrUnknownKey)
	}

	id, found, err := resolveMACSlot(m.store, k.Param)
	if err != nil {
		return 0, err
	}

	if !found {
		return 0, fmt.Errorf("firmux-tlv: %s: %w", k.Name, datamodel.ErrUnset)
	}

	size, err := m.store.Get(id, nil)
	if err != nil {
		return 0, err
	}

	buf := make([]byte, size)
	if _, err := m.store.Get(id, buf); err != nil {
		return 0, err
	}

	value, _, err := codecMACWithParamFormat(buf)
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
			continue // unset, skip in a dump
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

		value, tag, err := codecMACWithParamFormat(buf)
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

// Store parses in and writes it to key's slot, per spec §4.E's grouped-key
// allocation rule: an exact parameter match is overwritten in place;
// otherwise the first unoccupied slot in the group's range is used.
func (m *Model) Store(key string, in []byte) error {
	k := datamodel.ResolveKey(key, groupPatterns)

	if k.IsGroup {
		if k.Pattern != macGroupPattern {
			return fmt.Errorf("firmux-tlv: %s: %w", key, datamodel.ErrUnknownKey)
		}

		return m.storeMAC(k.Param, in)
	}

	prop, ok := findScalar(k.Pattern)
	if !ok {
		return fmt.Errorf("firmux-tlv: %s: %w", key, datamodel.ErrUnknownKey)
	}

	value, err := prop.codec.Parse(in)
	if err != nil {
		return err
	}

	return m.store.Set(prop.id, value)
}

func (m *Model) storeMAC(param string, in []byte) error {
	id, found, err := resolveMACSlot(m.store, param)
	if err != nil {
		return err
	}

	if !found {
		id, found = firstUnoccupiedMACSlot(m.store)
		if !found {
			return fmt.Errorf("firmux-tlv: MAC_ADDR group full: %w", tlv.ErrNoSpace)
		}
	}

	stored, err := codecMACWithParamParse(in, param)
	if err != nil {
		return err
	}

	return m.store.Set(id, stored)
}

// Flush recomputes the header CRC and length if the store is dirty, and
// clears the dirty flag — spec §3's lifecycle.
func (m *Model) Flush() error {
	if !m.store.Dirty() {
		return nil
	}

	length, err := m.store.Len()
	if err != nil {
		return err
	}

	payload := m.region[headerSize:]
	crc := region.Checksum(payload[:length])

	encodeHeader(m.region, header{version: version, crc: crc, length: uint32(length)})
	m.store.ClearDirty()

	return nil
}
