package firmuxfields

import (
	"fmt"

	"github.com/edzius/tlvstore/internal/datamodel"
	"github.com/edzius/tlvstore/internal/registry"
	"github.com/edzius/tlvstore/pkg/codec"
	"github.com/edzius/tlvstore/pkg/region"
)

func init() {
	registry.RegisterAlternate(New())
}

// Model implements datamodel.Model for the fixed-struct firmux-fields
// layout. Unlike the TLV models it has no grouped properties and no
// separate payload length — the whole fixed-size struct is always "the
// payload" the header CRC covers.
type Model struct {
	region  []byte
	payload []byte
	dirty   bool
}

// New returns an uninitialized firmux-fields model.
func New() *Model {
	return &Model{}
}

// Name returns the model's registry name.
func (m *Model) Name() string { return "firmux-fields" }

// Init implements spec §4.E's state machine, including the accepted-as-
// designed quirk (spec §9): a region is "empty" if its first headerSize
// bytes are all 0xFF, even if the remainder holds non-0xFF garbage.
func (m *Model) Init(reg []byte, force bool) error {
	if len(reg) < headerSize+payloadSize {
		return fmt.Errorf("firmux-fields: region too small: %w", datamodel.ErrUnrecognized)
	}

	empty := allErased(reg[:headerSize])
	valid := !empty && magicMatches(reg)

	payload := reg[headerSize : headerSize+payloadSize]

	switch {
	case empty || force:
		encodeHeader(reg, region.Checksum(fillErased(payload)))
		m.region = reg
		m.payload = payload
		m.dirty = false

		return nil

	case valid:
		crc, err := decodeCRC(reg)
		if err != nil {
			return fmt.Errorf("firmux-fields: %w: %w", err, datamodel.ErrUnrecognized)
		}

		if got := region.Checksum(payload); got != crc {
			return fmt.Errorf("firmux-fields: crc mismatch (got %#08x want %#08x): %w", got, crc, datamodel.ErrCRCMismatch)
		}

		m.region = reg
		m.payload = payload
		m.dirty = false

		return nil

	default:
		return fmt.Errorf("firmux-fields: header not recognized: %w", datamodel.ErrUnrecognized)
	}
}

func fillErased(payload []byte) []byte {
	for i := range payload {
		payload[i] = 0xFF
	}

	return payload
}

// List prints every field name, one per line, to out.
func (m *Model) List(out datamodel.Printer) {
	for _, f := range fields {
		_, _ = out.WriteString(f.name + "\n")
	}
}

// Check reports whether value would parse for key's codec.
func (m *Model) Check(key string, value []byte) error {
	f, ok := findField(key)
	if !ok {
		return fmt.Errorf("firmux-fields: %s: %w", key, datamodel.ErrUnknownKey)
	}

	if value == nil {
		return nil
	}

	parsed, err := f.codec.Parse(value)
	if err != nil {
		return err
	}

	if len(parsed) > f.size {
		return fmt.Errorf("firmux-fields: %s: value %d bytes exceeds slot size %d: %w", key, len(parsed), f.size, codec.ErrTooLong)
	}

	return nil
}

// Print writes the formatted value of key to out, per the intended guard
// enforced (spec §9's `if (cond);` bug fix): unset fields are reported as
// ErrUnset, not printed as empty/garbage.
func (m *Model) Print(key string, out datamodel.Printer) (int, error) {
	if key == "" {
		return m.printAll(out)
	}

	f, ok := findField(key)
	if !ok {
		return 0, fmt.Errorf("firmux-fields: %s: %w", key, datamodel.ErrUnknownKey)
	}

	slot := m.payload[f.offset : f.offset+f.size]

	if !isSet(slot) {
		return 0, fmt.Errorf("firmux-fields: %s: %w", key, datamodel.ErrUnset)
	}

	s, err := formatSlot(f, slot)
	if err != nil {
		return 0, err
	}

	return out.WriteString(s)
}

func (m *Model) printAll(out datamodel.Printer) (int, error) {
	total := 0

	for _, f := range fields {
		slot := m.payload[f.offset : f.offset+f.size]
		if !isSet(slot) {
			continue
		}

		s, err := formatSlot(f, slot)
		if err != nil {
			return total, err
		}

		n, err := out.WriteString(f.name + "=" + s + "\n")
		total += n

		if err != nil {
			return total, err
		}
	}

	return total, nil
}

func formatSlot(f field, slot []byte) (string, error) {
	if f.codec != codec.Text {
		return f.codec.Format(slot)
	}

	end := len(slot)
	for i, b := range slot {
		if b == 0xFF {
			end = i
			break
		}
	}

	return f.codec.Format(slot[:end])
}

// Store parses in and writes it into key's fixed slot after verifying the
// parsed length fits, spec §4.E.
func (m *Model) Store(key string, in []byte) error {
	f, ok := findField(key)
	if !ok {
		return fmt.Errorf("firmux-fields: %s: %w", key, datamodel.ErrUnknownKey)
	}

	value, err := f.codec.Parse(in)
	if err != nil {
		return err
	}

	if len(value) > f.size {
		return fmt.Errorf("firmux-fields: %s: value %d bytes exceeds slot size %d: %w", key, len(value), f.size, codec.ErrTooLong)
	}

	slot := m.payload[f.offset : f.offset+f.size]
	copy(slot, value)

	for i := len(value); i < f.size; i++ {
		slot[i] = 0xFF
	}

	m.dirty = true

	return nil
}

// Flush recomputes the big-endian header CRC over the whole fixed struct if
// dirty, scoped to this store value — not a package-level global, per spec
// §9's resolution of the original's file-scope dirty flag.
func (m *Model) Flush() error {
	if !m.dirty {
		return nil
	}

	encodeHeader(m.region, region.Checksum(m.payload))
	m.dirty = false

	return nil
}
