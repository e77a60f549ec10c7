package tlv

import (
	"encoding/binary"
	"fmt"
)

// Record is a single decoded (type, length, value) entry, spec §3.
type Record struct {
	Type   byte
	Offset int // offset of the record's header within the payload span
	Value  []byte
}

// Store manages a payload span as a list of TLV records with
// erased-trailing semantics, spec §4.D.
type Store struct {
	data  []byte
	order binary.ByteOrder
	frag  bool
	dirty bool
}

// New records span as the store's payload; it does not touch its contents
// (init(span) -> store in spec §4.D). order decodes/encodes each record's
// length field; callers pass the byte order their datamodel documents.
func New(span []byte, order binary.ByteOrder) *Store {
	return &Store{data: span, order: order}
}

// Dirty reports whether any mutation occurred since the last Flush-level
// reset via ClearDirty. Scoped to this Store value, not a package global —
// spec §9's resolution of the fixed-struct models' file-scope dirty flag.
func (s *Store) Dirty() bool { return s.dirty }

// Fragmented reports whether a replace shrank or a delete freed bytes since
// the last Optimise.
func (s *Store) Fragmented() bool { return s.frag }

// ClearDirty clears the dirty flag; called by a datamodel's Flush after it
// has recomputed and written the header CRC.
func (s *Store) ClearDirty() { s.dirty = false }

func checkType(t byte) error {
	if t == TypeErased || t == TypePadding {
		return fmt.Errorf("tlv: type %#02x: %w", t, ErrReservedType)
	}

	return nil
}

func (s *Store) readHeader(off int) (typ byte, length int, err error) {
	if off+headerSize > len(s.data) {
		return 0, 0, fmt.Errorf("tlv: header at %d runs past payload end: %w", off, ErrCorrupt)
	}

	typ = s.data[off]
	length = int(s.order.Uint16(s.data[off+1 : off+3]))

	if off+headerSize+length > len(s.data) {
		return 0, 0, fmt.Errorf("tlv: record at %d (len %d) runs past payload end: %w", off, length, ErrCorrupt)
	}

	return typ, length, nil
}

func (s *Store) writeHeader(off int, typ byte, length int) {
	s.data[off] = typ
	s.order.PutUint16(s.data[off+1:off+3], uint16(length))
}

// Len returns the offset of the first erased byte — the payload length
// covered by the header CRC (spec §4.D, §4.B).
func (s *Store) Len() (int, error) {
	cursor := 0

	for cursor < len(s.data) {
		switch s.data[cursor] {
		case TypeErased:
			return cursor, nil
		case TypePadding:
			cursor++
		default:
			_, length, err := s.readHeader(cursor)
			if err != nil {
				return 0, err
			}

			cursor += headerSize + length
		}
	}

	return cursor, nil
}

// Find performs the linear scan of spec §4.D: read a header at the cursor;
// stop at an erased byte; walk padding one byte at a time; otherwise
// compare and either return or advance past the record.
func (s *Store) Find(typ byte) (Record, bool, error) {
	if err := checkType(typ); err != nil {
		return Record{}, false, err
	}

	cursor := 0

	for cursor < len(s.data) {
		switch s.data[cursor] {
		case TypeErased:
			return Record{}, false, nil
		case TypePadding:
			cursor++
		default:
			recType, length, err := s.readHeader(cursor)
			if err != nil {
				return Record{}, false, err
			}

			if recType == typ {
				return Record{Type: recType, Offset: cursor, Value: s.data[cursor+headerSize : cursor+headerSize+length]}, true, nil
			}

			cursor += headerSize + length
		}
	}

	return Record{}, false, nil
}

// Add places a new record for typ. It fails with ErrExists if typ already
// has a record, or ErrNoSpace if no gap or tail space fits it.
func (s *Store) Add(typ byte, value []byte) error {
	if err := checkType(typ); err != nil {
		return err
	}

	if len(value) > maxValueLength {
		return fmt.Errorf("tlv: value length %d exceeds %d: %w", len(value), maxValueLength, ErrNoSpace)
	}

	_, found, err := s.Find(typ)
	if err != nil {
		return err
	}

	if found {
		return fmt.Errorf("tlv: type %#02x: %w", typ, ErrExists)
	}

	return s.place(typ, value)
}

// place runs the best-gap placement algorithm of spec §4.D and writes the
// new record either into the chosen gap or at the erased tail.
func (s *Store) place(typ byte, value []byte) error {
	offset, found, tail, err := s.bestGap(len(value))
	if err != nil {
		return err
	}

	if found {
		s.writeHeader(offset, typ, len(value))
		copy(s.data[offset+headerSize:offset+headerSize+len(value)], value)
		s.dirty = true

		return nil
	}

	if tail+headerSize+len(value) > len(s.data) {
		return fmt.Errorf("tlv: no gap and no tail space for type %#02x: %w", typ, ErrNoSpace)
	}

	s.writeHeader(tail, typ, len(value))
	copy(s.data[tail+headerSize:tail+headerSize+len(value)], value)
	s.dirty = true

	return nil
}

// Set writes value for typ, per spec §4.D: behaves like Add if absent; if
// present with a matching length, overwrites in place; if the existing
// record is longer, overwrites and pads the shrunk tail; if shorter, frees
// the old record and re-places a new one.
func (s *Store) Set(typ byte, value []byte) error {
	if err := checkType(typ); err != nil {
		return err
	}

	if len(value) > maxValueLength {
		return fmt.Errorf("tlv: value length %d exceeds %d: %w", len(value), maxValueLength, ErrNoSpace)
	}

	rec, found, err := s.Find(typ)
	if err != nil {
		return err
	}

	if !found {
		return s.place(typ, value)
	}

	oldLen := len(rec.Value)
	newLen := len(value)

	switch {
	case oldLen == newLen:
		copy(rec.Value, value)
		s.dirty = true

		return nil

	case oldLen > newLen:
		copy(rec.Value[:newLen], value)
		fill(rec.Value[newLen:], TypePadding)
		s.writeHeader(rec.Offset, typ, newLen)
		s.frag = true
		s.dirty = true

		return nil

	default: // oldLen < newLen
		fill(s.data[rec.Offset:rec.Offset+headerSize+oldLen], TypePadding)
		s.frag = true
		s.dirty = true

		return s.place(typ, value)
	}
}

// Del removes the record for typ, zero-filling its header and value and
// marking the store fragmented, spec §4.D.
func (s *Store) Del(typ byte) error {
	if err := checkType(typ); err != nil {
		return err
	}

	rec, found, err := s.Find(typ)
	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("tlv: type %#02x: %w", typ, ErrNotFound)
	}

	fill(s.data[rec.Offset:rec.Offset+headerSize+len(rec.Value)], TypePadding)
	s.frag = true
	s.dirty = true

	return nil
}

// Get copies the value for typ into buf, returning the number of bytes
// copied. A nil buf performs a size query, returning the full length
// without copying. If len(buf) exceeds the value's length, a trailing '\0'
// is written at buf[length] as a convenience for text callers, matching
// the C `tlvs_get` contract in spec §4.D.
func (s *Store) Get(typ byte, buf []byte) (int, error) {
	rec, found, err := s.Find(typ)
	if err != nil {
		return 0, err
	}

	if !found {
		return 0, fmt.Errorf("tlv: type %#02x: %w", typ, ErrNotFound)
	}

	if buf == nil {
		return len(rec.Value), nil
	}

	n := len(buf)
	if n > len(rec.Value) {
		n = len(rec.Value)
	}

	copy(buf[:n], rec.Value)

	if len(buf) > len(rec.Value) {
		buf[len(rec.Value)] = 0
	}

	return n, nil
}

// Reset fills the entire payload with 0xFF, marking it empty, spec §4.D.
func (s *Store) Reset() {
	fill(s.data, TypeErased)
	s.dirty = true
	s.frag = false
}

func fill(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}
