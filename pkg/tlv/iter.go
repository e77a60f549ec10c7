package tlv

// Seq is the iterator type returned by Iter. It matches the shape of
// iter.Seq[Record] so callers can use slices.Collect, without this package
// depending on the iter stdlib package directly.
type Seq func(yield func(Record) bool)

// Iter yields every real record once in physical order, skipping padding
// and stopping at the first erased byte — a single-pass walk, spec §4.D.
func (s *Store) Iter() Seq {
	return func(yield func(Record) bool) {
		cursor := 0

		for cursor < len(s.data) {
			switch s.data[cursor] {
			case TypeErased:
				return
			case TypePadding:
				cursor++
			default:
				typ, length, err := s.readHeader(cursor)
				if err != nil {
					return
				}

				rec := Record{Type: typ, Offset: cursor, Value: s.data[cursor+headerSize : cursor+headerSize+length]}
				if !yield(rec) {
					return
				}

				cursor += headerSize + length
			}
		}
	}
}

// Optimise compacts the payload, spec §4.D: two cursors walk the payload,
// padding is skipped byte-by-byte, and each real record is copied down to
// the save cursor (a no-op when they already coincide). The freed tail is
// filled with 0xFF. Clears Fragmented, sets Dirty.
func (s *Store) Optimise() error {
	save, curr := 0, 0

	for curr < len(s.data) {
		b := s.data[curr]

		if b == TypePadding {
			curr++
			continue
		}

		if b == TypeErased {
			break
		}

		_, length, err := s.readHeader(curr)
		if err != nil {
			return err
		}

		recLen := headerSize + length
		if save != curr {
			copy(s.data[save:save+recLen], s.data[curr:curr+recLen])
		}

		save += recLen
		curr += recLen
	}

	fill(s.data[save:curr], TypeErased)
	s.frag = false
	s.dirty = true

	return nil
}
