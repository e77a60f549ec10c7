package tlv

// bestGap implements spec §4.D's best-gap placement scan: walk the payload
// tracking the running end-of-payload (the erased position) and, among
// padding runs whose exploitable length (run bytes minus header size) is
// large enough to hold the requested length, adopt the strictly smallest
// one seen so far — stopping early on an exact fit. Ties resolve to the
// earliest candidate in the payload, since only a strictly smaller run
// replaces the held candidate.
func (s *Store) bestGap(length int) (offset int, found bool, tail int, err error) {
	cursor := 0
	bestOffset := -1
	bestRunBytes := 0

	for cursor < len(s.data) {
		b := s.data[cursor]

		switch b {
		case TypeErased:
			return bestOffset, bestOffset >= 0, cursor, nil

		case TypePadding:
			start := cursor
			for cursor < len(s.data) && s.data[cursor] == TypePadding {
				cursor++
			}

			runBytes := cursor - start
			exploitable := runBytes - headerSize

			if exploitable >= length {
				if bestOffset == -1 || runBytes < bestRunBytes {
					bestOffset = start
					bestRunBytes = runBytes
				}

				if exploitable == length {
					return bestOffset, true, cursor, nil
				}
			}

		default:
			_, recLen, hdrErr := s.readHeader(cursor)
			if hdrErr != nil {
				return 0, false, 0, hdrErr
			}

			cursor += headerSize + recLen
		}
	}

	return bestOffset, bestOffset >= 0, cursor, nil
}
