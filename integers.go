package cbor

// WriteUint writes v as a CBOR unsigned integer (major type 0), using the
// minimal-length head encoding.
func (s *Stream) WriteUint(v uint64) error {
	return writeHead(s, majorUint, v)
}

// WriteInt writes v as a CBOR integer, choosing major type 0 (unsigned)
// for v >= 0 and major type 1 (negative, encoded as -1-v) for v < 0.
func (s *Stream) WriteInt(v int64) error {
	if v >= 0 {
		return writeHead(s, majorUint, uint64(v))
	}
	return writeHead(s, majorNegInt, uint64(-1-v))
}

// ReadUint reads a CBOR unsigned integer. It fails with ErrBadType if the
// next item is not major type 0.
func (s *Stream) ReadUint() (uint64, error) {
	h, err := readHead(s)
	if err != nil {
		return 0, err
	}
	if h.major != majorUint {
		return 0, ErrBadType
	}
	return h.arg, nil
}

// ReadInt reads a CBOR integer of either sign. Values that overflow int64
// (an unsigned arg above 2^63-1, or a negative arg above 2^63-1, i.e. a
// value below -2^63) are reported as ErrRange since they cannot be
// represented.
func (s *Stream) ReadInt() (int64, error) {
	h, err := readHead(s)
	if err != nil {
		return 0, err
	}
	switch h.major {
	case majorUint:
		if h.arg > 1<<63-1 {
			return 0, ErrRange
		}
		return int64(h.arg), nil
	case majorNegInt:
		if h.arg > 1<<63-1 {
			return 0, ErrRange
		}
		return -1 - int64(h.arg), nil
	default:
		return 0, ErrBadType
	}
}

// narrow integer convenience readers/writers. These reuse ReadUint/WriteUint
// and ReadInt/WriteInt and add a range check for the requested width, since
// CBOR itself carries no notion of a fixed integer width: every integer is
// just "the smallest head that fits".

// WriteUint8 writes v as a CBOR unsigned integer.
func (s *Stream) WriteUint8(v uint8) error { return s.WriteUint(uint64(v)) }

// WriteUint16 writes v as a CBOR unsigned integer.
func (s *Stream) WriteUint16(v uint16) error { return s.WriteUint(uint64(v)) }

// WriteUint32 writes v as a CBOR unsigned integer.
func (s *Stream) WriteUint32(v uint32) error { return s.WriteUint(uint64(v)) }

// WriteUint64 writes v as a CBOR unsigned integer.
func (s *Stream) WriteUint64(v uint64) error { return s.WriteUint(v) }

// WriteInt8 writes v as a CBOR integer.
func (s *Stream) WriteInt8(v int8) error { return s.WriteInt(int64(v)) }

// WriteInt16 writes v as a CBOR integer.
func (s *Stream) WriteInt16(v int16) error { return s.WriteInt(int64(v)) }

// WriteInt32 writes v as a CBOR integer.
func (s *Stream) WriteInt32(v int32) error { return s.WriteInt(int64(v)) }

// WriteInt64 writes v as a CBOR integer.
func (s *Stream) WriteInt64(v int64) error { return s.WriteInt(v) }

// ReadUint8 reads a CBOR unsigned integer, failing with ErrRange if it
// does not fit in 8 bits.
func (s *Stream) ReadUint8() (uint8, error) {
	v, err := s.ReadUint()
	if err != nil {
		return 0, err
	}
	if v > 0xFF {
		return 0, ErrRange
	}
	return uint8(v), nil
}

// ReadUint16 reads a CBOR unsigned integer, failing with ErrRange if it
// does not fit in 16 bits.
func (s *Stream) ReadUint16() (uint16, error) {
	v, err := s.ReadUint()
	if err != nil {
		return 0, err
	}
	if v > 0xFFFF {
		return 0, ErrRange
	}
	return uint16(v), nil
}

// ReadUint32 reads a CBOR unsigned integer, failing with ErrRange if it
// does not fit in 32 bits.
func (s *Stream) ReadUint32() (uint32, error) {
	v, err := s.ReadUint()
	if err != nil {
		return 0, err
	}
	if v > 0xFFFFFFFF {
		return 0, ErrRange
	}
	return uint32(v), nil
}

// ReadUint64 reads a CBOR unsigned integer.
func (s *Stream) ReadUint64() (uint64, error) { return s.ReadUint() }

// ReadInt8 reads a CBOR integer, failing with ErrRange if it does not fit
// in 8 bits.
func (s *Stream) ReadInt8() (int8, error) {
	v, err := s.ReadInt()
	if err != nil {
		return 0, err
	}
	if v < -128 || v > 127 {
		return 0, ErrRange
	}
	return int8(v), nil
}

// ReadInt16 reads a CBOR integer, failing with ErrRange if it does not fit
// in 16 bits.
func (s *Stream) ReadInt16() (int16, error) {
	v, err := s.ReadInt()
	if err != nil {
		return 0, err
	}
	if v < -32768 || v > 32767 {
		return 0, ErrRange
	}
	return int16(v), nil
}

// ReadInt32 reads a CBOR integer, failing with ErrRange if it does not fit
// in 32 bits.
func (s *Stream) ReadInt32() (int32, error) {
	v, err := s.ReadInt()
	if err != nil {
		return 0, err
	}
	if v < -(1<<31) || v > 1<<31-1 {
		return 0, ErrRange
	}
	return int32(v), nil
}

// ReadInt64 reads a CBOR integer.
func (s *Stream) ReadInt64() (int64, error) { return s.ReadInt() }

// PeekMajor reports the major type of the next item without consuming it.
// ReadDatetime uses it to dispatch on the wire type of a tag-1 body before
// committing to a read.
func (s *Stream) PeekMajor() (byte, error) {
	b, err := s.peek(1)
	if err != nil {
		return 0, err
	}
	return b[0] >> 5, nil
}
