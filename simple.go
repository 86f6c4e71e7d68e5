package cbor

// simple.go covers the remaining major-type-7 items that aren't floats:
// booleans, null, undefined, and the raw simple-value space (0-19, 32-255).

// WriteBool writes a CBOR boolean (major type 7, ai 20/21).
func (s *Stream) WriteBool(b bool) error {
	if b {
		return s.writeByte(majorSimple<<5 | simpleTrue)
	}
	return s.writeByte(majorSimple<<5 | simpleFalse)
}

// WriteNull writes the CBOR null literal (major type 7, ai 22).
func (s *Stream) WriteNull() error {
	return s.writeByte(majorSimple<<5 | simpleNull)
}

// WriteUndefined writes the CBOR undefined literal (major type 7, ai 23).
func (s *Stream) WriteUndefined() error {
	return s.writeByte(majorSimple<<5 | simpleUndefined)
}

// WriteSimple writes an arbitrary simple value. Values 24-31 are reserved
// and always rejected, per RFC 8949's disallowance of the two-byte
// extension form for values that fit in the one-byte form (and of 28-30
// entirely); values 20-23 must go through WriteBool/WriteNull/
// WriteUndefined instead, matching how the wire format itself forces
// those four values into the single-byte head.
func (s *Stream) WriteSimple(v uint8) error {
	if v >= 20 && v <= 31 {
		return ErrBadSimpleValue
	}
	if v < ai1Byte {
		return s.writeByte(majorSimple<<5 | v)
	}
	if err := s.writeByte(majorSimple<<5 | ai1Byte); err != nil {
		return err
	}
	return s.writeBytes([]byte{v})
}

// ReadBool reads a CBOR boolean.
func (s *Stream) ReadBool() (bool, error) {
	h, err := readHead(s)
	if err != nil {
		return false, err
	}
	if h.major != majorSimple {
		return false, ErrBadType
	}
	switch h.ai {
	case simpleTrue:
		return true, nil
	case simpleFalse:
		return false, nil
	default:
		return false, ErrBadType
	}
}

// ReadNull consumes a CBOR null literal, failing with ErrBadType if the
// next item isn't one.
func (s *Stream) ReadNull() error {
	h, err := readHead(s)
	if err != nil {
		return err
	}
	if h.major != majorSimple || h.ai != simpleNull {
		return ErrBadType
	}
	return nil
}

// ReadUndefined consumes a CBOR undefined literal, failing with
// ErrBadType if the next item isn't one.
func (s *Stream) ReadUndefined() error {
	h, err := readHead(s)
	if err != nil {
		return err
	}
	if h.major != majorSimple || h.ai != simpleUndefined {
		return ErrBadType
	}
	return nil
}

// ReadSimple reads a raw simple value. It rejects the reserved
// one-byte values 28-30 (already rejected by readHead as ErrInvalidAi)
// and every two-byte (extension-form) encoding of a value below 32
// (ErrBadSimpleValue) — 20-31 are not valid in the extension form, and
// 0-19 have a canonical one-byte form the extension form is redundant
// with, matching the encoder's refusal to emit them. The one-byte values
// 20-23 (false, true, null, undefined) are returned as-is.
func (s *Stream) ReadSimple() (uint8, error) {
	h, err := readHead(s)
	if err != nil {
		return 0, err
	}
	if h.major != majorSimple {
		return 0, ErrBadType
	}
	if h.ai == ai1Byte && h.arg < 32 {
		return 0, ErrBadSimpleValue
	}
	if h.ai > ai1Byte {
		return 0, ErrBadType
	}
	return uint8(h.arg), nil
}
