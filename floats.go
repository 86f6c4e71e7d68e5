package cbor

import "math"

// WriteFloat writes f using CBOR's canonical floating-point encoding: the
// shortest of half/single/double that represents f exactly, per RFC 8949
// section 4.2.2. NaN is always canonicalized to the quiet half-NaN
// (0xf97e00) regardless of the input NaN's payload or signaling bit.
func (s *Stream) WriteFloat(f float64) error {
	if math.IsNaN(f) {
		if err := s.writeByte(majorSimple<<5 | simpleFloat16); err != nil {
			return err
		}
		var buf [2]byte
		buf[0] = byte(canonicalHalfNaN >> 8)
		buf[1] = byte(canonicalHalfNaN)
		return s.writeBytes(buf[:])
	}
	if h, ok := float64ToHalfExact(f); ok {
		if err := s.writeByte(majorSimple<<5 | simpleFloat16); err != nil {
			return err
		}
		var buf [2]byte
		buf[0] = byte(h >> 8)
		buf[1] = byte(h)
		return s.writeBytes(buf[:])
	}
	f32 := float32(f)
	if float64(f32) == f {
		if err := s.writeByte(majorSimple<<5 | simpleFloat32); err != nil {
			return err
		}
		var buf [4]byte
		bits := math.Float32bits(f32)
		buf[0] = byte(bits >> 24)
		buf[1] = byte(bits >> 16)
		buf[2] = byte(bits >> 8)
		buf[3] = byte(bits)
		return s.writeBytes(buf[:])
	}
	return s.writeDouble(f)
}

// WriteFloat64Raw writes f as a full double-precision value (major type 7,
// ai 27) unconditionally, bypassing canonical demotion, for callers that
// want a fixed wire width instead of WriteFloat's shortest-exact behavior.
func (s *Stream) WriteFloat64Raw(f float64) error { return s.writeDouble(f) }

func (s *Stream) writeDouble(f float64) error {
	if err := s.writeByte(majorSimple<<5 | simpleFloat64); err != nil {
		return err
	}
	var buf [8]byte
	bits := math.Float64bits(f)
	for i := 0; i < 8; i++ {
		buf[i] = byte(bits >> (56 - 8*i))
	}
	return s.writeBytes(buf[:])
}

// ReadFloat reads a CBOR floating-point value of any width (half, single,
// or double) and widens it to float64. It fails with ErrBadType if the
// next item is not major type 7, and with ErrBadDouble if it is a major
// type 7 item other than a float (a simple value or boolean, say).
func (s *Stream) ReadFloat() (float64, error) {
	h, err := readHead(s)
	if err != nil {
		return 0, err
	}
	if h.major != majorSimple {
		return 0, ErrBadType
	}
	switch h.ai {
	case simpleFloat16:
		return float64(halfToFloat32(uint16(h.arg))), nil
	case simpleFloat32:
		return float64(math.Float32frombits(uint32(h.arg))), nil
	case simpleFloat64:
		return math.Float64frombits(h.arg), nil
	default:
		return 0, ErrBadDouble
	}
}
