package cbor

import (
	"time"
)

// WriteTag writes a tag head (major type 6) for the given tag number. The
// caller must follow with exactly one write for the tagged value.
func (s *Stream) WriteTag(tag uint64) error {
	return writeHead(s, majorTag, tag)
}

// ReadTag reads a tag head and returns the tag number. The caller is then
// responsible for reading exactly one tagged value.
func (s *Stream) ReadTag() (uint64, error) {
	h, err := readHead(s)
	if err != nil {
		return 0, err
	}
	if h.major != majorTag {
		return 0, ErrBadType
	}
	return h.arg, nil
}

// WriteSelfDescribe writes the self-describing CBOR tag (55799), which
// identifies a byte stream as CBOR to a sniffing reader without otherwise
// altering its meaning.
func (s *Stream) WriteSelfDescribe() error { return s.WriteTag(tagSelfDescribe) }

// WriteDatetimeText writes t as tag 0 (RFC 3339 text date-time).
func (s *Stream) WriteDatetimeText(t time.Time) error {
	if err := s.WriteTag(tagDatetimeText); err != nil {
		return err
	}
	return s.WriteText(t.UTC().Format(time.RFC3339Nano))
}

// WriteDatetimeNum writes t as tag 1 (epoch-based numeric date-time). A
// time with a non-zero fractional second is written as a float through
// WriteFloat (so in the shortest of half/single/double that holds the
// seconds value exactly); otherwise it is written as the minimal integer
// encoding.
func (s *Stream) WriteDatetimeNum(t time.Time) error {
	if err := s.WriteTag(tagDatetimeNum); err != nil {
		return err
	}
	nanos := t.UnixNano()
	if nanos%int64(time.Second) == 0 {
		return s.WriteInt(nanos / int64(time.Second))
	}
	sec := float64(nanos) / float64(time.Second)
	return s.WriteFloat(sec)
}

// ReadDatetime reads either tag-0 or tag-1 date-time encodings and returns
// the decoded time. It fails with ErrBadDatetime if the tag number isn't
// 0 or 1, or the tagged value's type doesn't match what that tag requires.
func (s *Stream) ReadDatetime() (time.Time, error) {
	tag, err := s.ReadTag()
	if err != nil {
		return time.Time{}, err
	}
	switch tag {
	case tagDatetimeText:
		str, err := s.ReadText()
		if err != nil {
			return time.Time{}, ErrBadDatetime
		}
		t, err := time.Parse(time.RFC3339Nano, str)
		if err != nil {
			return time.Time{}, ErrBadDatetime
		}
		return t, nil
	case tagDatetimeNum:
		major, err := s.PeekMajor()
		if err != nil {
			return time.Time{}, err
		}
		switch major {
		case majorUint, majorNegInt:
			v, err := s.ReadInt()
			if err != nil {
				return time.Time{}, ErrBadDatetime
			}
			return time.Unix(v, 0).UTC(), nil
		case majorSimple:
			f, err := s.ReadFloat()
			if err != nil {
				return time.Time{}, ErrBadDatetime
			}
			sec := int64(f)
			nsec := int64((f - float64(sec)) * float64(time.Second))
			return time.Unix(sec, nsec).UTC(), nil
		default:
			return time.Time{}, ErrBadDatetime
		}
	default:
		return time.Time{}, ErrBadDatetime
	}
}

// WriteEncodedCbor writes p, an already-encoded CBOR item, wrapped in tag
// 24 (encoded-cbor-data-item), as a byte string.
func (s *Stream) WriteEncodedCbor(p []byte) error {
	if err := s.WriteTag(tagEncodedCbor); err != nil {
		return err
	}
	return s.WriteBytes(p)
}

// ReadEncodedCbor reads a tag-24 wrapped item and returns the raw encoded
// bytes (still encoded; the caller decodes them with a fresh Stream).
func (s *Stream) ReadEncodedCbor() ([]byte, error) {
	tag, err := s.ReadTag()
	if err != nil {
		return nil, err
	}
	if tag != tagEncodedCbor {
		return nil, ErrBadEncoded
	}
	return s.ReadBytes()
}

// WriteDecimalFraction writes tag 4: a two-element array [exponent,
// mantissa] representing mantissa * 10^exponent.
func (s *Stream) WriteDecimalFraction(exponent, mantissa int64) error {
	if err := s.WriteTag(tagDecimal); err != nil {
		return err
	}
	if err := s.WriteArrayHead(2); err != nil {
		return err
	}
	if err := s.WriteInt(exponent); err != nil {
		return err
	}
	return s.WriteInt(mantissa)
}

// ReadDecimalFraction reads tag 4 and returns (exponent, mantissa).
func (s *Stream) ReadDecimalFraction() (exponent, mantissa int64, err error) {
	tag, err := s.ReadTag()
	if err != nil {
		return 0, 0, err
	}
	if tag != tagDecimal {
		return 0, 0, ErrBadDecimal
	}
	arr, err := s.ReadArrayHead()
	if err != nil || arr.Indefinite || arr.Len != 2 {
		return 0, 0, ErrBadDecimal
	}
	exponent, err = s.ReadInt()
	if err != nil {
		return 0, 0, ErrBadDecimal
	}
	mantissa, err = s.ReadInt()
	if err != nil {
		return 0, 0, ErrBadDecimal
	}
	return exponent, mantissa, nil
}

// WriteRational writes tag 30: a two-element array [numerator (signed),
// denominator (unsigned)]. The denominator is always
// non-negative, so it is written as a CBOR unsigned integer (major type 0)
// rather than through the signed WriteInt path.
func (s *Stream) WriteRational(numerator int64, denominator uint64) error {
	if err := s.WriteTag(tagRational); err != nil {
		return err
	}
	if err := s.WriteArrayHead(2); err != nil {
		return err
	}
	if err := s.WriteInt(numerator); err != nil {
		return err
	}
	return s.WriteUint(denominator)
}

// ReadRational reads tag 30 and returns (numerator, denominator). The
// denominator must be encoded as a CBOR unsigned integer (major type 0);
// a major-1 (negative) denominator is out of tag 30's domain and fails
// with ErrBadRational rather than being silently accepted.
func (s *Stream) ReadRational() (numerator int64, denominator uint64, err error) {
	tag, err := s.ReadTag()
	if err != nil {
		return 0, 0, err
	}
	if tag != tagRational {
		return 0, 0, ErrBadRational
	}
	arr, err := s.ReadArrayHead()
	if err != nil || arr.Indefinite || arr.Len != 2 {
		return 0, 0, ErrBadRational
	}
	numerator, err = s.ReadInt()
	if err != nil {
		return 0, 0, ErrBadRational
	}
	denominator, err = s.ReadUint()
	if err != nil {
		return 0, 0, ErrBadRational
	}
	return numerator, denominator, nil
}
