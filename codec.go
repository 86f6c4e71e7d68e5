package cbor

// codec.go defines the interfaces a type implements to plug into the
// generic Marshal/Unmarshal helpers below, and a generic array helper for
// homogeneous CBOR arrays. These mirror the Sizer/Marshaler/Unmarshaler/
// Codec split of the teacher codec this package grew out of, adapted from
// an io.Writer/io.Reader pair to the allocation-free *Stream this package
// is built around.

// Sizer reports the number of bytes an item will occupy once encoded,
// letting a caller size a buffer before calling MarshalCBOR.
type Sizer interface {
	SizeCBOR() int
}

// Marshaler encodes a value onto a Stream that the caller has already
// sized (typically via Sizer.SizeCBOR).
type Marshaler interface {
	MarshalCBOR(s *Stream) error
}

// Unmarshaler decodes a value from a Stream positioned at the start of
// its encoding.
type Unmarshaler interface {
	UnmarshalCBOR(s *Stream) error
}

// Codec is the full read/write contract: a type that knows its own
// encoded size and can both marshal and unmarshal itself.
type Codec interface {
	Sizer
	Marshaler
	Unmarshaler
}

// Marshal encodes v into a freshly allocated buffer sized via v.SizeCBOR.
// This convenience wrapper allocates on the caller's behalf; MarshalCBOR
// itself writes into whatever Stream it is given.
func Marshal(v Codec) ([]byte, error) {
	buf := make([]byte, v.SizeCBOR())
	s := NewWriter(buf)
	if err := v.MarshalCBOR(s); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// Unmarshal decodes buf into v.
func Unmarshal(v Unmarshaler, buf []byte) error {
	s := NewReader(buf)
	return v.UnmarshalCBOR(s)
}

// Array is a generic helper for a homogeneous CBOR array of Codec
// elements, adapted from the teacher's alignment-padded List type:
// CBOR arrays carry no alignment or padding, so the only remaining
// concern is the definite-length array head plus one item write/read per
// element.
type Array[T Codec] struct {
	Items []T
}

// NewArray wraps items as an Array for encoding.
func NewArray[T Codec](items []T) *Array[T] {
	return &Array[T]{Items: items}
}

// SizeCBOR implements Sizer.
func (a *Array[T]) SizeCBOR() int {
	n := headSize(uint64(len(a.Items)))
	for _, item := range a.Items {
		n += item.SizeCBOR()
	}
	return n
}

// MarshalCBOR implements Marshaler.
func (a *Array[T]) MarshalCBOR(s *Stream) error {
	if err := s.WriteArrayHead(len(a.Items)); err != nil {
		return err
	}
	for _, item := range a.Items {
		if err := item.MarshalCBOR(s); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalCBOR implements Unmarshaler. It allocates one zero-valued T per
// decoded element as the destination slice; T must be a pointer type (or
// otherwise usable as a zero value) for UnmarshalCBOR to have anywhere to
// write into.
func (a *Array[T]) UnmarshalCBOR(s *Stream) error {
	hdr, err := s.ReadArrayHead()
	if err != nil {
		return err
	}
	if hdr.Indefinite {
		items := make([]T, 0)
		for {
			done, err := s.ReadBreak()
			if err != nil {
				return err
			}
			if done {
				break
			}
			var item T
			if err := item.UnmarshalCBOR(s); err != nil {
				return err
			}
			items = append(items, item)
		}
		a.Items = items
		return nil
	}
	items := make([]T, hdr.Len)
	for i := range items {
		if err := items[i].UnmarshalCBOR(s); err != nil {
			return err
		}
	}
	a.Items = items
	return nil
}

// headSize returns the number of bytes writeHead would emit for arg,
// without actually writing anything; Sizer implementations use it to
// account for their own head byte(s).
func headSize(arg uint64) int {
	switch {
	case arg < ai1Byte:
		return 1
	case arg <= 0xFF:
		return 2
	case arg <= 0xFFFF:
		return 3
	case arg <= 0xFFFFFFFF:
		return 5
	default:
		return 9
	}
}
