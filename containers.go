package cbor

// DefaultRecursionLimit bounds how deeply Skip (and any other structural
// walk that doesn't know the schema ahead of time) will descend into
// nested arrays, maps, tags and indefinite-length strings.
const DefaultRecursionLimit = 16

// WriteArrayHead writes the head of a definite-length array of n items
// (major type 4). The caller must follow with exactly n item writes.
func (s *Stream) WriteArrayHead(n int) error {
	return writeHead(s, majorArray, uint64(n))
}

// WriteArrayHeadIndefinite starts an indefinite-length array. The caller
// must follow with any number of item writes and a matching CloseBreak.
func (s *Stream) WriteArrayHeadIndefinite() error {
	return writeHeadIndefinite(s, majorArray)
}

// WriteMapHead writes the head of a definite-length map of n key/value
// pairs (major type 5). The caller must follow with exactly n key writes
// interleaved with n value writes.
func (s *Stream) WriteMapHead(n int) error {
	return writeHead(s, majorMap, uint64(n))
}

// WriteMapHeadIndefinite starts an indefinite-length map.
func (s *Stream) WriteMapHeadIndefinite() error {
	return writeHeadIndefinite(s, majorMap)
}

// CloseBreak terminates an indefinite-length array, map, byte string, or
// text string previously opened with one of the *Indefinite writers.
func (s *Stream) CloseBreak() error { return writeBreak(s) }

// ArrayHeader describes a decoded array head: either a definite Len or an
// indefinite-length array, which the caller must consume item-by-item
// until ReadBreak reports true.
type ArrayHeader struct {
	Len        int
	Indefinite bool
}

// ReadArrayHead reads an array head (major type 4).
func (s *Stream) ReadArrayHead() (ArrayHeader, error) {
	h, err := readHead(s)
	if err != nil {
		return ArrayHeader{}, err
	}
	if h.major != majorArray {
		return ArrayHeader{}, ErrBadType
	}
	if h.ai == aiIndefinite {
		return ArrayHeader{Indefinite: true}, nil
	}
	n := int(h.arg)
	if uint64(n) != h.arg {
		return ArrayHeader{}, ErrItemTooLong
	}
	return ArrayHeader{Len: n}, nil
}

// ReadMapHead reads a map head (major type 5). For a definite-length map,
// Len is the number of key/value PAIRS (not the raw CBOR array length).
func (s *Stream) ReadMapHead() (ArrayHeader, error) {
	h, err := readHead(s)
	if err != nil {
		return ArrayHeader{}, err
	}
	if h.major != majorMap {
		return ArrayHeader{}, ErrBadType
	}
	if h.ai == aiIndefinite {
		return ArrayHeader{Indefinite: true}, nil
	}
	n := int(h.arg)
	if uint64(n) != h.arg {
		return ArrayHeader{}, ErrItemTooLong
	}
	return ArrayHeader{Len: n}, nil
}

// ReadBreak consumes a break marker if present and reports whether it
// found one. Used to terminate the per-item loop when reading the body
// of an indefinite-length array or map.
func (s *Stream) ReadBreak() (bool, error) {
	return peekBreak(s)
}

// Skip consumes and discards one complete CBOR data item, including all
// of its nested contents, without allocating: string bodies (including
// every chunk of an indefinite-length string) are stepped over, not
// copied. depth bounds
// nested container/tag descent; callers doing a single top-level skip
// should pass DefaultRecursionLimit.
func (s *Stream) Skip(depth int) error {
	if depth <= 0 {
		return ErrRecursion
	}
	h, err := readHead(s)
	if err != nil {
		return err
	}
	switch h.major {
	case majorUint, majorNegInt:
		return nil
	case majorBytes, majorText:
		if h.ai != aiIndefinite {
			n := int(h.arg)
			return s.advance(n)
		}
		for {
			done, err := peekBreak(s)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			ch, err := readHead(s)
			if err != nil {
				return err
			}
			if ch.major != h.major {
				return ErrIndefMismatch
			}
			if ch.ai == aiIndefinite {
				return ErrIndefNesting
			}
			if err := s.advance(int(ch.arg)); err != nil {
				return err
			}
		}
	case majorArray:
		if h.ai != aiIndefinite {
			for i := uint64(0); i < h.arg; i++ {
				if err := s.Skip(depth - 1); err != nil {
					return err
				}
			}
			return nil
		}
		for {
			done, err := peekBreak(s)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			if err := s.Skip(depth - 1); err != nil {
				return err
			}
		}
	case majorMap:
		if h.ai != aiIndefinite {
			for i := uint64(0); i < h.arg*2; i++ {
				if err := s.Skip(depth - 1); err != nil {
					return err
				}
			}
			return nil
		}
		for {
			done, err := peekBreak(s)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			if err := s.Skip(depth - 1); err != nil {
				return err
			}
			if err := s.Skip(depth - 1); err != nil {
				return err
			}
		}
	case majorTag:
		return s.Skip(depth - 1)
	case majorSimple:
		switch h.ai {
		case simpleFloat16, simpleFloat32, simpleFloat64:
			return nil
		default:
			return nil
		}
	default:
		return ErrBadType
	}
}
