package cbor

import "unicode/utf8"

// WriteBytes writes p as a definite-length CBOR byte string (major type 2).
func (s *Stream) WriteBytes(p []byte) error {
	if err := writeHead(s, majorBytes, uint64(len(p))); err != nil {
		return err
	}
	return s.writeBytes(p)
}

// WriteText writes str as a definite-length CBOR text string (major type
// 3). A Go string is not guaranteed to hold valid UTF-8 (it is just a byte
// sequence), so this validates strictly before writing anything and fails
// with ErrInvalidUtf8 on surrogates, overlongs, or other malformed content.
func (s *Stream) WriteText(str string) error {
	if !utf8.ValidString(str) {
		return ErrInvalidUtf8
	}
	if err := writeHead(s, majorText, uint64(len(str))); err != nil {
		return err
	}
	return s.writeBytes([]byte(str))
}

// ReadBytes reads a definite-length CBOR byte string and returns a
// slice aliasing its body. Indefinite-length byte strings must be
// read with ReadBytesIndefinite.
func (s *Stream) ReadBytes() ([]byte, error) {
	h, err := readHead(s)
	if err != nil {
		return nil, err
	}
	if h.major != majorBytes {
		return nil, ErrBadType
	}
	if h.ai == aiIndefinite {
		return nil, ErrIndefMismatch
	}
	n := int(h.arg)
	if uint64(n) != h.arg {
		return nil, ErrItemTooLong
	}
	body, err := s.peek(n)
	if err != nil {
		return nil, err
	}
	_ = s.advance(n)
	return body, nil
}

// ReadText reads a definite-length CBOR text string, validates it as
// UTF-8, and returns it. Indefinite-length text strings must be read with
// ReadTextIndefinite.
func (s *Stream) ReadText() (string, error) {
	h, err := readHead(s)
	if err != nil {
		return "", err
	}
	if h.major != majorText {
		return "", ErrBadType
	}
	if h.ai == aiIndefinite {
		return "", ErrIndefMismatch
	}
	n := int(h.arg)
	if uint64(n) != h.arg {
		return "", ErrItemTooLong
	}
	body, err := s.peek(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(body) {
		return "", ErrInvalidUtf8
	}
	_ = s.advance(n)
	return string(body), nil
}

// ReadBytesIndefinite reads an indefinite-length byte string (a sequence
// of definite-length byte-string chunks terminated by a break) into dst,
// appending as it goes, and returns the accumulated slice. dst may be nil
// or reused storage; growth beyond its capacity falls back to append's
// usual reallocation, same as any other Go byte-accumulation loop - the
// strict no-allocation guarantee applies to the definite-length path,
// where the caller controls the destination exactly.
//
// Per RFC 8949 section 3.2.3, a chunk of an indefinite byte string must
// itself be a definite-length byte string; nesting another indefinite
// chunk is ErrIndefNesting, and a chunk of the wrong major type is
// ErrIndefMismatch.
func (s *Stream) ReadBytesIndefinite(dst []byte) ([]byte, error) {
	h, err := readHead(s)
	if err != nil {
		return nil, err
	}
	if h.major != majorBytes || h.ai != aiIndefinite {
		return nil, ErrBadType
	}
	for {
		done, err := peekBreak(s)
		if err != nil {
			return nil, err
		}
		if done {
			return dst, nil
		}
		ch, err := readHead(s)
		if err != nil {
			return nil, err
		}
		if ch.major != majorBytes {
			return nil, ErrIndefMismatch
		}
		if ch.ai == aiIndefinite {
			return nil, ErrIndefNesting
		}
		n := int(ch.arg)
		body, err := s.peek(n)
		if err != nil {
			return nil, err
		}
		_ = s.advance(n)
		dst = append(dst, body...)
	}
}

// ReadTextIndefinite reads an indefinite-length text string, validating
// UTF-8 across the whole reassembled value (a multi-byte rune may
// straddle a chunk boundary, so chunks cannot be validated individually).
func (s *Stream) ReadTextIndefinite(dst []byte) (string, error) {
	h, err := readHead(s)
	if err != nil {
		return "", err
	}
	if h.major != majorText || h.ai != aiIndefinite {
		return "", ErrBadType
	}
	for {
		done, err := peekBreak(s)
		if err != nil {
			return "", err
		}
		if done {
			break
		}
		ch, err := readHead(s)
		if err != nil {
			return "", err
		}
		if ch.major != majorText {
			return "", ErrIndefMismatch
		}
		if ch.ai == aiIndefinite {
			return "", ErrIndefNesting
		}
		n := int(ch.arg)
		body, err := s.peek(n)
		if err != nil {
			return "", err
		}
		_ = s.advance(n)
		dst = append(dst, body...)
	}
	if !utf8.Valid(dst) {
		return "", ErrInvalidUtf8
	}
	return string(dst), nil
}

// WriteBytesIndefinite starts an indefinite-length byte string; each call
// to chunk writes one definite-length chunk, and the returned closer
// writes the terminating break.
func (s *Stream) WriteBytesIndefinite() (chunk func([]byte) error, closeFn func() error) {
	started := false
	var startErr error
	start := func() {
		if !started {
			started = true
			startErr = writeHeadIndefinite(s, majorBytes)
		}
	}
	chunk = func(p []byte) error {
		start()
		if startErr != nil {
			return startErr
		}
		return s.WriteBytes(p)
	}
	closeFn = func() error {
		start()
		if startErr != nil {
			return startErr
		}
		return writeBreak(s)
	}
	return chunk, closeFn
}

// WriteTextIndefinite is the text-string analogue of WriteBytesIndefinite.
func (s *Stream) WriteTextIndefinite() (chunk func(string) error, closeFn func() error) {
	started := false
	var startErr error
	start := func() {
		if !started {
			started = true
			startErr = writeHeadIndefinite(s, majorText)
		}
	}
	chunk = func(str string) error {
		start()
		if startErr != nil {
			return startErr
		}
		return s.WriteText(str)
	}
	closeFn = func() error {
		start()
		if startErr != nil {
			return startErr
		}
		return writeBreak(s)
	}
	return chunk, closeFn
}
