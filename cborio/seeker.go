package cborio

import "io"

// ForwardSeeker wraps an io.Reader, adding a forward-only Seek by reading
// and discarding, without requiring the underlying transport to be an
// io.Seeker itself. RecordReader does not use it: RecordReader.Resync
// realigns on the next 0x00 delimiter by reading byte-by-byte.
type ForwardSeeker struct {
	r      io.Reader
	offset int64
}

// NewForwardSeeker wraps r. If r already implements io.ReadSeeker, that
// is returned directly instead of adding a redundant wrapper.
func NewForwardSeeker(r io.Reader) io.ReadSeeker {
	if r == nil {
		panic("cborio: NewForwardSeeker called with a nil io.Reader")
	}
	if seeker, ok := r.(io.ReadSeeker); ok {
		return seeker
	}
	return &ForwardSeeker{r: r}
}

// Read implements io.Reader.
func (s *ForwardSeeker) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	s.offset += int64(n)
	return n, err
}

// Seek supports io.SeekCurrent and io.SeekStart for non-negative moves
// only; any attempt to move backward fails with
// ErrUnsupportedNegativeSeek since the underlying reader cannot rewind.
func (s *ForwardSeeker) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekCurrent:
		target = s.offset + offset
	case io.SeekStart:
		target = offset
	default:
		return s.offset, ErrInvalidWhence
	}

	skip := target - s.offset
	if skip < 0 {
		return s.offset, ErrUnsupportedNegativeSeek
	}
	if skip == 0 {
		return s.offset, nil
	}

	n, err := discard(s.r, skip)
	s.offset += n
	return s.offset, err
}

// discard reads and throws away exactly n bytes from r, using a pooled
// scratch chunk rather than allocating one per call.
func discard(r io.Reader, n int64) (int64, error) {
	bufPtr := getScanChunk()
	defer putScanChunk(bufPtr)
	buf := *bufPtr

	var total int64
	for total < n {
		want := n - total
		if want > int64(len(buf)) {
			want = int64(len(buf))
		}
		read, err := r.Read(buf[:want])
		total += int64(read)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
