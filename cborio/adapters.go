package cborio

import (
	"bufio"
	"bytes"
	"io"
)

// byteSource is what RecordReader actually needs: the ability to pull one
// byte at a time cheaply while scanning for the COBS frame delimiter.
// *bufio.Reader, *bytes.Reader and *bytes.Buffer all already implement
// io.ByteReader natively; asByteSource's only job is wrapping the
// remaining, unbuffered io.Reader case, the same adapter-unification role
// the teacher codec's bytesReaderAdapter/bufioReaderAdapter/
// bytesBufferReaderAdapter trio played for its Reader/Writer split.
type byteSource interface {
	io.Reader
	io.ByteReader
}

// asByteSource returns r unchanged if it already satisfies byteSource, or
// wraps it in a bufio.Reader otherwise so repeated single-byte reads
// don't turn into one syscall each.
func asByteSource(r io.Reader) byteSource {
	switch v := r.(type) {
	case byteSource:
		return v
	case *bufio.Reader:
		return v
	case *bytes.Reader:
		return v
	case *bytes.Buffer:
		return v
	default:
		return bufio.NewReader(r)
	}
}
