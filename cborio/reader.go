package cborio

import (
	"encoding/binary"
	"io"

	"github.com/UnitCircleInc/ucComm/framing"
)

// DefaultMaxRecordSize bounds how many raw (still COBS-stuffed) bytes
// RecordReader will buffer while scanning for a single record's
// delimiter, before giving up with ErrRecordTooLarge. This guards against
// an adversarial or corrupt sender that never emits a zero byte.
const DefaultMaxRecordSize = 1 << 20

// RecordReader reads the frames RecordWriter produces: COBS-decodes each
// zero-delimited segment, verifies its trailing CRC-32C, and returns the
// payload with the checksum stripped.
type RecordReader struct {
	r         byteSource
	maxRecord int
	rawBuf    []byte
	decodeBuf []byte
}

// NewRecordReader wraps r for reading framed records, using
// DefaultMaxRecordSize as the per-record bound.
func NewRecordReader(r io.Reader) *RecordReader {
	return NewRecordReaderSize(r, DefaultMaxRecordSize)
}

// NewRecordReaderSize is NewRecordReader with an explicit maxRecord bound,
// enforced via a MaxRecordReader wrapped around r.
func NewRecordReaderSize(r io.Reader, maxRecord int) *RecordReader {
	return &RecordReader{r: asByteSource(LimitRecord(r, int64(maxRecord)+1)), maxRecord: maxRecord}
}

// ReadRecord reads one complete frame, validates it, and returns its
// payload (the CRC-32C trailer stripped off). The returned slice aliases
// the RecordReader's internal scratch buffer and is only valid until the
// next call to ReadRecord.
func (rr *RecordReader) ReadRecord() ([]byte, error) {
	rr.rawBuf = rr.rawBuf[:0]
	for {
		b, err := rr.r.ReadByte()
		if err != nil {
			return nil, err
		}
		if b == 0x00 {
			break
		}
		if len(rr.rawBuf) >= rr.maxRecord {
			return nil, ErrRecordTooLarge
		}
		rr.rawBuf = append(rr.rawBuf, b)
	}

	if cap(rr.decodeBuf) < len(rr.rawBuf) {
		rr.decodeBuf = make([]byte, len(rr.rawBuf))
	}
	decodeBuf := rr.decodeBuf[:len(rr.rawBuf)]
	n := framing.Decode(decodeBuf, rr.rawBuf)
	if n < 0 {
		return nil, ErrFraming
	}
	decoded := decodeBuf[:n]

	if len(decoded) < 4 {
		return nil, ErrShortRecord
	}
	payload := decoded[:len(decoded)-4]
	wantCrc := binary.BigEndian.Uint32(decoded[len(decoded)-4:])
	if framing.CRC32C(payload) != wantCrc {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}

// Resync discards bytes up to and including the next frame delimiter,
// without attempting to decode them. Callers use this to recover after
// ReadRecord returns ErrFraming, ErrChecksumMismatch, or ErrRecordTooLarge
// and want to continue reading subsequent records on the same stream.
func (rr *RecordReader) Resync() error {
	for {
		b, err := rr.r.ReadByte()
		if err != nil {
			return err
		}
		if b == 0x00 {
			return nil
		}
	}
}
