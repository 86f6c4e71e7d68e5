package cborio

import (
	"encoding/binary"
	"io"

	"github.com/UnitCircleInc/ucComm/framing"
)

// RecordWriter writes zero-delimited CBOR records onto an underlying
// io.Writer: each record is [payload || crc32c(payload)], COBS-stuffed so
// the encoding never contains a zero byte, followed by the 0x00 frame
// delimiter. A reader on the other end can therefore resynchronize after
// any corruption by scanning forward to the next zero byte, recovering
// the self-delimiting behavior the oy3o codec's bufio.Writer-backed
// Writer got for free from a length-prefixed transport; COBS buys the
// same property over a transport that doesn't guarantee message
// boundaries (a raw byte pipe, a serial line) at the cost of one control
// byte per up-to-254 payload bytes.
type RecordWriter struct {
	w   io.Writer
	err error
}

// NewRecordWriter wraps w for writing framed records.
func NewRecordWriter(w io.Writer) *RecordWriter {
	return &RecordWriter{w: w}
}

// Err returns the first error encountered by WriteRecord, matching the
// sticky-error convention of the teacher codec's Writer.Err.
func (rw *RecordWriter) Err() error { return rw.err }

// WriteRecord frames payload and writes it to the underlying writer. Once
// WriteRecord has returned an error, the RecordWriter is stuck: all
// further calls return the same error without writing anything, exactly
// as the teacher codec's Writer.setError/Err pairing behaves.
func (rw *RecordWriter) WriteRecord(payload []byte) error {
	if rw.err != nil {
		return rw.err
	}

	buf := getRecordBuf()
	defer putRecordBuf(buf)

	buf.Write(payload)
	var crc [4]byte
	binary.BigEndian.PutUint32(crc[:], framing.CRC32C(payload))
	buf.Write(crc[:])

	raw := buf.Bytes()
	encoded := make([]byte, framing.EncodedSize(len(raw)))
	n := framing.Encode(encoded, raw)
	encoded = encoded[:n]

	if _, err := rw.w.Write(encoded); err != nil {
		rw.err = err
		return err
	}
	if _, err := rw.w.Write([]byte{0x00}); err != nil {
		rw.err = err
		return err
	}
	return nil
}
