package cborio

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/UnitCircleInc/ucComm/framing"
	"github.com/stretchr/testify/suite"
)

type RecordTestSuite struct {
	suite.Suite
}

func TestRecordTestSuite(t *testing.T) {
	suite.Run(t, new(RecordTestSuite))
}

func (s *RecordTestSuite) TestRoundTrip() {
	var buf bytes.Buffer
	w := NewRecordWriter(&buf)
	s.Require().NoError(w.WriteRecord([]byte("hello")))
	s.Require().NoError(w.WriteRecord([]byte{}))
	s.Require().NoError(w.WriteRecord(bytes.Repeat([]byte{0x00, 0xAB}, 200)))

	r := NewRecordReader(&buf)
	got, err := r.ReadRecord()
	s.Require().NoError(err)
	s.Assert().Equal("hello", string(got))

	got, err = r.ReadRecord()
	s.Require().NoError(err)
	s.Assert().Empty(got)

	got, err = r.ReadRecord()
	s.Require().NoError(err)
	s.Assert().Equal(bytes.Repeat([]byte{0x00, 0xAB}, 200), got)
}

// writeCorruptRecord writes a validly-framed (COBS-correct) record whose
// CRC-32C trailer does not match its payload, to exercise the checksum
// check independent of the framing layer.
func writeCorruptRecord(w *bytes.Buffer, payload []byte) {
	raw := append(append([]byte{}, payload...), 0, 0, 0, 0)
	binary.BigEndian.PutUint32(raw[len(raw)-4:], framing.CRC32C(payload)^0xFFFFFFFF)
	encoded := make([]byte, framing.EncodedSize(len(raw)))
	n := framing.Encode(encoded, raw)
	w.Write(encoded[:n])
	w.WriteByte(0x00)
}

func (s *RecordTestSuite) TestCorruptionDetected() {
	var buf bytes.Buffer
	writeCorruptRecord(&buf, []byte("payload"))

	r := NewRecordReader(&buf)
	_, err := r.ReadRecord()
	s.Assert().ErrorIs(err, ErrChecksumMismatch)
}

func (s *RecordTestSuite) TestReadContinuesAfterChecksumFailure() {
	var buf bytes.Buffer
	writeCorruptRecord(&buf, []byte("first"))
	w := NewRecordWriter(&buf)
	s.Require().NoError(w.WriteRecord([]byte("second")))

	r := NewRecordReader(&buf)
	_, err := r.ReadRecord()
	s.Require().ErrorIs(err, ErrChecksumMismatch)

	got, err := r.ReadRecord()
	s.Require().NoError(err)
	s.Assert().Equal("second", string(got))
}

func (s *RecordTestSuite) TestMaxRecordSizeEnforced() {
	var buf bytes.Buffer
	w := NewRecordWriter(&buf)
	s.Require().NoError(w.WriteRecord(bytes.Repeat([]byte{1}, 100)))

	r := NewRecordReaderSize(bytes.NewReader(buf.Bytes()), 10)
	_, err := r.ReadRecord()
	s.Assert().Error(err)
}
