package cbor

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/suite"
)

type StringTestSuite struct {
	suite.Suite
}

func TestStringTestSuite(t *testing.T) {
	suite.Run(t, new(StringTestSuite))
}

func (s *StringTestSuite) TestDefiniteTextRoundTrip() {
	buf := make([]byte, 32)
	w := NewWriter(buf)
	s.Require().NoError(w.WriteText("abcdef"))
	w.Rewind()
	got, err := w.ReadText()
	s.Require().NoError(err)
	s.Assert().Equal("abcdef", got)
}

func (s *StringTestSuite) TestDefiniteBytesRoundTrip() {
	buf := make([]byte, 32)
	w := NewWriter(buf)
	data := []byte{1, 2, 3, 4, 5}
	s.Require().NoError(w.WriteBytes(data))
	w.Rewind()
	got, err := w.ReadBytes()
	s.Require().NoError(err)
	s.Assert().Equal(data, got)
}

// "7F6461626364626566ff" decodes to text "abcdef" via chunks "abcd"/"ef";
// canonical re-encoding yields "66616263646566".
func (s *StringTestSuite) TestIndefiniteTextDecodesAndCanonicalizes() {
	b, err := hex.DecodeString("7F6461626364626566ff")
	s.Require().NoError(err)
	r := NewReader(b)
	got, err := r.ReadTextIndefinite(nil)
	s.Require().NoError(err)
	s.Assert().Equal("abcdef", got)

	buf := make([]byte, 16)
	w := NewWriter(buf)
	s.Require().NoError(w.WriteText(got))
	s.Assert().Equal("66616263646566", hex.EncodeToString(w.Bytes()))
}

func (s *StringTestSuite) TestIndefiniteMismatchRejected() {
	buf := make([]byte, 32)
	w := NewWriter(buf)
	s.Require().NoError(writeHeadIndefinite(w, majorText))
	s.Require().NoError(w.WriteBytes([]byte{1, 2, 3}))
	s.Require().NoError(writeBreak(w))
	w.Rewind()
	_, err := w.ReadTextIndefinite(nil)
	s.Assert().ErrorIs(err, ErrIndefMismatch)
}

func (s *StringTestSuite) TestInvalidUtf8Rejected() {
	buf := make([]byte, 32)
	w := NewWriter(buf)
	s.Require().NoError(writeHead(w, majorText, 1))
	s.Require().NoError(w.writeByte(0xFF))
	w.Rewind()
	_, err := w.ReadText()
	s.Assert().ErrorIs(err, ErrInvalidUtf8)
}

func (s *StringTestSuite) TestWriteTextRejectsInvalidUtf8() {
	buf := make([]byte, 32)
	w := NewWriter(buf)
	err := w.WriteText(string([]byte{0xFF}))
	s.Assert().ErrorIs(err, ErrInvalidUtf8)
	s.Assert().Zero(w.Len(), "a rejected write must not advance the stream")
}

func (s *StringTestSuite) TestIndefiniteChunkWriter() {
	buf := make([]byte, 32)
	w := NewWriter(buf)
	chunk, closeFn := w.WriteTextIndefinite()
	s.Require().NoError(chunk("ab"))
	s.Require().NoError(chunk("cd"))
	s.Require().NoError(closeFn())

	w.Rewind()
	got, err := w.ReadTextIndefinite(nil)
	s.Require().NoError(err)
	s.Assert().Equal("abcd", got)
}
