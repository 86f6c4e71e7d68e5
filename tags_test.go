package cbor

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type TagTestSuite struct {
	suite.Suite
}

func TestTagTestSuite(t *testing.T) {
	suite.Run(t, new(TagTestSuite))
}

// "D903E64474686973" (tag 998 wrapping bytes "this") round-trips with the
// tag preserved.
func (s *TagTestSuite) TestArbitraryTagRoundTrips() {
	b, err := hex.DecodeString("D903E64474686973")
	s.Require().NoError(err)
	r := NewReader(b)
	tag, err := r.ReadTag()
	s.Require().NoError(err)
	s.Assert().EqualValues(998, tag)
	body, err := r.ReadBytes()
	s.Require().NoError(err)
	s.Assert().Equal("this", string(body))

	buf := make([]byte, 16)
	w := NewWriter(buf)
	s.Require().NoError(w.WriteTag(998))
	s.Require().NoError(w.WriteBytes([]byte("this")))
	s.Assert().Equal("d903e64474686973", hex.EncodeToString(w.Bytes()))
}

func (s *TagTestSuite) TestDatetimeTextRoundTrip() {
	t := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	buf := make([]byte, 64)
	w := NewWriter(buf)
	s.Require().NoError(w.WriteDatetimeText(t))
	w.Rewind()
	got, err := w.ReadDatetime()
	s.Require().NoError(err)
	s.Assert().True(t.Equal(got))
}

func (s *TagTestSuite) TestDatetimeNumRoundTrip() {
	t := time.Unix(1700000000, 0).UTC()
	buf := make([]byte, 32)
	w := NewWriter(buf)
	s.Require().NoError(w.WriteDatetimeNum(t))
	w.Rewind()
	got, err := w.ReadDatetime()
	s.Require().NoError(err)
	s.Assert().True(t.Equal(got))
}

func (s *TagTestSuite) TestDecimalFractionRoundTrip() {
	buf := make([]byte, 16)
	w := NewWriter(buf)
	s.Require().NoError(w.WriteDecimalFraction(-2, 27315))
	w.Rewind()
	exp, mant, err := w.ReadDecimalFraction()
	s.Require().NoError(err)
	s.Assert().EqualValues(-2, exp)
	s.Assert().EqualValues(27315, mant)
}

func (s *TagTestSuite) TestRationalRoundTrip() {
	buf := make([]byte, 16)
	w := NewWriter(buf)
	s.Require().NoError(w.WriteRational(1, 3))
	w.Rewind()
	num, den, err := w.ReadRational()
	s.Require().NoError(err)
	s.Assert().EqualValues(1, num)
	s.Assert().EqualValues(3, den)
}

// "DF" is major 6 (tag) with ai=31 (indefinite), which tags may never carry.
func (s *TagTestSuite) TestIndefiniteAiRejectedOnTag() {
	b, err := hex.DecodeString("DF")
	s.Require().NoError(err)
	r := NewReader(b)
	_, err = r.ReadTag()
	s.Assert().ErrorIs(err, ErrInvalidAi)
}

func (s *TagTestSuite) TestRationalRejectsNegativeDenominator() {
	// Hand-craft tag 30 -> [1, -3] (denominator written as major type 1)
	// rather than going through WriteRational, which cannot produce this.
	buf := make([]byte, 16)
	w := NewWriter(buf)
	s.Require().NoError(w.WriteTag(30))
	s.Require().NoError(w.WriteArrayHead(2))
	s.Require().NoError(w.WriteInt(1))
	s.Require().NoError(w.WriteInt(-3))
	w.Rewind()
	_, _, err := w.ReadRational()
	s.Assert().ErrorIs(err, ErrBadRational)
}

func (s *TagTestSuite) TestEncodedCborRoundTrip() {
	inner := make([]byte, 8)
	iw := NewWriter(inner)
	s.Require().NoError(iw.WriteInt(42))

	buf := make([]byte, 16)
	w := NewWriter(buf)
	s.Require().NoError(w.WriteEncodedCbor(iw.Bytes()))
	w.Rewind()
	got, err := w.ReadEncodedCbor()
	s.Require().NoError(err)
	innerR := NewReader(got)
	v, err := innerR.ReadInt()
	s.Require().NoError(err)
	s.Assert().EqualValues(42, v)
}
