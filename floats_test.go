package cbor

import (
	"encoding/hex"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type FloatTestSuite struct {
	suite.Suite
}

func TestFloatTestSuite(t *testing.T) {
	suite.Run(t, new(FloatTestSuite))
}

// "F97C00" decodes to +Inf; re-encoding +Inf canonicalizes to F97C00.
func (s *FloatTestSuite) TestPositiveInfinityCanonical() {
	b, err := hex.DecodeString("F97C00")
	s.Require().NoError(err)
	r := NewReader(b)
	v, err := r.ReadFloat()
	s.Require().NoError(err)
	s.Assert().True(math.IsInf(v, 1))

	buf := make([]byte, 16)
	w := NewWriter(buf)
	s.Require().NoError(w.WriteFloat(math.Inf(1)))
	s.Assert().Equal("f97c00", hex.EncodeToString(w.Bytes()))
}

func (s *FloatTestSuite) TestNaNCanonical() {
	buf := make([]byte, 16)
	w := NewWriter(buf)
	s.Require().NoError(w.WriteFloat(math.NaN()))
	s.Assert().Equal("f97e00", hex.EncodeToString(w.Bytes()))

	w.Rewind()
	v, err := w.ReadFloat()
	s.Require().NoError(err)
	s.Assert().True(math.IsNaN(v))
}

func (s *FloatTestSuite) TestCanonicalWidthDemotion() {
	cases := []struct {
		v        float64
		wantLen  int
	}{
		{0, 3},     // half
		{1, 3},     // half
		{1.5, 3},   // half
		{100000, 5}, // not exact half -> single (100000 exceeds half range)
	}
	for _, c := range cases {
		buf := make([]byte, 16)
		w := NewWriter(buf)
		s.Require().NoError(w.WriteFloat(c.v))
		s.Assert().Equal(c.wantLen, w.Len(), "value %v", c.v)

		w.Rewind()
		got, err := w.ReadFloat()
		s.Require().NoError(err)
		s.Assert().Equal(c.v, got)
	}
}

func (s *FloatTestSuite) TestDoubleFallback() {
	v := math.Pi
	buf := make([]byte, 16)
	w := NewWriter(buf)
	s.Require().NoError(w.WriteFloat(v))
	s.Assert().Equal(9, w.Len())

	w.Rewind()
	got, err := w.ReadFloat()
	s.Require().NoError(err)
	s.Assert().Equal(v, got)
}

func (s *FloatTestSuite) TestWriteFloat64RawAlwaysDouble() {
	buf := make([]byte, 16)
	w := NewWriter(buf)
	s.Require().NoError(w.WriteFloat64Raw(1))
	s.Assert().Equal(9, w.Len())
}

func (s *FloatTestSuite) TestHalfRoundTripSubnormal() {
	// smallest positive half subnormal: 2^-24
	v := math.Ldexp(1, -24)
	h, ok := float64ToHalfExact(v)
	s.Require().True(ok)
	back := float64(halfToFloat32(h))
	s.Assert().Equal(v, back)
}
