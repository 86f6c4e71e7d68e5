package framing

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CobsTestSuite struct {
	suite.Suite
}

func TestCobsTestSuite(t *testing.T) {
	suite.Run(t, new(CobsTestSuite))
}

// [00 11 00 22] <-> [01 02 11 02 22]
func (s *CobsTestSuite) TestVectorOne() {
	in := []byte{0x00, 0x11, 0x00, 0x22}
	out := make([]byte, EncodedSize(len(in)))
	n := Encode(out, in)
	s.Assert().Equal([]byte{0x01, 0x02, 0x11, 0x02, 0x22}, out[:n])

	back := make([]byte, len(in))
	m := Decode(back, out[:n])
	s.Require().GreaterOrEqual(m, 0)
	s.Assert().Equal(in, back[:m])
}

// [11 22 00] <-> [03 11 22 01]
func (s *CobsTestSuite) TestVectorTwo() {
	in := []byte{0x11, 0x22, 0x00}
	out := make([]byte, EncodedSize(len(in)))
	n := Encode(out, in)
	s.Assert().Equal([]byte{0x03, 0x11, 0x22, 0x01}, out[:n])

	back := make([]byte, len(in))
	m := Decode(back, out[:n])
	s.Require().GreaterOrEqual(m, 0)
	s.Assert().Equal(in, back[:m])
}

func (s *CobsTestSuite) TestRoundTripArbitrary() {
	cases := [][]byte{
		{0x00},
		{0x00, 0x00, 0x00},
		make([]byte, 300),
		make([]byte, 254),
		make([]byte, 255),
	}
	for i := range cases[3] {
		cases[3][i] = byte(i % 7)
	}
	for _, in := range cases {
		out := make([]byte, EncodedSize(len(in)))
		n := Encode(out, in)
		encoded := out[:n]
		for _, b := range encoded {
			s.Require().NotEqual(byte(0x00), b)
		}
		back := make([]byte, len(in)+1)
		m := Decode(back, encoded)
		s.Require().GreaterOrEqual(m, 0)
		s.Assert().Equal(in, back[:m])
	}
}

func (s *CobsTestSuite) TestDecodeRejectsEmbeddedZero() {
	back := make([]byte, 4)
	n := Decode(back, []byte{0x02, 0x11, 0x00, 0x22})
	s.Assert().Equal(-1, n)
}

func (s *CobsTestSuite) TestDecodeRejectsTruncated() {
	back := make([]byte, 4)
	n := Decode(back, []byte{0x05, 0x11, 0x22})
	s.Assert().Equal(-2, n)
}
