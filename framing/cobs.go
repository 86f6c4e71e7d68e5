// Package framing provides the small wire-level utilities the cborio
// record layer builds on: COBS byte-stuffing (for a zero-byte frame
// delimiter), CRC-32C checksums (for frame integrity), and a PCG32
// pseudo-random generator. None of
// these depend on the cbor package; they operate on plain byte slices.
package framing

import (
	"bytes"

	"golang.org/x/exp/constraints"
)

// EncodedSize returns the worst-case size of the COBS encoding of an
// n-byte payload: ceil(n/254) overhead bytes plus the payload itself.
// Generic over any integer type, adapted from the teacher codec's
// Roundup helper, which used the same constraints.Integer pattern to stay
// type-agnostic across the sizes callers commonly reach for (int, uint32,
// uintptr).
//
// n == 0 is a degenerate input the original cobs_enc_size/cobs_enc pair
// disagree on (the size formula returns 0, but cobs_enc unconditionally
// emits one leading code byte even for an empty payload); callers with a
// genuinely empty payload should special-case it rather than rely on
// EncodedSize(0).
func EncodedSize[T constraints.Integer](n T) T {
	return (n+253)/254 + n
}

// Encode writes the COBS encoding of in into out and returns the number
// of bytes written. out must be at least EncodedSize(len(in)) bytes; the
// encoding never includes the framing zero byte itself, which callers
// append separately as the record delimiter.
//
// Ported directly from the original cobs_enc: a running code byte tracks
// the distance to the next zero (or to the 254-byte block boundary), and
// in-place encoding is safe whenever in is the tail of out reserved with
// enough headroom, because the write cursor never catches up with the
// read cursor.
func Encode(out, in []byte) int {
	nout := 0
	base := 0 // index into out of the current block's length byte
	out[base] = 1
	lastMax := false
	for _, v := range in {
		lastMax = false
		if v == 0 {
			nout += int(out[base])
			base += int(out[base])
			out[base] = 1
		} else {
			out[base+int(out[base])] = v
			out[base]++
			if out[base] == 255 {
				nout += int(out[base])
				base += int(out[base])
				// An input ending on a full block needs no further code
				// byte, and out may have no room for one.
				if base < len(out) {
					out[base] = 1
				}
				lastMax = true
			}
		}
	}
	if !lastMax {
		nout += int(out[base])
	}
	return nout
}

// Decode writes the COBS decoding of in into out and returns the number
// of bytes written, or -1 if in contains an embedded zero byte (which a
// valid COBS-encoded frame never does), or -2 if the final segment is
// truncated.
func Decode(out, in []byte) int {
	if bytes.IndexByte(in, 0x00) >= 0 {
		return -1
	}
	out0 := false
	var code byte
	nout := 0
	oi, ii := 0, 0
	n := len(in)
	for n > 0 {
		if code == 0 {
			if out0 {
				out[oi] = 0x00
				oi++
				nout++
			}
			code = in[ii]
			ii++
			n--
			out0 = code != 255
			code--
		} else {
			out[oi] = in[ii]
			oi++
			ii++
			nout++
			n--
			code--
		}
	}
	if code > 0 {
		return -2
	}
	return nout
}
