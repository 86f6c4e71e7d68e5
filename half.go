package cbor

import "math"

// half.go implements bit-level conversion between IEEE-754 binary16
// ("half") and the Go float32/float64 types. CBOR never exposes a native
// half type; the wire encoding (major type 7, ai 25) is always widened to
// float32 on decode, and the writer canonicalizes float64 -> float32 ->
// half -> back up whenever the demotion is exact (see floats.go).

const (
	halfSignMask   = 0x8000
	halfExpMask    = 0x7C00
	halfFracMask   = 0x03FF
	halfExpBias    = 15
	halfFracBits   = 10
	singleExpBias  = 127
	singleFracBits = 23
)

// canonicalHalfNaN is the canonical quiet NaN CBOR writers emit: sign 0,
// all exponent bits set, only the top fraction (quiet) bit set.
const canonicalHalfNaN uint16 = 0x7E00

// halfToFloat32 widens a binary16 bit pattern to a float32 bit pattern.
func halfToFloat32(h uint16) float32 {
	sign := uint32(h&halfSignMask) << 16
	exp := uint32(h&halfExpMask) >> halfFracBits
	frac := uint32(h & halfFracMask)

	switch exp {
	case 0:
		if frac == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal half: normalize by shifting until the implicit bit
		// would land, adjusting the single-precision exponent to match.
		e := int32(singleExpBias - halfExpBias + 1)
		for frac&(1<<halfFracBits) == 0 {
			frac <<= 1
			e--
		}
		frac &= halfFracMask
		bits := sign | uint32(e)<<singleFracBits | frac<<(singleFracBits-halfFracBits)
		return math.Float32frombits(bits)
	case 0x1F:
		if frac == 0 {
			return math.Float32frombits(sign | 0xFF<<singleFracBits)
		}
		// NaN: widen the payload; the quiet bit moves with it, preserving
		// signaling/quiet status.
		bits := sign | 0xFF<<singleFracBits | frac<<(singleFracBits-halfFracBits)
		return math.Float32frombits(bits)
	default:
		se := int32(exp) - halfExpBias + singleExpBias
		bits := sign | uint32(se)<<singleFracBits | frac<<(singleFracBits-halfFracBits)
		return math.Float32frombits(bits)
	}
}

// float32ToHalf narrows a float32 bit pattern to binary16, along with
// whether the conversion was exact (no precision or range loss). Inexact
// results still produce a best-effort binary16 (the fraction is truncated,
// not rounded; an out-of-range value becomes infinity), which callers that
// require canonical exactness must reject via the ok flag.
func float32ToHalf(f float32) (h uint16, ok bool) {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & halfSignMask
	exp := int32(bits>>singleFracBits) & 0xFF
	frac := bits & (1<<singleFracBits - 1)

	if exp == 0xFF {
		if frac == 0 {
			return sign | halfExpMask, true // +/- Inf
		}
		// NaN: canonicalize to the quiet NaN pattern; exactness of NaN
		// payload bits is not meaningful for this codec.
		return sign | canonicalHalfNaN, true
	}

	se := exp - singleExpBias + halfExpBias
	switch {
	case se >= 0x1F:
		// Overflows half range: not exactly representable.
		return sign | halfExpMask, false
	case se <= 0:
		// Subnormal or underflow in half.
		if se < -halfFracBits {
			if bits&((1<<singleFracBits)-1) == 0 && exp == 0 {
				return sign, true // +/- 0
			}
			return sign, false
		}
		shift := uint(singleFracBits - halfFracBits + 1 - int(se))
		full := frac | 1<<singleFracBits // restore implicit bit
		lost := full & (1<<shift - 1)
		hf := uint16(full >> shift)
		if lost != 0 {
			return sign | hf, false
		}
		if exp == 0 && frac == 0 {
			return sign, true
		}
		return sign | hf, true
	default:
		lost := frac & (1<<(singleFracBits-halfFracBits) - 1)
		hfrac := uint16(frac >> (singleFracBits - halfFracBits))
		result := sign | uint16(se)<<halfFracBits | hfrac
		return result, lost == 0
	}
}

// float64ToHalfExact reports whether f can be represented exactly as a
// binary16 value, returning the half bit pattern when it can. Used by the
// canonical float writer to pick the shortest exact encoding.
func float64ToHalfExact(f float64) (h uint16, ok bool) {
	f32 := float32(f)
	if float64(f32) != f && !math.IsNaN(f) {
		return 0, false
	}
	if math.IsNaN(f) {
		sign := uint16(0)
		if math.Signbit(f) {
			sign = halfSignMask
		}
		return sign | canonicalHalfNaN, true
	}
	return float32ToHalf(f32)
}
