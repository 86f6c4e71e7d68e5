package framing

// PCG32 is a PCG32-XSH-RR pseudo-random generator: a 64-bit LCG state
// with a fixed odd increment, output-permuted by a xorshift and a
// state-dependent rotate. Ported from pcg32.c/pcg32.h (O'Neill,
// pcg-random.org). It is not a cryptographic generator.
type PCG32 struct {
	state uint64
	inc   uint64
}

const pcg32Multiplier = 6364136223846793005

// NewPCG32 returns the generator in its fixed initial state, equivalent
// to `pcg32_random_t rng = PCG32_INITIALIZER`.
func NewPCG32() *PCG32 {
	return &PCG32{state: 0x853c49e6748fea9b, inc: 0xda3e39cb94b95bdb}
}

// Seed re-initializes the generator from a 128-bit (state, sequence)
// pair, per pcg32_srandom_r.
func (r *PCG32) Seed(initstate, initseq uint64) {
	r.state = 0
	r.inc = initseq<<1 | 1
	r.Uint32()
	r.state += initstate
	r.Uint32()
}

// Uint32 returns the next 32-bit output and advances the generator's
// state, per pcg32_random_r.
func (r *PCG32) Uint32() uint32 {
	oldstate := r.state
	r.state = oldstate*pcg32Multiplier + r.inc
	xorshifted := uint32(((oldstate >> 18) ^ oldstate) >> 27)
	rot := uint32(oldstate >> 59)
	return xorshifted>>rot | xorshifted<<((-rot)&31)
}

// Uint32n returns a uniformly distributed value in [0, bound) via
// rejection sampling against a computed threshold, per
// pcg32_boundedrand_r. Uint32n(0) would divide by zero in the original C
// too; callers must not pass a zero bound.
func (r *PCG32) Uint32n(bound uint32) uint32 {
	threshold := -bound % bound
	for {
		v := r.Uint32()
		if v >= threshold {
			return v % bound
		}
	}
}

// Bytes fills b with random bytes, each drawn uniformly from [0, 256) via
// Uint32n, per pcg32_randbytes.
func (r *PCG32) Bytes(b []byte) {
	for i := range b {
		b[i] = byte(r.Uint32n(256))
	}
}
