// Package cbor is the core, allocation-free CBOR codec: Stream plus the
// primitive (integers, floats, strings), composite (arrays, maps, skip),
// tag, and pack/unpack layers. See SPEC_FULL.md for the full module map,
// including the companion framing and cborio packages this one composes
// with.
package cbor
