// Package cborio layers buffered, self-delimiting record framing on top
// of the allocation-free cbor package: RecordWriter/RecordReader exchange
// COBS-stuffed, CRC-32C-checked records over any io.Writer/io.Reader,
// giving a byte-oriented transport (a pipe, a serial line, a raw TCP
// socket) the same message-boundary guarantees a length-prefixed protocol
// gets for free. See SPEC_FULL.md.
package cborio
