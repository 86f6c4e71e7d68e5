package cborio

// Package cborio is the buffered, allocating convenience layer around the
// allocation-free cbor package: io.Reader/io.Writer record framing using
// COBS byte-stuffing (github.com/.../framing) for the zero-byte
// delimiter and a CRC-32C trailer for integrity, plus the buffer-pooling
// and forward-seek plumbing that layer needs. Unlike the cbor package
// itself, cborio is explicitly allowed to allocate: it exists to adapt
// ordinary Go io types onto the no-allocation core, not to preserve that
// core's guarantee itself.

// Error is this package's flat error enumeration, mirroring the style of
// the cbor package's own Error type.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrRecordTooLarge: a record's raw (still-stuffed) length exceeds the
	// configured MaxRecordReader bound before a delimiter was found.
	ErrRecordTooLarge Error = "cborio: record exceeds maximum size"

	// ErrChecksumMismatch: a decoded record's trailing CRC-32C did not
	// match the CRC-32C of its payload.
	ErrChecksumMismatch Error = "cborio: checksum mismatch"

	// ErrFraming: a record's COBS encoding was malformed (embedded zero
	// byte, or a truncated final segment).
	ErrFraming Error = "cborio: malformed frame"

	// ErrShortRecord: a decoded record was shorter than the 4-byte CRC
	// trailer it must carry.
	ErrShortRecord Error = "cborio: record shorter than its checksum trailer"

	// ErrInvalidWhence: a Seek call used a whence value a forward-only
	// seeker cannot satisfy.
	ErrInvalidWhence Error = "cborio: invalid whence"

	// ErrUnsupportedNegativeSeek: a Seek call would require moving
	// backward, which a forward-only (discard-based) seeker cannot do.
	ErrUnsupportedNegativeSeek Error = "cborio: negative seek unsupported"

	// ErrNilIO: a constructor was called with a nil io.Reader/io.Writer.
	ErrNilIO Error = "cborio: nil reader or writer"
)
