package framing

// CRC-32C (Castagnoli), table-driven, ported from the original
// crc32c_update: a reflected table built from the reversed polynomial
// 0x82F63B78 (the bit-reversal of the normal-form polynomial 0x1EDC6F41),
// the same construction crc32c_tab.h precomputes ahead of time in C. Here
// the table is built once at package init instead of checked in as a
// literal, since Go has no convenient way to embed a generated C header
// verbatim and regenerating it is cheap and auditable.
const castagnoliPoly = 0x82F63B78

var crc32cTable [256]uint32

func init() {
	for i := range crc32cTable {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ castagnoliPoly
			} else {
				crc >>= 1
			}
		}
		crc32cTable[i] = crc
	}
}

// CRC32CResidue is the fixed value crc32c_update leaves when run over a
// message immediately followed by its own (correctly computed) checksum:
// a standard property of any CRC with this polynomial, usable as an
// integrity check without having to separately compare the trailing
// checksum bytes.
const CRC32CResidue uint32 = 0x48674BC7

// CRC32CUpdate extends crc (0 for a fresh checksum) over data and returns
// the updated CRC-32C value.
func CRC32CUpdate(crc uint32, data []byte) uint32 {
	crc ^= 0xFFFFFFFF
	for _, b := range data {
		idx := byte(crc) ^ b
		crc = crc>>8 ^ crc32cTable[idx]
	}
	return crc ^ 0xFFFFFFFF
}

// CRC32C computes the CRC-32C of data in one call.
func CRC32C(data []byte) uint32 {
	return CRC32CUpdate(0, data)
}
