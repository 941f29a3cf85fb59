package enc

import (
	"encoding/base32"
)

// NewBase32Encoder encodes 5 bytes to 8 characters using the given 32-symbol alphabet. Covers
// RFC4648 base32, base32hex and z-base-32, which only differ in the symbols used.
func NewBase32Encoder(name, symbols string, padded bool) *BitEncoder {
	encoding := base32.NewEncoding(symbols)
	if !padded {
		encoding = encoding.WithPadding(base32.NoPadding)
	}
	return newBitEncoder(name, symbols, padded, encoding)
}
