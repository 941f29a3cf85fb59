package enc

import (
	"encoding/base64"
)

// NewBase64Encoder encodes 3 bytes to 4 characters. Decoding is strict: the unused bits of the
// last symbol must be zero, so every byte sequence has exactly one accepted encoding.
func NewBase64Encoder(name, symbols string, padded bool) *BitEncoder {
	encoding := base64.NewEncoding(symbols)
	if !padded {
		encoding = encoding.WithPadding(base64.NoPadding)
	}
	return newBitEncoder(name, symbols, padded, encoding.Strict())
}
