package enc

import (
	"encoding/hex"
)

// NewBase16Encoder encodes 1 byte to 2 characters.
func NewBase16Encoder(name, symbols string) *BitEncoder {
	return newBitEncoder(name, symbols, false, &hexEncoding{symbols: symbols})
}

// hexEncoding gives `encoding/hex` the same shape as the base32 and base64 encodings. The hex
// package only encodes lowercase, so encoding goes through the alphabet instead.
type hexEncoding struct {
	symbols string
}

func (h *hexEncoding) Encode(dst, src []byte) {
	for i, v := range src {
		dst[i*2] = h.symbols[v>>4]
		dst[i*2+1] = h.symbols[v&0x0f]
	}
}

func (h *hexEncoding) EncodeToString(src []byte) string {
	dst := make([]byte, h.EncodedLen(len(src)))
	h.Encode(dst, src)
	return string(dst)
}

func (h *hexEncoding) EncodedLen(n int) int {
	return hex.EncodedLen(n)
}

func (h *hexEncoding) DecodedLen(n int) int {
	return hex.DecodedLen(n)
}

func (h *hexEncoding) Decode(dst, src []byte) (int, error) {
	return hex.Decode(dst, src)
}

func (h *hexEncoding) DecodeString(s string) ([]byte, error) {
	return hex.DecodeString(s)
}
