package enc

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

const padChar = '='

// bitEncoding is implemented by `*base32.Encoding`, `*base64.Encoding` and `*hexEncoding`.
type bitEncoding interface {
	Encode(dst, src []byte)
	EncodeToString(src []byte) string
	EncodedLen(n int) int
	DecodedLen(n int) int
	Decode(dst, src []byte) (int, error)
	DecodeString(s string) ([]byte, error)
}

// BitEncoder maps fixed-width groups of bits onto symbols of a power-of-two alphabet. Nothing is
// carried between groups, so the conversion is linear.
//
// The standard library decoders are lenient: they skip line breaks and accept both letter cases
// for hex. BitEncoder checks every symbol against its own alphabet first, so a lowercase entry
// will not decode uppercase input (and vice-versa).
type BitEncoder struct {
	name     string
	alphabet *Alphabet
	padded   bool
	encoding bitEncoding
}

func newBitEncoder(name, symbols string, padded bool, encoding bitEncoding) *BitEncoder {
	return &BitEncoder{
		name:     name,
		alphabet: MustAlphabet(symbols),
		padded:   padded,
		encoding: encoding,
	}
}

func (b *BitEncoder) Name() string {
	return b.name
}

func (b *BitEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), b.alphabet.Size())
}

func (b *BitEncoder) Alphabet() *Alphabet {
	return b.alphabet
}

// Padded returns true if the encoder pads the output to a full block with `=`
func (b *BitEncoder) Padded() bool {
	return b.padded
}

func (b *BitEncoder) EncodedLen(n int) int {
	return b.encoding.EncodedLen(n)
}

func (b *BitEncoder) DecodedLen(n int) int {
	return b.encoding.DecodedLen(n)
}

func (b *BitEncoder) Encode(data []byte) string {
	return b.encoding.EncodeToString(data)
}

func (b *BitEncoder) Decode(data string) ([]byte, error) {
	if err := b.validate(data); err != nil {
		return nil, err
	}
	res, err := b.encoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidLength, "%s: %v", b.name, err)
	}
	if res == nil {
		res = []byte{}
	}
	return res, nil
}

func (b *BitEncoder) EncodeInto(dst, src []byte) (int, error) {
	need := b.encoding.EncodedLen(len(src))
	if len(dst) < need {
		return 0, errors.Wrapf(ErrContainerTooSmall, "%s: have %d bytes, need %d", b.name, len(dst), need)
	}
	b.encoding.Encode(dst, src)
	return need, nil
}

func (b *BitEncoder) DecodeInto(dst []byte, src string) (int, error) {
	if err := b.validate(src); err != nil {
		return 0, err
	}
	need := b.encoding.DecodedLen(len(src))
	if len(dst) < need {
		return 0, errors.Wrapf(ErrContainerTooSmall, "%s: have %d bytes, need %d", b.name, len(dst), need)
	}
	n, err := b.encoding.Decode(dst, []byte(src))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidLength, "%s: %v", b.name, err)
	}
	return n, nil
}

// validate makes sure only symbols from the alphabet (and the padding, where allowed) are present.
// Padding placement is checked by the underlying decoder.
func (b *BitEncoder) validate(src string) error {
	for i := 0; i < len(src); i++ {
		c := src[i]
		if _, ok := b.alphabet.Digit(c); ok {
			continue
		}
		if c == padChar && b.padded {
			continue
		}
		return errors.WithStack(&InvalidCharacterError{Char: c, Offset: i})
	}
	if b.padded && strings.IndexByte(src, padChar) >= 0 && len(src)%b.blockSize() != 0 {
		return errors.Wrapf(ErrInvalidLength, "%s: padded input of %d symbols", b.name, len(src))
	}
	return b.validateTail(strings.TrimRight(src, string(padChar)))
}

// validateTail checks the bits left over after the last complete byte. A final symbol which
// carries no bits of a byte means the input was truncated, and leftover bits must be zero so that
// every byte sequence has exactly one accepted encoding.
func (b *BitEncoder) validateTail(body string) error {
	if len(body) == 0 {
		return nil
	}
	width := b.bitsPerSymbol()
	unused := len(body) * width % 8
	if unused >= width {
		return errors.Wrapf(ErrInvalidLength, "%s: %d symbols do not make up whole bytes", b.name, len(body))
	}
	if unused > 0 {
		d, _ := b.alphabet.Digit(body[len(body)-1])
		if d&(1<<uint(unused)-1) != 0 {
			return errors.Wrapf(ErrInvalidLength, "%s: non-zero trailing bits in %q", b.name, body[len(body)-1])
		}
	}
	return nil
}

// bitsPerSymbol is 4 for base16, 5 for base32 and 6 for base64
func (b *BitEncoder) bitsPerSymbol() int {
	return bits.TrailingZeros(uint(b.alphabet.Size()))
}

// blockSize is the number of symbols in a complete padded block
func (b *BitEncoder) blockSize() int {
	return b.encoding.EncodedLen(1)
}
