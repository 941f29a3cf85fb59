package enc

import (
	"fmt"

	"github.com/pkg/errors"
)

// RadixEncoder treats the input as one big-endian number and writes it down in the radix of its
// alphabet. It works for any alphabet size, not just powers of two, at the cost of quadratic
// running time: every input symbol is multiplied through all the digits produced so far.
//
// Leading zero bytes carry no numeric value, so each of them is written as one leader symbol
// (and vice-versa). An input consisting of n zero bytes encodes into exactly n leader symbols.
type RadixEncoder struct {
	name     string
	alphabet *Alphabet
}

// NewRadixEncoder creates a new encoder using the given symbols as the alphabet.
func NewRadixEncoder(name, symbols string) (*RadixEncoder, error) {
	return NewSizedRadixEncoder(name, symbols, len(symbols))
}

// NewSizedRadixEncoder creates a new encoder for the declared radix. The number of symbols must
// match the radix exactly.
func NewSizedRadixEncoder(name, symbols string, radix int) (*RadixEncoder, error) {
	if len(symbols) != radix {
		return nil, errors.Wrapf(ErrMismatchedSizes, "%s: radix %d declared, but alphabet has %d symbols",
			name, radix, len(symbols))
	}
	a, err := NewAlphabet(symbols)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}
	return &RadixEncoder{
		name:     name,
		alphabet: a,
	}, nil
}

// MustRadixEncoder is used to declare package-level encoders and panics if the alphabet is invalid.
func MustRadixEncoder(name, symbols string, radix int) *RadixEncoder {
	r, err := NewSizedRadixEncoder(name, symbols, radix)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *RadixEncoder) Name() string {
	return r.name
}

func (r *RadixEncoder) String() string {
	return fmt.Sprintf("%v(%v)", r.Name(), r.alphabet.Size())
}

func (r *RadixEncoder) Alphabet() *Alphabet {
	return r.alphabet
}

func (r *RadixEncoder) EncodedLen(n int) int {
	return EncodedLen(r.alphabet.Size(), n)
}

func (r *RadixEncoder) DecodedLen(n int) int {
	return DecodedLen(r.alphabet.Size(), n)
}

func (r *RadixEncoder) Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	digits := make([]byte, 1, r.EncodedLen(len(src)))
	digits, _ = r.encode(digits, -1, src)
	return string(digits)
}

func (r *RadixEncoder) Decode(src string) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}
	if err := r.validate(src); err != nil {
		return nil, err
	}
	res := make([]byte, 1, r.DecodedLen(len(src)))
	res, _ = r.decode(res, -1, src)
	return res, nil
}

// EncodeInto runs the conversion inside dst, without allocating.
func (r *RadixEncoder) EncodeInto(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	if len(dst) == 0 {
		return 0, errors.Wrapf(ErrContainerTooSmall, "%s: empty container", r.name)
	}
	digits := dst[:1:len(dst)]
	digits[0] = 0
	digits, err := r.encode(digits, len(dst), src)
	if err != nil {
		return 0, err
	}
	return len(digits), nil
}

// DecodeInto runs the conversion inside dst, without allocating.
func (r *RadixEncoder) DecodeInto(dst []byte, src string) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	if err := r.validate(src); err != nil {
		return 0, err
	}
	if len(dst) == 0 {
		return 0, errors.Wrapf(ErrContainerTooSmall, "%s: empty container", r.name)
	}
	res := dst[:1:len(dst)]
	res[0] = 0
	res, err := r.decode(res, len(dst), src)
	if err != nil {
		return 0, err
	}
	return len(res), nil
}

// validate rejects the input before any work is done if it has a symbol outside the alphabet
func (r *RadixEncoder) validate(src string) error {
	for i := 0; i < len(src); i++ {
		if _, ok := r.alphabet.Digit(src[i]); !ok {
			return errors.WithStack(&InvalidCharacterError{Char: src[i], Offset: i})
		}
	}
	return nil
}

// encode converts src into symbols. `digits` must hold exactly one zero digit. A negative limit
// lets the digits grow freely.
func (r *RadixEncoder) encode(digits []byte, limit int, src []byte) ([]byte, error) {
	radix := uint32(r.alphabet.Size())

	var ok bool
	for _, b := range src {
		if digits, ok = multiplyAdd(digits, limit, uint32(b), 256, radix); !ok {
			return nil, errors.Wrapf(ErrContainerTooSmall, "%s: %d bytes are not enough to encode %d bytes",
				r.name, limit, len(src))
		}
	}

	// The final byte is already represented by the digits, even if it's zero
	for i := 0; i < len(src)-1 && src[i] == 0; i++ {
		if limit >= 0 && len(digits) == limit {
			return nil, errors.Wrapf(ErrContainerTooSmall, "%s: %d bytes are not enough to encode %d bytes",
				r.name, limit, len(src))
		}
		digits = append(digits, 0)
	}

	reverse(digits)
	for i, d := range digits {
		digits[i] = r.alphabet.Symbol(d)
	}
	return digits, nil
}

// decode converts already validated symbols into bytes. `res` must hold exactly one zero byte.
func (r *RadixEncoder) decode(res []byte, limit int, src string) ([]byte, error) {
	radix := uint32(r.alphabet.Size())

	var ok bool
	for i := 0; i < len(src); i++ {
		d, _ := r.alphabet.Digit(src[i])
		if res, ok = multiplyAdd(res, limit, uint32(d), radix, 256); !ok {
			return nil, errors.Wrapf(ErrContainerTooSmall, "%s: %d bytes are not enough to decode %d symbols",
				r.name, limit, len(src))
		}
	}

	leader := r.alphabet.Leader()
	for i := 0; i < len(src)-1 && src[i] == leader; i++ {
		if limit >= 0 && len(res) == limit {
			return nil, errors.Wrapf(ErrContainerTooSmall, "%s: %d bytes are not enough to decode %d symbols",
				r.name, limit, len(src))
		}
		res = append(res, 0)
	}

	reverse(res)
	return res, nil
}

// multiplyAdd computes acc = acc*from + value, where acc is a little-endian number with digits in
// radix `to`. New digits are appended while carry remains; with a non-negative limit it reports
// `false` instead of growing acc past limit digits.
func multiplyAdd(acc []byte, limit int, value, from, to uint32) ([]byte, bool) {
	carry := value
	for i := range acc {
		carry += uint32(acc[i]) * from
		acc[i] = byte(carry % to)
		carry /= to
	}
	for carry > 0 {
		if limit >= 0 && len(acc) == limit {
			return acc, false
		}
		acc = append(acc, byte(carry%to))
		carry /= to
	}
	return acc, true
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
