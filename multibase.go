package multibase

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Encode the data with the given base and prepend the base's code character. Encoding cannot fail.
func Encode(base Base, data []byte) string {
	return string(base.Code()) + base.Encode(data)
}

// Decode a multibase string. The first character selects the base, the rest is decoded with it.
// Returns ErrInvalidBaseString for empty input or an undecodable body and ErrUnknownBase if the
// leading character is not a registered code.
func Decode(input string) (Base, []byte, error) {
	base, body, err := split(input)
	if err != nil {
		return Identity, nil, err
	}
	data, err := base.Decode(body)
	if err != nil {
		return base, nil, err
	}
	return base, data, nil
}

// EncodeInto writes the code character and the encoded data into dst. dst needs at least
// 1 + base.EncodedLen(len(data)) bytes, otherwise ErrContainerTooSmall is returned.
func EncodeInto(base Base, dst, data []byte) (int, error) {
	code := base.Code()
	size := utf8.RuneLen(code)
	if len(dst) < size {
		return 0, errors.Wrapf(ErrContainerTooSmall, "need at least %d bytes for the code of %v", size, base)
	}
	utf8.EncodeRune(dst, code)
	n, err := base.EncodeInto(dst[size:], data)
	if err != nil {
		return 0, err
	}
	return size + n, nil
}

// DecodeInto decodes a multibase string into dst, returning the selected base and the number of
// bytes written. Errors follow Decode, plus ErrContainerTooSmall when dst cannot hold the result.
func DecodeInto(dst []byte, input string) (Base, int, error) {
	base, body, err := split(input)
	if err != nil {
		return Identity, 0, err
	}
	n, err := base.DecodeInto(dst, body)
	if err != nil {
		return base, 0, err
	}
	return base, n, nil
}

// split separates the leading code from the body and resolves the base
func split(input string) (Base, string, error) {
	if input == "" {
		return Identity, "", errors.Wrap(ErrInvalidBaseString, "empty input")
	}
	code, size := utf8.DecodeRuneInString(input)
	base, err := FromCode(code)
	if err != nil {
		return Identity, "", err
	}
	return base, input[size:], nil
}
