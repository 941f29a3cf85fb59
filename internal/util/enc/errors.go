package enc

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidAlphabet is returned when a symbol set cannot be used as a radix alphabet
	ErrInvalidAlphabet = errors.New("invalid alphabet")
	// ErrInvalidCharacter is returned when the encoded input contains a symbol outside the alphabet
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrInvalidLength is returned by bit-aligned decoders on structurally invalid input (padding, length)
	ErrInvalidLength = errors.New("invalid length or padding")
	// ErrContainerTooSmall is returned by the fixed-capacity functions when the output buffer is too short
	ErrContainerTooSmall = errors.New("container too small")
	// ErrMismatchedSizes is returned when a declared size does not match the supplied data
	ErrMismatchedSizes = errors.New("mismatched sizes")
)

// InvalidCharacterError tells which byte in the input could not be decoded and where it was found.
type InvalidCharacterError struct {
	Char   byte
	Offset int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d", ErrInvalidCharacter, e.Char, e.Offset)
}

// Is makes InvalidCharacterError match ErrInvalidCharacter
func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}
