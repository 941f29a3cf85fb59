package enc

import (
	"github.com/pkg/errors"
)

const (
	// MinAlphabetSize is the smallest usable radix
	MinAlphabetSize = 2
	// MaxAlphabetSize is the largest usable radix. 0xFF is reserved as the "invalid symbol" marker in
	// the lookup table, so one byte value always stays unmapped.
	MaxAlphabetSize = 255

	invalidSymbol = 0xFF
)

// Alphabet is an ordered set of distinct single-byte symbols. The symbol at position 0 is the
// "leader": it stands for the digit zero and is used to carry leading zero bytes through a
// round trip.
type Alphabet struct {
	symbols string
	lookup  [256]byte
}

// NewAlphabet will validate the symbols and build the reverse lookup table.
func NewAlphabet(symbols string) (*Alphabet, error) {
	if len(symbols) < MinAlphabetSize || len(symbols) > MaxAlphabetSize {
		return nil, errors.Wrapf(ErrInvalidAlphabet, "alphabet must have between %d and %d symbols, got %d",
			MinAlphabetSize, MaxAlphabetSize, len(symbols))
	}

	a := &Alphabet{
		symbols: symbols,
	}
	for i := range a.lookup {
		a.lookup[i] = invalidSymbol
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if a.lookup[c] != invalidSymbol {
			return nil, errors.Wrapf(ErrInvalidAlphabet, "duplicate symbol %q at position %d", c, i)
		}
		a.lookup[c] = byte(i)
	}
	return a, nil
}

// MustAlphabet is like NewAlphabet but panics on error. Only meant for package-level tables.
func MustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the radix of this alphabet
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Leader returns the symbol for digit zero
func (a *Alphabet) Leader() byte {
	return a.symbols[0]
}

// Symbol returns the symbol for the given digit value
func (a *Alphabet) Symbol(digit byte) byte {
	return a.symbols[digit]
}

// Digit returns the value of the symbol and `false` if the symbol is not part of the alphabet.
func (a *Alphabet) Digit(symbol byte) (byte, bool) {
	d := a.lookup[symbol]
	return d, d != invalidSymbol
}

// Contains reports whether every byte of s is a symbol of this alphabet.
func (a *Alphabet) Contains(s string) bool {
	for i := 0; i < len(s); i++ {
		if a.lookup[s[i]] == invalidSymbol {
			return false
		}
	}
	return true
}

func (a *Alphabet) String() string {
	return a.symbols
}
