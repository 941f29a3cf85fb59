package enc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_AlphabetLookup(t *testing.T) {
	a, err := NewAlphabet(cb58Btc)
	require.NoError(t, err)
	require.Equal(t, 58, a.Size())
	require.Equal(t, byte('1'), a.Leader())

	for i := 0; i < len(cb58Btc); i++ {
		d, ok := a.Digit(cb58Btc[i])
		require.True(t, ok)
		require.Equal(t, byte(i), d)
		require.Equal(t, cb58Btc[i], a.Symbol(d))
	}

	for _, c := range []byte("0OIl+/=_ \x00\xff") {
		_, ok := a.Digit(c)
		require.False(t, ok, "%q must not be part of the alphabet", c)
	}

	require.True(t, a.Contains("Cn8eVZg"))
	require.False(t, a.Contains("Cn8e_VZg"))
	require.True(t, a.Contains(""))
}

func Test_AlphabetInvalid(t *testing.T) {
	for _, symbols := range []string{
		"",
		"0",
		"011",
		"abcdefa",
		strings.Repeat("x", 2),
	} {
		_, err := NewAlphabet(symbols)
		require.ErrorIs(t, err, ErrInvalidAlphabet, "%q", symbols)
	}

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	_, err := NewAlphabet(string(all))
	require.ErrorIs(t, err, ErrInvalidAlphabet)

	a, err := NewAlphabet(string(all[:MaxAlphabetSize]))
	require.NoError(t, err)
	require.Equal(t, MaxAlphabetSize, a.Size())

	require.Panics(t, func() {
		MustAlphabet("aa")
	})
}

func Test_EstimatedLen(t *testing.T) {
	require.Equal(t, 0, EncodedLen(58, 0))
	require.Equal(t, 0, DecodedLen(58, 0))

	for _, radix := range []int{2, 3, 8, 10, 36, 58, 100, 255} {
		for n := 1; n < 200; n++ {
			// n bytes of 0xff need the most symbols
			require.GreaterOrEqual(t, EncodedLen(radix, n), n, "radix %d, %d bytes", radix, n)
			require.Greater(t, DecodedLen(radix, n), 0)
		}
	}

	require.GreaterOrEqual(t, EncodedLen(58, 5), len("Cn8eVZg"))
	require.GreaterOrEqual(t, DecodedLen(58, len("Cn8eVZg")), len("hello"))
}
