package enc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var bitEncoders = []*BitEncoder{
	Base16Encoding,
	Base16UpperEncoding,
	Base32Encoding,
	Base32UpperEncoding,
	Base32PadEncoding,
	Base32PadUpperEncoding,
	Base32HexEncoding,
	Base32HexUpperEncoding,
	Base32HexPadEncoding,
	Base32HexPadUpperEncoding,
	Base32ZEncoding,
	Base64Encoding,
	Base64PadEncoding,
	Base64UrlEncoding,
	Base64UrlPadEncoding,
}

func Test_BitEncoderVectors(t *testing.T) {
	for _, v := range []struct {
		encoder *BitEncoder
		input   string
		output  string
	}{
		{Base16Encoding, "foo", "666f6f"},
		{Base16UpperEncoding, "foo", "666F6F"},
		{Base16Encoding, "yes mani !", "796573206d616e692021"},
		{Base32Encoding, "foo", "mzxw6"},
		{Base32UpperEncoding, "foo", "MZXW6"},
		{Base32Encoding, "yes mani !", "pfsxgidnmfxgsibb"},
		{Base32PadEncoding, "foo", "mzxw6==="},
		{Base32PadUpperEncoding, "foo", "MZXW6==="},
		{Base32HexEncoding, "foo", "cpnmu"},
		{Base32HexUpperEncoding, "foo", "CPNMU"},
		{Base32HexEncoding, "yes mani !", "f5in683dc5n6i811"},
		{Base32HexPadEncoding, "foo", "cpnmu==="},
		{Base32HexPadUpperEncoding, "foo", "CPNMU==="},
		{Base32ZEncoding, "foo", "c3zs6"},
		{Base32ZEncoding, "yes mani !", "xf1zgedpcfzg1ebb"},
		{Base64Encoding, "foo", "Zm9v"},
		{Base64UrlEncoding, "foo", "Zm9v"},
		{Base64PadEncoding, "foopadding", "Zm9vcGFkZGluZw=="},
		{Base64UrlPadEncoding, "foopadding", "Zm9vcGFkZGluZw=="},
		{Base64Encoding, "\xfb\xff", "+/8"},
		{Base64UrlEncoding, "\xfb\xff", "-_8"},
		{Base64UrlPadEncoding, "\x01\x02\x03\x62\xff\xff\xff", "AQIDYv___w=="},
	} {
		encoded := v.encoder.Encode([]byte(v.input))
		require.Equal(t, v.output, encoded, "%v could not encode %q", v.encoder, v.input)

		decoded, err := v.encoder.Decode(v.output)
		require.NoError(t, err)
		require.Equal(t, []byte(v.input), decoded, "%v could not decode %q", v.encoder, v.output)
	}
}

func Test_BitEncoderRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for _, encoder := range bitEncoders {
		inputs := [][]byte{encoderTest, {}, {0}, {0, 0, 0}}
		for i := 0; i < 30; i++ {
			inputs = append(inputs, randomBytes(r, r.Intn(70)))
		}
		for _, input := range inputs {
			encoded := encoder.Encode(input)
			require.Equal(t, encoder.EncodedLen(len(input)), len(encoded))
			if !encoder.Padded() {
				require.NotContains(t, encoded, "=")
			}

			decoded, err := encoder.Decode(encoded)
			require.NoError(t, err)
			require.NotNil(t, decoded)
			require.Equal(t, input, decoded)
		}
	}
}

func Test_BitEncoderStrictCase(t *testing.T) {
	for _, v := range []struct {
		encoder *BitEncoder
		input   string
	}{
		{Base16Encoding, "666F6F"},
		{Base16UpperEncoding, "666f6f"},
		{Base32Encoding, "MZXW6"},
		{Base32UpperEncoding, "mzxw6"},
		{Base32HexEncoding, "CPNMU"},
		{Base32HexUpperEncoding, "cpnmu"},
	} {
		_, err := v.encoder.Decode(v.input)
		require.ErrorIs(t, err, ErrInvalidCharacter, "%v must not accept %q", v.encoder, v.input)
	}
}

func Test_BitEncoderInvalid(t *testing.T) {
	for _, v := range []struct {
		encoder *BitEncoder
		input   string
		err     error
	}{
		{Base32Encoding, "mzxw6===", ErrInvalidCharacter},
		{Base32PadEncoding, "mzxw6", ErrInvalidLength},
		{Base32PadEncoding, "mzxw6==", ErrInvalidLength},
		{Base32PadEncoding, "mz=xw6==", ErrInvalidLength},
		{Base16Encoding, "666", ErrInvalidLength},
		{Base16Encoding, "66 6f", ErrInvalidCharacter},
		{Base64Encoding, "Zm9v\n", ErrInvalidCharacter},
		{Base64Encoding, "Zm9v==", ErrInvalidCharacter},
		{Base64Encoding, "Zh", ErrInvalidLength},
		{Base64Encoding, "Z", ErrInvalidLength},
		{Base64PadEncoding, "Zm9vcGFkZGluZw", ErrInvalidLength},
		{Base64UrlEncoding, "+/8", ErrInvalidCharacter},
		{Base64Encoding, "-_8", ErrInvalidCharacter},
		{Base32Encoding, "a", ErrInvalidLength},
		{Base32Encoding, "mzx", ErrInvalidLength},
		{Base32Encoding, "mzxw6y", ErrInvalidLength},
		{Base32Encoding, "mzxw6yzzz", ErrInvalidLength},
		{Base32HexEncoding, "cpn", ErrInvalidLength},
		{Base32HexUpperEncoding, "CPNMUOJ1E", ErrInvalidLength},
		{Base32ZEncoding, "c3zs6y", ErrInvalidLength},
		{Base32PadEncoding, "m=======", ErrInvalidLength},
		{Base16Encoding, "6", ErrInvalidLength},
		{Base64UrlEncoding, "Zm9vY", ErrInvalidLength},
	} {
		_, err := v.encoder.Decode(v.input)
		require.ErrorIs(t, err, v.err, "%v decoding %q", v.encoder, v.input)
	}
}

func Test_BitEncoderFixed(t *testing.T) {
	for _, encoder := range bitEncoders {
		dst := make([]byte, encoder.EncodedLen(len(encoderTest)))
		n, err := encoder.EncodeInto(dst, encoderTest)
		require.NoError(t, err)
		require.Equal(t, encoder.Encode(encoderTest), string(dst[:n]))

		decoded := make([]byte, encoder.DecodedLen(n))
		m, err := encoder.DecodeInto(decoded, string(dst[:n]))
		require.NoError(t, err)
		require.Equal(t, encoderTest, decoded[:m])

		_, err = encoder.EncodeInto(dst[:n-1], encoderTest)
		require.ErrorIs(t, err, ErrContainerTooSmall)

		_, err = encoder.DecodeInto(decoded[:len(encoderTest)-1], string(dst[:n]))
		require.ErrorIs(t, err, ErrContainerTooSmall)
	}
}

func Test_IdentityEncoder(t *testing.T) {
	encoder := IdentityEncoding
	require.Equal(t, "foo", encoder.Encode([]byte("foo")))
	require.Nil(t, encoder.Alphabet())

	decoded, err := encoder.Decode("foo")
	require.NoError(t, err)
	require.Equal(t, []byte("foo"), decoded)

	decoded, err = encoder.Decode(string(encoderTest))
	require.NoError(t, err)
	require.Equal(t, encoderTest, decoded)

	dst := make([]byte, 2)
	_, err = encoder.EncodeInto(dst, []byte("foo"))
	require.ErrorIs(t, err, ErrContainerTooSmall)
	_, err = encoder.DecodeInto(dst, "foo")
	require.ErrorIs(t, err, ErrContainerTooSmall)

	dst = make([]byte, 3)
	n, err := encoder.DecodeInto(dst, "foo")
	require.NoError(t, err)
	require.Equal(t, "foo", string(dst[:n]))
}

func Test_BitEncoderTrailingBits(t *testing.T) {
	for _, v := range []struct {
		encoder   *BitEncoder
		input     string
		canonical string
	}{
		{Base32Encoding, "mzxw7", "mzxw6"},
		{Base32PadEncoding, "mzxw7===", "mzxw6==="},
		{Base32HexEncoding, "cpnmv", "cpnmu"},
		{Base32HexPadUpperEncoding, "CPNMV===", "CPNMU==="},
		{Base32ZEncoding, "c3zs8", "c3zs6"},
		{Base32Encoding, "mb", "ma"},
		{Base64Encoding, "Zm9vYh", "Zm9vYg"},
		{Base64UrlPadEncoding, "Zm9vYh==", "Zm9vYg=="},
	} {
		_, err := v.encoder.Decode(v.input)
		require.ErrorIs(t, err, ErrInvalidLength, "%v must not accept %q", v.encoder, v.input)

		dst := make([]byte, 16)
		_, err = v.encoder.DecodeInto(dst, v.input)
		require.ErrorIs(t, err, ErrInvalidLength, "%v must not accept %q", v.encoder, v.input)

		decoded, err := v.encoder.Decode(v.canonical)
		require.NoError(t, err)
		require.Equal(t, v.canonical, v.encoder.Encode(decoded))
	}
}

// Every symbol count that does not end on a whole byte is rejected by both decode paths
func Test_BitEncoderTruncated(t *testing.T) {
	for _, encoder := range bitEncoders {
		encoded := encoder.Encode(encoderTest)
		for n := 0; n <= len(encoded); n++ {
			input := encoded[:n]
			_, err := encoder.Decode(input)

			dst := make([]byte, len(encoderTest)+16)
			_, errInto := encoder.DecodeInto(dst, input)

			if err == nil {
				require.NoError(t, errInto, "%v: %q", encoder, input)
				continue
			}
			require.Error(t, errInto, "%v: %q", encoder, input)
		}

		for _, n := range []int{1, 3, 6} {
			if encoder.Alphabet().Size() != 32 || encoder.Padded() {
				continue
			}
			_, err := encoder.Decode(encoded[:8+n])
			require.ErrorIs(t, err, ErrInvalidLength, "%v: %d trailing symbols", encoder, n)
		}
	}
}
