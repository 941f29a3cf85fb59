/*
Package multibase implements self-describing base encodings.

A multibase string is a single code character followed by the data encoded in the base the code
names:

	s := multibase.Encode(multibase.Base58Btc, []byte("hello")) // "zCn8eVZg"
	base, data, err := multibase.Decode(s)

The registry of bases is closed. Bases are either bit-aligned (base16, base32 and base64
variants, which follow RFC4648), radix (base2, base8, base10, base36 and base58, which treat the
input as one big-endian number and keep leading zero bytes as leader symbols) or the identity.

Decoding is strict: there is no case folding, whitespace is rejected, padding must match
the base's variant, and bit-aligned bodies must end on a whole byte with unused bits set to zero.
*/
package multibase
