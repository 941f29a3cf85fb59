package multibase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bokysan/multibase/internal/util/enc"
	"github.com/pkg/errors"
)

// Base is one of the encodings registered in the multibase table. The set is closed: values
// outside of the declared constants are not valid bases.
type Base uint8

const (
	// Identity is 8-bit binary; encoder and decoder keep the data unmodified
	Identity Base = iota
	// Base2 is a radix encoding with alphabet `01`
	Base2
	// Base8 is a radix encoding with alphabet `01234567`
	Base8
	// Base10 is a radix encoding with alphabet `0123456789`
	Base10
	// Base16 is lower case hexadecimal
	Base16
	// Base16Upper is upper case hexadecimal
	Base16Upper
	// Base32Hex is RFC4648 base32hex without padding, lower case (alphabet: 0123456789abcdefghijklmnopqrstuv)
	Base32Hex
	// Base32HexUpper is RFC4648 base32hex without padding, upper case
	Base32HexUpper
	// Base32HexPad is RFC4648 base32hex with padding, lower case
	Base32HexPad
	// Base32HexPadUpper is RFC4648 base32hex with padding, upper case
	Base32HexPadUpper
	// Base32 is RFC4648 base32 without padding, lower case (alphabet: abcdefghijklmnopqrstuvwxyz234567)
	Base32
	// Base32Upper is RFC4648 base32 without padding, upper case
	Base32Upper
	// Base32Pad is RFC4648 base32 with padding, lower case
	Base32Pad
	// Base32PadUpper is RFC4648 base32 with padding, upper case
	Base32PadUpper
	// Base32Z is z-base-32 as used by Tahoe-LAFS (alphabet: ybndrfg8ejkmcpqxot1uwisza345h769)
	Base32Z
	// Base36 is a radix encoding with alphabet `0123456789abcdefghijklmnopqrstuvwxyz`
	Base36
	// Base36Upper is a radix encoding with alphabet `0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ`
	Base36Upper
	// Base58Flickr is a radix encoding using Flickr's short url alphabet
	Base58Flickr
	// Base58Btc is a radix encoding using Bitcoin's alphabet
	Base58Btc
	// Base64 is RFC4648 base64 without padding
	Base64
	// Base64Pad is RFC4648 base64 with padding
	Base64Pad
	// Base64Url is RFC4648 url-safe base64 without padding
	Base64Url
	// Base64UrlPad is RFC4648 url-safe base64 with padding
	Base64UrlPad

	baseCount = int(Base64UrlPad) + 1
)

// Kind tells how a base converts bytes into symbols
type Kind uint8

const (
	// KindIdentity passes bytes through
	KindIdentity Kind = iota
	// KindRadix treats the input as one big number, see enc.RadixEncoder
	KindRadix
	// KindBitAligned maps fixed-width bit groups onto symbols, see enc.BitEncoder
	KindBitAligned
)

func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindRadix:
		return "radix"
	case KindBitAligned:
		return "bit-aligned"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// descriptor is the immutable registry entry of a base
type descriptor struct {
	code    rune
	name    string
	kind    Kind
	encoder enc.Encoder
}

var (
	byCode = make(map[rune]Base, baseCount)
	byName = make(map[string]Base, baseCount)
)

func init() {
	for _, b := range Bases() {
		d := b.descriptor()
		if other, ok := byCode[d.code]; ok {
			panic(fmt.Sprintf("multibase: %v and %v share the code %q", other, b, d.code))
		}
		byCode[d.code] = b
		byName[normalizeName(d.name)] = b
	}
}

// descriptor is the single place where a base is mapped onto its properties. Every base must have
// a case here.
func (b Base) descriptor() *descriptor {
	switch b {
	case Identity:
		return &descriptor{0x00, "identity", KindIdentity, enc.IdentityEncoding}
	case Base2:
		return &descriptor{'0', "base2", KindRadix, enc.Base2Encoding}
	case Base8:
		return &descriptor{'7', "base8", KindRadix, enc.Base8Encoding}
	case Base10:
		return &descriptor{'9', "base10", KindRadix, enc.Base10Encoding}
	case Base16:
		return &descriptor{'f', "base16", KindBitAligned, enc.Base16Encoding}
	case Base16Upper:
		return &descriptor{'F', "base16upper", KindBitAligned, enc.Base16UpperEncoding}
	case Base32Hex:
		return &descriptor{'v', "base32hex", KindBitAligned, enc.Base32HexEncoding}
	case Base32HexUpper:
		return &descriptor{'V', "base32hexupper", KindBitAligned, enc.Base32HexUpperEncoding}
	case Base32HexPad:
		return &descriptor{'t', "base32hexpad", KindBitAligned, enc.Base32HexPadEncoding}
	case Base32HexPadUpper:
		return &descriptor{'T', "base32hexpadupper", KindBitAligned, enc.Base32HexPadUpperEncoding}
	case Base32:
		return &descriptor{'b', "base32", KindBitAligned, enc.Base32Encoding}
	case Base32Upper:
		return &descriptor{'B', "base32upper", KindBitAligned, enc.Base32UpperEncoding}
	case Base32Pad:
		return &descriptor{'c', "base32pad", KindBitAligned, enc.Base32PadEncoding}
	case Base32PadUpper:
		return &descriptor{'C', "base32padupper", KindBitAligned, enc.Base32PadUpperEncoding}
	case Base32Z:
		return &descriptor{'h', "base32z", KindBitAligned, enc.Base32ZEncoding}
	case Base36:
		return &descriptor{'k', "base36", KindRadix, enc.Base36Encoding}
	case Base36Upper:
		return &descriptor{'K', "base36upper", KindRadix, enc.Base36UpperEncoding}
	case Base58Flickr:
		return &descriptor{'Z', "base58flickr", KindRadix, enc.Base58FlickrEncoding}
	case Base58Btc:
		return &descriptor{'z', "base58btc", KindRadix, enc.Base58BtcEncoding}
	case Base64:
		return &descriptor{'m', "base64", KindBitAligned, enc.Base64Encoding}
	case Base64Pad:
		return &descriptor{'M', "base64pad", KindBitAligned, enc.Base64PadEncoding}
	case Base64Url:
		return &descriptor{'u', "base64url", KindBitAligned, enc.Base64UrlEncoding}
	case Base64UrlPad:
		return &descriptor{'U', "base64urlpad", KindBitAligned, enc.Base64UrlPadEncoding}
	default:
		panic(fmt.Sprintf("multibase: invalid base %d", uint8(b)))
	}
}

// Bases returns all registered bases, in registry order
func Bases() []Base {
	res := make([]Base, baseCount)
	for i := range res {
		res[i] = Base(i)
	}
	return res
}

// FromCode will find the base for the given code character
func FromCode(code rune) (Base, error) {
	if b, ok := byCode[code]; ok {
		return b, nil
	}
	return Identity, errors.WithStack(&UnknownBaseError{Code: code})
}

// FromName will find the base by its name. Matching ignores case, dashes and underscores, so
// "base58btc", "Base58BTC" and "base58-btc" all resolve to Base58Btc.
func FromName(name string) (Base, error) {
	if b, ok := byName[normalizeName(name)]; ok {
		return b, nil
	}
	return Identity, errors.Wrapf(ErrUnknownBase, "no base named %q", name)
}

// Lookup resolves a base given either by name (see FromName) or by its single code character
func Lookup(nameOrCode string) (Base, error) {
	if b, err := FromName(nameOrCode); err == nil {
		return b, nil
	}
	if code, size := utf8.DecodeRuneInString(nameOrCode); size > 0 && size == len(nameOrCode) {
		return FromCode(code)
	}
	return Identity, errors.Wrapf(ErrUnknownBase, "%q is neither a base name nor a code", nameOrCode)
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "-", "")
	return strings.ReplaceAll(name, "_", "")
}

// Valid returns true if b is one of the registered bases
func (b Base) Valid() bool {
	return int(b) < baseCount
}

// Code returns the character prepended to strings encoded in this base
func (b Base) Code() rune {
	return b.descriptor().code
}

// Name returns the canonical (multibase table) name of this base
func (b Base) Name() string {
	return b.descriptor().name
}

func (b Base) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Base(%d)", uint8(b))
	}
	return b.Name()
}

// Kind tells which codec family this base belongs to
func (b Base) Kind() Kind {
	return b.descriptor().kind
}

// Alphabet returns the symbols of this base, or an empty string for Identity
func (b Base) Alphabet() string {
	if a := b.descriptor().encoder.Alphabet(); a != nil {
		return a.String()
	}
	return ""
}

// Encode the data without the leading code character. It never fails.
func (b Base) Encode(data []byte) string {
	return b.descriptor().encoder.Encode(data)
}

// Decode the body of an encoded string (without the leading code character)
func (b Base) Decode(data string) ([]byte, error) {
	res, err := b.descriptor().encoder.Decode(data)
	if err != nil {
		return nil, &InvalidBaseStringError{Base: b, Err: err}
	}
	return res, nil
}

// EncodedLen returns the number of characters (without the code) needed to encode n bytes. For
// radix bases this is an upper estimate; for others it is exact.
func (b Base) EncodedLen(n int) int {
	return b.descriptor().encoder.EncodedLen(n)
}

// DecodedLen returns the number of bytes needed to decode n characters (without the code). For
// radix bases this is an estimate, which may be too small for bodies starting with many leader
// symbols.
func (b Base) DecodedLen(n int) int {
	return b.descriptor().encoder.DecodedLen(n)
}

// EncodeInto encodes the data (without the leading code character) into dst, returning the number
// of bytes written.
func (b Base) EncodeInto(dst, data []byte) (int, error) {
	return b.descriptor().encoder.EncodeInto(dst, data)
}

// DecodeInto decodes the body of an encoded string into dst, returning the number of bytes written.
func (b Base) DecodeInto(dst []byte, data string) (int, error) {
	n, err := b.descriptor().encoder.DecodeInto(dst, data)
	if err != nil {
		if errors.Is(err, ErrContainerTooSmall) {
			return 0, err
		}
		return 0, &InvalidBaseStringError{Base: b, Err: err}
	}
	return n, nil
}
