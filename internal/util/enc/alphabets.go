package enc

// Symbol sets of the supported bases
const (
	cb2  = "01"
	cb8  = "01234567"
	cb10 = "0123456789"

	cb16      = "0123456789abcdef"
	cb16Ucase = "0123456789ABCDEF"

	cb32         = "abcdefghijklmnopqrstuvwxyz234567"
	cb32Ucase    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	cb32Hex      = "0123456789abcdefghijklmnopqrstuv"
	cb32HexUcase = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
	cb32Z        = "ybndrfg8ejkmcpqxot1uwisza345h769"

	cb36      = "0123456789abcdefghijklmnopqrstuvwxyz"
	cb36Ucase = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Bitcoin's alphabet as defined in their Base58Check encoding
	cb58Btc = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	// Flickr's alphabet for creating short urls from photo ids
	cb58Flickr = "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

	cb64    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	cb64Url = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// Radix encoders. These are built once and are safe for concurrent use.
var (
	Base2Encoding        = MustRadixEncoder("Base2", cb2, 2)
	Base8Encoding        = MustRadixEncoder("Base8", cb8, 8)
	Base10Encoding       = MustRadixEncoder("Base10", cb10, 10)
	Base36Encoding       = MustRadixEncoder("Base36", cb36, 36)
	Base36UpperEncoding  = MustRadixEncoder("Base36Upper", cb36Ucase, 36)
	Base58BtcEncoding    = MustRadixEncoder("Base58Btc", cb58Btc, 58)
	Base58FlickrEncoding = MustRadixEncoder("Base58Flickr", cb58Flickr, 58)
)

// Bit-aligned encoders
var (
	Base16Encoding            = NewBase16Encoder("Base16", cb16)
	Base16UpperEncoding       = NewBase16Encoder("Base16Upper", cb16Ucase)
	Base32Encoding            = NewBase32Encoder("Base32", cb32, false)
	Base32UpperEncoding       = NewBase32Encoder("Base32Upper", cb32Ucase, false)
	Base32PadEncoding         = NewBase32Encoder("Base32Pad", cb32, true)
	Base32PadUpperEncoding    = NewBase32Encoder("Base32PadUpper", cb32Ucase, true)
	Base32HexEncoding         = NewBase32Encoder("Base32Hex", cb32Hex, false)
	Base32HexUpperEncoding    = NewBase32Encoder("Base32HexUpper", cb32HexUcase, false)
	Base32HexPadEncoding      = NewBase32Encoder("Base32HexPad", cb32Hex, true)
	Base32HexPadUpperEncoding = NewBase32Encoder("Base32HexPadUpper", cb32HexUcase, true)
	Base32ZEncoding           = NewBase32Encoder("Base32Z", cb32Z, false)
	Base64Encoding            = NewBase64Encoder("Base64", cb64, false)
	Base64PadEncoding         = NewBase64Encoder("Base64Pad", cb64, true)
	Base64UrlEncoding         = NewBase64Encoder("Base64Url", cb64Url, false)
	Base64UrlPadEncoding      = NewBase64Encoder("Base64UrlPad", cb64Url, true)
)

// IdentityEncoding passes the bytes through untouched
var IdentityEncoding = &IdentityEncoder{}
