package enc

// Encoder is the contract shared by every codec, regardless of the way it converts bytes into symbols.
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string

	// Alphabet returns the symbol set used by the encoder or `nil` if the encoder accepts any byte
	Alphabet() *Alphabet

	// Encode will take an array of bytes and encode it using this encoder. It never fails.
	Encode([]byte) string

	// Decode is the reverse proces of encoding
	Decode(string) ([]byte, error)

	// EncodedLen returns the number of symbols needed to encode n bytes. For radix encoders this is
	// an upper estimate.
	EncodedLen(n int) int

	// DecodedLen returns the number of bytes needed to decode n symbols. For radix encoders this is
	// an estimate which may be too small for inputs starting with many leader symbols.
	DecodedLen(n int) int

	// EncodeInto encodes src into the caller-supplied buffer and returns the number of bytes written.
	// It fails with ErrContainerTooSmall instead of growing dst.
	EncodeInto(dst, src []byte) (int, error)

	// DecodeInto decodes src into the caller-supplied buffer and returns the number of bytes written.
	// It fails with ErrContainerTooSmall instead of growing dst.
	DecodeInto(dst []byte, src string) (int, error)
}
