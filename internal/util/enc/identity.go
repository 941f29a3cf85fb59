package enc

import (
	"fmt"

	"github.com/pkg/errors"
)

// -------------------------------------------------------

// IdentityEncoder encodes 8 bytes to 8 characters -- it simply does not do any translation whatsoever
type IdentityEncoder struct {
}

func (b *IdentityEncoder) Name() string {
	return "Identity"
}

func (b *IdentityEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), 256)
}

func (b *IdentityEncoder) Alphabet() *Alphabet {
	return nil
}

func (b *IdentityEncoder) EncodedLen(n int) int {
	return n
}

func (b *IdentityEncoder) DecodedLen(n int) int {
	return n
}

func (b *IdentityEncoder) Encode(data []byte) string {
	return string(data)
}

func (b *IdentityEncoder) Decode(data string) ([]byte, error) {
	return []byte(data), nil
}

func (b *IdentityEncoder) EncodeInto(dst, src []byte) (int, error) {
	if len(dst) < len(src) {
		return 0, errors.Wrapf(ErrContainerTooSmall, "%s: have %d bytes, need %d", b.Name(), len(dst), len(src))
	}
	return copy(dst, src), nil
}

func (b *IdentityEncoder) DecodeInto(dst []byte, src string) (int, error) {
	if len(dst) < len(src) {
		return 0, errors.Wrapf(ErrContainerTooSmall, "%s: have %d bytes, need %d", b.Name(), len(dst), len(src))
	}
	return copy(dst, src), nil
}
