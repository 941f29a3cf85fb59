package addr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ResolveHostAddress(t *testing.T) {
	address, err := ResolveHostAddress("127.0.0.1:8080")
	require.NoError(t, err)
	require.Equal(t, 8080, address.Port)
	require.Equal(t, "127.0.0.1", address.IP.String())

	address, err = ResolveHostAddress(":9000")
	require.NoError(t, err)
	require.Equal(t, 9000, address.Port)

	_, err = ResolveHostAddress("127.0.0.1:notaport")
	require.Error(t, err)
}
