package bases

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bokysan/multibase"
	"github.com/stretchr/testify/require"
)

func Test_BasesTable(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewCommand()
	c.out = out
	c.NoColor = true

	require.NoError(t, c.Execute(nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(multibase.Bases())+1)
	require.True(t, strings.HasPrefix(lines[0], "CODE"))
	require.NotContains(t, out.String(), "\x1b[")
	require.NotContains(t, out.String(), "ALPHABET")

	require.Contains(t, out.String(), "'z'    base58btc")
	require.Contains(t, out.String(), `'\x00' identity`)
	require.Contains(t, out.String(), "radix")
	require.Contains(t, out.String(), "bit-aligned")
}

func Test_BasesAlphabet(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewCommand()
	c.out = out
	c.Alphabet = true

	require.NoError(t, c.Execute(nil))
	require.Contains(t, out.String(), "ALPHABET")
	require.Contains(t, out.String(), multibase.Base58Btc.Alphabet())
	require.Contains(t, out.String(), Bold)
}
