package decode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bokysan/multibase"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func newTestCommand(input string) (*Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	c := NewCommand()
	c.in = strings.NewReader(input)
	c.out = out
	return c, out
}

func Test_DecodeArguments(t *testing.T) {
	c, out := newTestCommand("")
	require.NoError(t, c.Execute([]string{"zCn8eVZg", "f666f6f"}))
	require.Equal(t, "hellofoo", out.String())
}

func Test_DecodeStdin(t *testing.T) {
	c, out := newTestCommand("z1117paNL19xttacUY\r\n\n")
	c.Format = FormatHex
	require.NoError(t, c.Execute(nil))
	require.Equal(t, "000000796573206d616e692021\n", out.String())
}

func Test_DecodeDump(t *testing.T) {
	c, out := newTestCommand("zCn8eVZg")
	c.Format = FormatDump
	require.NoError(t, c.Execute(nil))
	require.Contains(t, out.String(), "|hello|")
}

func Test_DecodeErrors(t *testing.T) {
	c, out := newTestCommand("")
	err := c.Execute([]string{"z7pa_L19xttacUY", "f666f6f", "?abc", ""})
	require.Error(t, err)
	require.Equal(t, "foo", out.String(), "valid inputs are still decoded")

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 3)
	require.ErrorIs(t, merr.Errors[0], multibase.ErrInvalidBaseString)
	require.ErrorIs(t, merr.Errors[1], multibase.ErrUnknownBase)
	require.ErrorIs(t, merr.Errors[2], multibase.ErrInvalidBaseString)
}
