package commands

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ReadInput(t *testing.T) {
	data, err := ReadInput(strings.NewReader("hello"), "")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), data)

	data, err = ReadInput(strings.NewReader("hello"), "-")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), data)

	dir, err := ioutil.TempDir("", "multibase")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "input.bin")
	require.NoError(t, ioutil.WriteFile(file, []byte{0, 1, 2}, 0600))

	data, err = ReadInput(strings.NewReader("ignored"), file)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 2}, data)

	_, err = ReadInput(nil, filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func Test_ReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("zCn8eVZg\r\n\nf666f6f\n m \n"), "")
	require.NoError(t, err)
	require.Equal(t, []string{"zCn8eVZg", "f666f6f", " m "}, lines)

	lines, err = ReadLines(strings.NewReader(""), "-")
	require.NoError(t, err)
	require.Len(t, lines, 0)
}
