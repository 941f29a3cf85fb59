package version

import (
	"bytes"
	"testing"

	"github.com/bokysan/multibase/internal/version"
	"github.com/stretchr/testify/require"
)

func Test_VersionCommand(t *testing.T) {
	defer func(tag, commit string) {
		version.GitTag, version.GitCommit = tag, commit
	}(version.GitTag, version.GitCommit)
	version.GitTag = "v1.2.3"
	version.GitCommit = "0b5ed7a"

	out := &bytes.Buffer{}
	c := NewCommand()
	c.out = out
	require.NoError(t, c.Execute(nil))

	require.Contains(t, out.String(), version.Banner())
	require.Contains(t, out.String(), version.Author)
	require.Contains(t, out.String(), "v1.2.3")
	require.Contains(t, out.String(), "0b5ed7a")
	require.Contains(t, out.String(), " Git tag     ")
}
