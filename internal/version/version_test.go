package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_AppVersion(t *testing.T) {
	defer func(tag, v string) {
		GitTag, Version = tag, v
	}(GitTag, Version)

	GitTag, Version = "", ""
	require.Equal(t, UnknownVersion, AppVersion())

	Version = "1.0.0"
	require.Equal(t, "1.0.0", AppVersion())

	GitTag = "v1.0.1"
	require.Equal(t, "v1.0.1", AppVersion())
}

func Test_Banner(t *testing.T) {
	require.Equal(t, "MULTIBASE - Self-describing base encodings", Banner())
}
