package platform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultModelDirForLinuxXDG(t *testing.T) {
	t.Parallel()

	dir, err := DefaultModelDirFor("linux", "/home/u", "/home/u/.data")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/home/u/.data", "voicebridge", "models"), dir)
}

func TestDefaultModelDirForLinuxFallback(t *testing.T) {
	t.Parallel()

	dir, err := DefaultModelDirFor("linux", "/home/u", "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/home/u", ".local", "share", "voicebridge", "models"), dir)
}

func TestDefaultModelDirForDarwin(t *testing.T) {
	t.Parallel()

	dir, err := DefaultModelDirFor("darwin", "/Users/u", "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/Users/u", "Library", "Application Support", "voicebridge", "models"), dir)
}

func TestDefaultModelDirForUnsupportedOS(t *testing.T) {
	t.Parallel()

	_, err := DefaultModelDirFor("plan9", "/home/u", "")
	require.Error(t, err)
}

func TestDefaultModelDirForEmptyHome(t *testing.T) {
	t.Parallel()

	_, err := DefaultModelDirFor("linux", "", "")
	require.Error(t, err)
}

func TestResolveModelDirOverride(t *testing.T) {
	t.Parallel()

	dir, err := ResolveModelDir("/opt/models/")
	require.NoError(t, err)
	require.Equal(t, filepath.Clean("/opt/models"), dir)
}
