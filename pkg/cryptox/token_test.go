package cryptox_test

import (
	"os"
	"sync"
	"testing"

	"github.com/ecohubks/ecohub/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

var (
	tempDirOnce sync.Once
	tempDir     string
)

// testTempDir is shared with TestMain, which runs before testing.T is
// available, so it cannot use t.TempDir.
func testTempDir() string {
	tempDirOnce.Do(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "cryptox-test-*")
		if err != nil {
			panic(err)
		}
	})
	return tempDir
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := cryptox.GenerateToken(0)
		require.Error(t, err)
		_, err = cryptox.GenerateToken(-1)
		require.Error(t, err)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		a, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)
		b, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)
		require.NotEqual(t, a, b)
		require.Len(t, a, 43) // 32 bytes base64url, no padding
	})
}

func TestFingerprintToken(t *testing.T) {
	t.Parallel()

	fp := cryptox.FingerprintToken("session-token")
	require.Equal(t, fp, cryptox.FingerprintToken("session-token"))
	require.NotEqual(t, fp, cryptox.FingerprintToken("other-token"))
	require.Len(t, fp, 43)
}
