package jwtx_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ecohubks/ecohub/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) *jwtx.Codec {
	t.Helper()
	key := bytes.Repeat([]byte{0x42}, jwtx.KeyLength)
	codec, err := jwtx.NewCodec(key, "ecohub-test")
	require.NoError(t, err)
	return codec
}

func TestNewCodecValidation(t *testing.T) {
	t.Parallel()

	_, err := jwtx.NewCodec([]byte("short"), "iss")
	require.Error(t, err)

	_, err = jwtx.NewCodec(bytes.Repeat([]byte{1}, jwtx.KeyLength), "")
	require.Error(t, err)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()
	codec := newTestCodec(t)

	raw, err := codec.Sign("sess-1", "user-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := codec.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "sess-1", claims.SessionID)
	require.Equal(t, "user-1", claims.Subject)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Parallel()
	codec := newTestCodec(t)

	raw, err := codec.Sign("sess-1", "user-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	_, err = codec.Verify(tampered)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()
	codec := newTestCodec(t)

	raw, err := codec.Sign("sess-1", "user-1", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = codec.Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	t.Parallel()

	other, err := jwtx.NewCodec(bytes.Repeat([]byte{0x7}, jwtx.KeyLength), "ecohub-test")
	require.NoError(t, err)

	raw, err := other.Sign("sess-1", "user-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = newTestCodec(t).Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestLoadOrGenerateKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "keys", "session.key")

	first, err := jwtx.LoadOrGenerateKey(path)
	require.NoError(t, err)
	require.Len(t, first, jwtx.KeyLength)

	// Second load returns the persisted key, not a new one.
	second, err := jwtx.LoadOrGenerateKey(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
