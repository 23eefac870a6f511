package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ecohubks/ecohub/internal/hub/domain"
	"github.com/ecohubks/ecohub/internal/hub/store"
	"github.com/ecohubks/ecohub/internal/hub/store/drivers/sqlite"
	"github.com/ecohubks/ecohub/pkg/cryptox"
	"github.com/ecohubks/ecohub/pkg/idx"
	"github.com/ecohubks/ecohub/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "ecohub-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// seedRoles inserts the three enumerated roles and returns them by name.
func seedRoles(t *testing.T, st store.Store) map[string]domain.Role {
	t.Helper()

	ctx := context.Background()
	out := make(map[string]domain.Role)
	for _, name := range domain.KnownRoleNames() {
		role := domain.Role{ID: idx.New().String(), Name: name}
		require.NoError(t, st.Roles().CreateRole(ctx, role))
		out[name] = role
	}
	return out
}

func seedUser(t *testing.T, st store.Store, email, password, roleID string) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		DisplayName:  "Test User",
		PasswordHash: hash,
		RoleID:       roleID,
		Locale:       "sq",
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user
}

func newTestCodec(t *testing.T) *jwtx.Codec {
	t.Helper()

	key := make([]byte, jwtx.KeyLength)
	for i := range key {
		key[i] = byte(i)
	}
	codec, err := jwtx.NewCodec(key, "ecohub-test")
	require.NoError(t, err)
	return codec
}
