package hub_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ecohubks/ecohub/internal/hub/domain"
	"github.com/ecohubks/ecohub/internal/hub/guard"
	hubhttp "github.com/ecohubks/ecohub/internal/hub/http"
	"github.com/ecohubks/ecohub/internal/hub/service"
	"github.com/ecohubks/ecohub/internal/hub/store/drivers/sqlite"
	"github.com/ecohubks/ecohub/pkg/cryptox"
	"github.com/ecohubks/ecohub/pkg/hubsdk"
	"github.com/ecohubks/ecohub/pkg/idx"
	"github.com/ecohubks/ecohub/pkg/jwtx"
	"github.com/ecohubks/ecohub/pkg/slogx"
	"github.com/stretchr/testify/require"
)

/*
 * End-to-end tests drive the full router (locale middleware, guard, rate
 * limits, handlers) over a real HTTP listener backed by an in-memory SQLite
 * database. No mocks anywhere on the request path.
 */

const (
	adminEmail    = "admin@ecohub.test"
	adminPassword = "Admin123!"

	memberEmail    = "blerta@ecohub.test"
	memberPassword = "Member123!"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "ecohub-e2e")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type hubEnv struct {
	URL   string
	Store *sqlite.Store
}

// startHub boots a fully wired hub on an ephemeral port. The database is
// seeded with one Admin and one Individual account.
func startHub(t *testing.T) *hubEnv {
	t.Helper()
	ctx := context.Background()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slogx.New(slogx.Config{
		Service: "ecohub",
		Version: "test",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	bootstrap := &service.BootstrapService{
		Store:         st,
		Logger:        logger,
		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
	}
	require.NoError(t, bootstrap.EnsureSeedData(ctx))

	// Second account with the default Individual role
	individualRole, err := st.Roles().GetRoleByName(ctx, domain.RoleIndividual)
	require.NoError(t, err)
	hash, err := cryptox.HashPassword(memberPassword)
	require.NoError(t, err)
	require.NoError(t, st.Users().CreateUser(ctx, domain.User{
		ID:           idx.New().String(),
		Email:        memberEmail,
		DisplayName:  "Blerta",
		PasswordHash: hash,
		RoleID:       individualRole.ID,
		Locale:       "sq",
	}))

	key := make([]byte, jwtx.KeyLength)
	for i := range key {
		key[i] = byte(i + 1)
	}
	codec, err := jwtx.NewCodec(key, "ecohub-e2e")
	require.NoError(t, err)

	authService := &service.AuthService{Store: st, Codec: codec}
	rolesService := &service.RolesService{Store: st}

	g := &guard.Guard{Sessions: authService, Roles: rolesService}

	router := hubhttp.NewRouter(g, "test", false, st, logger)
	router.AuthService = authService
	router.UserService = &service.UserService{Store: st}
	router.RolesService = rolesService
	router.MFAService = &service.MFAService{Store: st, Issuer: "ecohub-e2e"}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &hubEnv{URL: srv.URL, Store: st}
}

func newClient(t *testing.T, env *hubEnv) *hubsdk.Client {
	t.Helper()
	client, err := hubsdk.NewClient(env.URL)
	require.NoError(t, err)
	return client
}

// loginAs authenticates the client and asserts the redirect landed on the
// locale home page.
func loginAs(t *testing.T, client *hubsdk.Client, locale, email, password string) {
	t.Helper()
	resp, err := client.Login(t.Context(), locale, email, password, "")
	require.NoError(t, err)
	require.Equal(t, 303, resp.StatusCode)
	require.Equal(t, "/"+locale+"/home", resp.Location)
}
