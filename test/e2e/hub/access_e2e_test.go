package hub_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnprefixedProtectedPathRedirectsToAlbanianLogin(t *testing.T) {
	env := startHub(t)
	client := newClient(t, env)
	ctx := t.Context()

	// First hop: locale canonicalization
	resp, err := client.Get(ctx, "/admin/users", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusPermanentRedirect, resp.StatusCode)
	require.Equal(t, "/sq/admin/users", resp.Location)

	// Second hop: the gate denies without a session
	resp, err = client.Get(ctx, resp.Location, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.True(t, strings.HasPrefix(resp.Location, "/sq/login?message="),
		"expected locale login redirect, got %s", resp.Location)
}

func TestIndividualRoleIsDeniedAdminPages(t *testing.T) {
	env := startHub(t)
	client := newClient(t, env)
	ctx := t.Context()

	loginAs(t, client, "en", memberEmail, memberPassword)

	resp, err := client.Get(ctx, "/en/admin/users", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.True(t, strings.HasPrefix(resp.Location, "/en/login?message="),
		"expected locale login redirect, got %s", resp.Location)
}

func TestAdminRoleIsAllowedAdminPages(t *testing.T) {
	env := startHub(t)
	client := newClient(t, env)

	loginAs(t, client, "en", adminEmail, adminPassword)

	list, err := client.ListUsers(t.Context(), "en", 50, 0)
	require.NoError(t, err)
	require.EqualValues(t, 2, list.Total)

	emails := make([]string, 0, len(list.Users))
	for _, u := range list.Users {
		emails = append(emails, u.Email)
	}
	require.Contains(t, emails, adminEmail)
	require.Contains(t, emails, memberEmail)
}

func TestLegacyMarketplacePathIsRewritten(t *testing.T) {
	env := startHub(t)
	client := newClient(t, env)

	resp, err := client.Get(t.Context(), "/en/marketplace-v2", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusPermanentRedirect, resp.StatusCode)
	require.Equal(t, "/en/marketplace", resp.Location)
}

func TestUnsupportedLocaleCoercesToDefault(t *testing.T) {
	env := startHub(t)
	client := newClient(t, env)

	resp, err := client.Get(t.Context(), "/fr/home", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusPermanentRedirect, resp.StatusCode)
	require.Equal(t, "/sq/home", resp.Location)
}

func TestAcceptLanguageNegotiation(t *testing.T) {
	env := startHub(t)
	client := newClient(t, env)
	ctx := t.Context()

	t.Run("english preference", func(t *testing.T) {
		resp, err := client.Get(ctx, "/home", map[string]string{
			"Accept-Language": "en-GB,en;q=0.9",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusPermanentRedirect, resp.StatusCode)
		require.Equal(t, "/en/home", resp.Location)
	})

	t.Run("no header falls back to Albanian", func(t *testing.T) {
		resp, err := client.Get(ctx, "/home", nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusPermanentRedirect, resp.StatusCode)
		require.Equal(t, "/sq/home", resp.Location)
	})

	t.Run("query string survives the redirect", func(t *testing.T) {
		resp, err := client.Get(ctx, "/marketplace?category=textiles", nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusPermanentRedirect, resp.StatusCode)
		require.Equal(t, "/sq/marketplace?category=textiles", resp.Location)
	})
}

func TestAdminCanChangeUserRole(t *testing.T) {
	env := startHub(t)
	client := newClient(t, env)
	ctx := t.Context()

	loginAs(t, client, "sq", adminEmail, adminPassword)

	list, err := client.ListUsers(ctx, "sq", 50, 0)
	require.NoError(t, err)

	var memberID string
	for _, u := range list.Users {
		if u.Email == memberEmail {
			memberID = u.UserID
		}
	}
	require.NotEmpty(t, memberID)

	resp, err := client.SetUserRole(ctx, "sq", memberID, "Organization")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list, err = client.ListUsers(ctx, "sq", 50, 0)
	require.NoError(t, err)
	for _, u := range list.Users {
		if u.UserID == memberID {
			require.Equal(t, "Organization", u.Role)
		}
	}

	t.Run("unknown role is rejected", func(t *testing.T) {
		resp, err := client.SetUserRole(ctx, "sq", memberID, "Superuser")
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
