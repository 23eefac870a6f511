package localex_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecohubks/ecohub/pkg/localex"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("supported prefixes resolve to themselves", func(t *testing.T) {
		for _, loc := range localex.Supported {
			require.Equal(t, loc, localex.Resolve("/"+string(loc)+"/marketplace"))
			require.Equal(t, loc, localex.Resolve("/"+string(loc)))
		}
	})

	t.Run("missing or foreign prefixes resolve to default", func(t *testing.T) {
		cases := []string{
			"",
			"/",
			"/admin/users",
			"/fr/home",
			"/de",
			"/english/home",
			"/EN/home",
			"/e!/home",
		}
		for _, path := range cases {
			require.Equal(t, localex.Default, localex.Resolve(path), "path %q", path)
		}
	})
}

func TestSplit(t *testing.T) {
	t.Parallel()

	loc, rest, ok := localex.Split("/en/admin/users")
	require.True(t, ok)
	require.Equal(t, localex.English, loc)
	require.Equal(t, "/admin/users", rest)

	// Unsupported two-letter segment is stripped and coerced to default.
	loc, rest, ok = localex.Split("/fr/home")
	require.False(t, ok)
	require.Equal(t, localex.Default, loc)
	require.Equal(t, "/home", rest)

	// Non locale-shaped lead segment stays in the remainder.
	loc, rest, ok = localex.Split("/admin/users")
	require.False(t, ok)
	require.Equal(t, localex.Default, loc)
	require.Equal(t, "/admin/users", rest)
}

func TestNegotiate(t *testing.T) {
	t.Parallel()

	require.Equal(t, localex.Default, localex.Negotiate(""))
	require.Equal(t, localex.English, localex.Negotiate("en-US,en;q=0.9"))
	require.Equal(t, localex.Albanian, localex.Negotiate("sq-AL"))
	require.Equal(t, localex.Default, localex.Negotiate("fr-FR,de;q=0.8"))
}

func TestLoginPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/sq/login", localex.LoginPath(localex.Albanian, ""))
	require.Equal(t,
		"/en/login?message=Please+sign+in+to+continue",
		localex.LoginPath(localex.English, localex.Message(localex.English, localex.MsgLoginRequired)),
	)
}

func TestRewriteLegacy(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"/marketplace-v2":        "/marketplace",
		"/marketplace-v2/123":    "/marketplace/123",
		"/items/456":             "/marketplace/456",
		"/ngo":                   "/directory",
		"/blog/circular-economy": "/articles/circular-economy",
		"/marketplace":           "/marketplace",
		"/items-wanted":          "/items-wanted", // no rewrite across segment boundaries
		"/":                      "/home",
		"":                       "/home",
	}
	for in, want := range cases {
		require.Equal(t, want, localex.RewriteLegacy(in), "path %q", in)
	}
}

func TestCanonicalizeAlwaysLocalePrefixed(t *testing.T) {
	t.Parallel()

	for _, loc := range localex.Supported {
		for _, path := range []string{"/marketplace-v2", "/profile", "/", "/unknown/thing"} {
			got := localex.Canonicalize(loc, path)
			require.Regexp(t, "^/(en|sq)/", got)
		}
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Locale", string(localex.FromContext(r.Context())))
		w.WriteHeader(http.StatusOK)
	})
	handler := localex.Middleware("/livez", "/v1")(next)

	do := func(path, acceptLanguage string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if acceptLanguage != "" {
			req.Header.Set("Accept-Language", acceptLanguage)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("canonical path passes through with locale context", func(t *testing.T) {
		rec := do("/en/marketplace", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "en", rec.Header().Get("X-Locale"))
	})

	t.Run("locale-less path is redirected to default locale", func(t *testing.T) {
		rec := do("/admin/users", "")
		require.Equal(t, http.StatusPermanentRedirect, rec.Code)
		require.Equal(t, "/sq/admin/users", rec.Header().Get("Location"))
	})

	t.Run("accept-language steers locale-less paths", func(t *testing.T) {
		rec := do("/marketplace", "en-US,en;q=0.9")
		require.Equal(t, http.StatusPermanentRedirect, rec.Code)
		require.Equal(t, "/en/marketplace", rec.Header().Get("Location"))
	})

	t.Run("unsupported locale segment is coerced to default", func(t *testing.T) {
		rec := do("/fr/home", "en")
		require.Equal(t, http.StatusPermanentRedirect, rec.Code)
		require.Equal(t, "/sq/home", rec.Header().Get("Location"))
	})

	t.Run("legacy prefix is rewritten under the same locale", func(t *testing.T) {
		rec := do("/en/marketplace-v2", "")
		require.Equal(t, http.StatusPermanentRedirect, rec.Code)
		require.Equal(t, "/en/marketplace", rec.Header().Get("Location"))
	})

	t.Run("query strings survive canonicalization", func(t *testing.T) {
		rec := do("/en/items/42?ref=email", "")
		require.Equal(t, http.StatusPermanentRedirect, rec.Code)
		require.Equal(t, "/en/marketplace/42?ref=email", rec.Header().Get("Location"))
	})

	t.Run("root redirects to localized home", func(t *testing.T) {
		rec := do("/", "")
		require.Equal(t, http.StatusPermanentRedirect, rec.Code)
		require.Equal(t, "/sq/home", rec.Header().Get("Location"))
	})

	t.Run("exempt prefixes bypass locale handling", func(t *testing.T) {
		rec := do("/livez", "")
		require.Equal(t, http.StatusOK, rec.Code)
		rec = do("/v1/mfa/totp/enroll", "")
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
