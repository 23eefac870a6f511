package localex

import (
	"net/http"
	"strings"
)

// Middleware canonicalizes user-facing request paths before routing. Requests
// already on a canonical "/{locale}/..." path pass through with the locale
// attached to the context; anything else (missing locale, unsupported locale
// segment, legacy prefix) is redirected once to its canonical form.
//
// Paths under an exempt prefix (system probes, API surfaces, docs) bypass
// locale handling entirely.
func Middleware(exempt ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			for _, p := range exempt {
				if path == p || strings.HasPrefix(path, p+"/") {
					next.ServeHTTP(w, r)
					return
				}
			}

			loc, rest, hadLocale := Split(path)
			canonical := RewriteLegacy(rest)

			if !hadLocale {
				// No locale segment at all: honor the Accept-Language
				// header. An unsupported segment was already coerced to
				// Default by Split; keep that coercion.
				if rest == path {
					loc = Negotiate(r.Header.Get("Accept-Language"))
				}
			}

			if !hadLocale || canonical != rest {
				target := Prefix(loc, canonical)
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusPermanentRedirect)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), loc)))
		})
	}
}
