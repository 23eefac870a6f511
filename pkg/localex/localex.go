// Package localex owns locale resolution and canonical path building for the
// hub's user-facing routes. Every user-facing path is served under a
// two-letter locale prefix; paths without one, or with a stale legacy prefix,
// are redirected to their canonical locale-prefixed form.
package localex

import (
	"context"
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported two-letter UI language code.
type Locale string

const (
	// Albanian is the default locale.
	Albanian Locale = "sq"
	English  Locale = "en"
)

// Default is the locale applied when a request carries no usable preference.
const Default = Albanian

// Supported is the fixed, ordered set of locales the hub serves.
var Supported = []Locale{Albanian, English}

// IsSupported reports whether code names a supported locale.
func IsSupported(code string) bool {
	for _, l := range Supported {
		if string(l) == code {
			return true
		}
	}
	return false
}

// Resolve extracts the locale from a request path. Paths of the form
// "/{code}/..." with a supported code resolve to that locale; anything else
// resolves to Default. The result is always a member of Supported.
func Resolve(path string) Locale {
	loc, _, ok := Split(path)
	if !ok {
		return Default
	}
	return loc
}

// Split separates a path into its locale and the remainder. The third return
// reports whether the path carried a supported locale prefix. A leading
// two-letter segment that is not supported is stripped and coerced to
// Default, so downstream code never sees an arbitrary locale value.
func Split(path string) (Locale, string, bool) {
	seg, rest := leadSegment(path)
	if !isLocaleShaped(seg) {
		return Default, path, false
	}
	if !IsSupported(seg) {
		return Default, rest, false
	}
	return Locale(seg), rest, true
}

// Negotiate picks a supported locale from an Accept-Language header value,
// falling back to Default when the header is absent or matches nothing.
func Negotiate(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return Default
	}
	_, index := language.MatchStrings(matcher, acceptLanguage)
	if index < 0 || index >= len(Supported) {
		return Default
	}
	return Supported[index]
}

var matcher = language.NewMatcher([]language.Tag{
	language.Albanian, // order mirrors Supported; first entry is the fallback
	language.English,
})

// Prefix returns path prefixed with the locale segment. The result always
// begins with "/{locale}/".
func Prefix(loc Locale, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "/" + string(loc) + path
}

// LoginPath builds the locale-prefixed login path carrying a human-readable
// message as a query parameter. Denied requests are redirected here.
func LoginPath(loc Locale, message string) string {
	p := Prefix(loc, "/login")
	if message == "" {
		return p
	}
	return p + "?message=" + url.QueryEscape(message)
}

func leadSegment(path string) (seg, rest string) {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" {
		return "", "/"
	}
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		return trimmed[:i], trimmed[i:]
	}
	return trimmed, "/"
}

func isLocaleShaped(seg string) bool {
	if len(seg) != 2 {
		return false
	}
	for i := range 2 {
		if seg[i] < 'a' || seg[i] > 'z' {
			return false
		}
	}
	return true
}

type ctxKey struct{}

// WithLocale attaches the resolved locale to the request context.
func WithLocale(ctx context.Context, loc Locale) context.Context {
	return context.WithValue(ctx, ctxKey{}, loc)
}

// FromContext returns the locale resolved for this request, or Default when
// none was attached.
func FromContext(ctx context.Context) Locale {
	if loc, ok := ctx.Value(ctxKey{}).(Locale); ok {
		return loc
	}
	return Default
}
