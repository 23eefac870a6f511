package localex

import "strings"

// legacyPrefixes maps deprecated route prefixes to their canonical
// successors. Trailing identifier segments are preserved, so legacy detail
// links keep working.
var legacyPrefixes = map[string]string{
	"/marketplace-v2": "/marketplace",
	"/items":          "/marketplace",
	"/ngo":            "/directory",
	"/blog":           "/articles",
}

// Canonicalize maps a locale-stripped path to its canonical locale-prefixed
// form: legacy prefixes are rewritten, the empty and root paths become the
// home page, and the result always begins with "/{locale}/". Paths with no
// legacy mapping pass through unchanged apart from the locale prefix.
func Canonicalize(loc Locale, path string) string {
	return Prefix(loc, RewriteLegacy(path))
}

// RewriteLegacy applies the deprecated-prefix table to a locale-stripped
// path. Prefixes only match on segment boundaries, so "/items-wanted" is not
// rewritten.
func RewriteLegacy(path string) string {
	if path == "" || path == "/" {
		return "/home"
	}
	for legacy, canonical := range legacyPrefixes {
		if path == legacy {
			return canonical
		}
		if strings.HasPrefix(path, legacy+"/") {
			return canonical + path[len(legacy):]
		}
	}
	return path
}
