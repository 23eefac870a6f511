package http

import (
	"net/http"

	"github.com/ecohubks/ecohub/pkg/httpx"
	"github.com/ecohubks/ecohub/pkg/hubsdk"
	"github.com/ecohubks/ecohub/pkg/localex"
)

// pageTitles carries the localized titles for the hub's page payloads. The
// frontend renders the pages; the hub only decides access, locale and title.
var pageTitles = map[string]map[localex.Locale]string{
	"home": {
		localex.Albanian: "Mirë se vini në ECO HUB KOSOVA",
		localex.English:  "Welcome to ECO HUB KOSOVA",
	},
	"marketplace": {
		localex.Albanian: "Tregu i ripërdorimit",
		localex.English:  "Reuse marketplace",
	},
	"directory": {
		localex.Albanian: "Drejtoria e organizatave",
		localex.English:  "Organization directory",
	},
	"articles": {
		localex.Albanian: "Artikuj dhe lajme",
		localex.English:  "Articles and news",
	},
	"login": {
		localex.Albanian: "Identifikohu",
		localex.English:  "Sign in",
	},
	"profile": {
		localex.Albanian: "Profili im",
		localex.English:  "My profile",
	},
	"admin-users": {
		localex.Albanian: "Administrimi i përdoruesve",
		localex.English:  "User administration",
	},
}

func pageTitle(loc localex.Locale, page string) string {
	byLocale, ok := pageTitles[page]
	if !ok {
		return page
	}
	if title, ok := byLocale[loc]; ok {
		return title
	}
	return byLocale[localex.Default]
}

// PageHandler serves a public page payload for the resolved locale.
//
//	@Summary		Public page
//	@Description	Returns the page payload (name, locale, localized title) for the hub's public pages: home, marketplace, directory, articles.
//	@Tags			Pages
//	@Produce		json
//	@Param			locale	path		string	true	"UI locale (sq or en)"
//	@Success		200		{object}	hubsdk.PageResponse
//	@Router			/{locale}/home [get].
func PageHandler(page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := localex.FromContext(r.Context())
		httpx.WriteJSON(w, http.StatusOK, hubsdk.PageResponse{
			Page:    page,
			Locale:  string(loc),
			Title:   pageTitle(loc, page),
			Message: r.URL.Query().Get("message"),
		})
	}
}
