package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ecohubks/ecohub/internal/hub/domain"
	"github.com/ecohubks/ecohub/internal/hub/guard"
	"github.com/ecohubks/ecohub/internal/hub/service"
	"github.com/ecohubks/ecohub/internal/hub/store"
	"github.com/ecohubks/ecohub/pkg/httpx"
	"github.com/ecohubks/ecohub/pkg/localex"
	"github.com/ecohubks/ecohub/pkg/slogx"

	_ "github.com/ecohubks/ecohub/api/ecohub" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// localeExempt lists path prefixes that bypass locale canonicalization:
// system probes, the JSON API surface and docs.
var localeExempt = []string{"/livez", "/readyz", "/swagger", "/v1"}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	root        *http.ServeMux
	middlewares []httpx.Middleware

	guard         *guard.Guard
	buildVersion  string
	startTime     time.Time
	secureCookies bool
	logger        *slog.Logger

	store        store.Store
	AuthService  *service.AuthService
	UserService  *service.UserService
	RolesService *service.RolesService
	MFAService   *service.MFAService
}

func NewRouter(
	g *guard.Guard,
	buildVersion string,
	secureCookies bool,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		root:          http.NewServeMux(),
		guard:         g,
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		secureCookies: secureCookies,
		store:         st,
		logger:        logger,
	}

	// Locale canonicalization runs after request logging so redirects are
	// logged too.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		localex.Middleware(localeExempt...),
	}

	// The swagger catch-all cannot share a ServeMux with the {locale}
	// wildcard patterns (both would match /swagger/home), so it is
	// dispatched one hop before them.
	r.root.Handle("/swagger/", httpSwagger.Handler())
	r.root.Handle("/", r.Mux)

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerPages()
	r.registerAuth()
	r.registerProfile()
	r.registerAdmin()
	r.registerMFA()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			ECO HUB KOSOVA API
//	@version		0.1.0
//	@description	Locale-aware access layer for the ECO HUB KOSOVA circular-economy platform.
//	@description
//	@description				All user-facing pages live under a two-letter locale prefix (sq or en);
//	@description				requests without one are redirected to their canonical form. Sessions are
//	@description				carried in an HTTP-only cookie and verified server-side on every request.
//
//	@contact.name				ECO HUB KOSOVA
//	@contact.url				https://github.com/ecohubks/ecohub
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.root, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerPages() {
	// Public pages - lenient rate limit by IP
	for _, page := range []string{"home", "marketplace", "directory", "articles"} {
		r.Mux.Handle("GET /{locale}/"+page,
			httpx.Chain(PageHandler(page),
				httpx.RateLimitByIP(httpx.LenientLimit),
			),
		)
	}
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService:   r.AuthService,
		SecureCookies: r.secureCookies,
	}

	// GET /login - lenient rate limit (just displays the form payload)
	r.Mux.Handle("GET /{locale}/login",
		httpx.Chain(http.HandlerFunc(h.HandleGetLogin),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /login - strict rate limit by IP + email form field to slow
	// per-account brute force
	r.Mux.Handle("POST /{locale}/login",
		httpx.Chain(http.HandlerFunc(h.HandlePostLogin),
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "email"),
		),
	)

	// POST /logout - moderate rate limit
	r.Mux.Handle("POST /{locale}/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{
		UserService:  r.UserService,
		RolesService: r.RolesService,
	}

	r.Mux.Handle("GET /{locale}/profile",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			RequireSession(r.guard),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /{locale}/profile",
		httpx.Chain(http.HandlerFunc(h.HandlePost),
			RequireSession(r.guard),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminUsersHandler{
		UserService:  r.UserService,
		RolesService: r.RolesService,
	}

	r.Mux.Handle("GET /{locale}/admin/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			RequireRole(r.guard, domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /{locale}/admin/users/{id}/role",
		httpx.Chain(http.HandlerFunc(h.HandleSetRole),
			RequireRole(r.guard, domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerMFA() {
	h := &MFAHandler{MFAService: r.MFAService}

	// POST /mfa/totp/enroll - moderate rate limit by user
	r.Mux.Handle("POST /v1/mfa/totp/enroll",
		httpx.Chain(http.HandlerFunc(h.HandleEnroll),
			RequireSessionAPI(r.guard),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// POST /mfa/totp/activate - strict rate limit by user (prevent brute
	// force of TOTP codes)
	r.Mux.Handle("POST /v1/mfa/totp/activate",
		httpx.Chain(http.HandlerFunc(h.HandleActivate),
			RequireSessionAPI(r.guard),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)

	// DELETE /mfa/totp - strict rate limit by user
	r.Mux.Handle("DELETE /v1/mfa/totp",
		httpx.Chain(http.HandlerFunc(h.HandleRemove),
			RequireSessionAPI(r.guard),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may
	// poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
