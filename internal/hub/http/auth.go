package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ecohubks/ecohub/internal/hub/service"
	"github.com/ecohubks/ecohub/pkg/httpx"
	"github.com/ecohubks/ecohub/pkg/hubsdk"
	"github.com/ecohubks/ecohub/pkg/localex"
	"github.com/ecohubks/ecohub/pkg/slogx"
)

// AuthHandler serves the locale-prefixed login and logout endpoints.
type AuthHandler struct {
	AuthService   *service.AuthService
	SecureCookies bool
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, value string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// HandleGetLogin serves the login page payload.
//
//	@Summary		Login page
//	@Description	Returns the login page payload for the requested locale, echoing any notice message carried on the redirect.
//	@Tags			Auth
//	@Produce		json
//	@Param			locale	path		string	true	"UI locale (sq or en)"
//	@Param			message	query		string	false	"Notice to display above the form"
//	@Success		200		{object}	hubsdk.PageResponse
//	@Router			/{locale}/login [get].
func (h *AuthHandler) HandleGetLogin(w http.ResponseWriter, r *http.Request) {
	loc := localex.FromContext(r.Context())
	httpx.WriteJSON(w, http.StatusOK, hubsdk.PageResponse{
		Page:    "login",
		Locale:  string(loc),
		Title:   pageTitle(loc, "login"),
		Message: r.URL.Query().Get("message"),
	})
}

// HandlePostLogin verifies credentials and establishes a session.
//
//	@Summary		Log in
//	@Description	Verifies email/password (and TOTP code for enrolled accounts), sets the session cookie and redirects to the locale home page or the validated redirect_to target.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Param			locale		path	string	true	"UI locale (sq or en)"
//	@Param			email		formData	string	true	"Account email"
//	@Param			password	formData	string	true	"Account password"
//	@Param			totp_code	formData	string	false	"TOTP code, required for enrolled accounts"
//	@Param			redirect_to	formData	string	false	"Local path to return to after login"
//	@Success		303	"Redirect to the post-login destination"
//	@Router			/{locale}/login [post].
func (h *AuthHandler) HandlePostLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	loc := localex.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	cookie, user, err := h.AuthService.Login(ctx, service.LoginInput{
		Email:     strings.TrimSpace(r.PostFormValue("email")),
		Password:  r.PostFormValue("password"),
		TOTPCode:  strings.TrimSpace(r.PostFormValue("totp_code")),
		IP:        httpx.IPKeyExtractor(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTOTPRequired):
			h.redirectToLogin(w, r, loc, localex.MsgTOTPRequired)
		case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidTOTP):
			h.redirectToLogin(w, r, loc, localex.MsgLoginFailed)
		default:
			log.Error("login failed", "error", err)
			hubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	ttl := h.AuthService.SessionTTL
	if ttl <= 0 {
		ttl = service.DefaultSessionTTL
	}
	h.setSessionCookie(w, cookie, time.Now().Add(ttl))
	log.Info("user logged in", "user_id", user.ID)

	httpx.NoCache(w)
	http.Redirect(w, r, postLoginTarget(loc, r.PostFormValue("redirect_to")), http.StatusSeeOther)
}

func (h *AuthHandler) redirectToLogin(w http.ResponseWriter, r *http.Request, loc localex.Locale, key localex.MessageKey) {
	target := localex.LoginPath(loc, localex.Message(loc, key))
	if rt := localPath(r.PostFormValue("redirect_to")); rt != "" {
		target += "&redirect_to=" + url.QueryEscape(rt)
	}
	httpx.NoCache(w)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// HandleLogout revokes the session and clears the cookie.
//
//	@Summary		Log out
//	@Description	Revokes the session behind the cookie, clears the cookie and redirects to the locale home page. An already-invalid session still clears the cookie.
//	@Tags			Auth
//	@Param			locale	path	string	true	"UI locale (sq or en)"
//	@Success		303	"Redirect to the locale home page"
//	@Router			/{locale}/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	loc := localex.FromContext(ctx)

	if cookie := sessionCookie(r); cookie != "" {
		if err := h.AuthService.Logout(ctx, cookie); err != nil && !errors.Is(err, service.ErrSessionInvalid) {
			log.Warn("logout failed to revoke session", "error", err)
		}
	}
	h.clearSessionCookie(w)

	target := localex.Prefix(loc, "/home") +
		"?message=" + url.QueryEscape(localex.Message(loc, localex.MsgLoggedOut))
	httpx.NoCache(w)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// postLoginTarget picks the post-login destination: a validated local
// redirect_to, else the locale home page.
func postLoginTarget(loc localex.Locale, redirectTo string) string {
	if p := localPath(redirectTo); p != "" {
		return p
	}
	return localex.Prefix(loc, "/home")
}

// localPath accepts only same-origin absolute paths, rejecting anything a
// crafted redirect_to could use to bounce users off-site.
func localPath(p string) string {
	if p == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return ""
	}
	if strings.Contains(p, "\\") {
		return ""
	}
	u, err := url.Parse(p)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return ""
	}
	return p
}
