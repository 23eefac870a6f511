package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ecohubks/ecohub/internal/hub/service"
	"github.com/ecohubks/ecohub/pkg/httpx"
	"github.com/ecohubks/ecohub/pkg/hubsdk"
	"github.com/ecohubks/ecohub/pkg/localex"
	"github.com/ecohubks/ecohub/pkg/slogx"
)

// ProfileHandler serves the session-gated profile page.
type ProfileHandler struct {
	UserService  *service.UserService
	RolesService *service.RolesService
}

// HandleGet returns the authenticated user's profile.
//
//	@Summary		Own profile
//	@Description	Returns the authenticated user's account details. Requires a verified session.
//	@Tags			Profile
//	@Produce		json
//	@Param			locale	path		string	true	"UI locale (sq or en)"
//	@Success		200		{object}	hubsdk.ProfileResponse
//	@Failure		303		"Redirect to the locale login page when the session is missing or invalid"
//	@Router			/{locale}/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromContext(ctx)

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		log.Warn("failed to load user", "user_id", userID, "error", err)
		hubsdk.ErrServerError.WriteError(w)
		return
	}

	role, err := h.RolesService.RoleForUser(ctx, userID)
	if err != nil {
		log.Warn("failed to load role", "user_id", userID, "error", err)
		hubsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hubsdk.ProfileResponse{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Locale:      user.Locale,
		Role:        role.Name,
		TOTPEnabled: user.TOTPActive(),
	})
}

// HandlePost updates the authenticated user's display name and preferred
// locale.
//
//	@Summary		Update own profile
//	@Description	Changes display name and preferred locale, then redirects back to the profile page.
//	@Tags			Profile
//	@Accept			x-www-form-urlencoded
//	@Param			locale			path		string	true	"UI locale (sq or en)"
//	@Param			display_name	formData	string	true	"New display name"
//	@Param			ui_locale		formData	string	true	"Preferred UI locale (sq or en)"
//	@Success		303	"Redirect back to the profile page"
//	@Router			/{locale}/profile [post].
func (h *ProfileHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	loc := localex.FromContext(ctx)
	userID := httpx.UserIDFromContext(ctx)

	if err := r.ParseForm(); err != nil {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	displayName := strings.TrimSpace(r.PostFormValue("display_name"))
	uiLocale := strings.TrimSpace(r.PostFormValue("ui_locale"))

	if err := h.UserService.UpdateProfile(ctx, userID, displayName, uiLocale); err != nil {
		if errors.Is(err, service.ErrInvalidLocale) {
			hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeInvalidRequest,
				"unsupported locale").WriteError(w)
			return
		}
		log.Warn("profile update failed", "user_id", userID, "error", err)
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	httpx.NoCache(w)
	http.Redirect(w, r, localex.Prefix(loc, "/profile"), http.StatusSeeOther)
}
