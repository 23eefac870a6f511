package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ecohubks/ecohub/internal/hub/service"
	"github.com/ecohubks/ecohub/internal/hub/store"
	"github.com/ecohubks/ecohub/pkg/httpx"
	"github.com/ecohubks/ecohub/pkg/hubsdk"
	"github.com/ecohubks/ecohub/pkg/slogx"
)

// AdminUsersHandler serves the Admin-gated user directory.
type AdminUsersHandler struct {
	UserService  *service.UserService
	RolesService *service.RolesService
}

// HandleList returns one page of the user directory.
//
//	@Summary		List users
//	@Description	Returns a paginated view of all accounts with their roles. Requires a verified session with the Admin role.
//	@Tags			Admin
//	@Produce		json
//	@Param			locale	path		string	true	"UI locale (sq or en)"
//	@Param			limit	query		int		false	"Page size (max 100)"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{object}	hubsdk.UserListResponse
//	@Failure		303		"Redirect to the locale login page when the caller is not an Admin"
//	@Router			/{locale}/admin/users [get].
func (h *AdminUsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	users, total, err := h.UserService.ListUsers(ctx, limit, offset)
	if err != nil {
		log.Warn("failed to list users", "error", err)
		hubsdk.ErrServerError.WriteError(w)
		return
	}

	roleNames, err := h.roleNames(r)
	if err != nil {
		log.Warn("failed to resolve role names", "error", err)
		hubsdk.ErrServerError.WriteError(w)
		return
	}

	out := hubsdk.UserListResponse{
		Users:  make([]hubsdk.UserSummary, 0, len(users)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, u := range users {
		out.Users = append(out.Users, hubsdk.UserSummary{
			UserID:      u.ID,
			Email:       u.Email,
			DisplayName: u.DisplayName,
			Role:        roleNames[u.RoleID],
			Locale:      u.Locale,
			CreatedAt:   u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// roleNames resolves role IDs to names once per page instead of per row.
func (h *AdminUsersHandler) roleNames(r *http.Request) (map[string]string, error) {
	roles, err := h.RolesService.ListAll(r.Context())
	if err != nil {
		return nil, err
	}
	byID := make(map[string]string, len(roles))
	for _, role := range roles {
		byID[role.ID] = role.Name
	}
	return byID, nil
}

// HandleSetRole repoints a user to the named role.
//
//	@Summary		Change a user's role
//	@Description	Assigns one of the known roles (Admin, Organization, Individual) to the addressed user. Requires a verified session with the Admin role.
//	@Tags			Admin
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			locale	path		string	true	"UI locale (sq or en)"
//	@Param			id		path		string	true	"User ID"
//	@Param			role	formData	string	true	"Role name"
//	@Success		200		{object}	hubsdk.StatusResponse
//	@Failure		303		"Redirect to the locale login page when the caller is not an Admin"
//	@Router			/{locale}/admin/users/{id}/role [post].
func (h *AdminUsersHandler) HandleSetRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := r.PathValue("id")
	if userID == "" {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	roleName := strings.TrimSpace(r.PostFormValue("role"))

	err := h.UserService.SetUserRole(ctx, userID, roleName)
	switch {
	case err == nil:
		log.Info("user role changed",
			"actor_id", httpx.UserIDFromContext(ctx),
			"user_id", userID,
			"role", roleName,
		)
		httpx.WriteJSON(w, http.StatusOK, hubsdk.StatusResponse{Status: "ok"})
	case errors.Is(err, service.ErrUnknownRole):
		hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeInvalidRequest,
			"unknown role name").WriteError(w)
	case errors.Is(err, store.ErrNotFound):
		hubsdk.ErrNotFound.WriteError(w)
	default:
		log.Warn("role change failed", "user_id", userID, "error", err)
		hubsdk.ErrServerError.WriteError(w)
	}
}
