package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ecohubks/ecohub/internal/hub/service"
	"github.com/ecohubks/ecohub/pkg/httpx"
	"github.com/ecohubks/ecohub/pkg/hubsdk"
	"github.com/ecohubks/ecohub/pkg/slogx"
)

// MFAHandler serves the TOTP enrollment lifecycle under /v1/mfa.
type MFAHandler struct {
	MFAService *service.MFAService
}

// HandleEnroll starts TOTP enrollment for the session's user.
//
//	@Summary		Enroll TOTP
//	@Description	Generates a pending TOTP secret for the authenticated user. The secret does not gate logins until activated with a valid code.
//	@Tags			MFA
//	@Produce		json
//	@Success		200	{object}	hubsdk.TOTPEnrollResponse
//	@Failure		401	{object}	hubsdk.ErrorResponse	"Missing or invalid session"
//	@Failure		409	{object}	hubsdk.ErrorResponse	"TOTP already enabled"
//	@Router			/v1/mfa/totp/enroll [post].
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromContext(ctx)

	enrollment, err := h.MFAService.Enroll(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrTOTPAlreadyEnabled) {
			hubsdk.NewAPIError(http.StatusConflict, hubsdk.ErrorCodeConflict,
				"totp is already enabled for this account").WriteError(w)
			return
		}
		log.Warn("totp enrollment failed", "user_id", userID, "error", err)
		hubsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hubsdk.TOTPEnrollResponse{
		Secret:     enrollment.Secret,
		OTPAuthURL: enrollment.OTPAuthURL,
	})
}

// HandleActivate confirms a pending enrollment.
//
//	@Summary		Activate TOTP
//	@Description	Verifies a code against the pending secret and switches TOTP on for the account.
//	@Tags			MFA
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			code	formData	string	true	"Six-digit TOTP code"
//	@Success		200		{object}	hubsdk.StatusResponse
//	@Failure		401		{object}	hubsdk.ErrorResponse	"Invalid code or session"
//	@Router			/v1/mfa/totp/activate [post].
func (h *MFAHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromContext(ctx)

	if err := r.ParseForm(); err != nil {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	code := strings.TrimSpace(r.PostFormValue("code"))

	err := h.MFAService.Activate(ctx, userID, code)
	switch {
	case err == nil:
		log.Info("totp activated", "user_id", userID)
		httpx.WriteJSON(w, http.StatusOK, hubsdk.StatusResponse{Status: "ok"})
	case errors.Is(err, service.ErrInvalidTOTP):
		hubsdk.ErrInvalidTOTP.WriteError(w)
	case errors.Is(err, service.ErrTOTPNotEnrolled):
		hubsdk.NewAPIError(http.StatusConflict, hubsdk.ErrorCodeConflict,
			"no pending totp enrollment").WriteError(w)
	case errors.Is(err, service.ErrTOTPAlreadyEnabled):
		hubsdk.NewAPIError(http.StatusConflict, hubsdk.ErrorCodeConflict,
			"totp is already enabled for this account").WriteError(w)
	default:
		log.Warn("totp activation failed", "user_id", userID, "error", err)
		hubsdk.ErrServerError.WriteError(w)
	}
}

// HandleRemove disables TOTP for the account.
//
//	@Summary		Disable TOTP
//	@Description	Removes TOTP from the account. For active enrollments a valid code must accompany the request.
//	@Tags			MFA
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			code	formData	string	false	"Six-digit TOTP code, required while TOTP is active"
//	@Success		200		{object}	hubsdk.StatusResponse
//	@Failure		401		{object}	hubsdk.ErrorResponse	"Invalid code or session"
//	@Router			/v1/mfa/totp [delete].
func (h *MFAHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromContext(ctx)

	if err := r.ParseForm(); err != nil {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	code := strings.TrimSpace(r.PostFormValue("code"))

	err := h.MFAService.Disable(ctx, userID, code)
	switch {
	case err == nil:
		log.Info("totp disabled", "user_id", userID)
		httpx.WriteJSON(w, http.StatusOK, hubsdk.StatusResponse{Status: "ok"})
	case errors.Is(err, service.ErrInvalidTOTP):
		hubsdk.ErrInvalidTOTP.WriteError(w)
	default:
		log.Warn("totp removal failed", "user_id", userID, "error", err)
		hubsdk.ErrServerError.WriteError(w)
	}
}
