package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecohubks/ecohub/internal/hub/store"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

var (
	ErrTOTPAlreadyEnabled = errors.New("totp already enabled for this user")
	ErrTOTPNotEnrolled    = errors.New("no pending totp enrollment for this user")
)

// MFAService manages optional TOTP step-up for accounts. Enrollment is
// two-phase: Enroll stores a pending secret, Activate verifies a code against
// it before the secret starts gating logins.
type MFAService struct {
	Store  store.Store
	Issuer string // Issuer name shown in authenticator apps
}

type TOTPEnrollment struct {
	Secret     string
	OTPAuthURL string
}

// Enroll generates and stores a pending TOTP secret for the user.
func (s *MFAService) Enroll(ctx context.Context, userID string) (TOTPEnrollment, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return TOTPEnrollment{}, fmt.Errorf("looking up user: %w", err)
	}
	if user.TOTPActive() {
		return TOTPEnrollment{}, ErrTOTPAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return TOTPEnrollment{}, fmt.Errorf("generating totp key: %w", err)
	}

	if err := s.Store.Users().UpdateTOTPSecret(ctx, userID, key.Secret()); err != nil {
		return TOTPEnrollment{}, fmt.Errorf("storing totp secret: %w", err)
	}

	return TOTPEnrollment{Secret: key.Secret(), OTPAuthURL: key.URL()}, nil
}

// Activate verifies a code against the pending secret and switches TOTP on.
func (s *MFAService) Activate(ctx context.Context, userID, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("looking up user: %w", err)
	}
	if user.TOTPActive() {
		return ErrTOTPAlreadyEnabled
	}
	if user.TOTPSecret == nil || *user.TOTPSecret == "" {
		return ErrTOTPNotEnrolled
	}
	if !totp.Validate(code, *user.TOTPSecret) {
		return ErrInvalidTOTP
	}
	return s.Store.Users().EnableTOTP(ctx, userID)
}

// Disable removes TOTP from an account. For active enrollments a valid code
// is required so a hijacked session cannot silently strip the second factor.
func (s *MFAService) Disable(ctx context.Context, userID, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("looking up user: %w", err)
	}
	if user.TOTPActive() && !totp.Validate(code, *user.TOTPSecret) {
		return ErrInvalidTOTP
	}
	return s.Store.Users().DisableTOTP(ctx, userID)
}
