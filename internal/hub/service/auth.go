package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecohubks/ecohub/internal/hub/domain"
	"github.com/ecohubks/ecohub/internal/hub/store"
	"github.com/ecohubks/ecohub/pkg/cryptox"
	"github.com/ecohubks/ecohub/pkg/idx"
	"github.com/ecohubks/ecohub/pkg/jwtx"
	"github.com/pquerna/otp/totp"
)

// DefaultSessionTTL bounds how long a session cookie stays valid without a
// fresh login.
const DefaultSessionTTL = 7 * 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTOTPRequired       = errors.New("totp code required")
	ErrInvalidTOTP        = errors.New("invalid totp code")

	// ErrSessionInvalid covers every way a session can fail verification:
	// bad signature, unknown or revoked session row, expiry, missing user.
	// Callers treat all of them as "not authenticated".
	ErrSessionInvalid = errors.New("session invalid")
)

// AuthService owns login, logout and per-request session verification. A
// session is only ever trusted after its row is re-read from the store; the
// cookie signature alone proves nothing.
type AuthService struct {
	Store      store.Store
	Codec      *jwtx.Codec
	SessionTTL time.Duration
}

type LoginInput struct {
	Email     string
	Password  string
	TOTPCode  string
	IP        string
	UserAgent string
}

// Login verifies credentials (and the TOTP code for enrolled users), creates
// a session row and returns the signed cookie value.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, fmt.Errorf("looking up user: %w", err)
	}

	if err := cryptox.VerifyPassword(in.Password, user.PasswordHash); err != nil {
		return "", domain.User{}, ErrInvalidCredentials
	}

	if user.TOTPActive() {
		if in.TOTPCode == "" {
			return "", domain.User{}, ErrTOTPRequired
		}
		if !totp.Validate(in.TOTPCode, *user.TOTPSecret) {
			return "", domain.User{}, ErrInvalidTOTP
		}
	}

	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	session := domain.Session{
		ID:        idx.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(ttl),
		IP:        in.IP,
		UserAgent: in.UserAgent,
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		return "", domain.User{}, fmt.Errorf("creating session: %w", err)
	}

	cookie, err := s.Codec.Sign(session.ID, user.ID, session.ExpiresAt)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("signing session cookie: %w", err)
	}
	return cookie, user, nil
}

// CurrentUser verifies the session cookie server-side and returns the user it
// belongs to. Every failure collapses to ErrSessionInvalid so the caller
// fails closed without leaking which check tripped.
func (s *AuthService) CurrentUser(ctx context.Context, cookie string) (domain.User, error) {
	claims, err := s.Codec.Verify(cookie)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %w", ErrSessionInvalid, err)
	}

	session, err := s.Store.Sessions().GetSessionByID(ctx, claims.SessionID)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %w", ErrSessionInvalid, err)
	}
	if !session.Live(time.Now().UTC()) || session.UserID != claims.Subject {
		return domain.User{}, ErrSessionInvalid
	}

	user, err := s.Store.Users().GetUserByID(ctx, session.UserID)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %w", ErrSessionInvalid, err)
	}
	return user, nil
}

// Logout revokes the session behind the cookie. An already-invalid cookie
// returns ErrSessionInvalid; callers clear the cookie either way.
func (s *AuthService) Logout(ctx context.Context, cookie string) error {
	claims, err := s.Codec.Verify(cookie)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSessionInvalid, err)
	}
	if err := s.Store.Sessions().RevokeSession(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("revoking session: %w", err)
	}
	return nil
}
