// Package guard decides whether a request may proceed to a protected route.
// It composes session verification and role lookup into a single explicit
// decision value; denial is expressed as a redirect directive, never as a
// panic or in-band exception.
package guard

import (
	"context"
	"time"

	"github.com/ecohubks/ecohub/internal/hub/domain"
	"github.com/ecohubks/ecohub/pkg/localex"
	"github.com/ecohubks/ecohub/pkg/slogx"
)

// DefaultTimeout bounds a single evaluation. A validator or resolver that
// does not answer in time is treated as a denial, never as implicit success.
const DefaultTimeout = 5 * time.Second

// SessionValidator verifies the session cookie server-side and returns the
// user it belongs to.
type SessionValidator interface {
	CurrentUser(ctx context.Context, cookie string) (domain.User, error)
}

// RoleResolver returns the canonical role record for a verified user.
type RoleResolver interface {
	RoleForUser(ctx context.Context, userID string) (domain.Role, error)
}

// Identity describes the verified caller of an allowed request.
type Identity struct {
	UserID      string
	Email       string
	DisplayName string
	Role        string // populated only on role-gated routes
}

// RedirectDirective is the computed denial response: a locale-prefixed target
// carrying a human-readable message.
type RedirectDirective struct {
	TargetPath string
	Locale     localex.Locale
	Message    string
}

// Decision is the gate's result. Exactly one of Identity (allowed) or
// Redirect (denied) is set.
type Decision struct {
	Allowed  bool
	Identity *Identity
	Redirect *RedirectDirective
}

// Guard evaluates access to protected routes. Dependencies are injected so
// nothing here holds global state; evaluation is pure given the validator and
// resolver outputs, so repeated calls with the same inputs yield the same
// decision.
type Guard struct {
	Sessions SessionValidator
	Roles    RoleResolver
	Timeout  time.Duration
}

// Evaluate runs the gate for one request. Role checking only happens when
// requiredRoles is non-empty, and only after the session has been verified.
// The role must match one of requiredRoles exactly.
func (g *Guard) Evaluate(ctx context.Context, cookie string, loc localex.Locale, requiredRoles ...string) Decision {
	timeout := g.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log := slogx.FromContext(ctx)

	if cookie == "" {
		return deny(loc, localex.MsgLoginRequired)
	}

	user, err := g.Sessions.CurrentUser(ctx, cookie)
	if err != nil {
		// Covers expired/revoked sessions and backend failures alike:
		// both fail closed to "not authenticated".
		log.Debug("session verification failed", "error", err)
		return deny(loc, localex.MsgLoginRequired)
	}

	identity := &Identity{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}

	if len(requiredRoles) == 0 {
		return Decision{Allowed: true, Identity: identity}
	}

	role, err := g.Roles.RoleForUser(ctx, user.ID)
	if err != nil {
		log.Warn("role lookup failed", "user_id", user.ID, "error", err)
		return deny(loc, localex.MsgForbidden)
	}

	for _, required := range requiredRoles {
		if role.Name == required {
			identity.Role = role.Name
			return Decision{Allowed: true, Identity: identity}
		}
	}

	log.Info("role mismatch",
		"user_id", user.ID,
		"role", role.Name,
		"required", requiredRoles,
	)
	return deny(loc, localex.MsgForbidden)
}

func deny(loc localex.Locale, key localex.MessageKey) Decision {
	msg := localex.Message(loc, key)
	return Decision{
		Redirect: &RedirectDirective{
			TargetPath: localex.LoginPath(loc, msg),
			Locale:     loc,
			Message:    msg,
		},
	}
}
