package guard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecohubks/ecohub/internal/hub/domain"
	"github.com/ecohubks/ecohub/internal/hub/guard"
	"github.com/ecohubks/ecohub/pkg/localex"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	user domain.User
	err  error
	// block makes CurrentUser wait for context cancellation, simulating a
	// hung identity backend.
	block bool
}

func (f *fakeSessions) CurrentUser(ctx context.Context, cookie string) (domain.User, error) {
	if f.block {
		<-ctx.Done()
		return domain.User{}, ctx.Err()
	}
	if f.err != nil {
		return domain.User{}, f.err
	}
	return f.user, nil
}

type fakeRoles struct {
	role  domain.Role
	err   error
	calls int
}

func (f *fakeRoles) RoleForUser(ctx context.Context, userID string) (domain.Role, error) {
	f.calls++
	if f.err != nil {
		return domain.Role{}, f.err
	}
	return f.role, nil
}

func newGuard(sessions *fakeSessions, roles *fakeRoles) *guard.Guard {
	return &guard.Guard{Sessions: sessions, Roles: roles}
}

func TestEvaluateDeniesWithoutCookie(t *testing.T) {
	t.Parallel()

	roles := &fakeRoles{}
	g := newGuard(&fakeSessions{}, roles)

	d := g.Evaluate(context.Background(), "", localex.Default, domain.RoleAdmin)
	require.False(t, d.Allowed)
	require.Nil(t, d.Identity)
	require.NotNil(t, d.Redirect)
	require.Regexp(t, `^/(en|sq)/login`, d.Redirect.TargetPath)
	require.Zero(t, roles.calls, "role lookup must never run before session verification")
}

func TestEvaluateDeniesOnSessionError(t *testing.T) {
	t.Parallel()

	g := newGuard(&fakeSessions{err: errors.New("backend unavailable")}, &fakeRoles{})

	d := g.Evaluate(context.Background(), "cookie", localex.English)
	require.False(t, d.Allowed)
	require.Equal(t, localex.English, d.Redirect.Locale)
	require.Regexp(t, `^/en/login\?message=`, d.Redirect.TargetPath)
}

func TestEvaluateAllowsSessionOnlyRoutes(t *testing.T) {
	t.Parallel()

	roles := &fakeRoles{}
	g := newGuard(&fakeSessions{user: domain.User{ID: "u1", Email: "a@b.c"}}, roles)

	d := g.Evaluate(context.Background(), "cookie", localex.Default)
	require.True(t, d.Allowed)
	require.Nil(t, d.Redirect)
	require.Equal(t, "u1", d.Identity.UserID)
	require.Zero(t, roles.calls, "no role required, no role lookup")
}

func TestEvaluateRoleGated(t *testing.T) {
	t.Parallel()

	t.Run("matching role is allowed", func(t *testing.T) {
		g := newGuard(
			&fakeSessions{user: domain.User{ID: "u1"}},
			&fakeRoles{role: domain.Role{Name: domain.RoleAdmin}},
		)
		d := g.Evaluate(context.Background(), "cookie", localex.English, domain.RoleAdmin)
		require.True(t, d.Allowed)
		require.Equal(t, domain.RoleAdmin, d.Identity.Role)
	})

	t.Run("role mismatch is denied to locale login", func(t *testing.T) {
		g := newGuard(
			&fakeSessions{user: domain.User{ID: "u1"}},
			&fakeRoles{role: domain.Role{Name: domain.RoleIndividual}},
		)
		d := g.Evaluate(context.Background(), "cookie", localex.English, domain.RoleAdmin)
		require.False(t, d.Allowed)
		require.Regexp(t, `^/en/login\?message=`, d.Redirect.TargetPath)
	})

	t.Run("membership in any accepted role suffices", func(t *testing.T) {
		g := newGuard(
			&fakeSessions{user: domain.User{ID: "u1"}},
			&fakeRoles{role: domain.Role{Name: domain.RoleOrganization}},
		)
		d := g.Evaluate(context.Background(), "cookie", localex.Default,
			domain.RoleAdmin, domain.RoleOrganization)
		require.True(t, d.Allowed)
	})

	t.Run("similar but unequal names never match", func(t *testing.T) {
		g := newGuard(
			&fakeSessions{user: domain.User{ID: "u1"}},
			&fakeRoles{role: domain.Role{Name: "admin"}}, // wrong case
		)
		d := g.Evaluate(context.Background(), "cookie", localex.Default, domain.RoleAdmin)
		require.False(t, d.Allowed)
	})

	t.Run("role lookup error fails closed", func(t *testing.T) {
		g := newGuard(
			&fakeSessions{user: domain.User{ID: "u1"}},
			&fakeRoles{err: errors.New("query failed")},
		)
		d := g.Evaluate(context.Background(), "cookie", localex.Default, domain.RoleAdmin)
		require.False(t, d.Allowed)
		require.Regexp(t, `^/sq/login`, d.Redirect.TargetPath)
	})
}

func TestEvaluateIsIdempotent(t *testing.T) {
	t.Parallel()

	g := newGuard(
		&fakeSessions{user: domain.User{ID: "u1", Email: "a@b.c"}},
		&fakeRoles{role: domain.Role{Name: domain.RoleAdmin}},
	)

	first := g.Evaluate(context.Background(), "cookie", localex.English, domain.RoleAdmin)
	second := g.Evaluate(context.Background(), "cookie", localex.English, domain.RoleAdmin)
	require.Equal(t, first, second)

	deniedFirst := g.Evaluate(context.Background(), "", localex.English, domain.RoleAdmin)
	deniedSecond := g.Evaluate(context.Background(), "", localex.English, domain.RoleAdmin)
	require.Equal(t, deniedFirst, deniedSecond)
}

func TestEvaluateTimesOutClosed(t *testing.T) {
	t.Parallel()

	g := &guard.Guard{
		Sessions: &fakeSessions{block: true},
		Roles:    &fakeRoles{},
		Timeout:  20 * time.Millisecond,
	}

	start := time.Now()
	d := g.Evaluate(context.Background(), "cookie", localex.Default, domain.RoleAdmin)
	require.False(t, d.Allowed)
	require.NotNil(t, d.Redirect)
	require.Less(t, time.Since(start), 2*time.Second)
}

func TestEvaluateHonorsCallerCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := newGuard(&fakeSessions{block: true}, &fakeRoles{})
	d := g.Evaluate(ctx, "cookie", localex.Default)
	require.False(t, d.Allowed)
}
