package service

import (
	"context"
	"testing"

	"github.com/ecohubks/ecohub/internal/hub/domain"
	"github.com/ecohubks/ecohub/internal/hub/store"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	roles := seedRoles(t, st)
	user := seedUser(t, st, "arta@example.com", "pw", roles[domain.RoleIndividual].ID)

	svc := &UserService{Store: st}

	require.NoError(t, svc.UpdateProfile(ctx, user.ID, "Arta K.", "en"))

	got, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "Arta K.", got.DisplayName)
	require.Equal(t, "en", got.Locale)

	t.Run("rejects unsupported locale", func(t *testing.T) {
		require.ErrorIs(t, svc.UpdateProfile(ctx, user.ID, "Arta K.", "fr"), ErrInvalidLocale)
	})

	t.Run("rejects empty display name", func(t *testing.T) {
		require.Error(t, svc.UpdateProfile(ctx, user.ID, "", "en"))
	})
}

func TestSetUserRole(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	roles := seedRoles(t, st)
	user := seedUser(t, st, "arta@example.com", "pw", roles[domain.RoleIndividual].ID)

	svc := &UserService{Store: st}

	require.NoError(t, svc.SetUserRole(ctx, user.ID, domain.RoleOrganization))

	got, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, roles[domain.RoleOrganization].ID, got.RoleID)

	t.Run("rejects unknown role names", func(t *testing.T) {
		require.ErrorIs(t, svc.SetUserRole(ctx, user.ID, "Superuser"), ErrUnknownRole)
	})

	t.Run("role names are exact matches", func(t *testing.T) {
		require.ErrorIs(t, svc.SetUserRole(ctx, user.ID, "admin"), ErrUnknownRole)
	})

	t.Run("missing user surfaces not found", func(t *testing.T) {
		err := svc.SetUserRole(ctx, "no-such-user", domain.RoleAdmin)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestListUsersPagination(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	roles := seedRoles(t, st)
	seedUser(t, st, "a@example.com", "pw", roles[domain.RoleIndividual].ID)
	seedUser(t, st, "b@example.com", "pw", roles[domain.RoleIndividual].ID)
	seedUser(t, st, "c@example.com", "pw", roles[domain.RoleOrganization].ID)

	svc := &UserService{Store: st}

	users, total, err := svc.ListUsers(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, users, 3, "non-positive limit falls back to the default page size")
	require.EqualValues(t, 3, total)

	users, total, err = svc.ListUsers(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.EqualValues(t, 3, total)

	users, _, err = svc.ListUsers(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, users, 1)
}
