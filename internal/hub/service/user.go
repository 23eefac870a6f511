package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecohubks/ecohub/internal/hub/domain"
	"github.com/ecohubks/ecohub/internal/hub/store"
	"github.com/ecohubks/ecohub/pkg/localex"
)

const (
	defaultPageSize = 25
	maxPageSize     = 100
)

var (
	ErrUnknownRole   = errors.New("unknown role name")
	ErrInvalidLocale = errors.New("unsupported locale")
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// UpdateProfile changes a user's display name and preferred locale. The
// locale is validated against the supported set before it is persisted.
func (s *UserService) UpdateProfile(ctx context.Context, userID, displayName, locale string) error {
	if !localex.IsSupported(locale) {
		return ErrInvalidLocale
	}
	if displayName == "" {
		return errors.New("display name must not be empty")
	}
	return s.Store.Users().UpdateProfile(ctx, userID, displayName, locale)
}

// ListUsers returns one page of users plus the total count, for the admin
// user directory.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.Store.Users().ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Store.Users().CountUsers(ctx)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// SetUserRole repoints a user to the named role. This is the only mutation
// path for UserRole records outside of account creation.
func (s *UserService) SetUserRole(ctx context.Context, userID, roleName string) error {
	if !domain.IsKnownRoleName(roleName) {
		return ErrUnknownRole
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByID(ctx, userID); err != nil {
			return fmt.Errorf("looking up user %s: %w", userID, err)
		}
		role, err := tx.Roles().GetRoleByName(ctx, roleName)
		if err != nil {
			return fmt.Errorf("looking up role %s: %w", roleName, err)
		}
		return tx.Users().UpdateUserRole(ctx, userID, role.ID)
	})
}
