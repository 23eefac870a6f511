package service

import (
	"context"
	"fmt"

	"github.com/ecohubks/ecohub/internal/hub/domain"
	"github.com/ecohubks/ecohub/internal/hub/store"
)

type RolesService struct {
	Store store.Store
}

// RoleForUser returns the canonical role record for a user, read from the
// system of record. A missing user or role row surfaces as store.ErrNotFound;
// callers must treat any error as unauthorized.
func (s *RolesService) RoleForUser(ctx context.Context, userID string) (domain.Role, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.Role{}, fmt.Errorf("looking up user %s: %w", userID, err)
	}
	role, err := s.Store.Roles().GetRoleByID(ctx, user.RoleID)
	if err != nil {
		return domain.Role{}, fmt.Errorf("looking up role %s: %w", user.RoleID, err)
	}
	return role, nil
}

// GetRoleByName fetches a role by its enumerated name.
func (s *RolesService) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	return s.Store.Roles().GetRoleByName(ctx, name)
}

// ListAll returns all roles in the system.
func (s *RolesService) ListAll(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListAll(ctx)
}
