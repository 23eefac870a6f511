package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ecohubks/ecohub/internal/hub/domain"
	"github.com/ecohubks/ecohub/internal/hub/store"
	"github.com/ecohubks/ecohub/pkg/cryptox"
	"github.com/ecohubks/ecohub/pkg/idx"
	"github.com/ecohubks/ecohub/pkg/localex"
)

// BootstrapService seeds the role table and, optionally, the first admin
// account on a fresh database. Runs once at startup inside one transaction.
type BootstrapService struct {
	Store  store.Store
	Logger *slog.Logger

	AdminEmail       string // Optional: create the first admin when users table is empty
	AdminPassword    string
	AdminDisplayName string
}

// EnsureSeedData creates the enumerated roles when missing and the initial
// admin user when configured and no users exist yet.
func (s *BootstrapService) EnsureSeedData(ctx context.Context) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		rolesEmpty, err := tx.Roles().IsEmpty(ctx)
		if err != nil {
			return fmt.Errorf("checking roles: %w", err)
		}
		if rolesEmpty {
			for _, name := range domain.KnownRoleNames() {
				role := domain.Role{ID: idx.New().String(), Name: name}
				if err := tx.Roles().CreateRole(ctx, role); err != nil {
					return fmt.Errorf("seeding role %s: %w", name, err)
				}
			}
			s.Logger.Info("seeded roles", "count", len(domain.KnownRoleNames()))
		}

		if s.AdminEmail == "" || s.AdminPassword == "" {
			return nil
		}

		usersEmpty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return fmt.Errorf("checking users: %w", err)
		}
		if !usersEmpty {
			return nil
		}

		adminRole, err := tx.Roles().GetRoleByName(ctx, domain.RoleAdmin)
		if err != nil {
			return fmt.Errorf("looking up admin role: %w", err)
		}

		hash, err := cryptox.HashPassword(s.AdminPassword)
		if err != nil {
			return fmt.Errorf("hashing admin password: %w", err)
		}

		displayName := s.AdminDisplayName
		if displayName == "" {
			displayName = "Administrator"
		}

		admin := domain.User{
			ID:           idx.New().String(),
			Email:        s.AdminEmail,
			DisplayName:  displayName,
			PasswordHash: hash,
			RoleID:       adminRole.ID,
			Locale:       string(localex.Default),
		}
		if err := tx.Users().CreateUser(ctx, admin); err != nil {
			return fmt.Errorf("creating admin user: %w", err)
		}

		s.Logger.Info("created initial admin user", "email", s.AdminEmail)
		return nil
	})
}
