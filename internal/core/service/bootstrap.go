package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/luminosmc/community-api/internal/core/domain"
	"github.com/luminosmc/community-api/internal/core/ports"
)

// OwnerAccount holds the credentials of the account seeded at first start.
type OwnerAccount struct {
	Username string
	Password string
}

// Seeder fills an empty store with the owner account, the default roles and
// the default catalog. Each step checks for existing data first, so running
// it again is a no-op.
type Seeder struct {
	staff    ports.StaffRepository
	roles    ports.RoleRepository
	products ports.ProductRepository
	owner    OwnerAccount
	log      zerolog.Logger
}

func NewSeeder(staff ports.StaffRepository, roles ports.RoleRepository, products ports.ProductRepository, owner OwnerAccount, log zerolog.Logger) *Seeder {
	return &Seeder{staff: staff, roles: roles, products: products, owner: owner, log: log}
}

func (s *Seeder) Seed(ctx context.Context) error {
	if err := s.seedOwner(ctx); err != nil {
		return fmt.Errorf("seed owner: %w", err)
	}
	if err := s.seedRoles(ctx); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	if err := s.seedProducts(ctx); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}

func (s *Seeder) seedOwner(ctx context.Context) error {
	_, err := s.staff.FindBootstrapOwner(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrStaffNotFound) {
		return err
	}

	hash, err := hashPassword(s.owner.Password)
	if err != nil {
		return err
	}
	owner := &domain.Staff{
		ID:             uuid.NewString(),
		Username:       s.owner.Username,
		PasswordHash:   hash,
		Roles:          []string{domain.RoleOwner},
		CreatedAt:      time.Now().UTC(),
		BootstrapOwner: true,
	}
	if err := s.staff.Create(ctx, owner); err != nil {
		return err
	}
	s.log.Info().Str("username", owner.Username).Msg("owner account created")
	return nil
}

func (s *Seeder) seedRoles(ctx context.Context) error {
	n, err := s.roles.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	roles := domain.DefaultRoles()
	if err := s.roles.InsertMany(ctx, roles); err != nil {
		return err
	}
	s.log.Info().Int("count", len(roles)).Msg("default roles seeded")
	return nil
}

func (s *Seeder) seedProducts(ctx context.Context) error {
	n, err := s.products.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	products := domain.DefaultProducts()
	for i := range products {
		products[i].ID = uuid.NewString()
	}
	if err := s.products.InsertMany(ctx, products); err != nil {
		return err
	}
	s.log.Info().Int("count", len(products)).Msg("default products seeded")
	return nil
}
