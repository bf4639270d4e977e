package ports

import (
	"context"

	"github.com/luminosmc/community-api/internal/core/domain"
)

// StaffPatch carries the fields of a staff update; nil means unchanged.
// Password holds the already hashed value.
type StaffPatch struct {
	Username     *string
	PasswordHash *string
	Roles        *[]string
}

// Empty reports whether the patch changes nothing.
func (p StaffPatch) Empty() bool {
	return p.Username == nil && p.PasswordHash == nil && p.Roles == nil
}

// StaffRepository persists staff accounts (the admin_users collection).
type StaffRepository interface {
	// Create inserts a staff account. Returns domain.ErrUsernameTaken on a duplicate username.
	Create(ctx context.Context, s *domain.Staff) error
	FindByID(ctx context.Context, id string) (*domain.Staff, error)
	FindByUsername(ctx context.Context, username string) (*domain.Staff, error)
	// FindBootstrapOwner returns the seeded owner account, or domain.ErrStaffNotFound.
	FindBootstrapOwner(ctx context.Context) (*domain.Staff, error)
	List(ctx context.Context) ([]domain.Staff, error)
	// Update persists only the fields set in patch.
	Update(ctx context.Context, id string, patch StaffPatch) error
	Delete(ctx context.Context, id string) error
	// CountWithRole returns how many staff accounts reference roleID.
	CountWithRole(ctx context.Context, roleID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
