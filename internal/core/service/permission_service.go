package service

import (
	"context"
	"fmt"

	"github.com/luminosmc/community-api/internal/core/domain"
	"github.com/luminosmc/community-api/internal/core/ports"
)

// PermissionService resolves a principal's role ids into an effective
// permission set. Nothing is cached; roles are read on every call.
type PermissionService struct {
	roles ports.RoleRepository
}

func NewPermissionService(roles ports.RoleRepository) *PermissionService {
	return &PermissionService{roles: roles}
}

// HasPermission reports whether any role held by p grants perm. Role ids
// missing from the store contribute nothing.
func (s *PermissionService) HasPermission(ctx context.Context, p *domain.Principal, perm string) (bool, error) {
	if p == nil || len(p.Roles) == 0 {
		return false, nil
	}
	roles, err := s.roles.FindByIDs(ctx, p.Roles)
	if err != nil {
		return false, fmt.Errorf("resolve roles: %w", err)
	}
	return domain.EffectivePermissions(roles).Has(perm), nil
}

// Require passes p through the staff gate and then the permission gate.
func (s *PermissionService) Require(ctx context.Context, p *domain.Principal, perm string) error {
	if err := RequireStaff(p); err != nil {
		return err
	}
	ok, err := s.HasPermission(ctx, p, perm)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrPermissionDenied
	}
	return nil
}

// RequireStaff fails with domain.ErrStaffOnly unless p is a staff account
// holding at least one role.
func RequireStaff(p *domain.Principal) error {
	if !p.IsStaff() {
		return domain.ErrStaffOnly
	}
	return nil
}
