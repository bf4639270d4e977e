package ports

import (
	"context"

	"github.com/luminosmc/community-api/internal/core/domain"
)

// CreateRoleInput carries a new role; the id is derived from Name.
type CreateRoleInput struct {
	Name        string   `json:"name" validate:"required,min=3"`
	Color       string   `json:"color" validate:"required"`
	Permissions []string `json:"permissions"`
}

// RolePatch is a partial role update; nil fields are left untouched.
type RolePatch struct {
	Name        *string   `json:"name" validate:"omitnil,min=3"`
	Color       *string   `json:"color"`
	Permissions *[]string `json:"permissions"`
}

// RoleService manages roles.
type RoleService interface {
	List(ctx context.Context) ([]domain.Role, error)
	Create(ctx context.Context, actor *domain.Principal, in CreateRoleInput) (*domain.Role, error)
	Update(ctx context.Context, actor *domain.Principal, id string, patch RolePatch) (*domain.Role, error)
	Delete(ctx context.Context, actor *domain.Principal, id string) error
}

// PermissionChecker answers permission queries for a principal.
type PermissionChecker interface {
	HasPermission(ctx context.Context, p *domain.Principal, perm string) (bool, error)
	// Require fails with a forbidden error unless p is staff holding perm.
	Require(ctx context.Context, p *domain.Principal, perm string) error
}
