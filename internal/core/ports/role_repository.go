package ports

import (
	"context"

	"github.com/luminosmc/community-api/internal/core/domain"
)

// RoleRepository persists roles keyed by their derived id.
type RoleRepository interface {
	// Create inserts a role. Returns domain.ErrRoleExists when the id is taken.
	Create(ctx context.Context, r *domain.Role) error
	InsertMany(ctx context.Context, roles []domain.Role) error
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	// FindByIDs returns the roles whose ids are in ids. Unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
	Update(ctx context.Context, id string, patch RolePatch) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
