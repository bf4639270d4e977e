package ports

import (
	"context"

	"github.com/luminosmc/community-api/internal/core/domain"
)

// MemberRepository persists forum members (the users collection).
type MemberRepository interface {
	// Create inserts a member. Returns domain.ErrUsernameTaken on a duplicate username.
	Create(ctx context.Context, m *domain.Member) error
	FindByID(ctx context.Context, id string) (*domain.Member, error)
	FindByUsername(ctx context.Context, username string) (*domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// Delete removes a member. Returns domain.ErrMemberNotFound when nothing was deleted.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
