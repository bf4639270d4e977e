package ports

import (
	"context"

	"github.com/luminosmc/community-api/internal/core/domain"
)

// PostRepository persists forum posts and their replies.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) error
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	// Update persists only the fields set in patch.
	Update(ctx context.Context, id string, patch PostPatch) error
	Delete(ctx context.Context, id string) error
	// AppendReply pushes a reply onto the post's reply list.
	AppendReply(ctx context.Context, id string, r domain.Reply) error
	Count(ctx context.Context) (int64, error)
}
