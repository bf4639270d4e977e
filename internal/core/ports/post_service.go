package ports

import (
	"context"

	"github.com/luminosmc/community-api/internal/core/domain"
)

// CreatePostInput carries a new forum thread.
type CreatePostInput struct {
	Title   string `json:"title" validate:"required,min=5,max=100"`
	Content string `json:"content" validate:"required,min=10,max=1000"`
}

// PostPatch is a partial post update; nil fields are left untouched.
type PostPatch struct {
	Title   *string `json:"title" validate:"omitnil,min=5,max=100"`
	Content *string `json:"content" validate:"omitnil,min=10,max=1000"`
}

// ReplyInput carries a reply body.
type ReplyInput struct {
	Content string `json:"content" validate:"required,min=3"`
}

// PostService handles forum threads and replies.
type PostService interface {
	List(ctx context.Context) ([]domain.Post, error)
	Create(ctx context.Context, actor *domain.Principal, in CreatePostInput) (*domain.Post, error)
	Update(ctx context.Context, actor *domain.Principal, id string, patch PostPatch) (*domain.Post, error)
	Delete(ctx context.Context, actor *domain.Principal, id string) error
	AddReply(ctx context.Context, actor *domain.Principal, id string, in ReplyInput) (*domain.Reply, error)
}
