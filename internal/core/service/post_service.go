package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/luminosmc/community-api/internal/core/domain"
	"github.com/luminosmc/community-api/internal/core/ports"
	"github.com/luminosmc/community-api/internal/core/validation"
)

// PostService implements the forum. Authors may always modify their own
// posts; anyone else needs edit_any_post or delete_any_post.
type PostService struct {
	repo   ports.PostRepository
	perms  ports.PermissionChecker
	events ports.Broadcaster
	log    zerolog.Logger
}

func NewPostService(repo ports.PostRepository, perms ports.PermissionChecker, events ports.Broadcaster, log zerolog.Logger) *PostService {
	return &PostService{repo: repo, perms: perms, events: events, log: log}
}

func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.repo.List(ctx)
}

func (s *PostService) Create(ctx context.Context, actor *domain.Principal, in ports.CreatePostInput) (*domain.Post, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	post := &domain.Post{
		ID:      uuid.NewString(),
		Title:   in.Title,
		Content: in.Content,
		Author:  actor.Username,
		Date:    time.Now().UTC(),
		Replies: []domain.Reply{},
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.log.Debug().Str("post_id", post.ID).Str("author", post.Author).Msg("post created")
	s.events.Broadcast(domain.Event{Type: domain.EventPostCreated, Post: post})
	return post, nil
}

// Update applies patch. Lookup and authorization run before field validation.
func (s *PostService) Update(ctx context.Context, actor *domain.Principal, id string, patch ports.PostPatch) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actor, post, domain.PermEditAnyPost); err != nil {
		return nil, err
	}
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}

	if patch.Title != nil || patch.Content != nil {
		if err := s.repo.Update(ctx, id, patch); err != nil {
			return nil, err
		}
		if patch.Title != nil {
			post.Title = *patch.Title
		}
		if patch.Content != nil {
			post.Content = *patch.Content
		}
	}

	s.events.Broadcast(domain.Event{Type: domain.EventPostUpdated, PostID: id})
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, actor *domain.Principal, id string) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, actor, post, domain.PermDeleteAnyPost); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Debug().Str("post_id", id).Str("by", actor.Username).Msg("post deleted")
	s.events.Broadcast(domain.Event{Type: domain.EventPostDeleted, PostID: id})
	return nil
}

// AddReply appends a reply. Any authenticated principal may reply.
func (s *PostService) AddReply(ctx context.Context, actor *domain.Principal, id string, in ports.ReplyInput) (*domain.Reply, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	reply := domain.Reply{
		Content: in.Content,
		Author:  actor.Username,
		Date:    time.Now().UTC(),
	}
	if err := s.repo.AppendReply(ctx, id, reply); err != nil {
		return nil, err
	}

	s.events.Broadcast(domain.Event{Type: domain.EventReplyAdded, PostID: id})
	return &reply, nil
}

func (s *PostService) authorize(ctx context.Context, actor *domain.Principal, post *domain.Post, perm string) error {
	if post.Author == actor.Username {
		return nil
	}
	ok, err := s.perms.HasPermission(ctx, actor, perm)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotPostAuthor
	}
	return nil
}
