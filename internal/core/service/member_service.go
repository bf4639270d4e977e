package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/luminosmc/community-api/internal/core/domain"
	"github.com/luminosmc/community-api/internal/core/ports"
)

// MemberService lets staff holding manage_users administer forum members.
type MemberService struct {
	repo   ports.MemberRepository
	perms  ports.PermissionChecker
	events ports.Broadcaster
	log    zerolog.Logger
}

func NewMemberService(repo ports.MemberRepository, perms ports.PermissionChecker, events ports.Broadcaster, log zerolog.Logger) *MemberService {
	return &MemberService{repo: repo, perms: perms, events: events, log: log}
}

func (s *MemberService) List(ctx context.Context, actor *domain.Principal) ([]domain.Member, error) {
	if err := s.perms.Require(ctx, actor, domain.PermManageUsers); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *MemberService) Delete(ctx context.Context, actor *domain.Principal, id string) error {
	if err := s.perms.Require(ctx, actor, domain.PermManageUsers); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Str("by", actor.Username).Msg("member deleted")
	s.events.Broadcast(domain.Event{Type: domain.EventUserDeleted, UserID: id})
	return nil
}
