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

// StaffService administers staff accounts. Every operation needs
// manage_staff; the bootstrap owner can never be deleted.
type StaffService struct {
	repo   ports.StaffRepository
	perms  ports.PermissionChecker
	events ports.Broadcaster
	log    zerolog.Logger
}

func NewStaffService(repo ports.StaffRepository, perms ports.PermissionChecker, events ports.Broadcaster, log zerolog.Logger) *StaffService {
	return &StaffService{repo: repo, perms: perms, events: events, log: log}
}

func (s *StaffService) List(ctx context.Context, actor *domain.Principal) ([]domain.Staff, error) {
	if err := s.perms.Require(ctx, actor, domain.PermManageStaff); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *StaffService) Create(ctx context.Context, actor *domain.Principal, in ports.CreateStaffInput) (*domain.Staff, error) {
	if err := s.perms.Require(ctx, actor, domain.PermManageStaff); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	roles := in.Roles
	if roles == nil {
		roles = []string{}
	}
	staff := &domain.Staff{
		ID:           uuid.NewString(),
		Username:     in.Username,
		PasswordHash: hash,
		Roles:        roles,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, staff); err != nil {
		return nil, err
	}

	s.log.Info().Str("staff_id", staff.ID).Str("username", staff.Username).Strs("roles", staff.Roles).Msg("staff created")
	s.events.Broadcast(domain.Event{Type: domain.EventStaffCreated, Staff: staff})
	return staff, nil
}

func (s *StaffService) Update(ctx context.Context, actor *domain.Principal, id string, in ports.UpdateStaffInput) (*domain.Staff, error) {
	if err := s.perms.Require(ctx, actor, domain.PermManageStaff); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	staff, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := ports.StaffPatch{Username: in.Username, Roles: in.Roles}
	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	if !patch.Empty() {
		if err := s.repo.Update(ctx, id, patch); err != nil {
			return nil, err
		}
		if patch.Username != nil {
			staff.Username = *patch.Username
		}
		if patch.PasswordHash != nil {
			staff.PasswordHash = *patch.PasswordHash
		}
		if patch.Roles != nil {
			staff.Roles = *patch.Roles
		}
	}

	s.events.Broadcast(domain.Event{Type: domain.EventStaffUpdated, StaffID: id})
	return staff, nil
}

func (s *StaffService) Delete(ctx context.Context, actor *domain.Principal, id string) error {
	if err := s.perms.Require(ctx, actor, domain.PermManageStaff); err != nil {
		return err
	}
	staff, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if staff.BootstrapOwner {
		return domain.ErrOwnerUndeletable
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("staff_id", id).Str("by", actor.Username).Msg("staff deleted")
	s.events.Broadcast(domain.Event{Type: domain.EventStaffDeleted, StaffID: id})
	return nil
}
