package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/luminosmc/community-api/internal/core/domain"
	"github.com/luminosmc/community-api/internal/core/ports"
	"github.com/luminosmc/community-api/internal/core/validation"
)

// RoleService manages roles. Mutations need manage_roles; system roles are
// frozen and a role still assigned to staff cannot be deleted.
type RoleService struct {
	roles  ports.RoleRepository
	staff  ports.StaffRepository
	perms  ports.PermissionChecker
	events ports.Broadcaster
	log    zerolog.Logger
}

func NewRoleService(
	roles ports.RoleRepository,
	staff ports.StaffRepository,
	perms ports.PermissionChecker,
	events ports.Broadcaster,
	log zerolog.Logger,
) *RoleService {
	return &RoleService{roles: roles, staff: staff, perms: perms, events: events, log: log}
}

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.roles.List(ctx)
}

// Create derives the role id from its name. A taken id is rejected, never
// renamed.
func (s *RoleService) Create(ctx context.Context, actor *domain.Principal, in ports.CreateRoleInput) (*domain.Role, error) {
	if err := s.perms.Require(ctx, actor, domain.PermManageRoles); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	id := domain.RoleID(in.Name)
	if _, err := s.roles.FindByID(ctx, id); err == nil {
		return nil, domain.ErrRoleExists
	} else if !errors.Is(err, domain.ErrRoleNotFound) {
		return nil, err
	}

	role := &domain.Role{
		ID:          id,
		Name:        in.Name,
		Color:       in.Color,
		Permissions: in.Permissions,
	}
	if role.Permissions == nil {
		role.Permissions = []string{}
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}

	s.log.Info().Str("role_id", role.ID).Strs("permissions", role.Permissions).Msg("role created")
	s.events.Broadcast(domain.Event{Type: domain.EventRoleCreated, Role: role})
	return role, nil
}

func (s *RoleService) Update(ctx context.Context, actor *domain.Principal, id string, patch ports.RolePatch) (*domain.Role, error) {
	if err := s.perms.Require(ctx, actor, domain.PermManageRoles); err != nil {
		return nil, err
	}
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role.System {
		return nil, domain.ErrSystemRole
	}

	if patch.Name != nil || patch.Color != nil || patch.Permissions != nil {
		if err := s.roles.Update(ctx, id, patch); err != nil {
			return nil, err
		}
		if patch.Name != nil {
			role.Name = *patch.Name
		}
		if patch.Color != nil {
			role.Color = *patch.Color
		}
		if patch.Permissions != nil {
			role.Permissions = *patch.Permissions
		}
	}

	s.events.Broadcast(domain.Event{Type: domain.EventRoleUpdated, RoleID: id})
	return role, nil
}

// Delete refuses system roles and roles still referenced by staff. The
// reference scan and the delete are separate writes; a concurrent staff
// update can still leave a dangling role id behind.
func (s *RoleService) Delete(ctx context.Context, actor *domain.Principal, id string) error {
	if err := s.perms.Require(ctx, actor, domain.PermManageRoles); err != nil {
		return err
	}
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if role.System {
		return domain.ErrSystemRole
	}

	n, err := s.staff.CountWithRole(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrRoleInUse(int(n))
	}
	if err := s.roles.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("role_id", id).Str("by", actor.Username).Msg("role deleted")
	s.events.Broadcast(domain.Event{Type: domain.EventRoleDeleted, RoleID: id})
	return nil
}
