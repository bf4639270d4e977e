package ports

import (
	"context"

	"github.com/luminosmc/community-api/internal/core/domain"
)

// CreateStaffInput carries a new staff account.
type CreateStaffInput struct {
	Username string   `json:"username" validate:"required,min=3"`
	Password string   `json:"password" validate:"required,min=4"`
	Roles    []string `json:"roles"`
}

// UpdateStaffInput is a partial staff update; nil fields are left untouched.
type UpdateStaffInput struct {
	Username *string   `json:"username" validate:"omitnil,min=3"`
	Password *string   `json:"password" validate:"omitnil,min=4"`
	Roles    *[]string `json:"roles"`
}

// StaffService administers staff accounts.
type StaffService interface {
	List(ctx context.Context, actor *domain.Principal) ([]domain.Staff, error)
	Create(ctx context.Context, actor *domain.Principal, in CreateStaffInput) (*domain.Staff, error)
	Update(ctx context.Context, actor *domain.Principal, id string, in UpdateStaffInput) (*domain.Staff, error)
	Delete(ctx context.Context, actor *domain.Principal, id string) error
}

// MemberService lets staff administer forum members.
type MemberService interface {
	List(ctx context.Context, actor *domain.Principal) ([]domain.Member, error)
	Delete(ctx context.Context, actor *domain.Principal, id string) error
}
