package ports

import (
	"context"

	"github.com/luminosmc/community-api/internal/core/domain"
)

// RegisterInput carries a member sign-up request.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=4"`
}

// LoginInput carries credentials for either login endpoint.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordInput carries a self-service password change.
type ChangePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=4"`
}

// LoginResult is returned by both login operations.
type LoginResult struct {
	AccessToken string
	TokenType   string
	User        any
}

// AuthService covers registration, login and token resolution.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.Member, error)
	LoginMember(ctx context.Context, in LoginInput) (*LoginResult, error)
	LoginStaff(ctx context.Context, in LoginInput) (*LoginResult, error)
	// Authenticate resolves a bearer token to the principal it names.
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
	ChangePassword(ctx context.Context, actor *domain.Principal, in ChangePasswordInput) error
}
