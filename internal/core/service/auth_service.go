package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/luminosmc/community-api/internal/core/domain"
	"github.com/luminosmc/community-api/internal/core/ports"
	"github.com/luminosmc/community-api/internal/core/validation"
)

const tokenType = "bearer"

// Claims is the JWT payload. Subject holds the username.
type Claims struct {
	Type domain.PrincipalKind `json:"type"`
	jwt.RegisteredClaims
}

// AuthService implements registration, login and token resolution for both
// account namespaces.
type AuthService struct {
	members   ports.MemberRepository
	staff     ports.StaffRepository
	events    ports.Broadcaster
	jwtSecret []byte
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	members ports.MemberRepository,
	staff ports.StaffRepository,
	events ports.Broadcaster,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		members:   members,
		staff:     staff,
		events:    events,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Member, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	member := &domain.Member{
		ID:           uuid.NewString(),
		Username:     in.Username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", member.Username).Msg("member registered")
	s.events.Broadcast(domain.Event{Type: domain.EventUserRegistered, User: member})
	return member, nil
}

func (s *AuthService) LoginMember(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	member, err := s.members.FindByUsername(ctx, in.Username)
	if errors.Is(err, domain.ErrMemberNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !checkPassword(member.PasswordHash, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(member.Username, domain.KindMember)
	if err != nil {
		return nil, err
	}
	return &ports.LoginResult{AccessToken: token, TokenType: tokenType, User: member}, nil
}

func (s *AuthService) LoginStaff(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	staff, err := s.staff.FindByUsername(ctx, in.Username)
	if errors.Is(err, domain.ErrStaffNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !checkPassword(staff.PasswordHash, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(staff.Username, domain.KindStaff)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("username", staff.Username).Msg("staff login")
	return &ports.LoginResult{AccessToken: token, TokenType: tokenType, User: staff}, nil
}

// Authenticate validates the token signature and expiry and loads the account
// it names. A token whose account no longer exists is rejected.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}

	switch claims.Type {
	case domain.KindStaff:
		staff, err := s.staff.FindByUsername(ctx, claims.Subject)
		if errors.Is(err, domain.ErrStaffNotFound) {
			return nil, domain.ErrInvalidToken
		}
		if err != nil {
			return nil, err
		}
		return staff.Principal(), nil
	case domain.KindMember, "":
		member, err := s.members.FindByUsername(ctx, claims.Subject)
		if errors.Is(err, domain.ErrMemberNotFound) {
			return nil, domain.ErrInvalidToken
		}
		if err != nil {
			return nil, err
		}
		return member.Principal(), nil
	default:
		return nil, domain.ErrInvalidToken
	}
}

// ChangePassword checks the caller's current password and stores the new one
// in the caller's own collection.
func (s *AuthService) ChangePassword(ctx context.Context, actor *domain.Principal, in ports.ChangePasswordInput) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	if !checkPassword(actor.PasswordHash, in.OldPassword) {
		return domain.ErrWrongPassword
	}
	hash, err := hashPassword(in.NewPassword)
	if err != nil {
		return err
	}

	if actor.Kind == domain.KindStaff {
		err = s.staff.Update(ctx, actor.ID, ports.StaffPatch{PasswordHash: &hash})
	} else {
		err = s.members.UpdatePassword(ctx, actor.ID, hash)
	}
	if err != nil {
		return err
	}
	s.log.Info().Str("username", actor.Username).Str("kind", string(actor.Kind)).Msg("password changed")
	return nil
}

func (s *AuthService) generateToken(username string, kind domain.PrincipalKind) (string, error) {
	now := time.Now()
	claims := Claims{
		Type: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.jwtSecret)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.Invalid("password must be at most 72 bytes")
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
