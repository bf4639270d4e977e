package handler

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/luminosmc/community-api/internal/api/middleware"
	"github.com/luminosmc/community-api/internal/core/domain"
	"github.com/luminosmc/community-api/internal/core/ports"
)

func newJSONContext(method, target string, body io.Reader, p *domain.Principal) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if p != nil {
		middleware.SetPrincipal(c, p)
	}
	return c, rec
}

type stubAuthService struct {
	registerFn       func(ctx context.Context, in ports.RegisterInput) (*domain.Member, error)
	loginFn          func(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error)
	changePasswordFn func(ctx context.Context, actor *domain.Principal, in ports.ChangePasswordInput) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Member, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) LoginMember(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	return s.loginFn(ctx, in)
}

func (s *stubAuthService) LoginStaff(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	return s.loginFn(ctx, in)
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.Principal, error) {
	return nil, domain.ErrInvalidToken
}

func (s *stubAuthService) ChangePassword(ctx context.Context, actor *domain.Principal, in ports.ChangePasswordInput) error {
	return s.changePasswordFn(ctx, actor, in)
}

type stubPostService struct {
	posts    []domain.Post
	createFn func(actor *domain.Principal, in ports.CreatePostInput) (*domain.Post, error)
	updateFn func(actor *domain.Principal, id string, patch ports.PostPatch) (*domain.Post, error)
	deleteFn func(actor *domain.Principal, id string) error
	replyFn  func(actor *domain.Principal, id string, in ports.ReplyInput) (*domain.Reply, error)
}

func (s *stubPostService) List(context.Context) ([]domain.Post, error) { return s.posts, nil }

func (s *stubPostService) Create(_ context.Context, actor *domain.Principal, in ports.CreatePostInput) (*domain.Post, error) {
	return s.createFn(actor, in)
}

func (s *stubPostService) Update(_ context.Context, actor *domain.Principal, id string, patch ports.PostPatch) (*domain.Post, error) {
	return s.updateFn(actor, id, patch)
}

func (s *stubPostService) Delete(_ context.Context, actor *domain.Principal, id string) error {
	return s.deleteFn(actor, id)
}

func (s *stubPostService) AddReply(_ context.Context, actor *domain.Principal, id string, in ports.ReplyInput) (*domain.Reply, error) {
	return s.replyFn(actor, id, in)
}

type stubRoleService struct {
	roles    []domain.Role
	deleteFn func(actor *domain.Principal, id string) error
}

func (s *stubRoleService) List(context.Context) ([]domain.Role, error) { return s.roles, nil }

func (s *stubRoleService) Create(_ context.Context, _ *domain.Principal, in ports.CreateRoleInput) (*domain.Role, error) {
	return &domain.Role{ID: domain.RoleID(in.Name), Name: in.Name, Color: in.Color, Permissions: in.Permissions}, nil
}

func (s *stubRoleService) Update(context.Context, *domain.Principal, string, ports.RolePatch) (*domain.Role, error) {
	return nil, domain.ErrSystemRole
}

func (s *stubRoleService) Delete(_ context.Context, actor *domain.Principal, id string) error {
	return s.deleteFn(actor, id)
}

type stubMemberService struct {
	members []domain.Member
	deleted []string
}

func (s *stubMemberService) List(context.Context, *domain.Principal) ([]domain.Member, error) {
	return s.members, nil
}

func (s *stubMemberService) Delete(_ context.Context, _ *domain.Principal, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubStaffService struct {
	updateFn func(id string, in ports.UpdateStaffInput) (*domain.Staff, error)
	deleteFn func(id string) error
}

func (s *stubStaffService) List(context.Context, *domain.Principal) ([]domain.Staff, error) {
	return nil, nil
}

func (s *stubStaffService) Create(_ context.Context, _ *domain.Principal, in ports.CreateStaffInput) (*domain.Staff, error) {
	return &domain.Staff{ID: "s1", Username: in.Username, Roles: in.Roles}, nil
}

func (s *stubStaffService) Update(_ context.Context, _ *domain.Principal, id string, in ports.UpdateStaffInput) (*domain.Staff, error) {
	return s.updateFn(id, in)
}

func (s *stubStaffService) Delete(_ context.Context, _ *domain.Principal, id string) error {
	return s.deleteFn(id)
}

type stubStatsService struct {
	stats *ports.Stats
	err   error
}

func (s *stubStatsService) Get(context.Context, *domain.Principal) (*ports.Stats, error) {
	return s.stats, s.err
}

type stubProductService struct {
	products []domain.Product
	deleteFn func(actor *domain.Principal, id string) error
}

func (s *stubProductService) List(context.Context) ([]domain.Product, error) { return s.products, nil }

func (s *stubProductService) Create(_ context.Context, _ *domain.Principal, in ports.CreateProductInput) (*domain.Product, error) {
	return &domain.Product{ID: "pr1", Name: in.Name, Price: in.Price, Features: in.Features, Featured: in.Featured}, nil
}

func (s *stubProductService) Update(_ context.Context, _ *domain.Principal, id string, patch ports.ProductPatch) (*domain.Product, error) {
	p := &domain.Product{ID: id, Name: "VIP", Price: 4.99}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	return p, nil
}

func (s *stubProductService) Delete(_ context.Context, actor *domain.Principal, id string) error {
	return s.deleteFn(actor, id)
}
