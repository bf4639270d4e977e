package service

import (
	"context"
	"slices"
	"sync"

	"github.com/luminosmc/community-api/internal/core/domain"
	"github.com/luminosmc/community-api/internal/core/ports"
)

type stubMemberRepo struct {
	members map[string]*domain.Member
}

func newStubMemberRepo() *stubMemberRepo {
	return &stubMemberRepo{members: make(map[string]*domain.Member)}
}

func cloneMember(m *domain.Member) *domain.Member {
	clone := *m
	return &clone
}

func (r *stubMemberRepo) Create(_ context.Context, m *domain.Member) error {
	for _, existing := range r.members {
		if existing.Username == m.Username {
			return domain.ErrUsernameTaken
		}
	}
	r.members[m.ID] = cloneMember(m)
	return nil
}

func (r *stubMemberRepo) FindByID(_ context.Context, id string) (*domain.Member, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	return cloneMember(m), nil
}

func (r *stubMemberRepo) FindByUsername(_ context.Context, username string) (*domain.Member, error) {
	for _, m := range r.members {
		if m.Username == username {
			return cloneMember(m), nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (r *stubMemberRepo) List(_ context.Context) ([]domain.Member, error) {
	out := make([]domain.Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMemberRepo) UpdatePassword(_ context.Context, id, hash string) error {
	m, ok := r.members[id]
	if !ok {
		return domain.ErrMemberNotFound
	}
	m.PasswordHash = hash
	return nil
}

func (r *stubMemberRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.members[id]; !ok {
		return domain.ErrMemberNotFound
	}
	delete(r.members, id)
	return nil
}

func (r *stubMemberRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.members)), nil
}

type stubStaffRepo struct {
	staff map[string]*domain.Staff
}

func newStubStaffRepo() *stubStaffRepo {
	return &stubStaffRepo{staff: make(map[string]*domain.Staff)}
}

func cloneStaff(s *domain.Staff) *domain.Staff {
	clone := *s
	clone.Roles = slices.Clone(s.Roles)
	return &clone
}

func (r *stubStaffRepo) Create(_ context.Context, s *domain.Staff) error {
	for _, existing := range r.staff {
		if existing.Username == s.Username {
			return domain.ErrUsernameTaken
		}
	}
	r.staff[s.ID] = cloneStaff(s)
	return nil
}

func (r *stubStaffRepo) FindByID(_ context.Context, id string) (*domain.Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, domain.ErrStaffNotFound
	}
	return cloneStaff(s), nil
}

func (r *stubStaffRepo) FindByUsername(_ context.Context, username string) (*domain.Staff, error) {
	for _, s := range r.staff {
		if s.Username == username {
			return cloneStaff(s), nil
		}
	}
	return nil, domain.ErrStaffNotFound
}

func (r *stubStaffRepo) FindBootstrapOwner(_ context.Context) (*domain.Staff, error) {
	for _, s := range r.staff {
		if s.BootstrapOwner {
			return cloneStaff(s), nil
		}
	}
	return nil, domain.ErrStaffNotFound
}

func (r *stubStaffRepo) List(_ context.Context) ([]domain.Staff, error) {
	out := make([]domain.Staff, 0, len(r.staff))
	for _, s := range r.staff {
		out = append(out, *cloneStaff(s))
	}
	return out, nil
}

func (r *stubStaffRepo) Update(_ context.Context, id string, patch ports.StaffPatch) error {
	s, ok := r.staff[id]
	if !ok {
		return domain.ErrStaffNotFound
	}
	if patch.Username != nil {
		s.Username = *patch.Username
	}
	if patch.PasswordHash != nil {
		s.PasswordHash = *patch.PasswordHash
	}
	if patch.Roles != nil {
		s.Roles = slices.Clone(*patch.Roles)
	}
	return nil
}

func (r *stubStaffRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.staff[id]; !ok {
		return domain.ErrStaffNotFound
	}
	delete(r.staff, id)
	return nil
}

func (r *stubStaffRepo) CountWithRole(_ context.Context, roleID string) (int64, error) {
	var n int64
	for _, s := range r.staff {
		if slices.Contains(s.Roles, roleID) {
			n++
		}
	}
	return n, nil
}

func (r *stubStaffRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.staff)), nil
}

type stubPostRepo struct {
	posts map[string]*domain.Post
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func clonePost(p *domain.Post) *domain.Post {
	clone := *p
	clone.Replies = slices.Clone(p.Replies)
	return &clone
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) error {
	r.posts[p.ID] = clonePost(p)
	return nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return clonePost(p), nil
}

func (r *stubPostRepo) List(_ context.Context) ([]domain.Post, error) {
	out := make([]domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *clonePost(p))
	}
	return out, nil
}

func (r *stubPostRepo) Update(_ context.Context, id string, patch ports.PostPatch) error {
	p, ok := r.posts[id]
	if !ok {
		return domain.ErrPostNotFound
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *stubPostRepo) AppendReply(_ context.Context, id string, reply domain.Reply) error {
	p, ok := r.posts[id]
	if !ok {
		return domain.ErrPostNotFound
	}
	p.Replies = append(p.Replies, reply)
	return nil
}

func (r *stubPostRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.posts)), nil
}

type stubProductRepo struct {
	products map[string]*domain.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) InsertMany(ctx context.Context, products []domain.Product) error {
	for i := range products {
		_ = r.Create(ctx, &products[i])
	}
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, id string, patch ports.ProductPatch) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Features != nil {
		p.Features = *patch.Features
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

type stubRoleRepo struct {
	roles map[string]*domain.Role
}

func newStubRoleRepo(roles ...domain.Role) *stubRoleRepo {
	r := &stubRoleRepo{roles: make(map[string]*domain.Role)}
	for i := range roles {
		role := roles[i]
		r.roles[role.ID] = &role
	}
	return r
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) error {
	if _, ok := r.roles[role.ID]; ok {
		return domain.ErrRoleExists
	}
	clone := *role
	r.roles[role.ID] = &clone
	return nil
}

func (r *stubRoleRepo) InsertMany(ctx context.Context, roles []domain.Role) error {
	for i := range roles {
		if err := r.Create(ctx, &roles[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *stubRoleRepo) FindByID(_ context.Context, id string) (*domain.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	clone := *role
	return &clone, nil
}

func (r *stubRoleRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Role, error) {
	var out []domain.Role
	for _, id := range ids {
		if role, ok := r.roles[id]; ok {
			out = append(out, *role)
		}
	}
	return out, nil
}

func (r *stubRoleRepo) List(_ context.Context) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, *role)
	}
	return out, nil
}

func (r *stubRoleRepo) Update(_ context.Context, id string, patch ports.RolePatch) error {
	role, ok := r.roles[id]
	if !ok {
		return domain.ErrRoleNotFound
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
	return nil
}

func (r *stubRoleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.roles[id]; !ok {
		return domain.ErrRoleNotFound
	}
	delete(r.roles, id)
	return nil
}

func (r *stubRoleRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.roles)), nil
}

// recordingBroadcaster keeps every event it is asked to send.
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []domain.Event
}

func (b *recordingBroadcaster) Broadcast(e domain.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBroadcaster) types() []domain.EventType {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.EventType, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Type)
	}
	return out
}

func (b *recordingBroadcaster) last() domain.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.events) == 0 {
		return domain.Event{}
	}
	return b.events[len(b.events)-1]
}

func staffPrincipal(username string, roles ...string) *domain.Principal {
	return &domain.Principal{Kind: domain.KindStaff, ID: username + "-id", Username: username, Roles: roles}
}

func memberPrincipal(username string) *domain.Principal {
	return &domain.Principal{Kind: domain.KindMember, ID: username + "-id", Username: username}
}
