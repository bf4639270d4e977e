package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/luminosmc/community-api/internal/core/domain"
	"github.com/luminosmc/community-api/internal/core/ports"
)

// StatsService counts the main collections for staff dashboards.
type StatsService struct {
	posts    ports.PostRepository
	members  ports.MemberRepository
	staff    ports.StaffRepository
	products ports.ProductRepository
}

func NewStatsService(posts ports.PostRepository, members ports.MemberRepository, staff ports.StaffRepository, products ports.ProductRepository) *StatsService {
	return &StatsService{posts: posts, members: members, staff: staff, products: products}
}

// Get is staff-only but needs no specific permission.
func (s *StatsService) Get(ctx context.Context, actor *domain.Principal) (*ports.Stats, error) {
	if err := RequireStaff(actor); err != nil {
		return nil, err
	}

	var st ports.Stats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { st.Posts, err = s.posts.Count(gctx); return })
	g.Go(func() (err error) { st.Users, err = s.members.Count(gctx); return })
	g.Go(func() (err error) { st.Staff, err = s.staff.Count(gctx); return })
	g.Go(func() (err error) { st.Products, err = s.products.Count(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &st, nil
}
