package ports

import (
	"context"

	"github.com/luminosmc/community-api/internal/core/domain"
)

// Stats aggregates collection sizes for the admin dashboard.
type Stats struct {
	Posts    int64 `json:"posts"`
	Users    int64 `json:"users"`
	Staff    int64 `json:"staff"`
	Products int64 `json:"products"`
}

// StatsService reports dashboard counts.
type StatsService interface {
	Get(ctx context.Context, actor *domain.Principal) (*Stats, error)
}
