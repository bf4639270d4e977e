package ports

import (
	"context"

	"github.com/luminosmc/community-api/internal/core/domain"
)

// ProductRepository persists the shop catalog.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	InsertMany(ctx context.Context, products []domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) error
	// Delete removes a product. Returns domain.ErrProductNotFound when nothing was deleted.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
