package ports

import (
	"context"

	"github.com/luminosmc/community-api/internal/core/domain"
)

// CreateProductInput carries a new catalog entry.
type CreateProductInput struct {
	Name     string   `json:"name" validate:"required"`
	Price    float64  `json:"price" validate:"gt=0"`
	Features []string `json:"features" validate:"min=1"`
	Featured bool     `json:"featured"`
}

// ProductPatch is a partial product update; nil fields are left untouched.
type ProductPatch struct {
	Name     *string   `json:"name" validate:"omitnil,min=1"`
	Price    *float64  `json:"price" validate:"omitnil,gt=0"`
	Features *[]string `json:"features" validate:"omitnil,min=1"`
	Featured *bool     `json:"featured"`
}

// ProductService manages the shop catalog.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, actor *domain.Principal, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, actor *domain.Principal, id string, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, actor *domain.Principal, id string) error
}
