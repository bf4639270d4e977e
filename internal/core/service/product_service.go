package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/luminosmc/community-api/internal/core/domain"
	"github.com/luminosmc/community-api/internal/core/ports"
	"github.com/luminosmc/community-api/internal/core/validation"
)

// ProductService manages the shop catalog. Mutations need manage_products.
type ProductService struct {
	repo   ports.ProductRepository
	perms  ports.PermissionChecker
	events ports.Broadcaster
	log    zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, perms ports.PermissionChecker, events ports.Broadcaster, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, perms: perms, events: events, log: log}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Create(ctx context.Context, actor *domain.Principal, in ports.CreateProductInput) (*domain.Product, error) {
	if err := s.perms.Require(ctx, actor, domain.PermManageProducts); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Price:    in.Price,
		Features: in.Features,
		Featured: in.Featured,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("product created")
	s.events.Broadcast(domain.Event{Type: domain.EventProductCreated, Product: product})
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, actor *domain.Principal, id string, patch ports.ProductPatch) (*domain.Product, error) {
	if err := s.perms.Require(ctx, actor, domain.PermManageProducts); err != nil {
		return nil, err
	}
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil || patch.Price != nil || patch.Features != nil || patch.Featured != nil {
		if err := s.repo.Update(ctx, id, patch); err != nil {
			return nil, err
		}
		if patch.Name != nil {
			product.Name = *patch.Name
		}
		if patch.Price != nil {
			product.Price = *patch.Price
		}
		if patch.Features != nil {
			product.Features = *patch.Features
		}
		if patch.Featured != nil {
			product.Featured = *patch.Featured
		}
	}

	s.events.Broadcast(domain.Event{Type: domain.EventProductUpdated, ProductID: id})
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, actor *domain.Principal, id string) error {
	if err := s.perms.Require(ctx, actor, domain.PermManageProducts); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("product_id", id).Msg("product deleted")
	s.events.Broadcast(domain.Event{Type: domain.EventProductDeleted, ProductID: id})
	return nil
}
