// Package catalog expõe as consultas de leitura sobre o catálogo de produtos
// e o histórico de preços.
package catalog

import (
	"context"
	"errors"

	"github.com/vfg2006/price-optimization-api/infrastructure/repository"
	"github.com/vfg2006/price-optimization-api/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

type CatalogService interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	PriceHistory(ctx context.Context, productID string) ([]*domain.PriceHistoryDetail, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type Service struct {
	productRepo    repository.ProductRepository
	historyRepo    repository.PriceHistoryRepository
	competitorRepo repository.CompetitorPriceRepository
}

func NewService(
	productRepo repository.ProductRepository,
	historyRepo repository.PriceHistoryRepository,
	competitorRepo repository.CompetitorPriceRepository,
) CatalogService {
	return &Service{
		productRepo:    productRepo,
		historyRepo:    historyRepo,
		competitorRepo: competitorRepo,
	}
}

func (s *Service) ListProducts(_ context.Context) ([]*domain.Product, error) {
	return s.productRepo.List()
}

func (s *Service) GetProduct(_ context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// PriceHistory devolve o histórico do produto em ordem cronológica, cada
// período acompanhado das observações dos concorrentes
func (s *Service) PriceHistory(ctx context.Context, productID string) ([]*domain.PriceHistoryDetail, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	entries, err := s.historyRepo.ListByProductID(product.ID)
	if err != nil {
		return nil, err
	}

	details := make([]*domain.PriceHistoryDetail, len(entries))
	for i, entry := range entries {
		competitors, err := s.competitorRepo.ListByPriceHistoryID(entry.ID)
		if err != nil {
			return nil, err
		}
		details[i] = &domain.PriceHistoryDetail{
			PriceHistoryEntry: *entry,
			Competitors:       competitors,
		}
	}
	return details, nil
}

func (s *Service) ListCategories(_ context.Context) ([]string, error) {
	return s.productRepo.ListCategories()
}
