// Package analytics monta o resumo agregado do catálogo e do histórico de
// preços a partir das agregações feitas no banco.
package analytics

import (
	"context"

	"github.com/vfg2006/price-optimization-api/infrastructure/repository"
	"github.com/vfg2006/price-optimization-api/internal/domain"
	"github.com/vfg2006/price-optimization-api/pkg/utils"
)

type AnalyticsService interface {
	Summary(ctx context.Context) (*domain.AnalyticsSummary, error)
}

type Service struct {
	productRepo repository.ProductRepository
	historyRepo repository.PriceHistoryRepository
}

func NewService(
	productRepo repository.ProductRepository,
	historyRepo repository.PriceHistoryRepository,
) AnalyticsService {
	return &Service{
		productRepo: productRepo,
		historyRepo: historyRepo,
	}
}

func (s *Service) Summary(_ context.Context) (*domain.AnalyticsSummary, error) {
	totalProducts, err := s.productRepo.Count()
	if err != nil {
		return nil, err
	}

	aggregate, err := s.historyRepo.Aggregate()
	if err != nil {
		return nil, err
	}

	return &domain.AnalyticsSummary{
		TotalProducts: totalProducts,
		TotalRecords:  aggregate.TotalRecords,
		TotalRevenue:  utils.RoundWithTwoDecimalPlace(aggregate.TotalRevenue),
		AveragePrice:  utils.RoundWithTwoDecimalPlace(aggregate.AveragePrice),
	}, nil
}
