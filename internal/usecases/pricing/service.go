// Package pricing orquestra o núcleo de estimação de demanda para um produto:
// busca o histórico ordenado, treina um modelo novo por requisição e monta as
// respostas da API. Nenhum estado é compartilhado entre requisições.
package pricing

import (
	"context"

	"github.com/vfg2006/price-optimization-api/infrastructure/repository"
	"github.com/vfg2006/price-optimization-api/internal/domain"
	"github.com/vfg2006/price-optimization-api/internal/optimizer"
	"github.com/vfg2006/price-optimization-api/pkg/log"
)

type PricingService interface {
	TrainDemandModel(ctx context.Context, productID string) (*domain.DemandModelResponse, error)
	OptimizePrice(ctx context.Context, productID string, targetRevenue *float64) (*domain.OptimizationResponse, error)
	Elasticity(ctx context.Context, productID string) (*domain.ElasticityResponse, error)
}

type Service struct {
	productRepo repository.ProductRepository
	historyRepo repository.PriceHistoryRepository
}

func NewService(
	productRepo repository.ProductRepository,
	historyRepo repository.PriceHistoryRepository,
) PricingService {
	return &Service{
		productRepo: productRepo,
		historyRepo: historyRepo,
	}
}

// TrainDemandModel treina o modelo de demanda do produto e devolve o resumo
// descritivo do ajuste
func (s *Service) TrainDemandModel(ctx context.Context, productID string) (*domain.DemandModelResponse, error) {
	records, err := s.loadRecords(ctx, productID)
	if err != nil {
		return nil, err
	}

	model, err := optimizer.Train(records)
	if err != nil {
		return nil, err
	}

	return &domain.DemandModelResponse{
		ProductID:    productID,
		ModelSummary: model.Summary(),
	}, nil
}

// OptimizePrice treina e varre a grade de preços do produto. targetRevenue é
// repassado ao núcleo e ecoado na resposta, mas hoje não restringe a busca.
func (s *Service) OptimizePrice(ctx context.Context, productID string, targetRevenue *float64) (*domain.OptimizationResponse, error) {
	records, err := s.loadRecords(ctx, productID)
	if err != nil {
		return nil, err
	}

	result, err := optimizer.Optimize(records, targetRevenue)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"product_id":      productID,
		"current_price":   result.CurrentPrice,
		"optimized_price": result.OptimizedPrice,
	}).Info("pricing: otimização de preço concluída")

	return &domain.OptimizationResponse{
		ProductID:          productID,
		TargetRevenue:      targetRevenue,
		OptimizationResult: *result,
	}, nil
}

// Elasticity calcula a elasticidade pontual da demanda do produto
func (s *Service) Elasticity(ctx context.Context, productID string) (*domain.ElasticityResponse, error) {
	records, err := s.loadRecords(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &domain.ElasticityResponse{
		ProductID:  productID,
		Elasticity: optimizer.Elasticity(records),
	}, nil
}

// loadRecords busca produto e histórico e converte para o formato do núcleo
func (s *Service) loadRecords(ctx context.Context, productID string) ([]optimizer.Record, error) {
	if productID == "" {
		return nil, ErrProductIDRequired
	}

	product, err := s.productRepo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	entries, err := s.historyRepo.ListByProductID(product.ID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoPriceHistory
	}

	return toRecords(product, entries), nil
}

// toRecords converte as linhas do histórico para os mapas consumidos pelo
// núcleo. product_score vive na tabela de produtos, não no histórico; cada
// registro recebe o valor do produto para a feature ficar disponível.
func toRecords(product *domain.Product, entries []*domain.PriceHistoryEntry) []optimizer.Record {
	records := make([]optimizer.Record, len(entries))
	for i, entry := range entries {
		records[i] = optimizer.Record{
			"unit_price":    entry.UnitPrice,
			"freight_price": entry.FreightPrice,
			"product_score": product.ProductScore,
			"weekday":       float64(entry.Weekday),
			"weekend":       float64(entry.Weekend),
			"holiday":       float64(entry.Holiday),
			"month":         float64(entry.Month),
			"s":             entry.S,
			"lag_price":     entry.LagPrice,
			"qty":           float64(entry.Qty),
		}
	}
	return records
}
