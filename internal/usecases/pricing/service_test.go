package pricing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/price-optimization-api/infrastructure/repository/mocks"
	"github.com/vfg2006/price-optimization-api/internal/domain"
	"github.com/vfg2006/price-optimization-api/internal/optimizer"
	"github.com/vfg2006/price-optimization-api/internal/usecases/pricing"
	"github.com/vfg2006/price-optimization-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

const (
	testInternalID = "abc123def456"
	testProductID  = "bed1"
)

func testProduct() *domain.Product {
	return &domain.Product{
		ID:                  testInternalID,
		ProductID:           testProductID,
		ProductCategoryName: "bed_bath_table",
		ProductScore:        4.1,
	}
}

func testHistory() []*domain.PriceHistoryEntry {
	prices := []float64{10, 10, 12, 12, 14}
	qtys := []int{100, 98, 90, 88, 80}
	lags := []float64{10, 10, 10, 12, 12}

	entries := make([]*domain.PriceHistoryEntry, len(prices))
	for i := range prices {
		entries[i] = &domain.PriceHistoryEntry{
			ID:        "ph000000000" + string(rune('a'+i)),
			ProductID: testInternalID,
			UnitPrice: prices[i],
			Qty:       qtys[i],
			LagPrice:  lags[i],
			Month:     i + 1,
			Year:      2017,
			Weekday:   22,
			S:         0.8,
		}
	}
	return entries
}

func newTestService(t *testing.T) (pricing.PricingService, *mocks.MockProductRepository, *mocks.MockPriceHistoryRepository) {
	ctrl := gomock.NewController(t)
	productRepo := mocks.NewMockProductRepository(ctrl)
	historyRepo := mocks.NewMockPriceHistoryRepository(ctrl)
	return pricing.NewService(productRepo, historyRepo), productRepo, historyRepo
}

func TestOptimizePrice(t *testing.T) {
	svc, productRepo, historyRepo := newTestService(t)

	productRepo.EXPECT().GetByProductID(testProductID).Return(testProduct(), nil)
	historyRepo.EXPECT().ListByProductID(testInternalID).Return(testHistory(), nil)

	resp, err := svc.OptimizePrice(context.Background(), testProductID, nil)
	require.NoError(t, err)

	assert.Equal(t, testProductID, resp.ProductID)
	assert.Nil(t, resp.TargetRevenue)
	assert.Equal(t, 14.0, resp.CurrentPrice)
	assert.Len(t, resp.Scenarios, 50)
	assert.Greater(t, resp.OptimizedPrice, 0.0)
}

func TestOptimizePrice_EcoaTargetRevenue(t *testing.T) {
	svc, productRepo, historyRepo := newTestService(t)

	productRepo.EXPECT().GetByProductID(testProductID).Return(testProduct(), nil)
	historyRepo.EXPECT().ListByProductID(testInternalID).Return(testHistory(), nil)

	target := 2500.0
	resp, err := svc.OptimizePrice(context.Background(), testProductID, &target)
	require.NoError(t, err)

	require.NotNil(t, resp.TargetRevenue)
	assert.Equal(t, target, *resp.TargetRevenue)
}

func TestTrainDemandModel(t *testing.T) {
	svc, productRepo, historyRepo := newTestService(t)

	productRepo.EXPECT().GetByProductID(testProductID).Return(testProduct(), nil)
	historyRepo.EXPECT().ListByProductID(testInternalID).Return(testHistory(), nil)

	resp, err := svc.TrainDemandModel(context.Background(), testProductID)
	require.NoError(t, err)

	assert.Equal(t, testProductID, resp.ProductID)
	assert.GreaterOrEqual(t, resp.RSquared, 0.0)
	assert.LessOrEqual(t, resp.RSquared, 1.0)
	assert.Contains(t, resp.FeatureNames, "product_score")
}

func TestElasticity(t *testing.T) {
	svc, productRepo, historyRepo := newTestService(t)

	productRepo.EXPECT().GetByProductID(testProductID).Return(testProduct(), nil)
	historyRepo.EXPECT().ListByProductID(testInternalID).Return(testHistory(), nil)

	resp, err := svc.Elasticity(context.Background(), testProductID)
	require.NoError(t, err)

	assert.Equal(t, testProductID, resp.ProductID)
	// Preço 10->14 (+40%), quantidade 100->80 (-20%): elasticidade -0.5
	assert.InDelta(t, -0.5, resp.Elasticity, 1e-9)
}

func TestOptimizePrice_ProdutoNaoEncontrado(t *testing.T) {
	svc, productRepo, _ := newTestService(t)

	productRepo.EXPECT().GetByProductID("missing").Return(nil, nil)

	resp, err := svc.OptimizePrice(context.Background(), "missing", nil)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, pricing.ErrProductNotFound)
}

func TestOptimizePrice_SemHistorico(t *testing.T) {
	svc, productRepo, historyRepo := newTestService(t)

	productRepo.EXPECT().GetByProductID(testProductID).Return(testProduct(), nil)
	historyRepo.EXPECT().ListByProductID(testInternalID).Return(nil, nil)

	resp, err := svc.OptimizePrice(context.Background(), testProductID, nil)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, pricing.ErrNoPriceHistory)
}

func TestOptimizePrice_ProductIDVazio(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.OptimizePrice(context.Background(), "", nil)
	assert.ErrorIs(t, err, pricing.ErrProductIDRequired)
}

func TestTrainDemandModel_HistoricoInsuficiente(t *testing.T) {
	svc, productRepo, historyRepo := newTestService(t)

	productRepo.EXPECT().GetByProductID(testProductID).Return(testProduct(), nil)
	historyRepo.EXPECT().ListByProductID(testInternalID).Return(testHistory()[:3], nil)

	_, err := svc.TrainDemandModel(context.Background(), testProductID)

	var insufficientErr *optimizer.InsufficientDataError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 3, insufficientErr.Records)
}
