package handler

import (
	"net/http"

	"github.com/vfg2006/price-optimization-api/internal/api/handler/router"
	"github.com/vfg2006/price-optimization-api/internal/scheduler"
	"github.com/vfg2006/price-optimization-api/internal/usecases/analytics"
	"github.com/vfg2006/price-optimization-api/internal/usecases/catalog"
	"github.com/vfg2006/price-optimization-api/internal/usecases/pricing"
	"github.com/vfg2006/price-optimization-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Catalog(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodGet,
			Handler: GetProduct(service),
		},
		{
			Path:    "/v1/products/:id/price-history",
			Method:  http.MethodGet,
			Handler: GetPriceHistory(service),
		},
		{
			Path:    "/v1/categories",
			Method:  http.MethodGet,
			Handler: ListCategories(service),
		},
	}
}

func Pricing(service pricing.PricingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products/:id/demand-model",
			Method:  http.MethodPost,
			Handler: TrainDemandModel(service),
		},
		{
			Path:    "/v1/products/:id/optimize",
			Method:  http.MethodPost,
			Handler: OptimizePrice(service),
		},
		{
			Path:    "/v1/products/:id/elasticity",
			Method:  http.MethodGet,
			Handler: GetElasticity(service),
		},
	}
}

func Analytics(service analytics.AnalyticsService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/summary",
			Method:  http.MethodGet,
			Handler: GetAnalyticsSummary(service),
		},
	}
}

// Ingestion expõe as rotas de operação da ingestão, protegidas por token de
// serviço
func Ingestion(service *scheduler.IngestionSyncService, secretKey string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ingestion/run",
			Method:      http.MethodPost,
			Handler:     RunIngestion(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ServiceAuth(secretKey)},
		},
		{
			Path:        "/v1/ingestion/status",
			Method:      http.MethodGet,
			Handler:     GetIngestionStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ServiceAuth(secretKey)},
		},
	}
}
