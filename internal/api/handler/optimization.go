package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/price-optimization-api/internal/optimizer"
	"github.com/vfg2006/price-optimization-api/internal/usecases/pricing"
	"github.com/vfg2006/price-optimization-api/pkg/apiErrors"
	"github.com/vfg2006/price-optimization-api/pkg/log"
)

// OptimizeRequest é o corpo aceito pela rota de otimização de preço
type OptimizeRequest struct {
	TargetRevenue *float64 `json:"target_revenue"`
}

func TrainDemandModel(service pricing.PricingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		resp, err := service.TrainDemandModel(r.Context(), id)
		if err != nil {
			writePricingError(w, r, id, err)
			return
		}

		writeJSON(w, r, resp)
	})
}

func OptimizePrice(service pricing.PricingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req OptimizeRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
				return
			}
		}

		resp, err := service.OptimizePrice(r.Context(), id, req.TargetRevenue)
		if err != nil {
			writePricingError(w, r, id, err)
			return
		}

		writeJSON(w, r, resp)
	})
}

func GetElasticity(service pricing.PricingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		resp, err := service.Elasticity(r.Context(), id)
		if err != nil {
			writePricingError(w, r, id, err)
			return
		}

		writeJSON(w, r, resp)
	})
}

// writePricingError mapeia os erros do núcleo de precificação para os códigos
// padronizados da API
func writePricingError(w http.ResponseWriter, r *http.Request, productID string, err error) {
	var insufficientErr *optimizer.InsufficientDataError

	switch {
	case errors.Is(err, pricing.ErrProductIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não informado", nil)

	case errors.Is(err, pricing.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)

	case errors.Is(err, pricing.ErrNoPriceHistory):
		apiErrors.WriteError(w, apiErrors.ErrHistoryNotFound, "Produto sem histórico de preços", nil)

	case errors.As(err, &insufficientErr):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientData, "Histórico insuficiente para treinar o modelo", map[string]int{
			"records": insufficientErr.Records,
			"minimum": insufficientErr.Minimum,
		})

	case errors.Is(err, optimizer.ErrNonPositiveCurrentPrice):
		apiErrors.WriteError(w, apiErrors.ErrDegeneratePrice, "Preço atual do produto é zero ou negativo", nil)

	default:
		log.ForContext(r.Context()).WithField("product_id", productID).WithError(err).Error("pricing: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
