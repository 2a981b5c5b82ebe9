package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/price-optimization-api/internal/usecases/catalog"
	"github.com/vfg2006/price-optimization-api/pkg/apiErrors"
	"github.com/vfg2006/price-optimization-api/pkg/log"
)

func GetPriceHistory(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("product_id", id).Debug("catalog: buscando histórico de preços")

		history, err := service.PriceHistory(r.Context(), id)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)
				return
			}

			logger.WithField("product_id", id).WithError(err).Error("catalog: falha ao buscar histórico de preços")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico de preços", nil)
			return
		}

		writeJSON(w, r, history)
	})
}
