package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/price-optimization-api/internal/usecases/catalog"
	"github.com/vfg2006/price-optimization-api/pkg/apiErrors"
	"github.com/vfg2006/price-optimization-api/pkg/log"
)

func ListProducts(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		products, err := service.ListProducts(r.Context())
		if err != nil {
			logger.WithError(err).Error("catalog: falha ao listar produtos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos", nil)
			return
		}

		writeJSON(w, r, products)
	})
}

func GetProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		product, err := service.GetProduct(r.Context(), id)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)
				return
			}

			logger.WithField("product_id", id).WithError(err).Error("catalog: falha ao buscar produto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produto", nil)
			return
		}

		writeJSON(w, r, product)
	})
}

func ListCategories(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		categories, err := service.ListCategories(r.Context())
		if err != nil {
			logger.WithError(err).Error("catalog: falha ao listar categorias")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar categorias", nil)
			return
		}

		writeJSON(w, r, categories)
	})
}
