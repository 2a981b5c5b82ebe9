package handler

import (
	"net/http"

	"github.com/vfg2006/price-optimization-api/internal/usecases/analytics"
	"github.com/vfg2006/price-optimization-api/pkg/apiErrors"
	"github.com/vfg2006/price-optimization-api/pkg/log"
)

func GetAnalyticsSummary(service analytics.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.Summary(r.Context())
		if err != nil {
			logger.WithError(err).Error("analytics: falha ao montar resumo")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar resumo analítico", nil)
			return
		}

		writeJSON(w, r, summary)
	})
}
