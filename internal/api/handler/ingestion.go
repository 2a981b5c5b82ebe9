package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/price-optimization-api/internal/scheduler"
	"github.com/vfg2006/price-optimization-api/pkg/apiErrors"
	"github.com/vfg2006/price-optimization-api/pkg/log"
)

// RunIngestion dispara manualmente uma rodada de ingestão do CSV. Apenas uma
// rodada roda por vez; uma segunda chamada concorrente devolve 409.
func RunIngestion(service *scheduler.IngestionSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("ingestion: disparo manual recebido")

		if err := service.TriggerManualSync(r.Context()); err != nil {
			if errors.Is(err, scheduler.ErrSyncAlreadyRunning) {
				apiErrors.WriteError(w, apiErrors.ErrIngestionRunning, "Ingestão já em execução", nil)
				return
			}

			logger.WithError(err).Error("ingestion: falha na rodada manual")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar ingestão", nil)
			return
		}

		writeJSON(w, r, map[string]any{
			"message": "Ingestão executada com sucesso",
			"status":  service.GetSyncStatus(),
		})
	})
}

func GetIngestionStatus(service *scheduler.IngestionSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, service.GetSyncStatus())
	})
}
