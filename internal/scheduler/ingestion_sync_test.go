package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/price-optimization-api/internal/config"
	"github.com/vfg2006/price-optimization-api/internal/ingestion"
)

// fakeIngester permite controlar o resultado e a duração da carga nos testes
type fakeIngester struct {
	summary *ingestion.Summary
	err     error
	block   chan struct{} // quando não-nulo, segura a execução até ser fechado
	calls   int
	mu      sync.Mutex
}

func (f *fakeIngester) Run(ctx context.Context) (*ingestion.Summary, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.block != nil {
		<-f.block
	}
	return f.summary, f.err
}

func newSyncService(ingester ingestion.Ingester) *IngestionSyncService {
	return NewIngestionSyncService(ingester, &config.Config{
		IngestionSync: config.IngestionSync{
			CronSchedule: "0 2 * * *",
			Enabled:      false,
		},
	})
}

func TestIngestionSyncService_RunIngestion(t *testing.T) {
	ingester := &fakeIngester{
		summary: &ingestion.Summary{ProductsInserted: 5, HistoryInserted: 42},
	}
	service := newSyncService(ingester)

	err := service.RunIngestion(context.Background())
	require.NoError(t, err)

	status := service.GetSyncStatus()
	assert.False(t, status.Running)
	assert.Equal(t, 1, ingester.calls)
	require.NotNil(t, status.LastSummary)
	assert.Equal(t, 42, status.LastSummary.HistoryInserted)
	assert.Empty(t, status.LastError)
	assert.NotNil(t, status.LastStartedAt)
	assert.NotNil(t, status.LastCompletedAt)
}

func TestIngestionSyncService_RunIngestion_ErroFicaNoStatus(t *testing.T) {
	ingester := &fakeIngester{err: errors.New("arquivo não encontrado")}
	service := newSyncService(ingester)

	err := service.RunIngestion(context.Background())
	require.Error(t, err)

	status := service.GetSyncStatus()
	assert.False(t, status.Running)
	assert.Equal(t, "arquivo não encontrado", status.LastError)
	assert.Nil(t, status.LastSummary)
}

func TestIngestionSyncService_ExecucaoUnica(t *testing.T) {
	block := make(chan struct{})
	ingester := &fakeIngester{
		summary: &ingestion.Summary{},
		block:   block,
	}
	service := newSyncService(ingester)

	done := make(chan error, 1)
	go func() {
		done <- service.RunIngestion(context.Background())
	}()

	// Esperar a primeira execução tomar o lock
	require.Eventually(t, func() bool {
		return service.GetSyncStatus().Running
	}, time.Second, 5*time.Millisecond)

	// Segundo disparo concorrente é rejeitado
	err := service.TriggerManualSync(context.Background())
	assert.ErrorIs(t, err, ErrSyncAlreadyRunning)

	close(block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, ingester.calls)
}
