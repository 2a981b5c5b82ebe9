// Package scheduler contém o agendamento da recarga periódica do CSV
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-optimization-api/internal/config"
	"github.com/vfg2006/price-optimization-api/internal/ingestion"
)

// SyncStatus é o estado corrente do agendador de ingestão
type SyncStatus struct {
	Enabled         bool               `json:"enabled"`
	Running         bool               `json:"running"`
	CronSchedule    string             `json:"cron_schedule"`
	LastStartedAt   *time.Time         `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time         `json:"last_completed_at,omitempty"`
	LastSummary     *ingestion.Summary `json:"last_summary,omitempty"`
	LastError       string             `json:"last_error,omitempty"`
}

// IngestionSyncService agenda e executa a recarga do CSV de preços
type IngestionSyncService struct {
	scheduler *gocron.Scheduler
	ingester  ingestion.Ingester
	cfg       config.IngestionSync

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *ingestion.Summary
	lastError           error
}

func NewIngestionSyncService(ingester ingestion.Ingester, cfg *config.Config) *IngestionSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.IngestionSync.CronSchedule,
		"csv_path":      cfg.IngestionSync.CSVPath,
	}).Info("Configuração do agendador de ingestão carregada")

	return &IngestionSyncService{
		scheduler: scheduler,
		ingester:  ingester,
		cfg:       cfg.IngestionSync,
	}
}

func (s *IngestionSyncService) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		logrus.Info("Cron de ingestão desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.CronSchedule).Info("Iniciando cron de ingestão do CSV")

	_, err := s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		if err := s.RunIngestion(ctx); err != nil {
			logrus.WithError(err).Error("Erro na ingestão agendada do CSV")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ingestão do CSV: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de ingestão")
		s.scheduler.Stop()
	}()

	return nil
}

// RunIngestion executa uma carga completa, garantindo execução única por vez
func (s *IngestionSyncService) RunIngestion(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Ingestão já está em execução")
		return ErrSyncAlreadyRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.Info("Iniciando ingestão do CSV")

	summary, err := s.ingester.Run(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSummary = summary
	s.lastError = err
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Ingestão do CSV terminou com erro")
		return err
	}

	logrus.Info("Ingestão do CSV concluída")
	return nil
}

// TriggerManualSync dispara a ingestão fora do horário agendado
func (s *IngestionSyncService) TriggerManualSync(ctx context.Context) error {
	logrus.Info("Disparo manual de ingestão recebido")
	return s.RunIngestion(ctx)
}

// GetSyncStatus devolve o estado corrente do agendador
func (s *IngestionSyncService) GetSyncStatus() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{
		Enabled:      s.cfg.Enabled,
		Running:      s.syncRunning,
		CronSchedule: s.cfg.CronSchedule,
		LastSummary:  s.lastSummary,
	}

	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastCompletedAt = &completedAt
	}
	if s.lastError != nil {
		status.LastError = s.lastError.Error()
	}

	return status
}
