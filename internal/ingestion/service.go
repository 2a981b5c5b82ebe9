// Package ingestion implementa a carga em lote do retail_price.csv para as
// tabelas de produtos, histórico de preços e preços de concorrentes.
package ingestion

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-optimization-api/infrastructure/repository"
	"github.com/vfg2006/price-optimization-api/internal/config"
	"github.com/vfg2006/price-optimization-api/internal/domain"
	"github.com/vfg2006/price-optimization-api/pkg/utils"
)

// Summary são os contadores de uma execução de ingestão
type Summary struct {
	ProductsInserted    int `json:"products_inserted"`
	ProductsSkipped     int `json:"products_skipped"`
	HistoryInserted     int `json:"history_inserted"`
	CompetitorsInserted int `json:"competitors_inserted"`
	RowsDiscarded       int `json:"rows_discarded"`
	RowsFailed          int `json:"rows_failed"`
}

// Ingester executa uma carga completa do CSV configurado
type Ingester interface {
	Run(ctx context.Context) (*Summary, error)
}

// transactor abre a transação que torna atômica a unidade por linha
// (histórico + concorrentes)
type transactor interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type Service struct {
	db             transactor
	productRepo    repository.ProductRepository
	historyRepo    repository.PriceHistoryRepository
	competitorRepo repository.CompetitorPriceRepository
	cfg            config.IngestionSync
}

func NewService(
	db transactor,
	productRepo repository.ProductRepository,
	historyRepo repository.PriceHistoryRepository,
	competitorRepo repository.CompetitorPriceRepository,
	cfg config.IngestionSync,
) *Service {
	return &Service{
		db:             db,
		productRepo:    productRepo,
		historyRepo:    historyRepo,
		competitorRepo: competitorRepo,
		cfg:            cfg,
	}
}

// Run lê o CSV configurado e insere produtos (deduplicados por product_id),
// histórico de preços e concorrentes. Falhas por linha são retentadas com o
// limite configurado; linhas que esgotam as tentativas entram em RowsFailed
// sem derrubar a carga inteira.
func (s *Service) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()

	records, discarded, err := readCSV(s.cfg.CSVPath)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"csv_path":       s.cfg.CSVPath,
		"rows":           len(records),
		"rows_discarded": discarded,
	}).Info("Iniciando ingestão do CSV")

	summary := &Summary{RowsDiscarded: discarded}

	productMap, err := s.ingestProducts(ctx, records, summary)
	if err != nil {
		return nil, err
	}

	if err := s.ingestPriceHistory(ctx, records, productMap, summary); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"products_inserted":    summary.ProductsInserted,
		"products_skipped":     summary.ProductsSkipped,
		"history_inserted":     summary.HistoryInserted,
		"competitors_inserted": summary.CompetitorsInserted,
		"rows_failed":          summary.RowsFailed,
		"duration":             time.Since(start).String(),
	}).Info("Ingestão do CSV concluída")

	return summary, nil
}

// ingestProducts insere os produtos únicos do arquivo e devolve o mapa de
// product_id externo para ID interno
func (s *Service) ingestProducts(ctx context.Context, records []*csvRecord, summary *Summary) (map[string]string, error) {
	productMap := make(map[string]string)

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, seen := productMap[rec.ProductID]; seen {
			continue
		}

		var internalID string
		err := s.withRetry(ctx, func() error {
			existing, err := s.productRepo.GetByProductID(rec.ProductID)
			if err != nil {
				return err
			}
			if existing != nil {
				internalID = existing.ID
				summary.ProductsSkipped++
				return nil
			}

			id, err := utils.GenerateID()
			if err != nil {
				return errors.Wrap(err, "erro ao gerar ID do produto")
			}

			if err := s.productRepo.Insert(&domain.Product{
				ID:                       id,
				ProductID:                rec.ProductID,
				ProductCategoryName:      rec.ProductCategoryName,
				ProductNameLength:        rec.ProductNameLength,
				ProductDescriptionLength: rec.ProductDescriptionLength,
				ProductPhotosQty:         rec.ProductPhotosQty,
				ProductWeightG:           rec.ProductWeightG,
				ProductScore:             rec.ProductScore,
				Volume:                   rec.Volume,
			}); err != nil {
				return err
			}

			internalID = id
			summary.ProductsInserted++
			return nil
		})
		if err != nil {
			logrus.WithError(err).WithField("product_id", rec.ProductID).
				Error("Erro ao inserir produto; linhas deste produto serão puladas")
			summary.RowsFailed++
			continue
		}

		productMap[rec.ProductID] = internalID
	}

	return productMap, nil
}

// ingestPriceHistory insere as linhas de histórico e seus concorrentes. A
// unidade por linha roda em uma transação: uma falha no lote de concorrentes
// desfaz o insert do histórico, e a retentativa reaplica a linha inteira com
// os mesmos IDs - nunca ficam duas linhas de histórico para o mesmo período.
func (s *Service) ingestPriceHistory(ctx context.Context, records []*csvRecord, productMap map[string]string, summary *Summary) error {
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return err
		}

		internalID, ok := productMap[rec.ProductID]
		if !ok {
			continue
		}

		entry, competitors, err := buildRow(rec, internalID)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"product_id": rec.ProductID,
				"month_year": rec.MonthYear,
			}).Error("Erro ao montar linha de histórico")
			summary.RowsFailed++
			continue
		}

		err = s.withRetry(ctx, func() error {
			return s.db.RunInTransaction(ctx, func(tx *sql.Tx) error {
				if err := s.historyRepo.InsertTx(tx, entry); err != nil {
					return err
				}
				return s.competitorRepo.InsertBatchTx(tx, competitors)
			})
		})
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"product_id": rec.ProductID,
				"month_year": rec.MonthYear,
			}).Error("Erro ao inserir linha de histórico após as tentativas")
			summary.RowsFailed++
			continue
		}

		summary.HistoryInserted++
		summary.CompetitorsInserted += len(competitors)
	}

	return nil
}

// buildRow monta o registro de histórico e seus concorrentes com IDs gerados
// uma única vez, para que retentativas reapliquem exatamente a mesma linha
func buildRow(rec *csvRecord, internalID string) (*domain.PriceHistoryEntry, []*domain.CompetitorPrice, error) {
	historyID, err := utils.GenerateID()
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao gerar ID do histórico")
	}

	entry := &domain.PriceHistoryEntry{
		ID:           historyID,
		ProductID:    internalID,
		MonthYear:    rec.MonthYear,
		Qty:          rec.Qty,
		TotalPrice:   rec.TotalPrice,
		FreightPrice: rec.FreightPrice,
		UnitPrice:    rec.UnitPrice,
		Customers:    rec.Customers,
		Weekday:      rec.Weekday,
		Weekend:      rec.Weekend,
		Holiday:      rec.Holiday,
		Month:        rec.Month,
		Year:         rec.Year,
		S:            rec.S,
		LagPrice:     rec.LagPrice,
	}

	competitors := make([]*domain.CompetitorPrice, 0, len(rec.Competitors))
	for _, comp := range rec.Competitors {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, nil, errors.Wrap(err, "erro ao gerar ID de concorrente")
		}
		competitors = append(competitors, &domain.CompetitorPrice{
			ID:                id,
			PriceHistoryID:    historyID,
			CompetitorNumber:  comp.Number,
			CompetitorPrice:   comp.Price,
			CompetitorScore:   comp.Score,
			CompetitorFreight: comp.Freight,
		})
	}

	return entry, competitors, nil
}

// withRetry executa fn até o limite de tentativas configurado, com espera
// fixa entre elas
func (s *Service) withRetry(ctx context.Context, fn func() error) error {
	maxRetries := s.cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(s.cfg.RetryDelaySeconds) * time.Second):
			}
		}

		if lastErr = fn(); lastErr == nil {
			return nil
		}
	}

	return lastErr
}
