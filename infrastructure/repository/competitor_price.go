package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/price-optimization-api/infrastructure/database/postgres"
	"github.com/vfg2006/price-optimization-api/internal/domain"
)

const competitorPricesTable = "competitor_prices cp"

type CompetitorPriceRepository interface {
	InsertBatch(prices []*domain.CompetitorPrice) error
	InsertBatchTx(tx *sql.Tx, prices []*domain.CompetitorPrice) error
	ListByPriceHistoryID(priceHistoryID string) ([]*domain.CompetitorPrice, error)
}

type competitorPriceRepository struct {
	conn *postgres.Connection
}

func NewCompetitorPriceRepository(conn *postgres.Connection) CompetitorPriceRepository {
	return &competitorPriceRepository{
		conn: conn,
	}
}

func (r *competitorPriceRepository) InsertBatch(prices []*domain.CompetitorPrice) error {
	return r.insertBatch(r.conn, prices)
}

// InsertBatchTx insere o lote dentro de uma transação aberta pelo chamador
func (r *competitorPriceRepository) InsertBatchTx(tx *sql.Tx, prices []*domain.CompetitorPrice) error {
	return r.insertBatch(tx, prices)
}

func (r *competitorPriceRepository) insertBatch(q postgres.Queryer, prices []*domain.CompetitorPrice) error {
	if len(prices) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert("competitor_prices").
		Columns(
			"id", "price_history_id", "competitor_number",
			"competitor_price", "competitor_score", "competitor_freight",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, price := range prices {
		builder = builder.Values(
			price.ID,
			price.PriceHistoryID,
			price.CompetitorNumber,
			price.CompetitorPrice,
			price.CompetitorScore,
			price.CompetitorFreight,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = q.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *competitorPriceRepository) ListByPriceHistoryID(priceHistoryID string) ([]*domain.CompetitorPrice, error) {
	query, args, err := squirrel.
		Select(`cp.id, cp.price_history_id, cp.competitor_number,
			cp.competitor_price, cp.competitor_score, cp.competitor_freight`).
		From(competitorPricesTable).
		Where(squirrel.Eq{"cp.price_history_id": priceHistoryID}).
		OrderBy("cp.competitor_number ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	prices := make([]*domain.CompetitorPrice, 0)
	for rows.Next() {
		price := &domain.CompetitorPrice{}
		err := rows.Scan(
			&price.ID,
			&price.PriceHistoryID,
			&price.CompetitorNumber,
			&price.CompetitorPrice,
			&price.CompetitorScore,
			&price.CompetitorFreight,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear preço de concorrente: %w", err)
		}
		prices = append(prices, price)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return prices, nil
}
