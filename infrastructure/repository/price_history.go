package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/price-optimization-api/infrastructure/database/postgres"
	"github.com/vfg2006/price-optimization-api/internal/domain"
)

const priceHistoryTable = "price_history ph"

// PriceHistoryAggregate é o agregado global do histórico usado no resumo de analytics
type PriceHistoryAggregate struct {
	TotalRecords int
	TotalRevenue float64
	AveragePrice float64
}

type PriceHistoryRepository interface {
	ListByProductID(productID string) ([]*domain.PriceHistoryEntry, error)
	Insert(entry *domain.PriceHistoryEntry) error
	InsertTx(tx *sql.Tx, entry *domain.PriceHistoryEntry) error
	Aggregate() (*PriceHistoryAggregate, error)
}

type priceHistoryRepository struct {
	conn *postgres.Connection
}

func NewPriceHistoryRepository(conn *postgres.Connection) PriceHistoryRepository {
	return &priceHistoryRepository{
		conn: conn,
	}
}

// ListByProductID devolve o histórico do produto em ordem cronológica
// (ano, mês ascendente) - a ordem que o núcleo de otimização assume.
func (r *priceHistoryRepository) ListByProductID(productID string) ([]*domain.PriceHistoryEntry, error) {
	query, args, err := squirrel.
		Select(`ph.id, ph.product_id, ph.month_year, ph.qty, ph.total_price,
			ph.freight_price, ph.unit_price, ph.customers, ph.weekday, ph.weekend,
			ph.holiday, ph.month, ph.year, ph.s, ph.lag_price, ph.created_at`).
		From(priceHistoryTable).
		Where(squirrel.Eq{"ph.product_id": productID}).
		OrderBy("ph.year ASC", "ph.month ASC").
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

	entries := make([]*domain.PriceHistoryEntry, 0)
	for rows.Next() {
		entry := &domain.PriceHistoryEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.ProductID,
			&entry.MonthYear,
			&entry.Qty,
			&entry.TotalPrice,
			&entry.FreightPrice,
			&entry.UnitPrice,
			&entry.Customers,
			&entry.Weekday,
			&entry.Weekend,
			&entry.Holiday,
			&entry.Month,
			&entry.Year,
			&entry.S,
			&entry.LagPrice,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico de preços: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *priceHistoryRepository) Insert(entry *domain.PriceHistoryEntry) error {
	return r.insert(r.conn, entry)
}

// InsertTx insere o registro dentro de uma transação aberta pelo chamador
func (r *priceHistoryRepository) InsertTx(tx *sql.Tx, entry *domain.PriceHistoryEntry) error {
	return r.insert(tx, entry)
}

func (r *priceHistoryRepository) insert(q postgres.Queryer, entry *domain.PriceHistoryEntry) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("price_history").
		Columns(
			"id", "product_id", "month_year", "qty", "total_price", "freight_price",
			"unit_price", "customers", "weekday", "weekend", "holiday", "month",
			"year", "s", "lag_price",
		).
		Values(
			entry.ID,
			entry.ProductID,
			entry.MonthYear,
			entry.Qty,
			entry.TotalPrice,
			entry.FreightPrice,
			entry.UnitPrice,
			entry.Customers,
			entry.Weekday,
			entry.Weekend,
			entry.Holiday,
			entry.Month,
			entry.Year,
			entry.S,
			entry.LagPrice,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

// Aggregate calcula os totais do histórico completo para o resumo de analytics
func (r *priceHistoryRepository) Aggregate() (*PriceHistoryAggregate, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(ph.total_price), 0)",
			"COALESCE(AVG(ph.unit_price), 0)",
		).
		From(priceHistoryTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	aggregate := &PriceHistoryAggregate{}
	err = r.conn.QueryRow(query, args...).Scan(
		&aggregate.TotalRecords,
		&aggregate.TotalRevenue,
		&aggregate.AveragePrice,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar histórico de preços: %w", err)
	}

	return aggregate, nil
}
