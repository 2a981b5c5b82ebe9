package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/price-optimization-api/infrastructure/database/postgres"
	"github.com/vfg2006/price-optimization-api/internal/domain"
)

const productsTable = "products p"

type ProductRepository interface {
	List() ([]*domain.Product, error)
	GetByProductID(productID string) (*domain.Product, error)
	Insert(product *domain.Product) error
	ListCategories() ([]string, error)
	Count() (int, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

const productColumns = `p.id, p.product_id, p.product_category_name, p.product_name_length,
	p.product_description_length, p.product_photos_qty, p.product_weight_g,
	p.product_score, p.volume, p.created_at, p.updated_at`

func (r *productRepository) List() ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns).
		From(productsTable).
		OrderBy("p.product_id ASC").
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

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

// GetByProductID busca um produto pelo identificador externo (do CSV).
// Devolve nil sem erro quando o produto não existe.
func (r *productRepository) GetByProductID(productID string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns).
		From(productsTable).
		Where(squirrel.Eq{"p.product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	product := &domain.Product{}
	err = row.Scan(
		&product.ID,
		&product.ProductID,
		&product.ProductCategoryName,
		&product.ProductNameLength,
		&product.ProductDescriptionLength,
		&product.ProductPhotosQty,
		&product.ProductWeightG,
		&product.ProductScore,
		&product.Volume,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) Insert(product *domain.Product) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("products").
		Columns(
			"id", "product_id", "product_category_name", "product_name_length",
			"product_description_length", "product_photos_qty", "product_weight_g",
			"product_score", "volume",
		).
		Values(
			product.ID,
			product.ProductID,
			product.ProductCategoryName,
			product.ProductNameLength,
			product.ProductDescriptionLength,
			product.ProductPhotosQty,
			product.ProductWeightG,
			product.ProductScore,
			product.Volume,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *productRepository) ListCategories() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT p.product_category_name").
		From(productsTable).
		OrderBy("p.product_category_name ASC").
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

	categories := make([]string, 0)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}

func (r *productRepository) Count() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(productsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return count, nil
}

func scanProduct(rows *sql.Rows) (*domain.Product, error) {
	product := &domain.Product{}

	err := rows.Scan(
		&product.ID,
		&product.ProductID,
		&product.ProductCategoryName,
		&product.ProductNameLength,
		&product.ProductDescriptionLength,
		&product.ProductPhotosQty,
		&product.ProductWeightG,
		&product.ProductScore,
		&product.Volume,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return product, nil
}
