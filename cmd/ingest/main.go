// Carga inicial do banco: cria o esquema quando necessário e executa uma
// rodada única de ingestão do CSV de histórico de preços.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/vfg2006/price-optimization-api/infrastructure/database/postgres"
	"github.com/vfg2006/price-optimization-api/infrastructure/repository"
	"github.com/vfg2006/price-optimization-api/internal/config"
	"github.com/vfg2006/price-optimization-api/internal/ingestion"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id VARCHAR(12) PRIMARY KEY,
		product_id VARCHAR(64) NOT NULL UNIQUE,
		product_category_name VARCHAR(128) NOT NULL,
		product_name_length INTEGER NOT NULL DEFAULT 0,
		product_description_length INTEGER NOT NULL DEFAULT 0,
		product_photos_qty INTEGER NOT NULL DEFAULT 0,
		product_weight_g INTEGER NOT NULL DEFAULT 0,
		product_score NUMERIC(4, 2) NOT NULL DEFAULT 0,
		volume NUMERIC(12, 2) NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS price_history (
		id VARCHAR(12) PRIMARY KEY,
		product_id VARCHAR(12) NOT NULL REFERENCES products (id),
		month_year VARCHAR(10) NOT NULL,
		qty INTEGER NOT NULL,
		total_price NUMERIC(12, 2) NOT NULL DEFAULT 0,
		freight_price NUMERIC(12, 2) NOT NULL DEFAULT 0,
		unit_price NUMERIC(12, 2) NOT NULL,
		customers INTEGER NOT NULL DEFAULT 0,
		weekday INTEGER NOT NULL DEFAULT 0,
		weekend INTEGER NOT NULL DEFAULT 0,
		holiday INTEGER NOT NULL DEFAULT 0,
		month INTEGER NOT NULL,
		year INTEGER NOT NULL,
		s NUMERIC(12, 6) NOT NULL DEFAULT 0,
		lag_price NUMERIC(12, 2) NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_price_history_product
		ON price_history (product_id, year, month)`,
	`CREATE TABLE IF NOT EXISTS competitor_prices (
		id VARCHAR(12) PRIMARY KEY,
		price_history_id VARCHAR(12) NOT NULL REFERENCES price_history (id),
		competitor_number INTEGER NOT NULL,
		competitor_price NUMERIC(12, 2) NOT NULL DEFAULT 0,
		competitor_score NUMERIC(4, 2) NOT NULL DEFAULT 0,
		competitor_freight NUMERIC(12, 2) NOT NULL DEFAULT 0
	)`,
}

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando carga inicial...")
}

func createSchema(conn *postgres.Connection) {
	log.Println("Criando esquema do banco (quando necessário)...")

	for _, stmt := range schemaStatements {
		if _, err := conn.Exec(stmt); err != nil {
			log.Fatalf("ERRO ao criar esquema: %v", err)
		}
	}

	log.Println("Esquema do banco pronto")
}

func main() {
	setupLogger()

	csvPath := flag.String("csv", "", "caminho do CSV de histórico de preços (padrão: INGESTION_CSV_PATH)")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}
	if *csvPath != "" {
		cfg.IngestionSync.CSVPath = *csvPath
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Println("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	if err := conn.Ping(ctx); err != nil {
		log.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	createSchema(conn)

	productRepo := repository.NewProductRepository(conn)
	historyRepo := repository.NewPriceHistoryRepository(conn)
	competitorRepo := repository.NewCompetitorPriceRepository(conn)

	service := ingestion.NewService(conn, productRepo, historyRepo, competitorRepo, cfg.IngestionSync)

	startTime := time.Now()
	log.Printf("Iniciando ingestão do CSV %s...", cfg.IngestionSync.CSVPath)

	summary, err := service.Run(ctx)
	if err != nil {
		log.Fatalf("ERRO durante a ingestão: %v", err)
	}

	elapsed := time.Since(startTime)
	log.Printf("Ingestão concluída em %v. Produtos novos: %d, Histórico inserido: %d, Concorrentes inseridos: %d, Linhas com falha: %d, Linhas descartadas: %d",
		elapsed, summary.ProductsInserted, summary.HistoryInserted, summary.CompetitorsInserted, summary.RowsFailed, summary.RowsDiscarded)
}
