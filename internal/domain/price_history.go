package domain

import "time"

// PriceHistoryEntry é um período observado do histórico de preços de um
// produto. A ordem cronológica é dada por (Year, Month) ascendente.
type PriceHistoryEntry struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"` // ID interno do produto
	MonthYear    string    `json:"month_year"`
	Qty          int       `json:"qty"`
	TotalPrice   float64   `json:"total_price"`
	FreightPrice float64   `json:"freight_price"`
	UnitPrice    float64   `json:"unit_price"`
	Customers    int       `json:"customers"`
	Weekday      int       `json:"weekday"`
	Weekend      int       `json:"weekend"`
	Holiday      int       `json:"holiday"`
	Month        int       `json:"month"`
	Year         int       `json:"year"`
	S            float64   `json:"s"`
	LagPrice     float64   `json:"lag_price"`
	CreatedAt    time.Time `json:"created_at"`
}

// PriceHistoryDetail é um período do histórico acompanhado das observações de
// preço dos concorrentes naquele período
type PriceHistoryDetail struct {
	PriceHistoryEntry
	Competitors []*CompetitorPrice `json:"competitors"`
}

// CompetitorPrice é a observação de um concorrente em um período do histórico
type CompetitorPrice struct {
	ID                string  `json:"id"`
	PriceHistoryID    string  `json:"price_history_id"`
	CompetitorNumber  int     `json:"competitor_number"`
	CompetitorPrice   float64 `json:"competitor_price"`
	CompetitorScore   float64 `json:"competitor_score"`
	CompetitorFreight float64 `json:"competitor_freight"`
}
