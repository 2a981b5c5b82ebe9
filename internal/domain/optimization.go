package domain

import "github.com/vfg2006/price-optimization-api/internal/optimizer"

// DemandModelResponse é o resultado do treino do modelo de demanda de um
// produto, exposto pela API
type DemandModelResponse struct {
	ProductID string `json:"product_id"`
	optimizer.ModelSummary
}

// OptimizationResponse é o resultado da otimização de preço de um produto
type OptimizationResponse struct {
	ProductID     string   `json:"product_id"`
	TargetRevenue *float64 `json:"target_revenue,omitempty"`
	optimizer.OptimizationResult
}

// ElasticityResponse é a elasticidade-preço pontual da demanda de um produto
type ElasticityResponse struct {
	ProductID  string  `json:"product_id"`
	Elasticity float64 `json:"elasticity"`
}

// AnalyticsSummary é o resumo agregado do catálogo e do histórico de preços
type AnalyticsSummary struct {
	TotalProducts int     `json:"total_products"`
	TotalRecords  int     `json:"total_records"`
	TotalRevenue  float64 `json:"total_revenue"`
	AveragePrice  float64 `json:"average_price"`
}
