package optimizer

import (
	"gonum.org/v1/gonum/floats"
)

// Parâmetros da grade de preços: 50 pontos igualmente espaçados cobrindo
// [0.5, 1.5] x preço atual, extremos inclusos.
const (
	priceGridPoints = 50
	priceGridLower  = 0.5
	priceGridUpper  = 1.5
)

// PriceScenario é um ponto da curva de varredura de preços
type PriceScenario struct {
	Price             float64 `json:"price"`
	PredictedQuantity float64 `json:"predicted_quantity"`
	PredictedRevenue  float64 `json:"predicted_revenue"`
}

// OptimizationResult é o resultado completo da varredura de preços
type OptimizationResult struct {
	CurrentPrice          float64         `json:"current_price"`
	OptimizedPrice        float64         `json:"optimized_price"`
	ExpectedRevenue       float64         `json:"expected_revenue"`
	PriceChangePercentage float64         `json:"price_change_percentage"`
	Scenarios             []PriceScenario `json:"scenarios"`
}

// Optimize treina um modelo de demanda novo sobre o histórico e varre a grade
// de preços em busca do preço de maior receita prevista.
//
// targetRevenue é aceito de ponta a ponta mas hoje não restringe a busca - é
// apenas informativo.
// TODO: usar targetRevenue para restringir a varredura a cenários que atinjam
// a receita alvo.
func Optimize(records []Record, targetRevenue *float64) (*OptimizationResult, error) {
	model, err := Train(records)
	if err != nil {
		return nil, err
	}

	currentPrice := lastValue(records, "unit_price", 0)
	if currentPrice <= 0 {
		return nil, ErrNonPositiveCurrentPrice
	}

	// Valores de fundo representativos do histórico completo. Campos ausentes
	// degradam para 0 (ou 1 no mês) em vez de falhar.
	background := Record{
		"freight_price": fieldMean(records, "freight_price"),
		"product_score": fieldMean(records, "product_score"),
		"weekday":       fieldMean(records, "weekday"),
		"weekend":       fieldMean(records, "weekend"),
		"holiday":       fieldMean(records, "holiday"),
		"month":         lastValue(records, "month", 1),
		"s":             fieldMean(records, "s"),
	}

	grid := make([]float64, priceGridPoints)
	floats.Span(grid, currentPrice*priceGridLower, currentPrice*priceGridUpper)

	scenarios := make([]PriceScenario, 0, priceGridPoints)
	bestIdx := 0

	for i, price := range grid {
		features := Record{
			"unit_price": price,
			// lag_price modela a transição do preço de hoje para o candidato
			"lag_price": currentPrice,
		}
		for name, value := range background {
			features[name] = value
		}

		qty, err := model.Predict(features)
		if err != nil {
			return nil, err
		}

		scenarios = append(scenarios, PriceScenario{
			Price:             price,
			PredictedQuantity: qty,
			PredictedRevenue:  price * qty,
		})

		// Comparação estrita: empate mantém o primeiro máximo (menor preço)
		if scenarios[i].PredictedRevenue > scenarios[bestIdx].PredictedRevenue {
			bestIdx = i
		}
	}

	best := scenarios[bestIdx]

	return &OptimizationResult{
		CurrentPrice:          currentPrice,
		OptimizedPrice:        best.Price,
		ExpectedRevenue:       best.PredictedRevenue,
		PriceChangePercentage: (best.Price - currentPrice) / currentPrice * 100,
		Scenarios:             scenarios,
	}, nil
}

// fieldMean calcula a média aritmética do campo sobre os registros que o
// possuem. Campo ausente de todo o histórico vale 0.
func fieldMean(records []Record, name string) float64 {
	var sum float64
	var count int

	for _, rec := range records {
		if v, ok := rec[name]; ok {
			sum += v
			count++
		}
	}

	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// lastValue devolve o valor do campo no último registro (ordem cronológica já
// estabelecida pelo chamador), ou fallback quando ausente.
func lastValue(records []Record, name string, fallback float64) float64 {
	if len(records) == 0 {
		return fallback
	}
	if v, ok := records[len(records)-1][name]; ok {
		return v
	}
	return fallback
}
