package optimizer

import "math"

// Tolerância numérica para considerar nula a variação de preço
const priceChangeTolerance = 1e-6

// Elasticity calcula a elasticidade-preço pontual da demanda usando apenas a
// primeira e a última observação do histórico - uma simplificação deliberada,
// não uma elasticidade de regressão.
//
// Sentinelas, nunca NaN/Inf:
//   - menos de 2 registros: -1 (suposição padrão de elasticidade unitária
//     negativa, valor documentado e não calculado)
//   - preço inicial zero, quantidade inicial zero ou variação de preço ~0:
//     0 (razões indefinidas)
func Elasticity(records []Record) float64 {
	if len(records) < 2 {
		return -1.0
	}

	first := records[0]
	last := records[len(records)-1]

	firstPrice := first["unit_price"]
	firstQty := first[targetColumn]

	if firstPrice == 0 || firstQty == 0 {
		return 0.0
	}

	priceChange := (last["unit_price"] - firstPrice) / firstPrice
	if math.Abs(priceChange) < priceChangeTolerance {
		return 0.0
	}

	qtyChange := (last[targetColumn] - firstQty) / firstQty

	return qtyChange / priceChange
}
