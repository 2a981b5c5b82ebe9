package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElasticity(t *testing.T) {
	tests := []struct {
		name     string
		records  []Record
		expected float64
	}{
		{
			name:     "histórico vazio devolve a sentinela",
			records:  nil,
			expected: -1.0,
		},
		{
			name:     "registro único devolve a sentinela",
			records:  []Record{{"unit_price": 10, "qty": 100}},
			expected: -1.0,
		},
		{
			name: "exemplo de ponta a ponta",
			// ((80-100)/100) / ((14-10)/10) = -0.2 / 0.4 = -0.5
			records: makeHistory(
				[]float64{10, 10, 12, 12, 14},
				[]float64{100, 98, 90, 88, 80},
			),
			expected: -0.5,
		},
		{
			name: "variação de preço nula devolve zero",
			records: []Record{
				{"unit_price": 10, "qty": 100},
				{"unit_price": 10, "qty": 80},
			},
			expected: 0.0,
		},
		{
			name: "variação de preço dentro da tolerância numérica",
			records: []Record{
				{"unit_price": 10, "qty": 100},
				{"unit_price": 10 + 1e-8, "qty": 80},
			},
			expected: 0.0,
		},
		{
			name: "quantidade inicial zero devolve zero",
			records: []Record{
				{"unit_price": 10, "qty": 0},
				{"unit_price": 14, "qty": 80},
			},
			expected: 0.0,
		},
		{
			name: "preço inicial zero devolve zero",
			records: []Record{
				{"unit_price": 0, "qty": 100},
				{"unit_price": 14, "qty": 80},
			},
			expected: 0.0,
		},
		{
			name: "somente primeiro e último registros importam",
			records: []Record{
				{"unit_price": 10, "qty": 100},
				{"unit_price": 55, "qty": 3},
				{"unit_price": 20, "qty": 50},
			},
			// ((50-100)/100) / ((20-10)/10) = -0.5 / 1 = -0.5
			expected: -0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Elasticity(tt.records))
		})
	}
}
