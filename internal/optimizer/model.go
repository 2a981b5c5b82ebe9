package optimizer

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// scalerParams guarda a padronização ajustada no treino (média e desvio por
// coluna). A transformação é ajustada uma única vez sobre o lote de treino e
// reutilizada sem reajuste em toda predição posterior.
type scalerParams struct {
	mean  []float64
	scale []float64 // desvio padrão populacional; coluna constante vale 1
}

// fitScaler ajusta média e desvio padrão populacional por coluna. Colunas de
// variância zero recebem escala 1 para não dividir por zero na transformação.
func fitScaler(x [][]float64, nFeatures int) scalerParams {
	p := scalerParams{
		mean:  make([]float64, nFeatures),
		scale: make([]float64, nFeatures),
	}

	n := float64(len(x))
	col := make([]float64, len(x))

	for j := 0; j < nFeatures; j++ {
		for i, row := range x {
			col[i] = row[j]
		}

		m := stat.Mean(col, nil)

		var ss float64
		for _, v := range col {
			d := v - m
			ss += d * d
		}
		sd := math.Sqrt(ss / n)

		p.mean[j] = m
		if sd > 0 {
			p.scale[j] = sd
		} else {
			p.scale[j] = 1
		}
	}

	return p
}

// transform aplica a padronização do treino sobre um vetor na ordem do schema
func (p scalerParams) transform(v []float64) []float64 {
	out := make([]float64, len(v))
	for j := range v {
		out[j] = (v[j] - p.mean[j]) / p.scale[j]
	}
	return out
}

// ModelSummary é o resumo descritivo do treino devolvido à camada de API.
// O R² é calculado sobre o próprio conjunto de treino - é um sumário
// descritivo, não uma medida de generalização.
type ModelSummary struct {
	RSquared     float64   `json:"r_squared"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	FeatureNames []string  `json:"feature_names"`
}

// TrainedModel é o modelo de demanda ajustado: schema de colunas, parâmetros
// de padronização, coeficientes e intercepto, todos congelados no treino.
// O valor é imutável e pode ser lido concorrentemente por vários leitores.
type TrainedModel struct {
	schema    FeatureSchema
	scaler    scalerParams
	coef      []float64 // no espaço padronizado, na ordem do schema
	intercept float64
	rSquared  float64
}

// Train monta as features do histórico, padroniza cada coluna e ajusta uma
// regressão linear de mínimos quadrados da quantidade sobre as features.
// Falha com *InsufficientDataError para históricos com menos de 5 registros.
func Train(records []Record) (*TrainedModel, error) {
	x, y, schema, err := buildFeatures(records)
	if err != nil {
		return nil, err
	}

	scaler := fitScaler(x, schema.Len())

	xs := make([][]float64, len(x))
	for i, row := range x {
		xs[i] = scaler.transform(row)
	}

	yMean := stat.Mean(y, nil)

	coef, err := solveLeastSquares(xs, y, yMean, scaler)
	if err != nil {
		return nil, err
	}

	model := &TrainedModel{
		schema:    schema,
		scaler:    scaler,
		coef:      coef,
		intercept: yMean,
	}
	model.rSquared = rSquared(xs, y, coef, model.intercept)

	return model, nil
}

// solveLeastSquares resolve min ||Xs*b - (y - ymean)|| sobre as colunas com
// variância real, via SVD truncada no posto efetivo. Para colunas colineares
// (posto deficiente) isso devolve a solução de norma mínima, com coeficientes
// pequenos e balanceados, em vez dos pares gigantes que um QR produziria.
// Colunas constantes (padronizadas para zero) recebem coeficiente 0, que é a
// norma mínima que o ajuste completo daria.
func solveLeastSquares(xs [][]float64, y []float64, yMean float64, scaler scalerParams) ([]float64, error) {
	nFeatures := 0
	if len(xs) > 0 {
		nFeatures = len(xs[0])
	}

	coef := make([]float64, nFeatures)

	active := make([]int, 0, nFeatures)
	for j := 0; j < nFeatures; j++ {
		col := make([]float64, len(xs))
		for i := range xs {
			col[i] = xs[i][j]
		}
		if floats.Norm(col, 2) > 0 {
			active = append(active, j)
		}
	}

	if len(active) == 0 {
		// Sem features informativas: modelo cai para o intercepto (média de y)
		return coef, nil
	}

	a := mat.NewDense(len(xs), len(active), nil)
	for i, row := range xs {
		for k, j := range active {
			a.Set(i, k, row[j])
		}
	}

	b := mat.NewDense(len(y), 1, nil)
	for i, v := range y {
		b.Set(i, 0, v-yMean)
	}

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, ErrModelFitFailed
	}

	// Mesmo corte de posto do lstsq: valores singulares abaixo de
	// max(m, n)*eps relativo ao maior são tratados como zero
	eps := math.Nextafter(1, 2) - 1
	rank := svd.Rank(float64(max(len(xs), len(active))) * eps)
	if rank == 0 {
		return coef, nil
	}

	var beta mat.Dense
	svd.SolveTo(&beta, b, rank)

	for k, j := range active {
		coef[j] = beta.At(k, 0)
	}

	return coef, nil
}

// rSquared calcula o coeficiente de determinação in-sample. Alvo constante
// segue a convenção do r2_score: 1 para ajuste perfeito, 0 caso contrário.
func rSquared(xs [][]float64, y []float64, coef []float64, intercept float64) float64 {
	var ssRes, ssTot float64
	yMean := stat.Mean(y, nil)

	for i, row := range xs {
		pred := intercept + floats.Dot(row, coef)
		ssRes += (y[i] - pred) * (y[i] - pred)
		ssTot += (y[i] - yMean) * (y[i] - yMean)
	}

	if ssTot == 0 {
		if ssRes < 1e-12 {
			return 1
		}
		return 0
	}

	return 1 - ssRes/ssTot
}

// Predict estima a quantidade demandada para um mapa de features. Chaves
// ausentes valem 0; o resultado é truncado em zero porque demanda não é
// negativa. Falha com ErrModelNotTrained se o modelo for nulo.
func (m *TrainedModel) Predict(features Record) (float64, error) {
	if m == nil {
		return 0, ErrModelNotTrained
	}

	v := m.scaler.transform(m.schema.vector(features))
	pred := m.intercept + floats.Dot(v, m.coef)

	return math.Max(0, pred), nil
}

// Summary devolve o resumo do treino no formato exposto pela API
func (m *TrainedModel) Summary() ModelSummary {
	coef := make([]float64, len(m.coef))
	copy(coef, m.coef)

	return ModelSummary{
		RSquared:     m.rSquared,
		Coefficients: coef,
		Intercept:    m.intercept,
		FeatureNames: m.schema.Names(),
	}
}

// Schema devolve o schema de colunas congelado no treino
func (m *TrainedModel) Schema() FeatureSchema {
	return m.schema
}
