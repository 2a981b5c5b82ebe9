// Package optimizer implementa o núcleo de estimação de demanda e otimização de
// preço: montagem da matriz de features, regressão linear com padronização,
// varredura de preços e elasticidade pontual. O pacote é puro - todo dado chega
// em memória e cada requisição treina um modelo novo do zero.
package optimizer

// Record é uma linha do histórico de preços de um produto, com acesso por nome
// de campo. Campos ausentes são tolerados em todas as operações.
type Record map[string]float64

// Colunas candidatas de feature, em ordem fixa. total_price fica de fora de
// propósito: deriva de unit_price x qty e vazaria o alvo para dentro do modelo.
var candidateFeatures = []string{
	"unit_price",
	"freight_price",
	"product_score",
	"weekday",
	"weekend",
	"holiday",
	"month",
	"s",
	"lag_price",
}

const targetColumn = "qty"

// minTrainingRecords é o menor histórico aceito para o treino. Abaixo disso a
// regressão com até 9 features fica com posto degenerado.
const minTrainingRecords = 5

// FeatureSchema é a lista ordenada e imutável de colunas usadas no treino.
// Treino e predição precisam concordar nessa ordem; por isso o schema é um
// valor devolvido pelo treino e carregado pelo modelo, nunca estado implícito.
type FeatureSchema struct {
	names []string
}

// Names devolve uma cópia da lista de colunas, na ordem de treino
func (s FeatureSchema) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len devolve a quantidade de colunas do schema
func (s FeatureSchema) Len() int {
	return len(s.names)
}

// vector monta o vetor de entrada na ordem do schema. Chaves ausentes valem 0,
// garantindo que a predição sempre tenha a dimensionalidade do treino.
func (s FeatureSchema) vector(features Record) []float64 {
	v := make([]float64, len(s.names))
	for i, name := range s.names {
		v[i] = features[name]
	}
	return v
}

// buildFeatures monta a matriz X (linhas = registros, colunas = features
// disponíveis), o vetor alvo y e o schema de colunas efetivamente usado.
//
// Uma coluna candidata só entra se estiver presente em TODOS os registros do
// lote. Valores ausentes dentro de uma coluna disponível valem 0 - política
// deliberadamente simples, não imputação estatística.
func buildFeatures(records []Record) ([][]float64, []float64, FeatureSchema, error) {
	if len(records) < minTrainingRecords {
		return nil, nil, FeatureSchema{}, &InsufficientDataError{
			Records: len(records),
			Minimum: minTrainingRecords,
		}
	}

	available := make([]string, 0, len(candidateFeatures))
	for _, col := range candidateFeatures {
		present := true
		for _, rec := range records {
			if _, ok := rec[col]; !ok {
				present = false
				break
			}
		}
		if present {
			available = append(available, col)
		}
	}

	schema := FeatureSchema{names: available}

	x := make([][]float64, len(records))
	y := make([]float64, len(records))
	for i, rec := range records {
		x[i] = schema.vector(rec)
		y[i] = rec[targetColumn]
	}

	return x, y, schema, nil
}
