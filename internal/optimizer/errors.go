package optimizer

import (
	"errors"
	"fmt"
)

// Erros do núcleo de estimação de demanda
var (
	// ErrModelNotTrained indica uso de um modelo antes de um treino bem sucedido.
	// É violação de contrato de programação, não um erro esperado de requisição.
	ErrModelNotTrained = errors.New("demand model is not trained")

	// ErrNonPositiveCurrentPrice indica que o último preço observado é zero ou
	// negativo, o que degeneraria a grade de preços e a variação percentual.
	ErrNonPositiveCurrentPrice = errors.New("current price must be positive")

	// ErrModelFitFailed indica falha numérica na fatoração da matriz de features
	ErrModelFitFailed = errors.New("failed to fit demand model")
)

// InsufficientDataError indica histórico menor que o mínimo exigido para o treino
type InsufficientDataError struct {
	Records int // registros recebidos
	Minimum int // mínimo exigido
}

// Error implementa a interface error
func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for training: got %d records, need at least %d", e.Records, e.Minimum)
}
