package pricing

import "errors"

// Erros específicos para o contexto de precificação
var (
	ErrProductIDRequired = errors.New("product ID is required")
	ErrProductNotFound   = errors.New("product not found")
	ErrNoPriceHistory    = errors.New("product has no price history")
)
