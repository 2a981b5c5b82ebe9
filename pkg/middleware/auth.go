package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/price-optimization-api/pkg/apiErrors"
)

type contextKey string

// ContextKeyService guarda no contexto as claims do token de serviço validado
const ContextKeyService contextKey = "service"

// ServiceClaims são as claims do token de serviço usado nas rotas operacionais
// (disparo e status de ingestão). A API de consulta é pública; não há contas
// de usuário neste sistema.
type ServiceClaims struct {
	Service string `json:"service"`
	jwt.RegisteredClaims
}

// ServiceAuth valida um bearer token HMAC assinado com o segredo da aplicação
func ServiceAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token é obrigatório", nil)
				return
			}

			claims := &ServiceClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token de serviço expirado", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de serviço inválido", nil)
				return
			}

			if !token.Valid {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de serviço inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyService, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
