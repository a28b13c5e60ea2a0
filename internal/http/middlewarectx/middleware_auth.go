// Package middlewarectx содержит HTTP middleware сервиса: идентификатор
// транзакции, проверку JWT и ограничение частоты запросов.
//
// JWTMiddleware проверяет наличие и валидность JWT токена в заголовке Authorization
// и в случае успеха добавляет в контекст имя пользователя из subject токена.
// В случае ошибки проверки возвращает HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/amangusss/trainer-workload/internal/http/response"
	"github.com/amangusss/trainer-workload/internal/lib/jwt"
	"github.com/amangusss/trainer-workload/internal/lib/sl"
	"github.com/amangusss/trainer-workload/internal/lib/txid"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// User — ключ для имени пользователя в контексте
const User Key = "username"

// TokenParser описывает проверку JWT токена.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
func JWTMiddleware(parser TokenParser, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			log := log.With(
				slog.String("op", op),
				sl.TxID(txid.FromContext(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Warn("missing or invalid authorization header")
				response.WriteError(w, r, http.StatusUnauthorized, response.ErrorUnauthorized, "missing or invalid authorization header")
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := parser.ParseToken(tokenStr)
			if err != nil {
				log.Warn("invalid or expired token", sl.Err(err))
				response.WriteError(w, r, http.StatusUnauthorized, response.ErrorUnauthorized, "invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), User, claims.Username())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
