package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sattis-studio/booking-web/internal/api/handlers"
)

type contextKey string

const tokenContextKey contextKey = "authToken"

const msgMissingToken = "отсутствует токен авторизации"

// Auth извлекает Bearer токен из заголовка Authorization и кладет его в контекст.
// Токен не проверяется локально: его валидирует backend при каждом запросе.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || token == "" || token == header {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		ctx := context.WithValue(r.Context(), tokenContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetToken возвращает токен администратора из контекста
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}
