package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

type ctxKeyUserID struct{}

// Auth требует наличие заголовка X-User-ID и кладет его значение в контекст.
// Аутентификацию выполняет API gateway, сюда приходит уже проверенный ID.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(userIDHeader)
		if userID == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyUserID{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя, положенный в контекст middleware Auth
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ctxKeyUserID{}).(string)
	return userID, ok
}
