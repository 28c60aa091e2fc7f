package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shidenryu/booking-service/internal/api/handlers"
)

// HeaderAdminToken заголовок аутентификации административных маршрутов
const HeaderAdminToken = "X-Admin-Token"

// AdminAuth проверяет заголовок X-Admin-Token на административных маршрутах
// Пустой настроенный токен закрывает админку целиком
func AdminAuth(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				handlers.RespondUnauthorized(w, "admin API is disabled")
				return
			}

			got := r.Header.Get(HeaderAdminToken)
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, "invalid admin token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
