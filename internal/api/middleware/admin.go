package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/Restaurant-BookingService/internal/api/handlers"
)

// AdminAuth требует заголовок X-Admin-Token с токеном из конфигурации
// Пустой токен в конфигурации закрывает админские маршруты полностью
func AdminAuth(adminToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminToken == "" {
				handlers.RespondForbidden(w, "административный доступ не настроен")
				return
			}

			token := r.Header.Get("X-Admin-Token")
			if subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				handlers.RespondForbidden(w, "доступ запрещен")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
