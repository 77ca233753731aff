package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/avtomix/ACS-InspectionService/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

const msgForbidden = "доступ запрещен"

// AdminAuth проверяет токен администратора в заголовке X-Admin-Token.
// Используется для маршрутов бэк-офиса.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondForbidden(w, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
