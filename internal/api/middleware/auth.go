package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
)

type ctxKey string

const credentialKey ctxKey = "credential"

// WithCredential извлекает bearer-токен из заголовка Authorization
// и кладет его в контекст запроса. Отсутствие токена здесь не ошибка:
// большая часть операций с черновиком анонимна, аутентификацию требуют
// только отправка и список бронирований - и проверяют ее сами
func WithCredential(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
			ctx := context.WithValue(r.Context(), credentialKey, domain.Credential{Token: token})
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// GetCredential возвращает учетные данные пользователя из контекста
func GetCredential(ctx context.Context) (domain.Credential, bool) {
	cred, ok := ctx.Value(credentialKey).(domain.Credential)
	return cred, ok
}
