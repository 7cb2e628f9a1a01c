package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// contextKey тип для ключей контекста
type contextKey string

// RequestIDKey ключ для хранения request id в контексте
const RequestIDKey contextKey = "request_id"

// RequestIDHeader заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

// GetRequestID извлекает request id из контекста запроса
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok
}

// RequestIDMiddleware присваивает каждому запросу идентификатор.
// Идентификатор клиента из X-Request-ID используется, если он валидный UUID.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
