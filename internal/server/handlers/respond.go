package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/iudanet/lansync/pkg/api"
)

// ErrMalformedRequest тело запроса не является корректным JSON ожидаемой формы
var ErrMalformedRequest = errors.New("malformed request body")

// maxBodyBytes ограничение размера тела pull/push запроса.
// Беседы с длинной историей бывают большими, поэтому лимит щедрый.
const maxBodyBytes = 64 << 20

// decodeJSON читает тело запроса целиком в dst.
// Любая ошибка разбора оборачивается в ErrMalformedRequest.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	// После значения допускаются только пробельные символы
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON body", ErrMalformedRequest)
	}
	return nil
}

// writeJSON отправляет ответ 200 с JSON телом
func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError отправляет ошибку в формате api.ErrorResponse
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{
		Error:   code,
		Message: message,
	})
}
