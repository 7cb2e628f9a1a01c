package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lansync/internal/models"
	"github.com/iudanet/lansync/internal/server/middleware"
	"github.com/iudanet/lansync/internal/server/store"
	"github.com/iudanet/lansync/pkg/api"
)

func TestStatusHandler_Status(t *testing.T) {
	pin := "1234"

	tests := []struct {
		pin      *string
		name     string
		expected api.StatusResponse
	}{
		{
			name: "without PIN",
			pin:  nil,
			expected: api.StatusResponse{
				ServerName:        "Desk",
				Version:           api.ProtocolVersion,
				ConversationCount: 2,
				ProjectCount:      1,
				HasPin:            false,
			},
		},
		{
			name: "with PIN",
			pin:  &pin,
			expected: api.StatusResponse{
				ServerName:        "Desk",
				Version:           api.ProtocolVersion,
				ConversationCount: 2,
				ProjectCount:      1,
				HasPin:            true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.New()
			s.Replace(
				[]models.Record{conversation("c1", "2024-01-01T00:00:00Z"), conversation("c2", "2024-01-02T00:00:00Z")},
				[]models.Record{project("p1", "2024-01-01T00:00:00Z")},
			)
			gate := middleware.NewPinGate()
			gate.Configure(tt.pin)

			handler := NewStatusHandler(setupTestLogger(), s, gate, "Desk")

			w := httptest.NewRecorder()
			handler.Status(w, httptest.NewRequest(http.MethodGet, api.PathStatus, nil))

			require.Equal(t, http.StatusOK, w.Code)

			var resp api.StatusResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.expected, resp)
			assert.NotContains(t, w.Body.String(), pin, "status must never expose the PIN")
		})
	}
}
