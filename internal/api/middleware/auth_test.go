package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
)

func TestWithCredential(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantOK    bool
		wantToken string
	}{
		{"bearer token", "Bearer user-token", true, "user-token"},
		{"no header", "", false, ""},
		{"empty token", "Bearer ", false, ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotCred domain.Credential
			var gotOK bool

			handler := WithCredential(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				gotCred, gotOK = GetCredential(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.wantOK, gotOK)
			assert.Equal(t, tt.wantToken, gotCred.Token)
		})
	}
}
