package auth

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestRequireSession(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name    string
		current string
		header  string
		status  int
	}{
		{name: "missing header", current: "tok", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", current: "tok", header: "Basic tok", status: http.StatusUnauthorized},
		{name: "no active session", current: "", header: "Bearer tok", status: http.StatusUnauthorized},
		{name: "stale token", current: "tok", header: "Bearer old", status: http.StatusUnauthorized},
		{name: "current token", current: "tok", header: "Bearer tok", status: http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := RequireSession(staticToken(tt.current), logger)(ok)
			req := httptest.NewRequest(http.MethodGet, "/api/wallet", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			if tt.status == http.StatusUnauthorized {
				assert.Contains(t, rr.Body.String(), `"error":"unauthorized"`)
			}
		})
	}
}
