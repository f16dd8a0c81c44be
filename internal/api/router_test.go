package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/sleep-bot/internal/api/middleware"
)

func TestRouter_RateLimitKeyRespectsTrustProxy(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		wantCodes  []int
	}{
		{name: "direct clients cannot spoof", trustProxy: false, wantCodes: []int{http.StatusOK, http.StatusTooManyRequests}},
		{name: "behind trusted proxy", trustProxy: true, wantCodes: []int{http.StatusOK, http.StatusOK}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := NewRouter(nil, nil, nil, nil, nil, nil, middleware.NewRateLimiter(1, 1), tt.trustProxy)
			h := rt.Setup()

			for i, fwd := range []string{"198.51.100.1", "198.51.100.2"} {
				req := httptest.NewRequest(http.MethodGet, "/v1/sleep-schedule", nil)
				req.RemoteAddr = "10.0.0.1:4000"
				req.Header.Set("X-Forwarded-For", fwd)
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, req)
				if rec.Code != tt.wantCodes[i] {
					t.Errorf("request %d: status = %d, want %d", i, rec.Code, tt.wantCodes[i])
				}
			}
		})
	}
}
