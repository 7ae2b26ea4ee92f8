package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureIP(t *testing.T, prepare func(r *http.Request)) string {
	t.Helper()
	var got string
	h := ClientIdentifier(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetClientIP(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	prepare(req)
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestClientIdentifier(t *testing.T) {
	// X-Forwarded-For wins and only the first hop counts
	ip := captureIP(t, func(r *http.Request) {
		r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		r.Header.Set("X-Real-IP", "198.51.100.2")
	})
	assert.Equal(t, "203.0.113.7", ip)

	ip = captureIP(t, func(r *http.Request) {
		r.Header.Set("X-Real-IP", "198.51.100.2")
	})
	assert.Equal(t, "198.51.100.2", ip)

	ip = captureIP(t, func(r *http.Request) {
		r.Header.Set("CF-Connecting-IP", "192.0.2.10")
	})
	assert.Equal(t, "192.0.2.10", ip)

	// falls back to RemoteAddr with the port stripped
	ip = captureIP(t, func(r *http.Request) {
		r.RemoteAddr = "192.0.2.33:54012"
	})
	assert.Equal(t, "192.0.2.33", ip)
}

func TestGetClientIPDefault(t *testing.T) {
	assert.Equal(t, "unknown", GetClientIP(context.Background()))
}
