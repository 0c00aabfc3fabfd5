package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/agents-outreach/internal/infra/http/middleware"
)

func TestRequireAccountRejectsMissingHeader(t *testing.T) {
	called := false
	handler := middleware.RequireAccount(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/prospecting/prospects", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAccountInjectsAccountID(t *testing.T) {
	var got string
	handler := middleware.RequireAccount(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.AccountID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/prospecting/prospects", nil)
	req.Header.Set("X-Account-ID", "acc-1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "acc-1", got)
}
