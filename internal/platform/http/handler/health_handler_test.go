package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestNewHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		method       string
		expectedBody string
	}{
		{"GET reports upstream host", http.MethodGet, `{"status":"ok","upstream":"alpha-vantage.p.rapidapi.com"}`},
		{"HEAD has no body", http.MethodHead, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := gin.New()
			h := NewHealth("alpha-vantage.p.rapidapi.com")
			r.GET("/healthz", h)
			r.HEAD("/healthz", h)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, httptest.NewRequest(tt.method, "/healthz", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			if tt.expectedBody == "" {
				assert.Zero(t, w.Body.Len())
			} else {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestNewHealth_UnregisteredMethod(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.GET("/healthz", NewHealth("h"))
	w := httptest.NewRecorder()

	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/healthz", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
