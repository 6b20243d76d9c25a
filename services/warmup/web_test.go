package warmup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestWarmup(t *testing.T) {
	router := mux.NewRouter()
	NewService("sandbox").RegisterEndpoints(context.TODO(), router)

	t.Run("warmup", func(t *testing.T) {
		request, err := http.NewRequest(http.MethodGet, "/_ah/warmup", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "{\n\t\"Message\": \"Successfully processed warmup request\"\n}\n", response.Body.String())
	})

	t.Run("health", func(t *testing.T) {
		request, err := http.NewRequest(http.MethodGet, "/healthz", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "{\n\t\"Message\": \"Relaying in sandbox mode\"\n}\n", response.Body.String())
	})

	t.Run("wrong method", func(t *testing.T) {
		request, err := http.NewRequest(http.MethodPost, "/healthz", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, http.StatusMethodNotAllowed, response.Code)
	})
}
