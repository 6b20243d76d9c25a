package mycontext

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextFromHTTPRequest(t *testing.T) {
	t.Run("With cloud trace header", func(t *testing.T) {
		t.Setenv("GOOGLE_CLOUD_PROJECT", "myproject")
		request, err := http.NewRequest(http.MethodGet, "/api/config", nil)
		assert.NoError(t, err)
		request.Header.Set("X-Cloud-Trace-Context", "105445aa7843bc8bf206b12000100000/1;o=1")

		c := ContextFromHTTPRequest(request)
		assert.Equal(t, "projects/myproject/traces/105445aa7843bc8bf206b12000100000", TraceFromContext(c))
	})

	t.Run("Without cloud trace header", func(t *testing.T) {
		request, err := http.NewRequest(http.MethodGet, "/api/config", nil)
		assert.NoError(t, err)

		c := ContextFromHTTPRequest(request)
		assert.Equal(t, "", TraceFromContext(c))
	})

	t.Run("Cancellation of request propagates", func(t *testing.T) {
		parent, cancel := context.WithCancel(context.Background())
		request, err := http.NewRequestWithContext(parent, http.MethodPost, "/create-order", nil)
		assert.NoError(t, err)

		c := ContextFromHTTPRequest(request)
		cancel()
		<-c.Done()
		assert.ErrorIs(t, c.Err(), context.Canceled)
	})

	t.Run("Context without trace", func(t *testing.T) {
		assert.Equal(t, "", TraceFromContext(context.Background()))
	})
}
