package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"lexasta/internal/config"
	"lexasta/internal/handler"
	"lexasta/internal/model"
	"lexasta/internal/port"
)

type noopClient struct{}

func (noopClient) Complete(context.Context, port.ModelRequest) (*port.ModelResponse, error) {
	return &port.ModelResponse{}, nil
}

func TestHealthHandler(t *testing.T) {
	model.RegisterProvider("health-test", func(*config.ParserProviderConfig) (port.ModelClient, error) {
		return noopClient{}, nil
	})

	c, w := newContext(http.MethodGet, "/healthz", nil, nil)
	handler.NewHealthHandler(nil).Liveness(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(http.MethodGet, "/readyz", nil, nil)
	handler.NewHealthHandler([]string{"health-test"}).Readiness(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(http.MethodGet, "/readyz", nil, nil)
	handler.NewHealthHandler([]string{"not-registered"}).Readiness(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not-registered")
}
