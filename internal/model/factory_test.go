package model_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexasta/internal/config"
	"lexasta/internal/model"
	"lexasta/internal/port"
)

// stubClient is a minimal ModelClient for testing the factory.
type stubClient struct {
	model string
}

func (s *stubClient) Complete(_ context.Context, _ port.ModelRequest) (*port.ModelResponse, error) {
	return &port.ModelResponse{Model: s.model}, nil
}

func registerStub(name string) {
	model.RegisterProvider(name, func(cfg *config.ParserProviderConfig) (port.ModelClient, error) {
		return &stubClient{model: cfg.DefaultModel}, nil
	})
}

func TestFactory_RegisterAndCreate(t *testing.T) {
	registerStub("test-provider")

	c, err := model.NewClient(&config.ParserProviderConfig{
		Provider:     "test-provider",
		DefaultModel: "test-model",
	})

	require.NoError(t, err)
	out, err := c.Complete(context.Background(), port.ModelRequest{})
	require.NoError(t, err)
	assert.Equal(t, "test-model", out.Model)
	assert.Contains(t, model.Registered(), "test-provider")
}

func TestFactory_UnknownProvider(t *testing.T) {
	c, err := model.NewClient(&config.ParserProviderConfig{Provider: "nonexistent-provider-xyz"})

	assert.Nil(t, c)
	assert.ErrorContains(t, err, "unknown model provider")
}

func TestNewFromConfig_SingleProviderIsNotWrapped(t *testing.T) {
	registerStub("stub-a")

	c, err := model.NewFromConfig(&config.ParserConfig{Provider: "stub-a", DefaultModel: "a"})

	require.NoError(t, err)
	assert.IsType(t, &stubClient{}, c)
}

func TestNewFromConfig_ChainIsFallback(t *testing.T) {
	registerStub("stub-a")
	registerStub("stub-b")

	c, err := model.NewFromConfig(&config.ParserConfig{
		Primary:   config.ParserProviderConfig{Provider: "stub-a", DefaultModel: "a"},
		Secondary: config.ParserProviderConfig{Provider: "stub-b", DefaultModel: "b"},
	})

	require.NoError(t, err)
	assert.IsType(t, &model.FallbackClient{}, c)
	out, err := c.Complete(context.Background(), port.ModelRequest{})
	require.NoError(t, err)
	assert.Equal(t, "a", out.Model)
}

func TestNewFromConfig_UnknownSecondary(t *testing.T) {
	registerStub("stub-a")

	_, err := model.NewFromConfig(&config.ParserConfig{
		Primary:   config.ParserProviderConfig{Provider: "stub-a"},
		Secondary: config.ParserProviderConfig{Provider: "nope"},
	})

	assert.Error(t, err)
}
