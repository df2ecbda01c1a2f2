package model_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lexasta/internal/model"
	"lexasta/internal/port"
	"lexasta/mocks"
)

var fallbackReq = port.ModelRequest{System: "sys", Prompt: "analizza", MaxTokens: 4096}

func reply(m string) *port.ModelResponse {
	return &port.ModelResponse{Text: `{"procedura":{}}`, Model: m}
}

func TestFallbackClient_FirstSucceeds(t *testing.T) {
	c1 := new(mocks.MockModelClient)
	c2 := new(mocks.MockModelClient)
	c1.On("Complete", mock.Anything, fallbackReq).Return(reply("claude"), nil)

	fc := model.NewFallbackClient([]port.ModelClient{c1, c2}, []string{"claude", "openai"}, nil)
	out, err := fc.Complete(context.Background(), fallbackReq)

	require.NoError(t, err)
	assert.Equal(t, "claude", out.Model)
	c2.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestFallbackClient_FirstFails_SecondSucceeds(t *testing.T) {
	c1 := new(mocks.MockModelClient)
	c2 := new(mocks.MockModelClient)
	c1.On("Complete", mock.Anything, fallbackReq).Return(nil, &model.ModelError{Provider: "claude", StatusCode: 500, Message: "HTTP 500"})
	c2.On("Complete", mock.Anything, fallbackReq).Return(reply("gemini"), nil)

	fc := model.NewFallbackClient([]port.ModelClient{c1, c2}, []string{"claude", "gemini"}, nil)
	out, err := fc.Complete(context.Background(), fallbackReq)

	require.NoError(t, err)
	assert.Equal(t, "gemini", out.Model)
}

func TestFallbackClient_AllRateLimited(t *testing.T) {
	c1 := new(mocks.MockModelClient)
	c2 := new(mocks.MockModelClient)
	c1.On("Complete", mock.Anything, fallbackReq).Return(nil, model.NewRateLimitError("claude", errors.New("429"), 60))
	c2.On("Complete", mock.Anything, fallbackReq).Return(nil, model.NewRateLimitError("gemini", errors.New("429"), 30))

	fc := model.NewFallbackClient([]port.ModelClient{c1, c2}, []string{"claude", "gemini"}, nil)
	out, err := fc.Complete(context.Background(), fallbackReq)

	assert.Nil(t, out)
	var rlErr *model.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "all", rlErr.Provider)
}

func TestFallbackClient_AllFail_NonRateLimit(t *testing.T) {
	c1 := new(mocks.MockModelClient)
	c2 := new(mocks.MockModelClient)
	c1.On("Complete", mock.Anything, fallbackReq).Return(nil, errors.New("error 1"))
	c2.On("Complete", mock.Anything, fallbackReq).Return(nil, errors.New("error 2"))

	fc := model.NewFallbackClient([]port.ModelClient{c1, c2}, []string{"claude", "gemini"}, nil)
	_, err := fc.Complete(context.Background(), fallbackReq)

	assert.ErrorContains(t, err, "all providers failed")
	var rlErr *model.RateLimitError
	assert.False(t, errors.As(err, &rlErr))
}

func TestFallbackClient_SkipsOpenCircuit(t *testing.T) {
	c1 := new(mocks.MockModelClient)
	c2 := new(mocks.MockModelClient)
	c1.On("Complete", mock.Anything, fallbackReq).Return(nil, model.NewRateLimitError("claude", errors.New("429"), 60)).Once()
	c2.On("Complete", mock.Anything, fallbackReq).Return(reply("gemini"), nil)

	fc := model.NewFallbackClient([]port.ModelClient{c1, c2}, []string{"claude", "gemini"}, nil)

	_, err := fc.Complete(context.Background(), fallbackReq)
	require.NoError(t, err)
	out, err := fc.Complete(context.Background(), fallbackReq)
	require.NoError(t, err)

	assert.Equal(t, "gemini", out.Model)
	c1.AssertNumberOfCalls(t, "Complete", 1)
}

func TestFallbackClient_CircuitAutoCloses(t *testing.T) {
	c1 := new(mocks.MockModelClient)
	c2 := new(mocks.MockModelClient)
	c1.On("Complete", mock.Anything, fallbackReq).Return(nil, model.NewRateLimitError("claude", errors.New("429"), 1)).Once()
	c2.On("Complete", mock.Anything, fallbackReq).Return(reply("gemini"), nil).Once()

	fc := model.NewFallbackClient([]port.ModelClient{c1, c2}, []string{"claude", "gemini"}, nil)
	out, err := fc.Complete(context.Background(), fallbackReq)
	require.NoError(t, err)
	assert.Equal(t, "gemini", out.Model)

	time.Sleep(1100 * time.Millisecond)

	c1.On("Complete", mock.Anything, fallbackReq).Return(reply("claude"), nil).Once()
	out, err = fc.Complete(context.Background(), fallbackReq)
	require.NoError(t, err)
	assert.Equal(t, "claude", out.Model)
}

func TestFallbackClient_ConcurrentSafety(t *testing.T) {
	c1 := new(mocks.MockModelClient)
	c2 := new(mocks.MockModelClient)
	c1.On("Complete", mock.Anything, fallbackReq).Return(nil, model.NewRateLimitError("claude", errors.New("429"), 5)).Maybe()
	c2.On("Complete", mock.Anything, fallbackReq).Return(reply("gemini"), nil).Maybe()

	fc := model.NewFallbackClient([]port.ModelClient{c1, c2}, []string{"claude", "gemini"}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := fc.Complete(context.Background(), fallbackReq)
			assert.NoError(t, err)
			assert.NotNil(t, out)
		}()
	}
	wg.Wait()
}

func TestFallbackClient_RequestKeyOnlyReachesPrimary(t *testing.T) {
	c1 := new(mocks.MockModelClient)
	c2 := new(mocks.MockModelClient)
	c1.On("Complete", mock.MatchedBy(func(ctx context.Context) bool {
		return port.APIKeyFromContext(ctx, "") == "sk-ant-user"
	}), fallbackReq).Return(nil, &model.ModelError{Provider: "claude", StatusCode: 500, Message: "HTTP 500"})
	c2.On("Complete", mock.MatchedBy(func(ctx context.Context) bool {
		return port.APIKeyFromContext(ctx, "configured") == "configured"
	}), fallbackReq).Return(reply("openai"), nil)

	fc := model.NewFallbackClient([]port.ModelClient{c1, c2}, []string{"claude", "openai"}, nil)
	out, err := fc.Complete(port.WithAPIKey(context.Background(), "sk-ant-user"), fallbackReq)

	require.NoError(t, err)
	assert.Equal(t, "openai", out.Model)
	c1.AssertExpectations(t)
	c2.AssertExpectations(t)
}
