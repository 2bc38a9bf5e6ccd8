package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nijaru/yt-digest/config"
	"github.com/nijaru/yt-digest/upstream"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(config.LLMConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL + "/v1/",
		Model:   "gpt-4o-mini",
		Timeout: time.Second,
	})
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(config.LLMConfig{APIKey: "  "})
	assert.Error(t, err)
}

func TestComplete(t *testing.T) {
	var got Request
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  {\"ok\":true}  "}}]}`))
	})

	content, err := client.Complete(context.Background(), Request{
		Messages:       []Message{System("sys"), User("hello")},
		Temperature:    0.4,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	})
	require.NoError(t, err)

	assert.Equal(t, `{"ok":true}`, content)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, 0.4, got.Temperature)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
}

func TestCompleteEmptyContent(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no choices", body: `{"choices":[]}`},
		{name: "blank content", body: `{"choices":[{"message":{"content":"   "}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := client.Complete(context.Background(), Request{Messages: []Message{User("x")}})
			assert.ErrorIs(t, err, ErrEmptyContent)
		})
	}
}

func TestCompleteStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	})

	_, err := client.Complete(context.Background(), Request{Messages: []Message{User("x")}})
	require.Error(t, err)

	var statusErr *upstream.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
}
