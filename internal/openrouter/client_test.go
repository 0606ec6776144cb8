package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/advisor/internal/interfaces"
)

func TestChatCompletion(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "A sensible allocation."}},
			},
		})
	}))
	defer server.Close()

	client := NewClient("test-key", "openai/gpt-4o-mini", WithBaseURL(server.URL))

	text, err := client.ChatCompletion(context.Background(), []interfaces.Message{
		{Role: "system", Content: "You are a helpful financial advisor."},
		{Role: "user", Content: "Explain this allocation."},
	})

	require.NoError(t, err)
	assert.Equal(t, "A sensible allocation.", text)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "openai/gpt-4o-mini", gotBody.Model)
	assert.Len(t, gotBody.Messages, 2)
}

func TestChatCompletionAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid api key"}`))
	}))
	defer server.Close()

	client := NewClient("bad-key", "openai/gpt-4o-mini", WithBaseURL(server.URL))

	_, err := client.ChatCompletion(context.Background(), []interfaces.Message{
		{Role: "user", Content: "hello"},
	})

	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "invalid api key")
}

func TestChatCompletionEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "openai/gpt-4o-mini", WithBaseURL(server.URL))

	_, err := client.ChatCompletion(context.Background(), []interfaces.Message{
		{Role: "user", Content: "hello"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestChatCompletionEmptyMessages(t *testing.T) {
	client := NewClient("test-key", "openai/gpt-4o-mini")

	_, err := client.ChatCompletion(context.Background(), nil)
	require.Error(t, err)
}
