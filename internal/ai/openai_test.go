package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateContext(t *testing.T) {
	short := "a short excerpt"
	assert.Equal(t, short, TruncateContext(short))

	long := strings.Repeat("x", MaxContextChars+500)
	truncated := TruncateContext(long)
	assert.Len(t, truncated, MaxContextChars)
}

func TestOpenAIClient_Ask(t *testing.T) {
	var received chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "Because of compounding."}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewOpenAIClient(server.URL+"/v1", "test-key", "gpt-4o-mini")
	page := 2
	answer, err := client.Ask(context.Background(), "Why does money grow?", "excerpt text", "The Intelligent Investor", &page)
	require.NoError(t, err)

	assert.Equal(t, "Because of compounding.", answer)
	require.Len(t, received.Messages, 2)
	assert.Equal(t, "system", received.Messages[0].Role)
	assert.Contains(t, received.Messages[1].Content, "The Intelligent Investor")
	assert.Contains(t, received.Messages[1].Content, "Page: 3")
	assert.Contains(t, received.Messages[1].Content, "Why does money grow?")
}

func TestOpenAIClient_Ask_TruncatesContext(t *testing.T) {
	var received chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "ok"}},
			},
		})
	}))
	defer server.Close()

	client := NewOpenAIClient(server.URL+"/v1", "", "test-model")
	long := strings.Repeat("y", MaxContextChars+1000)
	_, err := client.Ask(context.Background(), "q", long, "t", nil)
	require.NoError(t, err)

	assert.NotContains(t, received.Messages[1].Content, strings.Repeat("y", MaxContextChars+1))
}

func TestOpenAIClient_Ask_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "rate limited", "type": "rate_limit"},
		})
	}))
	defer server.Close()

	client := NewOpenAIClient(server.URL+"/v1", "", "test-model")
	_, err := client.Ask(context.Background(), "q", "ctx", "t", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestOpenAIClient_Ask_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	client := NewOpenAIClient(server.URL+"/v1", "", "test-model")
	_, err := client.Ask(context.Background(), "q", "ctx", "t", nil)
	assert.Error(t, err)
}

func TestOpenAIClient_Ask_MissingModel(t *testing.T) {
	client := NewOpenAIClient("http://localhost:9999/v1", "", "")
	_, err := client.Ask(context.Background(), "q", "ctx", "t", nil)
	assert.Error(t, err)
}
