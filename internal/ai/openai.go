package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const systemPrompt = "You are a reading assistant. Answer the reader's question using only the provided book excerpt. If the excerpt does not contain the answer, say so briefly."

// OpenAIClient calls any OpenAI-compatible /v1/chat/completions endpoint.
// Works with OpenAI itself as well as self-hosted compatible servers.
type OpenAIClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewOpenAIClient builds an Asker against an OpenAI-compatible API.
// baseURL should include the /v1 prefix. apiKey can be empty for local
// servers that do not require authentication.
func NewOpenAIClient(baseURL, apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  strings.TrimSpace(apiKey),
		model:   strings.TrimSpace(model),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Ask implements Asker using the chat completions API. The context text is
// truncated to MaxContextChars before it leaves the device.
func (c *OpenAIClient) Ask(ctx context.Context, question, contextText, title string, page *int) (string, error) {
	if c.model == "" {
		return "", fmt.Errorf("ai model not configured")
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Book: %s\n", title)
	if page != nil {
		fmt.Fprintf(&prompt, "Page: %d\n", *page+1)
	}
	fmt.Fprintf(&prompt, "Excerpt:\n%s\n\nQuestion: %s", TruncateContext(contextText), question)

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt.String()},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Error.Message != "" {
			return "", fmt.Errorf("ai api error: %s", errResp.Error.Message)
		}
		return "", fmt.Errorf("ai api error: %s", resp.Status)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("ai decode: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from ai api")
	}
	answer := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if answer == "" {
		return "", fmt.Errorf("empty response from ai api")
	}
	return answer, nil
}

// OpenAI-compatible request/response types.

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
