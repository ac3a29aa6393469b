package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"insurance_rag/internal/config"
)

// Client - OpenAI-совместимый чат-клиент с поддержкой tool calling
type Client struct {
	cfg        config.Llm
	httpClient *http.Client
}

func New(cfg config.Llm) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Tools       []Tool    `json:"tools,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Chat отправляет историю диалога и описания инструментов,
// возвращает ответное сообщение модели: либо текст, либо tool_calls
func (c *Client) Chat(ctx context.Context, messages []Message, tools []Tool) (Message, error) {
	if c.cfg.Key == "" {
		return Message{}, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	reqBody := chatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Tools:       tools,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return Message{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.cfg.URL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return Message{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.Key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Message{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Message{}, fmt.Errorf("LLM returned status %d: %s", resp.StatusCode, string(body))
	}

	var response chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return Message{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if response.Error != nil {
		return Message{}, fmt.Errorf("LLM error: %s", response.Error.Message)
	}
	if len(response.Choices) == 0 {
		return Message{}, fmt.Errorf("no response from LLM")
	}

	return response.Choices[0].Message, nil
}
