package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = "claude-sonnet-4-6"
	}
	return &Client{
		baseURL: "https://api.anthropic.com",
		apiKey:  apiKey,
		model:   model,
		// Geração é a chamada mais lenta do sistema; timeout folgado.
		http: &http.Client{Timeout: 120 * time.Second},
	}
}

// Generate: um prompt, uma resposta de texto. Sem streaming, sem multi-turn.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	response, err := c.complete(ctx, messagesRequest{
		Model:     c.model,
		MaxTokens: 3000,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}

	return response.Content[0].Text, nil
}

// RunAgent roda uma execução da demo: system prompt fixo do tipo de agente
// mais a mensagem do visitante. Respostas curtas, teto menor de tokens.
func (c *Client) RunAgent(ctx context.Context, system, prompt string) (*AgentReply, error) {
	response, err := c.complete(ctx, messagesRequest{
		Model:     c.model,
		MaxTokens: 1024,
		System:    system,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, err
	}

	return &AgentReply{
		Text:       response.Content[0].Text,
		TokensUsed: response.Usage.InputTokens + response.Usage.OutputTokens,
		Model:      c.model,
	}, nil
}

func (c *Client) complete(ctx context.Context, payload messagesRequest) (*messagesResponse, error) {
	url := fmt.Sprintf("%s/v1/messages", c.baseURL)

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request anthropic: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("erro anthropic (status %d): %s", resp.StatusCode, string(body))
	}

	var response messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro decode anthropic: %w", err)
	}

	if response.Error != nil {
		return nil, fmt.Errorf("anthropic: %s", response.Error.Message)
	}
	if len(response.Content) == 0 {
		return nil, fmt.Errorf("anthropic: resposta sem conteúdo")
	}

	return &response, nil
}
