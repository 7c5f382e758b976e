package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"marwood.io/WhiskeyVault/configs"
)

const IntegrationName = "openai"

var ErrNoCompletion = errors.New("no completion returned")

type Client struct {
	conf       configs.OpenAI
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(conf configs.OpenAI, logger *zap.Logger) *Client {
	return &Client{conf: conf, httpClient: http.DefaultClient, logger: logger}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, system string, user string) (string, error) {
	payload := chatRequest{
		Model: c.conf.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.7,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.conf.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	request.Header.Set("Authorization", "Bearer "+c.conf.APIKey)
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrNoCompletion, response.StatusCode)
	}

	var completion chatResponse
	if err := json.NewDecoder(response.Body).Decode(&completion); err != nil {
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", ErrNoCompletion
	}

	return completion.Choices[0].Message.Content, nil
}
