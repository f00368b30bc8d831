// Package gemini implements inference.Client on the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Client for the Gemini API. Empty model and baseURL fall back to the defaults.
func NewClient(ctx context.Context, apiKey, model, baseURL string) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient() > %w", err)
	}
	return &Client{
		client: client,
		model:  model,
	}, nil
}

// Complete implements the inference.Client interface. The reply is requested as application/json.
func (client *Client) Complete(ctx context.Context, prompt string) (string, error) {
	response, err := client.client.Models.GenerateContent(ctx,
		client.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return "", fmt.Errorf("Models.GenerateContent(%s) > %w", client.model, err)
	}

	text := response.Text()
	if text == "" {
		return "", fmt.Errorf("empty response content from %s", client.model)
	}
	slog.Default().Debug("gemini response content",
		"model", client.model,
		"candidates", len(response.Candidates),
	)
	return text, nil
}
