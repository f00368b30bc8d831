package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client sends a single prompt to a completion model and returns the model's text reply unchanged.
// Implementations make exactly one request per call: no retry, no streaming.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Supported providers, as named in configuration.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)
