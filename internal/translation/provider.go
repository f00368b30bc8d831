package translation

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/monglot/internal/config"
	"github.com/at-ishikawa/monglot/internal/inference"
	"github.com/at-ishikawa/monglot/internal/inference/gemini"
	"github.com/at-ishikawa/monglot/internal/inference/openai"
)

// NewClientFromConfig builds the completion client for cfg.Provider.
// It returns a nil client and a no-op closer when the provider has no API key.
func NewClientFromConfig(ctx context.Context, cfg config.TranslationConfig) (inference.Client, func() error, error) {
	noop := func() error { return nil }
	if !cfg.Enabled() {
		return nil, noop, nil
	}

	apiKey := cfg.SelectedAPIKey()
	switch cfg.Provider {
	case inference.ProviderOpenAI:
		client := openai.NewClient(apiKey, cfg.Model, cfg.BaseURL)
		return client, client.Close, nil
	case inference.ProviderGemini, "":
		client, err := gemini.NewClient(ctx, apiKey, cfg.Model, cfg.BaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("gemini.NewClient() > %w", err)
		}
		return client, noop, nil
	default:
		return nil, noop, fmt.Errorf("unsupported translation provider: %s", cfg.Provider)
	}
}
