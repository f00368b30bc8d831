// Package translation relays English sentences to a completion model and returns its JSON reply.
package translation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/monglot/internal/inference"
	"github.com/at-ishikawa/monglot/internal/validation"
)

var (
	// ErrNotConfigured means no API credential was configured.
	ErrNotConfigured = errors.New("translation is not configured")
	// ErrTranslationFailed is the only error callers see for a failed translation.
	ErrTranslationFailed = errors.New("translation failed")
)

type Request struct {
	Sentence     string          `json:"sentence" validate:"required"`
	Vocabulary   json.RawMessage `json:"vocabulary,omitempty"`
	GrammarRules json.RawMessage `json:"grammarRules,omitempty"`
}

type Gateway struct {
	client inference.Client
}

// NewGateway creates a Gateway. A nil client leaves translation unconfigured.
func NewGateway(client inference.Client) *Gateway {
	return &Gateway{client: client}
}

// Configured reports whether a completion client is available.
func (gateway *Gateway) Configured() bool {
	return gateway.client != nil
}

// Translate makes exactly one completion call and returns its reply when it parses as JSON.
// Every failure after validation is reported as ErrTranslationFailed.
func (gateway *Gateway) Translate(ctx context.Context, req Request) (json.RawMessage, error) {
	if strings.TrimSpace(req.Sentence) == "" {
		return nil, validation.NewError("sentence is a required field")
	}
	if gateway.client == nil {
		slog.Default().Warn("translate requested without a configured provider")
		return nil, fmt.Errorf("%w: %w", ErrTranslationFailed, ErrNotConfigured)
	}

	reply, err := gateway.client.Complete(ctx, buildPrompt(req))
	if err != nil {
		slog.Default().Error("completion call failed", "error", err)
		return nil, fmt.Errorf("%w: client.Complete() > %w", ErrTranslationFailed, err)
	}

	body := stripCodeFence(reply)
	if !json.Valid([]byte(body)) {
		slog.Default().Error("completion reply is not JSON", "reply", reply)
		return nil, fmt.Errorf("%w: reply is not JSON", ErrTranslationFailed)
	}
	return json.RawMessage(body), nil
}
