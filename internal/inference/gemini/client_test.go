package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateResponse(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestClient_Complete(t *testing.T) {
	tests := []struct {
		name              string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		want            string
		wantError       bool
		wantErrorString string
	}{
		{
			name: "Success returns candidate text",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-test:generateContent"), r.URL.Path)

				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.Contains(t, string(body), "translate: hello")
				assert.Contains(t, string(body), "application/json")

				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(candidateResponse(`{"translation":"x","unknownWord":[]}`))
			},
			want: `{"translation":"x","unknownWord":[]}`,
		},
		{
			name: "HTTP 500 error",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error": {"code": 500, "message": "internal", "status": "INTERNAL"}}`))
			},
			wantError:       true,
			wantErrorString: "Models.GenerateContent(gemini-test)",
		},
		{
			name: "No candidates",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"candidates": []}`))
			},
			wantError:       true,
			wantErrorString: "empty response content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			ctx := context.Background()
			client, err := NewClient(ctx, "test-key", "gemini-test", server.URL+"/")
			require.NoError(t, err)

			got, err := client.Complete(ctx, "translate: hello")
			if tt.wantError {
				require.Error(t, err)
				if tt.wantErrorString != "" {
					assert.Contains(t, err.Error(), tt.wantErrorString)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewClient_DefaultModel(t *testing.T) {
	client, err := NewClient(context.Background(), "test-key", "", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, client.model)
}
