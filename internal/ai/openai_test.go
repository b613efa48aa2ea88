package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fileorg/internal/config"
)

func TestOpenAI_Generate(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": " <category>Finance</category> "},
				"finish_reason": "stop",
			}},
		})
	}))
	defer srv.Close()

	gen, err := NewOpenAI("test-key", srv.URL, "test-model", srv.Client())
	require.NoError(t, err)

	out, err := gen.Generate(context.Background(), "pick one", &Image{Data: []byte("PNG"), MIMEType: "image/png"})

	require.NoError(t, err)
	assert.Equal(t, "<category>Finance</category>", out)
	assert.Contains(t, body, `"model":"test-model"`)
	assert.Contains(t, body, "data:image/png;base64,UE5H")
}

func TestOpenAI_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[]}`))
	}))
	defer srv.Close()

	gen, err := NewOpenAI("k", srv.URL, "", nil)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "p", nil)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestUserMessage_TextOnly(t *testing.T) {
	msg := userMessage("hello", nil)
	assert.Equal(t, "hello", msg.Content)
	assert.Empty(t, msg.MultiContent)
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	_, err := New(ctx, config.AIConfig{}, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = New(ctx, config.AIConfig{Provider: "claude"}, nil)
	assert.ErrorContains(t, err, "unknown ai provider")

	_, err = New(ctx, config.AIConfig{Provider: "gemini"}, nil)
	assert.ErrorContains(t, err, "api key is required")

	c, err := New(ctx, config.AIConfig{Provider: "openai", OpenAIAPIKey: "k", RatePerSec: 1, Burst: 2}, nil)
	require.NoError(t, err)
	require.NotNil(t, c.limiter)
	assert.Equal(t, 2, c.limiter.Burst())
}

func TestExtractTag(t *testing.T) {
	got, ok := extractTag("a <category> Finance </category> b", "category")
	assert.True(t, ok)
	assert.Equal(t, "Finance", got)

	_, ok = extractTag("<category>unterminated", "category")
	assert.False(t, ok)

	_, ok = extractTag("nothing", "category")
	assert.False(t, ok)
}
