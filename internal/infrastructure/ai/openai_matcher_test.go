package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"master_booking/internal/domain/entities"
)

var candidates = []entities.ServiceCandidate{
	{ID: "s1", Name: "Tap repair", Category: "plumbing"},
	{ID: "s2", Name: "TV mounting"},
}

func TestParseMatchedIDs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"plain strings", `["s1","s2"]`, []string{"s1", "s2"}},
		{"scored objects", `[{"id":"s2","score":0.9},{"id":"s1","score":0.4}]`, []string{"s2", "s1"}},
		{"json fence", "```json\n[\"s1\"]\n```", []string{"s1"}},
		{"bare fence", "```\n[\"s2\"]\n```", []string{"s2"}},
		{"prose around array", `Here you go: ["s1", ""] hope it helps [1]`, []string{"s1"}},
		{"empty array", `[]`, []string{}},
		{"mixed items", `["s1", {"id":"s2"}, 42, {"name":"x"}]`, []string{"s1", "s2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMatchedIDs(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("no array", func(t *testing.T) {
		_, err := ParseMatchedIDs("I could not find anything")
		assert.ErrorIs(t, err, ErrNoJSONArray)
	})
}

func TestNewOpenAIMatcher_RejectsNonSecretKeys(t *testing.T) {
	_, err := NewOpenAIMatcher("pk-123", "", "")
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func newFakeOpenAI(t *testing.T, status int, reply string) *OpenAIMatcher {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req struct {
			Model       string  `json:"model"`
			Temperature float32 `json:"temperature"`
			MaxTokens   int     `json:"max_tokens"`
			Messages    []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.InDelta(t, 0.2, req.Temperature, 0.0001)
		assert.Equal(t, 2000, req.MaxTokens)
		if assert.Len(t, req.Messages, 2) {
			assert.Contains(t, req.Messages[1].Content, "s1: Tap repair (plumbing)")
			assert.Contains(t, req.Messages[1].Content, "s2: TV mounting\n")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)

	m, err := NewOpenAIMatcher("sk-test", srv.URL+"/v1", "")
	require.NoError(t, err)
	return m
}

func completion(content string) string {
	b, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"choices": []map[string]any{{"index": 0, "message": map[string]string{"role": "assistant", "content": content}}},
	})
	return string(b)
}

func TestOpenAIMatcher_Match(t *testing.T) {
	t.Run("filters unknown ids", func(t *testing.T) {
		m := newFakeOpenAI(t, http.StatusOK, completion("```json\n[\"s2\",\"ghost\",{\"id\":\"s1\",\"score\":0.3}]\n```"))

		ids, err := m.Match(context.Background(), "mount my telly", candidates)
		require.NoError(t, err)
		assert.Equal(t, []string{"s2", "s1"}, ids)
	})

	t.Run("empty reply", func(t *testing.T) {
		m := newFakeOpenAI(t, http.StatusOK, completion("  "))

		ids, err := m.Match(context.Background(), "anything", candidates)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("upstream error", func(t *testing.T) {
		m := newFakeOpenAI(t, http.StatusTooManyRequests, `{"error":{"message":"Rate limit reached","type":"requests"}}`)

		_, err := m.Match(context.Background(), "tap", candidates)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "openai completion"))
		assert.False(t, errors.Is(err, ErrNoJSONArray))
	})
}
