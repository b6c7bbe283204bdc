// Package ai ranks catalogue services against free text with an OpenAI chat model.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	"master_booking/internal/domain/entities"
	"master_booking/internal/usecase/interfaces"
)

const (
	DefaultModel = openai.GPT4oMini
	temperature  = 0.2
	maxTokens    = 2000
	maxResults   = 15
)

const systemPrompt = `You match a customer's description of a home maintenance job to services from a catalogue.
Only use ids that appear in the catalogue. Prefer services whose name or category directly covers the job,
then closely related ones. Reply with a JSON array only, for example ["id1","id2"] or
[{"id":"id1","score":0.9}], ordered by relevance. Return at most 15 ids and [] when nothing fits.`

var (
	ErrInvalidAPIKey   = errors.New("OPENAI_API_KEY must start with sk-")
	ErrNoJSONArray     = errors.New("model reply has no JSON array")
	ErrEmptyCompletion = errors.New("model returned no choices")
)

// ChatClient is the part of the OpenAI client the matcher calls.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type OpenAIMatcher struct {
	client ChatClient
	model  string
}

var _ interfaces.IServiceMatcher = (*OpenAIMatcher)(nil)

// NewOpenAIMatcher refuses keys that are not secret keys. baseURL is optional.
func NewOpenAIMatcher(apiKey, baseURL, model string) (*OpenAIMatcher, error) {
	if !strings.HasPrefix(apiKey, "sk-") {
		return nil, ErrInvalidAPIKey
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultModel
	}
	slog.Info("[ai][matcher] OpenAI client initialized", "model", model)
	return &OpenAIMatcher{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

func (m *OpenAIMatcher) Match(ctx context.Context, query string, candidates []entities.ServiceCandidate) ([]string, error) {
	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       m.model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(query, candidates)},
		},
	})
	if err != nil {
		slog.ErrorContext(ctx, "[ai][matcher] completion failed", "error", err)
		return nil, fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return []string{}, nil
	}
	ids, err := ParseMatchedIDs(content)
	if err != nil {
		slog.WarnContext(ctx, "[ai][matcher] unparseable reply", "error", err, "reply_len", len(content))
		return nil, err
	}
	return keepKnown(ids, candidates), nil
}

func userPrompt(query string, candidates []entities.ServiceCandidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Customer request: %q\n\nCatalogue:\n", query)
	for _, c := range candidates {
		if c.Category != "" {
			fmt.Fprintf(&b, "%s: %s (%s)\n", c.ID, c.Name, c.Category)
		} else {
			fmt.Fprintf(&b, "%s: %s\n", c.ID, c.Name)
		}
	}
	fmt.Fprintf(&b, "\nReturn up to %d matching ids as a JSON array.", maxResults)
	return b.String()
}

// ParseMatchedIDs reads the first JSON array in a model reply.
// Code fences are ignored and items may be strings or objects with an id.
func ParseMatchedIDs(content string) ([]string, error) {
	content = stripFences(content)
	start := strings.Index(content, "[")
	if start < 0 {
		return nil, ErrNoJSONArray
	}

	var items []json.RawMessage
	if err := json.NewDecoder(strings.NewReader(content[start:])).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSONArray, err)
	}

	ids := make([]string, 0, len(items))
	for _, raw := range items {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			if s = strings.TrimSpace(s); s != "" {
				ids = append(ids, s)
			}
			continue
		}
		var obj struct {
			ID string `json:"id"`
		}
		if json.Unmarshal(raw, &obj) == nil && strings.TrimSpace(obj.ID) != "" {
			ids = append(ids, strings.TrimSpace(obj.ID))
		}
	}
	return ids, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 && !strings.Contains(s[:nl], "[") {
		s = s[nl+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}

func keepKnown(ids []string, candidates []entities.ServiceCandidate) []string {
	known := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		known[c.ID] = struct{}{}
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := known[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
