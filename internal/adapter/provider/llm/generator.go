package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/leximind/internal/config"
	"github.com/heartmarshall/leximind/internal/domain"
)

// insightsTool is the forced tool whose input carries the structured insight.
const insightsTool = "record_insights"

// Generator produces AI insights with the Anthropic Messages API.
type Generator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	log       *slog.Logger
}

// NewGenerator creates a Generator from the insights configuration.
// Extra request options (used by tests) are appended after the configured ones.
func NewGenerator(cfg config.InsightsConfig, logger *slog.Logger, opts ...option.RequestOption) *Generator {
	base := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		base = append(base, option.WithBaseURL(cfg.BaseURL))
	}

	return &Generator{
		client:    anthropic.NewClient(append(base, opts...)...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
		log:       logger.With("adapter", "llm"),
	}
}

// Generate asks the model for insights about word. The result is decoded but
// not validated; that is the caller's job.
func (g *Generator) Generate(ctx context.Context, word string) (*domain.AIInsights, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()

	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(word))),
		},
		Tools: []anthropic.ToolUnionParam{{OfTool: insightsToolParam()}},
		ToolChoice: anthropic.ToolChoiceUnionParam{
			OfTool: &anthropic.ToolChoiceToolParam{Name: insightsTool},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("llm.Generate %q: %w", word, err)
	}

	raw, err := insightPayload(msg)
	if err != nil {
		return nil, fmt.Errorf("llm.Generate %q: %w", word, err)
	}

	var insights domain.AIInsights
	if err := json.Unmarshal(raw, &insights); err != nil {
		return nil, fmt.Errorf("llm.Generate %q: decode insights: %w", word, err)
	}

	g.log.DebugContext(ctx, "insights generated",
		slog.String("word", word),
		slog.Duration("duration", time.Since(start)),
		slog.String("stop_reason", string(msg.StopReason)),
	)

	return &insights, nil
}

// insightPayload returns the JSON object carrying the insight: the forced tool
// input when present, otherwise the first JSON object found in a text block.
func insightPayload(msg *anthropic.Message) ([]byte, error) {
	if msg == nil || len(msg.Content) == 0 {
		return nil, errors.New("empty response")
	}

	for _, block := range msg.Content {
		if block.Type == "tool_use" && block.Name == insightsTool && len(block.Input) > 0 {
			return block.Input, nil
		}
	}

	for _, block := range msg.Content {
		if block.Type != "text" {
			continue
		}
		if s, err := extractJSON(block.Text); err == nil {
			return []byte(s), nil
		}
	}

	return nil, errors.New("no insight payload in response")
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
