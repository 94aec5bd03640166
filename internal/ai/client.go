// Package ai generates short coaching notes from analytics summaries using
// the OpenAI chat completion API. The client is optional. When no API key is
// configured every call returns an empty note so callers can render summaries
// without AI content.
package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/jhalme/ironweek/internal/analytics"
)

const systemPrompt = `You are a concise fitness coach reviewing a user's weekly training summary. Write a short encouraging note (2-3 sentences) based on the numbers you are given. Mention one concrete observation and one actionable suggestion. Do not invent data that is not in the summary.`

// Client wraps the OpenAI chat completion API for coaching notes.
type Client struct {
	client  openai.Client
	logger  *slog.Logger
	enabled bool
}

// NewClient creates a coaching note client. An empty apiKey disables the
// client rather than failing, since AI notes are a best-effort addition.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	if apiKey == "" {
		return &Client{logger: logger, enabled: false}
	}
	return &Client{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		logger:  logger,
		enabled: true,
	}
}

// Enabled reports whether an API key was configured.
func (c *Client) Enabled() bool {
	return c.enabled
}

// CoachingNote produces a short note about the summary. It returns an empty
// string when the client is disabled. Callers should treat errors as
// non-fatal and fall back to rendering the summary without a note.
func (c *Client) CoachingNote(ctx context.Context, summary analytics.Summary) (string, error) {
	if !c.enabled {
		return "", nil
	}

	prompt := summaryPrompt(summary)

	c.logger.LogAttrs(ctx, slog.LevelDebug, "requesting coaching note",
		slog.Int("prompt_length", len(prompt)))

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	note := strings.TrimSpace(completion.Choices[0].Message.Content)

	c.logger.LogAttrs(ctx, slog.LevelDebug, "received coaching note",
		slog.Int64("total_tokens", completion.Usage.TotalTokens),
		slog.Int("note_length", len(note)))

	return note, nil
}

// summaryPrompt renders the numeric parts of a summary as plain text for the
// model. Insights are included by kind and sentiment only, so the model reacts
// to the same signals the app shows.
func summaryPrompt(summary analytics.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total volume: %.0f kg-reps\n", summary.TotalVolume)
	fmt.Fprintf(&b, "Adherence: %d%%\n", summary.AdherencePercent)
	fmt.Fprintf(&b, "Intensity score: %d\n", summary.IntensityScore)
	fmt.Fprintf(&b, "Best streak: %d days\n", summary.BestStreak)
	if len(summary.MuscleSplit) > 0 {
		b.WriteString("Sets per muscle group:\n")
		for _, mv := range summary.MuscleSplit {
			fmt.Fprintf(&b, "- %s: %d\n", mv.Muscle, mv.Sets)
		}
	}
	for _, insight := range summary.Insights {
		fmt.Fprintf(&b, "Signal: %s is %s\n", insight.Kind, insight.Sentiment)
	}
	return b.String()
}
