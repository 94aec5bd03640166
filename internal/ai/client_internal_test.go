package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/jhalme/ironweek/internal/analytics"
	"github.com/jhalme/ironweek/internal/testhelpers"
)

func TestCoachingNoteDisabledWithoutKey(t *testing.T) {
	t.Parallel()
	client := NewClient("", testhelpers.NewLogger(testhelpers.NewWriter(t)))

	if client.Enabled() {
		t.Error("client with empty API key should be disabled")
	}

	note, err := client.CoachingNote(context.Background(), analytics.Summary{})
	if err != nil {
		t.Fatalf("CoachingNote() error = %v", err)
	}
	if note != "" {
		t.Errorf("CoachingNote() = %q, want empty note", note)
	}
}

func TestSummaryPrompt(t *testing.T) {
	t.Parallel()
	summary := analytics.Summary{
		TotalVolume:      1250,
		AdherencePercent: 80,
		IntensityScore:   72,
		BestStreak:       4,
		MuscleSplit: []analytics.MuscleVolume{
			{Muscle: "chest", Sets: 12},
			{Muscle: "back", Sets: 9},
		},
		Insights: []analytics.Insight{
			{Kind: analytics.InsightVolumeTrend, Sentiment: analytics.SentimentPositive},
		},
	}

	prompt := summaryPrompt(summary)

	for _, want := range []string{
		"Total volume: 1250",
		"Adherence: 80%",
		"Intensity score: 72",
		"Best streak: 4 days",
		"- chest: 12",
		"- back: 9",
		"Signal: volume_trend is positive",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
