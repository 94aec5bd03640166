package analytics

import (
	"fmt"

	"github.com/jhalme/ironweek/internal/i18n"
	"github.com/jhalme/ironweek/internal/traininglog"
)

// Trend thresholds comparing the later half of the history to the earlier.
const (
	trendUpRatio   = 1.10
	trendDownRatio = 0.80
)

// Consistency thresholds on the adherence percentage.
const (
	consistencyHigh = 90
	consistencyLow  = 60
)

// Insights derives user-facing observations from the logs. The volume trend
// and consistency insights only appear when a threshold is crossed; the
// focus insight is emitted whenever any muscle has been trained.
func Insights(logs []traininglog.TrainingLog, lang i18n.Language) []Insight {
	var insights []Insight

	if insight, ok := volumeTrend(logs, lang); ok {
		insights = append(insights, insight)
	}
	if insight, ok := consistency(logs, lang); ok {
		insights = append(insights, insight)
	}
	if insight, ok := focus(logs, lang); ok {
		insights = append(insights, insight)
	}
	return insights
}

// volumeTrend splits the history in half chronologically and compares the
// halves' volumes.
func volumeTrend(logs []traininglog.TrainingLog, lang i18n.Language) (Insight, bool) {
	if len(logs) < 2 {
		return Insight{}, false
	}
	half := len(logs) / 2
	earlier := TotalVolume(logs[:half])
	later := TotalVolume(logs[half:])
	if earlier <= 0 {
		return Insight{}, false
	}

	ratio := later / earlier
	switch {
	case ratio > trendUpRatio:
		return Insight{
			Kind:      InsightVolumeTrend,
			Sentiment: SentimentPositive,
			Message:   i18n.Translate(lang, "insight.volume.up"),
		}, true
	case ratio < trendDownRatio:
		return Insight{
			Kind:      InsightVolumeTrend,
			Sentiment: SentimentNegative,
			Message:   i18n.Translate(lang, "insight.volume.down"),
		}, true
	default:
		return Insight{}, false
	}
}

func consistency(logs []traininglog.TrainingLog, lang i18n.Language) (Insight, bool) {
	if len(logs) == 0 {
		return Insight{}, false
	}
	adherence := AdherencePercent(logs)
	switch {
	case adherence > consistencyHigh:
		return Insight{
			Kind:      InsightConsistency,
			Sentiment: SentimentPositive,
			Message:   i18n.Translate(lang, "insight.consistency.high"),
		}, true
	case adherence < consistencyLow:
		return Insight{
			Kind:      InsightConsistency,
			Sentiment: SentimentNegative,
			Message:   i18n.Translate(lang, "insight.consistency.low"),
		}, true
	default:
		return Insight{}, false
	}
}

func focus(logs []traininglog.TrainingLog, lang i18n.Language) (Insight, bool) {
	split := MuscleSplit(logs)
	if len(split) == 0 {
		return Insight{}, false
	}
	return Insight{
		Kind:      InsightFocus,
		Sentiment: SentimentNeutral,
		Message:   fmt.Sprintf(i18n.Translate(lang, "insight.focus"), split[0].Muscle),
	}, true
}
