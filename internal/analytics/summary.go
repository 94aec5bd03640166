package analytics

import (
	"github.com/jhalme/ironweek/internal/i18n"
	"github.com/jhalme/ironweek/internal/traininglog"
)

// Summarize computes the full analytics summary over the logs, which must
// be in chronological order. An empty history yields a zero summary with no
// insights.
func Summarize(logs []traininglog.TrainingLog, period Period, lang i18n.Language) Summary {
	return Summary{
		TotalVolume:      TotalVolume(logs),
		AdherencePercent: AdherencePercent(logs),
		IntensityScore:   IntensityScore(logs),
		BestStreak:       BestStreak(logs),
		Timeline:         Timeline(logs, period),
		MuscleSplit:      MuscleSplit(logs),
		Insights:         Insights(logs, lang),
	}
}
