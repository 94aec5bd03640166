// Package analytics derives summaries and insights from training and
// nutrition logs. All calculators are pure: they never mutate their input
// and degrade to zero values on empty input instead of erroring.
package analytics

import (
	"time"

	"github.com/jhalme/ironweek/internal/catalog"
)

// Period controls timeline grouping.
type Period string

// Period constants.
const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// TimelinePoint is the aggregated training of one period.
type TimelinePoint struct {
	PeriodStart time.Time
	Volume      float64
	Sessions    int
}

// MuscleVolume is the counted set volume of one muscle group.
type MuscleVolume struct {
	Muscle catalog.MuscleGroup
	Sets   int
}

// Sentiment classifies an insight.
type Sentiment string

// Sentiment constants.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Insight is one user-facing observation about the training history.
type Insight struct {
	Kind      string
	Sentiment Sentiment
	Message   string
}

// Insight kinds.
const (
	InsightVolumeTrend = "volume_trend"
	InsightConsistency = "consistency"
	InsightFocus       = "focus"
)

// Summary aggregates everything the analytics engine computes over a set of
// training logs.
type Summary struct {
	TotalVolume      float64
	AdherencePercent int
	IntensityScore   int
	BestStreak       int
	Timeline         []TimelinePoint
	MuscleSplit      []MuscleVolume
	Insights         []Insight
}

// NutritionLog is one calendar day of nutrition tracking.
type NutritionLog struct {
	ID               string
	UserID           string
	Date             time.Time
	CaloriesTarget   int
	CaloriesConsumed int
	ProteinGrams     float64
	CarbsGrams       float64
	FatGrams         float64
	Completed        bool
}

// NutritionSummary aggregates nutrition logs.
type NutritionSummary struct {
	AvgCalorieAdherence int
	BestStreak          int
	TotalProteinGrams   float64
	TotalCarbsGrams     float64
	TotalFatGrams       float64
}
