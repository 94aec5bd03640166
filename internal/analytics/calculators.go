package analytics

import (
	"math"
	"slices"
	"strings"

	"github.com/jhalme/ironweek/internal/catalog"
	"github.com/jhalme/ironweek/internal/traininglog"
)

// Adherence scores per log status.
var adherenceScores = map[traininglog.Status]int{
	traininglog.StatusCompleted: 100,
	traininglog.StatusPartial:   60,
	traininglog.StatusSkipped:   0,
	traininglog.StatusRest:      100,
	traininglog.StatusPlanned:   0,
}

// LogVolume computes the volume of one log. Bodyweight sets count with a
// weight factor of one so they contribute their reps.
//
// A log marked completed counts every set, performed or not; the user
// declared the day done, so the plan is credited as written. Any other
// status counts only the sets actually completed.
func LogVolume(l traininglog.TrainingLog) float64 {
	volume := 0.0
	for _, ex := range l.Exercises {
		for _, set := range ex.Sets {
			if !set.Completed && l.Status != traininglog.StatusCompleted {
				continue
			}
			weight := set.WeightKg
			if weight <= 0 {
				weight = 1
			}
			volume += weight * float64(set.PerformedReps)
		}
	}
	return volume
}

// TotalVolume sums the volume of all logs.
func TotalVolume(logs []traininglog.TrainingLog) float64 {
	total := 0.0
	for _, l := range logs {
		total += LogVolume(l)
	}
	return total
}

// AdherencePercent averages the status scores across logs, rounded to the
// nearest percent. Zero on empty input.
func AdherencePercent(logs []traininglog.TrainingLog) int {
	if len(logs) == 0 {
		return 0
	}
	total := 0
	for _, l := range logs {
		total += adherenceScores[l.Status]
	}
	return int(math.Round(float64(total) / float64(len(logs))))
}

// IntensityScore is the average RPE over completed sets that carry an RPE,
// scaled to 0-100. Completed sets without a recorded RPE are left out of the
// average so they don't drag the score down. Zero when no completed set has
// a rating.
func IntensityScore(logs []traininglog.TrainingLog) int {
	totalRPE, count := 0.0, 0
	for _, l := range logs {
		for _, ex := range l.Exercises {
			for _, set := range ex.Sets {
				if !set.Completed || set.RPE <= 0 {
					continue
				}
				totalRPE += set.RPE
				count++
			}
		}
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(totalRPE / float64(count) * 10))
}

// BestStreak is the longest run of consecutive logs that count as on-plan
// days, meaning completed sessions and rest days. The logs must be in
// chronological order; a run still going at the end of the slice counts.
func BestStreak(logs []traininglog.TrainingLog) int {
	best, current := 0, 0
	for _, l := range logs {
		if l.Status == traininglog.StatusCompleted || l.Status == traininglog.StatusRest {
			current++
			best = max(best, current)
		} else {
			current = 0
		}
	}
	return best
}

// MuscleSplit counts sets per muscle group, most-trained first. Sets follow
// the same counting rule as LogVolume. Ties break alphabetically so the
// ordering is deterministic.
func MuscleSplit(logs []traininglog.TrainingLog) []MuscleVolume {
	counts := map[string]int{}
	for _, l := range logs {
		for _, ex := range l.Exercises {
			for _, set := range ex.Sets {
				if !set.Completed && l.Status != traininglog.StatusCompleted {
					continue
				}
				counts[string(ex.Muscle)]++
			}
		}
	}

	split := make([]MuscleVolume, 0, len(counts))
	for muscle, sets := range counts {
		split = append(split, MuscleVolume{Muscle: catalog.MuscleGroup(muscle), Sets: sets})
	}
	slices.SortFunc(split, func(a, b MuscleVolume) int {
		if a.Sets != b.Sets {
			return b.Sets - a.Sets
		}
		return strings.Compare(string(a.Muscle), string(b.Muscle))
	})
	return split
}
