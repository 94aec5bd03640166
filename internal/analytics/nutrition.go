package analytics

import "math"

// nutritionStreakThreshold is the calorie adherence above which a day keeps
// a streak alive even without being explicitly marked done.
const nutritionStreakThreshold = 80

// CalorieAdherence scores one nutrition log from 0 to 100. Eating over the
// target doesn't score above 100. Zero when no target was set.
func CalorieAdherence(l NutritionLog) int {
	if l.CaloriesTarget <= 0 {
		return 0
	}
	pct := float64(l.CaloriesConsumed) / float64(l.CaloriesTarget) * 100
	if pct > 100 {
		pct = 100
	}
	return int(math.Round(pct))
}

// SummarizeNutrition aggregates nutrition logs. The logs must be in
// chronological order for the streak; empty input yields a zero summary.
func SummarizeNutrition(logs []NutritionLog) NutritionSummary {
	var summary NutritionSummary
	if len(logs) == 0 {
		return summary
	}

	adherenceTotal := 0
	best, current := 0, 0
	for _, l := range logs {
		adherence := CalorieAdherence(l)
		adherenceTotal += adherence

		if l.Completed || adherence > nutritionStreakThreshold {
			current++
			best = max(best, current)
		} else {
			current = 0
		}

		summary.TotalProteinGrams += l.ProteinGrams
		summary.TotalCarbsGrams += l.CarbsGrams
		summary.TotalFatGrams += l.FatGrams
	}

	summary.AvgCalorieAdherence = int(math.Round(float64(adherenceTotal) / float64(len(logs))))
	summary.BestStreak = best
	return summary
}
