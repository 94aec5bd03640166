package analytics

import (
	"slices"
	"time"

	"github.com/jhalme/ironweek/internal/traininglog"
)

// Timeline groups logs into period buckets, oldest first. Volume follows
// LogVolume; a session is counted when the user actually trained, meaning
// the log ended up partial or completed.
func Timeline(logs []traininglog.TrainingLog, period Period) []TimelinePoint {
	buckets := map[time.Time]*TimelinePoint{}
	for _, l := range logs {
		start := periodStart(l.Date, period)
		point, ok := buckets[start]
		if !ok {
			point = &TimelinePoint{PeriodStart: start}
			buckets[start] = point
		}
		point.Volume += LogVolume(l)
		if l.Status == traininglog.StatusCompleted || l.Status == traininglog.StatusPartial {
			point.Sessions++
		}
	}

	timeline := make([]TimelinePoint, 0, len(buckets))
	for _, point := range buckets {
		timeline = append(timeline, *point)
	}
	slices.SortFunc(timeline, func(a, b TimelinePoint) int {
		return a.PeriodStart.Compare(b.PeriodStart)
	})
	return timeline
}

// periodStart truncates a date to the start of its bucket. Weeks start on
// Monday.
func periodStart(date time.Time, period Period) time.Time {
	year, month, day := date.Date()
	switch period {
	case PeriodWeek:
		offset := (int(date.Weekday()) + 6) % 7
		return time.Date(year, month, day-offset, 0, 0, 0, 0, time.UTC)
	case PeriodMonth:
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}
}
