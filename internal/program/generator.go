package program

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhalme/ironweek/internal/catalog"
	"github.com/jhalme/ironweek/internal/errors"
)

// ErrInvalidPreferences is returned when a generation request fails validation.
var ErrInvalidPreferences = errors.NewSentinel("invalid preferences")

// Prescription defaults. Main lifts are programmed heavy with long rests,
// accessory work lighter with short rests.
const (
	mainLiftSets        = 4
	mainLiftReps        = "6-8"
	mainLiftRestSeconds = 120

	accessorySets        = 3
	accessoryReps        = "10-12"
	accessoryRestSeconds = 60
)

// Generator builds weekly programs from a catalog. It holds no mutable state
// and is safe for concurrent use.
type Generator struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewGenerator creates a generator backed by the given catalog.
func NewGenerator(cat *catalog.Catalog, logger *slog.Logger) *Generator {
	return &Generator{catalog: cat, logger: logger}
}

// Generate builds a complete weekly program for the given preferences.
// When preferred weekdays are supplied they must be exactly DaysPerWeek
// distinct days; a partial set is rejected with ErrInvalidPreferences
// rather than padded with guessed days.
//
// Generation is deterministic: equal preferences against an equal catalog
// always produce structurally identical programs, only the ids and timestamp
// differ. An unfillable slot is skipped rather than failing the whole
// program; sessions that lose all their main lifts are reported through
// Diagnostics.
func (g *Generator) Generate(ctx context.Context, userID string, prefs Preferences, now time.Time) (Program, error) {
	weekdays, err := trainingWeekdays(prefs)
	if err != nil {
		return Program{}, err
	}

	split := ResolveSplit(prefs.DaysPerWeek)
	blueprints := blueprintsForSplit(split)

	sessions := make([]Session, 0, len(weekdays))
	var fallbackSessions []string
	for i, weekday := range weekdays {
		blueprint := blueprints[i%len(blueprints)]
		session := g.buildSession(ctx, blueprint, weekday, prefs)
		if len(session.MainLifts) == 0 {
			fallbackSessions = append(fallbackSessions, session.Title)
		}
		sessions = append(sessions, session)
	}

	diagnostics := Diagnostics{
		ValidationPassed: true,
		SplitRationale:   split.rationale(prefs.DaysPerWeek),
	}
	if len(fallbackSessions) > 0 {
		diagnostics.FallbackTriggered = true
		diagnostics.FallbackReason = fmt.Sprintf(
			"no main lift available for: %s", strings.Join(fallbackSessions, ", "))
	}

	return Program{
		ID:          uuid.NewString(),
		UserID:      userID,
		GeneratedAt: now,
		Preferences: prefs,
		Split:       split,
		Sessions:    sessions,
		Diagnostics: diagnostics,
	}, nil
}

// buildSession fills one blueprint with exercises from the catalog. Each
// exercise id is used at most once per session; when a slot can't be filled
// without repeating one, the slot stays empty.
func (g *Generator) buildSession(ctx context.Context, blueprint dayBlueprint, weekday time.Weekday, prefs Preferences) Session {
	used := map[string]bool{}

	fill := func(slots []slot) []ExerciseInstance {
		var instances []ExerciseInstance
		for _, sl := range slots {
			for range sl.count {
				definitions := g.catalog.Query(catalog.Filter{
					Pattern:    sl.pattern,
					Muscle:     sl.muscle,
					Type:       sl.typ,
					Equipment:  prefs.Equipment,
					Difficulty: prefs.Experience,
				})
				picked := false
				for _, def := range definitions {
					if used[def.ID] {
						continue
					}
					used[def.ID] = true
					instances = append(instances, instantiate(def))
					picked = true
					break
				}
				if !picked && g.logger != nil {
					g.logger.LogAttrs(ctx, slog.LevelDebug, "unfillable blueprint slot",
						slog.String("pattern", string(sl.pattern)),
						slog.String("muscle", string(sl.muscle)),
						slog.String("title", blueprint.title))
				}
			}
		}
		return instances
	}

	return Session{
		ID:              uuid.NewString(),
		Weekday:         weekday,
		Title:           blueprint.title,
		Focus:           blueprint.focus,
		DurationMinutes: prefs.SessionMinutes,
		Intensity:       blueprint.intensity,
		Warmup:          fixedWarmup(),
		MainLifts:       fill(blueprint.mainLifts),
		Accessories:     fill(blueprint.accessories),
		Cooldown:        fixedCooldown(),
		Tags:            slices.Clone(blueprint.tags),
		Rationale:       blueprint.focus,
	}
}

// instantiate snapshots a catalog definition into a session with its
// prescription resolved from the movement type.
func instantiate(def catalog.ExerciseDefinition) ExerciseInstance {
	instance := ExerciseInstance{
		ExerciseID: def.ID,
		Name:       def.Name,
		Type:       def.Type,
		Muscle:     def.PrimaryMuscle,
	}
	if def.Type == catalog.MovementCompound {
		instance.Sets = mainLiftSets
		instance.Reps = mainLiftReps
		instance.RestSeconds = mainLiftRestSeconds
	} else {
		instance.Sets = accessorySets
		instance.Reps = accessoryReps
		instance.RestSeconds = accessoryRestSeconds
	}
	return instance
}

// fixedWarmup is the same for every session; it carries no catalog ids.
func fixedWarmup() []ExerciseInstance {
	return []ExerciseInstance{
		{Name: "Light cardio", Type: catalog.MovementCardio, Sets: 1, Reps: "5 min", RestSeconds: 0},
		{Name: "Dynamic stretching", Type: catalog.MovementCardio, Sets: 1, Reps: "5 min", RestSeconds: 0},
	}
}

// fixedCooldown mirrors fixedWarmup.
func fixedCooldown() []ExerciseInstance {
	return []ExerciseInstance{
		{Name: "Static stretching", Type: catalog.MovementCardio, Sets: 1, Reps: "5 min", RestSeconds: 0},
	}
}

// trainingWeekdays resolves and validates the weekdays a program trains on.
// Preferred weekdays are deduplicated and sorted ascending from Sunday; when
// none are given, an evenly spread default is used.
func trainingWeekdays(prefs Preferences) ([]time.Weekday, error) {
	if prefs.DaysPerWeek < 1 || prefs.DaysPerWeek > 7 {
		return nil, errors.Wrap(ErrInvalidPreferences, "days per week out of range",
			slog.Int("days_per_week", prefs.DaysPerWeek))
	}

	if len(prefs.PreferredWeekdays) == 0 {
		return defaultWeekdays(prefs.DaysPerWeek), nil
	}

	seen := map[time.Weekday]bool{}
	var weekdays []time.Weekday
	for _, day := range prefs.PreferredWeekdays {
		if day < time.Sunday || day > time.Saturday {
			return nil, errors.Wrap(ErrInvalidPreferences, "weekday out of range",
				slog.Int("weekday", int(day)))
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		weekdays = append(weekdays, day)
	}
	if len(weekdays) != prefs.DaysPerWeek {
		return nil, errors.Wrap(ErrInvalidPreferences, "preferred weekdays don't match training frequency",
			slog.Int("days_per_week", prefs.DaysPerWeek),
			slog.Int("distinct_weekdays", len(weekdays)))
	}
	slices.Sort(weekdays)
	return weekdays, nil
}

// defaultWeekdays spreads the given number of training days across the week
// with rest days between them where frequency allows.
func defaultWeekdays(daysPerWeek int) []time.Weekday {
	defaults := [][]time.Weekday{
		{time.Monday},
		{time.Monday, time.Thursday},
		{time.Monday, time.Wednesday, time.Friday},
		{time.Monday, time.Tuesday, time.Thursday, time.Friday},
		{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
		{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
	}
	return slices.Clone(defaults[daysPerWeek-1])
}
