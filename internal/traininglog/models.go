// Package traininglog tracks what a user actually did against a generated
// program. Logs snapshot prescriptions at creation so later program changes
// never rewrite history.
package traininglog

import (
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jhalme/ironweek/internal/catalog"
	"github.com/jhalme/ironweek/internal/errors"
	"github.com/jhalme/ironweek/internal/program"
	"github.com/jhalme/ironweek/internal/ptr"
)

// Status describes where a training log stands.
type Status string

// Status constants.
const (
	StatusPlanned   Status = "planned"
	StatusPartial   Status = "partial"
	StatusCompleted Status = "completed"
	StatusSkipped   Status = "skipped"
	StatusRest      Status = "rest"
)

// ErrSessionNotFound is returned when a log references a session id the
// program doesn't contain.
var ErrSessionNotFound = errors.NewSentinel("session not found in program")

// ErrExerciseNotFound is returned when a set mutation targets an exercise
// that isn't in the log.
var ErrExerciseNotFound = errors.NewSentinel("exercise not found in log")

// ErrSetOutOfRange is returned when a set mutation targets a set index the
// exercise doesn't have.
var ErrSetOutOfRange = errors.NewSentinel("set index out of range")

// LogSet is one planned set and what was performed against it.
type LogSet struct {
	TargetReps    string
	PerformedReps int
	WeightKg      float64
	RPE           float64
	Completed     bool
}

// LogExercise is one exercise within a log. Name, type and muscle are
// snapshots taken at creation; Completed is derived from the sets and
// recomputed on every mutation.
type LogExercise struct {
	ExerciseID string
	Name       string
	Type       catalog.MovementType
	Muscle     catalog.MuscleGroup
	Sets       []LogSet
	Completed  bool
}

// TrainingLog is one calendar day of training for one user.
type TrainingLog struct {
	ID          string
	UserID      string
	Date        time.Time
	ProgramID   string
	SessionID   string
	Title       string
	Status      Status
	Exercises   []LogExercise
	StartedAt   *time.Time
	CompletedAt *time.Time
	// DifficultyRating is user feedback from 1 (easy) to 5 (too hard).
	DifficultyRating *int
}

// ErrInvalidDifficulty is returned for ratings outside 1 to 5.
var ErrInvalidDifficulty = errors.NewSentinel("invalid difficulty rating")

// WithFeedback returns a copy with the difficulty rating set.
func WithFeedback(l TrainingLog, difficulty int) (TrainingLog, error) {
	if difficulty < 1 || difficulty > 5 {
		return TrainingLog{}, errors.Wrap(ErrInvalidDifficulty, "save feedback",
			slog.Int("difficulty", difficulty))
	}
	l.DifficultyRating = ptr.Ref(difficulty)
	return l, nil
}

// SetResult carries the outcome of one performed set.
type SetResult struct {
	PerformedReps int
	WeightKg      float64
	RPE           float64
	Completed     bool
}

// NewFromProgram creates a log for the given date. The program session
// scheduled on the date's weekday is materialized; dates without a session
// become rest logs. Rest is assigned only here and survives until an
// exercise is added.
func NewFromProgram(userID string, p program.Program, date time.Time) TrainingLog {
	session, ok := p.SessionForWeekday(date.Weekday())
	if !ok {
		return TrainingLog{
			ID:     uuid.NewString(),
			UserID: userID,
			Date:   truncateToDate(date),
			Title:  "Rest day",
			Status: StatusRest,
		}
	}
	return newFromSession(userID, p, session, date)
}

// NewFromSession creates a log from an explicitly chosen program session,
// regardless of which weekday it is scheduled on.
func NewFromSession(userID string, p program.Program, sessionID string, date time.Time) (TrainingLog, error) {
	session, ok := p.SessionByID(sessionID)
	if !ok {
		return TrainingLog{}, errors.Wrap(ErrSessionNotFound, "resolve session",
			slog.String("session_id", sessionID))
	}
	return newFromSession(userID, p, session, date), nil
}

func newFromSession(userID string, p program.Program, session program.Session, date time.Time) TrainingLog {
	var exercises []LogExercise
	for _, instance := range session.MainLifts {
		exercises = append(exercises, materialize(instance))
	}
	for _, instance := range session.Accessories {
		exercises = append(exercises, materialize(instance))
	}

	return TrainingLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      truncateToDate(date),
		ProgramID: p.ID,
		SessionID: session.ID,
		Title:     session.Title,
		Status:    StatusPlanned,
		Exercises: exercises,
	}
}

// materialize expands a prescription into empty sets.
func materialize(instance program.ExerciseInstance) LogExercise {
	sets := make([]LogSet, instance.Sets)
	for i := range sets {
		sets[i] = LogSet{TargetReps: instance.Reps}
	}
	return LogExercise{
		ExerciseID: instance.ExerciseID,
		Name:       instance.Name,
		Type:       instance.Type,
		Muscle:     instance.Muscle,
		Sets:       sets,
	}
}

// RecordSet returns a copy of the log with one set's result replaced.
// Exercise completion and log status are rederived from the sets, never
// carried over.
func RecordSet(l TrainingLog, exerciseID string, setIndex int, result SetResult) (TrainingLog, error) {
	l.Exercises = cloneExercises(l.Exercises)

	i := slices.IndexFunc(l.Exercises, func(ex LogExercise) bool { return ex.ExerciseID == exerciseID })
	if i < 0 {
		return TrainingLog{}, errors.Wrap(ErrExerciseNotFound, "record set",
			slog.String("exercise_id", exerciseID))
	}
	if setIndex < 0 || setIndex >= len(l.Exercises[i].Sets) {
		return TrainingLog{}, errors.Wrap(ErrSetOutOfRange, "record set",
			slog.String("exercise_id", exerciseID),
			slog.Int("set_index", setIndex))
	}

	set := &l.Exercises[i].Sets[setIndex]
	set.PerformedReps = result.PerformedReps
	set.WeightKg = result.WeightKg
	set.RPE = result.RPE
	set.Completed = result.Completed

	return derive(l), nil
}

// AddExercise returns a copy of the log with an ad-hoc exercise appended.
// Adding one to a rest log turns it into a planned training day.
func AddExercise(l TrainingLog, def catalog.ExerciseDefinition, sets int, targetReps string) TrainingLog {
	l.Exercises = cloneExercises(l.Exercises)

	logSets := make([]LogSet, sets)
	for i := range logSets {
		logSets[i] = LogSet{TargetReps: targetReps}
	}
	l.Exercises = append(l.Exercises, LogExercise{
		ExerciseID: def.ID,
		Name:       def.Name,
		Type:       def.Type,
		Muscle:     def.PrimaryMuscle,
		Sets:       logSets,
	})
	return derive(l)
}

// MarkStarted returns a copy with the start time set, first write wins.
func MarkStarted(l TrainingLog, now time.Time) TrainingLog {
	if l.StartedAt == nil {
		l.StartedAt = &now
	}
	return l
}

// MarkCompleted returns a copy marked completed. The status becomes
// Completed even when sets remain unperformed; the user decided the day is
// done.
func MarkCompleted(l TrainingLog, now time.Time) TrainingLog {
	l.Status = StatusCompleted
	l.CompletedAt = &now
	return l
}

// MarkSkipped returns a copy marked skipped.
func MarkSkipped(l TrainingLog) TrainingLog {
	l.Status = StatusSkipped
	return l
}

// derive recomputes exercise completion flags and the log status from the
// sets. Rest holds as long as the log has no exercises.
func derive(l TrainingLog) TrainingLog {
	if len(l.Exercises) == 0 {
		if l.Status != StatusRest && l.Status != StatusSkipped {
			l.Status = StatusPlanned
		}
		return l
	}

	total, completed := 0, 0
	for i, ex := range l.Exercises {
		exerciseDone := len(ex.Sets) > 0
		for _, set := range ex.Sets {
			total++
			if set.Completed {
				completed++
			} else {
				exerciseDone = false
			}
		}
		l.Exercises[i].Completed = exerciseDone
	}

	switch {
	case completed == 0:
		l.Status = StatusPlanned
	case completed == total:
		l.Status = StatusCompleted
	default:
		l.Status = StatusPartial
	}
	return l
}

// cloneExercises deep-copies the exercise slice so updates never leak into
// the caller's value.
func cloneExercises(exercises []LogExercise) []LogExercise {
	cloned := make([]LogExercise, len(exercises))
	for i, ex := range exercises {
		ex.Sets = slices.Clone(ex.Sets)
		cloned[i] = ex
	}
	return cloned
}

// truncateToDate drops the time-of-day component.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
