package traininglog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jhalme/ironweek/internal/catalog"
	"github.com/jhalme/ironweek/internal/errors"
	"github.com/jhalme/ironweek/internal/program"
	"github.com/jhalme/ironweek/internal/sqlite"
)

// ProgramResolver provides the current program for a user. Satisfied by
// program.Service.
type ProgramResolver interface {
	Current(ctx context.Context, userID string) (program.Program, error)
}

// Service handles the business logic for training logs.
type Service struct {
	repo     *sqliteRepository
	programs ProgramResolver
	catalog  *catalog.Catalog
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new training log service.
func NewService(db *sqlite.Database, programs ProgramResolver, cat *catalog.Catalog, logger *slog.Logger) *Service {
	return &Service{
		repo:     newSQLiteRepository(db, logger),
		programs: programs,
		catalog:  cat,
		logger:   logger,
		now:      time.Now,
	}
}

// Start creates the log for a date from the user's current program if it
// doesn't exist yet, then marks it started. Starting an existing log again
// only touches the start time, and only if it was never set.
func (s *Service) Start(ctx context.Context, userID string, date time.Time) (TrainingLog, error) {
	_, err := s.repo.Get(ctx, userID, date)
	if errors.Is(err, ErrNotFound) {
		var p program.Program
		if p, err = s.programs.Current(ctx, userID); err != nil {
			return TrainingLog{}, fmt.Errorf("resolve program: %w", err)
		}
		if err = s.repo.Create(ctx, NewFromProgram(userID, p, date)); err != nil {
			return TrainingLog{}, fmt.Errorf("create log %s: %w", formatDate(date), err)
		}
	} else if err != nil {
		return TrainingLog{}, fmt.Errorf("get log %s: %w", formatDate(date), err)
	}

	if err = s.repo.Update(ctx, userID, date, func(l *TrainingLog) (bool, error) {
		if l.StartedAt != nil || l.Status == StatusRest {
			return false, nil
		}
		*l = MarkStarted(*l, s.now())
		return true, nil
	}); err != nil {
		return TrainingLog{}, fmt.Errorf("update log %s: %w", formatDate(date), err)
	}

	return s.Get(ctx, userID, date)
}

// Get retrieves the log for a date.
func (s *Service) Get(ctx context.Context, userID string, date time.Time) (TrainingLog, error) {
	l, err := s.repo.Get(ctx, userID, date)
	if err != nil {
		return TrainingLog{}, fmt.Errorf("get log %s: %w", formatDate(date), err)
	}
	return l, nil
}

// List retrieves all logs since the given date, oldest first.
func (s *Service) List(ctx context.Context, userID string, since time.Time) ([]TrainingLog, error) {
	logs, err := s.repo.List(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	return logs, nil
}

// RecordSet stores the result of one performed set and rederives the log
// status.
func (s *Service) RecordSet(
	ctx context.Context,
	userID string,
	date time.Time,
	exerciseID string,
	setIndex int,
	result SetResult,
) error {
	if err := s.repo.Update(ctx, userID, date, func(l *TrainingLog) (bool, error) {
		updated, err := RecordSet(*l, exerciseID, setIndex, result)
		if err != nil {
			return false, err
		}
		*l = updated
		return true, nil
	}); err != nil {
		return fmt.Errorf("record set %s: %w", formatDate(date), err)
	}
	return nil
}

// AddExercise appends a catalog exercise to the log. Adding one to a rest
// log turns the day into a training day.
func (s *Service) AddExercise(
	ctx context.Context,
	userID string,
	date time.Time,
	exerciseID string,
	sets int,
	targetReps string,
) error {
	def, ok := s.catalog.Get(exerciseID)
	if !ok {
		return errors.Wrap(ErrExerciseNotFound, "resolve catalog exercise",
			slog.String("exercise_id", exerciseID))
	}

	if err := s.repo.Update(ctx, userID, date, func(l *TrainingLog) (bool, error) {
		*l = AddExercise(*l, def, sets, targetReps)
		return true, nil
	}); err != nil {
		return fmt.Errorf("add exercise %s: %w", formatDate(date), err)
	}
	return nil
}

// Complete marks the log completed.
func (s *Service) Complete(ctx context.Context, userID string, date time.Time) error {
	if err := s.repo.Update(ctx, userID, date, func(l *TrainingLog) (bool, error) {
		*l = MarkCompleted(*l, s.now())
		return true, nil
	}); err != nil {
		return fmt.Errorf("complete log %s: %w", formatDate(date), err)
	}
	return nil
}

// Skip marks the log skipped.
func (s *Service) Skip(ctx context.Context, userID string, date time.Time) error {
	if err := s.repo.Update(ctx, userID, date, func(l *TrainingLog) (bool, error) {
		*l = MarkSkipped(*l)
		return true, nil
	}); err != nil {
		return fmt.Errorf("skip log %s: %w", formatDate(date), err)
	}
	return nil
}

// SaveFeedback stores the difficulty rating for a log.
func (s *Service) SaveFeedback(ctx context.Context, userID string, date time.Time, difficulty int) error {
	if err := s.repo.Update(ctx, userID, date, func(l *TrainingLog) (bool, error) {
		updated, err := WithFeedback(*l, difficulty)
		if err != nil {
			return false, err
		}
		*l = updated
		return true, nil
	}); err != nil {
		return fmt.Errorf("save feedback %s: %w", formatDate(date), err)
	}
	return nil
}

func formatDate(date time.Time) string {
	return date.Format(dateFormat)
}
