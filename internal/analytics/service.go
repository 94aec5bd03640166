package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jhalme/ironweek/internal/i18n"
	"github.com/jhalme/ironweek/internal/sqlite"
	"github.com/jhalme/ironweek/internal/traininglog"
)

// LogLister provides the training history for a user. Satisfied by
// traininglog.Service.
type LogLister interface {
	List(ctx context.Context, userID string, since time.Time) ([]traininglog.TrainingLog, error)
}

// Service handles the business logic for analytics.
type Service struct {
	logs      LogLister
	nutrition *sqliteNutritionRepository
	logger    *slog.Logger
}

// NewService creates a new analytics service.
func NewService(db *sqlite.Database, logs LogLister, logger *slog.Logger) *Service {
	return &Service{
		logs:      logs,
		nutrition: newSQLiteNutritionRepository(db, logger),
		logger:    logger,
	}
}

// Summarize computes the training summary over the user's history since the
// given date.
func (s *Service) Summarize(
	ctx context.Context,
	userID string,
	since time.Time,
	period Period,
	lang i18n.Language,
) (Summary, error) {
	logs, err := s.logs.List(ctx, userID, since)
	if err != nil {
		return Summary{}, fmt.Errorf("list training logs: %w", err)
	}
	return Summarize(logs, period, lang), nil
}

// RecordNutrition stores one day of nutrition tracking, replacing an
// earlier entry for the same date.
func (s *Service) RecordNutrition(ctx context.Context, userID string, l NutritionLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.UserID = userID
	if err := s.nutrition.Set(ctx, l); err != nil {
		return fmt.Errorf("record nutrition: %w", err)
	}
	return nil
}

// SummarizeNutrition computes the nutrition summary since the given date.
func (s *Service) SummarizeNutrition(ctx context.Context, userID string, since time.Time) (NutritionSummary, error) {
	logs, err := s.nutrition.List(ctx, userID, since)
	if err != nil {
		return NutritionSummary{}, fmt.Errorf("list nutrition logs: %w", err)
	}
	return SummarizeNutrition(logs), nil
}
