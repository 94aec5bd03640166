package program

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jhalme/ironweek/internal/catalog"
	"github.com/jhalme/ironweek/internal/sqlite"
)

// Service handles the business logic for program generation and adaptation.
type Service struct {
	repo      *sqliteRepository
	generator *Generator
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a new program service backed by the given database and
// exercise catalog.
func NewService(db *sqlite.Database, cat *catalog.Catalog, logger *slog.Logger) *Service {
	return &Service{
		repo:      newSQLiteRepository(db, logger),
		generator: NewGenerator(cat, logger),
		logger:    logger,
		now:       time.Now,
	}
}

// Generate builds a fresh program from the preferences and stores it as the
// user's current one. Any previous program, including its adaptation
// history, is superseded.
func (s *Service) Generate(ctx context.Context, userID string, prefs Preferences) (Program, error) {
	p, err := s.generator.Generate(ctx, userID, prefs, s.now())
	if err != nil {
		return Program{}, fmt.Errorf("generate program: %w", err)
	}

	if p.Diagnostics.FallbackTriggered {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "program generated with fallback",
			slog.String("reason", p.Diagnostics.FallbackReason))
	}

	if err = s.repo.Set(ctx, p); err != nil {
		return Program{}, fmt.Errorf("store program: %w", err)
	}
	return p, nil
}

// Current returns the user's stored program. ErrNotFound when none exists.
func (s *Service) Current(ctx context.Context, userID string) (Program, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return Program{}, fmt.Errorf("get current program: %w", err)
	}
	return p, nil
}

// AdaptToReadiness applies a readiness-based adaptation to the stored
// program and returns the result.
func (s *Service) AdaptToReadiness(ctx context.Context, userID string, readiness int) (Program, error) {
	var adapted Program
	err := s.repo.Update(ctx, userID, func(p *Program) (bool, error) {
		result, adaptErr := Adapt(*p, readiness, s.now())
		if adaptErr != nil {
			return false, adaptErr
		}
		changed := len(result.Adaptations) != len(p.Adaptations)
		*p = result
		adapted = result
		return changed, nil
	})
	if err != nil {
		return Program{}, fmt.Errorf("adapt program: %w", err)
	}
	return adapted, nil
}
