package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jhalme/ironweek/internal/errors"
	"github.com/jhalme/ironweek/internal/sqlite"
)

const dateFormat = time.DateOnly

// sqliteNutritionRepository persists daily nutrition logs.
type sqliteNutritionRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newSQLiteNutritionRepository(db *sqlite.Database, logger *slog.Logger) *sqliteNutritionRepository {
	return &sqliteNutritionRepository{db: db, logger: logger}
}

// Set stores a nutrition log, replacing any previous one for the same date.
func (r *sqliteNutritionRepository) Set(ctx context.Context, l NutritionLog) error {
	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO nutrition_logs (
			id, user_id, log_date, calories_target, calories_consumed,
			protein_grams, carbs_grams, fat_grams, completed
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, log_date) DO UPDATE SET
			calories_target = excluded.calories_target,
			calories_consumed = excluded.calories_consumed,
			protein_grams = excluded.protein_grams,
			carbs_grams = excluded.carbs_grams,
			fat_grams = excluded.fat_grams,
			completed = excluded.completed`,
		l.ID, l.UserID, l.Date.Format(dateFormat), l.CaloriesTarget, l.CaloriesConsumed,
		l.ProteinGrams, l.CarbsGrams, l.FatGrams, l.Completed)
	if err != nil {
		return fmt.Errorf("save nutrition log: %w", err)
	}
	return nil
}

// List retrieves all nutrition logs since the given date, oldest first.
func (r *sqliteNutritionRepository) List(ctx context.Context, userID string, since time.Time) (_ []NutritionLog, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, log_date, calories_target, calories_consumed,
		       protein_grams, carbs_grams, fat_grams, completed
		FROM nutrition_logs
		WHERE user_id = ? AND log_date >= ?
		ORDER BY log_date ASC`,
		userID, since.Format(dateFormat))
	if err != nil {
		return nil, fmt.Errorf("query nutrition logs: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var logs []NutritionLog
	for rows.Next() {
		var (
			l       NutritionLog
			dateStr string
		)
		if err = rows.Scan(&l.ID, &dateStr, &l.CaloriesTarget, &l.CaloriesConsumed,
			&l.ProteinGrams, &l.CarbsGrams, &l.FatGrams, &l.Completed); err != nil {
			return nil, fmt.Errorf("scan nutrition log: %w", err)
		}
		if l.Date, err = time.Parse(dateFormat, dateStr); err != nil {
			return nil, fmt.Errorf("parse nutrition log date: %w", err)
		}
		l.UserID = userID
		logs = append(logs, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return logs, nil
}
