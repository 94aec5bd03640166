package traininglog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jhalme/ironweek/internal/errors"
	"github.com/jhalme/ironweek/internal/sqlite"
)

const (
	dateFormat      = time.DateOnly
	timestampFormat = "2006-01-02T15:04:05.000Z"
)

// ErrNotFound is returned when no log exists for the requested date.
var ErrNotFound = errors.NewSentinel("training log not found")

// sqliteRepository persists training logs across three tables. A log is
// always read and written as a whole aggregate.
type sqliteRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newSQLiteRepository(db *sqlite.Database, logger *slog.Logger) *sqliteRepository {
	return &sqliteRepository{db: db, logger: logger}
}

// Get retrieves the log for a specific date.
func (r *sqliteRepository) Get(ctx context.Context, userID string, date time.Time) (TrainingLog, error) {
	var (
		l                TrainingLog
		dateStr          string
		startedAtStr     sql.NullString
		completedAtStr   sql.NullString
		difficultyRating sql.NullInt32
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, log_date, program_id, session_id, title, status,
		       started_at, completed_at, difficulty_rating
		FROM training_logs
		WHERE user_id = ? AND log_date = ?`,
		userID, date.Format(dateFormat)).
		Scan(&l.ID, &dateStr, &l.ProgramID, &l.SessionID, &l.Title, &l.Status,
			&startedAtStr, &completedAtStr, &difficultyRating)
	if errors.Is(err, sql.ErrNoRows) {
		return TrainingLog{}, ErrNotFound
	}
	if err != nil {
		return TrainingLog{}, fmt.Errorf("query training log: %w", err)
	}

	l.UserID = userID
	if l.Date, err = time.Parse(dateFormat, dateStr); err != nil {
		return TrainingLog{}, fmt.Errorf("parse log date: %w", err)
	}
	if l.StartedAt, err = parseTimestamp(startedAtStr); err != nil {
		return TrainingLog{}, fmt.Errorf("parse started_at: %w", err)
	}
	if l.CompletedAt, err = parseTimestamp(completedAtStr); err != nil {
		return TrainingLog{}, fmt.Errorf("parse completed_at: %w", err)
	}
	if difficultyRating.Valid {
		rating := int(difficultyRating.Int32)
		l.DifficultyRating = &rating
	}

	if l.Exercises, err = r.loadExercises(ctx, l.ID); err != nil {
		return TrainingLog{}, err
	}
	return l, nil
}

// List retrieves all logs for a user since the given date, oldest first.
func (r *sqliteRepository) List(ctx context.Context, userID string, since time.Time) (_ []TrainingLog, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT log_date
		FROM training_logs
		WHERE user_id = ? AND log_date >= ?
		ORDER BY log_date ASC`,
		userID, since.Format(dateFormat))
	if err != nil {
		return nil, fmt.Errorf("query training log dates: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var dates []time.Time
	for rows.Next() {
		var dateStr string
		if err = rows.Scan(&dateStr); err != nil {
			return nil, fmt.Errorf("scan log date: %w", err)
		}
		var date time.Time
		if date, err = time.Parse(dateFormat, dateStr); err != nil {
			return nil, fmt.Errorf("parse log date: %w", err)
		}
		dates = append(dates, date)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	logs := make([]TrainingLog, 0, len(dates))
	for _, date := range dates {
		l, getErr := r.Get(ctx, userID, date)
		if getErr != nil {
			return nil, fmt.Errorf("load log %s: %w", date.Format(dateFormat), getErr)
		}
		logs = append(logs, l)
	}
	return logs, nil
}

// Create stores a new log. A log for the same user and date must not exist.
func (r *sqliteRepository) Create(ctx context.Context, l TrainingLog) (err error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback transaction: %w", rollbackErr))
		}
	}()

	if err = insertLog(ctx, tx, l); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Update applies fn to the stored log and writes it back when fn reports a
// change.
func (r *sqliteRepository) Update(
	ctx context.Context,
	userID string,
	date time.Time,
	fn func(l *TrainingLog) (bool, error),
) (err error) {
	l, err := r.Get(ctx, userID, date)
	if err != nil {
		return err
	}

	changed, err := fn(&l)
	if err != nil {
		return fmt.Errorf("update training log: %w", err)
	}
	if !changed {
		return nil
	}

	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback transaction: %w", rollbackErr))
		}
	}()

	// Delete and reinsert the whole aggregate.
	if _, err = tx.ExecContext(ctx, `
		DELETE FROM training_logs WHERE user_id = ? AND log_date = ?`,
		userID, date.Format(dateFormat)); err != nil {
		return fmt.Errorf("delete training log: %w", err)
	}
	if err = insertLog(ctx, tx, l); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func insertLog(ctx context.Context, tx *sql.Tx, l TrainingLog) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO training_logs (
			id, user_id, log_date, program_id, session_id, title, status,
			started_at, completed_at, difficulty_rating
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.UserID, l.Date.Format(dateFormat), l.ProgramID, l.SessionID,
		l.Title, l.Status, formatTimestamp(l.StartedAt), formatTimestamp(l.CompletedAt),
		nullableInt(l.DifficultyRating))
	if err != nil {
		return fmt.Errorf("insert training log: %w", err)
	}

	for position, ex := range l.Exercises {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO log_exercises (
				log_id, position, exercise_id, name, movement_type, muscle, completed
			) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			l.ID, position, ex.ExerciseID, ex.Name, ex.Type, ex.Muscle, ex.Completed); err != nil {
			return fmt.Errorf("insert log exercise: %w", err)
		}
		for setNumber, set := range ex.Sets {
			if _, err = tx.ExecContext(ctx, `
				INSERT INTO log_sets (
					log_id, exercise_position, set_number,
					target_reps, performed_reps, weight_kg, rpe, completed
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				l.ID, position, setNumber,
				set.TargetReps, set.PerformedReps, set.WeightKg, set.RPE, set.Completed); err != nil {
				return fmt.Errorf("insert log set: %w", err)
			}
		}
	}
	return nil
}

// loadExercises fetches the exercises and sets for a log in stored order.
func (r *sqliteRepository) loadExercises(ctx context.Context, logID string) (_ []LogExercise, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT position, exercise_id, name, movement_type, muscle, completed
		FROM log_exercises
		WHERE log_id = ?
		ORDER BY position`, logID)
	if err != nil {
		return nil, fmt.Errorf("query log exercises: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var exercises []LogExercise
	var positions []int
	for rows.Next() {
		var (
			position int
			ex       LogExercise
		)
		if err = rows.Scan(&position, &ex.ExerciseID, &ex.Name, &ex.Type, &ex.Muscle, &ex.Completed); err != nil {
			return nil, fmt.Errorf("scan log exercise: %w", err)
		}
		exercises = append(exercises, ex)
		positions = append(positions, position)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	for i, position := range positions {
		if exercises[i].Sets, err = r.loadSets(ctx, logID, position); err != nil {
			return nil, err
		}
	}
	return exercises, nil
}

func (r *sqliteRepository) loadSets(ctx context.Context, logID string, position int) (_ []LogSet, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT target_reps, performed_reps, weight_kg, rpe, completed
		FROM log_sets
		WHERE log_id = ? AND exercise_position = ?
		ORDER BY set_number`, logID, position)
	if err != nil {
		return nil, fmt.Errorf("query log sets: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var sets []LogSet
	for rows.Next() {
		var set LogSet
		if err = rows.Scan(&set.TargetReps, &set.PerformedReps, &set.WeightKg, &set.RPE, &set.Completed); err != nil {
			return nil, fmt.Errorf("scan log set: %w", err)
		}
		sets = append(sets, set)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return sets, nil
}

func parseTimestamp(timestampStr sql.NullString) (*time.Time, error) {
	if !timestampStr.Valid {
		return nil, nil //nolint:nilnil // nil time is expected for NULL.
	}
	parsed, err := time.Parse(timestampFormat, timestampStr.String)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp format: %w", err)
	}
	return &parsed, nil
}

func formatTimestamp(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(timestampFormat)
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
