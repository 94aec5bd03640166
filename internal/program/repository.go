package program

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jhalme/ironweek/internal/errors"
	"github.com/jhalme/ironweek/internal/sqlite"
)

// ErrNotFound is returned when a user has no stored program.
var ErrNotFound = errors.NewSentinel("program not found")

// sqliteRepository stores the current program per user as a JSON document.
//
// A program is always written and read as a whole, so a document column
// beats a handful of join tables here. Regeneration replaces the row.
type sqliteRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newSQLiteRepository(db *sqlite.Database, logger *slog.Logger) *sqliteRepository {
	return &sqliteRepository{db: db, logger: logger}
}

// Get retrieves the current program for a user.
func (r *sqliteRepository) Get(ctx context.Context, userID string) (Program, error) {
	var document []byte
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT document FROM programs WHERE user_id = ?`, userID).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return Program{}, ErrNotFound
	}
	if err != nil {
		return Program{}, fmt.Errorf("query program: %w", err)
	}

	var p Program
	if err = json.Unmarshal(document, &p); err != nil {
		return Program{}, fmt.Errorf("unmarshal program document: %w", err)
	}
	return p, nil
}

// Set stores a program, replacing any previous one for the same user.
func (r *sqliteRepository) Set(ctx context.Context, p Program) error {
	document, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal program document: %w", err)
	}

	// Bound as string: programs is a STRICT table and a []byte parameter
	// would bind as BLOB, which the TEXT document column rejects.
	_, err = r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO programs (user_id, program_id, generated_at, document)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			program_id = excluded.program_id,
			generated_at = excluded.generated_at,
			document = excluded.document`,
		p.UserID, p.ID, p.GeneratedAt.UTC().Format(timestampFormat), string(document))
	if err != nil {
		return fmt.Errorf("save program: %w", err)
	}
	return nil
}

// Update applies fn to the stored program and writes it back when fn reports
// a change. The read and write happen on the single write connection so
// concurrent updates serialize.
func (r *sqliteRepository) Update(ctx context.Context, userID string, fn func(p *Program) (bool, error)) (err error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback transaction: %w", rollbackErr))
		}
	}()

	var document []byte
	err = tx.QueryRowContext(ctx, `
		SELECT document FROM programs WHERE user_id = ?`, userID).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("query program: %w", err)
	}

	var p Program
	if err = json.Unmarshal(document, &p); err != nil {
		return fmt.Errorf("unmarshal program document: %w", err)
	}

	changed, err := fn(&p)
	if err != nil {
		return fmt.Errorf("update program: %w", err)
	}
	if !changed {
		return nil
	}

	if document, err = json.Marshal(p); err != nil {
		return fmt.Errorf("marshal program document: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `
		UPDATE programs
		SET program_id = ?, generated_at = ?, document = ?
		WHERE user_id = ?`,
		p.ID, p.GeneratedAt.UTC().Format(timestampFormat), string(document), userID); err != nil {
		return fmt.Errorf("write program: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

const timestampFormat = "2006-01-02T15:04:05.000Z"
