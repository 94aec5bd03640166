package program

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jhalme/ironweek/internal/errors"
	"github.com/jhalme/ironweek/internal/sqlite"
	"github.com/jhalme/ironweek/internal/testhelpers"
)

// newTestRepository migrates the real schema into an in-memory database so
// the tests hit the same STRICT tables as production.
func newTestRepository(t *testing.T) *sqliteRepository {
	t.Helper()
	ctx := context.Background()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("new database: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("close database: %v", closeErr)
		}
	})
	if _, err = db.ReadWrite.ExecContext(ctx, "INSERT INTO users (id) VALUES ('u1')"); err != nil {
		t.Fatalf("insert user: %v", err)
	}
	return newSQLiteRepository(db, logger)
}

func Test_sqliteRepository_roundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepository(t)

	p := Program{
		ID:          "p1",
		UserID:      "u1",
		GeneratedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		Split:       SplitFullBody,
		Sessions: []Session{{
			ID:      "s1",
			Weekday: time.Monday,
			Title:   "Full Body A",
		}},
		Diagnostics: Diagnostics{ValidationPassed: true},
	}
	if err := repo.Set(ctx, p); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if diff := cmp.Diff(p, got); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}

	// Regeneration replaces the stored row for the user.
	p.ID = "p2"
	if err = repo.Set(ctx, p); err != nil {
		t.Fatalf("Set() replace error = %v", err)
	}

	if err = repo.Update(ctx, "u1", func(stored *Program) (bool, error) {
		stored.Sessions[0].Title = "Full Body A (Light)"
		return true, nil
	}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err = repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get() after update error = %v", err)
	}
	if got.ID != "p2" {
		t.Errorf("program id = %q, want %q", got.ID, "p2")
	}
	if got.Sessions[0].Title != "Full Body A (Light)" {
		t.Errorf("session title = %q, want %q", got.Sessions[0].Title, "Full Body A (Light)")
	}
}

func Test_sqliteRepository_missingProgram(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepository(t)

	if _, err := repo.Get(ctx, "u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
	if err := repo.Update(ctx, "u1", func(*Program) (bool, error) { return true, nil }); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}
