package sqlite

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jhalme/ironweek/internal/testhelpers"
)

func TestDatabase_ExportUserDB(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		userID         string
		setupSchema    string
		setupData      []string
		expectedTables []string
		expectedCounts map[string]int
		wantErr        bool
	}{
		{
			name:   "simple user export",
			userID: "u1",
			setupSchema: `
				CREATE TABLE users (id TEXT PRIMARY KEY, name TEXT);
				CREATE TABLE training_logs (id INTEGER PRIMARY KEY, user_id TEXT, title TEXT, FOREIGN KEY (user_id) REFERENCES users(id));
			`,
			setupData: []string{
				"INSERT INTO users (id, name) VALUES ('u1', 'John Doe')",
				"INSERT INTO users (id, name) VALUES ('u2', 'Jane Smith')",
				"INSERT INTO training_logs (id, user_id, title) VALUES (1, 'u1', 'Push')",
				"INSERT INTO training_logs (id, user_id, title) VALUES (2, 'u1', 'Pull')",
				"INSERT INTO training_logs (id, user_id, title) VALUES (3, 'u2', 'Legs')",
			},
			expectedTables: []string{"users", "training_logs"},
			expectedCounts: map[string]int{
				"users":         1,
				"training_logs": 2,
			},
			wantErr: false,
		},
		{
			name:   "user with no data",
			userID: "u999",
			setupSchema: `
				CREATE TABLE users (id TEXT PRIMARY KEY, name TEXT);
				CREATE TABLE training_logs (id INTEGER PRIMARY KEY, user_id TEXT, title TEXT, FOREIGN KEY (user_id) REFERENCES users(id));
			`,
			setupData: []string{
				"INSERT INTO users (id, name) VALUES ('u1', 'John Doe')",
				"INSERT INTO training_logs (id, user_id, title) VALUES (1, 'u1', 'Push')",
			},
			expectedTables: []string{"users", "training_logs"},
			expectedCounts: map[string]int{
				"users":         0,
				"training_logs": 0,
			},
			wantErr: false,
		},
		{
			name:   "complex schema with multiple related tables",
			userID: "u1",
			setupSchema: `
				CREATE TABLE users (id TEXT PRIMARY KEY, name TEXT, email TEXT);
				CREATE TABLE training_logs (log_date TEXT, user_id TEXT, PRIMARY KEY (log_date, user_id), FOREIGN KEY (user_id) REFERENCES users(id)) WITHOUT ROWID;
				CREATE TABLE exercises (id INTEGER PRIMARY KEY, name TEXT);
				CREATE TABLE log_sets (log_date TEXT, log_user_id TEXT, exercise_id INTEGER, PRIMARY KEY (log_date, log_user_id, exercise_id), FOREIGN KEY (log_date, log_user_id) REFERENCES training_logs(log_date, user_id), FOREIGN KEY (exercise_id) REFERENCES exercises(id)) WITHOUT ROWID;
				CREATE TABLE user_settings (user_id TEXT PRIMARY KEY, theme TEXT, FOREIGN KEY (user_id) REFERENCES users(id));
			`,
			setupData: []string{
				"INSERT INTO users (id, name, email) VALUES ('u1', 'John Doe', 'john@example.com')",
				"INSERT INTO users (id, name, email) VALUES ('u2', 'Jane Smith', 'jane@example.com')",
				"INSERT INTO training_logs (log_date, user_id) VALUES ('2024-01-01', 'u1')",
				"INSERT INTO training_logs (log_date, user_id) VALUES ('2024-01-02', 'u2')",
				"INSERT INTO exercises (id, name) VALUES (1, 'Push-ups')",
				"INSERT INTO exercises (id, name) VALUES (2, 'Bench Press')",
				"INSERT INTO exercises (id, name) VALUES (3, 'Pull-ups')",
				"INSERT INTO log_sets (log_date, log_user_id, exercise_id) VALUES ('2024-01-01', 'u1',  1)",
				"INSERT INTO log_sets (log_date, log_user_id, exercise_id) VALUES ('2024-01-02', 'u2',  2)",
				"INSERT INTO user_settings (user_id, theme) VALUES ('u1', 'dark')",
				"INSERT INTO user_settings (user_id, theme) VALUES ('u2', 'light')",
			},
			expectedTables: []string{"users", "training_logs", "exercises", "log_sets", "user_settings"},
			expectedCounts: map[string]int{
				"users":         1,
				"training_logs": 1,
				"exercises":     3,
				"log_sets":      1,
				"user_settings": 1,
			},
			wantErr: false,
		},
		{
			name:   "no users table",
			userID: "u1",
			setupSchema: `
				CREATE TABLE training_logs (id INTEGER PRIMARY KEY, user_id TEXT, title TEXT);
			`,
			setupData: []string{
				"INSERT INTO training_logs (id, user_id, title) VALUES (1, 'u1', 'Push')",
				"INSERT INTO training_logs (id, user_id, title) VALUES (2, 'u1', 'Pull')",
				"INSERT INTO training_logs (id, user_id, title) VALUES (3, 'u2', 'Legs')",
			},
			expectedTables: []string{},
			wantErr:        true,
		},
		{
			name:   "unrelated tables are not exported",
			userID: "u1",
			setupSchema: `
				CREATE TABLE users (id TEXT PRIMARY KEY, name TEXT);
				CREATE TABLE feature_flags (id INTEGER PRIMARY KEY, enabled INTEGER);
			`,
			setupData: []string{
				"INSERT INTO users (id, name) VALUES ('u1', 'John Doe')",
			},
			expectedTables: []string{"users"},
			expectedCounts: map[string]int{
				"users": 1,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

			// Create main database
			db, err := connect(ctx, ":memory:", logger)
			if err != nil {
				t.Fatalf("Failed to connect to database: %v", err)
			}
			defer func(db *Database) {
				err = db.Close()
				if err != nil {
					t.Errorf("Failed to close database: %v", err)
				}
			}(db)

			// Set up schema
			_, err = db.ReadWrite.ExecContext(ctx, tt.setupSchema)
			if err != nil {
				t.Fatalf("Failed to create schema: %v", err)
			}

			// Insert test data
			for _, dataSQL := range tt.setupData {
				_, err = db.ReadWrite.ExecContext(ctx, dataSQL)
				if err != nil {
					t.Fatalf("Failed to insert test data: %v", err)
				}
			}

			// Create temporary directory for export
			tempDir := t.TempDir()

			// Export the user's data
			dbPath, err := db.ExportUserDB(ctx, tt.userID, tempDir)
			if (err != nil) != tt.wantErr {
				t.Errorf("ExportUserDB() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr {
				return
			}

			// Verify the exported database file exists
			if _, err := os.Stat(dbPath); os.IsNotExist(err) {
				t.Errorf("Exported database file does not exist at %s", dbPath)
				return
			}

			// Open the exported database and verify its contents
			exportedDB, err := sql.Open("sqlite3", dbPath)
			if err != nil {
				t.Fatalf("Failed to open exported database: %v", err)
			}
			defer exportedDB.Close()

			// Verify that only expected tables exist
			rows, err := exportedDB.QueryContext(ctx, "SELECT name FROM sqlite_schema WHERE type = 'table' AND name != 'sqlite_stat1'")
			if err != nil {
				t.Fatalf("Failed to query tables: %v", err)
			}
			defer rows.Close()

			var actualTables []string
			for rows.Next() {
				var tableName string
				if err := rows.Scan(&tableName); err != nil {
					t.Fatalf("Failed to scan table name: %v", err)
				}
				actualTables = append(actualTables, tableName)
			}

			// Check that actual tables match expected tables
			if len(actualTables) != len(tt.expectedTables) {
				t.Errorf("Table count mismatch: got %d tables %v, want %d tables %v", len(actualTables), actualTables, len(tt.expectedTables), tt.expectedTables)
			}

			expectedTableSet := make(map[string]bool)
			for _, table := range tt.expectedTables {
				expectedTableSet[table] = true
			}

			for _, table := range actualTables {
				if !expectedTableSet[table] {
					t.Errorf("Unexpected table found: %s", table)
				}
			}

			// Verify expected tables exist and have correct row counts
			for _, tableName := range tt.expectedTables {
				var count int
				query := "SELECT COUNT(*) FROM " + tableName
				err = exportedDB.QueryRowContext(ctx, query).Scan(&count)
				if err != nil {
					t.Errorf("Failed to query table %s: %v", tableName, err)
					continue
				}

				expectedCount, ok := tt.expectedCounts[tableName]
				if !ok {
					t.Errorf("Missing expected count for table %s", tableName)
					continue
				}

				if count != expectedCount {
					t.Errorf("Table %s: got %d rows, want %d rows", tableName, count, expectedCount)
				}
			}
		})
	}
}
