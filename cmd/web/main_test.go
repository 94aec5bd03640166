package main

import (
	"testing"

	"github.com/jhalme/ironweek/internal/e2etest"
	"github.com/jhalme/ironweek/internal/testhelpers"
)

// testLookupEnv gives every test an in-memory database and a dynamically
// allocated port.
func testLookupEnv(key string) (string, bool) {
	env := map[string]string{
		"IRONWEEK_ADDR":       "localhost:0",
		"IRONWEEK_SQLITE_URL": ":memory:",
	}
	value, ok := env[key]
	return value, ok
}

func startTestServer(t *testing.T) *e2etest.Server {
	t.Helper()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	return server
}

// defaultPreferences is a generation request that succeeds against the
// builtin catalog.
func defaultPreferences() map[string]any {
	return map[string]any{
		"daysPerWeek":       3,
		"preferredWeekdays": []int{1, 3, 5},
		"sessionMinutes":    60,
		"equipment":         []string{"barbell", "dumbbell", "machine", "bodyweight"},
		"goal":              "strength",
		"experience":        "intermediate",
	}
}
