// Command smoketest exercises the main user journey against a running
// deployment: generate a program, start today's log, record a set and fetch
// the analytics summary.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jhalme/ironweek/internal/e2etest"
	"github.com/jhalme/ironweek/internal/logging"
	"github.com/jhalme/ironweek/internal/testhelpers"
)

const testTimeout = 10 * time.Second

func testProgramAndLog(client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	prefs := map[string]any{
		"daysPerWeek":       7,
		"preferredWeekdays": []int{0, 1, 2, 3, 4, 5, 6},
		"sessionMinutes":    60,
		"equipment":         []string{"barbell", "dumbbell", "machine", "bodyweight"},
		"goal":              "general_fitness",
		"experience":        "beginner",
	}
	status, err := client.PostJSON(ctx, "/programs", prefs, nil)
	if err != nil {
		return fmt.Errorf("generate program: %w", err)
	}
	if status != http.StatusCreated {
		return fmt.Errorf("generate program: unexpected status %d", status)
	}

	today := time.Now().Format(time.DateOnly)
	var log struct {
		Status    string `json:"status"`
		Exercises []struct {
			ExerciseID string `json:"exerciseId"`
		} `json:"exercises"`
	}
	if status, err = client.PostJSON(ctx, "/logs/"+today+"/start", nil, &log); err != nil {
		return fmt.Errorf("start log: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("start log: unexpected status %d", status)
	}
	if len(log.Exercises) == 0 {
		return fmt.Errorf("started log has no exercises")
	}

	setResult := map[string]any{"performedReps": 10, "weightKg": 20, "rpe": 6, "completed": true}
	path := "/logs/" + today + "/exercises/" + log.Exercises[0].ExerciseID + "/sets/0"
	if status, err = client.PostJSON(ctx, path, setResult, nil); err != nil {
		return fmt.Errorf("record set: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("record set: unexpected status %d", status)
	}

	var summary struct {
		TotalVolume float64 `json:"totalVolume"`
	}
	if status, err = client.GetJSON(ctx, "/analytics/summary", &summary); err != nil {
		return fmt.Errorf("get summary: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("get summary: unexpected status %d", status)
	}
	if summary.TotalVolume <= 0 {
		return fmt.Errorf("summary volume is %v, expected > 0", summary.TotalVolume)
	}

	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready", slog.Any("error", err))
		os.Exit(1)
	}

	if err = testProgramAndLog(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "smoke test failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "smoke test passed", slog.Duration("duration", time.Since(start)))
}
