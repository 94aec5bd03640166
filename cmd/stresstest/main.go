// Command stresstest drives many concurrent simulated users through the
// program and logging endpoints and reports the overall success rate.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jhalme/ironweek/internal/e2etest"
	"github.com/jhalme/ironweek/internal/logging"
	"github.com/jhalme/ironweek/internal/testhelpers"
	"golang.org/x/sync/errgroup"
)

const (
	userCount            = 50
	maxConcurrentUsers   = 10
	scenarioTimeout      = 30 * time.Second
	successRateThreshold = 95.0
	baseWeight           = 15.0
	weightRange          = 20
	baseReps             = 8
	repsRange            = 8
)

// scenario is one user's session: generate a program, start today's log,
// record a few sets and read back the summary.
func scenario(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, scenarioTimeout)
	defer cancel()

	client, err := e2etest.NewClient(url)
	if err != nil {
		return fmt.Errorf("new client: %w", err)
	}

	prefs := map[string]any{
		"daysPerWeek":       7,
		"preferredWeekdays": []int{0, 1, 2, 3, 4, 5, 6},
		"sessionMinutes":    45,
		"equipment":         []string{"barbell", "dumbbell", "bodyweight"},
		"goal":              "muscle",
		"experience":        "intermediate",
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
		Exercises []struct {
			ExerciseID string `json:"exerciseId"`
			Sets       []struct {
				TargetReps string `json:"targetReps"`
			} `json:"sets"`
		} `json:"exercises"`
	}
	if status, err = client.PostJSON(ctx, "/logs/"+today+"/start", nil, &log); err != nil {
		return fmt.Errorf("start log: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("start log: unexpected status %d", status)
	}

	for _, exercise := range log.Exercises {
		for setIndex := range exercise.Sets {
			setResult := map[string]any{
				"performedReps": baseReps + rand.IntN(repsRange),
				"weightKg":      baseWeight + float64(rand.IntN(weightRange)),
				"rpe":           6 + rand.IntN(4),
				"completed":     true,
			}
			path := fmt.Sprintf("/logs/%s/exercises/%s/sets/%d", today, exercise.ExerciseID, setIndex)
			if status, err = client.PostJSON(ctx, path, setResult, nil); err != nil {
				return fmt.Errorf("record set: %w", err)
			}
			if status != http.StatusOK {
				return fmt.Errorf("record set: unexpected status %d", status)
			}
		}
	}

	if status, err = client.PostJSON(ctx, "/logs/"+today+"/complete", nil, nil); err != nil {
		return fmt.Errorf("complete log: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("complete log: unexpected status %d", status)
	}

	if status, err = client.GetJSON(ctx, "/analytics/summary", nil); err != nil {
		return fmt.Errorf("get summary: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("get summary: unexpected status %d", status)
	}

	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: stresstest <hostname>")
		os.Exit(1)
	}

	hostname := os.Args[1]
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	probe, err := e2etest.NewClient(url)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = probe.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready", slog.Any("error", err))
		os.Exit(1)
	}

	var (
		start     = time.Now()
		succeeded atomic.Int64
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentUsers)
	for i := range userCount {
		g.Go(func() error {
			if scenarioErr := scenario(gCtx, url); scenarioErr != nil {
				logger.LogAttrs(gCtx, slog.LevelWarn, "scenario failed",
					slog.Int("user", i), slog.Any("error", scenarioErr))
				// Failures count against the success rate instead of aborting the run.
				return nil
			}
			succeeded.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	successRate := float64(succeeded.Load()) / float64(userCount) * 100
	logger.LogAttrs(ctx, slog.LevelInfo, "stress test finished",
		slog.Int64("succeeded", succeeded.Load()),
		slog.Int("total", userCount),
		slog.String("success_rate", fmt.Sprintf("%.1f%%", successRate)),
		slog.Duration("duration", time.Since(start)))

	if successRate < successRateThreshold {
		logger.LogAttrs(ctx, slog.LevelError, "success rate below threshold",
			slog.String("threshold", fmt.Sprintf("%.1f%%", successRateThreshold)))
		os.Exit(1)
	}
}
