package main

import (
	"net/http"
	"testing"
	"time"
)

func Test_application_analyticsSummary(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)
	client := server.Client()

	if status, err := client.PostJSON(ctx, "/programs", sevenDayPreferences(), nil); err != nil || status != http.StatusCreated {
		t.Fatalf("Failed to generate program: status %d err %v", status, err)
	}

	// Complete one training day with a recorded set.
	today := time.Now().Format(time.DateOnly)
	var started logResponse
	if status, err := client.PostJSON(ctx, "/logs/"+today+"/start", nil, &started); err != nil || status != http.StatusOK {
		t.Fatalf("Failed to start log: status %d err %v", status, err)
	}
	exerciseID := started.Exercises[0].ExerciseID
	setResult := map[string]any{"performedReps": 8, "weightKg": 60, "rpe": 8, "completed": true}
	if status, err := client.PostJSON(ctx, "/logs/"+today+"/exercises/"+exerciseID+"/sets/0", setResult, nil); err != nil || status != http.StatusOK {
		t.Fatalf("Failed to record set: status %d err %v", status, err)
	}
	if status, err := client.PostJSON(ctx, "/logs/"+today+"/complete", nil, nil); err != nil || status != http.StatusOK {
		t.Fatalf("Failed to complete log: status %d err %v", status, err)
	}

	var summary summaryResponse
	status, err := client.GetJSON(ctx, "/analytics/summary", &summary)
	if err != nil {
		t.Fatalf("Failed to get summary: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("GET /analytics/summary: got status %d, want %d", status, http.StatusOK)
	}

	if summary.TotalVolume <= 0 {
		t.Errorf("totalVolume = %v, want > 0", summary.TotalVolume)
	}
	if summary.AdherencePercent != 100 {
		t.Errorf("adherencePercent = %d, want 100", summary.AdherencePercent)
	}
	if summary.BestStreak != 1 {
		t.Errorf("bestStreak = %d, want 1", summary.BestStreak)
	}
	if len(summary.Timeline) != 1 {
		t.Errorf("timeline has %d points, want 1", len(summary.Timeline))
	}
	if len(summary.MuscleSplit) == 0 {
		t.Error("muscleSplit is empty")
	}
	// No OpenAI key in tests, so the note is absent.
	if summary.CoachingNote != "" {
		t.Errorf("coachingNote = %q, want empty", summary.CoachingNote)
	}

	// Unknown period is rejected.
	if status, err = client.GetJSON(ctx, "/analytics/summary?period=fortnight", nil); err != nil {
		t.Fatalf("Failed to get summary: %v", err)
	}
	if status != http.StatusUnprocessableEntity {
		t.Errorf("period=fortnight: got status %d, want %d", status, http.StatusUnprocessableEntity)
	}
}

func Test_application_analyticsSummaryEmptyHistory(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)
	client := server.Client()

	var summary summaryResponse
	status, err := client.GetJSON(ctx, "/analytics/summary", &summary)
	if err != nil {
		t.Fatalf("Failed to get summary: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("GET /analytics/summary: got status %d, want %d", status, http.StatusOK)
	}
	if summary.TotalVolume != 0 || summary.AdherencePercent != 0 || summary.BestStreak != 0 {
		t.Errorf("empty history summary = %+v, want zero values", summary)
	}
}

func Test_application_nutrition(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)
	client := server.Client()

	day1 := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)
	day2 := time.Now().Format(time.DateOnly)

	entries := map[string]map[string]any{
		day1: {
			"caloriesTarget": 2000, "caloriesConsumed": 1800,
			"proteinGrams": 150.0, "carbsGrams": 200.0, "fatGrams": 60.0,
			"completed": true,
		},
		day2: {
			"caloriesTarget": 2000, "caloriesConsumed": 2400,
			"proteinGrams": 120.0, "carbsGrams": 250.0, "fatGrams": 80.0,
			"completed": false,
		},
	}
	for date, entry := range entries {
		status, err := client.PostJSON(ctx, "/nutrition/"+date, entry, nil)
		if err != nil {
			t.Fatalf("Failed to record nutrition: %v", err)
		}
		if status != http.StatusNoContent {
			t.Fatalf("POST /nutrition/{date}: got status %d, want %d", status, http.StatusNoContent)
		}
	}

	var summary nutritionSummaryResponse
	status, err := client.GetJSON(ctx, "/analytics/nutrition", &summary)
	if err != nil {
		t.Fatalf("Failed to get nutrition summary: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("GET /analytics/nutrition: got status %d, want %d", status, http.StatusOK)
	}

	// Day one adheres 90%, day two overshoots and is capped at 100.
	if summary.AvgCalorieAdherence != 95 {
		t.Errorf("avgCalorieAdherence = %d, want 95", summary.AvgCalorieAdherence)
	}
	if summary.TotalProteinGrams != 270 {
		t.Errorf("totalProteinGrams = %v, want 270", summary.TotalProteinGrams)
	}
	if summary.BestStreak != 2 {
		t.Errorf("bestStreak = %d, want 2", summary.BestStreak)
	}
}
