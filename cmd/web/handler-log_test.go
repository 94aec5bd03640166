package main

import (
	"net/http"
	"testing"
	"time"
)

// sevenDayPreferences makes every calendar day a training day so tests can
// use today's date without caring which weekday it is.
func sevenDayPreferences() map[string]any {
	prefs := defaultPreferences()
	prefs["daysPerWeek"] = 7
	prefs["preferredWeekdays"] = []int{0, 1, 2, 3, 4, 5, 6}
	return prefs
}

func Test_application_logLifecycle(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)
	client := server.Client()

	if status, err := client.PostJSON(ctx, "/programs", sevenDayPreferences(), nil); err != nil || status != http.StatusCreated {
		t.Fatalf("Failed to generate program: status %d err %v", status, err)
	}

	today := time.Now().Format(time.DateOnly)

	// Start materializes the log from the program.
	var started logResponse
	status, err := client.PostJSON(ctx, "/logs/"+today+"/start", nil, &started)
	if err != nil {
		t.Fatalf("Failed to start log: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("POST /logs/{date}/start: got status %d, want %d", status, http.StatusOK)
	}
	if started.Status != "planned" {
		t.Errorf("status = %q, want planned", started.Status)
	}
	if len(started.Exercises) == 0 {
		t.Fatal("started log has no exercises")
	}
	if started.StartedAt == nil {
		t.Error("startedAt not set")
	}

	// Recording a completed set moves the log to partial.
	exerciseID := started.Exercises[0].ExerciseID
	var afterSet logResponse
	setResult := map[string]any{"performedReps": 8, "weightKg": 60, "rpe": 8, "completed": true}
	if status, err = client.PostJSON(ctx, "/logs/"+today+"/exercises/"+exerciseID+"/sets/0", setResult, &afterSet); err != nil {
		t.Fatalf("Failed to record set: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("record set: got status %d, want %d", status, http.StatusOK)
	}
	if afterSet.Status != "partial" {
		t.Errorf("status after one set = %q, want partial", afterSet.Status)
	}
	gotSet := afterSet.Exercises[0].Sets[0]
	if gotSet.PerformedReps != 8 || gotSet.WeightKg != 60 || !gotSet.Completed {
		t.Errorf("recorded set = %+v, want 8 reps at 60 kg completed", gotSet)
	}

	// Out-of-range set index is rejected.
	if status, err = client.PostJSON(ctx, "/logs/"+today+"/exercises/"+exerciseID+"/sets/99", setResult, nil); err != nil {
		t.Fatalf("Failed to record set: %v", err)
	}
	if status != http.StatusUnprocessableEntity {
		t.Errorf("out of range set: got status %d, want %d", status, http.StatusUnprocessableEntity)
	}

	// Completing the log forces completed regardless of remaining sets.
	var completed logResponse
	if status, err = client.PostJSON(ctx, "/logs/"+today+"/complete", nil, &completed); err != nil {
		t.Fatalf("Failed to complete log: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("complete log: got status %d, want %d", status, http.StatusOK)
	}
	if completed.Status != "completed" {
		t.Errorf("status after complete = %q, want completed", completed.Status)
	}
	if completed.CompletedAt == nil {
		t.Error("completedAt not set")
	}

	// Difficulty feedback.
	var rated logResponse
	if status, err = client.PostJSON(ctx, "/logs/"+today+"/feedback", map[string]any{"difficulty": 4}, &rated); err != nil {
		t.Fatalf("Failed to save feedback: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("save feedback: got status %d, want %d", status, http.StatusOK)
	}
	if rated.DifficultyRating == nil || *rated.DifficultyRating != 4 {
		t.Errorf("difficultyRating = %v, want 4", rated.DifficultyRating)
	}
	if status, err = client.PostJSON(ctx, "/logs/"+today+"/feedback", map[string]any{"difficulty": 9}, nil); err != nil {
		t.Fatalf("Failed to save feedback: %v", err)
	}
	if status != http.StatusUnprocessableEntity {
		t.Errorf("difficulty 9: got status %d, want %d", status, http.StatusUnprocessableEntity)
	}
}

func Test_application_logSkipAndMissing(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)
	client := server.Client()

	if status, err := client.PostJSON(ctx, "/programs", sevenDayPreferences(), nil); err != nil || status != http.StatusCreated {
		t.Fatalf("Failed to generate program: status %d err %v", status, err)
	}

	today := time.Now().Format(time.DateOnly)

	// No log yet.
	status, err := client.GetJSON(ctx, "/logs/"+today, nil)
	if err != nil {
		t.Fatalf("Failed to get log: %v", err)
	}
	if status != http.StatusNotFound {
		t.Errorf("GET missing log: got status %d, want %d", status, http.StatusNotFound)
	}

	if status, err = client.PostJSON(ctx, "/logs/"+today+"/start", nil, nil); err != nil || status != http.StatusOK {
		t.Fatalf("Failed to start log: status %d err %v", status, err)
	}

	var skipped logResponse
	if status, err = client.PostJSON(ctx, "/logs/"+today+"/skip", nil, &skipped); err != nil {
		t.Fatalf("Failed to skip log: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("skip log: got status %d, want %d", status, http.StatusOK)
	}
	if skipped.Status != "skipped" {
		t.Errorf("status after skip = %q, want skipped", skipped.Status)
	}

	// Invalid date parameter.
	if status, err = client.GetJSON(ctx, "/logs/not-a-date", nil); err != nil {
		t.Fatalf("Failed to get log: %v", err)
	}
	if status != http.StatusNotFound {
		t.Errorf("invalid date: got status %d, want %d", status, http.StatusNotFound)
	}
}

func Test_application_restDayLog(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)
	client := server.Client()

	// Monday-only program, so a Tuesday becomes a rest day.
	prefs := defaultPreferences()
	prefs["daysPerWeek"] = 1
	prefs["preferredWeekdays"] = []int{1}
	if status, err := client.PostJSON(ctx, "/programs", prefs, nil); err != nil || status != http.StatusCreated {
		t.Fatalf("Failed to generate program: status %d err %v", status, err)
	}

	tuesday := "2026-08-25"
	var rest logResponse
	status, err := client.PostJSON(ctx, "/logs/"+tuesday+"/start", nil, &rest)
	if err != nil {
		t.Fatalf("Failed to start log: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("start rest log: got status %d, want %d", status, http.StatusOK)
	}
	if rest.Status != "rest" {
		t.Errorf("status = %q, want rest", rest.Status)
	}
	if len(rest.Exercises) != 0 {
		t.Errorf("rest log has %d exercises, want 0", len(rest.Exercises))
	}
	if rest.StartedAt != nil {
		t.Error("rest log should not be marked started")
	}

	// Adding an exercise turns the rest day into a training day.
	var revived logResponse
	addReq := map[string]any{"exerciseId": "plank", "sets": 3, "targetReps": "30s"}
	if status, err = client.PostJSON(ctx, "/logs/"+tuesday+"/exercises", addReq, &revived); err != nil {
		t.Fatalf("Failed to add exercise: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("add exercise: got status %d, want %d", status, http.StatusOK)
	}
	if revived.Status != "planned" {
		t.Errorf("status after adding exercise = %q, want planned", revived.Status)
	}
}
