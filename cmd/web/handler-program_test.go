package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/jhalme/ironweek/internal/e2etest"
)

func Test_application_programLifecycle(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)
	client := server.Client()

	// No program yet.
	status, err := client.GetJSON(ctx, "/programs/current", nil)
	if err != nil {
		t.Fatalf("Failed to get current program: %v", err)
	}
	if status != http.StatusNotFound {
		t.Errorf("GET /programs/current before generation: got status %d, want %d", status, http.StatusNotFound)
	}

	// Generate.
	var generated programResponse
	status, err = client.PostJSON(ctx, "/programs", defaultPreferences(), &generated)
	if err != nil {
		t.Fatalf("Failed to generate program: %v", err)
	}
	if status != http.StatusCreated {
		t.Fatalf("POST /programs: got status %d, want %d", status, http.StatusCreated)
	}
	if generated.Split != "full_body" {
		t.Errorf("split = %q, want full_body", generated.Split)
	}
	if len(generated.Sessions) != 3 {
		t.Fatalf("got %d sessions, want 3", len(generated.Sessions))
	}
	wantWeekdays := []int{1, 3, 5}
	for i, s := range generated.Sessions {
		if s.Weekday != wantWeekdays[i] {
			t.Errorf("session %d weekday = %d, want %d", i, s.Weekday, wantWeekdays[i])
		}
		if len(s.MainLifts) == 0 {
			t.Errorf("session %d has no main lifts", i)
		}
		if len(s.Warmup) != 2 || len(s.Cooldown) != 1 {
			t.Errorf("session %d warmup/cooldown = %d/%d, want 2/1", i, len(s.Warmup), len(s.Cooldown))
		}
	}
	if !generated.Diagnostics.ValidationPassed {
		t.Error("diagnostics.validationPassed = false, want true")
	}

	// The generated program is now current.
	var current programResponse
	if status, err = client.GetJSON(ctx, "/programs/current", &current); err != nil {
		t.Fatalf("Failed to get current program: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("GET /programs/current: got status %d, want %d", status, http.StatusOK)
	}
	if current.ID != generated.ID {
		t.Errorf("current program id = %q, want %q", current.ID, generated.ID)
	}

	// Low readiness deloads.
	var adapted programResponse
	if status, err = client.PostJSON(ctx, "/programs/current/adapt", map[string]any{"readiness": 25}, &adapted); err != nil {
		t.Fatalf("Failed to adapt program: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("POST /programs/current/adapt: got status %d, want %d", status, http.StatusOK)
	}
	for i, s := range adapted.Sessions {
		if !strings.HasSuffix(s.Title, " (Light)") {
			t.Errorf("session %d title = %q, want (Light) suffix", i, s.Title)
		}
	}
	if len(adapted.Adaptations) != 1 {
		t.Fatalf("got %d adaptations, want 1", len(adapted.Adaptations))
	}
	if adapted.Adaptations[0].Kind != "deload" {
		t.Errorf("adaptation kind = %q, want deload", adapted.Adaptations[0].Kind)
	}
}

func Test_application_programValidation(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)
	client := server.Client()

	// Weekday count not matching frequency.
	prefs := defaultPreferences()
	prefs["daysPerWeek"] = 2
	status, err := client.PostJSON(ctx, "/programs", prefs, nil)
	if err != nil {
		t.Fatalf("Failed to post program: %v", err)
	}
	if status != http.StatusUnprocessableEntity {
		t.Errorf("mismatched weekdays: got status %d, want %d", status, http.StatusUnprocessableEntity)
	}

	// Readiness out of range.
	if status, err = client.PostJSON(ctx, "/programs", defaultPreferences(), nil); err != nil || status != http.StatusCreated {
		t.Fatalf("Failed to generate program: status %d err %v", status, err)
	}
	if status, err = client.PostJSON(ctx, "/programs/current/adapt", map[string]any{"readiness": 101}, nil); err != nil {
		t.Fatalf("Failed to adapt program: %v", err)
	}
	if status != http.StatusUnprocessableEntity {
		t.Errorf("readiness 101: got status %d, want %d", status, http.StatusUnprocessableEntity)
	}
}

func Test_application_sessionsAreIsolatedUsers(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)

	first := server.Client()
	if status, err := first.PostJSON(ctx, "/programs", defaultPreferences(), nil); err != nil || status != http.StatusCreated {
		t.Fatalf("Failed to generate program: status %d err %v", status, err)
	}

	// A fresh client carries a fresh session and sees no program.
	second, err := e2etest.NewClient(server.URL())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	status, err := second.GetJSON(ctx, "/programs/current", nil)
	if err != nil {
		t.Fatalf("Failed to get current program: %v", err)
	}
	if status != http.StatusNotFound {
		t.Errorf("other session program: got status %d, want %d", status, http.StatusNotFound)
	}
}
