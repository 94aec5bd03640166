package program

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jhalme/ironweek/internal/catalog"
	"github.com/jhalme/ironweek/internal/errors"
)

func generatedProgram(t *testing.T) Program {
	t.Helper()
	gen := NewGenerator(catalog.Builtin(), nil)
	p, err := gen.Generate(context.Background(), "user", testPreferences(4), time.Now())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return p
}

func TestAdaptReadinessOutOfRange(t *testing.T) {
	p := generatedProgram(t)
	for _, readiness := range []int{-1, 101} {
		if _, err := Adapt(p, readiness, time.Now()); !errors.Is(err, ErrInvalidReadiness) {
			t.Errorf("Adapt(readiness=%d): expected ErrInvalidReadiness, got %v", readiness, err)
		}
	}
}

func TestAdaptHighReadinessIsIdentity(t *testing.T) {
	p := generatedProgram(t)

	adapted, err := Adapt(p, 55, time.Now())
	if err != nil {
		t.Fatalf("Adapt() error = %v", err)
	}

	if diff := cmp.Diff(p, adapted); diff != "" {
		t.Errorf("expected unchanged program (-original +adapted):\n%s", diff)
	}
}

func TestAdaptThresholdBoundary(t *testing.T) {
	p := generatedProgram(t)

	// 40 is the lowest score that avoids a deload.
	adapted, err := Adapt(p, 40, time.Now())
	if err != nil {
		t.Fatalf("Adapt() error = %v", err)
	}
	if len(adapted.Adaptations) != 0 {
		t.Errorf("readiness 40 should not deload, got %d adaptations", len(adapted.Adaptations))
	}

	adapted, err = Adapt(p, 39, time.Now())
	if err != nil {
		t.Fatalf("Adapt() error = %v", err)
	}
	if len(adapted.Adaptations) != 1 {
		t.Errorf("readiness 39 should deload, got %d adaptations", len(adapted.Adaptations))
	}
}

func TestAdaptLowReadinessDeloads(t *testing.T) {
	p := generatedProgram(t)
	appliedAt := time.Date(2026, 3, 2, 7, 30, 0, 0, time.UTC)

	adapted, err := Adapt(p, 20, appliedAt)
	if err != nil {
		t.Fatalf("Adapt() error = %v", err)
	}

	for i, sess := range adapted.Sessions {
		original := p.Sessions[i]
		if want := original.Title + " (Light)"; sess.Title != want {
			t.Errorf("session title = %q, want %q", sess.Title, want)
		}
		for _, lift := range sess.MainLifts {
			if lift.Sets != 2 || lift.Reps != "10" {
				t.Errorf("deloaded main lift %s = %dx%s, want 2x10", lift.Name, lift.Sets, lift.Reps)
			}
		}
		if len(sess.Accessories) > 1 {
			t.Errorf("session %q kept %d accessories, want at most 1", sess.Title, len(sess.Accessories))
		}
		if len(sess.Accessories) == 1 && len(original.Accessories) > 0 {
			if sess.Accessories[0].ExerciseID != original.Accessories[0].ExerciseID {
				t.Errorf("session %q kept the wrong accessory", sess.Title)
			}
		}
		// Warm-up and cool-down survive a deload untouched.
		if diff := cmp.Diff(original.Warmup, sess.Warmup); diff != "" {
			t.Errorf("warmup changed (-original +adapted):\n%s", diff)
		}
		if diff := cmp.Diff(original.Cooldown, sess.Cooldown); diff != "" {
			t.Errorf("cooldown changed (-original +adapted):\n%s", diff)
		}
	}

	want := Adaptation{AppliedAt: appliedAt, ReadinessScore: 20, Kind: AdaptationDeload}
	if diff := cmp.Diff([]Adaptation{want}, adapted.Adaptations); diff != "" {
		t.Errorf("adaptation history mismatch (-want +got):\n%s", diff)
	}

	// The input program is never mutated.
	if len(p.Adaptations) != 0 {
		t.Error("Adapt mutated its input")
	}
}

func TestAdaptHistoryIsAppendOnly(t *testing.T) {
	p := generatedProgram(t)

	first, err := Adapt(p, 30, time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Adapt() error = %v", err)
	}
	second, err := Adapt(first, 10, time.Date(2026, 3, 3, 7, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Adapt() error = %v", err)
	}

	if got, want := len(second.Adaptations), 2; got != want {
		t.Fatalf("adaptation count = %d, want %d", got, want)
	}
	if second.Adaptations[0].ReadinessScore != 30 || second.Adaptations[1].ReadinessScore != 10 {
		t.Errorf("history out of order: %+v", second.Adaptations)
	}
}
