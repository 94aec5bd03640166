package catalog_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jhalme/ironweek/internal/catalog"
)

// fixtureCatalog builds a small catalog with known declaration order.
func fixtureCatalog() *catalog.Catalog {
	return catalog.New([]catalog.ExerciseDefinition{
		{
			ID:            "bw-squat",
			Name:          "Bodyweight Squat",
			PrimaryMuscle: catalog.MuscleQuads,
			Equipment:     catalog.EquipmentBodyweight,
			Difficulty:    catalog.DifficultyBeginner,
			Type:          catalog.MovementCompound,
			Pattern:       catalog.PatternSquat,
		},
		{
			ID:            "bb-squat",
			Name:          "Barbell Squat",
			PrimaryMuscle: catalog.MuscleQuads,
			Equipment:     catalog.EquipmentBarbell,
			Difficulty:    catalog.DifficultyIntermediate,
			Type:          catalog.MovementCompound,
			Pattern:       catalog.PatternSquat,
		},
		{
			ID:               "bb-row",
			Name:             "Barbell Row",
			PrimaryMuscle:    catalog.MuscleBack,
			SecondaryMuscles: []catalog.MuscleGroup{catalog.MuscleBiceps},
			Equipment:        catalog.EquipmentBarbell,
			Difficulty:       catalog.DifficultyIntermediate,
			Type:             catalog.MovementCompound,
			Pattern:          catalog.PatternPullHorizontal,
		},
		{
			ID:            "db-curl",
			Name:          "Dumbbell Curl",
			PrimaryMuscle: catalog.MuscleBiceps,
			Equipment:     catalog.EquipmentDumbbell,
			Difficulty:    catalog.DifficultyBeginner,
			Type:          catalog.MovementIsolation,
			Pattern:       catalog.PatternPullHorizontal,
		},
	})
}

func TestQuery(t *testing.T) {
	cat := fixtureCatalog()

	tests := []struct {
		name    string
		filter  catalog.Filter
		wantIDs []string
	}{
		{
			name: "bodyweight always matches regardless of equipment",
			filter: catalog.Filter{
				Pattern: catalog.PatternSquat,
			},
			wantIDs: []string{"bw-squat"},
		},
		{
			name: "equipment widens the candidate set",
			filter: catalog.Filter{
				Pattern:   catalog.PatternSquat,
				Equipment: []catalog.Equipment{catalog.EquipmentBarbell},
			},
			wantIDs: []string{"bw-squat", "bb-squat"},
		},
		{
			name: "exact difficulty matches are used exclusively",
			filter: catalog.Filter{
				Pattern:    catalog.PatternSquat,
				Equipment:  []catalog.Equipment{catalog.EquipmentBarbell},
				Difficulty: catalog.DifficultyIntermediate,
			},
			wantIDs: []string{"bb-squat"},
		},
		{
			name: "difficulty mismatch falls back to all candidates",
			filter: catalog.Filter{
				Pattern:    catalog.PatternSquat,
				Equipment:  []catalog.Equipment{catalog.EquipmentBarbell},
				Difficulty: catalog.DifficultyAdvanced,
			},
			wantIDs: []string{"bw-squat", "bb-squat"},
		},
		{
			name: "secondary muscles count as a match",
			filter: catalog.Filter{
				Muscle:    catalog.MuscleBiceps,
				Equipment: []catalog.Equipment{catalog.EquipmentBarbell, catalog.EquipmentDumbbell},
			},
			wantIDs: []string{"bb-row", "db-curl"},
		},
		{
			name: "type filter narrows to isolation work",
			filter: catalog.Filter{
				Muscle:    catalog.MuscleBiceps,
				Type:      catalog.MovementIsolation,
				Equipment: []catalog.Equipment{catalog.EquipmentBarbell, catalog.EquipmentDumbbell},
			},
			wantIDs: []string{"db-curl"},
		},
		{
			name: "no match returns empty without error",
			filter: catalog.Filter{
				Pattern: catalog.PatternPushVertical,
			},
			wantIDs: nil,
		},
		{
			name: "limit truncates in declaration order",
			filter: catalog.Filter{
				Equipment: []catalog.Equipment{catalog.EquipmentBarbell, catalog.EquipmentDumbbell},
				Limit:     2,
			},
			wantIDs: []string{"bw-squat", "bb-squat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cat.Query(tt.filter)
			var gotIDs []string
			for _, ex := range got {
				gotIDs = append(gotIDs, ex.ID)
			}
			if diff := cmp.Diff(tt.wantIDs, gotIDs); diff != "" {
				t.Errorf("Query() id mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQueryDeterminism(t *testing.T) {
	cat := fixtureCatalog()
	filter := catalog.Filter{
		Equipment: []catalog.Equipment{catalog.EquipmentBarbell, catalog.EquipmentDumbbell},
	}

	first := cat.Query(filter)
	second := cat.Query(filter)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("expected identical results for identical queries (-first +second):\n%s", diff)
	}
}

func TestWithCustom(t *testing.T) {
	cat := fixtureCatalog()
	custom := []catalog.ExerciseDefinition{{
		ID:            "my-split-squat",
		Name:          "My Split Squat",
		PrimaryMuscle: catalog.MuscleQuads,
		Equipment:     catalog.EquipmentBodyweight,
		Difficulty:    catalog.DifficultyBeginner,
		Type:          catalog.MovementCompound,
		Pattern:       catalog.PatternLunge,
	}}

	merged := cat.WithCustom(custom)

	if got, want := merged.Len(), cat.Len()+1; got != want {
		t.Errorf("merged.Len() = %d, want %d", got, want)
	}
	// Custom entries come after built-ins so they can't shadow them.
	got := merged.Query(catalog.Filter{Pattern: catalog.PatternLunge})
	if len(got) != 1 || got[0].ID != "my-split-squat" {
		t.Errorf("expected custom exercise in query result, got %v", got)
	}
	// The original catalog is untouched.
	if got := cat.Query(catalog.Filter{Pattern: catalog.PatternLunge}); len(got) != 0 {
		t.Errorf("expected original catalog unchanged, got %v", got)
	}
}

func TestBuiltinCatalogCoverage(t *testing.T) {
	cat := catalog.Builtin()

	// Every movement pattern except vertical pulling has a bodyweight
	// option so equipment-free generation can fill all slots.
	patterns := []catalog.MovementPattern{
		catalog.PatternSquat,
		catalog.PatternHinge,
		catalog.PatternLunge,
		catalog.PatternPushHorizontal,
		catalog.PatternPushVertical,
		catalog.PatternPullHorizontal,
		catalog.PatternCore,
	}
	for _, pattern := range patterns {
		if got := cat.Query(catalog.Filter{Pattern: pattern}); len(got) == 0 {
			t.Errorf("no bodyweight exercise for pattern %s", pattern)
		}
	}

	// Ids are unique.
	seen := map[string]bool{}
	for _, ex := range cat.All() {
		if seen[ex.ID] {
			t.Errorf("duplicate exercise id %s", ex.ID)
		}
		seen[ex.ID] = true
	}
}
