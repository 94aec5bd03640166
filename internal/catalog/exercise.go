// Package catalog holds the exercise reference data and the query logic the
// program generator uses to fill blueprint slots.
package catalog

// MuscleGroup identifies the primary or secondary muscle an exercise targets.
type MuscleGroup string

// Muscle group constants.
const (
	MuscleChest      MuscleGroup = "chest"
	MuscleBack       MuscleGroup = "back"
	MuscleShoulders  MuscleGroup = "shoulders"
	MuscleBiceps     MuscleGroup = "biceps"
	MuscleTriceps    MuscleGroup = "triceps"
	MuscleQuads      MuscleGroup = "quads"
	MuscleHamstrings MuscleGroup = "hamstrings"
	MuscleGlutes     MuscleGroup = "glutes"
	MuscleCalves     MuscleGroup = "calves"
	MuscleCore       MuscleGroup = "core"
)

// Equipment identifies what an exercise requires to be performed.
type Equipment string

// Equipment constants. EquipmentBodyweight is always considered available.
const (
	EquipmentBodyweight Equipment = "bodyweight"
	EquipmentBarbell    Equipment = "barbell"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentMachine    Equipment = "machine"
	EquipmentCable      Equipment = "cable"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentBand       Equipment = "band"
	EquipmentPullUpBar  Equipment = "pull_up_bar"
)

// Difficulty grades how demanding an exercise is.
type Difficulty string

// Difficulty constants.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// MovementType distinguishes multi-joint lifts from isolation and cardio work.
type MovementType string

// Movement type constants.
const (
	MovementCompound  MovementType = "compound"
	MovementIsolation MovementType = "isolation"
	MovementCardio    MovementType = "cardio"
)

// MovementPattern classifies the mechanical pattern of an exercise.
type MovementPattern string

// Movement pattern constants.
const (
	PatternSquat          MovementPattern = "squat"
	PatternHinge          MovementPattern = "hinge"
	PatternLunge          MovementPattern = "lunge"
	PatternPushHorizontal MovementPattern = "push_horizontal"
	PatternPushVertical   MovementPattern = "push_vertical"
	PatternPullHorizontal MovementPattern = "pull_horizontal"
	PatternPullVertical   MovementPattern = "pull_vertical"
	PatternCore           MovementPattern = "core"
)

// Prescription is the default sets/reps/rest recommendation for an exercise.
type Prescription struct {
	Sets        int
	Reps        string
	RestSeconds int
}

// ExerciseDefinition describes a single movement in the catalog.
//
// Definitions are immutable reference data. Generated programs copy the
// fields they need instead of pointing back at the definition so that later
// catalog edits never change an already generated program.
type ExerciseDefinition struct {
	ID                  string
	Name                string
	NativeName          string
	PrimaryMuscle       MuscleGroup
	SecondaryMuscles    []MuscleGroup
	Equipment           Equipment
	Difficulty          Difficulty
	Type                MovementType
	Pattern             MovementPattern
	Default             Prescription
	DescriptionMarkdown string
}

// TargetsMuscle reports whether the exercise works the given muscle as a
// primary or secondary target.
func (e ExerciseDefinition) TargetsMuscle(muscle MuscleGroup) bool {
	if e.PrimaryMuscle == muscle {
		return true
	}
	for _, m := range e.SecondaryMuscles {
		if m == muscle {
			return true
		}
	}
	return false
}
