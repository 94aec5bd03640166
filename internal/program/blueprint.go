package program

import "github.com/jhalme/ironweek/internal/catalog"

// slot is one position in a day blueprint. Main-lift slots select by
// movement pattern, accessory slots by target muscle; a slot uses exactly
// one of the two.
type slot struct {
	pattern catalog.MovementPattern
	muscle  catalog.MuscleGroup
	typ     catalog.MovementType
	count   int
}

// dayBlueprint is a reusable template for one training day. Generation
// cycles through a split's blueprints by training-day index, so the same
// weekday gets the same template on every regeneration with equal
// preferences.
type dayBlueprint struct {
	title       string
	focus       string
	intensity   string
	tags        []string
	mainLifts   []slot
	accessories []slot
}

var fullBodyBlueprints = []dayBlueprint{
	{
		title:     "Full Body A",
		focus:     "Whole body, squat emphasis",
		intensity: "moderate",
		tags:      []string{"full-body", "strength"},
		mainLifts: []slot{
			{pattern: catalog.PatternSquat, typ: catalog.MovementCompound, count: 1},
			{pattern: catalog.PatternPushHorizontal, typ: catalog.MovementCompound, count: 1},
			{pattern: catalog.PatternPullHorizontal, typ: catalog.MovementCompound, count: 1},
		},
		accessories: []slot{
			{muscle: catalog.MuscleCore, typ: catalog.MovementIsolation, count: 1},
			{muscle: catalog.MuscleBiceps, typ: catalog.MovementIsolation, count: 1},
		},
	},
	{
		title:     "Full Body B",
		focus:     "Whole body, hinge emphasis",
		intensity: "moderate",
		tags:      []string{"full-body", "strength"},
		mainLifts: []slot{
			{pattern: catalog.PatternHinge, typ: catalog.MovementCompound, count: 1},
			{pattern: catalog.PatternPushVertical, typ: catalog.MovementCompound, count: 1},
			{pattern: catalog.PatternLunge, typ: catalog.MovementCompound, count: 1},
		},
		accessories: []slot{
			{muscle: catalog.MuscleTriceps, typ: catalog.MovementIsolation, count: 1},
			{muscle: catalog.MuscleCore, typ: catalog.MovementIsolation, count: 1},
		},
	},
}

var upperLowerBlueprints = []dayBlueprint{
	{
		title:     "Upper Body",
		focus:     "Chest, back, shoulders and arms",
		intensity: "moderate",
		tags:      []string{"upper", "hypertrophy"},
		mainLifts: []slot{
			{pattern: catalog.PatternPushHorizontal, typ: catalog.MovementCompound, count: 1},
			{pattern: catalog.PatternPullHorizontal, typ: catalog.MovementCompound, count: 1},
			{pattern: catalog.PatternPushVertical, typ: catalog.MovementCompound, count: 1},
		},
		accessories: []slot{
			{muscle: catalog.MuscleBiceps, typ: catalog.MovementIsolation, count: 1},
			{muscle: catalog.MuscleTriceps, typ: catalog.MovementIsolation, count: 1},
		},
	},
	{
		title:     "Lower Body",
		focus:     "Quads, hamstrings, glutes and core",
		intensity: "moderate",
		tags:      []string{"lower", "hypertrophy"},
		mainLifts: []slot{
			{pattern: catalog.PatternSquat, typ: catalog.MovementCompound, count: 1},
			{pattern: catalog.PatternHinge, typ: catalog.MovementCompound, count: 1},
		},
		accessories: []slot{
			{muscle: catalog.MuscleCalves, typ: catalog.MovementIsolation, count: 1},
			{muscle: catalog.MuscleCore, typ: catalog.MovementIsolation, count: 1},
		},
	},
}

var pushPullLegsBlueprints = []dayBlueprint{
	{
		title:     "Push",
		focus:     "Chest, shoulders and triceps",
		intensity: "moderate",
		tags:      []string{"push", "hypertrophy"},
		mainLifts: []slot{
			{pattern: catalog.PatternPushHorizontal, typ: catalog.MovementCompound, count: 1},
			{pattern: catalog.PatternPushVertical, typ: catalog.MovementCompound, count: 1},
		},
		accessories: []slot{
			{muscle: catalog.MuscleTriceps, typ: catalog.MovementIsolation, count: 1},
			{muscle: catalog.MuscleShoulders, typ: catalog.MovementIsolation, count: 1},
		},
	},
	{
		title:     "Pull",
		focus:     "Back and biceps",
		intensity: "moderate",
		tags:      []string{"pull", "hypertrophy"},
		mainLifts: []slot{
			{pattern: catalog.PatternPullHorizontal, typ: catalog.MovementCompound, count: 1},
			{pattern: catalog.PatternPullVertical, typ: catalog.MovementCompound, count: 1},
		},
		accessories: []slot{
			{muscle: catalog.MuscleBiceps, typ: catalog.MovementIsolation, count: 1},
			{muscle: catalog.MuscleCore, typ: catalog.MovementIsolation, count: 1},
		},
	},
	{
		title:     "Legs",
		focus:     "Quads, hamstrings and calves",
		intensity: "moderate",
		tags:      []string{"legs", "hypertrophy"},
		mainLifts: []slot{
			{pattern: catalog.PatternSquat, typ: catalog.MovementCompound, count: 1},
			{pattern: catalog.PatternHinge, typ: catalog.MovementCompound, count: 1},
			{pattern: catalog.PatternLunge, typ: catalog.MovementCompound, count: 1},
		},
		accessories: []slot{
			{muscle: catalog.MuscleCalves, typ: catalog.MovementIsolation, count: 1},
		},
	},
}

// blueprintsForSplit returns the blueprint cycle for a split.
func blueprintsForSplit(split Split) []dayBlueprint {
	switch split {
	case SplitUpperLower:
		return upperLowerBlueprints
	case SplitPushPullLegs:
		return pushPullLegsBlueprints
	default:
		return fullBodyBlueprints
	}
}
