package catalog

// builtinExercises is the standard movement library. Declaration order
// matters: queries return the first matches, so the preferred default for
// each pattern comes first. Every pattern except vertical pulling has a
// bodyweight option so that equipment-free users still get full sessions.
//
//nolint:gochecknoglobals // immutable reference data.
var builtinExercises = []ExerciseDefinition{
	// Squat pattern.
	{
		ID:               "barbell-back-squat",
		Name:             "Barbell Back Squat",
		NativeName:       "Takakyykky",
		PrimaryMuscle:    MuscleQuads,
		SecondaryMuscles: []MuscleGroup{MuscleGlutes, MuscleCore},
		Equipment:        EquipmentBarbell,
		Difficulty:       DifficultyIntermediate,
		Type:             MovementCompound,
		Pattern:          PatternSquat,
		Default:          Prescription{Sets: 4, Reps: "6-8", RestSeconds: 120},
		DescriptionMarkdown: "Bar on the upper back, feet shoulder width apart. " +
			"Sit down between the heels and drive back up without letting the knees cave in.",
	},
	{
		ID:               "goblet-squat",
		Name:             "Goblet Squat",
		NativeName:       "Goblet-kyykky",
		PrimaryMuscle:    MuscleQuads,
		SecondaryMuscles: []MuscleGroup{MuscleGlutes},
		Equipment:        EquipmentDumbbell,
		Difficulty:       DifficultyBeginner,
		Type:             MovementCompound,
		Pattern:          PatternSquat,
		Default:          Prescription{Sets: 3, Reps: "8-10", RestSeconds: 90},
		DescriptionMarkdown: "Hold a dumbbell against the chest and squat between the heels. " +
			"The counterweight makes it easier to stay upright than with a barbell.",
	},
	{
		ID:                  "bodyweight-squat",
		Name:                "Bodyweight Squat",
		NativeName:          "Kyykky",
		PrimaryMuscle:       MuscleQuads,
		SecondaryMuscles:    []MuscleGroup{MuscleGlutes},
		Equipment:           EquipmentBodyweight,
		Difficulty:          DifficultyBeginner,
		Type:                MovementCompound,
		Pattern:             PatternSquat,
		Default:             Prescription{Sets: 3, Reps: "12-15", RestSeconds: 60},
		DescriptionMarkdown: "Squat with arms extended forward for balance. Full depth, controlled tempo.",
	},
	{
		ID:                  "leg-press",
		Name:                "Leg Press",
		NativeName:          "Jalkaprässi",
		PrimaryMuscle:       MuscleQuads,
		SecondaryMuscles:    []MuscleGroup{MuscleGlutes},
		Equipment:           EquipmentMachine,
		Difficulty:          DifficultyBeginner,
		Type:                MovementCompound,
		Pattern:             PatternSquat,
		Default:             Prescription{Sets: 3, Reps: "10-12", RestSeconds: 90},
		DescriptionMarkdown: "Press the sled away without locking the knees. Keep the lower back on the pad.",
	},
	{
		ID:                  "pistol-squat",
		Name:                "Pistol Squat",
		NativeName:          "Pistoolikyykky",
		PrimaryMuscle:       MuscleQuads,
		SecondaryMuscles:    []MuscleGroup{MuscleGlutes, MuscleCore},
		Equipment:           EquipmentBodyweight,
		Difficulty:          DifficultyAdvanced,
		Type:                MovementCompound,
		Pattern:             PatternSquat,
		Default:             Prescription{Sets: 3, Reps: "5-8", RestSeconds: 120},
		DescriptionMarkdown: "Single-leg squat with the free leg extended forward. Requires strength and mobility.",
	},

	// Hinge pattern.
	{
		ID:               "barbell-deadlift",
		Name:             "Barbell Deadlift",
		NativeName:       "Maastaveto",
		PrimaryMuscle:    MuscleHamstrings,
		SecondaryMuscles: []MuscleGroup{MuscleGlutes, MuscleBack, MuscleCore},
		Equipment:        EquipmentBarbell,
		Difficulty:       DifficultyIntermediate,
		Type:             MovementCompound,
		Pattern:          PatternHinge,
		Default:          Prescription{Sets: 4, Reps: "6-8", RestSeconds: 120},
		DescriptionMarkdown: "Hinge at the hips with a neutral spine and stand up with the bar. " +
			"The bar stays in contact with the legs the whole way.",
	},
	{
		ID:                  "romanian-deadlift",
		Name:                "Romanian Deadlift",
		NativeName:          "Romanialainen maastaveto",
		PrimaryMuscle:       MuscleHamstrings,
		SecondaryMuscles:    []MuscleGroup{MuscleGlutes, MuscleBack},
		Equipment:           EquipmentBarbell,
		Difficulty:          DifficultyIntermediate,
		Type:                MovementCompound,
		Pattern:             PatternHinge,
		Default:             Prescription{Sets: 3, Reps: "8-10", RestSeconds: 90},
		DescriptionMarkdown: "Push the hips back with a slight knee bend until the hamstrings stretch, then stand up.",
	},
	{
		ID:                  "kettlebell-swing",
		Name:                "Kettlebell Swing",
		NativeName:          "Kahvakuulaheilautus",
		PrimaryMuscle:       MuscleGlutes,
		SecondaryMuscles:    []MuscleGroup{MuscleHamstrings, MuscleCore},
		Equipment:           EquipmentKettlebell,
		Difficulty:          DifficultyBeginner,
		Type:                MovementCompound,
		Pattern:             PatternHinge,
		Default:             Prescription{Sets: 3, Reps: "12-15", RestSeconds: 60},
		DescriptionMarkdown: "Explosive hip hinge. The arms only guide the bell; the hips produce the power.",
	},
	{
		ID:                  "glute-bridge",
		Name:                "Glute Bridge",
		NativeName:          "Lantionnosto",
		PrimaryMuscle:       MuscleGlutes,
		SecondaryMuscles:    []MuscleGroup{MuscleHamstrings},
		Equipment:           EquipmentBodyweight,
		Difficulty:          DifficultyBeginner,
		Type:                MovementCompound,
		Pattern:             PatternHinge,
		Default:             Prescription{Sets: 3, Reps: "12-15", RestSeconds: 60},
		DescriptionMarkdown: "Lying on the back, drive the hips up by squeezing the glutes. Pause at the top.",
	},

	// Lunge pattern.
	{
		ID:                  "walking-lunge",
		Name:                "Walking Lunge",
		NativeName:          "Askelkyykky",
		PrimaryMuscle:       MuscleQuads,
		SecondaryMuscles:    []MuscleGroup{MuscleGlutes},
		Equipment:           EquipmentBodyweight,
		Difficulty:          DifficultyBeginner,
		Type:                MovementCompound,
		Pattern:             PatternLunge,
		Default:             Prescription{Sets: 3, Reps: "10-12", RestSeconds: 60},
		DescriptionMarkdown: "Alternating forward lunges. The rear knee lightly touches the floor on each step.",
	},
	{
		ID:                  "bulgarian-split-squat",
		Name:                "Bulgarian Split Squat",
		NativeName:          "Bulgarialainen askelkyykky",
		PrimaryMuscle:       MuscleQuads,
		SecondaryMuscles:    []MuscleGroup{MuscleGlutes},
		Equipment:           EquipmentDumbbell,
		Difficulty:          DifficultyIntermediate,
		Type:                MovementCompound,
		Pattern:             PatternLunge,
		Default:             Prescription{Sets: 3, Reps: "8-10", RestSeconds: 90},
		DescriptionMarkdown: "Rear foot elevated on a bench, dumbbells in hand. Most of the weight stays on the front leg.",
	},

	// Horizontal push.
	{
		ID:                  "barbell-bench-press",
		Name:                "Barbell Bench Press",
		NativeName:          "Penkkipunnerrus",
		PrimaryMuscle:       MuscleChest,
		SecondaryMuscles:    []MuscleGroup{MuscleTriceps, MuscleShoulders},
		Equipment:           EquipmentBarbell,
		Difficulty:          DifficultyIntermediate,
		Type:                MovementCompound,
		Pattern:             PatternPushHorizontal,
		Default:             Prescription{Sets: 4, Reps: "6-8", RestSeconds: 120},
		DescriptionMarkdown: "Lower the bar to mid chest with the shoulder blades pinned back and press to lockout.",
	},
	{
		ID:                  "dumbbell-bench-press",
		Name:                "Dumbbell Bench Press",
		NativeName:          "Käsipainopunnerrus",
		PrimaryMuscle:       MuscleChest,
		SecondaryMuscles:    []MuscleGroup{MuscleTriceps, MuscleShoulders},
		Equipment:           EquipmentDumbbell,
		Difficulty:          DifficultyBeginner,
		Type:                MovementCompound,
		Pattern:             PatternPushHorizontal,
		Default:             Prescription{Sets: 3, Reps: "8-10", RestSeconds: 90},
		DescriptionMarkdown: "Like the barbell press but with a longer range of motion and independent arms.",
	},
	{
		ID:                  "push-up",
		Name:                "Push-Up",
		NativeName:          "Punnerrus",
		PrimaryMuscle:       MuscleChest,
		SecondaryMuscles:    []MuscleGroup{MuscleTriceps, MuscleShoulders, MuscleCore},
		Equipment:           EquipmentBodyweight,
		Difficulty:          DifficultyBeginner,
		Type:                MovementCompound,
		Pattern:             PatternPushHorizontal,
		Default:             Prescription{Sets: 3, Reps: "10-15", RestSeconds: 60},
		DescriptionMarkdown: "Rigid plank from hands to heels. Chest to the floor and press back up.",
	},

	// Vertical push.
	{
		ID:                  "overhead-press",
		Name:                "Overhead Press",
		NativeName:          "Pystypunnerrus",
		PrimaryMuscle:       MuscleShoulders,
		SecondaryMuscles:    []MuscleGroup{MuscleTriceps, MuscleCore},
		Equipment:           EquipmentBarbell,
		Difficulty:          DifficultyIntermediate,
		Type:                MovementCompound,
		Pattern:             PatternPushVertical,
		Default:             Prescription{Sets: 4, Reps: "6-8", RestSeconds: 120},
		DescriptionMarkdown: "Press the bar from the shoulders to overhead without leaning back excessively.",
	},
	{
		ID:                  "dumbbell-shoulder-press",
		Name:                "Dumbbell Shoulder Press",
		NativeName:          "Käsipainoilla pystypunnerrus",
		PrimaryMuscle:       MuscleShoulders,
		SecondaryMuscles:    []MuscleGroup{MuscleTriceps},
		Equipment:           EquipmentDumbbell,
		Difficulty:          DifficultyBeginner,
		Type:                MovementCompound,
		Pattern:             PatternPushVertical,
		Default:             Prescription{Sets: 3, Reps: "8-10", RestSeconds: 90},
		DescriptionMarkdown: "Seated or standing press with dumbbells. Keep the ribs down and the core braced.",
	},
	{
		ID:                  "pike-push-up",
		Name:                "Pike Push-Up",
		NativeName:          "Pike-punnerrus",
		PrimaryMuscle:       MuscleShoulders,
		SecondaryMuscles:    []MuscleGroup{MuscleTriceps},
		Equipment:           EquipmentBodyweight,
		Difficulty:          DifficultyIntermediate,
		Type:                MovementCompound,
		Pattern:             PatternPushVertical,
		Default:             Prescription{Sets: 3, Reps: "8-12", RestSeconds: 60},
		DescriptionMarkdown: "Push-up performed in a pike position so the load shifts to the shoulders.",
	},

	// Horizontal pull.
	{
		ID:                  "barbell-row",
		Name:                "Barbell Row",
		NativeName:          "Kulmasoutu",
		PrimaryMuscle:       MuscleBack,
		SecondaryMuscles:    []MuscleGroup{MuscleBiceps, MuscleShoulders},
		Equipment:           EquipmentBarbell,
		Difficulty:          DifficultyIntermediate,
		Type:                MovementCompound,
		Pattern:             PatternPullHorizontal,
		Default:             Prescription{Sets: 4, Reps: "6-8", RestSeconds: 120},
		DescriptionMarkdown: "Hinged over with a flat back, row the bar to the lower ribs.",
	},
	{
		ID:                  "dumbbell-row",
		Name:                "One-Arm Dumbbell Row",
		NativeName:          "Yhden käden soutu",
		PrimaryMuscle:       MuscleBack,
		SecondaryMuscles:    []MuscleGroup{MuscleBiceps},
		Equipment:           EquipmentDumbbell,
		Difficulty:          DifficultyBeginner,
		Type:                MovementCompound,
		Pattern:             PatternPullHorizontal,
		Default:             Prescription{Sets: 3, Reps: "8-10", RestSeconds: 60},
		DescriptionMarkdown: "One hand braced on a bench, row the dumbbell to the hip without rotating the torso.",
	},
	{
		ID:                  "inverted-row",
		Name:                "Inverted Row",
		NativeName:          "Vaakasoutu",
		PrimaryMuscle:       MuscleBack,
		SecondaryMuscles:    []MuscleGroup{MuscleBiceps, MuscleCore},
		Equipment:           EquipmentBodyweight,
		Difficulty:          DifficultyBeginner,
		Type:                MovementCompound,
		Pattern:             PatternPullHorizontal,
		Default:             Prescription{Sets: 3, Reps: "8-12", RestSeconds: 60},
		DescriptionMarkdown: "Row the body up under a bar or table edge, keeping the body in a straight line.",
	},
	{
		ID:                  "seated-cable-row",
		Name:                "Seated Cable Row",
		NativeName:          "Alataljasoutu",
		PrimaryMuscle:       MuscleBack,
		SecondaryMuscles:    []MuscleGroup{MuscleBiceps},
		Equipment:           EquipmentCable,
		Difficulty:          DifficultyBeginner,
		Type:                MovementCompound,
		Pattern:             PatternPullHorizontal,
		Default:             Prescription{Sets: 3, Reps: "10-12", RestSeconds: 60},
		DescriptionMarkdown: "Pull the handle to the stomach with an upright torso. Squeeze the shoulder blades together.",
	},

	// Vertical pull.
	{
		ID:                  "pull-up",
		Name:                "Pull-Up",
		NativeName:          "Leuanveto",
		PrimaryMuscle:       MuscleBack,
		SecondaryMuscles:    []MuscleGroup{MuscleBiceps, MuscleCore},
		Equipment:           EquipmentPullUpBar,
		Difficulty:          DifficultyIntermediate,
		Type:                MovementCompound,
		Pattern:             PatternPullVertical,
		Default:             Prescription{Sets: 4, Reps: "6-8", RestSeconds: 120},
		DescriptionMarkdown: "From a dead hang, pull the chin over the bar without swinging.",
	},
	{
		ID:                  "lat-pulldown",
		Name:                "Lat Pulldown",
		NativeName:          "Ylätaljaveto",
		PrimaryMuscle:       MuscleBack,
		SecondaryMuscles:    []MuscleGroup{MuscleBiceps},
		Equipment:           EquipmentCable,
		Difficulty:          DifficultyBeginner,
		Type:                MovementCompound,
		Pattern:             PatternPullVertical,
		Default:             Prescription{Sets: 3, Reps: "10-12", RestSeconds: 90},
		DescriptionMarkdown: "Pull the bar to the collarbones with the chest up. The machine alternative to pull-ups.",
	},
	{
		ID:                  "band-pulldown",
		Name:                "Band Pulldown",
		NativeName:          "Kuminauhaveto",
		PrimaryMuscle:       MuscleBack,
		SecondaryMuscles:    []MuscleGroup{MuscleBiceps},
		Equipment:           EquipmentBand,
		Difficulty:          DifficultyBeginner,
		Type:                MovementCompound,
		Pattern:             PatternPullVertical,
		Default:             Prescription{Sets: 3, Reps: "12-15", RestSeconds: 60},
		DescriptionMarkdown: "Kneeling pulldown with a band anchored overhead. A home alternative to the lat pulldown.",
	},

	// Core.
	{
		ID:                  "plank",
		Name:                "Plank",
		NativeName:          "Lankku",
		PrimaryMuscle:       MuscleCore,
		SecondaryMuscles:    []MuscleGroup{MuscleShoulders},
		Equipment:           EquipmentBodyweight,
		Difficulty:          DifficultyBeginner,
		Type:                MovementIsolation,
		Pattern:             PatternCore,
		Default:             Prescription{Sets: 3, Reps: "30-60s", RestSeconds: 60},
		DescriptionMarkdown: "Forearm hold with a straight line from head to heels. Don't let the hips sag.",
	},
	{
		ID:                  "hanging-leg-raise",
		Name:                "Hanging Leg Raise",
		NativeName:          "Riipuntajalannosto",
		PrimaryMuscle:       MuscleCore,
		SecondaryMuscles:    nil,
		Equipment:           EquipmentPullUpBar,
		Difficulty:          DifficultyIntermediate,
		Type:                MovementIsolation,
		Pattern:             PatternCore,
		Default:             Prescription{Sets: 3, Reps: "8-12", RestSeconds: 60},
		DescriptionMarkdown: "Hanging from a bar, raise the legs to horizontal without swinging.",
	},
	{
		ID:                  "crunch",
		Name:                "Crunch",
		NativeName:          "Vatsarutistus",
		PrimaryMuscle:       MuscleCore,
		SecondaryMuscles:    nil,
		Equipment:           EquipmentBodyweight,
		Difficulty:          DifficultyBeginner,
		Type:                MovementIsolation,
		Pattern:             PatternCore,
		Default:             Prescription{Sets: 3, Reps: "15-20", RestSeconds: 45},
		DescriptionMarkdown: "Curl the upper back off the floor and lower under control.",
	},

	// Isolation accessories.
	{
		ID:                  "barbell-curl",
		Name:                "Barbell Curl",
		NativeName:          "Hauiskääntö tangolla",
		PrimaryMuscle:       MuscleBiceps,
		SecondaryMuscles:    nil,
		Equipment:           EquipmentBarbell,
		Difficulty:          DifficultyBeginner,
		Type:                MovementIsolation,
		Pattern:             PatternPullHorizontal,
		Default:             Prescription{Sets: 3, Reps: "10-12", RestSeconds: 60},
		DescriptionMarkdown: "Curl the bar with the elbows pinned to the sides. No swinging.",
	},
	{
		ID:                  "dumbbell-curl",
		Name:                "Dumbbell Curl",
		NativeName:          "Hauiskääntö käsipainoilla",
		PrimaryMuscle:       MuscleBiceps,
		SecondaryMuscles:    nil,
		Equipment:           EquipmentDumbbell,
		Difficulty:          DifficultyBeginner,
		Type:                MovementIsolation,
		Pattern:             PatternPullHorizontal,
		Default:             Prescription{Sets: 3, Reps: "10-12", RestSeconds: 60},
		DescriptionMarkdown: "Alternating or simultaneous curls with a full range of motion.",
	},
	{
		ID:                  "triceps-pushdown",
		Name:                "Triceps Pushdown",
		NativeName:          "Ojentajapunnerrus taljassa",
		PrimaryMuscle:       MuscleTriceps,
		SecondaryMuscles:    nil,
		Equipment:           EquipmentCable,
		Difficulty:          DifficultyBeginner,
		Type:                MovementIsolation,
		Pattern:             PatternPushHorizontal,
		Default:             Prescription{Sets: 3, Reps: "10-12", RestSeconds: 60},
		DescriptionMarkdown: "Elbows at the sides, extend the arms fully and control the return.",
	},
	{
		ID:                  "bench-dip",
		Name:                "Bench Dip",
		NativeName:          "Penkkidippi",
		PrimaryMuscle:       MuscleTriceps,
		SecondaryMuscles:    []MuscleGroup{MuscleChest, MuscleShoulders},
		Equipment:           EquipmentBodyweight,
		Difficulty:          DifficultyBeginner,
		Type:                MovementIsolation,
		Pattern:             PatternPushHorizontal,
		Default:             Prescription{Sets: 3, Reps: "10-15", RestSeconds: 60},
		DescriptionMarkdown: "Hands on a bench behind the back, lower until the upper arms are parallel to the floor.",
	},
	{
		ID:                  "lateral-raise",
		Name:                "Lateral Raise",
		NativeName:          "Vipunosto sivulle",
		PrimaryMuscle:       MuscleShoulders,
		SecondaryMuscles:    nil,
		Equipment:           EquipmentDumbbell,
		Difficulty:          DifficultyBeginner,
		Type:                MovementIsolation,
		Pattern:             PatternPushVertical,
		Default:             Prescription{Sets: 3, Reps: "12-15", RestSeconds: 45},
		DescriptionMarkdown: "Raise light dumbbells to shoulder height with a slight elbow bend.",
	},
	{
		ID:                  "band-pull-apart",
		Name:                "Band Pull-Apart",
		NativeName:          "Kuminauhan levitys",
		PrimaryMuscle:       MuscleShoulders,
		SecondaryMuscles:    []MuscleGroup{MuscleBack},
		Equipment:           EquipmentBand,
		Difficulty:          DifficultyBeginner,
		Type:                MovementIsolation,
		Pattern:             PatternPullHorizontal,
		Default:             Prescription{Sets: 3, Reps: "15-20", RestSeconds: 45},
		DescriptionMarkdown: "Arms extended forward, pull the band apart until it touches the chest.",
	},
	{
		ID:                  "leg-curl",
		Name:                "Leg Curl",
		NativeName:          "Reiden koukistus",
		PrimaryMuscle:       MuscleHamstrings,
		SecondaryMuscles:    nil,
		Equipment:           EquipmentMachine,
		Difficulty:          DifficultyBeginner,
		Type:                MovementIsolation,
		Pattern:             PatternHinge,
		Default:             Prescription{Sets: 3, Reps: "10-12", RestSeconds: 60},
		DescriptionMarkdown: "Curl the pad toward the glutes and resist on the way back.",
	},
	{
		ID:                  "leg-extension",
		Name:                "Leg Extension",
		NativeName:          "Reiden ojennus",
		PrimaryMuscle:       MuscleQuads,
		SecondaryMuscles:    nil,
		Equipment:           EquipmentMachine,
		Difficulty:          DifficultyBeginner,
		Type:                MovementIsolation,
		Pattern:             PatternSquat,
		Default:             Prescription{Sets: 3, Reps: "10-12", RestSeconds: 60},
		DescriptionMarkdown: "Extend the knees fully and lower under control. Quad isolation.",
	},
	{
		ID:                  "standing-calf-raise",
		Name:                "Standing Calf Raise",
		NativeName:          "Pohjenousu",
		PrimaryMuscle:       MuscleCalves,
		SecondaryMuscles:    nil,
		Equipment:           EquipmentBodyweight,
		Difficulty:          DifficultyBeginner,
		Type:                MovementIsolation,
		Pattern:             PatternSquat,
		Default:             Prescription{Sets: 3, Reps: "15-20", RestSeconds: 45},
		DescriptionMarkdown: "Rise onto the toes, pause, and lower the heels below the step for a stretch.",
	},

	// Conditioning.
	{
		ID:                  "burpee",
		Name:                "Burpee",
		NativeName:          "Burpee",
		PrimaryMuscle:       MuscleCore,
		SecondaryMuscles:    []MuscleGroup{MuscleChest, MuscleQuads},
		Equipment:           EquipmentBodyweight,
		Difficulty:          DifficultyIntermediate,
		Type:                MovementCardio,
		Pattern:             PatternSquat,
		Default:             Prescription{Sets: 3, Reps: "10-15", RestSeconds: 60},
		DescriptionMarkdown: "Squat, kick back to a push-up, return, and jump. Full-body conditioning.",
	},
	{
		ID:                  "mountain-climber",
		Name:                "Mountain Climber",
		NativeName:          "Vuorikiipeilijä",
		PrimaryMuscle:       MuscleCore,
		SecondaryMuscles:    []MuscleGroup{MuscleShoulders},
		Equipment:           EquipmentBodyweight,
		Difficulty:          DifficultyBeginner,
		Type:                MovementCardio,
		Pattern:             PatternCore,
		Default:             Prescription{Sets: 3, Reps: "30-45s", RestSeconds: 45},
		DescriptionMarkdown: "From a push-up position, drive the knees alternately toward the chest at pace.",
	},
}
