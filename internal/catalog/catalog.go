package catalog

// Catalog is a read-only collection of exercise definitions.
//
// It is passed explicitly to everything that needs it so that tests can
// substitute a fixture catalog without touching shared state. Query results
// follow declaration order, which keeps generation deterministic.
type Catalog struct {
	exercises []ExerciseDefinition
}

// New creates a catalog from the given definitions. The definitions are
// copied so later changes to the input slice don't leak into the catalog.
func New(definitions []ExerciseDefinition) *Catalog {
	exercises := make([]ExerciseDefinition, len(definitions))
	copy(exercises, definitions)
	return &Catalog{exercises: exercises}
}

// WithCustom returns a new catalog with user-authored definitions appended
// after the built-in ones. The receiver is not modified.
func (c *Catalog) WithCustom(definitions []ExerciseDefinition) *Catalog {
	merged := make([]ExerciseDefinition, 0, len(c.exercises)+len(definitions))
	merged = append(merged, c.exercises...)
	merged = append(merged, definitions...)
	return &Catalog{exercises: merged}
}

// Len returns the number of definitions in the catalog.
func (c *Catalog) Len() int {
	return len(c.exercises)
}

// Get looks up a definition by id. The second return value reports whether
// the id was found.
func (c *Catalog) Get(id string) (ExerciseDefinition, bool) {
	for _, ex := range c.exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return ExerciseDefinition{}, false
}

// All returns a copy of every definition in declaration order.
func (c *Catalog) All() []ExerciseDefinition {
	all := make([]ExerciseDefinition, len(c.exercises))
	copy(all, c.exercises)
	return all
}

// Builtin returns the standard exercise catalog shipped with the application.
func Builtin() *Catalog {
	return New(builtinExercises)
}
