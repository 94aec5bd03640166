package catalog

// DefaultQueryLimit caps query results when the caller doesn't set a limit.
const DefaultQueryLimit = 5

// Filter narrows the catalog down to exercises usable for one blueprint slot.
//
// Zero values mean "no filter" for the optional fields. Equipment lists what
// the caller has available; bodyweight exercises always match regardless.
type Filter struct {
	Pattern    MovementPattern
	Muscle     MuscleGroup
	Equipment  []Equipment
	Difficulty Difficulty
	Type       MovementType
	Limit      int
}

// Query returns exercises matching the filter in catalog declaration order.
//
// Difficulty is a soft preference: when at least one candidate matches the
// requested difficulty exactly, only those are returned; otherwise the full
// candidate set is used so a difficulty mismatch alone never empties the
// result. An empty result is not an error; callers treat it as an
// unfillable slot.
func (c *Catalog) Query(f Filter) []ExerciseDefinition {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultQueryLimit
	}

	var candidates []ExerciseDefinition
	for _, ex := range c.exercises {
		if !equipmentAvailable(ex.Equipment, f.Equipment) {
			continue
		}
		if f.Muscle != "" && !ex.TargetsMuscle(f.Muscle) {
			continue
		}
		if f.Type != "" && ex.Type != f.Type {
			continue
		}
		if f.Pattern != "" && ex.Pattern != f.Pattern {
			continue
		}
		candidates = append(candidates, ex)
	}

	if f.Difficulty != "" {
		var exact []ExerciseDefinition
		for _, ex := range candidates {
			if ex.Difficulty == f.Difficulty {
				exact = append(exact, ex)
			}
		}
		if len(exact) > 0 {
			candidates = exact
		}
	}

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// equipmentAvailable reports whether the required equipment is in the
// available set. Bodyweight never requires anything.
func equipmentAvailable(required Equipment, available []Equipment) bool {
	if required == EquipmentBodyweight {
		return true
	}
	for _, eq := range available {
		if eq == required {
			return true
		}
	}
	return false
}
