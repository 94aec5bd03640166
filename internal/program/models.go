// Package program generates weekly training programs from user preferences
// and a catalog of exercises, and adapts them to reported readiness.
package program

import (
	"time"

	"github.com/jhalme/ironweek/internal/catalog"
)

// Goal is the user's declared training goal.
type Goal string

// Goal constants.
const (
	GoalStrength   Goal = "strength"
	GoalMuscle     Goal = "muscle"
	GoalEndurance  Goal = "endurance"
	GoalGeneralFit Goal = "general_fitness"
)

// Preferences captures one generation request. A value is built per request
// and never mutated; regeneration always starts from a fresh Preferences.
type Preferences struct {
	DaysPerWeek       int
	PreferredWeekdays []time.Weekday
	SessionMinutes    int
	Equipment         []catalog.Equipment
	Goal              Goal
	Experience        catalog.Difficulty
}

// ExerciseInstance is a snapshot of a catalog exercise inside a session.
//
// It copies the prescription that was current at generation time instead of
// referencing the catalog entry, so later catalog edits never retroactively
// change a generated program.
type ExerciseInstance struct {
	ExerciseID  string
	Name        string
	Type        catalog.MovementType
	Muscle      catalog.MuscleGroup
	Sets        int
	Reps        string
	RestSeconds int
}

// Session is one generated training day.
type Session struct {
	ID              string
	Weekday         time.Weekday
	Title           string
	Focus           string
	DurationMinutes int
	Intensity       string
	Warmup          []ExerciseInstance
	MainLifts       []ExerciseInstance
	Accessories     []ExerciseInstance
	Cooldown        []ExerciseInstance
	Tags            []string
	Rationale       string
}

// ExerciseIDs returns the catalog ids of all generated exercises in the
// session. The fixed warm-up and cool-down entries carry no catalog id and
// are therefore excluded.
func (s Session) ExerciseIDs() []string {
	var ids []string
	for _, ex := range s.MainLifts {
		ids = append(ids, ex.ExerciseID)
	}
	for _, ex := range s.Accessories {
		ids = append(ids, ex.ExerciseID)
	}
	return ids
}

// Adaptation records one readiness-triggered transform applied to a program.
type Adaptation struct {
	AppliedAt      time.Time
	ReadinessScore int
	Kind           string
}

// Diagnostics reports how generation went. FallbackTriggered signals that at
// least one session ended up without a main lift, usually because the
// available equipment couldn't fill a slot.
type Diagnostics struct {
	ValidationPassed  bool
	FallbackTriggered bool
	FallbackReason    string
	SplitRationale    string
}

// Program is a generated weekly schedule. Regeneration supersedes the whole
// value; programs are never merged.
type Program struct {
	ID          string
	UserID      string
	GeneratedAt time.Time
	Preferences Preferences
	Split       Split
	Sessions    []Session
	Adaptations []Adaptation
	Diagnostics Diagnostics
}

// SessionForWeekday returns the session scheduled on the given weekday.
func (p Program) SessionForWeekday(day time.Weekday) (Session, bool) {
	for _, sess := range p.Sessions {
		if sess.Weekday == day {
			return sess, true
		}
	}
	return Session{}, false
}

// SessionByID returns the session with the given id.
func (p Program) SessionByID(id string) (Session, bool) {
	for _, sess := range p.Sessions {
		if sess.ID == id {
			return sess, true
		}
	}
	return Session{}, false
}
