package program

import (
	"log/slog"
	"slices"
	"time"

	"github.com/jhalme/ironweek/internal/errors"
)

// ErrInvalidReadiness is returned for readiness scores outside 0 to 100.
var ErrInvalidReadiness = errors.NewSentinel("invalid readiness score")

// deloadThreshold is the readiness score below which a deload is applied.
const deloadThreshold = 40

// Deload prescription. Two easy sets of ten keep the movement pattern
// trained while cutting weekly volume roughly in half.
const (
	deloadSets = 2
	deloadReps = "10"
)

// AdaptationDeload names the only adaptation kind currently applied.
const AdaptationDeload = "deload"

// Adapt transforms a program according to a readiness score between 0 and
// 100. Scores at or above the deload threshold leave the program untouched.
// Below it every session is lightened: titles are marked, main lifts drop to
// two easy sets, and accessories are cut down to the first one. Each applied
// adaptation is appended to the program's history; earlier entries are never
// rewritten.
func Adapt(p Program, readiness int, now time.Time) (Program, error) {
	if readiness < 0 || readiness > 100 {
		return Program{}, errors.Wrap(ErrInvalidReadiness, "readiness must be between 0 and 100",
			slog.Int("readiness", readiness))
	}
	if readiness >= deloadThreshold {
		return p, nil
	}

	sessions := make([]Session, len(p.Sessions))
	for i, session := range p.Sessions {
		sessions[i] = deloadSession(session)
	}
	p.Sessions = sessions
	p.Adaptations = append(slices.Clone(p.Adaptations), Adaptation{
		AppliedAt:      now,
		ReadinessScore: readiness,
		Kind:           AdaptationDeload,
	})
	return p, nil
}

// deloadSession lightens one session without touching the warm-up or
// cool-down.
func deloadSession(session Session) Session {
	session.Title += " (Light)"
	session.Intensity = "light"

	mains := make([]ExerciseInstance, len(session.MainLifts))
	for i, lift := range session.MainLifts {
		lift.Sets = deloadSets
		lift.Reps = deloadReps
		mains[i] = lift
	}
	session.MainLifts = mains

	if len(session.Accessories) > 1 {
		session.Accessories = slices.Clone(session.Accessories[:1])
	}
	return session
}
