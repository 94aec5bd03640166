package program

// Split names the weekly training split a program is built on.
type Split string

// Split constants.
const (
	SplitFullBody     Split = "full_body"
	SplitUpperLower   Split = "upper_lower"
	SplitPushPullLegs Split = "push_pull_legs"
)

// ResolveSplit maps weekly training frequency to a split. The mapping is
// fixed: up to three days trains the whole body every session, exactly four
// alternates upper and lower, five or more rotates push, pull and legs.
func ResolveSplit(daysPerWeek int) Split {
	switch {
	case daysPerWeek <= 3:
		return SplitFullBody
	case daysPerWeek == 4:
		return SplitUpperLower
	default:
		return SplitPushPullLegs
	}
}

// rationale explains the split choice in user-facing terms.
func (s Split) rationale(daysPerWeek int) string {
	switch s {
	case SplitUpperLower:
		return "Four weekly sessions alternate upper and lower body work so every muscle is trained twice."
	case SplitPushPullLegs:
		return "Five or more weekly sessions rotate push, pull and leg days for focused volume with enough recovery."
	default:
		if daysPerWeek == 1 {
			return "A single weekly session trains the whole body to make the most of limited time."
		}
		return "With up to three weekly sessions, full-body training gives every muscle enough weekly stimulus."
	}
}
