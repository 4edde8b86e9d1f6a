package settings

// Defaults applied when no stored value exists.
const (
	DefaultWeeklyTargetHours = 40.0

	MinWeeklyTargetHours = 1.0
	MaxWeeklyTargetHours = 168.0
)

// Settings holds the user-configurable values the engines depend on.
// PINHash is an opaque credential hash; plaintext is never stored.
type Settings struct {
	WeeklyTargetHours float64
	HourlyRate        float64
	AppLockEnabled    bool
	PINHash           *string
}

// EffectiveWeeklyTarget returns the stored target when positive, else the
// default.
func (s Settings) EffectiveWeeklyTarget() float64 {
	if s.WeeklyTargetHours > 0 {
		return s.WeeklyTargetHours
	}
	return DefaultWeeklyTargetHours
}

// ClampWeeklyTarget clamps a write to the allowed [1, 168] range.
func ClampWeeklyTarget(hours float64) float64 {
	if hours < MinWeeklyTargetHours {
		return MinWeeklyTargetHours
	}
	if hours > MaxWeeklyTargetHours {
		return MaxWeeklyTargetHours
	}
	return hours
}
