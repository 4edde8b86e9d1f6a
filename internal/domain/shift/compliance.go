package shift

import "time"

// German working-time rules (ArbZG §4): more than 6h of gross work
// requires at least 30 minutes of break, more than 9h at least 45 minutes.
const (
	breakRuleLongShift  = 9 * time.Hour
	breakRuleShortShift = 6 * time.Hour

	requiredBreakLong  = 45 * time.Minute
	requiredBreakShort = 30 * time.Minute
)

// RequiredBreak returns the legally required break time for a gross shift
// duration. Zero when no requirement applies.
func RequiredBreak(gross time.Duration) time.Duration {
	switch {
	case gross > breakRuleLongShift:
		return requiredBreakLong
	case gross > breakRuleShortShift:
		return requiredBreakShort
	default:
		return 0
	}
}

// ComplianceWarning describes a breached break-time rule. It never blocks
// a save, it is surfaced as a label next to the shift.
type ComplianceWarning struct {
	Required time.Duration `json:"required"`
	Taken    time.Duration `json:"taken"`
	Missing  time.Duration `json:"missing"`
}

// CheckCompliance evaluates the break-time rule for a shift. Open shifts
// are never flagged; the rule only applies once the end time is known.
func (s *Shift) CheckCompliance(now time.Time) *ComplianceWarning {
	if s.EndTime == nil {
		return nil
	}
	required := RequiredBreak(s.Duration(now))
	if required == 0 {
		return nil
	}
	taken := s.TotalBreakDuration(now)
	if taken >= required {
		return nil
	}
	return &ComplianceWarning{
		Required: required,
		Taken:    taken,
		Missing:  required - taken,
	}
}
