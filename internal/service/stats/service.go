package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/export"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/settings"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/shift"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/shifttype"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/stats"
)

type StatsServiceImpl struct {
	shiftRepo     shift.ShiftRepository
	shiftTypeRepo shifttype.ShiftTypeRepository
	settingsRepo  settings.SettingsRepository

	// now is injectable for tests; defaults to time.Now
	now func() time.Time
}

func NewStatsService(
	shiftRepo shift.ShiftRepository,
	shiftTypeRepo shifttype.ShiftTypeRepository,
	settingsRepo settings.SettingsRepository,
) *StatsServiceImpl {
	return &StatsServiceImpl{
		shiftRepo:     shiftRepo,
		shiftTypeRepo: shiftTypeRepo,
		settingsRepo:  settingsRepo,
		now:           time.Now,
	}
}

var _ stats.StatsService = (*StatsServiceImpl)(nil)

// GroupedHistory implements stats.StatsService. Buckets appear in the
// fixed order Today, Yesterday, This week, Older; empty buckets are
// omitted. Shifts inside a bucket keep the repository's descending
// start-time order.
func (s *StatsServiceImpl) GroupedHistory(ctx context.Context) ([]stats.ShiftGroup, error) {
	shifts, err := s.shiftRepo.List(ctx, shift.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	now := s.now()
	byBucket := make(map[stats.DisplayBucket][]shift.ShiftResponse)
	for _, sh := range shifts {
		bucket := bucketFor(sh.StartTime, now)
		byBucket[bucket] = append(byBucket[bucket], shift.NewShiftResponse(sh, now))
	}

	order := []stats.DisplayBucket{stats.BucketToday, stats.BucketYesterday, stats.BucketThisWeek, stats.BucketOlder}
	groups := make([]stats.ShiftGroup, 0, len(order))
	for _, b := range order {
		if members := byBucket[b]; len(members) > 0 {
			groups = append(groups, stats.ShiftGroup{Bucket: b, Shifts: members})
		}
	}
	return groups, nil
}

// bucketFor assigns a start time to its display bucket relative to now.
// "This week" is the Monday-start week containing now, minus today and
// yesterday which have their own buckets. Forward-dated shifts land in
// "This week" while their week lasts, then in "Older".
func bucketFor(start, now time.Time) stats.DisplayBucket {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case !start.Before(dayStart.AddDate(0, 0, 1)):
		if export.WeekInterval(now).Contains(start) {
			return stats.BucketThisWeek
		}
		return stats.BucketOlder
	case !start.Before(dayStart):
		return stats.BucketToday
	case !start.Before(dayStart.AddDate(0, 0, -1)):
		return stats.BucketYesterday
	case export.WeekInterval(now).Contains(start):
		return stats.BucketThisWeek
	default:
		return stats.BucketOlder
	}
}

// WeekStats implements stats.StatsService.
func (s *StatsServiceImpl) WeekStats(ctx context.Context) (stats.WeekStats, error) {
	now := s.now()
	week := export.WeekInterval(now)

	shifts, err := s.shiftRepo.ListByRange(ctx, week.Start, week.End)
	if err != nil {
		return stats.WeekStats{}, fmt.Errorf("failed to list shifts for week: %w", err)
	}

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return stats.WeekStats{}, fmt.Errorf("failed to load settings: %w", err)
	}

	var totalHours float64
	for i := range shifts {
		totalHours += shifts[i].NetDuration(now).Hours()
	}

	target := cfg.EffectiveWeeklyTarget()
	return stats.WeekStats{
		WeekStart:   week.Start,
		WeekEnd:     week.End,
		TotalHours:  totalHours,
		TargetHours: target,
		Overtime:    totalHours - target,
		Progress:    progress(totalHours, target),
	}, nil
}

// progress is total/target capped at 1.0, guarding a non-positive target.
func progress(total, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := total / target
	if p > 1.0 {
		return 1.0
	}
	return p
}

// MonthlyChart implements stats.StatsService. Only completed shifts
// count; one point per Monday-start week of the current month.
func (s *StatsServiceImpl) MonthlyChart(ctx context.Context) ([]stats.WeekPoint, error) {
	now := s.now()
	month := export.MonthInterval(now)

	shifts, err := s.shiftRepo.ListByRange(ctx, month.Start, month.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts for month: %w", err)
	}

	type agg struct {
		netHours     float64
		breakMinutes float64
	}
	byWeek := make(map[time.Time]*agg)
	for i := range shifts {
		sh := &shifts[i]
		if sh.EndTime == nil {
			continue
		}
		weekStart := export.WeekInterval(sh.StartTime).Start
		a := byWeek[weekStart]
		if a == nil {
			a = &agg{}
			byWeek[weekStart] = a
		}
		a.netHours += sh.NetDuration(now).Hours()
		a.breakMinutes += sh.TotalBreakDuration(now).Minutes()
	}

	points := make([]stats.WeekPoint, 0, len(byWeek))
	for weekStart, a := range byWeek {
		points = append(points, stats.WeekPoint{
			WeekStart:    weekStart,
			NetHours:     a.netHours,
			BreakMinutes: a.breakMinutes,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].WeekStart.Before(points[j].WeekStart) })
	return points, nil
}

// YearlyChart implements stats.StatsService. One point per calendar
// month of the current year, completed shifts only.
func (s *StatsServiceImpl) YearlyChart(ctx context.Context) ([]stats.MonthPoint, error) {
	now := s.now()
	year := export.YearInterval(now)

	shifts, err := s.shiftRepo.ListByRange(ctx, year.Start, year.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts for year: %w", err)
	}

	type agg struct {
		netHours float64
		count    int
	}
	byMonth := make(map[time.Month]*agg)
	for i := range shifts {
		sh := &shifts[i]
		if sh.EndTime == nil {
			continue
		}
		a := byMonth[sh.StartTime.Month()]
		if a == nil {
			a = &agg{}
			byMonth[sh.StartTime.Month()] = a
		}
		a.netHours += sh.NetDuration(now).Hours()
		a.count++
	}

	points := make([]stats.MonthPoint, 0, len(byMonth))
	for month, a := range byMonth {
		points = append(points, stats.MonthPoint{
			Month:      time.Date(now.Year(), month, 1, 0, 0, 0, 0, now.Location()),
			NetHours:   a.netHours,
			ShiftCount: a.count,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month.Before(points[j].Month) })
	return points, nil
}

// Earnings implements stats.StatsService. Each shift is valued at its
// type's override rate when one is set, else the global hourly rate.
func (s *StatsServiceImpl) Earnings(ctx context.Context) (stats.EarningsSummary, error) {
	now := s.now()

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return stats.EarningsSummary{}, fmt.Errorf("failed to load settings: %w", err)
	}

	types, err := s.shiftTypeRepo.List(ctx)
	if err != nil {
		return stats.EarningsSummary{}, fmt.Errorf("failed to list shift types: %w", err)
	}
	overrides := make(map[string]float64)
	for _, t := range types {
		if t.HourlyRate != nil {
			overrides[t.ID] = *t.HourlyRate
		}
	}

	summary := stats.EarningsSummary{}
	for _, period := range []struct {
		interval export.DateRange
		out      *stats.Earnings
	}{
		{export.WeekInterval(now), &summary.ThisWeek},
		{export.MonthInterval(now), &summary.ThisMonth},
		{export.YearInterval(now), &summary.ThisYear},
	} {
		shifts, err := s.shiftRepo.ListByRange(ctx, period.interval.Start, period.interval.End)
		if err != nil {
			return stats.EarningsSummary{}, fmt.Errorf("failed to list shifts: %w", err)
		}
		for i := range shifts {
			sh := &shifts[i]
			rate := cfg.HourlyRate
			if sh.ShiftTypeID != nil {
				if override, ok := overrides[*sh.ShiftTypeID]; ok {
					rate = override
				}
			}
			hours := sh.NetDuration(now).Hours()
			period.out.Hours += hours
			period.out.Amount += hours * rate
		}
	}
	return summary, nil
}

// EarningsByType implements stats.StatsService. Current month, grouped
// by type name, type override rate when set, sorted by amount descending.
func (s *StatsServiceImpl) EarningsByType(ctx context.Context) ([]stats.TypeEarnings, error) {
	now := s.now()
	month := export.MonthInterval(now)

	shifts, err := s.shiftRepo.ListByRange(ctx, month.Start, month.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts for month: %w", err)
	}

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	types, err := s.shiftTypeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift types: %w", err)
	}
	rateByID := make(map[string]float64, len(types))
	nameByID := make(map[string]string, len(types))
	for _, t := range types {
		nameByID[t.ID] = t.Name
		if t.HourlyRate != nil {
			rateByID[t.ID] = *t.HourlyRate
		} else {
			rateByID[t.ID] = cfg.HourlyRate
		}
	}

	type agg struct {
		hours float64
		rate  float64
	}
	byName := make(map[string]*agg)
	for i := range shifts {
		sh := &shifts[i]
		name := stats.NoTypeLabel
		rate := cfg.HourlyRate
		if sh.ShiftTypeID != nil {
			if n, ok := nameByID[*sh.ShiftTypeID]; ok {
				name = n
				rate = rateByID[*sh.ShiftTypeID]
			}
		}
		a := byName[name]
		if a == nil {
			a = &agg{rate: rate}
			byName[name] = a
		}
		a.hours += sh.NetDuration(now).Hours()
	}

	result := make([]stats.TypeEarnings, 0, len(byName))
	for name, a := range byName {
		result = append(result, stats.TypeEarnings{
			TypeName:   name,
			Hours:      a.hours,
			HourlyRate: a.rate,
			Amount:     a.hours * a.rate,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Amount > result[j].Amount })
	return result, nil
}
