package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maboeh/shifttracker-backend-go/internal/domain/settings"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/shift"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/shifttype"
	"github.com/maboeh/shifttracker-backend-go/internal/domain/stats"
)

func strPtr(s string) *string { return &s }

type fakeShiftRepo struct {
	shift.ShiftRepository
	shifts []shift.Shift
}

func (f *fakeShiftRepo) List(ctx context.Context, filter shift.ListFilter) ([]shift.Shift, error) {
	return f.shifts, nil
}

func (f *fakeShiftRepo) ListByRange(ctx context.Context, start, end time.Time) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range f.shifts {
		if !s.StartTime.Before(start) && s.StartTime.Before(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeShiftTypeRepo struct {
	shifttype.ShiftTypeRepository
	types []shifttype.ShiftType
}

func (f *fakeShiftTypeRepo) List(ctx context.Context) ([]shifttype.ShiftType, error) {
	return f.types, nil
}

type fakeSettingsRepo struct {
	settings.SettingsRepository
	cfg settings.Settings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (settings.Settings, error) {
	return f.cfg, nil
}

// Wednesday 2026-03-04; the week runs Monday 03-02 through Sunday 03-08.
var testNow = time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

func newTestService(shifts []shift.Shift, types []shifttype.ShiftType, cfg settings.Settings) *StatsServiceImpl {
	svc := NewStatsService(
		&fakeShiftRepo{shifts: shifts},
		&fakeShiftTypeRepo{types: types},
		&fakeSettingsRepo{cfg: cfg},
	)
	svc.now = func() time.Time { return testNow }
	return svc
}

func completedShift(id string, start time.Time, hours float64) shift.Shift {
	end := start.Add(time.Duration(hours * float64(time.Hour)))
	return shift.Shift{ID: id, StartTime: start, EndTime: &end}
}

func TestWeekStats(t *testing.T) {
	ctx := context.Background()
	monday := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	t.Run("under target", func(t *testing.T) {
		svc := newTestService(
			[]shift.Shift{completedShift("s1", monday, 8)},
			nil,
			settings.Settings{WeeklyTargetHours: 40},
		)

		week, err := svc.WeekStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), week.WeekStart)
		assert.InDelta(t, 8.0, week.TotalHours, 1e-9)
		assert.InDelta(t, 40.0, week.TargetHours, 1e-9)
		assert.InDelta(t, -32.0, week.Overtime, 1e-9)
		assert.InDelta(t, 0.2, week.Progress, 1e-9)
	})

	t.Run("five 8h shifts exactly meet the target", func(t *testing.T) {
		var shifts []shift.Shift
		for day := 0; day < 5; day++ {
			shifts = append(shifts, completedShift("s"+string(rune('1'+day)), monday.AddDate(0, 0, day), 8))
		}
		svc := newTestService(shifts, nil, settings.Settings{WeeklyTargetHours: 40})

		week, err := svc.WeekStats(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, week.Overtime, 1e-9)
		assert.InDelta(t, 1.0, week.Progress, 1e-9)
	})

	t.Run("half target", func(t *testing.T) {
		svc := newTestService(
			[]shift.Shift{
				completedShift("s1", monday, 10),
				completedShift("s2", monday.AddDate(0, 0, 1), 10),
			},
			nil,
			settings.Settings{WeeklyTargetHours: 40},
		)

		week, err := svc.WeekStats(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, week.Progress, 1e-9)
	})

	t.Run("over target caps progress and reports overtime", func(t *testing.T) {
		svc := newTestService(
			[]shift.Shift{
				completedShift("s1", monday, 25),
				completedShift("s2", monday.AddDate(0, 0, 1), 25),
			},
			nil,
			settings.Settings{WeeklyTargetHours: 40},
		)

		week, err := svc.WeekStats(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 10.0, week.Overtime, 1e-9)
		assert.InDelta(t, 1.0, week.Progress, 1e-9)
	})

	t.Run("zero stored target falls back to default", func(t *testing.T) {
		svc := newTestService(nil, nil, settings.Settings{})

		week, err := svc.WeekStats(ctx)
		require.NoError(t, err)
		assert.InDelta(t, settings.DefaultWeeklyTargetHours, week.TargetHours, 1e-9)
	})

	t.Run("week boundaries", func(t *testing.T) {
		// Monday 00:00 and Sunday 23:59 belong to this week, next Monday
		// does not.
		svc := newTestService(
			[]shift.Shift{
				completedShift("s1", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), 1),
				completedShift("s2", time.Date(2026, 3, 8, 23, 59, 0, 0, time.UTC), 1),
				completedShift("s3", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), 1),
			},
			nil,
			settings.Settings{WeeklyTargetHours: 40},
		)

		week, err := svc.WeekStats(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, week.TotalHours, 1e-9)
	})
}

func TestGroupedHistory(t *testing.T) {
	ctx := context.Background()

	svc := newTestService(
		[]shift.Shift{
			completedShift("today", time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC), 4),
			completedShift("yesterday", time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC), 4),
			completedShift("this-week", time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC), 4),
			completedShift("older", time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC), 4),
		},
		nil,
		settings.Settings{},
	)

	groups, err := svc.GroupedHistory(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 4)

	assert.Equal(t, stats.BucketToday, groups[0].Bucket)
	assert.Equal(t, "today", groups[0].Shifts[0].ID)
	assert.Equal(t, stats.BucketYesterday, groups[1].Bucket)
	assert.Equal(t, stats.BucketThisWeek, groups[2].Bucket)
	assert.Equal(t, "this-week", groups[2].Shifts[0].ID)
	assert.Equal(t, stats.BucketOlder, groups[3].Bucket)
}

func TestGroupedHistory_ForwardDatedShifts(t *testing.T) {
	ctx := context.Background()

	// Now is Wednesday 2026-03-04; Friday is still in the current week,
	// next Tuesday is not.
	svc := newTestService(
		[]shift.Shift{
			completedShift("friday", time.Date(2026, 3, 6, 8, 0, 0, 0, time.UTC), 4),
			completedShift("next-tuesday", time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), 4),
		},
		nil,
		settings.Settings{},
	)

	groups, err := svc.GroupedHistory(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, stats.BucketThisWeek, groups[0].Bucket)
	assert.Equal(t, "friday", groups[0].Shifts[0].ID)
	assert.Equal(t, stats.BucketOlder, groups[1].Bucket)
	assert.Equal(t, "next-tuesday", groups[1].Shifts[0].ID)
}

func TestGroupedHistory_OmitsEmptyBuckets(t *testing.T) {
	ctx := context.Background()

	svc := newTestService(
		[]shift.Shift{
			completedShift("today", time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC), 4),
		},
		nil,
		settings.Settings{},
	)

	groups, err := svc.GroupedHistory(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, stats.BucketToday, groups[0].Bucket)
}

func TestMonthlyChart_SkipsOpenShifts(t *testing.T) {
	ctx := context.Background()

	open := shift.Shift{ID: "open", StartTime: time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC)}
	svc := newTestService(
		[]shift.Shift{
			completedShift("s1", time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC), 8),
			open,
		},
		nil,
		settings.Settings{},
	)

	points, err := svc.MonthlyChart(ctx)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), points[0].WeekStart)
	assert.InDelta(t, 8.0, points[0].NetHours, 1e-9)
}

func TestEarnings(t *testing.T) {
	ctx := context.Background()
	monday := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	svc := newTestService(
		[]shift.Shift{
			completedShift("this-week", monday, 8),
			completedShift("earlier-this-month", time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC), 4),
			completedShift("january", time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC), 10),
		},
		nil,
		settings.Settings{HourlyRate: 20},
	)

	summary, err := svc.Earnings(ctx)
	require.NoError(t, err)

	assert.InDelta(t, 8.0, summary.ThisWeek.Hours, 1e-9)
	assert.InDelta(t, 160.0, summary.ThisWeek.Amount, 1e-9)
	assert.InDelta(t, 12.0, summary.ThisMonth.Hours, 1e-9)
	assert.InDelta(t, 22.0, summary.ThisYear.Hours, 1e-9)
	assert.InDelta(t, 440.0, summary.ThisYear.Amount, 1e-9)
}

func TestEarnings_TypeRateOverride(t *testing.T) {
	ctx := context.Background()
	monday := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	nightRate := 30.0
	night := shifttype.ShiftType{ID: "t-night", Name: "Night shift", HourlyRate: &nightRate}
	early := shifttype.ShiftType{ID: "t-early", Name: "Early shift"}

	overridden := completedShift("s1", monday, 8)
	overridden.ShiftTypeID = strPtr("t-night")
	globalRated := completedShift("s2", monday.AddDate(0, 0, 1), 8)
	globalRated.ShiftTypeID = strPtr("t-early")
	untyped := completedShift("s3", monday.AddDate(0, 0, 2), 4)

	svc := newTestService(
		[]shift.Shift{overridden, globalRated, untyped},
		[]shifttype.ShiftType{night, early},
		settings.Settings{HourlyRate: 20},
	)

	summary, err := svc.Earnings(ctx)
	require.NoError(t, err)

	// 8h at the night override plus 12h at the global rate.
	assert.InDelta(t, 20.0, summary.ThisWeek.Hours, 1e-9)
	assert.InDelta(t, 8*30.0+12*20.0, summary.ThisWeek.Amount, 1e-9)
	assert.InDelta(t, summary.ThisWeek.Amount, summary.ThisMonth.Amount, 1e-9)
	assert.InDelta(t, summary.ThisWeek.Amount, summary.ThisYear.Amount, 1e-9)
}

func TestEarningsByType(t *testing.T) {
	ctx := context.Background()
	monday := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	nightRate := 30.0
	night := shifttype.ShiftType{ID: "t-night", Name: "Night shift", HourlyRate: &nightRate}
	early := shifttype.ShiftType{ID: "t-early", Name: "Early shift"}

	typed := completedShift("s1", monday, 8)
	typed.ShiftTypeID = strPtr("t-night")
	globalRated := completedShift("s2", monday.AddDate(0, 0, 1), 8)
	globalRated.ShiftTypeID = strPtr("t-early")
	untyped := completedShift("s3", monday.AddDate(0, 0, 2), 8)

	svc := newTestService(
		[]shift.Shift{typed, globalRated, untyped},
		[]shifttype.ShiftType{night, early},
		settings.Settings{HourlyRate: 20},
	)

	result, err := svc.EarningsByType(ctx)
	require.NoError(t, err)
	require.Len(t, result, 3)

	// Sorted by amount descending: night 240, early 160, untyped 160.
	assert.Equal(t, "Night shift", result[0].TypeName)
	assert.InDelta(t, 240.0, result[0].Amount, 1e-9)
	assert.InDelta(t, 30.0, result[0].HourlyRate, 1e-9)

	names := []string{result[1].TypeName, result[2].TypeName}
	assert.Contains(t, names, "Early shift")
	assert.Contains(t, names, stats.NoTypeLabel)
}
