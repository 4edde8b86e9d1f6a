package stats

import "context"

// StatsService computes time-bucketed statistics over the stored shifts.
// All computations are pure over a snapshot fetched at call time.
type StatsService interface {
	// GroupedHistory partitions all shifts into the fixed display buckets
	// Today, Yesterday, This week, Older. Empty buckets are omitted.
	GroupedHistory(ctx context.Context) ([]ShiftGroup, error)

	// WeekStats summarizes the Monday-start week containing now.
	WeekStats(ctx context.Context) (WeekStats, error)

	// MonthlyChart groups this month's completed shifts by week.
	MonthlyChart(ctx context.Context) ([]WeekPoint, error)

	// YearlyChart groups this year's completed shifts by month.
	YearlyChart(ctx context.Context) ([]MonthPoint, error)

	// Earnings values net hours at the global hourly rate.
	Earnings(ctx context.Context) (EarningsSummary, error)

	// EarningsByType breaks down the current month per shift type,
	// sorted by amount descending.
	EarningsByType(ctx context.Context) ([]TypeEarnings, error)
}
