package service

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	recent := []domain.Task{
		{Status: domain.StatusPending, CreatedAt: day(0), UpdatedAt: day(0)},
		{Status: domain.StatusCompleted, CreatedAt: day(-2), UpdatedAt: day(0)},
		{Status: domain.StatusCompleted, CreatedAt: day(-6), UpdatedAt: day(-6)},
		{Status: domain.StatusPending, CreatedAt: day(-10), UpdatedAt: day(-10)},
		{Status: domain.StatusPending, CreatedAt: day(-29), UpdatedAt: day(-29)},
		{Status: domain.StatusPending, CreatedAt: day(-45), UpdatedAt: day(-1)},
	}
	counts := map[domain.TaskStatus]int{domain.StatusPending: 4, domain.StatusCompleted: 2}

	sum := Summarize(counts, recent, now)

	require.Equal(t, 6, sum.Total)
	require.Equal(t, 2, sum.Completed)
	require.Equal(t, 4, sum.Pending)
	require.Equal(t, 33, sum.CompletionRate)

	require.Len(t, sum.Weekly, 7)
	require.Equal(t, "2025-06-09", sum.Weekly[0].Date)
	require.Equal(t, "2025-06-15", sum.Weekly[6].Date)
	require.Equal(t, domain.DayActivity{Date: "2025-06-15", Created: 1, Completed: 1}, sum.Weekly[6])
	require.Equal(t, domain.DayActivity{Date: "2025-06-13", Created: 1}, sum.Weekly[4])
	require.Equal(t, domain.DayActivity{Date: "2025-06-09", Created: 1, Completed: 1}, sum.Weekly[0])

	require.Len(t, sum.Monthly, 30)
	require.Equal(t, "2025-05-17", sum.Monthly[0].Date)
	require.Equal(t, 1, sum.Monthly[0].Tasks)
	total := 0
	for _, d := range sum.Monthly {
		total += d.Tasks
	}
	require.Equal(t, 5, total)
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	sum := Summarize(nil, nil, time.Now())
	require.Zero(t, sum.Total)
	require.Zero(t, sum.CompletionRate)
	require.Len(t, sum.Weekly, WeeklyWindowDays)
	require.Len(t, sum.Monthly, MonthlyWindowDays)
}
