package service

import (
	"math"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
)

const (
	WeeklyWindowDays  = 7
	MonthlyWindowDays = 30
)

const dayLayout = "2006-01-02"

// Summarize computes dashboard figures. counts holds all of the user's tasks
// by status; recent must include every task created or updated in the last
// MonthlyWindowDays days. A completed task counts as completed on the day it
// was last updated.
func Summarize(counts map[domain.TaskStatus]int, recent []domain.Task, now time.Time) domain.Summary {
	sum := domain.Summary{
		Completed: counts[domain.StatusCompleted],
		Pending:   counts[domain.StatusPending],
	}
	sum.Total = sum.Completed + sum.Pending
	if sum.Total > 0 {
		sum.CompletionRate = int(math.Round(float64(sum.Completed) * 100 / float64(sum.Total)))
	}

	today := startOfDay(now)

	sum.Weekly = make([]domain.DayActivity, WeeklyWindowDays)
	weekly := make(map[string]*domain.DayActivity, WeeklyWindowDays)
	for i := range WeeklyWindowDays {
		d := today.AddDate(0, 0, i-(WeeklyWindowDays-1)).Format(dayLayout)
		sum.Weekly[i] = domain.DayActivity{Date: d}
		weekly[d] = &sum.Weekly[i]
	}

	sum.Monthly = make([]domain.DayCount, MonthlyWindowDays)
	monthly := make(map[string]*domain.DayCount, MonthlyWindowDays)
	for i := range MonthlyWindowDays {
		d := today.AddDate(0, 0, i-(MonthlyWindowDays-1)).Format(dayLayout)
		sum.Monthly[i] = domain.DayCount{Date: d}
		monthly[d] = &sum.Monthly[i]
	}

	for _, t := range recent {
		created := t.CreatedAt.UTC().Format(dayLayout)
		if day, ok := weekly[created]; ok {
			day.Created++
		}
		if day, ok := monthly[created]; ok {
			day.Tasks++
		}
		if t.Status == domain.StatusCompleted {
			if day, ok := weekly[t.UpdatedAt.UTC().Format(dayLayout)]; ok {
				day.Completed++
			}
		}
	}

	return sum
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
