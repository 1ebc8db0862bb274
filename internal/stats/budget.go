package stats

import (
	"time"

	"github.com/lifelog/internal/record"
	"github.com/shopspring/decimal"
)

// BudgetHistoryMonths 为预算月度历史的月份数
const BudgetHistoryMonths = 6

// BudgetStats 汇总预算记录。好日子指既守住预算又记了账的日期。
type BudgetStats struct {
	TotalDays            int             `json:"totalDays"`
	WithinBudgetDays     int             `json:"withinBudgetDays"`
	TrackedDays          int             `json:"trackedDays"`
	GoodDays             int             `json:"goodDays"`
	CurrentStreak        int             `json:"currentStreak"`
	LongestStreak        int             `json:"longestStreak"`
	CompletionRate       int             `json:"completionRate"`
	MonthScore           int             `json:"monthScore"`
	DaysTrackedThisMonth int             `json:"daysTrackedThisMonth"`
	DaysElapsedThisMonth int             `json:"daysElapsedThisMonth"`
	MonthSpend           decimal.Decimal `json:"monthSpend"`
	History              []MonthSummary  `json:"history"`
	Skipped              int             `json:"skipped"`
}

// ComputeBudgetStats 基于预算记录计算统计
func ComputeBudgetStats(entries []record.BudgetEntry, now time.Time) BudgetStats {
	today := record.Day(now)
	monthStart, _ := MonthBounds(today)

	days, skipped := DaysFrom(entries,
		func(e record.BudgetEntry) string { return e.Date },
		record.BudgetEntry.Good,
	)
	stats := BudgetStats{
		MonthSpend: decimal.Zero,
		Skipped:    skipped,
	}

	for _, e := range entries {
		day, err := record.ParseDate(e.Date)
		if err != nil || day.After(today) {
			continue
		}
		stats.TotalDays++
		if e.StayedWithinBudget {
			stats.WithinBudgetDays++
		}
		if e.TrackedExpenses {
			stats.TrackedDays++
		}
		if e.Good() {
			stats.GoodDays++
		}
		if !day.Before(monthStart) && e.Amount != nil {
			stats.MonthSpend = stats.MonthSpend.Add(*e.Amount)
		}
	}

	consistency := Measure(days, today)
	stats.CurrentStreak = consistency.CurrentStreak
	stats.LongestStreak = consistency.LongestStreak
	stats.CompletionRate = consistency.CompletionRate

	month := MonthScore(days, today, today)
	stats.MonthScore = month.Score
	stats.DaysTrackedThisMonth = month.TrackedDays
	stats.DaysElapsedThisMonth = month.Denominator
	stats.History = MonthlyHistory(days, today, BudgetHistoryMonths)

	return stats
}
