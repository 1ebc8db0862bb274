package stats

import (
	"strings"
	"time"

	"github.com/lifelog/internal/record"
)

// MonthReport 汇总某个月各领域的月度得分
type MonthReport struct {
	Month    string       `json:"month"`
	Habits   MonthSummary `json:"habits"`
	Budget   MonthSummary `json:"budget"`
	Skincare MonthSummary `json:"skincare"`
	Journal  MonthSummary `json:"journal"`
	Routines MonthSummary `json:"routines"`
}

// ComposeMonthReport 计算 month 所在月份截至 now 的各领域得分。
// 习惯以有打卡为好日子，日记需内容非空，预算需守住预算并记账，护肤需早晚都完成，
// 例程需至少一个例程完整完成。
func ComposeMonthReport(snapshot record.Snapshot, month, now time.Time) MonthReport {
	start, _ := MonthBounds(month)
	report := MonthReport{Month: start.Format(record.MonthLayout)}

	habitDays, _ := DaysFrom(snapshot.Completions.All(),
		func(c record.HabitCompletion) string { return c.Date },
		func(record.HabitCompletion) bool { return true },
	)
	report.Habits = MonthScore(habitDays, start, now)

	budgetDays, _ := DaysFrom(snapshot.Budget.All(),
		func(e record.BudgetEntry) string { return e.Date },
		record.BudgetEntry.Good,
	)
	report.Budget = MonthScore(budgetDays, start, now)

	journalDays, _ := DaysFrom(snapshot.Journal.All(),
		func(e record.JournalEntry) string { return e.Date },
		func(e record.JournalEntry) bool { return strings.TrimSpace(e.Content) != "" },
	)
	report.Journal = MonthScore(journalDays, start, now)

	report.Skincare = MonthScore(skincareDays(snapshot.Skincare.All()), start, now)
	report.Routines = MonthScore(routineDays(snapshot.Routines, snapshot.RoutineCompletions.All()), start, now)
	return report
}

func skincareDays(completions []record.SkincareCompletion) []Day {
	type periods struct{ morning, evening bool }
	byDate := make(map[string]*periods)
	for _, c := range completions {
		p, ok := byDate[c.Date]
		if !ok {
			p = &periods{}
			byDate[c.Date] = p
		}
		switch c.Period {
		case record.PeriodMorning:
			p.morning = true
		case record.PeriodEvening:
			p.evening = true
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	days, _ := DaysFrom(dates,
		func(date string) string { return date },
		func(date string) bool { return byDate[date].morning && byDate[date].evening },
	)
	return days
}

func routineDays(routines *record.RoutineStore, completions []record.RoutineCompletion) []Day {
	known := make([]record.RoutineCompletion, 0, len(completions))
	for _, c := range completions {
		if _, ok := routines.Get(c.RoutineID); ok {
			known = append(known, c)
		}
	}
	days, _ := DaysFrom(known,
		func(c record.RoutineCompletion) string { return c.Date },
		func(c record.RoutineCompletion) bool {
			routine, _ := routines.Get(c.RoutineID)
			return coversAll(routine.HabitIDs, c.CompletedHabits)
		},
	)
	return days
}
