package stats

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/lifelog/internal/record"
)

// RoutineSummary 汇总单个例程。一次完成覆盖例程全部步骤时记为完整完成，
// 连续天数与月度得分只认完整完成。
type RoutineSummary struct {
	RoutineID       string  `json:"routineId"`
	Name            string  `json:"name"`
	Kind            string  `json:"kind"`
	Steps           int     `json:"steps"`
	Completions     int     `json:"completions"`
	FullCompletions int     `json:"fullCompletions"`
	CurrentStreak   int     `json:"currentStreak"`
	LongestStreak   int     `json:"longestStreak"`
	CompletionRate  int     `json:"completionRate"`
	AverageDuration float64 `json:"averageDuration"`
	MonthScore      int     `json:"monthScore"`
	DoneToday       bool    `json:"doneToday"`
}

// RoutineStats 汇总全部例程
type RoutineStats struct {
	TotalCompletions int              `json:"totalCompletions"`
	FullCompletions  int              `json:"fullCompletions"`
	CompletedToday   int              `json:"completedToday"`
	Routines         []RoutineSummary `json:"routines"`
	Skipped          int              `json:"skipped"`
}

// ComputeRoutineStats 基于例程定义与完成记录计算统计。
// 已删除例程的完成记录不计入。
func ComputeRoutineStats(routines []record.Routine, completions []record.RoutineCompletion, now time.Time) RoutineStats {
	today := record.Day(now)

	byRoutine := make(map[string][]record.RoutineCompletion)
	for _, c := range completions {
		byRoutine[c.RoutineID] = append(byRoutine[c.RoutineID], c)
	}

	var stats RoutineStats
	for _, r := range routines {
		summary, skipped := summarizeRoutine(r, byRoutine[r.ID], today)
		stats.Skipped += skipped
		stats.TotalCompletions += summary.Completions
		stats.FullCompletions += summary.FullCompletions
		if summary.DoneToday {
			stats.CompletedToday++
		}
		stats.Routines = append(stats.Routines, summary)
	}
	slices.SortStableFunc(stats.Routines, func(a, b RoutineSummary) int {
		return cmp.Compare(kindOrder(a.Kind), kindOrder(b.Kind))
	})
	return stats
}

func summarizeRoutine(r record.Routine, completions []record.RoutineCompletion, today time.Time) (RoutineSummary, int) {
	isFull := func(c record.RoutineCompletion) bool {
		return coversAll(r.HabitIDs, c.CompletedHabits)
	}
	days, skipped := DaysFrom(completions, func(c record.RoutineCompletion) string { return c.Date }, isFull)
	consistency := Measure(days, today)

	summary := RoutineSummary{
		RoutineID:       r.ID,
		Name:            r.Name,
		Kind:            r.Kind,
		Steps:           len(r.HabitIDs),
		Completions:     consistency.Tracked,
		FullCompletions: consistency.Successes,
		CurrentStreak:   consistency.CurrentStreak,
		LongestStreak:   consistency.LongestStreak,
		CompletionRate:  consistency.CompletionRate,
		MonthScore:      MonthlyScore(days, today),
		DoneToday:       containsDay(days, today),
	}

	var minutes, timed int
	for _, c := range completions {
		day, err := record.ParseDate(c.Date)
		if err != nil || day.After(today) || c.Duration == nil {
			continue
		}
		minutes += *c.Duration
		timed++
	}
	if timed > 0 {
		summary.AverageDuration = math.Round(float64(minutes)*10/float64(timed)) / 10
	}
	return summary, skipped
}

// coversAll 判断 done 是否包含 steps 的全部步骤；没有步骤的例程只要打卡即视为完整
func coversAll(steps, done []string) bool {
	set := make(map[string]struct{}, len(done))
	for _, id := range done {
		set[id] = struct{}{}
	}
	for _, id := range steps {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

func kindOrder(kind string) int {
	switch kind {
	case record.RoutineMorning:
		return 0
	case record.RoutineEvening:
		return 1
	default:
		return 2
	}
}
