package stats

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/lifelog/internal/record"
)

// RateWindowDays 为完成率统计的滚动窗口
const RateWindowDays = 30

// UncategorizedHabits 为未设置分类的习惯归属的分类名
const UncategorizedHabits = "uncategorized"

// HabitSummary 汇总单个习惯的统计
type HabitSummary struct {
	HabitID        string          `json:"habitId"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	LifeArea       record.LifeArea `json:"lifeArea,omitempty"`
	Active         bool            `json:"active"`
	Completions    int             `json:"completions"`
	CurrentStreak  int             `json:"currentStreak"`
	LongestStreak  int             `json:"longestStreak"`
	CompletionRate int             `json:"completionRate"`
	MonthScore     int             `json:"monthScore"`
	DoneToday      bool            `json:"doneToday"`
}

// CategoryCounter 是分类层面的一致性计数
type CategoryCounter struct {
	Category    string `json:"category"`
	HabitCount  int    `json:"habitCount"`
	Completions int    `json:"completions"`
	ActiveDays  int    `json:"activeDays"`
	Consistency int    `json:"consistency"`
}

// HabitStats 汇总全部习惯的统计。
// 整体连续天数以「当日至少完成一个习惯」为成功。
type HabitStats struct {
	TotalCompletions int               `json:"totalCompletions"`
	ActiveDays       int               `json:"activeDays"`
	ActiveHabits     int               `json:"activeHabits"`
	CompletedToday   int               `json:"completedToday"`
	CurrentStreak    int               `json:"currentStreak"`
	LongestStreak    int               `json:"longestStreak"`
	CompletionRate   int               `json:"completionRate"`
	MonthScore       int               `json:"monthScore"`
	Habits           []HabitSummary    `json:"habits"`
	Categories       []CategoryCounter `json:"categories"`
	Skipped          int               `json:"skipped"`
}

type parsedCompletion struct {
	record.HabitCompletion
	day time.Time
}

// ComputeHabitStats 基于习惯定义与打卡记录计算统计
func ComputeHabitStats(habits []record.Habit, completions []record.HabitCompletion, now time.Time) HabitStats {
	today := record.Day(now)
	windowStart := today.AddDate(0, 0, -(RateWindowDays - 1))

	var stats HabitStats
	parsed := make([]parsedCompletion, 0, len(completions))
	for _, c := range completions {
		day, err := record.ParseDate(c.Date)
		if err != nil {
			stats.Skipped++
			continue
		}
		if day.After(today) {
			continue
		}
		parsed = append(parsed, parsedCompletion{HabitCompletion: c, day: day})
	}

	byHabit := make(map[string][]parsedCompletion)
	for _, c := range parsed {
		byHabit[c.HabitID] = append(byHabit[c.HabitID], c)
	}

	definitions := knownHabits(habits, byHabit)

	var windowDone, windowExpected int
	for _, h := range definitions {
		summary := summarizeHabit(h, byHabit[h.ID], today, windowStart)
		stats.Habits = append(stats.Habits, summary)
		stats.TotalCompletions += summary.Completions
		if summary.DoneToday {
			stats.CompletedToday++
		}
		if !h.Active {
			continue
		}
		stats.ActiveHabits++
		start := habitWindowStart(h, windowStart, today)
		expected := ExpectedCheckIns(h.Frequency, start, today)
		done := 0
		for _, c := range byHabit[h.ID] {
			if !c.day.Before(start) {
				done++
			}
		}
		windowExpected += expected
		windowDone += min(done, expected)
	}
	stats.CompletionRate = min(100, Percent(windowDone, windowExpected))

	days, _ := DaysFrom(parsed, func(c parsedCompletion) string { return c.Date }, func(parsedCompletion) bool { return true })
	overall := Measure(days, today)
	stats.ActiveDays = overall.Tracked
	stats.CurrentStreak = overall.CurrentStreak
	stats.LongestStreak = overall.LongestStreak
	stats.MonthScore = MonthlyScore(days, today)
	stats.Categories = categoryCounters(definitions, byHabit, windowStart)

	return stats
}

// knownHabits 返回习惯定义，并补上只出现在打卡记录中的习惯
func knownHabits(habits []record.Habit, byHabit map[string][]parsedCompletion) []record.Habit {
	result := slices.Clone(habits)
	defined := make(map[string]struct{}, len(habits))
	for _, h := range habits {
		defined[h.ID] = struct{}{}
	}

	var orphans []record.Habit
	for id, list := range byHabit {
		if _, ok := defined[id]; ok {
			continue
		}
		latest := list[len(list)-1]
		orphans = append(orphans, record.Habit{
			ID:       id,
			Name:     id,
			Category: latest.Category,
			LifeArea: latest.LifeArea,
			Active:   true,
		})
	}
	slices.SortFunc(orphans, func(a, b record.Habit) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return append(result, orphans...)
}

func summarizeHabit(h record.Habit, completions []parsedCompletion, today, windowStart time.Time) HabitSummary {
	days, _ := DaysFrom(completions, func(c parsedCompletion) string { return c.Date }, func(parsedCompletion) bool { return true })
	consistency := Measure(days, today)

	start := habitWindowStart(h, windowStart, today)
	inWindow := 0
	for _, d := range days {
		if !d.Date.Before(start) {
			inWindow++
		}
	}

	return HabitSummary{
		HabitID:        h.ID,
		Name:           h.Name,
		Category:       categoryName(h.Category),
		LifeArea:       h.LifeArea,
		Active:         h.Active,
		Completions:    consistency.Tracked,
		CurrentStreak:  consistency.CurrentStreak,
		LongestStreak:  consistency.LongestStreak,
		CompletionRate: min(100, Percent(inWindow, ExpectedCheckIns(h.Frequency, start, today))),
		MonthScore:     MonthlyScore(days, today),
		DoneToday:      containsDay(days, today),
	}
}

// ExpectedCheckIns 返回 [start, end] 内按频率应有的打卡次数。
// 每周习惯按整周计，不足一周也算一次。
func ExpectedCheckIns(frequency string, start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	days := DaysBetween(start, end) + 1
	if frequency == record.FrequencyWeekly {
		return max(1, days/7)
	}
	return days
}

// habitWindowStart 将滚动窗口的起点推迟到习惯创建日，避免新习惯被整窗口稀释
func habitWindowStart(h record.Habit, windowStart, today time.Time) time.Time {
	if h.CreatedAt.IsZero() {
		return windowStart
	}
	created := record.Day(h.CreatedAt)
	if created.After(today) {
		return today
	}
	if created.After(windowStart) {
		return created
	}
	return windowStart
}

func categoryCounters(habits []record.Habit, byHabit map[string][]parsedCompletion, windowStart time.Time) []CategoryCounter {
	counters := make(map[string]*CategoryCounter)
	activeDays := make(map[string]map[time.Time]struct{})

	for _, h := range habits {
		name := categoryName(h.Category)
		counter, ok := counters[name]
		if !ok {
			counter = &CategoryCounter{Category: name}
			counters[name] = counter
			activeDays[name] = make(map[time.Time]struct{})
		}
		counter.HabitCount++
		for _, c := range byHabit[h.ID] {
			counter.Completions++
			if !c.day.Before(windowStart) {
				activeDays[name][c.day] = struct{}{}
			}
		}
	}

	result := make([]CategoryCounter, 0, len(counters))
	for name, counter := range counters {
		counter.ActiveDays = len(activeDays[name])
		counter.Consistency = Percent(counter.ActiveDays, RateWindowDays)
		result = append(result, *counter)
	}
	slices.SortFunc(result, func(a, b CategoryCounter) int {
		return cmp.Compare(a.Category, b.Category)
	})
	return result
}

func categoryName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return UncategorizedHabits
	}
	return trimmed
}
