package stats

import (
	"time"

	"github.com/lifelog/internal/record"
)

// SkincareStats 汇总护肤记录，早晚都完成的日期才算好日子
type SkincareStats struct {
	MorningCount   int  `json:"morningCount"`
	EveningCount   int  `json:"eveningCount"`
	CompleteDays   int  `json:"completeDays"`
	TrackedDays    int  `json:"trackedDays"`
	CurrentStreak  int  `json:"currentStreak"`
	LongestStreak  int  `json:"longestStreak"`
	CompletionRate int  `json:"completionRate"`
	MonthScore     int  `json:"monthScore"`
	MorningToday   bool `json:"morningToday"`
	EveningToday   bool `json:"eveningToday"`
	Skipped        int  `json:"skipped"`
}

// ComputeSkincareStats 基于护肤记录计算统计
func ComputeSkincareStats(completions []record.SkincareCompletion, now time.Time) SkincareStats {
	today := record.Day(now)

	type periods struct{ morning, evening bool }
	byDay := make(map[time.Time]*periods)

	var stats SkincareStats
	for _, c := range completions {
		day, err := record.ParseDate(c.Date)
		if err != nil {
			stats.Skipped++
			continue
		}
		if day.After(today) {
			continue
		}
		p, ok := byDay[day]
		if !ok {
			p = &periods{}
			byDay[day] = p
		}
		switch c.Period {
		case record.PeriodMorning:
			if !p.morning {
				stats.MorningCount++
			}
			p.morning = true
		case record.PeriodEvening:
			if !p.evening {
				stats.EveningCount++
			}
			p.evening = true
		}
	}

	days := make([]Day, 0, len(byDay))
	for day, p := range byDay {
		days = append(days, Day{Date: day, Success: p.morning && p.evening})
	}

	consistency := Measure(days, today)
	stats.CompleteDays = consistency.Successes
	stats.TrackedDays = consistency.Tracked
	stats.CurrentStreak = consistency.CurrentStreak
	stats.LongestStreak = consistency.LongestStreak
	stats.CompletionRate = consistency.CompletionRate
	stats.MonthScore = MonthlyScore(days, today)
	if p, ok := byDay[today]; ok {
		stats.MorningToday = p.morning
		stats.EveningToday = p.evening
	}
	return stats
}
