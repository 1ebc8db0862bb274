package stats

import (
	"time"

	"github.com/lifelog/internal/record"
)

// MonthSummary 是某个自然月的得分
// Denominator 在进行中的月份为已过天数（含今天），已结束的月份为整月天数，未来月份为 0
type MonthSummary struct {
	Month       string `json:"month"`
	GoodDays    int    `json:"goodDays"`
	TrackedDays int    `json:"trackedDays"`
	Denominator int    `json:"denominator"`
	Score       int    `json:"score"`
}

// MonthBounds 返回 t 所在月份的第一天与最后一天
func MonthBounds(t time.Time) (start, end time.Time) {
	day := record.Day(t)
	start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// DaysInMonth 返回 t 所在月份的天数
func DaysInMonth(t time.Time) int {
	_, end := MonthBounds(t)
	return end.Day()
}

// DaysBetween 返回两个日历日之间相差的天数
func DaysBetween(from, to time.Time) int {
	return int(record.Day(to).Sub(record.Day(from)).Hours() / 24)
}

// MonthScore 计算 month 所在月份截至 now 的得分。
// 晚于 now 的记录不计入；分母为 0 时得分为 0。
func MonthScore(days []Day, month, now time.Time) MonthSummary {
	today := record.Day(now)
	start, end := MonthBounds(month)
	summary := MonthSummary{Month: start.Format(record.MonthLayout)}

	if start.After(today) {
		return summary
	}

	last := end
	if today.Before(end) {
		last = today
	}
	summary.Denominator = min(DaysBetween(start, last)+1, DaysInMonth(start))

	for _, d := range settle(days, today) {
		if d.Date.Before(start) || d.Date.After(last) {
			continue
		}
		summary.TrackedDays++
		if d.Success {
			summary.GoodDays++
		}
	}

	summary.Score = Percent(summary.GoodDays, summary.Denominator)
	return summary
}

// MonthlyScore 返回当前月份的得分
func MonthlyScore(days []Day, now time.Time) int {
	return MonthScore(days, now, now).Score
}

// MonthlyHistory 返回截至 now 的最近 months 个月的得分，按时间从早到晚排列
func MonthlyHistory(days []Day, now time.Time, months int) []MonthSummary {
	if months <= 0 {
		return nil
	}
	current, _ := MonthBounds(now)
	history := make([]MonthSummary, 0, months)
	for offset := months - 1; offset >= 0; offset-- {
		history = append(history, MonthScore(days, current.AddDate(0, -offset, 0), now))
	}
	return history
}

// Window 返回截至 end（含）的最近 length 天内的记录
func Window(days []Day, end time.Time, length int) []Day {
	if length <= 0 {
		return nil
	}
	last := record.Day(end)
	first := last.AddDate(0, 0, -(length - 1))
	var result []Day
	for _, d := range settle(days, last) {
		if !d.Date.Before(first) {
			result = append(result, d)
		}
	}
	return result
}
