// Package stats 从记录快照推导连续天数、一致性、月度得分与生活平衡。
// 包内均为纯函数：不做 I/O，不读全局状态，相同输入得到相同输出。
package stats

import (
	"math"
	"slices"
	"time"

	"github.com/lifelog/internal/record"
)

// Day 是按日历日折叠后的一条记录
type Day struct {
	Date    time.Time
	Success bool
}

// Streaks 为当前与最长连续天数
type Streaks struct {
	Current int `json:"currentStreak"`
	Longest int `json:"longestStreak"`
}

// Consistency 汇总连续天数与完成率
type Consistency struct {
	CurrentStreak  int `json:"currentStreak"`
	LongestStreak  int `json:"longestStreak"`
	Successes      int `json:"successes"`
	Tracked        int `json:"tracked"`
	CompletionRate int `json:"completionRate"`
}

// DaysFrom 将记录折叠为按日的结果。无法解析日期的记录被跳过并计入 skipped；
// 同一日期的多条记录只算一天，任一成功即视为成功。返回结果按日期升序。
func DaysFrom[T any](records []T, dateOf func(T) string, isSuccess func(T) bool) (days []Day, skipped int) {
	byDate := make(map[time.Time]bool, len(records))
	for _, r := range records {
		date, err := record.ParseDate(dateOf(r))
		if err != nil {
			skipped++
			continue
		}
		byDate[date] = byDate[date] || isSuccess(r)
	}

	days = make([]Day, 0, len(byDate))
	for date, success := range byDate {
		days = append(days, Day{Date: date, Success: success})
	}
	slices.SortFunc(days, func(a, b Day) int {
		return a.Date.Compare(b.Date)
	})
	return days, skipped
}

// ComputeStreaks 计算截至 today 的连续天数。
// 当前连续从 today 开始倒数：today 没有记录即为 0，遇到失败或缺失的日期即停止。
// 最长连续遍历全部历史，失败或缺口都会重置计数。晚于 today 的记录不参与计算。
func ComputeStreaks(days []Day, today time.Time) Streaks {
	ordered := settle(days, today)
	if len(ordered) == 0 {
		return Streaks{}
	}

	var result Streaks

	expected := record.Day(today)
	for i := len(ordered) - 1; i >= 0; i-- {
		d := ordered[i]
		if !d.Date.Equal(expected) || !d.Success {
			break
		}
		result.Current++
		expected = expected.AddDate(0, 0, -1)
	}

	run := 0
	var previous time.Time
	for _, d := range ordered {
		if !d.Success {
			run = 0
			continue
		}
		if run > 0 && d.Date.Equal(previous.AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		previous = d.Date
		result.Longest = max(result.Longest, run)
	}

	return result
}

// Measure 计算连续天数与完成率（成功天数 / 有记录天数）
func Measure(days []Day, today time.Time) Consistency {
	ordered := settle(days, today)
	streaks := ComputeStreaks(ordered, today)

	successes := 0
	for _, d := range ordered {
		if d.Success {
			successes++
		}
	}

	return Consistency{
		CurrentStreak:  streaks.Current,
		LongestStreak:  streaks.Longest,
		Successes:      successes,
		Tracked:        len(ordered),
		CompletionRate: Percent(successes, len(ordered)),
	}
}

// Percent 返回四舍五入的百分比，分母为 0 时为 0
func Percent(numerator, denominator int) int {
	if denominator <= 0 {
		return 0
	}
	return int(math.Round(float64(numerator) * 100 / float64(denominator)))
}

// containsDay 判断 days 中是否有 day 这一天的记录
func containsDay(days []Day, day time.Time) bool {
	target := record.Day(day)
	for _, d := range days {
		if record.Day(d.Date).Equal(target) {
			return true
		}
	}
	return false
}

// settle 去重、丢弃晚于 today 的日期并按日期升序排列
func settle(days []Day, today time.Time) []Day {
	limit := record.Day(today)
	merged := make(map[time.Time]bool, len(days))
	for _, d := range days {
		date := record.Day(d.Date)
		if date.After(limit) {
			continue
		}
		merged[date] = merged[date] || d.Success
	}

	ordered := make([]Day, 0, len(merged))
	for date, success := range merged {
		ordered = append(ordered, Day{Date: date, Success: success})
	}
	slices.SortFunc(ordered, func(a, b Day) int {
		return a.Date.Compare(b.Date)
	})
	return ordered
}
