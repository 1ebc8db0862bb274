package record

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout 为所有记录使用的日历日格式
	DateLayout = "2006-01-02"
	// MonthLayout 为月度意图使用的月份格式
	MonthLayout = "2006-01"
)

var (
	// ErrInvalidDate 在日期字符串无法解析时返回
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidMonth 在月份字符串无法解析时返回
	ErrInvalidMonth = errors.New("invalid month")
)

// ParseDate 解析 YYYY-MM-DD，结果为 UTC 零点，便于按日历日比较
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return t, nil
}

// ParseMonth 解析 YYYY-MM，返回该月第一天
func ParseMonth(raw string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, raw)
	}
	return t, nil
}

// Day 截取 t 在其所在时区的日历日，并以 UTC 零点表示。
// 所有日期比较都基于该表示，避免夏令时导致的 23/25 小时日。
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate 将时间格式化为日历日字符串
func FormatDate(t time.Time) string {
	return Day(t).Format(DateLayout)
}

// FormatMonth 将时间格式化为 YYYY-MM
func FormatMonth(t time.Time) string {
	return Day(t).Format(MonthLayout)
}

// NormalizeDate 校验并规范化日期字符串
func NormalizeDate(raw string) (string, error) {
	t, err := ParseDate(raw)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

// NormalizeMonth 校验并规范化月份字符串
func NormalizeMonth(raw string) (string, error) {
	t, err := ParseMonth(raw)
	if err != nil {
		return "", err
	}
	return t.Format(MonthLayout), nil
}
