// Package cli 提供终端输出的格式化与渲染。
package cli

import (
	"fmt"
	"strings"

	"github.com/lifelog/internal/stats"
	"github.com/shopspring/decimal"
)

// FormatPercent 将 0-100 的整数格式化为百分比
func FormatPercent(p int) string {
	return fmt.Sprintf("%d%%", p)
}

// FormatStreak 格式化连续天数，例如 "3 / 7 days"
func FormatStreak(current, longest int) string {
	return fmt.Sprintf("%d / %d days", current, longest)
}

// FormatMoney 保留两位小数
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatTrend 将趋势转换为箭头
func FormatTrend(t stats.Trend) string {
	switch t {
	case stats.TrendUp:
		return "↑"
	case stats.TrendDown:
		return "↓"
	case stats.TrendStable:
		return "→"
	default:
		return "-"
	}
}

// FormatBar 以 width 个字符绘制 0-100 的进度条
func FormatBar(p, width int) string {
	if width <= 0 {
		return ""
	}
	p = min(max(p, 0), 100)
	filled := (p*width + 50) / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// FormatCheck 渲染布尔状态
func FormatCheck(done bool) string {
	if done {
		return "✓"
	}
	return "·"
}
