package stats

import (
	"math"
	"time"

	"github.com/lifelog/internal/locale"
	"github.com/lifelog/internal/record"
)

// Trend 是相邻两个窗口之间的变化方向
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// 生活平衡的固定参数
const (
	CompletionWeight   = 0.6
	GoalWeight         = 0.4
	BalanceTrendWindow = 7
	BalanceTolerance   = 3.0
	AttentionBelow     = 50
	WellBalancedFrom   = 80
	UnevenBelow        = 50
	GoalWindowDays     = 7
	AreaHistoryDays    = 2 * BalanceTrendWindow
)

// AreaInput 是单个生活领域的输入。History 为按日的完成率，从早到晚。
type AreaInput struct {
	CompletionRate float64
	GoalProgress   float64
	HabitCount     int
	History        []float64
}

// LifeAreaScore 是单个生活领域的得分
type LifeAreaScore struct {
	Area           record.LifeArea `json:"area"`
	Name           string          `json:"name"`
	Score          int             `json:"score"`
	HabitCount     int             `json:"habitCount"`
	CompletionRate int             `json:"completionRate"`
	GoalProgress   int             `json:"goalProgress"`
	Trend          Trend           `json:"trend"`
}

// LifeBalance 是全部生活领域的组合视图。
// 没有任何领域包含习惯时 OverallScore 与 StabilityScore 均为 0。
type LifeBalance struct {
	Areas          []LifeAreaScore `json:"areas"`
	OverallScore   int             `json:"overallScore"`
	StabilityScore int             `json:"stabilityScore"`
	AreasScored    int             `json:"areasScored"`
	Insights       []string        `json:"insights"`
}

// ComposeLifeBalance 组合各领域得分。
// 领域得分 = 0.6×完成率 + 0.4×目标进度；整体得分为有习惯的领域得分的平均值；
// 稳定度 = 100 − 2×得分总体标准差，限制在 [0,100]。
// Areas 固定按 record.LifeAreas() 顺序返回，缺失的领域得分为 0。
func ComposeLifeBalance(inputs map[record.LifeArea]AreaInput, lang string) LifeBalance {
	balance := LifeBalance{Areas: make([]LifeAreaScore, 0, len(record.LifeAreas()))}

	var scored []LifeAreaScore
	for _, area := range record.LifeAreas() {
		in := inputs[area]
		score := LifeAreaScore{
			Area:           area,
			Name:           AreaName(area, lang),
			HabitCount:     in.HabitCount,
			CompletionRate: clampPercent(in.CompletionRate),
			GoalProgress:   clampPercent(in.GoalProgress),
			Trend:          historyTrend(in.History),
		}
		if in.HabitCount > 0 {
			score.Score = clampPercent(CompletionWeight*in.CompletionRate + GoalWeight*in.GoalProgress)
			scored = append(scored, score)
		} else {
			score.Trend = TrendStable
		}
		balance.Areas = append(balance.Areas, score)
	}

	balance.AreasScored = len(scored)
	if len(scored) > 0 {
		values := make([]float64, len(scored))
		for i, s := range scored {
			values[i] = float64(s.Score)
		}
		balance.OverallScore = clampPercent(meanFloat(values))
		balance.StabilityScore = clampPercent(100 - 2*populationStdDev(values))
	}
	balance.Insights = insights(balance, scored, lang)
	return balance
}

// insights 依次生成：空提示 | 最强领域 | 需关注领域 | 各领域趋势 | 平衡结论
func insights(balance LifeBalance, scored []LifeAreaScore, lang string) []string {
	if len(scored) == 0 {
		return []string{locale.Pick(lang,
			"Add habits to a life area to see your balance.",
			"为生活领域添加习惯后即可查看平衡情况。")}
	}

	strongest, weakest := scored[0], scored[0]
	for _, s := range scored[1:] {
		if s.Score > strongest.Score {
			strongest = s
		}
		if s.Score < weakest.Score {
			weakest = s
		}
	}

	result := []string{locale.Pickf(lang, "%s is your strongest area.", "%s 是你最强的领域。", strongest.Name)}
	if weakest.Score < AttentionBelow && weakest.Area != strongest.Area {
		result = append(result, locale.Pickf(lang, "%s needs attention.", "%s 需要多关注。", weakest.Name))
	}
	for _, s := range scored {
		switch s.Trend {
		case TrendUp:
			result = append(result, locale.Pickf(lang, "%s is trending up.", "%s 正在上升。", s.Name))
		case TrendDown:
			result = append(result, locale.Pickf(lang, "%s is trending down.", "%s 正在下滑。", s.Name))
		}
	}
	switch {
	case balance.StabilityScore >= WellBalancedFrom:
		result = append(result, locale.Pick(lang, "Your life areas are well balanced.", "你的生活各领域很平衡。"))
	case balance.StabilityScore < UnevenBelow:
		result = append(result, locale.Pick(lang, "Your life areas are uneven.", "你的生活各领域不太均衡。"))
	}
	return result
}

// AreaName 返回领域的本地化名称
func AreaName(area record.LifeArea, lang string) string {
	switch area {
	case record.AreaHealth:
		return locale.Pick(lang, "Health", "健康")
	case record.AreaCareer:
		return locale.Pick(lang, "Career", "事业")
	case record.AreaMind:
		return locale.Pick(lang, "Mind", "心智")
	case record.AreaRelationships:
		return locale.Pick(lang, "Relationships", "人际关系")
	}
	return string(area)
}

// historyTrend 比较最近窗口与之前等长窗口的平均完成率，历史不足两个窗口时为平稳
func historyTrend(history []float64) Trend {
	if len(history) < 2*BalanceTrendWindow {
		return TrendStable
	}
	recent := history[len(history)-BalanceTrendWindow:]
	previous := history[len(history)-2*BalanceTrendWindow : len(history)-BalanceTrendWindow]
	return trendOf(meanFloat(recent)-meanFloat(previous), BalanceTolerance)
}

func trendOf(delta, tolerance float64) Trend {
	switch {
	case delta > tolerance:
		return TrendUp
	case delta < -tolerance:
		return TrendDown
	}
	return TrendStable
}

// BuildAreaInputs 从快照构造各领域的输入。
// 领域成员为设置了领域的活跃习惯，以及窗口内打卡过但已无定义的习惯；
// 完成率取最近 30 天，目标进度按资料中每周目标次数计算最近 7 天，未设目标时等于完成率；
// History 为最近 14 天每天的完成率。
func BuildAreaInputs(snapshot record.Snapshot, now time.Time) map[record.LifeArea]AreaInput {
	today := record.Day(now)
	windowStart := today.AddDate(0, 0, -(RateWindowDays - 1))
	goalStart := today.AddDate(0, 0, -(GoalWindowDays - 1))
	historyStart := today.AddDate(0, 0, -(AreaHistoryDays - 1))

	type member struct {
		area      record.LifeArea
		start     time.Time
		frequency string
	}
	members := make(map[string]member)
	defined := make(map[string]struct{})
	if snapshot.Habits != nil {
		for _, h := range snapshot.Habits.All() {
			defined[h.ID] = struct{}{}
			if !h.Active || h.LifeArea == "" {
				continue
			}
			members[h.ID] = member{area: h.LifeArea, start: habitWindowStart(h, windowStart, today), frequency: h.Frequency}
		}
	}

	var completions []record.HabitCompletion
	if snapshot.Completions != nil {
		completions = snapshot.Completions.All()
	}

	type tally struct {
		habits   int
		expected int
		done     int
		goalDone int
		daily    []int
	}
	tallies := make(map[record.LifeArea]*tally)
	tallyFor := func(area record.LifeArea) *tally {
		t, ok := tallies[area]
		if !ok {
			t = &tally{daily: make([]int, AreaHistoryDays)}
			tallies[area] = t
		}
		return t
	}

	type dated struct {
		record.HabitCompletion
		day time.Time
	}
	var inWindow []dated
	for _, c := range completions {
		day, err := record.ParseDate(c.Date)
		if err != nil || day.Before(windowStart) || day.After(today) {
			continue
		}
		inWindow = append(inWindow, dated{HabitCompletion: c, day: day})
		if _, ok := defined[c.HabitID]; ok || c.LifeArea == "" {
			continue
		}
		if _, ok := members[c.HabitID]; !ok {
			members[c.HabitID] = member{area: c.LifeArea, start: windowStart}
		}
	}

	expected := make(map[string]int, len(members))
	for id, m := range members {
		t := tallyFor(m.area)
		t.habits++
		expected[id] = ExpectedCheckIns(m.frequency, m.start, today)
		t.expected += expected[id]
	}
	done := make(map[string]int, len(members))
	for _, c := range inWindow {
		m, ok := members[c.HabitID]
		if !ok || c.day.Before(m.start) {
			continue
		}
		t := tallyFor(m.area)
		if done[c.HabitID] < expected[c.HabitID] {
			done[c.HabitID]++
			t.done++
		}
		if !c.day.Before(goalStart) {
			t.goalDone++
		}
		if !c.day.Before(historyStart) {
			t.daily[DaysBetween(historyStart, c.day)]++
		}
	}

	inputs := make(map[record.LifeArea]AreaInput, len(tallies))
	for area, t := range tallies {
		rate := math.Min(100, percentFloat(t.done, t.expected))
		goal := rate
		if target := snapshot.Profile.AreaGoals[area]; target > 0 {
			goal = math.Min(100, percentFloat(t.goalDone, target))
		}
		history := make([]float64, AreaHistoryDays)
		for i, n := range t.daily {
			history[i] = math.Min(100, percentFloat(n, t.habits))
		}
		inputs[area] = AreaInput{
			CompletionRate: rate,
			GoalProgress:   goal,
			HabitCount:     t.habits,
			History:        history,
		}
	}
	return inputs
}

func percentFloat(numerator, denominator int) float64 {
	if denominator <= 0 {
		return 0
	}
	return float64(numerator) * 100 / float64(denominator)
}

func meanFloat(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := meanFloat(values)
	var sum float64
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return math.Sqrt(sum / float64(len(values)))
}

func clampPercent(value float64) int {
	rounded := int(math.Round(value))
	return max(0, min(100, rounded))
}
