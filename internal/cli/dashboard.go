package cli

import (
	"fmt"
	"strings"

	"github.com/lifelog/internal/sentiment"
	"github.com/lifelog/internal/service"
	"github.com/lifelog/internal/stats"
)

// RenderDashboard 渲染仪表盘的全部表格
func RenderDashboard(d service.Dashboard) string {
	var b strings.Builder

	title := d.Greeting
	if d.Name != "" {
		title += ", " + d.Name
	}
	b.WriteString(RenderTitle(title + "  " + d.Date))
	b.WriteString("\n")
	b.WriteString("  " + RenderMuted(d.Subtitle) + "\n")
	b.WriteString(fmt.Sprintf("  %q  %s\n", d.Quote.Text, RenderMuted("- "+d.Quote.Author)))
	if d.Intention != nil {
		b.WriteString("  " + RenderHeading("Intention") + "  " + d.Intention.Intention + "\n")
	}
	b.WriteString("\n")

	b.WriteString(RenderTable(Table{
		Title:   "Overview",
		Headers: []string{"Area", "Streak", "Rate", "Month", "Today"},
		Rows: [][]string{
			{"Habits", FormatStreak(d.Habits.CurrentStreak, d.Habits.LongestStreak), FormatPercent(d.Habits.CompletionRate), FormatPercent(d.Habits.MonthScore), fmt.Sprintf("%d done", d.Habits.CompletedToday)},
			{"Budget", FormatStreak(d.Budget.CurrentStreak, d.Budget.LongestStreak), FormatPercent(d.Budget.CompletionRate), FormatPercent(d.Budget.MonthScore), FormatMoney(d.Budget.MonthSpend)},
			{"Journal", FormatStreak(d.Journal.CurrentStreak, d.Journal.LongestStreak), "-", FormatPercent(d.Journal.MonthScore), FormatCheck(d.Journal.WrittenToday)},
			{"Skincare", FormatStreak(d.Skincare.CurrentStreak, d.Skincare.LongestStreak), FormatPercent(d.Skincare.CompletionRate), FormatPercent(d.Skincare.MonthScore), FormatCheck(d.Skincare.MorningToday) + " " + FormatCheck(d.Skincare.EveningToday)},
		},
	}))
	b.WriteString("\n")

	if len(d.Routines.Routines) > 0 {
		rows := make([][]string, 0, len(d.Routines.Routines))
		for _, r := range d.Routines.Routines {
			rows = append(rows, []string{
				r.Name,
				r.Kind,
				FormatStreak(r.CurrentStreak, r.LongestStreak),
				FormatPercent(r.CompletionRate),
				fmt.Sprintf("%.1f min", r.AverageDuration),
				FormatCheck(r.DoneToday),
			})
		}
		b.WriteString(RenderTable(Table{
			Title:   "Routines",
			Headers: []string{"Routine", "Kind", "Streak", "Rate", "Avg", "Today"},
			Rows:    rows,
		}))
		b.WriteString("\n")
	}

	b.WriteString(RenderLifeBalance(d.LifeBalance))
	if len(d.History) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderMonthlyHistory(d.History))
	}
	return b.String()
}

// RenderLifeBalance 渲染生活平衡表与洞察
func RenderLifeBalance(balance stats.LifeBalance) string {
	rows := make([][]string, 0, len(balance.Areas)+2)
	for _, area := range balance.Areas {
		if area.HabitCount == 0 {
			rows = append(rows, []string{area.Name, "-", "", "0", "-"})
			continue
		}
		rows = append(rows, []string{
			area.Name,
			RenderScore(area.Score),
			FormatBar(area.Score, 10),
			fmt.Sprintf("%d", area.HabitCount),
			FormatTrend(area.Trend),
		})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Overall", RenderScore(balance.OverallScore), FormatBar(balance.OverallScore, 10), "", ""},
		[]string{"Stability", RenderScore(balance.StabilityScore), FormatBar(balance.StabilityScore, 10), "", ""},
	)

	var b strings.Builder
	b.WriteString(RenderTable(Table{
		Title:   "Life balance",
		Headers: []string{"Area", "Score", "", "Habits", "Trend"},
		Rows:    rows,
	}))
	for _, insight := range balance.Insights {
		b.WriteString("  • " + insight + "\n")
	}
	return b.String()
}

// RenderMonthlyHistory 渲染多个月的得分
func RenderMonthlyHistory(reports []stats.MonthReport) string {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			r.Month,
			FormatPercent(r.Habits.Score),
			FormatPercent(r.Budget.Score),
			FormatPercent(r.Journal.Score),
			FormatPercent(r.Skincare.Score),
			FormatPercent(r.Routines.Score),
		})
	}
	return RenderTable(Table{
		Title:   "Monthly scores",
		Headers: []string{"Month", "Habits", "Budget", "Journal", "Skincare", "Routines"},
		Rows:    rows,
	})
}

// RenderMonthReport 渲染单月报告
func RenderMonthReport(r stats.MonthReport) string {
	row := func(name string, s stats.MonthSummary) []string {
		return []string{name, fmt.Sprintf("%d", s.GoodDays), fmt.Sprintf("%d", s.TrackedDays), fmt.Sprintf("%d", s.Denominator), FormatPercent(s.Score)}
	}
	return RenderTable(Table{
		Title:   r.Month,
		Headers: []string{"Area", "Good", "Tracked", "Days", "Score"},
		Rows: [][]string{
			row("Habits", r.Habits),
			row("Budget", r.Budget),
			row("Journal", r.Journal),
			row("Skincare", r.Skincare),
			row("Routines", r.Routines),
		},
	})
}

// RenderSentiment 渲染一次情绪分析结果
func RenderSentiment(data sentiment.Data) string {
	emotions := make([]string, 0, len(data.Emotions))
	for _, e := range data.Emotions {
		emotions = append(emotions, string(e))
	}
	emotionText := "-"
	if len(emotions) > 0 {
		emotionText = strings.Join(emotions, ", ")
	}
	return RenderTable(Table{
		Title: "Sentiment",
		Rows: [][]string{
			{"Score", fmt.Sprintf("%d", data.Score)},
			{"Label", string(data.Label)},
			{"Confidence", string(data.Confidence)},
			{"Emotions", emotionText},
		},
	})
}
