package stats

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/lifelog/internal/record"
	"github.com/lifelog/internal/sentiment"
)

// 日记情绪趋势：比较最近 7 天与之前 7 天的平均情绪分
const (
	JournalTrendWindow    = 7
	JournalTrendTolerance = 5.0
	TopEmotionLimit       = 3
)

// EmotionCount 是某种情绪出现的次数
type EmotionCount struct {
	Emotion sentiment.Emotion `json:"emotion"`
	Count   int               `json:"count"`
}

// JournalStats 汇总日记。情绪分布按 EffectiveMood 计，手动情绪覆盖分析标签。
type JournalStats struct {
	TotalEntries     int            `json:"totalEntries"`
	CurrentStreak    int            `json:"currentStreak"`
	LongestStreak    int            `json:"longestStreak"`
	AnalyzedEntries  int            `json:"analyzedEntries"`
	AverageScore     int            `json:"averageScore"`
	MoodDistribution map[string]int `json:"moodDistribution"`
	TopEmotions      []EmotionCount `json:"topEmotions"`
	EntriesThisMonth int            `json:"entriesThisMonth"`
	MonthScore       int            `json:"monthScore"`
	Trend            Trend          `json:"trend"`
	WrittenToday     bool           `json:"writtenToday"`
	Skipped          int            `json:"skipped"`
}

// ComputeJournalStats 基于日记计算统计；内容为空的日记不算写作
func ComputeJournalStats(entries []record.JournalEntry, now time.Time) JournalStats {
	today := record.Day(now)
	stats := JournalStats{
		MoodDistribution: map[string]int{},
		Trend:            TrendStable,
	}

	var (
		days             []Day
		scoreSum         int
		recent, previous []int
		emotions         = map[sentiment.Emotion]int{}
		recentStart      = today.AddDate(0, 0, -(JournalTrendWindow - 1))
		previousStart    = recentStart.AddDate(0, 0, -JournalTrendWindow)
	)
	for _, e := range entries {
		day, err := record.ParseDate(e.Date)
		if err != nil {
			stats.Skipped++
			continue
		}
		if day.After(today) {
			continue
		}
		stats.TotalEntries++
		written := strings.TrimSpace(e.Content) != ""
		days = append(days, Day{Date: day, Success: written})
		if written && day.Equal(today) {
			stats.WrittenToday = true
		}

		if mood := e.EffectiveMood(); mood != "" {
			stats.MoodDistribution[mood]++
		}
		if e.Sentiment == nil {
			continue
		}
		stats.AnalyzedEntries++
		scoreSum += e.Sentiment.Score
		for _, emotion := range e.Sentiment.Emotions {
			emotions[emotion]++
		}
		switch {
		case !day.Before(recentStart):
			recent = append(recent, e.Sentiment.Score)
		case !day.Before(previousStart):
			previous = append(previous, e.Sentiment.Score)
		}
	}

	consistency := Measure(days, today)
	stats.CurrentStreak = consistency.CurrentStreak
	stats.LongestStreak = consistency.LongestStreak
	month := MonthScore(days, today, today)
	stats.EntriesThisMonth = month.TrackedDays
	stats.MonthScore = month.Score
	if stats.AnalyzedEntries > 0 {
		stats.AverageScore = int(math.Round(float64(scoreSum) / float64(stats.AnalyzedEntries)))
	}
	stats.TopEmotions = topEmotions(emotions, TopEmotionLimit)
	if len(recent) > 0 && len(previous) > 0 {
		stats.Trend = trendOf(mean(recent)-mean(previous), JournalTrendTolerance)
	}
	return stats
}

func topEmotions(counts map[sentiment.Emotion]int, limit int) []EmotionCount {
	result := make([]EmotionCount, 0, len(counts))
	for emotion, count := range counts {
		result = append(result, EmotionCount{Emotion: emotion, Count: count})
	}
	slices.SortFunc(result, func(a, b EmotionCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Emotion, b.Emotion)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
