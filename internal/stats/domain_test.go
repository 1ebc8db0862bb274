package stats

import (
	"testing"
	"time"

	"github.com/lifelog/internal/record"
	"github.com/lifelog/internal/sentiment"
	"github.com/shopspring/decimal"
)

func amount(t *testing.T, raw string) *decimal.Decimal {
	t.Helper()
	value, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("parse amount %q: %v", raw, err)
	}
	return &value
}

func TestComputeBudgetStats(t *testing.T) {
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	entries := []record.BudgetEntry{
		{Date: "2024-02-28", StayedWithinBudget: true, TrackedExpenses: true, Amount: amount(t, "50.00")},
		{Date: "2024-03-01", StayedWithinBudget: true, TrackedExpenses: true, Amount: amount(t, "12.50")},
		{Date: "2024-03-02", StayedWithinBudget: true, TrackedExpenses: false, Amount: amount(t, "7.25")},
		{Date: "2024-03-03", StayedWithinBudget: true, TrackedExpenses: true},
		{Date: "2024-03-04", StayedWithinBudget: true, TrackedExpenses: true, Amount: amount(t, "0.25")},
		{Date: "2024-03-09", StayedWithinBudget: true, TrackedExpenses: true, Amount: amount(t, "100")},
		{Date: "03/05/2024", StayedWithinBudget: true, TrackedExpenses: true},
	}

	stats := ComputeBudgetStats(entries, now)

	if stats.Skipped != 1 {
		t.Fatalf("expected 1 skipped entry, got %d", stats.Skipped)
	}
	if stats.TotalDays != 5 || stats.WithinBudgetDays != 5 || stats.TrackedDays != 4 || stats.GoodDays != 4 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.CurrentStreak != 2 || stats.LongestStreak != 2 {
		t.Fatalf("unexpected streaks: %d/%d", stats.CurrentStreak, stats.LongestStreak)
	}
	if stats.CompletionRate != 80 {
		t.Fatalf("expected completion rate 80, got %d", stats.CompletionRate)
	}
	if stats.MonthScore != 75 {
		t.Fatalf("expected month score 75, got %d", stats.MonthScore)
	}
	if stats.DaysTrackedThisMonth != 4 || stats.DaysElapsedThisMonth != 4 {
		t.Fatalf("unexpected month counts: %d/%d", stats.DaysTrackedThisMonth, stats.DaysElapsedThisMonth)
	}
	if !stats.MonthSpend.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("expected month spend 20.00, got %s", stats.MonthSpend)
	}
	if len(stats.History) != BudgetHistoryMonths {
		t.Fatalf("expected %d history months, got %d", BudgetHistoryMonths, len(stats.History))
	}
	feb := stats.History[len(stats.History)-2]
	if feb.Month != "2024-02" || feb.GoodDays != 1 || feb.Denominator != 29 {
		t.Fatalf("unexpected february summary: %+v", feb)
	}
}

func TestComputeBudgetStatsEmpty(t *testing.T) {
	stats := ComputeBudgetStats(nil, time.Now())
	if stats.TotalDays != 0 || stats.CompletionRate != 0 || stats.MonthScore != 0 || !stats.MonthSpend.IsZero() {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func minutes(n int) *int {
	return &n
}

func TestComputeRoutineStats(t *testing.T) {
	now := time.Date(2024, 3, 3, 7, 0, 0, 0, time.UTC)
	routines := []record.Routine{
		{ID: "wind-down", Name: "Wind down", Kind: record.RoutineEvening, HabitIDs: []string{"read"}},
		{ID: "wake", Name: "Wake up", Kind: record.RoutineMorning, HabitIDs: []string{"water", "stretch"}},
	}
	completions := []record.RoutineCompletion{
		{Date: "2024-03-01", RoutineID: "wake", CompletedHabits: []string{"water", "stretch"}, Duration: minutes(10)},
		{Date: "2024-03-02", RoutineID: "wake", CompletedHabits: []string{"water"}, Duration: minutes(5)},
		{Date: "2024-03-03", RoutineID: "wake", CompletedHabits: []string{"stretch", "water"}},
		{Date: "2024-03-03", RoutineID: "deleted", CompletedHabits: []string{"x"}},
		{Date: "someday", RoutineID: "wind-down"},
	}

	stats := ComputeRoutineStats(routines, completions, now)

	if stats.Skipped != 1 {
		t.Fatalf("expected 1 skipped completion, got %d", stats.Skipped)
	}
	if len(stats.Routines) != 2 || stats.Routines[0].RoutineID != "wake" {
		t.Fatalf("expected morning routine first, got %+v", stats.Routines)
	}
	wake := stats.Routines[0]
	if wake.Completions != 3 || wake.FullCompletions != 2 {
		t.Fatalf("unexpected completion counts: %+v", wake)
	}
	if wake.CurrentStreak != 1 || wake.LongestStreak != 1 {
		t.Fatalf("unexpected streaks: %d/%d", wake.CurrentStreak, wake.LongestStreak)
	}
	if wake.AverageDuration != 7.5 {
		t.Fatalf("expected average duration 7.5, got %v", wake.AverageDuration)
	}
	if wake.MonthScore != 67 || !wake.DoneToday {
		t.Fatalf("unexpected month score or today flag: %+v", wake)
	}
	if stats.TotalCompletions != 3 || stats.FullCompletions != 2 || stats.CompletedToday != 1 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
}

func TestComputeSkincareStats(t *testing.T) {
	now := time.Date(2024, 3, 3, 22, 0, 0, 0, time.UTC)
	completions := []record.SkincareCompletion{
		{Date: "2024-03-01", Period: record.PeriodMorning},
		{Date: "2024-03-01", Period: record.PeriodEvening},
		{Date: "2024-03-02", Period: record.PeriodMorning},
		{Date: "2024-03-03", Period: record.PeriodMorning},
		{Date: "2024-03-03", Period: record.PeriodEvening},
		{Date: "", Period: record.PeriodEvening},
	}

	stats := ComputeSkincareStats(completions, now)

	if stats.Skipped != 1 {
		t.Fatalf("expected 1 skipped completion, got %d", stats.Skipped)
	}
	if stats.MorningCount != 3 || stats.EveningCount != 2 {
		t.Fatalf("unexpected period counts: %d/%d", stats.MorningCount, stats.EveningCount)
	}
	if stats.CompleteDays != 2 || stats.TrackedDays != 3 {
		t.Fatalf("unexpected day counts: %d/%d", stats.CompleteDays, stats.TrackedDays)
	}
	if stats.CurrentStreak != 1 || stats.LongestStreak != 1 {
		t.Fatalf("unexpected streaks: %d/%d", stats.CurrentStreak, stats.LongestStreak)
	}
	if stats.CompletionRate != 67 || stats.MonthScore != 67 {
		t.Fatalf("unexpected rates: %d/%d", stats.CompletionRate, stats.MonthScore)
	}
	if !stats.MorningToday || !stats.EveningToday {
		t.Fatalf("expected both periods done today")
	}
}

func analyzed(score int, emotions ...sentiment.Emotion) *sentiment.Data {
	return &sentiment.Data{
		Score:      score,
		Label:      sentiment.LabelFor(score),
		Confidence: sentiment.Medium,
		Emotions:   emotions,
	}
}

func TestComputeJournalStats(t *testing.T) {
	now := time.Date(2024, 3, 14, 20, 0, 0, 0, time.UTC)
	entries := []record.JournalEntry{
		{Date: "2024-03-01", Content: "rough", Sentiment: analyzed(-30, sentiment.Stress)},
		{Date: "2024-03-05", Content: "meh", Sentiment: analyzed(-10, sentiment.Stress, sentiment.Fatigue)},
		{Date: "2024-03-12", Content: "good", Sentiment: analyzed(30, sentiment.Joy)},
		{Date: "2024-03-13", Content: "great", Sentiment: analyzed(50, sentiment.Joy, sentiment.Gratitude), Mood: "calm", ManualMood: true},
		{Date: "2024-03-14", Content: "fine", Sentiment: analyzed(20, sentiment.Stress)},
		{Date: "2024-03-32", Content: "broken"},
	}

	stats := ComputeJournalStats(entries, now)

	if stats.Skipped != 1 {
		t.Fatalf("expected 1 skipped entry, got %d", stats.Skipped)
	}
	if stats.TotalEntries != 5 || stats.AnalyzedEntries != 5 {
		t.Fatalf("unexpected entry counts: %d/%d", stats.TotalEntries, stats.AnalyzedEntries)
	}
	if stats.CurrentStreak != 3 || stats.LongestStreak != 3 {
		t.Fatalf("unexpected streaks: %d/%d", stats.CurrentStreak, stats.LongestStreak)
	}
	if stats.AverageScore != 12 {
		t.Fatalf("expected average score 12, got %d", stats.AverageScore)
	}
	if stats.MoodDistribution["calm"] != 1 || stats.MoodDistribution[string(sentiment.Positive)] != 2 {
		t.Fatalf("unexpected mood distribution: %+v", stats.MoodDistribution)
	}
	if len(stats.TopEmotions) != TopEmotionLimit || stats.TopEmotions[0].Emotion != sentiment.Stress || stats.TopEmotions[0].Count != 3 {
		t.Fatalf("unexpected top emotions: %+v", stats.TopEmotions)
	}
	if stats.TopEmotions[1].Emotion != sentiment.Joy {
		t.Fatalf("expected joy second, got %+v", stats.TopEmotions[1])
	}
	if stats.EntriesThisMonth != 5 || stats.MonthScore != 36 {
		t.Fatalf("unexpected month figures: %d/%d", stats.EntriesThisMonth, stats.MonthScore)
	}
	if stats.Trend != TrendUp {
		t.Fatalf("expected upward trend, got %q", stats.Trend)
	}
	if !stats.WrittenToday {
		t.Fatalf("expected entry written today")
	}
}

func TestComputeJournalStatsEmpty(t *testing.T) {
	stats := ComputeJournalStats(nil, time.Now())
	if stats.TotalEntries != 0 || stats.AverageScore != 0 || stats.Trend != TrendStable || len(stats.TopEmotions) != 0 {
		t.Fatalf("expected empty journal stats, got %+v", stats)
	}
}

func TestIntentionFor(t *testing.T) {
	intentions := []record.MonthlyIntention{
		{Month: "2024-02", Intention: "rest"},
		{Month: "2024-03", Intention: "focus"},
	}
	got, ok := IntentionFor(intentions, time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC))
	if !ok || got.Intention != "focus" {
		t.Fatalf("expected march intention, got %+v (ok=%v)", got, ok)
	}
	if _, ok := IntentionFor(intentions, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)); ok {
		t.Fatalf("expected no april intention")
	}
}
