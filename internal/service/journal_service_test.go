package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lifelog/internal/sentiment"
)

func TestJournalServiceSaveAnalyzesContent(t *testing.T) {
	ctx := context.Background()
	buckets := setupBuckets(t)
	habits := NewHabitService(buckets, WithClock(fixedClock))
	svc := NewJournalService(buckets, WithClock(fixedClock))

	run, _ := habits.Create(ctx, HabitInput{Name: "Run"})
	if _, err := habits.Create(ctx, HabitInput{Name: "Read"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := habits.Check(ctx, CheckInput{HabitID: run.ID, Date: "2024-03-15", Done: true}); err != nil {
		t.Fatalf("Check returned error: %v", err)
	}

	entry, err := svc.Save(ctx, JournalInput{Date: "2024-03-15", Content: "**Happy** and grateful for a calm morning"})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if entry.ID == "" {
		t.Fatal("expected journal entry to have ID")
	}
	if entry.Sentiment == nil {
		t.Fatal("expected sentiment to be analysed")
	}
	if entry.Sentiment.Score <= 0 {
		t.Fatalf("expected positive score, got %d", entry.Sentiment.Score)
	}
	if entry.Mood != string(entry.Sentiment.Label) || entry.ManualMood {
		t.Fatalf("expected mood to follow label, got %+v", entry)
	}
	if entry.HabitsSummary == nil || entry.HabitsSummary.Completed != 1 || entry.HabitsSummary.Total != 2 {
		t.Fatalf("unexpected habits summary: %+v", entry.HabitsSummary)
	}

	again, err := svc.Save(ctx, JournalInput{Date: "2024-03-15", Content: "**Happy** and grateful for a calm morning"})
	if err != nil {
		t.Fatalf("second Save returned error: %v", err)
	}
	if again.ID != entry.ID {
		t.Fatalf("expected ID to be preserved, got %s vs %s", again.ID, entry.ID)
	}
	if !again.Sentiment.AnalyzedAt.Equal(entry.Sentiment.AnalyzedAt) {
		t.Fatal("expected unchanged content to keep previous analysis")
	}
}

func TestJournalServiceManualMoodIsPreserved(t *testing.T) {
	ctx := context.Background()
	svc := NewJournalService(setupBuckets(t), WithClock(fixedClock))

	if _, err := svc.Save(ctx, JournalInput{Date: "2024-03-14", Content: "Stressed and exhausted"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	entry, err := svc.SetMood(ctx, "2024-03-14", "calm")
	if err != nil {
		t.Fatalf("SetMood returned error: %v", err)
	}
	if entry.Mood != "calm" || !entry.ManualMood {
		t.Fatalf("expected manual mood, got %+v", entry)
	}

	entry, err = svc.Save(ctx, JournalInput{Date: "2024-03-14", Content: "Happy after all"})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if entry.Mood != "calm" || !entry.ManualMood {
		t.Fatalf("expected manual mood to survive content change, got %+v", entry)
	}
	if entry.Sentiment == nil || entry.Sentiment.Label == sentiment.Positive {
		t.Fatalf("expected analysis to be left untouched while mood is manual, got %+v", entry.Sentiment)
	}

	entry, err = svc.SetMood(ctx, "2024-03-14", "")
	if err != nil {
		t.Fatalf("clear mood returned error: %v", err)
	}
	if entry.ManualMood || entry.Mood != string(entry.Sentiment.Label) {
		t.Fatalf("expected mood to fall back to analysed label, got %+v", entry)
	}
	if entry.Sentiment.Score <= 0 {
		t.Fatalf("expected clearing the mood to analyse the current content, got %+v", entry.Sentiment)
	}

	if _, err := svc.SetMood(ctx, "2024-03-01", "calm"); !errors.Is(err, ErrJournalNotFound) {
		t.Fatalf("expected ErrJournalNotFound, got %v", err)
	}
}

func TestJournalServiceRenderSanitizes(t *testing.T) {
	ctx := context.Background()
	svc := NewJournalService(setupBuckets(t), WithClock(fixedClock))

	if _, err := svc.Save(ctx, JournalInput{Date: "2024-03-15", Content: "# Today\n\n<script>alert(1)</script>\n\n- walked"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	rendered, err := svc.Render(ctx, "2024-03-15")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if strings.Contains(rendered, "<script>") {
		t.Fatalf("expected script to be removed, got %s", rendered)
	}
	if !strings.Contains(rendered, "<h1") || !strings.Contains(rendered, "<li>walked</li>") {
		t.Fatalf("expected markdown to be rendered, got %s", rendered)
	}

	if _, err := svc.Render(ctx, "2024-03-01"); !errors.Is(err, ErrJournalNotFound) {
		t.Fatalf("expected ErrJournalNotFound, got %v", err)
	}
}

func TestJournalServiceStatsAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewJournalService(setupBuckets(t), WithClock(fixedClock))

	for _, date := range []string{"2024-03-14", "2024-03-15"} {
		if _, err := svc.Save(ctx, JournalInput{Date: date, Content: "Happy day"}); err != nil {
			t.Fatalf("Save returned error: %v", err)
		}
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.TotalEntries != 2 || stats.CurrentStreak != 2 || !stats.WrittenToday {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	if err := svc.Delete(ctx, "2024-03-15"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	entries, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Date != "2024-03-14" {
		t.Fatalf("unexpected entries after delete: %+v", entries)
	}
}

func TestPlainTextStripsMarkup(t *testing.T) {
	got := PlainText("# Title\n\nSome **bold** <em>text</em> &amp; [link](https://example.com)")
	want := "Title Some bold text & link"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestJournalServiceClearMoodRefreshesStaleAnalysis(t *testing.T) {
	ctx := context.Background()
	svc := NewJournalService(setupBuckets(t), WithClock(fixedClock))
	const date = "2024-03-14"
	const content = "Happy and grateful, a wonderful day"

	if _, err := svc.Save(ctx, JournalInput{Date: date, Content: "Stressed and exhausted"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if _, err := svc.SetMood(ctx, date, "calm"); err != nil {
		t.Fatalf("SetMood returned error: %v", err)
	}
	if _, err := svc.Save(ctx, JournalInput{Date: date, Content: content}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if _, err := svc.SetMood(ctx, date, ""); err != nil {
		t.Fatalf("clear mood returned error: %v", err)
	}

	entry, err := svc.Save(ctx, JournalInput{Date: date, Content: content})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	fresh := sentiment.Analyze(PlainText(content), fixedNow)
	if entry.Sentiment == nil || !entry.Sentiment.Equal(fresh) {
		t.Fatalf("expected stored analysis %+v to match a fresh one %+v", entry.Sentiment, fresh)
	}
	if entry.Mood != string(fresh.Label) || entry.ManualMood {
		t.Fatalf("expected mood to follow the fresh label, got %+v", entry)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.AverageScore <= 0 {
		t.Fatalf("expected positive average score, got %+v", stats)
	}
}
