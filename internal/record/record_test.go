package record

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lifelog/internal/sentiment"
	"github.com/shopspring/decimal"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{input: "2024-02-29", want: "2024-02-29", ok: true},
		{input: " 2024-01-05 ", want: "2024-01-05", ok: true},
		{input: "2023-02-29", ok: false},
		{input: "2024/01/05", ok: false},
		{input: "", ok: false},
	}
	for _, tc := range cases {
		got, err := NormalizeDate(tc.input)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("NormalizeDate(%q) = %q, %v; want %q", tc.input, got, err, tc.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("NormalizeDate(%q) expected ErrInvalidDate, got %v", tc.input, err)
		}
	}

	if _, err := NormalizeMonth("2024-13"); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
}

func TestDayKeepsLocalCalendarDay(t *testing.T) {
	zone := time.FixedZone("UTC+8", 8*3600)
	local := time.Date(2024, 3, 1, 1, 30, 0, 0, zone)
	if got := FormatDate(local); got != "2024-03-01" {
		t.Fatalf("expected local calendar day, got %q", got)
	}
}

func TestDecodeMissingAndCorruptBuckets(t *testing.T) {
	store, err := DecodeHabits("")
	if err != nil || store == nil || store.Len() != 0 {
		t.Fatalf("expected empty store for missing bucket, got %v, %v", store, err)
	}

	store, err = DecodeHabits("{not json")
	if store == nil || store.Len() != 0 {
		t.Fatalf("expected empty store for corrupt bucket")
	}
	if !errors.Is(err, ErrCorruptBucket) {
		t.Fatalf("expected ErrCorruptBucket, got %v", err)
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Bucket != BucketHabits {
		t.Fatalf("expected DecodeError for %s, got %v", BucketHabits, err)
	}
}

func TestDecodeSkipsMalformedRecordsAndFillsDefaults(t *testing.T) {
	raw := `[{"id":"a","name":"Walk"},{"id":"b","name":"Read","active":false,"frequency":"weekly"},{"name":"no id"},42]`

	store, err := DecodeHabits(raw)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Skipped != 2 || decodeErr.Corrupt {
		t.Fatalf("expected 2 skipped records, got %v", err)
	}
	if errors.Is(err, ErrCorruptBucket) {
		t.Fatalf("partial decode must not report a corrupt bucket")
	}

	walk, ok := store.Get("a")
	if !ok || !walk.Active || walk.Frequency != FrequencyDaily {
		t.Fatalf("expected defaults for missing fields, got %+v", walk)
	}
	read, _ := store.Get("b")
	if read.Active || read.Frequency != FrequencyWeekly {
		t.Fatalf("expected stored values to win over defaults, got %+v", read)
	}
}

func TestHabitStoreRoundTrip(t *testing.T) {
	store := NewHabitStore()
	created := store.Put(Habit{Name: "Meditate", LifeArea: AreaMind, Active: true, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	store.Put(Habit{ID: "z", Name: "Paused", Active: false, CreatedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)})

	if got := len(store.Active()); got != 1 {
		t.Fatalf("expected 1 active habit, got %d", got)
	}
	if store.Len() != 2 {
		t.Fatalf("Active must not drop stored habits, got %d", store.Len())
	}

	raw, err := store.Encode()
	if err != nil {
		t.Fatalf("encode habits: %v", err)
	}
	decoded, err := DecodeHabits(raw)
	if err != nil {
		t.Fatalf("decode habits: %v", err)
	}
	if decoded.Len() != 2 || decoded.All()[0].ID != "z" {
		t.Fatalf("unexpected decoded habits: %+v", decoded.All())
	}
}

func TestCompletionStoreUniqueness(t *testing.T) {
	store := NewCompletionStore()
	c := HabitCompletion{HabitID: "run", Date: "2024-01-01", LifeArea: AreaHealth}

	if !store.Set(c, true) {
		t.Fatalf("first check-in should change the store")
	}
	if store.Set(c, true) {
		t.Fatalf("repeated check-in should not change the store")
	}
	if store.Len() != 1 {
		t.Fatalf("expected one completion, got %d", store.Len())
	}
	if store.Toggle(c) {
		t.Fatalf("toggle should uncheck an existing completion")
	}
	if store.Has("run", "2024-01-01") {
		t.Fatalf("expected completion removed")
	}

	store.Set(HabitCompletion{HabitID: "run", Date: "2024-01-02"}, true)
	store.Set(HabitCompletion{HabitID: "read", Date: "2024-01-02"}, true)
	if removed := store.RemoveHabit("run"); removed != 1 {
		t.Fatalf("expected 1 removed completion, got %d", removed)
	}
	if got := store.ForHabit("read"); len(got) != 1 {
		t.Fatalf("expected read completion to remain, got %+v", got)
	}
}

func TestBudgetStoreUpsertByDate(t *testing.T) {
	store := NewBudgetStore()
	first := store.Upsert(BudgetEntry{Date: "2024-01-01", StayedWithinBudget: true})
	amount := decimal.RequireFromString("12.34")
	second := store.Upsert(BudgetEntry{Date: "2024-01-01", TrackedExpenses: true, Amount: &amount, Notes: "  lunch "})

	if store.Len() != 1 {
		t.Fatalf("expected one entry per date, got %d", store.Len())
	}
	if first.ID != second.ID {
		t.Fatalf("expected id to be preserved, got %q and %q", first.ID, second.ID)
	}
	got, _ := store.Get("2024-01-01")
	if got.StayedWithinBudget || !got.TrackedExpenses || got.Notes != "lunch" {
		t.Fatalf("expected last write to replace the entry, got %+v", got)
	}

	raw, err := store.Encode()
	if err != nil {
		t.Fatalf("encode budget: %v", err)
	}
	if !strings.Contains(raw, `"amount":"12.34"`) {
		t.Fatalf("expected decimal amount in %s", raw)
	}
	decoded, err := DecodeBudget(raw)
	if err != nil {
		t.Fatalf("decode budget: %v", err)
	}
	entry, _ := decoded.Get("2024-01-01")
	if entry.Amount == nil || !entry.Amount.Equal(amount) {
		t.Fatalf("expected amount to survive, got %+v", entry.Amount)
	}
}

func TestJournalManualMood(t *testing.T) {
	store := NewJournalStore()
	data := sentiment.Data{Score: 30, Label: sentiment.Positive}
	store.Upsert(JournalEntry{Date: "2024-01-01", Content: "ok", Mood: string(data.Label), Sentiment: &data})

	entry, ok := store.SetMood("2024-01-01", "tired")
	if !ok || !entry.ManualMood || entry.EffectiveMood() != "tired" {
		t.Fatalf("expected manual mood, got %+v", entry)
	}

	entry, _ = store.ClearMood("2024-01-01")
	if entry.ManualMood || entry.EffectiveMood() != string(sentiment.Positive) {
		t.Fatalf("expected analysed mood after clearing, got %+v", entry)
	}

	if _, ok := store.SetMood("2024-02-01", "happy"); ok {
		t.Fatalf("expected missing entry")
	}
}

func TestIntentionUpsertByMonth(t *testing.T) {
	store := NewIntentionStore()
	first := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	a := store.Upsert("2024-03", "focus", "", first)
	b := store.Upsert("2024-03", " rest ", "note", later)

	if store.Len() != 1 {
		t.Fatalf("expected one intention per month, got %d", store.Len())
	}
	if a.ID != b.ID || !b.CreatedAt.Equal(first) || !b.UpdatedAt.Equal(later) {
		t.Fatalf("expected id and createdAt preserved, got %+v", b)
	}
	if b.Intention != "rest" {
		t.Fatalf("expected trimmed intention, got %q", b.Intention)
	}
}

func TestRoutineCompletionOrderedSet(t *testing.T) {
	store := NewRoutineCompletionStore()
	got := store.Put(RoutineCompletion{Date: "2024-01-01", RoutineID: "r", CompletedHabits: []string{"b", "a", "b", " ", "c"}})
	want := []string{"b", "a", "c"}
	if strings.Join(got.CompletedHabits, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected completed habits: %v", got.CompletedHabits)
	}
	store.Put(RoutineCompletion{Date: "2024-01-01", RoutineID: "r"})
	if store.Len() != 1 {
		t.Fatalf("expected one completion per routine and date, got %d", store.Len())
	}
}

func TestDecodeSkincareNormalizesPeriod(t *testing.T) {
	store, err := DecodeSkincare(`[{"date":"2024-01-01","period":"AM"},{"date":"2024-01-01","period":"noon"}]`)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Skipped != 1 {
		t.Fatalf("expected one skipped record, got %v", err)
	}
	all := store.All()
	if len(all) != 1 || all[0].Period != PeriodMorning {
		t.Fatalf("unexpected skincare records: %+v", all)
	}
}

func TestDecodeProfile(t *testing.T) {
	profile, err := DecodeProfile(`{"name":"Ana","areaGoals":{"Health":3,"unknown":2,"mind":0}}`)
	if err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile.Name != "Ana" || profile.Language != "en" || profile.Theme != "system" {
		t.Fatalf("expected defaults merged under stored fields, got %+v", profile)
	}
	if len(profile.AreaGoals) != 1 || profile.AreaGoals[AreaHealth] != 3 {
		t.Fatalf("unexpected area goals: %+v", profile.AreaGoals)
	}

	fallback, err := DecodeProfile(`[]`)
	if !errors.Is(err, ErrCorruptBucket) {
		t.Fatalf("expected corrupt profile error, got %v", err)
	}
	if fallback.Language != "en" || fallback.AreaGoals == nil {
		t.Fatalf("expected default profile, got %+v", fallback)
	}
}

func TestZeroSnapshotStoresReadAsEmpty(t *testing.T) {
	var snapshot Snapshot

	if snapshot.Habits.Len() != 0 || len(snapshot.Habits.All()) != 0 || len(snapshot.Habits.Active()) != 0 {
		t.Fatal("expected nil habit store to be empty")
	}
	if snapshot.Completions.Has("h1", "2024-03-01") || len(snapshot.Completions.ForHabit("h1")) != 0 {
		t.Fatal("expected nil completion store to be empty")
	}
	if _, ok := snapshot.Journal.Get("2024-03-01"); ok {
		t.Fatal("expected nil journal store to miss")
	}
	if _, ok := snapshot.Intentions.Get("2024-03"); ok {
		t.Fatal("expected nil intention store to miss")
	}
	for name, encode := range map[string]func() (string, error){
		"budget":   snapshot.Budget.Encode,
		"routines": snapshot.Routines.Encode,
		"runs":     snapshot.RoutineCompletions.Encode,
		"skincare": snapshot.Skincare.Encode,
	} {
		raw, err := encode()
		if err != nil || raw != "[]" {
			t.Fatalf("%s: expected [] from nil store, got %q (%v)", name, raw, err)
		}
	}
}
