package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lifelog/internal/record"
)

func TestBucketServicePutOverwrites(t *testing.T) {
	ctx := context.Background()
	buckets := setupBuckets(t)

	if _, ok, err := buckets.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected missing bucket, got ok=%v err=%v", ok, err)
	}
	if err := buckets.Put(ctx, "k", "v1"); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if err := buckets.Put(ctx, "k", "v2"); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	value, ok, err := buckets.Get(ctx, "k")
	if err != nil || !ok || value != "v2" {
		t.Fatalf("expected v2, got %q ok=%v err=%v", value, ok, err)
	}

	if err := buckets.Put(ctx, "other", "x"); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	values, err := buckets.GetMany(ctx, []string{"k", "other", "absent"})
	if err != nil {
		t.Fatalf("GetMany returned error: %v", err)
	}
	if len(values) != 2 || values["other"] != "x" {
		t.Fatalf("unexpected values: %+v", values)
	}

	if err := buckets.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok, _ := buckets.Get(ctx, "k"); ok {
		t.Fatal("expected bucket to be deleted")
	}
}

func TestBucketServiceTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	buckets := setupBuckets(t)
	boom := errors.New("boom")

	err := buckets.Transaction(ctx, func(tx *BucketService) error {
		if err := tx.Put(ctx, "k", "v"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if _, ok, _ := buckets.Get(ctx, "k"); ok {
		t.Fatal("expected write to be rolled back")
	}
}

func TestCorruptBucketFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	buckets := setupBuckets(t)
	if err := buckets.Put(ctx, record.BucketHabits, "{not json"); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	svc := NewHabitService(buckets, WithClock(fixedClock))
	habits, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(habits) != 0 {
		t.Fatalf("expected empty habits, got %+v", habits)
	}

	if _, err := svc.Create(ctx, HabitInput{Name: "Walk"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	habits, err = svc.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(habits) != 1 {
		t.Fatalf("expected bucket to be rewritten with the new habit, got %+v", habits)
	}
}
