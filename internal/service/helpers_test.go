package service

import (
	"strings"
	"testing"
	"time"

	"github.com/lifelog/internal/db"
)

var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.Local)

func fixedClock() time.Time { return fixedNow }

func setupBuckets(t *testing.T) *BucketService {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	gdb, err := db.Open("file:"+name+"?mode=memory&cache=shared", db.Options{Silent: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = db.Close(gdb)
	})
	return NewBucketService(gdb)
}

func boolPtr(v bool) *bool { return &v }

func intPtr(v int) *int { return &v }

func stringPtr(v string) *string { return &v }
