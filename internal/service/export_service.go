package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lifelog/internal/log"
	"github.com/lifelog/internal/record"
)

// ExportDocument 是完整数据导出，buckets 中每个桶都是规范化后的 JSON
type ExportDocument struct {
	ExportedAt time.Time                  `json:"exportedAt"`
	Count      int                        `json:"count"`
	Buckets    map[string]json.RawMessage `json:"buckets"`
}

// ExportService 导出全部记录
type ExportService struct {
	base
	snapshots *SnapshotService
}

// NewExportService 构造 ExportService
func NewExportService(buckets *BucketService, opts ...Option) *ExportService {
	return &ExportService{
		base:      newBase(buckets, log.ComponentExport, opts),
		snapshots: NewSnapshotService(buckets, opts...),
	}
}

// Export 读取快照并重新编码每个桶；损坏的桶以默认值导出
func (s *ExportService) Export(ctx context.Context) (ExportDocument, error) {
	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		return ExportDocument{}, fmt.Errorf("export: %w", err)
	}

	doc, err := ExportSnapshot(snapshot, s.now())
	if err != nil {
		return ExportDocument{}, fmt.Errorf("export: %w", err)
	}
	s.logger.InfoContext(ctx, "export finished", log.FieldCount, doc.Count)
	return doc, nil
}

// ExportSnapshot 将快照编码为导出文档
func ExportSnapshot(snapshot record.Snapshot, exportedAt time.Time) (ExportDocument, error) {
	encoders := []struct {
		bucket string
		encode func() (string, error)
		count  int
	}{
		{record.BucketHabits, snapshot.Habits.Encode, snapshot.Habits.Len()},
		{record.BucketHabitCompletions, snapshot.Completions.Encode, snapshot.Completions.Len()},
		{record.BucketBudgetEntries, snapshot.Budget.Encode, snapshot.Budget.Len()},
		{record.BucketJournalEntries, snapshot.Journal.Encode, snapshot.Journal.Len()},
		{record.BucketRoutines, snapshot.Routines.Encode, snapshot.Routines.Len()},
		{record.BucketRoutineCompletions, snapshot.RoutineCompletions.Encode, snapshot.RoutineCompletions.Len()},
		{record.BucketSkincareCompletions, snapshot.Skincare.Encode, snapshot.Skincare.Len()},
		{record.BucketMonthlyIntentions, snapshot.Intentions.Encode, snapshot.Intentions.Len()},
		{record.BucketProfile, func() (string, error) { return record.EncodeProfile(snapshot.Profile) }, 0},
	}

	doc := ExportDocument{
		ExportedAt: exportedAt,
		Buckets:    make(map[string]json.RawMessage, len(encoders)),
	}
	for _, e := range encoders {
		raw, err := e.encode()
		if err != nil {
			return ExportDocument{}, fmt.Errorf("encode bucket %s: %w", e.bucket, err)
		}
		doc.Buckets[e.bucket] = json.RawMessage(raw)
		doc.Count += e.count
	}
	return doc, nil
}
