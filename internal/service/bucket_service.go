package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lifelog/internal/db"
	"github.com/lifelog/internal/log"
	"github.com/lifelog/internal/record"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BucketService 读写命名存储桶，是记录持久化的唯一入口。
type BucketService struct {
	db *gorm.DB
}

// NewBucketService 构造 BucketService
func NewBucketService(gdb *gorm.DB) *BucketService {
	return &BucketService{db: gdb}
}

// Get 返回存储桶内容；桶不存在时 ok 为 false
func (s *BucketService) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	var bucket db.Bucket
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&bucket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get bucket %s: %w", key, err)
	}
	return bucket.Value, true, nil
}

// GetMany 一次读取多个存储桶，缺失的桶不会出现在结果中
func (s *BucketService) GetMany(ctx context.Context, keys []string) (map[string]string, error) {
	var buckets []db.Bucket
	if err := s.db.WithContext(ctx).Where("key IN ?", keys).Find(&buckets).Error; err != nil {
		return nil, fmt.Errorf("get buckets: %w", err)
	}

	values := make(map[string]string, len(buckets))
	for _, bucket := range buckets {
		values[bucket.Key] = bucket.Value
	}
	return values, nil
}

// Put 写入存储桶，已存在时覆盖
func (s *BucketService) Put(ctx context.Context, key, value string) error {
	bucket := db.Bucket{Key: key, Value: value}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&bucket).Error; err != nil {
		return fmt.Errorf("put bucket %s: %w", key, err)
	}
	return nil
}

// Delete 删除存储桶
func (s *BucketService) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&db.Bucket{}).Error; err != nil {
		return fmt.Errorf("delete bucket %s: %w", key, err)
	}
	return nil
}

// Transaction 在同一事务中执行 fn，fn 收到绑定到事务的 BucketService
func (s *BucketService) Transaction(ctx context.Context, fn func(tx *BucketService) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BucketService{db: tx})
	})
}

// codec 描述一种存储桶内容的编解码方式
type codec[S any] struct {
	bucket string
	decode func(string) (S, error)
	encode func(S) (string, error)
}

// loadBucket 读取并解码存储桶；内容损坏时记录 WARN 并返回默认值
func loadBucket[S any](ctx context.Context, buckets *BucketService, logger *log.Logger, c codec[S]) (S, error) {
	raw, _, err := buckets.Get(ctx, c.bucket)
	if err != nil {
		var zero S
		return zero, err
	}
	return decodeLogged(ctx, logger, c, raw), nil
}

// mutateBucket 在 tx 中完成一次 读取→修改→写回；change 返回错误时不写回
func mutateBucket[S any](ctx context.Context, tx *BucketService, logger *log.Logger, c codec[S], change func(S) (S, error)) (S, error) {
	current, err := loadBucket(ctx, tx, logger, c)
	if err != nil {
		return current, err
	}

	next, err := change(current)
	if err != nil {
		return current, err
	}

	raw, err := c.encode(next)
	if err != nil {
		return current, fmt.Errorf("encode bucket %s: %w", c.bucket, err)
	}
	if err := tx.Put(ctx, c.bucket, raw); err != nil {
		return current, err
	}
	return next, nil
}

func decodeLogged[S any](ctx context.Context, logger *log.Logger, c codec[S], raw string) S {
	value, err := c.decode(raw)
	if err != nil {
		warnDecode(ctx, logger, c.bucket, err)
	}
	return value
}

func warnDecode(ctx context.Context, logger *log.Logger, bucket string, err error) {
	if logger == nil {
		return
	}
	args := []any{log.FieldOperation, log.OpDecode, log.FieldBucket, bucket, log.FieldError, err.Error()}
	var decodeErr *record.DecodeError
	if errors.As(err, &decodeErr) && !decodeErr.Corrupt {
		args = append(args, log.FieldSkipped, decodeErr.Skipped)
		logger.WarnContext(ctx, "skipped malformed records", args...)
		return
	}
	logger.WarnContext(ctx, "bucket replaced by defaults", args...)
}

// 各存储桶的编解码
var (
	habitsCodec = codec[*record.HabitStore]{
		bucket: record.BucketHabits,
		decode: record.DecodeHabits,
		encode: (*record.HabitStore).Encode,
	}
	completionsCodec = codec[*record.CompletionStore]{
		bucket: record.BucketHabitCompletions,
		decode: record.DecodeCompletions,
		encode: (*record.CompletionStore).Encode,
	}
	budgetCodec = codec[*record.BudgetStore]{
		bucket: record.BucketBudgetEntries,
		decode: record.DecodeBudget,
		encode: (*record.BudgetStore).Encode,
	}
	journalCodec = codec[*record.JournalStore]{
		bucket: record.BucketJournalEntries,
		decode: record.DecodeJournal,
		encode: (*record.JournalStore).Encode,
	}
	routinesCodec = codec[*record.RoutineStore]{
		bucket: record.BucketRoutines,
		decode: record.DecodeRoutines,
		encode: (*record.RoutineStore).Encode,
	}
	routineCompletionsCodec = codec[*record.RoutineCompletionStore]{
		bucket: record.BucketRoutineCompletions,
		decode: record.DecodeRoutineCompletions,
		encode: (*record.RoutineCompletionStore).Encode,
	}
	skincareCodec = codec[*record.SkincareStore]{
		bucket: record.BucketSkincareCompletions,
		decode: record.DecodeSkincare,
		encode: (*record.SkincareStore).Encode,
	}
	intentionsCodec = codec[*record.IntentionStore]{
		bucket: record.BucketMonthlyIntentions,
		decode: record.DecodeIntentions,
		encode: (*record.IntentionStore).Encode,
	}
	profileCodec = codec[record.Profile]{
		bucket: record.BucketProfile,
		decode: record.DecodeProfile,
		encode: record.EncodeProfile,
	}
)
