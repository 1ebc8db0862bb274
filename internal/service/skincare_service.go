package service

import (
	"context"
	"fmt"

	"github.com/lifelog/internal/log"
	"github.com/lifelog/internal/record"
	"github.com/lifelog/internal/stats"
)

// SkincareService 负责早晚护肤记录
type SkincareService struct {
	base
}

// SkincareInput 描述某日某时段的护肤完成情况；Done=false 表示撤销
type SkincareInput struct {
	Date   string
	Period string
	Steps  []string
	Done   bool
}

// NewSkincareService 构造 SkincareService
func NewSkincareService(buckets *BucketService, opts ...Option) *SkincareService {
	return &SkincareService{base: newBase(buckets, log.ComponentSkincare, opts)}
}

// Mark 记录或撤销某日某时段的护肤
func (s *SkincareService) Mark(ctx context.Context, input SkincareInput) (record.SkincareCompletion, error) {
	date, err := record.NormalizeDate(input.Date)
	if err != nil {
		return record.SkincareCompletion{}, err
	}
	period, ok := record.ParsePeriod(input.Period)
	if !ok {
		return record.SkincareCompletion{}, fmt.Errorf("%w: %s", ErrInvalidPeriod, input.Period)
	}

	var saved record.SkincareCompletion
	err = s.buckets.Transaction(ctx, func(tx *BucketService) error {
		_, err := mutateBucket(ctx, tx, s.logger, skincareCodec, func(store *record.SkincareStore) (*record.SkincareStore, error) {
			if !input.Done {
				store.Delete(date, period)
				saved = record.SkincareCompletion{Date: date, Period: period}
				return store, nil
			}
			saved = store.Put(record.SkincareCompletion{
				Date:        date,
				Period:      period,
				Steps:       input.Steps,
				CompletedAt: s.now(),
			})
			return store, nil
		})
		return err
	})
	if err != nil {
		return record.SkincareCompletion{}, fmt.Errorf("mark skincare: %w", err)
	}
	return saved, nil
}

// List 返回全部护肤记录
func (s *SkincareService) List(ctx context.Context) ([]record.SkincareCompletion, error) {
	store, err := loadBucket(ctx, s.buckets, s.logger, skincareCodec)
	if err != nil {
		return nil, fmt.Errorf("list skincare: %w", err)
	}
	return store.All(), nil
}

// Stats 计算护肤统计
func (s *SkincareService) Stats(ctx context.Context) (stats.SkincareStats, error) {
	store, err := loadBucket(ctx, s.buckets, s.logger, skincareCodec)
	if err != nil {
		return stats.SkincareStats{}, fmt.Errorf("skincare stats: %w", err)
	}
	return stats.ComputeSkincareStats(store.All(), s.now()), nil
}
