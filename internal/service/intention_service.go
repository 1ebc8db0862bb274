package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifelog/internal/log"
	"github.com/lifelog/internal/record"
	"github.com/lifelog/internal/stats"
)

// IntentionService 负责月度意图
type IntentionService struct {
	base
}

// NewIntentionService 构造 IntentionService
func NewIntentionService(buckets *BucketService, opts ...Option) *IntentionService {
	return &IntentionService{base: newBase(buckets, log.ComponentIntention, opts)}
}

// Upsert 写入某月意图，同月重复写入会覆盖
func (s *IntentionService) Upsert(ctx context.Context, month, intention, note string) (record.MonthlyIntention, error) {
	normalized, err := record.NormalizeMonth(month)
	if err != nil {
		return record.MonthlyIntention{}, err
	}
	if strings.TrimSpace(intention) == "" {
		return record.MonthlyIntention{}, ErrEmptyIntention
	}

	var saved record.MonthlyIntention
	err = s.buckets.Transaction(ctx, func(tx *BucketService) error {
		_, err := mutateBucket(ctx, tx, s.logger, intentionsCodec, func(store *record.IntentionStore) (*record.IntentionStore, error) {
			saved = store.Upsert(normalized, intention, note, s.now())
			return store, nil
		})
		return err
	})
	if err != nil {
		return record.MonthlyIntention{}, fmt.Errorf("upsert intention: %w", err)
	}
	return saved, nil
}

// Get 返回某月意图
func (s *IntentionService) Get(ctx context.Context, month string) (record.MonthlyIntention, error) {
	normalized, err := record.NormalizeMonth(month)
	if err != nil {
		return record.MonthlyIntention{}, err
	}
	store, err := loadBucket(ctx, s.buckets, s.logger, intentionsCodec)
	if err != nil {
		return record.MonthlyIntention{}, fmt.Errorf("get intention: %w", err)
	}
	intention, ok := store.Get(normalized)
	if !ok {
		return record.MonthlyIntention{}, ErrIntentionNotFound
	}
	return intention, nil
}

// Current 返回本月意图
func (s *IntentionService) Current(ctx context.Context) (record.MonthlyIntention, error) {
	store, err := loadBucket(ctx, s.buckets, s.logger, intentionsCodec)
	if err != nil {
		return record.MonthlyIntention{}, fmt.Errorf("current intention: %w", err)
	}
	intention, ok := stats.IntentionFor(store.All(), s.now())
	if !ok {
		return record.MonthlyIntention{}, ErrIntentionNotFound
	}
	return intention, nil
}

// List 按月份升序返回全部意图
func (s *IntentionService) List(ctx context.Context) ([]record.MonthlyIntention, error) {
	store, err := loadBucket(ctx, s.buckets, s.logger, intentionsCodec)
	if err != nil {
		return nil, fmt.Errorf("list intentions: %w", err)
	}
	return store.All(), nil
}

// Delete 删除某月意图
func (s *IntentionService) Delete(ctx context.Context, month string) error {
	normalized, err := record.NormalizeMonth(month)
	if err != nil {
		return err
	}
	err = s.buckets.Transaction(ctx, func(tx *BucketService) error {
		_, err := mutateBucket(ctx, tx, s.logger, intentionsCodec, func(store *record.IntentionStore) (*record.IntentionStore, error) {
			if !store.Delete(normalized) {
				return store, ErrIntentionNotFound
			}
			return store, nil
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("delete intention: %w", err)
	}
	return nil
}
