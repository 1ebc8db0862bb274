package service

import (
	"context"
	"fmt"

	"github.com/lifelog/internal/log"
	"github.com/lifelog/internal/record"
	"github.com/lifelog/internal/stats"
	"github.com/shopspring/decimal"
)

// BudgetService 负责每日预算记录
type BudgetService struct {
	base
}

// BudgetInput 描述某日的预算情况，同一日期重复写入会覆盖
type BudgetInput struct {
	Date               string
	StayedWithinBudget bool
	TrackedExpenses    bool
	Amount             *decimal.Decimal
	Notes              string
}

// NewBudgetService 构造 BudgetService
func NewBudgetService(buckets *BucketService, opts ...Option) *BudgetService {
	return &BudgetService{base: newBase(buckets, log.ComponentBudget, opts)}
}

// Upsert 按日期写入预算记录
func (s *BudgetService) Upsert(ctx context.Context, input BudgetInput) (record.BudgetEntry, error) {
	date, err := record.NormalizeDate(input.Date)
	if err != nil {
		return record.BudgetEntry{}, err
	}

	var saved record.BudgetEntry
	err = s.buckets.Transaction(ctx, func(tx *BucketService) error {
		_, err := mutateBucket(ctx, tx, s.logger, budgetCodec, func(store *record.BudgetStore) (*record.BudgetStore, error) {
			saved = store.Upsert(record.BudgetEntry{
				Date:               date,
				StayedWithinBudget: input.StayedWithinBudget,
				TrackedExpenses:    input.TrackedExpenses,
				Amount:             input.Amount,
				Notes:              input.Notes,
			})
			return store, nil
		})
		return err
	})
	if err != nil {
		return record.BudgetEntry{}, fmt.Errorf("upsert budget entry: %w", err)
	}
	return saved, nil
}

// Get 返回某日预算记录
func (s *BudgetService) Get(ctx context.Context, date string) (record.BudgetEntry, error) {
	normalized, err := record.NormalizeDate(date)
	if err != nil {
		return record.BudgetEntry{}, err
	}
	store, err := loadBucket(ctx, s.buckets, s.logger, budgetCodec)
	if err != nil {
		return record.BudgetEntry{}, fmt.Errorf("get budget entry: %w", err)
	}
	entry, ok := store.Get(normalized)
	if !ok {
		return record.BudgetEntry{}, ErrBudgetNotFound
	}
	return entry, nil
}

// List 返回全部预算记录
func (s *BudgetService) List(ctx context.Context) ([]record.BudgetEntry, error) {
	store, err := loadBucket(ctx, s.buckets, s.logger, budgetCodec)
	if err != nil {
		return nil, fmt.Errorf("list budget entries: %w", err)
	}
	return store.All(), nil
}

// Delete 删除某日预算记录
func (s *BudgetService) Delete(ctx context.Context, date string) error {
	normalized, err := record.NormalizeDate(date)
	if err != nil {
		return err
	}
	err = s.buckets.Transaction(ctx, func(tx *BucketService) error {
		_, err := mutateBucket(ctx, tx, s.logger, budgetCodec, func(store *record.BudgetStore) (*record.BudgetStore, error) {
			if !store.Delete(normalized) {
				return store, ErrBudgetNotFound
			}
			return store, nil
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("delete budget entry: %w", err)
	}
	return nil
}

// Stats 计算预算统计
func (s *BudgetService) Stats(ctx context.Context) (stats.BudgetStats, error) {
	store, err := loadBucket(ctx, s.buckets, s.logger, budgetCodec)
	if err != nil {
		return stats.BudgetStats{}, fmt.Errorf("budget stats: %w", err)
	}
	return stats.ComputeBudgetStats(store.All(), s.now()), nil
}
