package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifelog/internal/log"
	"github.com/lifelog/internal/record"
	"github.com/lifelog/internal/stats"
)

// RoutineService 负责例程定义与完成记录
type RoutineService struct {
	base
}

// RoutineInput 定义创建/更新例程时可配置字段
type RoutineInput struct {
	Name     string
	Kind     string
	HabitIDs []string
}

// RoutineCompletionInput 描述一次例程完成。
// CompletedHabits 为 nil 时视为完成了例程的全部步骤。
type RoutineCompletionInput struct {
	RoutineID       string
	Date            string
	Duration        *int
	CompletedHabits []string
}

// NewRoutineService 构造 RoutineService
func NewRoutineService(buckets *BucketService, opts ...Option) *RoutineService {
	return &RoutineService{base: newBase(buckets, log.ComponentRoutine, opts)}
}

// List 返回全部例程
func (s *RoutineService) List(ctx context.Context) ([]record.Routine, error) {
	store, err := loadBucket(ctx, s.buckets, s.logger, routinesCodec)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}
	return store.All(), nil
}

// Create 新建例程
func (s *RoutineService) Create(ctx context.Context, input RoutineInput) (record.Routine, error) {
	routine := record.Routine{CreatedAt: s.now()}
	if err := applyRoutineInput(&routine, input); err != nil {
		return record.Routine{}, err
	}

	var created record.Routine
	err := s.buckets.Transaction(ctx, func(tx *BucketService) error {
		_, err := mutateBucket(ctx, tx, s.logger, routinesCodec, func(store *record.RoutineStore) (*record.RoutineStore, error) {
			created = store.Put(routine)
			return store, nil
		})
		return err
	})
	if err != nil {
		return record.Routine{}, fmt.Errorf("create routine: %w", err)
	}
	return created, nil
}

// Update 更新例程
func (s *RoutineService) Update(ctx context.Context, id string, input RoutineInput) (record.Routine, error) {
	var updated record.Routine
	err := s.buckets.Transaction(ctx, func(tx *BucketService) error {
		_, err := mutateBucket(ctx, tx, s.logger, routinesCodec, func(store *record.RoutineStore) (*record.RoutineStore, error) {
			existing, ok := store.Get(id)
			if !ok {
				return store, ErrRoutineNotFound
			}
			if err := applyRoutineInput(&existing, input); err != nil {
				return store, err
			}
			updated = store.Put(existing)
			return store, nil
		})
		return err
	})
	if err != nil {
		return record.Routine{}, fmt.Errorf("update routine: %w", err)
	}
	return updated, nil
}

// Delete 删除例程及其完成记录
func (s *RoutineService) Delete(ctx context.Context, id string) error {
	err := s.buckets.Transaction(ctx, func(tx *BucketService) error {
		if _, err := mutateBucket(ctx, tx, s.logger, routinesCodec, func(store *record.RoutineStore) (*record.RoutineStore, error) {
			if !store.Delete(id) {
				return store, ErrRoutineNotFound
			}
			return store, nil
		}); err != nil {
			return err
		}
		_, err := mutateBucket(ctx, tx, s.logger, routineCompletionsCodec, func(store *record.RoutineCompletionStore) (*record.RoutineCompletionStore, error) {
			store.RemoveRoutine(id)
			return store, nil
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("delete routine: %w", err)
	}
	return nil
}

// Complete 记录例程在某日的完成，同日重复提交会覆盖
func (s *RoutineService) Complete(ctx context.Context, input RoutineCompletionInput) (record.RoutineCompletion, error) {
	date, err := record.NormalizeDate(input.Date)
	if err != nil {
		return record.RoutineCompletion{}, err
	}
	if input.Duration != nil && *input.Duration < 0 {
		return record.RoutineCompletion{}, ErrInvalidDuration
	}

	var saved record.RoutineCompletion
	err = s.buckets.Transaction(ctx, func(tx *BucketService) error {
		routines, err := loadBucket(ctx, tx, s.logger, routinesCodec)
		if err != nil {
			return err
		}
		routine, ok := routines.Get(input.RoutineID)
		if !ok {
			return ErrRoutineNotFound
		}

		done := input.CompletedHabits
		if done == nil {
			done = routine.HabitIDs
		}
		_, err = mutateBucket(ctx, tx, s.logger, routineCompletionsCodec, func(store *record.RoutineCompletionStore) (*record.RoutineCompletionStore, error) {
			saved = store.Put(record.RoutineCompletion{
				Date:            date,
				RoutineID:       routine.ID,
				CompletedAt:     s.now(),
				Duration:        input.Duration,
				CompletedHabits: done,
			})
			return store, nil
		})
		return err
	})
	if err != nil {
		return record.RoutineCompletion{}, fmt.Errorf("complete routine: %w", err)
	}
	s.logger.InfoContext(ctx, "routine completed", log.FieldRoutineID, saved.RoutineID, log.FieldDate, date)
	return saved, nil
}

// Uncomplete 撤销例程在某日的完成，返回是否存在该记录
func (s *RoutineService) Uncomplete(ctx context.Context, routineID, date string) (bool, error) {
	normalized, err := record.NormalizeDate(date)
	if err != nil {
		return false, err
	}
	var removed bool
	err = s.buckets.Transaction(ctx, func(tx *BucketService) error {
		_, err := mutateBucket(ctx, tx, s.logger, routineCompletionsCodec, func(store *record.RoutineCompletionStore) (*record.RoutineCompletionStore, error) {
			removed = store.Delete(normalized, routineID)
			return store, nil
		})
		return err
	})
	if err != nil {
		return false, fmt.Errorf("uncomplete routine: %w", err)
	}
	return removed, nil
}

// Stats 计算例程统计
func (s *RoutineService) Stats(ctx context.Context) (stats.RoutineStats, error) {
	routines, err := loadBucket(ctx, s.buckets, s.logger, routinesCodec)
	if err != nil {
		return stats.RoutineStats{}, fmt.Errorf("routine stats: %w", err)
	}
	completions, err := loadBucket(ctx, s.buckets, s.logger, routineCompletionsCodec)
	if err != nil {
		return stats.RoutineStats{}, fmt.Errorf("routine stats: %w", err)
	}
	return stats.ComputeRoutineStats(routines.All(), completions.All(), s.now()), nil
}

func applyRoutineInput(routine *record.Routine, input RoutineInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return ErrEmptyRoutineName
	}

	kind := strings.ToLower(strings.TrimSpace(input.Kind))
	switch kind {
	case "":
		kind = record.RoutineCustom
	case record.RoutineMorning, record.RoutineEvening, record.RoutineCustom:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidRoutineKind, input.Kind)
	}

	routine.Name = name
	routine.Kind = kind
	routine.HabitIDs = input.HabitIDs
	return nil
}
