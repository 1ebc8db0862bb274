package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifelog/internal/log"
	"github.com/lifelog/internal/record"
	"github.com/lifelog/internal/stats"
)

// HabitService 负责习惯定义与打卡记录的读写
type HabitService struct {
	base
}

// HabitInput 定义创建/更新习惯时可配置字段
type HabitInput struct {
	Name      string
	Category  string
	LifeArea  string
	Frequency string
	Active    *bool
}

// CheckInput 描述一次打卡或取消打卡
type CheckInput struct {
	HabitID string
	Date    string
	Done    bool
}

// NewHabitService 构造 HabitService
func NewHabitService(buckets *BucketService, opts ...Option) *HabitService {
	return &HabitService{base: newBase(buckets, log.ComponentHabit, opts)}
}

// List 返回全部习惯
func (s *HabitService) List(ctx context.Context) ([]record.Habit, error) {
	store, err := loadBucket(ctx, s.buckets, s.logger, habitsCodec)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return store.All(), nil
}

// Get 根据 ID 获取习惯
func (s *HabitService) Get(ctx context.Context, id string) (record.Habit, error) {
	store, err := loadBucket(ctx, s.buckets, s.logger, habitsCodec)
	if err != nil {
		return record.Habit{}, fmt.Errorf("get habit: %w", err)
	}
	habit, ok := store.Get(id)
	if !ok {
		return record.Habit{}, ErrHabitNotFound
	}
	return habit, nil
}

// Create 新建习惯
func (s *HabitService) Create(ctx context.Context, input HabitInput) (record.Habit, error) {
	habit := record.Habit{Active: true, CreatedAt: s.now()}
	if err := applyHabitInput(&habit, input); err != nil {
		return record.Habit{}, err
	}

	var created record.Habit
	err := s.buckets.Transaction(ctx, func(tx *BucketService) error {
		_, err := mutateBucket(ctx, tx, s.logger, habitsCodec, func(store *record.HabitStore) (*record.HabitStore, error) {
			created = store.Put(habit)
			return store, nil
		})
		return err
	})
	if err != nil {
		return record.Habit{}, fmt.Errorf("create habit: %w", err)
	}
	s.logger.InfoContext(ctx, "habit created", log.FieldHabitID, created.ID)
	return created, nil
}

// Update 更新习惯
func (s *HabitService) Update(ctx context.Context, id string, input HabitInput) (record.Habit, error) {
	var updated record.Habit
	err := s.buckets.Transaction(ctx, func(tx *BucketService) error {
		_, err := mutateBucket(ctx, tx, s.logger, habitsCodec, func(store *record.HabitStore) (*record.HabitStore, error) {
			existing, ok := store.Get(id)
			if !ok {
				return store, ErrHabitNotFound
			}
			if err := applyHabitInput(&existing, input); err != nil {
				return store, err
			}
			updated = store.Put(existing)
			return store, nil
		})
		return err
	})
	if err != nil {
		return record.Habit{}, fmt.Errorf("update habit: %w", err)
	}
	return updated, nil
}

// Delete 删除习惯及其全部打卡记录
func (s *HabitService) Delete(ctx context.Context, id string) error {
	err := s.buckets.Transaction(ctx, func(tx *BucketService) error {
		if _, err := mutateBucket(ctx, tx, s.logger, habitsCodec, func(store *record.HabitStore) (*record.HabitStore, error) {
			if !store.Delete(id) {
				return store, ErrHabitNotFound
			}
			return store, nil
		}); err != nil {
			return err
		}
		_, err := mutateBucket(ctx, tx, s.logger, completionsCodec, func(store *record.CompletionStore) (*record.CompletionStore, error) {
			store.RemoveHabit(id)
			return store, nil
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("delete habit: %w", err)
	}
	s.logger.InfoContext(ctx, "habit deleted", log.FieldHabitID, id)
	return nil
}

// Check 打卡或取消打卡，打卡记录沿用习惯当前的分类与生活领域。
// 返回记录是否发生变化。
func (s *HabitService) Check(ctx context.Context, input CheckInput) (bool, error) {
	date, err := record.NormalizeDate(input.Date)
	if err != nil {
		return false, err
	}

	var changed bool
	err = s.buckets.Transaction(ctx, func(tx *BucketService) error {
		habits, err := loadBucket(ctx, tx, s.logger, habitsCodec)
		if err != nil {
			return err
		}
		habit, ok := habits.Get(input.HabitID)
		if !ok {
			return ErrHabitNotFound
		}

		_, err = mutateBucket(ctx, tx, s.logger, completionsCodec, func(store *record.CompletionStore) (*record.CompletionStore, error) {
			changed = store.Set(record.HabitCompletion{
				HabitID:  habit.ID,
				Date:     date,
				Category: habit.Category,
				LifeArea: habit.LifeArea,
			}, input.Done)
			return store, nil
		})
		return err
	})
	if err != nil {
		return false, fmt.Errorf("check habit: %w", err)
	}
	return changed, nil
}

// Completions 返回全部打卡记录
func (s *HabitService) Completions(ctx context.Context) ([]record.HabitCompletion, error) {
	store, err := loadBucket(ctx, s.buckets, s.logger, completionsCodec)
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	return store.All(), nil
}

// Stats 计算习惯统计
func (s *HabitService) Stats(ctx context.Context) (stats.HabitStats, error) {
	habits, err := loadBucket(ctx, s.buckets, s.logger, habitsCodec)
	if err != nil {
		return stats.HabitStats{}, fmt.Errorf("habit stats: %w", err)
	}
	completions, err := loadBucket(ctx, s.buckets, s.logger, completionsCodec)
	if err != nil {
		return stats.HabitStats{}, fmt.Errorf("habit stats: %w", err)
	}
	return stats.ComputeHabitStats(habits.All(), completions.All(), s.now()), nil
}

func applyHabitInput(habit *record.Habit, input HabitInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return ErrEmptyHabitName
	}

	var area record.LifeArea
	if raw := strings.TrimSpace(input.LifeArea); raw != "" {
		parsed, ok := record.ParseLifeArea(raw)
		if !ok {
			return fmt.Errorf("%w: %s", ErrInvalidLifeArea, raw)
		}
		area = parsed
	}

	frequency := strings.ToLower(strings.TrimSpace(input.Frequency))
	switch frequency {
	case "":
		frequency = record.FrequencyDaily
	case record.FrequencyDaily, record.FrequencyWeekly:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFrequency, input.Frequency)
	}

	habit.Name = name
	habit.Category = strings.TrimSpace(input.Category)
	habit.LifeArea = area
	habit.Frequency = frequency
	if input.Active != nil {
		habit.Active = *input.Active
	}
	return nil
}
