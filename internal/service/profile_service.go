package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifelog/internal/locale"
	"github.com/lifelog/internal/log"
	"github.com/lifelog/internal/record"
	"github.com/shopspring/decimal"
)

// ProfileService 负责用户偏好
type ProfileService struct {
	base
}

// ProfileInput 描述更新偏好时可设置的字段，nil 表示保持原值
type ProfileInput struct {
	Name                 *string
	Language             *string
	Theme                *string
	NotificationsEnabled *bool
	MonthlyBudget        *decimal.Decimal
	AreaGoals            map[string]int
	Onboarded            *bool
}

var themes = map[string]struct{}{
	"light":  {},
	"dark":   {},
	"system": {},
}

// NewProfileService 构造 ProfileService
func NewProfileService(buckets *BucketService, opts ...Option) *ProfileService {
	return &ProfileService{base: newBase(buckets, log.ComponentProfile, opts)}
}

// Get 返回当前偏好，尚未保存时返回默认偏好
func (s *ProfileService) Get(ctx context.Context) (record.Profile, error) {
	profile, err := loadBucket(ctx, s.buckets, s.logger, profileCodec)
	if err != nil {
		return record.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// Update 合并 input 到当前偏好并保存
func (s *ProfileService) Update(ctx context.Context, input ProfileInput) (record.Profile, error) {
	goals, err := normalizeGoals(input.AreaGoals)
	if err != nil {
		return record.Profile{}, err
	}

	var saved record.Profile
	err = s.buckets.Transaction(ctx, func(tx *BucketService) error {
		_, err := mutateBucket(ctx, tx, s.logger, profileCodec, func(current record.Profile) (record.Profile, error) {
			next := current.Clone()
			if input.Name != nil {
				next.Name = strings.TrimSpace(*input.Name)
			}
			if input.Language != nil {
				if language := locale.NormalizeLanguage(*input.Language); language != "" {
					next.Language = language
				}
			}
			if input.Theme != nil {
				theme := strings.ToLower(strings.TrimSpace(*input.Theme))
				if _, ok := themes[theme]; ok {
					next.Theme = theme
				}
			}
			if input.NotificationsEnabled != nil {
				next.NotificationsEnabled = *input.NotificationsEnabled
			}
			if input.MonthlyBudget != nil {
				next.MonthlyBudget = input.MonthlyBudget
			}
			if input.Onboarded != nil {
				next.Onboarded = *input.Onboarded
			}
			for area, target := range goals {
				if target == 0 {
					delete(next.AreaGoals, area)
					continue
				}
				next.AreaGoals[area] = target
			}
			saved = next
			return next, nil
		})
		return err
	})
	if err != nil {
		return record.Profile{}, fmt.Errorf("update profile: %w", err)
	}
	return saved, nil
}

// normalizeGoals 校验领域目标；0 表示清除该领域目标
func normalizeGoals(raw map[string]int) (map[record.LifeArea]int, error) {
	goals := make(map[record.LifeArea]int, len(raw))
	for key, target := range raw {
		area, ok := record.ParseLifeArea(key)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLifeArea, key)
		}
		if target < 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidGoal, key)
		}
		goals[area] = target
	}
	return goals, nil
}
