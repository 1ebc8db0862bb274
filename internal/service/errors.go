package service

import (
	"errors"

	"github.com/lifelog/internal/record"
)

var (
	// ErrHabitNotFound 在指定习惯不存在时返回
	ErrHabitNotFound = errors.New("habit not found")
	// ErrEmptyHabitName 在习惯名称为空时返回
	ErrEmptyHabitName = errors.New("habit name is required")
	// ErrInvalidLifeArea 在生活领域不在固定集合内时返回
	ErrInvalidLifeArea = errors.New("invalid life area")
	// ErrInvalidFrequency 在习惯频率不受支持时返回
	ErrInvalidFrequency = errors.New("invalid habit frequency")
	// ErrRoutineNotFound 在指定例程不存在时返回
	ErrRoutineNotFound = errors.New("routine not found")
	// ErrEmptyRoutineName 在例程名称为空时返回
	ErrEmptyRoutineName = errors.New("routine name is required")
	// ErrInvalidRoutineKind 在例程类型不受支持时返回
	ErrInvalidRoutineKind = errors.New("invalid routine kind")
	// ErrInvalidDuration 在例程耗时为负数时返回
	ErrInvalidDuration = errors.New("duration must not be negative")
	// ErrJournalNotFound 在某日没有日记时返回
	ErrJournalNotFound = errors.New("journal entry not found")
	// ErrBudgetNotFound 在某日没有预算记录时返回
	ErrBudgetNotFound = errors.New("budget entry not found")
	// ErrInvalidPeriod 在护肤时段不是 morning/evening 时返回
	ErrInvalidPeriod = errors.New("invalid skincare period")
	// ErrEmptyIntention 在月度意图为空时返回
	ErrEmptyIntention = errors.New("intention is required")
	// ErrIntentionNotFound 在某月没有意图时返回
	ErrIntentionNotFound = errors.New("intention not found")
	// ErrInvalidGoal 在领域目标为负数时返回
	ErrInvalidGoal = errors.New("area goal must not be negative")
	// ErrUnauthorized 在登录凭据错误时返回
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidDate 与 record.ErrInvalidDate 相同，便于 handler 统一判断
	ErrInvalidDate = record.ErrInvalidDate
	// ErrInvalidMonth 与 record.ErrInvalidMonth 相同
	ErrInvalidMonth = record.ErrInvalidMonth
)
