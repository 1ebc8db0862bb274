package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lifelog/internal/locale"
	"github.com/lifelog/internal/log"
	"github.com/lifelog/internal/quote"
	"github.com/lifelog/internal/record"
	"github.com/lifelog/internal/stats"
)

// MonthlyHistoryMonths 为仪表盘展示的月度历史长度
const MonthlyHistoryMonths = 6

// Dashboard 汇总首页需要的全部数据
type Dashboard struct {
	Date        string                   `json:"date"`
	Language    string                   `json:"language"`
	Name        string                   `json:"name"`
	Greeting    string                   `json:"greeting"`
	Subtitle    string                   `json:"subtitle"`
	Quote       quote.Quote              `json:"quote"`
	Intention   *record.MonthlyIntention `json:"intention,omitempty"`
	Habits      stats.HabitStats         `json:"habits"`
	Budget      stats.BudgetStats        `json:"budget"`
	Journal     stats.JournalStats       `json:"journal"`
	Routines    stats.RoutineStats       `json:"routines"`
	Skincare    stats.SkincareStats      `json:"skincare"`
	LifeBalance stats.LifeBalance        `json:"lifeBalance"`
	History     []stats.MonthReport      `json:"history"`
}

// DashboardService 基于快照组装仪表盘与月度报告
type DashboardService struct {
	base
	snapshots *SnapshotService
}

// NewDashboardService 构造 DashboardService
func NewDashboardService(buckets *BucketService, opts ...Option) *DashboardService {
	return &DashboardService{
		base:      newBase(buckets, log.ComponentDashboard, opts),
		snapshots: NewSnapshotService(buckets, opts...),
	}
}

// Build 计算仪表盘；lang 为空时使用偏好中的语言
func (s *DashboardService) Build(ctx context.Context, lang string) (Dashboard, error) {
	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("build dashboard: %w", err)
	}
	return ComposeDashboard(snapshot, s.now(), lang), nil
}

// LifeBalance 只计算生活平衡
func (s *DashboardService) LifeBalance(ctx context.Context, lang string) (stats.LifeBalance, error) {
	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		return stats.LifeBalance{}, fmt.Errorf("life balance: %w", err)
	}
	language := locale.Resolve(lang, snapshot.Profile.Language)
	return stats.ComposeLifeBalance(stats.BuildAreaInputs(snapshot, s.now()), language), nil
}

// Month 返回 month（YYYY-MM）的月度报告，month 为空时使用当月
func (s *DashboardService) Month(ctx context.Context, month string) (stats.MonthReport, error) {
	now := s.now()
	target := now
	if strings.TrimSpace(month) != "" {
		parsed, err := record.ParseMonth(month)
		if err != nil {
			return stats.MonthReport{}, err
		}
		target = parsed
	}

	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		return stats.MonthReport{}, fmt.Errorf("month report: %w", err)
	}
	return stats.ComposeMonthReport(snapshot, target, now), nil
}

// ComposeDashboard 基于快照计算仪表盘，不访问存储
func ComposeDashboard(snapshot record.Snapshot, now time.Time, lang string) Dashboard {
	language := locale.Resolve(lang, snapshot.Profile.Language)

	dashboard := Dashboard{
		Date:        record.FormatDate(now),
		Language:    language,
		Name:        snapshot.Profile.Name,
		Greeting:    quote.Greeting(now, language),
		Subtitle:    quote.Subtitle(now, language),
		Quote:       quote.ForDate(now),
		Habits:      stats.ComputeHabitStats(snapshot.Habits.All(), snapshot.Completions.All(), now),
		Budget:      stats.ComputeBudgetStats(snapshot.Budget.All(), now),
		Journal:     stats.ComputeJournalStats(snapshot.Journal.All(), now),
		Routines:    stats.ComputeRoutineStats(snapshot.Routines.All(), snapshot.RoutineCompletions.All(), now),
		Skincare:    stats.ComputeSkincareStats(snapshot.Skincare.All(), now),
		LifeBalance: stats.ComposeLifeBalance(stats.BuildAreaInputs(snapshot, now), language),
	}
	if intention, ok := stats.IntentionFor(snapshot.Intentions.All(), now); ok {
		dashboard.Intention = &intention
	}

	current, _ := stats.MonthBounds(now)
	for offset := MonthlyHistoryMonths - 1; offset >= 0; offset-- {
		dashboard.History = append(dashboard.History, stats.ComposeMonthReport(snapshot, current.AddDate(0, -offset, 0), now))
	}
	return dashboard
}
