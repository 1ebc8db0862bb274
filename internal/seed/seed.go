// Package seed 生成演示数据，便于在空库上体验仪表盘。
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lifelog/internal/record"
	"github.com/lifelog/internal/service"
	"github.com/shopspring/decimal"
)

// Options 控制生成范围
type Options struct {
	Days int
	Seed uint64
}

// Summary 统计本次写入的记录数
type Summary struct {
	Skipped     bool
	Habits      int
	Completions int
	Budget      int
	Journal     int
	Routines    int
	RoutineRuns int
	Skincare    int
}

type habitTemplate struct {
	name      string
	category  string
	area      record.LifeArea
	frequency string
	chance    float64
}

var habitTemplates = []habitTemplate{
	{"Morning run", "fitness", record.AreaHealth, record.FrequencyDaily, 0.7},
	{"Drink water", "health", record.AreaHealth, record.FrequencyDaily, 0.85},
	{"Deep work block", "work", record.AreaCareer, record.FrequencyDaily, 0.6},
	{"Meditate", "mindfulness", record.AreaMind, record.FrequencyDaily, 0.5},
	{"Call family", "social", record.AreaRelationships, record.FrequencyWeekly, 0.2},
}

var journalSamples = []string{
	"Had a **great** day, felt calm and grateful.",
	"Work was stressful and I felt tired by the evening.",
	"Quiet day. Read a few chapters and went to bed early.",
	"Excited about the new project, made good progress.",
	"Felt a bit anxious this morning but the walk helped.",
}

// Run 为最近 Days 天写入习惯、预算、日记、例程与护肤数据。
// 已有习惯时视为非空库，直接跳过。
func Run(ctx context.Context, services *service.Services, now time.Time, opts Options) (Summary, error) {
	if opts.Days <= 0 {
		opts.Days = 30
	}
	existing, err := services.Habits.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	if len(existing) > 0 {
		return Summary{Skipped: true}, nil
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	var summary Summary

	habitIDs := make([]string, 0, len(habitTemplates))
	for _, tpl := range habitTemplates {
		habit, err := services.Habits.Create(ctx, service.HabitInput{
			Name:      tpl.name,
			Category:  tpl.category,
			LifeArea:  string(tpl.area),
			Frequency: tpl.frequency,
		})
		if err != nil {
			return summary, fmt.Errorf("seed habit %s: %w", tpl.name, err)
		}
		habitIDs = append(habitIDs, habit.ID)
		summary.Habits++
	}

	morning, err := services.Routines.Create(ctx, service.RoutineInput{
		Name:     "Morning start",
		Kind:     record.RoutineMorning,
		HabitIDs: habitIDs[:2],
	})
	if err != nil {
		return summary, fmt.Errorf("seed routine: %w", err)
	}
	summary.Routines++

	for offset := opts.Days - 1; offset >= 0; offset-- {
		date := record.FormatDate(now.AddDate(0, 0, -offset))

		for i, tpl := range habitTemplates {
			if rng.Float64() >= tpl.chance {
				continue
			}
			if _, err := services.Habits.Check(ctx, service.CheckInput{HabitID: habitIDs[i], Date: date, Done: true}); err != nil {
				return summary, fmt.Errorf("seed completion %s: %w", date, err)
			}
			summary.Completions++
		}

		if rng.Float64() < 0.8 {
			amount := decimal.NewFromInt(int64(10 + rng.IntN(90)))
			if _, err := services.Budget.Upsert(ctx, service.BudgetInput{
				Date:               date,
				StayedWithinBudget: rng.Float64() < 0.7,
				TrackedExpenses:    true,
				Amount:             &amount,
			}); err != nil {
				return summary, fmt.Errorf("seed budget %s: %w", date, err)
			}
			summary.Budget++
		}

		if rng.Float64() < 0.6 {
			content := journalSamples[rng.IntN(len(journalSamples))]
			if _, err := services.Journal.Save(ctx, service.JournalInput{Date: date, Content: content}); err != nil {
				return summary, fmt.Errorf("seed journal %s: %w", date, err)
			}
			summary.Journal++
		}

		if rng.Float64() < 0.5 {
			duration := 10 + rng.IntN(20)
			if _, err := services.Routines.Complete(ctx, service.RoutineCompletionInput{
				RoutineID: morning.ID,
				Date:      date,
				Duration:  &duration,
			}); err != nil {
				return summary, fmt.Errorf("seed routine completion %s: %w", date, err)
			}
			summary.RoutineRuns++
		}

		for _, period := range []string{record.PeriodMorning, record.PeriodEvening} {
			if rng.Float64() >= 0.65 {
				continue
			}
			if _, err := services.Skincare.Mark(ctx, service.SkincareInput{Date: date, Period: period, Done: true}); err != nil {
				return summary, fmt.Errorf("seed skincare %s: %w", date, err)
			}
			summary.Skincare++
		}
	}

	if _, err := services.Intentions.Upsert(ctx, record.FormatMonth(now), "Build steady routines", ""); err != nil {
		return summary, fmt.Errorf("seed intention: %w", err)
	}
	return summary, nil
}
