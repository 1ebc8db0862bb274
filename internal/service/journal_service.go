package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifelog/internal/log"
	"github.com/lifelog/internal/record"
	"github.com/lifelog/internal/sentiment"
	"github.com/lifelog/internal/stats"
)

// JournalService 负责日记的保存、情绪分析与渲染
type JournalService struct {
	base
}

// JournalInput 描述一次日记保存；Mood 非空时视为手动设置情绪
type JournalInput struct {
	Date    string
	Content string
	Mood    string
}

// NewJournalService 构造 JournalService
func NewJournalService(buckets *BucketService, opts ...Option) *JournalService {
	return &JournalService{base: newBase(buckets, log.ComponentJournal, opts)}
}

// Analyze 对文本做情绪分析，Markdown 与 HTML 标记不参与计分
func (s *JournalService) Analyze(text string) sentiment.Data {
	return sentiment.Analyze(PlainText(text), s.now())
}

// Save 按日期写入日记。
// 内容变化且未手动设置情绪时重新分析并以分析标签作为情绪；手动情绪不会被覆盖。
// 同时记录当日习惯完成情况的快照。
func (s *JournalService) Save(ctx context.Context, input JournalInput) (record.JournalEntry, error) {
	date, err := record.NormalizeDate(input.Date)
	if err != nil {
		return record.JournalEntry{}, err
	}
	content := strings.TrimRight(input.Content, " \t\r\n")

	var saved record.JournalEntry
	err = s.buckets.Transaction(ctx, func(tx *BucketService) error {
		summary, err := s.habitsSummary(ctx, tx, date)
		if err != nil {
			return err
		}

		_, err = mutateBucket(ctx, tx, s.logger, journalCodec, func(store *record.JournalStore) (*record.JournalStore, error) {
			entry, exists := store.Get(date)
			if !exists {
				entry = record.JournalEntry{Date: date}
			}

			if mood := strings.TrimSpace(input.Mood); mood != "" {
				entry.Mood = mood
				entry.ManualMood = true
			}

			changed := !exists || entry.Content != content || entry.Sentiment == nil
			entry.Content = content
			if changed && !entry.ManualMood {
				data := s.Analyze(content)
				entry.Sentiment = &data
				entry.Mood = string(data.Label)
			}
			entry.HabitsSummary = summary

			saved = store.Upsert(entry)
			return store, nil
		})
		return err
	})
	if err != nil {
		return record.JournalEntry{}, fmt.Errorf("save journal entry: %w", err)
	}
	return saved, nil
}

func (s *JournalService) habitsSummary(ctx context.Context, tx *BucketService, date string) (*record.HabitsSummary, error) {
	habits, err := loadBucket(ctx, tx, s.logger, habitsCodec)
	if err != nil {
		return nil, err
	}
	active := habits.Active()
	if len(active) == 0 {
		return nil, nil
	}
	completions, err := loadBucket(ctx, tx, s.logger, completionsCodec)
	if err != nil {
		return nil, err
	}

	summary := &record.HabitsSummary{Total: len(active)}
	for _, h := range active {
		if completions.Has(h.ID, date) {
			summary.Completed++
		}
	}
	return summary, nil
}

// SetMood 手动设置某日情绪；mood 为空时取消手动设置，并以当前内容的分析标签作为情绪
func (s *JournalService) SetMood(ctx context.Context, date, mood string) (record.JournalEntry, error) {
	normalized, err := record.NormalizeDate(date)
	if err != nil {
		return record.JournalEntry{}, err
	}

	var updated record.JournalEntry
	err = s.buckets.Transaction(ctx, func(tx *BucketService) error {
		_, err := mutateBucket(ctx, tx, s.logger, journalCodec, func(store *record.JournalStore) (*record.JournalStore, error) {
			if strings.TrimSpace(mood) != "" {
				var ok bool
				if updated, ok = store.SetMood(normalized, mood); !ok {
					return store, ErrJournalNotFound
				}
				return store, nil
			}

			// 手动情绪期间内容可能已改动，取消时按当前内容重新分析
			entry, ok := store.Get(normalized)
			if !ok {
				return store, ErrJournalNotFound
			}
			data := s.Analyze(entry.Content)
			entry.Sentiment = &data
			store.Upsert(entry)
			updated, _ = store.ClearMood(normalized)
			return store, nil
		})
		return err
	})
	if err != nil {
		return record.JournalEntry{}, fmt.Errorf("set journal mood: %w", err)
	}
	return updated, nil
}

// Get 返回某日日记
func (s *JournalService) Get(ctx context.Context, date string) (record.JournalEntry, error) {
	normalized, err := record.NormalizeDate(date)
	if err != nil {
		return record.JournalEntry{}, err
	}
	store, err := loadBucket(ctx, s.buckets, s.logger, journalCodec)
	if err != nil {
		return record.JournalEntry{}, fmt.Errorf("get journal entry: %w", err)
	}
	entry, ok := store.Get(normalized)
	if !ok {
		return record.JournalEntry{}, ErrJournalNotFound
	}
	return entry, nil
}

// Render 返回某日日记渲染后的 HTML
func (s *JournalService) Render(ctx context.Context, date string) (string, error) {
	entry, err := s.Get(ctx, date)
	if err != nil {
		return "", err
	}
	rendered, err := RenderMarkdown(entry.Content)
	if err != nil {
		return "", fmt.Errorf("render journal entry: %w", err)
	}
	return rendered, nil
}

// List 返回全部日记
func (s *JournalService) List(ctx context.Context) ([]record.JournalEntry, error) {
	store, err := loadBucket(ctx, s.buckets, s.logger, journalCodec)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	return store.All(), nil
}

// Delete 删除某日日记
func (s *JournalService) Delete(ctx context.Context, date string) error {
	normalized, err := record.NormalizeDate(date)
	if err != nil {
		return err
	}
	err = s.buckets.Transaction(ctx, func(tx *BucketService) error {
		_, err := mutateBucket(ctx, tx, s.logger, journalCodec, func(store *record.JournalStore) (*record.JournalStore, error) {
			if !store.Delete(normalized) {
				return store, ErrJournalNotFound
			}
			return store, nil
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}
	return nil
}

// Stats 计算日记统计
func (s *JournalService) Stats(ctx context.Context) (stats.JournalStats, error) {
	store, err := loadBucket(ctx, s.buckets, s.logger, journalCodec)
	if err != nil {
		return stats.JournalStats{}, fmt.Errorf("journal stats: %w", err)
	}
	return stats.ComputeJournalStats(store.All(), s.now()), nil
}
