package record

import (
	"cmp"
	"strings"

	"github.com/google/uuid"
	"github.com/lifelog/internal/sentiment"
)

// HabitsSummary 是写日记时当日习惯完成情况的快照
type HabitsSummary struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// JournalEntry 表示某日的日记，每个日期至多一篇
// Sentiment 由内容分析得出；ManualMood=true 时 Mood 覆盖分析得出的情绪标签
type JournalEntry struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Content       string          `json:"content"`
	Mood          string          `json:"mood,omitempty"`
	ManualMood    bool            `json:"manualMood"`
	Sentiment     *sentiment.Data `json:"sentiment,omitempty"`
	HabitsSummary *HabitsSummary  `json:"habitsSummary,omitempty"`
}

// EffectiveMood 返回用于统计的情绪：手动设置优先，其次为分析标签
func (e JournalEntry) EffectiveMood() string {
	if e.ManualMood && strings.TrimSpace(e.Mood) != "" {
		return e.Mood
	}
	if e.Sentiment != nil {
		return string(e.Sentiment.Label)
	}
	return e.Mood
}

// JournalStore 以日期为键保存日记
type JournalStore struct {
	rows table[string, JournalEntry]
}

// NewJournalStore 构造空的 JournalStore
func NewJournalStore() *JournalStore {
	return &JournalStore{rows: newTable[string, JournalEntry]()}
}

// Upsert 按日期写入日记并沿用已有 ID
func (s *JournalStore) Upsert(e JournalEntry) JournalEntry {
	if existing, ok := s.rows.get(e.Date); ok && existing.ID != "" {
		e.ID = existing.ID
	}
	if strings.TrimSpace(e.ID) == "" {
		e.ID = uuid.NewString()
	}
	s.rows.put(e.Date, e)
	return e
}

// SetMood 手动设置情绪，之后的内容分析不会覆盖它
func (s *JournalStore) SetMood(date, mood string) (JournalEntry, bool) {
	entry, ok := s.rows.get(date)
	if !ok {
		return JournalEntry{}, false
	}
	entry.Mood = strings.TrimSpace(mood)
	entry.ManualMood = entry.Mood != ""
	s.rows.put(date, entry)
	return entry, true
}

// ClearMood 取消手动情绪，恢复使用分析标签
func (s *JournalStore) ClearMood(date string) (JournalEntry, bool) {
	entry, ok := s.rows.get(date)
	if !ok {
		return JournalEntry{}, false
	}
	entry.ManualMood = false
	if entry.Sentiment != nil {
		entry.Mood = string(entry.Sentiment.Label)
	} else {
		entry.Mood = ""
	}
	s.rows.put(date, entry)
	return entry, true
}

// Get 返回某日日记
func (s *JournalStore) Get(date string) (JournalEntry, bool) {
	if s == nil {
		return JournalEntry{}, false
	}
	return s.rows.get(date)
}

// Delete 删除某日日记
func (s *JournalStore) Delete(date string) bool {
	return s.rows.remove(date)
}

// Len 返回日记数量
func (s *JournalStore) Len() int {
	if s == nil {
		return 0
	}
	return s.rows.len()
}

// All 按日期升序返回全部日记
func (s *JournalStore) All() []JournalEntry {
	if s == nil {
		return []JournalEntry{}
	}
	return s.rows.sorted(func(a, b JournalEntry) int {
		return cmp.Compare(a.Date, b.Date)
	})
}

// Encode 序列化为 JSON 数组
func (s *JournalStore) Encode() (string, error) {
	return encodeList(s.All())
}

// DecodeJournal 从持久化内容恢复日记
func DecodeJournal(raw string) (*JournalStore, error) {
	items, err := decodeList(BucketJournalEntries, raw, func() JournalEntry { return JournalEntry{} }, nil)
	store := NewJournalStore()
	for _, item := range items {
		store.rows.put(item.Date, item)
	}
	return store, err
}
