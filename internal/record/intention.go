package record

import (
	"cmp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MonthlyIntention 是某个月的意图，每月至多一条
type MonthlyIntention struct {
	ID           string    `json:"id"`
	Month        string    `json:"month"`
	Intention    string    `json:"intention"`
	PersonalNote string    `json:"personalNote,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IntentionStore 以月份为键保存月度意图
type IntentionStore struct {
	rows table[string, MonthlyIntention]
}

// NewIntentionStore 构造空的 IntentionStore
func NewIntentionStore() *IntentionStore {
	return &IntentionStore{rows: newTable[string, MonthlyIntention]()}
}

// Upsert 写入某月意图，保留原 ID 与创建时间
func (s *IntentionStore) Upsert(month, intention, note string, now time.Time) MonthlyIntention {
	record := MonthlyIntention{
		ID:           uuid.NewString(),
		Month:        month,
		Intention:    strings.TrimSpace(intention),
		PersonalNote: strings.TrimSpace(note),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if existing, ok := s.rows.get(month); ok {
		if existing.ID != "" {
			record.ID = existing.ID
		}
		if !existing.CreatedAt.IsZero() {
			record.CreatedAt = existing.CreatedAt
		}
	}
	s.rows.put(month, record)
	return record
}

// Get 返回某月意图
func (s *IntentionStore) Get(month string) (MonthlyIntention, bool) {
	if s == nil {
		return MonthlyIntention{}, false
	}
	return s.rows.get(month)
}

// Delete 删除某月意图
func (s *IntentionStore) Delete(month string) bool {
	return s.rows.remove(month)
}

// Len 返回意图数量
func (s *IntentionStore) Len() int {
	if s == nil {
		return 0
	}
	return s.rows.len()
}

// All 按月份升序返回全部意图
func (s *IntentionStore) All() []MonthlyIntention {
	if s == nil {
		return []MonthlyIntention{}
	}
	return s.rows.sorted(func(a, b MonthlyIntention) int {
		return cmp.Compare(a.Month, b.Month)
	})
}

// Encode 序列化为 JSON 数组
func (s *IntentionStore) Encode() (string, error) {
	return encodeList(s.All())
}

// DecodeIntentions 从持久化内容恢复月度意图
func DecodeIntentions(raw string) (*IntentionStore, error) {
	items, err := decodeList(BucketMonthlyIntentions, raw, func() MonthlyIntention { return MonthlyIntention{} }, func(m MonthlyIntention) bool {
		return strings.TrimSpace(m.Month) != ""
	})
	store := NewIntentionStore()
	for _, item := range items {
		store.rows.put(item.Month, item)
	}
	return store, err
}
