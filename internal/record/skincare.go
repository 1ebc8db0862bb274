package record

import (
	"cmp"
	"strings"
	"time"
)

// 护肤时段
const (
	PeriodMorning = "morning"
	PeriodEvening = "evening"
)

// ParsePeriod 规范化护肤时段
func ParsePeriod(raw string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case PeriodMorning, "am":
		return PeriodMorning, true
	case PeriodEvening, "pm":
		return PeriodEvening, true
	}
	return "", false
}

// SkincareCompletion 记录某日某时段的护肤完成情况，(Date, Period) 唯一
type SkincareCompletion struct {
	Date        string    `json:"date"`
	Period      string    `json:"period"`
	Steps       []string  `json:"steps"`
	CompletedAt time.Time `json:"completedAt"`
}

type skincareKey struct {
	date   string
	period string
}

// SkincareStore 保存护肤完成记录
type SkincareStore struct {
	rows table[skincareKey, SkincareCompletion]
}

// NewSkincareStore 构造空的 SkincareStore
func NewSkincareStore() *SkincareStore {
	return &SkincareStore{rows: newTable[skincareKey, SkincareCompletion]()}
}

// Put 写入护肤记录，同日同时段覆盖
func (s *SkincareStore) Put(c SkincareCompletion) SkincareCompletion {
	c.Steps = orderedSet(c.Steps)
	s.rows.put(skincareKey{date: c.Date, period: c.Period}, c)
	return c
}

// Delete 删除某日某时段的记录
func (s *SkincareStore) Delete(date, period string) bool {
	return s.rows.remove(skincareKey{date: date, period: period})
}

// Len 返回记录数量
func (s *SkincareStore) Len() int {
	if s == nil {
		return 0
	}
	return s.rows.len()
}

// All 按日期、时段排序返回全部记录
func (s *SkincareStore) All() []SkincareCompletion {
	if s == nil {
		return []SkincareCompletion{}
	}
	return s.rows.sorted(func(a, b SkincareCompletion) int {
		if c := cmp.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.Period, b.Period)
	})
}

// Encode 序列化为 JSON 数组
func (s *SkincareStore) Encode() (string, error) {
	return encodeList(s.All())
}

// DecodeSkincare 从持久化内容恢复护肤记录
func DecodeSkincare(raw string) (*SkincareStore, error) {
	items, err := decodeList(BucketSkincareCompletions, raw, func() SkincareCompletion { return SkincareCompletion{} }, func(c SkincareCompletion) bool {
		_, ok := ParsePeriod(c.Period)
		return ok
	})
	store := NewSkincareStore()
	for _, item := range items {
		item.Period, _ = ParsePeriod(item.Period)
		store.Put(item)
	}
	return store, err
}
