package record

import (
	"cmp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEntry 记录某日的预算执行情况，每个日期至多一条
type BudgetEntry struct {
	ID                 string           `json:"id"`
	Date               string           `json:"date"`
	StayedWithinBudget bool             `json:"stayedWithinBudget"`
	TrackedExpenses    bool             `json:"trackedExpenses"`
	Amount             *decimal.Decimal `json:"amount,omitempty"`
	Notes              string           `json:"notes,omitempty"`
}

// Good 表示该日既守住预算又记了账
func (e BudgetEntry) Good() bool {
	return e.StayedWithinBudget && e.TrackedExpenses
}

// BudgetStore 以日期为键保存预算记录
type BudgetStore struct {
	rows table[string, BudgetEntry]
}

// NewBudgetStore 构造空的 BudgetStore
func NewBudgetStore() *BudgetStore {
	return &BudgetStore{rows: newTable[string, BudgetEntry]()}
}

// Upsert 按日期写入记录：已存在则整体替换并沿用原 ID
func (s *BudgetStore) Upsert(e BudgetEntry) BudgetEntry {
	if existing, ok := s.rows.get(e.Date); ok && existing.ID != "" {
		e.ID = existing.ID
	}
	if strings.TrimSpace(e.ID) == "" {
		e.ID = uuid.NewString()
	}
	e.Notes = strings.TrimSpace(e.Notes)
	s.rows.put(e.Date, e)
	return e
}

// Get 返回某日的预算记录
func (s *BudgetStore) Get(date string) (BudgetEntry, bool) {
	if s == nil {
		return BudgetEntry{}, false
	}
	return s.rows.get(date)
}

// Delete 删除某日的预算记录
func (s *BudgetStore) Delete(date string) bool {
	return s.rows.remove(date)
}

// Len 返回记录数量
func (s *BudgetStore) Len() int {
	if s == nil {
		return 0
	}
	return s.rows.len()
}

// All 按日期升序返回全部记录
func (s *BudgetStore) All() []BudgetEntry {
	if s == nil {
		return []BudgetEntry{}
	}
	return s.rows.sorted(func(a, b BudgetEntry) int {
		return cmp.Compare(a.Date, b.Date)
	})
}

// Encode 序列化为 JSON 数组
func (s *BudgetStore) Encode() (string, error) {
	return encodeList(s.All())
}

// DecodeBudget 从持久化内容恢复预算记录；同一日期重复时后者覆盖前者
func DecodeBudget(raw string) (*BudgetStore, error) {
	items, err := decodeList(BucketBudgetEntries, raw, func() BudgetEntry { return BudgetEntry{} }, nil)
	store := NewBudgetStore()
	for _, item := range items {
		store.rows.put(item.Date, item)
	}
	return store, err
}
