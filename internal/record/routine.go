package record

import (
	"cmp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// 例程类型
const (
	RoutineMorning = "morning"
	RoutineEvening = "evening"
	RoutineCustom  = "custom"
)

// Routine 是一组按顺序执行的习惯
type Routine struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	HabitIDs  []string  `json:"habitIds"`
	CreatedAt time.Time `json:"createdAt"`
}

// RoutineStore 以 ID 保存例程定义
type RoutineStore struct {
	rows table[string, Routine]
}

// NewRoutineStore 构造空的 RoutineStore
func NewRoutineStore() *RoutineStore {
	return &RoutineStore{rows: newTable[string, Routine]()}
}

// Put 新增或替换例程
func (s *RoutineStore) Put(r Routine) Routine {
	if strings.TrimSpace(r.ID) == "" {
		r.ID = uuid.NewString()
	}
	r.HabitIDs = orderedSet(r.HabitIDs)
	s.rows.put(r.ID, r)
	return r
}

// Get 按 ID 查找例程
func (s *RoutineStore) Get(id string) (Routine, bool) {
	if s == nil {
		return Routine{}, false
	}
	return s.rows.get(id)
}

// Delete 删除例程
func (s *RoutineStore) Delete(id string) bool {
	return s.rows.remove(id)
}

// Len 返回例程数量
func (s *RoutineStore) Len() int {
	if s == nil {
		return 0
	}
	return s.rows.len()
}

// All 按创建时间、ID 排序返回全部例程
func (s *RoutineStore) All() []Routine {
	if s == nil {
		return []Routine{}
	}
	return s.rows.sorted(func(a, b Routine) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// Encode 序列化为 JSON 数组
func (s *RoutineStore) Encode() (string, error) {
	return encodeList(s.All())
}

// DecodeRoutines 从持久化内容恢复例程定义
func DecodeRoutines(raw string) (*RoutineStore, error) {
	items, err := decodeList(BucketRoutines, raw, func() Routine { return Routine{Kind: RoutineCustom} }, func(r Routine) bool {
		return strings.TrimSpace(r.ID) != ""
	})
	store := NewRoutineStore()
	for _, item := range items {
		item.HabitIDs = orderedSet(item.HabitIDs)
		store.rows.put(item.ID, item)
	}
	return store, err
}

// RoutineCompletion 记录某例程在某日的一次完成，(Date, RoutineID) 唯一
// Duration 以分钟计，可为空
type RoutineCompletion struct {
	Date            string    `json:"date"`
	RoutineID       string    `json:"routineId"`
	CompletedAt     time.Time `json:"completedAt"`
	Duration        *int      `json:"duration,omitempty"`
	CompletedHabits []string  `json:"completedHabits"`
}

type routineCompletionKey struct {
	date      string
	routineID string
}

// RoutineCompletionStore 保存例程完成记录
type RoutineCompletionStore struct {
	rows table[routineCompletionKey, RoutineCompletion]
}

// NewRoutineCompletionStore 构造空的 RoutineCompletionStore
func NewRoutineCompletionStore() *RoutineCompletionStore {
	return &RoutineCompletionStore{rows: newTable[routineCompletionKey, RoutineCompletion]()}
}

// Put 写入完成记录，同日同例程覆盖；已完成习惯去重并保持顺序
func (s *RoutineCompletionStore) Put(c RoutineCompletion) RoutineCompletion {
	c.CompletedHabits = orderedSet(c.CompletedHabits)
	s.rows.put(routineCompletionKey{date: c.Date, routineID: c.RoutineID}, c)
	return c
}

// Get 返回某例程某日的完成记录
func (s *RoutineCompletionStore) Get(date, routineID string) (RoutineCompletion, bool) {
	if s == nil {
		return RoutineCompletion{}, false
	}
	return s.rows.get(routineCompletionKey{date: date, routineID: routineID})
}

// Delete 删除某例程某日的完成记录
func (s *RoutineCompletionStore) Delete(date, routineID string) bool {
	return s.rows.remove(routineCompletionKey{date: date, routineID: routineID})
}

// RemoveRoutine 删除某例程的全部完成记录
func (s *RoutineCompletionStore) RemoveRoutine(routineID string) int {
	return s.rows.removeWhere(func(c RoutineCompletion) bool {
		return c.RoutineID == routineID
	})
}

// Len 返回记录数量
func (s *RoutineCompletionStore) Len() int {
	if s == nil {
		return 0
	}
	return s.rows.len()
}

// All 按日期、例程 ID 排序返回全部记录
func (s *RoutineCompletionStore) All() []RoutineCompletion {
	if s == nil {
		return []RoutineCompletion{}
	}
	return s.rows.sorted(func(a, b RoutineCompletion) int {
		if c := cmp.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.RoutineID, b.RoutineID)
	})
}

// Encode 序列化为 JSON 数组
func (s *RoutineCompletionStore) Encode() (string, error) {
	return encodeList(s.All())
}

// DecodeRoutineCompletions 从持久化内容恢复例程完成记录
func DecodeRoutineCompletions(raw string) (*RoutineCompletionStore, error) {
	items, err := decodeList(BucketRoutineCompletions, raw, func() RoutineCompletion { return RoutineCompletion{} }, func(c RoutineCompletion) bool {
		return strings.TrimSpace(c.RoutineID) != ""
	})
	store := NewRoutineCompletionStore()
	for _, item := range items {
		store.Put(item)
	}
	return store, err
}

func orderedSet(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
