package record

import (
	"cmp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LifeArea 是用于平衡评分的生活领域
type LifeArea string

const (
	AreaHealth        LifeArea = "health"
	AreaCareer        LifeArea = "career"
	AreaMind          LifeArea = "mind"
	AreaRelationships LifeArea = "relationships"
)

// LifeAreas 返回固定顺序的全部生活领域，洞察生成依赖该顺序
func LifeAreas() []LifeArea {
	return []LifeArea{AreaHealth, AreaCareer, AreaMind, AreaRelationships}
}

// ParseLifeArea 规范化生活领域名称
func ParseLifeArea(raw string) (LifeArea, bool) {
	candidate := LifeArea(strings.ToLower(strings.TrimSpace(raw)))
	for _, area := range LifeAreas() {
		if candidate == area {
			return area, true
		}
	}
	return "", false
}

// 习惯频率，仅 daily/weekly 两种
const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

// Habit 定义一个可打卡的习惯
// LifeArea 决定习惯归属哪个生活领域；Active=false 的习惯不再参与完成率分母
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	LifeArea  LifeArea  `json:"lifeArea,omitempty"`
	Frequency string    `json:"frequency"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func defaultHabit() Habit {
	return Habit{Frequency: FrequencyDaily, Active: true}
}

// HabitStore 以 ID 为键保存习惯定义
type HabitStore struct {
	rows table[string, Habit]
}

// NewHabitStore 构造空的 HabitStore
func NewHabitStore() *HabitStore {
	return &HabitStore{rows: newTable[string, Habit]()}
}

// Put 新增或替换习惯，ID 为空时自动生成
func (s *HabitStore) Put(h Habit) Habit {
	if strings.TrimSpace(h.ID) == "" {
		h.ID = uuid.NewString()
	}
	s.rows.put(h.ID, h)
	return h
}

// Get 按 ID 查找习惯
func (s *HabitStore) Get(id string) (Habit, bool) {
	if s == nil {
		return Habit{}, false
	}
	return s.rows.get(id)
}

// Delete 删除习惯，返回是否存在
func (s *HabitStore) Delete(id string) bool {
	return s.rows.remove(id)
}

// Len 返回习惯数量
func (s *HabitStore) Len() int {
	if s == nil {
		return 0
	}
	return s.rows.len()
}

// All 按创建时间、ID 排序返回全部习惯
func (s *HabitStore) All() []Habit {
	if s == nil {
		return []Habit{}
	}
	return s.rows.sorted(func(a, b Habit) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// Active 返回仍在启用的习惯
func (s *HabitStore) Active() []Habit {
	all := s.All()
	active := all[:0]
	for _, h := range all {
		if h.Active {
			active = append(active, h)
		}
	}
	return active
}

// Encode 序列化为 JSON 数组
func (s *HabitStore) Encode() (string, error) {
	return encodeList(s.All())
}

// DecodeHabits 从持久化内容恢复习惯定义，返回的 store 永不为 nil
func DecodeHabits(raw string) (*HabitStore, error) {
	items, err := decodeList(BucketHabits, raw, defaultHabit, func(h Habit) bool {
		return strings.TrimSpace(h.ID) != ""
	})
	store := NewHabitStore()
	for _, item := range items {
		store.rows.put(item.ID, item)
	}
	return store, err
}

// HabitCompletion 表示某习惯在某日的一次打卡
// (HabitID, Date) 唯一；取消打卡即删除记录
type HabitCompletion struct {
	HabitID  string   `json:"habitId"`
	Date     string   `json:"date"`
	Category string   `json:"category,omitempty"`
	LifeArea LifeArea `json:"lifeArea,omitempty"`
}

type completionKey struct {
	habitID string
	date    string
}

// CompletionStore 保存习惯打卡记录
type CompletionStore struct {
	rows table[completionKey, HabitCompletion]
}

// NewCompletionStore 构造空的 CompletionStore
func NewCompletionStore() *CompletionStore {
	return &CompletionStore{rows: newTable[completionKey, HabitCompletion]()}
}

// Set 打卡或取消打卡，返回记录集合是否发生变化
func (s *CompletionStore) Set(c HabitCompletion, done bool) bool {
	key := completionKey{habitID: c.HabitID, date: c.Date}
	if !done {
		return s.rows.remove(key)
	}
	previous, replaced := s.rows.put(key, c)
	return !replaced || previous != c
}

// Toggle 切换打卡状态，返回切换后是否已完成
func (s *CompletionStore) Toggle(c HabitCompletion) bool {
	if s.Has(c.HabitID, c.Date) {
		s.Set(c, false)
		return false
	}
	s.Set(c, true)
	return true
}

// Has 判断某习惯某日是否已打卡
func (s *CompletionStore) Has(habitID, date string) bool {
	if s == nil {
		return false
	}
	_, ok := s.rows.get(completionKey{habitID: habitID, date: date})
	return ok
}

// RemoveHabit 删除某习惯的全部打卡记录
func (s *CompletionStore) RemoveHabit(habitID string) int {
	return s.rows.removeWhere(func(c HabitCompletion) bool {
		return c.HabitID == habitID
	})
}

// Len 返回打卡记录数量
func (s *CompletionStore) Len() int {
	if s == nil {
		return 0
	}
	return s.rows.len()
}

// All 按日期、习惯 ID 排序返回全部打卡
func (s *CompletionStore) All() []HabitCompletion {
	if s == nil {
		return []HabitCompletion{}
	}
	return s.rows.sorted(func(a, b HabitCompletion) int {
		if c := cmp.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.HabitID, b.HabitID)
	})
}

// ForHabit 返回某习惯的打卡记录
func (s *CompletionStore) ForHabit(habitID string) []HabitCompletion {
	var result []HabitCompletion
	for _, c := range s.All() {
		if c.HabitID == habitID {
			result = append(result, c)
		}
	}
	return result
}

// Encode 序列化为 JSON 数组
func (s *CompletionStore) Encode() (string, error) {
	return encodeList(s.All())
}

// DecodeCompletions 从持久化内容恢复打卡记录
func DecodeCompletions(raw string) (*CompletionStore, error) {
	items, err := decodeList(BucketHabitCompletions, raw, func() HabitCompletion { return HabitCompletion{} }, func(c HabitCompletion) bool {
		return strings.TrimSpace(c.HabitID) != ""
	})
	store := NewCompletionStore()
	for _, item := range items {
		store.rows.put(completionKey{habitID: item.HabitID, date: item.Date}, item)
	}
	return store, err
}
