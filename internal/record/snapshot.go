package record

// Snapshot 是某一时刻全部记录的只读视图，统计计算只读取它。
// 为 nil 的 store 读取时视为空。
type Snapshot struct {
	Habits             *HabitStore
	Completions        *CompletionStore
	Budget             *BudgetStore
	Journal            *JournalStore
	Routines           *RoutineStore
	RoutineCompletions *RoutineCompletionStore
	Skincare           *SkincareStore
	Intentions         *IntentionStore
	Profile            Profile
}

// EmptySnapshot 返回所有 store 均为空的快照
func EmptySnapshot() Snapshot {
	return Snapshot{
		Habits:             NewHabitStore(),
		Completions:        NewCompletionStore(),
		Budget:             NewBudgetStore(),
		Journal:            NewJournalStore(),
		Routines:           NewRoutineStore(),
		RoutineCompletions: NewRoutineCompletionStore(),
		Skincare:           NewSkincareStore(),
		Intentions:         NewIntentionStore(),
		Profile:            DefaultProfile(),
	}
}
