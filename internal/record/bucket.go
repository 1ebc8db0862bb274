package record

// 各领域在键值存储中的固定桶名
const (
	BucketHabits              = "habits"
	BucketHabitCompletions    = "habit_completions"
	BucketBudgetEntries       = "budget_entries"
	BucketJournalEntries      = "journal_entries"
	BucketRoutines            = "routines"
	BucketRoutineCompletions  = "routine_completions"
	BucketSkincareCompletions = "skincare_completions"
	BucketMonthlyIntentions   = "monthly_intentions"
	BucketProfile             = "profile"
)

// Buckets 返回全部桶名，顺序固定
func Buckets() []string {
	return []string{
		BucketHabits,
		BucketHabitCompletions,
		BucketBudgetEntries,
		BucketJournalEntries,
		BucketRoutines,
		BucketRoutineCompletions,
		BucketSkincareCompletions,
		BucketMonthlyIntentions,
		BucketProfile,
	}
}
