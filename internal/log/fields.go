package log

// 结构化日志的通用字段名
const (
	FieldComponent  = "component"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldClientIP   = "client_ip"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldBucket     = "bucket"
	FieldSkipped    = "skipped"
	FieldDate       = "date"
	FieldMonth      = "month"
	FieldHabitID    = "habit_id"
	FieldRoutineID  = "routine_id"
	FieldCount      = "count"
)

// 组件名
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentStorage   = "storage"
	ComponentHabit     = "habit"
	ComponentBudget    = "budget"
	ComponentJournal   = "journal"
	ComponentRoutine   = "routine"
	ComponentSkincare  = "skincare"
	ComponentIntention = "intention"
	ComponentProfile   = "profile"
	ComponentDashboard = "dashboard"
	ComponentExport    = "export"
	ComponentAuth      = "auth"
	ComponentCLI       = "cli"
)

// 操作名
const (
	OpCreate  = "create"
	OpRead    = "read"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpDecode  = "decode"
	OpLogin   = "login"
	OpStartup = "startup"
)
