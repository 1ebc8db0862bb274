package service

import (
	"github.com/lifelog/internal/log"
	"gorm.io/gorm"
)

// Services 汇总应用使用的全部领域服务，共享同一个 BucketService
type Services struct {
	Buckets    *BucketService
	Habits     *HabitService
	Budget     *BudgetService
	Journal    *JournalService
	Routines   *RoutineService
	Skincare   *SkincareService
	Intentions *IntentionService
	Profiles   *ProfileService
	Snapshots  *SnapshotService
	Dashboard  *DashboardService
	Export     *ExportService
	Auth       *AuthService
}

// NewServices 基于数据库连接构造全部服务
func NewServices(gdb *gorm.DB, logger *log.Logger, opts ...Option) *Services {
	if logger == nil {
		logger = log.Discard()
	}
	opts = append([]Option{WithLogger(logger)}, opts...)
	buckets := NewBucketService(gdb)

	return &Services{
		Buckets:    buckets,
		Habits:     NewHabitService(buckets, opts...),
		Budget:     NewBudgetService(buckets, opts...),
		Journal:    NewJournalService(buckets, opts...),
		Routines:   NewRoutineService(buckets, opts...),
		Skincare:   NewSkincareService(buckets, opts...),
		Intentions: NewIntentionService(buckets, opts...),
		Profiles:   NewProfileService(buckets, opts...),
		Snapshots:  NewSnapshotService(buckets, opts...),
		Dashboard:  NewDashboardService(buckets, opts...),
		Export:     NewExportService(buckets, opts...),
		Auth:       NewAuthService(gdb, logger),
	}
}
