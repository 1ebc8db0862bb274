package handler

import (
	"github.com/lifelog/internal/log"
	"github.com/lifelog/internal/service"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	habits     *service.HabitService
	budget     *service.BudgetService
	journal    *service.JournalService
	routines   *service.RoutineService
	skincare   *service.SkincareService
	intentions *service.IntentionService
	profiles   *service.ProfileService
	dashboard  *service.DashboardService
	export     *service.ExportService
	auth       *service.AuthService
	logger     *log.Logger
}

// NewAPI constructs a handler set with shared services.
func NewAPI(services *service.Services, logger *log.Logger) *API {
	if logger == nil {
		logger = log.Discard()
	}
	return &API{
		habits:     services.Habits,
		budget:     services.Budget,
		journal:    services.Journal,
		routines:   services.Routines,
		skincare:   services.Skincare,
		intentions: services.Intentions,
		profiles:   services.Profiles,
		dashboard:  services.Dashboard,
		export:     services.Export,
		auth:       services.Auth,
		logger:     logger.WithComponent(log.ComponentHTTP),
	}
}
