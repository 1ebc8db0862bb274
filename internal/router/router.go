package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/handler"
	"github.com/lifelog/internal/log"
	"github.com/lifelog/internal/service"
)

const sessionName = "lifelog_session"

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(sessionSecret string, services *service.Services, logger *log.Logger) *gin.Engine {
	if logger == nil {
		logger = log.Discard()
	}

	r := gin.New()
	r.Use(gin.Recovery(), log.GinMiddleware(logger))

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	api := handler.NewAPI(services, logger)
	r.Use(api.LocaleMiddleware())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.POST("/api/session", api.Login)
	r.DELETE("/api/session", api.Logout)

	auth := r.Group("/api")
	auth.Use(handler.AuthRequired())
	{
		auth.GET("/session", api.Session)

		auth.GET("/habits", api.ListHabits)
		auth.POST("/habits", api.CreateHabit)
		auth.GET("/habits/stats", api.HabitStats)
		auth.GET("/habits/completions", api.ListHabitCompletions)
		auth.GET("/habits/:id", api.GetHabit)
		auth.PUT("/habits/:id", api.UpdateHabit)
		auth.DELETE("/habits/:id", api.DeleteHabit)
		auth.POST("/habits/:id/check", api.CheckHabit)

		auth.GET("/budget", api.ListBudget)
		auth.GET("/budget/stats", api.BudgetStats)
		auth.GET("/budget/:date", api.GetBudget)
		auth.PUT("/budget/:date", api.PutBudget)
		auth.DELETE("/budget/:date", api.DeleteBudget)

		auth.GET("/journal", api.ListJournal)
		auth.GET("/journal/stats", api.JournalStats)
		auth.GET("/journal/:date", api.GetJournal)
		auth.PUT("/journal/:date", api.PutJournal)
		auth.DELETE("/journal/:date", api.DeleteJournal)
		auth.GET("/journal/:date/html", api.RenderJournal)
		auth.PUT("/journal/:date/mood", api.SetJournalMood)
		auth.POST("/sentiment", api.AnalyzeSentiment)

		auth.GET("/routines", api.ListRoutines)
		auth.POST("/routines", api.CreateRoutine)
		auth.GET("/routines/stats", api.RoutineStats)
		auth.PUT("/routines/:id", api.UpdateRoutine)
		auth.DELETE("/routines/:id", api.DeleteRoutine)
		auth.POST("/routines/:id/completions", api.CompleteRoutine)
		auth.DELETE("/routines/:id/completions/:date", api.UncompleteRoutine)

		auth.GET("/skincare", api.ListSkincare)
		auth.GET("/skincare/stats", api.SkincareStats)
		auth.PUT("/skincare/:date/:period", api.MarkSkincare)

		auth.GET("/intentions", api.ListIntentions)
		auth.GET("/intentions/current", api.CurrentIntention)
		auth.GET("/intentions/:month", api.GetIntention)
		auth.PUT("/intentions/:month", api.PutIntention)
		auth.DELETE("/intentions/:month", api.DeleteIntention)

		auth.GET("/profile", api.GetProfile)
		auth.PUT("/profile", api.UpdateProfile)

		auth.GET("/dashboard", api.Dashboard)
		auth.GET("/life-balance", api.LifeBalance)
		auth.GET("/reports/month", api.MonthReport)
		auth.GET("/export", api.Export)
	}

	return r
}
