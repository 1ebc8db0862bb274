package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/db"
	"github.com/lifelog/internal/service"
)

var handlerNow = time.Date(2024, 3, 15, 20, 0, 0, 0, time.Local)

func setupHandlerAPI(t *testing.T) (*gin.Engine, *service.Services) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	gdb, err := db.Open("file:handler_"+name+"?mode=memory&cache=shared", db.Options{Silent: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close(gdb) })

	services := service.NewServices(gdb, nil, service.WithClock(func() time.Time { return handlerNow }))
	api := NewAPI(services, nil)

	r := gin.New()
	r.Use(api.LocaleMiddleware())
	r.GET("/habits", api.ListHabits)
	r.POST("/habits", api.CreateHabit)
	r.GET("/habits/stats", api.HabitStats)
	r.GET("/habits/:id", api.GetHabit)
	r.POST("/habits/:id/check", api.CheckHabit)
	r.PUT("/budget/:date", api.PutBudget)
	r.GET("/budget/stats", api.BudgetStats)
	r.PUT("/journal/:date", api.PutJournal)
	r.GET("/journal/:date/html", api.RenderJournal)
	r.PUT("/journal/:date/mood", api.SetJournalMood)
	r.POST("/sentiment", api.AnalyzeSentiment)
	r.POST("/routines", api.CreateRoutine)
	r.POST("/routines/:id/completions", api.CompleteRoutine)
	r.PUT("/skincare/:date/:period", api.MarkSkincare)
	r.PUT("/intentions/:month", api.PutIntention)
	r.GET("/intentions/current", api.CurrentIntention)
	r.PUT("/profile", api.UpdateProfile)
	r.GET("/dashboard", api.Dashboard)
	r.GET("/reports/month", api.MonthReport)
	r.GET("/export", api.Export)
	return r, services
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
}

func TestHabitEndpoints(t *testing.T) {
	r, _ := setupHandlerAPI(t)

	rr := doJSON(t, r, http.MethodPost, "/habits", gin.H{"name": "Meditate", "lifeArea": "mind"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var created struct {
		Habit struct {
			ID       string `json:"id"`
			LifeArea string `json:"lifeArea"`
		} `json:"habit"`
	}
	decodeBody(t, rr, &created)
	if created.Habit.ID == "" || created.Habit.LifeArea != "mind" {
		t.Fatalf("unexpected created habit: %+v", created)
	}

	rr = doJSON(t, r, http.MethodPost, "/habits/"+created.Habit.ID+"/check", gin.H{"date": "2024-03-15"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, r, http.MethodGet, "/habits/stats", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var stats struct {
		CurrentStreak  int `json:"currentStreak"`
		CompletedToday int `json:"completedToday"`
	}
	decodeBody(t, rr, &stats)
	if stats.CurrentStreak != 1 || stats.CompletedToday != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestHabitEndpointErrors(t *testing.T) {
	r, _ := setupHandlerAPI(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{name: "empty name", method: http.MethodPost, path: "/habits", body: gin.H{"name": ""}, status: http.StatusBadRequest},
		{name: "bad area", method: http.MethodPost, path: "/habits", body: gin.H{"name": "x", "lifeArea": "money"}, status: http.StatusBadRequest},
		{name: "malformed json", method: http.MethodPost, path: "/habits", body: "nope", status: http.StatusBadRequest},
		{name: "missing habit", method: http.MethodGet, path: "/habits/missing", status: http.StatusNotFound},
		{name: "bad date", method: http.MethodPost, path: "/habits/missing/check", body: gin.H{"date": "03/15/2024"}, status: http.StatusBadRequest},
		{name: "check missing habit", method: http.MethodPost, path: "/habits/missing/check", body: gin.H{"date": "2024-03-15"}, status: http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doJSON(t, r, tc.method, tc.path, tc.body)
			if rr.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, rr.Code, rr.Body.String())
			}
			var payload map[string]string
			decodeBody(t, rr, &payload)
			if payload["error"] == "" {
				t.Fatalf("expected error message, got %s", rr.Body.String())
			}
		})
	}
}

func TestBudgetEndpoints(t *testing.T) {
	r, _ := setupHandlerAPI(t)

	rr := doJSON(t, r, http.MethodPut, "/budget/2024-03-15", gin.H{"stayedWithinBudget": true, "trackedExpenses": true, "amount": "18.20"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	rr = doJSON(t, r, http.MethodPut, "/budget/2024-3-15", gin.H{"stayedWithinBudget": true})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", rr.Code)
	}

	rr = doJSON(t, r, http.MethodGet, "/budget/stats", nil)
	var stats struct {
		GoodDays   int    `json:"goodDays"`
		MonthSpend string `json:"monthSpend"`
	}
	decodeBody(t, rr, &stats)
	if stats.GoodDays != 1 || stats.MonthSpend != "18.2" {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestJournalEndpoints(t *testing.T) {
	r, _ := setupHandlerAPI(t)

	rr := doJSON(t, r, http.MethodPut, "/journal/2024-03-15", gin.H{"content": "Grateful for a *calm* evening"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var saved struct {
		Entry struct {
			Mood      string `json:"mood"`
			Sentiment struct {
				Score int `json:"score"`
			} `json:"sentiment"`
		} `json:"entry"`
	}
	decodeBody(t, rr, &saved)
	if saved.Entry.Sentiment.Score <= 0 || saved.Entry.Mood == "" {
		t.Fatalf("expected positive analysis, got %+v", saved)
	}

	rr = doJSON(t, r, http.MethodGet, "/journal/2024-03-15/html", nil)
	var rendered map[string]string
	decodeBody(t, rr, &rendered)
	if !strings.Contains(rendered["html"], "<em>calm</em>") {
		t.Fatalf("unexpected html: %s", rendered["html"])
	}

	rr = doJSON(t, r, http.MethodPut, "/journal/2024-03-01/mood", gin.H{"mood": "calm"})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing entry, got %d", rr.Code)
	}

	rr = doJSON(t, r, http.MethodPost, "/sentiment", gin.H{"text": "I feel sad and lonely"})
	var analysis struct {
		Score int    `json:"score"`
		Label string `json:"label"`
	}
	decodeBody(t, rr, &analysis)
	if analysis.Score >= 0 {
		t.Fatalf("expected negative analysis, got %+v", analysis)
	}
}

func TestRoutineSkincareAndIntentionEndpoints(t *testing.T) {
	r, _ := setupHandlerAPI(t)

	rr := doJSON(t, r, http.MethodPost, "/routines", gin.H{"name": "Wind down", "kind": "evening", "habitIds": []string{"read"}})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var created struct {
		Routine struct {
			ID string `json:"id"`
		} `json:"routine"`
	}
	decodeBody(t, rr, &created)

	rr = doJSON(t, r, http.MethodPost, "/routines/"+created.Routine.ID+"/completions", gin.H{"date": "2024-03-15", "duration": 20})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	rr = doJSON(t, r, http.MethodPost, "/routines/"+created.Routine.ID+"/completions", gin.H{"date": "2024-03-15", "duration": -5})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative duration, got %d", rr.Code)
	}

	rr = doJSON(t, r, http.MethodPut, "/skincare/2024-03-15/pm", gin.H{"steps": []string{"cleanse"}})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	rr = doJSON(t, r, http.MethodPut, "/skincare/2024-03-15/noon", gin.H{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad period, got %d", rr.Code)
	}

	rr = doJSON(t, r, http.MethodGet, "/intentions/current", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before intention exists, got %d", rr.Code)
	}
	rr = doJSON(t, r, http.MethodPut, "/intentions/2024-03", gin.H{"intention": "Slow down"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	rr = doJSON(t, r, http.MethodGet, "/intentions/current", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestDashboardUsesRequestLanguage(t *testing.T) {
	r, _ := setupHandlerAPI(t)

	rr := doJSON(t, r, http.MethodPut, "/profile", gin.H{"name": "Lin", "language": "en"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, r, http.MethodGet, "/dashboard", nil)
	var dashboard struct {
		Language string `json:"language"`
		Greeting string `json:"greeting"`
		Name     string `json:"name"`
	}
	decodeBody(t, rr, &dashboard)
	if dashboard.Language != "en" || dashboard.Greeting != "Good evening" || dashboard.Name != "Lin" {
		t.Fatalf("unexpected dashboard: %+v", dashboard)
	}

	rr = doJSON(t, r, http.MethodGet, "/dashboard?lang=zh", nil)
	decodeBody(t, rr, &dashboard)
	if dashboard.Language != "zh" || dashboard.Greeting != "晚上好" {
		t.Fatalf("expected chinese dashboard, got %+v", dashboard)
	}
	if !strings.Contains(rr.Header().Get("Set-Cookie"), languageCookieName+"=zh") {
		t.Fatalf("expected language cookie, got %q", rr.Header().Get("Set-Cookie"))
	}
}

func TestMonthReportAndExport(t *testing.T) {
	r, _ := setupHandlerAPI(t)

	rr := doJSON(t, r, http.MethodGet, "/reports/month?month=2024-02", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var report struct {
		Month string `json:"month"`
	}
	decodeBody(t, rr, &report)
	if report.Month != "2024-02" {
		t.Fatalf("unexpected month: %+v", report)
	}
	rr = doJSON(t, r, http.MethodGet, "/reports/month?month=feb", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	rr = doJSON(t, r, http.MethodGet, "/export", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Header().Get("Content-Disposition"), "lifelog-export-2024-03-15.json") {
		t.Fatalf("unexpected content disposition: %s", rr.Header().Get("Content-Disposition"))
	}
	var doc struct {
		Buckets map[string]json.RawMessage `json:"buckets"`
	}
	decodeBody(t, rr, &doc)
	if len(doc.Buckets) == 0 {
		t.Fatal("expected exported buckets")
	}
}
