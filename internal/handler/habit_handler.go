package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/service"
)

type habitPayload struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	LifeArea  string `json:"lifeArea"`
	Frequency string `json:"frequency"`
	Active    *bool  `json:"active"`
}

func (p habitPayload) input() service.HabitInput {
	return service.HabitInput{
		Name:      p.Name,
		Category:  p.Category,
		LifeArea:  p.LifeArea,
		Frequency: p.Frequency,
		Active:    p.Active,
	}
}

type checkPayload struct {
	Date string `json:"date"`
	Done *bool  `json:"done"`
}

// ListHabits 返回全部习惯
func (a *API) ListHabits(c *gin.Context) {
	habits, err := a.habits.List(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err, "failed to list habits")
		return
	}
	c.JSON(http.StatusOK, gin.H{"habits": habits})
}

// GetHabit 返回单个习惯
func (a *API) GetHabit(c *gin.Context) {
	habit, err := a.habits.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		a.respondServiceError(c, err, "failed to load habit")
		return
	}
	c.JSON(http.StatusOK, gin.H{"habit": habit})
}

// CreateHabit 新建习惯
func (a *API) CreateHabit(c *gin.Context) {
	var payload habitPayload
	if !bindJSON(c, &payload, "invalid habit payload") {
		return
	}
	habit, err := a.habits.Create(c.Request.Context(), payload.input())
	if err != nil {
		a.respondServiceError(c, err, "failed to create habit")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"habit": habit})
}

// UpdateHabit 更新习惯
func (a *API) UpdateHabit(c *gin.Context) {
	var payload habitPayload
	if !bindJSON(c, &payload, "invalid habit payload") {
		return
	}
	habit, err := a.habits.Update(c.Request.Context(), c.Param("id"), payload.input())
	if err != nil {
		a.respondServiceError(c, err, "failed to update habit")
		return
	}
	c.JSON(http.StatusOK, gin.H{"habit": habit})
}

// DeleteHabit 删除习惯及其打卡
func (a *API) DeleteHabit(c *gin.Context) {
	if err := a.habits.Delete(c.Request.Context(), c.Param("id")); err != nil {
		a.respondServiceError(c, err, "failed to delete habit")
		return
	}
	c.Status(http.StatusNoContent)
}

// CheckHabit 打卡或取消打卡，done 缺省为 true
func (a *API) CheckHabit(c *gin.Context) {
	var payload checkPayload
	if !bindJSON(c, &payload, "invalid check payload") {
		return
	}
	done := true
	if payload.Done != nil {
		done = *payload.Done
	}

	changed, err := a.habits.Check(c.Request.Context(), service.CheckInput{
		HabitID: c.Param("id"),
		Date:    payload.Date,
		Done:    done,
	})
	if err != nil {
		a.respondServiceError(c, err, "failed to check habit")
		return
	}
	c.JSON(http.StatusOK, gin.H{"done": done, "changed": changed})
}

// ListHabitCompletions 返回全部打卡记录
func (a *API) ListHabitCompletions(c *gin.Context) {
	completions, err := a.habits.Completions(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err, "failed to list completions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"completions": completions})
}

// HabitStats 返回习惯统计
func (a *API) HabitStats(c *gin.Context) {
	stats, err := a.habits.Stats(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err, "failed to compute habit stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
