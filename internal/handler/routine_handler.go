package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/service"
)

type routinePayload struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	HabitIDs []string `json:"habitIds"`
}

func (p routinePayload) input() service.RoutineInput {
	return service.RoutineInput{Name: p.Name, Kind: p.Kind, HabitIDs: p.HabitIDs}
}

type routineCompletionPayload struct {
	Date            string   `json:"date"`
	Duration        *int     `json:"duration"`
	CompletedHabits []string `json:"completedHabits"`
}

// ListRoutines 返回全部例程
func (a *API) ListRoutines(c *gin.Context) {
	routines, err := a.routines.List(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err, "failed to list routines")
		return
	}
	c.JSON(http.StatusOK, gin.H{"routines": routines})
}

// CreateRoutine 新建例程
func (a *API) CreateRoutine(c *gin.Context) {
	var payload routinePayload
	if !bindJSON(c, &payload, "invalid routine payload") {
		return
	}
	routine, err := a.routines.Create(c.Request.Context(), payload.input())
	if err != nil {
		a.respondServiceError(c, err, "failed to create routine")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"routine": routine})
}

// UpdateRoutine 更新例程
func (a *API) UpdateRoutine(c *gin.Context) {
	var payload routinePayload
	if !bindJSON(c, &payload, "invalid routine payload") {
		return
	}
	routine, err := a.routines.Update(c.Request.Context(), c.Param("id"), payload.input())
	if err != nil {
		a.respondServiceError(c, err, "failed to update routine")
		return
	}
	c.JSON(http.StatusOK, gin.H{"routine": routine})
}

// DeleteRoutine 删除例程及其完成记录
func (a *API) DeleteRoutine(c *gin.Context) {
	if err := a.routines.Delete(c.Request.Context(), c.Param("id")); err != nil {
		a.respondServiceError(c, err, "failed to delete routine")
		return
	}
	c.Status(http.StatusNoContent)
}

// CompleteRoutine 记录例程完成
func (a *API) CompleteRoutine(c *gin.Context) {
	var payload routineCompletionPayload
	if !bindJSON(c, &payload, "invalid completion payload") {
		return
	}
	completion, err := a.routines.Complete(c.Request.Context(), service.RoutineCompletionInput{
		RoutineID:       c.Param("id"),
		Date:            payload.Date,
		Duration:        payload.Duration,
		CompletedHabits: payload.CompletedHabits,
	})
	if err != nil {
		a.respondServiceError(c, err, "failed to complete routine")
		return
	}
	c.JSON(http.StatusOK, gin.H{"completion": completion})
}

// UncompleteRoutine 撤销例程在某日的完成
func (a *API) UncompleteRoutine(c *gin.Context) {
	removed, err := a.routines.Uncomplete(c.Request.Context(), c.Param("id"), c.Param("date"))
	if err != nil {
		a.respondServiceError(c, err, "failed to uncomplete routine")
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// RoutineStats 返回例程统计
func (a *API) RoutineStats(c *gin.Context) {
	stats, err := a.routines.Stats(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err, "failed to compute routine stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
