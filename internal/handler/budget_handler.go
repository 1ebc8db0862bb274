package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/service"
	"github.com/shopspring/decimal"
)

type budgetPayload struct {
	StayedWithinBudget bool             `json:"stayedWithinBudget"`
	TrackedExpenses    bool             `json:"trackedExpenses"`
	Amount             *decimal.Decimal `json:"amount"`
	Notes              string           `json:"notes"`
}

// ListBudget 返回全部预算记录
func (a *API) ListBudget(c *gin.Context) {
	entries, err := a.budget.List(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err, "failed to list budget entries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GetBudget 返回某日预算记录
func (a *API) GetBudget(c *gin.Context) {
	entry, err := a.budget.Get(c.Request.Context(), c.Param("date"))
	if err != nil {
		a.respondServiceError(c, err, "failed to load budget entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// PutBudget 按日期写入预算记录
func (a *API) PutBudget(c *gin.Context) {
	var payload budgetPayload
	if !bindJSON(c, &payload, "invalid budget payload") {
		return
	}
	entry, err := a.budget.Upsert(c.Request.Context(), service.BudgetInput{
		Date:               c.Param("date"),
		StayedWithinBudget: payload.StayedWithinBudget,
		TrackedExpenses:    payload.TrackedExpenses,
		Amount:             payload.Amount,
		Notes:              payload.Notes,
	})
	if err != nil {
		a.respondServiceError(c, err, "failed to save budget entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// DeleteBudget 删除某日预算记录
func (a *API) DeleteBudget(c *gin.Context) {
	if err := a.budget.Delete(c.Request.Context(), c.Param("date")); err != nil {
		a.respondServiceError(c, err, "failed to delete budget entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// BudgetStats 返回预算统计
func (a *API) BudgetStats(c *gin.Context) {
	stats, err := a.budget.Stats(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err, "failed to compute budget stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
