package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/service"
)

type skincarePayload struct {
	Steps []string `json:"steps"`
	Done  *bool    `json:"done"`
}

// ListSkincare 返回全部护肤记录
func (a *API) ListSkincare(c *gin.Context) {
	items, err := a.skincare.List(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err, "failed to list skincare")
		return
	}
	c.JSON(http.StatusOK, gin.H{"completions": items})
}

// MarkSkincare 记录或撤销某日某时段的护肤，done 缺省为 true
func (a *API) MarkSkincare(c *gin.Context) {
	var payload skincarePayload
	if !bindJSON(c, &payload, "invalid skincare payload") {
		return
	}
	done := true
	if payload.Done != nil {
		done = *payload.Done
	}
	completion, err := a.skincare.Mark(c.Request.Context(), service.SkincareInput{
		Date:   c.Param("date"),
		Period: c.Param("period"),
		Steps:  payload.Steps,
		Done:   done,
	})
	if err != nil {
		a.respondServiceError(c, err, "failed to mark skincare")
		return
	}
	c.JSON(http.StatusOK, gin.H{"completion": completion, "done": done})
}

// SkincareStats 返回护肤统计
func (a *API) SkincareStats(c *gin.Context) {
	stats, err := a.skincare.Stats(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err, "failed to compute skincare stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
