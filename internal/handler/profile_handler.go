package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/service"
	"github.com/shopspring/decimal"
)

type profilePayload struct {
	Name                 *string          `json:"name"`
	Language             *string          `json:"language"`
	Theme                *string          `json:"theme"`
	NotificationsEnabled *bool            `json:"notificationsEnabled"`
	MonthlyBudget        *decimal.Decimal `json:"monthlyBudget"`
	AreaGoals            map[string]int   `json:"areaGoals"`
	Onboarded            *bool            `json:"onboarded"`
}

// GetProfile 返回用户偏好
func (a *API) GetProfile(c *gin.Context) {
	profile, err := a.profiles.Get(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err, "failed to load profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateProfile 合并更新用户偏好
func (a *API) UpdateProfile(c *gin.Context) {
	var payload profilePayload
	if !bindJSON(c, &payload, "invalid profile payload") {
		return
	}
	profile, err := a.profiles.Update(c.Request.Context(), service.ProfileInput{
		Name:                 payload.Name,
		Language:             payload.Language,
		Theme:                payload.Theme,
		NotificationsEnabled: payload.NotificationsEnabled,
		MonthlyBudget:        payload.MonthlyBudget,
		AreaGoals:            payload.AreaGoals,
		Onboarded:            payload.Onboarded,
	})
	if err != nil {
		a.respondServiceError(c, err, "failed to update profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
