package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/log"
	"github.com/lifelog/internal/service"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

var badRequestErrors = []error{
	service.ErrInvalidDate,
	service.ErrInvalidMonth,
	service.ErrEmptyHabitName,
	service.ErrInvalidLifeArea,
	service.ErrInvalidFrequency,
	service.ErrEmptyRoutineName,
	service.ErrInvalidRoutineKind,
	service.ErrInvalidDuration,
	service.ErrInvalidPeriod,
	service.ErrEmptyIntention,
	service.ErrInvalidGoal,
}

var notFoundErrors = []error{
	service.ErrHabitNotFound,
	service.ErrRoutineNotFound,
	service.ErrJournalNotFound,
	service.ErrBudgetNotFound,
	service.ErrIntentionNotFound,
}

// respondServiceError 将服务层错误映射为状态码；未识别的错误记录日志并返回 fallback
func (a *API) respondServiceError(c *gin.Context, err error, fallback string) {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			respondError(c, http.StatusNotFound, target.Error())
			return
		}
	}
	if errors.Is(err, service.ErrUnauthorized) {
		respondError(c, http.StatusUnauthorized, service.ErrUnauthorized.Error())
		return
	}

	a.logger.ErrorContext(c.Request.Context(), fallback,
		log.FieldMethod, c.Request.Method,
		log.FieldPath, c.FullPath(),
		log.FieldError, err.Error(),
	)
	respondError(c, http.StatusInternalServerError, fallback)
}
