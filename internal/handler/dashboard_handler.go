package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/record"
)

// Dashboard 返回首页数据，语言取自请求，缺省时使用偏好
func (a *API) Dashboard(c *gin.Context) {
	dashboard, err := a.dashboard.Build(c.Request.Context(), a.requestLanguage(c))
	if err != nil {
		a.respondServiceError(c, err, "failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// LifeBalance 只返回生活平衡部分
func (a *API) LifeBalance(c *gin.Context) {
	balance, err := a.dashboard.LifeBalance(c.Request.Context(), a.requestLanguage(c))
	if err != nil {
		a.respondServiceError(c, err, "failed to compute life balance")
		return
	}
	c.JSON(http.StatusOK, balance)
}

// MonthReport 返回 ?month=YYYY-MM 的月度报告，缺省为本月
func (a *API) MonthReport(c *gin.Context) {
	report, err := a.dashboard.Month(c.Request.Context(), c.Query("month"))
	if err != nil {
		a.respondServiceError(c, err, "failed to build month report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// Export 以附件形式返回全部数据
func (a *API) Export(c *gin.Context) {
	doc, err := a.export.Export(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err, "failed to export data")
		return
	}
	filename := fmt.Sprintf("lifelog-export-%s.json", record.FormatDate(doc.ExportedAt))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, doc)
}
