package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/service"
)

type journalPayload struct {
	Content string `json:"content"`
	Mood    string `json:"mood"`
}

type moodPayload struct {
	Mood string `json:"mood"`
}

type analyzePayload struct {
	Text string `json:"text"`
}

// ListJournal 返回全部日记
func (a *API) ListJournal(c *gin.Context) {
	entries, err := a.journal.List(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err, "failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GetJournal 返回某日日记
func (a *API) GetJournal(c *gin.Context) {
	entry, err := a.journal.Get(c.Request.Context(), c.Param("date"))
	if err != nil {
		a.respondServiceError(c, err, "failed to load journal entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// PutJournal 按日期保存日记
func (a *API) PutJournal(c *gin.Context) {
	var payload journalPayload
	if !bindJSON(c, &payload, "invalid journal payload") {
		return
	}
	entry, err := a.journal.Save(c.Request.Context(), service.JournalInput{
		Date:    c.Param("date"),
		Content: payload.Content,
		Mood:    payload.Mood,
	})
	if err != nil {
		a.respondServiceError(c, err, "failed to save journal entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// RenderJournal 返回某日日记的 HTML
func (a *API) RenderJournal(c *gin.Context) {
	rendered, err := a.journal.Render(c.Request.Context(), c.Param("date"))
	if err != nil {
		a.respondServiceError(c, err, "failed to render journal entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"html": rendered})
}

// SetJournalMood 手动设置或清除某日情绪
func (a *API) SetJournalMood(c *gin.Context) {
	var payload moodPayload
	if !bindJSON(c, &payload, "invalid mood payload") {
		return
	}
	entry, err := a.journal.SetMood(c.Request.Context(), c.Param("date"), payload.Mood)
	if err != nil {
		a.respondServiceError(c, err, "failed to set mood")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// DeleteJournal 删除某日日记
func (a *API) DeleteJournal(c *gin.Context) {
	if err := a.journal.Delete(c.Request.Context(), c.Param("date")); err != nil {
		a.respondServiceError(c, err, "failed to delete journal entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// JournalStats 返回日记统计
func (a *API) JournalStats(c *gin.Context) {
	stats, err := a.journal.Stats(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err, "failed to compute journal stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AnalyzeSentiment 对任意文本做情绪分析，不保存
func (a *API) AnalyzeSentiment(c *gin.Context) {
	var payload analyzePayload
	if !bindJSON(c, &payload, "invalid analyze payload") {
		return
	}
	c.JSON(http.StatusOK, a.journal.Analyze(payload.Text))
}
