package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type intentionPayload struct {
	Intention    string `json:"intention"`
	PersonalNote string `json:"personalNote"`
}

// ListIntentions 返回全部月度意图
func (a *API) ListIntentions(c *gin.Context) {
	items, err := a.intentions.List(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err, "failed to list intentions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"intentions": items})
}

// CurrentIntention 返回本月意图
func (a *API) CurrentIntention(c *gin.Context) {
	intention, err := a.intentions.Current(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err, "failed to load intention")
		return
	}
	c.JSON(http.StatusOK, gin.H{"intention": intention})
}

// GetIntention 返回某月意图
func (a *API) GetIntention(c *gin.Context) {
	intention, err := a.intentions.Get(c.Request.Context(), c.Param("month"))
	if err != nil {
		a.respondServiceError(c, err, "failed to load intention")
		return
	}
	c.JSON(http.StatusOK, gin.H{"intention": intention})
}

// PutIntention 写入某月意图
func (a *API) PutIntention(c *gin.Context) {
	var payload intentionPayload
	if !bindJSON(c, &payload, "invalid intention payload") {
		return
	}
	intention, err := a.intentions.Upsert(c.Request.Context(), c.Param("month"), payload.Intention, payload.PersonalNote)
	if err != nil {
		a.respondServiceError(c, err, "failed to save intention")
		return
	}
	c.JSON(http.StatusOK, gin.H{"intention": intention})
}

// DeleteIntention 删除某月意图
func (a *API) DeleteIntention(c *gin.Context) {
	if err := a.intentions.Delete(c.Request.Context(), c.Param("month")); err != nil {
		a.respondServiceError(c, err, "failed to delete intention")
		return
	}
	c.Status(http.StatusNoContent)
}
