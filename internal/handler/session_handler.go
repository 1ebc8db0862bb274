package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionOwnerID  = "owner_id"
	sessionUsername = "username"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login 校验凭据并建立会话
func (a *API) Login(c *gin.Context) {
	var payload loginPayload
	if !bindJSON(c, &payload, "invalid login payload") {
		return
	}

	owner, err := a.auth.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		a.respondServiceError(c, err, "login failed")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionOwnerID, owner.ID)
	session.Set(sessionUsername, owner.Username)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": owner.Username})
}

// Logout 清除会话
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to clear session")
		return
	}
	c.Status(http.StatusNoContent)
}

// Session 返回当前登录的用户
func (a *API) Session(c *gin.Context) {
	session := sessions.Default(c)
	c.JSON(http.StatusOK, gin.H{"username": session.Get(sessionUsername)})
}

// AuthRequired 拒绝没有会话的请求
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionOwnerID) == nil {
			respondError(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}
