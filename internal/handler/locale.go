package handler

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/locale"
)

const (
	localeContextKey     = "__request_language"
	languageCookieName   = "ll_lang"
	languageCookieMaxAge = 365 * 24 * 60 * 60
)

// LocaleMiddleware resolves the request language and sets headers for downstream caching.
// An empty language means the profile preference decides.
func (a *API) LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		language := a.requestLanguage(c)
		if language != "" {
			c.Header("Content-Language", locale.PreferenceForLanguage(language).Language)
		}
		varyHeaders := []string{"Accept-Language"}
		if readLanguageCookie(c) != "" || locale.NormalizeLanguage(c.Query("lang")) != "" {
			varyHeaders = append(varyHeaders, "Cookie")
		}
		appendVaryHeader(c, varyHeaders...)
		c.Next()
	}
}

func (a *API) requestLanguage(c *gin.Context) string {
	if cached, exists := c.Get(localeContextKey); exists {
		if language, ok := cached.(string); ok {
			return language
		}
	}
	language, persist := resolveLanguage(c)
	if persist {
		persistLanguage(c, language)
	}
	c.Set(localeContextKey, language)
	return language
}

func resolveLanguage(c *gin.Context) (string, bool) {
	if override := locale.NormalizeLanguage(c.Query("lang")); override != "" {
		return override, true
	}
	if cookie := readLanguageCookie(c); cookie != "" {
		return cookie, false
	}
	return locale.LanguageFromAcceptLanguage(c.GetHeader("Accept-Language")), false
}

func readLanguageCookie(c *gin.Context) string {
	value, err := c.Cookie(languageCookieName)
	if err != nil {
		return ""
	}
	return locale.NormalizeLanguage(value)
}

func persistLanguage(c *gin.Context, language string) {
	normalized := locale.NormalizeLanguage(language)
	if normalized == "" {
		return
	}
	secure := c.Request.TLS != nil || strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https")
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     languageCookieName,
		Value:    normalized,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		MaxAge:   languageCookieMaxAge,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		SameSite: http.SameSiteLaxMode,
	})
}

// appendVaryHeader 合并已有的 Vary 值，重复项只保留一次
func appendVaryHeader(c *gin.Context, headers ...string) {
	var merged []string
	for _, token := range append(strings.Split(c.Writer.Header().Get("Vary"), ","), headers...) {
		token = strings.TrimSpace(token)
		if token != "" && !slices.Contains(merged, token) {
			merged = append(merged, token)
		}
	}
	if len(merged) > 0 {
		c.Header("Vary", strings.Join(merged, ", "))
	}
}
