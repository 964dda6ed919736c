package auth_http

import (
	"github.com/gin-gonic/gin"

	"blogging-service/internal/config"
)

// SetSessionCookie attaches the session token as an http-only cookie.
func SetSessionCookie(c *gin.Context, session config.Session, token string) {
	c.SetCookie(session.CookieName, token, int(session.TTL.Seconds()), "/", "", false, true)
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c *gin.Context, session config.Session) {
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
}
