package auth_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogging-service/internal/config"
	"blogging-service/internal/logger"
)

type SessionEnder interface {
	Logout(ctx context.Context, token string) error
}

type LogoutHandler struct {
	authService SessionEnder
	session     config.Session
	log         *logger.Logger
}

func NewLogoutHandler(authService SessionEnder, session config.Session, log *logger.Logger) *LogoutHandler {
	return &LogoutHandler{
		authService: authService,
		session:     session,
		log:         log,
	}
}

func (h *LogoutHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(h.session.CookieName)
	if err == nil && token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			h.log.Error("Failed to delete session", slog.String("error", err.Error()))
		}
	}

	ClearSessionCookie(c, h.session)
	c.Redirect(http.StatusSeeOther, "/")
}
