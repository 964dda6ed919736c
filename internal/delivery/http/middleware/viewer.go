package middleware

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
	auth_service "blogging-service/internal/service/auth"
)

const viewerKey = "viewer"

// Viewer resolves the session cookie into the current viewer and puts
// it on the request context. Requests without a valid session proceed
// as anonymous; gating happens per handler.
func Viewer(authService auth_service.Service, cookieName string, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		viewer, err := authService.ViewerFromToken(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, custom_errors.ErrSessionNotFound) {
				log.Error("Failed to resolve session", slog.String("error", err.Error()))
			}
			c.Next()
			return
		}

		c.Set(viewerKey, viewer)
		c.Next()
	}
}

// CurrentViewer returns the authenticated user for this request, or
// nil for an anonymous viewer.
func CurrentViewer(c *gin.Context) *model.User {
	v, exists := c.Get(viewerKey)
	if !exists {
		return nil
	}
	viewer, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return viewer
}
