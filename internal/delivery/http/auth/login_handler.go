package auth_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blogging-service/internal/config"
	"blogging-service/internal/custom_errors"
	"blogging-service/internal/delivery/http/middleware"
	"blogging-service/internal/delivery/http/render"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
)

type SessionStarter interface {
	Login(ctx context.Context, username, password string) (*model.Session, error)
}

type LoginHandler struct {
	authService SessionStarter
	validate    *validator.Validate
	session     config.Session
	log         *logger.Logger
}

func NewLoginHandler(authService SessionStarter, validate *validator.Validate, session config.Session, log *logger.Logger) *LoginHandler {
	return &LoginHandler{
		authService: authService,
		validate:    validate,
		session:     session,
		log:         log,
	}
}

type LoginRequestInternal struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

func (h *LoginHandler) LoginForm(c *gin.Context) {
	if middleware.CurrentViewer(c) != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.HTML(http.StatusOK, render.TemplateLogin, gin.H{})
}

func (h *LoginHandler) SubmitLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	validationReq := &LoginRequestInternal{
		Username: username,
		Password: password,
	}
	if err := h.validate.Struct(validationReq); err != nil {
		h.redisplayForm(c, username)
		return
	}

	session, err := h.authService.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, custom_errors.ErrInvalidCredentials) {
			h.redisplayForm(c, username)
			return
		}
		h.log.Error("Failed to log in user", slog.String("username", username), slog.String("error", err.Error()))
		render.ServerError(c)
		return
	}

	SetSessionCookie(c, h.session, session.Token)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *LoginHandler) redisplayForm(c *gin.Context, username string) {
	c.HTML(http.StatusOK, render.TemplateLogin, gin.H{
		"Username": username,
		"Error":    "Invalid username or password.",
	})
}
