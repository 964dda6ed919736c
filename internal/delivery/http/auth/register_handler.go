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

type Registrar interface {
	Register(ctx context.Context, user *model.CreateUserDTO) (*model.Session, error)
}

type RegisterHandler struct {
	authService Registrar
	validate    *validator.Validate
	session     config.Session
	log         *logger.Logger
}

func NewRegisterHandler(authService Registrar, validate *validator.Validate, session config.Session, log *logger.Logger) *RegisterHandler {
	return &RegisterHandler{
		authService: authService,
		validate:    validate,
		session:     session,
		log:         log,
	}
}

type RegisterRequestInternal struct {
	Username string `validate:"required,max=150"`
	Email    string `validate:"omitempty,email"`
	Password string `validate:"required,min=8"`
}

func (h *RegisterHandler) RegisterForm(c *gin.Context) {
	if middleware.CurrentViewer(c) != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.HTML(http.StatusOK, render.TemplateRegister, gin.H{})
}

// SubmitRegister creates the account and logs the new user straight in.
func (h *RegisterHandler) SubmitRegister(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	validationReq := &RegisterRequestInternal{
		Username: username,
		Email:    email,
		Password: password,
	}
	if err := h.validate.Struct(validationReq); err != nil {
		h.redisplayForm(c, username, email, "Username is required and the password must be at least 8 characters.")
		return
	}

	dto := &model.CreateUserDTO{
		Username: username,
		Password: password,
	}
	if email != "" {
		dto.Email = &email
	}

	session, err := h.authService.Register(c.Request.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUsernameExists):
			h.redisplayForm(c, username, email, "That username is already taken.")
		case errors.Is(err, custom_errors.ErrUserValidation):
			h.redisplayForm(c, username, email, "Username and password are required.")
		default:
			h.log.Error("Failed to register user", slog.String("username", username), slog.String("error", err.Error()))
			render.ServerError(c)
		}
		return
	}

	SetSessionCookie(c, h.session, session.Token)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *RegisterHandler) redisplayForm(c *gin.Context, username, email, message string) {
	c.HTML(http.StatusOK, render.TemplateRegister, gin.H{
		"Username": username,
		"Email":    email,
		"Error":    message,
	})
}
