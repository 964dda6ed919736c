package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/delivery/http/middleware"
	"blogging-service/internal/delivery/http/render"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
)

type PostCreator interface {
	CreatePost(ctx context.Context, viewer *model.User, post *model.CreatePostDTO) (*model.Post, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
	log         *logger.Logger
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate, log *logger.Logger) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

// NewPostForm renders the empty submission form. Login is required for
// the form itself, matching the create gate.
func (h *CreatePostHandler) NewPostForm(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)
	if viewer == nil {
		c.Redirect(http.StatusSeeOther, "/login/")
		return
	}

	c.HTML(http.StatusOK, render.TemplatePostForm, gin.H{
		"Viewer": viewer,
		"Action": "/posts/new_post/",
	})
}

func (h *CreatePostHandler) SubmitNewPost(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)
	if viewer == nil {
		c.Redirect(http.StatusSeeOther, "/login/")
		return
	}

	title := c.PostForm("title")
	text := c.PostForm("text")
	postDate := c.PostForm("post_date")

	validationReq := &PostFormRequestInternal{
		Title:    title,
		Text:     text,
		PostDate: postDate,
	}
	if err := h.validate.Struct(validationReq); err != nil {
		h.redisplayForm(c, viewer, title, text, postDate)
		return
	}

	dto := &model.CreatePostDTO{
		Title:    title,
		Text:     &text,
		PostDate: parsePostDate(postDate),
	}

	createdPost, err := h.postService.CreatePost(c.Request.Context(), viewer, dto)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostValidation):
			h.redisplayForm(c, viewer, title, text, postDate)
		case errors.Is(err, custom_errors.ErrUnauthenticated):
			c.Redirect(http.StatusSeeOther, "/login/")
		default:
			h.log.Error("Failed to create post", slog.String("error", err.Error()))
			render.ServerError(c)
		}
		return
	}

	c.Redirect(http.StatusSeeOther, postPath(createdPost.ID))
}

func (h *CreatePostHandler) redisplayForm(c *gin.Context, viewer *model.User, title, text, postDate string) {
	c.HTML(http.StatusOK, render.TemplatePostForm, gin.H{
		"Viewer":   viewer,
		"Action":   "/posts/new_post/",
		"Title":    title,
		"Text":     text,
		"PostDate": postDate,
		"Error":    "Title is required and the publish date must be YYYY-MM-DD.",
	})
}
