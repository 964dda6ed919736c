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

type PostEditor interface {
	GetPostForEdit(ctx context.Context, viewer *model.User, id int64) (*model.Post, error)
	UpdatePost(ctx context.Context, viewer *model.User, id int64, post *model.UpdatePostDTO) (*model.Post, error)
}

type EditPostHandler struct {
	postService PostEditor
	validate    *validator.Validate
	log         *logger.Logger
}

func NewEditPostHandler(postService PostEditor, validate *validator.Validate, log *logger.Logger) *EditPostHandler {
	return &EditPostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

// EditForm renders the edit form pre-filled with the post's current
// fields. Non-owners are bounced to the index without explanation.
func (h *EditPostHandler) EditForm(c *gin.Context, postID int64) {
	viewer := middleware.CurrentViewer(c)

	post, err := h.postService.GetPostForEdit(c.Request.Context(), viewer, postID)
	if err != nil {
		h.handleEditError(c, postID, err)
		return
	}

	postDate := ""
	if post.PostDate.Valid {
		postDate = post.PostDate.Time.Format(formDateLayout)
	}
	text := ""
	if post.Text != nil {
		text = *post.Text
	}

	c.HTML(http.StatusOK, render.TemplatePostForm, gin.H{
		"Viewer":   viewer,
		"Action":   postPath(postID) + "edit/",
		"Title":    post.Title,
		"Text":     text,
		"PostDate": postDate,
	})
}

func (h *EditPostHandler) SubmitEdit(c *gin.Context, postID int64) {
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
		h.redisplayForm(c, viewer, postID, title, text, postDate)
		return
	}

	parsedDate := parsePostDate(postDate)
	update := &model.UpdatePostDTO{
		Title:    &title,
		Text:     &text,
		PostDate: &parsedDate,
	}

	updatedPost, err := h.postService.UpdatePost(c.Request.Context(), viewer, postID, update)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostValidation) {
			h.redisplayForm(c, viewer, postID, title, text, postDate)
			return
		}
		h.handleEditError(c, postID, err)
		return
	}

	c.Redirect(http.StatusSeeOther, postPath(updatedPost.ID))
}

func (h *EditPostHandler) handleEditError(c *gin.Context, postID int64, err error) {
	switch {
	case errors.Is(err, custom_errors.ErrUnauthenticated):
		c.Redirect(http.StatusSeeOther, "/login/")
	case errors.Is(err, custom_errors.ErrForbidden):
		// Ownership is not disclosed; non-owners just land on the index.
		c.Redirect(http.StatusSeeOther, "/")
	case errors.Is(err, custom_errors.ErrPostNotFound):
		render.NotFound(c)
	default:
		h.log.Error("Failed to edit post", slog.Int64("id", postID), slog.String("error", err.Error()))
		render.ServerError(c)
	}
}

func (h *EditPostHandler) redisplayForm(c *gin.Context, viewer *model.User, postID int64, title, text, postDate string) {
	c.HTML(http.StatusOK, render.TemplatePostForm, gin.H{
		"Viewer":   viewer,
		"Action":   postPath(postID) + "edit/",
		"Title":    title,
		"Text":     text,
		"PostDate": postDate,
		"Error":    "Title is required and the publish date must be YYYY-MM-DD.",
	})
}
