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
	post_service "blogging-service/internal/service/post"
)

type PostViewer interface {
	GetPostForViewer(ctx context.Context, viewer *model.User, id int64) (*model.PostDetailed, error)
}

type CommentSubmitter interface {
	SubmitComment(ctx context.Context, viewer *model.User, comment *model.CreateCommentDTO) (*model.Comment, error)
}

type PostDetailHandler struct {
	postService    PostViewer
	commentService CommentSubmitter
	validate       *validator.Validate
	log            *logger.Logger
}

func NewPostDetailHandler(postService PostViewer, commentService CommentSubmitter, validate *validator.Validate, log *logger.Logger) *PostDetailHandler {
	return &PostDetailHandler{
		postService:    postService,
		commentService: commentService,
		validate:       validate,
		log:            log,
	}
}

// GetPost renders the post detail page with its comments and a comment
// form. Drafts send anonymous viewers to login and read as not found
// for other users.
func (h *PostDetailHandler) GetPost(c *gin.Context, postID int64) {
	viewer := middleware.CurrentViewer(c)

	detailed, err := h.postService.GetPostForViewer(c.Request.Context(), viewer, postID)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUnauthenticated):
			c.Redirect(http.StatusSeeOther, "/login/")
		case errors.Is(err, custom_errors.ErrPostNotFound):
			render.NotFound(c)
		default:
			h.log.Error("Failed to get post", slog.Int64("id", postID), slog.String("error", err.Error()))
			render.ServerError(c)
		}
		return
	}

	c.HTML(http.StatusOK, render.TemplateDetail, gin.H{
		"Post":       detailed.Post,
		"Author":     detailed.Author,
		"Comments":   detailed.Comments,
		"Categories": detailed.Categories,
		"Viewer":     viewer,
		"CanEdit":    post_service.CanEdit(viewer, detailed.Post),
	})
}

type AddCommentRequestInternal struct {
	PostID int64  `validate:"required,gt=0"`
	Text   string `validate:"required"`
}

// AddComment handles the comment form embedded in the detail page and
// redirects back to the detail view on success.
func (h *PostDetailHandler) AddComment(c *gin.Context, postID int64) {
	h.submitComment(c, postID, func(id int64) string {
		return postPath(id)
	})
}

func (h *PostDetailHandler) submitComment(c *gin.Context, postID int64, successTarget func(id int64) string) {
	viewer := middleware.CurrentViewer(c)
	if viewer == nil {
		c.Redirect(http.StatusSeeOther, "/login/")
		return
	}

	text := c.PostForm("text")

	validationReq := &AddCommentRequestInternal{
		PostID: postID,
		Text:   text,
	}
	if err := h.validate.Struct(validationReq); err != nil {
		h.renderCommentForm(c, postID, viewer, "Comment text must not be empty.")
		return
	}

	_, err := h.commentService.SubmitComment(c.Request.Context(), viewer, &model.CreateCommentDTO{
		PostID:   postID,
		AuthorID: viewer.ID,
		Text:     text,
	})
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrCommentValidation):
			h.renderCommentForm(c, postID, viewer, "Comment text must not be empty.")
		case errors.Is(err, custom_errors.ErrUnauthenticated):
			c.Redirect(http.StatusSeeOther, "/login/")
		case errors.Is(err, custom_errors.ErrPostNotFound):
			render.NotFound(c)
		default:
			h.log.Error("Failed to submit comment", slog.Int64("post_id", postID), slog.String("error", err.Error()))
			render.ServerError(c)
		}
		return
	}

	c.Redirect(http.StatusSeeOther, successTarget(postID))
}

// renderCommentForm redisplays the comment form with the post and
// author fixed and only the text editable.
func (h *PostDetailHandler) renderCommentForm(c *gin.Context, postID int64, viewer *model.User, message string) {
	c.HTML(http.StatusOK, render.TemplateComment, gin.H{
		"PostID": postID,
		"Viewer": viewer,
		"Error":  message,
	})
}
