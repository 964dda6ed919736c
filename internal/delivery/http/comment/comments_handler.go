package comment_http

import (
	"context"
	"errors"
	"fmt"
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

type CommentService interface {
	SubmitComment(ctx context.Context, viewer *model.User, comment *model.CreateCommentDTO) (*model.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
}

type CommentsHandler struct {
	commentService CommentService
	validate       *validator.Validate
	log            *logger.Logger
}

func NewCommentsHandler(commentService CommentService, validate *validator.Validate, log *logger.Logger) *CommentsHandler {
	return &CommentsHandler{
		commentService: commentService,
		validate:       validate,
		log:            log,
	}
}

type SubmitCommentRequestInternal struct {
	PostID int64  `validate:"required,gt=0"`
	Text   string `validate:"required"`
}

// ListComments renders the dedicated comment page for a post: its
// comments plus the submission form. The page itself is open; posting
// requires login.
func (h *CommentsHandler) ListComments(c *gin.Context, postID int64) {
	comments, err := h.commentService.ListByPost(c.Request.Context(), postID)
	if err != nil {
		h.log.Error("Failed to list comments", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		render.ServerError(c)
		return
	}

	c.HTML(http.StatusOK, render.TemplateComment, gin.H{
		"PostID":   postID,
		"Comments": comments,
		"Viewer":   middleware.CurrentViewer(c),
	})
}

// SubmitComment handles the dedicated comment form and redirects back
// to the post's comment listing on success.
func (h *CommentsHandler) SubmitComment(c *gin.Context, postID int64) {
	viewer := middleware.CurrentViewer(c)
	if viewer == nil {
		c.Redirect(http.StatusSeeOther, "/login/")
		return
	}

	text := c.PostForm("text")

	validationReq := &SubmitCommentRequestInternal{
		PostID: postID,
		Text:   text,
	}
	if err := h.validate.Struct(validationReq); err != nil {
		h.redisplayForm(c, postID, viewer)
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
			h.redisplayForm(c, postID, viewer)
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

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/posts/%d/comments/", postID))
}

func (h *CommentsHandler) redisplayForm(c *gin.Context, postID int64, viewer *model.User) {
	c.HTML(http.StatusOK, render.TemplateComment, gin.H{
		"PostID": postID,
		"Viewer": viewer,
		"Error":  "Comment text must not be empty.",
	})
}
