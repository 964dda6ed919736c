package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogging-service/internal/delivery/http/middleware"
	"blogging-service/internal/delivery/http/render"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
)

type UserPostLister interface {
	ListByAuthorUsername(ctx context.Context, username string) ([]*model.Post, error)
	ListPublishedByViewer(ctx context.Context, viewer *model.User) ([]*model.Post, error)
	ListUnpublishedByViewer(ctx context.Context, viewer *model.User) ([]*model.Post, error)
}

type UserPostsHandler struct {
	postService UserPostLister
	log         *logger.Logger
}

func NewUserPostsHandler(postService UserPostLister, log *logger.Logger) *UserPostsHandler {
	return &UserPostsHandler{postService: postService, log: log}
}

// ByUsername lists every post by the named user, drafts included. An
// unknown username renders an empty listing.
func (h *UserPostsHandler) ByUsername(c *gin.Context, username string) {
	posts, err := h.postService.ListByAuthorUsername(c.Request.Context(), username)
	if err != nil {
		h.log.Error("Failed to list posts by username", slog.String("username", username), slog.String("error", err.Error()))
		render.ServerError(c)
		return
	}

	h.renderList(c, posts)
}

// Published lists the session viewer's published posts. The username
// path segment is decorative: the listing binds to the session user.
func (h *UserPostsHandler) Published(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)

	posts, err := h.postService.ListPublishedByViewer(c.Request.Context(), viewer)
	if err != nil {
		h.log.Error("Failed to list published posts for viewer", slog.String("error", err.Error()))
		render.ServerError(c)
		return
	}

	h.renderList(c, posts)
}

// Unpublished lists the session viewer's drafts.
func (h *UserPostsHandler) Unpublished(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)

	posts, err := h.postService.ListUnpublishedByViewer(c.Request.Context(), viewer)
	if err != nil {
		h.log.Error("Failed to list unpublished posts for viewer", slog.String("error", err.Error()))
		render.ServerError(c)
		return
	}

	h.renderList(c, posts)
}

func (h *UserPostsHandler) renderList(c *gin.Context, posts []*model.Post) {
	c.HTML(http.StatusOK, render.TemplateList, gin.H{
		"Posts":  posts,
		"Viewer": middleware.CurrentViewer(c),
	})
}
