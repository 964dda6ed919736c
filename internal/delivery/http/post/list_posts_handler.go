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

type PostLister interface {
	ListPublished(ctx context.Context) ([]*model.Post, error)
}

type ListPostsHandler struct {
	postService PostLister
	log         *logger.Logger
}

func NewListPostsHandler(postService PostLister, log *logger.Logger) *ListPostsHandler {
	return &ListPostsHandler{postService: postService, log: log}
}

// Index renders the front page: published posts, newest first.
func (h *ListPostsHandler) Index(c *gin.Context) {
	posts, err := h.postService.ListPublished(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list published posts", slog.String("error", err.Error()))
		render.ServerError(c)
		return
	}

	c.HTML(http.StatusOK, render.TemplateList, gin.H{
		"Posts":  posts,
		"Viewer": middleware.CurrentViewer(c),
	})
}
