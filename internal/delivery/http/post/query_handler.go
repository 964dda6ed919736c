package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/delivery/http/middleware"
	"blogging-service/internal/delivery/http/render"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
)

type QueryResolver interface {
	ResolveQuery(ctx context.Context, query model.PostQuery) ([]*model.Post, error)
}

type QueryHandler struct {
	postService QueryResolver
	log         *logger.Logger
}

func NewQueryHandler(postService QueryResolver, log *logger.Logger) *QueryHandler {
	return &QueryHandler{postService: postService, log: log}
}

// Query serves the generic /posts/{command}/{field}/{value}/ endpoint.
// Bad commands, fields or values come back as a client error, never a
// crash.
func (h *QueryHandler) Query(c *gin.Context, command, field, value string) {
	posts, err := h.postService.ResolveQuery(c.Request.Context(), model.PostQuery{
		Command: model.QueryCommand(command),
		Field:   field,
		Value:   value,
	})
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrInvalidQueryCommand),
			errors.Is(err, custom_errors.ErrInvalidQueryField),
			errors.Is(err, custom_errors.ErrInvalidQueryValue):
			render.BadRequest(c, "Unsupported query: "+command+"/"+field+"/"+value)
		default:
			h.log.Error("Failed to resolve generic query",
				slog.String("command", command),
				slog.String("field", field),
				slog.String("error", err.Error()))
			render.ServerError(c)
		}
		return
	}

	c.HTML(http.StatusOK, render.TemplateList, gin.H{
		"Posts":  posts,
		"Viewer": middleware.CurrentViewer(c),
	})
}
