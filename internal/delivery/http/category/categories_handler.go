package category_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/delivery/http/middleware"
	"blogging-service/internal/delivery/http/render"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.CategoryDetailed, error)
}

type CategoriesHandler struct {
	categoryService CategoryService
	log             *logger.Logger
}

func NewCategoriesHandler(categoryService CategoryService, log *logger.Logger) *CategoriesHandler {
	return &CategoriesHandler{categoryService: categoryService, log: log}
}

func (h *CategoriesHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list categories", slog.String("error", err.Error()))
		render.ServerError(c)
		return
	}

	c.HTML(http.StatusOK, render.TemplateCategory, gin.H{
		"Categories": categories,
		"Viewer":     middleware.CurrentViewer(c),
	})
}

func (h *CategoriesHandler) GetCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		render.NotFound(c)
		return
	}

	detailed, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCategoryNotFound) {
			render.NotFound(c)
			return
		}
		h.log.Error("Failed to get category", slog.Int64("id", id), slog.String("error", err.Error()))
		render.ServerError(c)
		return
	}

	c.HTML(http.StatusOK, render.TemplateCategory, gin.H{
		"Category":   detailed.Category,
		"PostTitles": detailed.PostTitles,
		"Viewer":     middleware.CurrentViewer(c),
	})
}
