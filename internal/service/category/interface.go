package category_service

import (
	"context"

	"blogging-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/category --outpkg mocks --filename CategoryService.go
type Service interface {
	ListCategories(ctx context.Context) ([]*model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.CategoryDetailed, error)
}
