package category_repository

import (
	"context"

	"blogging-service/internal/model"
)

// Categories are administered outside this service, so the repository
// surface is read-only.
//
//go:generate mockery --name Repository --dir . --output ../../../mocks/category --outpkg mocks --filename CategoryRepository.go
type Repository interface {
	List(ctx context.Context) ([]*model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	PostTitles(ctx context.Context, categoryID int64) ([]string, error)
	GetByPost(ctx context.Context, postID int64) ([]*model.Category, error)
}
