package post_service

import (
	"context"

	"blogging-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/post --outpkg mocks --filename PostService.go
type Service interface {
	CreatePost(ctx context.Context, viewer *model.User, post *model.CreatePostDTO) (*model.Post, error)
	UpdatePost(ctx context.Context, viewer *model.User, id int64, post *model.UpdatePostDTO) (*model.Post, error)
	GetPostForViewer(ctx context.Context, viewer *model.User, id int64) (*model.PostDetailed, error)
	GetPostForEdit(ctx context.Context, viewer *model.User, id int64) (*model.Post, error)
	ListPublished(ctx context.Context) ([]*model.Post, error)
	ListByAuthorUsername(ctx context.Context, username string) ([]*model.Post, error)
	ListPublishedByViewer(ctx context.Context, viewer *model.User) ([]*model.Post, error)
	ListUnpublishedByViewer(ctx context.Context, viewer *model.User) ([]*model.Post, error)
	ResolveQuery(ctx context.Context, query model.PostQuery) ([]*model.Post, error)
}
