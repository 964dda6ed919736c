package comment_repository

import (
	"context"

	"blogging-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/comment --outpkg mocks --filename CommentRepository.go
type Repository interface {
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	GetByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
}
