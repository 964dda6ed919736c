package comment_service

import (
	"context"

	"blogging-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/comment --outpkg mocks --filename CommentService.go
type Service interface {
	SubmitComment(ctx context.Context, viewer *model.User, comment *model.CreateCommentDTO) (*model.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
}
