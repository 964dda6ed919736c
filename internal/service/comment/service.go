package comment_service

import (
	"context"
	"log/slog"
	"strings"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/metrics"
	"blogging-service/internal/model"
	comment_repository "blogging-service/internal/repository/comment"
	post_repository "blogging-service/internal/repository/post"
)

type CommentService struct {
	commentRepo comment_repository.Repository
	postRepo    post_repository.Repository
	metrics     metrics.MetricsProvider
	log         *logger.Logger
}

func NewCommentService(
	commentRepo comment_repository.Repository,
	postRepo post_repository.Repository,
	metricsProvider metrics.MetricsProvider,
	log *logger.Logger,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		metrics:     metricsProvider,
		log:         log,
	}
}

// SubmitComment persists one comment against an existing post. Any
// authenticated viewer who knows the post id may comment; visibility
// of the post is not re-checked here.
func (s *CommentService) SubmitComment(ctx context.Context, viewer *model.User, comment *model.CreateCommentDTO) (created *model.Comment, err error) {
	defer func() { s.metrics.IncrementCommentOperations("create", err == nil) }()

	if viewer == nil {
		return nil, custom_errors.ErrUnauthenticated
	}
	if strings.TrimSpace(comment.Text) == "" {
		return nil, custom_errors.ErrCommentValidation
	}

	if _, err := s.postRepo.GetByID(ctx, comment.PostID); err != nil {
		return nil, err
	}

	authorID := viewer.ID
	newComment := &model.Comment{
		PostID:   comment.PostID,
		AuthorID: &authorID,
		Text:     comment.Text,
	}

	createdComment, err := s.commentRepo.Create(ctx, newComment)
	if err != nil {
		s.log.Error("Failed to create comment",
			slog.Int64("post_id", comment.PostID),
			slog.Int64("author_id", viewer.ID),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.log.Info("Comment created",
		slog.Int64("id", createdComment.ID),
		slog.Int64("post_id", createdComment.PostID))
	return createdComment, nil
}

func (s *CommentService) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	comments, err := s.commentRepo.GetByPost(ctx, postID)
	s.metrics.IncrementCommentOperations("list_by_post", err == nil)
	return comments, err
}
