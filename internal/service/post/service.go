package post_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/metrics"
	"blogging-service/internal/model"
	category_repository "blogging-service/internal/repository/category"
	comment_repository "blogging-service/internal/repository/comment"
	post_repository "blogging-service/internal/repository/post"
	"blogging-service/internal/repository/postgres"
	user_repository "blogging-service/internal/repository/user"
)

type PostService struct {
	postRepo     post_repository.Repository
	commentRepo  comment_repository.Repository
	categoryRepo category_repository.Repository
	userRepo     user_repository.Repository
	uow          postgres.UnitOfWork
	metrics      metrics.MetricsProvider
	log          *logger.Logger
}

func NewPostService(
	postRepo post_repository.Repository,
	commentRepo comment_repository.Repository,
	categoryRepo category_repository.Repository,
	userRepo user_repository.Repository,
	uow postgres.UnitOfWork,
	metricsProvider metrics.MetricsProvider,
	log *logger.Logger,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		uow:          uow,
		metrics:      metricsProvider,
		log:          log,
	}
}

func (s *PostService) CreatePost(ctx context.Context, viewer *model.User, post *model.CreatePostDTO) (created *model.Post, err error) {
	defer func() { s.metrics.IncrementPostOperations("create", err == nil) }()

	if viewer == nil {
		return nil, custom_errors.ErrUnauthenticated
	}
	if strings.TrimSpace(post.Title) == "" {
		return nil, custom_errors.ErrPostValidation
	}

	// The author is always the session viewer, never a form value.
	newPost := &model.Post{
		AuthorID: viewer.ID,
		Title:    post.Title,
		Text:     post.Text,
		PostDate: post.PostDate,
	}

	createdPost, err := s.postRepo.Create(ctx, newPost)
	if err != nil {
		s.log.Error("Failed to create post",
			slog.Int64("author_id", viewer.ID),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.log.Info("Post created",
		slog.Int64("id", createdPost.ID),
		slog.Int64("author_id", createdPost.AuthorID))
	return createdPost, nil
}

func (s *PostService) UpdatePost(ctx context.Context, viewer *model.User, id int64, update *model.UpdatePostDTO) (result *model.Post, err error) {
	defer func() { s.metrics.IncrementPostOperations("update", err == nil) }()

	if viewer == nil {
		return nil, custom_errors.ErrUnauthenticated
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, custom_errors.ErrPostValidation
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				s.log.Debug("Transaction rollback", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	postRepo := tx.PostRepository()

	post, err := postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanEdit(viewer, post) {
		s.log.Debug("Edit rejected for non-owner",
			slog.Int64("post_id", id),
			slog.Int64("viewer_id", viewer.ID))
		return nil, custom_errors.ErrForbidden
	}

	updatedPost, err := postRepo.Update(ctx, id, update)
	if err != nil {
		s.log.Error("Failed to update post",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit post update", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.log.Info("Post updated", slog.Int64("id", updatedPost.ID))
	return updatedPost, nil
}

// GetPostForViewer applies the detail access gate: drafts redirect
// anonymous viewers to login and read as missing for everyone but the
// author, so draft existence never leaks.
func (s *PostService) GetPostForViewer(ctx context.Context, viewer *model.User, id int64) (detailed *model.PostDetailed, err error) {
	defer func() { s.metrics.IncrementPostOperations("get", err == nil) }()

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanView(viewer, post) {
		if viewer == nil {
			return nil, custom_errors.ErrUnauthenticated
		}
		return nil, custom_errors.ErrPostNotFound
	}

	detailed = &model.PostDetailed{Post: post}

	author, err := s.userRepo.GetByID(ctx, post.AuthorID)
	if err != nil && !errors.Is(err, custom_errors.ErrUserNotFound) {
		return nil, err
	}
	detailed.Author = author

	comments, err := s.commentRepo.GetByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	detailed.Comments = comments

	categories, err := s.categoryRepo.GetByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	detailed.Categories = categories

	return detailed, nil
}

func (s *PostService) GetPostForEdit(ctx context.Context, viewer *model.User, id int64) (post *model.Post, err error) {
	defer func() { s.metrics.IncrementPostOperations("get_for_edit", err == nil) }()

	if viewer == nil {
		return nil, custom_errors.ErrUnauthenticated
	}

	post, err = s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanEdit(viewer, post) {
		return nil, custom_errors.ErrForbidden
	}

	return post, nil
}

func (s *PostService) ListPublished(ctx context.Context) ([]*model.Post, error) {
	posts, err := s.postRepo.List(ctx, model.PostFilters{
		PublishedOnly: true,
		NewestFirst:   true,
	})
	s.metrics.IncrementPostOperations("list_published", err == nil)
	return posts, err
}

func (s *PostService) ListByAuthorUsername(ctx context.Context, username string) (posts []*model.Post, err error) {
	defer func() { s.metrics.IncrementPostOperations("list_by_author", err == nil) }()

	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			return []*model.Post{}, nil
		}
		return nil, err
	}

	return s.postRepo.List(ctx, model.PostFilters{AuthorID: &author.ID})
}

func (s *PostService) ListPublishedByViewer(ctx context.Context, viewer *model.User) ([]*model.Post, error) {
	if viewer == nil {
		return []*model.Post{}, nil
	}

	posts, err := s.postRepo.List(ctx, model.PostFilters{
		AuthorID:      &viewer.ID,
		PublishedOnly: true,
		NewestFirst:   true,
	})
	s.metrics.IncrementPostOperations("list_own_published", err == nil)
	return posts, err
}

func (s *PostService) ListUnpublishedByViewer(ctx context.Context, viewer *model.User) ([]*model.Post, error) {
	if viewer == nil {
		return []*model.Post{}, nil
	}

	posts, err := s.postRepo.List(ctx, model.PostFilters{
		AuthorID:        &viewer.ID,
		UnpublishedOnly: true,
	})
	s.metrics.IncrementPostOperations("list_own_unpublished", err == nil)
	return posts, err
}
