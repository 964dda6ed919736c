package comment_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
	"blogging-service/internal/repository/postgres/db"
)

const foreignKeyViolation = "23503"

type CommentRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewCommentRepository(db db.PgDB, log *logger.Logger) *CommentRepository {
	return &CommentRepository{db: db, log: log}
}

func (c *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	now := pgtype.Date{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"post_id":      comment.PostID,
		"author_id":    comment.AuthorID,
		"text":         comment.Text,
		"created_time": now,
	}

	query := `
		INSERT INTO comments (post_id, author_id, text, created_time)
		VALUES (@post_id, @author_id, @text, @created_time)
		RETURNING id, post_id, author_id, text, created_time`

	var createdComment model.Comment
	err := c.db.QueryRow(ctx, query, args).Scan(
		&createdComment.ID,
		&createdComment.PostID,
		&createdComment.AuthorID,
		&createdComment.Text,
		&createdComment.CreatedTime,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			c.log.Debug("Comment references missing post",
				slog.Int64("post_id", comment.PostID),
				slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		c.log.Error("Error creating comment", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &createdComment, nil
}

func (c *CommentRepository) GetByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	args := pgx.NamedArgs{"post_id": postID}
	query := `SELECT c.id, c.post_id, c.author_id, u.username, c.text, c.created_time
				FROM comments c
				LEFT JOIN users u ON u.id = c.author_id
				WHERE c.post_id = @post_id ORDER BY c.id`

	rows, err := c.db.Query(ctx, query, args)
	if err != nil {
		c.log.Error("Error getting comments by post", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		var comment model.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.AuthorUsername,
			&comment.Text,
			&comment.CreatedTime,
		)
		if err != nil {
			c.log.Error("Error scanning comment during GetByPost", slog.Int64("post_id", postID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		comments = append(comments, &comment)
	}

	if err = rows.Err(); err != nil {
		c.log.Error("Error iterating rows during GetByPost", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return comments, nil
}
