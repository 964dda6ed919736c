package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
	"blogging-service/internal/repository/postgres/db"
)

const postColumns = "id, author_id, title, text, created_date, modified_date, post_date"

// queryColumns maps generic-query field names onto table columns.
var queryColumns = map[string]string{
	"id":            "id",
	"author":        "author_id",
	"title":         "title",
	"text":          "text",
	"post_date":     "post_date",
	"created_date":  "created_date",
	"modified_date": "modified_date",
}

type PostRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewPostRepository(db db.PgDB, log *logger.Logger) *PostRepository {
	return &PostRepository{db: db, log: log}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	now := pgtype.Date{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"author_id":     post.AuthorID,
		"title":         post.Title,
		"text":          post.Text,
		"created_date":  now,
		"modified_date": now,
		"post_date":     post.PostDate,
	}

	query := `
		INSERT INTO posts (author_id, title, text, created_date, modified_date, post_date)
		VALUES (@author_id, @title, @text, @created_date, @modified_date, @post_date)
		RETURNING ` + postColumns

	var createdPost model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&createdPost.ID,
		&createdPost.AuthorID,
		&createdPost.Title,
		&createdPost.Text,
		&createdPost.CreatedDate,
		&createdPost.ModifiedDate,
		&createdPost.PostDate,
	)

	if err != nil {
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = @id`
	row := p.db.QueryRow(ctx, query, args)
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Text,
		&post.CreatedDate,
		&post.ModifiedDate,
		&post.PostDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return post, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Title != nil {
		setClauses = append(setClauses, "title = @title")
		args["title"] = *update.Title
	}
	if update.Text != nil {
		setClauses = append(setClauses, "text = @text")
		args["text"] = *update.Text
	}
	if update.PostDate != nil {
		setClauses = append(setClauses, "post_date = @post_date")
		args["post_date"] = *update.PostDate
	}

	if len(setClauses) == 0 {
		return nil, custom_errors.ErrNoUpdateRows
	}

	setClauses = append(setClauses, "modified_date = @modified_date")
	args["modified_date"] = pgtype.Date{Time: time.Now(), Valid: true}

	query := "UPDATE posts SET " + strings.Join(setClauses, ", ") + " WHERE id = @id RETURNING " + postColumns

	var updatedPost model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&updatedPost.ID,
		&updatedPost.AuthorID,
		&updatedPost.Title,
		&updatedPost.Text,
		&updatedPost.CreatedDate,
		&updatedPost.ModifiedDate,
		&updatedPost.PostDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during Update", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error updating post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &updatedPost, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	builder := sq.
		Select(
			"p.id", "p.author_id", "p.title", "p.text",
			"p.created_date", "p.modified_date", "p.post_date",
		).
		From("posts p").
		PlaceholderFormat(sq.Dollar)

	if filters.AuthorID != nil {
		builder = builder.Where(sq.Eq{"p.author_id": *filters.AuthorID})
	}
	if filters.PublishedOnly {
		builder = builder.Where("p.post_date IS NOT NULL")
	}
	if filters.UnpublishedOnly {
		builder = builder.Where("p.post_date IS NULL")
	}

	if filters.NewestFirst {
		builder = builder.OrderBy("p.post_date DESC", "p.id DESC")
	} else {
		builder = builder.OrderBy("p.id")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		p.log.Error("Error building list query", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return p.queryPosts(ctx, query, args...)
}

func (p *PostRepository) Query(ctx context.Context, command model.QueryCommand, field string, value any) ([]*model.Post, error) {
	column, ok := queryColumns[field]
	if !ok {
		return nil, custom_errors.ErrInvalidQueryField
	}

	builder := sq.
		Select(strings.Split(postColumns, ", ")...).
		From("posts").
		PlaceholderFormat(sq.Dollar)

	switch command {
	case model.QueryCommandFilter:
		builder = builder.Where(sq.Eq{column: value})
	case model.QueryCommandExclude:
		// IS DISTINCT FROM keeps NULL rows in the result, matching the
		// exclude semantics of the original query endpoint.
		builder = builder.Where(sq.Expr(column+" IS DISTINCT FROM ?", value))
	default:
		return nil, custom_errors.ErrInvalidQueryCommand
	}

	query, args, err := builder.OrderBy("id").ToSql()
	if err != nil {
		p.log.Error("Error building generic query", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return p.queryPosts(ctx, query, args...)
}

func (p *PostRepository) queryPosts(ctx context.Context, query string, args ...any) ([]*model.Post, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		p.log.Error("Error querying posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID,
			&post.AuthorID,
			&post.Title,
			&post.Text,
			&post.CreatedDate,
			&post.ModifiedDate,
			&post.PostDate,
		)
		if err != nil {
			p.log.Error("Error scanning post row", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		p.log.Error("Error iterating post rows", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return posts, nil
}
