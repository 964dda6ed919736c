package category_repository_postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
	"blogging-service/internal/repository/postgres/db"
)

type CategoryRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewCategoryRepository(db db.PgDB, log *logger.Logger) *CategoryRepository {
	return &CategoryRepository{db: db, log: log}
}

func (c *CategoryRepository) List(ctx context.Context) ([]*model.Category, error) {
	query := `SELECT id, name, description FROM categories ORDER BY name`

	rows, err := c.db.Query(ctx, query)
	if err != nil {
		c.log.Error("Error listing categories", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	return scanCategories(rows, c.log)
}

func (c *CategoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, name, description FROM categories WHERE id = @id`

	category := &model.Category{}
	err := c.db.QueryRow(ctx, query, args).Scan(&category.ID, &category.Name, &category.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.log.Debug("Category not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrCategoryNotFound
		}
		c.log.Error("Error getting category by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return category, nil
}

func (c *CategoryRepository) PostTitles(ctx context.Context, categoryID int64) ([]string, error) {
	args := pgx.NamedArgs{"category_id": categoryID}
	query := `SELECT p.title FROM posts p
				JOIN post_categories pc ON pc.post_id = p.id
				WHERE pc.category_id = @category_id ORDER BY p.id`

	rows, err := c.db.Query(ctx, query, args)
	if err != nil {
		c.log.Error("Error getting post titles for category", slog.Int64("category_id", categoryID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			c.log.Error("Error scanning post title", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		titles = append(titles, title)
	}

	if err = rows.Err(); err != nil {
		c.log.Error("Error iterating post titles", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return titles, nil
}

func (c *CategoryRepository) GetByPost(ctx context.Context, postID int64) ([]*model.Category, error) {
	args := pgx.NamedArgs{"post_id": postID}
	query := `SELECT c.id, c.name, c.description FROM categories c
				JOIN post_categories pc ON pc.category_id = c.id
				WHERE pc.post_id = @post_id ORDER BY c.name`

	rows, err := c.db.Query(ctx, query, args)
	if err != nil {
		c.log.Error("Error getting categories by post", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	return scanCategories(rows, c.log)
}

func scanCategories(rows pgx.Rows, log *logger.Logger) ([]*model.Category, error) {
	var categories []*model.Category
	for rows.Next() {
		var category model.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description); err != nil {
			log.Error("Error scanning category", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		log.Error("Error iterating categories", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return categories, nil
}
