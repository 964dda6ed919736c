package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
)

func TestCategoryRepository_ListSortedByName(t *testing.T) {
	repo := NewCategoryRepository(logger.New("test"))

	repo.Seed(&model.Category{Name: "sql"})
	repo.Seed(&model.Category{Name: "golang"})

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "golang", categories[0].Name)
	assert.Equal(t, "sql", categories[1].Name)
}

func TestCategoryRepository_PostLinks(t *testing.T) {
	repo := NewCategoryRepository(logger.New("test"))
	ctx := context.Background()

	golang := repo.Seed(&model.Category{Name: "golang"})
	sql := repo.Seed(&model.Category{Name: "sql"})

	repo.AttachPost(golang.ID, 1, "First Post")
	repo.AttachPost(golang.ID, 2, "Second Post")
	repo.AttachPost(sql.ID, 1, "First Post")

	titles, err := repo.PostTitles(ctx, golang.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"First Post", "Second Post"}, titles)

	categories, err := repo.GetByPost(ctx, 1)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "golang", categories[0].Name)
	assert.Equal(t, "sql", categories[1].Name)
}

func TestCategoryRepository_GetByID_NotFound(t *testing.T) {
	repo := NewCategoryRepository(logger.New("test"))

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, custom_errors.ErrCategoryNotFound)
}
