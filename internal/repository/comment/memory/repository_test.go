package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogging-service/internal/logger"
	"blogging-service/internal/model"
)

func TestCommentRepository_CreateAndGetByPost(t *testing.T) {
	repo := NewCommentRepository(logger.New("test"))
	ctx := context.Background()

	authorID := int64(2)
	authorUsername := "reader"
	first, err := repo.Create(ctx, &model.Comment{PostID: 1, AuthorID: &authorID, AuthorUsername: &authorUsername, Text: "first"})
	require.NoError(t, err)
	assert.True(t, first.CreatedTime.Valid)

	_, err = repo.Create(ctx, &model.Comment{PostID: 1, AuthorID: &authorID, Text: "second"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &model.Comment{PostID: 2, AuthorID: &authorID, Text: "elsewhere"})
	require.NoError(t, err)

	comments, err := repo.GetByPost(ctx, 1)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	require.NotNil(t, comments[0].AuthorUsername)
	assert.Equal(t, "reader", *comments[0].AuthorUsername)
	assert.Equal(t, "second", comments[1].Text)
}

func TestCommentRepository_GetByPost_Empty(t *testing.T) {
	repo := NewCommentRepository(logger.New("test"))

	comments, err := repo.GetByPost(context.Background(), 99)
	assert.NoError(t, err)
	assert.Empty(t, comments)
}
