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

func TestUserRepository_Create(t *testing.T) {
	repo := NewUserRepository(logger.New("test"))
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.User{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	_, err = repo.Create(ctx, &model.User{Username: "alice", PasswordHash: "other"})
	assert.ErrorIs(t, err, custom_errors.ErrUsernameExists)
}

func TestUserRepository_Lookups(t *testing.T) {
	repo := NewUserRepository(logger.New("test"))
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.User{Username: "bob", PasswordHash: "hash"})
	require.NoError(t, err)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", byID.Username)

	byName, err := repo.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)

	_, err = repo.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
}
