package memory

import (
	"context"
	"log/slog"
	"sync"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
)

type UserRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	users  map[int64]*model.User
	byName map[string]int64
	nextID int64
}

func NewUserRepository(log *logger.Logger) *UserRepository {
	return &UserRepository{
		log:    log,
		users:  make(map[int64]*model.User),
		byName: make(map[string]int64),
		nextID: 1,
	}
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, exists := u.byName[user.Username]; exists {
		u.log.Debug("Username already taken", slog.String("username", user.Username))
		return nil, custom_errors.ErrUsernameExists
	}

	newUser := &model.User{
		ID:           u.nextID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
	}
	u.nextID++

	u.users[newUser.ID] = newUser
	u.byName[newUser.Username] = newUser.ID

	result := *newUser
	return &result, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, exists := u.users[id]
	if !exists {
		u.log.Debug("User not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *user
	return &result, nil
}

func (u *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	id, exists := u.byName[username]
	if !exists {
		u.log.Debug("User not found by username", slog.String("username", username))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *u.users[id]
	return &result, nil
}
