package user_repository_postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
	"blogging-service/internal/repository/postgres/db"
)

const uniqueViolation = "23505"

type UserRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewUserRepository(db db.PgDB, log *logger.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := pgx.NamedArgs{
		"username":      user.Username,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
	}

	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES (@username, @email, @password_hash)
		RETURNING id, username, email, password_hash`

	var createdUser model.User
	err := u.db.QueryRow(ctx, query, args).Scan(
		&createdUser.ID,
		&createdUser.Username,
		&createdUser.Email,
		&createdUser.PasswordHash,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			u.log.Debug("Username already taken", slog.String("username", user.Username))
			return nil, custom_errors.ErrUsernameExists
		}
		u.log.Error("Error creating user", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &createdUser, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, username, email, password_hash FROM users WHERE id = @id`

	user := &model.User{}
	err := u.db.QueryRow(ctx, query, args).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting user by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}

func (u *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	args := pgx.NamedArgs{"username": username}
	query := `SELECT id, username, email, password_hash FROM users WHERE username = @username`

	user := &model.User{}
	err := u.db.QueryRow(ctx, query, args).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by username", slog.String("username", username))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting user by username", slog.String("username", username), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}
