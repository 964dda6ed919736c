package auth_service

import (
	"context"

	"blogging-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/auth --outpkg mocks --filename AuthService.go
type Service interface {
	// Register creates the user and logs them straight in.
	Register(ctx context.Context, user *model.CreateUserDTO) (*model.Session, error)
	Login(ctx context.Context, username, password string) (*model.Session, error)
	Logout(ctx context.Context, token string) error
	// ViewerFromToken resolves a session token to its user. A missing
	// or expired session yields ErrSessionNotFound.
	ViewerFromToken(ctx context.Context, token string) (*model.User, error)
}
