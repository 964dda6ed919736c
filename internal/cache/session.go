package cache

import (
	"context"

	"blogging-service/internal/model"
)

// SessionStore keeps login sessions keyed by opaque token.
//
//go:generate mockery --name SessionStore --dir . --output ../../mocks/session --outpkg mocks --filename SessionStore.go
type SessionStore interface {
	Put(ctx context.Context, session *model.Session) error
	Get(ctx context.Context, token string) (*model.Session, error)
	Delete(ctx context.Context, token string) error
}
