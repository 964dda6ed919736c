package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/model"
)

const sessionKeyPrefix = "session:"

type SessionCache struct {
	client *Client
	log    *logger.Logger
}

func NewSessionCache(client *Client, log *logger.Logger) *SessionCache {
	return &SessionCache{client: client, log: log}
}

func sessionKey(token string) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, token)
}

func (s *SessionCache) Put(ctx context.Context, session *model.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	if err := s.client.Set(ctx, sessionKey(session.Token), session, ttl); err != nil {
		s.log.Error("Failed to store session",
			slog.Int64("user_id", session.UserID),
			slog.String("error", err.Error()))
		return err
	}

	s.log.Debug("Session stored",
		slog.Int64("user_id", session.UserID),
		slog.Duration("ttl", ttl))
	return nil
}

func (s *SessionCache) Get(ctx context.Context, token string) (*model.Session, error) {
	var session model.Session
	if err := s.client.Get(ctx, sessionKey(token), &session); err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			return nil, custom_errors.ErrSessionNotFound
		}
		return nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		return nil, custom_errors.ErrSessionNotFound
	}

	return &session, nil
}

func (s *SessionCache) Delete(ctx context.Context, token string) error {
	return s.client.Delete(ctx, sessionKey(token))
}
