package auth_service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"blogging-service/internal/cache"
	"blogging-service/internal/custom_errors"
	"blogging-service/internal/logger"
	"blogging-service/internal/metrics"
	"blogging-service/internal/model"
	user_repository "blogging-service/internal/repository/user"
)

const sessionTokenBytes = 32

type AuthService struct {
	userRepo   user_repository.Repository
	sessions   cache.SessionStore
	sessionTTL time.Duration
	metrics    metrics.MetricsProvider
	log        *logger.Logger
}

func NewAuthService(
	userRepo user_repository.Repository,
	sessions cache.SessionStore,
	sessionTTL time.Duration,
	metricsProvider metrics.MetricsProvider,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		metrics:    metricsProvider,
		log:        log,
	}
}

func (s *AuthService) Register(ctx context.Context, user *model.CreateUserDTO) (session *model.Session, err error) {
	defer func() { s.metrics.IncrementAuthOperations("register", err == nil) }()

	if strings.TrimSpace(user.Username) == "" || user.Password == "" {
		return nil, custom_errors.ErrUserValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	createdUser, err := s.userRepo.Create(ctx, &model.User{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		slog.Int64("id", createdUser.ID),
		slog.String("username", createdUser.Username))

	return s.startSession(ctx, createdUser)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (session *model.Session, err error) {
	defer func() { s.metrics.IncrementAuthOperations("login", err == nil) }()

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			return nil, custom_errors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Debug("Password mismatch", slog.String("username", username))
		return nil, custom_errors.ErrInvalidCredentials
	}

	return s.startSession(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	err := s.sessions.Delete(ctx, token)
	s.metrics.IncrementAuthOperations("logout", err == nil)
	return err
}

func (s *AuthService) ViewerFromToken(ctx context.Context, token string) (user *model.User, err error) {
	defer func() { s.metrics.IncrementAuthOperations("resolve_session", err == nil) }()

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err = s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			// The user was deleted after the session was issued.
			return nil, custom_errors.ErrSessionNotFound
		}
		return nil, err
	}

	return user, nil
}

func (s *AuthService) startSession(ctx context.Context, user *model.User) (*model.Session, error) {
	token, err := newSessionToken()
	if err != nil {
		s.log.Error("Failed to generate session token", slog.String("error", err.Error()))
		return nil, err
	}

	session := &model.Session{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
