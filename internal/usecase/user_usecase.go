package usecase

import (
	"context"
	"strings"

	"teamup/internal/domain/user"
	"teamup/internal/repository"

	"go.uber.org/zap"
)

type UserUsecase interface {
	Signup(ctx context.Context, u user.User) error
	GetUser(ctx context.Context, username string) (user.User, error)
	UserExists(ctx context.Context, username string) (bool, error)
	GetContact(ctx context.Context, username string) (user.Contact, error)
}

type listingInvalidator interface {
	InvalidateOnWrite(ctx context.Context)
}

// Users covers the profile read/write paths around the matching core.
// Writes land in the graph first and only then touch the cache, via
// the matching service's invalidation.
type Users struct {
	graph       repository.GraphUserRepository
	invalidator listingInvalidator
	logger      *zap.Logger
}

func NewUserUsecase(graph repository.GraphUserRepository, invalidator listingInvalidator, logger *zap.Logger) *Users {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Users{graph: graph, invalidator: invalidator, logger: logger}
}

func (s *Users) Signup(ctx context.Context, u user.User) error {
	u.Username = strings.TrimSpace(u.Username)
	if u.Username == "" || u.Experience < 0 {
		return ErrInvalidInput
	}

	exists, err := s.graph.UserExists(ctx, u.Username)
	if err != nil {
		s.logger.Error("signup existence check failed", zap.String("username", u.Username), zap.Error(err))
		return ErrStoreUnavailable
	}
	if exists {
		return ErrUserExists
	}

	if err := s.graph.CreateUser(ctx, u); err != nil {
		s.logger.Error("create user failed", zap.String("username", u.Username), zap.Error(err))
		return ErrStoreUnavailable
	}

	// Listing caches can match the new record from this point on.
	if s.invalidator != nil {
		s.invalidator.InvalidateOnWrite(ctx)
	}
	return nil
}

func (s *Users) GetUser(ctx context.Context, username string) (user.User, error) {
	u, found, err := s.graph.GetUser(ctx, username)
	if err != nil {
		s.logger.Error("get user failed", zap.String("username", username), zap.Error(err))
		return user.User{}, ErrStoreUnavailable
	}
	if !found {
		return user.User{}, ErrUserNotFound
	}
	return u, nil
}

func (s *Users) UserExists(ctx context.Context, username string) (bool, error) {
	exists, err := s.graph.UserExists(ctx, username)
	if err != nil {
		s.logger.Error("user exists failed", zap.String("username", username), zap.Error(err))
		return false, ErrStoreUnavailable
	}
	return exists, nil
}

func (s *Users) GetContact(ctx context.Context, username string) (user.Contact, error) {
	c, found, err := s.graph.GetContact(ctx, username)
	if err != nil {
		s.logger.Error("get contact failed", zap.String("username", username), zap.Error(err))
		return user.Contact{}, ErrStoreUnavailable
	}
	if !found {
		return user.Contact{}, ErrUserNotFound
	}
	return c, nil
}
