package usecase

import (
	"context"
	"time"

	"teamup/internal/domain/user"
	"teamup/internal/repository"

	"go.uber.org/zap"
)

type MatchingUsecase interface {
	GetMatches(ctx context.Context, username string) ([]user.Summary, error)
	ListFilteredUsers(ctx context.Context, f user.ListFilter) ([]user.Summary, error)
	ListAllUsers(ctx context.Context) ([]user.Summary, error)
	SimilarUsers(ctx context.Context, username string) ([]user.Similar, error)
	InvalidateOnWrite(ctx context.Context)
}

// Matching fronts the graph traversals with cache-aside reads. It owns
// cache-key construction and write-triggered invalidation; the graph
// store stays the source of truth throughout.
type Matching struct {
	graph  repository.GraphUserRepository
	cache  Cache
	logger *zap.Logger
}

func NewMatchingUsecase(graph repository.GraphUserRepository, cache Cache, logger *zap.Logger) *Matching {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matching{graph: graph, cache: cache, logger: logger}
}

// GetMatches answers "who should collaborate with username". The match
// query is built from the requester's own profile: same role, at least
// one shared skill, experience at or above the requester's. One cached
// recommendation list per requester; other users' writes do not evict
// it, it ages out on TTL.
func (m *Matching) GetMatches(ctx context.Context, username string) ([]user.Summary, error) {
	key := recommendationKey(username)

	var cached []user.Summary
	if found := m.cacheGet(ctx, key, &cached); found {
		return cached, nil
	}

	profile, found, err := m.graph.GetUser(ctx, username)
	if err != nil {
		m.logger.Error("load requester profile failed", zap.String("username", username), zap.Error(err))
		return nil, ErrStoreUnavailable
	}
	if !found {
		return nil, ErrUserNotFound
	}

	matches, err := m.graph.FindMatches(ctx, user.MatchQuery{
		Role:          profile.Role,
		Skills:        sortedCopy(profile.Skills),
		MinExperience: profile.Experience,
	})
	if err != nil {
		m.logger.Error("find matches failed", zap.String("username", username), zap.Error(err))
		return nil, ErrStoreUnavailable
	}

	m.cacheSet(ctx, key, matches, recommendationTTL)
	return matches, nil
}

func (m *Matching) ListFilteredUsers(ctx context.Context, f user.ListFilter) ([]user.Summary, error) {
	if f.Skip < 0 || f.Limit < 1 || f.Limit > 1000 {
		return nil, ErrInvalidInput
	}

	key := filterUsersKey(f)

	var cached []user.Summary
	if found := m.cacheGet(ctx, key, &cached); found {
		return cached, nil
	}

	users, err := m.graph.ListUsers(ctx, f)
	if err != nil {
		m.logger.Error("list users failed", zap.Error(err))
		return nil, ErrStoreUnavailable
	}

	m.cacheSet(ctx, key, users, filterUsersTTL)
	return users, nil
}

func (m *Matching) ListAllUsers(ctx context.Context) ([]user.Summary, error) {
	var cached []user.Summary
	if found := m.cacheGet(ctx, allUsersKey, &cached); found {
		return cached, nil
	}

	users, err := m.graph.ListAllUsers(ctx)
	if err != nil {
		m.logger.Error("list all users failed", zap.Error(err))
		return nil, ErrStoreUnavailable
	}

	m.cacheSet(ctx, allUsersKey, users, allUsersTTL)
	return users, nil
}

// SimilarUsers is served straight from the graph. The result depends
// on the interest edges of every other user, so a cache entry would go
// stale on any signup; the traversal is cheap enough to run each time.
func (m *Matching) SimilarUsers(ctx context.Context, username string) ([]user.Similar, error) {
	exists, err := m.graph.UserExists(ctx, username)
	if err != nil {
		m.logger.Error("user exists check failed", zap.String("username", username), zap.Error(err))
		return nil, ErrStoreUnavailable
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	similar, err := m.graph.FindSimilarByInterest(ctx, username)
	if err != nil {
		m.logger.Error("find similar failed", zap.String("username", username), zap.Error(err))
		return nil, ErrStoreUnavailable
	}
	return similar, nil
}

// InvalidateOnWrite drops every listing entry that can name the
// written user: the all-users aggregate and the whole filterUsers
// family. Per-requester recommendation lists are left to expire on
// TTL. Failures here are logged and absorbed; the durable write
// already succeeded and cache staleness is recoverable.
func (m *Matching) InvalidateOnWrite(ctx context.Context) {
	if _, err := m.cache.Delete(ctx, allUsersKey); err != nil {
		m.logger.Warn("cache invalidation degraded", zap.String("key", allUsersKey), zap.Error(err))
	}
	if _, err := m.cache.DeleteByPattern(ctx, filterUsersPrefix+"*"); err != nil {
		m.logger.Warn("cache invalidation degraded", zap.String("pattern", filterUsersPrefix+"*"), zap.Error(err))
	}
}

func (m *Matching) cacheGet(ctx context.Context, key string, out any) bool {
	found, err := m.cache.GetJSON(ctx, key, out)
	if err != nil {
		m.logger.Warn("cache read degraded", zap.String("key", key), zap.Error(err))
		return false
	}
	return found
}

func (m *Matching) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	if err := m.cache.SetJSON(ctx, key, value, ttl); err != nil {
		m.logger.Warn("cache write degraded", zap.String("key", key), zap.Error(err))
	}
}
