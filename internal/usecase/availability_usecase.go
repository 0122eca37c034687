package usecase

import (
	"context"

	"teamup/internal/domain/availability"
	"teamup/internal/repository"

	"go.uber.org/zap"
)

type AvailabilityUsecase interface {
	SetStatus(ctx context.Context, username, rawStatus string) (availability.Status, error)
	GetStatus(ctx context.Context, username string) (availability.Status, error)
	ListOnline(ctx context.Context) ([]string, error)
}

// PresenceNotifier receives status transitions after they have been
// durably recorded. Implementations must not block.
type PresenceNotifier interface {
	NotifyPresenceChanged(username string, status availability.Status)
}

// Availability keeps the fast-path status in the cache, cross-checked
// against the durable boolean flag in the graph. The two are
// eventually consistent: a direct external write to the durable flag
// is not visible here until the cache entry expires or is evicted.
type Availability struct {
	graph    repository.GraphUserRepository
	cache    Cache
	notifier PresenceNotifier
	logger   *zap.Logger
}

func NewAvailabilityUsecase(graph repository.GraphUserRepository, cache Cache, notifier PresenceNotifier, logger *zap.Logger) *Availability {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Availability{graph: graph, cache: cache, notifier: notifier, logger: logger}
}

// SetStatus validates the status, synchronizes the durable flag, then
// refreshes the cached status and the online set. The durable write
// goes first: if the cache updates are skipped the status is merely
// stale until TTL, whereas a lost durable write would not heal.
func (a *Availability) SetStatus(ctx context.Context, username, rawStatus string) (availability.Status, error) {
	status, ok := availability.Parse(rawStatus)
	if !ok {
		return "", ErrInvalidStatus
	}

	matched, err := a.graph.SetAvailability(ctx, username, status.Online())
	if err != nil {
		a.logger.Error("availability durable sync failed", zap.String("username", username), zap.Error(err))
		return "", ErrStoreUnavailable
	}
	if !matched {
		return "", ErrUserNotFound
	}

	if err := a.cache.SetJSON(ctx, availabilityKey(username), status, statusTTL); err != nil {
		a.logger.Warn("availability cache write degraded", zap.String("username", username), zap.Error(err))
	}

	if status.Online() {
		if err := a.cache.SetAdd(ctx, onlineSetKey, username, onlineSetTTL); err != nil {
			a.logger.Warn("online set add degraded", zap.String("username", username), zap.Error(err))
		}
	} else {
		if err := a.cache.SetRemove(ctx, onlineSetKey, username); err != nil {
			a.logger.Warn("online set remove degraded", zap.String("username", username), zap.Error(err))
		}
	}

	if a.notifier != nil {
		a.notifier.NotifyPresenceChanged(username, status)
	}
	return status, nil
}

// GetStatus is cache-first. On a miss the durable flag is mapped to
// available/offline, written back, and returned; a user missing from
// the durable store too is reported as offline, never as an error.
func (a *Availability) GetStatus(ctx context.Context, username string) (availability.Status, error) {
	key := availabilityKey(username)

	var cached availability.Status
	found, err := a.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		a.logger.Warn("availability cache read degraded", zap.String("username", username), zap.Error(err))
	} else if found {
		if s, ok := availability.Parse(string(cached)); ok {
			return s, nil
		}
	}

	profile, exists, err := a.graph.GetUser(ctx, username)
	if err != nil {
		a.logger.Error("availability durable read failed", zap.String("username", username), zap.Error(err))
		return "", ErrStoreUnavailable
	}
	if !exists {
		return availability.StatusOffline, nil
	}

	status := availability.FromDurable(profile.Availability)
	if err := a.cache.SetJSON(ctx, key, status, statusTTL); err != nil {
		a.logger.Warn("availability cache repopulate degraded", zap.String("username", username), zap.Error(err))
	}
	return status, nil
}

// ListOnline returns the cached online set. Presence has no durable
// equivalent, so a cache failure yields an empty set rather than an
// error, and entries may linger past a silent disconnect until the
// set's TTL clears them.
func (a *Availability) ListOnline(ctx context.Context) ([]string, error) {
	members, err := a.cache.SetMembers(ctx, onlineSetKey)
	if err != nil {
		a.logger.Warn("online set read degraded", zap.Error(err))
		return []string{}, nil
	}
	if members == nil {
		return []string{}, nil
	}
	return members, nil
}
