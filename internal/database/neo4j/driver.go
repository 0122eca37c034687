package neo4j

import (
	"context"
	"fmt"
	"time"

	"teamup/internal/config"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Store wraps the driver together with the target database name so
// repositories open sessions without re-reading config.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
}

func Connect(ctx context.Context, cfg config.GraphConfig) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.User, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("neo4j driver: %w", err)
	}

	verifyCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		verifyCtx, cancel = context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
	}
	if err := driver.VerifyConnectivity(verifyCtx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("neo4j connectivity: %w", err)
	}

	return &Store{driver: driver, database: cfg.Database}, nil
}

func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.driver == nil {
		return nil
	}
	return s.driver.Close(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.driver == nil {
		return fmt.Errorf("nil graph store")
	}
	return s.driver.VerifyConnectivity(ctx)
}

// Session opens a session against the configured database. Callers
// own the close.
func (s *Store) Session(ctx context.Context, mode neo4j.AccessMode) neo4j.SessionWithContext {
	return s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   mode,
		DatabaseName: s.database,
	})
}
