package neo4j

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Uniqueness constraints backing the identity invariants: usernames
// are globally unique, skill and interest names are MERGE targets and
// must stay single-noded.
var constraintStatements = []string{
	`CREATE CONSTRAINT user_username_unique IF NOT EXISTS
	 FOR (u:User) REQUIRE u.username IS UNIQUE`,
	`CREATE CONSTRAINT skill_name_unique IF NOT EXISTS
	 FOR (s:Skill) REQUIRE s.name IS UNIQUE`,
	`CREATE CONSTRAINT interest_name_unique IF NOT EXISTS
	 FOR (i:Interest) REQUIRE i.name IS UNIQUE`,
}

// EnsureConstraints is idempotent and runs at startup.
func (s *Store) EnsureConstraints(ctx context.Context) error {
	sess := s.Session(ctx, neo4j.AccessModeWrite)
	defer sess.Close(ctx)

	for _, stmt := range constraintStatements {
		if _, err := sess.Run(ctx, stmt, nil); err != nil {
			return err
		}
	}
	return nil
}
