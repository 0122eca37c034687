package repository

import (
	"context"

	"teamup/internal/database/neo4j"
	"teamup/internal/domain/user"

	neo4jdriver "github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// GraphUserRepository is the traversal surface over the property
// graph. A missing username is an empty result, never an error; only
// driver-level failures propagate.
type GraphUserRepository interface {
	UserExists(ctx context.Context, username string) (bool, error)
	GetUser(ctx context.Context, username string) (user.User, bool, error)
	CreateUser(ctx context.Context, u user.User) error
	SetAvailability(ctx context.Context, username string, available bool) (bool, error)
	GetContact(ctx context.Context, username string) (user.Contact, bool, error)
	FindMatches(ctx context.Context, q user.MatchQuery) ([]user.Summary, error)
	FindSimilarByInterest(ctx context.Context, username string) ([]user.Similar, error)
	ListUsers(ctx context.Context, f user.ListFilter) ([]user.Summary, error)
	ListAllUsers(ctx context.Context) ([]user.Summary, error)
}

type Neo4jUserRepository struct {
	store *neo4j.Store
}

func NewNeo4jUserRepository(store *neo4j.Store) *Neo4jUserRepository {
	return &Neo4jUserRepository{store: store}
}

func (r *Neo4jUserRepository) UserExists(ctx context.Context, username string) (bool, error) {
	records, err := r.read(ctx,
		`MATCH (u:User {username: $username}) RETURN u.username LIMIT 1`,
		map[string]any{"username": username},
	)
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}

func (r *Neo4jUserRepository) GetUser(ctx context.Context, username string) (user.User, bool, error) {
	records, err := r.read(ctx,
		`MATCH (u:User {username: $username})
		 OPTIONAL MATCH (u)-[:HAS_SKILL]->(s:Skill)
		 OPTIONAL MATCH (u)-[:HAS_INTEREST]->(i:Interest)
		 RETURN u,
		        collect(DISTINCT s.name) AS skills,
		        collect(DISTINCT i.name) AS interests`,
		map[string]any{"username": username},
	)
	if err != nil {
		return user.User{}, false, err
	}
	if len(records) == 0 {
		return user.User{}, false, nil
	}

	rec := records[0]
	node, ok := recordNode(rec, "u")
	if !ok {
		return user.User{}, false, nil
	}

	u := user.User{
		Username:     stringProp(node, "username"),
		Name:         stringProp(node, "name"),
		Number:       stringProp(node, "number"),
		Email:        stringProp(node, "email"),
		Role:         stringProp(node, "role"),
		Organization: stringProp(node, "organization"),
		Experience:   intProp(node, "experience"),
		Availability: boolProp(node, "availability"),
		Skills:       stringList(recordValue(rec, "skills")),
		Interests:    stringList(recordValue(rec, "interests")),
	}
	return u, true, nil
}

// CreateUser writes the User node and MERGEs Skill/Interest nodes plus
// their edges in one statement, so re-referencing an existing skill or
// interest name never duplicates the node.
func (r *Neo4jUserRepository) CreateUser(ctx context.Context, u user.User) error {
	_, err := r.write(ctx,
		`CREATE (u:User {
		    username: $username,
		    name: $name,
		    number: $number,
		    email: $email,
		    role: $role,
		    experience: $experience,
		    organization: $organization,
		    availability: $availability
		 })
		 WITH u
		 FOREACH (skill IN $skills | MERGE (s:Skill {name: skill}) MERGE (u)-[:HAS_SKILL]->(s))
		 FOREACH (interest IN $interests | MERGE (i:Interest {name: interest}) MERGE (u)-[:HAS_INTEREST]->(i))`,
		map[string]any{
			"username":     u.Username,
			"name":         u.Name,
			"number":       u.Number,
			"email":        u.Email,
			"role":         u.Role,
			"experience":   u.Experience,
			"organization": u.Organization,
			"availability": u.Availability,
			"skills":       toAnySlice(u.Skills),
			"interests":    toAnySlice(u.Interests),
		},
	)
	return err
}

// SetAvailability reports false when the username does not exist.
func (r *Neo4jUserRepository) SetAvailability(ctx context.Context, username string, available bool) (bool, error) {
	records, err := r.write(ctx,
		`MATCH (u:User {username: $username})
		 SET u.availability = $availability
		 RETURN u.username`,
		map[string]any{"username": username, "availability": available},
	)
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}

func (r *Neo4jUserRepository) GetContact(ctx context.Context, username string) (user.Contact, bool, error) {
	records, err := r.read(ctx,
		`MATCH (u:User {username: $username})
		 RETURN u.email AS email, u.number AS number`,
		map[string]any{"username": username},
	)
	if err != nil {
		return user.Contact{}, false, err
	}
	if len(records) == 0 {
		return user.Contact{}, false, nil
	}
	rec := records[0]
	return user.Contact{
		Email:  stringValue(recordValue(rec, "email")),
		Number: stringValue(recordValue(rec, "number")),
	}, true, nil
}

// FindMatches returns available users passing the role and experience
// filters. A non-empty skill set requires at least one overlapping
// skill; results always carry the user's full skill list.
func (r *Neo4jUserRepository) FindMatches(ctx context.Context, q user.MatchQuery) ([]user.Summary, error) {
	var role any
	if q.Role != "" {
		role = q.Role
	}

	records, err := r.read(ctx,
		`MATCH (u:User)
		 WHERE u.availability = true
		   AND u.experience >= $min_experience
		   AND ($role IS NULL OR u.role = $role)
		   AND (size($skills) = 0 OR EXISTS {
		         MATCH (u)-[:HAS_SKILL]->(m:Skill) WHERE m.name IN $skills
		       })
		 OPTIONAL MATCH (u)-[:HAS_SKILL]->(s:Skill)
		 WITH u, collect(DISTINCT s.name) AS skills
		 RETURN u.username AS username, u.name AS name, u.role AS role,
		        u.experience AS experience, u.availability AS availability,
		        u.email AS email, u.number AS number, skills`,
		map[string]any{
			"role":           role,
			"skills":         toAnySlice(q.Skills),
			"min_experience": q.MinExperience,
		},
	)
	if err != nil {
		return nil, err
	}
	return summariesFromRecords(records), nil
}

// FindSimilarByInterest returns every other user sharing at least one
// interest with username, with the shared interest names. The
// requester is excluded; zero-overlap users are not returned at all.
func (r *Neo4jUserRepository) FindSimilarByInterest(ctx context.Context, username string) ([]user.Similar, error) {
	records, err := r.read(ctx,
		`MATCH (u:User {username: $username})-[:HAS_INTEREST]->(i:Interest)<-[:HAS_INTEREST]-(o:User)
		 WHERE o.username <> $username
		 WITH o, collect(DISTINCT i.name) AS common
		 RETURN o.name AS name, o.email AS email, o.number AS number, common`,
		map[string]any{"username": username},
	)
	if err != nil {
		return nil, err
	}

	out := make([]user.Similar, 0, len(records))
	for _, rec := range records {
		out = append(out, user.Similar{
			Name:            stringValue(recordValue(rec, "name")),
			Email:           stringValue(recordValue(rec, "email")),
			Number:          stringValue(recordValue(rec, "number")),
			CommonInterests: stringList(recordValue(rec, "common")),
		})
	}
	return out, nil
}

// ListUsers is the durable listing query behind the filtered-users
// cache. Ordering by username keeps pagination stable.
func (r *Neo4jUserRepository) ListUsers(ctx context.Context, f user.ListFilter) ([]user.Summary, error) {
	var role, avail, skill, interest, minExp any
	if f.Role != "" {
		role = f.Role
	}
	if f.Availability != nil {
		avail = *f.Availability
	}
	if f.Skill != "" {
		skill = f.Skill
	}
	if f.Interest != "" {
		interest = f.Interest
	}
	if f.MinExperience != nil {
		minExp = *f.MinExperience
	}

	skip := f.Skip
	if skip < 0 {
		skip = 0
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}

	records, err := r.read(ctx,
		`MATCH (u:User)
		 WHERE ($role IS NULL OR u.role = $role)
		   AND ($availability IS NULL OR u.availability = $availability)
		   AND ($min_experience IS NULL OR u.experience >= $min_experience)
		   AND ($skill IS NULL OR EXISTS {
		         MATCH (u)-[:HAS_SKILL]->(:Skill {name: $skill})
		       })
		   AND ($interest IS NULL OR EXISTS {
		         MATCH (u)-[:HAS_INTEREST]->(:Interest {name: $interest})
		       })
		 OPTIONAL MATCH (u)-[:HAS_SKILL]->(s:Skill)
		 WITH u, collect(DISTINCT s.name) AS skills
		 ORDER BY u.username
		 SKIP $skip LIMIT $limit
		 RETURN u.username AS username, u.name AS name, u.role AS role,
		        u.experience AS experience, u.availability AS availability,
		        u.email AS email, u.number AS number, skills`,
		map[string]any{
			"role":           role,
			"availability":   avail,
			"skill":          skill,
			"interest":       interest,
			"min_experience": minExp,
			"skip":           skip,
			"limit":          limit,
		},
	)
	if err != nil {
		return nil, err
	}
	return summariesFromRecords(records), nil
}

func (r *Neo4jUserRepository) ListAllUsers(ctx context.Context) ([]user.Summary, error) {
	records, err := r.read(ctx,
		`MATCH (u:User)
		 OPTIONAL MATCH (u)-[:HAS_SKILL]->(s:Skill)
		 WITH u, collect(DISTINCT s.name) AS skills
		 ORDER BY u.username
		 RETURN u.username AS username, u.name AS name, u.role AS role,
		        u.experience AS experience, u.availability AS availability,
		        u.email AS email, u.number AS number, skills`,
		nil,
	)
	if err != nil {
		return nil, err
	}
	return summariesFromRecords(records), nil
}

func (r *Neo4jUserRepository) read(ctx context.Context, query string, params map[string]any) ([]*neo4jdriver.Record, error) {
	sess := r.store.Session(ctx, neo4jdriver.AccessModeRead)
	defer sess.Close(ctx)

	out, err := sess.ExecuteRead(ctx, func(tx neo4jdriver.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, err
	}
	return out.([]*neo4jdriver.Record), nil
}

func (r *Neo4jUserRepository) write(ctx context.Context, query string, params map[string]any) ([]*neo4jdriver.Record, error) {
	sess := r.store.Session(ctx, neo4jdriver.AccessModeWrite)
	defer sess.Close(ctx)

	out, err := sess.ExecuteWrite(ctx, func(tx neo4jdriver.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, err
	}
	return out.([]*neo4jdriver.Record), nil
}

func summariesFromRecords(records []*neo4jdriver.Record) []user.Summary {
	out := make([]user.Summary, 0, len(records))
	for _, rec := range records {
		out = append(out, user.Summary{
			Username:     stringValue(recordValue(rec, "username")),
			Name:         stringValue(recordValue(rec, "name")),
			Role:         stringValue(recordValue(rec, "role")),
			Experience:   intValue(recordValue(rec, "experience")),
			Availability: boolValue(recordValue(rec, "availability")),
			Email:        stringValue(recordValue(rec, "email")),
			Number:       stringValue(recordValue(rec, "number")),
			Skills:       stringList(recordValue(rec, "skills")),
		})
	}
	return out
}

func recordValue(rec *neo4jdriver.Record, key string) any {
	v, _ := rec.Get(key)
	return v
}

func recordNode(rec *neo4jdriver.Record, key string) (neo4jdriver.Node, bool) {
	v, ok := rec.Get(key)
	if !ok {
		return neo4jdriver.Node{}, false
	}
	node, ok := v.(neo4jdriver.Node)
	return node, ok
}

func stringProp(node neo4jdriver.Node, key string) string {
	return stringValue(node.Props[key])
}

func intProp(node neo4jdriver.Node, key string) int {
	return intValue(node.Props[key])
}

func boolProp(node neo4jdriver.Node, key string) bool {
	return boolValue(node.Props[key])
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func intValue(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

func boolValue(v any) bool {
	b, _ := v.(bool)
	return b
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toAnySlice(items []string) []any {
	out := make([]any, 0, len(items))
	for _, it := range items {
		out = append(out, it)
	}
	return out
}
