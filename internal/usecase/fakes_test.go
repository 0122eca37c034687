package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"teamup/internal/domain/user"
)

// fakeCache is an in-memory stand-in for the Redis store. TTLs are
// accepted but not enforced; expiry is simulated by deleting keys.
// With fail=true every operation degrades the way an unreachable
// server would.
type fakeCache struct {
	data map[string][]byte
	sets map[string]map[string]bool
	fail bool

	getCalls int
	setCalls int
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		data: make(map[string][]byte),
		sets: make(map[string]map[string]bool),
	}
}

var errCacheDown = errors.New("cache down")

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.getCalls++
	if c.fail {
		return false, errCacheDown
	}
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.setCalls++
	if c.fail {
		return errCacheDown
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) (bool, error) {
	if c.fail {
		return false, errCacheDown
	}
	_, ok := c.data[key]
	delete(c.data, key)
	return ok, nil
}

func (c *fakeCache) DeleteByPattern(_ context.Context, pattern string) (int, error) {
	if c.fail {
		return 0, errCacheDown
	}
	prefix := strings.TrimSuffix(pattern, "*")
	n := 0
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
			n++
		}
	}
	return n, nil
}

func (c *fakeCache) SetAdd(_ context.Context, key, member string, _ time.Duration) error {
	if c.fail {
		return errCacheDown
	}
	if c.sets[key] == nil {
		c.sets[key] = make(map[string]bool)
	}
	c.sets[key][member] = true
	return nil
}

func (c *fakeCache) SetRemove(_ context.Context, key, member string) error {
	if c.fail {
		return errCacheDown
	}
	delete(c.sets[key], member)
	return nil
}

func (c *fakeCache) SetMembers(_ context.Context, key string) ([]string, error) {
	if c.fail {
		return nil, errCacheDown
	}
	out := make([]string, 0, len(c.sets[key]))
	for m := range c.sets[key] {
		out = append(out, m)
	}
	sort.Strings(out)
	return out, nil
}

// fakeGraph implements the repository contract over a plain map,
// mirroring the traversal semantics of the Cypher queries.
type fakeGraph struct {
	users map[string]user.User
	err   error

	findMatchesCalls int
	listUsersCalls   int
	listAllCalls     int
	getUserCalls     int
}

func newFakeGraph(users ...user.User) *fakeGraph {
	g := &fakeGraph{users: make(map[string]user.User)}
	for _, u := range users {
		g.users[u.Username] = u
	}
	return g
}

func (g *fakeGraph) UserExists(_ context.Context, username string) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	_, ok := g.users[username]
	return ok, nil
}

func (g *fakeGraph) GetUser(_ context.Context, username string) (user.User, bool, error) {
	g.getUserCalls++
	if g.err != nil {
		return user.User{}, false, g.err
	}
	u, ok := g.users[username]
	return u, ok, nil
}

func (g *fakeGraph) CreateUser(_ context.Context, u user.User) error {
	if g.err != nil {
		return g.err
	}
	g.users[u.Username] = u
	return nil
}

func (g *fakeGraph) SetAvailability(_ context.Context, username string, available bool) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	u, ok := g.users[username]
	if !ok {
		return false, nil
	}
	u.Availability = available
	g.users[username] = u
	return true, nil
}

func (g *fakeGraph) GetContact(_ context.Context, username string) (user.Contact, bool, error) {
	if g.err != nil {
		return user.Contact{}, false, g.err
	}
	u, ok := g.users[username]
	if !ok {
		return user.Contact{}, false, nil
	}
	return user.Contact{Email: u.Email, Number: u.Number}, true, nil
}

func (g *fakeGraph) FindMatches(_ context.Context, q user.MatchQuery) ([]user.Summary, error) {
	g.findMatchesCalls++
	if g.err != nil {
		return nil, g.err
	}
	out := make([]user.Summary, 0)
	for _, u := range sortedUsers(g.users) {
		if !u.Availability {
			continue
		}
		if u.Experience < q.MinExperience {
			continue
		}
		if q.Role != "" && u.Role != q.Role {
			continue
		}
		if len(q.Skills) > 0 && !overlaps(u.Skills, q.Skills) {
			continue
		}
		out = append(out, summaryOf(u))
	}
	return out, nil
}

func (g *fakeGraph) FindSimilarByInterest(_ context.Context, username string) ([]user.Similar, error) {
	if g.err != nil {
		return nil, g.err
	}
	self, ok := g.users[username]
	if !ok {
		return []user.Similar{}, nil
	}
	out := make([]user.Similar, 0)
	for _, u := range sortedUsers(g.users) {
		if u.Username == username {
			continue
		}
		common := intersect(self.Interests, u.Interests)
		if len(common) == 0 {
			continue
		}
		out = append(out, user.Similar{Name: u.Name, Email: u.Email, Number: u.Number, CommonInterests: common})
	}
	return out, nil
}

func (g *fakeGraph) ListUsers(_ context.Context, f user.ListFilter) ([]user.Summary, error) {
	g.listUsersCalls++
	if g.err != nil {
		return nil, g.err
	}
	all := make([]user.Summary, 0)
	for _, u := range sortedUsers(g.users) {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.Availability != nil && u.Availability != *f.Availability {
			continue
		}
		if f.Skill != "" && !contains(u.Skills, f.Skill) {
			continue
		}
		if f.Interest != "" && !contains(u.Interests, f.Interest) {
			continue
		}
		if f.MinExperience != nil && u.Experience < *f.MinExperience {
			continue
		}
		all = append(all, summaryOf(u))
	}
	if f.Skip >= len(all) {
		return []user.Summary{}, nil
	}
	all = all[f.Skip:]
	if f.Limit > 0 && len(all) > f.Limit {
		all = all[:f.Limit]
	}
	return all, nil
}

func (g *fakeGraph) ListAllUsers(_ context.Context) ([]user.Summary, error) {
	g.listAllCalls++
	if g.err != nil {
		return nil, g.err
	}
	out := make([]user.Summary, 0, len(g.users))
	for _, u := range sortedUsers(g.users) {
		out = append(out, summaryOf(u))
	}
	return out, nil
}

func sortedUsers(m map[string]user.User) []user.User {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]user.User, 0, len(names))
	for _, n := range names {
		out = append(out, m[n])
	}
	return out
}

func summaryOf(u user.User) user.Summary {
	return user.Summary{
		Username:     u.Username,
		Name:         u.Name,
		Role:         u.Role,
		Experience:   u.Experience,
		Availability: u.Availability,
		Email:        u.Email,
		Number:       u.Number,
		Skills:       u.Skills,
	}
}

func overlaps(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func intersect(a, b []string) []string {
	out := make([]string, 0)
	for _, x := range a {
		for _, y := range b {
			if x == y {
				out = append(out, x)
			}
		}
	}
	sort.Strings(out)
	return out
}

func contains(items []string, v string) bool {
	for _, it := range items {
		if it == v {
			return true
		}
	}
	return false
}
