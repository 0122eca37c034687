package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"teamup/internal/domain/user"
)

func alice() user.User {
	return user.User{
		Username: "alice", Name: "Alice", Role: "engineer",
		Experience: 5, Availability: true,
		Skills: []string{"go", "ml"}, Interests: []string{"chess"},
	}
}

func bob() user.User {
	return user.User{
		Username: "bob", Name: "Bob", Role: "engineer",
		Experience: 2, Availability: false,
		Skills: []string{"rust"}, Interests: []string{"chess", "running"},
	}
}

func TestMatching_GetMatches_FiltersUnavailable(t *testing.T) {
	graph := newFakeGraph(alice(), bob())
	uc := NewMatchingUsecase(graph, newFakeCache(), nil)

	// Alice's profile builds the query: role engineer, skills go/ml,
	// experience >= 5. Bob is excluded by availability regardless.
	got, err := uc.GetMatches(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetMatches: %v", err)
	}
	if len(got) != 1 || got[0].Username != "alice" {
		t.Fatalf("expected only alice, got %+v", got)
	}
	if !reflect.DeepEqual(got[0].Skills, []string{"go", "ml"}) {
		t.Fatalf("expected full skill list, got %v", got[0].Skills)
	}
}

func TestMatching_GetMatches_SkillOverlapRequired(t *testing.T) {
	dave := user.User{
		Username: "dave", Role: "engineer", Experience: 0,
		Availability: false, Skills: []string{"rust"},
	}
	graph := newFakeGraph(alice(), bob(), dave)
	uc := NewMatchingUsecase(graph, newFakeCache(), nil)

	// Dave's query asks for engineers with rust. Alice has no overlap,
	// bob is unavailable, dave himself is unavailable: empty result.
	got, err := uc.GetMatches(context.Background(), "dave")
	if err != nil {
		t.Fatalf("GetMatches: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestMatching_GetMatches_EmptyQueryReturnsAllAvailable(t *testing.T) {
	// Zoe's profile carries no role, no skills and zero experience, so
	// her query constrains on availability alone.
	zoe := user.User{Username: "zoe", Availability: false}
	graph := newFakeGraph(alice(), bob(), zoe)
	uc := NewMatchingUsecase(graph, newFakeCache(), nil)

	got, err := uc.GetMatches(context.Background(), "zoe")
	if err != nil {
		t.Fatalf("GetMatches: %v", err)
	}
	if len(got) != 1 || got[0].Username != "alice" {
		t.Fatalf("expected exactly the available users, got %+v", got)
	}
}

func TestMatching_GetMatches_UnknownRequester(t *testing.T) {
	uc := NewMatchingUsecase(newFakeGraph(), newFakeCache(), nil)
	if _, err := uc.GetMatches(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMatching_GetMatches_CachedOnSecondCall(t *testing.T) {
	graph := newFakeGraph(alice())
	uc := NewMatchingUsecase(graph, newFakeCache(), nil)

	ctx := context.Background()
	first, err := uc.GetMatches(ctx, "alice")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := uc.GetMatches(ctx, "alice")
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results")
	}
	if graph.findMatchesCalls != 1 {
		t.Fatalf("expected 1 traversal, got %d", graph.findMatchesCalls)
	}
}

func TestMatching_ListFilteredUsers_CacheAsideIdempotence(t *testing.T) {
	graph := newFakeGraph(alice(), bob())
	uc := NewMatchingUsecase(graph, newFakeCache(), nil)

	f := user.ListFilter{Role: "engineer", Skip: 0, Limit: 100}
	ctx := context.Background()

	first, err := uc.ListFilteredUsers(ctx, f)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := uc.ListFilteredUsers(ctx, f)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results")
	}
	if graph.listUsersCalls != 1 {
		t.Fatalf("second call must be served from cache, got %d queries", graph.listUsersCalls)
	}
}

func TestMatching_ListFilteredUsers_DistinctSlots(t *testing.T) {
	graph := newFakeGraph(alice(), bob())
	uc := NewMatchingUsecase(graph, newFakeCache(), nil)

	ctx := context.Background()
	if _, err := uc.ListFilteredUsers(ctx, user.ListFilter{Role: "engineer", Limit: 100}); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := uc.ListFilteredUsers(ctx, user.ListFilter{Role: "engineer", Limit: 50}); err != nil {
		t.Fatalf("second: %v", err)
	}
	if graph.listUsersCalls != 2 {
		t.Fatalf("distinct pagination must not share a cache slot, got %d queries", graph.listUsersCalls)
	}
}

func TestMatching_ListFilteredUsers_InvalidPagination(t *testing.T) {
	uc := NewMatchingUsecase(newFakeGraph(), newFakeCache(), nil)
	for _, f := range []user.ListFilter{
		{Skip: -1, Limit: 10},
		{Skip: 0, Limit: 0},
		{Skip: 0, Limit: 1001},
	} {
		if _, err := uc.ListFilteredUsers(context.Background(), f); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("filter %+v: expected ErrInvalidInput, got %v", f, err)
		}
	}
}

func TestMatching_ListFilteredUsers_CacheFailureFallsThrough(t *testing.T) {
	graph := newFakeGraph(alice())
	cache := newFakeCache()
	cache.fail = true
	uc := NewMatchingUsecase(graph, cache, nil)

	ctx := context.Background()
	f := user.ListFilter{Limit: 100}
	for i := 0; i < 2; i++ {
		got, err := uc.ListFilteredUsers(ctx, f)
		if err != nil {
			t.Fatalf("cache failure must not fail the request: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 user, got %d", len(got))
		}
	}
	if graph.listUsersCalls != 2 {
		t.Fatalf("expected fall-through on every call, got %d queries", graph.listUsersCalls)
	}
}

func TestMatching_SignupInvalidatesListingCaches(t *testing.T) {
	graph := newFakeGraph(alice())
	cache := newFakeCache()
	matching := NewMatchingUsecase(graph, cache, nil)
	users := NewUserUsecase(graph, matching, nil)

	ctx := context.Background()
	f := user.ListFilter{Role: "engineer", Limit: 100}

	before, err := matching.ListFilteredUsers(ctx, f)
	if err != nil {
		t.Fatalf("before: %v", err)
	}
	if len(before) != 1 {
		t.Fatalf("expected 1 user before signup, got %d", len(before))
	}
	if _, err := matching.ListAllUsers(ctx); err != nil {
		t.Fatalf("all before: %v", err)
	}

	newcomer := user.User{Username: "erin", Role: "engineer", Experience: 1, Availability: true}
	if err := users.Signup(ctx, newcomer); err != nil {
		t.Fatalf("signup: %v", err)
	}

	for k := range cache.data {
		if k == allUsersKey {
			t.Fatalf("all-users key must be invalidated")
		}
		if len(k) >= len(filterUsersPrefix) && k[:len(filterUsersPrefix)] == filterUsersPrefix {
			t.Fatalf("filterUsers key %q must be invalidated", k)
		}
	}

	after, err := matching.ListFilteredUsers(ctx, f)
	if err != nil {
		t.Fatalf("after: %v", err)
	}
	if len(after) != 2 {
		t.Fatalf("expected the new user in a re-queried listing, got %d", len(after))
	}
	if graph.listUsersCalls != 2 {
		t.Fatalf("expected a fresh durable query after invalidation, got %d", graph.listUsersCalls)
	}
}

func TestMatching_SimilarUsers(t *testing.T) {
	graph := newFakeGraph(alice(), bob(),
		user.User{Username: "frank", Name: "Frank", Interests: []string{"cooking"}})
	uc := NewMatchingUsecase(graph, newFakeCache(), nil)

	got, err := uc.SimilarUsers(context.Background(), "alice")
	if err != nil {
		t.Fatalf("SimilarUsers: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected only bob (shared chess), got %+v", got)
	}
	if got[0].Name != "Bob" {
		t.Fatalf("unexpected similar user %q", got[0].Name)
	}
	if !reflect.DeepEqual(got[0].CommonInterests, []string{"chess"}) {
		t.Fatalf("unexpected common interests %v", got[0].CommonInterests)
	}
}

func TestMatching_SimilarUsers_UnknownRequester(t *testing.T) {
	uc := NewMatchingUsecase(newFakeGraph(), newFakeCache(), nil)
	if _, err := uc.SimilarUsers(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUsers_SignupDuplicate(t *testing.T) {
	graph := newFakeGraph(alice())
	users := NewUserUsecase(graph, NewMatchingUsecase(graph, newFakeCache(), nil), nil)
	err := users.Signup(context.Background(), user.User{Username: "alice"})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUsers_GetContact(t *testing.T) {
	a := alice()
	a.Email = "alice@example.com"
	a.Number = "555-0100"
	graph := newFakeGraph(a)
	users := NewUserUsecase(graph, nil, nil)

	c, err := users.GetContact(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetContact: %v", err)
	}
	if c.Email != "alice@example.com" || c.Number != "555-0100" {
		t.Fatalf("unexpected contact %+v", c)
	}

	if _, err := users.GetContact(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
